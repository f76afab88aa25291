// Menu handler and file dialogs
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"image-editor/internal/io"
)

// defaultSaveName is proposed by the save dialog.
const defaultSaveName = "edited"

// MenuHandler owns the main menu and the open/save dialogs. Selected paths
// are handed to the callbacks; the dialogs never touch the editor.
type MenuHandler struct {
	window     fyne.Window
	logger     *logrus.Logger
	defaultExt string

	onOpenPath func(string)
	onSavePath func(string)
	onReset    func()
}

func NewMenuHandler(window fyne.Window, defaultExt string, logger *logrus.Logger) *MenuHandler {
	return &MenuHandler{
		window:     window,
		logger:     logger,
		defaultExt: defaultExt,
	}
}

func (mh *MenuHandler) SetCallbacks(onOpenPath, onSavePath func(string), onReset func()) {
	mh.onOpenPath = onOpenPath
	mh.onSavePath = onSavePath
	mh.onReset = onReset
}

func (mh *MenuHandler) GetMainMenu() *fyne.MainMenu {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Image...", mh.ShowOpenDialog),
		fyne.NewMenuItem("Save Image...", mh.ShowSaveDialog),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Reset to Original", func() {
			if mh.onReset != nil {
				mh.onReset()
			}
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mh.showAbout),
	)

	return fyne.NewMainMenu(fileMenu, editMenu, helpMenu)
}

func (mh *MenuHandler) ShowOpenDialog() {
	mh.logger.Debug("Opening file dialog for image selection")

	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mh.showError("File Dialog Error", err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		if mh.onOpenPath != nil {
			mh.onOpenPath(path)
		}
	}, mh.window)

	fileDialog.SetFilter(storage.NewExtensionFileFilter(io.SupportedLoadExtensions()))
	fileDialog.Show()
}

func (mh *MenuHandler) ShowSaveDialog() {
	mh.logger.Debug("Opening file dialog for image saving")

	fileDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			mh.showError("File Dialog Error", err)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		// The image is encoded and written by path; the dialog's handle is
		// only used to pick the location.
		writer.Close()

		if mh.onSavePath != nil {
			mh.onSavePath(path)
		}
	}, mh.window)

	fileDialog.SetFileName(defaultSaveName + mh.defaultExt)
	fileDialog.SetFilter(storage.NewExtensionFileFilter(io.SupportedSaveExtensions()))
	fileDialog.Show()
}

func (mh *MenuHandler) showAbout() {
	content := container.NewVBox(
		widget.NewLabel("Image Editor"),
		widget.NewSeparator(),
		widget.NewLabel("Open an image, adjust zoom, brightness and contrast,"),
		widget.NewLabel("apply filters and export the result as JPEG or PNG."),
		widget.NewSeparator(),
		widget.NewLabel("Built with Go, Fyne and OpenCV"),
	)

	aboutDialog := dialog.NewCustom("About", "Close", content, mh.window)
	aboutDialog.Show()
}

func (mh *MenuHandler) showError(title string, err error) {
	mh.logger.WithError(err).Error(title)
	dialog.ShowError(err, mh.window)
}
