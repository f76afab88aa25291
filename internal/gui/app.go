// Main application window
package gui

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"image-editor/internal/core"
	"image-editor/internal/io"
	"image-editor/internal/metrics"
)

// Application wires the editor to the window. The editor is the only state
// holder; widgets are redrawn from it after every change.
type Application struct {
	app    fyne.App
	window fyne.Window
	logger *logrus.Logger
	config core.Config

	// Core components
	editor    *core.Editor
	loader    *io.ImageLoader
	evaluator *metrics.Evaluator

	// GUI components
	canvas      *ImageCanvas
	toolbar     *Toolbar
	adjustments *AdjustmentPanel
	menuHandler *MenuHandler
	status      *widget.Label
}

func NewApplication(app fyne.App, logger *logrus.Logger, config core.Config) *Application {
	window := app.NewWindow("Image Editor")
	window.Resize(fyne.NewSize(config.WindowWidth, config.WindowHeight))
	window.CenterOnScreen()

	a := &Application{
		app:    app,
		window: window,
		logger: logger,
		config: config,
	}

	a.initializeCore()
	a.initializeGUI()
	a.setupLayout()
	a.setupCallbacks()

	return a
}

func (a *Application) initializeCore() {
	a.loader = io.NewImageLoader(a.logger, a.config.DefaultSaveExt, a.config.JPEGQuality)
	a.editor = core.NewEditor(a.loader, a.config, a.logger)
	a.evaluator = metrics.NewEvaluator()
}

func (a *Application) initializeGUI() {
	a.canvas = NewImageCanvas(a.logger)
	a.toolbar = NewToolbar()
	a.adjustments = NewAdjustmentPanel(a.config.MinFactor, a.config.MaxFactor)
	a.menuHandler = NewMenuHandler(a.window, a.loader.DefaultExtension(), a.logger)
	a.status = widget.NewLabel("Open an image to start editing")
}

func (a *Application) setupLayout() {
	controls := container.NewVBox(
		a.toolbar.GetContainer(),
		a.adjustments.GetContainer(),
		widget.NewSeparator(),
		a.status,
	)

	a.window.SetMainMenu(a.menuHandler.GetMainMenu())
	a.window.SetContent(container.NewBorder(nil, controls, nil, nil, a.canvas.GetContainer()))
}

func (a *Application) setupCallbacks() {
	a.editor.SetCallbacks(a.refresh)

	a.menuHandler.SetCallbacks(
		func(path string) { _ = a.LoadImageFromPath(path) },
		func(path string) { _, _ = a.SaveImageToPath(path) },
		a.reset,
	)

	a.toolbar.SetCallbacks(
		a.menuHandler.ShowOpenDialog,
		a.menuHandler.ShowSaveDialog,
		a.reset,
		func(name string) {
			a.run("Filter Failed", func() error { return a.editor.ApplyFilter(name) })
		},
	)

	a.adjustments.SetCallbacks(
		func(v float64) { a.run("Zoom Failed", func() error { return a.editor.SetZoom(v) }) },
		func(v float64) { a.run("Brightness Failed", func() error { return a.editor.SetBrightness(v) }) },
		func(v float64) { a.run("Contrast Failed", func() error { return a.editor.SetContrast(v) }) },
	)
}

// LoadImageFromPath loads path into the editor and resets the controls.
func (a *Application) LoadImageFromPath(path string) error {
	var loadErr error
	a.run("Failed to Load Image", func() error {
		loadErr = a.editor.Load(path)
		return loadErr
	})
	if loadErr != nil {
		return loadErr
	}

	a.adjustments.SetValues(a.editor.Adjustments())
	a.adjustments.Enable()
	a.toolbar.Enable()
	return nil
}

// SaveImageToPath exports the edited image and returns the path written.
func (a *Application) SaveImageToPath(path string) (string, error) {
	var (
		written string
		saveErr error
	)
	a.run("Failed to Save Image", func() error {
		written, saveErr = a.editor.Save(path)
		return saveErr
	})
	if saveErr != nil {
		return written, saveErr
	}

	// The save dialog creates the file it was given; drop it when the
	// default extension redirected the write elsewhere.
	if written != path {
		if info, err := os.Stat(path); err == nil && info.Size() == 0 {
			os.Remove(path)
		}
	}

	a.setStatus(fmt.Sprintf("Saved: %s", written))
	a.logger.WithField("path", written).Info("Image exported")
	return written, nil
}

func (a *Application) reset() {
	a.run("Reset Failed", a.editor.Reset)
	a.adjustments.SetValues(a.editor.Adjustments())
}

// run is the error boundary for every user action. Failures are logged and
// reported; none of them is fatal.
func (a *Application) run(title string, op func() error) {
	err := op()
	if err == nil {
		return
	}
	if core.IsNoImage(err) {
		a.setStatus("Open an image first")
		return
	}
	a.showError(title, err)
}

// refresh redraws the preview and status line from the editor state.
func (a *Application) refresh() {
	if !a.editor.HasImage() {
		a.canvas.Clear()
		return
	}

	rendered, err := a.editor.Render()
	if err != nil {
		a.showError("Render Failed", err)
		return
	}
	defer rendered.Close()

	if err := a.canvas.Update(rendered); err != nil {
		a.showError("Render Failed", err)
		return
	}

	a.setStatus(a.describe())
}

func (a *Application) describe() string {
	meta := a.editor.Metadata()
	parts := []string{
		fmt.Sprintf("%s (%dx%d)", filepath.Base(a.editor.Filepath()), meta.Width, meta.Height),
		a.editor.Adjustments().String(),
	}

	if applied := a.editor.AppliedFilters(); len(applied) > 0 {
		parts = append(parts, "filters: "+strings.Join(applied, ", "))
	}

	if psnr, ok := a.psnrAgainstOriginal(); ok {
		if math.IsInf(psnr, 1) {
			parts = append(parts, "unchanged")
		} else {
			parts = append(parts, fmt.Sprintf("PSNR %.1f dB", psnr))
		}
	}

	return strings.Join(parts, " | ")
}

func (a *Application) psnrAgainstOriginal() (float64, bool) {
	original := a.editor.Original()
	defer original.Close()

	exported, err := a.editor.RenderForExport()
	if err != nil {
		return 0, false
	}
	defer exported.Close()

	psnr, err := a.evaluator.CalculatePSNR(original, exported)
	if err != nil {
		return 0, false
	}
	return psnr, true
}

func (a *Application) setStatus(message string) {
	a.status.SetText(message)
}

func (a *Application) showError(title string, err error) {
	a.logger.WithError(err).Error(title)

	var decodeErr *io.DecodeError
	if errors.As(err, &decodeErr) {
		err = fmt.Errorf("could not open %s: %w", filepath.Base(decodeErr.Path), decodeErr.Err)
	}

	dialog.ShowError(err, a.window)
	a.setStatus(fmt.Sprintf("Error: %s", err.Error()))
}

// Editor exposes the editor for callers that drive the application directly.
func (a *Application) Editor() *core.Editor {
	return a.editor
}

func (a *Application) Window() fyne.Window {
	return a.window
}

func (a *Application) ShowAndRun() {
	a.logger.Info("Showing main application window")

	a.window.SetCloseIntercept(func() {
		a.cleanup()
		a.app.Quit()
	})

	a.window.ShowAndRun()
}

func (a *Application) cleanup() {
	a.logger.Info("Cleaning up application resources")
	a.editor.Close()
}
