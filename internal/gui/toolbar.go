// Action buttons
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"image-editor/internal/algorithms"
)

// filterButtons lists the destructive filters in toolbar order.
var filterButtons = []struct {
	name  string
	label string
}{
	{algorithms.Grayscale, "Grayscale"},
	{algorithms.Blur, "Blur"},
	{algorithms.Edges, "Edges"},
	{algorithms.Colormap, "Artistic"},
	{algorithms.Flip, "Flip"},
	{algorithms.Rotate, "Rotate"},
}

type Toolbar struct {
	container *fyne.Container

	openBtn    *widget.Button
	saveBtn    *widget.Button
	resetBtn   *widget.Button
	filterBtns map[string]*widget.Button

	onOpen   func()
	onSave   func()
	onReset  func()
	onFilter func(name string)
}

func NewToolbar() *Toolbar {
	tb := &Toolbar{filterBtns: make(map[string]*widget.Button)}
	tb.initializeUI()
	return tb
}

func (tb *Toolbar) initializeUI() {
	tb.openBtn = widget.NewButtonWithIcon("Open", theme.FolderOpenIcon(), func() {
		if tb.onOpen != nil {
			tb.onOpen()
		}
	})
	tb.openBtn.Importance = widget.HighImportance

	objects := []fyne.CanvasObject{tb.openBtn, widget.NewSeparator()}
	for _, fb := range filterButtons {
		name := fb.name
		btn := widget.NewButton(fb.label, func() {
			if tb.onFilter != nil {
				tb.onFilter(name)
			}
		})
		tb.filterBtns[name] = btn
		objects = append(objects, btn)
	}

	tb.saveBtn = widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), func() {
		if tb.onSave != nil {
			tb.onSave()
		}
	})
	tb.resetBtn = widget.NewButtonWithIcon("Reset", theme.ViewRefreshIcon(), func() {
		if tb.onReset != nil {
			tb.onReset()
		}
	})
	objects = append(objects, widget.NewSeparator(), tb.saveBtn, tb.resetBtn)

	tb.container = container.NewHBox(objects...)
	tb.Disable()
}

func (tb *Toolbar) GetContainer() fyne.CanvasObject {
	return tb.container
}

func (tb *Toolbar) SetCallbacks(onOpen, onSave, onReset func(), onFilter func(string)) {
	tb.onOpen = onOpen
	tb.onSave = onSave
	tb.onReset = onReset
	tb.onFilter = onFilter
}

// Enable turns on every button that needs a loaded image.
func (tb *Toolbar) Enable() {
	tb.saveBtn.Enable()
	tb.resetBtn.Enable()
	for _, btn := range tb.filterBtns {
		btn.Enable()
	}
}

// Disable leaves only Open usable.
func (tb *Toolbar) Disable() {
	tb.saveBtn.Disable()
	tb.resetBtn.Disable()
	for _, btn := range tb.filterBtns {
		btn.Disable()
	}
}

// FilterButton returns the button bound to the named filter.
func (tb *Toolbar) FilterButton(name string) *widget.Button {
	return tb.filterBtns[name]
}
