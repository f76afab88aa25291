// Zoom, brightness and contrast sliders
package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"image-editor/internal/core"
)

const sliderStep = 0.01

type AdjustmentPanel struct {
	container *fyne.Container

	zoomSlider       *widget.Slider
	brightnessSlider *widget.Slider
	contrastSlider   *widget.Slider
	zoomValue        *widget.Label
	brightnessValue  *widget.Label
	contrastValue    *widget.Label

	// syncing suppresses callbacks while values are set programmatically.
	syncing bool

	onZoom       func(float64)
	onBrightness func(float64)
	onContrast   func(float64)
}

func NewAdjustmentPanel(min, max float64) *AdjustmentPanel {
	ap := &AdjustmentPanel{}
	ap.initializeUI(min, max)
	return ap
}

func (ap *AdjustmentPanel) initializeUI(min, max float64) {
	ap.zoomSlider, ap.zoomValue = ap.newSlider(min, max, func(v float64) {
		if ap.onZoom != nil {
			ap.onZoom(v)
		}
	})
	ap.brightnessSlider, ap.brightnessValue = ap.newSlider(min, max, func(v float64) {
		if ap.onBrightness != nil {
			ap.onBrightness(v)
		}
	})
	ap.contrastSlider, ap.contrastValue = ap.newSlider(min, max, func(v float64) {
		if ap.onContrast != nil {
			ap.onContrast(v)
		}
	})

	ap.container = container.NewGridWithColumns(3,
		labelled("Zoom", ap.zoomSlider, ap.zoomValue),
		labelled("Brightness", ap.brightnessSlider, ap.brightnessValue),
		labelled("Contrast", ap.contrastSlider, ap.contrastValue),
	)
	ap.Disable()
}

func (ap *AdjustmentPanel) newSlider(min, max float64, changed func(float64)) (*widget.Slider, *widget.Label) {
	value := widget.NewLabel(formatFactor(1.0))
	slider := widget.NewSlider(min, max)
	slider.Step = sliderStep
	slider.Value = 1.0
	slider.OnChanged = func(v float64) {
		value.SetText(formatFactor(v))
		if ap.syncing {
			return
		}
		changed(v)
	}
	return slider, value
}

func labelled(name string, slider *widget.Slider, value *widget.Label) fyne.CanvasObject {
	return container.NewBorder(nil, nil, widget.NewLabel(name), value, slider)
}

func formatFactor(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func (ap *AdjustmentPanel) GetContainer() fyne.CanvasObject {
	return ap.container
}

func (ap *AdjustmentPanel) SetCallbacks(onZoom, onBrightness, onContrast func(float64)) {
	ap.onZoom = onZoom
	ap.onBrightness = onBrightness
	ap.onContrast = onContrast
}

// SetValues moves the sliders to adj without invoking the callbacks.
func (ap *AdjustmentPanel) SetValues(adj core.Adjustments) {
	ap.syncing = true
	defer func() { ap.syncing = false }()

	ap.zoomSlider.SetValue(adj.Zoom)
	ap.brightnessSlider.SetValue(adj.Brightness)
	ap.contrastSlider.SetValue(adj.Contrast)
	ap.zoomValue.SetText(formatFactor(adj.Zoom))
	ap.brightnessValue.SetText(formatFactor(adj.Brightness))
	ap.contrastValue.SetText(formatFactor(adj.Contrast))
}

func (ap *AdjustmentPanel) Enable() {
	ap.zoomSlider.Enable()
	ap.brightnessSlider.Enable()
	ap.contrastSlider.Enable()
}

func (ap *AdjustmentPanel) Disable() {
	ap.zoomSlider.Disable()
	ap.brightnessSlider.Disable()
	ap.contrastSlider.Disable()
}
