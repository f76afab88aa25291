// Scrollable preview of the rendered bitmap
package gui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"
)

// ImageCanvas shows the rendered bitmap at its pixel size inside a scroll
// container, so zooming grows or shrinks the visible image.
type ImageCanvas struct {
	logger *logrus.Logger

	previewImage *canvas.Image
	scroll       *container.Scroll
}

func NewImageCanvas(logger *logrus.Logger) *ImageCanvas {
	ic := &ImageCanvas{logger: logger}
	ic.initializeUI()
	return ic
}

func (ic *ImageCanvas) initializeUI() {
	ic.previewImage = canvas.NewImageFromImage(placeholder())
	ic.previewImage.FillMode = canvas.ImageFillOriginal
	ic.previewImage.ScaleMode = canvas.ImageScalePixels

	ic.scroll = container.NewScroll(container.NewCenter(ic.previewImage))
	ic.scroll.SetMinSize(fyne.NewSize(400, 400))
}

func (ic *ImageCanvas) GetContainer() fyne.CanvasObject {
	return ic.scroll
}

// Update displays mat. The canvas does not take ownership of mat.
func (ic *ImageCanvas) Update(mat gocv.Mat) error {
	img, err := mat.ToImage()
	if err != nil {
		return err
	}

	ic.previewImage.Image = img
	ic.previewImage.Refresh()

	ic.logger.WithFields(logrus.Fields{
		"width":  img.Bounds().Dx(),
		"height": img.Bounds().Dy(),
	}).Debug("Preview updated")
	return nil
}

// Clear shows the empty placeholder.
func (ic *ImageCanvas) Clear() {
	ic.previewImage.Image = placeholder()
	ic.previewImage.Refresh()
}

// Image returns the image currently on display.
func (ic *ImageCanvas) Image() image.Image {
	return ic.previewImage.Image
}

func placeholder() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	return img
}
