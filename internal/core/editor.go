// Editor: image store, adjustment pipeline and render
package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"image-editor/internal/algorithms"
)

// ImageCodec reads and writes bitmaps. LoadImage returns a 3-channel 8-bit
// Mat owned by the caller; SaveImage returns the path actually written.
type ImageCodec interface {
	LoadImage(path string) (gocv.Mat, error)
	SaveImage(mat gocv.Mat, path string) (string, error)
}

// Editor is the single owner of the loaded image and its adjustment state.
// Every operation runs to completion on the caller's goroutine; the UI calls
// it from its event loop only.
//
// The displayed bitmap is always Scale(Contrast(Brightness(current))), where
// current is the original with the destructive filters applied in order.
// Brightness and contrast are recomputed from current on every render, so
// moving a slider never compounds earlier moves.
type Editor struct {
	imageData   *ImageData
	adjustments Adjustments
	applied     []string

	config  Config
	codec   ImageCodec
	filters map[string]algorithms.Algorithm
	logger  *logrus.Logger

	onChange func()
}

// NewEditor creates an editor in the NoImage state.
func NewEditor(codec ImageCodec, config Config, logger *logrus.Logger) *Editor {
	filters := make(map[string]algorithms.Algorithm)
	for _, name := range algorithms.Names() {
		algorithm, _ := algorithms.Get(name)
		filters[name] = algorithm
	}
	filters[algorithms.Blur] = algorithms.NewGaussianFilter(config.BlurRadius)

	return &Editor{
		imageData:   NewImageData(),
		adjustments: IdentityAdjustments(),
		config:      config,
		codec:       codec,
		filters:     filters,
		logger:      logger,
	}
}

// SetCallbacks registers the observer invoked after every successful mutation.
func (e *Editor) SetCallbacks(onChange func()) {
	e.onChange = onChange
}

func (e *Editor) notify() {
	if e.onChange != nil {
		e.onChange()
	}
}

func (e *Editor) HasImage() bool {
	return e.imageData.HasImage()
}

func (e *Editor) Adjustments() Adjustments {
	return e.adjustments
}

// AppliedFilters lists the destructive filters applied since the last load
// or reset, oldest first.
func (e *Editor) AppliedFilters() []string {
	return append([]string(nil), e.applied...)
}

// Original returns a copy of the original bitmap; the caller must close it.
func (e *Editor) Original() gocv.Mat {
	return e.imageData.GetOriginal()
}

// Current returns a copy of the filtered, unadjusted bitmap; the caller must
// close it.
func (e *Editor) Current() gocv.Mat {
	return e.imageData.GetCurrent()
}

func (e *Editor) Metadata() ImageMetadata {
	return e.imageData.GetMetadata()
}

func (e *Editor) Filepath() string {
	return e.imageData.GetFilepath()
}

func (e *Editor) Config() Config {
	return e.config
}

// Load decodes path, fits it to the canvas and makes it both the original
// and the current bitmap. Adjustments return to identity. On failure the
// previous image and adjustments are kept.
func (e *Editor) Load(path string) error {
	start := time.Now()

	decoded, err := e.codec.LoadImage(path)
	if err != nil {
		e.logger.WithError(err).WithField("path", path).Error("Failed to load image")
		return err
	}
	defer decoded.Close()

	fitted, err := algorithms.Resize(decoded, e.config.CanvasSize, e.config.CanvasSize)
	if err != nil {
		return fmt.Errorf("failed to fit image to canvas: %w", err)
	}
	defer fitted.Close()

	if err := e.imageData.SetOriginal(fitted, path); err != nil {
		return fmt.Errorf("invalid image: %w", err)
	}
	e.adjustments = IdentityAdjustments()
	e.applied = nil

	e.logger.WithFields(logrus.Fields{
		"path":          path,
		"source_width":  decoded.Cols(),
		"source_height": decoded.Rows(),
		"canvas":        e.config.CanvasSize,
		"duration":      time.Since(start),
	}).Info("Image ready for editing")

	e.notify()
	return nil
}

// Reset restores the current bitmap from the original and the adjustments
// to identity.
func (e *Editor) Reset() error {
	if err := e.imageData.ResetToOriginal(); err != nil {
		return err
	}
	e.adjustments = IdentityAdjustments()
	e.applied = nil

	e.logger.Info("Reset to original image")
	e.notify()
	return nil
}

// Save encodes the export render to path and returns the path written.
// Zoom is a view setting and is not applied to the saved image.
func (e *Editor) Save(path string) (string, error) {
	rendered, err := e.RenderForExport()
	if err != nil {
		return path, err
	}
	defer rendered.Close()

	written, err := e.codec.SaveImage(rendered, path)
	if err != nil {
		e.logger.WithError(err).WithField("path", written).Error("Failed to save image")
		return written, err
	}
	return written, nil
}

// SetZoom stores the display scale, clamped to the configured range.
func (e *Editor) SetZoom(f float64) error {
	return e.setFactor("zoom", f, &e.adjustments.Zoom)
}

// SetBrightness stores the brightness factor, clamped to the configured range.
func (e *Editor) SetBrightness(f float64) error {
	return e.setFactor("brightness", f, &e.adjustments.Brightness)
}

// SetContrast stores the contrast factor, clamped to the configured range.
func (e *Editor) SetContrast(f float64) error {
	return e.setFactor("contrast", f, &e.adjustments.Contrast)
}

func (e *Editor) setFactor(name string, f float64, target *float64) error {
	if !e.HasImage() {
		return ErrNoImageLoaded
	}

	clamped, err := clampFactor(f, e.config.MinFactor, e.config.MaxFactor)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	*target = clamped
	e.logger.WithFields(logrus.Fields{
		"adjustment": name,
		"factor":     clamped,
	}).Debug("Adjustment changed")

	e.notify()
	return nil
}

func (e *Editor) ApplyGrayscale() error { return e.ApplyFilter(algorithms.Grayscale) }
func (e *Editor) ApplyBlur() error      { return e.ApplyFilter(algorithms.Blur) }
func (e *Editor) ApplyEdges() error     { return e.ApplyFilter(algorithms.Edges) }
func (e *Editor) ApplyColormap() error  { return e.ApplyFilter(algorithms.Colormap) }
func (e *Editor) Rotate90() error       { return e.ApplyFilter(algorithms.Rotate) }
func (e *Editor) FlipHorizontal() error { return e.ApplyFilter(algorithms.Flip) }

// ApplyFilter runs the named destructive filter on the current bitmap and
// replaces it with the result.
func (e *Editor) ApplyFilter(name string) error {
	if !e.HasImage() {
		return ErrNoImageLoaded
	}

	filter, ok := e.filters[name]
	if !ok {
		return fmt.Errorf("unknown filter: %s", name)
	}

	start := time.Now()
	output, err := filter.Apply(e.imageData.currentRef())
	if err != nil {
		e.logger.WithError(err).WithField("filter", name).Error("Filter failed")
		return fmt.Errorf("%s: %w", filter.GetName(), err)
	}

	if err := e.imageData.SetCurrent(output); err != nil {
		output.Close()
		return fmt.Errorf("%s: %w", filter.GetName(), err)
	}
	e.applied = append(e.applied, name)

	e.logger.WithFields(logrus.Fields{
		"filter":   name,
		"width":    output.Cols(),
		"height":   output.Rows(),
		"duration": time.Since(start),
	}).Debug("Filter applied")

	e.notify()
	return nil
}

// Render returns the preview bitmap: brightness, then contrast, then zoom.
// The caller must close the result.
func (e *Editor) Render() (gocv.Mat, error) {
	adjusted, err := e.RenderForExport()
	if err != nil {
		return gocv.NewMat(), err
	}
	if e.adjustments.Zoom == 1.0 {
		return adjusted, nil
	}
	defer adjusted.Close()

	return algorithms.Scale(adjusted, e.adjustments.Zoom)
}

// RenderForExport returns brightness and contrast applied to the current
// bitmap, without zoom. The caller must close the result.
func (e *Editor) RenderForExport() (gocv.Mat, error) {
	if !e.HasImage() {
		return gocv.NewMat(), ErrNoImageLoaded
	}

	brightened, err := algorithms.Brightness(e.imageData.currentRef(), e.adjustments.Brightness)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("brightness: %w", err)
	}
	defer brightened.Close()

	contrasted, err := algorithms.Contrast(brightened, e.adjustments.Contrast)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("contrast: %w", err)
	}
	return contrasted, nil
}

// IsNoImage reports whether err signals an operation attempted before load.
func IsNoImage(err error) bool {
	return errors.Is(err, ErrNoImageLoaded)
}

// Close releases the stored bitmaps.
func (e *Editor) Close() {
	e.imageData.Close()
	e.applied = nil
	e.adjustments = IdentityAdjustments()
}
