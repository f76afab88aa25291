// Original and current bitmap storage
package core

import (
	"fmt"
	"path/filepath"
	"strings"

	"gocv.io/x/gocv"
)

// ImageData owns the original bitmap of the last load and the current bitmap
// the destructive filters have been applied to. It is used from the UI
// goroutine only.
type ImageData struct {
	original gocv.Mat
	current  gocv.Mat
	hasImage bool
	filepath string
	metadata ImageMetadata
}

// ImageMetadata contains image information
type ImageMetadata struct {
	Width    int
	Height   int
	Channels int
	Format   string
}

// NewImageData creates an empty image store.
func NewImageData() *ImageData {
	return &ImageData{
		original: gocv.NewMat(),
		current:  gocv.NewMat(),
	}
}

// SetOriginal replaces both bitmaps with clones of mat.
func (img *ImageData) SetOriginal(mat gocv.Mat, path string) error {
	if err := ValidateImage(mat); err != nil {
		return err
	}

	img.original.Close()
	img.current.Close()

	img.original = mat.Clone()
	img.current = mat.Clone()
	img.hasImage = true
	img.filepath = path
	img.metadata = ImageMetadata{
		Width:    mat.Cols(),
		Height:   mat.Rows(),
		Channels: mat.Channels(),
		Format:   getFormatFromPath(path),
	}

	return nil
}

// SetCurrent takes ownership of mat as the new current bitmap. On error the
// caller keeps ownership.
func (img *ImageData) SetCurrent(mat gocv.Mat) error {
	if !img.hasImage {
		return ErrNoImageLoaded
	}
	if err := ValidateImage(mat); err != nil {
		return err
	}

	img.current.Close()
	img.current = mat
	return nil
}

// GetOriginal returns a copy of the original image
func (img *ImageData) GetOriginal() gocv.Mat {
	if !img.hasImage {
		return gocv.NewMat()
	}
	return img.original.Clone()
}

// GetCurrent returns a copy of the current image
func (img *ImageData) GetCurrent() gocv.Mat {
	if !img.hasImage {
		return gocv.NewMat()
	}
	return img.current.Clone()
}

// currentRef returns the stored current Mat without cloning. Callers must not
// close or retain it.
func (img *ImageData) currentRef() gocv.Mat {
	return img.current
}

func (img *ImageData) HasImage() bool {
	return img.hasImage
}

func (img *ImageData) GetMetadata() ImageMetadata {
	return img.metadata
}

func (img *ImageData) GetFilepath() string {
	return img.filepath
}

// ResetToOriginal resets the current image to a copy of the original.
func (img *ImageData) ResetToOriginal() error {
	if !img.hasImage {
		return ErrNoImageLoaded
	}

	img.current.Close()
	img.current = img.original.Clone()
	return nil
}

// Clear releases both bitmaps and returns to the empty state.
func (img *ImageData) Clear() {
	img.original.Close()
	img.current.Close()

	img.original = gocv.NewMat()
	img.current = gocv.NewMat()
	img.hasImage = false
	img.filepath = ""
	img.metadata = ImageMetadata{}
}

// Close releases all resources
func (img *ImageData) Close() {
	img.Clear()
}

func getFormatFromPath(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return "unknown"
	}
	return ext
}

// maxDimension bounds either side of a bitmap.
const maxDimension = 16384

// ValidateImage checks that mat is a non-empty 3-channel 8-bit bitmap.
func ValidateImage(mat gocv.Mat) error {
	if mat.Empty() {
		return fmt.Errorf("image is empty")
	}

	if mat.Cols() <= 0 || mat.Rows() <= 0 {
		return fmt.Errorf("invalid dimensions: %dx%d", mat.Cols(), mat.Rows())
	}

	if mat.Type() != gocv.MatTypeCV8UC3 {
		return fmt.Errorf("unsupported image type: %d channels", mat.Channels())
	}

	if mat.Cols() > maxDimension || mat.Rows() > maxDimension {
		return fmt.Errorf("image too large: %dx%d (max: %d)", mat.Cols(), mat.Rows(), maxDimension)
	}

	return nil
}
