// Image loading and saving
package io

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultJPEGQuality matches the OpenCV default used by IMWrite.
const DefaultJPEGQuality = 95

var (
	loadExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif", ".tif", ".tiff", ".webp"}
	saveExtensions = []string{".jpg", ".jpeg", ".png"}
)

// ImageLoader handles image file operations
type ImageLoader struct {
	logger      *logrus.Logger
	defaultExt  string
	jpegQuality int
}

// NewImageLoader creates a loader. defaultExt is appended to save paths that
// carry no extension; an empty value means ".jpg".
func NewImageLoader(logger *logrus.Logger, defaultExt string, jpegQuality int) *ImageLoader {
	if defaultExt == "" {
		defaultExt = ".jpg"
	}
	if jpegQuality <= 0 || jpegQuality > 100 {
		jpegQuality = DefaultJPEGQuality
	}
	return &ImageLoader{
		logger:      logger,
		defaultExt:  strings.ToLower(defaultExt),
		jpegQuality: jpegQuality,
	}
}

// LoadImage decodes the file at path into a 3-channel 8-bit Mat. The caller
// owns the returned Mat.
func (il *ImageLoader) LoadImage(path string) (gocv.Mat, error) {
	il.logger.WithField("path", path).Debug("Loading image")

	data, err := os.ReadFile(path)
	if err != nil {
		return gocv.NewMat(), &DecodeError{Path: path, Err: err}
	}

	mat, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil || mat.Empty() {
		if err == nil {
			mat.Close()
		}
		il.logger.WithField("path", path).Debug("OpenCV could not decode image, trying Go decoders")

		mat, err = decodeWithGo(data)
		if err != nil {
			return gocv.NewMat(), &DecodeError{Path: path, Err: err}
		}
	}

	if mat.Channels() != 3 {
		converted, err := toBGR(mat)
		mat.Close()
		if err != nil {
			return gocv.NewMat(), &DecodeError{Path: path, Err: err}
		}
		mat = converted
	}

	il.logger.WithFields(logrus.Fields{
		"path":     path,
		"width":    mat.Cols(),
		"height":   mat.Rows(),
		"channels": mat.Channels(),
	}).Info("Image loaded successfully")

	return mat, nil
}

// SaveImage encodes mat by the extension of path and writes it to disk. A
// path without extension gets the loader's default extension. The resolved
// path is returned.
func (il *ImageLoader) SaveImage(mat gocv.Mat, path string) (string, error) {
	path = il.ResolveSavePath(path)
	il.logger.WithField("path", path).Debug("Saving image")

	if mat.Empty() {
		return path, &EncodeError{Path: path, Err: fmt.Errorf("cannot save empty image")}
	}

	if !IsSupportedSaveFormat(path) {
		return path, &EncodeError{Path: path, Err: ErrUnsupportedFormat}
	}

	var (
		buf *gocv.NativeByteBuffer
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		buf, err = gocv.IMEncode(gocv.PNGFileExt, mat)
	default:
		buf, err = gocv.IMEncodeWithParams(gocv.JPEGFileExt, mat, []int{int(gocv.IMWriteJpegQuality), il.jpegQuality})
	}
	if err != nil {
		return path, &EncodeError{Path: path, Err: err}
	}
	defer buf.Close()

	if err := os.WriteFile(path, buf.GetBytes(), 0o644); err != nil {
		return path, &IOError{Op: "write", Path: path, Err: err}
	}

	il.logger.WithFields(logrus.Fields{
		"path":     path,
		"width":    mat.Cols(),
		"height":   mat.Rows(),
		"channels": mat.Channels(),
	}).Info("Image saved successfully")

	return path, nil
}

// ResolveSavePath appends the default extension when path has none.
func (il *ImageLoader) ResolveSavePath(path string) string {
	if filepath.Ext(path) == "" {
		return path + il.defaultExt
	}
	return path
}

// DefaultExtension returns the extension appended to bare save paths.
func (il *ImageLoader) DefaultExtension() string {
	return il.defaultExt
}

// IsSupportedSaveFormat reports whether path names a format SaveImage can write.
func IsSupportedSaveFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range saveExtensions {
		if ext == format {
			return true
		}
	}
	return false
}

// SupportedLoadExtensions lists the extensions offered by the open dialog.
func SupportedLoadExtensions() []string {
	return append([]string(nil), loadExtensions...)
}

// SupportedSaveExtensions lists the extensions offered by the save dialog.
func SupportedSaveExtensions() []string {
	return append([]string(nil), saveExtensions...)
}

func decodeWithGo(data []byte) (gocv.Mat, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}

	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("convert %s image: %w", format, err)
	}
	if mat.Empty() {
		return mat, fmt.Errorf("convert %s image: empty result", format)
	}
	return mat, nil
}

func toBGR(mat gocv.Mat) (gocv.Mat, error) {
	out := gocv.NewMat()
	var code gocv.ColorConversionCode
	switch mat.Channels() {
	case 1:
		code = gocv.ColorGrayToBGR
	case 4:
		code = gocv.ColorBGRAToBGR
	default:
		out.Close()
		return gocv.NewMat(), fmt.Errorf("unsupported number of channels: %d", mat.Channels())
	}
	if err := gocv.CvtColor(mat, &out, code); err != nil {
		out.Close()
		return gocv.NewMat(), err
	}
	return out, nil
}
