package core

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

// fakeCodec serves a fixed bitmap, or loadErr when set.
type fakeCodec struct {
	image   gocv.Mat
	loadErr error
	saved   []string
}

func (f *fakeCodec) LoadImage(path string) (gocv.Mat, error) {
	if f.loadErr != nil {
		return gocv.NewMat(), f.loadErr
	}
	return f.image.Clone(), nil
}

func (f *fakeCodec) SaveImage(mat gocv.Mat, path string) (string, error) {
	if mat.Empty() {
		return path, errors.New("empty")
	}
	f.saved = append(f.saved, path)
	return path, nil
}

func newTestLogger() *logrus.Logger {
	logger, _ := logtest.NewNullLogger()
	return logger
}

func newTestEditor(t *testing.T, img gocv.Mat) (*Editor, *fakeCodec) {
	t.Helper()
	codec := &fakeCodec{image: img}
	editor := NewEditor(codec, DefaultConfig(), newTestLogger())
	t.Cleanup(editor.Close)
	return editor, codec
}

func patternMat(t *testing.T, rows, cols int) gocv.Mat {
	t.Helper()
	data := make([]byte, rows*cols*3)
	for i := range data {
		data[i] = byte((i*13 + i/5) % 256)
	}
	mat, err := gocv.NewMatFromBytes(rows, cols, gocv.MatTypeCV8UC3, data)
	require.NoError(t, err)
	t.Cleanup(func() { mat.Close() })
	return mat
}

func whiteMat(t *testing.T, rows, cols int) gocv.Mat {
	t.Helper()
	mat := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 255, 255, 0), rows, cols, gocv.MatTypeCV8UC3)
	t.Cleanup(func() { mat.Close() })
	return mat
}

// bytesOf returns the pixels of m and closes it.
func bytesOf(m gocv.Mat) []byte {
	defer m.Close()
	return m.ToBytes()
}

// gradientMat is a smooth image that survives lossy encoding well.
func gradientMat(t *testing.T, rows, cols int) gocv.Mat {
	t.Helper()
	data := make([]byte, 0, rows*cols*3)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			data = append(data, byte(x*255/cols), byte(y*255/rows), byte((x+y)*255/(rows+cols)))
		}
	}
	mat, err := gocv.NewMatFromBytes(rows, cols, gocv.MatTypeCV8UC3, data)
	require.NoError(t, err)
	t.Cleanup(func() { mat.Close() })
	return mat
}
