package algorithms

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

// patternMat builds a deterministic, non-symmetric 3-channel image.
func patternMat(t *testing.T, rows, cols int) gocv.Mat {
	t.Helper()
	data := make([]byte, rows*cols*3)
	for i := range data {
		data[i] = byte((i*37 + i/7) % 256)
	}
	mat, err := gocv.NewMatFromBytes(rows, cols, gocv.MatTypeCV8UC3, data)
	require.NoError(t, err)
	t.Cleanup(func() { mat.Close() })
	return mat
}

func uniformMat(t *testing.T, rows, cols int, b, g, r float64) gocv.Mat {
	t.Helper()
	mat := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(b, g, r, 0), rows, cols, gocv.MatTypeCV8UC3)
	t.Cleanup(func() { mat.Close() })
	return mat
}

func requireSameBytes(t *testing.T, want, got gocv.Mat) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	require.Equal(t, want.ToBytes(), got.ToBytes())
}
