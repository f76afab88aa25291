package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func flat(t *testing.T, rows, cols int, v float64) gocv.Mat {
	t.Helper()
	mat := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(v, v, v, 0), rows, cols, gocv.MatTypeCV8UC3)
	t.Cleanup(func() { mat.Close() })
	return mat
}

func TestIdenticalImages(t *testing.T) {
	a := flat(t, 10, 10, 42)
	b := flat(t, 10, 10, 42)

	results := NewEvaluator().CalculateAll(a, b)
	assert.Equal(t, 0.0, results["mse"])
	assert.Equal(t, 0.0, results["max_diff"])
	assert.True(t, math.IsInf(results["psnr"], 1))
}

func TestKnownDifference(t *testing.T) {
	a := flat(t, 10, 10, 10)
	b := flat(t, 10, 10, 20)
	e := NewEvaluator()

	mse, err := e.Calculate("mse", a, b)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, mse, 1e-9)

	psnr, err := e.CalculatePSNR(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 20*math.Log10(25.5), psnr, 1e-9)

	maxDiff, err := e.Calculate("max_diff", a, b)
	require.NoError(t, err)
	assert.Equal(t, 10.0, maxDiff)
}

func TestMismatchedImages(t *testing.T) {
	a := flat(t, 10, 10, 0)
	b := flat(t, 10, 12, 0)
	empty := gocv.NewMat()
	defer empty.Close()

	e := NewEvaluator()
	for _, name := range e.Names() {
		t.Run(name, func(t *testing.T) {
			_, err := e.Calculate(name, a, b)
			assert.Error(t, err)
			_, err = e.Calculate(name, a, empty)
			assert.Error(t, err)
		})
	}

	assert.Empty(t, e.CalculateAll(a, b))
	_, err := e.Calculate("ssim", a, a)
	assert.Error(t, err)
}

func TestMetricDirection(t *testing.T) {
	assert.True(t, NewPSNR().IsHigherBetter())
	assert.False(t, NewMSE().IsHigherBetter())
	assert.False(t, NewMaxDiff().IsHigherBetter())
	assert.Equal(t, []string{"max_diff", "mse", "psnr"}, NewEvaluator().Names())
}
