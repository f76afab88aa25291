package algorithms

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrightness(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		input := patternMat(t, 12, 12)
		out, err := Brightness(input, 1.0)
		require.NoError(t, err)
		defer out.Close()
		requireSameBytes(t, input, out)
	})

	t.Run("darken white", func(t *testing.T) {
		input := uniformMat(t, 12, 12, 255, 255, 255)
		out, err := Brightness(input, 0.5)
		require.NoError(t, err)
		defer out.Close()
		for _, v := range out.ToBytes() {
			require.InDelta(t, 127.5, float64(v), 1)
		}
	})

	t.Run("saturates", func(t *testing.T) {
		input := uniformMat(t, 4, 4, 200, 100, 10)
		out, err := Brightness(input, 2.0)
		require.NoError(t, err)
		defer out.Close()
		assert.Equal(t, [3]uint8{255, 200, 20}, [3]uint8{out.GetUCharAt(0, 0), out.GetUCharAt(0, 1), out.GetUCharAt(0, 2)})
	})

	t.Run("invalid factor", func(t *testing.T) {
		input := uniformMat(t, 4, 4, 1, 1, 1)
		_, err := Brightness(input, math.NaN())
		assert.Error(t, err)
	})
}

func TestContrast(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		input := patternMat(t, 12, 12)
		out, err := Contrast(input, 1.0)
		require.NoError(t, err)
		defer out.Close()
		requireSameBytes(t, input, out)
	})

	t.Run("flat image unchanged", func(t *testing.T) {
		input := uniformMat(t, 8, 8, 100, 100, 100)
		for _, factor := range []float64{0.5, 2.0} {
			out, err := Contrast(input, factor)
			require.NoError(t, err)
			requireSameBytes(t, input, out)
			out.Close()
		}
	})

	t.Run("moves towards and away from mean", func(t *testing.T) {
		// Top half 50, bottom half 150: mean luminance 100.
		input := uniformMat(t, 8, 8, 50, 50, 50)
		for row := 4; row < 8; row++ {
			for col := 0; col < 8*3; col++ {
				input.SetUCharAt(row, col, 150)
			}
		}

		mean, err := MeanLuminance(input)
		require.NoError(t, err)
		assert.InDelta(t, 100, mean, 0.01)

		lower, err := Contrast(input, 0.5)
		require.NoError(t, err)
		defer lower.Close()
		assert.InDelta(t, 75, float64(lower.GetUCharAt(0, 0)), 1)
		assert.InDelta(t, 125, float64(lower.GetUCharAt(7, 0)), 1)

		higher, err := Contrast(input, 2.0)
		require.NoError(t, err)
		defer higher.Close()
		assert.InDelta(t, 0, float64(higher.GetUCharAt(0, 0)), 1)
		assert.InDelta(t, 200, float64(higher.GetUCharAt(7, 0)), 1)
	})
}
