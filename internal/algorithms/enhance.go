// Continuous brightness and contrast enhancement
package algorithms

import (
	"fmt"
	"math"

	"gocv.io/x/gocv"
)

// Brightness blends input with black: every channel is multiplied by factor
// and saturated to [0, 255]. A factor of 1 returns an exact copy.
func Brightness(input gocv.Mat, factor float64) (gocv.Mat, error) {
	if err := validateFactor(input, factor); err != nil {
		return gocv.NewMat(), err
	}
	if factor == 1.0 {
		return input.Clone(), nil
	}

	black := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), input.Rows(), input.Cols(), input.Type())
	defer black.Close()

	return blend(input, black, factor)
}

// Contrast blends input with a flat image at its rounded mean luminance.
// Factors above 1 push channels away from the mean, below 1 towards it.
func Contrast(input gocv.Mat, factor float64) (gocv.Mat, error) {
	if err := validateFactor(input, factor); err != nil {
		return gocv.NewMat(), err
	}
	if factor == 1.0 {
		return input.Clone(), nil
	}

	mean, err := MeanLuminance(input)
	if err != nil {
		return gocv.NewMat(), err
	}
	level := math.Floor(mean + 0.5)

	flat := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(level, level, level, 0), input.Rows(), input.Cols(), input.Type())
	defer flat.Close()

	return blend(input, flat, factor)
}

// MeanLuminance returns the mean of the single-channel luminance of input.
func MeanLuminance(input gocv.Mat) (float64, error) {
	if err := validateInput(input); err != nil {
		return 0, err
	}

	gray := gocv.NewMat()
	defer gray.Close()
	if err := gocv.CvtColor(input, &gray, gocv.ColorBGRToGray); err != nil {
		return 0, fmt.Errorf("luminance conversion failed: %w", err)
	}

	return gray.Mean().Val1, nil
}

// blend computes input*factor + degenerate*(1-factor).
func blend(input, degenerate gocv.Mat, factor float64) (gocv.Mat, error) {
	output := gocv.NewMat()
	gocv.AddWeighted(input, factor, degenerate, 1-factor, 0, &output)
	if output.Empty() {
		output.Close()
		return gocv.NewMat(), fmt.Errorf("blend produced empty image")
	}
	return output, nil
}

func validateFactor(input gocv.Mat, factor float64) error {
	if err := validateInput(input); err != nil {
		return err
	}
	if factor < 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return fmt.Errorf("invalid enhancement factor: %v", factor)
	}
	return nil
}
