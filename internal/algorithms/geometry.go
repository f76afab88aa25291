// Geometric transforms
package algorithms

import (
	"fmt"
	"image"
	"math"

	"gocv.io/x/gocv"
)

// Rotate90 turns the image 90 degrees clockwise, swapping width and height.
type Rotate90 struct{}

func NewRotate90() *Rotate90 {
	return &Rotate90{}
}

func (r *Rotate90) Apply(input gocv.Mat) (gocv.Mat, error) {
	if err := validateInput(input); err != nil {
		return gocv.NewMat(), err
	}

	output := gocv.NewMat()
	gocv.Rotate(input, &output, gocv.Rotate90Clockwise)
	if output.Empty() {
		output.Close()
		return gocv.NewMat(), fmt.Errorf("rotation produced empty image")
	}

	return output, nil
}

func (r *Rotate90) GetName() string {
	return "Rotate"
}

func (r *Rotate90) GetDescription() string {
	return "Rotate 90 degrees clockwise"
}

// FlipHorizontal mirrors the image left to right.
type FlipHorizontal struct{}

func NewFlipHorizontal() *FlipHorizontal {
	return &FlipHorizontal{}
}

func (f *FlipHorizontal) Apply(input gocv.Mat) (gocv.Mat, error) {
	if err := validateInput(input); err != nil {
		return gocv.NewMat(), err
	}

	// flipCode 1 flips around the vertical axis.
	output := gocv.NewMat()
	gocv.Flip(input, &output, 1)
	if output.Empty() {
		output.Close()
		return gocv.NewMat(), fmt.Errorf("flip produced empty image")
	}

	return output, nil
}

func (f *FlipHorizontal) GetName() string {
	return "Flip"
}

func (f *FlipHorizontal) GetDescription() string {
	return "Mirror left to right"
}

// Resize scales input to exactly width x height with linear interpolation.
func Resize(input gocv.Mat, width, height int) (gocv.Mat, error) {
	if input.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}
	if width <= 0 || height <= 0 {
		return gocv.NewMat(), fmt.Errorf("invalid target size: %dx%d", width, height)
	}
	if input.Cols() == width && input.Rows() == height {
		return input.Clone(), nil
	}

	output := gocv.NewMat()
	err := gocv.Resize(input, &output, image.Point{X: width, Y: height}, 0, 0, gocv.InterpolationLinear)
	if err != nil {
		output.Close()
		return gocv.NewMat(), fmt.Errorf("resize failed: %w", err)
	}

	return output, nil
}

// Scale resizes input by factor, keeping at least one pixel per side.
func Scale(input gocv.Mat, factor float64) (gocv.Mat, error) {
	if input.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return gocv.NewMat(), fmt.Errorf("invalid scale factor: %v", factor)
	}
	if factor == 1.0 {
		return input.Clone(), nil
	}

	width := int(math.Max(1, math.Round(float64(input.Cols())*factor)))
	height := int(math.Max(1, math.Round(float64(input.Rows())*factor)))
	return Resize(input, width, height)
}
