// Colour and neighbourhood filters
package algorithms

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// GrayscaleFilter converts to luminance and back to three equal channels.
type GrayscaleFilter struct{}

func NewGrayscaleFilter() *GrayscaleFilter {
	return &GrayscaleFilter{}
}

func (g *GrayscaleFilter) Apply(input gocv.Mat) (gocv.Mat, error) {
	if err := validateInput(input); err != nil {
		return gocv.NewMat(), err
	}

	gray := gocv.NewMat()
	defer gray.Close()
	if err := gocv.CvtColor(input, &gray, gocv.ColorBGRToGray); err != nil {
		return gocv.NewMat(), fmt.Errorf("grayscale conversion failed: %w", err)
	}

	output := gocv.NewMat()
	if err := gocv.CvtColor(gray, &output, gocv.ColorGrayToBGR); err != nil {
		output.Close()
		return gocv.NewMat(), fmt.Errorf("grayscale expansion failed: %w", err)
	}

	return output, nil
}

func (g *GrayscaleFilter) GetName() string {
	return "Grayscale"
}

func (g *GrayscaleFilter) GetDescription() string {
	return "Luminance-only image kept in three channels"
}

// GaussianFilter implements Gaussian blur filter
type GaussianFilter struct {
	radius float64
}

// NewGaussianFilter creates a Gaussian blur whose sigma equals radius. The
// kernel size is derived from sigma by OpenCV.
func NewGaussianFilter(radius float64) *GaussianFilter {
	return &GaussianFilter{radius: radius}
}

func (g *GaussianFilter) Apply(input gocv.Mat) (gocv.Mat, error) {
	if err := validateInput(input); err != nil {
		return gocv.NewMat(), err
	}
	if g.radius <= 0 {
		return input.Clone(), nil
	}

	output := gocv.NewMat()
	err := gocv.GaussianBlur(input, &output, image.Point{X: 0, Y: 0}, g.radius, g.radius, gocv.BorderDefault)
	if err != nil {
		output.Close()
		return gocv.NewMat(), fmt.Errorf("gaussian blur failed: %w", err)
	}

	return output, nil
}

func (g *GaussianFilter) Radius() float64 {
	return g.radius
}

func (g *GaussianFilter) GetName() string {
	return "Blur"
}

func (g *GaussianFilter) GetDescription() string {
	return fmt.Sprintf("Gaussian blur with radius %.1f", g.radius)
}

// edgeKernel is the 3x3 Laplacian-style kernel used for edge detection.
var edgeKernel = [3][3]float32{
	{-1, -1, -1},
	{-1, 8, -1},
	{-1, -1, -1},
}

// EdgeFilter highlights edges with a fixed 3x3 kernel.
type EdgeFilter struct{}

func NewEdgeFilter() *EdgeFilter {
	return &EdgeFilter{}
}

func (e *EdgeFilter) Apply(input gocv.Mat) (gocv.Mat, error) {
	if err := validateInput(input); err != nil {
		return gocv.NewMat(), err
	}

	kernel := gocv.NewMatWithSize(3, 3, gocv.MatTypeCV32F)
	defer kernel.Close()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			kernel.SetFloatAt(row, col, edgeKernel[row][col])
		}
	}

	// Output depth matches input, so negative responses saturate to zero.
	output := gocv.NewMat()
	err := gocv.Filter2D(input, &output, -1, kernel, image.Point{X: -1, Y: -1}, 0, gocv.BorderReplicate)
	if err != nil {
		output.Close()
		return gocv.NewMat(), fmt.Errorf("edge detection failed: %w", err)
	}

	return output, nil
}

func (e *EdgeFilter) GetName() string {
	return "Edges"
}

func (e *EdgeFilter) GetDescription() string {
	return "Edge detection with a 3x3 kernel"
}

// ColormapFilter maps luminance through a pseudocolour lookup table.
type ColormapFilter struct {
	colormap gocv.ColormapTypes
}

func NewColormapFilter(colormap gocv.ColormapTypes) *ColormapFilter {
	return &ColormapFilter{colormap: colormap}
}

func (c *ColormapFilter) Apply(input gocv.Mat) (gocv.Mat, error) {
	if err := validateInput(input); err != nil {
		return gocv.NewMat(), err
	}

	gray := gocv.NewMat()
	defer gray.Close()
	if err := gocv.CvtColor(input, &gray, gocv.ColorBGRToGray); err != nil {
		return gocv.NewMat(), fmt.Errorf("colormap grayscale failed: %w", err)
	}

	output := gocv.NewMat()
	gocv.ApplyColorMap(gray, &output, c.colormap)
	if output.Empty() {
		output.Close()
		return gocv.NewMat(), fmt.Errorf("colormap produced empty image")
	}

	return output, nil
}

func (c *ColormapFilter) GetName() string {
	return "Artistic"
}

func (c *ColormapFilter) GetDescription() string {
	return "False-colour rendering of luminance"
}
