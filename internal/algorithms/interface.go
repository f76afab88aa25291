// Destructive filter registry
package algorithms

import (
	"fmt"
	"sort"

	"gocv.io/x/gocv"
)

// Registered filter names.
const (
	Grayscale = "grayscale"
	Blur      = "blur"
	Edges     = "edges"
	Colormap  = "colormap"
	Rotate    = "rotate"
	Flip      = "flip"
)

// DefaultBlurRadius is the Gaussian radius used by the registered blur filter.
const DefaultBlurRadius = 4.0

// Algorithm is a fixed-parameter transform over a 3-channel 8-bit Mat.
// Apply never modifies input; the caller owns the returned Mat.
type Algorithm interface {
	Apply(input gocv.Mat) (gocv.Mat, error)
	GetName() string
	GetDescription() string
}

var algorithms = make(map[string]Algorithm)

func Register(name string, algorithm Algorithm) {
	algorithms[name] = algorithm
}

func Get(name string) (Algorithm, bool) {
	algorithm, exists := algorithms[name]
	return algorithm, exists
}

func Apply(name string, input gocv.Mat) (gocv.Mat, error) {
	algorithm, exists := algorithms[name]
	if !exists {
		return gocv.NewMat(), fmt.Errorf("algorithm not found: %s", name)
	}

	return algorithm.Apply(input)
}

func IsValidAlgorithm(name string) bool {
	_, exists := algorithms[name]
	return exists
}

// Names returns the registered filter names in sorted order.
func Names() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(Grayscale, NewGrayscaleFilter())
	Register(Blur, NewGaussianFilter(DefaultBlurRadius))
	Register(Edges, NewEdgeFilter())
	Register(Colormap, NewColormapFilter(gocv.ColormapJet))
	Register(Rotate, NewRotate90())
	Register(Flip, NewFlipHorizontal())
}

func validateInput(input gocv.Mat) error {
	if input.Empty() {
		return fmt.Errorf("input image is empty")
	}
	if input.Channels() != 3 {
		return fmt.Errorf("expected 3 channels, got %d", input.Channels())
	}
	return nil
}
