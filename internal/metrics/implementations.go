package metrics

import (
	"fmt"
	"math"

	"gocv.io/x/gocv"
)

// MSE is the mean squared difference over every channel of every pixel.
type MSE struct{}

func NewMSE() *MSE {
	return &MSE{}
}

func (m *MSE) Calculate(reference, candidate gocv.Mat) (float64, error) {
	a, b, err := comparableBytes(reference, candidate)
	if err != nil {
		return 0, err
	}

	sumSquaredDiff := 0.0
	for i := range a {
		diff := float64(a[i]) - float64(b[i])
		sumSquaredDiff += diff * diff
	}

	return sumSquaredDiff / float64(len(a)), nil
}

func (m *MSE) GetName() string {
	return "MSE"
}

func (m *MSE) IsHigherBetter() bool {
	return false
}

// PSNR implements Peak Signal-to-Noise Ratio metric
type PSNR struct {
	mse *MSE
}

func NewPSNR() *PSNR {
	return &PSNR{mse: NewMSE()}
}

// Calculate returns +Inf for identical images.
func (p *PSNR) Calculate(reference, candidate gocv.Mat) (float64, error) {
	mse, err := p.mse.Calculate(reference, candidate)
	if err != nil {
		return 0, err
	}
	if mse == 0 {
		return math.Inf(1), nil
	}

	return 20 * math.Log10(255.0/math.Sqrt(mse)), nil
}

func (p *PSNR) GetName() string {
	return "PSNR"
}

func (p *PSNR) IsHigherBetter() bool {
	return true
}

// MaxDiff is the largest absolute difference of any single channel value.
type MaxDiff struct{}

func NewMaxDiff() *MaxDiff {
	return &MaxDiff{}
}

func (m *MaxDiff) Calculate(reference, candidate gocv.Mat) (float64, error) {
	a, b, err := comparableBytes(reference, candidate)
	if err != nil {
		return 0, err
	}

	maxDiff := 0
	for i := range a {
		diff := int(a[i]) - int(b[i])
		if diff < 0 {
			diff = -diff
		}
		if diff > maxDiff {
			maxDiff = diff
		}
	}

	return float64(maxDiff), nil
}

func (m *MaxDiff) GetName() string {
	return "Max difference"
}

func (m *MaxDiff) IsHigherBetter() bool {
	return false
}

func comparableBytes(reference, candidate gocv.Mat) ([]byte, []byte, error) {
	if reference.Empty() || candidate.Empty() {
		return nil, nil, fmt.Errorf("empty images")
	}
	if reference.Rows() != candidate.Rows() || reference.Cols() != candidate.Cols() {
		return nil, nil, fmt.Errorf("image dimensions mismatch: %dx%d vs %dx%d",
			reference.Cols(), reference.Rows(), candidate.Cols(), candidate.Rows())
	}
	if reference.Type() != candidate.Type() {
		return nil, nil, fmt.Errorf("image type mismatch")
	}

	a := reference.ToBytes()
	b := candidate.ToBytes()
	if len(a) != len(b) || len(a) == 0 {
		return nil, nil, fmt.Errorf("image data mismatch")
	}
	return a, b, nil
}
