package core

import (
	"fmt"
	"math"
)

// Adjustments are the continuous, non-destructive parameters. They are never
// baked into the stored bitmaps.
type Adjustments struct {
	Zoom       float64
	Brightness float64
	Contrast   float64
}

// IdentityAdjustments leaves the bitmap unchanged.
func IdentityAdjustments() Adjustments {
	return Adjustments{Zoom: 1.0, Brightness: 1.0, Contrast: 1.0}
}

func (a Adjustments) IsIdentity() bool {
	return a == IdentityAdjustments()
}

func (a Adjustments) String() string {
	return fmt.Sprintf("zoom %.2f, brightness %.2f, contrast %.2f", a.Zoom, a.Brightness, a.Contrast)
}

// clampFactor limits f to [min, max]. Non-finite values are rejected.
func clampFactor(f, min, max float64) (float64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid factor: %v", f)
	}
	return math.Min(max, math.Max(min, f)), nil
}
