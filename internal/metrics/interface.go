// Image difference metrics
package metrics

import (
	"fmt"
	"sort"

	"gocv.io/x/gocv"
)

// Metric defines the interface for quality metrics
type Metric interface {
	// Calculate compares two Mats of identical size and channel count.
	Calculate(reference, candidate gocv.Mat) (float64, error)

	GetName() string

	// IsHigherBetter returns true if higher values indicate closer images
	IsHigherBetter() bool
}

// Evaluator manages and calculates multiple metrics
type Evaluator struct {
	metrics map[string]Metric
}

// NewEvaluator creates an evaluator with the default metrics registered.
func NewEvaluator() *Evaluator {
	e := &Evaluator{
		metrics: make(map[string]Metric),
	}
	e.RegisterDefaultMetrics()
	return e
}

// RegisterDefaultMetrics registers all default metrics
func (e *Evaluator) RegisterDefaultMetrics() {
	e.Register("mse", NewMSE())
	e.Register("psnr", NewPSNR())
	e.Register("max_diff", NewMaxDiff())
}

func (e *Evaluator) Register(name string, metric Metric) {
	e.metrics[name] = metric
}

// Names returns the registered metric names in sorted order.
func (e *Evaluator) Names() []string {
	names := make([]string, 0, len(e.metrics))
	for name := range e.metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e *Evaluator) Calculate(name string, reference, candidate gocv.Mat) (float64, error) {
	metric, exists := e.metrics[name]
	if !exists {
		return 0, fmt.Errorf("metric not found: %s", name)
	}

	return metric.Calculate(reference, candidate)
}

// CalculateAll calculates every registered metric, skipping those that fail.
func (e *Evaluator) CalculateAll(reference, candidate gocv.Mat) map[string]float64 {
	results := make(map[string]float64)

	for name, metric := range e.metrics {
		if value, err := metric.Calculate(reference, candidate); err == nil {
			results[name] = value
		}
	}

	return results
}

// CalculatePSNR calculates PSNR between two images
func (e *Evaluator) CalculatePSNR(reference, candidate gocv.Mat) (float64, error) {
	return e.Calculate("psnr", reference, candidate)
}
