package core

// Config holds the editor's fixed settings.
type Config struct {
	// CanvasSize is the side of the square every loaded image is resized to.
	CanvasSize int

	// BlurRadius is the Gaussian radius of the Blur filter.
	BlurRadius float64

	// MinFactor and MaxFactor bound zoom, brightness and contrast.
	MinFactor float64
	MaxFactor float64

	// DefaultSaveExt is appended to save paths without an extension.
	DefaultSaveExt string
	JPEGQuality    int

	WindowWidth  float32
	WindowHeight float32
}

// DefaultConfig returns the settings the application runs with.
func DefaultConfig() Config {
	return Config{
		CanvasSize:     400,
		BlurRadius:     4,
		MinFactor:      0.5,
		MaxFactor:      2.0,
		DefaultSaveExt: ".jpg",
		JPEGQuality:    95,
		WindowWidth:    800,
		WindowHeight:   600,
	}
}
