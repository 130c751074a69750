package renderer

import "fmt"

// Options contains configuration for a render
type Options struct {
	Width           int     // Image width in pixels
	Height          int     // Image height in pixels
	SamplesPerPixel int     // Number of rays per pixel
	MaxDepth        int     // Maximum ray bounce depth
	Threads         int     // Number of parallel workers
	TileSize        int     // Edge length of the square tiles handed to workers
	Seed            int64   // Base seed, tile i samples with seed+i
	Pin             bool    // Lock each worker to one CPU core where supported
	Gamma           float64 // Output gamma, 2.0 is a square root
}

// DefaultOptions returns sensible default values
func DefaultOptions() Options {
	return Options{
		Width:           400,
		Height:          225, // 16:9 aspect ratio
		SamplesPerPixel: 50,
		MaxDepth:        25,
		Threads:         DefaultThreads(),
		TileSize:        16,
		Seed:            0,
		Pin:             false,
		Gamma:           2.0,
	}
}

// Validate reports the first invalid setting. Invalid values are never replaced by defaults.
func (o Options) Validate() error {
	switch {
	case o.Width < 1 || o.Height < 1:
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, o.Width, o.Height)
	case o.SamplesPerPixel < 1:
		return fmt.Errorf("%w: got %d", ErrInvalidSamples, o.SamplesPerPixel)
	case o.MaxDepth < 1:
		return fmt.Errorf("%w: got %d", ErrInvalidDepth, o.MaxDepth)
	case o.Threads < 1:
		return fmt.Errorf("%w: got %d", ErrInvalidThreads, o.Threads)
	case o.TileSize < 1:
		return fmt.Errorf("%w: got %d", ErrInvalidTileSize, o.TileSize)
	case !(o.Gamma > 0):
		return fmt.Errorf("%w: got %g", ErrInvalidGamma, o.Gamma)
	}
	return nil
}

// AspectRatio returns width / height
func (o Options) AspectRatio() float64 {
	return float64(o.Width) / float64(o.Height)
}
