package renderer

import "errors"

var (
	ErrInvalidThreads    = errors.New("renderer: thread count must be at least 1")
	ErrInvalidSamples    = errors.New("renderer: samples per pixel must be at least 1")
	ErrInvalidDepth      = errors.New("renderer: max depth must be at least 1")
	ErrInvalidDimensions = errors.New("renderer: width and height must be at least 1")
	ErrInvalidTileSize   = errors.New("renderer: tile size must be at least 1")
	ErrInvalidGamma      = errors.New("renderer: gamma must be positive")
	ErrNilScene          = errors.New("renderer: scene is nil")
	ErrAspectMismatch    = errors.New("renderer: image aspect ratio does not match the scene camera")

	// ErrWorkerFault wraps a panic recovered while rendering a tile
	ErrWorkerFault = errors.New("renderer: worker fault")
	// ErrInterrupted wraps the context error of a cancelled render
	ErrInterrupted = errors.New("renderer: render interrupted")
)
