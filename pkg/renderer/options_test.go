package renderer

import (
	"errors"
	"testing"

	"github.com/df07/go-pathtracer/pkg/scene"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if err := opts.Validate(); err != nil {
		t.Fatalf("Expected valid defaults, got %v", err)
	}
	if opts.TileSize != 16 || opts.Seed != 0 || opts.Pin || opts.Gamma != 2.0 {
		t.Errorf("Expected tile 16, seed 0, no pin, gamma 2, got %+v", opts)
	}
	if opts.Threads < 1 {
		t.Errorf("Expected at least one thread, got %d", opts.Threads)
	}
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*Options)
		expected error
	}{
		{"zero width", func(o *Options) { o.Width = 0 }, ErrInvalidDimensions},
		{"negative height", func(o *Options) { o.Height = -5 }, ErrInvalidDimensions},
		{"zero samples", func(o *Options) { o.SamplesPerPixel = 0 }, ErrInvalidSamples},
		{"zero depth", func(o *Options) { o.MaxDepth = 0 }, ErrInvalidDepth},
		{"zero threads", func(o *Options) { o.Threads = 0 }, ErrInvalidThreads},
		{"negative threads", func(o *Options) { o.Threads = -1 }, ErrInvalidThreads},
		{"zero tile size", func(o *Options) { o.TileSize = 0 }, ErrInvalidTileSize},
		{"zero gamma", func(o *Options) { o.Gamma = 0 }, ErrInvalidGamma},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.modify(&opts)
			if err := opts.Validate(); !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestRender_ConfigErrorsFailFast(t *testing.T) {
	s, err := scene.NewSingleSphereScene(1.0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	tests := []struct {
		name                               string
		scene                              *scene.Scene
		width, height, spp, depth, threads int
		expected                           error
	}{
		{"nil scene", nil, 10, 10, 1, 1, 1, ErrNilScene},
		{"zero threads", s, 10, 10, 1, 1, 0, ErrInvalidThreads},
		{"zero samples", s, 10, 10, 0, 1, 1, ErrInvalidSamples},
		{"zero depth", s, 10, 10, 1, 0, 1, ErrInvalidDepth},
		{"zero width", s, 0, 10, 1, 1, 1, ErrInvalidDimensions},
		{"stretched image", s, 20, 10, 1, 1, 1, ErrAspectMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buffer, err := Render(tt.scene, tt.width, tt.height, tt.spp, tt.depth, tt.threads)
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
			if buffer != nil {
				t.Error("Expected nil buffer on configuration error")
			}
		})
	}
}
