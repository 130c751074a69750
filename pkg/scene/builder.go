package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Builder collects shapes and settings for a scene. The zero background is black.
type Builder struct {
	cameraConfig geometry.CameraConfig
	background   Background
	shapes       []geometry.Shape
}

// NewBuilder starts a scene viewed through a camera with the given configuration
func NewBuilder(cameraConfig geometry.CameraConfig) *Builder {
	return &Builder{cameraConfig: cameraConfig}
}

// Background sets the background
func (b *Builder) Background(background Background) *Builder {
	b.background = background
	return b
}

// Add appends shapes to the scene
func (b *Builder) Add(shapes ...geometry.Shape) *Builder {
	b.shapes = append(b.shapes, shapes...)
	return b
}

// AddSphere appends a sphere
func (b *Builder) AddSphere(center core.Vec3, radius float64, mat *material.Material) *Builder {
	return b.Add(geometry.NewSphere(center, radius, mat))
}

// Build creates the camera and BVH. Errors from either are returned unchanged.
func (b *Builder) Build() (*Scene, error) {
	if len(b.shapes) == 0 {
		return nil, ErrEmptyScene
	}

	camera, err := geometry.NewCamera(b.cameraConfig)
	if err != nil {
		return nil, err
	}

	return New(camera, b.background, b.shapes)
}
