package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

var (
	ErrEmptyScene   = errors.New("scene: no shapes to render")
	ErrNilCamera    = errors.New("scene: camera is required")
	ErrUnknownScene = errors.New("scene: unknown scene")
)

// Scene contains all the elements needed for rendering. It is read-only once built
// and may be shared by any number of render workers.
type Scene struct {
	Camera     *geometry.Camera
	Background Background
	Shapes     []geometry.Shape  // Objects in the scene, in the order they were added
	BVH        *geometry.BVHNode // Acceleration structure over Shapes
}

// New builds the acceleration structure over shapes and returns the finished scene
func New(camera *geometry.Camera, background Background, shapes []geometry.Shape) (*Scene, error) {
	if camera == nil {
		return nil, ErrNilCamera
	}
	if len(shapes) == 0 {
		return nil, ErrEmptyScene
	}

	bvh, err := geometry.NewBVH(shapes)
	if err != nil {
		return nil, fmt.Errorf("scene: building BVH: %w", err)
	}

	return &Scene{
		Camera:     camera,
		Background: background,
		Shapes:     shapes,
		BVH:        bvh,
	}, nil
}

// Hit returns the nearest intersection with any shape in the scene
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return s.BVH.Hit(ray, tMin, tMax)
}

// GetPrimitiveCount returns the number of top-level shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}
