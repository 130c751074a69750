package geometry

import (
	"errors"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

var (
	ErrEmptyBVH         = errors.New("geometry: cannot build a BVH from zero shapes")
	ErrDegenerateCamera = errors.New("geometry: degenerate camera configuration")
)

// Shape is anything a ray can hit. The set is closed to the types in this package.
type Shape interface {
	// Hit returns the nearest intersection with t in (tMin, tMax]
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	// BoundingBox must contain the whole surface; it is only read while building a BVH
	BoundingBox() core.AABB

	shape()
}

func (*Sphere) shape()       {}
func (*MovingSphere) shape() {}
func (*Plane) shape()        {}
func (*List) shape()         {}
func (*BVHNode) shape()      {}
func (*Rect) shape()         {}
func (*Box) shape()          {}
func (*Translate) shape()    {}
func (*RotateY) shape()      {}
