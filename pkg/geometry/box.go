package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Box is an axis-aligned box made of six rectangles sharing one material.
// Rotate or move it by wrapping it in RotateY or Translate.
type Box struct {
	Min, Max core.Vec3
	Material *material.Material
	sides    *List
}

// NewBox creates a box spanning the two corner points
func NewBox(p0, p1 core.Vec3, mat *material.Material) *Box {
	bounds := core.NewAABBFromPoints(p0, p1)
	lo, hi := bounds.Min, bounds.Max

	// Low faces get flipped normals so every face points out of the box
	flipped := func(r *Rect) *Rect {
		r.FlipNormal = true
		return r
	}
	sides := NewList(
		NewRect(XY, lo.X, hi.X, lo.Y, hi.Y, hi.Z, mat),
		flipped(NewRect(XY, lo.X, hi.X, lo.Y, hi.Y, lo.Z, mat)),
		NewRect(XZ, lo.X, hi.X, lo.Z, hi.Z, hi.Y, mat),
		flipped(NewRect(XZ, lo.X, hi.X, lo.Z, hi.Z, lo.Y, mat)),
		NewRect(YZ, lo.Y, hi.Y, lo.Z, hi.Z, hi.X, mat),
		flipped(NewRect(YZ, lo.Y, hi.Y, lo.Z, hi.Z, lo.X, mat)),
	)

	return &Box{Min: lo, Max: hi, Material: mat, sides: sides}
}

// Hit returns the nearest face hit
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax)
}

// BoundingBox returns the box extents
func (b *Box) BoundingBox() core.AABB {
	return b.sides.BoundingBox()
}
