package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Translate moves a shape by a fixed offset
type Translate struct {
	Shape  Shape
	Offset core.Vec3
}

// NewTranslate wraps shape so it appears moved by offset
func NewTranslate(shape Shape, offset core.Vec3) *Translate {
	return &Translate{Shape: shape, Offset: offset}
}

// Hit moves the ray into object space instead of moving the object
func (tr *Translate) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	moved := core.NewRayAtTime(ray.Origin.Subtract(tr.Offset), ray.Direction, ray.Time)

	hit, isHit := tr.Shape.Hit(moved, tMin, tMax)
	if !isHit {
		return nil, false
	}

	hit.Point = hit.Point.Add(tr.Offset)
	return hit, true
}

// BoundingBox returns the wrapped shape's box moved by the offset
func (tr *Translate) BoundingBox() core.AABB {
	return tr.Shape.BoundingBox().Translate(tr.Offset)
}

// RotateY rotates a shape about the Y axis
type RotateY struct {
	Shape    Shape
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotateY rotates shape by angle degrees about the Y axis
func NewRotateY(shape Shape, angle float64) *RotateY {
	theta := angle * math.Pi / 180
	r := &RotateY{
		Shape:    shape,
		sinTheta: math.Sin(theta),
		cosTheta: math.Cos(theta),
	}

	// Box around the eight rotated corners
	inner := shape.BoundingBox()
	corners := make([]core.Vec3, 0, 8)
	for _, x := range []float64{inner.Min.X, inner.Max.X} {
		for _, y := range []float64{inner.Min.Y, inner.Max.Y} {
			for _, z := range []float64{inner.Min.Z, inner.Max.Z} {
				corners = append(corners, r.toWorld(core.NewVec3(x, y, z)))
			}
		}
	}
	r.bbox = core.NewAABBFromPoints(corners...)

	// Rotating an unbounded x or z extent mixes infinities into NaN
	if isUnbounded(inner.Min.X, inner.Max.X) || isUnbounded(inner.Min.Z, inner.Max.Z) {
		inf := math.Inf(1)
		r.bbox.Min.X, r.bbox.Min.Z = -inf, -inf
		r.bbox.Max.X, r.bbox.Max.Z = inf, inf
	}

	return r
}

func isUnbounded(lo, hi float64) bool {
	return math.IsInf(lo, 0) || math.IsInf(hi, 0)
}

func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(r.cosTheta*v.X-r.sinTheta*v.Z, v.Y, r.sinTheta*v.X+r.cosTheta*v.Z)
}

func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(r.cosTheta*v.X+r.sinTheta*v.Z, v.Y, -r.sinTheta*v.X+r.cosTheta*v.Z)
}

// Hit rotates the ray into object space and the hit back into world space
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	rotated := core.NewRayAtTime(r.toObject(ray.Origin), r.toObject(ray.Direction), ray.Time)

	hit, isHit := r.Shape.Hit(rotated, tMin, tMax)
	if !isHit {
		return nil, false
	}

	// The object-space normal already faces the object-space ray, rotation keeps that
	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// BoundingBox returns the box around the rotated shape
func (r *RotateY) BoundingBox() core.AABB {
	return r.bbox
}
