package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// RectOrientation names the coordinate plane a Rect lies in
type RectOrientation uint8

const (
	XY RectOrientation = iota // constant z
	XZ                        // constant y
	YZ                        // constant x
)

// axes returns the two in-plane axes and the constant axis
func (o RectOrientation) axes() (a, b, k int) {
	switch o {
	case XY:
		return 0, 1, 2
	case XZ:
		return 0, 2, 1
	default:
		return 1, 2, 0
	}
}

// Rect is an axis-aligned rectangle [A0,A1]x[B0,B1] at offset K on the remaining axis.
// Its outward normal points along the positive constant axis unless FlipNormal is set.
type Rect struct {
	Orientation RectOrientation
	A0, A1      float64
	B0, B1      float64
	K           float64
	FlipNormal  bool
	Material    *material.Material
}

// NewRect creates an axis-aligned rectangle
func NewRect(orientation RectOrientation, a0, a1, b0, b1, k float64, mat *material.Material) *Rect {
	return &Rect{
		Orientation: orientation,
		A0:          min(a0, a1),
		A1:          max(a0, a1),
		B0:          min(b0, b1),
		B1:          max(b0, b1),
		K:           k,
		Material:    mat,
	}
}

// Hit tests if a ray intersects the rectangle
func (r *Rect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	aAxis, bAxis, kAxis := r.Orientation.axes()

	direction := ray.Direction.Axis(kAxis)
	if direction == 0 {
		return nil, false
	}

	t := (r.K - ray.Origin.Axis(kAxis)) / direction
	if t <= tMin || t > tMax {
		return nil, false
	}

	a := ray.Origin.Axis(aAxis) + t*ray.Direction.Axis(aAxis)
	b := ray.Origin.Axis(bAxis) + t*ray.Direction.Axis(bAxis)
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		UV:       core.NewVec2((a-r.A0)/(r.A1-r.A0), (b-r.B0)/(r.B1-r.B0)),
		Material: r.Material,
	}
	outward := 1.0
	if r.FlipNormal {
		outward = -1.0
	}
	hitRecord.SetFaceNormal(ray, axisVector(kAxis, outward))

	return hitRecord, true
}

// BoundingBox pads the flat axis so the box has volume
func (r *Rect) BoundingBox() core.AABB {
	const padding = 0.0001
	aAxis, bAxis, kAxis := r.Orientation.axes()

	var lo, hi [3]float64
	lo[aAxis], hi[aAxis] = r.A0, r.A1
	lo[bAxis], hi[bAxis] = r.B0, r.B1
	lo[kAxis], hi[kAxis] = r.K-padding, r.K+padding

	return core.NewAABB(core.NewVec3(lo[0], lo[1], lo[2]), core.NewVec3(hi[0], hi[1], hi[2]))
}

func axisVector(axis int, value float64) core.Vec3 {
	var v [3]float64
	v[axis] = value
	return core.NewVec3(v[0], v[1], v[2])
}
