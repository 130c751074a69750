package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3          // A point on the plane
	Normal   core.Vec3          // Unit normal
	Material *material.Material // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, mat *material.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: mat,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray is parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t <= tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	hitRecord := &material.HitRecord{
		T:        t,
		Point:    hitPoint,
		Material: p.Material,
	}
	hitRecord.SetFaceNormal(ray, p.Normal)

	// Planar UV on the two axes the normal does not dominate
	switch getAxisAlignment(p.Normal) {
	case XAxisAligned:
		hitRecord.UV = core.NewVec2(hitPoint.Y-math.Floor(hitPoint.Y), hitPoint.Z-math.Floor(hitPoint.Z))
	case YAxisAligned:
		hitRecord.UV = core.NewVec2(hitPoint.X-math.Floor(hitPoint.X), hitPoint.Z-math.Floor(hitPoint.Z))
	case ZAxisAligned:
		hitRecord.UV = core.NewVec2(hitPoint.X-math.Floor(hitPoint.X), hitPoint.Y-math.Floor(hitPoint.Y))
	}

	return hitRecord, true
}

// BoundingBox is unbounded on every axis the plane extends along. Only an axis-aligned
// plane gets a finite (thin) extent, on its normal axis.
func (p *Plane) BoundingBox() core.AABB {
	const epsilon = 0.001 // Small thickness to avoid zero-width bounding box
	inf := math.Inf(1)

	lo := core.NewVec3(-inf, -inf, -inf)
	hi := core.NewVec3(inf, inf, inf)
	switch getAxisAlignment(p.Normal) {
	case XAxisAligned:
		lo.X, hi.X = p.Point.X-epsilon, p.Point.X+epsilon
	case YAxisAligned:
		lo.Y, hi.Y = p.Point.Y-epsilon, p.Point.Y+epsilon
	case ZAxisAligned:
		lo.Z, hi.Z = p.Point.Z-epsilon, p.Point.Z+epsilon
	}
	return core.NewAABB(lo, hi)
}

// AxisAlignment describes which axis a normal is parallel to
type AxisAlignment int

const (
	NotAxisAligned AxisAlignment = iota
	XAxisAligned
	YAxisAligned
	ZAxisAligned
)

// getAxisAlignment determines if a normal vector is aligned with a coordinate axis
func getAxisAlignment(normal core.Vec3) AxisAlignment {
	const tolerance = 1e-6
	absX, absY, absZ := math.Abs(normal.X), math.Abs(normal.Y), math.Abs(normal.Z)

	switch {
	case math.Abs(absX-1) < tolerance && absY < tolerance && absZ < tolerance:
		return XAxisAligned
	case absX < tolerance && math.Abs(absY-1) < tolerance && absZ < tolerance:
		return YAxisAligned
	case absX < tolerance && absY < tolerance && math.Abs(absZ-1) < tolerance:
		return ZAxisAligned
	default:
		return NotAxisAligned
	}
}
