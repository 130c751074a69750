package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material *material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat *material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return hitSphere(s.Center, s.Radius, s.Material, ray, tMin, tMax)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	return sphereBox(s.Center, s.Radius)
}

func hitSphere(center core.Vec3, radius float64, mat *material.Material, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	oc := ray.Origin.Subtract(center)

	// Quadratic at² + 2·halfB·t + c = 0
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Nearer root first, then the far one
	root := (-halfB - sqrtD) / a
	if root <= tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root > tMax {
			return nil, false
		}
	}

	hitRecord := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: mat,
	}

	outwardNormal := hitRecord.Point.Subtract(center).Multiply(1.0 / radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)
	hitRecord.UV = sphereUV(outwardNormal)

	return hitRecord, true
}

// sphereUV maps a point on the unit sphere to texture coordinates:
// u wraps around the Y axis starting at -X, v runs from -Y (0) to +Y (1)
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(max(-1, min(1, -p.Y)))
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}

func sphereBox(center core.Vec3, radius float64) core.AABB {
	r := math.Abs(radius)
	extent := core.NewVec3(r, r, r)
	return core.NewAABB(center.Subtract(extent), center.Add(extent))
}

// MovingSphere is a sphere whose center moves linearly over the shutter interval
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         *material.Material
}

// NewMovingSphere creates a sphere at center0 at time0 and center1 at time1
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, mat *material.Material) *MovingSphere {
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: mat,
	}
}

// CenterAt returns the sphere center at the given time
func (s *MovingSphere) CenterAt(time float64) core.Vec3 {
	if s.Time1 == s.Time0 {
		return s.Center0
	}
	f := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(f))
}

// Hit tests the ray against the sphere at the ray's time
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return hitSphere(s.CenterAt(ray.Time), s.Radius, s.Material, ray, tMin, tMax)
}

// BoundingBox covers the sphere along its whole path
func (s *MovingSphere) BoundingBox() core.AABB {
	return sphereBox(s.Center0, s.Radius).Union(sphereBox(s.Center1, s.Radius))
}
