package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// List tests every child shape and keeps the nearest hit
type List struct {
	Shapes []Shape
	bbox   core.AABB
}

// NewList creates a list over the given shapes
func NewList(shapes ...Shape) *List {
	l := &List{Shapes: shapes}
	for i, shape := range shapes {
		if i == 0 {
			l.bbox = shape.BoundingBox()
		} else {
			l.bbox = l.bbox.Union(shape.BoundingBox())
		}
	}
	return l
}

// Hit returns the nearest hit among all children
func (l *List) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of the children's boxes
func (l *List) BoundingBox() core.AABB {
	return l.bbox
}
