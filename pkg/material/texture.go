package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns color at given UV coordinates and 3D point
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker is a 3D checker pattern alternating between two color sources
type Checker struct {
	Even  ColorSource
	Odd   ColorSource
	Scale float64 // Spatial frequency, 10 gives the classic pattern
}

// NewChecker creates a checker texture from two solid colors
func NewChecker(even, odd core.Vec3) *Checker {
	return &Checker{Even: NewSolidColor(even), Odd: NewSolidColor(odd), Scale: 10}
}

// Evaluate picks Even or Odd from the sign of a product of sines
func (c *Checker) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	s := math.Sin(c.Scale*point.X) * math.Sin(c.Scale*point.Y) * math.Sin(c.Scale*point.Z)
	if s < 0 {
		return c.Odd.Evaluate(uv, point)
	}
	return c.Even.Evaluate(uv, point)
}
