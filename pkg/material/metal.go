package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzz float64) *Material {
	// Clamp fuzz to valid range
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Material{Kind: KindMetal, Tint: albedo, Fuzz: fuzz}
}

func (m *Material) scatterMetal(rayIn core.Ray, hit *HitRecord, random *rand.Rand) ScatterResult {
	reflected := core.Reflect(rayIn.Direction.Normalize(), hit.Normal)

	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(random).Multiply(m.Fuzz))
	}

	// Fuzz can push the reflection below the surface
	if reflected.Dot(hit.Normal) <= 0 {
		return ScatterResult{Outcome: Absorbed}
	}

	return ScatterResult{
		Outcome:     Scattered,
		Scattered:   core.NewRayAtTime(hit.Point, reflected, rayIn.Time),
		Attenuation: m.Tint,
	}
}
