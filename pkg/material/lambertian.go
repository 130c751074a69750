package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// NewLambertian creates a perfectly diffuse material with a solid color
func NewLambertian(albedo core.Vec3) *Material {
	return NewTexturedLambertian(NewSolidColor(albedo))
}

// NewTexturedLambertian creates a diffuse material whose albedo comes from a texture
func NewTexturedLambertian(albedo ColorSource) *Material {
	return &Material{Kind: KindLambertian, Albedo: albedo}
}

func (m *Material) scatterLambertian(rayIn core.Ray, hit *HitRecord, random *rand.Rand) ScatterResult {
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(random))

	// The random vector can cancel the normal out
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return ScatterResult{
		Outcome:     Scattered,
		Scattered:   core.NewRayAtTime(hit.Point, scatterDirection.Normalize(), rayIn.Time),
		Attenuation: m.Albedo.Evaluate(hit.UV, hit.Point),
	}
}
