package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Common refractive indices
const (
	Glass   = 1.5
	Water   = 1.333
	Diamond = 2.417
)

// NewDielectric creates a clear transparent material like glass
func NewDielectric(refractiveIndex float64) *Material {
	return &Material{Kind: KindDielectric, RefractiveIndex: refractiveIndex}
}

func (m *Material) scatterDielectric(rayIn core.Ray, hit *HitRecord, random *rand.Rand) ScatterResult {
	refractionRatio := m.RefractiveIndex
	if hit.FrontFace {
		refractionRatio = 1.0 / m.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)

	direction, refracts := core.Refract(unitDirection, hit.Normal, refractionRatio)
	if !refracts || Reflectance(cosTheta, refractionRatio) > random.Float64() {
		direction = core.Reflect(unitDirection, hit.Normal)
	}

	return ScatterResult{
		Outcome:     Scattered,
		Scattered:   core.NewRayAtTime(hit.Point, direction, rayIn.Time),
		Attenuation: core.NewVec3(1, 1, 1),
	}
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
