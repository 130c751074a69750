package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Kind identifies one of the closed set of material variants
type Kind uint8

const (
	KindLambertian Kind = iota
	KindMetal
	KindDielectric
	KindEmissive
)

func (k Kind) String() string {
	switch k {
	case KindLambertian:
		return "lambertian"
	case KindMetal:
		return "metal"
	case KindDielectric:
		return "dielectric"
	case KindEmissive:
		return "emissive"
	default:
		return "unknown"
	}
}

// Material is a tagged surface description. Only the fields of its Kind are used.
// Materials are never mutated after construction, so one value may be shared by
// every render worker.
type Material struct {
	Kind            Kind
	Albedo          ColorSource // lambertian
	Tint            core.Vec3   // metal
	Fuzz            float64     // metal, clamped to [0,1]
	RefractiveIndex float64     // dielectric
	Emission        core.Vec3   // emissive
}

// Outcome says what happened to a ray that reached a surface
type Outcome uint8

const (
	Scattered Outcome = iota
	Absorbed
	Emitted
)

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Outcome     Outcome
	Scattered   core.Ray  // valid when Outcome == Scattered
	Attenuation core.Vec3 // valid when Outcome == Scattered
	Emitted     core.Vec3 // valid when Outcome == Emitted
}

// Scatter dispatches to the scattering rule of the material's kind
func (m *Material) Scatter(rayIn core.Ray, hit *HitRecord, random *rand.Rand) ScatterResult {
	switch m.Kind {
	case KindLambertian:
		return m.scatterLambertian(rayIn, hit, random)
	case KindMetal:
		return m.scatterMetal(rayIn, hit, random)
	case KindDielectric:
		return m.scatterDielectric(rayIn, hit, random)
	case KindEmissive:
		return ScatterResult{Outcome: Emitted, Emitted: m.Emission}
	default:
		return ScatterResult{Outcome: Absorbed}
	}
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, always facing against the ray
	T         float64   // Parameter t along the ray
	UV        core.Vec2 // Surface coordinates for textures
	FrontFace bool      // Whether ray hit the front face
	Material  *Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
