package integrator

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// HitEpsilon is the lower bound of every hit query so surfaces do not hit themselves
const HitEpsilon = 0.001

// PathTracer implements unidirectional path tracing with material-driven scattering only
type PathTracer struct {
	MaxDepth int // Maximum number of surface interactions per path
}

// NewPathTracer creates a path tracer that follows at most maxDepth bounces
func NewPathTracer(maxDepth int) *PathTracer {
	return &PathTracer{MaxDepth: maxDepth}
}

// RayColor follows a single path. Each surface interaction multiplies the path throughput
// by the material attenuation; the path ends when it escapes to the background, reaches an
// emitter, is absorbed, or runs out of depth. Running out of depth contributes nothing.
func (pt *PathTracer) RayColor(ray core.Ray, s *scene.Scene, random *rand.Rand) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for depth := 0; depth < pt.MaxDepth; depth++ {
		hit, isHit := s.Hit(ray, HitEpsilon, math.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(s.Background.Color(ray.Direction))
		}

		result := hit.Material.Scatter(ray, hit, random)
		switch result.Outcome {
		case material.Emitted:
			return throughput.MultiplyVec(result.Emitted)
		case material.Absorbed:
			return core.Vec3{}
		}

		throughput = throughput.MultiplyVec(result.Attenuation)
		ray = result.Scattered
	}

	return core.Vec3{}
}
