package integrator

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor returns the radiance arriving along ray. The random generator is owned by the caller
	// and must not be shared with another goroutine.
	RayColor(ray core.Ray, s *scene.Scene, random *rand.Rand) core.Vec3
}
