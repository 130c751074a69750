package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Fixed so the random scenes are identical from run to run
const randomSceneSeed = 42

// NewRandomScene creates the classic field of random small spheres around three large ones
func NewRandomScene(aspect float64) (*Scene, error) {
	return newRandomSpheresScene(aspect, false)
}

// NewMovingScene is NewRandomScene with the small diffuse spheres bouncing upward
// while the shutter is open
func NewMovingScene(aspect float64) (*Scene, error) {
	return newRandomSpheresScene(aspect, true)
}

func newRandomSpheresScene(aspect float64, moving bool) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   aspect,
		VFov:          20.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}
	if moving {
		cameraConfig.Time0, cameraConfig.Time1 = 0.0, 1.0
	}

	random := rand.New(rand.NewSource(randomSceneSeed))
	ground := material.NewTexturedLambertian(material.NewChecker(
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
	))

	builder := NewBuilder(cameraConfig).
		Background(NewGradientBackground(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0))).
		AddSphere(core.NewVec3(0, -1000, 0), 1000, ground)

	glass := material.NewDielectric(material.Glass)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMaterial := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())

			// Keep clear of the large metal sphere
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMaterial < 0.8:
				albedo := core.RandomVec3(random, 0, 1).MultiplyVec(core.RandomVec3(random, 0, 1))
				diffuse := material.NewLambertian(albedo)
				if moving {
					end := center.Add(core.NewVec3(0, 0.5*random.Float64(), 0))
					builder.Add(geometry.NewMovingSphere(center, end, 0.0, 1.0, 0.2, diffuse))
				} else {
					builder.AddSphere(center, 0.2, diffuse)
				}
			case chooseMaterial < 0.95:
				albedo := core.RandomVec3(random, 0.5, 1)
				fuzz := 0.5 * random.Float64()
				builder.AddSphere(center, 0.2, material.NewMetal(albedo, fuzz))
			default:
				builder.AddSphere(center, 0.2, glass)
			}
		}
	}

	return builder.
		AddSphere(core.NewVec3(0, 1, 0), 1.0, glass).
		AddSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))).
		AddSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)).
		Build()
}
