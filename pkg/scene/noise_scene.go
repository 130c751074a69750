package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewNoiseScene shows the Perlin turbulence texture on a ground sphere and a large sphere
func NewNoiseScene(aspect float64) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: aspect,
		VFov:        20.0,
	}

	marble := material.NewTexturedLambertian(material.NewNoise(4, randomSceneSeed))

	return NewBuilder(cameraConfig).
		Background(NewGradientBackground(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0))).
		AddSphere(core.NewVec3(0, -1000, 0), 1000, marble).
		AddSphere(core.NewVec3(0, 2, 0), 2, marble).
		Build()
}
