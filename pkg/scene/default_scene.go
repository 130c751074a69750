package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewDefaultScene creates a default scene with spheres, ground, and a distant light
func NewDefaultScene(aspect float64) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(0, 0.75, 2), // Position camera higher and farther back
		LookAt:        core.NewVec3(0, 0.5, -1), // Look at the sphere center
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   aspect,
		VFov:          40.0,
		Aperture:      0.05,
		FocusDistance: 0.0, // Auto-calculate focus distance
	}

	// Create materials
	ground := material.NewTexturedLambertian(material.NewChecker(
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
	))
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	lambertianRed := material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2))
	metalSilver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	glass := material.NewDielectric(material.Glass)
	light := material.NewEmissive(core.NewVec3(15.0, 14.0, 13.0))

	return NewBuilder(cameraConfig).
		Background(NewGradientBackground(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0))).
		Add(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ground)).
		AddSphere(core.NewVec3(0, 0.5, -1), 0.5, lambertianRed).
		AddSphere(core.NewVec3(-1, 0.5, -1), 0.5, metalSilver).
		AddSphere(core.NewVec3(1, 0.5, -1), 0.5, metalGold).
		AddSphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, glass).
		// Hollow glass sphere with a blue sphere inside; the negative radius flips the inner surface
		AddSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.25, glass).
		AddSphere(core.NewVec3(-0.5, 0.25, -0.5), -0.24, glass).
		AddSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.20, lambertianBlue).
		AddSphere(core.NewVec3(30, 30.5, 15), 10, light).
		Build()
}

// NewSingleSphereScene is a white diffuse sphere of radius 0.5 at the origin under a
// sky that fades from white overhead to near black below
func NewSingleSphereScene(aspect float64) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(0, 0, 1.5),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: aspect,
		VFov:        40.0,
	}

	return NewBuilder(cameraConfig).
		Background(NewGradientBackground(core.NewVec3(1, 1, 1), core.NewVec3(0.1, 0.1, 0.1))).
		AddSphere(core.NewVec3(0, 0, 0), 0.5, material.NewLambertian(core.NewVec3(1, 1, 1))).
		Build()
}
