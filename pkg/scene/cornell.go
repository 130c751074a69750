package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewCornellScene creates a classic Cornell box lit only by the ceiling panel
func NewCornellScene(aspect float64) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: aspect,
		VFov:        40.0,
	}

	// Create materials
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewEmissive(core.NewVec3(15, 15, 15))

	// Cornell box dimensions (standard 555x555x555 units)
	const boxSize = 555.0

	tall := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	short := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)

	return NewBuilder(cameraConfig).
		Background(NewConstantBackground(core.NewVec3(0, 0, 0))).
		Add(
			geometry.NewRect(geometry.YZ, 0, boxSize, 0, boxSize, boxSize, green), // left wall
			geometry.NewRect(geometry.YZ, 0, boxSize, 0, boxSize, 0, red),         // right wall
			geometry.NewRect(geometry.XZ, 213, 343, 227, 332, boxSize-1, light),   // ceiling light
			geometry.NewRect(geometry.XZ, 0, boxSize, 0, boxSize, 0, white),       // floor
			geometry.NewRect(geometry.XZ, 0, boxSize, 0, boxSize, boxSize, white), // ceiling
			geometry.NewRect(geometry.XY, 0, boxSize, 0, boxSize, boxSize, white), // back wall
			geometry.NewTranslate(geometry.NewRotateY(tall, 15), core.NewVec3(265, 0, 295)),
			geometry.NewTranslate(geometry.NewRotateY(short, -18), core.NewVec3(130, 0, 65)),
		).
		Build()
}
