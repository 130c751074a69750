package integrator

import (
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// createTestScene builds a scene holding one unit sphere at the origin
func createTestScene(t *testing.T, mat *material.Material, background scene.Background) *scene.Scene {
	t.Helper()
	s, err := scene.NewBuilder(geometry.CameraConfig{
		Center:      core.NewVec3(0, 0, 5),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 1.0,
		VFov:        40.0,
	}).
		Background(background).
		AddSphere(core.NewVec3(0, 0, 0), 1.0, mat).
		Build()
	if err != nil {
		t.Fatalf("Expected no error building scene, got %v", err)
	}
	return s
}

func vecClose(a, b core.Vec3) bool {
	return a.Subtract(b).Length() < 1e-9
}

var towardSphere = core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

func TestPathTracer_Miss(t *testing.T) {
	background := scene.NewGradientBackground(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1, 1, 1))
	s := createTestScene(t, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)), background)
	random := rand.New(rand.NewSource(1))

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 1, 0))
	got := NewPathTracer(5).RayColor(ray, s, random)
	if !vecClose(got, background.Color(ray.Direction)) {
		t.Errorf("Expected background %v, got %v", background.Color(ray.Direction), got)
	}
}

func TestPathTracer_DepthTermination(t *testing.T) {
	white := scene.NewConstantBackground(core.NewVec3(1, 1, 1))
	s := createTestScene(t, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)), white)
	random := rand.New(rand.NewSource(42))

	tests := []struct {
		name     string
		maxDepth int
		expected core.Vec3
	}{
		// Zero depth gathers nothing, even for a ray that would miss
		{"depth 0", 0, core.Vec3{}},
		// One bounce reaches the sphere but has no depth left to escape
		{"depth 1", 1, core.Vec3{}},
		// A convex diffuse sphere scatters exactly once before escaping
		{"depth 2", 2, core.NewVec3(0.5, 0.5, 0.5)},
		{"depth 50", 50, core.NewVec3(0.5, 0.5, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPathTracer(tt.maxDepth).RayColor(towardSphere, s, random)
			if !vecClose(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPathTracer_Emitter(t *testing.T) {
	emission := core.NewVec3(4, 2, 1)
	s := createTestScene(t, material.NewEmissive(emission), scene.NewConstantBackground(core.NewVec3(1, 1, 1)))
	random := rand.New(rand.NewSource(1))

	got := NewPathTracer(5).RayColor(towardSphere, s, random)
	if !vecClose(got, emission) {
		t.Errorf("Expected emission %v, got %v", emission, got)
	}
}

func TestPathTracer_MirrorAttenuation(t *testing.T) {
	tint := core.NewVec3(0.9, 0.5, 0.1)
	background := scene.NewGradientBackground(core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0))
	s := createTestScene(t, material.NewMetal(tint, 0), background)
	random := rand.New(rand.NewSource(1))

	// Head-on reflection comes straight back along +z, which sees the horizon color
	expected := tint.MultiplyVec(core.NewVec3(0.5, 0.5, 0.5))
	got := NewPathTracer(5).RayColor(towardSphere, s, random)
	if !vecClose(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestPathTracer_EnergyBound(t *testing.T) {
	materials := map[string]*material.Material{
		"lambertian": material.NewLambertian(core.NewVec3(0.9, 0.8, 0.7)),
		"metal":      material.NewMetal(core.NewVec3(1, 1, 1), 0.5),
		"dielectric": material.NewDielectric(material.Glass),
	}
	background := scene.NewGradientBackground(core.NewVec3(1, 1, 1), core.NewVec3(0.2, 0.2, 0.2))

	for name, mat := range materials {
		t.Run(name, func(t *testing.T) {
			s := createTestScene(t, mat, background)
			random := rand.New(rand.NewSource(7))
			pt := NewPathTracer(10)

			for i := 0; i < 500; i++ {
				target := core.RandomInUnitSphere(random)
				ray := core.NewRay(core.NewVec3(0, 0, 5), target.Subtract(core.NewVec3(0, 0, 5)))
				c := pt.RayColor(ray, s, random)
				for axis := 0; axis < 3; axis++ {
					if c.Axis(axis) < 0 || c.Axis(axis) > 1 {
						t.Fatalf("Expected radiance in [0,1], got %v", c)
					}
				}
			}
		})
	}
}

func TestPathTracer_Deterministic(t *testing.T) {
	s := createTestScene(t, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3)),
		scene.NewGradientBackground(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1, 1, 1)))
	pt := NewPathTracer(10)

	render := func() []core.Vec3 {
		random := rand.New(rand.NewSource(99))
		colors := make([]core.Vec3, 50)
		for i := range colors {
			colors[i] = pt.RayColor(towardSphere, s, random)
		}
		return colors
	}

	first, second := render(), render()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Expected identical color at sample %d, got %v and %v", i, first[i], second[i])
		}
	}
}
