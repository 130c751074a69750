package scene

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

const testSceneJSON = `{
  "camera": {"lookFrom": [0, 1, 5], "lookAt": [0, 0, 0], "vfov": 35, "aperture": 0.1},
  "background": {"type": "gradient", "top": [0.5, 0.7, 1.0], "bottom": [1, 1, 1]},
  "materials": {
    "ground": {"type": "lambertian", "texture": "checker", "albedo": [0.2, 0.3, 0.1], "odd": [0.9, 0.9, 0.9]},
    "gold":   {"type": "metal", "albedo": [0.8, 0.6, 0.2], "fuzz": 0.3},
    "glass":  {"type": "dielectric", "ior": 1.5},
    "lamp":   {"type": "emissive", "emission": [4, 4, 4]}
  },
  "objects": [
    {"type": "plane", "point": [0, -0.5, 0], "normal": [0, 1, 0], "material": "ground"},
    {"type": "sphere", "center": [0, 0, 0], "radius": 0.5, "material": "gold"},
    {"type": "movingSphere", "center": [1, 0, 0], "center1": [1, 0.5, 0], "time0": 0, "time1": 1, "radius": 0.3, "material": "glass"},
    {"type": "box", "min": [-2, -0.5, -1], "max": [-1, 0.5, 0], "rotateY": 30, "translate": [0, 0, -1], "material": "gold"},
    {"type": "rect", "orientation": "xz", "a0": -1, "a1": 1, "b0": -1, "b1": 1, "k": 3, "material": "lamp"}
  ]
}`

func TestLoadJSON(t *testing.T) {
	s, err := LoadJSON(strings.NewReader(testSceneJSON), 2.0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if s.GetPrimitiveCount() != 5 {
		t.Errorf("Expected 5 shapes, got %d", s.GetPrimitiveCount())
	}
	config := s.Camera.Config()
	if config.Up != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected default up vector, got %v", config.Up)
	}
	if config.AspectRatio != 2.0 || config.VFov != 35 || config.Aperture != 0.1 {
		t.Errorf("Expected aspect 2, vfov 35, aperture 0.1, got %+v", config)
	}
	if s.Background.Kind != BackgroundGradient {
		t.Errorf("Expected gradient background, got %v", s.Background.Kind)
	}

	// Transforms wrap the box, rotation inside translation
	translate, ok := s.Shapes[3].(*geometry.Translate)
	if !ok {
		t.Fatalf("Expected *geometry.Translate, got %T", s.Shapes[3])
	}
	if _, ok := translate.Shape.(*geometry.RotateY); !ok {
		t.Errorf("Expected rotation inside translation, got %T", translate.Shape)
	}

	hit, isHit := s.Hit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit on the center sphere")
	}
	if hit.Material.Kind != material.KindMetal {
		t.Errorf("Expected metal, got %v", hit.Material.Kind)
	}
}

func TestLoadJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"malformed", `{"camera": `},
		{"unknown field", `{"camera": {"lookFrom": [0,0,1], "lookAt": [0,0,0], "vfov": 40}, "lights": []}`},
		{"unknown background", `{"camera": {"lookFrom": [0,0,1], "lookAt": [0,0,0], "vfov": 40}, "background": {"type": "sky"}}`},
		{"unknown material type", `{"camera": {"lookFrom": [0,0,1], "lookAt": [0,0,0], "vfov": 40},
			"materials": {"m": {"type": "plastic"}}, "objects": [{"type": "sphere", "radius": 1, "material": "m"}]}`},
		{"undefined material", `{"camera": {"lookFrom": [0,0,1], "lookAt": [0,0,0], "vfov": 40},
			"objects": [{"type": "sphere", "radius": 1, "material": "missing"}]}`},
		{"zero radius", `{"camera": {"lookFrom": [0,0,1], "lookAt": [0,0,0], "vfov": 40},
			"materials": {"m": {"type": "lambertian"}}, "objects": [{"type": "sphere", "material": "m"}]}`},
		{"bad orientation", `{"camera": {"lookFrom": [0,0,1], "lookAt": [0,0,0], "vfov": 40},
			"materials": {"m": {"type": "lambertian"}}, "objects": [{"type": "rect", "orientation": "xw", "material": "m"}]}`},
		{"zero width rect", `{"camera": {"lookFrom": [0,0,1], "lookAt": [0,0,0], "vfov": 40},
			"materials": {"m": {"type": "lambertian"}}, "objects": [{"type": "rect", "orientation": "xy", "a0": 1, "a1": 1, "b0": 0, "b1": 1, "material": "m"}]}`},
		{"rect without extents", `{"camera": {"lookFrom": [0,0,1], "lookAt": [0,0,0], "vfov": 40},
			"materials": {"m": {"type": "lambertian"}}, "objects": [{"type": "rect", "orientation": "xz", "material": "m"}]}`},
		{"flat box", `{"camera": {"lookFrom": [0,0,1], "lookAt": [0,0,0], "vfov": 40},
			"materials": {"m": {"type": "lambertian"}}, "objects": [{"type": "box", "min": [0,0,0], "max": [1,0,1], "material": "m"}]}`},
		{"dielectric without ior", `{"camera": {"lookFrom": [0,0,1], "lookAt": [0,0,0], "vfov": 40},
			"materials": {"m": {"type": "dielectric"}}, "objects": [{"type": "sphere", "radius": 1, "material": "m"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadJSON(strings.NewReader(tt.json), 1.0)
			if !errors.Is(err, ErrInvalidDescription) {
				t.Errorf("Expected ErrInvalidDescription, got %v", err)
			}
		})
	}

	t.Run("no objects", func(t *testing.T) {
		_, err := LoadJSON(strings.NewReader(`{"camera": {"lookFrom": [0,0,1], "lookAt": [0,0,0], "vfov": 40}}`), 1.0)
		if !errors.Is(err, ErrEmptyScene) {
			t.Errorf("Expected ErrEmptyScene, got %v", err)
		}
	})
}
