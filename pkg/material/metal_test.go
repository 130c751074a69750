package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestNewMetal_FuzzClamp(t *testing.T) {
	tests := []struct {
		name         string
		inputFuzz    float64
		expectedFuzz float64
	}{
		{"Valid fuzz 0.0", 0.0, 0.0},
		{"Valid fuzz 0.5", 0.5, 0.5},
		{"Valid fuzz 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzz)
			if metal.Fuzz != tt.expectedFuzz {
				t.Errorf("Expected fuzz %f, got %f", tt.expectedFuzz, metal.Fuzz)
			}
			if metal.Kind != KindMetal {
				t.Errorf("Expected kind %v, got %v", KindMetal, metal.Kind)
			}
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)
	random := rand.New(rand.NewSource(42))

	// Ray hitting surface at 45 degrees
	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1).Normalize())
	hit := &HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 1, 0),
	}

	scatter := metal.Scatter(rayIn, hit, random)
	if scatter.Outcome != Scattered {
		t.Fatalf("Expected Scattered, got %v", scatter.Outcome)
	}

	expected := core.NewVec3(0, 1, -1).Normalize()
	actual := scatter.Scattered.Direction.Normalize()
	if actual.Subtract(expected).Length() > 1e-10 {
		t.Errorf("Expected %v, got %v", expected, actual)
	}
	if scatter.Attenuation != albedo {
		t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
	}
}

func TestMetal_GrazingFuzzIsAbsorbed(t *testing.T) {
	metal := NewMetal(core.NewVec3(1, 1, 1), 1.0)
	random := rand.New(rand.NewSource(3))

	// A nearly grazing ray: most fuzzed reflections dip below the surface
	rayIn := core.NewRay(core.NewVec3(-1, 0.01, 0), core.NewVec3(1, -0.01, 0))
	hit := &HitRecord{Point: core.Vec3{}, Normal: core.NewVec3(0, 1, 0)}

	absorbed := 0
	for i := 0; i < 1000; i++ {
		scatter := metal.Scatter(rayIn, hit, random)
		switch scatter.Outcome {
		case Absorbed:
			absorbed++
		case Scattered:
			if scatter.Scattered.Direction.Dot(hit.Normal) <= 0 {
				t.Fatalf("Scattered ray points into surface: %v", scatter.Scattered.Direction)
			}
		default:
			t.Fatalf("Unexpected outcome %v", scatter.Outcome)
		}
	}

	if absorbed == 0 {
		t.Error("Expected some grazing reflections to be absorbed")
	}
}
