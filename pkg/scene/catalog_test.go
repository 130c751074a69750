package scene

import (
	"errors"
	"testing"
)

func TestBuiltinScenes(t *testing.T) {
	infos := ListBuiltins()
	if len(infos) != len(builtins) {
		t.Fatalf("Expected %d scenes, got %d", len(builtins), len(infos))
	}
	for i := 1; i < len(infos); i++ {
		if infos[i-1].ID >= infos[i].ID {
			t.Errorf("Expected scenes sorted by ID, got %q before %q", infos[i-1].ID, infos[i].ID)
		}
	}

	for _, info := range infos {
		t.Run(info.ID, func(t *testing.T) {
			s, err := Builtin(info.ID, 16.0/9.0)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if s.GetPrimitiveCount() == 0 {
				t.Error("Expected at least one shape")
			}
			if s.Camera.Config().AspectRatio != 16.0/9.0 {
				t.Errorf("Expected aspect ratio %f, got %f", 16.0/9.0, s.Camera.Config().AspectRatio)
			}
			if stats := s.BVH.Stats(); stats.Leaves != s.GetPrimitiveCount() {
				t.Errorf("Expected %d BVH leaves, got %d", s.GetPrimitiveCount(), stats.Leaves)
			}
		})
	}
}

func TestBuiltin_Unknown(t *testing.T) {
	if _, err := Builtin("no-such-scene", 1.0); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestRandomScene_Deterministic(t *testing.T) {
	a, err := NewRandomScene(1.5)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	b, err := NewRandomScene(1.5)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if a.GetPrimitiveCount() != b.GetPrimitiveCount() {
		t.Fatalf("Expected same shape count, got %d and %d", a.GetPrimitiveCount(), b.GetPrimitiveCount())
	}
	if a.BVH.BoundingBox() != b.BVH.BoundingBox() {
		t.Errorf("Expected identical bounds, got %v and %v", a.BVH.BoundingBox(), b.BVH.BoundingBox())
	}
}
