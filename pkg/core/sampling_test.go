package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomSamplers_StayInDomain(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 10000; i++ {
		if p := RandomInUnitSphere(random); p.LengthSquared() >= 1.0 {
			t.Fatalf("Point %v outside unit sphere", p)
		}
		if u := RandomUnitVector(random); math.Abs(u.Length()-1.0) > 1e-9 {
			t.Fatalf("Expected unit vector, got length %f", u.Length())
		}
		d := RandomInUnitDisk(random)
		if d.Z != 0 || d.LengthSquared() >= 1.0 {
			t.Fatalf("Point %v outside unit disk", d)
		}
	}
}

func TestRandomUnitVector_IsUnbiased(t *testing.T) {
	random := rand.New(rand.NewSource(1))

	var sum Vec3
	const n = 200000
	for i := 0; i < n; i++ {
		sum = sum.Add(RandomUnitVector(random))
	}
	mean := sum.Multiply(1.0 / n)

	if mean.Length() > 0.01 {
		t.Errorf("Expected mean direction near zero, got %v", mean)
	}
}

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		ray      Ray
		tMax     float64
		expected bool
	}{
		{"straight hit", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), math.Inf(1), true},
		{"miss to the side", NewRay(NewVec3(2, 0, 5), NewVec3(0, 0, -1)), math.Inf(1), false},
		{"parallel inside slab", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), math.Inf(1), true},
		{"parallel outside slab", NewRay(NewVec3(0, 3, 5), NewVec3(0, 0, -1)), math.Inf(1), false},
		{"box beyond tMax", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), 3.0, false},
		{"origin inside box", NewRay(NewVec3(0, 0, 0), NewVec3(1, 1, 0)), math.Inf(1), true},
		{"box behind ray", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1)), math.Inf(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, 0.001, tt.tMax); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestAABB_UnionAndAxis(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(2, -1, 0), NewVec3(5, 0, 1))
	u := a.Union(b)

	if !u.Contains(a) || !u.Contains(b) {
		t.Errorf("Union %v does not contain both boxes", u)
	}
	if axis := u.LongestAxis(); axis != 0 {
		t.Errorf("Expected longest axis 0, got %d", axis)
	}
	if c := u.Center(); c != NewVec3(2.5, 0, 0.5) {
		t.Errorf("Expected center (2.5,0,0.5), got %v", c)
	}
}
