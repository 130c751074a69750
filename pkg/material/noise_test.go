package material

import (
	"math/rand"
	"testing"
)

func TestPerlinPermutation_IsUniformShuffle(t *testing.T) {
	random := rand.New(rand.NewSource(3))

	withFixedPoint := 0
	singleCycle := 0
	const trials = 40
	for n := 0; n < trials; n++ {
		perm := perlinPermutation(random)

		seen := make([]bool, perlinPointCount)
		fixed := false
		for i, v := range perm {
			if v < 0 || v >= perlinPointCount || seen[v] {
				t.Fatalf("Expected a permutation of 0..%d, got duplicate or out of range %d at %d", perlinPointCount-1, v, i)
			}
			seen[v] = true
			fixed = fixed || v == i
		}
		if fixed {
			withFixedPoint++
		}

		length := 1
		for i := perm[0]; i != 0; i = perm[i] {
			length++
		}
		if length == perlinPointCount {
			singleCycle++
		}
	}

	// A uniform shuffle leaves some entry in place about 63% of the time and
	// rarely forms one full cycle
	if withFixedPoint == 0 {
		t.Errorf("Expected some permutations with a fixed point, got 0 of %d", trials)
	}
	if singleCycle == trials {
		t.Errorf("Expected some permutations with more than one cycle, got %d of %d single cycles", singleCycle, trials)
	}
}

func TestNewPerlin_Deterministic(t *testing.T) {
	tests := []struct {
		name  string
		seedA int64
		seedB int64
		same  bool
	}{
		{"same seed", 7, 7, true},
		{"different seed", 7, 8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := NewPerlin(tt.seedA), NewPerlin(tt.seedB)
			same := a.permX == b.permX && a.permY == b.permY && a.permZ == b.permZ && a.randomFloats == b.randomFloats
			if same != tt.same {
				t.Errorf("Expected same tables %v, got %v", tt.same, same)
			}
		})
	}
}
