package core

import (
	"math"
	"math/rand"
)

// RandomVec3 returns a vector with each component uniform in [minVal, maxVal)
func RandomVec3(random *rand.Rand, minVal, maxVal float64) Vec3 {
	span := maxVal - minVal
	return NewVec3(
		minVal+span*random.Float64(),
		minVal+span*random.Float64(),
		minVal+span*random.Float64(),
	)
}

// RandomInUnitSphere generates a random point inside a unit sphere
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		// Generate random point in [-1,1]³ cube
		p := RandomVec3(random, -1, 1)
		// Accept if inside unit sphere
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomUnitVector generates a uniform random direction on the unit sphere
func RandomUnitVector(random *rand.Rand) Vec3 {
	z := 1.0 - 2.0*random.Float64() // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * random.Float64()
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// RandomInUnitDisk generates a random point in a unit disk (for depth of field)
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		// Generate random point in [-1,1] x [-1,1] square
		p := NewVec3(2*random.Float64()-1, 2*random.Float64()-1, 0)
		// Accept if inside unit disk
		if p.Dot(p) < 1.0 {
			return p
		}
	}
}
