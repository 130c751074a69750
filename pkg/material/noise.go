package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

const perlinPointCount = 256

// Perlin is a lattice value-noise generator with trilinear smoothing
type Perlin struct {
	randomFloats [perlinPointCount]float64
	permX        [perlinPointCount]int
	permY        [perlinPointCount]int
	permZ        [perlinPointCount]int
}

// NewPerlin builds the noise tables from the given seed so scenes stay reproducible
func NewPerlin(seed int64) *Perlin {
	random := rand.New(rand.NewSource(seed))
	p := &Perlin{}
	for i := range p.randomFloats {
		p.randomFloats[i] = random.Float64()
	}
	p.permX = perlinPermutation(random)
	p.permY = perlinPermutation(random)
	p.permZ = perlinPermutation(random)
	return p
}

func perlinPermutation(random *rand.Rand) [perlinPointCount]int {
	var perm [perlinPointCount]int
	for i := range perm {
		perm[i] = i
	}
	for i := perlinPointCount - 1; i > 0; i-- {
		j := random.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// Noise returns a smooth value in [0,1) at point p
func (p *Perlin) Noise(point core.Vec3) float64 {
	u := point.X - math.Floor(point.X)
	v := point.Y - math.Floor(point.Y)
	w := point.Z - math.Floor(point.Z)
	u = u * u * (3 - 2*u)
	v = v * v * (3 - 2*v)
	w = w * w * (3 - 2*w)

	i := int(math.Floor(point.X))
	j := int(math.Floor(point.Y))
	k := int(math.Floor(point.Z))

	var acc float64
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c := p.randomFloats[p.permX[(i+di)&255]^p.permY[(j+dj)&255]^p.permZ[(k+dk)&255]]
				fi, fj, fk := float64(di), float64(dj), float64(dk)
				acc += (fi*u + (1-fi)*(1-u)) *
					(fj*v + (1-fj)*(1-v)) *
					(fk*w + (1-fk)*(1-w)) * c
			}
		}
	}
	return acc
}

// Turbulence sums seven octaves of noise with halving weights
func (p *Perlin) Turbulence(point core.Vec3) float64 {
	const depth = 7
	acc := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		acc += weight * p.Noise(point)
		weight *= 0.5
		point = point.Multiply(2)
	}
	return math.Abs(acc)
}

// Noise is a marble-like grey texture driven by Perlin turbulence
type Noise struct {
	perlin *Perlin
	Scale  float64
}

// NewNoise creates a noise texture
func NewNoise(scale float64, seed int64) *Noise {
	return &Noise{perlin: NewPerlin(seed), Scale: scale}
}

// Evaluate returns a grey level in [0,1]
func (n *Noise) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	g := 0.5 * (1 + math.Sin(n.Scale*point.Z+10*n.perlin.Turbulence(point)))
	return core.NewVec3(g, g, g)
}
