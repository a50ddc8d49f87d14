package texture

import (
	"math"
	"math/rand"

	"github.com/ilandmann/pathtracer/pkg/core"
)

const perlinPointCount = 256

// Perlin is a lattice-noise generator (spec.md §4.6): a 256-entry random
// float table plus three 256-entry permutations, one per axis, combined
// by XOR-ing the permuted lattice indices.
type Perlin struct {
	randFloat []float64
	permX     []int
	permY     []int
	permZ     []int
}

// NewPerlin builds a Perlin noise generator from the given random source,
// so scenes can request reproducible noise across renders.
func NewPerlin(r *rand.Rand) *Perlin {
	randFloat := make([]float64, perlinPointCount)
	for i := range randFloat {
		randFloat[i] = r.Float64()
	}
	return &Perlin{
		randFloat: randFloat,
		permX:     generatePerm(r),
		permY:     generatePerm(r),
		permZ:     generatePerm(r),
	}
}

func generatePerm(r *rand.Rand) []int {
	p := make([]int, perlinPointCount)
	for i := range p {
		p[i] = i
	}
	for i := len(p) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}

// Noise returns a scalar lattice-noise value for a world-space point
// (spec.md §4.6): table[permX[i]^permY[j]^permZ[k]] with i,j,k the low 8
// bits of ⌊4·coord⌋.
func (p *Perlin) Noise(point core.Vec3) float64 {
	i := int(math.Floor(4*point.X)) & 255
	j := int(math.Floor(4*point.Y)) & 255
	k := int(math.Floor(4*point.Z)) & 255
	return p.randFloat[p.permX[i]^p.permY[j]^p.permZ[k]]
}

// NoiseTexture maps Perlin noise to grayscale, scaled by a spatial
// frequency (spec.md §4.6, "a scalar used as grey").
type NoiseTexture struct {
	noise *Perlin
	scale float64
}

// NewNoiseTexture builds a grayscale Perlin texture at the given
// frequency scale.
func NewNoiseTexture(r *rand.Rand, scale float64) *NoiseTexture {
	return &NoiseTexture{noise: NewPerlin(r), scale: scale}
}

// Value implements Texture.
func (n *NoiseTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	grey := n.noise.Noise(p.Multiply(n.scale))
	return core.NewVec3(1, 1, 1).Multiply(grey)
}
