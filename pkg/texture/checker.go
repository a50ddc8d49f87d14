package texture

import (
	"math"

	"github.com/ilandmann/pathtracer/pkg/core"
)

// Checker is a 3-D spatial checkerboard (spec.md §4.6): the parity of
// ⌊p.X·s⌋+⌊p.Y·s⌋+⌊p.Z·s⌋ selects between two sub-textures, where
// s = 1/Scale. It samples world position, not (u, v).
type Checker struct {
	InvScale float64
	Even     Texture
	Odd      Texture
}

// NewChecker builds a checker texture from a physical cell scale and two
// solid colors.
func NewChecker(scale float64, even, odd core.Vec3) *Checker {
	return &Checker{
		InvScale: 1.0 / scale,
		Even:     NewSolid(even),
		Odd:      NewSolid(odd),
	}
}

// NewCheckerTextures builds a checker texture from two arbitrary
// sub-textures (e.g. image or Perlin), rather than solid colors.
func NewCheckerTextures(scale float64, even, odd Texture) *Checker {
	return &Checker{InvScale: 1.0 / scale, Even: even, Odd: odd}
}

// Value implements Texture.
func (c *Checker) Value(u, v float64, p core.Vec3) core.Vec3 {
	x := int(math.Floor(c.InvScale * p.X))
	y := int(math.Floor(c.InvScale * p.Y))
	z := int(math.Floor(c.InvScale * p.Z))

	if (x+y+z)%2 == 0 {
		return c.Even.Value(u, v, p)
	}
	return c.Odd.Value(u, v, p)
}
