package texture

import "github.com/ilandmann/pathtracer/pkg/core"

// Solid returns a stored color regardless of inputs (spec.md §4.6).
type Solid struct {
	Color core.Vec3
}

// NewSolid builds a solid texture from a color.
func NewSolid(color core.Vec3) *Solid {
	return &Solid{Color: color}
}

// NewSolidRGB is a convenience constructor from three channel values.
func NewSolidRGB(r, g, b float64) *Solid {
	return &Solid{Color: core.NewVec3(r, g, b)}
}

// Value implements Texture.
func (s *Solid) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}
