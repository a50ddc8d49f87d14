// Package texture implements the Texture contract from spec.md §3/§4.6:
// a deterministic mapping (u, v, p) → color, with Solid, Checker, Image
// and Perlin-noise variants.
package texture

import "github.com/ilandmann/pathtracer/pkg/core"

// Texture maps surface coordinates and a world-space point to a color.
// Implementations must be deterministic given their inputs (spec.md §3).
type Texture interface {
	Value(u, v float64, p core.Vec3) core.Vec3
}

// PixelSource is the external collaborator spec.md §1 and §6 describe:
// an 8-bit RGB raster decoded elsewhere, exposing only width, height and
// an (x, y) pixel fetch. The core never parses an image file itself.
type PixelSource interface {
	Width() int
	Height() int
	// Pixel returns the byte triple at (x, y); x and y are assumed
	// already clamped to [0, Width) / [0, Height).
	Pixel(x, y int) (r, g, b byte)
}
