package texture

import (
	"github.com/ilandmann/pathtracer/pkg/core"
)

// debugCyan is returned when no image data is available, acting as a
// visible debug signal for a missing texture (spec.md §7).
var debugCyan = core.NewVec3(0, 1, 1)

// Image samples a decoded pixel raster by (u, v) (spec.md §4.6): clamps
// u to [0, 1], flips v, indexes ⌊u·W⌋, ⌊v·H⌋, and divides by 255. Source
// is nil-safe: a missing image renders solid cyan.
type Image struct {
	Source PixelSource
}

// NewImage wraps a decoded pixel source. Source may be nil to represent
// "texture failed to load" (spec.md §7).
func NewImage(source PixelSource) *Image {
	return &Image{Source: source}
}

// Value implements Texture.
func (img *Image) Value(u, v float64, p core.Vec3) core.Vec3 {
	if img.Source == nil || img.Source.Height() <= 0 {
		return debugCyan
	}

	u = core.NewInterval(0, 1).Clamp(u)
	v = 1.0 - core.NewInterval(0, 1).Clamp(v) // flip v to image coordinates

	w := img.Source.Width()
	h := img.Source.Height()

	i := int(u * float64(w))
	j := int(v * float64(h))
	if i >= w {
		i = w - 1
	}
	if j >= h {
		j = h - 1
	}

	r, g, b := img.Source.Pixel(i, j)
	const colorScale = 1.0 / 255.0
	return core.NewVec3(float64(r)*colorScale, float64(g)*colorScale, float64(b)*colorScale)
}
