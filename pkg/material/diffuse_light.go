package material

import (
	"math/rand"

	"github.com/ilandmann/pathtracer/pkg/core"
	"github.com/ilandmann/pathtracer/pkg/texture"
)

// DiffuseLight emits a texture's value and never scatters (spec.md §4.7).
type DiffuseLight struct {
	Emit texture.Texture
}

// NewDiffuseLight builds an emitter from a solid emission color.
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: texture.NewSolid(emission)}
}

// NewDiffuseLightTexture builds an emitter whose emission varies spatially,
// e.g. an image texture used as a light panel.
func NewDiffuseLightTexture(emit texture.Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter implements Material: diffuse lights absorb every incoming ray.
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emitted implements Material.
func (d *DiffuseLight) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return d.Emit.Value(u, v, p)
}
