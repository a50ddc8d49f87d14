package material

import (
	"math/rand"

	"github.com/ilandmann/pathtracer/pkg/core"
	"github.com/ilandmann/pathtracer/pkg/texture"
)

// Isotropic scatters uniformly in every direction, used as the phase
// function for ConstantMedium (spec.md §4.4/§4.7).
type Isotropic struct {
	Albedo texture.Texture
}

// NewIsotropic builds an isotropic material from a solid color.
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: texture.NewSolid(albedo)}
}

// NewIsotropicTexture builds an isotropic material from any texture.
func NewIsotropicTexture(albedo texture.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter implements Material: direction is uniform over the unit sphere.
func (i *Isotropic) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	direction := core.RandomUnitVector(random)
	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, direction, rayIn.Time),
		Attenuation: i.Albedo.Value(hit.U, hit.V, hit.Point),
	}, true
}

// Emitted implements Material: Isotropic never emits.
func (i *Isotropic) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}
