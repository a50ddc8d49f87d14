package material

import (
	"math/rand"

	"github.com/ilandmann/pathtracer/pkg/core"
	"github.com/ilandmann/pathtracer/pkg/texture"
)

// Lambertian is a perfectly diffuse material (spec.md §4.7): the scatter
// direction is normal + a random unit vector, substituting the normal
// itself if that sum is degenerate.
type Lambertian struct {
	Albedo texture.Texture
}

// NewLambertian builds a Lambertian material from a solid color.
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: texture.NewSolid(albedo)}
}

// NewLambertianTexture builds a Lambertian material from any texture.
func NewLambertianTexture(albedo texture.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements Material.
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	direction := hit.Normal.Add(core.RandomUnitVector(random))
	if direction.NearZero() {
		direction = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, direction, rayIn.Time),
		Attenuation: l.Albedo.Value(hit.U, hit.V, hit.Point),
	}, true
}

// Emitted implements Material: Lambertian never emits.
func (l *Lambertian) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}
