package material

import (
	"math"
	"math/rand"

	"github.com/ilandmann/pathtracer/pkg/core"
)

// Dielectric is a transparent refractive material (glass, water, spec.md
// §4.7). It never absorbs color; reflect-versus-refract is chosen
// stochastically by Schlick reflectance plus a total-internal-reflection
// check.
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric builds a dielectric with the given index of refraction
// (e.g. 1.5 for glass, 1.33 for water).
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements Material.
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	attenuation := core.NewVec3(1, 1, 1)

	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex
	} else {
		refractionRatio = d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Unit()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > random.Float64() {
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = unitDirection.Refract(hit.Normal, refractionRatio)
	}

	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, direction, rayIn.Time),
		Attenuation: attenuation,
	}, true
}

// Emitted implements Material: Dielectric never emits.
func (d *Dielectric) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// Reflectance computes Fresnel reflectance via Schlick's approximation.
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
