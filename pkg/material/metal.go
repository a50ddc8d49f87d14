package material

import (
	"math/rand"

	"github.com/ilandmann/pathtracer/pkg/core"
)

// Metal is a specular reflector with an optional fuzz perturbation
// (spec.md §4.7). Fuzz is clamped to [0,1] at construction.
type Metal struct {
	Albedo core.Vec3
	Fuzz   float64
}

// NewMetal builds a metal material, clamping fuzz to [0,1].
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter implements Material. Scattering fails (ray absorbed) when the
// fuzz-perturbed reflection would point back into the surface.
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	reflected := rayIn.Direction.Unit().Reflect(hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomUnitVector(random).Multiply(m.Fuzz))
	}

	scattered := core.NewRayAtTime(hit.Point, reflected, rayIn.Time)
	ok := scattered.Direction.Dot(hit.Normal) > 0

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
	}, ok
}

// Emitted implements Material: Metal never emits.
func (m *Metal) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}
