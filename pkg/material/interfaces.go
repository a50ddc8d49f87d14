// Package material implements the Material contract from spec.md §3/§4.7:
// Scatter produces an attenuation and a scattered ray (or signals
// absorption by returning false), and Emitted returns a material's own
// light contribution. HitRecord lives in this package, not core, to
// avoid a core↔material import cycle (core would need Material for the
// record, material needs core.Ray/Vec3 for everything else).
package material

import (
	"math/rand"

	"github.com/ilandmann/pathtracer/pkg/core"
)

// Material is the scatter/emit contract every surface material
// implements (spec.md §3). Attenuation must stay in [0,1]^3 for
// energy-conserving materials (Lambertian, Metal, Isotropic); Dielectric
// is the one variant whose attenuation is always exactly (1,1,1).
type Material interface {
	// Scatter returns the outgoing ray and its color attenuation; ok is
	// false when the incoming ray is fully absorbed.
	Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool)

	// Emitted returns this material's own light contribution at (u, v, p).
	// Every material except DiffuseLight returns black here.
	Emitted(u, v float64, p core.Vec3) core.Vec3
}

// ScatterResult is what a successful Scatter call produces.
type ScatterResult struct {
	Scattered   core.Ray
	Attenuation core.Vec3
}

// HitRecord carries everything a material or integrator needs at a
// ray-primitive intersection (spec.md §3).
type HitRecord struct {
	Point     core.Vec3
	Normal    core.Vec3 // unit length, oriented against the incoming ray
	T         float64
	U, V      float64
	FrontFace bool
	Material  Material
}

// SetFaceNormal orients Normal against the incoming ray and records
// whether the ray hit the primitive's front face (spec.md §3: "a shared
// reference to the hit surface's material" plus front-face bookkeeping).
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
