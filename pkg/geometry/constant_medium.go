package geometry

import (
	"math"
	"math/rand"

	"github.com/ilandmann/pathtracer/pkg/core"
	"github.com/ilandmann/pathtracer/pkg/material"
)

// ConstantMedium treats its boundary as an isotropically-scattering
// participating medium of uniform density (spec.md §4.4), e.g. fog or
// smoke trapped inside a box or sphere.
type ConstantMedium struct {
	Boundary      Hittable
	Density       float64
	PhaseFunction material.Material
	Random        *rand.Rand
}

// NewConstantMedium builds a fog volume from a solid color.
func NewConstantMedium(boundary Hittable, density float64, albedo core.Vec3, random *rand.Rand) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		Density:       density,
		PhaseFunction: material.NewIsotropic(albedo),
		Random:        random,
	}
}

// Hit implements Hittable.
func (c *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	hit1, ok := c.Boundary.Hit(ray, math.Inf(-1), math.Inf(1))
	if !ok {
		return material.HitRecord{}, false
	}

	hit2, ok := c.Boundary.Hit(ray, hit1.T+0.0001, math.Inf(1))
	if !ok {
		return material.HitRecord{}, false
	}

	if hit1.T < tMin {
		hit1.T = tMin
	}
	if hit2.T > tMax {
		hit2.T = tMax
	}
	if hit1.T >= hit2.T {
		return material.HitRecord{}, false
	}
	if hit1.T < 0 {
		hit1.T = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (hit2.T - hit1.T) * rayLength
	hitDistance := -math.Log(1.0-c.Random.Float64()) / c.Density

	if hitDistance > distanceInsideBoundary {
		return material.HitRecord{}, false
	}

	t := hit1.T + hitDistance/rayLength
	hit := material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0),
		FrontFace: true,
		Material:  c.PhaseFunction,
	}

	return hit, true
}

// BoundingBox implements Hittable.
func (c *ConstantMedium) BoundingBox() core.AABB {
	return c.Boundary.BoundingBox()
}
