package geometry

import (
	"github.com/ilandmann/pathtracer/pkg/core"
	"github.com/ilandmann/pathtracer/pkg/material"
)

// Cuboid is an axis-aligned box built from six quads spanning two opposite
// corners (spec.md §4.3, the preferred implementation). Rotated boxes are
// built by wrapping a Cuboid in Translate/RotateY rather than baking
// rotation in here.
type Cuboid struct {
	sides *List
	bbox  core.AABB
}

// NewCuboid builds a box between any two opposite corners (order-independent).
func NewCuboid(p0, p1 core.Vec3, mat material.Material) *Cuboid {
	min := core.NewVec3(minf(p0.X, p1.X), minf(p0.Y, p1.Y), minf(p0.Z, p1.Z))
	max := core.NewVec3(maxf(p0.X, p1.X), maxf(p0.Y, p1.Y), maxf(p0.Z, p1.Z))

	dx := core.NewVec3(max.X-min.X, 0, 0)
	dy := core.NewVec3(0, max.Y-min.Y, 0)
	dz := core.NewVec3(0, 0, max.Z-min.Z)

	sides := NewList(
		NewQuad(core.NewVec3(min.X, min.Y, max.Z), dx, dy, mat),  // front
		NewQuad(core.NewVec3(max.X, min.Y, max.Z), dz.Negate(), dy, mat), // right
		NewQuad(core.NewVec3(max.X, min.Y, min.Z), dx.Negate(), dy, mat), // back
		NewQuad(core.NewVec3(min.X, min.Y, min.Z), dz, dy, mat),  // left
		NewQuad(core.NewVec3(min.X, max.Y, max.Z), dx, dz.Negate(), mat), // top
		NewQuad(core.NewVec3(min.X, min.Y, min.Z), dx, dz, mat),  // bottom
	)

	return &Cuboid{sides: sides, bbox: core.NewAABBFromPoints(min, max)}
}

// Hit implements Hittable.
func (c *Cuboid) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	return c.sides.Hit(ray, tMin, tMax)
}

// BoundingBox implements Hittable.
func (c *Cuboid) BoundingBox() core.AABB {
	return c.bbox
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
