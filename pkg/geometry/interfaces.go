// Package geometry implements the Hittable primitives, combinators, and
// BVH from spec.md §3/§4.3-§4.5: ray/object intersection and bounding.
package geometry

import (
	"github.com/ilandmann/pathtracer/pkg/core"
	"github.com/ilandmann/pathtracer/pkg/material"
)

// Hittable is the capability set every primitive and combinator
// implements (spec.md §3): ray intersection within a t-interval, and a
// bounding box for BVH construction.
type Hittable interface {
	Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool)
	BoundingBox() core.AABB
}
