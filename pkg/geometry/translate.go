package geometry

import (
	"github.com/ilandmann/pathtracer/pkg/core"
	"github.com/ilandmann/pathtracer/pkg/material"
)

// Translate offsets a hittable in world space (spec.md §4.4): the
// incoming ray is moved into object space by -offset, dispatched, and the
// hit point translated back by +offset. The normal is unaffected.
type Translate struct {
	Object Hittable
	Offset core.Vec3
	bbox   core.AABB
}

// NewTranslate wraps a hittable with a world-space offset.
func NewTranslate(object Hittable, offset core.Vec3) *Translate {
	return &Translate{
		Object: object,
		Offset: offset,
		bbox:   object.BoundingBox().Translate(offset),
	}
}

// Hit implements Hittable.
func (tr *Translate) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	objectRay := core.NewRayAtTime(ray.Origin.Subtract(tr.Offset), ray.Direction, ray.Time)

	hit, ok := tr.Object.Hit(objectRay, tMin, tMax)
	if !ok {
		return material.HitRecord{}, false
	}

	hit.Point = hit.Point.Add(tr.Offset)
	return hit, true
}

// BoundingBox implements Hittable.
func (tr *Translate) BoundingBox() core.AABB {
	return tr.bbox
}
