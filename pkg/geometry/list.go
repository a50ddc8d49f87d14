package geometry

import (
	"github.com/ilandmann/pathtracer/pkg/core"
	"github.com/ilandmann/pathtracer/pkg/material"
)

// List is an unordered collection of hittables; Hit tracks the closest
// intersection by clipping the upper t-bound to the best t found so far
// (spec.md §4.4). BoundingBox is the union of every child's box.
type List struct {
	Objects []Hittable
}

// NewList builds a list from the given objects.
func NewList(objects ...Hittable) *List {
	return &List{Objects: objects}
}

// Add appends a hittable to the list.
func (l *List) Add(h Hittable) {
	l.Objects = append(l.Objects, h)
}

// Hit implements Hittable.
func (l *List) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	var closest material.HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, obj := range l.Objects {
		if hit, ok := obj.Hit(ray, tMin, closestSoFar); ok {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, hitAnything
}

// BoundingBox implements Hittable: the union of every child's box.
func (l *List) BoundingBox() core.AABB {
	if len(l.Objects) == 0 {
		return core.EmptyAABB()
	}
	box := l.Objects[0].BoundingBox()
	for _, obj := range l.Objects[1:] {
		box = box.Union(obj.BoundingBox())
	}
	return box
}
