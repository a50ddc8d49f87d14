package geometry

import (
	"math"

	"github.com/ilandmann/pathtracer/pkg/core"
	"github.com/ilandmann/pathtracer/pkg/material"
)

// axisRotation rotates a hittable about one principal axis by theta
// (spec.md §4.4, generalized to all three axes per §8's seeded rotation
// scenarios). Ray origin and direction are rotated by -theta into object
// space, dispatched, then the hit point and normal are rotated by +theta
// back into world space. rotate is one of core.Vec3's RotateX/RotateY/
// RotateZ methods, shared across all three axes via a method expression.
type axisRotation struct {
	Object Hittable
	Theta  float64
	rotate func(core.Vec3, float64) core.Vec3
	bbox   core.AABB
}

func newAxisRotation(object Hittable, theta float64, rotate func(core.Vec3, float64) core.Vec3) *axisRotation {
	childBox := object.BoundingBox()

	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := lerp(childBox.X, i)
				y := lerp(childBox.Y, j)
				z := lerp(childBox.Z, k)

				corner := rotate(core.NewVec3(x, y, z), theta)

				min = core.NewVec3(math.Min(min.X, corner.X), math.Min(min.Y, corner.Y), math.Min(min.Z, corner.Z))
				max = core.NewVec3(math.Max(max.X, corner.X), math.Max(max.Y, corner.Y), math.Max(max.Z, corner.Z))
			}
		}
	}

	return &axisRotation{
		Object: object,
		Theta:  theta,
		rotate: rotate,
		bbox:   core.NewAABBFromPoints(min, max),
	}
}

func lerp(axis core.Interval, side int) float64 {
	if side == 1 {
		return axis.Hi
	}
	return axis.Lo
}

// Hit implements Hittable.
func (r *axisRotation) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	objectRay := core.NewRayAtTime(r.rotate(ray.Origin, -r.Theta), r.rotate(ray.Direction, -r.Theta), ray.Time)

	hit, ok := r.Object.Hit(objectRay, tMin, tMax)
	if !ok {
		return material.HitRecord{}, false
	}

	hit.Point = r.rotate(hit.Point, r.Theta)
	hit.Normal = r.rotate(hit.Normal, r.Theta)
	return hit, true
}

// BoundingBox implements Hittable.
func (r *axisRotation) BoundingBox() core.AABB {
	return r.bbox
}

// RotateX rotates a hittable about the X axis.
type RotateX struct{ *axisRotation }

// NewRotateX builds an X-axis rotation wrapper for the given angle in radians.
func NewRotateX(object Hittable, radians float64) *RotateX {
	return &RotateX{newAxisRotation(object, radians, core.Vec3.RotateX)}
}

// RotateY rotates a hittable about the Y axis.
type RotateY struct{ *axisRotation }

// NewRotateY builds a Y-axis rotation wrapper for the given angle in radians.
func NewRotateY(object Hittable, radians float64) *RotateY {
	return &RotateY{newAxisRotation(object, radians, core.Vec3.RotateY)}
}

// RotateZ rotates a hittable about the Z axis.
type RotateZ struct{ *axisRotation }

// NewRotateZ builds a Z-axis rotation wrapper for the given angle in radians.
func NewRotateZ(object Hittable, radians float64) *RotateZ {
	return &RotateZ{newAxisRotation(object, radians, core.Vec3.RotateZ)}
}
