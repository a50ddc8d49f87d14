package core

import "math"

// AABB is an axis-aligned bounding box expressed as one Interval per axis
// (spec.md §3). Representing each axis as an Interval — rather than two
// corner Vec3s, as the teacher's pkg/core/aabb.go does — lets Pad reuse
// Interval.Expand per axis (original_source/src/aabb.h).
type AABB struct {
	X, Y, Z Interval
}

// EmptyAABB bounds nothing.
func EmptyAABB() AABB {
	return AABB{EmptyInterval(), EmptyInterval(), EmptyInterval()}
}

// NewAABB builds a box directly from three intervals.
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}
}

// NewAABBFromPoints bounds two points, taking component-wise min/max so
// callers may pass extrema in either order (spec.md §3).
func NewAABBFromPoints(a, b Vec3) AABB {
	mkAxis := func(lo, hi float64) Interval {
		if lo > hi {
			lo, hi = hi, lo
		}
		return Interval{Lo: lo, Hi: hi}
	}
	return AABB{
		X: mkAxis(a.X, b.X),
		Y: mkAxis(a.Y, b.Y),
		Z: mkAxis(a.Z, b.Z),
	}
}

// Axis returns the interval for axis 0=X, 1=Y, 2=Z.
func (b AABB) Axis(n int) Interval {
	switch n {
	case 0:
		return b.X
	case 1:
		return b.Y
	default:
		return b.Z
	}
}

// Pad ensures no axis has zero extent, so a slab test never degenerates
// for an axis-aligned planar primitive (spec.md §3, "AABB").
func (b AABB) Pad() AABB {
	const delta = 0.0001
	pad := func(iv Interval) Interval {
		if iv.Size() < delta {
			return iv.Expand(delta)
		}
		return iv
	}
	return AABB{X: pad(b.X), Y: pad(b.Y), Z: pad(b.Z)}
}

// Union returns the smallest AABB containing both boxes.
func (b AABB) Union(o AABB) AABB {
	return AABB{
		X: IntervalUnion(b.X, o.X),
		Y: IntervalUnion(b.Y, o.Y),
		Z: IntervalUnion(b.Z, o.Z),
	}
}

// Translate offsets every axis interval by the matching component.
func (b AABB) Translate(offset Vec3) AABB {
	return AABB{
		X: b.X.Translate(offset.X),
		Y: b.Y.Translate(offset.Y),
		Z: b.Z.Translate(offset.Z),
	}
}

// Min returns the box's minimum corner.
func (b AABB) Min() Vec3 {
	return Vec3{b.X.Lo, b.Y.Lo, b.Z.Lo}
}

// Max returns the box's maximum corner.
func (b AABB) Max() Vec3 {
	return Vec3{b.X.Hi, b.Y.Hi, b.Z.Hi}
}

// Center returns the midpoint of the box.
func (b AABB) Center() Vec3 {
	return b.Min().Add(b.Max()).Multiply(0.5)
}

// LongestAxis returns 0/1/2 for the axis with the greatest extent, used
// by the BVH builder's split heuristic (spec.md §4.5).
func (b AABB) LongestAxis() int {
	sx, sy, sz := b.X.Size(), b.Y.Size(), b.Z.Size()
	if sx > sy && sx > sz {
		return 0
	}
	if sy > sz {
		return 1
	}
	return 2
}

// Hit implements the slab test from spec.md §4.2: per-axis entry/exit t
// computed from (lo-origin)/dir and (hi-origin)/dir, intersected with the
// running [tMin, tMax], rejecting when the interval collapses.
func (b AABB) Hit(r Ray, rayT Interval) bool {
	for axis := 0; axis < 3; axis++ {
		iv := b.Axis(axis)
		var origin, dir float64
		switch axis {
		case 0:
			origin, dir = r.Origin.X, r.Direction.X
		case 1:
			origin, dir = r.Origin.Y, r.Direction.Y
		default:
			origin, dir = r.Origin.Z, r.Direction.Z
		}

		if dir == 0 {
			// Ray parallel to this slab: only a hit if origin already lies
			// within the slab; never treat a NaN ratio as an intersection.
			if origin < iv.Lo || origin > iv.Hi {
				return false
			}
			continue
		}

		invD := 1.0 / dir
		t0 := (iv.Lo - origin) * invD
		t1 := (iv.Hi - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}

		if t0 > rayT.Lo {
			rayT.Lo = t0
		}
		if t1 < rayT.Hi {
			rayT.Hi = t1
		}
		if rayT.Hi <= rayT.Lo {
			return false
		}
	}
	return !math.IsNaN(rayT.Lo) && !math.IsNaN(rayT.Hi)
}
