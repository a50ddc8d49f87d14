package geometry

import (
	"math"

	"github.com/ilandmann/pathtracer/pkg/core"
	"github.com/ilandmann/pathtracer/pkg/material"
)

// Quad is a planar parallelogram Q + αu + βv, α,β ∈ [0,1] (spec.md §4.3).
type Quad struct {
	Corner   core.Vec3
	U, V     core.Vec3
	Normal   core.Vec3
	D        float64
	W        core.Vec3
	Material material.Material
}

// NewQuad builds a quad from a corner and two edge vectors.
func NewQuad(corner, u, v core.Vec3, mat material.Material) *Quad {
	n := u.Cross(v)
	normal := n.Unit()
	d := normal.Dot(corner)
	w := n.Multiply(1.0 / n.Dot(n))

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		D:        d,
		W:        w,
		Material: mat,
	}
}

// hitAlphaBeta tests the plane intersection and, if it lands within the
// quad, returns the hit t and barycentric (alpha, beta) coordinates.
func (q *Quad) hitAlphaBeta(ray core.Ray, tMin, tMax float64) (t, alpha, beta float64, ok bool) {
	denom := ray.Direction.Dot(q.Normal)
	if math.Abs(denom) < 1e-8 {
		return 0, 0, 0, false
	}

	t = (q.D - ray.Origin.Dot(q.Normal)) / denom
	if t < tMin || t > tMax {
		return 0, 0, 0, false
	}

	hitPoint := ray.At(t)
	ph := hitPoint.Subtract(q.Corner)
	alpha = q.W.Dot(ph.Cross(q.V))
	beta = q.W.Dot(q.U.Cross(ph))

	return t, alpha, beta, true
}

func insideUnitSquare(alpha, beta float64) bool {
	return alpha >= 0 && alpha <= 1 && beta >= 0 && beta <= 1
}

// Hit implements Hittable.
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	t, alpha, beta, ok := q.hitAlphaBeta(ray, tMin, tMax)
	if !ok || !insideUnitSquare(alpha, beta) {
		return material.HitRecord{}, false
	}

	hit := material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: q.Material,
		U:        alpha,
		V:        beta,
	}
	hit.SetFaceNormal(ray, q.Normal)

	return hit, true
}

// BoundingBox implements Hittable: the padded box of the four corners.
func (q *Quad) BoundingBox() core.AABB {
	a := q.Corner
	b := q.Corner.Add(q.U)
	c := q.Corner.Add(q.V)
	d := q.Corner.Add(q.U).Add(q.V)

	box := core.NewAABBFromPoints(a, b)
	box = box.Union(core.NewAABBFromPoints(c, d))
	return box.Pad()
}
