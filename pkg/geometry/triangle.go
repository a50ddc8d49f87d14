package geometry

import (
	"github.com/ilandmann/pathtracer/pkg/core"
	"github.com/ilandmann/pathtracer/pkg/material"
)

// Triangle reuses Quad's plane intersection (spec.md §4.3) with the
// interior test α≥0 ∧ β≥0 ∧ α+β≤1 instead of the unit square.
type Triangle struct {
	quad *Quad
}

// NewTriangle builds a triangle from vertex Q and edges u = v1-Q, v = v2-Q.
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	return &Triangle{quad: NewQuad(v0, v1.Subtract(v0), v2.Subtract(v0), mat)}
}

// Hit implements Hittable.
func (tr *Triangle) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	t, alpha, beta, ok := tr.quad.hitAlphaBeta(ray, tMin, tMax)
	if !ok || alpha < 0 || beta < 0 || alpha+beta > 1 {
		return material.HitRecord{}, false
	}

	hit := material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: tr.quad.Material,
		U:        alpha,
		V:        beta,
	}
	hit.SetFaceNormal(ray, tr.quad.Normal)

	return hit, true
}

// BoundingBox implements Hittable: the padded box of the three vertices.
func (tr *Triangle) BoundingBox() core.AABB {
	q := tr.quad
	v0 := q.Corner
	v1 := q.Corner.Add(q.U)
	v2 := q.Corner.Add(q.V)

	box := core.NewAABBFromPoints(v0, v1)
	box = box.Union(core.NewAABBFromPoints(v2, v2))
	return box.Pad()
}
