package geometry

import (
	"github.com/ilandmann/pathtracer/pkg/core"
	"github.com/ilandmann/pathtracer/pkg/material"
)

// NewMesh assembles a triangle soup from a shared vertex array and a flat
// index array of length 3N (spec.md §4.3): triangle i uses vertices
// indices[3i], indices[3i+1], indices[3i+2] as (Q, Q+u, Q+v). The result
// is exposed as a hittable list, which the caller should wrap in a BVH.
func NewMesh(vertices []core.Vec3, indices []int, mat material.Material) *List {
	triCount := len(indices) / 3
	triangles := make([]Hittable, 0, triCount)

	for i := 0; i < triCount; i++ {
		v0 := vertices[indices[3*i]]
		v1 := vertices[indices[3*i+1]]
		v2 := vertices[indices[3*i+2]]
		triangles = append(triangles, NewTriangle(v0, v1, v2, mat))
	}

	return NewList(triangles...)
}
