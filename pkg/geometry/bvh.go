package geometry

import (
	"math/rand"
	"sort"

	"github.com/ilandmann/pathtracer/pkg/core"
	"github.com/ilandmann/pathtracer/pkg/material"
)

// BVHNode is a bounding volume hierarchy node built by a recursive median
// split (spec.md §4.5). Leaves hold a single or pair of children directly;
// traversal rejects by the node's own slab test, then recurses left and
// right with the right search clipped to the left hit's t ("closest hit"
// pruning).
type BVHNode struct {
	Left, Right Hittable
	Box         core.AABB
}

// NewBVH builds a hierarchy over objects, splitting along a randomly
// chosen axis at each level (spec.md §4.5 accepts random-axis selection).
func NewBVH(objects []Hittable, random *rand.Rand) Hittable {
	return buildBVH(append([]Hittable(nil), objects...), random)
}

func buildBVH(objects []Hittable, random *rand.Rand) Hittable {
	switch len(objects) {
	case 0:
		return &BVHNode{Box: core.EmptyAABB()}
	case 1:
		return objects[0]
	case 2:
		return &BVHNode{
			Left:  objects[0],
			Right: objects[1],
			Box:   objects[0].BoundingBox().Union(objects[1].BoundingBox()),
		}
	}

	axis := random.Intn(3)
	sort.Slice(objects, func(i, j int) bool {
		return objects[i].BoundingBox().Axis(axis).Lo < objects[j].BoundingBox().Axis(axis).Lo
	})

	mid := len(objects) / 2
	left := buildBVH(objects[:mid], random)
	right := buildBVH(objects[mid:], random)

	return &BVHNode{
		Left:  left,
		Right: right,
		Box:   left.BoundingBox().Union(right.BoundingBox()),
	}
}

// Hit implements Hittable.
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	if !n.Box.Hit(ray, core.NewInterval(tMin, tMax)) {
		return material.HitRecord{}, false
	}

	var leftHit, rightHit material.HitRecord
	hitLeft, hitRight := false, false

	if n.Left != nil {
		leftHit, hitLeft = n.Left.Hit(ray, tMin, tMax)
	}

	rightTMax := tMax
	if hitLeft {
		rightTMax = leftHit.T
	}
	if n.Right != nil {
		rightHit, hitRight = n.Right.Hit(ray, tMin, rightTMax)
	}

	if hitRight {
		return rightHit, true
	}
	if hitLeft {
		return leftHit, true
	}
	return material.HitRecord{}, false
}

// BoundingBox implements Hittable.
func (n *BVHNode) BoundingBox() core.AABB {
	return n.Box
}
