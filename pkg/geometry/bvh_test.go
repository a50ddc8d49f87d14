package geometry

import (
	"math/rand"
	"testing"

	"github.com/ilandmann/pathtracer/pkg/core"
)

func spheresAlongX(n int) []Hittable {
	objs := make([]Hittable, n)
	for i := 0; i < n; i++ {
		objs[i] = NewSphere(core.NewVec3(float64(i)*3, 0, 0), 1, dummyMaterial{})
	}
	return objs
}

func TestBVHFindsSameClosestHitAsLinearList(t *testing.T) {
	objs := spheresAlongX(20)
	list := NewList(objs...)
	bvh := NewBVH(objs, rand.New(rand.NewSource(4)))

	random := rand.New(rand.NewSource(99))
	for i := 0; i < 200; i++ {
		origin := core.NewVec3(core.RandomDoubleRange(random, -5, 60), core.RandomDoubleRange(random, -3, 3), 10)
		dir := core.NewVec3(0, 0, -1)
		ray := core.NewRay(origin, dir)

		listHit, listOK := list.Hit(ray, 0.001, 1000)
		bvhHit, bvhOK := bvh.Hit(ray, 0.001, 1000)

		if listOK != bvhOK {
			t.Fatalf("hit mismatch for ray from %v: list=%v bvh=%v", origin, listOK, bvhOK)
		}
		if listOK && bvhHit.T != listHit.T {
			t.Errorf("closest-t mismatch for ray from %v: list=%f bvh=%f", origin, listHit.T, bvhHit.T)
		}
	}
}

func TestBVHHandlesSingletonAndEmpty(t *testing.T) {
	random := rand.New(rand.NewSource(1))

	empty := NewBVH(nil, random)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	if _, ok := empty.Hit(ray, 0.001, 1000); ok {
		t.Error("empty BVH should never report a hit")
	}

	single := NewBVH([]Hittable{NewSphere(core.NewVec3(0, 0, 0), 1, dummyMaterial{})}, random)
	if _, ok := single.Hit(ray, 0.001, 1000); !ok {
		t.Error("singleton BVH should hit its one child")
	}
}

func TestBVHBoundingBoxUnionsAllChildren(t *testing.T) {
	objs := spheresAlongX(5)
	bvh := NewBVH(objs, rand.New(rand.NewSource(5)))
	box := bvh.BoundingBox()
	if !box.X.Contains(-1) || !box.X.Contains(13) {
		t.Errorf("BVH bounding box %v should span all child spheres", box.X)
	}
}
