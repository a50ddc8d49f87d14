package geometry

import (
	"testing"

	"github.com/ilandmann/pathtracer/pkg/core"
)

func TestListHitReturnsClosest(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -1), 0.5, dummyMaterial{})
	far := NewSphere(core.NewVec3(0, 0, -5), 0.5, dummyMaterial{})
	list := NewList(far, near)

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	hit, ok := list.Hit(ray, 0.001, 1000)
	if !ok {
		t.Fatal("expected hit")
	}
	if hit.Point.Subtract(core.NewVec3(0, 0, -0.5)).Length() > 1e-9 {
		t.Errorf("expected closest hit near z=-0.5, got %v", hit.Point)
	}
}

func TestListHitMissWhenEmpty(t *testing.T) {
	list := NewList()
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	if _, ok := list.Hit(ray, 0.001, 1000); ok {
		t.Error("empty list should never report a hit")
	}
}

func TestListBoundingBoxUnion(t *testing.T) {
	a := NewSphere(core.NewVec3(-5, 0, 0), 1, dummyMaterial{})
	b := NewSphere(core.NewVec3(5, 0, 0), 1, dummyMaterial{})
	list := NewList(a, b)

	box := list.BoundingBox()
	if !box.X.Contains(-6) || !box.X.Contains(6) {
		t.Errorf("union bounding box %v should span both spheres", box)
	}
}
