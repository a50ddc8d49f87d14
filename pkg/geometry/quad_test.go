package geometry

import (
	"math"
	"testing"

	"github.com/ilandmann/pathtracer/pkg/core"
)

func TestQuadHitBasicIntersection(t *testing.T) {
	corner := core.NewVec3(0, 0, 0)
	u := core.NewVec3(1, 0, 0)
	v := core.NewVec3(0, 0, 1)
	quad := NewQuad(corner, u, v, dummyMaterial{})

	ray := core.NewRay(core.NewVec3(0.5, 1, 0.5), core.NewVec3(0, -1, 0))
	hit, isHit := quad.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("expected hit, got miss")
	}
	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("t = %f, want 1.0", hit.T)
	}
	expectedPoint := core.NewVec3(0.5, 0, 0.5)
	if hit.Point.Subtract(expectedPoint).Length() > 1e-9 {
		t.Errorf("hit point = %v, want %v", hit.Point, expectedPoint)
	}
	if math.Abs(hit.U-0.5) > 1e-9 || math.Abs(hit.V-0.5) > 1e-9 {
		t.Errorf("uv = (%f,%f), want (0.5,0.5)", hit.U, hit.V)
	}
}

func TestQuadHitOutsideBounds(t *testing.T) {
	corner := core.NewVec3(0, 0, 0)
	u := core.NewVec3(1, 0, 0)
	v := core.NewVec3(0, 0, 1)
	quad := NewQuad(corner, u, v, dummyMaterial{})

	tests := []struct {
		name      string
		rayOrigin core.Vec3
	}{
		{"outside X negative", core.NewVec3(-0.5, 1, 0.5)},
		{"outside X positive", core.NewVec3(1.5, 1, 0.5)},
		{"outside Z negative", core.NewVec3(0.5, 1, -0.5)},
		{"outside Z positive", core.NewVec3(0.5, 1, 1.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, core.NewVec3(0, -1, 0))
			if _, isHit := quad.Hit(ray, 0.001, 1000.0); isHit {
				t.Error("expected miss outside quad bounds")
			}
		})
	}
}

func TestQuadHitParallelRayMisses(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), dummyMaterial{})
	ray := core.NewRay(core.NewVec3(0.5, 1, 0.5), core.NewVec3(1, 0, 0))
	if _, isHit := quad.Hit(ray, 0.001, 1000.0); isHit {
		t.Error("expected miss for ray parallel to quad plane")
	}
}

func TestQuadBoundingBoxContainsCorners(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 3), dummyMaterial{})
	box := quad.BoundingBox()
	if !box.X.Contains(0) || !box.X.Contains(2) || !box.Z.Contains(0) || !box.Z.Contains(3) {
		t.Errorf("bounding box %v does not contain quad corners", box)
	}
	if box.Y.Size() <= 0 {
		t.Error("padded bounding box should have nonzero extent on the flat axis")
	}
}
