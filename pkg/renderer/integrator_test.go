package renderer

import (
	"math/rand"
	"testing"

	"github.com/ilandmann/pathtracer/pkg/core"
	"github.com/ilandmann/pathtracer/pkg/geometry"
	"github.com/ilandmann/pathtracer/pkg/material"
)

type missWorld struct{}

func (missWorld) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	return material.HitRecord{}, false
}
func (missWorld) BoundingBox() core.AABB { return core.EmptyAABB() }

func TestRayColorZeroDepthIsBlack(t *testing.T) {
	random := rand.New(rand.NewSource(1))
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	got := RayColor(ray, 0, missWorld{}, core.NewVec3(1, 1, 1), random)
	if got != (core.Vec3{}) {
		t.Errorf("RayColor at depth 0 = %v, want black", got)
	}
}

func TestRayColorMissReturnsBackground(t *testing.T) {
	random := rand.New(rand.NewSource(2))
	background := core.NewVec3(0.5, 0.6, 0.7)
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	got := RayColor(ray, 10, missWorld{}, background, random)
	if got != background {
		t.Errorf("RayColor miss = %v, want background %v", got, background)
	}
}

func TestRayColorEmissiveSurfaceReturnsEmissionOnly(t *testing.T) {
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -5), 1, light)

	random := rand.New(rand.NewSource(3))
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	got := RayColor(ray, 10, sphere, core.Vec3{}, random)
	if got != core.NewVec3(4, 4, 4) {
		t.Errorf("RayColor against a light = %v, want (4,4,4)", got)
	}
}

func TestRayColorScattersRecursively(t *testing.T) {
	lambert := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -5), 1, lambert)

	random := rand.New(rand.NewSource(4))
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	background := core.NewVec3(1, 1, 1)
	got := RayColor(ray, 5, sphere, background, random)

	// A diffuse bounce attenuates the background; result should be
	// strictly dimmer than the raw background in every channel.
	if got.X >= background.X && got.Y >= background.Y && got.Z >= background.Z {
		t.Errorf("expected attenuated color, got %v against background %v", got, background)
	}
}
