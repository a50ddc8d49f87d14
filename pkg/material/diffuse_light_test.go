package material

import (
	"math/rand"
	"testing"

	"github.com/ilandmann/pathtracer/pkg/core"
)

func TestDiffuseLightNeverScatters(t *testing.T) {
	light := NewDiffuseLight(core.NewVec3(4, 4, 4))
	random := rand.New(rand.NewSource(1))

	rayIn := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
	hit := HitRecord{Point: core.NewVec3(1, 0, 0), Normal: core.NewVec3(-1, 0, 0)}

	_, ok := light.Scatter(rayIn, hit, random)
	if ok {
		t.Error("DiffuseLight should never scatter")
	}
}

func TestDiffuseLightEmitsItsColor(t *testing.T) {
	color := core.NewVec3(4, 4, 4)
	light := NewDiffuseLight(color)

	got := light.Emitted(0, 0, core.NewVec3(1, 2, 3))
	if got != color {
		t.Errorf("Emitted = %v, want %v", got, color)
	}
}
