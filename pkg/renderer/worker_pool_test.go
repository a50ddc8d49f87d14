package renderer

import (
	"testing"

	"github.com/ilandmann/pathtracer/pkg/core"
	"github.com/ilandmann/pathtracer/pkg/geometry"
	"github.com/ilandmann/pathtracer/pkg/material"
)

func testScene() (*Camera, geometry.Hittable) {
	cfg := DefaultConfig()
	cfg.ImageWidth = 16
	cfg.AspectRatio = 1.0
	cfg.SamplesPerPixel = 4
	cfg.MaxDepth = 4
	cfg.Background = core.NewVec3(0.5, 0.7, 1.0)
	cam := NewCamera(cfg)

	lambert := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambert)
	return cam, world
}

func TestRenderRowProducesOnePixelPerColumn(t *testing.T) {
	cam, world := testScene()
	row := RenderRow(cam, world, 42, 0)
	if len(row.Pixels) != cam.ImageWidth {
		t.Fatalf("row has %d pixels, want %d", len(row.Pixels), cam.ImageWidth)
	}
}

func TestRenderRowIsDeterministicForFixedSeed(t *testing.T) {
	cam, world := testScene()
	a := RenderRow(cam, world, 7, 3)
	b := RenderRow(cam, world, 7, 3)
	for i := range a.Pixels {
		if a.Pixels[i] != b.Pixels[i] {
			t.Fatalf("pixel %d differs across identical seeds: %v vs %v", i, a.Pixels[i], b.Pixels[i])
		}
	}
}

func TestRenderPoolReturnsAllRowsInOrder(t *testing.T) {
	cam, world := testScene()
	pool := NewRenderPool(4)
	rows := pool.Render(cam, world, 11, nil)

	if len(rows) != cam.ImageHeight {
		t.Fatalf("got %d rows, want %d", len(rows), cam.ImageHeight)
	}
	for y, row := range rows {
		if row.Y != y {
			t.Errorf("row at index %d has Y=%d", y, row.Y)
		}
	}
}

func TestRenderPoolMatchesSequentialRowRendering(t *testing.T) {
	cam, world := testScene()
	pool := NewRenderPool(4)
	rows := pool.Render(cam, world, 99, nil)

	for y := 0; y < cam.ImageHeight; y++ {
		want := RenderRow(cam, world, 99, y)
		got := rows[y]
		for x := range want.Pixels {
			if want.Pixels[x] != got.Pixels[x] {
				t.Fatalf("row %d pixel %d: pool=%v sequential=%v", y, x, got.Pixels[x], want.Pixels[x])
			}
		}
	}
}

func TestRenderPoolReportsProgress(t *testing.T) {
	cam, world := testScene()
	pool := NewRenderPool(2)

	var completedCalls []int
	pool.Render(cam, world, 5, func(completed, total int) {
		completedCalls = append(completedCalls, completed)
		if total != cam.ImageHeight {
			t.Errorf("total = %d, want %d", total, cam.ImageHeight)
		}
	})

	if len(completedCalls) != cam.ImageHeight {
		t.Fatalf("expected %d progress callbacks, got %d", cam.ImageHeight, len(completedCalls))
	}
}
