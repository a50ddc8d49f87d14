package renderer

import (
	"runtime"
	"sync"

	"github.com/ilandmann/pathtracer/pkg/core"
	"github.com/ilandmann/pathtracer/pkg/geometry"
)

// Row is one scanline of rendered pixels, gamma-corrected and clamped to
// byte triples (spec.md §4.8).
type Row struct {
	Y      int
	Pixels [][3]byte
}

// RenderRow draws one scanline of the image: samplesPerPixel primary rays
// per pixel, averaged, gamma-2 encoded and clamped (spec.md §4.8). Each
// sample seeds its own generator from (seed, x, y, sample) for
// reproducibility.
func RenderRow(cam *Camera, world geometry.Hittable, seed int64, y int) Row {
	pixels := make([][3]byte, cam.ImageWidth)

	for x := 0; x < cam.ImageWidth; x++ {
		color := core.Vec3{}
		for s := 0; s < cam.SamplesPerPixel; s++ {
			random := core.PixelRandom(seed, x, y, s)
			ray := cam.Ray(x, y, random)
			color = color.Add(RayColor(ray, cam.MaxDepth, world, cam.Background, random))
		}
		pixels[x] = toRGBByte(color, cam.SamplesPerPixel)
	}

	return Row{Y: y, Pixels: pixels}
}

func toRGBByte(sum core.Vec3, samples int) [3]byte {
	avg := sum.Divide(float64(samples))
	gamma := avg.GammaCorrect(2.0)
	clamped := gamma.Clamp(0.0, 0.999)
	return [3]byte{
		byte(clamped.X * 256),
		byte(clamped.Y * 256),
		byte(clamped.Z * 256),
	}
}

// RenderPool renders an image row-parallel across numWorkers goroutines
// (spec.md §5): rows are independent units of work; a single collector
// reassembles them in scanline order before handing the image to a writer.
type RenderPool struct {
	NumWorkers int
}

// NewRenderPool builds a pool; numWorkers <= 0 defaults to runtime.NumCPU().
func NewRenderPool(numWorkers int) *RenderPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &RenderPool{NumWorkers: numWorkers}
}

// Render draws every scanline of cam's image and returns rows in
// top-to-bottom order. onRow, if non-nil, is invoked after each row
// completes (for progress reporting) and must not block the caller for
// long since it runs on the collecting goroutine.
func (p *RenderPool) Render(cam *Camera, world geometry.Hittable, seed int64, onRow func(completed, total int)) []Row {
	total := cam.ImageHeight
	rows := make([]Row, total)

	jobs := make(chan int)
	results := make(chan Row)

	var wg sync.WaitGroup
	for i := 0; i < p.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range jobs {
				results <- RenderRow(cam, world, seed, y)
			}
		}()
	}

	go func() {
		for y := 0; y < total; y++ {
			jobs <- y
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	completed := 0
	for row := range results {
		rows[row.Y] = row
		completed++
		if onRow != nil {
			onRow(completed, total)
		}
	}

	return rows
}
