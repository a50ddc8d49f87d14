package renderer

import (
	"math"
	"math/rand"

	"github.com/ilandmann/pathtracer/pkg/core"
	"github.com/ilandmann/pathtracer/pkg/geometry"
)

// RayColor is the recursive radiance estimator L(r, depth, world)
// (spec.md §4.8): it terminates at depth zero, falls back to the
// configured background on a miss, and otherwise accumulates emitted
// light plus attenuated recursive scatter.
func RayColor(ray core.Ray, depth int, world geometry.Hittable, background core.Vec3, random *rand.Rand) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, ok := world.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		return background
	}

	emitted := hit.Material.Emitted(hit.U, hit.V, hit.Point)

	scatter, scattered := hit.Material.Scatter(ray, hit, random)
	if !scattered {
		return emitted
	}

	incoming := RayColor(scatter.Scattered, depth-1, world, background, random)
	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}
