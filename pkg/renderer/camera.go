package renderer

import (
	"math"
	"math/rand"

	"github.com/ilandmann/pathtracer/pkg/core"
)

// Config holds the camera and sampling parameters spec.md §4.8 requires.
type Config struct {
	AspectRatio     float64
	ImageWidth      int
	SamplesPerPixel int
	MaxDepth        int
	Background      core.Vec3

	VFov         float64
	LookFrom     core.Vec3
	LookAt       core.Vec3
	VUp          core.Vec3
	DefocusAngle float64
	FocusDist    float64
}

// DefaultConfig returns sane defaults for every field a caller doesn't set.
func DefaultConfig() Config {
	return Config{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Background:      core.NewVec3(0, 0, 0),
		VFov:            90,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		VUp:             core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDist:       10,
	}
}

// Camera derives the viewport and defocus-disk geometry from Config once
// at construction (spec.md §4.8) and produces primary rays per pixel
// sample thereafter.
type Camera struct {
	Config
	ImageHeight int

	center         core.Vec3
	pixel00Loc     core.Vec3
	pixelDeltaU    core.Vec3
	pixelDeltaV    core.Vec3
	u, v, w        core.Vec3
	defocusDiskU   core.Vec3
	defocusDiskV   core.Vec3
}

// NewCamera builds a camera from cfg.
func NewCamera(cfg Config) *Camera {
	c := &Camera{Config: cfg}

	c.ImageHeight = int(float64(cfg.ImageWidth) / cfg.AspectRatio)
	if c.ImageHeight < 1 {
		c.ImageHeight = 1
	}

	c.center = cfg.LookFrom

	theta := cfg.VFov * math.Pi / 180.0
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * cfg.FocusDist
	viewportWidth := viewportHeight * float64(cfg.ImageWidth) / float64(c.ImageHeight)

	c.w = cfg.LookFrom.Subtract(cfg.LookAt).Unit()
	c.u = cfg.VUp.Cross(c.w).Unit()
	c.v = c.w.Cross(c.u)

	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)

	c.pixelDeltaU = viewportU.Divide(float64(cfg.ImageWidth))
	c.pixelDeltaV = viewportV.Divide(float64(c.ImageHeight))

	viewportUpperLeft := c.center.
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2)).
		Subtract(c.w.Multiply(cfg.FocusDist))
	c.pixel00Loc = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	defocusRadius := cfg.FocusDist * math.Tan(cfg.DefocusAngle/2*math.Pi/180.0)
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)

	return c
}

// Ray produces a primary ray for pixel (i, j), sampled within its pixel
// square and, when depth of field is enabled, originating from a random
// point on the defocus disk (spec.md §4.8).
func (c *Camera) Ray(i, j int, random *rand.Rand) core.Ray {
	pixelCenter := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i))).
		Add(c.pixelDeltaV.Multiply(float64(j)))
	pixelSample := pixelCenter.Add(c.pixelSampleSquare(random))

	var origin core.Vec3
	if c.DefocusAngle <= 0 {
		origin = c.center
	} else {
		origin = c.defocusDiskSample(random)
	}

	direction := pixelSample.Subtract(origin)
	time := core.RandomDouble(random)

	return core.NewRayAtTime(origin, direction, time)
}

func (c *Camera) pixelSampleSquare(random *rand.Rand) core.Vec3 {
	px := -0.5 + core.RandomDouble(random)
	py := -0.5 + core.RandomDouble(random)
	return c.pixelDeltaU.Multiply(px).Add(c.pixelDeltaV.Multiply(py))
}

func (c *Camera) defocusDiskSample(random *rand.Rand) core.Vec3 {
	p := core.RandomInUnitDisk(random)
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}
