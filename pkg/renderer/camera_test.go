package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/ilandmann/pathtracer/pkg/core"
)

func TestNewCameraImageHeightAtLeastOne(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ImageWidth = 1
	cfg.AspectRatio = 100.0
	cam := NewCamera(cfg)
	if cam.ImageHeight < 1 {
		t.Errorf("image height = %d, want at least 1", cam.ImageHeight)
	}
}

func TestCameraRayPointsTowardLookAt(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LookFrom = core.NewVec3(0, 0, 0)
	cfg.LookAt = core.NewVec3(0, 0, -1)
	cfg.VFov = 40
	cam := NewCamera(cfg)

	random := rand.New(rand.NewSource(1))
	centerX := cam.ImageWidth / 2
	centerY := cam.ImageHeight / 2
	ray := cam.Ray(centerX, centerY, random)

	dir := ray.Direction.Unit()
	if dir.Z >= 0 {
		t.Errorf("center ray should point toward -Z, got direction %v", dir)
	}
}

func TestCameraDefocusDiskOriginatesOffCenterWhenEnabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefocusAngle = 10
	cfg.FocusDist = 5
	cam := NewCamera(cfg)

	random := rand.New(rand.NewSource(2))
	sawOffCenter := false
	for i := 0; i < 50; i++ {
		ray := cam.Ray(cam.ImageWidth/2, cam.ImageHeight/2, random)
		if ray.Origin.Subtract(cam.center).Length() > 1e-6 {
			sawOffCenter = true
			break
		}
	}
	if !sawOffCenter {
		t.Error("expected some rays to originate off-center when defocus is enabled")
	}
}

func TestCameraZeroDefocusAlwaysOriginatesAtCenter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefocusAngle = 0
	cam := NewCamera(cfg)
	random := rand.New(rand.NewSource(3))

	for i := 0; i < 10; i++ {
		ray := cam.Ray(0, 0, random)
		if ray.Origin != cam.center {
			t.Errorf("ray origin = %v, want camera center %v", ray.Origin, cam.center)
		}
	}
}

func TestCameraShutterTimeIsWithinUnitInterval(t *testing.T) {
	cam := NewCamera(DefaultConfig())
	random := rand.New(rand.NewSource(4))
	for i := 0; i < 50; i++ {
		ray := cam.Ray(0, 0, random)
		if ray.Time < 0 || ray.Time >= 1 {
			t.Errorf("shutter time %f out of [0,1)", ray.Time)
		}
	}
}

func TestCameraViewportWidthMatchesAspectRatio(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ImageWidth = 400
	cfg.AspectRatio = 2.0
	cam := NewCamera(cfg)

	u := cam.pixelDeltaU.Multiply(float64(cam.ImageWidth)).Length()
	v := cam.pixelDeltaV.Multiply(float64(cam.ImageHeight)).Length()
	ratio := u / v
	if math.Abs(ratio-float64(cam.ImageWidth)/float64(cam.ImageHeight)) > 0.05 {
		t.Errorf("viewport aspect ratio %f does not match image aspect ratio", ratio)
	}
}
