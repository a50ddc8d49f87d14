// Package scene builds camera configuration and ready-to-render worlds
// (spec.md §4.8, §6). Camera and sampling settings are read from a TOML
// file so a render can be reconfigured without touching code, following
// the toml.DecodeFile idiom used elsewhere in the dependency pack.
package scene

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/ilandmann/pathtracer/pkg/core"
	"github.com/ilandmann/pathtracer/pkg/renderer"
)

// CameraConfig mirrors renderer.Config in a TOML-friendly shape (plain
// floats/ints, no Vec3) so scene files can set it field by field.
type CameraConfig struct {
	AspectRatio     float64 `toml:"aspect_ratio"`
	ImageWidth      int     `toml:"image_width"`
	SamplesPerPixel int     `toml:"samples_per_pixel"`
	MaxDepth        int     `toml:"max_depth"`

	BackgroundR float64 `toml:"background_r"`
	BackgroundG float64 `toml:"background_g"`
	BackgroundB float64 `toml:"background_b"`

	VFov float64 `toml:"vfov"`

	LookFromX float64 `toml:"lookfrom_x"`
	LookFromY float64 `toml:"lookfrom_y"`
	LookFromZ float64 `toml:"lookfrom_z"`

	LookAtX float64 `toml:"lookat_x"`
	LookAtY float64 `toml:"lookat_y"`
	LookAtZ float64 `toml:"lookat_z"`

	VUpX float64 `toml:"vup_x"`
	VUpY float64 `toml:"vup_y"`
	VUpZ float64 `toml:"vup_z"`

	DefocusAngle float64 `toml:"defocus_angle"`
	FocusDist    float64 `toml:"focus_dist"`
}

// DefaultCameraConfig mirrors renderer.DefaultConfig in TOML-friendly form.
func DefaultCameraConfig() CameraConfig {
	d := renderer.DefaultConfig()
	return CameraConfig{
		AspectRatio:     d.AspectRatio,
		ImageWidth:      d.ImageWidth,
		SamplesPerPixel: d.SamplesPerPixel,
		MaxDepth:        d.MaxDepth,
		BackgroundR:     d.Background.X,
		BackgroundG:     d.Background.Y,
		BackgroundB:     d.Background.Z,
		VFov:            d.VFov,
		LookFromX:       d.LookFrom.X,
		LookFromY:       d.LookFrom.Y,
		LookFromZ:       d.LookFrom.Z,
		LookAtX:         d.LookAt.X,
		LookAtY:         d.LookAt.Y,
		LookAtZ:         d.LookAt.Z,
		VUpX:            d.VUp.X,
		VUpY:            d.VUp.Y,
		VUpZ:            d.VUp.Z,
		DefocusAngle:    d.DefocusAngle,
		FocusDist:       d.FocusDist,
	}
}

// LoadCameraConfig reads a TOML scene configuration file, starting from
// DefaultCameraConfig so an omitted field keeps its default value.
func LoadCameraConfig(path string) (CameraConfig, error) {
	cfg := DefaultCameraConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return CameraConfig{}, fmt.Errorf("scene: decode camera config %s: %w", path, err)
	}
	return cfg, nil
}

// ToRendererConfig converts the TOML-friendly shape into renderer.Config.
func (c CameraConfig) ToRendererConfig() renderer.Config {
	return renderer.Config{
		AspectRatio:     c.AspectRatio,
		ImageWidth:      c.ImageWidth,
		SamplesPerPixel: c.SamplesPerPixel,
		MaxDepth:        c.MaxDepth,
		Background:      core.NewVec3(c.BackgroundR, c.BackgroundG, c.BackgroundB),
		VFov:            c.VFov,
		LookFrom:        core.NewVec3(c.LookFromX, c.LookFromY, c.LookFromZ),
		LookAt:          core.NewVec3(c.LookAtX, c.LookAtY, c.LookAtZ),
		VUp:             core.NewVec3(c.VUpX, c.VUpY, c.VUpZ),
		DefocusAngle:    c.DefocusAngle,
		FocusDist:       c.FocusDist,
	}
}
