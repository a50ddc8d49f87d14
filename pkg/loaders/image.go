package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp" // BMP decoder

	"github.com/ilandmann/pathtracer/pkg/texture"
)

// RasterImage decodes a PNG/JPEG/BMP file into an in-memory pixel raster
// and implements texture.PixelSource (spec.md §6).
type RasterImage struct {
	img image.Image
	min image.Point
}

// LoadImage decodes a texture named by filename, searching
// ${RT_TEXTURE_DIR}/filename first (when the environment variable is
// set), then textures/filename, then filename itself (spec.md §6).
func LoadImage(filename string) (*RasterImage, error) {
	path, err := resolveTexturePath(filename)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: open image %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("loaders: decode image %s: %w", path, err)
	}

	return &RasterImage{img: img, min: img.Bounds().Min}, nil
}

// resolveTexturePath tries RT_TEXTURE_DIR/name, then textures/name, then
// name itself, returning the first candidate that exists.
func resolveTexturePath(filename string) (string, error) {
	candidates := make([]string, 0, 3)
	if dir := os.Getenv("RT_TEXTURE_DIR"); dir != "" {
		candidates = append(candidates, filepath.Join(dir, filename))
	}
	candidates = append(candidates, filepath.Join("textures", filename), filename)

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("loaders: texture %s not found in any of %v", filename, candidates)
}

// Width implements texture.PixelSource.
func (r *RasterImage) Width() int {
	return r.img.Bounds().Dx()
}

// Height implements texture.PixelSource.
func (r *RasterImage) Height() int {
	return r.img.Bounds().Dy()
}

// Pixel implements texture.PixelSource: RGBA() returns components in
// [0, 65535]; this narrows to the [0, 255] byte range texture.Image expects.
func (r *RasterImage) Pixel(x, y int) (byte, byte, byte) {
	red, green, blue, _ := r.img.At(r.min.X+x, r.min.Y+y).RGBA()
	return byte(red >> 8), byte(green >> 8), byte(blue >> 8)
}

var _ texture.PixelSource = (*RasterImage)(nil)
