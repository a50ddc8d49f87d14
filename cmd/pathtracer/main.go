package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/ilandmann/pathtracer/pkg/core"
	"github.com/ilandmann/pathtracer/pkg/renderer"
	"github.com/ilandmann/pathtracer/pkg/scene"
)

// Options holds the parsed command-line configuration for a render.
type Options struct {
	SceneName  string
	ConfigFile string
	ImageFile  string
	MeshFile   string
	Output     string
	Workers    int
	Seed       int64
	Help       bool
}

func main() {
	opts := parseFlags()
	if opts.Help {
		showHelp()
		return
	}

	logger := renderer.NewDefaultLogger()

	sceneObj, err := createScene(opts, logger)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}

	cam := renderer.NewCamera(sceneObj.Camera.ToRendererConfig())

	out, err := openOutput(opts.Output)
	if err != nil {
		fmt.Printf("Error opening output: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	logger.Printf("Rendering %q: %dx%d, %d samples/pixel, %d workers",
		opts.SceneName, cam.ImageWidth, cam.ImageHeight, cam.SamplesPerPixel, opts.Workers)

	start := time.Now()
	pool := renderer.NewRenderPool(opts.Workers)
	rows := pool.Render(cam, sceneObj.World, opts.Seed, progressReporter(logger))
	elapsed := time.Since(start)

	if err := renderer.WritePPM(out, cam.ImageWidth, cam.ImageHeight, rows); err != nil {
		fmt.Printf("Error writing image: %v\n", err)
		os.Exit(1)
	}

	logger.Printf("Render completed in %v", elapsed)
}

func parseFlags() Options {
	opts := Options{}
	flag.StringVar(&opts.SceneName, "scene", "hollow-glass", "Scene to render")
	flag.StringVar(&opts.ConfigFile, "config", "", "Optional TOML file overriding the scene's camera settings")
	flag.StringVar(&opts.ImageFile, "image", "", "Texture image file for the 'textured' scene")
	flag.StringVar(&opts.MeshFile, "mesh", "", "OBJ mesh file for the 'mesh' scene")
	flag.StringVar(&opts.Output, "output", "", "PPM output path (defaults to stdout)")
	flag.IntVar(&opts.Workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.Int64Var(&opts.Seed, "seed", 1, "Random seed for sampling")
	flag.BoolVar(&opts.Help, "help", false, "Show help information")
	flag.Parse()
	return opts
}

func showHelp() {
	fmt.Println("pathtracer")
	fmt.Println("Usage: pathtracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Built-in scenes:")
	fmt.Println("  book-cover    - field of random spheres around three feature spheres")
	fmt.Println("  cornell       - Cornell box with a tall and a short rotated box")
	fmt.Println("  foggy-cornell - Cornell box with the two boxes replaced by fog")
	fmt.Println("  hollow-glass  - three spheres, one a hollow glass shell (default)")
	fmt.Println("  textured      - checker, Perlin noise, and image-textured spheres")
	fmt.Println("  mesh          - OBJ mesh loaded onto a ground plane")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  pathtracer -scene=cornell -output=cornell.ppm")
	fmt.Println("  pathtracer -scene=textured -image=earth.jpg -workers=8")
	fmt.Println("  pathtracer -scene=mesh -mesh=dragon.obj -output=dragon.ppm")
}

func createScene(opts Options, logger core.Logger) (scene.Scene, error) {
	random := rand.New(rand.NewSource(opts.Seed))

	var s scene.Scene
	switch opts.SceneName {
	case "book-cover":
		s = scene.BookCover(random)
	case "cornell":
		s = scene.CornellBox()
	case "foggy-cornell":
		s = scene.FoggyCornellBox(random)
	case "hollow-glass":
		s = scene.HollowGlassSphere()
	case "textured":
		s = scene.TexturedGallery(random, opts.ImageFile)
	case "mesh":
		s = scene.MeshGallery(random, logger, opts.MeshFile)
	default:
		return scene.Scene{}, fmt.Errorf("unknown scene: %s", opts.SceneName)
	}

	if opts.ConfigFile != "" {
		cfg, err := scene.LoadCameraConfig(opts.ConfigFile)
		if err != nil {
			return scene.Scene{}, err
		}
		s.Camera = cfg
	}

	return s, nil
}

func openOutput(path string) (*os.File, error) {
	if path == "" {
		return os.Stdout, nil
	}
	return os.Create(path)
}

// progressReporter logs scanline completion once per distinct integer
// percentage through logger, never directly to stdout (reserved for the
// PPM stream when -output is unset).
func progressReporter(logger core.Logger) func(completed, total int) {
	reported := -1
	return func(completed, total int) {
		percent := completed * 100 / total
		if percent == reported {
			return
		}
		reported = percent
		logger.Printf("Rows completed: %d/%d (%d%%)", completed, total, percent)
	}
}
