package scene

import (
	"math/rand"

	"github.com/ilandmann/pathtracer/pkg/core"
	"github.com/ilandmann/pathtracer/pkg/geometry"
	"github.com/ilandmann/pathtracer/pkg/loaders"
	"github.com/ilandmann/pathtracer/pkg/material"
	"github.com/ilandmann/pathtracer/pkg/texture"
)

// Scene bundles a renderable world with the camera configuration it was
// designed for, so a gallery entry is a single self-contained value.
type Scene struct {
	World  geometry.Hittable
	Camera CameraConfig
}

// BookCover builds the classic field of random spheres around three
// feature spheres, wrapped in a BVH. It exists primarily to exercise
// the BVH against a nontrivial object count, but renders fine on its
// own as a gallery scene.
func BookCover(random *rand.Rand) Scene {
	var objects []geometry.Hittable

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	objects = append(objects, geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(
				float64(a)+0.9*core.RandomDouble(random),
				0.2,
				float64(b)+0.9*core.RandomDouble(random),
			)
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			chooseMat := core.RandomDouble(random)
			var mat material.Material
			switch {
			case chooseMat < 0.8:
				albedo := randomVec3(random).MultiplyVec(randomVec3(random))
				mat = material.NewLambertian(albedo)
				center2 := center.Add(core.NewVec3(0, core.RandomDoubleRange(random, 0, 0.5), 0))
				objects = append(objects, geometry.NewMovingSphere(center, center2, 0.2, mat))
				continue
			case chooseMat < 0.95:
				albedo := randomVec3Range(random, 0.5, 1)
				fuzz := core.RandomDoubleRange(random, 0, 0.5)
				mat = material.NewMetal(albedo, fuzz)
			default:
				mat = material.NewDielectric(1.5)
			}
			objects = append(objects, geometry.NewSphere(center, 0.2, mat))
		}
	}

	glass := material.NewDielectric(1.5)
	objects = append(objects, geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass))

	diffuse := material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))
	objects = append(objects, geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, diffuse))

	metal := material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)
	objects = append(objects, geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, metal))

	world := geometry.NewBVH(objects, random)

	cfg := DefaultCameraConfig()
	cfg.AspectRatio = 16.0 / 9.0
	cfg.ImageWidth = 600
	cfg.SamplesPerPixel = 100
	cfg.MaxDepth = 50
	cfg.VFov = 20
	cfg.LookFromX, cfg.LookFromY, cfg.LookFromZ = 13, 2, 3
	cfg.LookAtX, cfg.LookAtY, cfg.LookAtZ = 0, 0, 0
	cfg.DefocusAngle = 0.6
	cfg.FocusDist = 10.0
	cfg.BackgroundR, cfg.BackgroundG, cfg.BackgroundB = 0.70, 0.80, 1.00

	return Scene{World: world, Camera: cfg}
}

// CornellBox builds the standard five-walled box with a light in the
// ceiling and two boxes, a tall pillar and a short cube, each rotated
// about Y and translated into place.
func CornellBox() Scene {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	world := geometry.NewList(
		geometry.NewQuad(core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), green),
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), red),
		geometry.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), light),
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white),
		geometry.NewQuad(core.NewVec3(555, 555, 555), core.NewVec3(-555, 0, 0), core.NewVec3(0, 0, -555), white),
		geometry.NewQuad(core.NewVec3(0, 0, 555), core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), white),
	)

	tall := geometry.NewCuboid(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	var tallBox geometry.Hittable = geometry.NewRotateY(tall, core.DegreesToRadians(15))
	tallBox = geometry.NewTranslate(tallBox, core.NewVec3(265, 0, 295))
	world.Add(tallBox)

	short := geometry.NewCuboid(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	var shortBox geometry.Hittable = geometry.NewRotateY(short, core.DegreesToRadians(-18))
	shortBox = geometry.NewTranslate(shortBox, core.NewVec3(130, 0, 65))
	world.Add(shortBox)

	cfg := DefaultCameraConfig()
	cfg.AspectRatio = 1.0
	cfg.ImageWidth = 600
	cfg.SamplesPerPixel = 200
	cfg.MaxDepth = 50
	cfg.VFov = 40
	cfg.LookFromX, cfg.LookFromY, cfg.LookFromZ = 278, 278, -800
	cfg.LookAtX, cfg.LookAtY, cfg.LookAtZ = 278, 278, 0
	cfg.DefocusAngle = 0

	return Scene{World: world, Camera: cfg}
}

// HollowGlassSphere nests a negative-radius sphere inside a positive one
// of the same center to model a thin glass shell, per spec.md §4.9's
// dielectric hollow-shell recipe.
func HollowGlassSphere() Scene {
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	glass := material.NewDielectric(1.5)
	metal := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)

	world := geometry.NewList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(0, 0, -1), -0.45, glass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, metal),
	)

	cfg := DefaultCameraConfig()
	cfg.AspectRatio = 16.0 / 9.0
	cfg.ImageWidth = 400
	cfg.SamplesPerPixel = 100
	cfg.MaxDepth = 50
	cfg.VFov = 20
	cfg.LookFromX, cfg.LookFromY, cfg.LookFromZ = -2, 2, 1
	cfg.LookAtX, cfg.LookAtY, cfg.LookAtZ = 0, 0, -1
	cfg.DefocusAngle = 0
	cfg.BackgroundR, cfg.BackgroundG, cfg.BackgroundB = 0.70, 0.80, 1.00

	return Scene{World: world, Camera: cfg}
}

// FoggyCornellBox replaces CornellBox's two solid boxes with constant
// density media, one smoke-dark and one mist-light.
func FoggyCornellBox(random *rand.Rand) Scene {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))

	world := geometry.NewList(
		geometry.NewQuad(core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), green),
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), red),
		geometry.NewQuad(core.NewVec3(113, 554, 127), core.NewVec3(330, 0, 0), core.NewVec3(0, 0, 305), light),
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white),
		geometry.NewQuad(core.NewVec3(555, 555, 555), core.NewVec3(-555, 0, 0), core.NewVec3(0, 0, -555), white),
		geometry.NewQuad(core.NewVec3(0, 0, 555), core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), white),
	)

	tall := geometry.NewCuboid(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	var tallBox geometry.Hittable = geometry.NewRotateY(tall, core.DegreesToRadians(15))
	tallBox = geometry.NewTranslate(tallBox, core.NewVec3(265, 0, 295))
	world.Add(geometry.NewConstantMedium(tallBox, 0.01, core.NewVec3(0, 0, 0), random))

	short := geometry.NewCuboid(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	var shortBox geometry.Hittable = geometry.NewRotateY(short, core.DegreesToRadians(-18))
	shortBox = geometry.NewTranslate(shortBox, core.NewVec3(130, 0, 65))
	world.Add(geometry.NewConstantMedium(shortBox, 0.01, core.NewVec3(1, 1, 1), random))

	cfg := DefaultCameraConfig()
	cfg.AspectRatio = 1.0
	cfg.ImageWidth = 600
	cfg.SamplesPerPixel = 200
	cfg.MaxDepth = 50
	cfg.VFov = 40
	cfg.LookFromX, cfg.LookFromY, cfg.LookFromZ = 278, 278, -800
	cfg.LookAtX, cfg.LookAtY, cfg.LookAtZ = 278, 278, 0
	cfg.DefocusAngle = 0

	return Scene{World: world, Camera: cfg}
}

// TexturedGallery arranges three spheres side by side, one checkered,
// one with grey Perlin lattice noise, and one wrapped in an image texture when a
// texture file is available; it falls back to a solid gray sphere when
// loading the image fails, so the gallery still renders without assets.
func TexturedGallery(random *rand.Rand, imageFile string) Scene {
	checker := texture.NewChecker(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	checkerMat := material.NewLambertianTexture(checker)

	noise := texture.NewNoiseTexture(random, 4.0)
	noiseMat := material.NewLambertianTexture(noise)

	var imageMat material.Material
	if imageFile != "" {
		if source, err := loaders.LoadImage(imageFile); err == nil {
			imageMat = material.NewLambertianTexture(texture.NewImage(source))
		}
	}
	if imageMat == nil {
		imageMat = material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	}

	world := geometry.NewList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, checkerMat),
		geometry.NewSphere(core.NewVec3(-3, 2, 0), 2, noiseMat),
		geometry.NewSphere(core.NewVec3(3, 2, 0), 2, imageMat),
	)

	cfg := DefaultCameraConfig()
	cfg.AspectRatio = 16.0 / 9.0
	cfg.ImageWidth = 400
	cfg.SamplesPerPixel = 100
	cfg.MaxDepth = 50
	cfg.VFov = 20
	cfg.LookFromX, cfg.LookFromY, cfg.LookFromZ = 13, 2, 3
	cfg.LookAtX, cfg.LookAtY, cfg.LookAtZ = 0, 0, 0
	cfg.DefocusAngle = 0
	cfg.BackgroundR, cfg.BackgroundG, cfg.BackgroundB = 0.70, 0.80, 1.00

	return Scene{World: world, Camera: cfg}
}

// MeshGallery loads a triangle mesh from an OBJ file onto a ground
// plane, wrapping the triangle soup in its own BVH before adding it to
// the world so a large mesh doesn't degrade the top-level traversal.
// A missing or unreadable OBJ file still renders the ground plane alone,
// since LoadOBJ reports the failure to logger rather than erroring out.
func MeshGallery(random *rand.Rand, logger core.Logger, objFile string) Scene {
	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world := geometry.NewList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground),
	)

	mesh, err := loaders.LoadOBJ(objFile, 1.0, logger)
	if err != nil {
		logger.Printf("scene: mesh gallery: %v", err)
	} else if len(mesh.Indices) > 0 {
		clay := material.NewLambertian(core.NewVec3(0.6, 0.55, 0.5))
		triangles := geometry.NewMesh(mesh.Vertices, mesh.Indices, clay)
		model := geometry.NewBVH(triangles.Objects, random)
		model = geometry.NewRotateY(model, core.DegreesToRadians(15))
		model = geometry.NewTranslate(model, core.NewVec3(0, 1, 0))
		world.Add(model)
	}

	cfg := DefaultCameraConfig()
	cfg.AspectRatio = 16.0 / 9.0
	cfg.ImageWidth = 400
	cfg.SamplesPerPixel = 100
	cfg.MaxDepth = 50
	cfg.VFov = 20
	cfg.LookFromX, cfg.LookFromY, cfg.LookFromZ = 0, 3, 8
	cfg.LookAtX, cfg.LookAtY, cfg.LookAtZ = 0, 1, 0
	cfg.DefocusAngle = 0
	cfg.BackgroundR, cfg.BackgroundG, cfg.BackgroundB = 0.70, 0.80, 1.00

	return Scene{World: world, Camera: cfg}
}

func randomVec3(random *rand.Rand) core.Vec3 {
	return core.NewVec3(core.RandomDouble(random), core.RandomDouble(random), core.RandomDouble(random))
}

func randomVec3Range(random *rand.Rand, lo, hi float64) core.Vec3 {
	return core.NewVec3(
		core.RandomDoubleRange(random, lo, hi),
		core.RandomDoubleRange(random, lo, hi),
		core.RandomDoubleRange(random, lo, hi),
	)
}
