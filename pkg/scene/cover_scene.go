package scene

import (
	"math/rand"

	"github.com/rmark/go-path-tracer/pkg/core"
	"github.com/rmark/go-path-tracer/pkg/geometry"
	"github.com/rmark/go-path-tracer/pkg/material"
	"github.com/rmark/go-path-tracer/pkg/renderer"
)

// NewCoverScene builds the classic "book cover" scene: a huge diffuse ground
// sphere, a 22x22 grid of small randomized spheres (mostly diffuse, some
// fuzzy metal, a few glass), and three large feature spheres, viewed through
// a thin lens for visible depth of field.
func NewCoverScene(aspectRatio float64, random *rand.Rand) *Scene {
	cameraConfig := renderer.CameraConfig{
		LookFrom:      core.NewPoint(13, 2, 3),
		LookAt:        core.NewPoint(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   aspectRatio,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}

	world := geometry.World{}

	ground := material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))
	world = append(world, geometry.NewSphere(core.NewPoint(0, -1000, 0), 1000, ground))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMaterial := random.Float64()
			center := core.NewPoint(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			// Keep the grid clear of the big metal sphere
			if center.Subtract(core.NewPoint(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case chooseMaterial < 0.8:
				albedo := core.RandomVec3(0, 1, random).MultiplyVec(core.RandomVec3(0, 1, random))
				mat = material.NewLambertian(albedo)
			case chooseMaterial < 0.95:
				albedo := core.NewColor(
					0.5+0.5*random.Float64(),
					0.5+0.5*random.Float64(),
					0.5+0.5*random.Float64(),
				)
				mat = material.NewMetal(albedo, random.Float64())
			default:
				mat = material.NewDielectric(1.5)
			}
			world = append(world, geometry.NewSphere(center, 0.2, mat))
		}
	}

	world = append(world,
		geometry.NewSphere(core.NewPoint(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewPoint(-4, 1, 0), 1.0, material.NewLambertian(core.NewColor(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewPoint(4, 1, 0), 1.0, material.NewMetal(core.NewColor(0.7, 0.6, 0.6), 0.0)),
	)

	return NewScene(cameraConfig, world)
}
