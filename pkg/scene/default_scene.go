package scene

import (
	"github.com/rmark/go-path-tracer/pkg/core"
	"github.com/rmark/go-path-tracer/pkg/geometry"
	"github.com/rmark/go-path-tracer/pkg/material"
	"github.com/rmark/go-path-tracer/pkg/renderer"
)

// NewDefaultScene creates a small deterministic scene: a diffuse ground
// sphere and three unit-spaced spheres showing each material model. Useful
// for quick iteration and as a stable fixture in tests.
func NewDefaultScene(aspectRatio float64) *Scene {
	cameraConfig := renderer.CameraConfig{
		LookFrom:      core.NewPoint(0, 0, 0),
		LookAt:        core.NewPoint(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          90.0,
		AspectRatio:   aspectRatio,
		Aperture:      0.0,
		FocusDistance: 1.0,
	}

	ground := material.NewLambertian(core.NewColor(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewColor(0.1, 0.2, 0.5))
	left := material.NewDielectric(1.5)
	right := material.NewMetal(core.NewColor(0.8, 0.6, 0.2), 0.0)

	world := geometry.World{
		geometry.NewSphere(core.NewPoint(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewPoint(0, 0, -1), 0.5, center),
		geometry.NewSphere(core.NewPoint(-1, 0, -1), 0.5, left),
		geometry.NewSphere(core.NewPoint(1, 0, -1), 0.5, right),
	}

	return NewScene(cameraConfig, world)
}
