package scene

import (
	"github.com/rmark/go-path-tracer/pkg/core"
	"github.com/rmark/go-path-tracer/pkg/geometry"
	"github.com/rmark/go-path-tracer/pkg/renderer"
)

// Scene contains everything needed for rendering: the surface list, the
// camera, and the background gradient. Built once, read-only afterwards.
type Scene struct {
	World        geometry.World
	Camera       *renderer.Camera
	CameraConfig renderer.CameraConfig
	TopColor     core.Vec3
	BottomColor  core.Vec3
}

// NewScene creates a scene with the standard white-to-sky-blue background
func NewScene(cameraConfig renderer.CameraConfig, world geometry.World) *Scene {
	return &Scene{
		World:        world,
		Camera:       renderer.NewCamera(cameraConfig),
		CameraConfig: cameraConfig,
		TopColor:     core.NewColor(0.5, 0.7, 1.0),
		BottomColor:  core.NewColor(1.0, 1.0, 1.0),
	}
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetWorld implements renderer.Scene
func (s *Scene) GetWorld() geometry.World {
	return s.World
}

// GetBackgroundColors implements renderer.Scene
func (s *Scene) GetBackgroundColors() (top, bottom core.Vec3) {
	return s.TopColor, s.BottomColor
}
