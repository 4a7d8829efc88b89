package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/rmark/go-path-tracer/pkg/core"
	"github.com/rmark/go-path-tracer/pkg/geometry"
	"github.com/rmark/go-path-tracer/pkg/material"
)

func TestRayColorDepthZeroIsBlack(t *testing.T) {
	pt := NewPathTracer()
	world := geometry.World{
		geometry.NewSphere(core.NewPoint(0, 0, -1), 0.5,
			material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))),
	}
	random := rand.New(rand.NewSource(42))

	rays := []core.Ray{
		core.NewRay(core.NewPoint(0, 0, 0), core.NewVec3(0, 0, -1)),
		core.NewRay(core.NewPoint(1, 2, 3), core.NewVec3(0, 1, 0)),
	}
	for _, ray := range rays {
		if got := pt.RayColor(ray, world, random, 0); got != core.NewColor(0, 0, 0) {
			t.Errorf("depth 0 returned %v, want black", got)
		}
	}
}

func TestRayColorEmptySceneGradient(t *testing.T) {
	pt := NewPathTracer()
	world := geometry.World{}
	random := rand.New(rand.NewSource(42))

	tests := []struct {
		name      string
		direction core.Vec3
		want      core.Vec3
	}{
		{"straight down is white", core.NewVec3(0, -1, 0), core.NewColor(1, 1, 1)},
		{"straight up is sky blue", core.NewVec3(0, 1, 0), core.NewColor(0.5, 0.7, 1.0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewPoint(0, 0, 0), tt.direction)
			got := pt.RayColor(ray, world, random, 50)
			if math.Abs(got.X-tt.want.X) > 1e-9 ||
				math.Abs(got.Y-tt.want.Y) > 1e-9 ||
				math.Abs(got.Z-tt.want.Z) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRayColorGradientIgnoresOrigin(t *testing.T) {
	pt := NewPathTracer()
	world := geometry.World{}
	random := rand.New(rand.NewSource(42))
	direction := core.NewVec3(0.3, 0.4, -0.5)

	a := pt.RayColor(core.NewRay(core.NewPoint(0, 0, 0), direction), world, random, 10)
	b := pt.RayColor(core.NewRay(core.NewPoint(100, -50, 7), direction), world, random, 10)
	if a != b {
		t.Errorf("background depends on ray origin: %v vs %v", a, b)
	}
}

func TestRayColorBoundedRecursionInClosedScene(t *testing.T) {
	// A ray trapped inside a diffuse sphere never escapes; the bounce
	// budget must still drain to zero and return black.
	pt := NewPathTracer()
	world := geometry.World{
		geometry.NewSphere(core.NewPoint(0, 0, 0), 10,
			material.NewLambertian(core.NewColor(0.9, 0.9, 0.9))),
	}
	random := rand.New(rand.NewSource(42))
	ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVec3(0, 0, -1))

	if got := pt.RayColor(ray, world, random, 50); got != core.NewColor(0, 0, 0) {
		t.Errorf("trapped ray returned %v, want black", got)
	}
}

func TestRayColorAttenuatesByAlbedo(t *testing.T) {
	// One diffuse bounce then escape: the result is albedo * gradient,
	// so every channel is bounded by the albedo
	albedo := core.NewColor(0.5, 0.25, 0.125)
	pt := NewPathTracer()
	world := geometry.World{
		geometry.NewSphere(core.NewPoint(0, 0, -2), 0.5, material.NewLambertian(albedo)),
	}
	random := rand.New(rand.NewSource(42))
	ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVec3(0, 0, -1))

	for i := 0; i < 100; i++ {
		got := pt.RayColor(ray, world, random, 3)
		if got.X > albedo.X+1e-9 || got.Y > albedo.Y+1e-9 || got.Z > albedo.Z+1e-9 {
			t.Fatalf("color %v exceeds albedo bound %v", got, albedo)
		}
		if got.X < 0 || got.Y < 0 || got.Z < 0 {
			t.Fatalf("negative radiance %v", got)
		}
	}
}

func TestRayColorShadowAcneBound(t *testing.T) {
	// A scattered ray starting exactly on the surface must not re-hit its
	// own sphere at t ~ 0. With tMin = 0.0001 a bounce off the top of the
	// sphere escapes to the sky rather than self-intersecting forever.
	pt := NewPathTracer()
	world := geometry.World{
		geometry.NewSphere(core.NewPoint(0, -100.5, -1), 100,
			material.NewLambertian(core.NewColor(0.8, 0.8, 0.8))),
	}
	random := rand.New(rand.NewSource(42))
	ray := core.NewRay(core.NewPoint(0, 0, -1), core.NewVec3(0, -1, 0))

	got := pt.RayColor(ray, world, random, 50)
	if got == core.NewColor(0, 0, 0) {
		t.Error("expected indirect sky light, got black (self-intersection loop?)")
	}
}
