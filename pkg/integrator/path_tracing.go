package integrator

import (
	"math"
	"math/rand"

	"github.com/rmark/go-path-tracer/pkg/core"
	"github.com/rmark/go-path-tracer/pkg/geometry"
)

// Intersections closer than this are ignored so a scattered ray cannot
// immediately re-hit the surface it just left (shadow acne).
const tMinEpsilon = 0.0001

// PathTracer estimates radiance along a ray by recursively following
// material scatter events until the ray escapes to the background, is
// absorbed, or runs out of bounce budget
type PathTracer struct {
	TopColor    core.Vec3 // background color straight up
	BottomColor core.Vec3 // background color straight down
}

// NewPathTracer creates a path tracer with the standard white-to-sky-blue
// background gradient
func NewPathTracer() *PathTracer {
	return &PathTracer{
		TopColor:    core.NewColor(0.5, 0.7, 1.0),
		BottomColor: core.NewColor(1.0, 1.0, 1.0),
	}
}

// NewGradientPathTracer creates a path tracer with a custom background gradient
func NewGradientPathTracer(top, bottom core.Vec3) *PathTracer {
	return &PathTracer{TopColor: top, BottomColor: bottom}
}

// RayColor computes the radiance estimate for a single ray. depth bounds the
// recursion: at zero the bounce budget is exhausted and the estimate is
// black. Absorption also yields black; a miss yields the background
// gradient; a scatter recurses with the attenuation applied component-wise.
func (pt *PathTracer) RayColor(ray core.Ray, world geometry.World, random *rand.Rand, depth int) core.Vec3 {
	if depth <= 0 {
		return core.NewColor(0, 0, 0)
	}

	hit, isHit := world.Hit(ray, tMinEpsilon, math.Inf(1))
	if !isHit {
		return pt.backgroundGradient(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, random)
	if !didScatter {
		return core.NewColor(0, 0, 0)
	}

	return scatter.Attenuation.MultiplyVec(
		pt.RayColor(scatter.Scattered, world, random, depth-1))
}

// backgroundGradient lerps between the bottom and top colors on the vertical
// component of the unit ray direction. The gradient depends on direction
// only, never on the ray origin.
func (pt *PathTracer) backgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return pt.BottomColor.Multiply(1.0 - t).Add(pt.TopColor.Multiply(t))
}
