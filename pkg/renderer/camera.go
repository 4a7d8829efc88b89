package renderer

import (
	"math"
	"math/rand"

	"github.com/rmark/go-path-tracer/pkg/core"
)

// CameraConfig holds the user-facing camera parameters
type CameraConfig struct {
	LookFrom      core.Vec3 // Eye position
	LookAt        core.Vec3 // Target the camera points at
	Up            core.Vec3 // Up hint used to build the camera basis
	VFov          float64   // Vertical field of view in degrees, in (0, 180)
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter; 0 disables depth of field
	FocusDistance float64   // Distance to the plane of perfect focus
}

// Camera maps normalized image-plane coordinates to sampled rays, modeling a
// thin lens for depth of field. The derived basis and viewport are computed
// once and immutable thereafter.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
}

// NewCamera derives the orthonormal basis (u,v,w) and the focus-plane
// viewport from the configuration
func NewCamera(config CameraConfig) *Camera {
	theta := degreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := config.AspectRatio * viewportHeight

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.LookFrom
	horizontal := u.Multiply(config.FocusDistance * viewportWidth)
	vertical := v.Multiply(config.FocusDistance * viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Divide(2)).
		Subtract(vertical.Divide(2)).
		Subtract(w.Multiply(config.FocusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}
}

// GetRay generates a ray through screen-space fractions (s, t) in [0,1].
// With a non-zero aperture the ray origin is jittered across the lens disk;
// rays from different lens points converge on the focus plane, blurring
// everything off it.
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	offset := core.NewVec3(0, 0, 0)
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
		offset = c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	return core.NewRay(c.origin.Add(offset), direction)
}

// Forward returns the unit direction the camera is looking along
func (c *Camera) Forward() core.Vec3 {
	return c.w.Negate()
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
