package geometry

import (
	"math"

	"github.com/rmark/go-path-tracer/pkg/core"
	"github.com/rmark/go-path-tracer/pkg/material"
)

// Sphere is an analytic sphere with an owned material, immutable after
// scene construction
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// Hit solves |ray.At(t) - center|² = radius² for t using the half-b form of
// the quadratic, which halves the floating-point error. The nearer root is
// preferred; the farther root is tried only when the nearer one falls
// outside [tMin, tMax].
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	hit := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	outwardNormal := hit.Point.Subtract(s.Center).Divide(s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}
