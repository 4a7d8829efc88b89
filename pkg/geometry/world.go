package geometry

import (
	"github.com/rmark/go-path-tracer/pkg/core"
	"github.com/rmark/go-path-tracer/pkg/material"
)

// Surface is anything a ray can intersect
type Surface interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}

// World is the scene's ordered surface list, built once and read-only for
// the remainder of the run. Order has no effect on the image: intersection
// always keeps the globally nearest hit.
type World []Surface

// Hit performs a linear scan over all surfaces, shrinking tMax to the
// closest hit found so far, and returns the nearest intersection in
// [tMin, tMax] if any
func (w World) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, surface := range w {
		if hit, isHit := surface.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
