package material

import "github.com/rmark/go-path-tracer/pkg/core"

// HitRecord contains information about a ray-surface intersection. Records
// are created fresh per intersection query, never mutated after the normal
// is set, and discarded after one scatter evaluation.
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, always opposing the incoming ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether the ray approached from outside
	Material  Material  // Owned copy of the surface's material
}

// SetFaceNormal stores the normal so it opposes the incoming ray and records
// which face was hit. outwardNormal must be unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
