package material

import (
	"math"
	"math/rand"

	"github.com/rmark/go-path-tracer/pkg/core"
)

// Kind discriminates the closed set of scattering models
type Kind int

const (
	KindLambertian Kind = iota // ideal diffuse
	KindMetal                  // specular with roughness
	KindDielectric             // refractive glass-like
)

// Material is a small value type covering exactly three scattering models.
// The Kind field selects the model; the remaining fields are parameters for
// the kind that uses them. Materials are cheap to copy, so hit records own
// a copy rather than borrowing from the scene.
type Material struct {
	Kind            Kind
	Albedo          core.Vec3 // Lambertian and Metal base color
	Fuzz            float64   // Metal roughness in [0,1]
	RefractiveIndex float64   // Dielectric index of refraction
}

// NewLambertian creates an ideal diffuse material
func NewLambertian(albedo core.Vec3) Material {
	return Material{Kind: KindLambertian, Albedo: albedo}
}

// NewMetal creates a specular material. Fuzz above 1 is clamped to 1,
// below 0 to 0.
func NewMetal(albedo core.Vec3, fuzz float64) Material {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return Material{Kind: KindMetal, Albedo: albedo, Fuzz: fuzz}
}

// NewDielectric creates a transparent refractive material
// (e.g. 1.5 for glass)
func NewDielectric(refractiveIndex float64) Material {
	return Material{Kind: KindDielectric, RefractiveIndex: refractiveIndex}
}

// ScatterResult contains the outgoing ray and color attenuation produced by
// a scatter event
type ScatterResult struct {
	Scattered   core.Ray
	Attenuation core.Vec3
}

// Scatter redirects an incoming ray off a surface. It returns the scattered
// ray and attenuation, or false if the material absorbed the ray. The switch
// is exhaustive over the three kinds; an unknown kind absorbs.
func (m Material) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	switch m.Kind {
	case KindLambertian:
		return m.scatterLambertian(hit, random)
	case KindMetal:
		return m.scatterMetal(rayIn, hit, random)
	case KindDielectric:
		return m.scatterDielectric(rayIn, hit, random)
	}
	return ScatterResult{}, false
}

// scatterLambertian bounces the ray in a random direction biased toward the
// normal (normal + point in the unit ball). Always scatters.
func (m Material) scatterLambertian(hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	direction := hit.Normal.Add(core.RandomInUnitSphere(random))

	// The random offset can nearly cancel the normal; fall back to the
	// normal itself to avoid a degenerate ray.
	if direction.NearZero() {
		direction = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: m.Albedo,
	}, true
}

// scatterMetal mirrors the ray about the normal and perturbs it by
// fuzz * (point in the unit ball). Rays perturbed below the surface are
// absorbed.
func (m Material) scatterMetal(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	reflected := Reflect(rayIn.Direction.Normalize(), hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(random).Multiply(m.Fuzz))
	}

	if reflected.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, reflected),
		Attenuation: m.Albedo,
	}, true
}

// scatterDielectric reflects or refracts depending on total internal
// reflection and a stochastic Schlick reflectance test. Always scatters,
// never absorbs, and never tints the ray.
func (m Material) scatterDielectric(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / m.RefractiveIndex // entering the material
	} else {
		refractionRatio = m.RefractiveIndex // exiting the material
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	// Snell's law has no solution above the critical angle
	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > random.Float64() {
		direction = Reflect(unitDirection, hit.Normal)
	} else {
		direction = Refract(unitDirection, hit.Normal, refractionRatio)
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: core.NewColor(1.0, 1.0, 1.0),
	}, true
}

// Reflect calculates the mirror reflection of v about the normal n:
// r = v - 2*dot(v,n)*n
func Reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract calculates the refraction of the unit vector uv through a surface
// with normal n using the vector form of Snell's law
func Refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(uv.Negate().Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
