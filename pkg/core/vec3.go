package core

import "math"

// Tag records the semantic role of a Vec3. It is advisory: arithmetic
// preserves the left operand's tag (cross product included) and nothing
// validates that a point is actually used as a point. Tags participate in
// equality, so two vectors with equal components but different tags are
// not equal.
type Tag int

const (
	TagVector Tag = iota
	TagPoint
	TagColor
)

// String returns a human-readable tag name for diagnostics
func (t Tag) String() string {
	switch t {
	case TagPoint:
		return "Point"
	case TagColor:
		return "Color"
	default:
		return "Vector"
	}
}

// Vec3 represents a tagged 3D vector
type Vec3 struct {
	X, Y, Z float64
	Tag     Tag
}

// NewVec3 creates a new Vec3 tagged as a spatial vector
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z, Tag: TagVector}
}

// NewPoint creates a new Vec3 tagged as a point in space
func NewPoint(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z, Tag: TagPoint}
}

// NewColor creates a new Vec3 tagged as an RGB color
func NewColor(r, g, b float64) Vec3 {
	return Vec3{X: r, Y: g, Z: b, Tag: TagColor}
}

// Add returns the sum of two vectors, keeping the receiver's tag
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.Tag}
}

// Subtract returns the difference of two vectors, keeping the receiver's tag
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.Tag}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z, v.Tag}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar, v.Tag}
}

// Divide returns the vector scaled by 1/scalar
func (v Vec3) Divide(scalar float64) Vec3 {
	return Vec3{v.X / scalar, v.Y / scalar, v.Z / scalar, v.Tag}
}

// MultiplyVec returns component-wise multiplication of two vectors.
// Used for color modulation during scattering.
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.Tag}
}

// DivideVec returns component-wise division of two vectors
func (v Vec3) DivideVec(other Vec3) Vec3 {
	return Vec3{v.X / other.X, v.Y / other.Y, v.Z / other.Z, v.Tag}
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors. The result keeps the
// receiver's tag even when the operands have different tags.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X:   v.Y*other.Z - v.Z*other.Y,
		Y:   v.Z*other.X - v.X*other.Z,
		Z:   v.X*other.Y - v.Y*other.X,
		Tag: v.Tag,
	}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction.
// Precondition: the vector has non-zero length.
func (v Vec3) Normalize() Vec3 {
	return v.Divide(v.Length())
}

// nearZeroEpsilon bounds the per-component magnitude below which a scatter
// direction is considered degenerate.
const nearZeroEpsilon = 1e-8

// NearZero reports whether all three components are close to zero
func (v Vec3) NearZero() bool {
	return math.Abs(v.X) < nearZeroEpsilon &&
		math.Abs(v.Y) < nearZeroEpsilon &&
		math.Abs(v.Z) < nearZeroEpsilon
}

// Clamp returns a vector with components clamped to [min, max]
func (v Vec3) Clamp(minVal, maxVal float64) Vec3 {
	return Vec3{
		X:   max(minVal, min(maxVal, v.X)),
		Y:   max(minVal, min(maxVal, v.Y)),
		Z:   max(minVal, min(maxVal, v.Z)),
		Tag: v.Tag,
	}
}

// GammaCorrect applies gamma correction to color values
func (v Vec3) GammaCorrect(gamma float64) Vec3 {
	invGamma := 1.0 / gamma
	return Vec3{
		X:   math.Pow(v.X, invGamma),
		Y:   math.Pow(v.Y, invGamma),
		Z:   math.Pow(v.Z, invGamma),
		Tag: v.Tag,
	}
}
