package core

import "math/rand"

// RandomVec3 returns a vector with components drawn independently and
// uniformly from [min, max).
func RandomVec3(min, max float64, random *rand.Rand) Vec3 {
	span := max - min
	return Vec3{
		X:   min + span*random.Float64(),
		Y:   min + span*random.Float64(),
		Z:   min + span*random.Float64(),
		Tag: TagVector,
	}
}

// RandomInUnitSphere generates a random point strictly inside the unit ball
// by rejection sampling the [-1,1]³ cube. Roughly two draws are needed on
// average; the loop terminates with probability 1.
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := RandomVec3(-1, 1, random)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomUnitVector generates a uniformly distributed direction on the unit sphere
func RandomUnitVector(random *rand.Rand) Vec3 {
	return RandomInUnitSphere(random).Normalize()
}

// RandomInUnitDisk generates a random point inside the unit disk on the
// z=0 plane (used for thin-lens depth of field)
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := Vec3{
			X:   2*random.Float64() - 1,
			Y:   2*random.Float64() - 1,
			Tag: TagVector,
		}
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
