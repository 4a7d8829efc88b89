package core

import (
	"math/rand"
	"testing"
)

func TestRandomVec3Range(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		v := RandomVec3(-2, 3, random)
		for _, c := range []float64{v.X, v.Y, v.Z} {
			if c < -2 || c >= 3 {
				t.Fatalf("component %v outside [-2, 3)", c)
			}
		}
		if v.Tag != TagVector {
			t.Fatalf("random vector tagged %v, want Vector", v.Tag)
		}
	}
}

func TestRandomInUnitSphere(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		p := RandomInUnitSphere(random)
		if p.LengthSquared() >= 1.0 {
			t.Fatalf("point %v outside the unit ball", p)
		}
	}
}

func TestRandomUnitVector(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		v := RandomUnitVector(random)
		if l := v.Length(); l < 1-1e-9 || l > 1+1e-9 {
			t.Fatalf("unit vector has length %v", l)
		}
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(random)
		if p.LengthSquared() >= 1.0 {
			t.Fatalf("point %v outside the unit disk", p)
		}
		if p.Z != 0 {
			t.Fatalf("disk point has non-zero z: %v", p)
		}
	}
}
