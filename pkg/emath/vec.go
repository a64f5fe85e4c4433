package emath

// Small fixed-size vectors, used for illuminant estimates and per-channel gains

import(
	"fmt"
	"math"

	"golang.org/x/image/math/f64"  // Will be "image/math/f64" at some point
	"gonum.org/v1/gonum/floats"
)

// Use a local type so we can hang methods off it
type Vec3 f64.Vec3

func (v Vec3)String() string {
	return fmt.Sprintf("[%12.10f, %12.10f, %12.10f]", v[0], v[1], v[2])
}

// Norm is the euclidean (L2) magnitude of the vector.
func (v Vec3)Norm() float64 {
	return floats.Norm(v[:], 2)
}

func (v Vec3)Scale(s float64) Vec3 {
	return Vec3{v[0]*s, v[1]*s, v[2]*s}
}

// Unit rescales the vector to unit L2 magnitude. The bool is false if
// the vector had no magnitude to begin with, in which case it is returned
// unchanged.
func (v Vec3)Unit() (Vec3, bool) {
	n := v.Norm()
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return v, false
	}
	return v.Scale(1.0 / n), true
}

// AllPositive is true if every component is finite and strictly > 0.
func (v Vec3)AllPositive() bool {
	for _, f := range v {
		if !(f > 0) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// Float32 narrows the vector, for use as per-channel gains on float32 pixels.
func (v Vec3)Float32() [3]float32 {
	return [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
}
