package emath

import "math"

// Some functions that only operate on basic types, that are useful

// PowN raises x to a non-negative integer power by repeated squaring,
// so it costs O(log p) multiplications rather than a call to math.Pow.
func PowN(x float64, p uint) float64 {
	y := 1.0
	for p > 0 {
		if p&1 == 1 {
			y *= x
		}
		x *= x
		p >>= 1
	}
	return y
}

// Root returns the p'th root of x; p=2,3 use the exact library routines.
func Root(x float64, p uint) float64 {
	switch p {
	case 0:  return x
	case 1:  return x
	case 2:  return math.Sqrt(x)
	case 3:  return math.Cbrt(x)
	case 4:  return math.Sqrt(math.Sqrt(x))
	}
	return math.Pow(x, 1.0/float64(p))
}

func Clamp01(f float32) float32 {
	if f < 0 { return 0 }
	if f > 1 { return 1 }
	return f
}
