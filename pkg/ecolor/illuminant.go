package ecolor

import(
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/abworrall/shadesofgrey/pkg/emath"
)

// An Illuminant is our estimate of the color of the light falling on
// the scene, as a linear RGB vector. Dividing each channel of a linear
// pixel by the matching component removes the cast; this is the same job
// that AsShotNeutral does in a DNG development pipeline.
type Illuminant struct {
	emath.Vec3
}

var(
	// NeutralIlluminant leaves pixels untouched when applied.
	NeutralIlluminant = Illuminant{emath.Vec3{1, 1, 1}}
)

func (il Illuminant)String() string {
	return fmt.Sprintf("%s (%s)", il.Vec3, il.Hex())
}

// Valid is true if the illuminant can be divided through without
// producing Inf or NaN.
func (il Illuminant)Valid() bool { return il.Vec3.AllPositive() }

// Gains are the per-channel divisors, narrowed for float32 pixel data.
func (il Illuminant)Gains() [3]float32 { return il.Vec3.Float32() }

// Color is the illuminant rescaled so its brightest channel is 1.0, as a
// displayable color.
func (il Illuminant)Color() colorful.Color {
	max := math.Max(il.Vec3[0], math.Max(il.Vec3[1], il.Vec3[2]))
	if !(max > 0) {
		return colorful.Color{}
	}
	return colorful.LinearRgb(il.Vec3[0]/max, il.Vec3[1]/max, il.Vec3[2]/max)
}

// Hex is a #rrggbb rendering of Color, handy in logs.
func (il Illuminant)Hex() string { return il.Color().Hex() }

// Hue is the hue angle of the cast, in degrees [0,360). A neutral
// illuminant has no meaningful hue and reports 0.
func (il Illuminant)Hue() float64 {
	h, _, _ := il.Color().Hsv()
	return h
}

// Saturation says how strong the cast is; 0.0 is perfectly neutral.
func (il Illuminant)Saturation() float64 {
	_, s, _ := il.Color().Hsv()
	return s
}
