package ecolor

import(
	"math"

	"github.com/abworrall/shadesofgrey/pkg/emath"
)

// The sRGB transfer curve, between 8-bit gamma-encoded channel values and
// linear light in [0,1].
//
// https://www.sjbrown.co.uk/posts/gamma-correct-rendering/
// The breakpoints are the ones from the original IEC draft (0.03928 on the
// encoded side, 0.00304 on the linear side), which meet up with each other.

const(
	decodeBreak = 0.03928
	encodeBreak = 0.00304
)

var(
	// Decoding only ever sees 256 distinct inputs, so we tabulate them once.
	decodeLUT [256]float32
	unitLUT   [256]float32
)

func init() {
	for i:=0; i<256; i++ {
		t := float32(i) / 255.0
		if t <= decodeBreak {
			decodeLUT[i] = t / 12.92
		} else {
			decodeLUT[i] = float32(math.Pow(float64((t+0.055)/1.055), 2.4))
		}
		unitLUT[i] = t
	}
}

// Decode maps a gamma-encoded byte into linear light.
func Decode(b uint8) float32 { return decodeLUT[b] }

// Encode maps linear light back into a gamma-encoded byte. Values outside
// [0,1] are clipped first.
func Encode(f float32) uint8 {
	f = emath.Clamp01(f)

	var v float64
	if f <= encodeBreak {
		v = float64(f) * 12.92
	} else {
		// The exact inverse of Decode. Scaling before the power, as in
		// (1.055*f)^(1/2.4) - 0.055, is not: it sends 1.0 to 247, so
		// white would never survive a round trip.
		v = 1.055 * math.Pow(float64(f), 1.0/2.4) - 0.055
	}

	return quantize(v)
}

// DecodeUnit and EncodeUnit are the plain b/255 mappings, for channels that
// aren't color (e.g. alpha) and so never get gamma treatment.
func DecodeUnit(b uint8) float32 { return unitLUT[b] }
func EncodeUnit(f float32) uint8 { return quantize(float64(f)) }

// DecodeSlice and EncodeSlice run the curve over every sample; len(out) must be >= len(in).
func DecodeSlice(in []uint8, out []float32) {
	for i, b := range in {
		out[i] = decodeLUT[b]
	}
}

func EncodeSlice(in []float32, out []uint8) {
	for i, f := range in {
		out[i] = Encode(f)
	}
}

func quantize(v float64) uint8 {
	if !(v > 0) { v = 0 } // also catches NaN
	if v > 1 { v = 1 }
	return uint8(math.Round(v * 255.0))
}
