package shades

import(
	"fmt"

	"github.com/abworrall/shadesofgrey/pkg/ecolor"
)

// Normalize turns a raw estimate into an illuminant. For p>=1 the
// estimate is averaged over the eligible pixels and scaled to unit
// length, so only the ratio between channels survives. Max-RGB maxima
// are used as they are.
//
// If no usable illuminant comes out (no eligible pixels, or a channel
// with nothing in it), the error wraps ErrDegenerateEstimate.
func Normalize(est Estimate) (ecolor.Illuminant, error) {
	if est.Count == 0 {
		return ecolor.NeutralIlluminant, fmt.Errorf("%w: no pixels under the near-white threshold", ErrDegenerateEstimate)
	}

	v := est.Raw
	if est.Order != 0 {
		v = v.Scale(1.0 / float64(est.Count))

		unit, ok := v.Unit()
		if !ok {
			return ecolor.NeutralIlluminant, fmt.Errorf("%w: estimate %s has no magnitude", ErrDegenerateEstimate, v)
		}
		v = unit
	}

	il := ecolor.Illuminant{Vec3: v}
	if !il.Valid() {
		return ecolor.NeutralIlluminant, fmt.Errorf("%w: estimate %s has an empty channel", ErrDegenerateEstimate, v)
	}

	return il, nil
}
