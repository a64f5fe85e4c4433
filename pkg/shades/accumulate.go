package shades

import(
	"fmt"
	"math"

	"github.com/abworrall/shadesofgrey/pkg/emath"
)

// An Estimate is the raw output of the Shades of Grey accumulator,
// before normalization.
//
// For Order 0 (Max-RGB), Raw holds the per-channel maxima. For Order
// p>=1, Raw holds the p'th root of the per-channel sum of x^p; the
// division by Count happens in Normalize. As p grows, Raw tends to the
// maxima.
type Estimate struct {
	Raw     emath.Vec3
	Count   int   // How many pixels passed the near-white test
	Order   int
}

func (e Estimate)String() string {
	return fmt.Sprintf("raw %s over %d pixels (p=%d)", e.Raw, e.Count, e.Order)
}

// Orders above this accumulate (x/scale)^p rather than x^p, where scale
// is the brightest eligible value in the channel; otherwise x^p of an
// ordinary linear value underflows to zero well before p gets large.
const maxUnscaledOrder = 4

// partial is one chunk's worth of accumulation: maxima for order 0,
// sums of powers for everything else.
type partial struct {
	acc     [3]float64
	scale   [3]float64   // only for order > maxUnscaledOrder
	count   int
}

func (p *partial)merge(order int, q partial) {
	p.count += q.count
	for k:=0; k<3; k++ {
		switch {
		case order == 0:
			if q.acc[k] > p.acc[k] { p.acc[k] = q.acc[k] }
		case order > maxUnscaledOrder:
			p.acc[k], p.scale[k] = mergeScaled(p.acc[k], p.scale[k], q.acc[k], q.scale[k], uint(order))
		default:
			p.acc[k] += q.acc[k]
		}
	}
}

// mergeScaled adds two sums of (x/scale)^n, restating the one with the
// smaller scale against the larger.
func mergeScaled(a, sa, b, sb float64, n uint) (float64, float64) {
	if sb > sa {
		a, sa, b, sb = b, sb, a, sa
	}
	if sb == 0 {
		return a, sa
	}
	return a + b*emath.PowN(sb/sa, n), sa
}

// Accumulate runs the estimator over every pixel of the image. A pixel
// only counts if its three color channels are all <= nearWhite; brighter
// pixels are likely clipped, so they say little about the illuminant.
func Accumulate(li *LinearImage, nearWhite float32, order int, workers int) Estimate {
	return accumulateWith(li, nearWhite, order, workers, accumulateRange)
}

type rangeAccumulator func(pix []float32, channels int, nearWhite float32, order int) partial

func accumulateWith(li *LinearImage, nearWhite float32, order int, workers int, f rangeAccumulator) Estimate {
	ch := li.Channels
	parts := make([]partial, numChunks(li.NumPixels(), chunkPixels))

	forEachChunk(li.NumPixels(), chunkPixels, workers, func(c, lo, hi int) {
		parts[c] = f(li.Pix[lo*ch:hi*ch], ch, nearWhite, order)
	})

	total := partial{}
	for _, p := range parts {
		total.merge(order, p)
	}

	est := Estimate{Count: total.count, Order: order}
	for k:=0; k<3; k++ {
		switch {
		case order > maxUnscaledOrder:
			est.Raw[k] = total.scale[k] * emath.Root(total.acc[k], uint(order))
		case order >= 2:
			est.Raw[k] = emath.Root(total.acc[k], uint(order))
		default:
			est.Raw[k] = total.acc[k]
		}
	}
	return est
}

// accumulateRange has a loop per small order, so the common cases don't
// pay for a general power function on every sample.
func accumulateRange(pix []float32, ch int, th float32, order int) partial {
	p := partial{}

	switch order {
	case 0: // max-rgb
		for i:=0; i<len(pix); i+=ch {
			r, g, b := pix[i], pix[i+1], pix[i+2]
			if r > th || g > th || b > th { continue }
			p.count++
			if float64(r) > p.acc[0] { p.acc[0] = float64(r) }
			if float64(g) > p.acc[1] { p.acc[1] = float64(g) }
			if float64(b) > p.acc[2] { p.acc[2] = float64(b) }
		}

	case 1: // grey-world
		for i:=0; i<len(pix); i+=ch {
			r, g, b := pix[i], pix[i+1], pix[i+2]
			if r > th || g > th || b > th { continue }
			p.count++
			p.acc[0] += float64(r)
			p.acc[1] += float64(g)
			p.acc[2] += float64(b)
		}

	case 2:
		for i:=0; i<len(pix); i+=ch {
			r, g, b := pix[i], pix[i+1], pix[i+2]
			if r > th || g > th || b > th { continue }
			p.count++
			fr, fg, fb := float64(r), float64(g), float64(b)
			p.acc[0] += fr*fr
			p.acc[1] += fg*fg
			p.acc[2] += fb*fb
		}

	case 3:
		for i:=0; i<len(pix); i+=ch {
			r, g, b := pix[i], pix[i+1], pix[i+2]
			if r > th || g > th || b > th { continue }
			p.count++
			fr, fg, fb := float64(r), float64(g), float64(b)
			p.acc[0] += fr*fr*fr
			p.acc[1] += fg*fg*fg
			p.acc[2] += fb*fb*fb
		}

	case 4:
		for i:=0; i<len(pix); i+=ch {
			r, g, b := pix[i], pix[i+1], pix[i+2]
			if r > th || g > th || b > th { continue }
			p.count++
			fr, fg, fb := float64(r)*float64(r), float64(g)*float64(g), float64(b)*float64(b)
			p.acc[0] += fr*fr
			p.acc[1] += fg*fg
			p.acc[2] += fb*fb
		}

	default:
		// Two passes: the channel maxima first, then the scaled sums.
		for i:=0; i<len(pix); i+=ch {
			r, g, b := pix[i], pix[i+1], pix[i+2]
			if r > th || g > th || b > th { continue }
			p.count++
			if float64(r) > p.scale[0] { p.scale[0] = float64(r) }
			if float64(g) > p.scale[1] { p.scale[1] = float64(g) }
			if float64(b) > p.scale[2] { p.scale[2] = float64(b) }
		}

		n := uint(order)
		for k:=0; k<3; k++ {
			m := p.scale[k]
			if m == 0 { continue }
			for i:=0; i<len(pix); i+=ch {
				if pix[i] > th || pix[i+1] > th || pix[i+2] > th { continue }
				p.acc[k] += emath.PowN(float64(pix[i+k])/m, n)
			}
		}
	}

	return p
}

// accumulateGeneric is the one-size-fits-all version of accumulateRange,
// using math.Pow for every order. The fast paths are checked against it.
// It never rescales, so it is only good for orders that don't underflow.
func accumulateGeneric(pix []float32, ch int, th float32, order int) partial {
	p := partial{}
	if order > maxUnscaledOrder {
		p.scale = [3]float64{1, 1, 1}
	}
	for i:=0; i<len(pix); i+=ch {
		if pix[i] > th || pix[i+1] > th || pix[i+2] > th { continue }
		p.count++
		for k:=0; k<3; k++ {
			v := float64(pix[i+k])
			if order == 0 {
				p.acc[k] = math.Max(p.acc[k], v)
			} else {
				p.acc[k] += math.Pow(v, float64(order))
			}
		}
	}
	return p
}
