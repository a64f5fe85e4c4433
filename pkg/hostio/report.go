package hostio

import(
	"fmt"

	"github.com/codahale/hdrhistogram"

	"github.com/abworrall/shadesofgrey/pkg/ecolor"
	"github.com/abworrall/shadesofgrey/pkg/shades"
)

// A BrightnessReport describes how bright the pixels of an image are,
// judged by their brightest color channel, and how many of them the
// near-white threshold will throw out of the illuminant estimate.
type BrightnessReport struct {
	Total        int64
	Rejected     int64          // Pixels with any channel over the threshold

	// Percentiles of the per-pixel max channel, in gamma-encoded 0-255 units
	P50, P90, P99, Max int64
}

// NewBrightnessReport builds a report on b, for the threshold in params.
func NewBrightnessReport(b shades.PixelBuffer, params shades.Params) BrightnessReport {
	h := hdrhistogram.New(1, 255, 3)
	nearWhite := params.NearWhite()

	rep := BrightnessReport{}
	for i:=0; i<len(b.Pix); i+=b.Channels {
		max := b.Pix[i]
		if b.Pix[i+1] > max { max = b.Pix[i+1] }
		if b.Pix[i+2] > max { max = b.Pix[i+2] }

		h.RecordValue(int64(max))
		if ecolor.Decode(max) > nearWhite {
			rep.Rejected++
		}
	}

	rep.Total = h.TotalCount()
	rep.P50   = h.ValueAtQuantile(50)
	rep.P90   = h.ValueAtQuantile(90)
	rep.P99   = h.ValueAtQuantile(99)
	rep.Max   = h.Max()
	return rep
}

// RejectedFraction is how much of the image is too near white to use.
func (r BrightnessReport)RejectedFraction() float64 {
	if r.Total == 0 { return 0 }
	return float64(r.Rejected) / float64(r.Total)
}

func (r BrightnessReport)String() string {
	return fmt.Sprintf("%d pixels, max channel p50=%d p90=%d p99=%d max=%d; %d (%.1f%%) over threshold",
		r.Total, r.P50, r.P90, r.P99, r.Max, r.Rejected, 100*r.RejectedFraction())
}
