package shades

import(
	"github.com/abworrall/shadesofgrey/pkg/ecolor"
)

// Adapt removes the illuminant from the image, in place: each color
// channel is divided by the matching illuminant component. If that
// pushes anything over 1.0, the whole image is scaled down so that the
// brightest value lands on 1.0. Non-color channels are left alone.
//
// The scale factor isn't known until every pixel has been divided, so
// this is two full passes. Returns the maximum seen after the first pass.
//
// The illuminant must be Valid().
func Adapt(li *LinearImage, il ecolor.Illuminant, workers int) float32 {
	immax := divide(li, il.Gains(), workers)
	if immax > 1.0 {
		rescale(li, immax, workers)
	}
	return immax
}

func divide(li *LinearImage, gains [3]float32, workers int) float32 {
	ch := li.Channels
	maxes := make([]float32, numChunks(li.NumPixels(), chunkPixels))

	forEachChunk(li.NumPixels(), chunkPixels, workers, func(c, lo, hi int) {
		max := float32(0.0)
		pix := li.Pix[lo*ch:hi*ch]
		for i:=0; i<len(pix); i+=ch {
			for k:=0; k<ColorChannels; k++ {
				pix[i+k] /= gains[k]
				if pix[i+k] > max { max = pix[i+k] }
			}
		}
		maxes[c] = max
	})

	immax := float32(0.0)
	for _, m := range maxes {
		if m > immax { immax = m }
	}
	return immax
}

func rescale(li *LinearImage, immax float32, workers int) {
	ch := li.Channels
	forEachChunk(li.NumPixels(), chunkPixels, workers, func(_, lo, hi int) {
		pix := li.Pix[lo*ch:hi*ch]
		for i:=0; i<len(pix); i+=ch {
			pix[i]   /= immax
			pix[i+1] /= immax
			pix[i+2] /= immax
		}
	})
}
