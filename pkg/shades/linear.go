package shades

import(
	"fmt"
	"image"
	"image/color"

	"github.com/mdouchement/hdr/hdrcolor"

	"github.com/abworrall/shadesofgrey/pkg/ecolor"
)

// A LinearImage is the float intermediate: the same shape as a
// PixelBuffer, but with color channels in linear light. Non-color
// channels are kept as plain [0,1] fractions.
//
// It implements image.Image and hdr.Image, so it can be written out
// as a Radiance HDR file.
type LinearImage struct {
	Width     int
	Height    int
	Channels  int
	Pix     []float32
}

// Implement image.Image
func (li *LinearImage)ColorModel() color.Model       { return hdrcolor.RGBModel }
func (li *LinearImage)Bounds() image.Rectangle       { return image.Rect(0, 0, li.Width, li.Height) }
func (li *LinearImage)At(x, y int) color.Color       { return li.HDRAt(x, y) }

// Implement hdr.Image
func (li *LinearImage)HDRAt(x, y int) hdrcolor.Color {
	i := li.PixOffset(x, y)
	return hdrcolor.RGB{R: float64(li.Pix[i]), G: float64(li.Pix[i+1]), B: float64(li.Pix[i+2])}
}
func (li *LinearImage)Size() int                     { return li.Width * li.Height }

func (li *LinearImage)PixOffset(x, y int) int        { return (y*li.Width + x) * li.Channels }
func (li *LinearImage)NumPixels() int                { return li.Width * li.Height }

func (li *LinearImage)String() string {
	return fmt.Sprintf("LinearImage[%dx%d, %d channels]", li.Width, li.Height, li.Channels)
}

// DecodeRegion pulls the pixels in r out of src into a new LinearImage.
// The caller has already checked that r lies within src.
func DecodeRegion(src PixelBuffer, r image.Rectangle, workers int) *LinearImage {
	li := &LinearImage{
		Width:    r.Dx(),
		Height:   r.Dy(),
		Channels: src.Channels,
		Pix:      make([]float32, r.Dx()*r.Dy()*src.Channels),
	}

	ch := src.Channels
	rowLen := li.Width * ch
	forEachChunk(li.Height, rowsPerChunk(li.Width), workers, func(_, lo, hi int) {
		for y:=lo; y<hi; y++ {
			in := src.Pix[src.PixOffset(r.Min.X, r.Min.Y+y):][:rowLen]
			out := li.Pix[y*rowLen:(y+1)*rowLen]
			if ch == ColorChannels {
				ecolor.DecodeSlice(in, out)
				continue
			}
			for i:=0; i<rowLen; i+=ch {
				out[i]   = ecolor.Decode(in[i])
				out[i+1] = ecolor.Decode(in[i+1])
				out[i+2] = ecolor.Decode(in[i+2])
				for k:=ColorChannels; k<ch; k++ {
					out[i+k] = ecolor.DecodeUnit(in[i+k])
				}
			}
		}
	})

	return li
}

// Encode quantizes the image back into gamma-encoded bytes.
func (li *LinearImage)Encode(workers int) PixelBuffer {
	ch := li.Channels
	out := PixelBuffer{Width: li.Width, Height: li.Height, Channels: ch, Pix: make([]uint8, len(li.Pix))}

	forEachChunk(li.NumPixels(), chunkPixels, workers, func(_, lo, hi int) {
		if ch == ColorChannels {
			ecolor.EncodeSlice(li.Pix[lo*ch:hi*ch], out.Pix[lo*ch:hi*ch])
			return
		}
		for i:=lo*ch; i<hi*ch; i+=ch {
			out.Pix[i]   = ecolor.Encode(li.Pix[i])
			out.Pix[i+1] = ecolor.Encode(li.Pix[i+1])
			out.Pix[i+2] = ecolor.Encode(li.Pix[i+2])
			for k:=ColorChannels; k<ch; k++ {
				out.Pix[i+k] = ecolor.EncodeUnit(li.Pix[i+k])
			}
		}
	})

	return out
}
