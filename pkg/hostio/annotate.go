package hostio

import(
	"image"

	"github.com/fogleman/gg"

	"github.com/abworrall/shadesofgrey/pkg/ecolor"
)

const swatchSize = 48

// Annotate draws a swatch of the illuminant's color in the top left
// corner, with a caption next to it, on a copy of img.
func Annotate(img image.Image, il ecolor.Illuminant, caption string) image.Image {
	dc := gg.NewContextForImage(img)

	dc.SetRGB(1,1,1)
	dc.DrawRectangle(8, 8, swatchSize+4, swatchSize+4)
	dc.Fill()

	r, g, b := il.Color().Clamped().RGB255()
	dc.SetRGB255(int(r), int(g), int(b))
	dc.DrawRectangle(10, 10, swatchSize, swatchSize)
	dc.Fill()

	// Dark outline under the text, so it reads on any background
	x, y := float64(swatchSize+20), float64(10+swatchSize/2)
	dc.SetRGB(0,0,0)
	for _, d := range [][2]float64{{-1,-1}, {1,-1}, {-1,1}, {1,1}} {
		dc.DrawString(caption, x+d[0], y+d[1])
	}
	dc.SetRGB(1,1,1)
	dc.DrawString(caption, x, y)

	return dc.Image()
}

// WriteAnnotatedPNG is Annotate, saved out as a PNG.
func WriteAnnotatedPNG(img image.Image, il ecolor.Illuminant, caption, filename string) error {
	return WritePNG(Annotate(img, il, caption), filename)
}
