package hostio

// Moving pixels between golang's image libraries and shades.PixelBuffer.

import(
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/abworrall/shadesofgrey/pkg/shades"
)

// ToPixelBuffer flattens any image into 8-bit non-premultiplied RGB, with
// an alpha channel only if the image actually has transparent pixels.
// Deeper images (e.g. 16-bit TIFF) lose their low bits.
func ToPixelBuffer(img image.Image) shades.PixelBuffer {
	b := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)

	channels := 3
	for i:=3; i<len(nrgba.Pix); i+=4 {
		if nrgba.Pix[i] != 0xFF {
			channels = 4
			break
		}
	}

	pb := shades.PixelBuffer{Width: b.Dx(), Height: b.Dy(), Channels: channels, Pix: make([]uint8, b.Dx()*b.Dy()*channels)}
	for y:=0; y<b.Dy(); y++ {
		for x:=0; x<b.Dx(); x++ {
			copy(pb.Pix[pb.PixOffset(x,y):][:channels], nrgba.Pix[nrgba.PixOffset(x,y):][:channels])
		}
	}
	return pb
}

// ToImage is the reverse of ToPixelBuffer. Channels past the fourth are dropped.
func ToImage(pb shades.PixelBuffer) *image.NRGBA {
	img := image.NewNRGBA(pb.Bounds())
	for y:=0; y<pb.Height; y++ {
		for x:=0; x<pb.Width; x++ {
			in := pb.Pix[pb.PixOffset(x,y):]
			c := color.NRGBA{in[0], in[1], in[2], 0xFF}
			if pb.Channels > 3 {
				c.A = in[3]
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
