package shades

import(
	"math/rand"
)

func newLinear(w, h, ch int, pix ...float32) *LinearImage {
	li := &LinearImage{Width: w, Height: h, Channels: ch, Pix: make([]float32, w*h*ch)}
	copy(li.Pix, pix)
	return li
}

// randomLinear makes a noisy image with a color cast, so the channels
// have different statistics.
func randomLinear(w, h, ch int, seed int64) *LinearImage {
	rnd := rand.New(rand.NewSource(seed))
	li := newLinear(w, h, ch)
	cast := [3]float32{1.0, 0.8, 0.55}
	for i:=0; i<len(li.Pix); i+=ch {
		for k:=0; k<ch; k++ {
			v := rnd.Float32()
			if k < ColorChannels {
				v *= cast[k]
			}
			li.Pix[i+k] = v
		}
	}
	return li
}

func randomBuffer(w, h, ch int, seed int64) PixelBuffer {
	rnd := rand.New(rand.NewSource(seed))
	b := PixelBuffer{Width: w, Height: h, Channels: ch, Pix: make([]uint8, w*h*ch)}
	for i:=0; i<len(b.Pix); i+=ch {
		b.Pix[i]   = uint8(40 + rnd.Intn(200))
		b.Pix[i+1] = uint8(20 + rnd.Intn(160))
		b.Pix[i+2] = uint8(rnd.Intn(120))
		for k:=ColorChannels; k<ch; k++ {
			b.Pix[i+k] = uint8(rnd.Intn(256))
		}
	}
	return b
}

func uniformBuffer(w, h, ch int, px ...uint8) PixelBuffer {
	b := PixelBuffer{Width: w, Height: h, Channels: ch, Pix: make([]uint8, w*h*ch)}
	for i:=0; i<len(b.Pix); i+=ch {
		copy(b.Pix[i:i+ch], px)
	}
	return b
}

func inlineConfig(threshold, norm int) Config {
	c := NewConfig()
	c.Params = Params{Threshold: threshold, Norm: norm}
	c.Workers = 1
	return c
}
