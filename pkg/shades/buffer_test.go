package shades

import(
	"errors"
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPixelBufferValidate(t *testing.T) {
	tests := []struct{
		name   string
		b      PixelBuffer
		ok     bool
	}{
		{"good",          PixelBuffer{Width: 2, Height: 2, Channels: 3, Pix: make([]uint8, 12)}, true},
		{"alpha",         PixelBuffer{Width: 2, Height: 1, Channels: 4, Pix: make([]uint8, 8)}, true},
		{"two channels",  PixelBuffer{Width: 2, Height: 2, Channels: 2, Pix: make([]uint8, 8)}, false},
		{"short",         PixelBuffer{Width: 2, Height: 2, Channels: 3, Pix: make([]uint8, 11)}, false},
		{"empty",         PixelBuffer{Width: 0, Height: 2, Channels: 3}, false},
	}

	for _, test := range tests {
		err := test.b.Validate()
		if test.ok {
			assert.NoError(t, err, test.name)
		} else {
			assert.Truef(t, errors.Is(err, ErrInvalidParameters), "%s: got %v", test.name, err)
		}
	}
}

func TestSampleCount(t *testing.T) {
	n, err := sampleCount(640, 480, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, 640*480*4, n)

	_, err = sampleCount(math.MaxInt, 3, 3, 0)
	assert.True(t, errors.Is(err, ErrAllocation), "%v", err)

	_, err = sampleCount(1<<40, 1<<30, 3, 0)
	assert.True(t, errors.Is(err, ErrAllocation), "%v", err)

	_, err = sampleCount(100, 100, 3, 9999)
	assert.True(t, errors.Is(err, ErrAllocation), "%v", err)

	_, err = NewPixelBuffer(100, 100, 3, 10000)
	assert.NoError(t, err)
}

func TestCropAndPaste(t *testing.T) {
	b := randomBuffer(8, 6, 4, 11)
	r := image.Rect(2, 1, 5, 4)

	crop, err := b.Crop(r)
	require.NoError(t, err)
	assert.Equal(t, 3, crop.Width)
	assert.Equal(t, 3, crop.Height)
	for y:=0; y<crop.Height; y++ {
		for x:=0; x<crop.Width; x++ {
			want := b.Pix[b.PixOffset(r.Min.X+x, r.Min.Y+y):][:4]
			got := crop.Pix[crop.PixOffset(x, y):][:4]
			assert.Equal(t, want, got)
		}
	}

	// Pasting a crop back where it came from changes nothing
	b2 := b.Clone()
	require.NoError(t, b2.Paste(r.Min, crop))
	assert.Equal(t, b.Pix, b2.Pix)

	// Paste elsewhere
	require.NoError(t, b2.Paste(image.Pt(0, 0), crop))
	got, _ := b2.Crop(image.Rect(0, 0, 3, 3))
	assert.Equal(t, crop.Pix, got.Pix)

	_, err = b.Crop(image.Rect(6, 0, 9, 2))
	assert.True(t, errors.Is(err, ErrInvalidParameters))

	b3 := b.Clone()
	err = b3.Paste(image.Pt(6, 0), crop)
	assert.True(t, errors.Is(err, ErrInvalidParameters))
	assert.Equal(t, b.Pix, b3.Pix, "failed paste wrote pixels")
}
