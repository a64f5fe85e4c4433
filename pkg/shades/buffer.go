package shades

import(
	"fmt"
	"image"
	"math"
	"math/bits"
)

// ColorChannels is how many leading channels of each pixel carry color.
// Anything after them (e.g. alpha) is carried through untouched.
const ColorChannels = 3

// A PixelBuffer is a rectangle of 8-bit gamma-encoded pixels, row-major,
// with the channels of each pixel interleaved.
type PixelBuffer struct {
	Width     int
	Height    int
	Channels  int
	Pix     []uint8
}

// NewPixelBuffer allocates a zeroed buffer, refusing sizes that would
// overflow or exceed maxPixels (0 for no limit).
func NewPixelBuffer(w, h, channels, maxPixels int) (PixelBuffer, error) {
	n, err := sampleCount(w, h, channels, maxPixels)
	if err != nil {
		return PixelBuffer{}, err
	}
	return PixelBuffer{Width: w, Height: h, Channels: channels, Pix: make([]uint8, n)}, nil
}

func (b PixelBuffer)String() string {
	return fmt.Sprintf("PixelBuffer[%dx%d, %d channels]", b.Width, b.Height, b.Channels)
}

func (b PixelBuffer)Bounds() image.Rectangle { return image.Rect(0, 0, b.Width, b.Height) }
func (b PixelBuffer)NumPixels() int          { return b.Width * b.Height }
func (b PixelBuffer)PixOffset(x, y int) int  { return (y*b.Width + x) * b.Channels }

// Validate checks the shape invariants.
func (b PixelBuffer)Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: image is %dx%d", ErrInvalidParameters, b.Width, b.Height)
	}
	if b.Channels < ColorChannels {
		return fmt.Errorf("%w: need at least %d channels, have %d", ErrInvalidParameters, ColorChannels, b.Channels)
	}
	n, err := sampleCount(b.Width, b.Height, b.Channels, 0)
	if err != nil {
		return err
	}
	if len(b.Pix) != n {
		return fmt.Errorf("%w: %s holds %d samples, want %d", ErrInvalidParameters, b, len(b.Pix), n)
	}
	return nil
}

// Clone returns a deep copy.
func (b PixelBuffer)Clone() PixelBuffer {
	b2 := b
	b2.Pix = make([]uint8, len(b.Pix))
	copy(b2.Pix, b.Pix)
	return b2
}

// Crop copies out the pixels in r, which must lie within the buffer.
func (b PixelBuffer)Crop(r image.Rectangle) (PixelBuffer, error) {
	if r.Empty() || !r.In(b.Bounds()) {
		return PixelBuffer{}, fmt.Errorf("%w: region %s not inside %s", ErrInvalidParameters, r, b.Bounds())
	}
	out, err := NewPixelBuffer(r.Dx(), r.Dy(), b.Channels, 0)
	if err != nil {
		return PixelBuffer{}, err
	}
	rowLen := r.Dx() * b.Channels
	for y:=0; y<r.Dy(); y++ {
		copy(out.Pix[y*rowLen:(y+1)*rowLen], b.Pix[b.PixOffset(r.Min.X, r.Min.Y+y):])
	}
	return out, nil
}

// Paste writes src into the buffer with its top-left corner at `at`. It
// checks everything first, so either the whole of src is written or none of it.
func (b PixelBuffer)Paste(at image.Point, src PixelBuffer) error {
	if src.Channels != b.Channels {
		return fmt.Errorf("%w: paste %d channels into %d", ErrInvalidParameters, src.Channels, b.Channels)
	}
	r := src.Bounds().Add(at)
	if !r.In(b.Bounds()) {
		return fmt.Errorf("%w: paste region %s not inside %s", ErrInvalidParameters, r, b.Bounds())
	}
	rowLen := src.Width * src.Channels
	for y:=0; y<src.Height; y++ {
		copy(b.Pix[b.PixOffset(at.X, at.Y+y):], src.Pix[y*rowLen:(y+1)*rowLen])
	}
	return nil
}

// sampleCount is w*h*channels, or ErrAllocation if that can't be represented.
func sampleCount(w, h, channels, maxPixels int) (int, error) {
	if w < 0 || h < 0 || channels < 0 {
		return 0, fmt.Errorf("%w: negative dimensions %dx%dx%d", ErrInvalidParameters, w, h, channels)
	}
	hi, npix := bits.Mul64(uint64(w), uint64(h))
	if hi != 0 || npix > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %dx%d pixels overflows", ErrAllocation, w, h)
	}
	if maxPixels > 0 && npix > uint64(maxPixels) {
		return 0, fmt.Errorf("%w: %dx%d is more than %d pixels", ErrAllocation, w, h, maxPixels)
	}
	hi, n := bits.Mul64(npix, uint64(channels))
	if hi != 0 || n > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %dx%dx%d samples overflows", ErrAllocation, w, h, channels)
	}
	return int(n), nil
}
