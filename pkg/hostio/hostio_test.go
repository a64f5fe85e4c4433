package hostio

import(
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abworrall/shadesofgrey/pkg/ecolor"
	"github.com/abworrall/shadesofgrey/pkg/emath"
	"github.com/abworrall/shadesofgrey/pkg/shades"
)

func testImage(alpha uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 12, 8))
	for y:=0; y<8; y++ {
		for x:=0; x<12; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x*20), uint8(y*30), uint8(100+x+y), alpha})
		}
	}
	return img
}

func TestToPixelBuffer(t *testing.T) {
	opaque := testImage(0xFF)
	pb := ToPixelBuffer(opaque)
	require.NoError(t, pb.Validate())
	assert.Equal(t, 3, pb.Channels)
	assert.Equal(t, []uint8{uint8(5*20), uint8(2*30), uint8(107)}, pb.Pix[pb.PixOffset(5,2):][:3])
	assert.Equal(t, opaque.Pix, ToImage(pb).Pix)

	translucent := testImage(0x80)
	pb = ToPixelBuffer(translucent)
	assert.Equal(t, 4, pb.Channels)
	assert.Equal(t, translucent.Pix, ToImage(pb).Pix)
}

func TestToPixelBufferOffsetBounds(t *testing.T) {
	img := testImage(0xFF).SubImage(image.Rect(3, 2, 9, 7))
	pb := ToPixelBuffer(img)
	assert.Equal(t, 6, pb.Width)
	assert.Equal(t, 5, pb.Height)
	assert.Equal(t, uint8(3*20), pb.Pix[0])
	assert.Equal(t, uint8(2*30), pb.Pix[1])
}

func TestWriteAndLoad(t *testing.T) {
	dir := t.TempDir()
	src := testImage(0xFF)

	for _, name := range []string{"out.png", "out.tif"} {
		filename := filepath.Join(dir, name)
		require.NoError(t, WriteImage(src, filename))

		img, md, err := LoadImage(filename)
		require.NoError(t, err, name)
		assert.Equal(t, filename, md.Filename)
		assert.Equal(t, -1, md.WhiteBalance, "%s has no EXIF", name)
		assert.Equal(t, src.Pix, ToImage(ToPixelBuffer(img)).Pix, name)
	}

	filename := filepath.Join(dir, "out.jpg")
	require.NoError(t, WriteImage(src, filename))
	img, md, err := LoadImage(filename)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", md.Format)
	assert.Equal(t, src.Bounds(), img.Bounds())

	_, _, err = LoadImage(filepath.Join(dir, "out.gif"))
	assert.Error(t, err)
	_, _, err = LoadImage(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
	assert.Error(t, WriteImage(src, filepath.Join(dir, "out.bmp")))
}

func TestWriteHDR(t *testing.T) {
	pb := ToPixelBuffer(testImage(0xFF))
	res, err := shades.Correct(pb, shades.NewConfig())
	require.NoError(t, err)

	filename := filepath.Join(t.TempDir(), "out.hdr")
	require.NoError(t, WriteHDR(res.Linear, filename))

	fi, err := os.Stat(filename)
	require.NoError(t, err)
	assert.Greater(t, fi.Size(), int64(12*8))
}

func TestAnnotate(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 200, 100))
	il := ecolor.Illuminant{Vec3: emath.Vec3{0.8, 0.5, 0.2}}

	out := Annotate(src, il, il.Hex())
	assert.Equal(t, src.Bounds(), out.Bounds())

	want := color.NRGBAModel.Convert(il.Color().Clamped()).(color.NRGBA)
	got := color.NRGBAModel.Convert(out.At(10+swatchSize/2, 10+swatchSize/4)).(color.NRGBA)
	assert.InDelta(t, want.R, got.R, 1)
	assert.InDelta(t, want.G, got.G, 1)
	assert.InDelta(t, want.B, got.B, 1)

	// The source is not drawn on
	assert.Equal(t, color.NRGBA{}, src.NRGBAAt(10+swatchSize/2, 10+swatchSize/4))

	filename := filepath.Join(t.TempDir(), "annotated.png")
	require.NoError(t, WriteAnnotatedPNG(src, il, "test", filename))
	_, _, err := LoadImage(filename)
	assert.NoError(t, err)
}

func TestBrightnessReport(t *testing.T) {
	pb := shades.PixelBuffer{Width: 4, Height: 1, Channels: 3, Pix: []uint8{
		10, 20, 30,
		100, 50, 50,
		250, 0, 0,
		255, 255, 255,
	}}

	rep := NewBrightnessReport(pb, shades.Params{Threshold: 5, Norm: 1})
	assert.Equal(t, int64(4), rep.Total)
	assert.Equal(t, int64(2), rep.Rejected)
	assert.Equal(t, int64(255), rep.Max)
	assert.InDelta(t, 0.5, rep.RejectedFraction(), 1e-9)
	assert.Contains(t, rep.String(), "over threshold")

	rep = NewBrightnessReport(pb, shades.Params{Threshold: 0, Norm: 1})
	assert.Equal(t, int64(0), rep.Rejected)
}

func TestMetadataString(t *testing.T) {
	md := Metadata{Filename: "a.jpg", Format: "jpeg", WhiteBalance: 0, LightSource: 3, Make: "NIKON", Model: "Df"}
	assert.Contains(t, md.String(), "WhiteBalance=auto")
	assert.Contains(t, md.String(), "LightSource=tungsten")

	md = Metadata{Filename: "a.png", Format: "png", WhiteBalance: -1, LightSource: -1}
	assert.Contains(t, md.String(), "no EXIF")
}

func TestParseRegion(t *testing.T) {
	bounds := image.Rect(0, 0, 40, 30)

	r, err := ParseRegion("", bounds)
	require.NoError(t, err)
	assert.Equal(t, bounds, r)

	r, err = ParseRegion("10,5,20,8", bounds)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(10, 5, 30, 13), r)

	for _, s := range []string{"10,10,-5,-5", "10,10,0,4", "1,2,3", "a,b,c,d"} {
		_, err := ParseRegion(s, bounds)
		assert.Errorf(t, err, "region %q", s)
	}
}
