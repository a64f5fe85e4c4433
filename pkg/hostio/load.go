package hostio

import(
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"golang.org/x/image/tiff"
)

// Metadata is what we could find out about an image file besides its pixels.
type Metadata struct {
	Filename      string
	Format        string

	// The EXIF tags that say how the camera thought about white balance.
	// They are -1 if the file has no EXIF, or not that tag.
	WhiteBalance  int   // 0: auto, 1: manual
	LightSource   int   // 0: unknown, 1: daylight, 2: fluorescent, 3: tungsten, ...

	Make          string
	Model         string
}

func (md Metadata)String() string {
	if md.WhiteBalance < 0 && md.LightSource < 0 {
		return fmt.Sprintf("%s (%s, no EXIF white balance)", md.Filename, md.Format)
	}
	return fmt.Sprintf("%s (%s, %s %s): EXIF WhiteBalance=%s, LightSource=%s", md.Filename, md.Format,
		md.Make, md.Model, whiteBalanceName(md.WhiteBalance), lightSourceName(md.LightSource))
}

func whiteBalanceName(wb int) string {
	switch wb {
	case 0: return "auto"
	case 1: return "manual"
	case -1: return "n/a"
	}
	return fmt.Sprintf("%d", wb)
}

// https://exiftool.org/TagNames/EXIF.html#LightSource
func lightSourceName(ls int) string {
	switch ls {
	case -1:  return "n/a"
	case 0:   return "unknown"
	case 1:   return "daylight"
	case 2:   return "fluorescent"
	case 3:   return "tungsten"
	case 4:   return "flash"
	case 9:   return "fine weather"
	case 10:  return "cloudy"
	case 11:  return "shade"
	case 17:  return "standard light A"
	case 18:  return "standard light B"
	case 19:  return "standard light C"
	case 20:  return "D55"
	case 21:  return "D65"
	case 22:  return "D75"
	case 23:  return "D50"
	case 255: return "other"
	}
	return fmt.Sprintf("%d", ls)
}

// LoadImage reads a PNG, JPEG or TIFF file, picking the decoder from the
// file extension. Missing EXIF is not an error.
func LoadImage(filename string) (image.Image, Metadata, error) {
	md := Metadata{Filename: filename, WhiteBalance: -1, LightSource: -1}

	var decode func(f *os.File) (image.Image, error)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		md.Format = "png"
		decode = func(f *os.File) (image.Image, error) { return png.Decode(f) }
	case ".jpg", ".jpeg":
		md.Format = "jpeg"
		decode = func(f *os.File) (image.Image, error) { return jpeg.Decode(f) }
	case ".tif", ".tiff":
		md.Format = "tiff"
		decode = func(f *os.File) (image.Image, error) { return tiff.Decode(f) }
	default:
		return nil, md, fmt.Errorf("load '%s': unsupported file type", filename)
	}

	reader, err := os.Open(filename)
	if err != nil {
		return nil, md, fmt.Errorf("open+r img '%s': %v", filename, err)
	}
	defer reader.Close()

	img, err := decode(reader)
	if err != nil {
		return nil, md, fmt.Errorf("%s loading '%s': %v", md.Format, filename, err)
	}

	if md.Format != "png" {
		readExif(filename, &md)
	}

	return img, md, nil
}

// readExif fills in whatever white balance tags it can find.
func readExif(filename string, md *Metadata) {
	reader, err := os.Open(filename)
	if err != nil {
		return
	}
	defer reader.Close()

	ex, err := exif.Decode(reader)
	if err != nil {
		return
	}

	if tag,err := ex.Get(exif.WhiteBalance); err == nil {
		if val,err := tag.Int(0); err == nil {
			md.WhiteBalance = val
		}
	}
	if tag,err := ex.Get(exif.LightSource); err == nil {
		if val,err := tag.Int(0); err == nil {
			md.LightSource = val
		}
	}
	if tag,err := ex.Get(exif.Make); err == nil {
		if val,err := tag.StringVal(); err == nil {
			md.Make = strings.TrimSpace(val)
		}
	}
	if tag,err := ex.Get(exif.Model); err == nil {
		if val,err := tag.StringVal(); err == nil {
			md.Model = strings.TrimSpace(val)
		}
	}
}
