package hostio

import(
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/codec/rgbe"
	"golang.org/x/image/tiff"
)

// WriteImage saves img, picking the format from the file extension.
func WriteImage(img image.Image, filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":          return WritePNG(img, filename)
	case ".tif", ".tiff": return WriteTIFF(img, filename)
	case ".jpg", ".jpeg": return WriteJPEG(img, filename)
	}
	return fmt.Errorf("write '%s': unsupported file type", filename)
}

func WritePNG(img image.Image, filename string) error {
	if writer, err := os.Create(filename); err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	} else {
		defer writer.Close()
		return png.Encode(writer, img)
	}
}

func WriteTIFF(img image.Image, filename string) error {
	if writer, err := os.Create(filename); err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	} else {
		defer writer.Close()
		return tiff.Encode(writer, img, &tiff.Options{Compression: tiff.Deflate})
	}
}

func WriteJPEG(img image.Image, filename string) error {
	if writer, err := os.Create(filename); err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	} else {
		defer writer.Close()
		return jpeg.Encode(writer, img, &jpeg.Options{Quality: 95})
	}
}

// WriteHDR outputs the linear light image as a Radiance HDR file, which
// keeps the values that the 8-bit output had to quantize.
func WriteHDR(img hdr.Image, filename string) error {
	if writer, err := os.Create(filename); err != nil {
		return fmt.Errorf("WriteHDR, open+w '%s': %v", filename, err)
	} else {
		defer writer.Close()
		err := rgbe.Encode(writer, img)
		if err != nil {
			log.Printf("WriteHDR, encoding RGBE file: %v\n", err)
		}
		return err
	}
}
