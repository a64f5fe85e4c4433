package hostio

import(
	"fmt"
	"image"
)

// ParseRegion reads a region given as "x,y,w,h". An empty string means
// the whole of bounds. Whether the region fits is left to the pipeline.
func ParseRegion(s string, bounds image.Rectangle) (image.Rectangle, error) {
	if s == "" {
		return bounds, nil
	}
	var x, y, w, h int
	if _, err := fmt.Sscanf(s, "%d,%d,%d,%d", &x, &y, &w, &h); err != nil {
		return image.Rectangle{}, fmt.Errorf("region '%s': want x,y,w,h: %v", s, err)
	}
	if w <= 0 || h <= 0 {
		return image.Rectangle{}, fmt.Errorf("region '%s': width and height must be positive", s)
	}
	return image.Rect(x, y, x+w, y+h), nil
}
