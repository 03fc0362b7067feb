package detection

import (
	"fmt"

	"github.com/ironsheep/circle-census/internal/imaging"
)

// ColorClass is the binary color assigned to a component.
type ColorClass int

const (
	Black ColorClass = iota
	Red
)

// ColorThreshold splits the red channel: values below it are Black.
const ColorThreshold = 255 / 2

func (c ColorClass) String() string {
	switch c {
	case Black:
		return "black"
	case Red:
		return "red"
	}
	return fmt.Sprintf("ColorClass(%d)", int(c))
}

// MarshalText encodes the class by name, so JSON reports read "red"/"black".
func (c ColorClass) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ClassifyRGB maps a pixel to Black or Red by its red channel alone.
func ClassifyRGB(c imaging.RGB) ColorClass {
	if c.R < ColorThreshold {
		return Black
	}
	return Red
}

// ComponentColor classifies a component by the single pixel at its centroid.
//
// Only one pixel is sampled. A component whose centroid falls outside its own
// pixels (a ring, a crescent) is classified by whatever lies there, which may
// be background.
func ComponentColor(grid *imaging.PixelGrid, c *Component) ColorClass {
	return ClassifyRGB(CentroidPixel(grid, c))
}

// CentroidPixel returns the grid pixel at the component's centroid.
func CentroidPixel(grid *imaging.PixelGrid, c *Component) imaging.RGB {
	center := c.Centroid()
	return grid.At(center.Row, center.Col)
}
