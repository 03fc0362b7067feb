package imaging

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrEmptyImage is returned when a decoded image has no pixels.
var ErrEmptyImage = errors.New("image has zero width or height")

// RGB is one decoded pixel with the alpha channel dropped.
//
// RGB values are comparable with ==, which is how foreground pixels are told
// apart from the background: any difference in any channel counts.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return c.Colorful().Hex()
}

// Colorful converts the pixel to a go-colorful value for color-space math.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// PixelGrid is a decoded, immutable Height×Width grid of RGB values.
//
// Coordinates are (row, col) with the origin at the top-left corner:
// row grows downward and col grows rightward. This matches image.Image
// (x = col, y = row) but keeps row first, which is the order the component
// extractor scans in.
//
// A PixelGrid is never modified after construction and is safe for concurrent
// reads.
type PixelGrid struct {
	height int
	width  int
	pix    []RGB
}

// NewPixelGrid decodes any image.Image into a PixelGrid.
//
// The image is first normalised to non-premultiplied 8-bit NRGBA, so the R, G
// and B values are the stored channel samples and the alpha channel is simply
// discarded. The grid is rebased so that the image's Min point becomes (0,0).
//
// # Errors
//
//   - Returns ErrEmptyImage if the image has zero width or height.
func NewPixelGrid(img image.Image) (*PixelGrid, error) {
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, ErrEmptyImage
	}

	nrgba := imaging.Clone(img)
	width, height := nrgba.Rect.Dx(), nrgba.Rect.Dy()

	pix := make([]RGB, width*height)
	for row := 0; row < height; row++ {
		off := row * nrgba.Stride
		for col := 0; col < width; col++ {
			i := off + col*4
			pix[row*width+col] = RGB{R: nrgba.Pix[i], G: nrgba.Pix[i+1], B: nrgba.Pix[i+2]}
		}
	}

	return &PixelGrid{height: height, width: width, pix: pix}, nil
}

// Height returns the number of rows.
func (g *PixelGrid) Height() int { return g.height }

// Width returns the number of columns.
func (g *PixelGrid) Width() int { return g.width }

// InBounds reports whether (row, col) addresses a pixel of the grid.
func (g *PixelGrid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// At returns the pixel at (row, col). It panics if the coordinate is outside
// the grid; use InBounds first when that is possible.
func (g *PixelGrid) At(row, col int) RGB {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("imaging: pixel (%d,%d) outside %dx%d grid", row, col, g.height, g.width))
	}
	return g.pix[row*g.width+col]
}

// Background returns the color of the top-left pixel.
//
// The top-left pixel is assumed to belong to the background. This is not
// verified: an image whose corner is covered by a shape will have that shape's
// color treated as background.
func (g *PixelGrid) Background() RGB {
	return g.pix[0]
}

// Image renders the grid back into an opaque NRGBA image.
func (g *PixelGrid) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.width, g.height))
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			px := g.pix[row*g.width+col]
			i := img.PixOffset(col, row)
			img.Pix[i] = px.R
			img.Pix[i+1] = px.G
			img.Pix[i+2] = px.B
			img.Pix[i+3] = 0xFF
		}
	}
	return img
}
