package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Mark is one box to draw on an annotated image.
//
// Bounds uses image coordinates (X = column, Y = row) with an exclusive Max,
// the same convention as image.Rectangle.
type Mark struct {
	Bounds image.Rectangle
	Label  string
	Color  color.NRGBA
}

// Annotation colors.
var (
	MarkCounted = color.NRGBA{R: 0, G: 200, B: 0, A: 255}
	MarkSkipped = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	labelFG     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	labelBG     = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
)

// Annotate returns a copy of src with a one-pixel outline around every mark
// and its label drawn just above the box (or inside it when the box touches
// the top edge). The source image is not modified.
func Annotate(src image.Image, marks []Mark) *image.NRGBA {
	dst := imaging.Clone(src)
	for _, m := range marks {
		drawOutline(dst, m.Bounds, m.Color)
	}
	// Labels go last so outlines never cross them.
	for _, m := range marks {
		if m.Label == "" {
			continue
		}
		y := m.Bounds.Min.Y - 2
		if y-labelHeight < 0 {
			y = m.Bounds.Min.Y + labelHeight
		}
		drawLabel(dst, m.Bounds.Min.X, y, m.Label)
	}
	return dst
}

// SavePNG encodes img as PNG at path, replacing any existing file.
func SavePNG(path string, img image.Image) error {
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save image %q: %w", path, err)
	}
	return nil
}

func drawOutline(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetNRGBA(x, r.Min.Y, c)
		img.SetNRGBA(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetNRGBA(r.Min.X, y, c)
		img.SetNRGBA(r.Max.X-1, y, c)
	}
}

// basicfont.Face7x13 glyph metrics.
const (
	glyphWidth  = 7
	labelHeight = 13
	labelAscent = 11
)

// drawLabel draws text with its baseline at (x, y) over a dark box.
func drawLabel(img *image.NRGBA, x, y int, text string) {
	bg := image.Rect(x-1, y-labelAscent-1, x+len(text)*glyphWidth+1, y+labelHeight-labelAscent)
	bg = bg.Intersect(img.Bounds())
	for py := bg.Min.Y; py < bg.Max.Y; py++ {
		for px := bg.Min.X; px < bg.Max.X; px++ {
			img.SetNRGBA(px, py, labelBG)
		}
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelFG),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
