package analysis

import (
	"fmt"
	"image"

	"github.com/ironsheep/circle-census/internal/detection"
	"github.com/ironsheep/circle-census/internal/imaging"
)

// Bounds is a bounding box in image coordinates.
//
//   - (X1, Y1) is the top-left pixel (inclusive)
//   - (X2, Y2) is one past the bottom-right pixel (exclusive)
type Bounds struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

func boundsOf(r image.Rectangle) Bounds {
	return Bounds{X1: r.Min.X, Y1: r.Min.Y, X2: r.Max.X, Y2: r.Max.Y}
}

// Rect converts b back to an image.Rectangle.
func (b Bounds) Rect() image.Rectangle {
	return image.Rect(b.X1, b.Y1, b.X2, b.Y2)
}

// ComponentReport describes one component and the outcome of every test.
type ComponentReport struct {
	// ID is the component's index in row-major scan order, starting at 0.
	ID int `json:"id"`

	// Size is the number of pixels in the component.
	Size int `json:"size"`

	Bounds   Bounds          `json:"bounds"`
	Centroid detection.Point `json:"centroid"`

	// Rectangle and Circle are the raw results of the two shape tests.
	Rectangle bool `json:"rectangle"`
	Circle    bool `json:"circle"`

	// Radius and Overlap come from the circle fit.
	Radius  int     `json:"radius"`
	Overlap float64 `json:"overlap"`

	Shape    detection.ShapeClass `json:"shape"`
	Color    detection.ColorClass `json:"color"`
	ColorHex string               `json:"color_hex"` // Centroid pixel "#rrggbb"
}

// Selected reports whether the component is counted under mode.
func (r ComponentReport) Selected(mode Mode) (bool, error) {
	switch mode {
	case ModeRectangleExclusion:
		return !r.Rectangle, nil
	case ModeByCircles:
		return r.Circle, nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnknownMode, string(mode))
}

// Report is the full classification of every component in an image.
type Report struct {
	Width      int               `json:"width"`
	Height     int               `json:"height"`
	Background string            `json:"background"`
	Components []ComponentReport `json:"components"`
	Count      int               `json:"count"`
}

// Inspect runs both shape tests and the color sampler on every component.
//
// Unlike Analyze, which runs only the test its mode needs, Inspect always
// does all the work, so it is the slower of the two. Report.Summary gives the
// same counts as Analyze for either mode.
func Inspect(grid *imaging.PixelGrid) *Report {
	components := detection.ExtractComponents(grid)

	reports := make([]ComponentReport, 0, len(components))
	for i := range components {
		c := &components[i]
		fit := detection.FitCircle(c)
		rect := detection.IsRectangle(c)
		px := detection.CentroidPixel(grid, c)

		reports = append(reports, ComponentReport{
			ID:        i,
			Size:      c.Size(),
			Bounds:    boundsOf(c.Bounds()),
			Centroid:  fit.Center,
			Rectangle: rect,
			Circle:    fit.IsCircle(),
			Radius:    fit.Radius,
			Overlap:   fit.Overlap,
			Shape:     detection.ClassifyShape(rect, fit.IsCircle()),
			Color:     detection.ClassifyRGB(px),
			ColorHex:  px.Hex(),
		})
	}

	return &Report{
		Width:      grid.Width(),
		Height:     grid.Height(),
		Background: grid.Background().Hex(),
		Components: reports,
		Count:      len(reports),
	}
}

// Summary tallies the report's components under mode.
func (r *Report) Summary(mode Mode) (Summary, error) {
	var s Summary
	for _, c := range r.Components {
		ok, err := c.Selected(mode)
		if err != nil {
			return Summary{}, err
		}
		if ok {
			s.Add(c.Color)
		}
	}
	return s, nil
}

// Marks converts the report into annotation boxes. Components counted under
// mode are drawn in imaging.MarkCounted, the rest in imaging.MarkSkipped.
func (r *Report) Marks(mode Mode) ([]imaging.Mark, error) {
	marks := make([]imaging.Mark, 0, len(r.Components))
	for _, c := range r.Components {
		ok, err := c.Selected(mode)
		if err != nil {
			return nil, err
		}
		m := imaging.Mark{
			Bounds: c.Bounds.Rect(),
			Color:  imaging.MarkSkipped,
			Label:  fmt.Sprintf("%d %s", c.ID, c.Shape),
		}
		if ok {
			m.Color = imaging.MarkCounted
			m.Label = fmt.Sprintf("%d %s", c.ID, c.Color)
		}
		marks = append(marks, m)
	}
	return marks, nil
}
