package analysis

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ironsheep/circle-census/internal/detection"
	"github.com/ironsheep/circle-census/internal/imaging"
)

// Mode selects which components are treated as circles.
type Mode string

const (
	// ModeRectangleExclusion counts every component that fails the rectangle
	// test. Noisy or irregular blobs are therefore counted too.
	ModeRectangleExclusion Mode = "rectangle_exclusion"

	// ModeByCircles counts only components that pass the circle test.
	ModeByCircles Mode = "by_circles"
)

// ErrUnknownMode is returned for a mode string other than the two above.
var ErrUnknownMode = errors.New("unknown selection mode")

// ParseMode converts a mode name to a Mode. The empty string selects
// ModeRectangleExclusion.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeRectangleExclusion:
		return ModeRectangleExclusion, nil
	case ModeByCircles:
		return ModeByCircles, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// ModeFor maps the command-line switch to a Mode.
func ModeFor(byCircles bool) Mode {
	if byCircles {
		return ModeByCircles
	}
	return ModeRectangleExclusion
}

// Selects reports whether the component is counted under mode m.
func (m Mode) Selects(c *detection.Component) (bool, error) {
	switch m {
	case ModeRectangleExclusion:
		return !detection.IsRectangle(c), nil
	case ModeByCircles:
		return detection.IsCircle(c), nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnknownMode, string(m))
}

// Summary is the final tally of circle-like components by color.
type Summary struct {
	Red   int `json:"red"`
	Black int `json:"black"`
}

// Add counts one component of the given color.
func (s *Summary) Add(c detection.ColorClass) {
	switch c {
	case detection.Red:
		s.Red++
	case detection.Black:
		s.Black++
	}
}

// String renders the summary line printed by the command-line tool.
func (s Summary) String() string {
	return fmt.Sprintf("%d red circle(s) and %d black circle(s) found", s.Red, s.Black)
}

// Analyze extracts the components of grid, keeps the ones mode selects, and
// tallies their colors.
//
// Only the shape test the mode needs is run. An all-background grid yields a
// zero Summary. The only error is ErrUnknownMode.
func Analyze(grid *imaging.PixelGrid, mode Mode) (Summary, error) {
	var summary Summary

	components := detection.ExtractComponents(grid)
	slog.Debug("extracted components", "count", len(components), "mode", string(mode))

	for i := range components {
		c := &components[i]
		selected, err := mode.Selects(c)
		if err != nil {
			return Summary{}, err
		}
		if !selected {
			slog.Debug("component skipped", "id", i, "size", c.Size(), "bounds", c.Bounds())
			continue
		}

		color := detection.ComponentColor(grid, c)
		summary.Add(color)
		slog.Debug("component counted", "id", i, "size", c.Size(), "bounds", c.Bounds(), "color", color)
	}

	return summary, nil
}
