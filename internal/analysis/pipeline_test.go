package analysis

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironsheep/circle-census/internal/imaging"
	"github.com/ironsheep/circle-census/internal/testimg"
)

var modes = []Mode{ModeRectangleExclusion, ModeByCircles}

func mustGrid(t *testing.T, img image.Image) *imaging.PixelGrid {
	t.Helper()
	grid, err := imaging.NewPixelGrid(img)
	require.NoError(t, err)
	return grid
}

// mixedImage holds one of everything:
//   - red disk r=15 and black disk r=10 (circles)
//   - black 40×20 and red 20×30 rectangles
//   - a black L shape whose centroid lies on the white background
func mixedImage() *image.NRGBA {
	img := testimg.Canvas(200, 130, testimg.White)
	testimg.Disk(img, 30, 30, 15, testimg.Red)
	testimg.Disk(img, 90, 30, 10, testimg.Black)
	testimg.Rect(img, 10, 70, 50, 90, testimg.Black)
	testimg.Rect(img, 70, 70, 90, 100, testimg.Red)
	testimg.Rect(img, 120, 60, 130, 110, testimg.Black)
	testimg.Rect(img, 130, 100, 160, 110, testimg.Black)
	return img
}

func TestAnalyze_BackgroundOnly(t *testing.T) {
	grid := mustGrid(t, testimg.Canvas(64, 48, testimg.White))

	for _, mode := range modes {
		summary, err := Analyze(grid, mode)
		require.NoError(t, err)
		require.Equal(t, Summary{}, summary, "mode %s", mode)
	}
}

func TestAnalyze_SingleRedDisk(t *testing.T) {
	img := testimg.Canvas(60, 60, testimg.White)
	testimg.Disk(img, 30, 30, 10, testimg.Red)
	grid := mustGrid(t, img)

	for _, mode := range modes {
		summary, err := Analyze(grid, mode)
		require.NoError(t, err)
		require.Equal(t, Summary{Red: 1, Black: 0}, summary, "mode %s", mode)
	}
}

func TestAnalyze_BlackRectangleAndDisk(t *testing.T) {
	img := testimg.Canvas(100, 60, testimg.White)
	testimg.Rect(img, 5, 10, 35, 40, testimg.Black)
	testimg.Disk(img, 70, 30, 12, testimg.Black)
	grid := mustGrid(t, img)

	for _, mode := range modes {
		summary, err := Analyze(grid, mode)
		require.NoError(t, err)
		require.Equal(t, Summary{Red: 0, Black: 1}, summary, "mode %s", mode)
	}
}

func TestAnalyze_ModesDiverge(t *testing.T) {
	grid := mustGrid(t, mixedImage())

	// The L shape is not a rectangle, so the default mode counts it, and its
	// centroid sample is white, which reads as red.
	summary, err := Analyze(grid, ModeRectangleExclusion)
	require.NoError(t, err)
	require.Equal(t, Summary{Red: 2, Black: 1}, summary)

	summary, err = Analyze(grid, ModeByCircles)
	require.NoError(t, err)
	require.Equal(t, Summary{Red: 1, Black: 1}, summary)
}

func TestAnalyze_UnknownMode(t *testing.T) {
	img := testimg.Canvas(20, 20, testimg.White)
	testimg.Rect(img, 5, 5, 8, 8, testimg.Black)

	_, err := Analyze(mustGrid(t, img), Mode("by_squares"))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownMode))
}

func TestAnalyze_UnknownModeWithoutComponents(t *testing.T) {
	// Nothing to select, so the mode is never consulted.
	summary, err := Analyze(mustGrid(t, testimg.Canvas(5, 5, testimg.White)), Mode("bogus"))
	require.NoError(t, err)
	require.Equal(t, Summary{}, summary)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeRectangleExclusion, false},
		{"rectangle_exclusion", ModeRectangleExclusion, false},
		{"by_circles", ModeByCircles, false},
		{"circles", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownMode)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestModeFor(t *testing.T) {
	require.Equal(t, ModeByCircles, ModeFor(true))
	require.Equal(t, ModeRectangleExclusion, ModeFor(false))
}

func TestSummary_String(t *testing.T) {
	require.Equal(t, "0 red circle(s) and 0 black circle(s) found", Summary{}.String())
	require.Equal(t, "3 red circle(s) and 1 black circle(s) found", Summary{Red: 3, Black: 1}.String())
}
