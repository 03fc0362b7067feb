package analysis

import (
	"encoding/json"
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironsheep/circle-census/internal/detection"
	"github.com/ironsheep/circle-census/internal/imaging"
	"github.com/ironsheep/circle-census/internal/testimg"
)

func TestInspect_MixedImage(t *testing.T) {
	report := Inspect(mustGrid(t, mixedImage()))

	require.Equal(t, 200, report.Width)
	require.Equal(t, 130, report.Height)
	require.Equal(t, "#ffffff", report.Background)
	require.Equal(t, 5, report.Count)
	require.Len(t, report.Components, 5)

	// Scan order: the two disks (rows 15, 20), the L (row 60), then the
	// rectangles that both start on row 70.
	want := []struct {
		size  int
		shape detection.ShapeClass
		color detection.ColorClass
	}{
		{709, detection.Circle, detection.Red},
		{317, detection.Circle, detection.Black},
		{800, detection.Other, detection.Red},
		{800, detection.Rectangle, detection.Black},
		{600, detection.Rectangle, detection.Red},
	}
	for i, w := range want {
		c := report.Components[i]
		require.Equal(t, i, c.ID)
		require.Equal(t, w.size, c.Size, "component %d", i)
		require.Equal(t, w.shape, c.Shape, "component %d", i)
		require.Equal(t, w.color, c.Color, "component %d", i)
	}

	disk := report.Components[1]
	require.Equal(t, Bounds{X1: 80, Y1: 20, X2: 101, Y2: 41}, disk.Bounds)
	require.Equal(t, detection.Point{Row: 30, Col: 90}, disk.Centroid)
	require.Equal(t, 10, disk.Radius)
	require.Equal(t, "#000000", disk.ColorHex)

	lShape := report.Components[2]
	require.False(t, lShape.Rectangle)
	require.False(t, lShape.Circle)
	require.Equal(t, "#ffffff", lShape.ColorHex)
}

func TestReport_SummaryMatchesAnalyze(t *testing.T) {
	grid := mustGrid(t, mixedImage())
	report := Inspect(grid)

	for _, mode := range modes {
		fromReport, err := report.Summary(mode)
		require.NoError(t, err)
		direct, err := Analyze(grid, mode)
		require.NoError(t, err)
		require.Equal(t, direct, fromReport, "mode %s", mode)
	}

	_, err := report.Summary(Mode("nope"))
	require.ErrorIs(t, err, ErrUnknownMode)
}

func TestInspect_Empty(t *testing.T) {
	report := Inspect(mustGrid(t, testimg.Canvas(10, 10, testimg.Black)))
	require.Equal(t, 0, report.Count)
	require.NotNil(t, report.Components)
	require.Equal(t, "#000000", report.Background)
}

func TestReport_JSON(t *testing.T) {
	img := testimg.Canvas(40, 40, testimg.White)
	testimg.Rect(img, 10, 10, 20, 15, testimg.Black)

	b, err := json.Marshal(Inspect(mustGrid(t, img)))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &decoded))
	components := decoded["components"].([]interface{})
	require.Len(t, components, 1)

	c := components[0].(map[string]interface{})
	require.Equal(t, "rectangle", c["shape"])
	require.Equal(t, "black", c["color"])
	require.Equal(t, map[string]interface{}{"x1": 10.0, "y1": 10.0, "x2": 20.0, "y2": 15.0}, c["bounds"])
}

func TestReport_Marks(t *testing.T) {
	report := Inspect(mustGrid(t, mixedImage()))

	marks, err := report.Marks(ModeByCircles)
	require.NoError(t, err)
	require.Len(t, marks, 5)

	require.Equal(t, imaging.MarkCounted, marks[0].Color)
	require.Equal(t, "0 red", marks[0].Label)
	require.Equal(t, image.Rect(15, 15, 46, 46), marks[0].Bounds)

	require.Equal(t, imaging.MarkSkipped, marks[2].Color)
	require.Equal(t, "2 other", marks[2].Label)
	require.Equal(t, "3 rectangle", marks[3].Label)

	marks, err = report.Marks(ModeRectangleExclusion)
	require.NoError(t, err)
	require.Equal(t, imaging.MarkCounted, marks[2].Color)
	require.Equal(t, "2 red", marks[2].Label)
}
