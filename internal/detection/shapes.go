package detection

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

const (
	// TargetPointsShare is the fraction of a component's pixels that must lie
	// within the fitted radius.
	TargetPointsShare = 0.98

	// CommonPointsShareThreshold is the minimum overlap (intersection over
	// union) between a component and its fitted disk for it to count as a
	// circle.
	CommonPointsShareThreshold = 0.90

	// diskRounding biases the disk half-height upward so that rows near the
	// horizontal diameter are not clipped by truncation.
	diskRounding = 0.99
)

// IsRectangle reports whether every row of the component holds the same
// number of pixels.
//
// For the axis-aligned filled rectangles this tool is meant for, that is
// exactly the rectangle condition. It is not sufficient in general: any shape
// whose rows happen to have equal widths, such as a sheared staircase of
// equal-width rows, also passes.
func IsRectangle(c *Component) bool {
	rowCounts := make(map[int]int)
	for _, p := range c.points {
		rowCounts[p.Row]++
	}

	widths := make(map[int]int)
	for _, n := range rowCounts {
		widths[n]++
	}
	return len(widths) == 1
}

// CircleFit holds the intermediate values of the circle test.
type CircleFit struct {
	// Center is the component centroid the disk is built around.
	Center Point `json:"center"`

	// Radius is the smallest truncated distance from Center that covers at
	// least TargetPointsShare of the component's pixels.
	Radius int `json:"radius"`

	// DistanceHistogram counts pixels by truncated distance from Center.
	// Index i holds the number of pixels at distance i.
	DistanceHistogram []int `json:"distance_histogram"`

	// DiskSize is the number of pixels in the synthesized disk.
	DiskSize int `json:"disk_size"`

	// Common is the number of pixels shared by the component and the disk.
	Common int `json:"common"`

	// Overlap is Common divided by the size of the union (0.0 to 1.0).
	Overlap float64 `json:"overlap"`
}

// IsCircle reports whether the overlap is at least CommonPointsShareThreshold.
func (f CircleFit) IsCircle() bool {
	return f.Overlap >= CommonPointsShareThreshold
}

// FitCircle compares a component against an ideal filled disk.
//
// # Algorithm
//
//  1. Center: the component centroid (floor of the mean row and column).
//  2. Distances: the Euclidean distance of every pixel from Center,
//     truncated to an integer.
//  3. Radius: the empirical TargetPointsShare quantile of those distances,
//     i.e. the smallest distance whose cumulative count reaches the share.
//  4. Disk: for every row offset x in [-Radius, Radius] the disk spans
//     columns Center.Col ± floor(sqrt(Radius² - x²) + 0.99).
//  5. Overlap: |component ∩ disk| / |component ∪ disk|.
//
// The truncation in step 2 and the rounding bias in step 4 decide which
// borderline shapes pass; changing either changes results.
func FitCircle(c *Component) CircleFit {
	center := c.Centroid()

	dists := make([]float64, len(c.points))
	maxDist := 0
	for i, p := range c.points {
		d := truncDistance(center, p)
		dists[i] = float64(d)
		if d > maxDist {
			maxDist = d
		}
	}

	hist := make([]int, maxDist+1)
	for _, d := range dists {
		hist[int(d)]++
	}

	sort.Float64s(dists)
	radius := int(stat.Quantile(TargetPointsShare, stat.Empirical, dists, nil))

	diskSize, common := 0, 0
	for x := -radius; x <= radius; x++ {
		dy := int(math.Sqrt(float64(radius*radius-x*x)) + diskRounding)
		for y := -dy; y <= dy; y++ {
			diskSize++
			if c.Contains(Point{Row: center.Row + x, Col: center.Col + y}) {
				common++
			}
		}
	}

	// Disk points are distinct by construction, so the union is the sum of
	// both sizes less the intersection.
	union := diskSize + len(c.points) - common

	return CircleFit{
		Center:            center,
		Radius:            radius,
		DistanceHistogram: hist,
		DiskSize:          diskSize,
		Common:            common,
		Overlap:           float64(common) / float64(union),
	}
}

// IsCircle reports whether the component is close enough to a filled disk.
// See FitCircle for the test.
func IsCircle(c *Component) bool {
	return FitCircle(c).IsCircle()
}

func truncDistance(a, b Point) int {
	dr := float64(a.Row - b.Row)
	dc := float64(a.Col - b.Col)
	return int(math.Sqrt(dr*dr + dc*dc))
}

// ShapeClass is a single label derived from the two shape tests.
type ShapeClass int

const (
	Other ShapeClass = iota
	Rectangle
	Circle
)

func (s ShapeClass) String() string {
	switch s {
	case Rectangle:
		return "rectangle"
	case Circle:
		return "circle"
	}
	return "other"
}

// MarshalText encodes the class by name.
func (s ShapeClass) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ClassifyShape folds the two test results into one label. A component that
// passes both tests is labelled Circle.
func ClassifyShape(rectangle, circle bool) ShapeClass {
	switch {
	case circle:
		return Circle
	case rectangle:
		return Rectangle
	}
	return Other
}
