// Package detection segments a decoded image into connected foreground
// components and classifies them.
//
// The package works on an imaging.PixelGrid whose top-left pixel is the
// background color. Everything else is foreground, with no tolerance: a pixel
// differing from the background by one unit in one channel is foreground.
//
// # Components
//
// ExtractComponents groups foreground pixels into 4-connected components using
// breadth-first search. Components partition the foreground: every foreground
// pixel belongs to exactly one of them.
//
// # Shape Tests
//
// Two independent predicates run on a component's pixel set:
//
//   - IsRectangle: every row holds the same number of pixels
//   - IsCircle: the component overlaps a fitted disk by at least 90%
//     (intersection over union)
//
// The predicates are heuristics tuned for clean, axis-aligned synthetic
// images. They are not mutually exclusive: a single pixel passes both.
//
// # Color
//
// ComponentColor samples the pixel at the component centroid and splits on the
// red channel into Black (< 127) or Red.
//
// # Coordinate System
//
// Points are (Row, Col) with the origin at the top-left corner. Bounding boxes
// are returned as image.Rectangle in image coordinates (X = Col, Y = Row) with
// an exclusive Max.
package detection
