// Package analysis counts red and black circles in a decoded image.
//
// Analyze is the whole pipeline: extract components, keep the circle-like
// ones, and tally their colors. Which components are circle-like depends on
// the Mode:
//
//   - ModeRectangleExclusion (default): anything that is not a rectangle
//   - ModeByCircles: only components that pass the circle test
//
// The two modes agree on clean images of filled rectangles and disks. On
// anything else they can differ, since the default mode counts every
// non-rectangular blob.
//
// Inspect produces a per-component Report for debugging and for the
// components command, the MCP tools and the annotated overlay.
package analysis
