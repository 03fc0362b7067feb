// Package imaging loads images into pixel grids and writes annotated copies.
//
// A PixelGrid is the decoded, alpha-free form of an image that the rest of the
// module works on. Coordinates are (row, col) with (0,0) at the top-left pixel.
// Marks passed to Annotate use image.Rectangle, where X is the column and Y is
// the row.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. A PixelGrid is never modified after
// construction.
//
// # Formats
//
// PNG, JPEG, GIF, BMP and TIFF are decoded through disintegration/imaging.
// WebP decoding is registered by importing golang.org/x/image/webp.
package imaging
