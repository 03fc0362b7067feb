package imaging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ImageCache provides thread-safe caching of decoded pixel grids to avoid
// redundant disk reads and decodes.
//
// The cache stores *PixelGrid values keyed by their file path. Once an image
// is loaded, subsequent Load() calls for the same path return the cached grid
// without disk I/O.
//
// ImageCache is safe for concurrent use by multiple goroutines.
//
// # Memory Management
//
// Cached grids remain in memory until explicitly removed via Evict() or Clear().
// A grid costs three bytes per pixel, so long-running processes that see many
// large images should evict what they no longer need.
type ImageCache struct {
	mu    sync.RWMutex
	grids map[string]*PixelGrid
}

// NewImageCache creates and initializes a new empty cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		grids: make(map[string]*PixelGrid),
	}
}

// Load retrieves a grid from the cache or decodes it from disk if not cached.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats are
//     PNG, JPEG, GIF, BMP, TIFF and WebP.
//
// The grid is cached using the exact path string provided. Different paths to
// the same file (e.g., relative vs absolute) will result in separate entries.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be decoded
//   - Returns ErrEmptyImage (wrapped) if the image has no pixels
func (c *ImageCache) Load(path string) (*PixelGrid, error) {
	c.mu.RLock()
	if grid, ok := c.grids[path]; ok {
		c.mu.RUnlock()
		return grid, nil
	}
	c.mu.RUnlock()

	grid, err := LoadGrid(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.grids[path] = grid
	c.mu.Unlock()

	return grid, nil
}

// Clear removes all grids from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.grids = make(map[string]*PixelGrid)
	c.mu.Unlock()
}

// Evict removes a specific grid from the cache by its path.
// If the path is not in the cache, this method does nothing.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.grids, path)
	c.mu.Unlock()
}

// Len returns the number of cached grids.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.grids)
}

// LoadGrid opens and decodes an image file into a PixelGrid without caching.
//
// Decoding does not apply EXIF orientation: the grid is laid out exactly as
// the pixels are stored in the file.
func LoadGrid(path string) (*PixelGrid, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	grid, err := NewPixelGrid(img)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %q: %w", path, err)
	}
	return grid, nil
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is derived from the file extension: "png", "jpeg", "gif", "bmp",
	// "tiff", "webp" or "unknown".
	Format string `json:"format"`

	// Background is the "#RRGGBB" color of the top-left pixel.
	Background string `json:"background"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image through the cache and describes it.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	grid, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return &ImageInfo{
		Width:         grid.Width(),
		Height:        grid.Height(),
		Format:        formatFromExt(path),
		Background:    grid.Background().Hex(),
		FileSizeBytes: stat.Size(),
	}, nil
}

func formatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	case ".webp":
		return "webp"
	}
	return "unknown"
}
