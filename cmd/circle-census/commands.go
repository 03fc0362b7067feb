package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/ironsheep/circle-census/internal/analysis"
	"github.com/ironsheep/circle-census/internal/imaging"
	"github.com/ironsheep/circle-census/internal/server"
)

// CountCmd prints the red and black circle counts for one image.
type CountCmd struct {
	ImagePath string `arg:"" name:"image_path" help:"Path to the image (PNG, JPEG, GIF, BMP, TIFF or WebP)."`
	ByCircles bool   `name:"by_circles" help:"Select shapes with the circle test instead of excluding rectangles." default:"${by_circles}"`
	Format    string `help:"Output format: text prints the summary line, json the counts and mode." enum:"text,json" default:"text"`
	Annotate  string `help:"Also write a PNG with every shape outlined and labelled to this path." type:"path"`
}

type countOutput struct {
	Red     int    `json:"red"`
	Black   int    `json:"black"`
	Mode    string `json:"mode"`
	Summary string `json:"summary"`
}

func (c *CountCmd) Run(out io.Writer) error {
	logger := slog.Default().With("file", c.ImagePath)

	grid, err := imaging.LoadGrid(c.ImagePath)
	if err != nil {
		return err
	}
	logger.Debug("decoded", "width", grid.Width(), "height", grid.Height(), "background", grid.Background().Hex())

	mode := analysis.ModeFor(c.ByCircles)
	summary, err := analysis.Analyze(grid, mode)
	if err != nil {
		return err
	}
	logger.Info("analyzed", "mode", string(mode), "red", summary.Red, "black", summary.Black)

	if c.Annotate != "" {
		if err := writeAnnotation(grid, mode, c.Annotate); err != nil {
			return err
		}
		logger.Info("annotation written", "path", c.Annotate)
	}

	if c.Format == "json" {
		return writeJSON(out, countOutput{
			Red:     summary.Red,
			Black:   summary.Black,
			Mode:    string(mode),
			Summary: summary.String(),
		})
	}
	_, err = fmt.Fprintln(out, summary)
	return err
}

// ComponentsCmd prints the per-component classification report.
type ComponentsCmd struct {
	ImagePath string `arg:"" name:"image_path" help:"Path to the image."`
	Format    string `help:"Output format: text or json." enum:"text,json" default:"text"`
}

func (c *ComponentsCmd) Run(out io.Writer) error {
	grid, err := imaging.LoadGrid(c.ImagePath)
	if err != nil {
		return err
	}
	report := analysis.Inspect(grid)
	slog.Info("inspected", "file", c.ImagePath, "components", report.Count)

	if c.Format == "json" {
		return writeJSON(out, report)
	}
	return writeReportTable(out, report)
}

// ServeCmd runs the MCP server.
type ServeCmd struct{}

func (c *ServeCmd) Run(out io.Writer) error {
	slog.Info("serving MCP on stdio", "version", Version)
	return server.New(Version).Run(os.Stdin, out)
}

func writeAnnotation(grid *imaging.PixelGrid, mode analysis.Mode, path string) error {
	marks, err := analysis.Inspect(grid).Marks(mode)
	if err != nil {
		return err
	}
	return imaging.SavePNG(path, imaging.Annotate(grid.Image(), marks))
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("could not encode output: %w", err)
	}
	return nil
}

func writeReportTable(out io.Writer, r *analysis.Report) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "image %dx%d, background %s, %d component(s)\n", r.Width, r.Height, r.Background, r.Count)
	fmt.Fprintln(tw, "ID\tSIZE\tBOUNDS\tCENTROID\tRECT\tCIRCLE\tRADIUS\tOVERLAP\tSHAPE\tCOLOR")
	for _, c := range r.Components {
		fmt.Fprintf(tw, "%d\t%d\t%d,%d-%d,%d\t%d,%d\t%t\t%t\t%d\t%.3f\t%s\t%s %s\n",
			c.ID, c.Size,
			c.Bounds.X1, c.Bounds.Y1, c.Bounds.X2, c.Bounds.Y2,
			c.Centroid.Row, c.Centroid.Col,
			c.Rectangle, c.Circle, c.Radius, c.Overlap,
			c.Shape, c.Color, c.ColorHex)
	}
	return tw.Flush()
}
