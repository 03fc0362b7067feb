package main

import (
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/ironsheep/circle-census/internal/analysis"
	"github.com/ironsheep/circle-census/internal/config"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// CLI is the command tree. Count is the default command, so the tool can be
// called as `circle-census image.png [--by_circles]`.
type CLI struct {
	LogLevel  string           `help:"Log level: debug, info, warn or error." default:"${log_level}" enum:"debug,info,warn,error"`
	LogFormat string           `help:"Log format: text or json." default:"${log_format}" enum:"text,json"`
	Version   kong.VersionFlag `help:"Print version information and exit."`

	Count      CountCmd      `cmd:"" default:"withargs" help:"Count red and black circles in an image."`
	Components ComponentsCmd `cmd:"" help:"List every shape found in an image."`
	Serve      ServeCmd      `cmd:"" help:"Run the MCP server on stdin/stdout."`
}

// newParser builds the kong parser with defaults taken from cfg.
func newParser(cli *CLI, cfg *config.Config, options ...kong.Option) (*kong.Kong, error) {
	mode, err := analysis.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}

	options = append([]kong.Option{
		kong.Name("circle-census"),
		kong.Description("Count red and black circles on a uniform background."),
		kong.UsageOnError(),
		kong.Vars{
			"version":    Version + " (built " + BuildTime + ", commit " + GitCommit + ")",
			"log_level":  cfg.LogLevel,
			"log_format": cfg.LogFormat,
			"by_circles": strconv.FormatBool(mode == analysis.ModeByCircles),
		},
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	cfg := config.Load()

	var cli CLI
	parser, err := newParser(&cli, cfg, kong.BindTo(os.Stdout, (*io.Writer)(nil)))
	if err != nil {
		// Logging is not configured yet; use the default handler.
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	// stdout carries results (and the MCP protocol), so logs go to stderr.
	logger, err := config.NewLogger(os.Stderr, cli.LogLevel, cli.LogFormat)
	ctx.FatalIfErrorf(err)
	slog.SetDefault(logger)

	slog.Debug("starting", "version", Version, "command", ctx.Command())

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}
