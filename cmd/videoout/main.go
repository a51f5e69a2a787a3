// Package main provides the CLI entry point for videoout.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/videoout/pkg/adapters/filesink"
	"github.com/user/videoout/pkg/adapters/ggbackend"
	"github.com/user/videoout/pkg/adapters/imagesource"
	"github.com/user/videoout/pkg/adapters/logger"
	"github.com/user/videoout/pkg/adapters/mp4probe"
	"github.com/user/videoout/pkg/adapters/nullbackend"
	"github.com/user/videoout/pkg/adapters/nullsink"
	"github.com/user/videoout/pkg/adapters/osfilesystem"
	"github.com/user/videoout/pkg/adapters/textfilter"
	"github.com/user/videoout/pkg/config"
	"github.com/user/videoout/pkg/geometry"
	"github.com/user/videoout/pkg/media"
	"github.com/user/videoout/pkg/pipeline"
	"github.com/user/videoout/pkg/ports"
	"github.com/user/videoout/pkg/renderer"
	"github.com/user/videoout/pkg/stages/present"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Render   RenderCmd   `cmd:"" help:"Present image files on a backend and save the painted surfaces."`
	Probe    ProbeCmd    `cmd:"" help:"Show the video track of an MP4 file and where it would be drawn."`
	Backends BackendsCmd `cmd:"" help:"List the registered backends."`
	Version  VersionCmd  `cmd:"" help:"Show version information."`
}

// RenderCmd defines the render subcommand. Flags override the config file.
type RenderCmd struct {
	Inputs []string `arg:"" help:"Image files, presented in order."`
	Output *string  `short:"o" help:"Directory for snapshots (default: ./out)."`
	Config string   `short:"c" type:"existingfile" help:"YAML configuration file."`

	// Renderer
	Backend     *string `short:"b" help:"Backend name (see 'videoout backends')."`
	Width       *int    `short:"W" help:"Renderer width."`
	Height      *int    `short:"H" help:"Renderer height."`
	Format      *string `help:"Preferred pixel format (rgb32, rgba, bgra, ...)."`
	ForceFormat bool    `help:"Convert every frame to the preferred format."`
	Quality     *string `help:"Scaling quality: default, best or fastest."`
	Background  *string `help:"Background color (hex, e.g. #000000)."`

	// Geometry
	Mode  *string   `short:"m" help:"Aspect ratio mode: renderer, video or custom (default: custom with --ratio, else video)."`
	Ratio *float64  `short:"r" help:"Custom aspect ratio (width/height)."`
	ROI   []float64 `help:"Region of interest x,y,w,h (absolute pixels or 0..1 fractions)."`

	// Color
	Brightness *float64 `help:"Brightness in [-1, 1]."`
	Contrast   *float64 `help:"Contrast in [-1, 1]."`
	Hue        *float64 `help:"Hue in [-1, 1]."`
	Saturation *float64 `help:"Saturation in [-1, 1]."`

	// Filters
	OSD      bool    `help:"Show timestamp, frame index and format."`
	OSDLabel *string `help:"Label prefixed to the OSD line."`
	Subtitle *string `help:"Subtitle text."`
	Font     *string `help:"TrueType font for OSD and subtitles."`

	// Output
	SnapshotFormat *string  `help:"Snapshot image format: png or jpeg."`
	FPS            *float64 `help:"Frame rate used for timestamps."`

	// Logging options
	LogLevel  string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	LogFormat string `default:"console" enum:"console,text,json" help:"Log format (console, text, json)."`
	Quiet     bool   `short:"Q" help:"Suppress all log output."`
}

// ProbeCmd defines the probe subcommand.
type ProbeCmd struct {
	File   string  `arg:"" type:"existingfile" help:"MP4 file."`
	Width  int     `short:"W" default:"1280" help:"Renderer width."`
	Height int     `short:"H" default:"720" help:"Renderer height."`
	Mode   string  `short:"m" help:"Aspect ratio mode: renderer, video or custom (default: custom with --ratio, else video)."`
	Ratio  float64 `short:"r" help:"Custom aspect ratio (width/height)."`
}

// BackendsCmd lists the registered backends.
type BackendsCmd struct{}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("videoout"),
		kong.Description("Present decoded frames on a video output backend."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the render command.
func (cmd *RenderCmd) Run() error {
	cfg, err := cmd.buildConfig()
	if err != nil {
		return err
	}

	log := newLogger(cfg.Logging, cmd.Quiet)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Interrupted, shutting down...")
		cancel()
	}()

	fs := osfilesystem.New()
	source := imagesource.New(fs, cfg.Output.FPS, log)
	frames, err := source.Frames(ctx, cmd.Inputs)
	if err != nil {
		return fmt.Errorf("read frames: %w", err)
	}

	r, err := renderer.Create(cfg.Renderer.Backend, log)
	if err != nil {
		return err
	}
	if gb, ok := r.Backend().(*ggbackend.Backend); ok {
		bg, _ := config.ParseColor(cfg.Renderer.Background)
		gb.SetBackground(bg)
	}
	installFilters(r, cfg.Filters)

	sink, err := newSink(cfg.Output, fs)
	if err != nil {
		return err
	}

	stage := present.NewStage(sink, log)
	result, err := stage.Execute(ctx, pipeline.PresentInput{
		Renderer: r,
		Size:     media.Size{Width: cfg.Renderer.Width, Height: cfg.Renderer.Height},
		Settings: cfg,
		Frames:   frames,
	})
	if err != nil {
		return err
	}

	fmt.Println(l10n.F("Presented %d frames (%d rejected), video rect %s, format %s",
		result.Presented, result.Rejected, result.VideoRect, result.Format))
	if result.Snapshots > 0 {
		fmt.Println(l10n.F("Saved %d snapshots to %s", result.Snapshots, cfg.Output.Dir))
	}
	return nil
}

// buildConfig loads the config file and applies flag overrides.
func (cmd *RenderCmd) buildConfig() (config.Config, error) {
	cfg := config.Defaults()
	if cmd.Config != "" {
		loaded, err := config.LoadFromFile(cmd.Config)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	setString(&cfg.Output.Dir, cmd.Output)
	setString(&cfg.Renderer.Backend, cmd.Backend)
	setInt(&cfg.Renderer.Width, cmd.Width)
	setInt(&cfg.Renderer.Height, cmd.Height)
	setString(&cfg.Renderer.PixelFormat, cmd.Format)
	if cmd.ForceFormat {
		cfg.Renderer.ForceFormat = true
	}
	setString(&cfg.Renderer.Quality, cmd.Quality)
	setString(&cfg.Renderer.Background, cmd.Background)

	setString(&cfg.Geometry.Mode, cmd.Mode)
	setFloat(&cfg.Geometry.Ratio, cmd.Ratio)
	if cmd.Ratio != nil && cmd.Mode == nil {
		cfg.Geometry.Mode = "custom"
	}
	if len(cmd.ROI) > 0 {
		cfg.Geometry.ROI = cmd.ROI
	}

	setFloat(&cfg.Color.Brightness, cmd.Brightness)
	setFloat(&cfg.Color.Contrast, cmd.Contrast)
	setFloat(&cfg.Color.Hue, cmd.Hue)
	setFloat(&cfg.Color.Saturation, cmd.Saturation)

	if cmd.OSD {
		cfg.Filters.OSD = true
	}
	setString(&cfg.Filters.OSDLabel, cmd.OSDLabel)
	setString(&cfg.Filters.Subtitle, cmd.Subtitle)
	setString(&cfg.Filters.FontPath, cmd.Font)

	setString(&cfg.Output.Format, cmd.SnapshotFormat)
	setFloat(&cfg.Output.FPS, cmd.FPS)

	if cmd.Config == "" || cmd.LogLevel != "info" {
		cfg.Logging.Level = cmd.LogLevel
	}
	if cmd.Config == "" || cmd.LogFormat != "console" {
		cfg.Logging.Format = cmd.LogFormat
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func newLogger(cfg config.LoggingConfig, quiet bool) ports.Logger {
	if quiet {
		return logger.NewNoop()
	}
	level := cfg.LogLevel()
	switch cfg.Format {
	case "json":
		return logger.NewStructured(level, os.Stderr, true)
	case "text":
		return logger.NewStructured(level, os.Stderr, false)
	default:
		return logger.NewConsole(level)
	}
}

func newSink(cfg config.OutputConfig, fs ports.FileSystem) (ports.SnapshotSink, error) {
	if cfg.Dir == "" {
		return nullsink.New(), nil
	}
	format, err := filesink.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	return filesink.New(cfg.Dir, fs, format, cfg.Quality), nil
}

func installFilters(r *renderer.Renderer, cfg config.FiltersConfig) {
	style := textfilter.DefaultStyle()
	style.FontPath = cfg.FontPath
	if cfg.FontSize > 0 {
		style.FontSize = cfg.FontSize
	}
	if c, err := config.ParseColor(cfg.TextColor); err == nil && cfg.TextColor != "" {
		style.Color = c
	}

	if cfg.OSD {
		r.SetOSDFilter(textfilter.NewOSD(cfg.OSDLabel, style))
	}
	if cfg.Subtitle != "" {
		r.SetSubtitleFilter(textfilter.NewSubtitle(cfg.Subtitle, style))
	}
}

// Run executes the probe command.
func (cmd *ProbeCmd) Run() error {
	info, err := mp4probe.ProbeFile(osfilesystem.New(), cmd.File)
	if err != nil {
		return err
	}

	geo := config.GeometryConfig{Mode: cmd.Mode, Ratio: cmd.Ratio}
	mode, ok := geo.AspectRatioMode()
	if !ok {
		return fmt.Errorf("unknown aspect ratio mode %q", cmd.Mode)
	}

	r := renderer.New(nullbackend.New(), nil)
	r.ResizeRenderer(cmd.Width, cmd.Height)
	if cmd.Ratio != 0 && !r.SetOutAspectRatio(cmd.Ratio) {
		return fmt.Errorf("invalid aspect ratio %v", cmd.Ratio)
	}
	if mode != geometry.CustomAspectRatio || cmd.Ratio == 0 {
		r.SetOutAspectRatioMode(mode)
	}
	r.Open()
	r.Receive(media.Frame{Format: media.FormatYUV420P, Width: info.Size.Width, Height: info.Size.Height})
	r.Close()

	fmt.Println(l10n.F("Codec: %s (%s)", info.Codec, info.SampleEntry))
	fmt.Println(l10n.F("Frame size: %s", info.Size))
	if info.Duration > 0 {
		fmt.Println(l10n.F("Duration: %s", info.Duration))
	}
	fmt.Println(l10n.F("Video rect in %dx%d (%s): %s", cmd.Width, cmd.Height, r.OutAspectRatioMode(), r.VideoRect()))
	return nil
}

// Run executes the backends command.
func (cmd *BackendsCmd) Run() error {
	for _, name := range renderer.Names() {
		fmt.Println(name)
	}
	return nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("videoout version %s", version))
	return nil
}
