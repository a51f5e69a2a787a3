// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/user/videoout/pkg/geometry"
	"github.com/user/videoout/pkg/media"
	"github.com/user/videoout/pkg/ports"
)

// Config represents the full configuration for videoout.
type Config struct {
	Renderer RendererConfig `yaml:"renderer"`
	Geometry GeometryConfig `yaml:"geometry"`
	Color    ColorConfig    `yaml:"color"`
	Filters  FiltersConfig  `yaml:"filters"`
	Logging  LoggingConfig  `yaml:"logging"`
	Output   OutputConfig   `yaml:"output"`
}

// RendererConfig selects the backend and its surface.
type RendererConfig struct {
	Backend            string `yaml:"backend"`
	Width              int    `yaml:"width"`
	Height             int    `yaml:"height"`
	PixelFormat        string `yaml:"pixel_format"` // empty keeps the backend default
	ForceFormat        bool   `yaml:"force_format"`
	Quality            string `yaml:"quality"`
	ScaleInRenderer    bool   `yaml:"scale_in_renderer"`
	DefaultEventFilter bool   `yaml:"default_event_filter"`
	Background         string `yaml:"background"`
}

// GeometryConfig holds the aspect ratio policy and the region of interest.
type GeometryConfig struct {
	Mode  string    `yaml:"mode"` // empty: custom when ratio is set, video otherwise
	Ratio float64   `yaml:"ratio"`
	ROI   []float64 `yaml:"roi"` // x, y, width, height; empty for the whole frame
}

// ColorConfig holds the requested color adjustments, each in [-1, 1].
type ColorConfig struct {
	Brightness float64 `yaml:"brightness"`
	Contrast   float64 `yaml:"contrast"`
	Hue        float64 `yaml:"hue"`
	Saturation float64 `yaml:"saturation"`
}

// FiltersConfig configures the text filters.
type FiltersConfig struct {
	OSD       bool    `yaml:"osd"`
	OSDLabel  string  `yaml:"osd_label"`
	Subtitle  string  `yaml:"subtitle"`
	FontPath  string  `yaml:"font_path"`
	FontSize  float64 `yaml:"font_size"`
	TextColor string  `yaml:"text_color"`
}

// LoggingConfig selects the logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console, text or json
}

// OutputConfig controls where snapshots go.
type OutputConfig struct {
	Dir     string  `yaml:"dir"`
	Format  string  `yaml:"format"`
	Quality int     `yaml:"quality"`
	FPS     float64 `yaml:"fps"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Renderer: RendererConfig{
			Backend:            "gg",
			Width:              1280,
			Height:             720,
			Quality:            "default",
			ScaleInRenderer:    true,
			DefaultEventFilter: true,
			Background:         "#000000",
		},
		Filters: FiltersConfig{
			FontSize:  16,
			TextColor: "#ffffff",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Output: OutputConfig{
			Dir:     "./out",
			Format:  "png",
			Quality: 90,
			FPS:     25,
		},
	}
}

// LoadFromFile loads configuration from a YAML file on top of Defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values that must parse. Values the renderer may
// still reject at runtime are left to ApplyTo.
func (c Config) Validate() error {
	var errs []error
	if c.Renderer.Width < 0 || c.Renderer.Height < 0 {
		errs = append(errs, fmt.Errorf("renderer size %dx%d is negative", c.Renderer.Width, c.Renderer.Height))
	}
	if c.Renderer.PixelFormat != "" && !media.ParsePixelFormat(c.Renderer.PixelFormat).IsValid() {
		errs = append(errs, fmt.Errorf("unknown pixel format %q", c.Renderer.PixelFormat))
	}
	switch c.Renderer.Quality {
	case "", "default", "best", "fastest":
	default:
		errs = append(errs, fmt.Errorf("unknown quality %q", c.Renderer.Quality))
	}
	if _, ok := c.Geometry.AspectRatioMode(); !ok {
		errs = append(errs, fmt.Errorf("unknown aspect ratio mode %q", c.Geometry.Mode))
	}
	if n := len(c.Geometry.ROI); n != 0 && n != 4 {
		errs = append(errs, fmt.Errorf("roi needs 4 values, got %d", n))
	}
	if _, err := ParseColor(c.Renderer.Background); err != nil {
		errs = append(errs, fmt.Errorf("background: %w", err))
	}
	if _, err := ParseColor(c.Filters.TextColor); err != nil {
		errs = append(errs, fmt.Errorf("text_color: %w", err))
	}
	switch c.Logging.Format {
	case "", "console", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Logging.Format))
	}
	return errors.Join(errs...)
}

// AspectRatioMode resolves the configured mode. An empty mode follows the
// ratio: custom when one is set, video otherwise.
func (g GeometryConfig) AspectRatioMode() (geometry.AspectRatioMode, bool) {
	if strings.TrimSpace(g.Mode) == "" {
		if g.Ratio > 0 {
			return geometry.CustomAspectRatio, true
		}
		return geometry.VideoAspectRatio, true
	}
	return geometry.ParseAspectRatioMode(g.Mode)
}

// RegionOfInterest returns the configured region of interest, zero for the whole frame.
func (g GeometryConfig) RegionOfInterest() media.RectF {
	if len(g.ROI) != 4 {
		return media.RectF{}
	}
	return media.RectF{X: g.ROI[0], Y: g.ROI[1], Width: g.ROI[2], Height: g.ROI[3]}
}

// LogLevel returns the parsed log level.
func (l LoggingConfig) LogLevel() ports.LogLevel {
	return ports.ParseLogLevel(l.Level)
}

// ParseColor parses #rgb, #rrggbb or #rrggbbaa. Empty means opaque black.
func ParseColor(hex string) (color.Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if s == "" {
		return color.Black, nil
	}
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return color.Black, fmt.Errorf("invalid color %q", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.Black, fmt.Errorf("invalid color %q", hex)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
