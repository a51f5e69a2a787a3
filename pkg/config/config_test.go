package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/videoout/pkg/adapters/logger"
	"github.com/user/videoout/pkg/geometry"
	"github.com/user/videoout/pkg/media"
	"github.com/user/videoout/pkg/mocks"
	"github.com/user/videoout/pkg/ports"
	"github.com/user/videoout/pkg/renderer"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "videoout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults_Valid(t *testing.T) {
	assert.NoError(t, Defaults().Validate())
}

func TestLoadFromFile_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
renderer:
  width: 800
  height: 600
  quality: best
geometry:
  mode: custom
  ratio: 2.35
  roi: [0, 0.1, 1, 0.8]
color:
  brightness: 0.2
logging:
  level: debug
  format: json
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Renderer.Width)
	assert.Equal(t, "gg", cfg.Renderer.Backend, "unset keys keep defaults")
	assert.Equal(t, "best", cfg.Renderer.Quality)
	assert.Equal(t, "custom", cfg.Geometry.Mode)
	assert.Equal(t, media.RectF{X: 0, Y: 0.1, Width: 1, Height: 0.8}, cfg.Geometry.RegionOfInterest())
	assert.Equal(t, 0.2, cfg.Color.Brightness)
	assert.Equal(t, ports.LevelDebug, cfg.Logging.LogLevel())
	assert.Equal(t, 25.0, cfg.Output.FPS)
}

func TestLoadFromFile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"mode", "geometry:\n  mode: diagonal\n", "aspect ratio mode"},
		{"roi", "geometry:\n  roi: [1, 2]\n", "roi needs 4 values"},
		{"format", "renderer:\n  pixel_format: cmyk\n", "pixel format"},
		{"quality", "renderer:\n  quality: ultra\n", "unknown quality"},
		{"color", "renderer:\n  background: '#zzz'\n", "background"},
		{"log format", "logging:\n  format: xml\n", "log format"},
		{"yaml", "renderer: [", "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input    string
		expected color.Color
		wantErr  bool
	}{
		{"", color.Black, false},
		{"#ff8000", color.NRGBA{R: 255, G: 128, A: 255}, false},
		{"00ff00", color.NRGBA{G: 255, A: 255}, false},
		{"#fff", color.NRGBA{R: 255, G: 255, B: 255, A: 255}, false},
		{"#11223344", color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}, false},
		{"#12345", color.Black, true},
		{"#gg0000", color.Black, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestApplyTo(t *testing.T) {
	b := &mocks.HookedBackend{
		OnChangingBrightnessFunc: func(float64) bool { return true },
	}
	r := renderer.New(b, nil)

	cfg := Defaults()
	cfg.Renderer.PixelFormat = "bgra"
	cfg.Renderer.ForceFormat = true
	cfg.Renderer.Quality = "fastest"
	cfg.Renderer.ScaleInRenderer = false
	cfg.Geometry.Mode = "custom"
	cfg.Geometry.Ratio = 1.5
	cfg.Geometry.ROI = []float64{0.25, 0.25, 0.5, 0.5}
	cfg.Color.Brightness = 0.3
	cfg.Color.Contrast = 0.1

	rejected := cfg.ApplyTo(r, nil)

	assert.Equal(t, []string{"color.contrast"}, rejected)
	assert.Equal(t, media.FormatBGRA, r.PreferredPixelFormat())
	assert.True(t, r.IsPreferredPixelFormatForced())
	assert.Equal(t, ports.QualityFastest, r.Quality())
	assert.False(t, r.ScaleInRenderer())
	assert.Equal(t, geometry.CustomAspectRatio, r.OutAspectRatioMode())
	assert.Equal(t, 1.5, r.OutAspectRatio())
	assert.Equal(t, media.RectF{X: 0.25, Y: 0.25, Width: 0.5, Height: 0.5}, r.RegionOfInterest())
	assert.Equal(t, 0.3, r.Brightness())
	assert.Equal(t, 0.0, r.Contrast())
}

func TestApplyTo_RatioAloneSelectsCustomMode(t *testing.T) {
	r := renderer.New(&mocks.Backend{}, nil)
	cfg := Defaults()
	cfg.Geometry.Ratio = 2.35

	assert.Empty(t, cfg.ApplyTo(r, nil))
	assert.Equal(t, geometry.CustomAspectRatio, r.OutAspectRatioMode())
	assert.Equal(t, 2.35, r.OutAspectRatio())
}

func TestApplyTo_ExplicitModeWinsOverRatio(t *testing.T) {
	r := renderer.New(&mocks.Backend{}, nil)
	cfg := Defaults()
	cfg.Geometry.Mode = "video"
	cfg.Geometry.Ratio = 4.0 / 3.0

	assert.Empty(t, cfg.ApplyTo(r, nil))
	assert.Equal(t, geometry.VideoAspectRatio, r.OutAspectRatioMode())
	assert.InDelta(t, 4.0/3.0, r.OutAspectRatio(), 1e-12)
}

func TestGeometryConfig_AspectRatioMode(t *testing.T) {
	tests := []struct {
		name   string
		config GeometryConfig
		want   geometry.AspectRatioMode
		ok     bool
	}{
		{"empty", GeometryConfig{}, geometry.VideoAspectRatio, true},
		{"ratio only", GeometryConfig{Ratio: 1.85}, geometry.CustomAspectRatio, true},
		{"invalid ratio only", GeometryConfig{Ratio: -1}, geometry.VideoAspectRatio, true},
		{"explicit", GeometryConfig{Mode: "renderer", Ratio: 1.85}, geometry.RendererAspectRatio, true},
		{"unknown", GeometryConfig{Mode: "diagonal"}, geometry.RendererAspectRatio, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.config.AspectRatioMode()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyTo_Rejections(t *testing.T) {
	r := renderer.New(&mocks.Backend{}, nil)
	cfg := Defaults()
	cfg.Renderer.PixelFormat = "nv12"
	cfg.Geometry.Ratio = -1
	cfg.Geometry.Mode = "diagonal"
	cfg.Color.Hue = 0.5

	rejected := cfg.ApplyTo(r, nil)

	assert.Equal(t, []string{"renderer.pixel_format", "geometry.ratio", "geometry.mode", "color.hue"}, rejected)
	assert.Equal(t, media.FormatRGB32, r.PreferredPixelFormat())
	assert.Equal(t, geometry.RendererAspectRatio, r.OutAspectRatioMode())
}

func TestApplyTo_LogsRejections(t *testing.T) {
	var sb strings.Builder
	log := logger.NewConsoleWriter(ports.LevelDebug, &sb)
	r := renderer.New(&mocks.Backend{}, nil)
	cfg := Defaults()
	cfg.Color.Saturation = -0.5

	cfg.ApplyTo(r, log)

	assert.Contains(t, sb.String(), "color.saturation")
}
