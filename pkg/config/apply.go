package config

import (
	"github.com/user/videoout/pkg/adapters/logger"
	"github.com/user/videoout/pkg/media"
	"github.com/user/videoout/pkg/ports"
	"github.com/user/videoout/pkg/renderer"
)

// ApplyTo pushes the renderer, geometry and color settings into r and
// returns the names of the settings r rejected. Rejected settings leave
// the renderer's previous value in place.
func (c Config) ApplyTo(r *renderer.Renderer, log ports.Logger) []string {
	if log == nil {
		log = logger.NewNoop()
	}
	var rejected []string
	reject := func(name string) {
		log.Warn("Setting rejected: %s", name)
		rejected = append(rejected, name)
	}

	rc := c.Renderer
	if rc.PixelFormat != "" {
		if !r.SetPreferredPixelFormat(media.ParsePixelFormat(rc.PixelFormat)) {
			reject("renderer.pixel_format")
		}
	}
	r.ForcePreferredPixelFormat(rc.ForceFormat)
	r.SetQuality(ports.ParseQuality(rc.Quality))
	r.SetScaleInRenderer(rc.ScaleInRenderer)
	r.EnableDefaultEventFilter(rc.DefaultEventFilter)

	gc := c.Geometry
	if gc.Ratio != 0 && !r.SetOutAspectRatio(gc.Ratio) {
		reject("geometry.ratio")
	}
	if mode, ok := gc.AspectRatioMode(); ok {
		r.SetOutAspectRatioMode(mode)
	} else {
		reject("geometry.mode")
	}
	if roi := gc.RegionOfInterest(); !roi.IsZero() && !r.SetRegionOfInterest(roi) {
		reject("geometry.roi")
	}

	cc := c.Color
	adjustments := []struct {
		name    string
		value   float64
		current float64
		set     func(float64) bool
	}{
		{"color.brightness", cc.Brightness, r.Brightness(), r.SetBrightness},
		{"color.contrast", cc.Contrast, r.Contrast(), r.SetContrast},
		{"color.hue", cc.Hue, r.Hue(), r.SetHue},
		{"color.saturation", cc.Saturation, r.Saturation(), r.SetSaturation},
	}
	for _, a := range adjustments {
		if a.value == a.current {
			continue
		}
		if !a.set(a.value) {
			reject(a.name)
		}
	}

	return rejected
}
