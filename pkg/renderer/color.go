package renderer

import (
	"math"

	"github.com/user/videoout/pkg/media"
	"github.com/user/videoout/pkg/ports"
)

// Brightness returns the last brightness accepted by the backend.
func (r *Renderer) Brightness() float64 { return r.adjust.Brightness }

// Contrast returns the last contrast accepted by the backend.
func (r *Renderer) Contrast() float64 { return r.adjust.Contrast }

// Hue returns the last hue accepted by the backend.
func (r *Renderer) Hue() float64 { return r.adjust.Hue }

// Saturation returns the last saturation accepted by the backend.
func (r *Renderer) Saturation() float64 { return r.adjust.Saturation }

// ColorAdjustments returns all four values.
func (r *Renderer) ColorAdjustments() media.ColorAdjustments {
	return r.adjust
}

// SetBrightness clamps value to [-1, 1] and offers it to the backend. The
// value is stored and true returned only if the backend applied it.
func (r *Renderer) SetBrightness(value float64) bool {
	return r.setAdjustment("brightness", &r.adjust.Brightness, value, func(v float64) bool {
		a, ok := r.backend.(ports.BrightnessAdjuster)
		return ok && a.OnChangingBrightness(v)
	})
}

// SetContrast clamps value to [-1, 1] and offers it to the backend.
func (r *Renderer) SetContrast(value float64) bool {
	return r.setAdjustment("contrast", &r.adjust.Contrast, value, func(v float64) bool {
		a, ok := r.backend.(ports.ContrastAdjuster)
		return ok && a.OnChangingContrast(v)
	})
}

// SetHue clamps value to [-1, 1] and offers it to the backend.
func (r *Renderer) SetHue(value float64) bool {
	return r.setAdjustment("hue", &r.adjust.Hue, value, func(v float64) bool {
		a, ok := r.backend.(ports.HueAdjuster)
		return ok && a.OnChangingHue(v)
	})
}

// SetSaturation clamps value to [-1, 1] and offers it to the backend.
func (r *Renderer) SetSaturation(value float64) bool {
	return r.setAdjustment("saturation", &r.adjust.Saturation, value, func(v float64) bool {
		a, ok := r.backend.(ports.SaturationAdjuster)
		return ok && a.OnChangingSaturation(v)
	})
}

func (r *Renderer) setAdjustment(name string, field *float64, value float64, hook func(float64) bool) bool {
	if math.IsNaN(value) {
		r.log.Debug("Rejected %s: not a number", name)
		return false
	}
	value = math.Max(-1, math.Min(1, value))
	if !hook(value) {
		r.log.Debug("Backend did not apply %s %.3f", name, value)
		return false
	}
	*field = value
	return true
}
