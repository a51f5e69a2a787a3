package ports

import (
	"github.com/user/videoout/pkg/media"
)

// Backend is the part of a rendering surface every implementation must provide.
type Backend interface {
	// IsSupported reports whether frames of the given format can be consumed
	// without conversion by the caller.
	IsSupported(format media.PixelFormat) bool

	// ReceiveFrame takes the current frame. Any upload or conversion happens here.
	// Returning false rejects the frame.
	ReceiveFrame(frame media.Frame) bool

	// DrawFrame draws the held frame, already adjusted, onto the surface.
	DrawFrame()
}

// The interfaces below are optional. A backend implements only the ones it
// supports; the renderer falls back to the defaults documented on NopHooks.

// FrameResizer is notified when the output rectangle changes size so that
// size-dependent resources can be rebuilt.
type FrameResizer interface {
	ResizeFrame(width, height int)
}

// BrightnessAdjuster applies a brightness change. Returning false keeps the old value.
type BrightnessAdjuster interface {
	OnChangingBrightness(value float64) bool
}

// ContrastAdjuster applies a contrast change. Returning false keeps the old value.
type ContrastAdjuster interface {
	OnChangingContrast(value float64) bool
}

// HueAdjuster applies a hue change. Returning false keeps the old value.
type HueAdjuster interface {
	OnChangingHue(value float64) bool
}

// SaturationAdjuster applies a saturation change. Returning false keeps the old value.
type SaturationAdjuster interface {
	OnChangingSaturation(value float64) bool
}

// BackgroundPainter paints the area outside the video rectangle.
type BackgroundPainter interface {
	NeedUpdateBackground() bool
	DrawBackground()
}

// FrameDrawGate decides whether DrawFrame runs during a paint.
type FrameDrawGate interface {
	NeedDrawFrame() bool
}

// PaintHandler replaces the renderer's default paint sequence.
type PaintHandler interface {
	HandlePaintEvent()
}

// Opener acquires and releases the surface.
type Opener interface {
	Open() bool
	Close() bool
}

// DefaultFormatProvider names the format used before the caller sets a preference.
type DefaultFormatProvider interface {
	DefaultPixelFormat() media.PixelFormat
}

// Attacher receives a read-only view of the renderer that drives the backend.
type Attacher interface {
	Attach(view RendererView)
}

// Snapshotter exposes the most recently painted surface.
type Snapshotter interface {
	Snapshot() (media.Frame, bool)
}

// Quality is a drawing hint. The renderer stores it and backends interpret it.
type Quality int

const (
	QualityDefault Quality = iota
	QualityBest
	QualityFastest
)

// String returns the quality name.
func (q Quality) String() string {
	switch q {
	case QualityDefault:
		return "default"
	case QualityBest:
		return "best"
	case QualityFastest:
		return "fastest"
	default:
		return "unknown"
	}
}

// ParseQuality parses a quality name, defaulting to QualityDefault.
func ParseQuality(s string) Quality {
	switch s {
	case "best":
		return QualityBest
	case "fastest":
		return QualityFastest
	default:
		return QualityDefault
	}
}

// RendererView is what a backend may read from its renderer while drawing.
type RendererView interface {
	RendererSize() media.Size
	FrameSize() media.Size
	VideoRect() media.Rect
	RealROI() media.Rect
	NegotiatedPixelFormat() media.PixelFormat
	ColorAdjustments() media.ColorAdjustments
	Quality() Quality
	ScaleInRenderer() bool
	OSDFilter() OSDFilter
	SubtitleFilter() Filter
}

// NopHooks implements the optional hooks with their default behavior:
// adjustments are refused, nothing is resized, the background is never
// repainted and opening always succeeds. FrameDrawGate is left out so the
// renderer draws only once a frame has been received.
// Backends embed it and override what they support.
type NopHooks struct{}

func (NopHooks) ResizeFrame(width, height int)           {}
func (NopHooks) OnChangingBrightness(value float64) bool { return false }
func (NopHooks) OnChangingContrast(value float64) bool   { return false }
func (NopHooks) OnChangingHue(value float64) bool        { return false }
func (NopHooks) OnChangingSaturation(value float64) bool { return false }
func (NopHooks) NeedUpdateBackground() bool              { return false }
func (NopHooks) DrawBackground()                         {}
func (NopHooks) Open() bool                              { return true }
func (NopHooks) Close() bool                             { return true }
func (NopHooks) DefaultPixelFormat() media.PixelFormat   { return media.FormatRGB32 }
