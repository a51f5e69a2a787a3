// Package ggbackend provides an offscreen backend drawing onto a gg context.
package ggbackend

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/user/videoout/pkg/adapters/logger"
	"github.com/user/videoout/pkg/media"
	"github.com/user/videoout/pkg/ports"
	"github.com/user/videoout/pkg/renderer"
)

// ID is the registry id of the gg backend.
const ID renderer.ID = 1

// Name is the registry name of the gg backend.
const Name = "gg"

func init() {
	renderer.MustRegister(ID, Name, func(log ports.Logger) ports.Backend {
		return New(log, Options{})
	})
}

// Options configures a Backend.
type Options struct {
	// Background fills the renderer area outside the video rectangle.
	// Defaults to opaque black.
	Background color.Color
}

// Backend renders frames onto an in-memory RGBA surface.
type Backend struct {
	log        ports.Logger
	view       ports.RendererView
	background color.Color

	dc       *gg.Context
	frame    *image.RGBA
	adjusted *image.RGBA
	adjust   media.ColorAdjustments
	stale    bool
	clear    bool
}

// New creates a Backend. It draws nothing until attached to a renderer.
func New(log ports.Logger, opts Options) *Backend {
	if log == nil {
		log = logger.NewNoop()
	}
	bg := opts.Background
	if bg == nil {
		bg = color.Black
	}
	return &Backend{
		log:        log.WithComponent("gg"),
		background: bg,
	}
}

// SetBackground changes the fill color used outside the video rectangle.
func (b *Backend) SetBackground(c color.Color) {
	b.background = c
	b.clear = true
}

// Attach implements ports.Attacher.
func (b *Backend) Attach(view ports.RendererView) {
	b.view = view
}

// IsSupported accepts every format that arrives as a Go image.
func (b *Backend) IsSupported(format media.PixelFormat) bool {
	switch {
	case format.IsRGB():
		return true
	case format == media.FormatGray8, format == media.FormatYUV420P, format == media.FormatYUV422P:
		return true
	}
	return false
}

// DefaultPixelFormat is RGBA, the layout of the gg surface.
func (b *Backend) DefaultPixelFormat() media.PixelFormat {
	return media.FormatRGBA
}

// ReceiveFrame copies the frame into an RGBA buffer.
func (b *Backend) ReceiveFrame(frame media.Frame) bool {
	if frame.Image == nil {
		b.log.Debug("Frame without image data")
		return false
	}
	b.frame = toRGBA(frame.Image, b.frame)
	b.stale = true
	return true
}

// ResizeFrame rebuilds the surface when the renderer size changed.
func (b *Backend) ResizeFrame(width, height int) {
	b.ensureSurface()
}

// Open implements ports.Opener.
func (b *Backend) Open() bool {
	b.ensureSurface()
	return true
}

// Close releases the frame buffers. The last surface stays readable.
func (b *Backend) Close() bool {
	b.frame = nil
	b.adjusted = nil
	return true
}

func (b *Backend) ensureSurface() {
	if b.view == nil {
		return
	}
	size := b.view.RendererSize()
	if !size.IsValid() {
		b.dc = nil
		return
	}
	if b.dc != nil && b.dc.Width() == size.Width && b.dc.Height() == size.Height {
		return
	}
	b.log.Debug("Surface %s", size)
	b.dc = gg.NewContext(size.Width, size.Height)
	b.clear = true
}

// NeedUpdateBackground is true when the video rectangle leaves part of the
// surface uncovered or the surface was just created.
func (b *Backend) NeedUpdateBackground() bool {
	if b.dc == nil || b.view == nil {
		return false
	}
	if b.clear {
		return true
	}
	size := b.view.RendererSize()
	return b.view.VideoRect() != media.Rect{Width: size.Width, Height: size.Height}
}

// DrawBackground fills the surface with the background color.
func (b *Backend) DrawBackground() {
	if b.dc == nil {
		return
	}
	b.dc.SetColor(b.background)
	b.dc.Clear()
	b.clear = false
}

// NeedDrawFrame is true once a frame has been received.
func (b *Backend) NeedDrawFrame() bool {
	return b.frame != nil
}

// DrawFrame scales the region of interest into the video rectangle and
// draws the subtitle and OSD filters on top.
func (b *Backend) DrawFrame() {
	if b.dc == nil || b.view == nil || b.frame == nil {
		return
	}
	surface, ok := b.dc.Image().(draw.Image)
	if !ok {
		return
	}

	vr := b.view.VideoRect()
	roi := b.view.RealROI()
	if !vr.IsEmpty() && !roi.IsEmpty() {
		src := b.source()
		if b.view.ScaleInRenderer() {
			interpolator(b.view.Quality()).Scale(surface, vr.ToImageRect(), src, roi.ToImageRect(), draw.Src, nil)
		} else {
			draw.Draw(surface, vr.ToImageRect(), src, image.Pt(roi.X, roi.Y), draw.Src)
		}
	}

	if f := b.view.SubtitleFilter(); f != nil {
		if err := f.Draw(surface, vr); err != nil {
			b.log.Warn("Subtitle filter %s failed: %v", f.Name(), err)
		}
	}
	if f := b.view.OSDFilter(); f != nil {
		if err := f.Draw(surface, vr); err != nil {
			b.log.Warn("OSD filter %s failed: %v", f.Name(), err)
		}
	}
}

// source returns the received frame with the color adjustments applied.
func (b *Backend) source() *image.RGBA {
	if b.adjust.IsIdentity() {
		return b.frame
	}
	if b.stale || b.adjusted == nil {
		b.adjusted = applyAdjustments(b.adjusted, b.frame, b.adjust)
		b.stale = false
	}
	return b.adjusted
}

// OnChangingBrightness accepts any brightness and re-adjusts the frame on the next draw.
func (b *Backend) OnChangingBrightness(v float64) bool {
	b.adjust.Brightness = v
	b.stale = true
	return true
}

// OnChangingContrast accepts any contrast.
func (b *Backend) OnChangingContrast(v float64) bool {
	b.adjust.Contrast = v
	b.stale = true
	return true
}

// OnChangingHue accepts any hue.
func (b *Backend) OnChangingHue(v float64) bool {
	b.adjust.Hue = v
	b.stale = true
	return true
}

// OnChangingSaturation accepts any saturation.
func (b *Backend) OnChangingSaturation(v float64) bool {
	b.adjust.Saturation = v
	b.stale = true
	return true
}

// Snapshot returns a copy of the surface.
func (b *Backend) Snapshot() (media.Frame, bool) {
	if b.dc == nil {
		return media.Frame{}, false
	}
	img := toRGBA(b.dc.Image(), nil)
	return media.NewFrame(img, 0), true
}

func interpolator(q ports.Quality) draw.Interpolator {
	switch q {
	case ports.QualityFastest:
		return draw.NearestNeighbor
	case ports.QualityBest:
		return draw.CatmullRom
	default:
		return draw.ApproxBiLinear
	}
}

// toRGBA copies img into dst, reallocating dst when the size differs.
func toRGBA(img image.Image, dst *image.RGBA) *image.RGBA {
	bounds := img.Bounds()
	if dst == nil || dst.Bounds().Dx() != bounds.Dx() || dst.Bounds().Dy() != bounds.Dy() {
		dst = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	}
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}

var (
	_ ports.Backend               = (*Backend)(nil)
	_ ports.Attacher              = (*Backend)(nil)
	_ ports.FrameResizer          = (*Backend)(nil)
	_ ports.Opener                = (*Backend)(nil)
	_ ports.BackgroundPainter     = (*Backend)(nil)
	_ ports.FrameDrawGate         = (*Backend)(nil)
	_ ports.BrightnessAdjuster    = (*Backend)(nil)
	_ ports.ContrastAdjuster      = (*Backend)(nil)
	_ ports.HueAdjuster           = (*Backend)(nil)
	_ ports.SaturationAdjuster    = (*Backend)(nil)
	_ ports.DefaultFormatProvider = (*Backend)(nil)
	_ ports.Snapshotter           = (*Backend)(nil)
)
