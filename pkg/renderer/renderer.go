// Package renderer implements the backend independent part of a video output.
//
// A Renderer owns the presentation state (sizes, aspect ratio policy, region
// of interest, preferred pixel format, color adjustments and filter slots)
// and drives a ports.Backend that does the actual drawing. Backends opt into
// optional behavior by implementing the capability interfaces in ports.
//
// A Renderer does no locking. Receive and the geometry setters must be
// serialized by the caller, either by confining them to one goroutine or by
// guarding the whole Renderer with one mutex.
package renderer

import (
	"github.com/user/videoout/pkg/adapters/logger"
	"github.com/user/videoout/pkg/geometry"
	"github.com/user/videoout/pkg/media"
	"github.com/user/videoout/pkg/ports"
)

// Renderer is a video output bound to one backend.
type Renderer struct {
	backend ports.Backend
	log     ports.Logger
	id      ID
	name    string

	open       bool
	hasFrame   bool
	frameCount int

	// geometry
	rendererSize media.Size
	frameSize    media.Size
	mode         geometry.AspectRatioMode
	outRatio     float64
	roi          media.RectF
	realROI      media.Rect
	videoRect    media.Rect

	// pixel format
	preferredFormat  media.PixelFormat
	forceFormat      bool
	negotiatedFormat media.PixelFormat

	quality ports.Quality

	adjust media.ColorAdjustments

	osd                ports.OSDFilter
	subtitle           ports.Filter
	defaultEventFilter bool
	scaleInRenderer    bool
}

// New creates a closed renderer driving backend. A nil log discards messages.
func New(backend ports.Backend, log ports.Logger) *Renderer {
	if log == nil {
		log = logger.NewNoop()
	}
	r := &Renderer{
		backend:            backend,
		log:                log.WithComponent("renderer"),
		mode:               geometry.RendererAspectRatio,
		preferredFormat:    media.FormatRGB32,
		defaultEventFilter: true,
		scaleInRenderer:    true,
	}
	if p, ok := backend.(ports.DefaultFormatProvider); ok {
		if f := p.DefaultPixelFormat(); f.IsValid() {
			r.preferredFormat = f
		}
	}
	if a, ok := backend.(ports.Attacher); ok {
		a.Attach(r)
	}
	return r
}

// Backend returns the backend this renderer drives.
func (r *Renderer) Backend() ports.Backend {
	return r.backend
}

// ID returns the registry id of the backend, or 0 for unregistered backends.
func (r *Renderer) ID() ID {
	return r.id
}

// Name returns the registry name of the backend.
func (r *Renderer) Name() string {
	return r.name
}

// =============================================================================
// Lifecycle
// =============================================================================

// Open makes the renderer accept frames. A backend implementing ports.Opener
// may refuse, in which case the renderer stays closed.
func (r *Renderer) Open() bool {
	if r.open {
		return true
	}
	if o, ok := r.backend.(ports.Opener); ok && !o.Open() {
		r.log.Warn("Backend refused to open")
		return false
	}
	r.open = true
	r.log.Debug("Renderer opened")
	return true
}

// Close stops accepting frames. A refusing backend leaves the renderer open.
func (r *Renderer) Close() bool {
	if !r.open {
		return true
	}
	if o, ok := r.backend.(ports.Opener); ok && !o.Close() {
		r.log.Warn("Backend refused to close")
		return false
	}
	r.open = false
	r.log.Debug("Renderer closed")
	return true
}

// IsOpen reports whether the renderer accepts frames.
func (r *Renderer) IsOpen() bool {
	return r.open
}

// Receive hands a frame to the backend. It fails without side effects when
// the renderer is closed or no acceptable pixel format can be negotiated.
// Otherwise a size change updates the frame size and the geometry before
// the backend sees the frame, and the backend's verdict is returned.
func (r *Renderer) Receive(frame media.Frame) bool {
	if !r.open {
		r.log.Debug("Frame rejected: renderer is closed")
		return false
	}
	format, ok := r.NegotiatePixelFormat(frame.Format)
	if !ok {
		r.log.Debug("Frame rejected: no usable pixel format for %s", frame.Format)
		return false
	}
	r.negotiatedFormat = format

	if frame.Size() != r.frameSize {
		r.setFrameSize(frame.Width, frame.Height)
	}

	if !r.backend.ReceiveFrame(frame) {
		r.log.Debug("Backend rejected frame %d", r.frameCount)
		return false
	}
	r.hasFrame = true
	r.frameCount++
	if r.osd != nil {
		r.osd.Update(ports.OSDInfo{
			Timestamp:  frame.Timestamp,
			FrameIndex: r.frameCount - 1,
			FrameSize:  frame.Size(),
			Format:     format,
		})
	}
	return true
}

// FrameCount returns the number of frames accepted by the backend.
func (r *Renderer) FrameCount() int {
	return r.frameCount
}

// Paint runs one paint event. Backends implementing ports.PaintHandler take
// over entirely; otherwise the background is drawn when the backend asks for
// it, followed by the frame.
func (r *Renderer) Paint() bool {
	if !r.open {
		return false
	}
	if h, ok := r.backend.(ports.PaintHandler); ok {
		h.HandlePaintEvent()
		return true
	}
	if bg, ok := r.backend.(ports.BackgroundPainter); ok && bg.NeedUpdateBackground() {
		bg.DrawBackground()
	}
	if r.needDrawFrame() {
		r.backend.DrawFrame()
	}
	return true
}

func (r *Renderer) needDrawFrame() bool {
	if g, ok := r.backend.(ports.FrameDrawGate); ok {
		return g.NeedDrawFrame()
	}
	return r.hasFrame
}

// NeedUpdateBackground reports whether the video rectangle leaves part of
// the renderer uncovered. Backends can use it as their own default.
func (r *Renderer) NeedUpdateBackground() bool {
	full := media.Rect{Width: r.rendererSize.Width, Height: r.rendererSize.Height}
	return r.videoRect != full
}

// =============================================================================
// Hints
// =============================================================================

// SetQuality stores the drawing quality hint.
func (r *Renderer) SetQuality(q ports.Quality) {
	r.quality = q
}

// Quality returns the drawing quality hint.
func (r *Renderer) Quality() ports.Quality {
	return r.quality
}

// SetScaleInRenderer tells the backend whether it should scale frames itself.
func (r *Renderer) SetScaleInRenderer(scale bool) {
	r.scaleInRenderer = scale
}

// ScaleInRenderer returns the scaling hint.
func (r *Renderer) ScaleInRenderer() bool {
	return r.scaleInRenderer
}

var _ ports.RendererView = (*Renderer)(nil)
