package renderer

import (
	"math"

	"github.com/user/videoout/pkg/geometry"
	"github.com/user/videoout/pkg/media"
	"github.com/user/videoout/pkg/ports"
)

// ResizeRenderer sets the surface size. The output rectangle is recomputed
// and the backend's ResizeFrame hook runs afterwards.
func (r *Renderer) ResizeRenderer(width, height int) {
	r.rendererSize = media.Size{Width: width, Height: height}
	r.updateGeometry(true)
}

// ResizeRendererTo is ResizeRenderer taking a media.Size.
func (r *Renderer) ResizeRendererTo(size media.Size) {
	r.ResizeRenderer(size.Width, size.Height)
}

// RendererSize returns the surface size.
func (r *Renderer) RendererSize() media.Size {
	return r.rendererSize
}

// RendererWidth returns the surface width.
func (r *Renderer) RendererWidth() int {
	return r.rendererSize.Width
}

// RendererHeight returns the surface height.
func (r *Renderer) RendererHeight() int {
	return r.rendererSize.Height
}

// FrameSize returns the size of the most recently received frame.
func (r *Renderer) FrameSize() media.Size {
	return r.frameSize
}

// setFrameSize is only reachable from Receive.
func (r *Renderer) setFrameSize(width, height int) {
	r.log.Debug("Frame size changed: %dx%d -> %dx%d", r.frameSize.Width, r.frameSize.Height, width, height)
	r.frameSize = media.Size{Width: width, Height: height}
	r.updateGeometry(true)
}

// OutAspectRatioMode returns the active aspect ratio policy.
func (r *Renderer) OutAspectRatioMode() geometry.AspectRatioMode {
	return r.mode
}

// SetOutAspectRatioMode switches the aspect ratio policy. The custom ratio
// is left untouched. Unknown modes are ignored.
func (r *Renderer) SetOutAspectRatioMode(mode geometry.AspectRatioMode) {
	if !mode.IsValid() {
		r.log.Debug("Ignoring unknown aspect ratio mode %d", int(mode))
		return
	}
	if mode == r.mode {
		return
	}
	r.mode = mode
	r.updateGeometry(false)
}

// OutAspectRatio returns the custom ratio, 0 when never set.
func (r *Renderer) OutAspectRatio() float64 {
	return r.outRatio
}

// SetOutAspectRatio sets a custom width/height ratio and switches to
// CustomAspectRatio. Ratios that are not positive and finite are rejected.
func (r *Renderer) SetOutAspectRatio(ratio float64) bool {
	if !(ratio > 0) || math.IsInf(ratio, 0) {
		r.log.Debug("Rejected aspect ratio %v", ratio)
		return false
	}
	r.outRatio = ratio
	r.mode = geometry.CustomAspectRatio
	r.updateGeometry(false)
	return true
}

// RegionOfInterest returns the region of interest as it was set.
func (r *Renderer) RegionOfInterest() media.RectF {
	return r.roi
}

// SetRegionOfInterest stores the region of interest verbatim, in absolute
// or normalized form. Only non-finite components are rejected.
func (r *Renderer) SetRegionOfInterest(roi media.RectF) bool {
	if !roi.IsFinite() {
		r.log.Debug("Rejected non-finite region of interest %+v", roi)
		return false
	}
	r.roi = roi
	r.updateGeometry(false)
	return true
}

// SetRegionOfInterestXYWH is SetRegionOfInterest with separate components.
func (r *Renderer) SetRegionOfInterestXYWH(x, y, width, height float64) bool {
	return r.SetRegionOfInterest(media.RectF{X: x, Y: y, Width: width, Height: height})
}

// RealROI returns the region of interest resolved against the current frame.
func (r *Renderer) RealROI() media.Rect {
	return r.realROI
}

// VideoRect returns where the frame is drawn inside the renderer.
func (r *Renderer) VideoRect() media.Rect {
	return r.videoRect
}

// MapToFrame maps a renderer point to frame coordinates.
func (r *Renderer) MapToFrame(p media.PointF) media.PointF {
	return geometry.MapToFrame(p, r.videoRect, r.realROI)
}

// MapFromFrame maps a frame point to renderer coordinates.
func (r *Renderer) MapFromFrame(p media.PointF) media.PointF {
	return geometry.MapFromFrame(p, r.videoRect, r.realROI)
}

// updateGeometry recomputes the realized ROI and the output rectangle. The
// backend is told about the new output size when sizeChanged is set or the
// rectangle's size actually moved.
func (r *Renderer) updateGeometry(sizeChanged bool) {
	old := r.videoRect
	r.realROI = geometry.ResolveROI(r.roi, r.frameSize)
	r.videoRect = geometry.ComputeVideoRect(geometry.Params{
		Renderer: r.rendererSize,
		Frame:    r.frameSize,
		Mode:     r.mode,
		Ratio:    r.outRatio,
		ROI:      r.realROI,
	})
	if r.videoRect != old {
		r.log.Debug("Video rect %s -> %s (%s)", old, r.videoRect, r.mode)
	}
	if !sizeChanged && r.videoRect.Size() == old.Size() {
		return
	}
	if rz, ok := r.backend.(ports.FrameResizer); ok {
		rz.ResizeFrame(r.videoRect.Width, r.videoRect.Height)
	}
}
