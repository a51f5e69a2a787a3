// Package geometry computes where a video frame lands on a rendering surface.
//
// Everything here is a pure function of its inputs. The renderer keeps the
// state and calls into this package whenever that state changes; backends may
// call it directly when they need the same numbers.
package geometry

import (
	"math"
	"strings"

	"github.com/user/videoout/pkg/media"
)

// AspectRatioMode selects the ratio used to fit the frame into the renderer.
type AspectRatioMode int

const (
	// RendererAspectRatio stretches the frame over the whole renderer.
	RendererAspectRatio AspectRatioMode = iota
	// VideoAspectRatio keeps the frame's (or ROI's) own ratio, centered.
	VideoAspectRatio
	// CustomAspectRatio uses an explicit ratio set by the caller.
	CustomAspectRatio
)

// String returns the mode name used in configuration files.
func (m AspectRatioMode) String() string {
	switch m {
	case RendererAspectRatio:
		return "renderer"
	case VideoAspectRatio:
		return "video"
	case CustomAspectRatio:
		return "custom"
	default:
		return "unknown"
	}
}

// IsValid reports whether m is one of the defined modes.
func (m AspectRatioMode) IsValid() bool {
	return m >= RendererAspectRatio && m <= CustomAspectRatio
}

// ParseAspectRatioMode parses a mode name. The second result is false for
// unknown names.
func ParseAspectRatioMode(s string) (AspectRatioMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "renderer", "stretch", "fill":
		return RendererAspectRatio, true
	case "video", "keep", "original":
		return VideoAspectRatio, true
	case "custom":
		return CustomAspectRatio, true
	default:
		return RendererAspectRatio, false
	}
}

// ResolveROI turns a stored region of interest into a frame rectangle.
//
// An all-zero or invalid roi selects the whole frame. When every component
// has magnitude <= 1 the roi is read as fractions of the frame size. A zero
// width (or height) next to a non-zero origin extends to the frame edge.
// Otherwise the roi is intersected with the frame, and an empty intersection
// selects the whole frame, so the result never has zero area while the frame
// itself is valid.
//
// The magnitude test is a heuristic: an absolute roi such as (0,0,1,1) is
// indistinguishable from the normalized whole frame.
func ResolveROI(roi media.RectF, frame media.Size) media.Rect {
	full := media.Rect{Width: frame.Width, Height: frame.Height}
	if !frame.IsValid() {
		return media.Rect{}
	}
	if roi.IsZero() || !roi.IsFinite() || roi.Width < 0 || roi.Height < 0 {
		return full
	}

	x, y, w, h := roi.X, roi.Y, roi.Width, roi.Height
	if isNormalized(roi) {
		fw, fh := float64(frame.Width), float64(frame.Height)
		x, y, w, h = x*fw, y*fh, w*fw, h*fh
	}

	rx := int(math.Round(x))
	ry := int(math.Round(y))
	rw := int(math.Round(w))
	rh := int(math.Round(h))

	rx, rw = clipSpan(rx, rw, frame.Width)
	ry, rh = clipSpan(ry, rh, frame.Height)

	if rw == 0 || rh == 0 {
		return full
	}
	return media.Rect{X: rx, Y: ry, Width: rw, Height: rh}
}

// clipSpan intersects [pos, pos+size) with [0, limit). A zero size runs to limit.
func clipSpan(pos, size, limit int) (int, int) {
	if size == 0 {
		pos = clamp(pos, 0, limit)
		return pos, limit - pos
	}
	end := clamp(pos+size, 0, limit)
	pos = clamp(pos, 0, limit)
	return pos, max(end-pos, 0)
}

func isNormalized(r media.RectF) bool {
	return math.Abs(r.X) <= 1 && math.Abs(r.Y) <= 1 &&
		math.Abs(r.Width) <= 1 && math.Abs(r.Height) <= 1
}

// Params is everything ComputeVideoRect needs.
type Params struct {
	Renderer media.Size
	Frame    media.Size
	Mode     AspectRatioMode
	Ratio    float64 // used only by CustomAspectRatio; <= 0 means unset
	ROI      media.Rect
}

// ComputeVideoRect returns the rectangle inside the renderer the frame is
// drawn to. Degenerate renderer or frame sizes yield an empty rect.
func ComputeVideoRect(p Params) media.Rect {
	if !p.Renderer.IsValid() || !p.Frame.IsValid() {
		return media.Rect{}
	}

	full := media.Rect{Width: p.Renderer.Width, Height: p.Renderer.Height}
	var ratio float64
	switch p.Mode {
	case VideoAspectRatio:
		src := p.ROI.Size()
		if !src.IsValid() {
			src = p.Frame
		}
		ratio = src.AspectRatio()
	case CustomAspectRatio:
		ratio = p.Ratio
	default:
		return full
	}
	if ratio <= 0 || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return full
	}
	return FitCentered(p.Renderer, ratio)
}

// FitCentered returns the largest rectangle of the given ratio that fits in
// the container, centered on both axes.
func FitCentered(container media.Size, ratio float64) media.Rect {
	if !container.IsValid() || ratio <= 0 {
		return media.Rect{}
	}
	cw, ch := container.Width, container.Height
	if container.AspectRatio() > ratio {
		// pillarbox
		w := int(math.Round(float64(ch) * ratio))
		w = clamp(w, 1, cw)
		return media.Rect{X: (cw - w) / 2, Y: 0, Width: w, Height: ch}
	}
	// letterbox
	h := int(math.Round(float64(cw) / ratio))
	h = clamp(h, 1, ch)
	return media.Rect{X: 0, Y: (ch - h) / 2, Width: cw, Height: h}
}

// MapToFrame maps a renderer point into frame space. The point is returned
// unchanged when videoRect has no area.
func MapToFrame(p media.PointF, videoRect, roi media.Rect) media.PointF {
	if videoRect.IsEmpty() || roi.IsEmpty() {
		return p
	}
	sx := float64(roi.Width) / float64(videoRect.Width)
	sy := float64(roi.Height) / float64(videoRect.Height)
	return media.PointF{
		X: float64(roi.X) + (p.X-float64(videoRect.X))*sx,
		Y: float64(roi.Y) + (p.Y-float64(videoRect.Y))*sy,
	}
}

// MapFromFrame is the inverse of MapToFrame.
func MapFromFrame(p media.PointF, videoRect, roi media.Rect) media.PointF {
	if videoRect.IsEmpty() || roi.IsEmpty() {
		return p
	}
	sx := float64(videoRect.Width) / float64(roi.Width)
	sy := float64(videoRect.Height) / float64(roi.Height)
	return media.PointF{
		X: float64(videoRect.X) + (p.X-float64(roi.X))*sx,
		Y: float64(videoRect.Y) + (p.Y-float64(roi.Y))*sy,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
