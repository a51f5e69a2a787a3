// Package media provides the value types shared by the renderer core and its backends.
package media

import (
	"fmt"
	"image"
	"math"
	"time"
)

// =============================================================================
// Geometry Types
// =============================================================================

// Size represents width and height in pixels.
type Size struct {
	Width  int
	Height int
}

// IsValid reports whether both dimensions are positive.
func (s Size) IsValid() bool {
	return s.Width > 0 && s.Height > 0
}

// AspectRatio returns width/height, or 0 for an invalid size.
func (s Size) AspectRatio() float64 {
	if !s.IsValid() {
		return 0
	}
	return float64(s.Width) / float64(s.Height)
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Rect is an integer rectangle given by origin and extent.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Size returns the extent of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// ToImageRect converts to an image.Rectangle (Min/Max form).
func (r Rect) ToImageRect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// RectF is a floating point rectangle. It carries regions of interest, which
// may be absolute pixels or fractions of the frame.
type RectF struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// IsZero reports whether all four components are zero.
func (r RectF) IsZero() bool {
	return r.X == 0 && r.Y == 0 && r.Width == 0 && r.Height == 0
}

// IsFinite reports whether no component is NaN or infinite.
func (r RectF) IsFinite() bool {
	for _, v := range [...]float64{r.X, r.Y, r.Width, r.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// PointF is a point in either frame or renderer space.
type PointF struct {
	X float64
	Y float64
}

// =============================================================================
// Frame Types
// =============================================================================

// Frame is a decoded video frame handed to a renderer.
type Frame struct {
	Format    PixelFormat
	Width     int
	Height    int
	Image     image.Image   // Pixel payload; nil for opaque frames
	Timestamp time.Duration // Presentation time
}

// Size returns the frame dimensions.
func (f Frame) Size() Size {
	return Size{Width: f.Width, Height: f.Height}
}

// NewFrame wraps an image.Image as a frame, inferring the pixel format.
func NewFrame(img image.Image, ts time.Duration) Frame {
	b := img.Bounds()
	return Frame{
		Format:    FormatOf(img),
		Width:     b.Dx(),
		Height:    b.Dy(),
		Image:     img,
		Timestamp: ts,
	}
}

// =============================================================================
// Color Adjustment Types
// =============================================================================

// ColorAdjustments holds the four normalized adjustment values, each in [-1, 1].
type ColorAdjustments struct {
	Brightness float64
	Contrast   float64
	Hue        float64
	Saturation float64
}

// IsIdentity reports whether no adjustment is applied.
func (c ColorAdjustments) IsIdentity() bool {
	return c == ColorAdjustments{}
}
