package ports

import (
	"image/draw"
	"time"

	"github.com/user/videoout/pkg/media"
)

// Filter draws on top of a painted surface. The renderer only holds filters;
// the backend's paint routine decides when to call Draw.
type Filter interface {
	// Name identifies the filter in logs.
	Name() string

	// Draw composes the filter onto the surface. videoRect is where the
	// frame was drawn.
	Draw(surface draw.Image, videoRect media.Rect) error
}

// OSDFilter is a filter that shows playback state over the video.
type OSDFilter interface {
	Filter

	// Update passes the state of the current frame to the filter.
	Update(info OSDInfo)
}

// OSDInfo is the state shown by an on-screen display.
type OSDInfo struct {
	Timestamp  time.Duration
	FrameIndex int
	FrameSize  media.Size
	Format     media.PixelFormat
}
