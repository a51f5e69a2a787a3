package pipeline

import (
	"github.com/user/videoout/pkg/media"
	"github.com/user/videoout/pkg/ports"
	"github.com/user/videoout/pkg/renderer"
)

// =============================================================================
// Present Stage Types
// =============================================================================

// Configurer applies settings to a renderer and names the rejected ones.
// config.Config implements it.
type Configurer interface {
	ApplyTo(r *renderer.Renderer, log ports.Logger) []string
}

// PresentInput contains everything needed to show a sequence of frames.
type PresentInput struct {
	Renderer *renderer.Renderer
	Size     media.Size // renderer surface size
	Settings Configurer // optional, applied after opening
	Frames   []media.Frame
}

// PresentResult summarizes a presentation run.
type PresentResult struct {
	Presented int // frames accepted by the backend
	Rejected  int // frames refused by negotiation or the backend
	Snapshots int // snapshots handed to the sink

	RejectedSettings []string

	// State after the last accepted frame.
	VideoRect media.Rect
	RealROI   media.Rect
	Format    media.PixelFormat
}
