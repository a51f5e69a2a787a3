package ports

import (
	"context"

	"github.com/user/videoout/pkg/media"
)

// FrameSource produces decoded frames for a renderer.
type FrameSource interface {
	// Frames returns the frames read from the given paths, in order.
	Frames(ctx context.Context, paths []string) ([]media.Frame, error)
}
