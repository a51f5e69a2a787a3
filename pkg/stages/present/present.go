// Package present implements the presentation stage: it drives one renderer
// through open, resize, receive, paint and close for a sequence of frames.
package present

import (
	"context"
	"errors"
	"fmt"

	"github.com/user/videoout/pkg/adapters/logger"
	"github.com/user/videoout/pkg/adapters/nullsink"
	"github.com/user/videoout/pkg/pipeline"
	"github.com/user/videoout/pkg/ports"
)

// ErrOpenFailed is returned when the backend refuses to open.
var ErrOpenFailed = errors.New("renderer failed to open")

// ErrNoRenderer is returned when the input carries no renderer.
var ErrNoRenderer = errors.New("no renderer")

// Stage presents frames on a renderer. The renderer is only touched from
// the goroutine calling Execute.
type Stage struct {
	sink   ports.SnapshotSink
	logger ports.Logger
}

// NewStage creates a new present stage. A nil sink discards snapshots.
func NewStage(sink ports.SnapshotSink, log ports.Logger) *Stage {
	if sink == nil {
		sink = nullsink.New()
	}
	if log == nil {
		log = logger.NewNoop()
	}
	return &Stage{
		sink:   sink,
		logger: log.WithComponent("present"),
	}
}

// Execute presents every frame in order. Cancellation is checked between
// frames; the renderer is closed on every return path.
func (s *Stage) Execute(ctx context.Context, input pipeline.PresentInput) (result pipeline.PresentResult, err error) {
	r := input.Renderer
	if r == nil {
		return result, ErrNoRenderer
	}

	if !r.Open() {
		return result, ErrOpenFailed
	}
	defer func() {
		if !r.Close() && err == nil {
			err = fmt.Errorf("close renderer %q: backend refused", r.Name())
		}
	}()

	r.ResizeRendererTo(input.Size)
	if input.Settings != nil {
		result.RejectedSettings = input.Settings.ApplyTo(r, s.logger)
	}

	s.logger.Info("Presenting %d frames on %s at %dx%d", len(input.Frames), r.Name(), input.Size.Width, input.Size.Height)

	snapshotter, canSnapshot := r.Backend().(ports.Snapshotter)
	saveSnapshots := canSnapshot && s.sink.Enabled()

	for i, frame := range input.Frames {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if !r.Receive(frame) {
			s.logger.Warn("Frame %d rejected", i)
			result.Rejected++
			continue
		}
		result.Presented++
		result.VideoRect = r.VideoRect()
		result.RealROI = r.RealROI()
		result.Format = r.NegotiatedPixelFormat()

		r.Paint()

		if !saveSnapshots {
			continue
		}
		snap, ok := snapshotter.Snapshot()
		if !ok {
			continue
		}
		if err := s.sink.SaveSnapshot(i, snap.Image); err != nil {
			s.logger.Warn("Failed to save snapshot %d: %v", i, err)
			continue
		}
		result.Snapshots++
	}

	s.logger.Info("Presented %d of %d frames", result.Presented, len(input.Frames))
	return result, nil
}

var _ pipeline.Presenter = (*Stage)(nil)
