// Package pipeline holds the stage contract and the I/O types that flow
// between the frame source, the renderer and the snapshot sink.
package pipeline

import (
	"context"
)

// Stage turns one input into one output. Execute must honor ctx between
// units of work so a long run can be interrupted.
type Stage[In, Out any] interface {
	Execute(ctx context.Context, input In) (Out, error)
}

// Presenter drives a renderer through a sequence of frames.
type Presenter = Stage[PresentInput, PresentResult]
