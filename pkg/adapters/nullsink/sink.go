// Package nullsink provides a snapshot sink that discards everything.
package nullsink

import (
	"image"

	"github.com/user/videoout/pkg/ports"
)

// Sink is a no-op implementation of ports.SnapshotSink.
type Sink struct{}

// New creates a new Sink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveSnapshot does nothing.
func (s *Sink) SaveSnapshot(index int, img image.Image) error {
	return nil
}

var _ ports.SnapshotSink = (*Sink)(nil)
