package mocks

import (
	"image"
	"sync"

	"github.com/user/videoout/pkg/ports"
)

// SnapshotSink keeps snapshots in memory.
type SnapshotSink struct {
	mu      sync.Mutex
	enabled bool

	SaveSnapshotFunc func(index int, img image.Image) error

	Snapshots map[int]image.Image
}

// NewSnapshotSink creates a new mock SnapshotSink.
func NewSnapshotSink(enabled bool) *SnapshotSink {
	return &SnapshotSink{
		enabled:   enabled,
		Snapshots: make(map[int]image.Image),
	}
}

func (m *SnapshotSink) Enabled() bool {
	return m.enabled
}

func (m *SnapshotSink) SaveSnapshot(index int, img image.Image) error {
	if m.SaveSnapshotFunc != nil {
		if err := m.SaveSnapshotFunc(index, img); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Snapshots[index] = img
	return nil
}

var _ ports.SnapshotSink = (*SnapshotSink)(nil)
