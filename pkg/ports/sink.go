package ports

import (
	"image"
)

// SnapshotSink receives painted surfaces.
type SnapshotSink interface {
	// Enabled returns true if snapshots are kept.
	Enabled() bool

	// SaveSnapshot stores the surface painted for the frame at index.
	SaveSnapshot(index int, img image.Image) error
}
