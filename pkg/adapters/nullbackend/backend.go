// Package nullbackend provides a backend that accepts every frame and draws
// nothing. It is useful for probing geometry without a surface.
package nullbackend

import (
	"github.com/user/videoout/pkg/media"
	"github.com/user/videoout/pkg/ports"
	"github.com/user/videoout/pkg/renderer"
)

// ID is the registry id of the null backend.
const ID renderer.ID = 2

// Name is the registry name of the null backend.
const Name = "null"

func init() {
	renderer.MustRegister(ID, Name, func(ports.Logger) ports.Backend {
		return New()
	})
}

// Backend counts what it is asked to do. Color adjustments are accepted
// so that settings can be validated against it.
type Backend struct {
	ports.NopHooks

	Frames int
	Draws  int
}

// New creates a new Backend.
func New() *Backend {
	return &Backend{}
}

// IsSupported accepts every valid format.
func (b *Backend) IsSupported(format media.PixelFormat) bool {
	return format.IsValid()
}

func (b *Backend) ReceiveFrame(frame media.Frame) bool {
	b.Frames++
	return true
}

func (b *Backend) DrawFrame() {
	b.Draws++
}

func (b *Backend) OnChangingBrightness(float64) bool { return true }
func (b *Backend) OnChangingContrast(float64) bool   { return true }
func (b *Backend) OnChangingHue(float64) bool        { return true }
func (b *Backend) OnChangingSaturation(float64) bool { return true }

var _ ports.Backend = (*Backend)(nil)
