package mocks

import (
	"image"

	"github.com/user/videoout/pkg/media"
	"github.com/user/videoout/pkg/ports"
)

// Backend implements only the required ports.Backend methods.
type Backend struct {
	IsSupportedFunc  func(format media.PixelFormat) bool
	ReceiveFrameFunc func(frame media.Frame) bool

	Received []media.Frame
	Draws    int
}

// IsSupported defaults to RGB family formats.
func (m *Backend) IsSupported(format media.PixelFormat) bool {
	if m.IsSupportedFunc != nil {
		return m.IsSupportedFunc(format)
	}
	return format.IsRGB()
}

// ReceiveFrame records the frame and accepts it unless ReceiveFrameFunc says otherwise.
func (m *Backend) ReceiveFrame(frame media.Frame) bool {
	if m.ReceiveFrameFunc != nil && !m.ReceiveFrameFunc(frame) {
		return false
	}
	m.Received = append(m.Received, frame)
	return true
}

func (m *Backend) DrawFrame() {
	m.Draws++
}

var _ ports.Backend = (*Backend)(nil)

// Call records one optional hook invocation.
type Call struct {
	Hook  string
	Value float64
	W, H  int
}

// HookedBackend implements every optional capability and records the calls.
// Each hook's result comes from its Func field, falling back to the NopHooks
// default. NeedDrawFrame falls back to true.
type HookedBackend struct {
	Backend

	OnChangingBrightnessFunc func(v float64) bool
	OnChangingContrastFunc   func(v float64) bool
	OnChangingHueFunc        func(v float64) bool
	OnChangingSaturationFunc func(v float64) bool
	OpenFunc                 func() bool
	CloseFunc                func() bool
	NeedUpdateBackgroundFunc func() bool
	NeedDrawFrameFunc        func() bool
	DefaultFormat            media.PixelFormat

	// ResizeFrameFunc observes the renderer state at hook time.
	ResizeFrameFunc func(width, height int)

	View  ports.RendererView
	Calls []Call
}

func (m *HookedBackend) record(hook string, v float64) {
	m.Calls = append(m.Calls, Call{Hook: hook, Value: v})
}

// CallsTo returns the recorded calls of one hook.
func (m *HookedBackend) CallsTo(hook string) []Call {
	var out []Call
	for _, c := range m.Calls {
		if c.Hook == hook {
			out = append(out, c)
		}
	}
	return out
}

func (m *HookedBackend) Attach(view ports.RendererView) {
	m.View = view
}

func (m *HookedBackend) ResizeFrame(width, height int) {
	m.Calls = append(m.Calls, Call{Hook: "ResizeFrame", W: width, H: height})
	if m.ResizeFrameFunc != nil {
		m.ResizeFrameFunc(width, height)
	}
}

func (m *HookedBackend) OnChangingBrightness(v float64) bool {
	m.record("OnChangingBrightness", v)
	return m.OnChangingBrightnessFunc != nil && m.OnChangingBrightnessFunc(v)
}

func (m *HookedBackend) OnChangingContrast(v float64) bool {
	m.record("OnChangingContrast", v)
	return m.OnChangingContrastFunc != nil && m.OnChangingContrastFunc(v)
}

func (m *HookedBackend) OnChangingHue(v float64) bool {
	m.record("OnChangingHue", v)
	return m.OnChangingHueFunc != nil && m.OnChangingHueFunc(v)
}

func (m *HookedBackend) OnChangingSaturation(v float64) bool {
	m.record("OnChangingSaturation", v)
	return m.OnChangingSaturationFunc != nil && m.OnChangingSaturationFunc(v)
}

func (m *HookedBackend) NeedUpdateBackground() bool {
	if m.NeedUpdateBackgroundFunc != nil {
		return m.NeedUpdateBackgroundFunc()
	}
	return false
}

func (m *HookedBackend) DrawBackground() {
	m.record("DrawBackground", 0)
}

func (m *HookedBackend) NeedDrawFrame() bool {
	if m.NeedDrawFrameFunc != nil {
		return m.NeedDrawFrameFunc()
	}
	return true
}

func (m *HookedBackend) Open() bool {
	m.record("Open", 0)
	return m.OpenFunc == nil || m.OpenFunc()
}

func (m *HookedBackend) Close() bool {
	m.record("Close", 0)
	return m.CloseFunc == nil || m.CloseFunc()
}

func (m *HookedBackend) DefaultPixelFormat() media.PixelFormat {
	return m.DefaultFormat
}

var (
	_ ports.Attacher              = (*HookedBackend)(nil)
	_ ports.FrameResizer          = (*HookedBackend)(nil)
	_ ports.BrightnessAdjuster    = (*HookedBackend)(nil)
	_ ports.ContrastAdjuster      = (*HookedBackend)(nil)
	_ ports.HueAdjuster           = (*HookedBackend)(nil)
	_ ports.SaturationAdjuster    = (*HookedBackend)(nil)
	_ ports.BackgroundPainter     = (*HookedBackend)(nil)
	_ ports.FrameDrawGate         = (*HookedBackend)(nil)
	_ ports.Opener                = (*HookedBackend)(nil)
	_ ports.DefaultFormatProvider = (*HookedBackend)(nil)
)

// PaintingBackend takes over the paint event.
type PaintingBackend struct {
	Backend
	Paints int
}

func (m *PaintingBackend) HandlePaintEvent() {
	m.Paints++
}

var _ ports.PaintHandler = (*PaintingBackend)(nil)

// SnapshotBackend returns a solid image of the renderer size after each paint.
type SnapshotBackend struct {
	HookedBackend
	Paints int
}

func (m *SnapshotBackend) DrawFrame() {
	m.Paints++
}

func (m *SnapshotBackend) Snapshot() (media.Frame, bool) {
	if m.View == nil || !m.View.RendererSize().IsValid() {
		return media.Frame{}, false
	}
	size := m.View.RendererSize()
	return media.NewFrame(image.NewRGBA(image.Rect(0, 0, size.Width, size.Height)), 0), true
}

var _ ports.Snapshotter = (*SnapshotBackend)(nil)
