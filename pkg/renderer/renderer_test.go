package renderer

import (
	"image"
	"testing"

	"github.com/user/videoout/pkg/geometry"
	"github.com/user/videoout/pkg/media"
	"github.com/user/videoout/pkg/mocks"
	"github.com/user/videoout/pkg/ports"
)

func rgbFrame(w, h int) media.Frame {
	return media.NewFrame(image.NewRGBA(image.Rect(0, 0, w, h)), 0)
}

func TestNew_Defaults(t *testing.T) {
	r := New(&mocks.Backend{}, nil)

	if r.IsOpen() {
		t.Error("expected renderer to start closed")
	}
	if r.OutAspectRatioMode() != geometry.RendererAspectRatio {
		t.Errorf("expected renderer aspect ratio mode, got %v", r.OutAspectRatioMode())
	}
	if r.OutAspectRatio() != 0 {
		t.Errorf("expected unset ratio, got %v", r.OutAspectRatio())
	}
	if !r.RegionOfInterest().IsZero() {
		t.Errorf("expected empty ROI, got %+v", r.RegionOfInterest())
	}
	if !r.ColorAdjustments().IsIdentity() {
		t.Errorf("expected zero adjustments, got %+v", r.ColorAdjustments())
	}
	if r.IsPreferredPixelFormatForced() {
		t.Error("expected format not forced")
	}
	if r.PreferredPixelFormat() != media.FormatRGB32 {
		t.Errorf("expected rgb32 default, got %v", r.PreferredPixelFormat())
	}
	if r.Quality() != ports.QualityDefault {
		t.Errorf("expected default quality, got %v", r.Quality())
	}
	if !r.IsDefaultEventFilterEnabled() {
		t.Error("expected default event filter enabled")
	}
}

func TestNew_BackendDefaultFormatAndAttach(t *testing.T) {
	b := &mocks.HookedBackend{DefaultFormat: media.FormatBGRA}
	r := New(b, nil)

	if r.PreferredPixelFormat() != media.FormatBGRA {
		t.Errorf("expected backend default bgra, got %v", r.PreferredPixelFormat())
	}
	if b.View != r {
		t.Error("expected backend to be attached to the renderer")
	}
}

func TestLifecycle_ReceiveWhileClosed(t *testing.T) {
	b := &mocks.Backend{}
	r := New(b, nil)

	if r.Receive(rgbFrame(640, 480)) {
		t.Error("expected receive to fail while closed")
	}
	if r.FrameSize() != (media.Size{}) {
		t.Errorf("expected frame size unchanged, got %v", r.FrameSize())
	}
	if len(b.Received) != 0 {
		t.Errorf("expected backend untouched, got %d frames", len(b.Received))
	}
}

func TestLifecycle_OpenCloseDefaults(t *testing.T) {
	r := New(&mocks.Backend{}, nil)

	if !r.Open() || !r.IsOpen() {
		t.Fatal("expected default open to succeed")
	}
	if !r.Close() || r.IsOpen() {
		t.Fatal("expected default close to succeed")
	}
}

func TestLifecycle_BackendRefusesOpen(t *testing.T) {
	b := &mocks.HookedBackend{OpenFunc: func() bool { return false }}
	r := New(b, nil)

	if r.Open() {
		t.Error("expected open to fail")
	}
	if r.IsOpen() {
		t.Error("expected renderer to stay closed")
	}
	if r.Receive(rgbFrame(4, 4)) {
		t.Error("expected receive to fail")
	}
}

func TestLifecycle_BackendRefusesClose(t *testing.T) {
	b := &mocks.HookedBackend{CloseFunc: func() bool { return false }}
	r := New(b, nil)
	r.Open()

	if r.Close() {
		t.Error("expected close to fail")
	}
	if !r.IsOpen() {
		t.Error("expected renderer to stay open")
	}
}

func TestReceive_UpdatesFrameSizeBeforeBackend(t *testing.T) {
	b := &mocks.HookedBackend{}
	r := New(b, nil)
	r.Open()
	r.ResizeRenderer(800, 600)
	r.SetOutAspectRatioMode(geometry.VideoAspectRatio)

	var sizeSeen media.Size
	b.ReceiveFrameFunc = func(f media.Frame) bool {
		sizeSeen = b.View.FrameSize()
		return true
	}

	if !r.Receive(rgbFrame(1920, 1080)) {
		t.Fatal("expected receive to succeed")
	}
	if sizeSeen != (media.Size{Width: 1920, Height: 1080}) {
		t.Errorf("expected backend to see new frame size, got %v", sizeSeen)
	}
	expected := media.Rect{X: 0, Y: 75, Width: 800, Height: 450}
	if r.VideoRect() != expected {
		t.Errorf("expected %v, got %v", expected, r.VideoRect())
	}

	resizes := b.CallsTo("ResizeFrame")
	last := resizes[len(resizes)-1]
	if last.W != 800 || last.H != 450 {
		t.Errorf("expected ResizeFrame(800, 450), got (%d, %d)", last.W, last.H)
	}
}

func TestReceive_SameSizeDoesNotResize(t *testing.T) {
	b := &mocks.HookedBackend{}
	r := New(b, nil)
	r.Open()
	r.ResizeRenderer(320, 240)
	r.Receive(rgbFrame(64, 48))
	before := len(b.CallsTo("ResizeFrame"))

	r.Receive(rgbFrame(64, 48))

	if got := len(b.CallsTo("ResizeFrame")); got != before {
		t.Errorf("expected no extra ResizeFrame, got %d calls (was %d)", got, before)
	}
	if r.FrameCount() != 2 {
		t.Errorf("expected 2 frames, got %d", r.FrameCount())
	}
}

func TestReceive_BackendVerdictReturned(t *testing.T) {
	b := &mocks.Backend{ReceiveFrameFunc: func(media.Frame) bool { return false }}
	r := New(b, nil)
	r.Open()

	if r.Receive(rgbFrame(8, 8)) {
		t.Error("expected backend rejection to be returned")
	}
	if r.FrameCount() != 0 {
		t.Errorf("expected no accepted frames, got %d", r.FrameCount())
	}
}

func TestReceive_UpdatesOSD(t *testing.T) {
	r := New(&mocks.Backend{}, nil)
	r.Open()
	osd := &mocks.Filter{FilterName: "osd"}
	r.SetOSDFilter(osd)

	r.Receive(rgbFrame(10, 20))

	if len(osd.Updates) != 1 {
		t.Fatalf("expected one OSD update, got %d", len(osd.Updates))
	}
	if osd.Updates[0].FrameSize != (media.Size{Width: 10, Height: 20}) {
		t.Errorf("unexpected OSD info %+v", osd.Updates[0])
	}
}

func TestResizeRenderer_HookSeesNewSize(t *testing.T) {
	b := &mocks.HookedBackend{}
	r := New(b, nil)
	r.Open()
	r.Receive(rgbFrame(1920, 1080))

	var seen media.Size
	b.ResizeFrameFunc = func(w, h int) { seen = b.View.RendererSize() }

	r.ResizeRenderer(1280, 720)

	if seen != (media.Size{Width: 1280, Height: 720}) {
		t.Errorf("expected hook to run after size update, saw %v", seen)
	}
	if r.RendererWidth() != 1280 || r.RendererHeight() != 720 {
		t.Errorf("unexpected renderer size %v", r.RendererSize())
	}
}

func TestPaint_DefaultSequence(t *testing.T) {
	b := &mocks.HookedBackend{NeedUpdateBackgroundFunc: func() bool { return true }}
	r := New(b, nil)

	if r.Paint() {
		t.Error("expected paint to fail while closed")
	}

	r.Open()
	r.Receive(rgbFrame(4, 4))
	if !r.Paint() {
		t.Fatal("expected paint to succeed")
	}
	if len(b.CallsTo("DrawBackground")) != 1 {
		t.Error("expected background to be drawn")
	}
	if b.Draws != 1 {
		t.Errorf("expected one DrawFrame, got %d", b.Draws)
	}
}

func TestPaint_NoFrameYet(t *testing.T) {
	b := &mocks.Backend{}
	r := New(b, nil)
	r.Open()

	r.Paint()

	if b.Draws != 0 {
		t.Errorf("expected no DrawFrame before the first frame, got %d", b.Draws)
	}
}

func TestPaint_HandlerTakesOver(t *testing.T) {
	b := &mocks.PaintingBackend{}
	r := New(b, nil)
	r.Open()
	r.Receive(rgbFrame(4, 4))

	r.Paint()

	if b.Paints != 1 || b.Draws != 0 {
		t.Errorf("expected HandlePaintEvent only, got paints=%d draws=%d", b.Paints, b.Draws)
	}
}

func TestNeedUpdateBackground(t *testing.T) {
	r := New(&mocks.Backend{}, nil)
	r.Open()
	r.ResizeRenderer(800, 600)
	r.Receive(rgbFrame(1920, 1080))

	if r.NeedUpdateBackground() {
		t.Error("expected stretched output to cover the renderer")
	}
	r.SetOutAspectRatioMode(geometry.VideoAspectRatio)
	if !r.NeedUpdateBackground() {
		t.Error("expected letterboxed output to need a background")
	}
}

func TestHints(t *testing.T) {
	r := New(&mocks.Backend{}, nil)

	r.SetQuality(ports.QualityBest)
	r.SetScaleInRenderer(false)

	if r.Quality() != ports.QualityBest {
		t.Errorf("expected best quality, got %v", r.Quality())
	}
	if r.ScaleInRenderer() {
		t.Error("expected scale in renderer disabled")
	}
}
