package present

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/user/videoout/pkg/adapters/filesink"
	"github.com/user/videoout/pkg/adapters/ggbackend"
	"github.com/user/videoout/pkg/adapters/imagesource"
	"github.com/user/videoout/pkg/adapters/logger"
	"github.com/user/videoout/pkg/adapters/osfilesystem"
	"github.com/user/videoout/pkg/adapters/textfilter"
	"github.com/user/videoout/pkg/config"
	"github.com/user/videoout/pkg/media"
	"github.com/user/videoout/pkg/pipeline"
	"github.com/user/videoout/pkg/renderer"
)

// TestImagesToSnapshots runs PNG files through the gg backend into snapshot files.
func TestImagesToSnapshots(t *testing.T) {
	dir := t.TempDir()
	fs := osfilesystem.New()
	log := logger.NewNoop()

	var inputs []string
	for i, c := range []color.RGBA{{R: 255, A: 255}, {G: 255, A: 255}} {
		img := image.NewRGBA(image.Rect(0, 0, 160, 90))
		for p := 0; p < len(img.Pix); p += 4 {
			img.Pix[p], img.Pix[p+1], img.Pix[p+2], img.Pix[p+3] = c.R, c.G, c.B, c.A
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			t.Fatalf("encode input: %v", err)
		}
		path := filepath.Join(dir, "in", []string{"a.png", "b.png"}[i])
		if err := fs.WriteFile(path, buf.Bytes()); err != nil {
			t.Fatalf("write input: %v", err)
		}
		inputs = append(inputs, path)
	}

	frames, err := imagesource.New(fs, 25, log).Frames(context.Background(), inputs)
	if err != nil {
		t.Fatalf("read frames: %v", err)
	}

	r, err := renderer.Create(ggbackend.Name, log)
	if err != nil {
		t.Fatalf("create renderer: %v", err)
	}
	r.SetOSDFilter(textfilter.NewOSD("", textfilter.DefaultStyle()))

	cfg := config.Defaults()
	cfg.Geometry.Mode = "video"
	cfg.Color.Saturation = -1

	outDir := filepath.Join(dir, "out")
	sink := filesink.New(outDir, fs, filesink.FormatPNG, 0)

	result, err := NewStage(sink, log).Execute(context.Background(), pipeline.PresentInput{
		Renderer: r,
		Size:     media.Size{Width: 320, Height: 240},
		Settings: cfg,
		Frames:   frames,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.Presented != 2 || result.Snapshots != 2 {
		t.Fatalf("expected 2 presented and 2 snapshots, got %d and %d", result.Presented, result.Snapshots)
	}
	if len(result.RejectedSettings) != 0 {
		t.Errorf("expected gg to accept every setting, got %v", result.RejectedSettings)
	}
	expected := media.Rect{X: 0, Y: 30, Width: 320, Height: 180}
	if result.VideoRect != expected {
		t.Errorf("expected %v, got %v", expected, result.VideoRect)
	}

	data, err := fs.ReadFile(sink.Path(1))
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	snap, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if snap.Bounds().Dx() != 320 || snap.Bounds().Dy() != 240 {
		t.Errorf("expected 320x240 snapshot, got %v", snap.Bounds())
	}

	// Letterbox bar stays black; the desaturated green frame is gray.
	if br, bg, bb, _ := snap.At(160, 10).RGBA(); br != 0 || bg != 0 || bb != 0 {
		t.Errorf("expected black bar, got %d %d %d", br>>8, bg>>8, bb>>8)
	}
	vr, vg, vb, _ := snap.At(160, 200).RGBA()
	if vr != vg || vg != vb || vr == 0 {
		t.Errorf("expected gray video pixel, got %d %d %d", vr>>8, vg>>8, vb>>8)
	}
}
