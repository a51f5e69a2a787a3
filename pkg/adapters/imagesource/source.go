// Package imagesource decodes still images into frames.
package imagesource

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/user/videoout/pkg/adapters/logger"
	"github.com/user/videoout/pkg/media"
	"github.com/user/videoout/pkg/ports"
)

// ErrUnsupportedImage is returned for files no registered decoder accepts.
var ErrUnsupportedImage = errors.New("unsupported image")

// DefaultFrameRate spaces frame timestamps when none is configured.
const DefaultFrameRate = 25.0

// Source implements ports.FrameSource over image files.
type Source struct {
	fs       ports.FileSystem
	interval time.Duration
	log      ports.Logger
}

// New creates a Source. Frame i gets timestamp i/fps.
func New(fs ports.FileSystem, fps float64, log ports.Logger) *Source {
	if fps <= 0 {
		fps = DefaultFrameRate
	}
	if log == nil {
		log = logger.NewNoop()
	}
	return &Source{
		fs:       fs,
		interval: time.Duration(float64(time.Second) / fps),
		log:      log.WithComponent("imagesource"),
	}
}

// Frames decodes each path in order. The first failure aborts.
func (s *Source) Frames(ctx context.Context, paths []string) ([]media.Frame, error) {
	frames := make([]media.Frame, 0, len(paths))
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return frames, err
		}
		img, err := s.decode(path)
		if err != nil {
			return frames, err
		}
		frame := media.NewFrame(img, time.Duration(i)*s.interval)
		s.log.Debug("Decoded %s: %s %s", path, frame.Size(), frame.Format)
		frames = append(frames, frame)
	}
	return frames, nil
}

func (s *Source) decode(path string) (image.Image, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if errors.Is(err, image.ErrFormat) {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedImage)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

var _ ports.FrameSource = (*Source)(nil)
