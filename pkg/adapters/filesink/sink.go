// Package filesink writes snapshots as numbered image files.
package filesink

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/user/videoout/pkg/ports"
)

// Format is the encoding used for snapshot files.
type Format int

const (
	FormatPNG Format = iota
	FormatJPEG
)

// ParseFormat parses "png", "jpeg" or "jpg".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	default:
		return FormatPNG, fmt.Errorf("unsupported snapshot format: %q", s)
	}
}

func (f Format) ext() string {
	if f == FormatJPEG {
		return "jpg"
	}
	return "png"
}

// Sink saves snapshots under a base directory.
type Sink struct {
	baseDir string
	fs      ports.FileSystem
	format  Format
	quality int
}

// New creates a Sink. quality only applies to JPEG.
func New(baseDir string, fs ports.FileSystem, format Format, quality int) *Sink {
	if quality <= 0 || quality > 100 {
		quality = 90
	}
	return &Sink{
		baseDir: baseDir,
		fs:      fs,
		format:  format,
		quality: quality,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// Path returns the file a snapshot index is written to.
func (s *Sink) Path(index int) string {
	return filepath.Join(s.baseDir, fmt.Sprintf("frame-%04d.%s", index, s.format.ext()))
}

// SaveSnapshot encodes img and writes it to Path(index).
func (s *Sink) SaveSnapshot(index int, img image.Image) error {
	if err := s.fs.MkdirAll(s.baseDir); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	var buf bytes.Buffer
	switch s.format {
	case FormatJPEG:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: s.quality}); err != nil {
			return fmt.Errorf("encode JPEG: %w", err)
		}
	default:
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("encode PNG: %w", err)
		}
	}
	return s.fs.WriteFile(s.Path(index), buf.Bytes())
}

var _ ports.SnapshotSink = (*Sink)(nil)
