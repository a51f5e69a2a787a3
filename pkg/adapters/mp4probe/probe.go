// Package mp4probe reads the codec and frame size of the video track of an
// MP4 file without decoding any sample.
package mp4probe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Eyevinn/mp4ff/mp4"

	"github.com/user/videoout/pkg/media"
	"github.com/user/videoout/pkg/ports"
)

// ErrNoVideoTrack is returned when the file has no usable video track.
var ErrNoVideoTrack = errors.New("no video track found")

// Codec names the compression format of a video track.
type Codec string

const (
	CodecH264    Codec = "h264"
	CodecHEVC    Codec = "hevc"
	CodecAV1     Codec = "av1"
	CodecVP9     Codec = "vp9"
	CodecUnknown Codec = "unknown"
)

func codecOf(sampleEntry string) Codec {
	switch sampleEntry {
	case "avc1", "avc3":
		return CodecH264
	case "hvc1", "hev1":
		return CodecHEVC
	case "av01":
		return CodecAV1
	case "vp09":
		return CodecVP9
	default:
		return CodecUnknown
	}
}

// Info describes the first video track.
type Info struct {
	TrackID     uint32
	Codec       Codec
	SampleEntry string
	Size        media.Size
	Timescale   uint32
	// Duration comes from the media header and is usually zero for
	// fragmented files.
	Duration   time.Duration
	Fragmented bool
}

// ProbeFile probes path through fs.
func ProbeFile(fs ports.FileSystem, path string) (Info, error) {
	f, err := fs.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return Probe(f)
}

// ProbeBytes probes MP4 data held in memory.
func ProbeBytes(data []byte) (Info, error) {
	return Probe(bytes.NewReader(data))
}

// Probe decodes the box structure from reader and inspects its tracks.
// The reader is rewound afterwards.
func Probe(reader io.ReadSeeker) (Info, error) {
	file, err := mp4.DecodeFile(reader)
	if err != nil {
		return Info{}, fmt.Errorf("decode mp4: %w", err)
	}
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return Info{}, fmt.Errorf("seek: %w", err)
	}

	var moov *mp4.MoovBox
	switch {
	case file.Moov != nil:
		moov = file.Moov
	case file.Init != nil && file.Init.Moov != nil:
		moov = file.Init.Moov
	default:
		return Info{}, ErrNoVideoTrack
	}

	for _, trak := range moov.Traks {
		if info, ok := probeTrack(trak); ok {
			info.Fragmented = file.IsFragmented()
			return info, nil
		}
	}
	return Info{}, ErrNoVideoTrack
}

func probeTrack(trak *mp4.TrakBox) (Info, bool) {
	if trak.Mdia == nil || trak.Mdia.Hdlr == nil || trak.Mdia.Hdlr.HandlerType != "vide" {
		return Info{}, false
	}
	if trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil || trak.Mdia.Minf.Stbl.Stsd == nil {
		return Info{}, false
	}

	for _, child := range trak.Mdia.Minf.Stbl.Stsd.Children {
		entry, ok := child.(*mp4.VisualSampleEntryBox)
		if !ok {
			continue
		}
		info := Info{
			Codec:       codecOf(entry.Type()),
			SampleEntry: entry.Type(),
			Size:        media.Size{Width: int(entry.Width), Height: int(entry.Height)},
		}
		if trak.Tkhd != nil {
			info.TrackID = trak.Tkhd.TrackID
		}
		if mdhd := trak.Mdia.Mdhd; mdhd != nil && mdhd.Timescale > 0 {
			info.Timescale = mdhd.Timescale
			info.Duration = time.Duration(mdhd.Duration) * time.Second / time.Duration(mdhd.Timescale)
		}
		return info, true
	}
	return Info{}, false
}
