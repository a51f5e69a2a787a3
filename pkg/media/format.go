package media

import (
	"image"
	"strings"
)

// PixelFormat identifies the memory layout of frame pixels.
type PixelFormat int

const (
	FormatInvalid PixelFormat = iota
	FormatRGB32               // 0xffRRGGBB, native endian
	FormatARGB32
	FormatRGBA
	FormatBGRA
	FormatRGB24
	FormatRGB565
	FormatGray8
	FormatYUV420P
	FormatNV12
	FormatYUV422P
)

var formatNames = map[PixelFormat]string{
	FormatInvalid: "invalid",
	FormatRGB32:   "rgb32",
	FormatARGB32:  "argb32",
	FormatRGBA:    "rgba",
	FormatBGRA:    "bgra",
	FormatRGB24:   "rgb24",
	FormatRGB565:  "rgb565",
	FormatGray8:   "gray8",
	FormatYUV420P: "yuv420p",
	FormatNV12:    "nv12",
	FormatYUV422P: "yuv422p",
}

// String returns the lower-case name of the format.
func (f PixelFormat) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParsePixelFormat parses a format name. Unknown names yield FormatInvalid.
func ParsePixelFormat(s string) PixelFormat {
	s = strings.ToLower(strings.TrimSpace(s))
	for f, name := range formatNames {
		if name == s {
			return f
		}
	}
	return FormatInvalid
}

// IsValid reports whether f names a real format.
func (f PixelFormat) IsValid() bool {
	return f > FormatInvalid && f <= FormatYUV422P
}

// IsRGB reports whether the format is a packed RGB family format.
func (f PixelFormat) IsRGB() bool {
	switch f {
	case FormatRGB32, FormatARGB32, FormatRGBA, FormatBGRA, FormatRGB24, FormatRGB565:
		return true
	}
	return false
}

// IsPlanar reports whether the format stores components in separate planes.
func (f PixelFormat) IsPlanar() bool {
	switch f {
	case FormatYUV420P, FormatNV12, FormatYUV422P:
		return true
	}
	return false
}

// BitsPerPixel returns the average storage cost of one pixel.
func (f PixelFormat) BitsPerPixel() int {
	switch f {
	case FormatRGB32, FormatARGB32, FormatRGBA, FormatBGRA:
		return 32
	case FormatRGB24:
		return 24
	case FormatRGB565, FormatYUV422P:
		return 16
	case FormatYUV420P, FormatNV12:
		return 12
	case FormatGray8:
		return 8
	default:
		return 0
	}
}

// FormatOf infers the pixel format of a Go image value.
func FormatOf(img image.Image) PixelFormat {
	switch m := img.(type) {
	case *image.RGBA:
		return FormatRGBA
	case *image.NRGBA:
		return FormatARGB32
	case *image.Gray:
		return FormatGray8
	case *image.YCbCr:
		switch m.SubsampleRatio {
		case image.YCbCrSubsampleRatio420:
			return FormatYUV420P
		case image.YCbCrSubsampleRatio422:
			return FormatYUV422P
		}
		return FormatInvalid
	case nil:
		return FormatInvalid
	default:
		return FormatRGB32
	}
}
