package ggbackend

import (
	"image"
	"math"

	"github.com/user/videoout/pkg/media"
)

// applyAdjustments writes src with a applied into dst, reusing dst when the
// sizes match. All four values are in [-1, 1] with 0 meaning unchanged.
//
// Brightness shifts every channel by up to a full range. Contrast scales
// around mid gray by 1+c. Saturation mixes with the pixel's luma by 1+s.
// Hue rotates chroma in YIQ space by up to half a turn.
func applyAdjustments(dst, src *image.RGBA, a media.ColorAdjustments) *image.RGBA {
	if dst == nil || dst.Bounds() != src.Bounds() {
		dst = image.NewRGBA(src.Bounds())
	}

	offset := a.Brightness * 255
	contrast := 1 + a.Contrast
	saturation := 1 + a.Saturation
	sin, cos := math.Sincos(a.Hue * math.Pi)

	for i := 0; i+3 < len(src.Pix); i += 4 {
		r := float64(src.Pix[i])
		g := float64(src.Pix[i+1])
		b := float64(src.Pix[i+2])

		if a.Hue != 0 {
			y := 0.299*r + 0.587*g + 0.114*b
			ci := 0.596*r - 0.274*g - 0.322*b
			cq := 0.211*r - 0.523*g + 0.312*b
			ci, cq = ci*cos-cq*sin, ci*sin+cq*cos
			r = y + 0.956*ci + 0.621*cq
			g = y - 0.272*ci - 0.647*cq
			b = y - 1.106*ci + 1.703*cq
		}
		if a.Saturation != 0 {
			luma := 0.299*r + 0.587*g + 0.114*b
			r = luma + (r-luma)*saturation
			g = luma + (g-luma)*saturation
			b = luma + (b-luma)*saturation
		}

		dst.Pix[i] = channel((r-128)*contrast + 128 + offset)
		dst.Pix[i+1] = channel((g-128)*contrast + 128 + offset)
		dst.Pix[i+2] = channel((b-128)*contrast + 128 + offset)
		dst.Pix[i+3] = src.Pix[i+3]
	}
	return dst
}

func channel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
