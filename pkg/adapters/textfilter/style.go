// Package textfilter provides OSD and subtitle filters that draw text with gg.
package textfilter

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Style controls how text is drawn.
type Style struct {
	Color  color.Color
	Shadow color.Color // nil disables the shadow

	// FontPath is a TrueType font. Empty uses gg's built-in 7x13 face.
	FontPath string
	FontSize float64

	// Margin is the distance from the video rectangle edges in pixels.
	Margin float64
}

// DefaultStyle is white text with a black shadow.
func DefaultStyle() Style {
	return Style{
		Color:    color.White,
		Shadow:   color.Black,
		FontSize: 16,
		Margin:   8,
	}
}

// painter holds a Style and the font face parsed from it. The face is
// loaded on the first draw and reused, as is a load error.
type painter struct {
	Style

	face   font.Face
	err    error
	loaded bool
}

// context wraps surface in a gg context with the style's font set.
func (p *painter) context(surface draw.Image) (*gg.Context, error) {
	rgba, ok := surface.(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("unsupported surface type %T", surface)
	}
	dc := gg.NewContextForRGBA(rgba)
	if p.FontPath == "" {
		return dc, nil
	}
	if !p.loaded {
		p.loaded = true
		p.face, p.err = gg.LoadFontFace(p.FontPath, p.fontSize())
		if p.err != nil {
			p.err = fmt.Errorf("load font %s: %w", p.FontPath, p.err)
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	dc.SetFontFace(p.face)
	return dc, nil
}

func (s Style) fontSize() float64 {
	if s.FontSize <= 0 {
		return 16
	}
	return s.FontSize
}

func (s Style) textColor() color.Color {
	if s.Color == nil {
		return color.White
	}
	return s.Color
}
