package textfilter

import (
	"image/draw"

	"github.com/fogleman/gg"

	"github.com/user/videoout/pkg/media"
	"github.com/user/videoout/pkg/ports"
)

// Subtitle draws centered text along the bottom of the video rectangle,
// wrapped to its width.
type Subtitle struct {
	style painter
	text  string
}

// NewSubtitle creates a Subtitle showing text.
func NewSubtitle(text string, style Style) *Subtitle {
	return &Subtitle{style: painter{Style: style}, text: text}
}

func (s *Subtitle) Name() string {
	return "subtitle"
}

// SetText replaces the shown text. Empty hides the subtitle.
func (s *Subtitle) SetText(text string) {
	s.text = text
}

// Text returns the shown text.
func (s *Subtitle) Text() string {
	return s.text
}

func (s *Subtitle) Draw(surface draw.Image, videoRect media.Rect) error {
	if s.text == "" || videoRect.IsEmpty() {
		return nil
	}
	dc, err := s.style.context(surface)
	if err != nil {
		return err
	}

	width := float64(videoRect.Width) - 2*s.style.Margin
	if width <= 0 {
		return nil
	}
	x := float64(videoRect.X) + float64(videoRect.Width)/2
	y := float64(videoRect.Y+videoRect.Height) - s.style.Margin

	if s.style.Shadow != nil {
		dc.SetColor(s.style.Shadow)
		dc.DrawStringWrapped(s.text, x+1, y+1, 0.5, 1, width, 1.2, gg.AlignCenter)
	}
	dc.SetColor(s.style.textColor())
	dc.DrawStringWrapped(s.text, x, y, 0.5, 1, width, 1.2, gg.AlignCenter)
	return nil
}

var _ ports.Filter = (*Subtitle)(nil)
