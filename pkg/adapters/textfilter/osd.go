package textfilter

import (
	"fmt"
	"image/draw"
	"strings"
	"time"

	"github.com/user/videoout/pkg/media"
	"github.com/user/videoout/pkg/ports"
)

// OSD shows the timestamp, frame index, size and format of the current frame
// in the top left corner of the video rectangle.
type OSD struct {
	style painter
	label string
	info  ports.OSDInfo
	seen  bool
}

// NewOSD creates an OSD. label is prepended to the frame state when not empty.
func NewOSD(label string, style Style) *OSD {
	return &OSD{label: label, style: painter{Style: style}}
}

func (o *OSD) Name() string {
	return "osd"
}

// Update implements ports.OSDFilter.
func (o *OSD) Update(info ports.OSDInfo) {
	o.info = info
	o.seen = true
}

// Text returns the line drawn for the last update.
func (o *OSD) Text() string {
	var parts []string
	if o.label != "" {
		parts = append(parts, o.label)
	}
	if o.seen {
		parts = append(parts,
			formatTimestamp(o.info.Timestamp),
			fmt.Sprintf("#%d", o.info.FrameIndex),
			o.info.FrameSize.String(),
			o.info.Format.String(),
		)
	}
	return strings.Join(parts, "  ")
}

func (o *OSD) Draw(surface draw.Image, videoRect media.Rect) error {
	text := o.Text()
	if text == "" || videoRect.IsEmpty() {
		return nil
	}
	dc, err := o.style.context(surface)
	if err != nil {
		return err
	}

	x := float64(videoRect.X) + o.style.Margin
	y := float64(videoRect.Y) + o.style.Margin
	if o.style.Shadow != nil {
		dc.SetColor(o.style.Shadow)
		dc.DrawStringAnchored(text, x+1, y+1, 0, 1)
	}
	dc.SetColor(o.style.textColor())
	dc.DrawStringAnchored(text, x, y, 0, 1)
	return nil
}

// formatTimestamp renders d as HH:MM:SS.mmm.
func formatTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	return fmt.Sprintf("%02d:%02d:%02d.%03d", ms/3600000, ms/60000%60, ms/1000%60, ms%1000)
}

var _ ports.OSDFilter = (*OSD)(nil)
