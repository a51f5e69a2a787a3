package mocks

import (
	"image/draw"

	"github.com/user/videoout/pkg/media"
	"github.com/user/videoout/pkg/ports"
)

// Filter is a mock ports.OSDFilter.
type Filter struct {
	FilterName string
	DrawFunc   func(surface draw.Image, videoRect media.Rect) error

	Draws   []media.Rect
	Updates []ports.OSDInfo
}

func (m *Filter) Name() string {
	return m.FilterName
}

func (m *Filter) Draw(surface draw.Image, videoRect media.Rect) error {
	m.Draws = append(m.Draws, videoRect)
	if m.DrawFunc != nil {
		return m.DrawFunc(surface, videoRect)
	}
	return nil
}

func (m *Filter) Update(info ports.OSDInfo) {
	m.Updates = append(m.Updates, info)
}

var _ ports.OSDFilter = (*Filter)(nil)
