package renderer

import "github.com/user/videoout/pkg/ports"

// SetOSDFilter installs the on-screen display filter, nil to disable it.
// The previous filter is returned and belongs to the caller again.
func (r *Renderer) SetOSDFilter(f ports.OSDFilter) ports.OSDFilter {
	old := r.osd
	r.osd = f
	return old
}

// OSDFilter returns the installed on-screen display filter.
func (r *Renderer) OSDFilter() ports.OSDFilter {
	return r.osd
}

// SetSubtitleFilter installs the subtitle filter, nil to disable it.
// The previous filter is returned and belongs to the caller again.
func (r *Renderer) SetSubtitleFilter(f ports.Filter) ports.Filter {
	old := r.subtitle
	r.subtitle = f
	return old
}

// SubtitleFilter returns the installed subtitle filter.
func (r *Renderer) SubtitleFilter() ports.Filter {
	return r.subtitle
}

// EnableDefaultEventFilter toggles the backend's default input handling.
func (r *Renderer) EnableDefaultEventFilter(enable bool) {
	r.defaultEventFilter = enable
}

// IsDefaultEventFilterEnabled reports whether default input handling is on.
func (r *Renderer) IsDefaultEventFilterEnabled() bool {
	return r.defaultEventFilter
}
