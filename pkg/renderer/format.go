package renderer

import "github.com/user/videoout/pkg/media"

// SetPreferredPixelFormat sets the format frames are converted to when the
// decoded format cannot be used. Formats the backend does not support are
// rejected and leave the preference unchanged.
func (r *Renderer) SetPreferredPixelFormat(format media.PixelFormat) bool {
	if !r.backend.IsSupported(format) {
		r.log.Debug("Rejected preferred pixel format %s", format)
		return false
	}
	r.preferredFormat = format
	return true
}

// PreferredPixelFormat returns the preferred format.
func (r *Renderer) PreferredPixelFormat() media.PixelFormat {
	return r.preferredFormat
}

// ForcePreferredPixelFormat makes every frame use the preferred format, even
// when its decoded format is supported.
func (r *Renderer) ForcePreferredPixelFormat(force bool) {
	r.forceFormat = force
}

// IsPreferredPixelFormatForced reports whether the preferred format is forced.
func (r *Renderer) IsPreferredPixelFormatForced() bool {
	return r.forceFormat
}

// NegotiatePixelFormat picks the format a frame decoded as native should be
// handed to the backend in. The second result is false when even the
// fallback is unsupported.
func (r *Renderer) NegotiatePixelFormat(native media.PixelFormat) (media.PixelFormat, bool) {
	if !r.forceFormat && native.IsValid() && r.backend.IsSupported(native) {
		return native, true
	}
	if r.backend.IsSupported(r.preferredFormat) {
		return r.preferredFormat, true
	}
	return media.FormatInvalid, false
}

// NegotiatedPixelFormat returns the format chosen for the current frame.
func (r *Renderer) NegotiatedPixelFormat() media.PixelFormat {
	return r.negotiatedFormat
}
