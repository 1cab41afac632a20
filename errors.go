package glyphatlas

import "errors"

// Sentinel errors for the glyphatlas package.
var (
	// ErrOutOfSpace is returned by Pack when the packer has no room for the
	// requested rectangle. The builder is left unchanged; the caller decides
	// whether to start a new, larger atlas.
	ErrOutOfSpace = errors.New("glyphatlas: no space left in atlas")

	// ErrUploadFailed is returned by Finalize when the slot descriptor
	// buffer cannot be allocated or written. Builder state is left intact
	// and Finalize may be retried.
	ErrUploadFailed = errors.New("glyphatlas: descriptor buffer upload failed")

	// ErrNoHALProvider is returned by DeviceFromProvider when the provider
	// does not expose wgpu/hal device and queue handles.
	ErrNoHALProvider = errors.New("glyphatlas: provider does not expose HAL types")

	// ErrMissingRange is returned by Finalize when the outline source has
	// no geometry index range for a packed slot. This indicates the source
	// and the builder were not fed the same glyph sequence.
	ErrMissingRange = errors.New("glyphatlas: outline source has no index range for slot")
)

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "glyphatlas: invalid config." + e.Field + ": " + e.Reason
}
