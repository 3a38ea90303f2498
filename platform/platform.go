// Package platform identifies the host operating system so the backend
// factory can select the matching render, window and screen-reader
// backends at runtime.
package platform

import "runtime"

// Platform enumerates the operating systems the toolkit knows how to
// back.
type Platform int

const (
	Unknown Platform = iota
	Windows
	MacOS
	Linux
	Android
	IOS
)

// dispatch maps runtime.GOOS values onto platforms. Anything absent
// resolves to Unknown.
var dispatch = map[string]Platform{
	"windows": Windows,
	"darwin":  MacOS,
	"linux":   Linux,
	"android": Android,
	"ios":     IOS,
}

var current = dispatch[runtime.GOOS]

// Current returns the platform of the host, resolved once from the
// build target.
func Current() Platform {
	return current
}

// IsSupported reports whether the toolkit ships a backend for p. Only
// Unknown is unsupported; it falls back to the stub backend.
func (p Platform) IsSupported() bool {
	return p != Unknown
}

// Name returns the canonical display string for p.
func (p Platform) Name() string {
	switch p {
	case Windows:
		return "Windows"
	case MacOS:
		return "macOS"
	case Linux:
		return "Linux"
	case Android:
		return "Android"
	case IOS:
		return "iOS"
	}
	return "Unknown"
}
