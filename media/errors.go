// Package media loads raster images for components and screens SVG
// documents before they reach the render pipeline. SVG handling is
// strict: scripts never execute and external resources are never
// fetched.
package media

import "fmt"

// UnsupportedFormatError reports an image format the loader does not
// decode.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported media format %q", e.Format)
}

// InvalidDataError reports media data that failed to decode.
type InvalidDataError struct {
	Reason string
}

func (e *InvalidDataError) Error() string {
	return fmt.Sprintf("invalid media data: %s", e.Reason)
}

// LoadFailedError reports an I/O failure while loading media.
type LoadFailedError struct {
	Reason string
}

func (e *LoadFailedError) Error() string {
	return fmt.Sprintf("media load failed: %s", e.Reason)
}

// InvalidSVGError reports a document that is not well-formed SVG.
type InvalidSVGError struct {
	Reason string
}

func (e *InvalidSVGError) Error() string {
	return fmt.Sprintf("invalid svg: %s", e.Reason)
}

// UnsupportedFeatureError reports an SVG feature outside the supported
// subset.
type UnsupportedFeatureError struct {
	Feature string
}

func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("unsupported svg feature %q", e.Feature)
}

// ScriptDetectedError reports script content in an SVG document.
// Scripts are never executed.
type ScriptDetectedError struct{}

func (*ScriptDetectedError) Error() string {
	return "svg contains script content"
}

// ExternalResourceError reports a reference to an external resource in
// an SVG document. External resources are never fetched.
type ExternalResourceError struct {
	URL string
}

func (e *ExternalResourceError) Error() string {
	return fmt.Sprintf("svg references blocked external resource %q", e.URL)
}
