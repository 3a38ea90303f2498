package media

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// SVG is a sanitized SVG document ready for rasterization.
type SVG struct {
	Width   string
	Height  string
	ViewBox string
	Data    []byte
}

// elements whose content is executable or otherwise outside the
// supported subset.
var (
	scriptElements      = map[string]bool{"script": true}
	unsupportedElements = map[string]bool{
		"foreignObject": true,
		"animate":       true,
		"animateMotion": true,
		"animateColor":  true,
		"set":           true,
	}
)

// ParseSVG validates an SVG document against the security policy:
// scripts are rejected with ScriptDetectedError, references to
// external resources with ExternalResourceError, and documents outside
// the supported subset with UnsupportedFeatureError. Malformed XML
// yields InvalidSVGError.
func ParseSVG(data []byte) (*SVG, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var (
		sawSVG bool
		out    SVG
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &InvalidSVGError{Reason: err.Error()}
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		name := start.Name.Local
		if scriptElements[name] {
			return nil, &ScriptDetectedError{}
		}
		if unsupportedElements[name] {
			return nil, &UnsupportedFeatureError{Feature: name}
		}

		for _, attr := range start.Attr {
			if err := checkAttr(attr); err != nil {
				return nil, err
			}
		}

		if name == "svg" && !sawSVG {
			sawSVG = true
			for _, attr := range start.Attr {
				switch attr.Name.Local {
				case "width":
					out.Width = attr.Value
				case "height":
					out.Height = attr.Value
				case "viewBox":
					out.ViewBox = attr.Value
				}
			}
		}
	}

	if !sawSVG {
		return nil, &InvalidSVGError{Reason: "no <svg> root element"}
	}
	out.Data = data
	return &out, nil
}

func checkAttr(attr xml.Attr) error {
	name := strings.ToLower(attr.Name.Local)
	val := strings.TrimSpace(attr.Value)
	lower := strings.ToLower(val)

	// Event handlers (onload, onclick, ...) are script vectors.
	if strings.HasPrefix(name, "on") {
		return &ScriptDetectedError{}
	}
	if strings.HasPrefix(lower, "javascript:") {
		return &ScriptDetectedError{}
	}

	if name == "href" {
		if url, external := externalURL(lower, val); external {
			return &ExternalResourceError{URL: url}
		}
	}
	// url(...) references in styles and paint attributes.
	if idx := strings.Index(lower, "url("); idx >= 0 {
		ref := strings.TrimSpace(val[idx+4:])
		ref = strings.Trim(ref, `)'"`)
		if url, external := externalURL(strings.ToLower(ref), ref); external {
			return &ExternalResourceError{URL: url}
		}
	}
	return nil
}

func externalURL(lower, original string) (string, bool) {
	if strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "//") {
		return original, true
	}
	return "", false
}
