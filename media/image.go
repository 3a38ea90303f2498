package media

import (
	"bytes"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"

	// Register decoders beyond the stdlib formats.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// magic numbers for format sniffing.
var signatures = []struct {
	format string
	offset int
	magic  []byte
}{
	{"png", 0, []byte{0x89, 'P', 'N', 'G'}},
	{"jpeg", 0, []byte{0xff, 0xd8, 0xff}},
	{"gif", 0, []byte("GIF8")},
	{"bmp", 0, []byte("BM")},
	{"tiff", 0, []byte("II*\x00")},
	{"tiff", 0, []byte("MM\x00*")},
	{"webp", 8, []byte("WEBP")},
}

// DetectFormat sniffs the image format from leading bytes. It returns
// an UnsupportedFormatError for anything it does not recognize.
func DetectFormat(data []byte) (string, error) {
	for _, sig := range signatures {
		end := sig.offset + len(sig.magic)
		if len(data) >= end && bytes.Equal(data[sig.offset:end], sig.magic) {
			return sig.format, nil
		}
	}
	return "", &UnsupportedFormatError{Format: "unknown"}
}

// Decode reads and decodes an image, sniffing its format first. It
// fails with UnsupportedFormatError for unknown formats and
// InvalidDataError for recognized data that does not decode.
func Decode(r io.Reader) (image.Image, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", &LoadFailedError{Reason: err.Error()}
	}

	format, err := DetectFormat(data)
	if err != nil {
		return nil, "", err
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, format, &InvalidDataError{Reason: err.Error()}
	}
	return img, format, nil
}

// LoadFile decodes the image at path.
func LoadFile(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", &LoadFailedError{Reason: err.Error()}
	}
	defer f.Close()
	return Decode(f)
}
