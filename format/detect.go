// Package format provides input format detection for scoreable documents.
package format

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// Format represents a supported input format.
type Format int

const (
	// Text indicates plain text, the fallback for anything unrecognized.
	Text Format = iota
	// Markdown indicates a Markdown document.
	Markdown
	// HTML indicates an HTML document.
	HTML
	// Image indicates a scanned page image (PNG, JPEG, TIFF, BMP or WebP).
	Image
)

// String returns the format's flag-value spelling.
func (f Format) String() string {
	switch f {
	case Markdown:
		return "md"
	case HTML:
		return "html"
	case Image:
		return "image"
	default:
		return "text"
	}
}

// Parse maps a flag value onto a Format.
func Parse(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text":
		return Text, nil
	case "md", "markdown":
		return Markdown, nil
	case "html":
		return HTML, nil
	case "image":
		return Image, nil
	}
	return Text, fmt.Errorf("unknown format %q", s)
}

// Detect determines the input format from a filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".md", ".markdown":
		return Markdown
	case ".html", ".htm":
		return HTML
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff", ".bmp", ".webp":
		return Image
	default:
		return Text
	}
}

// DetectFromMagic checks leading bytes to determine the format. This covers
// input with no usable filename, like stdin. Markdown has no magic and falls
// through to Text.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Text
	}

	switch {
	// PNG magic: \x89PNG
	case bytes.HasPrefix(data, []byte("\x89PNG")):
		return Image

	// JPEG magic: FF D8 FF
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return Image

	// TIFF magic, either byte order: II*\x00 or MM\x00*
	case bytes.HasPrefix(data, []byte("II*\x00")), bytes.HasPrefix(data, []byte("MM\x00*")):
		return Image

	// BMP magic: BM
	case bytes.HasPrefix(data, []byte("BM")):
		return Image

	// WebP sits in a RIFF container: RIFF....WEBP
	case len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return Image

	case looksLikeHTML(data):
		return HTML
	}

	return Text
}

// looksLikeHTML checks for document-level HTML signatures. A bare tag is
// not enough; prose about "<html>" should stay text.
func looksLikeHTML(data []byte) bool {
	start := 0
	for start < len(data) && (data[start] == ' ' || data[start] == '\t' || data[start] == '\n' || data[start] == '\r') {
		start++
	}
	if start >= len(data) {
		return false
	}

	upper := strings.ToUpper(string(data[start:min(start+512, len(data))]))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// XML declaration followed by html-like content could be XHTML
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper, "<HTML") {
		return true
	}

	return false
}
