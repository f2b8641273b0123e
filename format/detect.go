// Package format provides input format detection for the estado library.
package format

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// OCRJSON indicates an OCR document in the upstream JSON shape.
	OCRJSON
	// HOCR indicates a Tesseract hOCR HTML document.
	HOCR
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case OCRJSON:
		return "OCR JSON"
	case HOCR:
		return "hOCR"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case OCRJSON:
		return ".json"
	case HOCR:
		return ".html"
	default:
		return ""
	}
}

// Detect determines input format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return OCRJSON
	case ".html", ".htm", ".hocr", ".xml":
		return HOCR
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading bytes to determine format.
// This provides more reliable detection than extension-based detection.
// Returns Unknown if the format cannot be determined from content alone.
func DetectFromMagic(data []byte) Format {
	data = trimLeading(data)
	if len(data) == 0 {
		return Unknown
	}

	// JSON documents open with an object or array
	if data[0] == '{' || data[0] == '[' {
		return OCRJSON
	}

	// hOCR is HTML, usually with an XML declaration in front
	if detectHTMLMagic(data) {
		return HOCR
	}

	return Unknown
}

// trimLeading strips a UTF-8 byte order mark and leading whitespace.
func trimLeading(data []byte) []byte {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		data = data[3:]
	}
	start := 0
	for start < len(data) && (data[start] == ' ' || data[start] == '\t' || data[start] == '\n' || data[start] == '\r') {
		start++
	}
	return data[start:]
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	upper := strings.ToUpper(string(data))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// XML declaration followed by html-like content is hOCR's usual preamble
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper[:min(500, len(upper))], "<HTML") {
		return true
	}

	return false
}

// DetectFromReader inspects leading content to determine format.
// Returns Unknown, not an error, when the content is ambiguous.
func DetectFromReader(r io.Reader) (Format, error) {
	magic := make([]byte, 512)
	n, err := io.ReadFull(r, magic)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}

// DetectFile determines the format of the file at path, inspecting content
// first and falling back to the extension when the content is ambiguous.
func DetectFile(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return Unknown, err
	}
	defer f.Close()

	detected, err := DetectFromReader(f)
	if err != nil {
		return Unknown, err
	}
	if detected != Unknown {
		return detected, nil
	}
	return Detect(path), nil
}
