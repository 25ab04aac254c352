// Package format provides file format detection for the cadcodec library.
package format

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// DXF indicates CAD interchange text.
	DXF
	// Script indicates a procedural command script.
	Script
	// JSON indicates a JSON document value.
	JSON
	// YAML indicates a YAML document value.
	YAML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case DXF:
		return "DXF"
	case Script:
		return "Script"
	case JSON:
		return "JSON"
	case YAML:
		return "YAML"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case DXF:
		return ".dxf"
	case Script:
		return ".scr"
	case JSON:
		return ".json"
	case YAML:
		return ".yaml"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".dxf":
		return DXF
	case ".scr":
		return Script
	case ".json":
		return JSON
	case ".yaml", ".yml":
		return YAML
	default:
		return Unknown
	}
}

// ParseTarget maps a format name as given on a command line ("dxf",
// "script", "json", ...) to a Format.
func ParseTarget(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dxf":
		return DXF, nil
	case "script", "scr":
		return Script, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return Unknown, fmt.Errorf("unknown format %q (want dxf, script, json or yaml)", name)
	}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DetectFromMagic inspects the first lines of data to determine format.
// This provides more reliable detection than extension-based detection.
// Returns Unknown if the format cannot be determined.
func DetectFromMagic(data []byte) Format {
	data = bytes.TrimPrefix(data, utf8BOM)
	lines := firstLines(data, 2)
	if len(lines) == 0 {
		return Unknown
	}

	first := lines[0]
	switch {
	case strings.HasPrefix(first, "{"):
		return JSON
	case first == "999":
		// DXF comment group
		return DXF
	case first == "0" && len(lines) > 1 && lines[1] == "SECTION":
		return DXF
	case first == "---" || strings.HasPrefix(first, "entities:") || strings.HasPrefix(first, "metadata:"):
		return YAML
	case isScriptCommand(first):
		return Script
	}

	return Unknown
}

// DetectFromReader reads the head of r and determines the format from its
// content.
func DetectFromReader(r io.Reader) (Format, error) {
	magic := make([]byte, 512)
	n, err := io.ReadFull(r, magic)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}

// firstLines returns up to n non-blank trimmed lines from the start of data.
func firstLines(data []byte, n int) []string {
	var out []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for len(out) < n && sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func isScriptCommand(line string) bool {
	word, _, _ := strings.Cut(line, " ")
	switch strings.ToUpper(word) {
	case "LINE", "-INSERT", "CIRCLE", "PLINE":
		return true
	default:
		return false
	}
}
