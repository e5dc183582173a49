package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format selects the decoder used by Decode and File.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFor picks a format from a file extension (.json, .yaml, .yml).
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("source: unsupported file extension %q", filepath.Ext(path))
	}
}

// Decode decodes b in the given format.
func Decode(b []byte, f Format) (any, error) {
	switch f {
	case FormatJSON:
		return JSON(b)
	case FormatYAML:
		return YAML(b)
	default:
		return nil, fmt.Errorf("source: unknown format %d", f)
	}
}

// File reads and decodes the file at path, choosing the format from its extension.
func File(path string) (any, error) {
	f, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("source: read %s: %w", path, err)
	}
	return Decode(b, f)
}
