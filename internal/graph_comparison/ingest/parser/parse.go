package parser

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
)

// Parse reads a JSON document when b starts with an object, YAML otherwise.
func Parse(b []byte) (*YDocument, error) {
	if trimmed := bytes.TrimSpace(b); len(trimmed) > 0 && trimmed[0] == '{' {
		return ParseJSONBytes(trimmed)
	}
	return ParseYAMLBytes(b)
}

// ParseFile picks the decoder from the extension, sniffing unknown ones.
func ParseFile(path string) (*YDocument, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSONBytes(b)
	case ".yaml", ".yml":
		return ParseYAMLBytes(b)
	}
	return Parse(b)
}
