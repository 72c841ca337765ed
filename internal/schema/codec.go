package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the textual representation of an envelope.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a user-facing name onto a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want json or yaml)", name)
	}
}

// FormatFor picks the decoder for a document from its declared content type,
// then its file extension, then its first significant byte.
func FormatFor(name, contentType string, data []byte) Format {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		switch {
		case strings.Contains(mediaType, "yaml"):
			return FormatYAML
		case strings.HasSuffix(mediaType, "json"):
			return FormatJSON
		}
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}
	return FormatYAML
}

// Decode parses data into the loosely typed shape the envelope gate expects.
func Decode(data []byte, format Format) (any, error) {
	var out any
	switch format {
	case FormatYAML:
		var root yaml.Node
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("not a valid YAML document: %w", err)
		}
		if root.Kind == 0 {
			return nil, nil
		}
		keepTimestampsAsText(&root)
		if err := root.Decode(&out); err != nil {
			return nil, fmt.Errorf("not a valid YAML document: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("not a valid JSON document: %w", err)
		}
	}
	return out, nil
}

// keepTimestampsAsText retags unquoted timestamp scalars as strings so they reach
// the envelope gate with their original text instead of as time.Time values.
func keepTimestampsAsText(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode && n.ShortTag() == "!!timestamp" && n.Style&yaml.TaggedStyle == 0 {
		n.Tag = "!!str"
		n.Style = yaml.DoubleQuotedStyle
	}
	for _, child := range n.Content {
		keepTimestampsAsText(child)
	}
}

// Encode serializes env. JSON output is indented with two spaces.
func Encode(env Envelope, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(env); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
	default:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(env); err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
	}
	return buf.Bytes(), nil
}
