package blackfriday

import (
	"strings"

	"gopkg.in/yaml.v3"
)

var reMetaFence = mustRE2m(`\A---[ \t]*\n((?s:.*?))\n---[ \t]*\n`)
var reMetaBare = mustRE2m(`\A(?:[\w.-]+[ \t]*:.*\n)+\n`)

// extractMetadata removes a leading metadata block from text (either a
// "---"-fenced YAML-like block, or a bare run of "key: value" lines
// terminated by a blank line) and returns the remaining text plus the
// decoded metadata map. Structured (multi-line) values are decoded with
// a real YAML parser since the grammar markdown2.py accepts for them is
// YAML-compatible. Grounded on markdown2.py::_extract_metadata.
func extractMetadata(text string) (string, map[string]any, error) {
	if m := reMetaFence.FindStringSubmatch(text); m != nil {
		rest := text[len(m[0]):]
		meta, err := decodeMetadataBlock(m[1])
		return rest, meta, err
	}
	if m := reMetaBare.FindStringSubmatch(text); m != nil {
		block := strings.TrimRight(m[0], "\n")
		rest := text[len(m[0]):]
		meta, err := decodeMetadataBlock(block)
		return rest, meta, err
	}
	return text, map[string]any{}, nil
}

func decodeMetadataBlock(block string) (map[string]any, error) {
	meta := map[string]any{}
	if strings.TrimSpace(block) == "" {
		return meta, nil
	}
	var raw map[string]any
	if err := yaml.Unmarshal([]byte(block), &raw); err != nil {
		// Fall back to a plain key:value per-line scan for blocks that
		// aren't valid YAML (e.g. un-quoted values containing ':').
		for _, line := range strings.Split(block, "\n") {
			idx := strings.Index(line, ":")
			if idx < 0 {
				continue
			}
			key := strings.TrimSpace(line[:idx])
			val := strings.TrimSpace(line[idx+1:])
			if key != "" {
				meta[key] = val
			}
		}
		return meta, nil
	}
	for k, v := range raw {
		meta[k] = v
	}
	return meta, nil
}
