package blackfriday

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

// replacePolicy is a tight bluemonday policy used for safe_mode=replace:
// the markup is stripped rather than re-encoded; no placeholder text is
// put in its place.
var replacePolicy = bluemonday.StrictPolicy()

// escapePolicy is an empty bluemonday policy; sanitizeHTML does not use
// it. safe_mode=escape entity-encodes the fragment with html.EscapeString,
// so the reader still sees the literal markup as text.
var escapePolicy = bluemonday.NewPolicy()

// sanitizeHTML applies the configured safe mode to a raw HTML fragment
// captured by the hash-shielding pass. Grounded on
// markdown2.py::_sanitize_html, reimplemented on bluemonday for a real
// sanitization boundary — see DESIGN.md.
func sanitizeHTML(raw string, mode SafeMode) string {
	switch mode {
	case SafeModeReplace:
		cleaned := replacePolicy.Sanitize(raw)
		if cleaned == "" {
			return ""
		}
		return cleaned
	case SafeModeEscape:
		return html.EscapeString(raw)
	default:
		return raw
	}
}
