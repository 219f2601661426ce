package blackfriday

import (
	"regexp"
	"strings"
)

var reBackslashEscape = regexp.MustCompile(`\\([\\` + "`" + `*_{}\[\]()>#+\-.!])`)

// encodeBackslashEscapes replaces "\X" for each escapable character X
// with that character's hash placeholder, shielding it from every later
// rewrite pass. Grounded on markdown2.py::_encode_backslash_escapes.
func encodeBackslashEscapes(doc *document, text string) string {
	return reBackslashEscape.ReplaceAllStringFunc(text, func(m string) string {
		c := m[1]
		if key, ok := doc.hashes.escapeTable[c]; ok {
			return key
		}
		return m
	})
}

// unescapeSpecialChars restores every escape placeholder back to its
// literal character, run in the UNHASH_HTML stage after all other
// stages have had a chance to avoid reinterpreting it.
func unescapeSpecialChars(doc *document, text string) string {
	for c, key := range doc.hashes.escapeTable {
		text = strings.ReplaceAll(text, key, string(c))
	}
	return text
}

var reAmpersand = regexp.MustCompile(`&(?:#?[xX]?(?:[0-9a-fA-F]+|\w+);)?`)

// encodeAmpsAndAngles amp-encodes bare '&' (one not already starting a
// valid entity) and angle-encodes bare '<' not recognized as the start
// of an auto-link or inline HTML tag, the span-gamut's last-resort
// escaping pass. Grounded on markdown2.py::_encode_amps_and_angles.
func encodeAmpsAndAngles(text string) string {
	text = reAmpersand.ReplaceAllStringFunc(text, func(m string) string {
		if m != "&" {
			return m // already an entity
		}
		return "&amp;"
	})
	var b strings.Builder
	for i := 0; i < len(text); i++ {
		if text[i] == '<' && !looksLikeTagOrAutolink(text[i:]) {
			b.WriteString("&lt;")
			continue
		}
		b.WriteByte(text[i])
	}
	return b.String()
}

var reTagOrAutolinkStart = regexp.MustCompile(`(?i)^<(/?[a-zA-Z][a-zA-Z0-9-]*|!--|[a-zA-Z][a-zA-Z0-9+.-]*:|[-.\w]+\@)`)

func looksLikeTagOrAutolink(s string) bool {
	return reTagOrAutolinkStart.MatchString(s)
}
