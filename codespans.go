package blackfriday

import (
	"strings"
)

// doCodeSpans finds backtick-delimited code spans (matching the SAME
// backtick run length on open and close, which requires regexp2's
// backreference support) and hashes their HTML-encoded bodies.
// Grounded on markdown2.py::_do_code_spans / _encode_code.
func doCodeSpans(doc *document, text string) string {
	var b strings.Builder
	pos := 0
	for pos < len(text) {
		m, ok := re2FindMatch(reCodeSpan, text[pos:])
		if !ok {
			b.WriteString(text[pos:])
			break
		}
		b.WriteString(text[pos : pos+m.Index])
		body := m.GroupByNumber(2).String()
		body = strings.TrimSpace(body)
		encoded := encodeCode(body)
		b.WriteString(doc.hashes.hashCode("<code>" + encoded + "</code>"))
		pos += m.Index + m.Length
	}
	return b.String()
}

// encodeCode HTML-encodes the handful of characters that must never
// reach the output raw from inside a code span.
func encodeCode(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
