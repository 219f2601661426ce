package blackfriday

import "strings"

// doItalicsAndBold rewrites **strong** / *em* (and the _ variants) into
// <strong>/<em> tags. When the middle-word-em extra is NOT enabled, the
// regexes already guard against matching inside a word (no-intra-
// emphasis); middle-word-em relaxes that guard for the '*' delimiter
// only. Grounded on markdown2.py::_do_italics_and_bold plus the
// middle-word-em extra's variant patterns.
func doItalicsAndBold(text string, opts *Options) string {
	strongRE, emRE := reStrongEm, reEm
	if opts.has("middle-word-em") {
		// middle-word-em relaxes the no-intraword guard so '*' can
		// emphasize inside a word (e.g. "foo*bar*baz"); the '_'
		// delimiter keeps its guard either way.
		strongRE, emRE = reStrongEmMidWord, reEmMidWord
	}
	text = replaceRE2Options(strongRE, text, func(m *re2Match) string {
		return "<strong>" + m.group(2) + "</strong>"
	})
	text = replaceRE2Options(emRE, text, func(m *re2Match) string {
		return "<em>" + m.group(2) + "</em>"
	})
	return text
}

// doStrike rewrites ~~text~~ into <s>text</s>, the strike extra.
func doStrike(text string) string {
	var b strings.Builder
	pos := 0
	for pos < len(text) {
		idx := strings.Index(text[pos:], "~~")
		if idx < 0 {
			b.WriteString(text[pos:])
			break
		}
		start := pos + idx
		end := strings.Index(text[start+2:], "~~")
		if end < 0 {
			b.WriteString(text[pos:])
			break
		}
		end = start + 2 + end
		b.WriteString(text[pos:start])
		b.WriteString("<s>")
		b.WriteString(text[start+2 : end])
		b.WriteString("</s>")
		pos = end + 2
	}
	return b.String()
}
