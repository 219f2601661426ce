package blackfriday

import "strings"

// runSpanGamut applies the inline transform chain in order: code
// spans, special-character escaping, the link/image processor, auto
// links, amp/angle encoding, then italics/bold. Around every sub-stage
// the Execution Plan's before/after extras for that Stage run against
// the live text: link-patterns anchors after StageLinks, strike after
// StageItalicAndBold, smarty-pants and breaks after StageSpanGamut
// itself, so enabling them is purely a matter of their registered
// anchor, not a branch here. Grounded on
// markdown2.py::_run_span_gamut.
func runSpanGamut(doc *document, text string, opts *Options) string {
	m := doc.m

	doc.stage = StageSpanGamut
	text = m.runExtrasBefore(doc, StageSpanGamut, text)

	doc.stage = StageCodeSpans
	text = m.runExtrasBefore(doc, StageCodeSpans, text)
	text = doCodeSpans(doc, text)
	text = m.runExtrasAfter(doc, StageCodeSpans, text)

	doc.stage = StageEscapeSpecial
	text = m.runExtrasBefore(doc, StageEscapeSpecial, text)
	text = encodeBackslashEscapes(doc, text)
	text = m.runExtrasAfter(doc, StageEscapeSpecial, text)

	doc.stage = StageLinks
	text = m.runExtrasBefore(doc, StageLinks, text)
	text = doLinksAndImages(doc, text, opts)
	text = m.runExtrasAfter(doc, StageLinks, text)

	text = doAutoLinks(doc, text)
	text = encodeAmpsAndAngles(text)

	doc.stage = StageItalicAndBold
	text = m.runExtrasBefore(doc, StageItalicAndBold, text)
	text = doItalicsAndBold(text, opts)
	text = m.runExtrasAfter(doc, StageItalicAndBold, text)
	if doc.shieldedUnderscore != "" {
		text = strings.ReplaceAll(text, doc.shieldedUnderscore, "_")
		doc.shieldedUnderscore = ""
	}

	doc.stage = StageSpanGamut
	text = m.runExtrasAfter(doc, StageSpanGamut, text)

	return text
}
