package blackfriday

// runBlockGamut applies the block-level transform chain in order:
// headers, horizontal rules, lists, code blocks, block quotes, then
// paragraph formation (which itself invokes the span gamut on each
// paragraph's text). Around every sub-stage the Execution Plan's
// before/after extras for that Stage run against the live text, so
// enabling e.g. "tables" or "fenced-code-blocks" is entirely a matter
// of which Stage that Extra is anchored to, not a branch here.
// Grounded on markdown2.py::_run_block_gamut.
func runBlockGamut(m *Markdown, doc *document, text string, opts *Options) string {
	doc.stage = StageHeaders
	text = m.runExtrasBefore(doc, StageHeaders, text)
	text = doHeaders(doc, text, opts)
	text = m.runExtrasAfter(doc, StageHeaders, text)

	text = replaceRE2Options(reHorizontalRule, text, func(*re2Match) string { return "\n<hr>\n" })

	doc.stage = StageLists
	text = m.runExtrasBefore(doc, StageLists, text)
	text = doLists(m, doc, text, opts)
	text = m.runExtrasAfter(doc, StageLists, text)

	doc.stage = StageCodeBlocks
	text = m.runExtrasBefore(doc, StageCodeBlocks, text)
	text = doCodeBlocks(doc, text, opts)
	text = m.runExtrasAfter(doc, StageCodeBlocks, text)

	doc.stage = StageBlockQuotes
	text = m.runExtrasBefore(doc, StageBlockQuotes, text)
	text = doBlockQuotes(m, doc, text, opts)
	text = m.runExtrasAfter(doc, StageBlockQuotes, text)

	text = m.runExtrasBefore(doc, StageBlockGamut, text)
	text = m.runExtrasAfter(doc, StageBlockGamut, text)

	text = m.runExtrasBefore(doc, StageParagraphs, text)

	doc.stage = StageParagraphs
	text = formParagraphs(m, doc, text, opts)

	text = m.runExtrasAfter(doc, StageParagraphs, text)

	return text
}
