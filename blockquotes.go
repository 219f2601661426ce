package blackfriday

import "strings"

// doBlockQuotes hashes each run of consecutive '>'-prefixed lines into a
// <blockquote> block, recursing the block gamut over the dequoted body.
// Grounded on markdown2.py::_do_block_quotes.
func doBlockQuotes(m *Markdown, doc *document, text string, opts *Options) string {
	return reBlockQuote.ReplaceAllStringFunc(text, func(match string) string {
		lines := strings.Split(strings.TrimRight(match, "\n"), "\n")
		for i, line := range lines {
			trimmed := strings.TrimLeft(line, " \t")
			if strings.HasPrefix(trimmed, ">") {
				trimmed = strings.TrimPrefix(trimmed, ">")
				trimmed = strings.TrimPrefix(trimmed, " ")
			}
			lines[i] = trimmed
		}
		inner := m.runBlockGamut(doc, strings.Join(lines, "\n"), opts)
		block := "<blockquote>\n" + strings.TrimSpace(inner) + "\n</blockquote>"
		return "\n\n" + doc.hashes.hashHTMLBlock(block) + "\n\n"
	})
}
