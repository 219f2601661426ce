package blackfriday

import "strings"

// formParagraphs splits text on blank lines into blocks, wrapping each
// non-hashed-placeholder block in <p> and running the span gamut over
// its contents; already-hashed HTML blocks are emitted unwrapped.
// Grounded on markdown2.py::_form_paragraphs.
func formParagraphs(m *Markdown, doc *document, text string, opts *Options) string {
	text = strings.Trim(text, "\n")
	if text == "" {
		return ""
	}
	blocks := splitBlankLines(text)

	var b strings.Builder
	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		if html, ok := doc.hashes.htmlBlocks[block]; ok {
			_ = html
			b.WriteString(block)
			b.WriteString("\n\n")
			continue
		}
		spanned := runSpanGamut(doc, block, opts)
		b.WriteString("<p>")
		b.WriteString(spanned)
		b.WriteString("</p>\n\n")
	}
	return b.String()
}

func splitBlankLines(text string) []string {
	lines := strings.Split(text, "\n")
	var blocks []string
	var cur []string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				blocks = append(blocks, strings.Join(cur, "\n"))
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		blocks = append(blocks, strings.Join(cur, "\n"))
	}
	return blocks
}
