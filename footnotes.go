package blackfriday

import (
	"fmt"
	"strings"
)

// stripFootnoteDefinitions removes every "[^id]: body" block from text,
// recording each in doc.footnotes in first-definition order. Grounded on
// markdown2.py::_strip_footnote_definitions.
func stripFootnoteDefinitions(doc *document, text string) string {
	return reFootnoteDef.ReplaceAllStringFunc(text, func(match string) string {
		groups := reFootnoteDef.FindStringSubmatch(match)
		if groups == nil {
			return match
		}
		id := strings.ToLower(strings.TrimSpace(groups[1]))
		body := outdent(strings.TrimRight(groups[2], "\n"))
		if _, seen := doc.footnotes[id]; !seen {
			doc.footnoteOrder = append(doc.footnoteOrder, id)
		}
		doc.footnotes[id] = body
		return ""
	})
}

// renderFootnotes substitutes every "[^id]" reference in text with a
// numbered, linked marker (recording first-reference order in
// doc.footnoteRefs) and appends a rendered footnote list at the end of
// the document. Grounded on markdown2.py::_add_footnotes.
func renderFootnotes(doc *document, text string, opts *Options) string {
	text = reFootnoteRef.ReplaceAllStringFunc(text, func(match string) string {
		groups := reFootnoteRef.FindStringSubmatch(match)
		id := strings.ToLower(groups[1])
		if _, ok := doc.footnotes[id]; !ok {
			return match
		}
		num := footnoteNumber(doc, id)
		return fmt.Sprintf(`<sup class="footnote-ref" id="fnref-%s"><a href="#fn-%s">%d</a></sup>`, id, id, num)
	})

	if len(doc.footnoteRefs) == 0 {
		return text
	}

	var b strings.Builder
	b.WriteString(text)
	b.WriteString("\n<div class=\"footnotes\">\n<hr>\n<ol>\n")
	for i, id := range doc.footnoteRefs {
		body := doc.footnotes[id]
		b.WriteString(fmt.Sprintf(
			"<li id=\"fn-%s\">%s&nbsp;<a href=\"#fnref-%s\" class=\"footnoteBackLink\" title=\"Jump back to footnote %d in the text.\">&#8617;</a></li>\n",
			id, strings.TrimSpace(body), id, i+1))
	}
	b.WriteString("</ol>\n</div>\n")
	return b.String()
}

func footnoteNumber(doc *document, id string) int {
	for i, r := range doc.footnoteRefs {
		if r == id {
			return i + 1
		}
	}
	doc.footnoteRefs = append(doc.footnoteRefs, id)
	return len(doc.footnoteRefs)
}

var reFootnoteRef = mustRE2(`\[\^([^\]]+)\]`)
