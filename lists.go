package blackfriday

import (
	"strings"
)

// doLists finds runs of sibling list items sharing one marker style
// (bulleted or ordered) and renders each run as a <ul>/<ol>. Grounded on
// markdown2.py::_do_lists / _process_list_items, using regexp2 for the
// list-item-run pattern which needs a backreference to the opening
// marker's indentation to find where the run ends.
func doLists(m *Markdown, doc *document, text string, opts *Options) string {
	var out strings.Builder
	pos := 0
	for pos < len(text) {
		match, ok := re2FindMatch(reListItem, text[pos:])
		if !ok || match.Index != 0 {
			// advance to the next line start and try again
			nl := strings.IndexByte(text[pos:], '\n')
			if nl < 0 {
				out.WriteString(text[pos:])
				break
			}
			out.WriteString(text[pos : pos+nl+1])
			pos += nl + 1
			continue
		}
		run := match.String()
		ordered := false
		if g := match.GroupByNumber(2); g != nil && len(g.Captures) > 0 {
			marker := g.Captures[0].String()
			ordered = marker != "*" && marker != "+" && marker != "-"
		}
		// A reListItem match stops at the next sibling marker, so gather
		// the following siblings of the same marker family into the run.
		for {
			rest, sep := text[pos+len(run):], ""
			if strings.HasPrefix(rest, "\n") {
				rest, sep = rest[1:], "\n"
			}
			next, ok := re2FindMatch(reListItem, rest)
			if !ok || next.Index != 0 {
				break
			}
			marker := next.GroupByNumber(2).String()
			if (marker != "*" && marker != "+" && marker != "-") != ordered {
				break
			}
			run += sep + next.String()
		}
		out.WriteString(renderList(m, doc, run, ordered, opts))
		pos += len(run)
	}
	return out.String()
}

func renderList(m *Markdown, doc *document, run string, ordered bool, opts *Options) string {
	items := splitListItems(run)
	tag := "ul"
	if ordered {
		tag = "ol"
	}
	var b strings.Builder
	b.WriteString("<" + tag + ">\n")
	for _, item := range items {
		b.WriteString(renderListItem(m, doc, item, opts))
	}
	b.WriteString("</" + tag + ">\n")
	return b.String()
}

// splitListItems breaks a run of sibling list-item lines into one
// logical item per top-level marker, each item's body uniformly
// outdented to strip the marker and leading indentation.
func splitListItems(run string) []string {
	lines := strings.Split(strings.TrimRight(run, "\n"), "\n")
	var items []string
	var cur []string
	for _, line := range lines {
		if reULMarker.MatchString(line) || reOLMarker.MatchString(line) {
			if len(cur) > 0 {
				items = append(items, strings.Join(cur, "\n"))
			}
			cur = []string{line}
		} else {
			cur = append(cur, line)
		}
	}
	if len(cur) > 0 {
		items = append(items, strings.Join(cur, "\n"))
	}
	return items
}

func renderListItem(m *Markdown, doc *document, item string, opts *Options) string {
	loc := reULMarker.FindStringIndex(item)
	if loc == nil {
		loc = reOLMarker.FindStringIndex(item)
	}
	body := item
	indent := 0
	if loc != nil {
		body = item[loc[1]:]
		indent = loc[1] - loc[0]
	}
	body = uniformOutdent(body, indent)

	// A "loose" item (contains a blank line) renders its body through
	// the block gamut; a "tight" item renders only the span gamut,
	// matching markdown2's block-vs-inline list item body decision.
	isBlock := strings.Contains(strings.TrimRight(body, "\n"), "\n\n")
	var inner string
	if isBlock {
		inner = m.runBlockGamut(doc, body, opts)
	} else {
		inner = runSpanGamut(doc, strings.TrimSpace(body), opts)
	}
	return "<li>" + strings.TrimSpace(inner) + "</li>\n"
}
