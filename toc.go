package blackfriday

import (
	"fmt"
	"strings"
)

// renderTOC builds a nested <ul> tree from a flat list of header
// entries recorded during doHeaders, one <li> per entry, nesting
// deeper-level headers inside their most recent shallower ancestor.
// Grounded on markdown2.py::calculate_toc_html.
func renderTOC(entries []tocEntry) string {
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	var levels []int
	for _, e := range entries {
		switch {
		case len(levels) == 0 || e.Level > levels[len(levels)-1]:
			b.WriteString("<ul>\n")
			levels = append(levels, e.Level)
		case e.Level == levels[len(levels)-1]:
			b.WriteString("</li>\n")
		default:
			for len(levels) > 1 && e.Level < levels[len(levels)-1] {
				b.WriteString("</li>\n</ul>\n")
				levels = levels[:len(levels)-1]
			}
			b.WriteString("</li>\n")
			levels[len(levels)-1] = e.Level
		}
		b.WriteString(fmt.Sprintf(`<li><a href="#%s">%s</a>`, e.ID, e.Name))
	}
	b.WriteString("</li>\n")
	for range levels {
		b.WriteString("</ul>\n")
	}
	return b.String()
}
