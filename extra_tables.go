package blackfriday

import (
	"fmt"
	"strings"
)

func init() {
	RegisterExtra(tablesExtra{}, nil, []any{StageBlockGamut})
	RegisterExtra(wikiTablesExtra{}, nil, []any{StageBlockGamut})
}

type tablesExtra struct{}

func (tablesExtra) Name() string          { return "tables" }
func (tablesExtra) Test(m *Markdown) bool { return m.opts.has("tables") }
func (tablesExtra) Run(m *Markdown, doc *document, text string) (string, error) {
	return doTables(doc, text, m.opts), nil
}

type wikiTablesExtra struct{}

func (wikiTablesExtra) Name() string          { return "wiki-tables" }
func (wikiTablesExtra) Test(m *Markdown) bool { return m.opts.has("wiki-tables") }
func (wikiTablesExtra) Run(m *Markdown, doc *document, text string) (string, error) {
	return doWikiTables(doc, text, m.opts), nil
}

var reTableBlock = mustRE2m(`^[ ]{0,3}\|?(.+?)\|?[ \t]*\n[ ]{0,3}\|?([ \t]*:?-+:?[ \t]*(?:\|[ \t]*:?-+:?[ \t]*)*)\|?[ \t]*\n((?:[ ]{0,3}\|?.*\|?[ \t]*\n?)*)`)

// doTables renders a GFM-style pipe table into <table>. Grounded on
// markdown2.py::Tables.
func doTables(doc *document, text string, opts *Options) string {
	return reTableBlock.ReplaceAllStringFunc(text, func(match string) string {
		groups := reTableBlock.FindStringSubmatch(match)
		header := splitTableRow(groups[1])
		aligns := parseTableAligns(groups[2])
		bodyLines := strings.Split(strings.TrimRight(groups[3], "\n"), "\n")

		var b strings.Builder
		b.WriteString("<table>\n<thead>\n<tr>\n")
		for i, cell := range header {
			b.WriteString(fmt.Sprintf("  <th%s>%s</th>\n", tableAlignAttr(aligns, i), runSpanGamut(doc, strings.TrimSpace(cell), opts)))
		}
		b.WriteString("</tr>\n</thead>\n<tbody>\n")
		for _, line := range bodyLines {
			if strings.TrimSpace(line) == "" {
				continue
			}
			cells := splitTableRow(line)
			b.WriteString("<tr>\n")
			for i, cell := range cells {
				b.WriteString(fmt.Sprintf("  <td%s>%s</td>\n", tableAlignAttr(aligns, i), runSpanGamut(doc, strings.TrimSpace(cell), opts)))
			}
			b.WriteString("</tr>\n")
		}
		b.WriteString("</tbody>\n</table>")
		return "\n\n" + doc.hashes.hashHTMLBlock(b.String()) + "\n\n"
	})
}

func splitTableRow(row string) []string {
	row = strings.TrimSpace(row)
	row = strings.TrimPrefix(row, "|")
	row = strings.TrimSuffix(row, "|")
	return strings.Split(row, "|")
}

func parseTableAligns(sep string) []string {
	var out []string
	for _, cell := range splitTableRow(sep) {
		cell = strings.TrimSpace(cell)
		left := strings.HasPrefix(cell, ":")
		right := strings.HasSuffix(cell, ":")
		switch {
		case left && right:
			out = append(out, "center")
		case right:
			out = append(out, "right")
		case left:
			out = append(out, "left")
		default:
			out = append(out, "")
		}
	}
	return out
}

func tableAlignAttr(aligns []string, i int) string {
	if i >= len(aligns) || aligns[i] == "" {
		return ""
	}
	return fmt.Sprintf(` style="text-align:%s"`, aligns[i])
}

// doWikiTables renders Google-wiki-style "||cell||" tables. Grounded on
// markdown2.py::WikiTables.
func doWikiTables(doc *document, text string, opts *Options) string {
	lines := strings.Split(text, "\n")
	var out []string
	i := 0
	for i < len(lines) {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), "||") {
			j := i
			var rows [][]string
			for j < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[j]), "||") {
				rows = append(rows, splitWikiRow(lines[j]))
				j++
			}
			out = append(out, renderWikiTable(doc, rows, opts), "")
			i = j
			continue
		}
		out = append(out, lines[i])
		i++
	}
	return strings.Join(out, "\n")
}

func splitWikiRow(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "||")
	line = strings.TrimSuffix(line, "||")
	return strings.Split(line, "||")
}

func renderWikiTable(doc *document, rows [][]string, opts *Options) string {
	var b strings.Builder
	b.WriteString("<table>\n")
	for i, row := range rows {
		tag := "td"
		if i == 0 {
			tag = "th"
		}
		b.WriteString("<tr>\n")
		for _, cell := range row {
			b.WriteString(fmt.Sprintf("  <%s>%s</%s>\n", tag, runSpanGamut(doc, strings.TrimSpace(cell), opts), tag))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>")
	return doc.hashes.hashHTMLBlock(b.String())
}
