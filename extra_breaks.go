package blackfriday

import "strings"

func init() {
	RegisterExtra(breaksExtra{}, nil, []any{StageSpanGamut})
}

// breaksExtra turns a bare newline within a paragraph's already-spanned
// text into <br>. Anchored after StageSpanGamut so it runs once per
// block (the granularity at which runSpanGamut itself is invoked),
// rather than after the whole document has been wrapped in <p> tags.
type breaksExtra struct{}

func (breaksExtra) Name() string          { return "breaks" }
func (breaksExtra) Test(m *Markdown) bool { return m.opts.has("breaks") || m.opts.has("break-on-newline") }
func (breaksExtra) Run(m *Markdown, doc *document, text string) (string, error) {
	return renderHardBreaks(text), nil
}

// renderHardBreaks turns a bare newline within a paragraph into <br>,
// matching markdown2.py's Breaks extra.
func renderHardBreaks(text string) string {
	return strings.ReplaceAll(text, "\n", "<br>\n")
}
