package blackfriday

func init() {
	RegisterExtra(strikeExtra{}, nil, []any{StageItalicAndBold})
}

// strikeExtra rewrites ~~text~~ into <s>text</s>, matching
// markdown2.py's strike extra.
type strikeExtra struct{}

func (strikeExtra) Name() string          { return "strike" }
func (strikeExtra) Test(m *Markdown) bool { return m.opts.has("strike") }
func (strikeExtra) Run(m *Markdown, doc *document, text string) (string, error) {
	return doStrike(text), nil
}
