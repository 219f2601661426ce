package blackfriday

import "strings"

func init() {
	RegisterExtra(smartyPantsExtra{}, nil, []any{StageSpanGamut})
}

type smartyPantsExtra struct{}

func (smartyPantsExtra) Name() string          { return "smarty-pants" }
func (smartyPantsExtra) Test(m *Markdown) bool { return m.opts.has("smarty-pants") }
func (smartyPantsExtra) Run(m *Markdown, doc *document, text string) (string, error) {
	return doSmartyPants(text), nil
}

var smartyDashes = strings.NewReplacer(
	"---", "&mdash;",
	"--", "&ndash;",
	"...", "&hellip;",
	". . .", "&hellip;",
)

// doSmartyPants converts straight quotes to curly quotes and ASCII dash
// runs/ellipses to their typographic entities. Grounded on
// markdown2.py::SmartyPants (using regexp2 lookbehind/lookahead for the
// open/close quote disambiguation).
func doSmartyPants(text string) string {
	text = replaceRE2(reSmartyOpenDouble, text, "&ldquo;")
	text = replaceRE2(reSmartyCloseDouble, text, "&rdquo;")
	text = replaceRE2(reSmartyOpenSingle, text, "&lsquo;")
	text = replaceRE2(reSmartyCloseSingle, text, "&rsquo;")
	text = smartyDashes.Replace(text)
	return text
}

func replaceRE2(re interface {
	Replace(string, string, int, int) (string, error)
}, text, repl string) string {
	out, err := re.Replace(text, repl, -1, -1)
	if err != nil {
		return text
	}
	return out
}
