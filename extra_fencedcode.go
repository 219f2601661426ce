package blackfriday

import (
	"fmt"
	"html"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

func init() {
	RegisterExtra(fencedCodeExtra{}, nil, []any{StageCodeBlocks})
}

type fencedCodeExtra struct{}

func (fencedCodeExtra) Name() string          { return "fenced-code-blocks" }
func (fencedCodeExtra) Test(m *Markdown) bool { return m.opts.has("fenced-code-blocks") }
func (fencedCodeExtra) Run(m *Markdown, doc *document, text string) (string, error) {
	return doFencedCodeBlocks(doc, text, m.opts), nil
}

// doFencedCodeBlocks hashes ``` / ~~~ fenced code blocks into
// <pre><code>, optionally running them through a syntax highlighter.
// Grounded on markdown2.py::FencedCodeBlocks, using
// github.com/alecthomas/chroma/v2 in place of the original's optional
// Pygments dependency.
func doFencedCodeBlocks(doc *document, text string, opts *Options) string {
	return replaceRE2Options(reFencedCodeBlock, text, func(m *re2Match) string {
		lang := strings.TrimSpace(m.group(2))
		body := strings.TrimRight(m.group(3), "\n")

		if h, ok := highlightCode(body, lang, opts); ok {
			return "\n\n" + doc.hashes.hashHTMLBlock(h) + "\n\n"
		}

		classAttr := ""
		if lang != "" {
			classAttr = fmt.Sprintf(` class="language-%s"`, lang)
		}
		block := fmt.Sprintf("<pre><code%s>%s\n</code></pre>", classAttr, html.EscapeString(body))
		return "\n\n" + doc.hashes.hashHTMLBlock(block) + "\n\n"
	})
}

// highlightCode renders source through opts.Highlighter if configured,
// otherwise through a default chroma-backed highlighter. Returns false
// when no highlighter is available or it declines to handle the
// language, signaling the caller to fall back to plain <pre><code>.
func highlightCode(source, lang string, opts *Options) (string, bool) {
	if opts != nil && opts.Highlighter != nil {
		return opts.Highlighter(source, lang)
	}
	return chromaHighlight(source, lang)
}

func chromaHighlight(source, lang string) (string, bool) {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Analyse(source)
	}
	if lexer == nil {
		return "", false
	}
	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return "", false
	}
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	var b strings.Builder
	if err := formatter.Format(&b, styles.Fallback, iterator); err != nil {
		return "", false
	}
	return b.String(), true
}
