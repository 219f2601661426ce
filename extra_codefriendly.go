package blackfriday

import (
	"regexp"
	"strings"
)

func init() {
	RegisterExtra(codeFriendlyExtra{}, []any{StageItalicAndBold}, nil)
	RegisterExtra(markdownFileLinksExtra{}, nil, []any{StageLinks})
}

// codeFriendlyExtra disables '_' as an emphasis delimiter, matching
// markdown2.py::CodeFriendly (a convenience for prose heavy with
// identifier_names that would otherwise be mangled into <em>). It runs
// before StageItalicAndBold and shields every '_' behind a placeholder
// so the emphasis regexes never see one to match; runSpanGamut
// unshields it right after that stage runs.
type codeFriendlyExtra struct{}

func (codeFriendlyExtra) Name() string          { return "code-friendly" }
func (codeFriendlyExtra) Test(m *Markdown) bool { return m.opts.has("code-friendly") }
func (codeFriendlyExtra) Run(m *Markdown, doc *document, text string) (string, error) {
	if !strings.Contains(text, "_") {
		return text, nil
	}
	doc.shieldedUnderscore = hashKey("underscore")
	return strings.ReplaceAll(text, "_", doc.shieldedUnderscore), nil
}

// markdownFileLinksExtra rewrites local "*.md"/"*.markdown" link targets
// to their ".html" counterparts, matching markdown2.py's
// markdown-file-links extra (useful when publishing a tree of converted
// files that link to each other by source name). It runs after
// StageLinks as a regex pass over already-rendered anchor hrefs; image
// srcs are hashed into opaque placeholders earlier in StageLinks and so
// fall outside this extra's reach, matching the extra's documented
// scope of rewriting cross-document links.
type markdownFileLinksExtra struct{}

func (markdownFileLinksExtra) Name() string          { return "markdown-file-links" }
func (markdownFileLinksExtra) Test(m *Markdown) bool { return m.opts.has("markdown-file-links") }
func (markdownFileLinksExtra) Run(m *Markdown, doc *document, text string) (string, error) {
	return reAnchorHref.ReplaceAllStringFunc(text, func(match string) string {
		groups := reAnchorHref.FindStringSubmatch(match)
		return `href="` + rewriteMarkdownFileLink(groups[1]) + `"`
	}), nil
}

var reAnchorHref = regexp.MustCompile(`href="([^"]*)"`)
