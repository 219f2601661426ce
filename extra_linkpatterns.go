package blackfriday

import (
	"regexp"
	"strconv"
	"strings"
)

func init() {
	RegisterExtra(linkPatternsExtra{}, nil, []any{StageLinks})
}

type linkPatternsExtra struct{}

func (linkPatternsExtra) Name() string          { return "link-patterns" }
func (linkPatternsExtra) Test(m *Markdown) bool { return m.opts.has("link-patterns") }
func (linkPatternsExtra) Run(m *Markdown, doc *document, text string) (string, error) {
	return applyLinkPatterns(doc, text, m.opts), nil
}

// applyLinkPatterns auto-links any span of text matching a configured
// LinkPattern, substituting its regex's captured groups into Href.
func applyLinkPatterns(doc *document, text string, opts *Options) string {
	for _, lp := range opts.LinkPatterns {
		re, err := mustCompileUserPattern(lp.Pattern)
		if err != nil {
			continue
		}
		text = re.ReplaceAllStringFunc(text, func(match string) string {
			href := expandBackreferences(lp.Href, re, match)
			return `<a href="` + safeHref(href) + `">` + match + `</a>`
		})
	}
	return text
}

// expandBackreferences substitutes "\1".."\9" in tmpl with the
// corresponding capture group from re's match against src, matching the
// backslash-numbered backreference syntax spec.md §6 uses for
// link-patterns Href templates (Go's regexp replacement templates use
// "$1" instead, so this can't go through ReplaceAllString directly).
func expandBackreferences(tmpl string, re *regexp.Regexp, src string) string {
	groups := re.FindStringSubmatch(src)
	var b strings.Builder
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] == '\\' && i+1 < len(tmpl) && tmpl[i+1] >= '0' && tmpl[i+1] <= '9' {
			n, _ := strconv.Atoi(string(tmpl[i+1]))
			if n < len(groups) {
				b.WriteString(groups[n])
			}
			i++
			continue
		}
		b.WriteByte(tmpl[i])
	}
	return b.String()
}

// mustCompileUserPattern accepts either a bare regex body or a
// "/pattern/flags" encoded form (the link-patterns file format of
// spec.md §6), matching markdown2.py::_regex_from_encoded_pattern.
func mustCompileUserPattern(pattern string) (*regexp.Regexp, error) {
	if strings.HasPrefix(pattern, "/") {
		if idx := strings.LastIndex(pattern, "/"); idx > 0 {
			body := pattern[1:idx]
			flags := pattern[idx+1:]
			prefix := ""
			if strings.Contains(flags, "i") {
				prefix = "(?i)"
			}
			return regexp.Compile(prefix + body)
		}
	}
	return regexp.Compile(pattern)
}
