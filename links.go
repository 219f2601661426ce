package blackfriday

import (
	"fmt"
	"strings"
)

// maxLinkTextSentinel bounds how far the bracket scanner will look for a
// matching ']' before giving up on a candidate as a link, guarding
// against pathological quadratic backtracking on unmatched '[' runs.
// Grounded on markdown2.py's MAX_LINK_TEXT_SENTINEL.
const maxLinkTextSentinel = 3000

// doLinksAndImages is the link/image processor (spec.md §4.4),
// scanning for inline "[text](url "title")", reference-style
// "[text][id]", image "![alt](url)", and (when the link-shortrefs
// extra is enabled) bare "[text]" forms, resolving each against
// doc.urls/doc.titles or inline syntax. Grounded on
// markdown2.py::LinkProcessor.run.
func doLinksAndImages(doc *document, text string, opts *Options) string {
	var b strings.Builder
	pos := 0
	for pos < len(text) {
		i := strings.IndexAny(text[pos:], "[!")
		if i < 0 {
			b.WriteString(text[pos:])
			break
		}
		i += pos
		b.WriteString(text[pos:i])

		isImage := text[i] == '!'
		bracketStart := i
		if isImage {
			if i+1 >= len(text) || text[i+1] != '[' {
				b.WriteByte(text[i])
				pos = i + 1
				continue
			}
			bracketStart = i + 1
		}
		if text[bracketStart] != '[' {
			b.WriteByte(text[i])
			pos = i + 1
			continue
		}

		closeIdx := findMatchingBracket(text, bracketStart, maxLinkTextSentinel)
		if closeIdx < 0 {
			b.WriteByte(text[i])
			pos = i + 1
			continue
		}
		linkText := text[bracketStart+1 : closeIdx]

		rendered, consumed, ok := parseLinkTail(doc, text[closeIdx+1:], linkText, isImage, opts)
		if !ok {
			b.WriteByte(text[i])
			pos = i + 1
			continue
		}
		b.WriteString(rendered)
		pos = closeIdx + 1 + consumed
	}
	return b.String()
}

// findMatchingBracket returns the index of the ']' matching the '[' at
// open, honoring nested brackets, or -1 if none is found within limit
// characters.
func findMatchingBracket(text string, open int, limit int) int {
	depth := 0
	for i := open; i < len(text) && i-open < limit; i++ {
		switch text[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// parseLinkTail looks at what follows a "[...]" span and decides
// whether it forms an inline link/image "(url \"title\")", a reference
// link/image "[id]", or (as a fallback) a link shortref using linkText
// itself as the id. Returns the rendered HTML, the number of bytes of
// `rest` consumed, and whether a link/image was actually recognized.
func parseLinkTail(doc *document, rest, linkText string, isImage bool, opts *Options) (string, int, bool) {
	if strings.HasPrefix(rest, "(") {
		end := strings.IndexByte(rest, ')')
		if end < 0 {
			return "", 0, false
		}
		inner := rest[1:end]
		url, title := splitURLAndTitle(inner)
		return renderLinkOrImage(doc, isImage, linkText, url, title, opts), end + 1, true
	}

	if strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return "", 0, false
		}
		id := rest[1:end]
		if id == "" {
			id = linkText
		}
		url, title, ok := lookupLinkDef(doc, id)
		if !ok {
			return "", 0, false
		}
		return renderLinkOrImage(doc, isImage, linkText, url, title, opts), end + 1, true
	}

	if opts.has("link-shortrefs") {
		if url, title, ok := lookupLinkDef(doc, linkText); ok {
			return renderLinkOrImage(doc, isImage, linkText, url, title, opts), 0, true
		}
	}

	return "", 0, false
}

func lookupLinkDef(doc *document, id string) (string, string, bool) {
	key := strings.ToLower(strings.TrimSpace(id))
	url, ok := doc.urls[key]
	if !ok {
		return "", "", false
	}
	return url, doc.titles[key], true
}

func splitURLAndTitle(inner string) (string, string) {
	inner = strings.TrimSpace(inner)
	if i := strings.IndexAny(inner, "\"'"); i > 0 {
		quote := inner[i]
		url := strings.TrimSpace(inner[:i])
		rest := inner[i+1:]
		if end := strings.IndexByte(rest, quote); end >= 0 {
			return trimAngleBrackets(url), rest[:end]
		}
	}
	return trimAngleBrackets(inner), ""
}

func trimAngleBrackets(url string) string {
	if strings.HasPrefix(url, "<") && strings.HasSuffix(url, ">") {
		return url[1 : len(url)-1]
	}
	return url
}

func renderLinkOrImage(doc *document, isImage bool, text, url, title string, opts *Options) string {
	url = safeHref(url)
	titleAttr := ""
	if title != "" {
		titleAttr = fmt.Sprintf(` title="%s"`, title)
	}
	if isImage {
		html := fmt.Sprintf(`<img src="%s" alt="%s"%s>`, url, text, titleAttr)
		return doc.hashes.hashHTMLSpan(html)
	}
	rel := ""
	if opts != nil && opts.has("nofollow") {
		rel = ` rel="nofollow"`
	}
	target := ""
	if opts != nil && opts.has("target-blank-links") {
		target = ` target="_blank"`
	}
	inner := runSpanGamut(doc, text, opts)
	return fmt.Sprintf(`<a href="%s"%s%s%s>%s</a>`, url, titleAttr, rel, target, inner)
}

// rewriteMarkdownFileLink rewrites a local ".md"/".markdown" link target
// to its ".html" counterpart, leaving remote (scheme-qualified) URLs
// and anchors untouched. Grounded on markdown2.py's
// markdown-file-links extra.
func rewriteMarkdownFileLink(url string) string {
	if strings.Contains(url, "://") || strings.HasPrefix(url, "#") {
		return url
	}
	lower := strings.ToLower(url)
	switch {
	case strings.HasSuffix(lower, ".markdown"):
		return url[:len(url)-len(".markdown")] + ".html"
	case strings.HasSuffix(lower, ".md"):
		return url[:len(url)-len(".md")] + ".html"
	default:
		return url
	}
}

// safeHref rejects dangerous URL schemes (javascript:, vbscript:, and
// data: URIs other than data:image/...), matching
// markdown2.py::_safe_href's allow-list via a regexp2 lookahead.
func safeHref(url string) string {
	ok, err := reSafeHref.MatchString(url)
	if err != nil || !ok {
		return "#"
	}
	return url
}
