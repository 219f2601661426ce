package blackfriday

import (
	"regexp"
	"strings"
)

// blockTags are the HTML tag names recognized as block-level when
// deciding whether a leading '<' starts a raw HTML block instead of a
// paragraph. Grounded on markdown2.py's _block_tags_a/_block_tags_b.
var blockTags = map[string]bool{
	"p": true, "div": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "blockquote": true, "pre": true, "table": true,
	"dl": true, "ol": true, "ul": true, "script": true, "noscript": true,
	"form": true, "fieldset": true, "iframe": true, "math": true,
	"ins": true, "del": true, "article": true, "aside": true, "header": true,
	"footer": true, "nav": true, "section": true, "figure": true,
	"figcaption": true, "details": true, "summary": true, "hr": true,
}

var reHTMLBlockOpenTag = regexp.MustCompile(`(?i)^[ ]{0,3}<(/?)([a-zA-Z][a-zA-Z0-9-]*)\b`)

// hashHTMLBlocks scans text line-by-line for blocks that open with a
// recognized block-level tag (or an HTML comment) and replaces each
// whole block with a hash placeholder, storing the original (optionally
// sanitized) HTML in doc.hashes.htmlBlocks. Grounded on
// markdown2.py::_hash_html_blocks.
func hashHTMLBlocks(doc *document, text string, opts *Options) string {
	lines := strings.Split(text, "\n")
	var out []string

	i := 0
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimLeft(line, " ")

		if strings.HasPrefix(trimmed, "<!--") {
			j := i
			block := []string{}
			for j < len(lines) {
				block = append(block, lines[j])
				if strings.Contains(lines[j], "-->") {
					j++
					break
				}
				j++
			}
			html := strings.Join(block, "\n")
			out = append(out, doc.hashes.hashHTMLBlock(sanitizeIfNeeded(html, opts)), "")
			i = j
			continue
		}

		m := reHTMLBlockOpenTag.FindStringSubmatch(trimmed)
		if m != nil && blockTags[strings.ToLower(m[2])] && m[1] == "" {
			tag := strings.ToLower(m[2])
			j := i
			block := []string{}
			depth := 0
			closed := false
			for j < len(lines) {
				block = append(block, lines[j])
				depth += strings.Count(strings.ToLower(lines[j]), "<"+tag) - strings.Count(strings.ToLower(lines[j]), "</"+tag)
				if depth <= 0 && j > i || (j == i && strings.Contains(strings.ToLower(lines[j]), "</"+tag+">")) {
					closed = true
					j++
					break
				}
				if strings.TrimSpace(lines[j]) == "" && j > i {
					closed = true
					break
				}
				j++
			}
			_ = closed
			html := strings.TrimRight(strings.Join(block, "\n"), "\n")
			if opts.has("markdown-in-html") && strings.Contains(block[0], `markdown="1"`) {
				html = expandMarkdownInHTML(doc, html, opts)
			}
			out = append(out, doc.hashes.hashHTMLBlock(sanitizeIfNeeded(html, opts)), "")
			i = j
			continue
		}

		out = append(out, line)
		i++
	}
	return strings.Join(out, "\n")
}

// unhashHTMLBlocks restores every placeholder produced by
// hashHTMLBlocks, run at the pipeline's final UNHASH_HTML stage.
func unhashHTMLBlocks(doc *document, text string) string {
	for key, html := range doc.hashes.htmlBlocks {
		text = strings.ReplaceAll(text, "<p>"+key+"</p>", html)
		text = strings.ReplaceAll(text, key, html)
	}
	return text
}

var reInlineHTMLSpan = regexp.MustCompile(`(?i)<(/?)([a-zA-Z][a-zA-Z0-9-]*)(\s+[^<>]*)?/?>`)

// hashHTMLSpans shields inline raw-HTML tags encountered in safe_mode so
// that later span-gamut passes never rewrite their insides. Grounded on
// markdown2.py::_hash_html_spans.
func hashHTMLSpans(doc *document, text string, safe bool) string {
	return reInlineHTMLSpan.ReplaceAllStringFunc(text, func(tag string) string {
		return doc.hashes.hashHTMLSpan(tag)
	})
}

// unhashHTMLSpans restores placeholders produced by hashHTMLSpans,
// applying safe-mode sanitization first when configured.
func unhashHTMLSpans(doc *document, text string, opts *Options) string {
	for key, html := range doc.hashes.htmlSpans {
		text = strings.ReplaceAll(text, key, sanitizeIfNeeded(html, opts))
	}
	return text
}

// expandMarkdownInHTML renders the Markdown content of a raw HTML block
// marked with markdown="1", wrapping the opening/closing tag lines
// around the rendered inner paragraphs. A lighter-weight stand-in for
// markdown2.py::_hash_html_block_sub's markdown="1" sub-mode: it covers
// the common "wrapper tag on its own lines" case rather than every
// inline placement the original handles.
func expandMarkdownInHTML(doc *document, html string, opts *Options) string {
	lines := strings.Split(html, "\n")
	if len(lines) < 3 {
		return html
	}
	inner := strings.Join(lines[1:len(lines)-1], "\n")
	rendered := formParagraphs(nil, doc, inner, opts)
	return lines[0] + "\n" + rendered + lines[len(lines)-1]
}

func sanitizeIfNeeded(html string, opts *Options) string {
	if opts == nil || opts.SafeMode == "" {
		return html
	}
	return sanitizeHTML(html, opts.SafeMode)
}
