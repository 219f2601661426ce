package blackfriday

import (
	"fmt"
	"html"
	"strings"
)

// doCodeBlocks hashes indented (4-space) code blocks into <pre><code>
// and shields the result so later passes never touch its contents.
// Grounded on markdown2.py::_do_code_blocks.
func doCodeBlocks(doc *document, text string, opts *Options) string {
	return reIndentedCodeBlock.ReplaceAllStringFunc(text, func(match string) string {
		body := outdentIndented(match)
		encoded := html.EscapeString(strings.TrimRight(body, "\n"))
		classAttr := htmlClassStr(opts, "pre")
		block := fmt.Sprintf("<pre%s><code>%s\n</code></pre>", classAttr, encoded)
		return "\n\n" + doc.hashes.hashHTMLBlock(block) + "\n\n"
	})
}

func outdentIndented(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "    "):
			lines[i] = line[4:]
		case strings.HasPrefix(line, "\t"):
			lines[i] = line[1:]
		}
	}
	return strings.Join(lines, "\n")
}

// htmlClassStr returns a ` class="..."` attribute fragment for the
// given tag name when the html-classes extra configures one, matching
// markdown2.py::_html_class_str_from_tag.
func htmlClassStr(opts *Options, tag string) string {
	if opts == nil {
		return ""
	}
	classes, ok := opts.Extras["html-classes"]
	if !ok {
		return ""
	}
	for _, pair := range strings.Split(classes, ";") {
		kv := strings.SplitN(pair, ":", 2)
		if len(kv) == 2 && strings.TrimSpace(kv[0]) == tag {
			return fmt.Sprintf(` class="%s"`, strings.TrimSpace(kv[1]))
		}
	}
	return ""
}
