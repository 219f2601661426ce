package blackfriday

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// doHeaders rewrites ATX (#...) and setext (underlined) headers into
// <hN> tags, wiring header-ids and TOC entries when those extras are
// enabled. Grounded on markdown2.py::_do_headers / header_id_from_text.
func doHeaders(doc *document, text string, opts *Options) string {
	text = reSetextHeader.ReplaceAllStringFunc(text, func(match string) string {
		groups := reSetextHeader.FindStringSubmatch(match)
		level := 2
		if strings.HasPrefix(groups[2], "=") {
			level = 1
		}
		return renderHeader(doc, opts, level, strings.TrimSpace(groups[1])) + "\n\n"
	})

	text = reATXHeader.ReplaceAllStringFunc(text, func(match string) string {
		groups := reATXHeader.FindStringSubmatch(match)
		level := len(groups[1])
		return renderHeader(doc, opts, level, strings.TrimSpace(groups[2])) + "\n\n"
	})

	return text
}

func renderHeader(doc *document, opts *Options, level int, rawTitle string) string {
	if d := opts.intParam("demote-headers", 0); d > 0 {
		level += d
		if level > 6 {
			level = 6
		}
	}
	titleHTML := runSpanGamut(doc, rawTitle, opts)

	if !opts.has("header-ids") {
		return fmt.Sprintf("<h%d>%s</h%d>", level, titleHTML, level)
	}

	id := headerIDFromText(doc, rawTitle, opts.Extras["header-ids"])
	if opts.has("toc") {
		doc.toc = append(doc.toc, tocEntry{Level: level, ID: id, Name: titleHTML})
	}
	return fmt.Sprintf(`<h%d id="%s">%s</h%d>`, level, id, titleHTML, level)
}

// headerIDFromText derives a stable slug id from header text, matching
// Python's unicodedata NFKD-based slugify by using golang.org/x/text's
// NFKD normal form, then lower-casing and replacing runs of non-alnum
// characters with '-'. A prefix disambiguates ids across a document,
// and a numeric suffix disambiguates within it.
func headerIDFromText(doc *document, text, prefix string) string {
	slug := slugify(text)
	if prefix != "" {
		slug = prefix + "-" + slug
	}
	if slug == "" {
		slug = "section"
	}
	base := slug
	n := 1
	for doc.headerIDsUsed[slug] {
		n++
		slug = fmt.Sprintf("%s-%d", base, n)
	}
	doc.headerIDsUsed[slug] = true
	return slug
}

func slugify(text string) string {
	decomposed := norm.NFKD.String(text)
	var b strings.Builder
	lastDash := false
	for _, r := range decomposed {
		switch {
		case unicode.Is(unicode.Mn, r):
			// strip combining marks produced by NFKD decomposition
			continue
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
