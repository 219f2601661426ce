package blackfriday

import "strings"

// stripLinkDefinitions removes every reference-style link definition
// line ("[id]: url \"title\"") from text, recording each in doc.urls /
// doc.titles keyed by the lower-cased id. Grounded on
// markdown2.py::_strip_link_definitions.
func stripLinkDefinitions(doc *document, text string) string {
	return reLinkDef.ReplaceAllStringFunc(text, func(match string) string {
		groups := reLinkDef.FindStringSubmatch(match)
		if groups == nil {
			return match
		}
		id := strings.ToLower(strings.TrimSpace(groups[1]))
		url := groups[2]
		title := groups[3]
		if title == "" {
			title = groups[4]
		}
		if title == "" {
			title = groups[5]
		}
		doc.urls[id] = url
		if title != "" {
			doc.titles[id] = title
		}
		return ""
	})
}
