package blackfriday

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// doAutoLinks rewrites <scheme:...> and <email> forms into anchor tags.
// Grounded on markdown2.py::_do_auto_links / _encode_email_address.
func doAutoLinks(doc *document, text string) string {
	text = reAutoLink.ReplaceAllStringFunc(text, func(m string) string {
		groups := reAutoLink.FindStringSubmatch(m)
		url := groups[1]
		return fmt.Sprintf(`<a href="%s">%s</a>`, url, url)
	})
	text = reAutoEmailLink.ReplaceAllStringFunc(text, func(m string) string {
		groups := reAutoEmailLink.FindStringSubmatch(m)
		return encodeEmailLink(groups[1])
	})
	return text
}

// encodeEmailLink obfuscates an email address character-by-character:
// in the link text each character is emitted raw, as a decimal entity,
// or as a hex entity with roughly even odds; in the "mailto:" href no
// character is emitted raw (decimal or hex only); '@' is always
// "&#64;". Naive scrapers thus gain nothing from skipping entity
// decoding. Grounded on
// markdown2.py::_encode_email_address.
func encodeEmailLink(addr string) string {
	mailto := "mailto:" + addr
	var hrefB strings.Builder
	for _, c := range mailto {
		hrefB.WriteString(encodeEmailChar(byte(c), false))
	}
	var textB strings.Builder
	for _, c := range addr {
		textB.WriteString(encodeEmailChar(byte(c), true))
	}
	return fmt.Sprintf(`<a href="%s">%s</a>`, hrefB.String(), textB.String())
}

func encodeEmailChar(c byte, allowRaw bool) string {
	if c == '@' {
		return "&#64;"
	}
	n := randIntn(3)
	switch {
	case n == 0 && allowRaw:
		return string(c)
	case n == 1:
		return fmt.Sprintf("&#%d;", c)
	default:
		return fmt.Sprintf("&#x%x;", c)
	}
}

func randIntn(n int) int {
	b := make([]byte, 1)
	if _, err := rand.Read(b); err != nil {
		return 0
	}
	return int(b[0]) % n
}
