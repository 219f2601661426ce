package blackfriday

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustConvert(t *testing.T, opts Options, text string) *Result {
	t.Helper()
	md, err := NewMarkdown(opts)
	require.NoError(t, err)
	res, err := md.Convert(text)
	require.NoError(t, err)
	return res
}

func TestConvertBasicParagraph(t *testing.T) {
	res := mustConvert(t, Options{}, "hello world\n")
	require.Contains(t, res.HTML, "<p>hello world</p>")
}

func TestConvertHeaderWithTOC(t *testing.T) {
	res := mustConvert(t, Options{Extras: map[string]string{"toc": ""}}, "# Title\n\nsome text\n")
	require.Contains(t, res.HTML, "<h1")
	require.Contains(t, res.HTML, `id="title"`)
	require.NotEmpty(t, res.TOCHTML)
}

func TestConvertEmphasis(t *testing.T) {
	res := mustConvert(t, Options{}, "this is *em* and **strong**\n")
	require.Contains(t, res.HTML, "<em>em</em>")
	require.Contains(t, res.HTML, "<strong>strong</strong>")
}

func TestConvertCodeSpan(t *testing.T) {
	res := mustConvert(t, Options{}, "use `x := 1` here\n")
	require.Contains(t, res.HTML, "<code>x := 1</code>")
}

func TestConvertLink(t *testing.T) {
	res := mustConvert(t, Options{}, "[go](https://go.dev \"Go\")\n")
	require.Contains(t, res.HTML, `href="https://go.dev"`)
	require.Contains(t, res.HTML, `title="Go"`)
}

func TestConvertReferenceLink(t *testing.T) {
	res := mustConvert(t, Options{}, "[go][1]\n\n[1]: https://go.dev \"The Go site\"\n")
	require.Contains(t, res.HTML, `href="https://go.dev"`)
}

func TestConvertUnsafeHrefRejected(t *testing.T) {
	res := mustConvert(t, Options{}, "[bad](javascript:alert(1))\n")
	require.NotContains(t, res.HTML, "javascript:")
}

func TestConvertFootnotes(t *testing.T) {
	res := mustConvert(t, Options{Extras: map[string]string{"footnotes": ""}},
		"text[^1]\n\n[^1]: a note\n")
	require.Contains(t, res.HTML, `id="fnref-1"`)
	require.Contains(t, res.HTML, `id="fn-1"`)
	require.Contains(t, res.HTML, "a note")
}

func TestConvertTables(t *testing.T) {
	res := mustConvert(t, Options{Extras: map[string]string{"tables": ""}},
		"a | b\n--|--\n1 | 2\n")
	require.Contains(t, res.HTML, "<table>")
	require.Contains(t, res.HTML, "<th>")
}

func TestConvertMetadata(t *testing.T) {
	res := mustConvert(t, Options{Extras: map[string]string{"metadata": ""}},
		"---\ntitle: Hello\n---\n\nbody text\n")
	require.Equal(t, "Hello", res.Metadata["title"])
	require.NotContains(t, res.HTML, "title: Hello")
}

func TestSafeModeEscapesHTML(t *testing.T) {
	res := mustConvert(t, Options{SafeMode: SafeModeEscape}, "<script>alert(1)</script>\n\ntext\n")
	require.NotContains(t, res.HTML, "<script>alert(1)</script>")
}

func TestHashKeysAreUnique(t *testing.T) {
	k1 := hashKey("code")
	k2 := hashKey("code")
	require.NotEqual(t, k1, k2, "each hash key must be unique within a document")
	require.True(t, strings.HasPrefix(k1, "\x02c"))
}
