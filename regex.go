package blackfriday

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
)

// mustRE2 compiles a stdlib (RE2) pattern, used wherever the grammar has
// no backreference or lookaround requirement.
func mustRE2(pattern string) *regexp.Regexp {
	return regexp.MustCompile(pattern)
}

// mustRE2m is mustRE2 with multiline semantics (^ and $ match at line
// boundaries), the common case for block-level patterns run over a whole
// buffer. '.' still stops at a newline; a pattern whose body must span
// lines says so with (?s:...).
func mustRE2m(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)` + pattern)
}

// mustRE2Options compiles a regexp2 pattern. regexp2 is reached for only
// where RE2 genuinely cannot express the grammar: backreferences or
// lookaround. See DESIGN.md for the list of call sites.
func mustRE2Options(pattern string, opts regexp2.RegexOptions) *regexp2.Regexp {
	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		panic("blackfriday: invalid regexp2 pattern: " + err.Error())
	}
	return re
}

// re2FindMatch runs a regexp2 pattern against s and reports whether it
// matched, returning the match for callers that need group access.
func re2FindMatch(re *regexp2.Regexp, s string) (*regexp2.Match, bool) {
	m, err := re.FindStringMatch(s)
	if err != nil || m == nil {
		return nil, false
	}
	return m, true
}

// re2Match is a thin wrapper exposing the handful of group accessors
// replaceRE2Options callers need, without leaking the regexp2 type
// itself into every call site.
type re2Match struct {
	m *regexp2.Match
}

func (r *re2Match) group(n int) string {
	g := r.m.GroupByNumber(n)
	if g == nil || len(g.Captures) == 0 {
		return ""
	}
	return g.String()
}

// replaceRE2Options replaces every non-overlapping match of re in s
// using repl, mirroring strings.ReplaceAllStringFunc for a regexp2
// pattern (which has no such built-in).
func replaceRE2Options(re *regexp2.Regexp, s string, repl func(*re2Match) string) string {
	var b strings.Builder
	pos := 0
	for pos <= len(s) {
		m, err := re.FindStringMatch(s[pos:])
		if err != nil || m == nil {
			b.WriteString(s[pos:])
			return b.String()
		}
		b.WriteString(s[pos : pos+m.Index])
		b.WriteString(repl(&re2Match{m}))
		advance := m.Index + m.Length
		if advance == 0 {
			advance = 1
			if pos+advance <= len(s) {
				b.WriteString(s[pos : pos+advance])
			}
		}
		pos += advance
	}
	return b.String()
}

// Patterns shared across multiple files. Block-level patterns are
// compiled with multiline semantics; inline patterns are left to their
// default single-line semantics and anchored explicitly where needed.
var (
	reLeadingTrailingBlankLines = mustRE2(`^\n+|\n+\z`)
	reTrailingWhitespaceOnLine  = mustRE2(`(?m)[ \t]+$`)
	reMultipleBlankLines        = mustRE2(`\n{3,}`)

	// List markers.
	reULMarker = mustRE2(`^[ ]{0,3}[*+-][ \t]+`)
	reOLMarker = mustRE2(`^[ ]{0,3}\d+[.)][ \t]+`)

	// ATX header: one to six leading #'s.
	reATXHeader = mustRE2m(`^(\#{1,6})[ \t]*(.+?)[ \t]*\#*\s*$`)
	// Setext header: a line of text followed by a line of = or -.
	reSetextHeader = mustRE2m(`^(.+)[ \t]*\n(=+|-+)[ \t]*$`)

	// Indented code block: 4+ leading spaces (after detab).
	reIndentedCodeBlock = mustRE2m(`(?:^(?:[ ]{4}|\t).*\n?)+`)

	// Block quote: lines beginning with optional leading spaces then '>'.
	reBlockQuote = mustRE2m(`(?:^[ \t]*>[ \t]?.*\n(?:.+\n)*\n*)+`)

	// Reference-style link/image definitions.
	reLinkDef     = mustRE2m(`^[ ]{0,3}\[([^\[\]]+)\]:[ \t]*\n?[ \t]*<?([^\s>]+)>?(?:[ \t]*\n?[ \t]*(?:"([^"]*)"|'([^']*)'|\(([^)]*)\)))?[ \t]*$`)
	reFootnoteDef = mustRE2m(`^[ ]{0,3}\[\^([^\]]+)\]:[ \t]*(.*(?:\n+|\z)(?:(?:[ ]{4}|\t).*(?:\n+|\z))*)`)

	// Auto-links: <scheme:...> or <email>.
	reAutoLink      = mustRE2(`<((?:https?|ftp):[^'">\s]+)>`)
	reAutoEmailLink = mustRE2(`<(?:mailto:)?([-.\w]+\@[-a-z0-9]+(\.[-a-z0-9]+)*\.[a-z]+)>`)

	// HTML comments.
	reHTMLComment = mustRE2m(`^[ ]{0,3}<!--.*?-->[ \t]*$`)
)

// regexp2 patterns: grammar here needs a backreference or lookaround.
var (
	// Code span: a run of N backticks, then non-greedy content, then the
	// SAME run length of backticks — a textbook backreference.
	reCodeSpan = mustRE2Options(`(?<!\\)(\x60+)(.+?)(?<!\x60)\1(?!\x60)`, regexp2.Singleline)

	// Strong/emphasis: delimiter run matched by backreference on the
	// closing side, with a lookahead/lookbehind guard against
	// intraword matches (the "no-intra-emphasis" rule).
	reStrongEm = mustRE2Options(`(?<!\w)(\*\*|__)(?!\s)(.+?)(?<!\s)\1(?!\w)`, regexp2.Singleline)
	reEm       = mustRE2Options(`(?<!\w)(\*|_)(?!\s)(.+?)(?<!\s)\1(?!\w)`, regexp2.Singleline)

	// middle-word-em variants: '*' drops its no-intraword guard, '_'
	// keeps it, matching markdown2.py's middle-word-em extra behavior.
	reStrongEmMidWord = mustRE2Options(`(\*\*|(?<!\w)__)(?!\s)(.+?)(?<!\s)\1(?:(?<=\*)|(?!\w))`, regexp2.Singleline)
	reEmMidWord        = mustRE2Options(`(\*|(?<!\w)_)(?!\s)(.+?)(?<!\s)\1(?:(?<=\*)|(?!\w))`, regexp2.Singleline)

	// List item splitting needs a backreference to find the next
	// sibling marker at the same indentation.
	reListItem = mustRE2Options(`(?m)^([ ]{0,3})([*+-]|\d+[.)])([ \t]+)(.*)(?:\n(?!\1(?:[*+-]|\d+[.)])[ \t])(?:.*\n?))*`, regexp2.None)

	// safe_href: protocol allow-list with a negative lookahead to reject
	// javascript:/data: etc. while still allowing bare fragments and
	// relative paths.
	reSafeHref = mustRE2Options(`^(?!(?:java|vb)script|data(?!:image)|mailto):?.*$|^(?:https?|ftp|mailto):|^[/#?]`, regexp2.IgnoreCase)

	// Strict HTML tag block matching needs a lookahead to check the tag
	// is immediately followed by its own closing tag "on its own".
	reStrictTagBlockOpen = mustRE2Options(`^<(?<tag>[a-zA-Z][a-zA-Z0-9-]*)\b[^>]*>(?!.*</\k<tag>>)`, regexp2.Multiline)

	// Horizontal rule: three or more of *, -, or _ optionally separated
	// by spaces, alone on a line. The closing runs must reuse the SAME
	// separator character as the first, a backreference RE2 cannot
	// express.
	reHorizontalRule = mustRE2Options(`(?m)^[ ]{0,3}([-*_])[ \t]*(?:\1[ \t]*){2,}$`, regexp2.None)

	// Fenced code block: ``` or ~~~ fence, optional language tag, and a
	// closing fence of the SAME character reused via backreference.
	reFencedCodeBlock = mustRE2Options("(?m)^(`{3,}|~{3,})[ \t]*([^`\n]*)\n((?:.*\n)*?)^\\1[`~]*[ \t]*$", regexp2.None)

	// SmartyPants opening quote: lookbehind for whitespace/punctuation
	// or start-of-string, not followed by whitespace.
	reSmartyOpenDouble  = mustRE2Options(`(?<=^|[\s([{<-])"(?=\S)`, regexp2.None)
	reSmartyCloseDouble = mustRE2Options(`(?<=\S)"`, regexp2.None)
	reSmartyOpenSingle  = mustRE2Options(`(?<=^|[\s([{<-])'(?=\S)`, regexp2.None)
	reSmartyCloseSingle = mustRE2Options(`(?<=\S)'`, regexp2.None)
)
