//
// Blackfriday Markdown Processor
// Available at http://github.com/russross/blackfriday
//
// Copyright © 2011 Russ Ross <russ@russross.com>.
// Distributed under the Simplified BSD License.
// See README.md for details.
//

package blackfriday

import (
	"strings"
	"unicode/utf8"
)

const (
	tabSizeDefault = 4
)

// ispunct reports whether c is an ASCII punctuation byte.
// Taken from a private function in regexp in the stdlib.
func ispunct(c byte) bool {
	for _, r := range []byte("!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~") {
		if c == r {
			return true
		}
	}
	return false
}

// isspace reports whether c is an ASCII whitespace byte.
func isspace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

// isalnum reports whether c is an ASCII letter or digit.
func isalnum(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// expandTabs replaces tab characters with spaces, aligning to the next
// tabSize column, and writes the result to out.
func expandTabs(out *strings.Builder, line string, tabSize int) {
	i, prefix := 0, 0
	slowcase := false
	for i = 0; i < len(line); i++ {
		if line[i] == '\t' {
			if prefix == i {
				prefix++
			} else {
				slowcase = true
				break
			}
		}
	}

	if !slowcase {
		for i = 0; i < prefix*tabSize; i++ {
			out.WriteByte(' ')
		}
		out.WriteString(line[prefix:])
		return
	}

	column := 0
	i = 0
	for i < len(line) {
		start := i
		for i < len(line) && line[i] != '\t' {
			_, size := utf8.DecodeRuneInString(line[i:])
			i += size
			column++
		}

		if i > start {
			out.WriteString(line[start:i])
		}

		if i >= len(line) {
			break
		}

		for {
			out.WriteByte(' ')
			column++
			if column%tabSize == 0 {
				break
			}
		}

		i++
	}
}

// detab expands tabs across every line of text using tabSize-column stops.
func detab(text string, tabSize int) string {
	if !strings.Contains(text, "\t") {
		return text
	}
	var out strings.Builder
	out.Grow(len(text) + 16)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		expandTabs(&out, line, tabSize)
		if i != len(lines)-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

// outdent removes one indentation level from each line: a leading tab
// or four leading spaces; a line with fewer than four leading spaces
// loses all of them.
func outdent(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := line
		switch {
		case strings.HasPrefix(trimmed, "\t"):
			trimmed = trimmed[1:]
		case strings.HasPrefix(trimmed, "    "):
			trimmed = trimmed[4:]
		default:
			trimmed = strings.TrimLeft(trimmed, " ")
		}
		lines[i] = trimmed
	}
	return strings.Join(lines, "\n")
}

// uniformOutdent removes up to n leading spaces from every non-blank
// line and empties whitespace-only lines, as used when de-indenting list
// item bodies.
func uniformOutdent(text string, n int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}
		cut := 0
		for cut < n && cut < len(line) && line[cut] == ' ' {
			cut++
		}
		lines[i] = line[cut:]
	}
	return strings.Join(lines, "\n")
}

// uniformIndent prepends the given prefix to every line; empty lines
// are skipped unless indentEmptyLines is set.
func uniformIndent(text, prefix string, indentEmptyLines bool) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line == "" && !indentEmptyLines {
			continue
		}
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
