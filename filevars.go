package blackfriday

import (
	"regexp"
	"strconv"
	"strings"
)

// reEmacsOneliner matches the one-line "-*- markdown-extras: tables; -*-"
// Emacs file-variables form, scanned within the document's first few
// lines. Grounded on markdown2.py::_emacs_oneliner_vars_pat.
var reEmacsOneliner = regexp.MustCompile(`-\*-[ \t]*(.*?)[ \t]*-\*-`)

// extractFileVars scans the first 5 and last 5 lines of text for an
// Emacs-style file-variables comment naming markdown-relevant keys
// ("markdown-extras", "markdown-safe-mode" and "markdown-tab-size"), returning a
// partial Options to merge in. Grounded on
// markdown2.py::_get_emacs_vars.
func extractFileVars(text string) (fileVarOptions, bool) {
	lines := strings.Split(text, "\n")
	scan := lines
	if len(lines) > 10 {
		scan = append(append([]string{}, lines[:5]...), lines[len(lines)-5:]...)
	}

	var fv fileVarOptions
	found := false
	for _, line := range scan {
		m := reEmacsOneliner.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		found = true
		for _, pair := range strings.Split(m[1], ";") {
			kv := strings.SplitN(pair, ":", 2)
			if len(kv) != 2 {
				continue
			}
			key := strings.TrimSpace(kv[0])
			val := strings.TrimSpace(kv[1])
			switch key {
			case "markdown-extras":
				fv.extras = val
			case "markdown-safe-mode":
				fv.safeMode = val
			case "markdown-tab-size":
				if n, err := strconv.Atoi(val); err == nil {
					fv.tabSize = n
				}
			}
		}
	}
	return fv, found
}

type fileVarOptions struct {
	extras   string
	safeMode string
	tabSize  int
}

// mergeFileVarOptions layers file-variable overrides onto a base
// Options, used when UseFileVars is enabled.
func mergeFileVarOptions(base Options, fv fileVarOptions) Options {
	out := base
	if fv.extras != "" {
		if out.Extras == nil {
			out.Extras = map[string]string{}
		} else {
			cp := make(map[string]string, len(out.Extras))
			for k, v := range out.Extras {
				cp[k] = v
			}
			out.Extras = cp
		}
		for _, name := range strings.Split(fv.extras, ",") {
			name = strings.TrimSpace(name)
			if name != "" {
				out.Extras[name] = ""
			}
		}
	}
	if fv.safeMode != "" {
		out.SafeMode = SafeMode(fv.safeMode)
	}
	if fv.tabSize != 0 {
		out.TabSize = fv.tabSize
	}
	return out
}
