package blackfriday

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SafeMode controls how raw HTML encountered in the input is treated.
type SafeMode string

const (
	SafeModeOff     SafeMode = ""
	SafeModeEscape  SafeMode = "escape"
	SafeModeReplace SafeMode = "replace"
)

// LinkPattern is one entry of the link-patterns extra: text matching
// Pattern is auto-linked, substituting Href's "\1".."\9" backreferences
// with the pattern's captured groups.
type LinkPattern struct {
	Pattern string `validate:"required"`
	Href    string `validate:"required"`
}

// Options configures a Markdown converter. It is validated once at
// NewMarkdown time via go-playground/validator, surfacing bad
// configuration as a *MarkdownError with Kind == ErrConfiguration,
// rather than failing deep inside a conversion.
type Options struct {
	// Extras lists the extension names to enable, e.g. "tables",
	// "fenced-code-blocks", "footnotes". Values may carry a parameter
	// after '=' (e.g. "header-ids=post") per spec.md §6.
	Extras map[string]string

	// SafeMode sanitizes raw HTML blocks/spans instead of passing them
	// through verbatim.
	SafeMode SafeMode `validate:"omitempty,oneof=escape replace"`

	// UseFileVars scans the input for an Emacs-style file-variables
	// comment and merges any recognized markdown-relevant variables
	// into this Options before conversion.
	UseFileVars bool

	// HTML4Tags is accepted but not read by the converter: void tags are
	// always written HTML4-style (<br>, <hr>, <img ...>) whatever its
	// value.
	HTML4Tags bool

	// TabSize overrides the default tab-stop width (4).
	TabSize int `validate:"omitempty,min=1,max=16"`

	// LinkPatterns feeds the link-patterns extra.
	LinkPatterns []LinkPattern `validate:"dive"`

	// Highlighter renders a fenced code block's body to HTML given its
	// language tag. A nil value selects the default chroma-backed
	// highlighter; when the highlighter returns false the block falls
	// back to a plain <pre><code> block.
	Highlighter func(source, lang string) (string, bool)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (o *Options) normalize() (*Options, error) {
	out := *o
	if out.TabSize == 0 {
		out.TabSize = tabSizeDefault
	}
	if out.Extras == nil {
		out.Extras = map[string]string{}
	} else {
		cp := make(map[string]string, len(out.Extras))
		for k, v := range out.Extras {
			cp[strings.ToLower(strings.TrimSpace(k))] = v
		}
		out.Extras = cp
	}

	// "toc" implies "header-ids", mirroring the distillation source's
	// Markdown.__init__ extras normalization.
	if _, ok := out.Extras["toc"]; ok {
		if _, ok := out.Extras["header-ids"]; !ok {
			out.Extras["header-ids"] = ""
		}
	}

	if err := validate.Struct(&out); err != nil {
		return nil, newConfigError(err)
	}
	for _, lp := range out.LinkPatterns {
		if _, err := mustCompileUserPattern(lp.Pattern); err != nil {
			return nil, newConfigError(err)
		}
	}
	return &out, nil
}

func (o *Options) has(extra string) bool {
	_, ok := o.Extras[extra]
	return ok
}

func (o *Options) intParam(extra string, def int) int {
	v, ok := o.Extras[extra]
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
