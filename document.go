//
// Blackfriday Markdown Processor
// Available at http://github.com/russross/blackfriday
//
// Copyright © 2011 Russ Ross <russ@russross.com>.
// Distributed under the Simplified BSD License.
// See README.md for details.
//

// Package blackfriday converts Markdown text to HTML through an ordered
// pipeline of Stages, with an Extra registry for optional extensions
// that hook in before or after a given Stage.
package blackfriday

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// tocEntry is one header recorded for table-of-contents rendering.
type tocEntry struct {
	Level int
	ID    string
	Name  string
}

// document holds all per-conversion mutable state described in spec.md
// §3's Data Model: the rewritable buffer plus the four hash tables, the
// link/footnote definition tables, the TOC, and extracted metadata. A
// fresh document is created for every Convert call and never shared
// across goroutines or reused.
type document struct {
	buf string

	hashes *hashRegistry

	urls   map[string]string
	titles map[string]string

	footnotes     map[string]string
	footnoteOrder []string
	footnoteRefs  []string

	toc []tocEntry

	metadata map[string]any

	headerIDsUsed map[string]bool

	stage Stage

	// m is the driving Markdown, reachable from any function holding a
	// *document so block/span gamut helpers can consult the execution
	// plan without threading m through every recursive call site.
	m *Markdown

	// shieldedUnderscore holds the placeholder the code-friendly extra
	// substituted for every '_' ahead of StageItalicAndBold, so the
	// emphasis regexes never see one to match; cleared once
	// runSpanGamut unshields it right after that stage.
	shieldedUnderscore string
}

func newDocument(text string) *document {
	return &document{
		buf:           text,
		hashes:        newHashRegistry(),
		urls:          map[string]string{},
		titles:        map[string]string{},
		footnotes:     map[string]string{},
		headerIDsUsed: map[string]bool{},
		metadata:      map[string]any{},
	}
}

// Result is the output of Convert: the rendered HTML plus any optional
// side-channel products the enabled extras requested.
type Result struct {
	HTML     string
	TOC      []tocEntry
	TOCHTML  string
	Metadata map[string]any
}

// Markdown is the pipeline driver (spec.md §4.1, component C7). It owns
// the resolved Options and the computed execution plan, and is safe for
// concurrent use by multiple goroutines calling Convert, since every
// Convert call builds its own document.
type Markdown struct {
	opts *Options
	plan *execPlan

	instance string
}

// NewMarkdown validates opts and returns a ready-to-use converter.
func NewMarkdown(opts Options) (*Markdown, error) {
	norm, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	enabled := map[string]bool{}
	for name := range norm.Extras {
		enabled[name] = true
	}
	m := &Markdown{
		opts:     norm,
		plan:     buildExecPlan(enabled),
		instance: uuid.NewString(),
	}
	log.Debug("markdown converter ready", zap.String("instance", m.instance), zap.Int("extras", len(enabled)))
	return m, nil
}

// Convert runs the full pipeline over text and returns the rendered
// HTML plus any requested side products, following the Stage ordering
// of spec.md §4.1: PREPROCESS, HASH_HTML, LINK_DEFS, BLOCK_GAMUT,
// SPAN_GAMUT (invoked from within BLOCK_GAMUT's paragraph stage),
// POSTPROCESS, UNHASH_HTML.
func (m *Markdown) Convert(text string) (*Result, error) {
	doc := newDocument(text)
	doc.m = m

	opts := m.opts
	if opts.UseFileVars {
		fileOpts, ok := extractFileVars(text)
		if ok {
			merged := mergeFileVarOptions(*opts, fileOpts)
			norm, err := merged.normalize()
			if err != nil {
				return nil, err
			}
			opts = norm
			// Recompute the execution plan: file-vars may have turned
			// on extras that were not enabled at NewMarkdown time. See
			// DESIGN.md Open Question 1.
			enabled := map[string]bool{}
			for name := range opts.Extras {
				enabled[name] = true
			}
			m = &Markdown{opts: opts, plan: buildExecPlan(enabled), instance: m.instance}
			doc.m = m
		}
	}

	doc.stage = StagePreprocess
	doc.buf = normalizeNewlines(doc.buf)
	doc.buf = detab(doc.buf, opts.intParam("tab-size", opts.TabSize))
	doc.buf = stripBlankLineWhitespace(doc.buf)
	doc.buf += "\n\n"

	doc.buf = m.runExtrasBefore(doc, StagePreprocess, doc.buf)

	var meta map[string]any
	if opts.has("metadata") {
		stripped, md, err := extractMetadata(doc.buf)
		if err != nil {
			return nil, newMalformedInputError(StagePreprocess, err)
		}
		doc.buf = stripped
		meta = md
		doc.metadata = md
	}

	doc.buf = m.runExtrasAfter(doc, StagePreprocess, doc.buf)

	doc.stage = StageHashHTML
	doc.buf = m.runExtrasBefore(doc, StageHashHTML, doc.buf)
	if opts.SafeMode != "" {
		doc.buf = hashHTMLSpans(doc, doc.buf, true)
	}
	doc.buf = hashHTMLBlocks(doc, doc.buf, opts)
	doc.buf = m.runExtrasAfter(doc, StageHashHTML, doc.buf)

	doc.stage = StageLinkDefs
	doc.buf = m.runExtrasBefore(doc, StageLinkDefs, doc.buf)
	doc.buf = stripLinkDefinitions(doc, doc.buf)
	if opts.has("footnotes") {
		doc.buf = stripFootnoteDefinitions(doc, doc.buf)
	}
	doc.buf = m.runExtrasAfter(doc, StageLinkDefs, doc.buf)

	doc.stage = StageBlockGamut
	doc.buf = m.runBlockGamut(doc, doc.buf, opts)

	if opts.has("footnotes") {
		doc.buf = renderFootnotes(doc, doc.buf, opts)
	}

	doc.stage = StagePostprocess
	doc.buf = m.runExtrasBefore(doc, StagePostprocess, doc.buf)
	doc.buf = m.runExtrasAfter(doc, StagePostprocess, doc.buf)

	doc.stage = StageUnhashHTML
	doc.buf = m.runExtrasBefore(doc, StageUnhashHTML, doc.buf)
	// Shielded fragments nest (a hashed blockquote can hold a code-span
	// or escape key, an image span can hold an escape key), so every
	// table is restored again until a pass changes nothing.
	for {
		prev := doc.buf
		doc.buf = unhashHTMLBlocks(doc, doc.buf)
		doc.buf = unhashHTMLSpans(doc, doc.buf, opts)
		for key, code := range doc.hashes.codeTable {
			doc.buf = strings.ReplaceAll(doc.buf, key, code)
		}
		doc.buf = unescapeSpecialChars(doc, doc.buf)
		if doc.buf == prev {
			break
		}
	}
	doc.buf = m.runExtrasAfter(doc, StageUnhashHTML, doc.buf)

	doc.buf = strings.TrimRight(doc.buf, "\n") + "\n"

	res := &Result{HTML: doc.buf, Metadata: meta}
	if opts.has("toc") {
		res.TOC = doc.toc
		res.TOCHTML = renderTOC(doc.toc)
	}
	return res, nil
}

func (m *Markdown) runBlockGamut(doc *document, text string, opts *Options) string {
	return runBlockGamut(m, doc, text, opts)
}

// runExtrasBefore/runExtrasAfter run every enabled Extra anchored
// before/after Stage s against text, in the order buildExecPlan
// computed, and return the rewritten text. Called around every Stage
// the Driver visits, including the BLOCK_GAMUT and SPAN_GAMUT
// sub-stages (from runBlockGamut/runSpanGamut), so the Execution Plan
// actually governs when each Extra runs rather than merely describing
// it.
func (m *Markdown) runExtrasBefore(doc *document, s Stage, text string) string {
	return m.runExtras(doc, m.plan.before[s], text)
}

func (m *Markdown) runExtrasAfter(doc *document, s Stage, text string) string {
	return m.runExtras(doc, m.plan.after[s], text)
}

func (m *Markdown) runExtras(doc *document, names []string, text string) string {
	for _, name := range names {
		reg := extraRegistry[name]
		if reg == nil || !reg.extra.Test(m) {
			continue
		}
		out, err := reg.extra.Run(m, doc, text)
		if err != nil {
			log.Warn("extra failed", zapErr(newExtraError(doc.stage, name, err)))
			continue
		}
		text = out
	}
	return text
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}

func stripBlankLineWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
		}
	}
	return strings.Join(lines, "\n")
}
