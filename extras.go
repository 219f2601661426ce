package blackfriday

import "sort"

// Extra is an optional pipeline extension. An Extra hooks in relative to
// a Stage (or another Extra) and gets the chance to test whether it
// applies before running against the document buffer.
//
// Extras are registered once, globally, by calling RegisterExtra from an
// init function (mirroring the distillation source's class-level
// registration). A Markdown value only runs the extras named in its
// Options.Extras set.
type Extra interface {
	// Name is the option key used to enable this extra, e.g. "tables".
	Name() string
	// Test reports whether this extra applies to the given document's
	// configuration (some extras are meaningless without another extra
	// also being enabled).
	Test(m *Markdown) bool
	// Run applies the extra's transform to text at the Stage (or
	// extra) it is anchored to, and returns the rewritten text. text is
	// whatever is live at that pipeline point: the whole buffer at
	// PREPROCESS/POSTPROCESS, or the narrower fragment BLOCK_GAMUT/
	// SPAN_GAMUT are currently recursing over (a blockquote's body, a
	// table cell, a list item).
	Run(m *Markdown, doc *document, text string) (string, error)
}

// anchor describes where in the pipeline an Extra's Run should execute:
// relative to a Stage, or relative to another named Extra.
type anchor struct {
	stage      Stage
	hasStage   bool
	extraName  string
	before     bool
}

type registration struct {
	extra  Extra
	before []anchor
	after  []anchor
}

var extraRegistry = map[string]*registration{}
var extraRegistrationOrder []string

// RegisterExtra adds e to the global registry. before/after name the
// Stages or other Extras (by Name()) that e must run before/after; pass
// nil for either to leave that side unconstrained. Stages are given as
// Stage values; other extras are given as their string Name().
func RegisterExtra(e Extra, before, after []any) {
	name := e.Name()
	if _, exists := extraRegistry[name]; !exists {
		extraRegistrationOrder = append(extraRegistrationOrder, name)
	}
	reg := &registration{extra: e}
	reg.before = toAnchors(before, true)
	reg.after = toAnchors(after, false)
	extraRegistry[name] = reg
}

// DeregisterExtra removes a previously registered extra, e.g. so a
// derived extra can replace it under the same name.
func DeregisterExtra(name string) {
	delete(extraRegistry, name)
	for i, n := range extraRegistrationOrder {
		if n == name {
			extraRegistrationOrder = append(extraRegistrationOrder[:i], extraRegistrationOrder[i+1:]...)
			break
		}
	}
}

func toAnchors(vals []any, before bool) []anchor {
	out := make([]anchor, 0, len(vals))
	for _, v := range vals {
		switch t := v.(type) {
		case Stage:
			out = append(out, anchor{stage: t, hasStage: true, before: before})
		case string:
			out = append(out, anchor{extraName: t, before: before})
		}
	}
	return out
}

// execPlan maps a Stage to the ordered list of extra names that should
// run immediately before it and immediately after it, computed once per
// Markdown (not globally) since it depends on which extras are enabled.
type execPlan struct {
	before map[Stage][]string
	after  map[Stage][]string
}

// buildExecPlan computes, for the given set of enabled extra names, a
// deterministic ordering honoring each extra's before/after anchors. Each
// enabled extra goes into the before- or after-list of the Stage it is
// anchored to (following extra-to-extra anchors to the Stage they end
// at); each list is then ordered by a stable topological sort over the
// extra-to-extra anchors, with registration order breaking ties. Extras
// caught in a cycle are appended in registration order; no error is
// reported.
func buildExecPlan(enabled map[string]bool) *execPlan {
	var names []string
	for _, n := range extraRegistrationOrder {
		if enabled[n] {
			names = append(names, n)
		}
	}

	// Group names by the Stage they anchor to (via before or after);
	// an extra with no stage anchor at all defaults to running after
	// StageBlockGamut, matching the "run during block gamut" placement.
	beforeOf := map[Stage][]string{}
	afterOf := map[Stage][]string{}

	// sideOf resolves the Stage (and side) an extra is ultimately anchored to,
	// following extra-to-extra anchors transitively (e.g. "run before
	// zz-second", where zz-second itself runs after StageParagraphs)
	// so a chain of extra-relative anchors still lands in one bucket.
	visiting := map[string]bool{}
	var sideOf func(n string) (Stage, bool, bool)
	sideOf = func(n string) (stage Stage, before bool, ok bool) {
		reg := extraRegistry[n]
		if reg == nil || visiting[n] {
			return 0, false, false
		}
		visiting[n] = true
		defer delete(visiting, n)
		for _, a := range reg.before {
			if a.hasStage {
				return a.stage, true, true
			}
		}
		for _, a := range reg.after {
			if a.hasStage {
				return a.stage, false, true
			}
		}
		for _, a := range reg.before {
			if a.extraName != "" {
				if s, b, ok := sideOf(a.extraName); ok {
					return s, b, true
				}
			}
		}
		for _, a := range reg.after {
			if a.extraName != "" {
				if s, b, ok := sideOf(a.extraName); ok {
					return s, b, true
				}
			}
		}
		return 0, false, false
	}

	for _, n := range names {
		reg := extraRegistry[n]
		if reg == nil {
			continue
		}
		s, before, ok := sideOf(n)
		if !ok {
			afterOf[StageBlockGamut] = append(afterOf[StageBlockGamut], n)
			continue
		}
		if before {
			beforeOf[s] = append(beforeOf[s], n)
		} else {
			afterOf[s] = append(afterOf[s], n)
		}
	}

	// Within a stage bucket, order by cross-extra before/after anchors
	// using a small stable topological pass; fall back to registration
	// order for anything not constrained.
	for s, bucket := range beforeOf {
		beforeOf[s] = topoSortExtras(bucket)
	}
	for s, bucket := range afterOf {
		afterOf[s] = topoSortExtras(bucket)
	}

	return &execPlan{before: beforeOf, after: afterOf}
}

func topoSortExtras(names []string) []string {
	index := make(map[string]int, len(names))
	for i, n := range names {
		index[n] = i
	}
	edges := map[string][]string{}
	indeg := map[string]int{}
	for _, n := range names {
		indeg[n] = 0
	}
	addEdge := func(from, to string) {
		if _, ok := index[from]; !ok {
			return
		}
		if _, ok := index[to]; !ok {
			return
		}
		edges[from] = append(edges[from], to)
		indeg[to]++
	}
	for _, n := range names {
		reg := extraRegistry[n]
		if reg == nil {
			continue
		}
		for _, a := range reg.before {
			if a.extraName != "" {
				addEdge(n, a.extraName)
			}
		}
		for _, a := range reg.after {
			if a.extraName != "" {
				addEdge(a.extraName, n)
			}
		}
	}

	var queue []string
	for _, n := range names {
		if indeg[n] == 0 {
			queue = append(queue, n)
		}
	}
	sort.SliceStable(queue, func(i, j int) bool { return index[queue[i]] < index[queue[j]] })

	var out []string
	seen := map[string]bool{}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
		var next []string
		for _, to := range edges[n] {
			indeg[to]--
			if indeg[to] == 0 {
				next = append(next, to)
			}
		}
		sort.SliceStable(next, func(i, j int) bool { return index[next[i]] < index[next[j]] })
		queue = append(queue, next...)
	}
	// Anything left (a cycle) is appended in original order.
	for _, n := range names {
		if !seen[n] {
			out = append(out, n)
		}
	}
	return out
}
