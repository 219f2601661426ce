package blackfriday

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type noopExtra struct{ name string }

func (e noopExtra) Name() string          { return e.name }
func (e noopExtra) Test(m *Markdown) bool { return true }
func (e noopExtra) Run(m *Markdown, doc *document, text string) (string, error) { return text, nil }

func TestBuildExecPlanOrdersByAnchor(t *testing.T) {
	RegisterExtra(noopExtra{"zz-first"}, nil, []any{"zz-second"})
	RegisterExtra(noopExtra{"zz-second"}, nil, []any{StageParagraphs})
	defer DeregisterExtra("zz-first")
	defer DeregisterExtra("zz-second")

	plan := buildExecPlan(map[string]bool{"zz-first": true, "zz-second": true})
	after := plan.after[StageParagraphs]
	require.Contains(t, after, "zz-first")
	require.Contains(t, after, "zz-second")

	firstIdx, secondIdx := -1, -1
	for i, n := range after {
		if n == "zz-first" {
			firstIdx = i
		}
		if n == "zz-second" {
			secondIdx = i
		}
	}
	require.Less(t, secondIdx, firstIdx, "zz-first must run after zz-second per its anchor")
}

func TestListsRenderOrderedAndUnordered(t *testing.T) {
	res := mustConvert(t, Options{}, "* one\n* two\n\n1. a\n2. b\n")
	require.Contains(t, res.HTML, "<ul>")
	require.Contains(t, res.HTML, "<ol>")
	require.Contains(t, res.HTML, "<li>one</li>")
}
