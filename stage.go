//
// Blackfriday Markdown Processor
// Available at http://github.com/russross/blackfriday
//
// Copyright © 2011 Russ Ross <russ@russross.com>.
// Distributed under the Simplified BSD License.
// See README.md for details.
//

package blackfriday

// Stage identifies a point in the conversion pipeline where an Extra may
// hook in. Stage values are spaced 10 apart; Extras anchor "before" or
// "after" a Stage through the execution plan's per-Stage name lists.
type Stage int

const (
	StagePreprocess Stage = iota * 10
	StageHashHTML
	StageLinkDefs
	StageBlockGamut
	StageHeaders
	StageLists
	StageCodeBlocks
	StageBlockQuotes
	StageParagraphs
	StageSpanGamut
	StageCodeSpans
	StageEscapeSpecial
	StageLinks
	StageItalicAndBold
	StagePostprocess
	StageUnhashHTML
)

var stageNames = map[Stage]string{
	StagePreprocess:    "PREPROCESS",
	StageHashHTML:      "HASH_HTML",
	StageLinkDefs:      "LINK_DEFS",
	StageBlockGamut:    "BLOCK_GAMUT",
	StageHeaders:       "HEADERS",
	StageLists:         "LISTS",
	StageCodeBlocks:    "CODE_BLOCKS",
	StageBlockQuotes:   "BLOCK_QUOTES",
	StageParagraphs:    "PARAGRAPHS",
	StageSpanGamut:     "SPAN_GAMUT",
	StageCodeSpans:     "CODE_SPANS",
	StageEscapeSpecial: "ESCAPE_SPECIAL",
	StageLinks:         "LINKS",
	StageItalicAndBold: "ITALIC_AND_BOLD",
	StagePostprocess:   "POSTPROCESS",
	StageUnhashHTML:    "UNHASH_HTML",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "UNKNOWN_STAGE"
}

// order is a fine-grained position on the Stage scale; stageOrder
// converts a Stage to it. Stage values land on exact multiples of 10 so
// there is room on either side. The extra registry does not use it:
// buildExecPlan places extras in per-Stage before/after name lists.
type order float64

func stageOrder(s Stage) order {
	return order(s)
}
