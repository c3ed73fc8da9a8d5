package gdocai

import (
	"cloud.google.com/go/documentai/apiv1/documentaipb"

	"github.com/gardar/docspan/pkg/doctext"
)

// runsFromLayout turns a layout's text anchor segments into indexed text runs.
// Indices are code points into the document text and are clamped to it.
func runsFromLayout(layout *documentaipb.Document_Page_Layout, runes []rune) []doctext.TextRun {
	if layout == nil || layout.TextAnchor == nil {
		return nil
	}
	totalRunes := len(runes)

	var runs []doctext.TextRun
	for _, seg := range layout.TextAnchor.TextSegments {
		start := int(seg.StartIndex)
		end := int(seg.EndIndex)
		if start < 0 {
			start = 0
		}
		if end > totalRunes {
			end = totalRunes
		}
		if start > end {
			start = end
		}
		runs = append(runs, doctext.TextRun{
			Text:     string(runes[start:end]),
			Start:    start,
			End:      end,
			HasIndex: end > start,
		})
	}
	return runs
}

// runBounds returns the smallest range covering all indexed runs
func runBounds(runs []doctext.TextRun) (start, end int, ok bool) {
	for _, r := range runs {
		if !r.HasIndex {
			continue
		}
		if !ok || r.Start < start {
			start = r.Start
		}
		if !ok || r.End > end {
			end = r.End
		}
		ok = true
	}
	return start, end, ok
}
