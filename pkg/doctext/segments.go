package doctext

import (
	"sort"
	"strings"
)

// ExtractSegments walks the element tree and returns one segment per indexed
// text run, in traversal order. Table cells are visited depth-first, so
// callers must sort the result before flattening.
func ExtractSegments(elems []Element) []TextSegment {
	var segments []TextSegment
	for _, el := range elems {
		segments = appendSegments(segments, el)
	}
	return segments
}

func appendSegments(segments []TextSegment, el Element) []TextSegment {
	switch e := el.(type) {
	case *Paragraph:
		for _, run := range e.Runs {
			if !run.HasIndex || run.Start >= run.End {
				continue
			}
			segments = append(segments, TextSegment{
				Text:       run.Text,
				StartIndex: run.Start,
				EndIndex:   run.End,
			})
		}
	case *Table:
		for _, row := range e.Rows {
			for _, cell := range row.Cells {
				for _, content := range cell.Content {
					segments = appendSegments(segments, content)
				}
			}
		}
	case *SectionBreak, *TableOfContents:
		// No searchable text
	}
	return segments
}

// SortSegments orders segments by StartIndex, keeping traversal order for ties
func SortSegments(segments []TextSegment) {
	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].StartIndex < segments[j].StartIndex
	})
}

// ExtractText returns the document text covering [start, end), concatenating
// the overlapping part of every segment in segment order.
func ExtractText(segments []TextSegment, start, end int, unit IndexUnit) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg.EndIndex <= start || seg.StartIndex >= end {
			continue
		}
		from := max(start, seg.StartIndex) - seg.StartIndex
		to := min(end, seg.EndIndex) - seg.StartIndex
		b.WriteString(sliceUnits(seg.Text, from, to, unit))
	}
	return b.String()
}

// sliceUnits returns the runes of s whose unit offset lies in [from, to)
func sliceUnits(s string, from, to int, unit IndexUnit) string {
	var b strings.Builder
	offset := 0
	for _, r := range s {
		if offset >= to {
			break
		}
		if offset >= from {
			b.WriteRune(r)
		}
		offset += unit.width(r)
	}
	return b.String()
}
