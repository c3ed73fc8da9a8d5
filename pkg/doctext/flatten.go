package doctext

import "strings"

// Flattened is the logical string built from a sorted segment list, with a
// per-rune mapping back to native document indices.
type Flattened struct {
	Text     string        // Concatenated segment text
	Map      []CharMapping // One entry per rune of Text
	Segments []TextSegment // Segments the text was built from
	Unit     IndexUnit     // Unit of the native indices

	runes []rune
}

// Flatten concatenates segments, which must already be sorted by StartIndex
func Flatten(segments []TextSegment, unit IndexUnit) *Flattened {
	var b strings.Builder
	var charMap []CharMapping
	var rs []rune

	for segIdx, seg := range segments {
		b.WriteString(seg.Text)
		offset := 0
		for _, r := range seg.Text {
			charMap = append(charMap, CharMapping{
				SegmentIndex:  segIdx,
				CharIndex:     offset,
				OriginalIndex: seg.StartIndex + offset,
			})
			rs = append(rs, r)
			offset += unit.width(r)
		}
	}

	return &Flattened{
		Text:     b.String(),
		Map:      charMap,
		Segments: segments,
		Unit:     unit,
		runes:    rs,
	}
}

// Len returns the number of runes in the flattened text
func (f *Flattened) Len() int {
	return len(f.runes)
}

// nativeRange maps the logical rune range [from, to) to native indices
func (f *Flattened) nativeRange(from, to int) MatchRange {
	last := to - 1
	return MatchRange{
		StartIndex: f.Map[from].OriginalIndex,
		EndIndex:   f.Map[last].OriginalIndex + f.Unit.width(f.runes[last]),
	}
}
