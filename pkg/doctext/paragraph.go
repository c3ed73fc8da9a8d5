package doctext

// FindEnclosingParagraph returns the bounds of the first paragraph whose
// [start, end) contains index. Tables containing index are searched cell by
// cell; other elements never enclose a paragraph.
func FindEnclosingParagraph(elems []Element, index int) (MatchRange, bool) {
	for _, el := range elems {
		start, end := el.Bounds()
		if index < start || index >= end {
			continue
		}

		switch e := el.(type) {
		case *Paragraph:
			return MatchRange{StartIndex: start, EndIndex: end}, true
		case *Table:
			for _, row := range e.Rows {
				for _, cell := range row.Cells {
					if r, ok := FindEnclosingParagraph(cell.Content, index); ok {
						return r, true
					}
				}
			}
		case *SectionBreak, *TableOfContents:
		}
	}
	return MatchRange{}, false
}
