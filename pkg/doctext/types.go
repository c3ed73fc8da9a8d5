package doctext

import "unicode/utf8"

// IndexUnit is the unit a document source counts its native indices in
type IndexUnit int

const (
	// UTF16 counts UTF-16 code units (Google Docs)
	UTF16 IndexUnit = iota
	// CodePoint counts Unicode code points (Document AI text anchors)
	CodePoint
)

// width returns how many native index units r occupies
func (u IndexUnit) width(r rune) int {
	if u == UTF16 && r > 0xFFFF && r <= utf8.MaxRune {
		return 2
	}
	return 1
}

// length returns the length of s in native index units
func (u IndexUnit) length(s string) int {
	n := 0
	for _, r := range s {
		n += u.width(r)
	}
	return n
}

// Document is a snapshot of a structured document's body
type Document struct {
	Body []Element // Top-level structural elements
	Unit IndexUnit // Unit of every Start/End in Body
}

// Element is one structural element of a document body.
// It is implemented by *Paragraph, *Table, *SectionBreak and *TableOfContents only.
type Element interface {
	Bounds() (start, end int)
	element()
}

// Paragraph is a paragraph-like element made of text runs
type Paragraph struct {
	Start, End int
	Runs       []TextRun
}

// TextRun is a run of text inside a paragraph. Runs without index
// metadata (HasIndex false) are placeholders and never searched.
type TextRun struct {
	Text       string
	Start, End int
	HasIndex   bool
}

// Table is a table element whose cells hold nested content
type Table struct {
	Start, End int
	Rows       []TableRow
}

// TableRow is a single table row
type TableRow struct {
	Cells []TableCell
}

// TableCell holds the structural content of one cell
type TableCell struct {
	Content []Element
}

// SectionBreak marks the start of a section
type SectionBreak struct {
	Start, End int
}

// TableOfContents is a generated table of contents
type TableOfContents struct {
	Start, End int
	Content    []Element
}

func (p *Paragraph) Bounds() (int, int)       { return p.Start, p.End }
func (t *Table) Bounds() (int, int)           { return t.Start, t.End }
func (s *SectionBreak) Bounds() (int, int)    { return s.Start, s.End }
func (c *TableOfContents) Bounds() (int, int) { return c.Start, c.End }

func (*Paragraph) element()       {}
func (*Table) element()           {}
func (*SectionBreak) element()    {}
func (*TableOfContents) element() {}

// TextSegment is a disjoint piece of document text tagged with its native
// [StartIndex, EndIndex) range. EndIndex-StartIndex is the text length in
// the document's IndexUnit.
type TextSegment struct {
	Text       string
	StartIndex int
	EndIndex   int
}

// CharMapping maps one rune of the flattened text back to the document.
// OriginalIndex is always StartIndex of the segment plus CharIndex.
type CharMapping struct {
	SegmentIndex  int // Index into the sorted segment list
	CharIndex     int // Offset within the segment, in native units
	OriginalIndex int // Native document index
}

// MatchRange is a half-open [StartIndex, EndIndex) range in native document indices
type MatchRange struct {
	StartIndex int `json:"startIndex"`
	EndIndex   int `json:"endIndex"`
}
