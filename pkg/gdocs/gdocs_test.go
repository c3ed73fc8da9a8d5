package gdocs

import (
	"context"
	"unicode/utf16"

	"google.golang.org/api/docs/v1"
)

// textParagraph builds a paragraph element of consecutive text runs
func textParagraph(start int64, runs ...string) *docs.StructuralElement {
	el := &docs.StructuralElement{StartIndex: start, Paragraph: &docs.Paragraph{}}
	pos := start
	for _, s := range runs {
		n := int64(len(utf16.Encode([]rune(s))))
		el.Paragraph.Elements = append(el.Paragraph.Elements, &docs.ParagraphElement{
			StartIndex: pos,
			EndIndex:   pos + n,
			TextRun:    &docs.TextRun{Content: s},
		})
		pos += n
	}
	el.EndIndex = pos
	return el
}

// singleRowTable builds a one-row table whose cells hold the given content
func singleRowTable(start, end int64, cells ...*docs.StructuralElement) *docs.StructuralElement {
	row := &docs.TableRow{}
	for _, c := range cells {
		row.TableCells = append(row.TableCells, &docs.TableCell{Content: []*docs.StructuralElement{c}})
	}
	return &docs.StructuralElement{
		StartIndex: start,
		EndIndex:   end,
		Table:      &docs.Table{TableRows: []*docs.TableRow{row}},
	}
}

// sampleDocument lays out:
//
//	[0,1)   section break
//	[1,27)  "Hello world. Hello again.\n"
//	[27,49) table with cells "Cell one\n" [29,38) and "Cell two\n" [39,48)
//	[49,67) "Final don’t " + inline object at 61 + "stop\n"
func sampleDocument() *docs.Document {
	final := textParagraph(49, "Final don’t ")
	final.Paragraph.Elements = append(final.Paragraph.Elements,
		&docs.ParagraphElement{StartIndex: 61, EndIndex: 62, InlineObjectElement: &docs.InlineObjectElement{InlineObjectId: "kix.img"}},
		&docs.ParagraphElement{StartIndex: 62, EndIndex: 67, TextRun: &docs.TextRun{Content: "stop\n"}},
	)
	final.EndIndex = 67

	return &docs.Document{
		DocumentId: "doc-1",
		RevisionId: "rev-1",
		Body: &docs.Body{Content: []*docs.StructuralElement{
			{EndIndex: 1, SectionBreak: &docs.SectionBreak{}},
			textParagraph(1, "Hello world. ", "Hello again.\n"),
			singleRowTable(27, 49, textParagraph(29, "Cell one\n"), textParagraph(39, "Cell two\n")),
			final,
		}},
	}
}

// fakeGetter returns a canned document and records the request
type fakeGetter struct {
	doc *docs.Document
	err error

	calls  int
	id     string
	fields string
	tabs   bool
}

func (f *fakeGetter) GetDocument(_ context.Context, documentID string, fields string, includeTabs bool) (*docs.Document, error) {
	f.calls++
	f.id = documentID
	f.fields = fields
	f.tabs = includeTabs
	return f.doc, f.err
}
