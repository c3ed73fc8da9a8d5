package gdocai

import (
	"sort"

	"cloud.google.com/go/documentai/apiv1/documentaipb"

	"github.com/gardar/docspan/pkg/doctext"
)

// ContentFromProto converts the paragraphs and tables detected by Document AI
// into a searchable document. Each table cell becomes a paragraph inside a
// table element, and page paragraphs lying inside a table are dropped so
// cell text is not searched twice.
func ContentFromProto(doc *documentaipb.Document) doctext.Document {
	result := doctext.Document{Unit: doctext.CodePoint}
	if doc == nil {
		return result
	}
	runes := []rune(doc.Text)

	for _, page := range doc.Pages {
		var tables []*doctext.Table
		for _, table := range page.Tables {
			if t := tableFromProto(table, runes); t != nil {
				tables = append(tables, t)
			}
		}

		for _, paragraph := range page.Paragraphs {
			p := paragraphFromLayout(paragraph.GetLayout(), runes)
			if p == nil || insideTable(p, tables) {
				continue
			}
			result.Body = append(result.Body, p)
		}
		for _, t := range tables {
			result.Body = append(result.Body, t)
		}
	}

	sort.SliceStable(result.Body, func(i, j int) bool {
		si, _ := result.Body[i].Bounds()
		sj, _ := result.Body[j].Bounds()
		return si < sj
	})

	return result
}

func paragraphFromLayout(layout *documentaipb.Document_Page_Layout, runes []rune) *doctext.Paragraph {
	runs := runsFromLayout(layout, runes)
	start, end, ok := runBounds(runs)
	if !ok {
		return nil
	}
	return &doctext.Paragraph{Start: start, End: end, Runs: runs}
}

// tableFromProto builds a table from header and body rows. Its bounds come
// from the table layout, or from its cells when the layout has no anchor.
func tableFromProto(table *documentaipb.Document_Page_Table, runes []rune) *doctext.Table {
	t := &doctext.Table{}
	found := false

	rows := append(append([]*documentaipb.Document_Page_Table_TableRow{}, table.HeaderRows...), table.BodyRows...)
	for _, row := range rows {
		var r doctext.TableRow
		for _, cell := range row.GetCells() {
			var content []doctext.Element
			if p := paragraphFromLayout(cell.GetLayout(), runes); p != nil {
				content = append(content, p)
				if !found || p.Start < t.Start {
					t.Start = p.Start
				}
				if !found || p.End > t.End {
					t.End = p.End
				}
				found = true
			}
			r.Cells = append(r.Cells, doctext.TableCell{Content: content})
		}
		t.Rows = append(t.Rows, r)
	}

	if start, end, ok := runBounds(runsFromLayout(table.GetLayout(), runes)); ok {
		t.Start, t.End = start, end
		found = true
	}
	if !found {
		return nil
	}
	return t
}

// insideTable reports whether p lies within the bounds of any table
func insideTable(p *doctext.Paragraph, tables []*doctext.Table) bool {
	for _, t := range tables {
		if p.Start >= t.Start && p.End <= t.End {
			return true
		}
	}
	return false
}
