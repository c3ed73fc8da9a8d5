package gdocs

import (
	"fmt"
	"strings"

	"google.golang.org/api/docs/v1"

	"github.com/gardar/docspan/pkg/doctext"
)

// Snapshot is a converted document as it was when fetched
type Snapshot struct {
	doctext.Document
	DocumentID string
	RevisionID string
	TabID      string // Resolved tab ID, empty for the document body
}

// SnapshotFromDocs converts a fetched document. With an empty tabID the
// document body is used; otherwise the tab is looked up by ID, then by title.
func SnapshotFromDocs(doc *docs.Document, tabID string) (*Snapshot, error) {
	if doc == nil {
		return nil, fmt.Errorf("no document provided")
	}

	snap := &Snapshot{
		Document:   doctext.Document{Unit: doctext.UTF16},
		DocumentID: doc.DocumentId,
		RevisionID: doc.RevisionId,
	}

	if tabID == "" {
		if doc.Body != nil {
			snap.Body = ContentFromDocs(doc.Body.Content)
		}
		return snap, nil
	}

	tab := findTab(flattenTabs(doc.Tabs), tabID)
	if tab == nil {
		return nil, fmt.Errorf("tab %q: %w", tabID, ErrNotFound)
	}
	snap.TabID = tab.TabProperties.TabId
	if tab.DocumentTab != nil && tab.DocumentTab.Body != nil {
		snap.Body = ContentFromDocs(tab.DocumentTab.Body.Content)
	}
	return snap, nil
}

// ContentFromDocs converts Docs structural elements into doctext elements.
// Elements carrying none of the requested variants are dropped.
func ContentFromDocs(content []*docs.StructuralElement) []doctext.Element {
	var result []doctext.Element
	for _, el := range content {
		if converted := convertElement(el); converted != nil {
			result = append(result, converted)
		}
	}
	return result
}

func convertElement(el *docs.StructuralElement) doctext.Element {
	if el == nil {
		return nil
	}
	start, end := int(el.StartIndex), int(el.EndIndex)

	switch {
	case el.Paragraph != nil:
		p := &doctext.Paragraph{Start: start, End: end}
		for _, pe := range el.Paragraph.Elements {
			// Inline objects, page breaks and auto text have no text run
			if pe == nil || pe.TextRun == nil {
				continue
			}
			p.Runs = append(p.Runs, doctext.TextRun{
				Text:     pe.TextRun.Content,
				Start:    int(pe.StartIndex),
				End:      int(pe.EndIndex),
				HasIndex: pe.EndIndex > pe.StartIndex,
			})
		}
		return p

	case el.Table != nil:
		t := &doctext.Table{Start: start, End: end}
		for _, row := range el.Table.TableRows {
			if row == nil {
				continue
			}
			var r doctext.TableRow
			for _, cell := range row.TableCells {
				if cell == nil {
					continue
				}
				r.Cells = append(r.Cells, doctext.TableCell{Content: ContentFromDocs(cell.Content)})
			}
			t.Rows = append(t.Rows, r)
		}
		return t

	case el.SectionBreak != nil:
		return &doctext.SectionBreak{Start: start, End: end}

	case el.TableOfContents != nil:
		return &doctext.TableOfContents{
			Start:   start,
			End:     end,
			Content: ContentFromDocs(el.TableOfContents.Content),
		}
	}

	return nil
}

// flattenTabs collects all tabs, including nested child tabs, in document order
func flattenTabs(tabs []*docs.Tab) []*docs.Tab {
	var result []*docs.Tab
	for _, tab := range tabs {
		if tab == nil {
			continue
		}
		result = append(result, tab)
		if len(tab.ChildTabs) > 0 {
			result = append(result, flattenTabs(tab.ChildTabs)...)
		}
	}
	return result
}

// findTab looks up a tab by ID, then by case-insensitive title
func findTab(tabs []*docs.Tab, query string) *docs.Tab {
	query = strings.TrimSpace(query)
	for _, tab := range tabs {
		if tab.TabProperties != nil && tab.TabProperties.TabId == query {
			return tab
		}
	}
	for _, tab := range tabs {
		if tab.TabProperties != nil && strings.EqualFold(tab.TabProperties.Title, query) {
			return tab
		}
	}
	return nil
}

// DocsRange converts a match into a Docs API range for request builders
func DocsRange(r doctext.MatchRange, tabID string) *docs.Range {
	return &docs.Range{
		StartIndex: int64(r.StartIndex),
		EndIndex:   int64(r.EndIndex),
		TabId:      tabID,
	}
}
