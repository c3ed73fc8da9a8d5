package gdocs

// maxTabNesting is how deep the Docs API nests child tabs
const maxTabNesting = 3

// ContentFields returns the field mask needed for text search: indices and
// text runs of paragraphs, recursing into up to depth levels of tables.
func ContentFields(depth int) string {
	return "documentId,revisionId,body(content(" + elementFields(depth, false) + "))"
}

// StructureFields is ContentFields plus the section break and table of
// contents markers needed for structural lookups.
func StructureFields(depth int) string {
	return "documentId,revisionId,body(content(" + elementFields(depth, true) + "))"
}

// TabFields wraps an element mask for documents fetched with tab content
func TabFields(depth int, structural bool) string {
	return "documentId,revisionId,tabs(" + tabFields(elementFields(depth, structural), maxTabNesting) + ")"
}

func elementFields(depth int, structural bool) string {
	f := "startIndex,endIndex,paragraph(elements(startIndex,endIndex,textRun(content)))"
	if structural {
		f += ",sectionBreak,tableOfContents(content(startIndex,endIndex))"
	}
	if depth > 0 {
		f += ",table(tableRows(tableCells(content(" + elementFields(depth-1, structural) + "))))"
	}
	return f
}

func tabFields(elements string, levels int) string {
	f := "tabProperties(tabId,title),documentTab(body(content(" + elements + ")))"
	if levels > 1 {
		f += ",childTabs(" + tabFields(elements, levels-1) + ")"
	}
	return f
}
