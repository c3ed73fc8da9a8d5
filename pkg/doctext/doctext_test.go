package doctext

// para builds a paragraph of consecutive indexed runs starting at start
func para(start int, runs ...string) *Paragraph {
	p := &Paragraph{Start: start}
	pos := start
	for _, s := range runs {
		n := UTF16.length(s)
		p.Runs = append(p.Runs, TextRun{Text: s, Start: pos, End: pos + n, HasIndex: true})
		pos += n
	}
	p.End = pos
	return p
}

// sampleDoc is a small document with a table:
//
//	[0,1)   section break
//	[1,27)  "Hello world. Hello again.\n"
//	[27,49) table with cells "Cell one\n" [29,38) and "Cell two\n" [39,48)
//	[49,66) "Final don’t stop\n"
func sampleDoc() Document {
	return Document{
		Body: []Element{
			&SectionBreak{Start: 0, End: 1},
			para(1, "Hello world. ", "Hello again.\n"),
			&Table{
				Start: 27,
				End:   49,
				Rows: []TableRow{{
					Cells: []TableCell{
						{Content: []Element{para(29, "Cell one\n")}},
						{Content: []Element{para(39, "Cell two\n")}},
					},
				}},
			},
			para(49, "Final don’t stop\n"),
		},
	}
}
