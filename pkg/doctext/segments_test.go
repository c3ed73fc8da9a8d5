package doctext

import (
	"reflect"
	"testing"
)

func TestExtractSegments(t *testing.T) {
	doc := sampleDoc()
	doc.Body = append(doc.Body,
		&TableOfContents{Start: 66, End: 80, Content: []Element{para(67, "Contents\n")}},
		&Paragraph{Start: 80, End: 82, Runs: []TextRun{{Text: "\n"}, {Text: "x", Start: 81, End: 82, HasIndex: true}}},
	)

	got := ExtractSegments(doc.Body)
	want := []TextSegment{
		{Text: "Hello world. ", StartIndex: 1, EndIndex: 14},
		{Text: "Hello again.\n", StartIndex: 14, EndIndex: 27},
		{Text: "Cell one\n", StartIndex: 29, EndIndex: 38},
		{Text: "Cell two\n", StartIndex: 39, EndIndex: 48},
		{Text: "Final don’t stop\n", StartIndex: 49, EndIndex: 66},
		{Text: "x", StartIndex: 81, EndIndex: 82},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractSegments() =\n%v\nwant\n%v", got, want)
	}
}

func TestSortSegments(t *testing.T) {
	segments := []TextSegment{
		{Text: "c", StartIndex: 20, EndIndex: 21},
		{Text: "a", StartIndex: 1, EndIndex: 2},
		{Text: "b", StartIndex: 10, EndIndex: 11},
	}
	SortSegments(segments)

	for i, want := range []string{"a", "b", "c"} {
		if segments[i].Text != want {
			t.Errorf("segments[%d] = %q, want %q", i, segments[i].Text, want)
		}
	}
}

func TestExtractText(t *testing.T) {
	segments := ExtractSegments(sampleDoc().Body)

	tests := []struct {
		name       string
		start, end int
		want       string
	}{
		{"inside one segment", 7, 12, "world"},
		{"across segments", 7, 19, "world. Hello"},
		{"across table gap", 25, 33, ".\nCell"},
		{"before document", -5, 0, ""},
		{"whole cell", 29, 38, "Cell one\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractText(segments, tt.start, tt.end, UTF16); got != tt.want {
				t.Errorf("ExtractText(%d, %d) = %q, want %q", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestExtractText_SurrogatePairs(t *testing.T) {
	segments := []TextSegment{{Text: "a😀b", StartIndex: 10, EndIndex: 14}}

	if got := ExtractText(segments, 11, 13, UTF16); got != "😀" {
		t.Errorf("UTF16 extract = %q, want %q", got, "😀")
	}
	if got := ExtractText(segments, 13, 14, UTF16); got != "b" {
		t.Errorf("UTF16 extract = %q, want %q", got, "b")
	}
	if got := ExtractText(segments, 11, 13, CodePoint); got != "😀b" {
		t.Errorf("CodePoint extract = %q, want %q", got, "😀b")
	}
}
