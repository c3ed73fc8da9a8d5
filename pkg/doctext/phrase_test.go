package doctext

import (
	"errors"
	"testing"
)

func TestContractionSplitter(t *testing.T) {
	tests := []struct {
		query  string
		before string
		after  string
		ok     bool
	}{
		{"that's almost 20% more", "that", "s almost 20% more", true},
		{"don’t", "", "", false},
		{"don't know", "don", "t know", true},
		{"they‘ll go", "they", "ll go", true},
		{"We’RE here", "We", "RE here", true},
		{"I think she'd know", "she", "d know", true},
		{"it`ve been", "it", "ve been", true},
		{"it`ve", "", "", false},
		{"don't  ", "", "", false},
		{"that's", "", "", false},
		{"rock'n'roll", "", "", false},
		{"no apostrophe here", "", "", false},
		{"'s alone", "", "", false},
	}

	var s ContractionSplitter
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			before, after, ok := s.Split(tt.query)
			if ok != tt.ok || before != tt.before || after != tt.after {
				t.Errorf("Split(%q) = %q, %q, %v; want %q, %q, %v",
					tt.query, before, after, ok, tt.before, tt.after, tt.ok)
			}
		})
	}
}

func TestLocatePhrase_BothHalves(t *testing.T) {
	ix := NewIndex(Document{Body: []Element{
		para(1, "We know that. ", "It was s almost 20% more\n"),
	}})

	ranges, ok, err := ix.LocatePhrase("that's almost 20% more", 1)
	if err != nil || !ok {
		t.Fatalf("LocatePhrase = %v, %v, %v", ranges, ok, err)
	}
	if len(ranges) != 2 {
		t.Fatalf("got %d ranges, want 2", len(ranges))
	}
	if got := ix.Text(ranges[0]); got != "that" {
		t.Errorf("before = %q, want %q", got, "that")
	}
	if got := ix.Text(ranges[1]); got != "s almost 20% more" {
		t.Errorf("after = %q, want %q", got, "s almost 20% more")
	}
}

func TestLocatePhrase_BareContraction(t *testing.T) {
	ix := NewIndex(Document{Body: []Element{para(1, "It is time. I don't know\n")}})

	ranges, ok, err := ix.LocatePhrase("don't", 1)
	if err != nil || !ok {
		t.Fatalf("LocatePhrase = %v, %v, %v", ranges, ok, err)
	}
	if len(ranges) != 1 || ranges[0] != (MatchRange{StartIndex: 15, EndIndex: 20}) {
		t.Errorf("ranges = %v, want the single range [15,20)", ranges)
	}
	if got := ix.Text(ranges[0]); got != "don't" {
		t.Errorf("Text = %q, want %q", got, "don't")
	}
}

func TestLocatePhrase_WholePhraseFirst(t *testing.T) {
	ix := NewIndex(Document{Body: []Element{para(1, "We know that. I said that's almost 20% more\n")}})

	ranges, ok, err := ix.LocatePhrase("that's almost 20% more", 1)
	if err != nil || !ok {
		t.Fatalf("LocatePhrase = %v, %v, %v", ranges, ok, err)
	}
	if len(ranges) != 1 || ranges[0] != (MatchRange{StartIndex: 22, EndIndex: 44}) {
		t.Errorf("ranges = %v, want the whole phrase at [22,44)", ranges)
	}
}

func TestLocatePhrase_SplitsAtContractedWord(t *testing.T) {
	ix := NewIndex(Document{Body: []Element{
		para(1, "I think she. ", "Then d know more\n"),
	}})

	ranges, ok, err := ix.LocatePhrase("I think she'd know", 1)
	if err != nil || !ok {
		t.Fatalf("LocatePhrase = %v, %v, %v", ranges, ok, err)
	}
	if len(ranges) != 2 || ix.Text(ranges[0]) != "she" || ix.Text(ranges[1]) != "d know" {
		t.Errorf("ranges = %v, want \"she\" and \"d know\"", ranges)
	}
}

func TestLocatePhrase_OneHalfMissing(t *testing.T) {
	ix := NewIndex(Document{Body: []Element{para(1, "We know that. Nothing else\n")}})

	ranges, ok, err := ix.LocatePhrase("that's almost 20% more", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok || ranges != nil {
		t.Errorf("LocatePhrase = %v, %v; want no result", ranges, ok)
	}
}

func TestLocatePhrase_WholePhraseFallback(t *testing.T) {
	ix := NewIndex(sampleDoc())

	ranges, ok, err := ix.LocatePhrase("again", 1)
	if err != nil || !ok {
		t.Fatalf("LocatePhrase = %v, %v, %v", ranges, ok, err)
	}
	if len(ranges) != 1 || ix.Text(ranges[0]) != "again" {
		t.Errorf("ranges = %v, want a single range over %q", ranges, "again")
	}
}

type neverSplit struct{}

func (neverSplit) Split(string) (string, string, bool) { return "", "", false }

func TestLocatePhrase_CustomSplitter(t *testing.T) {
	ix := NewIndex(sampleDoc(), WithSplitter(neverSplit{}))

	ranges, ok, _ := ix.LocatePhrase("don't stop", 1)
	if !ok || len(ranges) != 1 {
		t.Fatalf("LocatePhrase = %v, %v; want one whole-phrase range", ranges, ok)
	}
	if got := ix.Text(ranges[0]); got != "don’t stop" {
		t.Errorf("Text = %q, want %q", got, "don’t stop")
	}
}

func TestLocatePhrase_InvalidInstance(t *testing.T) {
	ix := NewIndex(sampleDoc())

	if _, _, err := ix.LocatePhrase("that's", 0); !errors.Is(err, ErrInvalidInstance) {
		t.Errorf("err = %v, want ErrInvalidInstance", err)
	}
}
