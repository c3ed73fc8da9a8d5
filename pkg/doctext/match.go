package doctext

// FindAllMatches returns the native ranges of every occurrence of query, in
// discovery order. Normalized matching is only attempted when the exact scan
// finds nothing. A positive limit stops the scan after that many matches.
func (f *Flattened) FindAllMatches(query string, limit int) []MatchRange {
	matches, _ := f.findAll(query, limit)
	return matches
}

// findAll is FindAllMatches that also reports how many normalized
// candidates failed validation
func (f *Flattened) findAll(query string, limit int) ([]MatchRange, int) {
	if matches := f.exactMatches(query, limit); len(matches) > 0 {
		return matches, 0
	}
	return f.normalizedMatches(query, limit)
}

// exactMatches scans for query left to right. Each scan resumes one rune
// after the previous hit, so overlapping occurrences are reported.
func (f *Flattened) exactMatches(query string, limit int) []MatchRange {
	q := []rune(query)
	if len(q) == 0 {
		return nil
	}

	var matches []MatchRange
	for i := indexRunes(f.runes, q, 0); i >= 0; i = indexRunes(f.runes, q, i+1) {
		matches = append(matches, f.nativeRange(i, i+len(q)))
		if limit > 0 && len(matches) >= limit {
			break
		}
	}
	return matches
}

// normalizedMatches searches the normalized text for the normalized query
// and maps every hit back to the original text. A hit is kept only if the
// text re-extracted from the segments normalizes to the query again.
func (f *Flattened) normalizedMatches(query string, limit int) ([]MatchRange, int) {
	want := Normalize(query)
	q := []rune(want)
	if len(q) == 0 {
		return nil, 0
	}

	norm, src := normalizeRunes(f.runes)

	var matches []MatchRange
	rejected := 0
	for i := indexRunes(norm, q, 0); i >= 0; i = indexRunes(norm, q, i+1) {
		// Original rune span that produced the normalized hit
		from := src[i]
		to := src[i+len(q)-1] + 1

		r := f.nativeRange(from, to)
		if Normalize(ExtractText(f.Segments, r.StartIndex, r.EndIndex, f.Unit)) != want {
			rejected++
			continue
		}

		matches = append(matches, r)
		if limit > 0 && len(matches) >= limit {
			break
		}
	}
	return matches, rejected
}

// indexRunes returns the first index >= from where needle starts in hay, or -1
func indexRunes(hay, needle []rune, from int) int {
	n := len(needle)
	for i := from; i+n <= len(hay); i++ {
		if hay[i] != needle[0] {
			continue
		}
		j := 1
		for j < n && hay[i+j] == needle[j] {
			j++
		}
		if j == n {
			return i
		}
	}
	return -1
}
