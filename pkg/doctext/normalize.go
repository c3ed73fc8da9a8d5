package doctext

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// spaceSeparators covers the no-break space and the U+2000 space block
var spaceSeparators = runes.In(unicode.Zs)

// apostropheMapper only standardizes apostrophe-like characters
var apostropheMapper = runes.Map(func(r rune) rune {
	if isApostrophe(r) {
		return '\''
	}
	return r
})

func isApostrophe(r rune) bool {
	switch r {
	case '\'', '’', '‘', '‚', '`', '´':
		return true
	}
	return false
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || spaceSeparators.Contains(r)
}

// canonicalRune maps punctuation variants to their representative character
func canonicalRune(r rune) rune {
	if isApostrophe(r) {
		return '\''
	}
	switch r {
	case '“', '”', '„', '‟', '″', '‶':
		return '"'
	case '–', '—', '―':
		return '-'
	}
	return r
}

// Normalize canonicalizes quote, dash and whitespace variants.
// Whitespace runs collapse to one ASCII space and the result is trimmed,
// so the output may be shorter than the input.
func Normalize(s string) string {
	out, _ := normalizeRunes([]rune(s))
	return string(out)
}

// StandardizeApostrophes rewrites apostrophe variants to a straight apostrophe
// and leaves every other character untouched.
func StandardizeApostrophes(s string) string {
	out, _, err := transform.String(apostropheMapper, s)
	if err != nil {
		return s
	}
	return out
}

// normalizeRunes normalizes rs one rune at a time and returns, for every
// normalized rune, the index of the original rune that produced it.
// A collapsed whitespace run is attributed to its first rune.
func normalizeRunes(rs []rune) ([]rune, []int) {
	out := make([]rune, 0, len(rs))
	src := make([]int, 0, len(rs))
	pending := -1

	for i, r := range rs {
		if isSpace(r) {
			if pending < 0 {
				pending = i
			}
			continue
		}
		// Emit the space for the preceding run unless it is leading whitespace
		if pending >= 0 && len(out) > 0 {
			out = append(out, ' ')
			src = append(src, pending)
		}
		pending = -1
		out = append(out, canonicalRune(r))
		src = append(src, i)
	}

	return out, src
}
