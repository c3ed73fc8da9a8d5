package doctext

import (
	"fmt"
	"regexp"
)

// PhraseSplitter splits a query that is unlikely to match as a whole into
// two fragments that are located independently.
type PhraseSplitter interface {
	Split(query string) (before, after string, ok bool)
}

// contractionPatterns match word + apostrophe + contraction suffix followed
// by at least one more word, one pattern per apostrophe variant. The leftmost
// match starts at the first letter of the contracted word.
var contractionPatterns = func() []*regexp.Regexp {
	var patterns []*regexp.Regexp
	for _, apos := range []string{"'", "’", "‘", "‚", "`", "´"} {
		patterns = append(patterns, regexp.MustCompile(
			`(?is)(\pL+)`+regexp.QuoteMeta(apos)+`((?:s|re|ll|ve|d|t)\s+\S.*)$`,
		))
	}
	return patterns
}()

// ContractionSplitter splits phrases like "I said that's almost" into the
// contracted word ("that") and the suffix with the rest ("s almost"). It only
// knows the s, re, ll, ve, d and t contractions, and a bare contraction such
// as "don't" is not split.
type ContractionSplitter struct{}

// Split implements PhraseSplitter
func (ContractionSplitter) Split(query string) (string, string, bool) {
	for _, p := range contractionPatterns {
		if m := p.FindStringSubmatch(query); m != nil {
			return m[1], m[2], true
		}
	}
	return "", "", false
}

// LocatePhrase locates a phrase that contains an apostrophe. The phrase is
// first located whole, which yields a single range. Only when that fails and
// the splitter recognizes the phrase are both fragments located at the same
// instance, yielding two ranges; if either fragment is missing the phrase is
// not found.
func (ix *Index) LocatePhrase(query string, instance int) ([]MatchRange, bool, error) {
	if instance < 1 {
		return nil, false, fmt.Errorf("failed to locate phrase %q: %w", query, ErrInvalidInstance)
	}

	r, found, err := ix.Locate(query, instance)
	if err != nil {
		return nil, false, err
	}
	if found {
		return []MatchRange{r}, true, nil
	}

	before, after, ok := ix.splitter.Split(query)
	if !ok {
		return nil, false, nil
	}

	beforeRange, beforeFound, err := ix.Locate(before, instance)
	if err != nil {
		return nil, false, err
	}
	afterRange, afterFound, err := ix.Locate(after, instance)
	if err != nil {
		return nil, false, err
	}

	if !beforeFound || !afterFound {
		ix.logger.Debug("phrase split did not resolve",
			"before", before,
			"before_found", beforeFound,
			"after", after,
			"after_found", afterFound,
		)
		return nil, false, nil
	}
	return []MatchRange{beforeRange, afterRange}, true, nil
}
