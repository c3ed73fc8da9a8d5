package doctext

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrInvalidInstance is returned when a caller asks for an instance below 1
var ErrInvalidInstance = errors.New("instance must be at least 1")

// Index is a searchable, request-scoped view of one document snapshot
type Index struct {
	doc      Document
	flat     *Flattened
	logger   *slog.Logger
	splitter PhraseSplitter
}

// Option configures an Index
type Option func(*Index)

// WithLogger sets the logger used for debug output
func WithLogger(l *slog.Logger) Option {
	return func(ix *Index) {
		if l != nil {
			ix.logger = l
		}
	}
}

// WithSplitter replaces the phrase splitter used by LocatePhrase
func WithSplitter(s PhraseSplitter) Option {
	return func(ix *Index) {
		if s != nil {
			ix.splitter = s
		}
	}
}

// NewIndex extracts, sorts and flattens the text segments of doc
func NewIndex(doc Document, opts ...Option) *Index {
	segments := ExtractSegments(doc.Body)
	SortSegments(segments)

	ix := &Index{
		doc:      doc,
		flat:     Flatten(segments, doc.Unit),
		logger:   slog.Default(),
		splitter: ContractionSplitter{},
	}
	for _, opt := range opts {
		opt(ix)
	}
	return ix
}

// Flattened returns the flattened text and its index map
func (ix *Index) Flattened() *Flattened {
	return ix.flat
}

// QueryVariants returns the forms of query that are searched, in priority
// order: the literal query, its full normalization and an apostrophe-only
// standardization.
func QueryVariants(query string) []string {
	return []string{query, Normalize(query), StandardizeApostrophes(query)}
}

// FindAll accumulates matches for every query variant until at least
// instance matches were collected. Duplicates are kept; SelectInstance
// removes them.
func (ix *Index) FindAll(query string, instance int) []MatchRange {
	var all []MatchRange
	for i, variant := range QueryVariants(query) {
		found, rejected := ix.flat.findAll(variant, instance)
		ix.logger.Debug("searched query variant",
			"variant", i,
			"query", variant,
			"matches", len(found),
			"rejected", rejected,
		)
		all = append(all, found...)
		if len(all) >= instance {
			break
		}
	}
	return all
}

// Locate returns the native range of the instance-th occurrence of query.
// The boolean is false when there are fewer occurrences.
func (ix *Index) Locate(query string, instance int) (MatchRange, bool, error) {
	if instance < 1 {
		return MatchRange{}, false, fmt.Errorf("failed to locate %q: %w", query, ErrInvalidInstance)
	}
	r, ok := SelectInstance(ix.FindAll(query, instance), instance)
	return r, ok, nil
}

// LocateParagraph returns the bounds of the paragraph enclosing index
func (ix *Index) LocateParagraph(index int) (MatchRange, bool) {
	return FindEnclosingParagraph(ix.doc.Body, index)
}

// Text returns the native document text of r
func (ix *Index) Text(r MatchRange) string {
	return ExtractText(ix.flat.Segments, r.StartIndex, r.EndIndex, ix.flat.Unit)
}
