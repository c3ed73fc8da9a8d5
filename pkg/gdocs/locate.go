package gdocs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gardar/docspan/pkg/doctext"
)

// Locator resolves text and structural ranges in Google Docs documents
type Locator struct {
	getter Getter
	cfg    Config
	logger *slog.Logger
}

// LocatorOption configures a Locator
type LocatorOption func(*Locator)

// WithLogger sets the logger for the locator and the indexes it builds
func WithLogger(l *slog.Logger) LocatorOption {
	return func(loc *Locator) {
		if l != nil {
			loc.logger = l
		}
	}
}

// NewLocator creates a Locator that fetches documents through getter
func NewLocator(getter Getter, cfg Config, opts ...LocatorOption) *Locator {
	loc := &Locator{
		getter: getter,
		cfg:    cfg,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(loc)
	}
	return loc
}

// Fetch retrieves a fresh snapshot of the document. Structural snapshots also
// carry section breaks and tables of contents.
func (l *Locator) Fetch(ctx context.Context, documentID string, structural bool) (*Snapshot, error) {
	depth := l.cfg.tableDepth()
	tabs := l.cfg.TabID != ""

	fields := ContentFields(depth)
	if structural {
		fields = StructureFields(depth)
	}
	if tabs {
		fields = TabFields(depth, structural)
	}

	doc, err := l.getter.GetDocument(ctx, documentID, fields, tabs)
	if err != nil {
		l.logger.Debug("document fetch failed", "document_id", documentID, "error", err)
		return nil, classifyError(documentID, err)
	}

	snap, err := SnapshotFromDocs(doc, l.cfg.TabID)
	if err != nil {
		kind := ErrInternal
		if errors.Is(err, ErrNotFound) {
			kind = ErrNotFound
		}
		return nil, &DocumentError{DocumentID: documentID, Kind: kind, Err: err}
	}
	if snap.DocumentID == "" {
		snap.DocumentID = documentID
	}

	l.logger.Debug("fetched document",
		"document_id", documentID,
		"revision_id", snap.RevisionID,
		"tab_id", snap.TabID,
		"elements", len(snap.Body),
	)
	return snap, nil
}

func (l *Locator) index(ctx context.Context, documentID string) (*doctext.Index, error) {
	snap, err := l.Fetch(ctx, documentID, false)
	if err != nil {
		return nil, err
	}
	return doctext.NewIndex(snap.Document, doctext.WithLogger(l.logger)), nil
}

// LocateText returns the range of the instance-th (1-based) occurrence of
// query. The boolean is false when the document has fewer occurrences.
func (l *Locator) LocateText(ctx context.Context, documentID, query string, instance int) (doctext.MatchRange, bool, error) {
	if instance < 1 {
		return doctext.MatchRange{}, false, fmt.Errorf("failed to locate %q: %w", query, doctext.ErrInvalidInstance)
	}

	ix, err := l.index(ctx, documentID)
	if err != nil {
		return doctext.MatchRange{}, false, err
	}
	return ix.Locate(query, instance)
}

// LocateParagraph returns the bounds of the paragraph containing index,
// looking inside table cells
func (l *Locator) LocateParagraph(ctx context.Context, documentID string, index int) (doctext.MatchRange, bool, error) {
	snap, err := l.Fetch(ctx, documentID, true)
	if err != nil {
		return doctext.MatchRange{}, false, err
	}
	r, ok := doctext.FindEnclosingParagraph(snap.Body, index)
	return r, ok, nil
}

// LocateApostrophePhrase locates a phrase containing an apostrophe. A phrase
// found whole yields a single range. Otherwise a recognized contraction is
// split into the contracted word and the suffix with the rest of the phrase,
// yielding two ranges, and succeeds only if both are found.
func (l *Locator) LocateApostrophePhrase(ctx context.Context, documentID, query string, instance int) ([]doctext.MatchRange, bool, error) {
	if instance < 1 {
		return nil, false, fmt.Errorf("failed to locate phrase %q: %w", query, doctext.ErrInvalidInstance)
	}

	ix, err := l.index(ctx, documentID)
	if err != nil {
		return nil, false, err
	}
	return ix.LocatePhrase(query, instance)
}
