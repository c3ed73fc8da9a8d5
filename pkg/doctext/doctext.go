// Package doctext locates spans of text inside a structured, segmented document
// and maps them back to the document's native index space.
//
// A document body is a tree of paragraphs, tables, section breaks and tables of
// contents. Only paragraph text runs carry searchable text; each run knows its
// native [start, end) range. Searching works on three coordinate spaces:
//
// - segment-local offsets inside a single text run
// - rune positions in the flattened string made by concatenating every run
// - native document indices, in the unit of the source (UTF-16 code units for
// Google Docs, code points for Document AI)
//
// Key Types:
//
// - Document: a body of Elements plus the IndexUnit of its indices
// - TextSegment: one indexed text run
// - Flattened: concatenated segment text with a per-rune CharMapping
// - MatchRange: a half-open range in native indices
// - Index: the search entry point for one document snapshot
//
// Matching is exact first. If the exact scan finds nothing, quote, dash and
// whitespace variants are normalized on both sides, hits are mapped back to
// the original text and every hit is validated by re-extracting and
// re-normalizing the matched range. Matching never approximates.
//
// Main Functions:
//
// - Normalize: canonicalizes punctuation and whitespace variants
// - ExtractSegments / Flatten: build the searchable text
// - SelectInstance: picks the Nth occurrence in document order
// - FindEnclosingParagraph: structural lookup by native index
// - (*Index).Locate / LocatePhrase / LocateParagraph
//
// Everything is request-scoped; an Index is never mutated after NewIndex
// returns and may be shared between goroutines.
package doctext
