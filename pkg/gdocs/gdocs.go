// Package gdocs locates text in Google Docs documents and returns ranges in the
// document's native UTF-16 index space, ready to be used by formatting requests.
//
// A Locator fetches a document snapshot through the Docs API with a minimal
// field mask, converts its body (or one of its tabs) into the doctext element
// tree and runs the doctext matching pipeline on it. Every call fetches a fresh
// snapshot; nothing is cached between calls.
//
// Key Features:
//
// - Locate the Nth occurrence of a phrase, tolerating curly quotes, dashes and whitespace variants
// - Locate the paragraph enclosing a document index, including paragraphs in table cells
// - Locate apostrophe phrases by splitting contractions when the whole phrase cannot be matched
// - Search a single document tab by ID or title
//
// Errors:
//
// Fetch failures are returned as *DocumentError. A missing document or tab matches
// ErrNotFound, a 403 matches ErrPermissionDenied and everything else matches
// ErrInternal. Not finding the text is not an error.
//
// Usage Requirements:
//
// - Google Docs API enabled for the project
// - Authentication via a credentials file or the GOOGLE_APPLICATION_CREDENTIALS environment variable
package gdocs
