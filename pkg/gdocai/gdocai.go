// Package gdocai makes Google Document AI output searchable with doctext.
//
// Document AI returns the full OCR text of a document plus a layout tree whose
// paragraphs and table cells point back into that text through text anchor
// segments. This package turns those anchors into doctext elements so a phrase
// can be located in an OCR'ed PDF and mapped back to Document AI text indices,
// the same way Google Docs documents are searched.
//
// Main Functions:
//
// - ProcessDocument: Sends a PDF to a Document AI processor
// - ContentFromProto: Converts a Document AI response into a doctext.Document
// - DecodeDocument / LoadDocument: Read a response previously saved as JSON
//
// Indices are code points into Document.Text.
//
// Usage Requirements:
//
// - Google Cloud project with Document AI API enabled
// - Document AI processor configured for OCR
// - Authentication via a credentials file or the GOOGLE_APPLICATION_CREDENTIALS environment variable
package gdocai
