package gdocs

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

// Fetch error kinds. A *DocumentError matches exactly one of them with errors.Is.
var (
	ErrNotFound         = errors.New("document not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInternal         = errors.New("document fetch failed")
)

// DocumentError reports a failed document fetch
type DocumentError struct {
	DocumentID string
	Kind       error // ErrNotFound, ErrPermissionDenied or ErrInternal
	Err        error // Underlying transport error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("document %s: %v: %v", e.DocumentID, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the transport error
func (e *DocumentError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// IsUserFacing reports whether err should be shown to the caller as is,
// rather than as an internal failure
func IsUserFacing(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrPermissionDenied)
}

// classifyError maps a Docs API error onto the fetch error kinds
func classifyError(documentID string, err error) error {
	kind := ErrInternal

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusNotFound:
			kind = ErrNotFound
		case http.StatusForbidden:
			kind = ErrPermissionDenied
		}
	}

	return &DocumentError{DocumentID: documentID, Kind: kind, Err: err}
}
