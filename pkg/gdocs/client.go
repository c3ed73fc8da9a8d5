package gdocs

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/api/docs/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Getter fetches a document restricted to a partial-response field mask
type Getter interface {
	GetDocument(ctx context.Context, documentID string, fields string, includeTabs bool) (*docs.Document, error)
}

// NewService creates a read-only Docs API client. Extra options are applied
// after the ones derived from cfg.
func NewService(ctx context.Context, cfg Config, opts ...option.ClientOption) (*docs.Service, error) {
	var clientOpts []option.ClientOption

	credentials := cfg.CredentialsFile
	if credentials == "" {
		credentials = os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	}
	if credentials != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credentials))
	}
	if cfg.Endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(cfg.Endpoint))
	}
	clientOpts = append(clientOpts, option.WithScopes(docs.DocumentsReadonlyScope))
	clientOpts = append(clientOpts, opts...)

	svc, err := docs.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Docs client: %w", err)
	}
	return svc, nil
}

// ServiceGetter is a Getter backed by the Docs API
type ServiceGetter struct {
	Service *docs.Service
}

// GetDocument implements Getter
func (g ServiceGetter) GetDocument(ctx context.Context, documentID string, fields string, includeTabs bool) (*docs.Document, error) {
	call := g.Service.Documents.Get(documentID).
		Fields(googleapi.Field(fields)).
		Context(ctx)
	if includeTabs {
		call = call.IncludeTabsContent(true)
	}
	return call.Do()
}
