package gdocai

import (
	"context"
	"fmt"
	"os"

	documentai "cloud.google.com/go/documentai/apiv1"
	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"google.golang.org/api/option"
)

// ProcessDocument OCRs a PDF with a Document AI processor so it can be
// searched like a Google Doc. The returned proto carries the recognized text
// and the layout anchors that ContentFromProto turns into indexed paragraphs
// and tables; ranges found in it are code point offsets into Document.Text.
func ProcessDocument(ctx context.Context, pdfBytes []byte, cfg *Config) (*documentaipb.Document, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	client, err := documentai.NewDocumentProcessorClient(ctx, clientOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Document AI client: %w", err)
	}
	defer client.Close()

	resp, err := client.ProcessDocument(ctx, processRequest(cfg, pdfBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to process document %s: %w", cfg.processorName(), err)
	}
	if resp.GetDocument().GetText() == "" {
		return nil, fmt.Errorf("processor %s returned no text", cfg.ProcessorID)
	}

	return resp.Document, nil
}

func clientOptions(cfg *Config) []option.ClientOption {
	credentials := cfg.CredentialsFile
	if credentials == "" {
		credentials = os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	}

	opts := []option.ClientOption{option.WithEndpoint(cfg.endpoint())}
	if credentials != "" {
		opts = append(opts, option.WithCredentialsFile(credentials))
	}
	return opts
}

// processRequest builds a raw PDF request that skips human review
func processRequest(cfg *Config, pdfBytes []byte) *documentaipb.ProcessRequest {
	return &documentaipb.ProcessRequest{
		Name: cfg.processorName(),
		Source: &documentaipb.ProcessRequest_RawDocument{
			RawDocument: &documentaipb.RawDocument{
				Content:  pdfBytes,
				MimeType: "application/pdf",
			},
		},
		SkipHumanReview: true,
	}
}
