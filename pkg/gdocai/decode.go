package gdocai

import (
	"fmt"
	"os"

	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"google.golang.org/protobuf/encoding/protojson"
)

// DecodeDocument parses a Document AI response saved as JSON
func DecodeDocument(data []byte) (*documentaipb.Document, error) {
	doc := &documentaipb.Document{}
	opts := protojson.UnmarshalOptions{DiscardUnknown: true}
	if err := opts.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to decode Document AI JSON: %w", err)
	}
	return doc, nil
}

// LoadDocument reads and parses a saved Document AI response
func LoadDocument(path string) (*documentaipb.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeDocument(data)
}
