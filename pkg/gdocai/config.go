package gdocai

import (
	"errors"
	"fmt"
)

// ErrIncompleteConfig is returned when a processor cannot be addressed
var ErrIncompleteConfig = errors.New("incomplete Document AI config: project, location and processor are required")

// Config identifies the Document AI processor used for OCR
type Config struct {
	ProjectID       string // Google Cloud project ID
	Location        string // Processor location, e.g. "us" or "eu"
	ProcessorID     string // Document AI processor ID
	CredentialsFile string // Credentials JSON; empty falls back to GOOGLE_APPLICATION_CREDENTIALS
}

func (c *Config) validate() error {
	if c == nil || c.ProjectID == "" || c.Location == "" || c.ProcessorID == "" {
		return ErrIncompleteConfig
	}
	return nil
}

// processorName is the resource name of the configured processor
func (c *Config) processorName() string {
	return fmt.Sprintf("projects/%s/locations/%s/processors/%s", c.ProjectID, c.Location, c.ProcessorID)
}

// endpoint is the regional API endpoint for the processor location
func (c *Config) endpoint() string {
	return fmt.Sprintf("%s-documentai.googleapis.com:443", c.Location)
}
