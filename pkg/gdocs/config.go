package gdocs

// Config holds settings for fetching documents from the Docs API
type Config struct {
	CredentialsFile string // Credentials JSON; empty falls back to GOOGLE_APPLICATION_CREDENTIALS
	Endpoint        string // Optional API endpoint override
	TabID           string // Search only this tab, matched by ID or title
	TableDepth      int    // Levels of nested tables requested in field masks
}

// DefaultConfig returns a config that searches the document body
func DefaultConfig() Config {
	return Config{
		TableDepth: 3,
	}
}

func (c Config) tableDepth() int {
	if c.TableDepth < 1 {
		return DefaultConfig().TableDepth
	}
	return c.TableDepth
}
