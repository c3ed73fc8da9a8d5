// docspan is a command-line tool for locating text in Google Docs documents and in
// Google Document AI output, printing the matched ranges in native document indices.
//
// The ranges printed for a Google Doc are UTF-16 indices that can be passed to
// Docs API formatting requests. Ranges printed for Document AI output are code point
// indices into the document text.
//
// Configuration:
//
// The tool requires a YAML configuration file:
//
//	credentials_file: /path/to/credentials.json  # optional, defaults to GOOGLE_APPLICATION_CREDENTIALS
//	tab_id: ""                                   # optional tab ID or title
//	table_depth: 3                               # nested table levels to fetch
//	log_level: info
//	document_ai:                                 # only needed with -pdf
//	  project_id: "your-gcp-project-id"
//	  location: "us"
//	  processor_id: "your-processor-id"
//
// Usage:
//
//	docspan -config config.yml -doc DOCUMENT_ID -find "text" [-instance N]
//
// Source flags (exactly one required):
//
//	-doc string         Google Docs document ID
//	-docai-json string  Path to a Document AI response saved as JSON
//	-pdf string         Path to a PDF to process with Document AI
//
// Operation flags (exactly one required):
//
//	-find string        Locate the Nth occurrence of a phrase
//	-phrase string      Locate a phrase containing an apostrophe, splitting contractions if needed
//	-paragraph int      Locate the paragraph enclosing a document index
//
// Other options:
//
//	-instance int       Occurrence to return, starting at 1 (default 1)
//	-tab string         Search this tab instead of the configured one
//	-output string      Path to save the JSON result (default stdout)
//
// Example:
//
//	export GOOGLE_APPLICATION_CREDENTIALS=/path/to/credentials.json
//	docspan -config config.yml -doc 1AbC -find "Hello" -instance 2
//	docspan -config config.yml -doc 1AbC -phrase "that's almost 20% more"
//	docspan -config config.yml -docai-json scan.json -paragraph 120
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gardar/docspan/pkg/doctext"
	"github.com/gardar/docspan/pkg/gdocai"
	"github.com/gardar/docspan/pkg/gdocs"
)

// result is the JSON document printed for every operation
type result struct {
	Source   string               `json:"source"`
	Query    string               `json:"query,omitempty"`
	Instance int                  `json:"instance,omitempty"`
	Index    *int                 `json:"index,omitempty"`
	Found    bool                 `json:"found"`
	Ranges   []doctext.MatchRange `json:"ranges,omitempty"`
	Texts    []string             `json:"texts,omitempty"`
}

func main() {
	// Required flags
	configPath := flag.String("config", "", "Path to the config YAML file (required)")

	// Source flags
	docID := flag.String("doc", "", "Google Docs document ID")
	docaiJSONPath := flag.String("docai-json", "", "Path to a Document AI response saved as JSON")
	pdfPath := flag.String("pdf", "", "Path to a PDF to process with Document AI")

	// Operation flags
	findQuery := flag.String("find", "", "Phrase to locate")
	phraseQuery := flag.String("phrase", "", "Apostrophe phrase to locate, split at the contraction if needed")
	paragraphIndex := flag.Int("paragraph", 0, "Document index whose enclosing paragraph is located")

	instance := flag.Int("instance", 1, "Occurrence to return, starting at 1")
	tabID := flag.String("tab", "", "Tab ID or title to search")
	outputPath := flag.String("output", "", "Path to save the JSON result (default stdout)")

	flag.Parse()

	providedFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		providedFlags[f.Name] = true
	})

	if *configPath == "" {
		usageError("-config flag is required")
	}

	sources := 0
	for _, name := range []string{"doc", "docai-json", "pdf"} {
		if providedFlags[name] {
			sources++
		}
	}
	if sources != 1 {
		usageError("Exactly one of -doc, -docai-json or -pdf must be provided")
	}

	operations := 0
	for _, name := range []string{"find", "phrase", "paragraph"} {
		if providedFlags[name] {
			operations++
		}
	}
	if operations != 1 {
		usageError("Exactly one of -find, -phrase or -paragraph must be provided")
	}
	if *instance < 1 {
		usageError("-instance must be at least 1")
	}
	if providedFlags["tab"] && !providedFlags["doc"] {
		usageError("-tab can only be used with -doc")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *tabID != "" {
		cfg.Docs.TabID = *tabID
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	op := operation{
		find:      *findQuery,
		phrase:    *phraseQuery,
		paragraph: providedFlags["paragraph"],
		index:     *paragraphIndex,
		instance:  *instance,
	}

	ctx := context.Background()
	var res *result

	if *docID != "" {
		res, err = runDocs(ctx, cfg, logger, *docID, op)
	} else {
		res, err = runDocumentAI(ctx, cfg, logger, *docaiJSONPath, *pdfPath, op)
	}
	if err != nil {
		if gdocs.IsUserFacing(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		log.Fatalf("Failed to locate: %v", err)
	}

	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		log.Fatalf("Failed to convert result to JSON: %v", err)
	}

	if *outputPath != "" {
		if err := os.WriteFile(*outputPath, append(out, '\n'), 0644); err != nil {
			log.Fatalf("Failed to write result: %v", err)
		}
		fmt.Println("Result saved to:", *outputPath)
		return
	}
	fmt.Println(string(out))
}

func usageError(msg string) {
	fmt.Fprintln(os.Stderr, "Error:", msg)
	fmt.Fprintln(os.Stderr, "Usage:")
	flag.PrintDefaults()
	os.Exit(1)
}

// operation is the single lookup requested on the command line
type operation struct {
	find      string
	phrase    string
	paragraph bool
	index     int
	instance  int
}

func (op operation) newResult(source string) *result {
	res := &result{Source: source}
	switch {
	case op.paragraph:
		idx := op.index
		res.Index = &idx
	case op.phrase != "":
		res.Query, res.Instance = op.phrase, op.instance
	default:
		res.Query, res.Instance = op.find, op.instance
	}
	return res
}

// runDocs performs the operation against a Google Doc
func runDocs(ctx context.Context, cfg *appConfig, logger *slog.Logger, docID string, op operation) (*result, error) {
	svc, err := gdocs.NewService(ctx, cfg.Docs)
	if err != nil {
		return nil, err
	}
	loc := gdocs.NewLocator(gdocs.ServiceGetter{Service: svc}, cfg.Docs, gdocs.WithLogger(logger))

	res := op.newResult("docs:" + docID)
	switch {
	case op.paragraph:
		r, ok, err := loc.LocateParagraph(ctx, docID, op.index)
		if err != nil {
			return nil, err
		}
		res.setRange(r, ok)
	case op.phrase != "":
		ranges, ok, err := loc.LocateApostrophePhrase(ctx, docID, op.phrase, op.instance)
		if err != nil {
			return nil, err
		}
		res.Found, res.Ranges = ok, ranges
	default:
		r, ok, err := loc.LocateText(ctx, docID, op.find, op.instance)
		if err != nil {
			return nil, err
		}
		res.setRange(r, ok)
	}
	return res, nil
}

// runDocumentAI performs the operation against Document AI output, either
// loaded from disk or produced by processing a PDF
func runDocumentAI(ctx context.Context, cfg *appConfig, logger *slog.Logger, jsonPath, pdfPath string, op operation) (*result, error) {
	var source string
	var ix *doctext.Index

	if jsonPath != "" {
		source = "docai-json:" + jsonPath
		doc, err := gdocai.LoadDocument(jsonPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load Document AI JSON: %w", err)
		}
		ix = doctext.NewIndex(gdocai.ContentFromProto(doc), doctext.WithLogger(logger))
	} else {
		source = "pdf:" + pdfPath
		fmt.Fprintln(os.Stderr, "Processing PDF with Document AI:", pdfPath)
		pdfBytes, err := os.ReadFile(pdfPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read PDF file: %w", err)
		}
		doc, err := gdocai.ProcessDocument(ctx, pdfBytes, &cfg.DocumentAI)
		if err != nil {
			return nil, err
		}
		ix = doctext.NewIndex(gdocai.ContentFromProto(doc), doctext.WithLogger(logger))
	}

	res := op.newResult(source)
	switch {
	case op.paragraph:
		r, ok := ix.LocateParagraph(op.index)
		res.setRange(r, ok)
	case op.phrase != "":
		ranges, ok, err := ix.LocatePhrase(op.phrase, op.instance)
		if err != nil {
			return nil, err
		}
		res.Found, res.Ranges = ok, ranges
	default:
		r, ok, err := ix.Locate(op.find, op.instance)
		if err != nil {
			return nil, err
		}
		res.setRange(r, ok)
	}

	for _, r := range res.Ranges {
		res.Texts = append(res.Texts, ix.Text(r))
	}
	return res, nil
}

func (res *result) setRange(r doctext.MatchRange, ok bool) {
	res.Found = ok
	if ok {
		res.Ranges = []doctext.MatchRange{r}
	}
}
