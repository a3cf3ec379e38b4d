package figmatokens

import (
	"context"
	"fmt"

	"github.com/hellenic-development/figma-tokens/pkg/figma"
	"github.com/hellenic-development/figma-tokens/pkg/formatter"
	"github.com/hellenic-development/figma-tokens/pkg/token"
)

// Logger receives progress messages. A nil Logger means silent operation.
type Logger = token.Logger

// Options configures the export.
type Options struct {
	AccessToken string // Figma personal access token (remote source)
	FileURL     string // Figma file URL (remote source)
	InputFile   string // local document dump; takes precedence over FileURL
	Format      string // "json" (default), "css", "js", "yaml"
	Grouping    string // "flat" (default) or "collections"
	Logger      Logger // nil = no logging
}

// Result contains the export output.
type Result struct {
	Document *token.Document
	FileName string // design document name
	Output   string // formatted output in the requested format
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

// NewSource builds the record source selected by the options: a local
// document dump when InputFile is set, otherwise the Figma REST API.
func NewSource(opts Options) (figma.Source, error) {
	if opts.InputFile != "" {
		return figma.NewFileSource(opts.InputFile)
	}

	fileKey, err := figma.ExtractFileKey(opts.FileURL)
	if err != nil {
		return nil, fmt.Errorf("extract file key: %w", err)
	}

	return figma.NewRemoteSource(figma.NewClient(opts.AccessToken), fileKey), nil
}

// Run executes the token export pipeline and returns the result.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Format == "" {
		opts.Format = formatter.FormatJSON
	}
	if opts.Grouping == "" {
		opts.Grouping = string(token.GroupFlat)
	}

	opts.logInfo("Preparing source...")
	source, err := NewSource(opts)
	if err != nil {
		return nil, err
	}

	exporter := token.NewExporter(source, token.Options{
		Grouping: token.Grouping(opts.Grouping),
		Logger:   opts.Logger,
	})

	opts.logInfo("Running export...")
	doc, err := exporter.Run(ctx)
	if err != nil {
		return nil, err
	}

	opts.logInfo("Formatting as %s...", opts.Format)
	output, err := formatter.Format(doc, opts.Format)
	if err != nil {
		return nil, err
	}

	return &Result{
		Document: doc,
		FileName: doc.Metadata.FileName,
		Output:   output,
	}, nil
}
