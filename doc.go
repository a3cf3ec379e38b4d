// Package figmatokens extracts design styles (colors, text, effects,
// grids) and typed design variables from a Figma document and serializes
// them into developer-consumable formats: JSON, CSS custom properties, a
// JavaScript token module, or YAML.
//
// The CLI lives in cmd/figma-tokens; this root package exposes the same
// pipeline as a Go API so that callers can embed token export in their own
// tools without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named figmatokens:
//
//	import "github.com/hellenic-development/figma-tokens" // package figmatokens
//
// # Quick start
//
//	result, err := figmatokens.Run(ctx, figmatokens.Options{
//	    AccessToken: os.Getenv("FIGMA_TOKEN"),
//	    FileURL:     "https://www.figma.com/design/ABC123/My-Design",
//	    Format:      "css",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("design-tokens.css", []byte(result.Output), 0644)
//
// # Sources
//
// Records can come from the Figma REST API ([Options.FileURL] plus
// [Options.AccessToken]) or from a local JSON dump of the document's
// styles, variables, and collections ([Options.InputFile]). The pipeline
// behaves identically over either source.
//
// # Partial success
//
// An individual malformed style or variable never aborts the export: it is
// logged and omitted, and the run yields a document with fewer records.
// Only a failure to fetch from the source fails the whole run.
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages and per-record warnings. A nil Logger silences all output.
//
// # Watch mode
//
// [Watch] re-runs the export whenever the local input dump changes, which
// keeps a generated stylesheet or token module in sync while designing.
package figmatokens
