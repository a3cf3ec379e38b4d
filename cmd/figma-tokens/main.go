package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	figmatokens "github.com/hellenic-development/figma-tokens"
	"github.com/hellenic-development/figma-tokens/pkg/figma"
	"github.com/hellenic-development/figma-tokens/pkg/formatter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = figma.Version

var (
	figmaURL    string
	accessToken string
	inputFile   string
	outputFile  string
	format      string
	grouping    string
	watch       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "figma-tokens",
		Short: "Export design tokens from Figma files",
		Long:  "A tool to extract color, text, effect, and grid styles plus typed design variables from Figma files and export them as JSON, CSS custom properties, a JavaScript module, or YAML",
		Run:   run,
	}

	rootCmd.Flags().StringVarP(&figmaURL, "url", "u", "", "Figma file URL (required unless --input is set)")
	rootCmd.Flags().StringVarP(&accessToken, "token", "t", "", "Figma Personal Access Token (required with --url)")
	rootCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Local document dump (JSON) to export from instead of the API")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default derived from the format, \"-\" for stdout)")
	rootCmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json, css, js, yaml")
	rootCmd.Flags().StringVar(&grouping, "variables", "flat", "Variable output shape: flat, collections")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-export whenever the local input dump changes (requires --input)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("figma-tokens version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	cyan.Println("\n🎨 Figma Token Exporter")
	cyan.Println("========================")
	cyan.Println()

	if inputFile == "" && figmaURL == "" {
		red.Println("Error: either --url or --input is required")
		os.Exit(1)
	}
	if inputFile == "" && accessToken == "" {
		red.Println("Error: --token is required with --url")
		os.Exit(1)
	}

	opts := figmatokens.Options{
		AccessToken: accessToken,
		FileURL:     figmaURL,
		InputFile:   inputFile,
		Format:      format,
		Grouping:    grouping,
		Logger:      &cliLogger{},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if watch {
		cyan.Printf("👀 Watching %s (Ctrl-C to stop)\n\n", inputFile)
		if err := figmatokens.Watch(ctx, opts, deliver); err != nil && ctx.Err() == nil {
			red.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	deliver(figmatokens.Run(ctx, opts))
}

// deliver reports one export result: summary to the terminal, formatted
// output to the selected sink.
func deliver(result *figmatokens.Result, err error) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	if err != nil {
		red.Printf("Error: %v\n", err)
		if !watch {
			os.Exit(1)
		}
		return
	}

	counts := result.Document.Metadata.Counts
	cyan.Println("\n📊 Export Summary:")
	fmt.Printf("  • Styles: %d colors, %d text, %d effects, %d grids\n",
		counts.Colors, counts.TextStyles, counts.Effects, counts.Grids)
	fmt.Printf("  • Variables: %d (%d color, %d number, %d string, %d boolean)\n",
		counts.Variables, counts.ColorVariables, counts.NumberVariables,
		counts.StringVariables, counts.BooleanVariables)
	fmt.Printf("  • Collections: %d exported of %d found\n",
		counts.CollectionsExported, counts.CollectionsFound)

	target := outputFile
	if target == "" {
		target = formatter.DefaultFileName(format)
	}

	if target == "-" {
		fmt.Print(result.Output)
		return
	}

	green.Printf("\n💾 Writing to %s... ", target)
	if err := os.WriteFile(target, []byte(result.Output), 0644); err != nil {
		red.Printf("✗\n")
		red.Printf("Error: %v\n", err)
		if !watch {
			os.Exit(1)
		}
		return
	}
	green.Println("✓")

	green.Printf("\n✨ Successfully exported design tokens from %s\n\n", result.FileName)
}

// cliLogger implements figmatokens.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
