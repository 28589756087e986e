// Package main provides the CLI entry point for xlsx2kml.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/geoforma/xlsx2kml/pkg/kmlconv"
)

var (
	outputPath string
	sheetName  string
	noHeader   bool
	toStdout   bool
	quiet      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xlsx2kml [input.xlsx]",
		Short: "Convert a spreadsheet of geographic points to KML",
		Long: `xlsx2kml converts an Excel spreadsheet of geographic points into a
KML document, grouping placemarks into folders.

Columns are read by position: B (name), C (latitude), D (longitude),
F (folder), I (description). Rows whose coordinates do not parse as
numbers are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: input path with .kml extension)")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "Worksheet to convert (default: first sheet)")
	rootCmd.Flags().BoolVar(&noHeader, "no-header", false, "Treat the first row as data instead of a header")
	rootCmd.Flags().BoolVar(&toStdout, "stdout", false, "Write the KML document to stdout")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress and statistics output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	skipHeader := !noHeader
	opts := kmlconv.Options{
		Sheet:      sheetName,
		SkipHeader: &skipHeader,
	}
	if !quiet && !toStdout {
		opts.Progress = printProgress
	}

	result, err := kmlconv.Convert(inputPath, opts)
	if !quiet && !toStdout {
		clearProgress()
	}
	if err != nil {
		if errors.Is(err, kmlconv.ErrInsufficientColumns) {
			return fmt.Errorf("the spreadsheet does not have enough columns: at least 9 are required")
		}
		return fmt.Errorf("conversion failed: %w", err)
	}

	if toStdout {
		fmt.Print(string(result.KML))
		return nil
	}

	dest := outputPath
	if dest == "" {
		dest = deriveOutputPath(inputPath)
	}
	if err := os.WriteFile(dest, result.KML, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if !quiet {
		printSummary(dest, result)
	}

	return nil
}

// deriveOutputPath swaps the input's .xlsx extension for .kml.
func deriveOutputPath(inputPath string) string {
	if strings.HasSuffix(inputPath, ".xlsx") {
		return strings.TrimSuffix(inputPath, ".xlsx") + ".kml"
	}
	return inputPath + ".kml"
}

func printProgress(done, total int) {
	fmt.Fprintf(os.Stderr, "\rProcessing row %d of %d...", done, total)
}

func clearProgress() {
	fmt.Fprintf(os.Stderr, "\r\033[K")
}

func printSummary(dest string, result *kmlconv.Result) {
	color.Green("KML file generated: %s", dest)

	skipped := result.TotalRows - result.Points
	fmt.Printf("  Rows processed: %d\n", result.TotalRows)
	fmt.Printf("  Placemarks written: %d\n", result.Points)
	if skipped > 0 {
		color.Yellow("  Rows skipped (invalid coordinates): %d", skipped)
	}
	fmt.Printf("  Folders created: %d\n", len(result.FolderNames))
	if len(result.FolderNames) > 0 {
		fmt.Printf("  Folder names: %s\n", strings.Join(result.FolderNames, ", "))
	}
}
