// Package main provides the CLI entry point for quizsheet-go.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/edutools/quizsheet-go/pkg/quizsheet"
	"github.com/edutools/quizsheet-go/pkg/quizsheet/builder"
	"github.com/edutools/quizsheet-go/pkg/quizsheet/input"
	"github.com/spf13/cobra"
)

var (
	outputPath  string
	format      string
	schemaPath  string
	strict      bool
	previewRows int
	showPreview bool
	verbose     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "quizsheet [input.txt|input.docx]",
		Short: "Convert plain-text quiz questions into an importer-ready spreadsheet",
		Long: `quizsheet parses blank-line-separated question blocks ("prompt,
A./B./... choices, ANSWER: X") from a text or Word document and writes
an xlsx file matching a quiz platform's import schema.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: derived from input name)")
	rootCmd.Flags().StringVar(&format, "format", "default", "Output schema: default, quizizz, gform")
	rootCmd.Flags().StringVar(&schemaPath, "schema", "", "Custom schema YAML file (overrides --format)")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "Fail on the first malformed block instead of skipping it")
	rootCmd.Flags().IntVar(&previewRows, "preview-rows", 5, "Maximum rows shown by --preview")
	rootCmd.Flags().BoolVar(&showPreview, "preview", false, "Print a preview of the converted questions")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	logger := newLogger()

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	opts, err := buildOptions()
	if err != nil {
		return err
	}

	text, err := input.ReadDocument(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s failed: %w", inputPath, err)
	}

	logger.Debug("document decoded", "path", inputPath, "bytes", len(text))

	result, err := quizsheet.Convert(text, opts)
	if result != nil {
		reportDiagnostics(logger, result)
	}
	if err != nil {
		var serr *builder.SerializationError
		if errors.As(err, &serr) && errors.Is(err, builder.ErrNoQuestions) {
			return fmt.Errorf("no valid questions found, fix the reported blocks and retry")
		}
		return fmt.Errorf("conversion failed: %w", err)
	}

	logger.Info("conversion completed",
		"questions", len(result.Questions),
		"failed_blocks", len(result.Diagnostics))

	if showPreview {
		printPreview(result)
	}

	dest := outputPath
	if dest == "" {
		dest = defaultOutputPath(inputPath, opts.Format)
	}
	if err := os.WriteFile(dest, result.Workbook, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Info("workbook written", "path", dest, "rows", len(result.Table.Rows))
	return nil
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func buildOptions() (quizsheet.Options, error) {
	opts := quizsheet.DefaultOptions()
	opts.Format = quizsheet.Format(format)
	if strict {
		opts.OnError = quizsheet.OnErrorStrict
	}
	opts.PreviewLimit = &previewRows

	if schemaPath != "" {
		schema, err := builder.LoadSchema(schemaPath)
		if err != nil {
			return quizsheet.Options{}, err
		}
		opts.Schema = &schema
	} else if _, err := opts.ResolveSchema(); err != nil {
		return quizsheet.Options{}, err
	}
	return opts, nil
}

func reportDiagnostics(logger *slog.Logger, result *quizsheet.Result) {
	for _, d := range result.Diagnostics {
		logger.Warn("block failed to parse", "block", d.Block, "reason", d.Reason)
	}
}

func printPreview(result *quizsheet.Result) {
	fmt.Println(strings.Join(result.Preview.Header, "\t"))
	for _, row := range result.Preview.Rows {
		fmt.Println(strings.Join(row, "\t"))
	}
	if result.Preview.Truncated {
		fmt.Printf("... %d of %d questions shown\n", len(result.Preview.Rows), result.Preview.Total)
	}
}

// defaultOutputPath derives the output name from the input name, with
// a per-format suffix matching each platform's convention.
func defaultOutputPath(inputPath string, format quizsheet.Format) string {
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	switch format {
	case quizsheet.FormatQuizizz:
		return base + "-QUIZIZZ.xlsx"
	case quizsheet.FormatGForm:
		return base + "-GFORM.xlsx"
	default:
		return base + "-quiz.xlsx"
	}
}
