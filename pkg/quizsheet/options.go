// Package quizsheet converts plain-text quiz questions into
// importer-ready spreadsheets.
package quizsheet

import (
	"fmt"

	"github.com/edutools/quizsheet-go/pkg/quizsheet/builder"
)

// Format selects a built-in output schema.
type Format string

const (
	// FormatDefault is the generic importer layout with the correct
	// answer by label.
	FormatDefault Format = "default"
	// FormatQuizizz is the Quizizz importer layout with the correct
	// answer as a 1-based index.
	FormatQuizizz Format = "quizizz"
	// FormatGForm is the Google Forms layout with the correct answer
	// as the full choice text.
	FormatGForm Format = "gform"
)

// OnError selects how malformed question blocks are handled.
type OnError string

const (
	// OnErrorSkip collects a diagnostic per malformed block and
	// converts the rest.
	OnErrorSkip OnError = "skip"
	// OnErrorStrict fails the whole conversion on the first
	// malformed block.
	OnErrorStrict OnError = "strict"
)

// Options configures a conversion.
type Options struct {
	// Format selects the built-in output schema. Ignored when Schema
	// is set.
	Format Format
	// Schema overrides the built-in schemas when non-nil.
	Schema *builder.Schema
	// OnError selects malformed-block handling (skip or strict).
	OnError OnError
	// PreviewLimit caps the number of preview rows.
	// If nil, defaults to 5.
	PreviewLimit *int
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		Format:  FormatDefault,
		OnError: OnErrorSkip,
	}
}

// ResolveSchema returns the schema a conversion will use.
func (o Options) ResolveSchema() (builder.Schema, error) {
	if o.Schema != nil {
		return *o.Schema, nil
	}
	switch o.Format {
	case FormatDefault, "":
		return builder.DefaultSchema(), nil
	case FormatQuizizz:
		return builder.QuizizzSchema(), nil
	case FormatGForm:
		return builder.GFormSchema(), nil
	default:
		return builder.Schema{}, fmt.Errorf("unknown format %q", o.Format)
	}
}

// Strict reports whether the first malformed block fails the
// conversion.
func (o Options) Strict() bool {
	return o.OnError == OnErrorStrict
}

// ResolvePreviewLimit returns the preview row cap.
func (o Options) ResolvePreviewLimit() int {
	if o.PreviewLimit != nil {
		return *o.PreviewLimit
	}
	return 5
}
