package quizsheet

import (
	"errors"

	"github.com/edutools/quizsheet-go/pkg/quizsheet/builder"
	"github.com/edutools/quizsheet-go/pkg/quizsheet/models"
	"github.com/edutools/quizsheet-go/pkg/quizsheet/parser"
)

// Result holds the outcome of a conversion.
type Result struct {
	// Questions are the successfully parsed records in input order.
	Questions []models.Question
	// Diagnostics lists blocks that failed the grammar, with 1-based
	// block numbers.
	Diagnostics []models.Diagnostic
	// Table is the built output dataset.
	Table models.Table
	// Preview is the on-screen review view of the same rows.
	Preview models.Preview
	// Workbook is the serialized xlsx file.
	Workbook []byte
}

// Convert runs the full pipeline on decoded text: raw lines, blocks,
// questions, output table, serialized workbook. Question order always
// matches block order in the input.
//
// A block whose choices exceed the schema's slot count is treated the
// same as one that fails the grammar: the block is reported, never the
// whole batch. With OnErrorSkip, malformed blocks become Diagnostics
// and conversion continues; with OnErrorStrict, the first malformed
// block aborts with its MalformedBlockError. When no block parses at
// all, Convert returns a SerializationError together with a partial
// Result carrying the diagnostics, so callers can still report
// per-block reasons.
func Convert(text string, opts Options) (*Result, error) {
	schema, err := opts.ResolveSchema()
	if err != nil {
		return nil, err
	}

	lines := parser.ReadRawLines(text)

	var questions []models.Question
	var diags []models.Diagnostic
	for block := range parser.SplitBlocks(lines) {
		q, err := parser.ParseBlock(block)
		if err == nil && len(q.Choices) > len(schema.ChoiceHeaders) {
			err = parser.NewMalformedBlockError(block, "%d choices exceed the schema's %d slots", len(q.Choices), len(schema.ChoiceHeaders))
		}
		if err != nil {
			if opts.Strict() {
				return nil, err
			}
			reason := err.Error()
			var mbe *parser.MalformedBlockError
			if errors.As(err, &mbe) {
				reason = mbe.Reason
			}
			diags = append(diags, models.Diagnostic{Block: block.Index, Reason: reason})
			continue
		}
		questions = append(questions, q)
	}

	table, err := builder.BuildRows(questions, schema)
	if err != nil {
		return nil, err
	}

	workbook, err := builder.Serialize(table, schema)
	if err != nil {
		return &Result{Questions: questions, Diagnostics: diags, Table: table}, err
	}

	return &Result{
		Questions:   questions,
		Diagnostics: diags,
		Table:       table,
		Preview:     builder.BuildPreview(questions, schema, opts.ResolvePreviewLimit()),
		Workbook:    workbook,
	}, nil
}
