// Package builder maps question records onto a fixed spreadsheet
// schema and serializes the result.
package builder

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// CorrectStyle selects how the correct-answer column identifies the
// correct choice.
type CorrectStyle string

const (
	// CorrectByLabel writes the choice label (e.g. "B").
	CorrectByLabel CorrectStyle = "label"
	// CorrectByText writes the matched choice text.
	CorrectByText CorrectStyle = "text"
	// CorrectByIndex writes the 1-based choice position.
	CorrectByIndex CorrectStyle = "index"
)

// MetadataColumn is a fixed-default column added to every row.
type MetadataColumn struct {
	// Header is the column name.
	Header string `yaml:"header" validate:"required"`
	// Default is the value written for every question.
	Default string `yaml:"default"`
	// Lead places the column directly after the question column
	// instead of after the correct-answer column.
	Lead bool `yaml:"lead,omitempty"`
}

// Schema is the immutable column configuration for the output table.
// The column set and defaults are enumerated once here, never inferred
// per question.
type Schema struct {
	// SheetName is the worksheet name.
	SheetName string `yaml:"sheet_name" validate:"required"`
	// QuestionHeader is the question text column name.
	QuestionHeader string `yaml:"question_header" validate:"required"`
	// ChoiceHeaders names one column per supported choice slot, in
	// label order. Questions with fewer choices get blank-filled
	// cells.
	ChoiceHeaders []string `yaml:"choice_headers" validate:"required,min=2"`
	// CorrectHeader is the correct-answer column name.
	CorrectHeader string `yaml:"correct_header" validate:"required"`
	// CorrectStyle selects the correct-answer representation.
	CorrectStyle CorrectStyle `yaml:"correct_style" validate:"required,oneof=label text index"`
	// MetadataColumns are the fixed-default columns.
	MetadataColumns []MetadataColumn `yaml:"metadata_columns,omitempty" validate:"dive"`
	// ColumnWidths gives per-column widths for the serialized sheet,
	// in output column order. Empty means default widths.
	ColumnWidths []float64 `yaml:"column_widths,omitempty"`
}

// Header returns the column names in output order: question, lead
// metadata, choice slots, correct answer, trailing metadata.
func (s Schema) Header() []string {
	header := make([]string, 0, 2+len(s.ChoiceHeaders)+len(s.MetadataColumns))
	header = append(header, s.QuestionHeader)
	for _, m := range s.MetadataColumns {
		if m.Lead {
			header = append(header, m.Header)
		}
	}
	header = append(header, s.ChoiceHeaders...)
	header = append(header, s.CorrectHeader)
	for _, m := range s.MetadataColumns {
		if !m.Lead {
			header = append(header, m.Header)
		}
	}
	return header
}

// Validate checks the schema for structural problems.
func (s Schema) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}
	if n := len(s.ColumnWidths); n != 0 && n != len(s.Header()) {
		return fmt.Errorf("invalid schema: %d column widths for %d columns", n, len(s.Header()))
	}
	return nil
}

// ParseSchema parses a YAML schema document. Unknown fields and
// multiple documents are rejected.
func ParseSchema(data []byte) (Schema, error) {
	var s Schema
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return Schema{}, fmt.Errorf("parse schema: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Schema{}, fmt.Errorf("parse schema: multiple YAML documents are not supported")
		}
		return Schema{}, fmt.Errorf("parse schema: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Schema{}, err
	}
	return s, nil
}

// LoadSchema reads, parses, and validates a schema file.
func LoadSchema(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, fmt.Errorf("read schema: %w", err)
	}
	return ParseSchema(data)
}

// DefaultSchema returns the generic importer layout: question, one
// column per choice slot A-D, correct answer by label, then time
// limit, question type, and points defaults.
func DefaultSchema() Schema {
	return Schema{
		SheetName:      "Sheet1",
		QuestionHeader: "Question",
		ChoiceHeaders:  []string{"Option A", "Option B", "Option C", "Option D"},
		CorrectHeader:  "Correct Answer",
		CorrectStyle:   CorrectByLabel,
		MetadataColumns: []MetadataColumn{
			{Header: "Time Limit", Default: "60"},
			{Header: "Question Type", Default: "Multiple Choice"},
			{Header: "Points", Default: "1"},
		},
	}
}

// QuizizzSchema returns the Quizizz importer layout: the question type
// column leads, the correct answer is a 1-based index, and every
// question gets 60 seconds.
func QuizizzSchema() Schema {
	return Schema{
		SheetName:      "Sheet1",
		QuestionHeader: "Question Text",
		ChoiceHeaders:  []string{"Option 1", "Option 2", "Option 3", "Option 4"},
		CorrectHeader:  "Correct Answer",
		CorrectStyle:   CorrectByIndex,
		MetadataColumns: []MetadataColumn{
			{Header: "Question Type", Default: "multiple choice", Lead: true},
			{Header: "Time in seconds", Default: "60"},
		},
		ColumnWidths: []float64{70, 15, 55, 55, 55, 55, 15, 15},
	}
}

// GFormSchema returns the Google Forms importer layout: the correct
// answer is the full choice text and every question is worth 1 point.
func GFormSchema() Schema {
	return Schema{
		SheetName:      "Sheet1",
		QuestionHeader: "Question",
		ChoiceHeaders:  []string{"Choice A", "Choice B", "Choice C", "Choice D"},
		CorrectHeader:  "Answer",
		CorrectStyle:   CorrectByText,
		MetadataColumns: []MetadataColumn{
			{Header: "Type", Default: "multiple choice", Lead: true},
			{Header: "Points", Default: "1"},
		},
		ColumnWidths: []float64{20, 20, 20, 20, 20, 20, 20, 20},
	}
}
