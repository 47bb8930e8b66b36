package builder

import (
	"fmt"
	"strconv"

	"github.com/edutools/quizsheet-go/pkg/quizsheet/models"
)

// BuildRows maps questions onto the schema's column layout, one row
// per question in input order. Questions with fewer choices than the
// schema's slot count get blank-filled choice cells.
func BuildRows(questions []models.Question, schema Schema) (models.Table, error) {
	table := models.Table{Header: schema.Header()}

	for i, q := range questions {
		if len(q.Choices) > len(schema.ChoiceHeaders) {
			return models.Table{}, fmt.Errorf("question %d has %d choices, schema supports %d", i+1, len(q.Choices), len(schema.ChoiceHeaders))
		}
		row := make([]string, 0, len(table.Header))
		row = append(row, q.Prompt)
		for _, m := range schema.MetadataColumns {
			if m.Lead {
				row = append(row, m.Default)
			}
		}
		for slot := range schema.ChoiceHeaders {
			if slot < len(q.Choices) {
				row = append(row, q.Choices[slot].Text)
			} else {
				row = append(row, "")
			}
		}
		correct, err := correctValue(q, schema.CorrectStyle)
		if err != nil {
			return models.Table{}, fmt.Errorf("question %d: %w", i+1, err)
		}
		row = append(row, correct)
		for _, m := range schema.MetadataColumns {
			if !m.Lead {
				row = append(row, m.Default)
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// correctValue renders the correct-answer cell per the schema's style.
func correctValue(q models.Question, style CorrectStyle) (string, error) {
	switch style {
	case CorrectByLabel:
		return q.CorrectLabel, nil
	case CorrectByText:
		text, ok := q.ChoiceText(q.CorrectLabel)
		if !ok {
			return "", fmt.Errorf("correct label %q not among choices", q.CorrectLabel)
		}
		return text, nil
	case CorrectByIndex:
		index := q.CorrectIndex()
		if index == 0 {
			return "", fmt.Errorf("correct label %q not among choices", q.CorrectLabel)
		}
		return strconv.Itoa(index), nil
	default:
		return "", fmt.Errorf("unknown correct-answer style %q", style)
	}
}
