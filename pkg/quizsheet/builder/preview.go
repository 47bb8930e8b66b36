package builder

import "github.com/edutools/quizsheet-go/pkg/quizsheet/models"

// BuildPreview produces a review-oriented view of the questions: the
// metadata-default columns are omitted, the correct answer keeps the
// schema's style, and at most limit rows are included (limit <= 0
// means no cap). The preview is never used for the exported file.
func BuildPreview(questions []models.Question, schema Schema, limit int) models.Preview {
	preview := models.Preview{
		Header: make([]string, 0, 2+len(schema.ChoiceHeaders)),
		Total:  len(questions),
	}
	preview.Header = append(preview.Header, schema.QuestionHeader)
	preview.Header = append(preview.Header, schema.ChoiceHeaders...)
	preview.Header = append(preview.Header, schema.CorrectHeader)

	shown := questions
	if limit > 0 && len(questions) > limit {
		shown = questions[:limit]
		preview.Truncated = true
	}

	for _, q := range shown {
		row := make([]string, 0, len(preview.Header))
		row = append(row, q.Prompt)
		for slot := range schema.ChoiceHeaders {
			if slot < len(q.Choices) {
				row = append(row, q.Choices[slot].Text)
			} else {
				row = append(row, "")
			}
		}
		correct, err := correctValue(q, schema.CorrectStyle)
		if err != nil {
			correct = q.CorrectLabel
		}
		row = append(row, correct)
		preview.Rows = append(preview.Rows, row)
	}
	return preview
}
