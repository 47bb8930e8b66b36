// Package models defines data structures for quiz conversion.
package models

// Choice represents a single answer choice within a question.
type Choice struct {
	// Label is the single-letter choice label (A, B, C, ...).
	Label string `json:"label"`
	// Text is the choice text.
	Text string `json:"text"`
}

// Question represents one validated quiz question.
type Question struct {
	// Prompt is the question stem.
	Prompt string `json:"prompt"`
	// Choices are the answer choices in label order starting at A.
	Choices []Choice `json:"choices"`
	// CorrectLabel is the label of the correct choice.
	CorrectLabel string `json:"correct_label"`
}

// ChoiceText returns the text of the choice with the given label.
func (q Question) ChoiceText(label string) (string, bool) {
	for _, c := range q.Choices {
		if c.Label == label {
			return c.Text, true
		}
	}
	return "", false
}

// CorrectIndex returns the 1-based position of the correct choice,
// or 0 if the correct label is not among the choices.
func (q Question) CorrectIndex() int {
	for i, c := range q.Choices {
		if c.Label == q.CorrectLabel {
			return i + 1
		}
	}
	return 0
}
