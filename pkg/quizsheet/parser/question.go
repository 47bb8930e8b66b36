package parser

import (
	"strings"

	"github.com/edutools/quizsheet-go/pkg/quizsheet/models"
)

// parseState tracks which part of a block the state machine is
// consuming.
type parseState int

const (
	statePrompt parseState = iota
	stateChoices
	stateDone
)

// ParseBlock parses a single block into a Question.
//
// The lines before the first choice line form the prompt; they are
// joined with spaces and an optional leading question number ("1." or
// "1)") is stripped. Choice lines are captured as (label, text) pairs
// in appearance order, with unlabeled lines between choices appended to
// the open choice (hard line breaks in word processors produce these).
// An "ANSWER: X" line sets the correct label.
//
// It returns a MalformedBlockError when the block has an empty prompt,
// fewer than two choices, duplicate or non-contiguous labels, no ANSWER
// line, or an ANSWER label that is not among the choices.
func ParseBlock(block Block) (models.Question, error) {
	var promptParts []string
	var choices []models.Choice
	correct := ""
	state := statePrompt

	for _, line := range block.Lines {
		kind, label, text := classify(line)
		switch kind {
		case kindBlank:
			continue
		case kindAnswer:
			if correct == "" {
				correct = label
			}
			state = stateDone
		case kindChoice:
			choices = append(choices, models.Choice{Label: label, Text: text})
			state = stateChoices
		case kindText:
			switch state {
			case statePrompt:
				promptParts = append(promptParts, strings.TrimSpace(line))
			case stateChoices:
				// Continuation of the most recent choice.
				last := &choices[len(choices)-1]
				last.Text += " " + strings.TrimSpace(line)
			case stateDone:
				// Trailing text after the answer declaration is ignored.
			}
		}
	}

	prompt := stripNumberPrefix(strings.Join(promptParts, " "))
	if prompt == "" {
		return models.Question{}, NewMalformedBlockError(block, "empty question line")
	}
	if len(choices) == 0 {
		return models.Question{}, NewMalformedBlockError(block, "no choice lines found")
	}
	if len(choices) < 2 {
		return models.Question{}, NewMalformedBlockError(block, "at least two choices required, found %d", len(choices))
	}

	seen := make(map[string]bool, len(choices))
	for i, c := range choices {
		if seen[c.Label] {
			return models.Question{}, NewMalformedBlockError(block, "duplicate choice label %q", c.Label)
		}
		seen[c.Label] = true
		if want := string(rune('A' + i)); c.Label != want {
			return models.Question{}, NewMalformedBlockError(block, "choice labels must be contiguous starting at A, found %q in position %d", c.Label, i+1)
		}
	}

	if correct == "" {
		return models.Question{}, NewMalformedBlockError(block, `missing "ANSWER: X" line`)
	}
	if !seen[correct] {
		return models.Question{}, NewMalformedBlockError(block, "answer label %q not among choices", correct)
	}

	return models.Question{
		Prompt:       prompt,
		Choices:      choices,
		CorrectLabel: correct,
	}, nil
}

// Parse converts raw lines into validated questions plus per-block
// diagnostics. Malformed blocks are reported, not fatal: parsing
// continues with the remaining blocks and question order matches block
// order in the input.
func Parse(lines []string) ([]models.Question, []models.Diagnostic) {
	var questions []models.Question
	var diags []models.Diagnostic

	for block := range SplitBlocks(lines) {
		q, err := ParseBlock(block)
		if err != nil {
			reason := err.Error()
			if mbe, ok := err.(*MalformedBlockError); ok {
				reason = mbe.Reason
			}
			diags = append(diags, models.Diagnostic{Block: block.Index, Reason: reason})
			continue
		}
		questions = append(questions, q)
	}
	return questions, diags
}
