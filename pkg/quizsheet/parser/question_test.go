package parser

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/edutools/quizsheet-go/pkg/quizsheet/models"
)

func mustBlock(t *testing.T, text string) Block {
	t.Helper()
	blocks := CollectBlocks(ReadRawLines(text))
	if len(blocks) != 1 {
		t.Fatalf("expected exactly 1 block, got %d", len(blocks))
	}
	return blocks[0]
}

func TestParseBlock(t *testing.T) {
	block := mustBlock(t, `What is DNS?
A. Domain Name System
B. Dynamic Host Configuration Protocol
C. Data Naming Services
D. Digital Network Security
ANSWER: A`)

	q, err := ParseBlock(block)
	if err != nil {
		t.Fatalf("ParseBlock failed: %v", err)
	}

	expected := models.Question{
		Prompt: "What is DNS?",
		Choices: []models.Choice{
			{Label: "A", Text: "Domain Name System"},
			{Label: "B", Text: "Dynamic Host Configuration Protocol"},
			{Label: "C", Text: "Data Naming Services"},
			{Label: "D", Text: "Digital Network Security"},
		},
		CorrectLabel: "A",
	}
	if !reflect.DeepEqual(q, expected) {
		t.Errorf("ParseBlock = %+v, expected %+v", q, expected)
	}
}

func TestParseBlockDeterministic(t *testing.T) {
	text := `1) Which port does HTTPS use?
A) 80
B) 443
ANSWER: B`

	first, err := ParseBlock(mustBlock(t, text))
	if err != nil {
		t.Fatalf("first parse failed: %v", err)
	}
	second, err := ParseBlock(mustBlock(t, text))
	if err != nil {
		t.Fatalf("second parse failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("parse not deterministic: %+v vs %+v", first, second)
	}
}

func TestParseBlockNumberPrefixStripped(t *testing.T) {
	q, err := ParseBlock(mustBlock(t, "3. What is TCP?\nA. A protocol\nB. A cable\nANSWER: A"))
	if err != nil {
		t.Fatalf("ParseBlock failed: %v", err)
	}
	if q.Prompt != "What is TCP?" {
		t.Errorf("Prompt = %q, expected %q", q.Prompt, "What is TCP?")
	}
}

func TestParseBlockMultilinePrompt(t *testing.T) {
	q, err := ParseBlock(mustBlock(t, `A router receives a packet with an unknown
destination address. What does it do?
A. Drops it
B. Forwards it to the default route
ANSWER: B`))
	if err != nil {
		t.Fatalf("ParseBlock failed: %v", err)
	}
	expected := "A router receives a packet with an unknown destination address. What does it do?"
	if q.Prompt != expected {
		t.Errorf("Prompt = %q, expected %q", q.Prompt, expected)
	}
}

func TestParseBlockChoiceContinuation(t *testing.T) {
	q, err := ParseBlock(mustBlock(t, `What is DHCP?
A. Dynamic Host
Configuration Protocol
B. Domain Name System
ANSWER: A`))
	if err != nil {
		t.Fatalf("ParseBlock failed: %v", err)
	}
	if q.Choices[0].Text != "Dynamic Host Configuration Protocol" {
		t.Errorf("choice A = %q, expected continuation to be appended", q.Choices[0].Text)
	}
}

func TestParseBlockAnswerWithTrailingRemark(t *testing.T) {
	q, err := ParseBlock(mustBlock(t, "What is DNS?\nA. one\nB. two\nANSWER: B (correct)"))
	if err != nil {
		t.Fatalf("ParseBlock failed: %v", err)
	}
	if q.CorrectLabel != "B" {
		t.Errorf("CorrectLabel = %q, expected B", q.CorrectLabel)
	}
}

func TestParseBlockLowercase(t *testing.T) {
	q, err := ParseBlock(mustBlock(t, "True or false: the sky is blue.\na) True\nb) False\nanswer: a"))
	if err != nil {
		t.Fatalf("ParseBlock failed: %v", err)
	}
	if q.Choices[0].Label != "A" || q.Choices[1].Label != "B" || q.CorrectLabel != "A" {
		t.Errorf("labels not uppercased: %+v", q)
	}
}

func TestParseBlockErrors(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		reason string
	}{
		{
			name:   "no choices",
			text:   "What is DNS?",
			reason: "no choice lines found",
		},
		{
			name:   "empty prompt",
			text:   "A. one\nB. two\nANSWER: A",
			reason: "empty question line",
		},
		{
			name:   "single choice",
			text:   "What is DNS?\nA. Domain Name System\nANSWER: A",
			reason: "at least two choices",
		},
		{
			name:   "duplicate label",
			text:   "What is DNS?\nA. one\nA. two\nANSWER: A",
			reason: "duplicate choice label",
		},
		{
			name:   "non-contiguous labels",
			text:   "What is DNS?\nA. one\nC. two\nANSWER: A",
			reason: "contiguous starting at A",
		},
		{
			name:   "labels not starting at A",
			text:   "What is DNS?\nB. one\nC. two\nANSWER: B",
			reason: "contiguous starting at A",
		},
		{
			name:   "missing answer",
			text:   "What is DNS?\nA. one\nB. two",
			reason: `missing "ANSWER: X" line`,
		},
		{
			name:   "answer not among choices",
			text:   "What is DNS?\nA. one\nB. two\nANSWER: E",
			reason: "not among choices",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBlock(mustBlock(t, tt.text))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var mbe *MalformedBlockError
			if !errors.As(err, &mbe) {
				t.Fatalf("expected MalformedBlockError, got %T", err)
			}
			if !strings.Contains(mbe.Reason, tt.reason) {
				t.Errorf("Reason = %q, expected it to contain %q", mbe.Reason, tt.reason)
			}
			if mbe.Raw == "" {
				t.Error("expected Raw to carry the block text")
			}
		})
	}
}

func TestParseMalformedBlockIsolation(t *testing.T) {
	text := `Q1?
A. a
B. b
ANSWER: A

Q2?
A. a
B. b
ANSWER: B

Q3 without answer?
A. a
B. b

Q4?
A. a
B. b
ANSWER: A

Q5?
A. a
B. b
ANSWER: B`

	questions, diags := Parse(ReadRawLines(text))

	if len(questions) != 4 {
		t.Errorf("expected 4 questions, got %d", len(questions))
	}
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if diags[0].Block != 3 {
		t.Errorf("diagnostic block = %d, expected 3", diags[0].Block)
	}
	if !strings.Contains(diags[0].Reason, "ANSWER") {
		t.Errorf("diagnostic reason = %q, expected a missing-answer reason", diags[0].Reason)
	}

	// Order preserved across the gap.
	prompts := []string{questions[0].Prompt, questions[1].Prompt, questions[2].Prompt, questions[3].Prompt}
	if !reflect.DeepEqual(prompts, []string{"Q1?", "Q2?", "Q4?", "Q5?"}) {
		t.Errorf("unexpected question order: %v", prompts)
	}
}

func TestParseEmptyInput(t *testing.T) {
	questions, diags := Parse(ReadRawLines(""))
	if len(questions) != 0 || len(diags) != 0 {
		t.Errorf("expected no questions and no diagnostics, got %d and %d", len(questions), len(diags))
	}
}
