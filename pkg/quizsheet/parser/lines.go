// Package parser turns raw quiz text into validated question records.
package parser

import (
	"regexp"
	"strings"
)

var (
	numberPrefixPattern = regexp.MustCompile(`^\s*\d+\s*[.)]\s*`)
	choicePattern       = regexp.MustCompile(`^\s*([A-Za-z])[.)]\s+(\S.*)$`)
	answerPattern       = regexp.MustCompile(`(?i)^\s*answer\s*:\s*([A-Za-z])\b`)
)

// lineKind is the closed set of line classifications used by the block
// state machine.
type lineKind int

const (
	// kindBlank is an empty or whitespace-only line.
	kindBlank lineKind = iota
	// kindChoice is a labeled choice line ("A. text" or "A) text").
	kindChoice
	// kindAnswer is a line starting with an "ANSWER: X" declaration
	// (keyword case-insensitive, trailing remarks allowed).
	kindAnswer
	// kindText is any other line: prompt text or a continuation of the
	// preceding choice.
	kindText
)

// classify assigns a line its kind. For choice lines it also returns
// the uppercased label and the choice text; for answer lines it returns
// the uppercased label.
func classify(line string) (kind lineKind, label, text string) {
	if strings.TrimSpace(line) == "" {
		return kindBlank, "", ""
	}
	if m := answerPattern.FindStringSubmatch(line); m != nil {
		return kindAnswer, strings.ToUpper(m[1]), ""
	}
	if m := choicePattern.FindStringSubmatch(line); m != nil {
		return kindChoice, strings.ToUpper(m[1]), strings.TrimSpace(m[2])
	}
	return kindText, "", ""
}

// ReadRawLines splits text into lines with trailing whitespace trimmed
// and blank lines at the very start and end stripped. Line terminators
// may be LF or CRLF.
func ReadRawLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}

	start := 0
	for start < len(lines) && lines[start] == "" {
		start++
	}
	end := len(lines)
	for end > start && lines[end-1] == "" {
		end--
	}
	return lines[start:end]
}

// stripNumberPrefix removes an optional leading question number such as
// "1." or "12)" from a prompt.
func stripNumberPrefix(s string) string {
	return strings.TrimSpace(numberPrefixPattern.ReplaceAllString(s, ""))
}
