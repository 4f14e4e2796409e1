// Package grading scores submitted answers against an exam's answer key
// and renders the result summary.
package grading

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/abhisek/examly/internal/exam"
)

// ErrNoAnswers indicates grading was attempted with zero submitted answers,
// which would make the percentage undefined.
var ErrNoAnswers = errors.New("no answers submitted")

// Result is the outcome of grading one attempt.
type Result struct {
	Correct    int
	Total      int
	Percentage float64
	Letter     string
}

// articles maps each letter grade to its indefinite article.
var articles = map[string]string{
	"A": "an",
	"B": "a",
	"C": "a",
	"D": "a",
	"F": "an",
}

// Grade compares submitted answers against the answer key.
//
// Total is the number of submitted entries, not the exam's question count:
// a partially taken exam is graded on what was attempted. A question with
// no answer-key entry (the generation was truncated before its marker)
// counts as incorrect, never as an error. Comparison is case-insensitive
// on the designated answer token.
func Grade(answerKey, submitted map[int]string) (*Result, error) {
	if len(submitted) == 0 {
		return nil, ErrNoAnswers
	}

	correct := 0
	for q, answer := range submitted {
		entry, ok := answerKey[q]
		if !ok {
			continue
		}
		want := answerToken(entry)
		got := strings.TrimSpace(answer)
		if want != "" && got != "" && strings.EqualFold(got, want) {
			correct++
		}
	}

	total := len(submitted)
	pct := 100 * float64(correct) / float64(total)

	return &Result{
		Correct:    correct,
		Total:      total,
		Percentage: pct,
		Letter:     letterFor(pct),
	}, nil
}

// Summary renders the human-readable result line.
func (r *Result) Summary() string {
	article, ok := articles[r.Letter]
	if !ok {
		article = "a"
	}
	return fmt.Sprintf(
		"Exam results: %d out of %d answers correct! You achieved %s %s with a percentage score of %.1f.",
		r.Correct, r.Total, article, r.Letter, r.Percentage,
	)
}

// answerToken extracts the designated answer from an answer-key entry: the
// token immediately after the marker prefix, cut at the first delimiter.
// A key entry can hold several lines when the completion ran on; only the
// first marker line designates the answer. Extraction strips the prefix
// rather than indexing a fixed offset, so stray whitespace after the
// marker does not shift the token.
func answerToken(entry string) string {
	line, _, _ := strings.Cut(entry, "\n")
	rest, ok := strings.CutPrefix(line, exam.Marker)
	if !ok {
		return ""
	}
	rest = strings.TrimSpace(rest)
	for i, r := range rest {
		if r == ')' || r == '.' || unicode.IsSpace(r) {
			return rest[:i]
		}
	}
	return rest
}

// letterFor maps a percentage to a letter grade. Thresholds are inclusive
// lower bounds, checked in descending order.
func letterFor(pct float64) string {
	switch {
	case pct >= 90:
		return "A"
	case pct >= 80:
		return "B"
	case pct >= 70:
		return "C"
	case pct >= 60:
		return "D"
	default:
		return "F"
	}
}
