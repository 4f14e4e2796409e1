// Package exam holds the core exam model: the spec describing what to
// generate, and the parsed form of a raw completion split into per-question
// views and answer-key entries.
package exam

import (
	"errors"
	"fmt"
	"strings"
)

// Marker is the literal that begins every correct-answer line in a raw
// completion. The prompt instructs the model to emit it and Parse splits
// question blocks on it. Changing one side without the other breaks the
// generate/parse contract.
const Marker = "Correct Answer:"

// ErrInvalidSpec indicates an exam spec that cannot produce a valid exam.
var ErrInvalidSpec = errors.New("invalid exam spec")

// Spec describes the exam to generate. Immutable once built; consumed by
// the prompt builder and the parser.
type Spec struct {
	// Topic is the subject of the exam, e.g. "US history".
	Topic string

	// NumQuestions is the number of questions. Must be >= 1.
	NumQuestions int

	// NumChoices is the number of options per question, one correct and
	// NumChoices-1 incorrect. Must be >= 2: an exam question needs at
	// least one distractor.
	NumChoices int
}

// Validate checks the spec constraints.
func (s Spec) Validate() error {
	if strings.TrimSpace(s.Topic) == "" {
		return fmt.Errorf("%w: topic is empty", ErrInvalidSpec)
	}
	if s.NumQuestions < 1 {
		return fmt.Errorf("%w: need at least 1 question, got %d", ErrInvalidSpec, s.NumQuestions)
	}
	if s.NumChoices < 2 {
		return fmt.Errorf("%w: need at least 2 choices per question, got %d", ErrInvalidSpec, s.NumChoices)
	}
	return nil
}

// block accumulates the lines of a single question during parsing.
type block struct {
	body []string // display lines, in arrival order
	key  []string // marker lines, in arrival order
}

// Exam is the parsed form of a raw completion: an ordered sequence of
// question blocks. Built once by Parse and read-only afterward.
type Exam struct {
	blocks []block
}

// Len returns the number of question slots opened during parsing. This can
// be lower than the requested question count when the completion was
// truncated before its markers ran out.
func (e *Exam) Len() int {
	return len(e.blocks)
}

// View returns the display text of question n (1-based): every line of the
// question except its correct-answer lines, newline-joined. ok is false
// when no such question slot exists.
func (e *Exam) View(n int) (string, bool) {
	if n < 1 || n > len(e.blocks) {
		return "", false
	}
	return strings.Join(e.blocks[n-1].body, "\n"), true
}

// Views returns the student-facing rendering of every question, keyed by
// 1-based question number. Every opened slot appears, even when its body
// is still empty (a marker arrived but no further lines did).
func (e *Exam) Views() map[int]string {
	m := make(map[int]string, len(e.blocks))
	for i, b := range e.blocks {
		m[i+1] = strings.Join(b.body, "\n")
	}
	return m
}

// AnswerKey returns the retained correct-answer lines keyed by 1-based
// question number. Questions whose marker never arrived (truncated
// generation) are absent; grading treats them as unanswerable-correctly.
func (e *Exam) AnswerKey() map[int]string {
	m := make(map[int]string, len(e.blocks))
	for i, b := range e.blocks {
		if len(b.key) > 0 {
			m[i+1] = strings.Join(b.key, "\n")
		}
	}
	return m
}
