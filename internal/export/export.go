// Package export renders a generated exam to files: a student paper and
// answer key as plain text, or a single structured document as JSON/YAML.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/examly/internal/exam"
)

// Document is the structured form of an exported exam.
type Document struct {
	ExamID       string     `json:"exam_id" yaml:"exam_id"`
	Topic        string     `json:"topic" yaml:"topic"`
	NumQuestions int        `json:"num_questions" yaml:"num_questions"`
	Model        string     `json:"model,omitempty" yaml:"model,omitempty"`
	GeneratedAt  time.Time  `json:"generated_at" yaml:"generated_at"`
	Questions    []Question `json:"questions" yaml:"questions"`
}

// Question holds one question's display text and its retained answer line.
type Question struct {
	Number int    `json:"number" yaml:"number"`
	Body   string `json:"body" yaml:"body"`
	// AnswerLine is empty when the completion was truncated before this
	// question's marker.
	AnswerLine string `json:"answer_line,omitempty" yaml:"answer_line,omitempty"`
}

// NewDocument builds a Document from a parsed exam.
func NewDocument(examID, topic, model string, generatedAt time.Time, ex *exam.Exam) Document {
	key := ex.AnswerKey()
	questions := make([]Question, 0, ex.Len())
	for n := 1; n <= ex.Len(); n++ {
		body, _ := ex.View(n)
		questions = append(questions, Question{
			Number:     n,
			Body:       strings.TrimRight(body, "\n"),
			AnswerLine: key[n],
		})
	}
	return Document{
		ExamID:       examID,
		Topic:        topic,
		NumQuestions: ex.Len(),
		Model:        model,
		GeneratedAt:  generatedAt,
		Questions:    questions,
	}
}

// Paper renders the student-facing exam: every question's view, answer
// lines excluded.
func Paper(ex *exam.Exam) string {
	var b strings.Builder
	for n := 1; n <= ex.Len(); n++ {
		view, _ := ex.View(n)
		b.WriteString(strings.TrimRight(view, "\n"))
		b.WriteString("\n\n")
	}
	return b.String()
}

// Key renders the answer key, one entry per question. Questions without a
// retained answer line are marked so the gap is visible to the examiner.
func Key(ex *exam.Exam) string {
	answers := ex.AnswerKey()
	var b strings.Builder
	for n := 1; n <= ex.Len(); n++ {
		entry, ok := answers[n]
		if !ok {
			entry = "(no answer line was generated)"
		}
		fmt.Fprintf(&b, "Question %d\n%s\n\n", n, entry)
	}
	return b.String()
}

// EncodeJSON writes the document as indented JSON.
func EncodeJSON(w io.Writer, d Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// EncodeYAML writes the document as YAML.
func EncodeYAML(w io.Writer, d Document) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(d)
}
