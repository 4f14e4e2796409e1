package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/examly/internal/exam"
)

const completion = `1. What is the capital of France?
a) London
b) Paris
Correct Answer: b)
2. What is 2 + 2?
a) 3
b) 4
Correct Answer: b)`

func parsedExam(t *testing.T) *exam.Exam {
	t.Helper()
	return exam.Parse(completion, 2)
}

func TestPaper_OmitsAnswerLines(t *testing.T) {
	paper := Paper(parsedExam(t))

	if strings.Contains(paper, exam.Marker) {
		t.Error("paper leaks answer lines")
	}
	for _, want := range []string{"capital of France", "b) Paris", "2. What is 2 + 2?"} {
		if !strings.Contains(paper, want) {
			t.Errorf("paper missing %q", want)
		}
	}
}

func TestKey_ListsEveryQuestion(t *testing.T) {
	key := Key(parsedExam(t))

	for _, want := range []string{"Question 1", "Question 2", "Correct Answer: b)"} {
		if !strings.Contains(key, want) {
			t.Errorf("key missing %q", want)
		}
	}
}

func TestKey_MarksMissingEntries(t *testing.T) {
	truncated := exam.Parse(`1. First?
a) yes
Correct Answer: a)
2. Second?
a) y`, 2)

	key := Key(truncated)
	if !strings.Contains(key, "(no answer line was generated)") {
		t.Errorf("key should mark the gap:\n%s", key)
	}
}

func TestNewDocument(t *testing.T) {
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	doc := NewDocument("exam-1", "geography", "gpt-4o-mini", now, parsedExam(t))

	if doc.NumQuestions != 2 {
		t.Fatalf("expected 2 questions, got %d", doc.NumQuestions)
	}
	if doc.Questions[0].Number != 1 {
		t.Errorf("expected question numbers to be 1-based")
	}
	if doc.Questions[1].AnswerLine != "Correct Answer: b)" {
		t.Errorf("unexpected answer line: %q", doc.Questions[1].AnswerLine)
	}
	if strings.Contains(doc.Questions[0].Body, exam.Marker) {
		t.Error("question body leaks its answer line")
	}
}

func TestEncodeJSON_RoundTrip(t *testing.T) {
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	doc := NewDocument("exam-1", "geography", "gpt-4o-mini", now, parsedExam(t))

	var buf bytes.Buffer
	if err := EncodeJSON(&buf, doc); err != nil {
		t.Fatalf("encode: %v", err)
	}

	var got Document
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ExamID != "exam-1" || got.Topic != "geography" {
		t.Errorf("unexpected document: %+v", got)
	}
	if len(got.Questions) != 2 {
		t.Errorf("expected 2 questions, got %d", len(got.Questions))
	}
}

func TestEncodeYAML_RoundTrip(t *testing.T) {
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	doc := NewDocument("exam-1", "geography", "gpt-4o-mini", now, parsedExam(t))

	var buf bytes.Buffer
	if err := EncodeYAML(&buf, doc); err != nil {
		t.Fatalf("encode: %v", err)
	}

	var got Document
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Topic != "geography" {
		t.Errorf("unexpected topic: %q", got.Topic)
	}
}
