package examgen

import (
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/examly/internal/exam"
)

func TestBuildPrompt_StandardExam(t *testing.T) {
	prompt, err := BuildPrompt(exam.Spec{Topic: "US history", NumQuestions: 5, NumChoices: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Create a multiple choice exam about US history.",
		"5 questions",
		"4 options",
		"3 incorrect answers",
		`"Correct Answer: "`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildPrompt_CountsFollowSpec(t *testing.T) {
	prompt, err := BuildPrompt(exam.Spec{Topic: "chemistry", NumQuestions: 10, NumChoices: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(prompt, "10 questions") {
		t.Error("missing question count")
	}
	if !strings.Contains(prompt, "3 options") {
		t.Error("missing choice count")
	}
	if !strings.Contains(prompt, "2 incorrect answers") {
		t.Error("missing distractor count")
	}
}

func TestBuildPrompt_InvalidSpec(t *testing.T) {
	_, err := BuildPrompt(exam.Spec{Topic: "", NumQuestions: 5, NumChoices: 4})
	if !errors.Is(err, exam.ErrInvalidSpec) {
		t.Fatalf("expected ErrInvalidSpec, got %v", err)
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	spec := exam.Spec{Topic: "geography", NumQuestions: 5, NumChoices: 4}
	a, _ := BuildPrompt(spec)
	b, _ := BuildPrompt(spec)
	if a != b {
		t.Error("BuildPrompt should be deterministic for the same spec")
	}
}

func TestSystemPrompt_EmbedsMarker(t *testing.T) {
	if !strings.Contains(systemPrompt, exam.Marker) {
		t.Error("system prompt must instruct the model to emit the marker")
	}
}
