package examgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/examly/internal/exam"
	"github.com/abhisek/examly/internal/llm"
)

func examSpec(topic string, questions, choices int) exam.Spec {
	return exam.Spec{Topic: topic, NumQuestions: questions, NumChoices: choices}
}

func testSpecTwoQuestions() (topic string, raw json.RawMessage) {
	return "astronomy", json.RawMessage(`1. Which planet is largest?
a) Mars
b) Jupiter
Correct Answer: b)
2. Which star is closest?
a) The Sun
b) Proxima Centauri
Correct Answer: a)`)
}

func TestGenerate_WellFormed(t *testing.T) {
	topic, raw := testSpecTwoQuestions()
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig())

	got, err := gen.Generate(context.Background(), examSpec(topic, 2, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Exam.Len() != 2 {
		t.Errorf("expected 2 questions, got %d", got.Exam.Len())
	}
	if got.Truncated {
		t.Error("well-formed completion should not be flagged truncated")
	}
	if got.Model != "mock" {
		t.Errorf("expected model 'mock', got %q", got.Model)
	}
	if len(got.Exam.AnswerKey()) != 2 {
		t.Errorf("expected 2 key entries, got %d", len(got.Exam.AnswerKey()))
	}
}

func TestGenerate_TruncatedByStopReason(t *testing.T) {
	topic, raw := testSpecTwoQuestions()
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw, StopReason: "max_tokens"})
	gen := New(mock, DefaultConfig())

	got, err := gen.Generate(context.Background(), examSpec(topic, 2, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Truncated {
		t.Error("max_tokens stop reason should flag truncation")
	}
}

func TestGenerate_TruncatedByMissingMarkers(t *testing.T) {
	raw := json.RawMessage(`1. Which planet is largest?
a) Mars
b) Jupiter
Correct Answer: b)
2. Which star is clo`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig())

	got, err := gen.Generate(context.Background(), examSpec("astronomy", 2, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Truncated {
		t.Error("missing answer key entries should flag truncation")
	}
	// The partial exam still parses; only the key has a gap.
	if _, ok := got.Exam.AnswerKey()[2]; ok {
		t.Error("question 2 should have no key entry")
	}
}

func TestGenerate_InvalidSpec(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), examSpec("", 5, 4))
	if err == nil {
		t.Fatal("expected error for invalid spec")
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider should not be called for an invalid spec, got %d calls", mock.CallCount())
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("API error")})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), examSpec("astronomy", 2, 2))
	if err == nil {
		t.Fatal("expected error from provider")
	}
	if !strings.Contains(err.Error(), "generate exam") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestGenerate_RequestShape(t *testing.T) {
	topic, raw := testSpecTwoQuestions()
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	cfg := DefaultConfig()
	cfg.MaxTokens = 512
	cfg.Temperature = 0.2
	gen := New(mock, cfg)

	_, err := gen.Generate(context.Background(), examSpec(topic, 2, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.System != systemPrompt {
		t.Error("expected the exam author system prompt")
	}
	if req.MaxTokens != 512 {
		t.Errorf("expected MaxTokens 512, got %d", req.MaxTokens)
	}
	if req.Temperature != 0.2 {
		t.Errorf("expected Temperature 0.2, got %f", req.Temperature)
	}
	if len(req.Messages) != 1 || !strings.Contains(req.Messages[0].Content, topic) {
		t.Error("expected a single user message carrying the topic")
	}
}
