package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAndQueryAttempts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	attempts, err := repo.RecentAttempts(ctx, 10)
	if err != nil {
		t.Fatalf("recent (empty): %v", err)
	}
	if len(attempts) != 0 {
		t.Fatalf("expected no attempts, got %d", len(attempts))
	}

	for i := 0; i < 3; i++ {
		err := repo.AppendAttempt(ctx, AttemptEventData{
			AttemptID:    "attempt-" + string(rune('a'+i)),
			ExamID:       "exam-1",
			Topic:        "US history",
			NumQuestions: 5,
			Answered:     5,
			Correct:      3 + i,
			Percentage:   float64(3+i) / 5 * 100,
			Letter:       "C",
		})
		if err != nil {
			t.Fatalf("append attempt %d: %v", i, err)
		}
	}

	attempts, err = repo.RecentAttempts(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(attempts) != 3 {
		t.Fatalf("expected 3 attempts, got %d", len(attempts))
	}
	// Newest first.
	if attempts[0].AttemptID != "attempt-c" {
		t.Errorf("expected newest attempt first, got %q", attempts[0].AttemptID)
	}
	if attempts[0].Correct != 5 {
		t.Errorf("correct = %d, want 5", attempts[0].Correct)
	}
}

func TestRecentAttemptsLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.AppendAttempt(ctx, AttemptEventData{
			AttemptID: "a", ExamID: "e", Topic: "t",
			NumQuestions: 1, Answered: 1, Correct: 1, Percentage: 100, Letter: "A",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	attempts, err := repo.RecentAttempts(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(attempts) != 2 {
		t.Errorf("expected 2 attempts, got %d", len(attempts))
	}
}

func TestAppendExamEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendExam(ctx, ExamEventData{
		ExamID:       "exam-1",
		Topic:        "chemistry",
		NumQuestions: 5,
		NumChoices:   4,
		Model:        "gpt-4o-mini",
		Truncated:    true,
	})
	if err != nil {
		t.Fatalf("append exam: %v", err)
	}

	count, err := s.Client().ExamEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("exam events = %d, want 1", count)
	}
}

func TestAppendAndGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "openai",
		Model:        "gpt-4o-mini",
		Purpose:      "exam-gen",
		InputTokens:  120,
		OutputTokens: 800,
		LatencyMs:    1500,
		Success:      true,
		RequestBody:  "Create a multiple choice exam about chemistry.",
		ResponseBody: "1. Which element...",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("expected event, got nil")
	}
	if e.Purpose != "exam-gen" {
		t.Errorf("purpose = %q, want exam-gen", e.Purpose)
	}
	if e.ResponseBody != "1. Which element..." {
		t.Errorf("unexpected response body: %q", e.ResponseBody)
	}
}

func TestQueryLLMEventsPurposeFilter(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, purpose := range []string{"exam-gen", "exam-gen", "other"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock", Model: "mock", Purpose: purpose, Success: true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "exam-gen"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("expected 2 exam-gen events, got %d", len(events))
	}
}

func TestGetLLMEventNotFound(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()

	e, err := repo.GetLLMEvent(context.Background(), 9999)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e != nil {
		t.Fatal("expected nil for missing event")
	}
}
