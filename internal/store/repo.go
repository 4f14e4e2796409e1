package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // filter LLM events by purpose label ("" = all)
}

// ExamEventData captures one generated exam.
type ExamEventData struct {
	ExamID       string
	Topic        string
	NumQuestions int
	NumChoices   int
	Model        string
	Truncated    bool
}

// AttemptEventData captures one graded attempt.
type AttemptEventData struct {
	AttemptID    string
	ExamID       string
	Topic        string
	NumQuestions int
	Answered     int
	Correct      int
	Percentage   float64
	Letter       string
}

// Attempt is the read model for a stored attempt.
type Attempt struct {
	ID           int
	Timestamp    time.Time
	AttemptID    string
	ExamID       string
	Topic        string
	NumQuestions int
	Answered     int
	Correct      int
	Percentage   float64
	Letter       string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is the read model for a stored LLM request event.
type LLMEvent struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendExam records a generated exam.
	AppendExam(ctx context.Context, data ExamEventData) error

	// AppendAttempt records a graded attempt.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// RecentAttempts returns the most recent attempts, newest first.
	RecentAttempts(ctx context.Context, limit int) ([]Attempt, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)
}
