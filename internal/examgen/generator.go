// Package examgen builds exam prompts and turns LLM completions into
// parsed exams.
package examgen

import (
	"context"
	"fmt"

	"github.com/abhisek/examly/internal/exam"
	"github.com/abhisek/examly/internal/llm"
)

// Generated is the outcome of one exam generation round-trip.
type Generated struct {
	// Exam is the parsed exam.
	Exam *exam.Exam

	// Raw is the completion text exactly as the provider returned it.
	Raw string

	// Model is the model that served the request.
	Model string

	// Truncated reports that the completion stopped before producing a
	// correct-answer marker for every requested question, either because
	// the token budget ran out or because the model under-delivered.
	Truncated bool
}

// Generator produces exams through an LLM provider.
type Generator struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Generator.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

// Generate requests one exam matching spec and parses the completion.
// The request is a single blocking round-trip; a truncated completion is
// not retried or resumed, it is parsed as-is and flagged.
func (g *Generator) Generate(ctx context.Context, spec exam.Spec) (*Generated, error) {
	prompt, err := BuildPrompt(spec)
	if err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "exam-gen")
	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate exam: %w", err)
	}

	raw := string(resp.Content)
	ex := exam.Parse(raw, spec.NumQuestions)

	return &Generated{
		Exam:      ex,
		Raw:       raw,
		Model:     resp.Model,
		Truncated: resp.StopReason == "max_tokens" || len(ex.AnswerKey()) < spec.NumQuestions,
	}, nil
}
