package store

import (
	"context"
	"fmt"

	"github.com/abhisek/examly/ent"
	"github.com/abhisek/examly/ent/attemptevent"
)

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetExamID(data.ExamID).
		SetTopic(data.Topic).
		SetNumQuestions(data.NumQuestions).
		SetAnswered(data.Answered).
		SetCorrect(data.Correct).
		SetPercentage(data.Percentage).
		SetLetter(data.Letter).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}

	return nil
}

func (r *eventRepo) RecentAttempts(ctx context.Context, limit int) ([]Attempt, error) {
	q := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	out := make([]Attempt, 0, len(events))
	for _, e := range events {
		out = append(out, Attempt{
			ID:           e.ID,
			Timestamp:    e.Timestamp,
			AttemptID:    e.AttemptID,
			ExamID:       e.ExamID,
			Topic:        e.Topic,
			NumQuestions: e.NumQuestions,
			Answered:     e.Answered,
			Correct:      e.Correct,
			Percentage:   e.Percentage,
			Letter:       e.Letter,
		})
	}
	return out, nil
}
