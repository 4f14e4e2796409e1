package store

import (
	"context"
	"fmt"

	"github.com/abhisek/examly/ent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendExam(ctx context.Context, data ExamEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ExamEvent.Create().
		SetSequence(seqNum).
		SetExamID(data.ExamID).
		SetTopic(data.Topic).
		SetNumQuestions(data.NumQuestions).
		SetNumChoices(data.NumChoices).
		SetModel(data.Model).
		SetTruncated(data.Truncated).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save exam event: %w", err)
	}

	return nil
}
