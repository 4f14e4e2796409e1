package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one graded exam attempt.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("UUID of this attempt"),
		field.String("exam_id").
			NotEmpty().
			Comment("UUID of the exam that was taken"),
		field.String("topic").
			NotEmpty().
			Comment("Exam subject, denormalized for listing"),
		field.Int("num_questions").
			Comment("Questions the exam presented"),
		field.Int("answered").
			Comment("Questions actually answered; grading total"),
		field.Int("correct").
			Comment("Correct answers"),
		field.Float("percentage").
			Comment("100 * correct / answered"),
		field.String("letter").
			NotEmpty().
			Comment("Letter grade A-F"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("exam_id"),
	}
}
