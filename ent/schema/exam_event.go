package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExamEvent records every generated exam.
type ExamEvent struct {
	ent.Schema
}

func (ExamEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ExamEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("exam_id").
			NotEmpty().
			Comment("UUID linking attempts to the exam they grade"),
		field.String("topic").
			NotEmpty().
			Comment("Exam subject as given to the prompt builder"),
		field.Int("num_questions").
			Comment("Requested question count"),
		field.Int("num_choices").
			Comment("Requested options per question"),
		field.String("model").
			Default("").
			Comment("Model that served the completion"),
		field.Bool("truncated").
			Default(false).
			Comment("Completion stopped before every question got a marker"),
	}
}

func (ExamEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("exam_id"),
		index.Fields("topic"),
	}
}
