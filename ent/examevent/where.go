// Code generated by ent, DO NOT EDIT.

package examevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/examly/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ExamID applies equality check predicate on the "exam_id" field. It's identical to ExamIDEQ.
func ExamID(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldExamID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldTopic, v))
}

// NumQuestions applies equality check predicate on the "num_questions" field. It's identical to NumQuestionsEQ.
func NumQuestions(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldNumQuestions, v))
}

// NumChoices applies equality check predicate on the "num_choices" field. It's identical to NumChoicesEQ.
func NumChoices(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldNumChoices, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldModel, v))
}

// Truncated applies equality check predicate on the "truncated" field. It's identical to TruncatedEQ.
func Truncated(v bool) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldTruncated, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ExamIDEQ applies the EQ predicate on the "exam_id" field.
func ExamIDEQ(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldExamID, v))
}

// ExamIDNEQ applies the NEQ predicate on the "exam_id" field.
func ExamIDNEQ(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldExamID, v))
}

// ExamIDIn applies the In predicate on the "exam_id" field.
func ExamIDIn(vs ...string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldIn(FieldExamID, vs...))
}

// ExamIDNotIn applies the NotIn predicate on the "exam_id" field.
func ExamIDNotIn(vs ...string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNotIn(FieldExamID, vs...))
}

// ExamIDGT applies the GT predicate on the "exam_id" field.
func ExamIDGT(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGT(FieldExamID, v))
}

// ExamIDGTE applies the GTE predicate on the "exam_id" field.
func ExamIDGTE(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGTE(FieldExamID, v))
}

// ExamIDLT applies the LT predicate on the "exam_id" field.
func ExamIDLT(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLT(FieldExamID, v))
}

// ExamIDLTE applies the LTE predicate on the "exam_id" field.
func ExamIDLTE(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLTE(FieldExamID, v))
}

// ExamIDContains applies the Contains predicate on the "exam_id" field.
func ExamIDContains(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldContains(FieldExamID, v))
}

// ExamIDHasPrefix applies the HasPrefix predicate on the "exam_id" field.
func ExamIDHasPrefix(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldHasPrefix(FieldExamID, v))
}

// ExamIDHasSuffix applies the HasSuffix predicate on the "exam_id" field.
func ExamIDHasSuffix(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldHasSuffix(FieldExamID, v))
}

// ExamIDEqualFold applies the EqualFold predicate on the "exam_id" field.
func ExamIDEqualFold(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEqualFold(FieldExamID, v))
}

// ExamIDContainsFold applies the ContainsFold predicate on the "exam_id" field.
func ExamIDContainsFold(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldContainsFold(FieldExamID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldContainsFold(FieldTopic, v))
}

// NumQuestionsEQ applies the EQ predicate on the "num_questions" field.
func NumQuestionsEQ(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldNumQuestions, v))
}

// NumQuestionsNEQ applies the NEQ predicate on the "num_questions" field.
func NumQuestionsNEQ(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldNumQuestions, v))
}

// NumQuestionsIn applies the In predicate on the "num_questions" field.
func NumQuestionsIn(vs ...int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldIn(FieldNumQuestions, vs...))
}

// NumQuestionsNotIn applies the NotIn predicate on the "num_questions" field.
func NumQuestionsNotIn(vs ...int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNotIn(FieldNumQuestions, vs...))
}

// NumQuestionsGT applies the GT predicate on the "num_questions" field.
func NumQuestionsGT(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGT(FieldNumQuestions, v))
}

// NumQuestionsGTE applies the GTE predicate on the "num_questions" field.
func NumQuestionsGTE(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGTE(FieldNumQuestions, v))
}

// NumQuestionsLT applies the LT predicate on the "num_questions" field.
func NumQuestionsLT(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLT(FieldNumQuestions, v))
}

// NumQuestionsLTE applies the LTE predicate on the "num_questions" field.
func NumQuestionsLTE(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLTE(FieldNumQuestions, v))
}

// NumChoicesEQ applies the EQ predicate on the "num_choices" field.
func NumChoicesEQ(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldNumChoices, v))
}

// NumChoicesNEQ applies the NEQ predicate on the "num_choices" field.
func NumChoicesNEQ(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldNumChoices, v))
}

// NumChoicesIn applies the In predicate on the "num_choices" field.
func NumChoicesIn(vs ...int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldIn(FieldNumChoices, vs...))
}

// NumChoicesNotIn applies the NotIn predicate on the "num_choices" field.
func NumChoicesNotIn(vs ...int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNotIn(FieldNumChoices, vs...))
}

// NumChoicesGT applies the GT predicate on the "num_choices" field.
func NumChoicesGT(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGT(FieldNumChoices, v))
}

// NumChoicesGTE applies the GTE predicate on the "num_choices" field.
func NumChoicesGTE(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGTE(FieldNumChoices, v))
}

// NumChoicesLT applies the LT predicate on the "num_choices" field.
func NumChoicesLT(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLT(FieldNumChoices, v))
}

// NumChoicesLTE applies the LTE predicate on the "num_choices" field.
func NumChoicesLTE(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLTE(FieldNumChoices, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldContainsFold(FieldModel, v))
}

// TruncatedEQ applies the EQ predicate on the "truncated" field.
func TruncatedEQ(v bool) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldTruncated, v))
}

// TruncatedNEQ applies the NEQ predicate on the "truncated" field.
func TruncatedNEQ(v bool) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldTruncated, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExamEvent) predicate.ExamEvent {
	return predicate.ExamEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExamEvent) predicate.ExamEvent {
	return predicate.ExamEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExamEvent) predicate.ExamEvent {
	return predicate.ExamEvent(sql.NotPredicates(p))
}
