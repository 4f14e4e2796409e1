// Code generated by ent, DO NOT EDIT.

package examevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the examevent type in the database.
	Label = "exam_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldExamID holds the string denoting the exam_id field in the database.
	FieldExamID = "exam_id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldNumQuestions holds the string denoting the num_questions field in the database.
	FieldNumQuestions = "num_questions"
	// FieldNumChoices holds the string denoting the num_choices field in the database.
	FieldNumChoices = "num_choices"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldTruncated holds the string denoting the truncated field in the database.
	FieldTruncated = "truncated"
	// Table holds the table name of the examevent in the database.
	Table = "exam_events"
)

// Columns holds all SQL columns for examevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldExamID,
	FieldTopic,
	FieldNumQuestions,
	FieldNumChoices,
	FieldModel,
	FieldTruncated,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// ExamIDValidator is a validator for the "exam_id" field. It is called by the builders before save.
	ExamIDValidator func(string) error
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// DefaultModel holds the default value on creation for the "model" field.
	DefaultModel string
	// DefaultTruncated holds the default value on creation for the "truncated" field.
	DefaultTruncated bool
)

// OrderOption defines the ordering options for the ExamEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByExamID orders the results by the exam_id field.
func ByExamID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByNumQuestions orders the results by the num_questions field.
func ByNumQuestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumQuestions, opts...).ToFunc()
}

// ByNumChoices orders the results by the num_choices field.
func ByNumChoices(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumChoices, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByTruncated orders the results by the truncated field.
func ByTruncated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTruncated, opts...).ToFunc()
}
