// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/examly/ent/examevent"
)

// ExamEvent is the model entity for the ExamEvent schema.
type ExamEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID linking attempts to the exam they grade
	ExamID string `json:"exam_id,omitempty"`
	// Exam subject as given to the prompt builder
	Topic string `json:"topic,omitempty"`
	// Requested question count
	NumQuestions int `json:"num_questions,omitempty"`
	// Requested options per question
	NumChoices int `json:"num_choices,omitempty"`
	// Model that served the completion
	Model string `json:"model,omitempty"`
	// Completion stopped before every question got a marker
	Truncated    bool `json:"truncated,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExamEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case examevent.FieldTruncated:
			values[i] = new(sql.NullBool)
		case examevent.FieldID, examevent.FieldSequence, examevent.FieldNumQuestions, examevent.FieldNumChoices:
			values[i] = new(sql.NullInt64)
		case examevent.FieldExamID, examevent.FieldTopic, examevent.FieldModel:
			values[i] = new(sql.NullString)
		case examevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExamEvent fields.
func (_m *ExamEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case examevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case examevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case examevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case examevent.FieldExamID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exam_id", values[i])
			} else if value.Valid {
				_m.ExamID = value.String
			}
		case examevent.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case examevent.FieldNumQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field num_questions", values[i])
			} else if value.Valid {
				_m.NumQuestions = int(value.Int64)
			}
		case examevent.FieldNumChoices:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field num_choices", values[i])
			} else if value.Valid {
				_m.NumChoices = int(value.Int64)
			}
		case examevent.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case examevent.FieldTruncated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field truncated", values[i])
			} else if value.Valid {
				_m.Truncated = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExamEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ExamEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExamEvent.
// Note that you need to call ExamEvent.Unwrap() before calling this method if this ExamEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExamEvent) Update() *ExamEventUpdateOne {
	return NewExamEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExamEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExamEvent) Unwrap() *ExamEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExamEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExamEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ExamEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("exam_id=")
	builder.WriteString(_m.ExamID)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("num_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.NumQuestions))
	builder.WriteString(", ")
	builder.WriteString("num_choices=")
	builder.WriteString(fmt.Sprintf("%v", _m.NumChoices))
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("truncated=")
	builder.WriteString(fmt.Sprintf("%v", _m.Truncated))
	builder.WriteByte(')')
	return builder.String()
}

// ExamEvents is a parsable slice of ExamEvent.
type ExamEvents []*ExamEvent
