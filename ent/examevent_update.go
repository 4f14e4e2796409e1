// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/examly/ent/examevent"
	"github.com/abhisek/examly/ent/predicate"
)

// ExamEventUpdate is the builder for updating ExamEvent entities.
type ExamEventUpdate struct {
	config
	hooks    []Hook
	mutation *ExamEventMutation
}

// Where appends a list predicates to the ExamEventUpdate builder.
func (_u *ExamEventUpdate) Where(ps ...predicate.ExamEvent) *ExamEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExamID sets the "exam_id" field.
func (_u *ExamEventUpdate) SetExamID(v string) *ExamEventUpdate {
	_u.mutation.SetExamID(v)
	return _u
}

// SetNillableExamID sets the "exam_id" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableExamID(v *string) *ExamEventUpdate {
	if v != nil {
		_u.SetExamID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ExamEventUpdate) SetTopic(v string) *ExamEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableTopic(v *string) *ExamEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetNumQuestions sets the "num_questions" field.
func (_u *ExamEventUpdate) SetNumQuestions(v int) *ExamEventUpdate {
	_u.mutation.ResetNumQuestions()
	_u.mutation.SetNumQuestions(v)
	return _u
}

// SetNillableNumQuestions sets the "num_questions" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableNumQuestions(v *int) *ExamEventUpdate {
	if v != nil {
		_u.SetNumQuestions(*v)
	}
	return _u
}

// AddNumQuestions adds value to the "num_questions" field.
func (_u *ExamEventUpdate) AddNumQuestions(v int) *ExamEventUpdate {
	_u.mutation.AddNumQuestions(v)
	return _u
}

// SetNumChoices sets the "num_choices" field.
func (_u *ExamEventUpdate) SetNumChoices(v int) *ExamEventUpdate {
	_u.mutation.ResetNumChoices()
	_u.mutation.SetNumChoices(v)
	return _u
}

// SetNillableNumChoices sets the "num_choices" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableNumChoices(v *int) *ExamEventUpdate {
	if v != nil {
		_u.SetNumChoices(*v)
	}
	return _u
}

// AddNumChoices adds value to the "num_choices" field.
func (_u *ExamEventUpdate) AddNumChoices(v int) *ExamEventUpdate {
	_u.mutation.AddNumChoices(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *ExamEventUpdate) SetModel(v string) *ExamEventUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableModel(v *string) *ExamEventUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetTruncated sets the "truncated" field.
func (_u *ExamEventUpdate) SetTruncated(v bool) *ExamEventUpdate {
	_u.mutation.SetTruncated(v)
	return _u
}

// SetNillableTruncated sets the "truncated" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableTruncated(v *bool) *ExamEventUpdate {
	if v != nil {
		_u.SetTruncated(*v)
	}
	return _u
}

// Mutation returns the ExamEventMutation object of the builder.
func (_u *ExamEventUpdate) Mutation() *ExamEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExamEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExamEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamEventUpdate) check() error {
	if v, ok := _u.mutation.ExamID(); ok {
		if err := examevent.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.exam_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := examevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examevent.Table, examevent.Columns, sqlgraph.NewFieldSpec(examevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExamID(); ok {
		_spec.SetField(examevent.FieldExamID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(examevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumQuestions(); ok {
		_spec.SetField(examevent.FieldNumQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumQuestions(); ok {
		_spec.AddField(examevent.FieldNumQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NumChoices(); ok {
		_spec.SetField(examevent.FieldNumChoices, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumChoices(); ok {
		_spec.AddField(examevent.FieldNumChoices, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(examevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Truncated(); ok {
		_spec.SetField(examevent.FieldTruncated, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExamEventUpdateOne is the builder for updating a single ExamEvent entity.
type ExamEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExamEventMutation
}

// SetExamID sets the "exam_id" field.
func (_u *ExamEventUpdateOne) SetExamID(v string) *ExamEventUpdateOne {
	_u.mutation.SetExamID(v)
	return _u
}

// SetNillableExamID sets the "exam_id" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableExamID(v *string) *ExamEventUpdateOne {
	if v != nil {
		_u.SetExamID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ExamEventUpdateOne) SetTopic(v string) *ExamEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableTopic(v *string) *ExamEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetNumQuestions sets the "num_questions" field.
func (_u *ExamEventUpdateOne) SetNumQuestions(v int) *ExamEventUpdateOne {
	_u.mutation.ResetNumQuestions()
	_u.mutation.SetNumQuestions(v)
	return _u
}

// SetNillableNumQuestions sets the "num_questions" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableNumQuestions(v *int) *ExamEventUpdateOne {
	if v != nil {
		_u.SetNumQuestions(*v)
	}
	return _u
}

// AddNumQuestions adds value to the "num_questions" field.
func (_u *ExamEventUpdateOne) AddNumQuestions(v int) *ExamEventUpdateOne {
	_u.mutation.AddNumQuestions(v)
	return _u
}

// SetNumChoices sets the "num_choices" field.
func (_u *ExamEventUpdateOne) SetNumChoices(v int) *ExamEventUpdateOne {
	_u.mutation.ResetNumChoices()
	_u.mutation.SetNumChoices(v)
	return _u
}

// SetNillableNumChoices sets the "num_choices" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableNumChoices(v *int) *ExamEventUpdateOne {
	if v != nil {
		_u.SetNumChoices(*v)
	}
	return _u
}

// AddNumChoices adds value to the "num_choices" field.
func (_u *ExamEventUpdateOne) AddNumChoices(v int) *ExamEventUpdateOne {
	_u.mutation.AddNumChoices(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *ExamEventUpdateOne) SetModel(v string) *ExamEventUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableModel(v *string) *ExamEventUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetTruncated sets the "truncated" field.
func (_u *ExamEventUpdateOne) SetTruncated(v bool) *ExamEventUpdateOne {
	_u.mutation.SetTruncated(v)
	return _u
}

// SetNillableTruncated sets the "truncated" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableTruncated(v *bool) *ExamEventUpdateOne {
	if v != nil {
		_u.SetTruncated(*v)
	}
	return _u
}

// Mutation returns the ExamEventMutation object of the builder.
func (_u *ExamEventUpdateOne) Mutation() *ExamEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExamEventUpdate builder.
func (_u *ExamEventUpdateOne) Where(ps ...predicate.ExamEvent) *ExamEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExamEventUpdateOne) Select(field string, fields ...string) *ExamEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExamEvent entity.
func (_u *ExamEventUpdateOne) Save(ctx context.Context) (*ExamEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamEventUpdateOne) SaveX(ctx context.Context) *ExamEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExamEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamEventUpdateOne) check() error {
	if v, ok := _u.mutation.ExamID(); ok {
		if err := examevent.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.exam_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := examevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamEventUpdateOne) sqlSave(ctx context.Context) (_node *ExamEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examevent.Table, examevent.Columns, sqlgraph.NewFieldSpec(examevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExamEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, examevent.FieldID)
		for _, f := range fields {
			if !examevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != examevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExamID(); ok {
		_spec.SetField(examevent.FieldExamID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(examevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumQuestions(); ok {
		_spec.SetField(examevent.FieldNumQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumQuestions(); ok {
		_spec.AddField(examevent.FieldNumQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NumChoices(); ok {
		_spec.SetField(examevent.FieldNumChoices, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumChoices(); ok {
		_spec.AddField(examevent.FieldNumChoices, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(examevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Truncated(); ok {
		_spec.SetField(examevent.FieldTruncated, field.TypeBool, value)
	}
	_node = &ExamEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
