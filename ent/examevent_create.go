// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/examly/ent/examevent"
)

// ExamEventCreate is the builder for creating a ExamEvent entity.
type ExamEventCreate struct {
	config
	mutation *ExamEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ExamEventCreate) SetSequence(v int64) *ExamEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ExamEventCreate) SetTimestamp(v time.Time) *ExamEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ExamEventCreate) SetNillableTimestamp(v *time.Time) *ExamEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetExamID sets the "exam_id" field.
func (_c *ExamEventCreate) SetExamID(v string) *ExamEventCreate {
	_c.mutation.SetExamID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *ExamEventCreate) SetTopic(v string) *ExamEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNumQuestions sets the "num_questions" field.
func (_c *ExamEventCreate) SetNumQuestions(v int) *ExamEventCreate {
	_c.mutation.SetNumQuestions(v)
	return _c
}

// SetNumChoices sets the "num_choices" field.
func (_c *ExamEventCreate) SetNumChoices(v int) *ExamEventCreate {
	_c.mutation.SetNumChoices(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *ExamEventCreate) SetModel(v string) *ExamEventCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *ExamEventCreate) SetNillableModel(v *string) *ExamEventCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetTruncated sets the "truncated" field.
func (_c *ExamEventCreate) SetTruncated(v bool) *ExamEventCreate {
	_c.mutation.SetTruncated(v)
	return _c
}

// SetNillableTruncated sets the "truncated" field if the given value is not nil.
func (_c *ExamEventCreate) SetNillableTruncated(v *bool) *ExamEventCreate {
	if v != nil {
		_c.SetTruncated(*v)
	}
	return _c
}

// Mutation returns the ExamEventMutation object of the builder.
func (_c *ExamEventCreate) Mutation() *ExamEventMutation {
	return _c.mutation
}

// Save creates the ExamEvent in the database.
func (_c *ExamEventCreate) Save(ctx context.Context) (*ExamEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExamEventCreate) SaveX(ctx context.Context) *ExamEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExamEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := examevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Model(); !ok {
		v := examevent.DefaultModel
		_c.mutation.SetModel(v)
	}
	if _, ok := _c.mutation.Truncated(); !ok {
		v := examevent.DefaultTruncated
		_c.mutation.SetTruncated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExamEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ExamEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ExamEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ExamID(); !ok {
		return &ValidationError{Name: "exam_id", err: errors.New(`ent: missing required field "ExamEvent.exam_id"`)}
	}
	if v, ok := _c.mutation.ExamID(); ok {
		if err := examevent.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.exam_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "ExamEvent.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := examevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NumQuestions(); !ok {
		return &ValidationError{Name: "num_questions", err: errors.New(`ent: missing required field "ExamEvent.num_questions"`)}
	}
	if _, ok := _c.mutation.NumChoices(); !ok {
		return &ValidationError{Name: "num_choices", err: errors.New(`ent: missing required field "ExamEvent.num_choices"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "ExamEvent.model"`)}
	}
	if _, ok := _c.mutation.Truncated(); !ok {
		return &ValidationError{Name: "truncated", err: errors.New(`ent: missing required field "ExamEvent.truncated"`)}
	}
	return nil
}

func (_c *ExamEventCreate) sqlSave(ctx context.Context) (*ExamEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExamEventCreate) createSpec() (*ExamEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ExamEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(examevent.Table, sqlgraph.NewFieldSpec(examevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(examevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(examevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ExamID(); ok {
		_spec.SetField(examevent.FieldExamID, field.TypeString, value)
		_node.ExamID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(examevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.NumQuestions(); ok {
		_spec.SetField(examevent.FieldNumQuestions, field.TypeInt, value)
		_node.NumQuestions = value
	}
	if value, ok := _c.mutation.NumChoices(); ok {
		_spec.SetField(examevent.FieldNumChoices, field.TypeInt, value)
		_node.NumChoices = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(examevent.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Truncated(); ok {
		_spec.SetField(examevent.FieldTruncated, field.TypeBool, value)
		_node.Truncated = value
	}
	return _node, _spec
}

// ExamEventCreateBulk is the builder for creating many ExamEvent entities in bulk.
type ExamEventCreateBulk struct {
	config
	err      error
	builders []*ExamEventCreate
}

// Save creates the ExamEvent entities in the database.
func (_c *ExamEventCreateBulk) Save(ctx context.Context) ([]*ExamEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExamEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExamEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExamEventCreateBulk) SaveX(ctx context.Context) []*ExamEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
