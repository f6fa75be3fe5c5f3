// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/priyam/studytrail/ent/quizattemptevent"
)

// QuizAttemptEventCreate is the builder for creating a QuizAttemptEvent entity.
type QuizAttemptEventCreate struct {
	config
	mutation *QuizAttemptEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (qaec *QuizAttemptEventCreate) SetSequence(i int64) *QuizAttemptEventCreate {
	qaec.mutation.SetSequence(i)
	return qaec
}

// SetTimestamp sets the "timestamp" field.
func (qaec *QuizAttemptEventCreate) SetTimestamp(t time.Time) *QuizAttemptEventCreate {
	qaec.mutation.SetTimestamp(t)
	return qaec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (qaec *QuizAttemptEventCreate) SetNillableTimestamp(t *time.Time) *QuizAttemptEventCreate {
	if t != nil {
		qaec.SetTimestamp(*t)
	}
	return qaec
}

// SetAttemptID sets the "attempt_id" field.
func (qaec *QuizAttemptEventCreate) SetAttemptID(s string) *QuizAttemptEventCreate {
	qaec.mutation.SetAttemptID(s)
	return qaec
}

// SetCourseID sets the "course_id" field.
func (qaec *QuizAttemptEventCreate) SetCourseID(s string) *QuizAttemptEventCreate {
	qaec.mutation.SetCourseID(s)
	return qaec
}

// SetChapterIndex sets the "chapter_index" field.
func (qaec *QuizAttemptEventCreate) SetChapterIndex(i int) *QuizAttemptEventCreate {
	qaec.mutation.SetChapterIndex(i)
	return qaec
}

// SetTopicIndex sets the "topic_index" field.
func (qaec *QuizAttemptEventCreate) SetTopicIndex(i int) *QuizAttemptEventCreate {
	qaec.mutation.SetTopicIndex(i)
	return qaec
}

// SetCorrectCount sets the "correct_count" field.
func (qaec *QuizAttemptEventCreate) SetCorrectCount(i int) *QuizAttemptEventCreate {
	qaec.mutation.SetCorrectCount(i)
	return qaec
}

// SetAttemptedCount sets the "attempted_count" field.
func (qaec *QuizAttemptEventCreate) SetAttemptedCount(i int) *QuizAttemptEventCreate {
	qaec.mutation.SetAttemptedCount(i)
	return qaec
}

// SetPassed sets the "passed" field.
func (qaec *QuizAttemptEventCreate) SetPassed(b bool) *QuizAttemptEventCreate {
	qaec.mutation.SetPassed(b)
	return qaec
}

// Mutation returns the QuizAttemptEventMutation object of the builder.
func (qaec *QuizAttemptEventCreate) Mutation() *QuizAttemptEventMutation {
	return qaec.mutation
}

// Save creates the QuizAttemptEvent in the database.
func (qaec *QuizAttemptEventCreate) Save(ctx context.Context) (*QuizAttemptEvent, error) {
	qaec.defaults()
	return withHooks(ctx, qaec.sqlSave, qaec.mutation, qaec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (qaec *QuizAttemptEventCreate) SaveX(ctx context.Context) *QuizAttemptEvent {
	v, err := qaec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (qaec *QuizAttemptEventCreate) Exec(ctx context.Context) error {
	_, err := qaec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qaec *QuizAttemptEventCreate) ExecX(ctx context.Context) {
	if err := qaec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (qaec *QuizAttemptEventCreate) defaults() {
	if _, ok := qaec.mutation.Timestamp(); !ok {
		v := quizattemptevent.DefaultTimestamp()
		qaec.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (qaec *QuizAttemptEventCreate) check() error {
	if _, ok := qaec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "QuizAttemptEvent.sequence"`)}
	}
	if _, ok := qaec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QuizAttemptEvent.timestamp"`)}
	}
	if _, ok := qaec.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "QuizAttemptEvent.attempt_id"`)}
	}
	if v, ok := qaec.mutation.AttemptID(); ok {
		if err := quizattemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.attempt_id": %w`, err)}
		}
	}
	if _, ok := qaec.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "QuizAttemptEvent.course_id"`)}
	}
	if v, ok := qaec.mutation.CourseID(); ok {
		if err := quizattemptevent.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.course_id": %w`, err)}
		}
	}
	if _, ok := qaec.mutation.ChapterIndex(); !ok {
		return &ValidationError{Name: "chapter_index", err: errors.New(`ent: missing required field "QuizAttemptEvent.chapter_index"`)}
	}
	if v, ok := qaec.mutation.ChapterIndex(); ok {
		if err := quizattemptevent.ChapterIndexValidator(v); err != nil {
			return &ValidationError{Name: "chapter_index", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.chapter_index": %w`, err)}
		}
	}
	if _, ok := qaec.mutation.TopicIndex(); !ok {
		return &ValidationError{Name: "topic_index", err: errors.New(`ent: missing required field "QuizAttemptEvent.topic_index"`)}
	}
	if v, ok := qaec.mutation.TopicIndex(); ok {
		if err := quizattemptevent.TopicIndexValidator(v); err != nil {
			return &ValidationError{Name: "topic_index", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.topic_index": %w`, err)}
		}
	}
	if _, ok := qaec.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "QuizAttemptEvent.correct_count"`)}
	}
	if v, ok := qaec.mutation.CorrectCount(); ok {
		if err := quizattemptevent.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.correct_count": %w`, err)}
		}
	}
	if _, ok := qaec.mutation.AttemptedCount(); !ok {
		return &ValidationError{Name: "attempted_count", err: errors.New(`ent: missing required field "QuizAttemptEvent.attempted_count"`)}
	}
	if v, ok := qaec.mutation.AttemptedCount(); ok {
		if err := quizattemptevent.AttemptedCountValidator(v); err != nil {
			return &ValidationError{Name: "attempted_count", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.attempted_count": %w`, err)}
		}
	}
	if _, ok := qaec.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "QuizAttemptEvent.passed"`)}
	}
	return nil
}

func (qaec *QuizAttemptEventCreate) sqlSave(ctx context.Context) (*QuizAttemptEvent, error) {
	if err := qaec.check(); err != nil {
		return nil, err
	}
	_node, _spec := qaec.createSpec()
	if err := sqlgraph.CreateNode(ctx, qaec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	qaec.mutation.id = &_node.ID
	qaec.mutation.done = true
	return _node, nil
}

func (qaec *QuizAttemptEventCreate) createSpec() (*QuizAttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizAttemptEvent{config: qaec.config}
		_spec = sqlgraph.NewCreateSpec(quizattemptevent.Table, sqlgraph.NewFieldSpec(quizattemptevent.FieldID, field.TypeInt))
	)
	if value, ok := qaec.mutation.Sequence(); ok {
		_spec.SetField(quizattemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := qaec.mutation.Timestamp(); ok {
		_spec.SetField(quizattemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := qaec.mutation.AttemptID(); ok {
		_spec.SetField(quizattemptevent.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := qaec.mutation.CourseID(); ok {
		_spec.SetField(quizattemptevent.FieldCourseID, field.TypeString, value)
		_node.CourseID = value
	}
	if value, ok := qaec.mutation.ChapterIndex(); ok {
		_spec.SetField(quizattemptevent.FieldChapterIndex, field.TypeInt, value)
		_node.ChapterIndex = value
	}
	if value, ok := qaec.mutation.TopicIndex(); ok {
		_spec.SetField(quizattemptevent.FieldTopicIndex, field.TypeInt, value)
		_node.TopicIndex = value
	}
	if value, ok := qaec.mutation.CorrectCount(); ok {
		_spec.SetField(quizattemptevent.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := qaec.mutation.AttemptedCount(); ok {
		_spec.SetField(quizattemptevent.FieldAttemptedCount, field.TypeInt, value)
		_node.AttemptedCount = value
	}
	if value, ok := qaec.mutation.Passed(); ok {
		_spec.SetField(quizattemptevent.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	return _node, _spec
}

// QuizAttemptEventCreateBulk is the builder for creating many QuizAttemptEvent entities in bulk.
type QuizAttemptEventCreateBulk struct {
	config
	err      error
	builders []*QuizAttemptEventCreate
}

// Save creates the QuizAttemptEvent entities in the database.
func (qaecb *QuizAttemptEventCreateBulk) Save(ctx context.Context) ([]*QuizAttemptEvent, error) {
	if qaecb.err != nil {
		return nil, qaecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(qaecb.builders))
	nodes := make([]*QuizAttemptEvent, len(qaecb.builders))
	mutators := make([]Mutator, len(qaecb.builders))
	for i := range qaecb.builders {
		func(i int, root context.Context) {
			builder := qaecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizAttemptEventMutation)
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
					_, err = mutators[i+1].Mutate(root, qaecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, qaecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, qaecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (qaecb *QuizAttemptEventCreateBulk) SaveX(ctx context.Context) []*QuizAttemptEvent {
	v, err := qaecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (qaecb *QuizAttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := qaecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qaecb *QuizAttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := qaecb.Exec(ctx); err != nil {
		panic(err)
	}
}
