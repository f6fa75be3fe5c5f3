// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/priyam/studytrail/ent/progressrecord"
)

// ProgressRecordCreate is the builder for creating a ProgressRecord entity.
type ProgressRecordCreate struct {
	config
	mutation *ProgressRecordMutation
	hooks    []Hook
}

// SetCourseID sets the "course_id" field.
func (prc *ProgressRecordCreate) SetCourseID(s string) *ProgressRecordCreate {
	prc.mutation.SetCourseID(s)
	return prc
}

// SetChapterIndex sets the "chapter_index" field.
func (prc *ProgressRecordCreate) SetChapterIndex(i int) *ProgressRecordCreate {
	prc.mutation.SetChapterIndex(i)
	return prc
}

// SetTopicIndex sets the "topic_index" field.
func (prc *ProgressRecordCreate) SetTopicIndex(i int) *ProgressRecordCreate {
	prc.mutation.SetTopicIndex(i)
	return prc
}

// SetUpdatedAt sets the "updated_at" field.
func (prc *ProgressRecordCreate) SetUpdatedAt(t time.Time) *ProgressRecordCreate {
	prc.mutation.SetUpdatedAt(t)
	return prc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (prc *ProgressRecordCreate) SetNillableUpdatedAt(t *time.Time) *ProgressRecordCreate {
	if t != nil {
		prc.SetUpdatedAt(*t)
	}
	return prc
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (prc *ProgressRecordCreate) Mutation() *ProgressRecordMutation {
	return prc.mutation
}

// Save creates the ProgressRecord in the database.
func (prc *ProgressRecordCreate) Save(ctx context.Context) (*ProgressRecord, error) {
	prc.defaults()
	return withHooks(ctx, prc.sqlSave, prc.mutation, prc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (prc *ProgressRecordCreate) SaveX(ctx context.Context) *ProgressRecord {
	v, err := prc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (prc *ProgressRecordCreate) Exec(ctx context.Context) error {
	_, err := prc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (prc *ProgressRecordCreate) ExecX(ctx context.Context) {
	if err := prc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (prc *ProgressRecordCreate) defaults() {
	if _, ok := prc.mutation.UpdatedAt(); !ok {
		v := progressrecord.DefaultUpdatedAt()
		prc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (prc *ProgressRecordCreate) check() error {
	if _, ok := prc.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "ProgressRecord.course_id"`)}
	}
	if v, ok := prc.mutation.CourseID(); ok {
		if err := progressrecord.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.course_id": %w`, err)}
		}
	}
	if _, ok := prc.mutation.ChapterIndex(); !ok {
		return &ValidationError{Name: "chapter_index", err: errors.New(`ent: missing required field "ProgressRecord.chapter_index"`)}
	}
	if v, ok := prc.mutation.ChapterIndex(); ok {
		if err := progressrecord.ChapterIndexValidator(v); err != nil {
			return &ValidationError{Name: "chapter_index", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.chapter_index": %w`, err)}
		}
	}
	if _, ok := prc.mutation.TopicIndex(); !ok {
		return &ValidationError{Name: "topic_index", err: errors.New(`ent: missing required field "ProgressRecord.topic_index"`)}
	}
	if v, ok := prc.mutation.TopicIndex(); ok {
		if err := progressrecord.TopicIndexValidator(v); err != nil {
			return &ValidationError{Name: "topic_index", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.topic_index": %w`, err)}
		}
	}
	if _, ok := prc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProgressRecord.updated_at"`)}
	}
	return nil
}

func (prc *ProgressRecordCreate) sqlSave(ctx context.Context) (*ProgressRecord, error) {
	if err := prc.check(); err != nil {
		return nil, err
	}
	_node, _spec := prc.createSpec()
	if err := sqlgraph.CreateNode(ctx, prc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	prc.mutation.id = &_node.ID
	prc.mutation.done = true
	return _node, nil
}

func (prc *ProgressRecordCreate) createSpec() (*ProgressRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ProgressRecord{config: prc.config}
		_spec = sqlgraph.NewCreateSpec(progressrecord.Table, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	)
	if value, ok := prc.mutation.CourseID(); ok {
		_spec.SetField(progressrecord.FieldCourseID, field.TypeString, value)
		_node.CourseID = value
	}
	if value, ok := prc.mutation.ChapterIndex(); ok {
		_spec.SetField(progressrecord.FieldChapterIndex, field.TypeInt, value)
		_node.ChapterIndex = value
	}
	if value, ok := prc.mutation.TopicIndex(); ok {
		_spec.SetField(progressrecord.FieldTopicIndex, field.TypeInt, value)
		_node.TopicIndex = value
	}
	if value, ok := prc.mutation.UpdatedAt(); ok {
		_spec.SetField(progressrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProgressRecordCreateBulk is the builder for creating many ProgressRecord entities in bulk.
type ProgressRecordCreateBulk struct {
	config
	err      error
	builders []*ProgressRecordCreate
}

// Save creates the ProgressRecord entities in the database.
func (prcb *ProgressRecordCreateBulk) Save(ctx context.Context) ([]*ProgressRecord, error) {
	if prcb.err != nil {
		return nil, prcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(prcb.builders))
	nodes := make([]*ProgressRecord, len(prcb.builders))
	mutators := make([]Mutator, len(prcb.builders))
	for i := range prcb.builders {
		func(i int, root context.Context) {
			builder := prcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressRecordMutation)
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
					_, err = mutators[i+1].Mutate(root, prcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, prcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, prcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (prcb *ProgressRecordCreateBulk) SaveX(ctx context.Context) []*ProgressRecord {
	v, err := prcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (prcb *ProgressRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := prcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (prcb *ProgressRecordCreateBulk) ExecX(ctx context.Context) {
	if err := prcb.Exec(ctx); err != nil {
		panic(err)
	}
}
