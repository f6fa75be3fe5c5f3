// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/priyam/studytrail/ent/predicate"
	"github.com/priyam/studytrail/ent/progressrecord"
)

// ProgressRecordUpdate is the builder for updating ProgressRecord entities.
type ProgressRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressRecordMutation
}

// Where appends a list predicates to the ProgressRecordUpdate builder.
func (pru *ProgressRecordUpdate) Where(ps ...predicate.ProgressRecord) *ProgressRecordUpdate {
	pru.mutation.Where(ps...)
	return pru
}

// SetChapterIndex sets the "chapter_index" field.
func (pru *ProgressRecordUpdate) SetChapterIndex(i int) *ProgressRecordUpdate {
	pru.mutation.ResetChapterIndex()
	pru.mutation.SetChapterIndex(i)
	return pru
}

// SetNillableChapterIndex sets the "chapter_index" field if the given value is not nil.
func (pru *ProgressRecordUpdate) SetNillableChapterIndex(i *int) *ProgressRecordUpdate {
	if i != nil {
		pru.SetChapterIndex(*i)
	}
	return pru
}

// AddChapterIndex adds i to the "chapter_index" field.
func (pru *ProgressRecordUpdate) AddChapterIndex(i int) *ProgressRecordUpdate {
	pru.mutation.AddChapterIndex(i)
	return pru
}

// SetTopicIndex sets the "topic_index" field.
func (pru *ProgressRecordUpdate) SetTopicIndex(i int) *ProgressRecordUpdate {
	pru.mutation.ResetTopicIndex()
	pru.mutation.SetTopicIndex(i)
	return pru
}

// SetNillableTopicIndex sets the "topic_index" field if the given value is not nil.
func (pru *ProgressRecordUpdate) SetNillableTopicIndex(i *int) *ProgressRecordUpdate {
	if i != nil {
		pru.SetTopicIndex(*i)
	}
	return pru
}

// AddTopicIndex adds i to the "topic_index" field.
func (pru *ProgressRecordUpdate) AddTopicIndex(i int) *ProgressRecordUpdate {
	pru.mutation.AddTopicIndex(i)
	return pru
}

// SetUpdatedAt sets the "updated_at" field.
func (pru *ProgressRecordUpdate) SetUpdatedAt(t time.Time) *ProgressRecordUpdate {
	pru.mutation.SetUpdatedAt(t)
	return pru
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (pru *ProgressRecordUpdate) Mutation() *ProgressRecordMutation {
	return pru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (pru *ProgressRecordUpdate) Save(ctx context.Context) (int, error) {
	pru.defaults()
	return withHooks(ctx, pru.sqlSave, pru.mutation, pru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pru *ProgressRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := pru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (pru *ProgressRecordUpdate) Exec(ctx context.Context) error {
	_, err := pru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pru *ProgressRecordUpdate) ExecX(ctx context.Context) {
	if err := pru.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pru *ProgressRecordUpdate) defaults() {
	if _, ok := pru.mutation.UpdatedAt(); !ok {
		v := progressrecord.UpdateDefaultUpdatedAt()
		pru.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pru *ProgressRecordUpdate) check() error {
	if v, ok := pru.mutation.ChapterIndex(); ok {
		if err := progressrecord.ChapterIndexValidator(v); err != nil {
			return &ValidationError{Name: "chapter_index", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.chapter_index": %w`, err)}
		}
	}
	if v, ok := pru.mutation.TopicIndex(); ok {
		if err := progressrecord.TopicIndexValidator(v); err != nil {
			return &ValidationError{Name: "topic_index", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.topic_index": %w`, err)}
		}
	}
	return nil
}

func (pru *ProgressRecordUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := pru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressrecord.Table, progressrecord.Columns, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	if ps := pru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := pru.mutation.ChapterIndex(); ok {
		_spec.SetField(progressrecord.FieldChapterIndex, field.TypeInt, value)
	}
	if value, ok := pru.mutation.AddedChapterIndex(); ok {
		_spec.AddField(progressrecord.FieldChapterIndex, field.TypeInt, value)
	}
	if value, ok := pru.mutation.TopicIndex(); ok {
		_spec.SetField(progressrecord.FieldTopicIndex, field.TypeInt, value)
	}
	if value, ok := pru.mutation.AddedTopicIndex(); ok {
		_spec.AddField(progressrecord.FieldTopicIndex, field.TypeInt, value)
	}
	if value, ok := pru.mutation.UpdatedAt(); ok {
		_spec.SetField(progressrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, pru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	pru.mutation.done = true
	return n, nil
}

// ProgressRecordUpdateOne is the builder for updating a single ProgressRecord entity.
type ProgressRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressRecordMutation
}

// SetChapterIndex sets the "chapter_index" field.
func (pruo *ProgressRecordUpdateOne) SetChapterIndex(i int) *ProgressRecordUpdateOne {
	pruo.mutation.ResetChapterIndex()
	pruo.mutation.SetChapterIndex(i)
	return pruo
}

// SetNillableChapterIndex sets the "chapter_index" field if the given value is not nil.
func (pruo *ProgressRecordUpdateOne) SetNillableChapterIndex(i *int) *ProgressRecordUpdateOne {
	if i != nil {
		pruo.SetChapterIndex(*i)
	}
	return pruo
}

// AddChapterIndex adds i to the "chapter_index" field.
func (pruo *ProgressRecordUpdateOne) AddChapterIndex(i int) *ProgressRecordUpdateOne {
	pruo.mutation.AddChapterIndex(i)
	return pruo
}

// SetTopicIndex sets the "topic_index" field.
func (pruo *ProgressRecordUpdateOne) SetTopicIndex(i int) *ProgressRecordUpdateOne {
	pruo.mutation.ResetTopicIndex()
	pruo.mutation.SetTopicIndex(i)
	return pruo
}

// SetNillableTopicIndex sets the "topic_index" field if the given value is not nil.
func (pruo *ProgressRecordUpdateOne) SetNillableTopicIndex(i *int) *ProgressRecordUpdateOne {
	if i != nil {
		pruo.SetTopicIndex(*i)
	}
	return pruo
}

// AddTopicIndex adds i to the "topic_index" field.
func (pruo *ProgressRecordUpdateOne) AddTopicIndex(i int) *ProgressRecordUpdateOne {
	pruo.mutation.AddTopicIndex(i)
	return pruo
}

// SetUpdatedAt sets the "updated_at" field.
func (pruo *ProgressRecordUpdateOne) SetUpdatedAt(t time.Time) *ProgressRecordUpdateOne {
	pruo.mutation.SetUpdatedAt(t)
	return pruo
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (pruo *ProgressRecordUpdateOne) Mutation() *ProgressRecordMutation {
	return pruo.mutation
}

// Where appends a list predicates to the ProgressRecordUpdate builder.
func (pruo *ProgressRecordUpdateOne) Where(ps ...predicate.ProgressRecord) *ProgressRecordUpdateOne {
	pruo.mutation.Where(ps...)
	return pruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (pruo *ProgressRecordUpdateOne) Select(field string, fields ...string) *ProgressRecordUpdateOne {
	pruo.fields = append([]string{field}, fields...)
	return pruo
}

// Save executes the query and returns the updated ProgressRecord entity.
func (pruo *ProgressRecordUpdateOne) Save(ctx context.Context) (*ProgressRecord, error) {
	pruo.defaults()
	return withHooks(ctx, pruo.sqlSave, pruo.mutation, pruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pruo *ProgressRecordUpdateOne) SaveX(ctx context.Context) *ProgressRecord {
	node, err := pruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (pruo *ProgressRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := pruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pruo *ProgressRecordUpdateOne) ExecX(ctx context.Context) {
	if err := pruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pruo *ProgressRecordUpdateOne) defaults() {
	if _, ok := pruo.mutation.UpdatedAt(); !ok {
		v := progressrecord.UpdateDefaultUpdatedAt()
		pruo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pruo *ProgressRecordUpdateOne) check() error {
	if v, ok := pruo.mutation.ChapterIndex(); ok {
		if err := progressrecord.ChapterIndexValidator(v); err != nil {
			return &ValidationError{Name: "chapter_index", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.chapter_index": %w`, err)}
		}
	}
	if v, ok := pruo.mutation.TopicIndex(); ok {
		if err := progressrecord.TopicIndexValidator(v); err != nil {
			return &ValidationError{Name: "topic_index", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.topic_index": %w`, err)}
		}
	}
	return nil
}

func (pruo *ProgressRecordUpdateOne) sqlSave(ctx context.Context) (_node *ProgressRecord, err error) {
	if err := pruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressrecord.Table, progressrecord.Columns, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	id, ok := pruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProgressRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := pruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progressrecord.FieldID)
		for _, f := range fields {
			if !progressrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progressrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := pruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := pruo.mutation.ChapterIndex(); ok {
		_spec.SetField(progressrecord.FieldChapterIndex, field.TypeInt, value)
	}
	if value, ok := pruo.mutation.AddedChapterIndex(); ok {
		_spec.AddField(progressrecord.FieldChapterIndex, field.TypeInt, value)
	}
	if value, ok := pruo.mutation.TopicIndex(); ok {
		_spec.SetField(progressrecord.FieldTopicIndex, field.TypeInt, value)
	}
	if value, ok := pruo.mutation.AddedTopicIndex(); ok {
		_spec.AddField(progressrecord.FieldTopicIndex, field.TypeInt, value)
	}
	if value, ok := pruo.mutation.UpdatedAt(); ok {
		_spec.SetField(progressrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ProgressRecord{config: pruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, pruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	pruo.mutation.done = true
	return _node, nil
}
