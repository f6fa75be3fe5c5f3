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
	"github.com/priyam/studytrail/ent/coursesnapshot"
	"github.com/priyam/studytrail/ent/predicate"
)

// CourseSnapshotUpdate is the builder for updating CourseSnapshot entities.
type CourseSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *CourseSnapshotMutation
}

// Where appends a list predicates to the CourseSnapshotUpdate builder.
func (csu *CourseSnapshotUpdate) Where(ps ...predicate.CourseSnapshot) *CourseSnapshotUpdate {
	csu.mutation.Where(ps...)
	return csu
}

// SetTitle sets the "title" field.
func (csu *CourseSnapshotUpdate) SetTitle(s string) *CourseSnapshotUpdate {
	csu.mutation.SetTitle(s)
	return csu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (csu *CourseSnapshotUpdate) SetNillableTitle(s *string) *CourseSnapshotUpdate {
	if s != nil {
		csu.SetTitle(*s)
	}
	return csu
}

// ClearTitle clears the value of the "title" field.
func (csu *CourseSnapshotUpdate) ClearTitle() *CourseSnapshotUpdate {
	csu.mutation.ClearTitle()
	return csu
}

// SetData sets the "data" field.
func (csu *CourseSnapshotUpdate) SetData(m map[string]interface{}) *CourseSnapshotUpdate {
	csu.mutation.SetData(m)
	return csu
}

// SetFetchedAt sets the "fetched_at" field.
func (csu *CourseSnapshotUpdate) SetFetchedAt(t time.Time) *CourseSnapshotUpdate {
	csu.mutation.SetFetchedAt(t)
	return csu
}

// Mutation returns the CourseSnapshotMutation object of the builder.
func (csu *CourseSnapshotUpdate) Mutation() *CourseSnapshotMutation {
	return csu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (csu *CourseSnapshotUpdate) Save(ctx context.Context) (int, error) {
	csu.defaults()
	return withHooks(ctx, csu.sqlSave, csu.mutation, csu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (csu *CourseSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := csu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (csu *CourseSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := csu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (csu *CourseSnapshotUpdate) ExecX(ctx context.Context) {
	if err := csu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (csu *CourseSnapshotUpdate) defaults() {
	if _, ok := csu.mutation.FetchedAt(); !ok {
		v := coursesnapshot.UpdateDefaultFetchedAt()
		csu.mutation.SetFetchedAt(v)
	}
}

func (csu *CourseSnapshotUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(coursesnapshot.Table, coursesnapshot.Columns, sqlgraph.NewFieldSpec(coursesnapshot.FieldID, field.TypeInt))
	if ps := csu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := csu.mutation.Title(); ok {
		_spec.SetField(coursesnapshot.FieldTitle, field.TypeString, value)
	}
	if csu.mutation.TitleCleared() {
		_spec.ClearField(coursesnapshot.FieldTitle, field.TypeString)
	}
	if value, ok := csu.mutation.Data(); ok {
		_spec.SetField(coursesnapshot.FieldData, field.TypeJSON, value)
	}
	if value, ok := csu.mutation.FetchedAt(); ok {
		_spec.SetField(coursesnapshot.FieldFetchedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, csu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{coursesnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	csu.mutation.done = true
	return n, nil
}

// CourseSnapshotUpdateOne is the builder for updating a single CourseSnapshot entity.
type CourseSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CourseSnapshotMutation
}

// SetTitle sets the "title" field.
func (csuo *CourseSnapshotUpdateOne) SetTitle(s string) *CourseSnapshotUpdateOne {
	csuo.mutation.SetTitle(s)
	return csuo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (csuo *CourseSnapshotUpdateOne) SetNillableTitle(s *string) *CourseSnapshotUpdateOne {
	if s != nil {
		csuo.SetTitle(*s)
	}
	return csuo
}

// ClearTitle clears the value of the "title" field.
func (csuo *CourseSnapshotUpdateOne) ClearTitle() *CourseSnapshotUpdateOne {
	csuo.mutation.ClearTitle()
	return csuo
}

// SetData sets the "data" field.
func (csuo *CourseSnapshotUpdateOne) SetData(m map[string]interface{}) *CourseSnapshotUpdateOne {
	csuo.mutation.SetData(m)
	return csuo
}

// SetFetchedAt sets the "fetched_at" field.
func (csuo *CourseSnapshotUpdateOne) SetFetchedAt(t time.Time) *CourseSnapshotUpdateOne {
	csuo.mutation.SetFetchedAt(t)
	return csuo
}

// Mutation returns the CourseSnapshotMutation object of the builder.
func (csuo *CourseSnapshotUpdateOne) Mutation() *CourseSnapshotMutation {
	return csuo.mutation
}

// Where appends a list predicates to the CourseSnapshotUpdate builder.
func (csuo *CourseSnapshotUpdateOne) Where(ps ...predicate.CourseSnapshot) *CourseSnapshotUpdateOne {
	csuo.mutation.Where(ps...)
	return csuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (csuo *CourseSnapshotUpdateOne) Select(field string, fields ...string) *CourseSnapshotUpdateOne {
	csuo.fields = append([]string{field}, fields...)
	return csuo
}

// Save executes the query and returns the updated CourseSnapshot entity.
func (csuo *CourseSnapshotUpdateOne) Save(ctx context.Context) (*CourseSnapshot, error) {
	csuo.defaults()
	return withHooks(ctx, csuo.sqlSave, csuo.mutation, csuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (csuo *CourseSnapshotUpdateOne) SaveX(ctx context.Context) *CourseSnapshot {
	node, err := csuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (csuo *CourseSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := csuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (csuo *CourseSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := csuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (csuo *CourseSnapshotUpdateOne) defaults() {
	if _, ok := csuo.mutation.FetchedAt(); !ok {
		v := coursesnapshot.UpdateDefaultFetchedAt()
		csuo.mutation.SetFetchedAt(v)
	}
}

func (csuo *CourseSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *CourseSnapshot, err error) {
	_spec := sqlgraph.NewUpdateSpec(coursesnapshot.Table, coursesnapshot.Columns, sqlgraph.NewFieldSpec(coursesnapshot.FieldID, field.TypeInt))
	id, ok := csuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CourseSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := csuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, coursesnapshot.FieldID)
		for _, f := range fields {
			if !coursesnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != coursesnapshot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := csuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := csuo.mutation.Title(); ok {
		_spec.SetField(coursesnapshot.FieldTitle, field.TypeString, value)
	}
	if csuo.mutation.TitleCleared() {
		_spec.ClearField(coursesnapshot.FieldTitle, field.TypeString)
	}
	if value, ok := csuo.mutation.Data(); ok {
		_spec.SetField(coursesnapshot.FieldData, field.TypeJSON, value)
	}
	if value, ok := csuo.mutation.FetchedAt(); ok {
		_spec.SetField(coursesnapshot.FieldFetchedAt, field.TypeTime, value)
	}
	_node = &CourseSnapshot{config: csuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, csuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{coursesnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	csuo.mutation.done = true
	return _node, nil
}
