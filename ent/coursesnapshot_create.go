// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/priyam/studytrail/ent/coursesnapshot"
)

// CourseSnapshotCreate is the builder for creating a CourseSnapshot entity.
type CourseSnapshotCreate struct {
	config
	mutation *CourseSnapshotMutation
	hooks    []Hook
}

// SetCourseID sets the "course_id" field.
func (csc *CourseSnapshotCreate) SetCourseID(s string) *CourseSnapshotCreate {
	csc.mutation.SetCourseID(s)
	return csc
}

// SetTitle sets the "title" field.
func (csc *CourseSnapshotCreate) SetTitle(s string) *CourseSnapshotCreate {
	csc.mutation.SetTitle(s)
	return csc
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (csc *CourseSnapshotCreate) SetNillableTitle(s *string) *CourseSnapshotCreate {
	if s != nil {
		csc.SetTitle(*s)
	}
	return csc
}

// SetData sets the "data" field.
func (csc *CourseSnapshotCreate) SetData(m map[string]interface{}) *CourseSnapshotCreate {
	csc.mutation.SetData(m)
	return csc
}

// SetFetchedAt sets the "fetched_at" field.
func (csc *CourseSnapshotCreate) SetFetchedAt(t time.Time) *CourseSnapshotCreate {
	csc.mutation.SetFetchedAt(t)
	return csc
}

// SetNillableFetchedAt sets the "fetched_at" field if the given value is not nil.
func (csc *CourseSnapshotCreate) SetNillableFetchedAt(t *time.Time) *CourseSnapshotCreate {
	if t != nil {
		csc.SetFetchedAt(*t)
	}
	return csc
}

// Mutation returns the CourseSnapshotMutation object of the builder.
func (csc *CourseSnapshotCreate) Mutation() *CourseSnapshotMutation {
	return csc.mutation
}

// Save creates the CourseSnapshot in the database.
func (csc *CourseSnapshotCreate) Save(ctx context.Context) (*CourseSnapshot, error) {
	csc.defaults()
	return withHooks(ctx, csc.sqlSave, csc.mutation, csc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (csc *CourseSnapshotCreate) SaveX(ctx context.Context) *CourseSnapshot {
	v, err := csc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (csc *CourseSnapshotCreate) Exec(ctx context.Context) error {
	_, err := csc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (csc *CourseSnapshotCreate) ExecX(ctx context.Context) {
	if err := csc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (csc *CourseSnapshotCreate) defaults() {
	if _, ok := csc.mutation.FetchedAt(); !ok {
		v := coursesnapshot.DefaultFetchedAt()
		csc.mutation.SetFetchedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (csc *CourseSnapshotCreate) check() error {
	if _, ok := csc.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "CourseSnapshot.course_id"`)}
	}
	if v, ok := csc.mutation.CourseID(); ok {
		if err := coursesnapshot.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "CourseSnapshot.course_id": %w`, err)}
		}
	}
	if _, ok := csc.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "CourseSnapshot.data"`)}
	}
	if _, ok := csc.mutation.FetchedAt(); !ok {
		return &ValidationError{Name: "fetched_at", err: errors.New(`ent: missing required field "CourseSnapshot.fetched_at"`)}
	}
	return nil
}

func (csc *CourseSnapshotCreate) sqlSave(ctx context.Context) (*CourseSnapshot, error) {
	if err := csc.check(); err != nil {
		return nil, err
	}
	_node, _spec := csc.createSpec()
	if err := sqlgraph.CreateNode(ctx, csc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	csc.mutation.id = &_node.ID
	csc.mutation.done = true
	return _node, nil
}

func (csc *CourseSnapshotCreate) createSpec() (*CourseSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &CourseSnapshot{config: csc.config}
		_spec = sqlgraph.NewCreateSpec(coursesnapshot.Table, sqlgraph.NewFieldSpec(coursesnapshot.FieldID, field.TypeInt))
	)
	if value, ok := csc.mutation.CourseID(); ok {
		_spec.SetField(coursesnapshot.FieldCourseID, field.TypeString, value)
		_node.CourseID = value
	}
	if value, ok := csc.mutation.Title(); ok {
		_spec.SetField(coursesnapshot.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := csc.mutation.Data(); ok {
		_spec.SetField(coursesnapshot.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := csc.mutation.FetchedAt(); ok {
		_spec.SetField(coursesnapshot.FieldFetchedAt, field.TypeTime, value)
		_node.FetchedAt = value
	}
	return _node, _spec
}

// CourseSnapshotCreateBulk is the builder for creating many CourseSnapshot entities in bulk.
type CourseSnapshotCreateBulk struct {
	config
	err      error
	builders []*CourseSnapshotCreate
}

// Save creates the CourseSnapshot entities in the database.
func (cscb *CourseSnapshotCreateBulk) Save(ctx context.Context) ([]*CourseSnapshot, error) {
	if cscb.err != nil {
		return nil, cscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(cscb.builders))
	nodes := make([]*CourseSnapshot, len(cscb.builders))
	mutators := make([]Mutator, len(cscb.builders))
	for i := range cscb.builders {
		func(i int, root context.Context) {
			builder := cscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CourseSnapshotMutation)
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
					_, err = mutators[i+1].Mutate(root, cscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, cscb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, cscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (cscb *CourseSnapshotCreateBulk) SaveX(ctx context.Context) []*CourseSnapshot {
	v, err := cscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cscb *CourseSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := cscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cscb *CourseSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := cscb.Exec(ctx); err != nil {
		panic(err)
	}
}
