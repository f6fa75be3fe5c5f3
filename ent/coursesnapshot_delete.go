// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/priyam/studytrail/ent/coursesnapshot"
	"github.com/priyam/studytrail/ent/predicate"
)

// CourseSnapshotDelete is the builder for deleting a CourseSnapshot entity.
type CourseSnapshotDelete struct {
	config
	hooks    []Hook
	mutation *CourseSnapshotMutation
}

// Where appends a list predicates to the CourseSnapshotDelete builder.
func (csd *CourseSnapshotDelete) Where(ps ...predicate.CourseSnapshot) *CourseSnapshotDelete {
	csd.mutation.Where(ps...)
	return csd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (csd *CourseSnapshotDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, csd.sqlExec, csd.mutation, csd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (csd *CourseSnapshotDelete) ExecX(ctx context.Context) int {
	n, err := csd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (csd *CourseSnapshotDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(coursesnapshot.Table, sqlgraph.NewFieldSpec(coursesnapshot.FieldID, field.TypeInt))
	if ps := csd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, csd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	csd.mutation.done = true
	return affected, err
}

// CourseSnapshotDeleteOne is the builder for deleting a single CourseSnapshot entity.
type CourseSnapshotDeleteOne struct {
	csd *CourseSnapshotDelete
}

// Where appends a list predicates to the CourseSnapshotDelete builder.
func (csdo *CourseSnapshotDeleteOne) Where(ps ...predicate.CourseSnapshot) *CourseSnapshotDeleteOne {
	csdo.csd.mutation.Where(ps...)
	return csdo
}

// Exec executes the deletion query.
func (csdo *CourseSnapshotDeleteOne) Exec(ctx context.Context) error {
	n, err := csdo.csd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{coursesnapshot.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (csdo *CourseSnapshotDeleteOne) ExecX(ctx context.Context) {
	if err := csdo.Exec(ctx); err != nil {
		panic(err)
	}
}
