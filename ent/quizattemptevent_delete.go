// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/priyam/studytrail/ent/predicate"
	"github.com/priyam/studytrail/ent/quizattemptevent"
)

// QuizAttemptEventDelete is the builder for deleting a QuizAttemptEvent entity.
type QuizAttemptEventDelete struct {
	config
	hooks    []Hook
	mutation *QuizAttemptEventMutation
}

// Where appends a list predicates to the QuizAttemptEventDelete builder.
func (qaed *QuizAttemptEventDelete) Where(ps ...predicate.QuizAttemptEvent) *QuizAttemptEventDelete {
	qaed.mutation.Where(ps...)
	return qaed
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (qaed *QuizAttemptEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, qaed.sqlExec, qaed.mutation, qaed.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (qaed *QuizAttemptEventDelete) ExecX(ctx context.Context) int {
	n, err := qaed.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (qaed *QuizAttemptEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(quizattemptevent.Table, sqlgraph.NewFieldSpec(quizattemptevent.FieldID, field.TypeInt))
	if ps := qaed.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, qaed.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	qaed.mutation.done = true
	return affected, err
}

// QuizAttemptEventDeleteOne is the builder for deleting a single QuizAttemptEvent entity.
type QuizAttemptEventDeleteOne struct {
	qaed *QuizAttemptEventDelete
}

// Where appends a list predicates to the QuizAttemptEventDelete builder.
func (qaedo *QuizAttemptEventDeleteOne) Where(ps ...predicate.QuizAttemptEvent) *QuizAttemptEventDeleteOne {
	qaedo.qaed.mutation.Where(ps...)
	return qaedo
}

// Exec executes the deletion query.
func (qaedo *QuizAttemptEventDeleteOne) Exec(ctx context.Context) error {
	n, err := qaedo.qaed.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{quizattemptevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (qaedo *QuizAttemptEventDeleteOne) ExecX(ctx context.Context) {
	if err := qaedo.Exec(ctx); err != nil {
		panic(err)
	}
}
