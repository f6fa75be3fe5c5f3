// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/priyam/studytrail/ent/predicate"
	"github.com/priyam/studytrail/ent/quizattemptevent"
)

// QuizAttemptEventUpdate is the builder for updating QuizAttemptEvent entities.
type QuizAttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *QuizAttemptEventMutation
}

// Where appends a list predicates to the QuizAttemptEventUpdate builder.
func (qaeu *QuizAttemptEventUpdate) Where(ps ...predicate.QuizAttemptEvent) *QuizAttemptEventUpdate {
	qaeu.mutation.Where(ps...)
	return qaeu
}

// SetAttemptID sets the "attempt_id" field.
func (qaeu *QuizAttemptEventUpdate) SetAttemptID(s string) *QuizAttemptEventUpdate {
	qaeu.mutation.SetAttemptID(s)
	return qaeu
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (qaeu *QuizAttemptEventUpdate) SetNillableAttemptID(s *string) *QuizAttemptEventUpdate {
	if s != nil {
		qaeu.SetAttemptID(*s)
	}
	return qaeu
}

// SetCourseID sets the "course_id" field.
func (qaeu *QuizAttemptEventUpdate) SetCourseID(s string) *QuizAttemptEventUpdate {
	qaeu.mutation.SetCourseID(s)
	return qaeu
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (qaeu *QuizAttemptEventUpdate) SetNillableCourseID(s *string) *QuizAttemptEventUpdate {
	if s != nil {
		qaeu.SetCourseID(*s)
	}
	return qaeu
}

// SetChapterIndex sets the "chapter_index" field.
func (qaeu *QuizAttemptEventUpdate) SetChapterIndex(i int) *QuizAttemptEventUpdate {
	qaeu.mutation.ResetChapterIndex()
	qaeu.mutation.SetChapterIndex(i)
	return qaeu
}

// SetNillableChapterIndex sets the "chapter_index" field if the given value is not nil.
func (qaeu *QuizAttemptEventUpdate) SetNillableChapterIndex(i *int) *QuizAttemptEventUpdate {
	if i != nil {
		qaeu.SetChapterIndex(*i)
	}
	return qaeu
}

// AddChapterIndex adds i to the "chapter_index" field.
func (qaeu *QuizAttemptEventUpdate) AddChapterIndex(i int) *QuizAttemptEventUpdate {
	qaeu.mutation.AddChapterIndex(i)
	return qaeu
}

// SetTopicIndex sets the "topic_index" field.
func (qaeu *QuizAttemptEventUpdate) SetTopicIndex(i int) *QuizAttemptEventUpdate {
	qaeu.mutation.ResetTopicIndex()
	qaeu.mutation.SetTopicIndex(i)
	return qaeu
}

// SetNillableTopicIndex sets the "topic_index" field if the given value is not nil.
func (qaeu *QuizAttemptEventUpdate) SetNillableTopicIndex(i *int) *QuizAttemptEventUpdate {
	if i != nil {
		qaeu.SetTopicIndex(*i)
	}
	return qaeu
}

// AddTopicIndex adds i to the "topic_index" field.
func (qaeu *QuizAttemptEventUpdate) AddTopicIndex(i int) *QuizAttemptEventUpdate {
	qaeu.mutation.AddTopicIndex(i)
	return qaeu
}

// SetCorrectCount sets the "correct_count" field.
func (qaeu *QuizAttemptEventUpdate) SetCorrectCount(i int) *QuizAttemptEventUpdate {
	qaeu.mutation.ResetCorrectCount()
	qaeu.mutation.SetCorrectCount(i)
	return qaeu
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (qaeu *QuizAttemptEventUpdate) SetNillableCorrectCount(i *int) *QuizAttemptEventUpdate {
	if i != nil {
		qaeu.SetCorrectCount(*i)
	}
	return qaeu
}

// AddCorrectCount adds i to the "correct_count" field.
func (qaeu *QuizAttemptEventUpdate) AddCorrectCount(i int) *QuizAttemptEventUpdate {
	qaeu.mutation.AddCorrectCount(i)
	return qaeu
}

// SetAttemptedCount sets the "attempted_count" field.
func (qaeu *QuizAttemptEventUpdate) SetAttemptedCount(i int) *QuizAttemptEventUpdate {
	qaeu.mutation.ResetAttemptedCount()
	qaeu.mutation.SetAttemptedCount(i)
	return qaeu
}

// SetNillableAttemptedCount sets the "attempted_count" field if the given value is not nil.
func (qaeu *QuizAttemptEventUpdate) SetNillableAttemptedCount(i *int) *QuizAttemptEventUpdate {
	if i != nil {
		qaeu.SetAttemptedCount(*i)
	}
	return qaeu
}

// AddAttemptedCount adds i to the "attempted_count" field.
func (qaeu *QuizAttemptEventUpdate) AddAttemptedCount(i int) *QuizAttemptEventUpdate {
	qaeu.mutation.AddAttemptedCount(i)
	return qaeu
}

// SetPassed sets the "passed" field.
func (qaeu *QuizAttemptEventUpdate) SetPassed(b bool) *QuizAttemptEventUpdate {
	qaeu.mutation.SetPassed(b)
	return qaeu
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (qaeu *QuizAttemptEventUpdate) SetNillablePassed(b *bool) *QuizAttemptEventUpdate {
	if b != nil {
		qaeu.SetPassed(*b)
	}
	return qaeu
}

// Mutation returns the QuizAttemptEventMutation object of the builder.
func (qaeu *QuizAttemptEventUpdate) Mutation() *QuizAttemptEventMutation {
	return qaeu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (qaeu *QuizAttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, qaeu.sqlSave, qaeu.mutation, qaeu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (qaeu *QuizAttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := qaeu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (qaeu *QuizAttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := qaeu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qaeu *QuizAttemptEventUpdate) ExecX(ctx context.Context) {
	if err := qaeu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (qaeu *QuizAttemptEventUpdate) check() error {
	if v, ok := qaeu.mutation.AttemptID(); ok {
		if err := quizattemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := qaeu.mutation.CourseID(); ok {
		if err := quizattemptevent.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.course_id": %w`, err)}
		}
	}
	if v, ok := qaeu.mutation.ChapterIndex(); ok {
		if err := quizattemptevent.ChapterIndexValidator(v); err != nil {
			return &ValidationError{Name: "chapter_index", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.chapter_index": %w`, err)}
		}
	}
	if v, ok := qaeu.mutation.TopicIndex(); ok {
		if err := quizattemptevent.TopicIndexValidator(v); err != nil {
			return &ValidationError{Name: "topic_index", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.topic_index": %w`, err)}
		}
	}
	if v, ok := qaeu.mutation.CorrectCount(); ok {
		if err := quizattemptevent.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.correct_count": %w`, err)}
		}
	}
	if v, ok := qaeu.mutation.AttemptedCount(); ok {
		if err := quizattemptevent.AttemptedCountValidator(v); err != nil {
			return &ValidationError{Name: "attempted_count", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.attempted_count": %w`, err)}
		}
	}
	return nil
}

func (qaeu *QuizAttemptEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := qaeu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizattemptevent.Table, quizattemptevent.Columns, sqlgraph.NewFieldSpec(quizattemptevent.FieldID, field.TypeInt))
	if ps := qaeu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := qaeu.mutation.AttemptID(); ok {
		_spec.SetField(quizattemptevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := qaeu.mutation.CourseID(); ok {
		_spec.SetField(quizattemptevent.FieldCourseID, field.TypeString, value)
	}
	if value, ok := qaeu.mutation.ChapterIndex(); ok {
		_spec.SetField(quizattemptevent.FieldChapterIndex, field.TypeInt, value)
	}
	if value, ok := qaeu.mutation.AddedChapterIndex(); ok {
		_spec.AddField(quizattemptevent.FieldChapterIndex, field.TypeInt, value)
	}
	if value, ok := qaeu.mutation.TopicIndex(); ok {
		_spec.SetField(quizattemptevent.FieldTopicIndex, field.TypeInt, value)
	}
	if value, ok := qaeu.mutation.AddedTopicIndex(); ok {
		_spec.AddField(quizattemptevent.FieldTopicIndex, field.TypeInt, value)
	}
	if value, ok := qaeu.mutation.CorrectCount(); ok {
		_spec.SetField(quizattemptevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := qaeu.mutation.AddedCorrectCount(); ok {
		_spec.AddField(quizattemptevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := qaeu.mutation.AttemptedCount(); ok {
		_spec.SetField(quizattemptevent.FieldAttemptedCount, field.TypeInt, value)
	}
	if value, ok := qaeu.mutation.AddedAttemptedCount(); ok {
		_spec.AddField(quizattemptevent.FieldAttemptedCount, field.TypeInt, value)
	}
	if value, ok := qaeu.mutation.Passed(); ok {
		_spec.SetField(quizattemptevent.FieldPassed, field.TypeBool, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, qaeu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizattemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	qaeu.mutation.done = true
	return n, nil
}

// QuizAttemptEventUpdateOne is the builder for updating a single QuizAttemptEvent entity.
type QuizAttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizAttemptEventMutation
}

// SetAttemptID sets the "attempt_id" field.
func (qaeuo *QuizAttemptEventUpdateOne) SetAttemptID(s string) *QuizAttemptEventUpdateOne {
	qaeuo.mutation.SetAttemptID(s)
	return qaeuo
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (qaeuo *QuizAttemptEventUpdateOne) SetNillableAttemptID(s *string) *QuizAttemptEventUpdateOne {
	if s != nil {
		qaeuo.SetAttemptID(*s)
	}
	return qaeuo
}

// SetCourseID sets the "course_id" field.
func (qaeuo *QuizAttemptEventUpdateOne) SetCourseID(s string) *QuizAttemptEventUpdateOne {
	qaeuo.mutation.SetCourseID(s)
	return qaeuo
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (qaeuo *QuizAttemptEventUpdateOne) SetNillableCourseID(s *string) *QuizAttemptEventUpdateOne {
	if s != nil {
		qaeuo.SetCourseID(*s)
	}
	return qaeuo
}

// SetChapterIndex sets the "chapter_index" field.
func (qaeuo *QuizAttemptEventUpdateOne) SetChapterIndex(i int) *QuizAttemptEventUpdateOne {
	qaeuo.mutation.ResetChapterIndex()
	qaeuo.mutation.SetChapterIndex(i)
	return qaeuo
}

// SetNillableChapterIndex sets the "chapter_index" field if the given value is not nil.
func (qaeuo *QuizAttemptEventUpdateOne) SetNillableChapterIndex(i *int) *QuizAttemptEventUpdateOne {
	if i != nil {
		qaeuo.SetChapterIndex(*i)
	}
	return qaeuo
}

// AddChapterIndex adds i to the "chapter_index" field.
func (qaeuo *QuizAttemptEventUpdateOne) AddChapterIndex(i int) *QuizAttemptEventUpdateOne {
	qaeuo.mutation.AddChapterIndex(i)
	return qaeuo
}

// SetTopicIndex sets the "topic_index" field.
func (qaeuo *QuizAttemptEventUpdateOne) SetTopicIndex(i int) *QuizAttemptEventUpdateOne {
	qaeuo.mutation.ResetTopicIndex()
	qaeuo.mutation.SetTopicIndex(i)
	return qaeuo
}

// SetNillableTopicIndex sets the "topic_index" field if the given value is not nil.
func (qaeuo *QuizAttemptEventUpdateOne) SetNillableTopicIndex(i *int) *QuizAttemptEventUpdateOne {
	if i != nil {
		qaeuo.SetTopicIndex(*i)
	}
	return qaeuo
}

// AddTopicIndex adds i to the "topic_index" field.
func (qaeuo *QuizAttemptEventUpdateOne) AddTopicIndex(i int) *QuizAttemptEventUpdateOne {
	qaeuo.mutation.AddTopicIndex(i)
	return qaeuo
}

// SetCorrectCount sets the "correct_count" field.
func (qaeuo *QuizAttemptEventUpdateOne) SetCorrectCount(i int) *QuizAttemptEventUpdateOne {
	qaeuo.mutation.ResetCorrectCount()
	qaeuo.mutation.SetCorrectCount(i)
	return qaeuo
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (qaeuo *QuizAttemptEventUpdateOne) SetNillableCorrectCount(i *int) *QuizAttemptEventUpdateOne {
	if i != nil {
		qaeuo.SetCorrectCount(*i)
	}
	return qaeuo
}

// AddCorrectCount adds i to the "correct_count" field.
func (qaeuo *QuizAttemptEventUpdateOne) AddCorrectCount(i int) *QuizAttemptEventUpdateOne {
	qaeuo.mutation.AddCorrectCount(i)
	return qaeuo
}

// SetAttemptedCount sets the "attempted_count" field.
func (qaeuo *QuizAttemptEventUpdateOne) SetAttemptedCount(i int) *QuizAttemptEventUpdateOne {
	qaeuo.mutation.ResetAttemptedCount()
	qaeuo.mutation.SetAttemptedCount(i)
	return qaeuo
}

// SetNillableAttemptedCount sets the "attempted_count" field if the given value is not nil.
func (qaeuo *QuizAttemptEventUpdateOne) SetNillableAttemptedCount(i *int) *QuizAttemptEventUpdateOne {
	if i != nil {
		qaeuo.SetAttemptedCount(*i)
	}
	return qaeuo
}

// AddAttemptedCount adds i to the "attempted_count" field.
func (qaeuo *QuizAttemptEventUpdateOne) AddAttemptedCount(i int) *QuizAttemptEventUpdateOne {
	qaeuo.mutation.AddAttemptedCount(i)
	return qaeuo
}

// SetPassed sets the "passed" field.
func (qaeuo *QuizAttemptEventUpdateOne) SetPassed(b bool) *QuizAttemptEventUpdateOne {
	qaeuo.mutation.SetPassed(b)
	return qaeuo
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (qaeuo *QuizAttemptEventUpdateOne) SetNillablePassed(b *bool) *QuizAttemptEventUpdateOne {
	if b != nil {
		qaeuo.SetPassed(*b)
	}
	return qaeuo
}

// Mutation returns the QuizAttemptEventMutation object of the builder.
func (qaeuo *QuizAttemptEventUpdateOne) Mutation() *QuizAttemptEventMutation {
	return qaeuo.mutation
}

// Where appends a list predicates to the QuizAttemptEventUpdate builder.
func (qaeuo *QuizAttemptEventUpdateOne) Where(ps ...predicate.QuizAttemptEvent) *QuizAttemptEventUpdateOne {
	qaeuo.mutation.Where(ps...)
	return qaeuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (qaeuo *QuizAttemptEventUpdateOne) Select(field string, fields ...string) *QuizAttemptEventUpdateOne {
	qaeuo.fields = append([]string{field}, fields...)
	return qaeuo
}

// Save executes the query and returns the updated QuizAttemptEvent entity.
func (qaeuo *QuizAttemptEventUpdateOne) Save(ctx context.Context) (*QuizAttemptEvent, error) {
	return withHooks(ctx, qaeuo.sqlSave, qaeuo.mutation, qaeuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (qaeuo *QuizAttemptEventUpdateOne) SaveX(ctx context.Context) *QuizAttemptEvent {
	node, err := qaeuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (qaeuo *QuizAttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := qaeuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qaeuo *QuizAttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := qaeuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (qaeuo *QuizAttemptEventUpdateOne) check() error {
	if v, ok := qaeuo.mutation.AttemptID(); ok {
		if err := quizattemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := qaeuo.mutation.CourseID(); ok {
		if err := quizattemptevent.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.course_id": %w`, err)}
		}
	}
	if v, ok := qaeuo.mutation.ChapterIndex(); ok {
		if err := quizattemptevent.ChapterIndexValidator(v); err != nil {
			return &ValidationError{Name: "chapter_index", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.chapter_index": %w`, err)}
		}
	}
	if v, ok := qaeuo.mutation.TopicIndex(); ok {
		if err := quizattemptevent.TopicIndexValidator(v); err != nil {
			return &ValidationError{Name: "topic_index", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.topic_index": %w`, err)}
		}
	}
	if v, ok := qaeuo.mutation.CorrectCount(); ok {
		if err := quizattemptevent.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.correct_count": %w`, err)}
		}
	}
	if v, ok := qaeuo.mutation.AttemptedCount(); ok {
		if err := quizattemptevent.AttemptedCountValidator(v); err != nil {
			return &ValidationError{Name: "attempted_count", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.attempted_count": %w`, err)}
		}
	}
	return nil
}

func (qaeuo *QuizAttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *QuizAttemptEvent, err error) {
	if err := qaeuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizattemptevent.Table, quizattemptevent.Columns, sqlgraph.NewFieldSpec(quizattemptevent.FieldID, field.TypeInt))
	id, ok := qaeuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizAttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := qaeuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizattemptevent.FieldID)
		for _, f := range fields {
			if !quizattemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizattemptevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := qaeuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := qaeuo.mutation.AttemptID(); ok {
		_spec.SetField(quizattemptevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := qaeuo.mutation.CourseID(); ok {
		_spec.SetField(quizattemptevent.FieldCourseID, field.TypeString, value)
	}
	if value, ok := qaeuo.mutation.ChapterIndex(); ok {
		_spec.SetField(quizattemptevent.FieldChapterIndex, field.TypeInt, value)
	}
	if value, ok := qaeuo.mutation.AddedChapterIndex(); ok {
		_spec.AddField(quizattemptevent.FieldChapterIndex, field.TypeInt, value)
	}
	if value, ok := qaeuo.mutation.TopicIndex(); ok {
		_spec.SetField(quizattemptevent.FieldTopicIndex, field.TypeInt, value)
	}
	if value, ok := qaeuo.mutation.AddedTopicIndex(); ok {
		_spec.AddField(quizattemptevent.FieldTopicIndex, field.TypeInt, value)
	}
	if value, ok := qaeuo.mutation.CorrectCount(); ok {
		_spec.SetField(quizattemptevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := qaeuo.mutation.AddedCorrectCount(); ok {
		_spec.AddField(quizattemptevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := qaeuo.mutation.AttemptedCount(); ok {
		_spec.SetField(quizattemptevent.FieldAttemptedCount, field.TypeInt, value)
	}
	if value, ok := qaeuo.mutation.AddedAttemptedCount(); ok {
		_spec.AddField(quizattemptevent.FieldAttemptedCount, field.TypeInt, value)
	}
	if value, ok := qaeuo.mutation.Passed(); ok {
		_spec.SetField(quizattemptevent.FieldPassed, field.TypeBool, value)
	}
	_node = &QuizAttemptEvent{config: qaeuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, qaeuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizattemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	qaeuo.mutation.done = true
	return _node, nil
}
