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
	"github.com/priyam/studytrail/ent/syncevent"
)

// SyncEventUpdate is the builder for updating SyncEvent entities.
type SyncEventUpdate struct {
	config
	hooks    []Hook
	mutation *SyncEventMutation
}

// Where appends a list predicates to the SyncEventUpdate builder.
func (seu *SyncEventUpdate) Where(ps ...predicate.SyncEvent) *SyncEventUpdate {
	seu.mutation.Where(ps...)
	return seu
}

// SetItemSeq sets the "item_seq" field.
func (seu *SyncEventUpdate) SetItemSeq(i int64) *SyncEventUpdate {
	seu.mutation.ResetItemSeq()
	seu.mutation.SetItemSeq(i)
	return seu
}

// SetNillableItemSeq sets the "item_seq" field if the given value is not nil.
func (seu *SyncEventUpdate) SetNillableItemSeq(i *int64) *SyncEventUpdate {
	if i != nil {
		seu.SetItemSeq(*i)
	}
	return seu
}

// AddItemSeq adds i to the "item_seq" field.
func (seu *SyncEventUpdate) AddItemSeq(i int64) *SyncEventUpdate {
	seu.mutation.AddItemSeq(i)
	return seu
}

// SetItemType sets the "item_type" field.
func (seu *SyncEventUpdate) SetItemType(s string) *SyncEventUpdate {
	seu.mutation.SetItemType(s)
	return seu
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (seu *SyncEventUpdate) SetNillableItemType(s *string) *SyncEventUpdate {
	if s != nil {
		seu.SetItemType(*s)
	}
	return seu
}

// SetAction sets the "action" field.
func (seu *SyncEventUpdate) SetAction(s string) *SyncEventUpdate {
	seu.mutation.SetAction(s)
	return seu
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (seu *SyncEventUpdate) SetNillableAction(s *string) *SyncEventUpdate {
	if s != nil {
		seu.SetAction(*s)
	}
	return seu
}

// SetAttempts sets the "attempts" field.
func (seu *SyncEventUpdate) SetAttempts(i int) *SyncEventUpdate {
	seu.mutation.ResetAttempts()
	seu.mutation.SetAttempts(i)
	return seu
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (seu *SyncEventUpdate) SetNillableAttempts(i *int) *SyncEventUpdate {
	if i != nil {
		seu.SetAttempts(*i)
	}
	return seu
}

// AddAttempts adds i to the "attempts" field.
func (seu *SyncEventUpdate) AddAttempts(i int) *SyncEventUpdate {
	seu.mutation.AddAttempts(i)
	return seu
}

// SetLastError sets the "last_error" field.
func (seu *SyncEventUpdate) SetLastError(s string) *SyncEventUpdate {
	seu.mutation.SetLastError(s)
	return seu
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (seu *SyncEventUpdate) SetNillableLastError(s *string) *SyncEventUpdate {
	if s != nil {
		seu.SetLastError(*s)
	}
	return seu
}

// ClearLastError clears the value of the "last_error" field.
func (seu *SyncEventUpdate) ClearLastError() *SyncEventUpdate {
	seu.mutation.ClearLastError()
	return seu
}

// Mutation returns the SyncEventMutation object of the builder.
func (seu *SyncEventUpdate) Mutation() *SyncEventMutation {
	return seu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (seu *SyncEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, seu.sqlSave, seu.mutation, seu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (seu *SyncEventUpdate) SaveX(ctx context.Context) int {
	affected, err := seu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (seu *SyncEventUpdate) Exec(ctx context.Context) error {
	_, err := seu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (seu *SyncEventUpdate) ExecX(ctx context.Context) {
	if err := seu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (seu *SyncEventUpdate) check() error {
	if v, ok := seu.mutation.ItemType(); ok {
		if err := syncevent.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "SyncEvent.item_type": %w`, err)}
		}
	}
	if v, ok := seu.mutation.Action(); ok {
		if err := syncevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SyncEvent.action": %w`, err)}
		}
	}
	if v, ok := seu.mutation.Attempts(); ok {
		if err := syncevent.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "SyncEvent.attempts": %w`, err)}
		}
	}
	return nil
}

func (seu *SyncEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := seu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(syncevent.Table, syncevent.Columns, sqlgraph.NewFieldSpec(syncevent.FieldID, field.TypeInt))
	if ps := seu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := seu.mutation.ItemSeq(); ok {
		_spec.SetField(syncevent.FieldItemSeq, field.TypeInt64, value)
	}
	if value, ok := seu.mutation.AddedItemSeq(); ok {
		_spec.AddField(syncevent.FieldItemSeq, field.TypeInt64, value)
	}
	if value, ok := seu.mutation.ItemType(); ok {
		_spec.SetField(syncevent.FieldItemType, field.TypeString, value)
	}
	if value, ok := seu.mutation.Action(); ok {
		_spec.SetField(syncevent.FieldAction, field.TypeString, value)
	}
	if value, ok := seu.mutation.Attempts(); ok {
		_spec.SetField(syncevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := seu.mutation.AddedAttempts(); ok {
		_spec.AddField(syncevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := seu.mutation.LastError(); ok {
		_spec.SetField(syncevent.FieldLastError, field.TypeString, value)
	}
	if seu.mutation.LastErrorCleared() {
		_spec.ClearField(syncevent.FieldLastError, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, seu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syncevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	seu.mutation.done = true
	return n, nil
}

// SyncEventUpdateOne is the builder for updating a single SyncEvent entity.
type SyncEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SyncEventMutation
}

// SetItemSeq sets the "item_seq" field.
func (seuo *SyncEventUpdateOne) SetItemSeq(i int64) *SyncEventUpdateOne {
	seuo.mutation.ResetItemSeq()
	seuo.mutation.SetItemSeq(i)
	return seuo
}

// SetNillableItemSeq sets the "item_seq" field if the given value is not nil.
func (seuo *SyncEventUpdateOne) SetNillableItemSeq(i *int64) *SyncEventUpdateOne {
	if i != nil {
		seuo.SetItemSeq(*i)
	}
	return seuo
}

// AddItemSeq adds i to the "item_seq" field.
func (seuo *SyncEventUpdateOne) AddItemSeq(i int64) *SyncEventUpdateOne {
	seuo.mutation.AddItemSeq(i)
	return seuo
}

// SetItemType sets the "item_type" field.
func (seuo *SyncEventUpdateOne) SetItemType(s string) *SyncEventUpdateOne {
	seuo.mutation.SetItemType(s)
	return seuo
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (seuo *SyncEventUpdateOne) SetNillableItemType(s *string) *SyncEventUpdateOne {
	if s != nil {
		seuo.SetItemType(*s)
	}
	return seuo
}

// SetAction sets the "action" field.
func (seuo *SyncEventUpdateOne) SetAction(s string) *SyncEventUpdateOne {
	seuo.mutation.SetAction(s)
	return seuo
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (seuo *SyncEventUpdateOne) SetNillableAction(s *string) *SyncEventUpdateOne {
	if s != nil {
		seuo.SetAction(*s)
	}
	return seuo
}

// SetAttempts sets the "attempts" field.
func (seuo *SyncEventUpdateOne) SetAttempts(i int) *SyncEventUpdateOne {
	seuo.mutation.ResetAttempts()
	seuo.mutation.SetAttempts(i)
	return seuo
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (seuo *SyncEventUpdateOne) SetNillableAttempts(i *int) *SyncEventUpdateOne {
	if i != nil {
		seuo.SetAttempts(*i)
	}
	return seuo
}

// AddAttempts adds i to the "attempts" field.
func (seuo *SyncEventUpdateOne) AddAttempts(i int) *SyncEventUpdateOne {
	seuo.mutation.AddAttempts(i)
	return seuo
}

// SetLastError sets the "last_error" field.
func (seuo *SyncEventUpdateOne) SetLastError(s string) *SyncEventUpdateOne {
	seuo.mutation.SetLastError(s)
	return seuo
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (seuo *SyncEventUpdateOne) SetNillableLastError(s *string) *SyncEventUpdateOne {
	if s != nil {
		seuo.SetLastError(*s)
	}
	return seuo
}

// ClearLastError clears the value of the "last_error" field.
func (seuo *SyncEventUpdateOne) ClearLastError() *SyncEventUpdateOne {
	seuo.mutation.ClearLastError()
	return seuo
}

// Mutation returns the SyncEventMutation object of the builder.
func (seuo *SyncEventUpdateOne) Mutation() *SyncEventMutation {
	return seuo.mutation
}

// Where appends a list predicates to the SyncEventUpdate builder.
func (seuo *SyncEventUpdateOne) Where(ps ...predicate.SyncEvent) *SyncEventUpdateOne {
	seuo.mutation.Where(ps...)
	return seuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (seuo *SyncEventUpdateOne) Select(field string, fields ...string) *SyncEventUpdateOne {
	seuo.fields = append([]string{field}, fields...)
	return seuo
}

// Save executes the query and returns the updated SyncEvent entity.
func (seuo *SyncEventUpdateOne) Save(ctx context.Context) (*SyncEvent, error) {
	return withHooks(ctx, seuo.sqlSave, seuo.mutation, seuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (seuo *SyncEventUpdateOne) SaveX(ctx context.Context) *SyncEvent {
	node, err := seuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (seuo *SyncEventUpdateOne) Exec(ctx context.Context) error {
	_, err := seuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (seuo *SyncEventUpdateOne) ExecX(ctx context.Context) {
	if err := seuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (seuo *SyncEventUpdateOne) check() error {
	if v, ok := seuo.mutation.ItemType(); ok {
		if err := syncevent.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "SyncEvent.item_type": %w`, err)}
		}
	}
	if v, ok := seuo.mutation.Action(); ok {
		if err := syncevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SyncEvent.action": %w`, err)}
		}
	}
	if v, ok := seuo.mutation.Attempts(); ok {
		if err := syncevent.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "SyncEvent.attempts": %w`, err)}
		}
	}
	return nil
}

func (seuo *SyncEventUpdateOne) sqlSave(ctx context.Context) (_node *SyncEvent, err error) {
	if err := seuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(syncevent.Table, syncevent.Columns, sqlgraph.NewFieldSpec(syncevent.FieldID, field.TypeInt))
	id, ok := seuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SyncEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := seuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, syncevent.FieldID)
		for _, f := range fields {
			if !syncevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != syncevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := seuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := seuo.mutation.ItemSeq(); ok {
		_spec.SetField(syncevent.FieldItemSeq, field.TypeInt64, value)
	}
	if value, ok := seuo.mutation.AddedItemSeq(); ok {
		_spec.AddField(syncevent.FieldItemSeq, field.TypeInt64, value)
	}
	if value, ok := seuo.mutation.ItemType(); ok {
		_spec.SetField(syncevent.FieldItemType, field.TypeString, value)
	}
	if value, ok := seuo.mutation.Action(); ok {
		_spec.SetField(syncevent.FieldAction, field.TypeString, value)
	}
	if value, ok := seuo.mutation.Attempts(); ok {
		_spec.SetField(syncevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.AddedAttempts(); ok {
		_spec.AddField(syncevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.LastError(); ok {
		_spec.SetField(syncevent.FieldLastError, field.TypeString, value)
	}
	if seuo.mutation.LastErrorCleared() {
		_spec.ClearField(syncevent.FieldLastError, field.TypeString)
	}
	_node = &SyncEvent{config: seuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, seuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syncevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	seuo.mutation.done = true
	return _node, nil
}
