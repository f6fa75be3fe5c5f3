// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/priyam/studytrail/ent/predicate"
	"github.com/priyam/studytrail/ent/syncitem"
)

// SyncItemUpdate is the builder for updating SyncItem entities.
type SyncItemUpdate struct {
	config
	hooks    []Hook
	mutation *SyncItemMutation
}

// Where appends a list predicates to the SyncItemUpdate builder.
func (siu *SyncItemUpdate) Where(ps ...predicate.SyncItem) *SyncItemUpdate {
	siu.mutation.Where(ps...)
	return siu
}

// SetItemType sets the "item_type" field.
func (siu *SyncItemUpdate) SetItemType(s string) *SyncItemUpdate {
	siu.mutation.SetItemType(s)
	return siu
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (siu *SyncItemUpdate) SetNillableItemType(s *string) *SyncItemUpdate {
	if s != nil {
		siu.SetItemType(*s)
	}
	return siu
}

// SetPayload sets the "payload" field.
func (siu *SyncItemUpdate) SetPayload(jm json.RawMessage) *SyncItemUpdate {
	siu.mutation.SetPayload(jm)
	return siu
}

// AppendPayload appends jm to the "payload" field.
func (siu *SyncItemUpdate) AppendPayload(jm json.RawMessage) *SyncItemUpdate {
	siu.mutation.AppendPayload(jm)
	return siu
}

// SetRetryCount sets the "retry_count" field.
func (siu *SyncItemUpdate) SetRetryCount(i int) *SyncItemUpdate {
	siu.mutation.ResetRetryCount()
	siu.mutation.SetRetryCount(i)
	return siu
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (siu *SyncItemUpdate) SetNillableRetryCount(i *int) *SyncItemUpdate {
	if i != nil {
		siu.SetRetryCount(*i)
	}
	return siu
}

// AddRetryCount adds i to the "retry_count" field.
func (siu *SyncItemUpdate) AddRetryCount(i int) *SyncItemUpdate {
	siu.mutation.AddRetryCount(i)
	return siu
}

// Mutation returns the SyncItemMutation object of the builder.
func (siu *SyncItemUpdate) Mutation() *SyncItemMutation {
	return siu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (siu *SyncItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, siu.sqlSave, siu.mutation, siu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (siu *SyncItemUpdate) SaveX(ctx context.Context) int {
	affected, err := siu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (siu *SyncItemUpdate) Exec(ctx context.Context) error {
	_, err := siu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (siu *SyncItemUpdate) ExecX(ctx context.Context) {
	if err := siu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (siu *SyncItemUpdate) check() error {
	if v, ok := siu.mutation.ItemType(); ok {
		if err := syncitem.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "SyncItem.item_type": %w`, err)}
		}
	}
	if v, ok := siu.mutation.RetryCount(); ok {
		if err := syncitem.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "SyncItem.retry_count": %w`, err)}
		}
	}
	return nil
}

func (siu *SyncItemUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := siu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(syncitem.Table, syncitem.Columns, sqlgraph.NewFieldSpec(syncitem.FieldID, field.TypeInt))
	if ps := siu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := siu.mutation.ItemType(); ok {
		_spec.SetField(syncitem.FieldItemType, field.TypeString, value)
	}
	if value, ok := siu.mutation.Payload(); ok {
		_spec.SetField(syncitem.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := siu.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, syncitem.FieldPayload, value)
		})
	}
	if value, ok := siu.mutation.RetryCount(); ok {
		_spec.SetField(syncitem.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := siu.mutation.AddedRetryCount(); ok {
		_spec.AddField(syncitem.FieldRetryCount, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, siu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syncitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	siu.mutation.done = true
	return n, nil
}

// SyncItemUpdateOne is the builder for updating a single SyncItem entity.
type SyncItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SyncItemMutation
}

// SetItemType sets the "item_type" field.
func (siuo *SyncItemUpdateOne) SetItemType(s string) *SyncItemUpdateOne {
	siuo.mutation.SetItemType(s)
	return siuo
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (siuo *SyncItemUpdateOne) SetNillableItemType(s *string) *SyncItemUpdateOne {
	if s != nil {
		siuo.SetItemType(*s)
	}
	return siuo
}

// SetPayload sets the "payload" field.
func (siuo *SyncItemUpdateOne) SetPayload(jm json.RawMessage) *SyncItemUpdateOne {
	siuo.mutation.SetPayload(jm)
	return siuo
}

// AppendPayload appends jm to the "payload" field.
func (siuo *SyncItemUpdateOne) AppendPayload(jm json.RawMessage) *SyncItemUpdateOne {
	siuo.mutation.AppendPayload(jm)
	return siuo
}

// SetRetryCount sets the "retry_count" field.
func (siuo *SyncItemUpdateOne) SetRetryCount(i int) *SyncItemUpdateOne {
	siuo.mutation.ResetRetryCount()
	siuo.mutation.SetRetryCount(i)
	return siuo
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (siuo *SyncItemUpdateOne) SetNillableRetryCount(i *int) *SyncItemUpdateOne {
	if i != nil {
		siuo.SetRetryCount(*i)
	}
	return siuo
}

// AddRetryCount adds i to the "retry_count" field.
func (siuo *SyncItemUpdateOne) AddRetryCount(i int) *SyncItemUpdateOne {
	siuo.mutation.AddRetryCount(i)
	return siuo
}

// Mutation returns the SyncItemMutation object of the builder.
func (siuo *SyncItemUpdateOne) Mutation() *SyncItemMutation {
	return siuo.mutation
}

// Where appends a list predicates to the SyncItemUpdate builder.
func (siuo *SyncItemUpdateOne) Where(ps ...predicate.SyncItem) *SyncItemUpdateOne {
	siuo.mutation.Where(ps...)
	return siuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (siuo *SyncItemUpdateOne) Select(field string, fields ...string) *SyncItemUpdateOne {
	siuo.fields = append([]string{field}, fields...)
	return siuo
}

// Save executes the query and returns the updated SyncItem entity.
func (siuo *SyncItemUpdateOne) Save(ctx context.Context) (*SyncItem, error) {
	return withHooks(ctx, siuo.sqlSave, siuo.mutation, siuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (siuo *SyncItemUpdateOne) SaveX(ctx context.Context) *SyncItem {
	node, err := siuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (siuo *SyncItemUpdateOne) Exec(ctx context.Context) error {
	_, err := siuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (siuo *SyncItemUpdateOne) ExecX(ctx context.Context) {
	if err := siuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (siuo *SyncItemUpdateOne) check() error {
	if v, ok := siuo.mutation.ItemType(); ok {
		if err := syncitem.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "SyncItem.item_type": %w`, err)}
		}
	}
	if v, ok := siuo.mutation.RetryCount(); ok {
		if err := syncitem.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "SyncItem.retry_count": %w`, err)}
		}
	}
	return nil
}

func (siuo *SyncItemUpdateOne) sqlSave(ctx context.Context) (_node *SyncItem, err error) {
	if err := siuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(syncitem.Table, syncitem.Columns, sqlgraph.NewFieldSpec(syncitem.FieldID, field.TypeInt))
	id, ok := siuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SyncItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := siuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, syncitem.FieldID)
		for _, f := range fields {
			if !syncitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != syncitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := siuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := siuo.mutation.ItemType(); ok {
		_spec.SetField(syncitem.FieldItemType, field.TypeString, value)
	}
	if value, ok := siuo.mutation.Payload(); ok {
		_spec.SetField(syncitem.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := siuo.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, syncitem.FieldPayload, value)
		})
	}
	if value, ok := siuo.mutation.RetryCount(); ok {
		_spec.SetField(syncitem.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := siuo.mutation.AddedRetryCount(); ok {
		_spec.AddField(syncitem.FieldRetryCount, field.TypeInt, value)
	}
	_node = &SyncItem{config: siuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, siuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syncitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	siuo.mutation.done = true
	return _node, nil
}
