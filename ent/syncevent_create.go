// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/priyam/studytrail/ent/syncevent"
)

// SyncEventCreate is the builder for creating a SyncEvent entity.
type SyncEventCreate struct {
	config
	mutation *SyncEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (sec *SyncEventCreate) SetSequence(i int64) *SyncEventCreate {
	sec.mutation.SetSequence(i)
	return sec
}

// SetTimestamp sets the "timestamp" field.
func (sec *SyncEventCreate) SetTimestamp(t time.Time) *SyncEventCreate {
	sec.mutation.SetTimestamp(t)
	return sec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (sec *SyncEventCreate) SetNillableTimestamp(t *time.Time) *SyncEventCreate {
	if t != nil {
		sec.SetTimestamp(*t)
	}
	return sec
}

// SetItemSeq sets the "item_seq" field.
func (sec *SyncEventCreate) SetItemSeq(i int64) *SyncEventCreate {
	sec.mutation.SetItemSeq(i)
	return sec
}

// SetItemType sets the "item_type" field.
func (sec *SyncEventCreate) SetItemType(s string) *SyncEventCreate {
	sec.mutation.SetItemType(s)
	return sec
}

// SetAction sets the "action" field.
func (sec *SyncEventCreate) SetAction(s string) *SyncEventCreate {
	sec.mutation.SetAction(s)
	return sec
}

// SetAttempts sets the "attempts" field.
func (sec *SyncEventCreate) SetAttempts(i int) *SyncEventCreate {
	sec.mutation.SetAttempts(i)
	return sec
}

// SetLastError sets the "last_error" field.
func (sec *SyncEventCreate) SetLastError(s string) *SyncEventCreate {
	sec.mutation.SetLastError(s)
	return sec
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (sec *SyncEventCreate) SetNillableLastError(s *string) *SyncEventCreate {
	if s != nil {
		sec.SetLastError(*s)
	}
	return sec
}

// Mutation returns the SyncEventMutation object of the builder.
func (sec *SyncEventCreate) Mutation() *SyncEventMutation {
	return sec.mutation
}

// Save creates the SyncEvent in the database.
func (sec *SyncEventCreate) Save(ctx context.Context) (*SyncEvent, error) {
	sec.defaults()
	return withHooks(ctx, sec.sqlSave, sec.mutation, sec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sec *SyncEventCreate) SaveX(ctx context.Context) *SyncEvent {
	v, err := sec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sec *SyncEventCreate) Exec(ctx context.Context) error {
	_, err := sec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sec *SyncEventCreate) ExecX(ctx context.Context) {
	if err := sec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sec *SyncEventCreate) defaults() {
	if _, ok := sec.mutation.Timestamp(); !ok {
		v := syncevent.DefaultTimestamp()
		sec.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sec *SyncEventCreate) check() error {
	if _, ok := sec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SyncEvent.sequence"`)}
	}
	if _, ok := sec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SyncEvent.timestamp"`)}
	}
	if _, ok := sec.mutation.ItemSeq(); !ok {
		return &ValidationError{Name: "item_seq", err: errors.New(`ent: missing required field "SyncEvent.item_seq"`)}
	}
	if _, ok := sec.mutation.ItemType(); !ok {
		return &ValidationError{Name: "item_type", err: errors.New(`ent: missing required field "SyncEvent.item_type"`)}
	}
	if v, ok := sec.mutation.ItemType(); ok {
		if err := syncevent.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "SyncEvent.item_type": %w`, err)}
		}
	}
	if _, ok := sec.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "SyncEvent.action"`)}
	}
	if v, ok := sec.mutation.Action(); ok {
		if err := syncevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SyncEvent.action": %w`, err)}
		}
	}
	if _, ok := sec.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "SyncEvent.attempts"`)}
	}
	if v, ok := sec.mutation.Attempts(); ok {
		if err := syncevent.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "SyncEvent.attempts": %w`, err)}
		}
	}
	return nil
}

func (sec *SyncEventCreate) sqlSave(ctx context.Context) (*SyncEvent, error) {
	if err := sec.check(); err != nil {
		return nil, err
	}
	_node, _spec := sec.createSpec()
	if err := sqlgraph.CreateNode(ctx, sec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	sec.mutation.id = &_node.ID
	sec.mutation.done = true
	return _node, nil
}

func (sec *SyncEventCreate) createSpec() (*SyncEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SyncEvent{config: sec.config}
		_spec = sqlgraph.NewCreateSpec(syncevent.Table, sqlgraph.NewFieldSpec(syncevent.FieldID, field.TypeInt))
	)
	if value, ok := sec.mutation.Sequence(); ok {
		_spec.SetField(syncevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := sec.mutation.Timestamp(); ok {
		_spec.SetField(syncevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := sec.mutation.ItemSeq(); ok {
		_spec.SetField(syncevent.FieldItemSeq, field.TypeInt64, value)
		_node.ItemSeq = value
	}
	if value, ok := sec.mutation.ItemType(); ok {
		_spec.SetField(syncevent.FieldItemType, field.TypeString, value)
		_node.ItemType = value
	}
	if value, ok := sec.mutation.Action(); ok {
		_spec.SetField(syncevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := sec.mutation.Attempts(); ok {
		_spec.SetField(syncevent.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := sec.mutation.LastError(); ok {
		_spec.SetField(syncevent.FieldLastError, field.TypeString, value)
		_node.LastError = value
	}
	return _node, _spec
}

// SyncEventCreateBulk is the builder for creating many SyncEvent entities in bulk.
type SyncEventCreateBulk struct {
	config
	err      error
	builders []*SyncEventCreate
}

// Save creates the SyncEvent entities in the database.
func (secb *SyncEventCreateBulk) Save(ctx context.Context) ([]*SyncEvent, error) {
	if secb.err != nil {
		return nil, secb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(secb.builders))
	nodes := make([]*SyncEvent, len(secb.builders))
	mutators := make([]Mutator, len(secb.builders))
	for i := range secb.builders {
		func(i int, root context.Context) {
			builder := secb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SyncEventMutation)
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
					_, err = mutators[i+1].Mutate(root, secb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, secb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, secb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (secb *SyncEventCreateBulk) SaveX(ctx context.Context) []*SyncEvent {
	v, err := secb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (secb *SyncEventCreateBulk) Exec(ctx context.Context) error {
	_, err := secb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (secb *SyncEventCreateBulk) ExecX(ctx context.Context) {
	if err := secb.Exec(ctx); err != nil {
		panic(err)
	}
}
