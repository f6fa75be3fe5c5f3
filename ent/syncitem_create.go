// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/priyam/studytrail/ent/syncitem"
)

// SyncItemCreate is the builder for creating a SyncItem entity.
type SyncItemCreate struct {
	config
	mutation *SyncItemMutation
	hooks    []Hook
}

// SetSeq sets the "seq" field.
func (sic *SyncItemCreate) SetSeq(i int64) *SyncItemCreate {
	sic.mutation.SetSeq(i)
	return sic
}

// SetItemType sets the "item_type" field.
func (sic *SyncItemCreate) SetItemType(s string) *SyncItemCreate {
	sic.mutation.SetItemType(s)
	return sic
}

// SetPayload sets the "payload" field.
func (sic *SyncItemCreate) SetPayload(jm json.RawMessage) *SyncItemCreate {
	sic.mutation.SetPayload(jm)
	return sic
}

// SetRetryCount sets the "retry_count" field.
func (sic *SyncItemCreate) SetRetryCount(i int) *SyncItemCreate {
	sic.mutation.SetRetryCount(i)
	return sic
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (sic *SyncItemCreate) SetNillableRetryCount(i *int) *SyncItemCreate {
	if i != nil {
		sic.SetRetryCount(*i)
	}
	return sic
}

// SetCreatedAt sets the "created_at" field.
func (sic *SyncItemCreate) SetCreatedAt(t time.Time) *SyncItemCreate {
	sic.mutation.SetCreatedAt(t)
	return sic
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (sic *SyncItemCreate) SetNillableCreatedAt(t *time.Time) *SyncItemCreate {
	if t != nil {
		sic.SetCreatedAt(*t)
	}
	return sic
}

// Mutation returns the SyncItemMutation object of the builder.
func (sic *SyncItemCreate) Mutation() *SyncItemMutation {
	return sic.mutation
}

// Save creates the SyncItem in the database.
func (sic *SyncItemCreate) Save(ctx context.Context) (*SyncItem, error) {
	sic.defaults()
	return withHooks(ctx, sic.sqlSave, sic.mutation, sic.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sic *SyncItemCreate) SaveX(ctx context.Context) *SyncItem {
	v, err := sic.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sic *SyncItemCreate) Exec(ctx context.Context) error {
	_, err := sic.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sic *SyncItemCreate) ExecX(ctx context.Context) {
	if err := sic.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sic *SyncItemCreate) defaults() {
	if _, ok := sic.mutation.RetryCount(); !ok {
		v := syncitem.DefaultRetryCount
		sic.mutation.SetRetryCount(v)
	}
	if _, ok := sic.mutation.CreatedAt(); !ok {
		v := syncitem.DefaultCreatedAt()
		sic.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sic *SyncItemCreate) check() error {
	if _, ok := sic.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "SyncItem.seq"`)}
	}
	if _, ok := sic.mutation.ItemType(); !ok {
		return &ValidationError{Name: "item_type", err: errors.New(`ent: missing required field "SyncItem.item_type"`)}
	}
	if v, ok := sic.mutation.ItemType(); ok {
		if err := syncitem.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "SyncItem.item_type": %w`, err)}
		}
	}
	if _, ok := sic.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "SyncItem.payload"`)}
	}
	if _, ok := sic.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "SyncItem.retry_count"`)}
	}
	if v, ok := sic.mutation.RetryCount(); ok {
		if err := syncitem.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "SyncItem.retry_count": %w`, err)}
		}
	}
	if _, ok := sic.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SyncItem.created_at"`)}
	}
	return nil
}

func (sic *SyncItemCreate) sqlSave(ctx context.Context) (*SyncItem, error) {
	if err := sic.check(); err != nil {
		return nil, err
	}
	_node, _spec := sic.createSpec()
	if err := sqlgraph.CreateNode(ctx, sic.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	sic.mutation.id = &_node.ID
	sic.mutation.done = true
	return _node, nil
}

func (sic *SyncItemCreate) createSpec() (*SyncItem, *sqlgraph.CreateSpec) {
	var (
		_node = &SyncItem{config: sic.config}
		_spec = sqlgraph.NewCreateSpec(syncitem.Table, sqlgraph.NewFieldSpec(syncitem.FieldID, field.TypeInt))
	)
	if value, ok := sic.mutation.Seq(); ok {
		_spec.SetField(syncitem.FieldSeq, field.TypeInt64, value)
		_node.Seq = value
	}
	if value, ok := sic.mutation.ItemType(); ok {
		_spec.SetField(syncitem.FieldItemType, field.TypeString, value)
		_node.ItemType = value
	}
	if value, ok := sic.mutation.Payload(); ok {
		_spec.SetField(syncitem.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := sic.mutation.RetryCount(); ok {
		_spec.SetField(syncitem.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := sic.mutation.CreatedAt(); ok {
		_spec.SetField(syncitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// SyncItemCreateBulk is the builder for creating many SyncItem entities in bulk.
type SyncItemCreateBulk struct {
	config
	err      error
	builders []*SyncItemCreate
}

// Save creates the SyncItem entities in the database.
func (sicb *SyncItemCreateBulk) Save(ctx context.Context) ([]*SyncItem, error) {
	if sicb.err != nil {
		return nil, sicb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(sicb.builders))
	nodes := make([]*SyncItem, len(sicb.builders))
	mutators := make([]Mutator, len(sicb.builders))
	for i := range sicb.builders {
		func(i int, root context.Context) {
			builder := sicb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SyncItemMutation)
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
					_, err = mutators[i+1].Mutate(root, sicb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, sicb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, sicb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (sicb *SyncItemCreateBulk) SaveX(ctx context.Context) []*SyncItem {
	v, err := sicb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sicb *SyncItemCreateBulk) Exec(ctx context.Context) error {
	_, err := sicb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sicb *SyncItemCreateBulk) ExecX(ctx context.Context) {
	if err := sicb.Exec(ctx); err != nil {
		panic(err)
	}
}
