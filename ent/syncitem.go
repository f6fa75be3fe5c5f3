// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/priyam/studytrail/ent/syncitem"
)

// SyncItem is the model entity for the SyncItem schema.
type SyncItem struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonic enqueue order, from the shared sequence counter
	Seq int64 `json:"seq,omitempty"`
	// progress, quiz or certificate
	ItemType string `json:"item_type,omitempty"`
	// Remote mutation body as JSON
	Payload json.RawMessage `json:"payload,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SyncItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case syncitem.FieldPayload:
			values[i] = new([]byte)
		case syncitem.FieldID, syncitem.FieldSeq, syncitem.FieldRetryCount:
			values[i] = new(sql.NullInt64)
		case syncitem.FieldItemType:
			values[i] = new(sql.NullString)
		case syncitem.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SyncItem fields.
func (si *SyncItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case syncitem.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			si.ID = int(value.Int64)
		case syncitem.FieldSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seq", values[i])
			} else if value.Valid {
				si.Seq = value.Int64
			}
		case syncitem.FieldItemType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_type", values[i])
			} else if value.Valid {
				si.ItemType = value.String
			}
		case syncitem.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &si.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case syncitem.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				si.RetryCount = int(value.Int64)
			}
		case syncitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				si.CreatedAt = value.Time
			}
		default:
			si.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SyncItem.
// This includes values selected through modifiers, order, etc.
func (si *SyncItem) Value(name string) (ent.Value, error) {
	return si.selectValues.Get(name)
}

// Update returns a builder for updating this SyncItem.
// Note that you need to call SyncItem.Unwrap() before calling this method if this SyncItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (si *SyncItem) Update() *SyncItemUpdateOne {
	return NewSyncItemClient(si.config).UpdateOne(si)
}

// Unwrap unwraps the SyncItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (si *SyncItem) Unwrap() *SyncItem {
	_tx, ok := si.config.driver.(*txDriver)
	if !ok {
		panic("ent: SyncItem is not a transactional entity")
	}
	si.config.driver = _tx.drv
	return si
}

// String implements the fmt.Stringer.
func (si *SyncItem) String() string {
	var builder strings.Builder
	builder.WriteString("SyncItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", si.ID))
	builder.WriteString("seq=")
	builder.WriteString(fmt.Sprintf("%v", si.Seq))
	builder.WriteString(", ")
	builder.WriteString("item_type=")
	builder.WriteString(si.ItemType)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", si.Payload))
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", si.RetryCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(si.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SyncItems is a parsable slice of SyncItem.
type SyncItems []*SyncItem
