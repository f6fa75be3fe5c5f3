// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/priyam/studytrail/ent/syncevent"
)

// SyncEvent is the model entity for the SyncEvent schema.
type SyncEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Seq of the queue item this outcome belongs to
	ItemSeq int64 `json:"item_seq,omitempty"`
	// ItemType holds the value of the "item_type" field.
	ItemType string `json:"item_type,omitempty"`
	// delivered or dropped
	Action string `json:"action,omitempty"`
	// Delivery attempts made, including the final one
	Attempts int `json:"attempts,omitempty"`
	// Error from the final attempt, for dropped items
	LastError    string `json:"last_error,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SyncEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case syncevent.FieldID, syncevent.FieldSequence, syncevent.FieldItemSeq, syncevent.FieldAttempts:
			values[i] = new(sql.NullInt64)
		case syncevent.FieldItemType, syncevent.FieldAction, syncevent.FieldLastError:
			values[i] = new(sql.NullString)
		case syncevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SyncEvent fields.
func (se *SyncEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case syncevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			se.ID = int(value.Int64)
		case syncevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				se.Sequence = value.Int64
			}
		case syncevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				se.Timestamp = value.Time
			}
		case syncevent.FieldItemSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field item_seq", values[i])
			} else if value.Valid {
				se.ItemSeq = value.Int64
			}
		case syncevent.FieldItemType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_type", values[i])
			} else if value.Valid {
				se.ItemType = value.String
			}
		case syncevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				se.Action = value.String
			}
		case syncevent.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				se.Attempts = int(value.Int64)
			}
		case syncevent.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				se.LastError = value.String
			}
		default:
			se.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SyncEvent.
// This includes values selected through modifiers, order, etc.
func (se *SyncEvent) Value(name string) (ent.Value, error) {
	return se.selectValues.Get(name)
}

// Update returns a builder for updating this SyncEvent.
// Note that you need to call SyncEvent.Unwrap() before calling this method if this SyncEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (se *SyncEvent) Update() *SyncEventUpdateOne {
	return NewSyncEventClient(se.config).UpdateOne(se)
}

// Unwrap unwraps the SyncEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (se *SyncEvent) Unwrap() *SyncEvent {
	_tx, ok := se.config.driver.(*txDriver)
	if !ok {
		panic("ent: SyncEvent is not a transactional entity")
	}
	se.config.driver = _tx.drv
	return se
}

// String implements the fmt.Stringer.
func (se *SyncEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SyncEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", se.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", se.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(se.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("item_seq=")
	builder.WriteString(fmt.Sprintf("%v", se.ItemSeq))
	builder.WriteString(", ")
	builder.WriteString("item_type=")
	builder.WriteString(se.ItemType)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(se.Action)
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", se.Attempts))
	builder.WriteString(", ")
	builder.WriteString("last_error=")
	builder.WriteString(se.LastError)
	builder.WriteByte(')')
	return builder.String()
}

// SyncEvents is a parsable slice of SyncEvent.
type SyncEvents []*SyncEvent
