// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/priyam/studytrail/ent/coursesnapshot"
)

// CourseSnapshot is the model entity for the CourseSnapshot schema.
type CourseSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Remote course identifier
	CourseID string `json:"course_id,omitempty"`
	// Denormalized course title for listings
	Title string `json:"title,omitempty"`
	// Full course tree as JSON
	Data map[string]interface{} `json:"data,omitempty"`
	// When this snapshot was last replaced
	FetchedAt    time.Time `json:"fetched_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CourseSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case coursesnapshot.FieldData:
			values[i] = new([]byte)
		case coursesnapshot.FieldID:
			values[i] = new(sql.NullInt64)
		case coursesnapshot.FieldCourseID, coursesnapshot.FieldTitle:
			values[i] = new(sql.NullString)
		case coursesnapshot.FieldFetchedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CourseSnapshot fields.
func (cs *CourseSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case coursesnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			cs.ID = int(value.Int64)
		case coursesnapshot.FieldCourseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field course_id", values[i])
			} else if value.Valid {
				cs.CourseID = value.String
			}
		case coursesnapshot.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				cs.Title = value.String
			}
		case coursesnapshot.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &cs.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		case coursesnapshot.FieldFetchedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field fetched_at", values[i])
			} else if value.Valid {
				cs.FetchedAt = value.Time
			}
		default:
			cs.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CourseSnapshot.
// This includes values selected through modifiers, order, etc.
func (cs *CourseSnapshot) Value(name string) (ent.Value, error) {
	return cs.selectValues.Get(name)
}

// Update returns a builder for updating this CourseSnapshot.
// Note that you need to call CourseSnapshot.Unwrap() before calling this method if this CourseSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (cs *CourseSnapshot) Update() *CourseSnapshotUpdateOne {
	return NewCourseSnapshotClient(cs.config).UpdateOne(cs)
}

// Unwrap unwraps the CourseSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (cs *CourseSnapshot) Unwrap() *CourseSnapshot {
	_tx, ok := cs.config.driver.(*txDriver)
	if !ok {
		panic("ent: CourseSnapshot is not a transactional entity")
	}
	cs.config.driver = _tx.drv
	return cs
}

// String implements the fmt.Stringer.
func (cs *CourseSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("CourseSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", cs.ID))
	builder.WriteString("course_id=")
	builder.WriteString(cs.CourseID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(cs.Title)
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", cs.Data))
	builder.WriteString(", ")
	builder.WriteString("fetched_at=")
	builder.WriteString(cs.FetchedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CourseSnapshots is a parsable slice of CourseSnapshot.
type CourseSnapshots []*CourseSnapshot
