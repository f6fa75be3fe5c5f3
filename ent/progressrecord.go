// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/priyam/studytrail/ent/progressrecord"
)

// ProgressRecord is the model entity for the ProgressRecord schema.
type ProgressRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CourseID holds the value of the "course_id" field.
	CourseID string `json:"course_id,omitempty"`
	// ChapterIndex holds the value of the "chapter_index" field.
	ChapterIndex int `json:"chapter_index,omitempty"`
	// TopicIndex holds the value of the "topic_index" field.
	TopicIndex int `json:"topic_index,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProgressRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case progressrecord.FieldID, progressrecord.FieldChapterIndex, progressrecord.FieldTopicIndex:
			values[i] = new(sql.NullInt64)
		case progressrecord.FieldCourseID:
			values[i] = new(sql.NullString)
		case progressrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProgressRecord fields.
func (pr *ProgressRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case progressrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			pr.ID = int(value.Int64)
		case progressrecord.FieldCourseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field course_id", values[i])
			} else if value.Valid {
				pr.CourseID = value.String
			}
		case progressrecord.FieldChapterIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chapter_index", values[i])
			} else if value.Valid {
				pr.ChapterIndex = int(value.Int64)
			}
		case progressrecord.FieldTopicIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field topic_index", values[i])
			} else if value.Valid {
				pr.TopicIndex = int(value.Int64)
			}
		case progressrecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				pr.UpdatedAt = value.Time
			}
		default:
			pr.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProgressRecord.
// This includes values selected through modifiers, order, etc.
func (pr *ProgressRecord) Value(name string) (ent.Value, error) {
	return pr.selectValues.Get(name)
}

// Update returns a builder for updating this ProgressRecord.
// Note that you need to call ProgressRecord.Unwrap() before calling this method if this ProgressRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (pr *ProgressRecord) Update() *ProgressRecordUpdateOne {
	return NewProgressRecordClient(pr.config).UpdateOne(pr)
}

// Unwrap unwraps the ProgressRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (pr *ProgressRecord) Unwrap() *ProgressRecord {
	_tx, ok := pr.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProgressRecord is not a transactional entity")
	}
	pr.config.driver = _tx.drv
	return pr
}

// String implements the fmt.Stringer.
func (pr *ProgressRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ProgressRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", pr.ID))
	builder.WriteString("course_id=")
	builder.WriteString(pr.CourseID)
	builder.WriteString(", ")
	builder.WriteString("chapter_index=")
	builder.WriteString(fmt.Sprintf("%v", pr.ChapterIndex))
	builder.WriteString(", ")
	builder.WriteString("topic_index=")
	builder.WriteString(fmt.Sprintf("%v", pr.TopicIndex))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(pr.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProgressRecords is a parsable slice of ProgressRecord.
type ProgressRecords []*ProgressRecord
