// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/priyam/studytrail/ent/quizattemptevent"
)

// QuizAttemptEvent is the model entity for the QuizAttemptEvent schema.
type QuizAttemptEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// AttemptID holds the value of the "attempt_id" field.
	AttemptID string `json:"attempt_id,omitempty"`
	// CourseID holds the value of the "course_id" field.
	CourseID string `json:"course_id,omitempty"`
	// ChapterIndex holds the value of the "chapter_index" field.
	ChapterIndex int `json:"chapter_index,omitempty"`
	// TopicIndex holds the value of the "topic_index" field.
	TopicIndex int `json:"topic_index,omitempty"`
	// CorrectCount holds the value of the "correct_count" field.
	CorrectCount int `json:"correct_count,omitempty"`
	// AttemptedCount holds the value of the "attempted_count" field.
	AttemptedCount int `json:"attempted_count,omitempty"`
	// Passed holds the value of the "passed" field.
	Passed       bool `json:"passed,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizAttemptEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizattemptevent.FieldPassed:
			values[i] = new(sql.NullBool)
		case quizattemptevent.FieldID, quizattemptevent.FieldSequence, quizattemptevent.FieldChapterIndex, quizattemptevent.FieldTopicIndex, quizattemptevent.FieldCorrectCount, quizattemptevent.FieldAttemptedCount:
			values[i] = new(sql.NullInt64)
		case quizattemptevent.FieldAttemptID, quizattemptevent.FieldCourseID:
			values[i] = new(sql.NullString)
		case quizattemptevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizAttemptEvent fields.
func (qae *QuizAttemptEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizattemptevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			qae.ID = int(value.Int64)
		case quizattemptevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				qae.Sequence = value.Int64
			}
		case quizattemptevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				qae.Timestamp = value.Time
			}
		case quizattemptevent.FieldAttemptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_id", values[i])
			} else if value.Valid {
				qae.AttemptID = value.String
			}
		case quizattemptevent.FieldCourseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field course_id", values[i])
			} else if value.Valid {
				qae.CourseID = value.String
			}
		case quizattemptevent.FieldChapterIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chapter_index", values[i])
			} else if value.Valid {
				qae.ChapterIndex = int(value.Int64)
			}
		case quizattemptevent.FieldTopicIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field topic_index", values[i])
			} else if value.Valid {
				qae.TopicIndex = int(value.Int64)
			}
		case quizattemptevent.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				qae.CorrectCount = int(value.Int64)
			}
		case quizattemptevent.FieldAttemptedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempted_count", values[i])
			} else if value.Valid {
				qae.AttemptedCount = int(value.Int64)
			}
		case quizattemptevent.FieldPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				qae.Passed = value.Bool
			}
		default:
			qae.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizAttemptEvent.
// This includes values selected through modifiers, order, etc.
func (qae *QuizAttemptEvent) Value(name string) (ent.Value, error) {
	return qae.selectValues.Get(name)
}

// Update returns a builder for updating this QuizAttemptEvent.
// Note that you need to call QuizAttemptEvent.Unwrap() before calling this method if this QuizAttemptEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (qae *QuizAttemptEvent) Update() *QuizAttemptEventUpdateOne {
	return NewQuizAttemptEventClient(qae.config).UpdateOne(qae)
}

// Unwrap unwraps the QuizAttemptEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (qae *QuizAttemptEvent) Unwrap() *QuizAttemptEvent {
	_tx, ok := qae.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizAttemptEvent is not a transactional entity")
	}
	qae.config.driver = _tx.drv
	return qae
}

// String implements the fmt.Stringer.
func (qae *QuizAttemptEvent) String() string {
	var builder strings.Builder
	builder.WriteString("QuizAttemptEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", qae.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", qae.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(qae.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("attempt_id=")
	builder.WriteString(qae.AttemptID)
	builder.WriteString(", ")
	builder.WriteString("course_id=")
	builder.WriteString(qae.CourseID)
	builder.WriteString(", ")
	builder.WriteString("chapter_index=")
	builder.WriteString(fmt.Sprintf("%v", qae.ChapterIndex))
	builder.WriteString(", ")
	builder.WriteString("topic_index=")
	builder.WriteString(fmt.Sprintf("%v", qae.TopicIndex))
	builder.WriteString(", ")
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", qae.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("attempted_count=")
	builder.WriteString(fmt.Sprintf("%v", qae.AttemptedCount))
	builder.WriteString(", ")
	builder.WriteString("passed=")
	builder.WriteString(fmt.Sprintf("%v", qae.Passed))
	builder.WriteByte(')')
	return builder.String()
}

// QuizAttemptEvents is a parsable slice of QuizAttemptEvent.
type QuizAttemptEvents []*QuizAttemptEvent
