// Code generated by ent, DO NOT EDIT.

package quizattemptevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quizattemptevent type in the database.
	Label = "quiz_attempt_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldAttemptID holds the string denoting the attempt_id field in the database.
	FieldAttemptID = "attempt_id"
	// FieldCourseID holds the string denoting the course_id field in the database.
	FieldCourseID = "course_id"
	// FieldChapterIndex holds the string denoting the chapter_index field in the database.
	FieldChapterIndex = "chapter_index"
	// FieldTopicIndex holds the string denoting the topic_index field in the database.
	FieldTopicIndex = "topic_index"
	// FieldCorrectCount holds the string denoting the correct_count field in the database.
	FieldCorrectCount = "correct_count"
	// FieldAttemptedCount holds the string denoting the attempted_count field in the database.
	FieldAttemptedCount = "attempted_count"
	// FieldPassed holds the string denoting the passed field in the database.
	FieldPassed = "passed"
	// Table holds the table name of the quizattemptevent in the database.
	Table = "quiz_attempt_events"
)

// Columns holds all SQL columns for quizattemptevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldAttemptID,
	FieldCourseID,
	FieldChapterIndex,
	FieldTopicIndex,
	FieldCorrectCount,
	FieldAttemptedCount,
	FieldPassed,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	AttemptIDValidator func(string) error
	// CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	CourseIDValidator func(string) error
	// ChapterIndexValidator is a validator for the "chapter_index" field. It is called by the builders before save.
	ChapterIndexValidator func(int) error
	// TopicIndexValidator is a validator for the "topic_index" field. It is called by the builders before save.
	TopicIndexValidator func(int) error
	// CorrectCountValidator is a validator for the "correct_count" field. It is called by the builders before save.
	CorrectCountValidator func(int) error
	// AttemptedCountValidator is a validator for the "attempted_count" field. It is called by the builders before save.
	AttemptedCountValidator func(int) error
)

// OrderOption defines the ordering options for the QuizAttemptEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByAttemptID orders the results by the attempt_id field.
func ByAttemptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptID, opts...).ToFunc()
}

// ByCourseID orders the results by the course_id field.
func ByCourseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCourseID, opts...).ToFunc()
}

// ByChapterIndex orders the results by the chapter_index field.
func ByChapterIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChapterIndex, opts...).ToFunc()
}

// ByTopicIndex orders the results by the topic_index field.
func ByTopicIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicIndex, opts...).ToFunc()
}

// ByCorrectCount orders the results by the correct_count field.
func ByCorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectCount, opts...).ToFunc()
}

// ByAttemptedCount orders the results by the attempted_count field.
func ByAttemptedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptedCount, opts...).ToFunc()
}

// ByPassed orders the results by the passed field.
func ByPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassed, opts...).ToFunc()
}
