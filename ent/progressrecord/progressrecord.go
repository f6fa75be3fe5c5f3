// Code generated by ent, DO NOT EDIT.

package progressrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the progressrecord type in the database.
	Label = "progress_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCourseID holds the string denoting the course_id field in the database.
	FieldCourseID = "course_id"
	// FieldChapterIndex holds the string denoting the chapter_index field in the database.
	FieldChapterIndex = "chapter_index"
	// FieldTopicIndex holds the string denoting the topic_index field in the database.
	FieldTopicIndex = "topic_index"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the progressrecord in the database.
	Table = "progress_records"
)

// Columns holds all SQL columns for progressrecord fields.
var Columns = []string{
	FieldID,
	FieldCourseID,
	FieldChapterIndex,
	FieldTopicIndex,
	FieldUpdatedAt,
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
	// CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	CourseIDValidator func(string) error
	// ChapterIndexValidator is a validator for the "chapter_index" field. It is called by the builders before save.
	ChapterIndexValidator func(int) error
	// TopicIndexValidator is a validator for the "topic_index" field. It is called by the builders before save.
	TopicIndexValidator func(int) error
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the ProgressRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
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

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
