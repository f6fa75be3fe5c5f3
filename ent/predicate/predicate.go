// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Certificate is the predicate function for certificate builders.
type Certificate func(*sql.Selector)

// CourseSnapshot is the predicate function for coursesnapshot builders.
type CourseSnapshot func(*sql.Selector)

// ProgressRecord is the predicate function for progressrecord builders.
type ProgressRecord func(*sql.Selector)

// QuizAttemptEvent is the predicate function for quizattemptevent builders.
type QuizAttemptEvent func(*sql.Selector)

// Setting is the predicate function for setting builders.
type Setting func(*sql.Selector)

// SyncEvent is the predicate function for syncevent builders.
type SyncEvent func(*sql.Selector)

// SyncItem is the predicate function for syncitem builders.
type SyncItem func(*sql.Selector)
