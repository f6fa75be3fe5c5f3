// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CertificatesColumns holds the columns for the "certificates" table.
	CertificatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "course_id", Type: field.TypeString, Unique: true},
		{Name: "issued_at", Type: field.TypeTime},
	}
	// CertificatesTable holds the schema information for the "certificates" table.
	CertificatesTable = &schema.Table{
		Name:       "certificates",
		Columns:    CertificatesColumns,
		PrimaryKey: []*schema.Column{CertificatesColumns[0]},
	}
	// CourseSnapshotsColumns holds the columns for the "course_snapshots" table.
	CourseSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "course_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "data", Type: field.TypeJSON},
		{Name: "fetched_at", Type: field.TypeTime},
	}
	// CourseSnapshotsTable holds the schema information for the "course_snapshots" table.
	CourseSnapshotsTable = &schema.Table{
		Name:       "course_snapshots",
		Columns:    CourseSnapshotsColumns,
		PrimaryKey: []*schema.Column{CourseSnapshotsColumns[0]},
	}
	// ProgressRecordsColumns holds the columns for the "progress_records" table.
	ProgressRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "course_id", Type: field.TypeString, Unique: true},
		{Name: "chapter_index", Type: field.TypeInt},
		{Name: "topic_index", Type: field.TypeInt},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProgressRecordsTable holds the schema information for the "progress_records" table.
	ProgressRecordsTable = &schema.Table{
		Name:       "progress_records",
		Columns:    ProgressRecordsColumns,
		PrimaryKey: []*schema.Column{ProgressRecordsColumns[0]},
	}
	// QuizAttemptEventsColumns holds the columns for the "quiz_attempt_events" table.
	QuizAttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString},
		{Name: "course_id", Type: field.TypeString},
		{Name: "chapter_index", Type: field.TypeInt},
		{Name: "topic_index", Type: field.TypeInt},
		{Name: "correct_count", Type: field.TypeInt},
		{Name: "attempted_count", Type: field.TypeInt},
		{Name: "passed", Type: field.TypeBool},
	}
	// QuizAttemptEventsTable holds the schema information for the "quiz_attempt_events" table.
	QuizAttemptEventsTable = &schema.Table{
		Name:       "quiz_attempt_events",
		Columns:    QuizAttemptEventsColumns,
		PrimaryKey: []*schema.Column{QuizAttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizattemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptEventsColumns[1]},
			},
			{
				Name:    "quizattemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptEventsColumns[2]},
			},
			{
				Name:    "quizattemptevent_course_id",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptEventsColumns[4]},
			},
		},
	}
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
	}
	// SyncEventsColumns holds the columns for the "sync_events" table.
	SyncEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "item_seq", Type: field.TypeInt64},
		{Name: "item_type", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "attempts", Type: field.TypeInt},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
	}
	// SyncEventsTable holds the schema information for the "sync_events" table.
	SyncEventsTable = &schema.Table{
		Name:       "sync_events",
		Columns:    SyncEventsColumns,
		PrimaryKey: []*schema.Column{SyncEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "syncevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SyncEventsColumns[1]},
			},
			{
				Name:    "syncevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SyncEventsColumns[2]},
			},
			{
				Name:    "syncevent_action",
				Unique:  false,
				Columns: []*schema.Column{SyncEventsColumns[5]},
			},
		},
	}
	// SyncItemsColumns holds the columns for the "sync_items" table.
	SyncItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "seq", Type: field.TypeInt64, Unique: true},
		{Name: "item_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SyncItemsTable holds the schema information for the "sync_items" table.
	SyncItemsTable = &schema.Table{
		Name:       "sync_items",
		Columns:    SyncItemsColumns,
		PrimaryKey: []*schema.Column{SyncItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "syncitem_seq",
				Unique:  false,
				Columns: []*schema.Column{SyncItemsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CertificatesTable,
		CourseSnapshotsTable,
		ProgressRecordsTable,
		QuizAttemptEventsTable,
		SettingsTable,
		SyncEventsTable,
		SyncItemsTable,
	}
)

func init() {
}
