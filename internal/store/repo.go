package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/priyam/studytrail/internal/course"
)

// TokenKey is the settings key holding the bearer token for the
// remote authority.
const TokenKey = "access_token"

// Sync queue item types.
const (
	ItemProgress    = "progress"
	ItemQuiz        = "quiz"
	ItemCertificate = "certificate"
)

// Sync event actions.
const (
	SyncDelivered = "delivered"
	SyncDropped   = "dropped"
)

// QueueItem is one buffered remote mutation. Seq fixes the enqueue
// order; the queue drains strictly in Seq order.
type QueueItem struct {
	Seq        int64
	Type       string
	Payload    json.RawMessage
	RetryCount int
	CreatedAt  time.Time
}

// QueueOutcome is the result of one drain pass, applied to storage as a
// single unit: acknowledged items leave the queue, failed ones keep an
// incremented retry count, exhausted ones are removed.
type QueueOutcome struct {
	Delivered []int64
	Retried   map[int64]int // seq → new retry count
	Dropped   []int64
}

// CourseRepo is the course snapshot cache. Saving replaces any prior
// snapshot for the same course unconditionally.
type CourseRepo interface {
	Save(ctx context.Context, c *course.Course) error
	// Get returns the cached tree, or nil if the course was never cached.
	Get(ctx context.Context, courseID string) (*course.Course, error)
}

// ProgressRepo persists the local progress cursor per course.
type ProgressRepo interface {
	Save(ctx context.Context, courseID string, cur course.Cursor) error
	// Get returns the cached cursor, or nil if none exists.
	Get(ctx context.Context, courseID string) (*course.Cursor, error)
}

// CertificateRepo persists the per-course completion flag.
type CertificateRepo interface {
	// MarkIssued sets the flag. Marking an already-issued course is a no-op.
	MarkIssued(ctx context.Context, courseID string) error
	Issued(ctx context.Context, courseID string) (bool, error)
}

// QueueRepo is the durable storage behind the sync queue.
type QueueRepo interface {
	// Append adds an item with retryCount=0 and returns its seq.
	Append(ctx context.Context, itemType string, payload json.RawMessage) (int64, error)
	// List returns all pending items in seq order.
	List(ctx context.Context) ([]QueueItem, error)
	// Apply commits a drain pass outcome in one transaction.
	Apply(ctx context.Context, out QueueOutcome) error
}

// SettingRepo is a small key/value store for device-local state.
type SettingRepo interface {
	// Get returns the value, or "" if the key is unset.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// QuizAttemptData captures one finished quiz attempt for the audit log.
type QuizAttemptData struct {
	AttemptID      string
	CourseID       string
	ChapterIndex   int
	TopicIndex     int
	CorrectCount   int
	AttemptedCount int
	Passed         bool
}

// QuizAttemptRecord is a stored quiz attempt.
type QuizAttemptRecord struct {
	QuizAttemptData
	Sequence  int64
	Timestamp time.Time
}

// SyncEventData captures the terminal outcome of a queued mutation.
type SyncEventData struct {
	ItemSeq   int64
	ItemType  string
	Action    string
	Attempts  int
	LastError string
}

// SyncEventRecord is a stored sync outcome.
type SyncEventRecord struct {
	SyncEventData
	Sequence  int64
	Timestamp time.Time
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit    int    // max results (0 = unlimited)
	CourseID string // filter quiz attempts by course ("" = all)
	Action   string // filter sync events by action ("" = all)
}

// EventRepo provides append and query access to the audit event log.
type EventRepo interface {
	AppendQuizAttempt(ctx context.Context, data QuizAttemptData) error
	AppendSync(ctx context.Context, data SyncEventData) error
	QueryQuizAttempts(ctx context.Context, opts QueryOpts) ([]QuizAttemptRecord, error)
	QuerySyncEvents(ctx context.Context, opts QueryOpts) ([]SyncEventRecord, error)
}
