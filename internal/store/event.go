package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/priyam/studytrail/ent"
	"github.com/priyam/studytrail/ent/quizattemptevent"
	"github.com/priyam/studytrail/ent/syncevent"
)

// sequenceCounter manages the global monotonic sequence shared by queue
// items and audit events. Each type lives in its own ent-managed table,
// so per-table auto-increment IDs can't establish cross-type ordering;
// this counter assigns a single increasing number to every row that
// needs one. Raw SQL because ent has no database-level atomic counters;
// the mutex serializes within the process and the RETURNING clause makes
// the increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendQuizAttempt(ctx context.Context, data QuizAttemptData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizAttemptEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetCourseID(data.CourseID).
		SetChapterIndex(data.ChapterIndex).
		SetTopicIndex(data.TopicIndex).
		SetCorrectCount(data.CorrectCount).
		SetAttemptedCount(data.AttemptedCount).
		SetPassed(data.Passed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSync(ctx context.Context, data SyncEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SyncEvent.Create().
		SetSequence(seqNum).
		SetItemSeq(data.ItemSeq).
		SetItemType(data.ItemType).
		SetAction(data.Action).
		SetAttempts(data.Attempts)
	if data.LastError != "" {
		builder = builder.SetLastError(data.LastError)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save sync event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryQuizAttempts(ctx context.Context, opts QueryOpts) ([]QuizAttemptRecord, error) {
	query := r.client.QuizAttemptEvent.Query().
		Order(ent.Desc(quizattemptevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.CourseID != "" {
		query = query.Where(quizattemptevent.CourseID(opts.CourseID))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz attempts: %w", err)
	}

	records := make([]QuizAttemptRecord, len(events))
	for i, e := range events {
		records[i] = QuizAttemptRecord{
			QuizAttemptData: QuizAttemptData{
				AttemptID:      e.AttemptID,
				CourseID:       e.CourseID,
				ChapterIndex:   e.ChapterIndex,
				TopicIndex:     e.TopicIndex,
				CorrectCount:   e.CorrectCount,
				AttemptedCount: e.AttemptedCount,
				Passed:         e.Passed,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) QuerySyncEvents(ctx context.Context, opts QueryOpts) ([]SyncEventRecord, error) {
	query := r.client.SyncEvent.Query().
		Order(ent.Desc(syncevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.Action != "" {
		query = query.Where(syncevent.Action(opts.Action))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sync events: %w", err)
	}

	records := make([]SyncEventRecord, len(events))
	for i, e := range events {
		records[i] = SyncEventRecord{
			SyncEventData: SyncEventData{
				ItemSeq:   e.ItemSeq,
				ItemType:  e.ItemType,
				Action:    e.Action,
				Attempts:  e.Attempts,
				LastError: e.LastError,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}
