// Package syncq buffers state-changing operations for the remote
// authority and replays them in order. Delivery is at-least-once: an
// acknowledgement lost before the pass commits means the mutation is
// sent again, which the remote contract tolerates (cursor writes are
// whole replacements).
package syncq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/priyam/studytrail/internal/remote"
	"github.com/priyam/studytrail/internal/store"
)

// Remote is the slice of the remote client the queue dispatches to.
type Remote interface {
	UpdateProgress(ctx context.Context, courseID string, chapterIndex, topicIndex int) error
	SubmitQuizResult(ctx context.Context, courseID string, chapterIndex, topicIndex, correctCount, attemptedCount int, passed bool) error
	CompleteCourse(ctx context.Context, courseID string) error
}

// Queue is the durable sync queue. It owns its items exclusively:
// callers enqueue and never touch items again.
type Queue struct {
	repo   store.QueueRepo
	events store.EventRepo
	remote Remote
	tokens remote.TokenSource
	cfg    Config

	// draining is the single-flight guard: Idle (false) or Draining
	// (true). A drain requested while one is running is skipped, not
	// queued; the running pass will pick up any new items' turn on
	// the next tick.
	draining atomic.Bool
	kick     chan struct{}
}

// New creates a Queue.
func New(repo store.QueueRepo, events store.EventRepo, rc Remote, tokens remote.TokenSource, cfg Config) *Queue {
	return &Queue{
		repo:   repo,
		events: events,
		remote: rc,
		tokens: tokens,
		cfg:    cfg,
		kick:   make(chan struct{}, 1),
	}
}

// EnqueueProgress buffers a progress update.
func (q *Queue) EnqueueProgress(ctx context.Context, p ProgressPayload) error {
	return q.enqueue(ctx, store.ItemProgress, p)
}

// EnqueueQuiz buffers a quiz attempt record.
func (q *Queue) EnqueueQuiz(ctx context.Context, p QuizPayload) error {
	return q.enqueue(ctx, store.ItemQuiz, p)
}

// EnqueueCertificate buffers a course completion.
func (q *Queue) EnqueueCertificate(ctx context.Context, p CertificatePayload) error {
	return q.enqueue(ctx, store.ItemCertificate, p)
}

func (q *Queue) enqueue(ctx context.Context, itemType string, payload any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", itemType, err)
	}
	if _, err := q.repo.Append(ctx, itemType, b); err != nil {
		return fmt.Errorf("enqueue %s: %w", itemType, err)
	}
	q.Kick()
	return nil
}

// Kick requests an opportunistic drain without blocking. If a kick is
// already pending the request is coalesced.
func (q *Queue) Kick() {
	select {
	case q.kick <- struct{}{}:
	default:
	}
}

// Run drains on a fixed interval and on every kick until ctx is
// cancelled. Drain errors are contained here: a failed pass leaves
// items queued for the next one.
func (q *Queue) Run(ctx context.Context) {
	ticker := time.NewTicker(q.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = q.Drain(ctx)
		case <-q.kick:
			_ = q.Drain(ctx)
		}
	}
}

// Drain attempts to deliver all queued items, in seq order, one at a
// time. At most one drain runs at once; a call that finds one already
// running returns immediately. Without a bearer token the whole pass is
// a no-op and items stay queued.
//
// The first failed delivery ends the pass: later items must not reach
// the remote before an earlier one is resolved or dropped, or causal
// ordering of progress writes would break. An item whose failure count
// reaches the ceiling is dropped from the queue, leaving a dead-letter
// event as its record, and delivery continues past it.
func (q *Queue) Drain(ctx context.Context) error {
	if !q.draining.CompareAndSwap(false, true) {
		return nil
	}
	defer q.draining.Store(false)

	token, err := q.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}
	if token == "" {
		return nil
	}

	items, err := q.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list queue: %w", err)
	}
	if len(items) == 0 {
		return nil
	}

	out := store.QueueOutcome{Retried: make(map[int64]int)}
	var outcomes []store.SyncEventData

	for _, item := range items {
		deliverErr := q.deliver(ctx, item)
		if deliverErr == nil {
			out.Delivered = append(out.Delivered, item.Seq)
			outcomes = append(outcomes, store.SyncEventData{
				ItemSeq:  item.Seq,
				ItemType: item.Type,
				Action:   store.SyncDelivered,
				Attempts: item.RetryCount + 1,
			})
			continue
		}

		count := item.RetryCount + 1
		if count >= q.cfg.MaxAttempts {
			out.Dropped = append(out.Dropped, item.Seq)
			outcomes = append(outcomes, store.SyncEventData{
				ItemSeq:   item.Seq,
				ItemType:  item.Type,
				Action:    store.SyncDropped,
				Attempts:  count,
				LastError: deliverErr.Error(),
			})
			continue
		}

		out.Retried[item.Seq] = count
		break
	}

	if err := q.repo.Apply(ctx, out); err != nil {
		return fmt.Errorf("apply drain outcome: %w", err)
	}

	for _, ev := range outcomes {
		if err := q.events.AppendSync(ctx, ev); err != nil {
			return fmt.Errorf("record sync outcome: %w", err)
		}
	}
	return nil
}

// deliver dispatches one item to the remote client based on its type.
func (q *Queue) deliver(ctx context.Context, item store.QueueItem) error {
	switch item.Type {
	case store.ItemProgress:
		var p ProgressPayload
		if err := json.Unmarshal(item.Payload, &p); err != nil {
			return fmt.Errorf("decode progress payload: %w", err)
		}
		return q.remote.UpdateProgress(ctx, p.CourseID, p.ChapterIndex, p.TopicIndex)

	case store.ItemQuiz:
		var p QuizPayload
		if err := json.Unmarshal(item.Payload, &p); err != nil {
			return fmt.Errorf("decode quiz payload: %w", err)
		}
		return q.remote.SubmitQuizResult(ctx, p.CourseID, p.ChapterIndex, p.TopicIndex, p.CorrectCount, p.AttemptedCount, p.Passed)

	case store.ItemCertificate:
		var p CertificatePayload
		if err := json.Unmarshal(item.Payload, &p); err != nil {
			return fmt.Errorf("decode certificate payload: %w", err)
		}
		return q.remote.CompleteCourse(ctx, p.CourseID)

	default:
		return fmt.Errorf("unknown item type %q", item.Type)
	}
}
