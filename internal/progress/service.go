// Package progress owns the learner's position in each course. Local
// state is authoritative for the device and always usable offline;
// every mutation also queues a remote write, and reads prefer the
// server when it answers.
package progress

import (
	"context"
	"errors"
	"fmt"

	"github.com/priyam/studytrail/internal/course"
	"github.com/priyam/studytrail/internal/quiz"
	"github.com/priyam/studytrail/internal/store"
	"github.com/priyam/studytrail/internal/syncq"
)

// ErrCourseNotCached is returned when an operation needs the course
// tree and no snapshot exists locally.
var ErrCourseNotCached = errors.New("course not cached")

// ErrTopicNotFound is returned when a chapter/topic position is out of
// range for the cached tree.
var ErrTopicNotFound = errors.New("topic not found")

// Remote is the slice of the remote client the service reads from.
// FetchProgress returning (nil, nil) means the server has no progress
// recorded for the course.
type Remote interface {
	FetchCourse(ctx context.Context, courseID string) (*course.Course, error)
	FetchProgress(ctx context.Context, courseID string) (*course.Cursor, error)
}

// Enqueuer buffers remote mutations. Satisfied by *syncq.Queue.
type Enqueuer interface {
	EnqueueProgress(ctx context.Context, p syncq.ProgressPayload) error
	EnqueueQuiz(ctx context.Context, p syncq.QuizPayload) error
	EnqueueCertificate(ctx context.Context, p syncq.CertificatePayload) error
}

// Service coordinates local progress state with the remote authority.
type Service struct {
	courses store.CourseRepo
	cursors store.ProgressRepo
	certs   store.CertificateRepo
	events  store.EventRepo
	remote  Remote
	queue   Enqueuer
}

// Options collects the Service dependencies.
type Options struct {
	Courses      store.CourseRepo
	Cursors      store.ProgressRepo
	Certificates store.CertificateRepo
	Events       store.EventRepo
	Remote       Remote
	Queue        Enqueuer
}

// NewService creates a Service.
func NewService(opts Options) *Service {
	return &Service{
		courses: opts.Courses,
		cursors: opts.Cursors,
		certs:   opts.Certificates,
		events:  opts.Events,
		remote:  opts.Remote,
		queue:   opts.Queue,
	}
}

// Read returns the current cursor for a course, server-first: a cursor
// the remote returns always wins and overwrites the local copy, even if
// a newer local write is still queued; the queued item will supersede
// it once delivered. On any network or parse failure it falls back to
// the local cache, and to {0,0} when nothing is cached. Read never
// fails; it always has a best-effort answer.
func (s *Service) Read(ctx context.Context, courseID string) course.Cursor {
	if fresh, err := s.remote.FetchProgress(ctx, courseID); err == nil && fresh != nil {
		// Best effort: a failed local write-back doesn't invalidate
		// the fresh server value.
		_ = s.cursors.Save(ctx, courseID, *fresh)
		return *fresh
	}

	local, err := s.cursors.Get(ctx, courseID)
	if err != nil || local == nil {
		return course.Cursor{}
	}
	return *local
}

// Write persists the cursor locally and queues the remote update. It
// returns once local state is durable; delivery happens asynchronously.
func (s *Service) Write(ctx context.Context, courseID string, cur course.Cursor) error {
	if err := s.cursors.Save(ctx, courseID, cur); err != nil {
		return fmt.Errorf("save cursor: %w", err)
	}
	// Queue failures are contained: local progress stands, and the
	// next successful mutation carries the full cursor anyway.
	_ = s.queue.EnqueueProgress(ctx, syncq.ProgressPayload{
		CourseID:     courseID,
		ChapterIndex: cur.ChapterIndex,
		TopicIndex:   cur.TopicIndex,
	})
	return nil
}

// MarkCertificateIssued sets the completion flag and queues the remote
// completion, exactly once per course: repeat calls are no-ops and emit
// no second certificate event.
func (s *Service) MarkCertificateIssued(ctx context.Context, courseID string) error {
	issued, err := s.certs.Issued(ctx, courseID)
	if err != nil {
		return fmt.Errorf("check certificate: %w", err)
	}
	if issued {
		return nil
	}

	if err := s.certs.MarkIssued(ctx, courseID); err != nil {
		return fmt.Errorf("mark certificate: %w", err)
	}
	_ = s.queue.EnqueueCertificate(ctx, syncq.CertificatePayload{CourseID: courseID})
	return nil
}

// HasCertificate reports whether the course's certificate was issued.
func (s *Service) HasCertificate(ctx context.Context, courseID string) (bool, error) {
	return s.certs.Issued(ctx, courseID)
}

// PullCourse fetches the course tree from the remote authority and
// replaces the local snapshot.
func (s *Service) PullCourse(ctx context.Context, courseID string) (*course.Course, error) {
	crs, err := s.remote.FetchCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("pull course %s: %w", courseID, err)
	}
	if err := s.courses.Save(ctx, crs); err != nil {
		return nil, fmt.Errorf("cache course %s: %w", courseID, err)
	}
	return crs, nil
}

// QuizOutcome describes what a finished quiz attempt did to the
// learner's progress.
type QuizOutcome struct {
	Passed bool
	// Next is the cursor after the attempt. Unchanged on a fail: the
	// learner reviews the same topic and retries.
	Next course.Cursor
	// CourseCompleted is true when this attempt finished the last
	// topic of the last chapter.
	CourseCompleted bool
}

// FinishQuiz applies a completed attempt at (chapterIndex, topicIndex).
// Every attempt, pass or fail, is recorded locally and queued for the
// remote audit trail. Only a pass advances the cursor; the cursor never
// moves backward. Passing the final topic also issues the certificate.
func (s *Service) FinishQuiz(ctx context.Context, courseID string, chapterIndex, topicIndex int, res quiz.Result) (*QuizOutcome, error) {
	crs, err := s.courses.Get(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("load course: %w", err)
	}
	if crs == nil {
		return nil, ErrCourseNotCached
	}
	if _, ok := course.TopicAt(crs, chapterIndex, topicIndex); !ok {
		return nil, ErrTopicNotFound
	}

	// Audit record first. It exists whether or not the cursor moves.
	_ = s.events.AppendQuizAttempt(ctx, store.QuizAttemptData{
		AttemptID:      res.AttemptID,
		CourseID:       courseID,
		ChapterIndex:   chapterIndex,
		TopicIndex:     topicIndex,
		CorrectCount:   res.CorrectCount,
		AttemptedCount: res.AttemptedCount,
		Passed:         res.Passed,
	})
	_ = s.queue.EnqueueQuiz(ctx, syncq.QuizPayload{
		CourseID:       courseID,
		ChapterIndex:   chapterIndex,
		TopicIndex:     topicIndex,
		CorrectCount:   res.CorrectCount,
		AttemptedCount: res.AttemptedCount,
		Passed:         res.Passed,
	})

	outcome := &QuizOutcome{Passed: res.Passed}
	cur := s.localCursor(ctx, courseID)

	if !res.Passed {
		outcome.Next = cur
		return outcome, nil
	}

	next, complete := course.NextCursor(crs, chapterIndex, topicIndex)
	outcome.CourseCompleted = complete

	// Monotonicity: a retake of an already-passed topic must not pull
	// the cursor back.
	if cur.Less(next) {
		if err := s.Write(ctx, courseID, next); err != nil {
			return nil, err
		}
		outcome.Next = next
	} else {
		outcome.Next = cur
	}

	if complete {
		if err := s.MarkCertificateIssued(ctx, courseID); err != nil {
			return nil, err
		}
	}

	return outcome, nil
}

// localCursor reads the locally cached cursor, defaulting to {0,0}.
func (s *Service) localCursor(ctx context.Context, courseID string) course.Cursor {
	cur, err := s.cursors.Get(ctx, courseID)
	if err != nil || cur == nil {
		return course.Cursor{}
	}
	return *cur
}
