package progress

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyam/studytrail/internal/course"
	"github.com/priyam/studytrail/internal/quiz"
	"github.com/priyam/studytrail/internal/store"
	"github.com/priyam/studytrail/internal/syncq"
)

type fakeCourses struct {
	byID map[string]*course.Course
}

func (f *fakeCourses) Save(ctx context.Context, c *course.Course) error {
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCourses) Get(ctx context.Context, courseID string) (*course.Course, error) {
	return f.byID[courseID], nil
}

type fakeCursors struct {
	byID    map[string]course.Cursor
	saveErr error
}

func (f *fakeCursors) Save(ctx context.Context, courseID string, cur course.Cursor) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.byID[courseID] = cur
	return nil
}

func (f *fakeCursors) Get(ctx context.Context, courseID string) (*course.Cursor, error) {
	cur, ok := f.byID[courseID]
	if !ok {
		return nil, nil
	}
	return &cur, nil
}

type fakeCerts struct {
	issued map[string]bool
}

func (f *fakeCerts) MarkIssued(ctx context.Context, courseID string) error {
	f.issued[courseID] = true
	return nil
}

func (f *fakeCerts) Issued(ctx context.Context, courseID string) (bool, error) {
	return f.issued[courseID], nil
}

type fakeEvents struct {
	attempts []store.QuizAttemptData
}

func (f *fakeEvents) AppendQuizAttempt(ctx context.Context, data store.QuizAttemptData) error {
	f.attempts = append(f.attempts, data)
	return nil
}

func (f *fakeEvents) AppendSync(ctx context.Context, data store.SyncEventData) error { return nil }

func (f *fakeEvents) QueryQuizAttempts(ctx context.Context, opts store.QueryOpts) ([]store.QuizAttemptRecord, error) {
	return nil, nil
}

func (f *fakeEvents) QuerySyncEvents(ctx context.Context, opts store.QueryOpts) ([]store.SyncEventRecord, error) {
	return nil, nil
}

// fakeRemote serves a fixed course tree and an optional server cursor.
type fakeRemote struct {
	courses     map[string]*course.Course
	cursor      *course.Cursor
	progressErr error
}

func (f *fakeRemote) FetchCourse(ctx context.Context, courseID string) (*course.Course, error) {
	c, ok := f.courses[courseID]
	if !ok {
		return nil, errors.New("HTTP 404")
	}
	return c, nil
}

func (f *fakeRemote) FetchProgress(ctx context.Context, courseID string) (*course.Cursor, error) {
	if f.progressErr != nil {
		return nil, f.progressErr
	}
	return f.cursor, nil
}

type fakeEnqueuer struct {
	progress []syncq.ProgressPayload
	quizzes  []syncq.QuizPayload
	certs    []syncq.CertificatePayload
}

func (f *fakeEnqueuer) EnqueueProgress(ctx context.Context, p syncq.ProgressPayload) error {
	f.progress = append(f.progress, p)
	return nil
}

func (f *fakeEnqueuer) EnqueueQuiz(ctx context.Context, p syncq.QuizPayload) error {
	f.quizzes = append(f.quizzes, p)
	return nil
}

func (f *fakeEnqueuer) EnqueueCertificate(ctx context.Context, p syncq.CertificatePayload) error {
	f.certs = append(f.certs, p)
	return nil
}

// twoByTwo is a 2-chapter, 2-topic course with a one-question quiz on
// every topic.
func twoByTwo(id string) *course.Course {
	topic := func(name string) course.Topic {
		return course.Topic{
			Title:   name,
			Content: "body",
			Quiz: course.Quiz{Questions: []course.Question{
				{Text: "q", Options: []string{"a", "b"}, CorrectOptionIndex: 0},
			}},
		}
	}
	return &course.Course{
		ID: id,
		Chapters: []course.Chapter{
			{Title: "ch0", Topics: []course.Topic{topic("t0"), topic("t1")}},
			{Title: "ch1", Topics: []course.Topic{topic("t0"), topic("t1")}},
		},
	}
}

type fixture struct {
	courses *fakeCourses
	cursors *fakeCursors
	certs   *fakeCerts
	events  *fakeEvents
	remote  *fakeRemote
	queue   *fakeEnqueuer
	svc     *Service
}

func newFixture() *fixture {
	f := &fixture{
		courses: &fakeCourses{byID: make(map[string]*course.Course)},
		cursors: &fakeCursors{byID: make(map[string]course.Cursor)},
		certs:   &fakeCerts{issued: make(map[string]bool)},
		events:  &fakeEvents{},
		remote:  &fakeRemote{courses: make(map[string]*course.Course)},
		queue:   &fakeEnqueuer{},
	}
	f.svc = NewService(Options{
		Courses:      f.courses,
		Cursors:      f.cursors,
		Certificates: f.certs,
		Events:       f.events,
		Remote:       f.remote,
		Queue:        f.queue,
	})
	return f
}

func passResult() quiz.Result {
	return quiz.Result{AttemptID: "att-1", CorrectCount: 1, AttemptedCount: 1, Passed: true}
}

func failResult() quiz.Result {
	return quiz.Result{AttemptID: "att-1", CorrectCount: 0, AttemptedCount: 1, Passed: false}
}

func TestReadServerFirst(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.cursors.byID["crs-1"] = course.Cursor{ChapterIndex: 0, TopicIndex: 1}
	f.remote.cursor = &course.Cursor{ChapterIndex: 1, TopicIndex: 2}

	got := f.svc.Read(ctx, "crs-1")

	assert.Equal(t, course.Cursor{ChapterIndex: 1, TopicIndex: 2}, got)
	assert.Equal(t, course.Cursor{ChapterIndex: 1, TopicIndex: 2}, f.cursors.byID["crs-1"],
		"server value overwrites the local cache")
}

func TestReadFallsBackToLocal(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.cursors.byID["crs-1"] = course.Cursor{ChapterIndex: 1, TopicIndex: 0}
	f.remote.progressErr = errors.New("network down")

	got := f.svc.Read(ctx, "crs-1")
	assert.Equal(t, course.Cursor{ChapterIndex: 1, TopicIndex: 0}, got)
}

func TestReadDefaultsToZero(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*fixture)
	}{
		{"server absent, nothing local", func(f *fixture) {
			f.remote.cursor = nil
		}},
		{"network down, nothing local", func(f *fixture) {
			f.remote.progressErr = errors.New("network down")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			tt.setup(f)
			got := f.svc.Read(context.Background(), "crs-1")
			assert.Equal(t, course.Cursor{}, got)
		})
	}
}

func TestReadServerAbsentKeepsLocal(t *testing.T) {
	f := newFixture()
	f.cursors.byID["crs-1"] = course.Cursor{ChapterIndex: 0, TopicIndex: 1}
	f.remote.cursor = nil

	got := f.svc.Read(context.Background(), "crs-1")
	assert.Equal(t, course.Cursor{ChapterIndex: 0, TopicIndex: 1}, got)
}

func TestWritePersistsAndQueues(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	err := f.svc.Write(ctx, "crs-1", course.Cursor{ChapterIndex: 1, TopicIndex: 1})
	require.NoError(t, err)

	assert.Equal(t, course.Cursor{ChapterIndex: 1, TopicIndex: 1}, f.cursors.byID["crs-1"])
	require.Len(t, f.queue.progress, 1)
	assert.Equal(t, syncq.ProgressPayload{CourseID: "crs-1", ChapterIndex: 1, TopicIndex: 1}, f.queue.progress[0])
}

func TestWriteFailsWhenLocalSaveFails(t *testing.T) {
	f := newFixture()
	f.cursors.saveErr = errors.New("disk full")

	err := f.svc.Write(context.Background(), "crs-1", course.Cursor{})
	require.Error(t, err)
	assert.Empty(t, f.queue.progress, "nothing queued when local state is not durable")
}

func TestCertificateExactlyOnce(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	require.NoError(t, f.svc.MarkCertificateIssued(ctx, "crs-1"))
	require.NoError(t, f.svc.MarkCertificateIssued(ctx, "crs-1"))
	require.NoError(t, f.svc.MarkCertificateIssued(ctx, "crs-1"))

	issued, err := f.svc.HasCertificate(ctx, "crs-1")
	require.NoError(t, err)
	assert.True(t, issued)
	assert.Len(t, f.queue.certs, 1, "repeat calls must not queue a second completion")
}

func TestPullCourse(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.remote.courses["crs-1"] = twoByTwo("crs-1")

	crs, err := f.svc.PullCourse(ctx, "crs-1")
	require.NoError(t, err)
	assert.Equal(t, "crs-1", crs.ID)
	assert.NotNil(t, f.courses.byID["crs-1"], "fetched tree is cached")

	_, err = f.svc.PullCourse(ctx, "missing")
	require.Error(t, err)
}

func TestFinishQuizRequiresCachedCourse(t *testing.T) {
	f := newFixture()
	_, err := f.svc.FinishQuiz(context.Background(), "crs-1", 0, 0, passResult())
	require.ErrorIs(t, err, ErrCourseNotCached)
}

func TestFinishQuizRejectsBadPosition(t *testing.T) {
	f := newFixture()
	f.courses.byID["crs-1"] = twoByTwo("crs-1")

	_, err := f.svc.FinishQuiz(context.Background(), "crs-1", 5, 0, passResult())
	require.ErrorIs(t, err, ErrTopicNotFound)
}

func TestFinishQuizPassAdvances(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.courses.byID["crs-1"] = twoByTwo("crs-1")

	out, err := f.svc.FinishQuiz(ctx, "crs-1", 0, 0, passResult())
	require.NoError(t, err)

	assert.True(t, out.Passed)
	assert.False(t, out.CourseCompleted)
	assert.Equal(t, course.Cursor{ChapterIndex: 0, TopicIndex: 1}, out.Next)
	assert.Equal(t, course.Cursor{ChapterIndex: 0, TopicIndex: 1}, f.cursors.byID["crs-1"])

	// Attempt is recorded and queued either way.
	require.Len(t, f.events.attempts, 1)
	require.Len(t, f.queue.quizzes, 1)
	assert.True(t, f.queue.quizzes[0].Passed)
	// Plus the cursor write.
	require.Len(t, f.queue.progress, 1)
}

func TestFinishQuizFailStaysPut(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.courses.byID["crs-1"] = twoByTwo("crs-1")
	f.cursors.byID["crs-1"] = course.Cursor{ChapterIndex: 0, TopicIndex: 1}

	out, err := f.svc.FinishQuiz(ctx, "crs-1", 0, 1, failResult())
	require.NoError(t, err)

	assert.False(t, out.Passed)
	assert.Equal(t, course.Cursor{ChapterIndex: 0, TopicIndex: 1}, out.Next, "fail leaves the cursor in place")
	assert.Equal(t, course.Cursor{ChapterIndex: 0, TopicIndex: 1}, f.cursors.byID["crs-1"])
	assert.Empty(t, f.queue.progress, "no cursor write on a fail")

	// The failed attempt is still an audit record.
	require.Len(t, f.events.attempts, 1)
	assert.False(t, f.events.attempts[0].Passed)
	require.Len(t, f.queue.quizzes, 1)
	assert.False(t, f.queue.quizzes[0].Passed)
}

func TestFinishQuizRetakeNeverMovesBackward(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.courses.byID["crs-1"] = twoByTwo("crs-1")
	f.cursors.byID["crs-1"] = course.Cursor{ChapterIndex: 1, TopicIndex: 1}

	// Re-pass the very first topic.
	out, err := f.svc.FinishQuiz(ctx, "crs-1", 0, 0, passResult())
	require.NoError(t, err)

	assert.Equal(t, course.Cursor{ChapterIndex: 1, TopicIndex: 1}, out.Next)
	assert.Equal(t, course.Cursor{ChapterIndex: 1, TopicIndex: 1}, f.cursors.byID["crs-1"])
	assert.Empty(t, f.queue.progress, "retake behind the cursor queues no write")
}

func TestFinishQuizChapterBoundary(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.courses.byID["crs-1"] = twoByTwo("crs-1")
	f.cursors.byID["crs-1"] = course.Cursor{ChapterIndex: 0, TopicIndex: 1}

	out, err := f.svc.FinishQuiz(ctx, "crs-1", 0, 1, passResult())
	require.NoError(t, err)
	assert.Equal(t, course.Cursor{ChapterIndex: 1, TopicIndex: 0}, out.Next)
	assert.False(t, out.CourseCompleted)
}

func TestFinishQuizCompletesCourse(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.courses.byID["crs-1"] = twoByTwo("crs-1")
	f.cursors.byID["crs-1"] = course.Cursor{ChapterIndex: 1, TopicIndex: 1}

	out, err := f.svc.FinishQuiz(ctx, "crs-1", 1, 1, passResult())
	require.NoError(t, err)

	assert.True(t, out.CourseCompleted)
	assert.Equal(t, course.Cursor{ChapterIndex: 2, TopicIndex: 0}, out.Next)

	issued, err := f.svc.HasCertificate(ctx, "crs-1")
	require.NoError(t, err)
	assert.True(t, issued)
	require.Len(t, f.queue.certs, 1)
	assert.Equal(t, "crs-1", f.queue.certs[0].CourseID)

	// Re-passing the final topic must not issue a second certificate.
	_, err = f.svc.FinishQuiz(ctx, "crs-1", 1, 1, passResult())
	require.NoError(t, err)
	assert.Len(t, f.queue.certs, 1)
}
