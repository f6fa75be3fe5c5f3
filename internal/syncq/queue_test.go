package syncq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyam/studytrail/internal/store"
)

type staticTokens string

func (s staticTokens) Token(ctx context.Context) (string, error) {
	return string(s), nil
}

// fakeQueueRepo is an in-memory QueueRepo that mirrors the storage
// contract: Apply removes delivered and dropped rows and bumps retry
// counts in one shot.
type fakeQueueRepo struct {
	items   []store.QueueItem
	nextSeq int64
	applied []store.QueueOutcome
}

func (f *fakeQueueRepo) Append(ctx context.Context, itemType string, payload json.RawMessage) (int64, error) {
	f.nextSeq++
	f.items = append(f.items, store.QueueItem{
		Seq:     f.nextSeq,
		Type:    itemType,
		Payload: payload,
	})
	return f.nextSeq, nil
}

func (f *fakeQueueRepo) List(ctx context.Context) ([]store.QueueItem, error) {
	out := make([]store.QueueItem, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeQueueRepo) Apply(ctx context.Context, out store.QueueOutcome) error {
	f.applied = append(f.applied, out)

	gone := make(map[int64]bool)
	for _, seq := range out.Delivered {
		gone[seq] = true
	}
	for _, seq := range out.Dropped {
		gone[seq] = true
	}

	kept := f.items[:0]
	for _, item := range f.items {
		if gone[item.Seq] {
			continue
		}
		if count, ok := out.Retried[item.Seq]; ok {
			item.RetryCount = count
		}
		kept = append(kept, item)
	}
	f.items = kept
	return nil
}

type fakeEventRepo struct {
	synced []store.SyncEventData
}

func (f *fakeEventRepo) AppendQuizAttempt(ctx context.Context, data store.QuizAttemptData) error {
	return nil
}

func (f *fakeEventRepo) AppendSync(ctx context.Context, data store.SyncEventData) error {
	f.synced = append(f.synced, data)
	return nil
}

func (f *fakeEventRepo) QueryQuizAttempts(ctx context.Context, opts store.QueryOpts) ([]store.QuizAttemptRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) QuerySyncEvents(ctx context.Context, opts store.QueryOpts) ([]store.SyncEventRecord, error) {
	return nil, nil
}

// fakeRemote records delivery calls in order and fails any call whose
// course ID has an entry in fail.
type fakeRemote struct {
	calls []string
	fail  map[string]error
}

func (f *fakeRemote) record(kind, courseID string) error {
	f.calls = append(f.calls, kind+":"+courseID)
	return f.fail[courseID]
}

func (f *fakeRemote) UpdateProgress(ctx context.Context, courseID string, chapterIndex, topicIndex int) error {
	return f.record("progress", courseID)
}

func (f *fakeRemote) SubmitQuizResult(ctx context.Context, courseID string, chapterIndex, topicIndex, correctCount, attemptedCount int, passed bool) error {
	return f.record("quiz", courseID)
}

func (f *fakeRemote) CompleteCourse(ctx context.Context, courseID string) error {
	return f.record("certificate", courseID)
}

type fixture struct {
	repo   *fakeQueueRepo
	events *fakeEventRepo
	remote *fakeRemote
	queue  *Queue
}

func newFixture(token string) *fixture {
	f := &fixture{
		repo:   &fakeQueueRepo{},
		events: &fakeEventRepo{},
		remote: &fakeRemote{fail: make(map[string]error)},
	}
	f.queue = New(f.repo, f.events, f.remote, staticTokens(token), DefaultConfig())
	return f
}

func TestEnqueueBuffersPayload(t *testing.T) {
	f := newFixture("tok")
	ctx := context.Background()

	err := f.queue.EnqueueProgress(ctx, ProgressPayload{CourseID: "crs-1", ChapterIndex: 1, TopicIndex: 2})
	require.NoError(t, err)

	require.Len(t, f.repo.items, 1)
	assert.Equal(t, store.ItemProgress, f.repo.items[0].Type)
	assert.JSONEq(t, `{"courseId":"crs-1","chapterIndex":1,"topicIndex":2}`, string(f.repo.items[0].Payload))

	// Enqueue leaves a pending kick for the runner.
	select {
	case <-f.queue.kick:
	default:
		t.Fatal("expected a pending kick after enqueue")
	}
}

func TestDrainDeliversInOrder(t *testing.T) {
	f := newFixture("tok")
	ctx := context.Background()

	require.NoError(t, f.queue.EnqueueProgress(ctx, ProgressPayload{CourseID: "a"}))
	require.NoError(t, f.queue.EnqueueQuiz(ctx, QuizPayload{CourseID: "b"}))
	require.NoError(t, f.queue.EnqueueCertificate(ctx, CertificatePayload{CourseID: "c"}))

	require.NoError(t, f.queue.Drain(ctx))

	assert.Equal(t, []string{"progress:a", "quiz:b", "certificate:c"}, f.remote.calls)
	assert.Empty(t, f.repo.items, "delivered items leave the queue")

	require.Len(t, f.events.synced, 3)
	for i, ev := range f.events.synced {
		assert.Equal(t, store.SyncDelivered, ev.Action, "event %d", i)
		assert.Equal(t, 1, ev.Attempts, "event %d", i)
	}
}

func TestDrainWithoutTokenIsNoOp(t *testing.T) {
	f := newFixture("")
	ctx := context.Background()

	require.NoError(t, f.queue.EnqueueProgress(ctx, ProgressPayload{CourseID: "a"}))
	require.NoError(t, f.queue.Drain(ctx))

	assert.Empty(t, f.remote.calls, "nothing leaves the device without a token")
	assert.Len(t, f.repo.items, 1, "items stay queued")
	assert.Empty(t, f.repo.applied, "no outcome committed")
}

func TestDrainStopsAtFirstFailure(t *testing.T) {
	f := newFixture("tok")
	ctx := context.Background()

	require.NoError(t, f.queue.EnqueueProgress(ctx, ProgressPayload{CourseID: "a"}))
	require.NoError(t, f.queue.EnqueueProgress(ctx, ProgressPayload{CourseID: "b"}))
	require.NoError(t, f.queue.EnqueueProgress(ctx, ProgressPayload{CourseID: "c"}))
	f.remote.fail["b"] = errors.New("boom")

	require.NoError(t, f.queue.Drain(ctx))

	// c is never attempted while b is unresolved.
	assert.Equal(t, []string{"progress:a", "progress:b"}, f.remote.calls)

	require.Len(t, f.repo.items, 2)
	assert.Equal(t, 1, f.repo.items[0].RetryCount, "failed item carries its retry count")
	assert.Equal(t, 0, f.repo.items[1].RetryCount, "unattempted item is untouched")

	// Only the success gets an event; the retry is not a terminal outcome.
	require.Len(t, f.events.synced, 1)
	assert.Equal(t, store.SyncDelivered, f.events.synced[0].Action)
}

func TestDrainRetriesUntilDelivered(t *testing.T) {
	f := newFixture("tok")
	ctx := context.Background()

	require.NoError(t, f.queue.EnqueueProgress(ctx, ProgressPayload{CourseID: "a"}))
	f.remote.fail["a"] = errors.New("boom")

	require.NoError(t, f.queue.Drain(ctx))
	require.NoError(t, f.queue.Drain(ctx))
	require.Len(t, f.repo.items, 1)
	assert.Equal(t, 2, f.repo.items[0].RetryCount)

	delete(f.remote.fail, "a")
	require.NoError(t, f.queue.Drain(ctx))

	assert.Empty(t, f.repo.items)
	require.Len(t, f.events.synced, 1)
	assert.Equal(t, store.SyncDelivered, f.events.synced[0].Action)
	assert.Equal(t, 3, f.events.synced[0].Attempts)
}

func TestDropAfterMaxAttempts(t *testing.T) {
	f := newFixture("tok")
	ctx := context.Background()

	require.NoError(t, f.queue.EnqueueProgress(ctx, ProgressPayload{CourseID: "a"}))
	require.NoError(t, f.queue.EnqueueProgress(ctx, ProgressPayload{CourseID: "b"}))
	f.remote.fail["a"] = errors.New("boom")

	// Four failing passes leave the item retried, not dropped.
	for i := 0; i < 4; i++ {
		require.NoError(t, f.queue.Drain(ctx))
	}
	require.Len(t, f.repo.items, 2)
	assert.Equal(t, 4, f.repo.items[0].RetryCount)
	assert.Empty(t, f.events.synced)

	// The fifth failure hits the ceiling: drop, dead-letter, move on.
	require.NoError(t, f.queue.Drain(ctx))

	assert.Empty(t, f.repo.items, "drop unblocks the item behind")
	assert.Contains(t, f.remote.calls, "progress:b")

	require.Len(t, f.events.synced, 2)
	drop := f.events.synced[0]
	assert.Equal(t, store.SyncDropped, drop.Action)
	assert.Equal(t, int64(1), drop.ItemSeq)
	assert.Equal(t, 5, drop.Attempts)
	assert.Contains(t, drop.LastError, "boom")
	assert.Equal(t, store.SyncDelivered, f.events.synced[1].Action)
}

func TestDrainSingleFlight(t *testing.T) {
	f := newFixture("tok")
	ctx := context.Background()

	require.NoError(t, f.queue.EnqueueProgress(ctx, ProgressPayload{CourseID: "a"}))

	f.queue.draining.Store(true)
	require.NoError(t, f.queue.Drain(ctx))
	assert.Empty(t, f.remote.calls, "concurrent drain is skipped, not queued")

	f.queue.draining.Store(false)
	require.NoError(t, f.queue.Drain(ctx))
	assert.Equal(t, []string{"progress:a"}, f.remote.calls)
}

func TestDrainEmptyQueue(t *testing.T) {
	f := newFixture("tok")
	require.NoError(t, f.queue.Drain(context.Background()))
	assert.Empty(t, f.repo.applied)
}

func TestDrainOutcomeIsOneUnit(t *testing.T) {
	f := newFixture("tok")
	ctx := context.Background()

	require.NoError(t, f.queue.EnqueueProgress(ctx, ProgressPayload{CourseID: "a"}))
	require.NoError(t, f.queue.EnqueueProgress(ctx, ProgressPayload{CourseID: "b"}))
	f.remote.fail["b"] = errors.New("boom")

	require.NoError(t, f.queue.Drain(ctx))

	// One Apply per pass carrying both the delivery and the retry.
	require.Len(t, f.repo.applied, 1)
	out := f.repo.applied[0]
	assert.Equal(t, []int64{1}, out.Delivered)
	assert.Equal(t, map[int64]int{2: 1}, out.Retried)
	assert.Empty(t, out.Dropped)
}

func TestKickCoalesces(t *testing.T) {
	f := newFixture("tok")
	f.queue.Kick()
	f.queue.Kick()
	f.queue.Kick()

	<-f.queue.kick
	select {
	case <-f.queue.kick:
		t.Fatal("kicks should coalesce into one pending signal")
	default:
	}
}

func TestDeliverUnknownType(t *testing.T) {
	f := newFixture("tok")
	err := f.queue.deliver(context.Background(), store.QueueItem{
		Seq: 1, Type: "mystery", Payload: json.RawMessage(`{}`),
	})
	require.Error(t, err)
	assert.Equal(t, fmt.Sprintf("unknown item type %q", "mystery"), err.Error())
}
