package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/priyam/studytrail/internal/course"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testCourse(id string) *course.Course {
	return &course.Course{
		ID:    id,
		Title: "Test Course",
		Chapters: []course.Chapter{
			{Title: "ch0", Topics: []course.Topic{
				{Title: "t0", Content: "body", Quiz: course.Quiz{
					Questions: []course.Question{
						{Text: "q", Options: []string{"a", "b"}, CorrectOptionIndex: 1},
					},
				}},
			}},
		},
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestCourseSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.CourseRepo()
	ctx := context.Background()

	// Never cached.
	c, err := repo.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if c != nil {
		t.Fatal("expected nil course when none cached")
	}

	if err := repo.Save(ctx, testCourse("crs-1")); err != nil {
		t.Fatalf("save: %v", err)
	}

	c, err = repo.Get(ctx, "crs-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if c == nil {
		t.Fatal("expected cached course")
	}
	if c.ID != "crs-1" || c.Title != "Test Course" {
		t.Errorf("course = %q/%q, want crs-1/Test Course", c.ID, c.Title)
	}
	if len(c.Chapters) != 1 || len(c.Chapters[0].Topics) != 1 {
		t.Fatalf("unexpected tree shape: %+v", c)
	}
	q := c.Chapters[0].Topics[0].Quiz
	if len(q.Questions) != 1 || q.Questions[0].CorrectOptionIndex != 1 {
		t.Errorf("quiz did not round-trip: %+v", q)
	}
}

func TestCourseSaveReplaces(t *testing.T) {
	s := openTestStore(t)
	repo := s.CourseRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, testCourse("crs-1")); err != nil {
		t.Fatalf("save: %v", err)
	}

	updated := testCourse("crs-1")
	updated.Title = "Revised"
	if err := repo.Save(ctx, updated); err != nil {
		t.Fatalf("save again: %v", err)
	}

	c, err := repo.Get(ctx, "crs-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if c.Title != "Revised" {
		t.Errorf("title = %q, want Revised", c.Title)
	}

	count, err := s.Client().CourseSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("snapshots = %d, want 1 (replace, not append)", count)
	}
}

func TestProgressSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	cur, err := repo.Get(ctx, "crs-1")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if cur != nil {
		t.Fatal("expected nil cursor when none saved")
	}

	if err := repo.Save(ctx, "crs-1", course.Cursor{ChapterIndex: 1, TopicIndex: 2}); err != nil {
		t.Fatalf("save: %v", err)
	}
	// Upsert, not insert.
	if err := repo.Save(ctx, "crs-1", course.Cursor{ChapterIndex: 2, TopicIndex: 0}); err != nil {
		t.Fatalf("save again: %v", err)
	}

	cur, err = repo.Get(ctx, "crs-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if cur == nil || *cur != (course.Cursor{ChapterIndex: 2, TopicIndex: 0}) {
		t.Errorf("cursor = %v, want {2 0}", cur)
	}

	// Other courses are unaffected.
	other, err := repo.Get(ctx, "crs-2")
	if err != nil {
		t.Fatalf("get other: %v", err)
	}
	if other != nil {
		t.Error("expected nil cursor for untouched course")
	}
}

func TestCertificateIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.CertificateRepo()
	ctx := context.Background()

	issued, err := repo.Issued(ctx, "crs-1")
	if err != nil {
		t.Fatalf("issued (empty): %v", err)
	}
	if issued {
		t.Fatal("expected no certificate before marking")
	}

	if err := repo.MarkIssued(ctx, "crs-1"); err != nil {
		t.Fatalf("mark: %v", err)
	}
	if err := repo.MarkIssued(ctx, "crs-1"); err != nil {
		t.Fatalf("mark again: %v", err)
	}

	issued, err = repo.Issued(ctx, "crs-1")
	if err != nil {
		t.Fatalf("issued: %v", err)
	}
	if !issued {
		t.Error("expected certificate after marking")
	}

	count, err := s.Client().Certificate.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("certificates = %d, want 1", count)
	}
}

func TestQueueAppendListOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.QueueRepo()
	ctx := context.Background()

	var seqs []int64
	for _, typ := range []string{ItemProgress, ItemQuiz, ItemCertificate} {
		seq, err := repo.Append(ctx, typ, json.RawMessage(`{}`))
		if err != nil {
			t.Fatalf("append %s: %v", typ, err)
		}
		seqs = append(seqs, seq)
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}
	for i, item := range items {
		if item.Seq != seqs[i] {
			t.Errorf("item[%d].Seq = %d, want %d (seq order)", i, item.Seq, seqs[i])
		}
		if item.RetryCount != 0 {
			t.Errorf("item[%d].RetryCount = %d, want 0", i, item.RetryCount)
		}
	}
	if items[0].Type != ItemProgress || items[2].Type != ItemCertificate {
		t.Errorf("unexpected item types: %q %q %q", items[0].Type, items[1].Type, items[2].Type)
	}
}

func TestQueueApply(t *testing.T) {
	s := openTestStore(t)
	repo := s.QueueRepo()
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 4; i++ {
		seq, err := repo.Append(ctx, ItemProgress, json.RawMessage(`{}`))
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// First delivered, second dropped, third retried, fourth untouched.
	err := repo.Apply(ctx, QueueOutcome{
		Delivered: []int64{seqs[0]},
		Dropped:   []int64{seqs[1]},
		Retried:   map[int64]int{seqs[2]: 3},
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	if items[0].Seq != seqs[2] || items[0].RetryCount != 3 {
		t.Errorf("retried item = seq %d retry %d, want seq %d retry 3",
			items[0].Seq, items[0].RetryCount, seqs[2])
	}
	if items[1].Seq != seqs[3] || items[1].RetryCount != 0 {
		t.Errorf("untouched item = seq %d retry %d, want seq %d retry 0",
			items[1].Seq, items[1].RetryCount, seqs[3])
	}
}

func TestQueueApplyEmptyOutcome(t *testing.T) {
	s := openTestStore(t)
	repo := s.QueueRepo()
	ctx := context.Background()

	if err := repo.Apply(ctx, QueueOutcome{}); err != nil {
		t.Fatalf("apply empty outcome: %v", err)
	}
}

func TestSettings(t *testing.T) {
	s := openTestStore(t)
	repo := s.SettingRepo()
	ctx := context.Background()

	v, err := repo.Get(ctx, TokenKey)
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if v != "" {
		t.Fatalf("unset key = %q, want empty", v)
	}

	if err := repo.Set(ctx, TokenKey, "tok-1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Set(ctx, TokenKey, "tok-2"); err != nil {
		t.Fatalf("set again: %v", err)
	}

	v, err = repo.Get(ctx, TokenKey)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v != "tok-2" {
		t.Errorf("value = %q, want tok-2", v)
	}

	if err := repo.Delete(ctx, TokenKey); err != nil {
		t.Fatalf("delete: %v", err)
	}
	v, err = repo.Get(ctx, TokenKey)
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if v != "" {
		t.Errorf("deleted key = %q, want empty", v)
	}

	// Deleting an absent key is fine.
	if err := repo.Delete(ctx, "never-set"); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
}

func TestQuizAttemptEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, courseID := range []string{"crs-1", "crs-2", "crs-1"} {
		err := repo.AppendQuizAttempt(ctx, QuizAttemptData{
			AttemptID:      "att-" + courseID,
			CourseID:       courseID,
			ChapterIndex:   i,
			TopicIndex:     0,
			CorrectCount:   7,
			AttemptedCount: 10,
			Passed:         true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	// Newest first.
	all, err := repo.QueryQuizAttempts(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("attempts = %d, want 3", len(all))
	}
	if all[0].ChapterIndex != 2 {
		t.Errorf("first record chapter = %d, want 2 (newest first)", all[0].ChapterIndex)
	}

	// Course filter.
	filtered, err := repo.QueryQuizAttempts(ctx, QueryOpts{CourseID: "crs-2"})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].CourseID != "crs-2" {
		t.Errorf("filtered = %+v, want one crs-2 record", filtered)
	}

	// Limit.
	limited, err := repo.QueryQuizAttempts(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limited = %d records, want 2", len(limited))
	}
}

func TestSyncEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSync(ctx, SyncEventData{
		ItemSeq: 1, ItemType: ItemProgress, Action: SyncDelivered, Attempts: 1,
	})
	if err != nil {
		t.Fatalf("append delivered: %v", err)
	}
	err = repo.AppendSync(ctx, SyncEventData{
		ItemSeq: 2, ItemType: ItemQuiz, Action: SyncDropped, Attempts: 5,
		LastError: "post quiz result: 500",
	})
	if err != nil {
		t.Fatalf("append dropped: %v", err)
	}

	dropped, err := repo.QuerySyncEvents(ctx, QueryOpts{Action: SyncDropped})
	if err != nil {
		t.Fatalf("query dropped: %v", err)
	}
	if len(dropped) != 1 {
		t.Fatalf("dropped = %d, want 1", len(dropped))
	}
	if dropped[0].ItemSeq != 2 || dropped[0].Attempts != 5 || dropped[0].LastError == "" {
		t.Errorf("dropped record = %+v", dropped[0])
	}

	all, err := repo.QuerySyncEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("events = %d, want 2", len(all))
	}
	if all[0].Action != SyncDropped {
		t.Errorf("first record action = %q, want newest first", all[0].Action)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestSequenceSharedAcrossRepos(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	seq1, err := s.QueueRepo().Append(ctx, ItemProgress, json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.EventRepo().AppendSync(ctx, SyncEventData{
		ItemSeq: seq1, ItemType: ItemProgress, Action: SyncDelivered, Attempts: 1,
	}); err != nil {
		t.Fatalf("append sync: %v", err)
	}
	seq2, err := s.QueueRepo().Append(ctx, ItemQuiz, json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("append 2: %v", err)
	}

	// The sync event consumed a number between the two queue items.
	if seq2 != seq1+2 {
		t.Errorf("second queue seq = %d, want %d (one number spent on the event)", seq2, seq1+2)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{
		"course_snapshots", "progress_records", "certificates",
		"sync_items", "settings", "quiz_attempt_events", "sync_events",
	} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}
