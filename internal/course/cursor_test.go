package course

import "testing"

// twoByTwo is a course with 2 chapters of 2 topics each.
func twoByTwo() *Course {
	return &Course{
		ID: "c1",
		Chapters: []Chapter{
			{Title: "ch0", Topics: []Topic{{Title: "t0"}, {Title: "t1"}}},
			{Title: "ch1", Topics: []Topic{{Title: "t0"}, {Title: "t1"}}},
		},
	}
}

func TestNextCursor(t *testing.T) {
	c := twoByTwo()

	tests := []struct {
		name         string
		chapterIndex int
		topicIndex   int
		wantNext     Cursor
		wantComplete bool
	}{
		{"within chapter", 0, 0, Cursor{0, 1}, false},
		{"chapter boundary", 0, 1, Cursor{1, 0}, false},
		{"within last chapter", 1, 0, Cursor{1, 1}, false},
		{"last topic of last chapter", 1, 1, Cursor{2, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, complete := NextCursor(c, tt.chapterIndex, tt.topicIndex)
			if next != tt.wantNext || complete != tt.wantComplete {
				t.Errorf("NextCursor(%d, %d) = %v, %v; want %v, %v",
					tt.chapterIndex, tt.topicIndex, next, complete, tt.wantNext, tt.wantComplete)
			}
		})
	}
}

func TestNextCursorSingleTopicCourse(t *testing.T) {
	c := &Course{
		ID:       "c1",
		Chapters: []Chapter{{Title: "only", Topics: []Topic{{Title: "t0"}}}},
	}
	next, complete := NextCursor(c, 0, 0)
	if !complete {
		t.Error("expected single-topic course to complete after its only topic")
	}
	if next != (Cursor{1, 0}) {
		t.Errorf("next = %v, want {1 0}", next)
	}
}

func TestCursorLess(t *testing.T) {
	tests := []struct {
		a, b Cursor
		want bool
	}{
		{Cursor{0, 0}, Cursor{0, 1}, true},
		{Cursor{0, 5}, Cursor{1, 0}, true},
		{Cursor{1, 0}, Cursor{0, 5}, false},
		{Cursor{1, 1}, Cursor{1, 1}, false},
	}
	for _, tt := range tests {
		if got := tt.a.Less(tt.b); got != tt.want {
			t.Errorf("%v.Less(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestTopicAt(t *testing.T) {
	c := twoByTwo()

	if _, ok := TopicAt(c, 1, 1); !ok {
		t.Error("expected topic at 1,1")
	}
	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if _, ok := TopicAt(c, pos[0], pos[1]); ok {
			t.Errorf("expected no topic at %v", pos)
		}
	}
	if _, ok := TopicAt(nil, 0, 0); ok {
		t.Error("expected no topic for nil course")
	}
}
