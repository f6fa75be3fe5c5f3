package unlock

import (
	"testing"

	"github.com/priyam/studytrail/internal/course"
)

func TestStatus(t *testing.T) {
	cur := course.Cursor{ChapterIndex: 1, TopicIndex: 2}

	tests := []struct {
		name         string
		chapterIndex int
		topicIndex   int
		want         State
	}{
		{"earlier chapter", 0, 5, Completed},
		{"same chapter earlier topic", 1, 1, Completed},
		{"cursor position", 1, 2, Current},
		{"same chapter later topic", 1, 3, Locked},
		{"later chapter", 2, 0, Locked},
		{"later chapter even at topic zero", 3, 0, Locked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Status(cur, tt.chapterIndex, tt.topicIndex)
			if got != tt.want {
				t.Errorf("Status(%v, %d, %d) = %v, want %v",
					cur, tt.chapterIndex, tt.topicIndex, got, tt.want)
			}
		})
	}
}

func TestStatusZeroCursor(t *testing.T) {
	cur := course.Cursor{}

	if got := Status(cur, 0, 0); got != Current {
		t.Errorf("fresh course: Status(0,0) = %v, want Current", got)
	}
	if got := Status(cur, 0, 1); got != Locked {
		t.Errorf("fresh course: Status(0,1) = %v, want Locked", got)
	}
}

// The three outcomes must be mutually exclusive and exhaustive: every
// position gets exactly one state, and Completed is never Locked.
func TestStatusExhaustive(t *testing.T) {
	for cc := 0; cc < 4; cc++ {
		for ct := 0; ct < 4; ct++ {
			cur := course.Cursor{ChapterIndex: cc, TopicIndex: ct}
			for ci := 0; ci < 4; ci++ {
				for ti := 0; ti < 4; ti++ {
					got := Status(cur, ci, ti)
					if got != Locked && got != Current && got != Completed {
						t.Fatalf("Status(%v, %d, %d) = %v: not a defined state", cur, ci, ti, got)
					}

					// Exactly one state per position: derive the
					// expected one independently.
					var want State
					switch {
					case ci < cc || (ci == cc && ti < ct):
						want = Completed
					case ci == cc && ti == ct:
						want = Current
					default:
						want = Locked
					}
					if got != want {
						t.Fatalf("Status(%v, %d, %d) = %v, want %v", cur, ci, ti, got, want)
					}
				}
			}
		}
	}
}

func TestStateString(t *testing.T) {
	if Locked.String() != "locked" || Current.String() != "current" || Completed.String() != "completed" {
		t.Errorf("unexpected State strings: %q %q %q", Locked, Current, Completed)
	}
}
