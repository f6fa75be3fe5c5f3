// Package unlock decides whether a topic is reachable for the learner.
// It is a pure function of the progress cursor and a target position;
// callers re-evaluate it against the latest cursor on every render.
package unlock

import "github.com/priyam/studytrail/internal/course"

// State is the access state of a single topic.
type State int

const (
	// Locked topics are ahead of the cursor and cannot be opened.
	Locked State = iota
	// Current is the topic the cursor points at: unlocked, not yet passed.
	Current
	// Completed topics are strictly behind the cursor.
	Completed
)

func (s State) String() string {
	switch s {
	case Current:
		return "current"
	case Completed:
		return "completed"
	default:
		return "locked"
	}
}

// Status returns the access state of the topic at (chapterIndex,
// topicIndex) given the learner's cursor. The three outcomes are
// mutually exclusive and exhaustive: everything strictly before the
// cursor is Completed, the cursor position itself is Current, and
// everything after is Locked.
func Status(cur course.Cursor, chapterIndex, topicIndex int) State {
	if chapterIndex < cur.ChapterIndex {
		return Completed
	}
	if chapterIndex == cur.ChapterIndex && topicIndex < cur.TopicIndex {
		return Completed
	}
	if chapterIndex == cur.ChapterIndex && topicIndex == cur.TopicIndex {
		return Current
	}
	return Locked
}
