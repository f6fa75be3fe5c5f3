package course

// Cursor marks the learner's furthest-unlocked position in a course.
// Both indexes are zero-based and point at the next unlocked,
// not-yet-completed topic. The pair only ever advances: a passed quiz
// moves it forward, nothing moves it back.
type Cursor struct {
	ChapterIndex int `json:"chapterIndex"`
	TopicIndex   int `json:"topicIndex"`
}

// Less reports whether c is lexicographically before other
// (chapter index first, then topic index).
func (c Cursor) Less(other Cursor) bool {
	if c.ChapterIndex != other.ChapterIndex {
		return c.ChapterIndex < other.ChapterIndex
	}
	return c.TopicIndex < other.TopicIndex
}

// NextCursor computes the position after the topic at (chapterIndex,
// topicIndex): the next topic in the chapter, or the first topic of the
// next chapter when the current one is exhausted. complete is true when
// the advanced position runs past the last chapter, i.e. the last topic
// of the last chapter was just finished.
func NextCursor(c *Course, chapterIndex, topicIndex int) (next Cursor, complete bool) {
	next = Cursor{ChapterIndex: chapterIndex, TopicIndex: topicIndex + 1}
	if chapterIndex >= 0 && chapterIndex < len(c.Chapters) {
		if next.TopicIndex < len(c.Chapters[chapterIndex].Topics) {
			return next, false
		}
	}
	next = Cursor{ChapterIndex: chapterIndex + 1, TopicIndex: 0}
	return next, next.ChapterIndex >= len(c.Chapters)
}
