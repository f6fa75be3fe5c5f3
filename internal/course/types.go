package course

// Course is an immutable snapshot of a generated course tree.
// A newer fetch fully replaces any cached copy; there is no merging.
type Course struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Chapters    []Chapter `json:"chapters"`
}

// Chapter is an ordered group of topics.
type Chapter struct {
	Title  string  `json:"title"`
	Topics []Topic `json:"topics"`
}

// Topic holds the learning content and the quiz that gates advancement.
type Topic struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Quiz    Quiz   `json:"quiz"`
}

// Quiz is an ordered list of multiple-choice questions.
type Quiz struct {
	Questions []Question `json:"questions"`
}

// Question is a single multiple-choice question.
type Question struct {
	Text               string   `json:"text"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correctOptionIndex"`
}

// TopicAt returns the topic at the given position, or false if either
// index is out of range for this course.
func TopicAt(c *Course, chapterIndex, topicIndex int) (*Topic, bool) {
	if c == nil || chapterIndex < 0 || chapterIndex >= len(c.Chapters) {
		return nil, false
	}
	ch := &c.Chapters[chapterIndex]
	if topicIndex < 0 || topicIndex >= len(ch.Topics) {
		return nil, false
	}
	return &ch.Topics[topicIndex], true
}
