package syncq

// ProgressPayload is the body of a queued progress update. Whole-cursor
// replacement, not a delta, so redelivery is harmless.
type ProgressPayload struct {
	CourseID     string `json:"courseId"`
	ChapterIndex int    `json:"chapterIndex"`
	TopicIndex   int    `json:"topicIndex"`
}

// QuizPayload is the body of a queued quiz attempt record.
type QuizPayload struct {
	CourseID       string `json:"courseId"`
	ChapterIndex   int    `json:"chapterIndex"`
	TopicIndex     int    `json:"topicIndex"`
	CorrectCount   int    `json:"correctCount"`
	AttemptedCount int    `json:"attemptedCount"`
	Passed         bool   `json:"passed"`
}

// CertificatePayload is the body of a queued course completion.
type CertificatePayload struct {
	CourseID string `json:"courseId"`
}
