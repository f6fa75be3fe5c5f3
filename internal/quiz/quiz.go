// Package quiz scores a learner's pass through a topic quiz.
// Questions are answered one at a time with no revisiting; the running
// tally decides pass or fail against a fixed threshold once the final
// question is in.
package quiz

import (
	"errors"

	"github.com/google/uuid"

	"github.com/priyam/studytrail/internal/course"
)

// PassThreshold is the fraction of correct answers required to pass.
// Not configurable.
const PassThreshold = 0.70

// ErrNoQuestions is returned when a topic's quiz has no questions.
// Callers surface this as "no quiz available" rather than crashing.
var ErrNoQuestions = errors.New("quiz has no questions")

// Result is the outcome of a finished attempt. It is an audit record:
// every attempt produces one, pass or fail.
type Result struct {
	AttemptID      string
	CorrectCount   int
	AttemptedCount int
	Passed         bool
}

// Attempt tracks a single in-flight pass through a quiz.
type Attempt struct {
	id        string
	questions []course.Question
	index     int
	correct   int
}

// NewAttempt starts an attempt over the given quiz.
func NewAttempt(q course.Quiz) (*Attempt, error) {
	if len(q.Questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Attempt{
		id:        uuid.New().String(),
		questions: q.Questions,
	}, nil
}

// ID returns the attempt's unique identifier.
func (a *Attempt) ID() string { return a.id }

// Current returns the question awaiting an answer, or nil once the
// attempt is finished.
func (a *Attempt) Current() *course.Question {
	if a.index >= len(a.questions) {
		return nil
	}
	return &a.questions[a.index]
}

// Answer records the selected option for the current question and moves
// on. It reports whether the answer was correct and whether the attempt
// is now finished. Answers after the final question are ignored.
func (a *Attempt) Answer(selected int) (correct, done bool) {
	q := a.Current()
	if q == nil {
		return false, true
	}
	correct = selected == q.CorrectOptionIndex
	if correct {
		a.correct++
	}
	a.index++
	return correct, a.index >= len(a.questions)
}

// Done reports whether every question has been answered.
func (a *Attempt) Done() bool {
	return a.index >= len(a.questions)
}

// Result computes the final score. Valid once Done reports true;
// calling it earlier scores only the questions answered so far.
func (a *Attempt) Result() Result {
	attempted := len(a.questions)
	return Result{
		AttemptID:      a.id,
		CorrectCount:   a.correct,
		AttemptedCount: attempted,
		Passed:         float64(a.correct)/float64(attempted) >= PassThreshold,
	}
}
