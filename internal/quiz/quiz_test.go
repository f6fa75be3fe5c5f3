package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyam/studytrail/internal/course"
)

// quizOf builds a quiz with n questions whose correct option is always 0.
func quizOf(n int) course.Quiz {
	q := course.Quiz{}
	for i := 0; i < n; i++ {
		q.Questions = append(q.Questions, course.Question{
			Text:               "q",
			Options:            []string{"right", "wrong"},
			CorrectOptionIndex: 0,
		})
	}
	return q
}

// answerAll answers the first `right` questions correctly and the rest
// wrong, returning the final result.
func answerAll(t *testing.T, a *Attempt, total, right int) Result {
	t.Helper()
	for i := 0; i < total; i++ {
		selected := 1
		if i < right {
			selected = 0
		}
		correct, done := a.Answer(selected)
		assert.Equal(t, i < right, correct, "question %d correctness", i)
		assert.Equal(t, i == total-1, done, "question %d done flag", i)
	}
	return a.Result()
}

func TestEmptyQuiz(t *testing.T) {
	_, err := NewAttempt(course.Quiz{})
	require.ErrorIs(t, err, ErrNoQuestions)
}

func TestPassThresholdBoundary(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		right      int
		wantPassed bool
	}{
		{"7 of 10 passes", 10, 7, true},
		{"6 of 10 fails", 10, 6, false},
		{"all correct passes", 3, 3, true},
		{"all wrong fails", 3, 0, false},
		{"7 of 10 is the floor", 10, 8, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAttempt(quizOf(tt.total))
			require.NoError(t, err)

			res := answerAll(t, a, tt.total, tt.right)
			assert.Equal(t, tt.right, res.CorrectCount)
			assert.Equal(t, tt.total, res.AttemptedCount)
			assert.Equal(t, tt.wantPassed, res.Passed)
		})
	}
}

func TestOneQuestionAtATime(t *testing.T) {
	a, err := NewAttempt(quizOf(2))
	require.NoError(t, err)

	require.NotNil(t, a.Current())
	assert.False(t, a.Done())

	_, done := a.Answer(0)
	assert.False(t, done)

	_, done = a.Answer(1)
	assert.True(t, done)
	assert.True(t, a.Done())
	assert.Nil(t, a.Current())

	// Answers after the final question are ignored.
	correct, done := a.Answer(0)
	assert.False(t, correct)
	assert.True(t, done)
	assert.Equal(t, 1, a.Result().CorrectCount)
}

func TestAttemptIDsAreUnique(t *testing.T) {
	a, err := NewAttempt(quizOf(1))
	require.NoError(t, err)
	b, err := NewAttempt(quizOf(1))
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, a.ID(), a.Result().AttemptID)
}
