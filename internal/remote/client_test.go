package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyam/studytrail/internal/course"
)

// staticTokens is a TokenSource with a fixed token.
type staticTokens string

func (s staticTokens) Token(ctx context.Context) (string, error) {
	return string(s), nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL}, staticTokens(token))
}

const courseBody = `{
	"_id": "crs-1",
	"title": "Go Basics",
	"chapters": [
		{"title": "ch", "topics": [
			{"title": "t", "content": "x", "quiz": {"questions": [
				{"text": "q", "options": ["a", "b"], "correctOptionIndex": 0}
			]}}
		]}
	]
}`

func TestFetchCourse(t *testing.T) {
	var gotPath, gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(courseBody))
	}, "tok")

	crs, err := c.FetchCourse(context.Background(), "crs-1")
	require.NoError(t, err)
	assert.Equal(t, "/content/crs-1", gotPath)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "crs-1", crs.ID)
	assert.Len(t, crs.Chapters, 1)
}

func TestFetchCourseRejectsMalformedTree(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"_id": "crs-1"}`))
	}, "tok")

	_, err := c.FetchCourse(context.Background(), "crs-1")
	require.Error(t, err)
}

func TestFetchProgress(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/progress/crs-1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"progress": map[string]int{"chapterIndex": 1, "topicIndex": 2},
		})
	}, "tok")

	cur, err := c.FetchProgress(context.Background(), "crs-1")
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, course.Cursor{ChapterIndex: 1, TopicIndex: 2}, *cur)
}

func TestFetchProgressAbsent(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"404", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}},
		{"no progress field", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}},
		{"null progress", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"progress": null}`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.handler, "tok")
			cur, err := c.FetchProgress(context.Background(), "crs-1")
			require.NoError(t, err)
			assert.Nil(t, cur)
		})
	}
}

func TestFetchProgressServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, "tok")

	_, err := c.FetchProgress(context.Background(), "crs-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestUpdateProgressBody(t *testing.T) {
	var gotPath string
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}, "tok")

	err := c.UpdateProgress(context.Background(), "crs-1", 2, 3)
	require.NoError(t, err)
	assert.Equal(t, "/progress/update", gotPath)
	assert.Equal(t, map[string]any{
		"courseId":     "crs-1",
		"chapterIndex": float64(2),
		"topicIndex":   float64(3),
	}, got)
}

func TestSubmitQuizResultBody(t *testing.T) {
	var gotPath string
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}, "tok")

	err := c.SubmitQuizResult(context.Background(), "crs-1", 0, 1, 7, 10, true)
	require.NoError(t, err)
	assert.Equal(t, "/topic-progress/quiz/submit", gotPath)
	assert.Equal(t, map[string]any{
		"courseId":       "crs-1",
		"chapterIndex":   float64(0),
		"topicIndex":     float64(1),
		"correctCount":   float64(7),
		"attemptedCount": float64(10),
		"passed":         true,
	}, got)
}

func TestCompleteCourseBody(t *testing.T) {
	var gotPath string
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}, "tok")

	err := c.CompleteCourse(context.Background(), "crs-1")
	require.NoError(t, err)
	assert.Equal(t, "/course/complete", gotPath)
	assert.Equal(t, map[string]any{"courseId": "crs-1"}, got)
}

func TestNoToken(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	}, "")

	_, err := c.FetchProgress(context.Background(), "crs-1")
	require.ErrorIs(t, err, ErrNoToken)
	assert.False(t, called, "no request should leave the device without a token")

	err = c.UpdateProgress(context.Background(), "crs-1", 0, 0)
	require.ErrorIs(t, err, ErrNoToken)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("STUDYTRAIL_API_BASE", "http://localhost:9999")
	cfg := ConfigFromEnv()
	assert.Equal(t, "http://localhost:9999", cfg.BaseURL)

	t.Setenv("STUDYTRAIL_API_BASE", "")
	cfg = ConfigFromEnv()
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
}
