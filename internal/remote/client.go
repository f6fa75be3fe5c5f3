// Package remote is the thin HTTP contract with the remote progress
// authority. Every call is a single bearer-token-authenticated
// request/response; retries and fallbacks are the caller's business:
// the sync queue retries mutations, the progress store falls back to
// its local cache on failed reads.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/priyam/studytrail/internal/course"
)

// ErrNoToken is returned when no bearer token is available. The learner
// has not authenticated yet; callers treat this like any other failed
// call rather than a fatal condition.
var ErrNoToken = errors.New("no access token")

// TokenSource supplies the bearer token for the remote authority.
// An empty token with a nil error means "not authenticated".
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client talks to the remote progress authority.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// New creates a Client. No timeouts are configured; a call resolves or
// fails according to the transport's own defaults.
func New(cfg Config, tokens TokenSource) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    httpClient,
		tokens:  tokens,
	}
}

// FetchCourse retrieves and validates the full course tree.
func (c *Client) FetchCourse(ctx context.Context, courseID string) (*course.Course, error) {
	body, err := c.get(ctx, "/content/"+courseID)
	if err != nil {
		return nil, err
	}
	crs, err := course.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("fetch course %s: %w", courseID, err)
	}
	return crs, nil
}

// FetchProgress retrieves the server-side cursor for a course.
// Returns (nil, nil) when the server has no progress recorded.
func (c *Client) FetchProgress(ctx context.Context, courseID string) (*course.Cursor, error) {
	body, err := c.get(ctx, "/progress/"+courseID)
	if err != nil {
		var se *statusError
		if errors.As(err, &se) && se.code == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}

	var resp struct {
		Progress *course.Cursor `json:"progress"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parse progress response: %w", err)
	}
	return resp.Progress, nil
}

// UpdateProgress replaces the server-side cursor for a course. Whole-
// cursor replacement makes redelivery idempotent: a later write
// naturally supersedes an earlier one.
func (c *Client) UpdateProgress(ctx context.Context, courseID string, chapterIndex, topicIndex int) error {
	return c.post(ctx, "/progress/update", map[string]any{
		"courseId":     courseID,
		"chapterIndex": chapterIndex,
		"topicIndex":   topicIndex,
	})
}

// SubmitQuizResult records a quiz attempt server-side. This is an audit
// record, sent for every attempt whether or not it passed.
func (c *Client) SubmitQuizResult(ctx context.Context, courseID string, chapterIndex, topicIndex, correctCount, attemptedCount int, passed bool) error {
	return c.post(ctx, "/topic-progress/quiz/submit", map[string]any{
		"courseId":       courseID,
		"chapterIndex":   chapterIndex,
		"topicIndex":     topicIndex,
		"correctCount":   correctCount,
		"attemptedCount": attemptedCount,
		"passed":         passed,
	})
}

// CompleteCourse marks the course completed server-side.
func (c *Client) CompleteCourse(ctx context.Context, courseID string) error {
	return c.post(ctx, "/course/complete", map[string]any{
		"courseId": courseID,
	})
}

// statusError reports a non-2xx response.
type statusError struct {
	code int
	url  string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.code, e.url)
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *Client) post(ctx context.Context, path string, body map[string]any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	_, err = c.do(req)
	return err
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	token, err := c.tokens.Token(req.Context())
	if err != nil {
		return nil, fmt.Errorf("read token: %w", err)
	}
	if token == "" {
		return nil, ErrNoToken
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &statusError{code: resp.StatusCode, url: req.URL.String()}
	}

	return io.ReadAll(resp.Body)
}
