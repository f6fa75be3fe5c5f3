package course

import (
	"strings"
	"testing"
)

const validCourseJSON = `{
	"_id": "crs-1",
	"title": "Networking Basics",
	"description": "From cables to packets",
	"chapters": [
		{
			"title": "Physical Layer",
			"topics": [
				{
					"title": "Cables",
					"content": "Copper and fiber.",
					"quiz": {
						"questions": [
							{"text": "Which is faster?", "options": ["fiber", "copper"], "correctOptionIndex": 0}
						]
					}
				}
			]
		}
	]
}`

func TestDecodeValid(t *testing.T) {
	c, err := Decode([]byte(validCourseJSON))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if c.ID != "crs-1" {
		t.Errorf("id = %q, want crs-1", c.ID)
	}
	if len(c.Chapters) != 1 || len(c.Chapters[0].Topics) != 1 {
		t.Fatalf("unexpected tree shape: %+v", c)
	}
	q := c.Chapters[0].Topics[0].Quiz
	if len(q.Questions) != 1 || q.Questions[0].CorrectOptionIndex != 0 {
		t.Errorf("unexpected quiz: %+v", q)
	}
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"not JSON", `{`},
		{"missing id", `{"title": "x", "chapters": []}`},
		{"missing chapters", `{"_id": "c1", "title": "x"}`},
		{"chapter without topics", `{"_id": "c1", "chapters": [{"title": "a"}]}`},
		{"topic without quiz", `{"_id": "c1", "chapters": [{"title": "a", "topics": [{"title": "t", "content": ""}]}]}`},
		{"question with one option", `{"_id": "c1", "chapters": [{"title": "a", "topics": [{"title": "t", "quiz": {"questions": [{"text": "q", "options": ["only"], "correctOptionIndex": 0}]}}]}]}`},
		{"negative correct index", `{"_id": "c1", "chapters": [{"title": "a", "topics": [{"title": "t", "quiz": {"questions": [{"text": "q", "options": ["a", "b"], "correctOptionIndex": -1}]}}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.json)); err == nil {
				t.Errorf("expected decode error")
			}
		})
	}
}

func TestDecodeRejectsOutOfRangeCorrectIndex(t *testing.T) {
	bad := strings.Replace(validCourseJSON, `"correctOptionIndex": 0`, `"correctOptionIndex": 5`, 1)
	_, err := Decode([]byte(bad))
	if err == nil {
		t.Fatal("expected error for correctOptionIndex past the options")
	}
	if !strings.Contains(err.Error(), "out of range") {
		t.Errorf("error = %v, want out-of-range mention", err)
	}
}

func TestDecodeAllowsEmptyQuiz(t *testing.T) {
	// An empty question list is valid course shape; the quiz evaluator
	// surfaces it as "no quiz available" at attempt time.
	empty := `{"_id": "c1", "chapters": [{"title": "a", "topics": [{"title": "t", "quiz": {"questions": []}}]}]}`
	c, err := Decode([]byte(empty))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if n := len(c.Chapters[0].Topics[0].Quiz.Questions); n != 0 {
		t.Errorf("questions = %d, want 0", n)
	}
}
