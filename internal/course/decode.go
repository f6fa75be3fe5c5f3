package course

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Decode validates raw course JSON against the course schema and
// unmarshals it. It is the single entry point for untrusted course
// payloads; a *Course that came through Decode is well-formed.
func Decode(raw []byte) (*Course, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid course JSON: %w", err)
	}

	sch, err := schema()
	if err != nil {
		return nil, fmt.Errorf("compile course schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return nil, fmt.Errorf("course schema validation: %w", err)
	}

	var c Course
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("unmarshal course: %w", err)
	}

	// correctOptionIndex bounds can't be expressed relative to the
	// options array in the schema itself.
	for ci, ch := range c.Chapters {
		for ti, tp := range ch.Topics {
			for qi, q := range tp.Quiz.Questions {
				if q.CorrectOptionIndex >= len(q.Options) {
					return nil, fmt.Errorf(
						"course %s: chapter %d topic %d question %d: correctOptionIndex %d out of range (%d options)",
						c.ID, ci, ti, qi, q.CorrectOptionIndex, len(q.Options))
				}
			}
		}
	}

	return &c, nil
}

// schema returns the compiled course schema, compiling it once.
func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any),
		// not raw bytes. Marshal then unmarshal to normalize.
		b, err := json.Marshal(courseSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(b, &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://course.json"
		if err := c.AddResource(url, def); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}
