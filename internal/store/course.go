package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/priyam/studytrail/ent"
	"github.com/priyam/studytrail/ent/coursesnapshot"
	"github.com/priyam/studytrail/internal/course"
)

// courseRepo implements CourseRepo using the ent client.
type courseRepo struct {
	client *ent.Client
}

func (r *courseRepo) Save(ctx context.Context, c *course.Course) error {
	dataMap, err := courseToMap(c)
	if err != nil {
		return fmt.Errorf("marshal course: %w", err)
	}

	existing, err := r.client.CourseSnapshot.Query().
		Where(coursesnapshot.CourseID(c.ID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query course snapshot: %w", err)
	}

	if existing != nil {
		_, err = r.client.CourseSnapshot.UpdateOne(existing).
			SetTitle(c.Title).
			SetData(dataMap).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("replace course snapshot: %w", err)
		}
		return nil
	}

	_, err = r.client.CourseSnapshot.Create().
		SetCourseID(c.ID).
		SetTitle(c.Title).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save course snapshot: %w", err)
	}
	return nil
}

func (r *courseRepo) Get(ctx context.Context, courseID string) (*course.Course, error) {
	cs, err := r.client.CourseSnapshot.Query().
		Where(coursesnapshot.CourseID(courseID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query course snapshot: %w", err)
	}
	return mapToCourse(cs.Data)
}

// courseToMap converts a course tree to map[string]any for ent JSON storage.
func courseToMap(c *course.Course) (map[string]any, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// mapToCourse converts stored snapshot data back to a course tree.
func mapToCourse(m map[string]any) (*course.Course, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot data: %w", err)
	}
	var c course.Course
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("unmarshal course: %w", err)
	}
	return &c, nil
}
