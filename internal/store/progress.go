package store

import (
	"context"
	"fmt"

	"github.com/priyam/studytrail/ent"
	"github.com/priyam/studytrail/ent/progressrecord"
	"github.com/priyam/studytrail/internal/course"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Save(ctx context.Context, courseID string, cur course.Cursor) error {
	existing, err := r.client.ProgressRecord.Query().
		Where(progressrecord.CourseID(courseID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query progress: %w", err)
	}

	if existing != nil {
		_, err = r.client.ProgressRecord.UpdateOne(existing).
			SetChapterIndex(cur.ChapterIndex).
			SetTopicIndex(cur.TopicIndex).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update progress: %w", err)
		}
		return nil
	}

	_, err = r.client.ProgressRecord.Create().
		SetCourseID(courseID).
		SetChapterIndex(cur.ChapterIndex).
		SetTopicIndex(cur.TopicIndex).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func (r *progressRepo) Get(ctx context.Context, courseID string) (*course.Cursor, error) {
	pr, err := r.client.ProgressRecord.Query().
		Where(progressrecord.CourseID(courseID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress: %w", err)
	}
	return &course.Cursor{
		ChapterIndex: pr.ChapterIndex,
		TopicIndex:   pr.TopicIndex,
	}, nil
}
