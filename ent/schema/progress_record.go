package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ProgressRecord holds the locally cached progress cursor for a course.
type ProgressRecord struct {
	ent.Schema
}

func (ProgressRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("course_id").
			Unique().
			NotEmpty().
			Immutable(),
		field.Int("chapter_index").
			NonNegative(),
		field.Int("topic_index").
			NonNegative(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
