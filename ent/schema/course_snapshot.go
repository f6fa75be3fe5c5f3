package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// CourseSnapshot caches one fetched course tree per course identifier.
// A newer fetch fully replaces the row; last write wins, no merging.
type CourseSnapshot struct {
	ent.Schema
}

func (CourseSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("course_id").
			Unique().
			NotEmpty().
			Immutable().
			Comment("Remote course identifier"),
		field.String("title").
			Optional().
			Comment("Denormalized course title for listings"),
		field.JSON("data", map[string]any{}).
			Comment("Full course tree as JSON"),
		field.Time("fetched_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When this snapshot was last replaced"),
	}
}
