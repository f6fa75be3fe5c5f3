package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Certificate marks course completion. One row per completed course,
// written exactly once.
type Certificate struct {
	ent.Schema
}

func (Certificate) Fields() []ent.Field {
	return []ent.Field{
		field.String("course_id").
			Unique().
			NotEmpty().
			Immutable(),
		field.Time("issued_at").
			Default(time.Now).
			Immutable(),
	}
}
