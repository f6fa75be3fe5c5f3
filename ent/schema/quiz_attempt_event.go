package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizAttemptEvent records one finished quiz attempt, pass or fail.
type QuizAttemptEvent struct {
	ent.Schema
}

func (QuizAttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizAttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").NotEmpty(),
		field.String("course_id").NotEmpty(),
		field.Int("chapter_index").NonNegative(),
		field.Int("topic_index").NonNegative(),
		field.Int("correct_count").NonNegative(),
		field.Int("attempted_count").NonNegative(),
		field.Bool("passed"),
	}
}

func (QuizAttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id"),
	}
}
