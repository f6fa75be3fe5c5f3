package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SyncEvent records the terminal outcome of a queued mutation:
// delivered to the remote authority, or dropped after exhausting the
// retry ceiling. Dropped events are the dead-letter record: the item
// itself is gone from the queue, but the loss is durable and visible.
type SyncEvent struct {
	ent.Schema
}

func (SyncEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SyncEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("item_seq").
			Comment("Seq of the queue item this outcome belongs to"),
		field.String("item_type").NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("delivered or dropped"),
		field.Int("attempts").
			NonNegative().
			Comment("Delivery attempts made, including the final one"),
		field.String("last_error").
			Optional().
			Comment("Error from the final attempt, for dropped items"),
	}
}

func (SyncEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("action"),
	}
}
