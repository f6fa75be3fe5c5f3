package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SyncItem is one buffered remote mutation awaiting delivery.
// Items are owned exclusively by the sync queue: created on every
// state-changing local operation, removed on acknowledgement or when
// the retry ceiling is exceeded.
type SyncItem struct {
	ent.Schema
}

func (SyncItem) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("seq").
			Unique().
			Immutable().
			Comment("Monotonic enqueue order, from the shared sequence counter"),
		field.String("item_type").
			NotEmpty().
			Comment("progress, quiz or certificate"),
		field.JSON("payload", json.RawMessage{}).
			Comment("Remote mutation body as JSON"),
		field.Int("retry_count").
			Default(0).
			NonNegative(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (SyncItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("seq"),
	}
}
