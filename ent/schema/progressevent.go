package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressEvent holds the schema definition for the ProgressEvent entity.
// Append-only audit of pipeline stage transitions, ordered by (task_id, id).
// The serial id doubles as the subscriber catchup cursor.
type ProgressEvent struct {
	ent.Schema
}

// Fields of the ProgressEvent.
func (ProgressEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("task_id").
			Immutable(),
		field.Enum("stage").
			Values(
				"post_fetching",
				"post_fetched",
				"product_designed",
				"image_generation_started",
				"image_generated",
				"image_stamped",
				"commission_complete",
				"retrying",
				"failed",
				"cancelled",
			),
		field.String("message"),
		field.Int("percent").
			Min(0).
			Max(100),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ProgressEvent.
func (ProgressEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "created_at"),
	}
}
