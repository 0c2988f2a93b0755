package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// PipelineTask holds the schema definition for the PipelineTask entity.
// A task is the unit of work the generation pipeline executes. Exclusion
// between workers is by lease (lease_owner + lease_expires_at), not by
// in-process lock; expired leases are swept back to pending.
type PipelineTask struct {
	ent.Schema
}

// Fields of the PipelineTask.
func (PipelineTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			DefaultFunc(func() string { return uuid.New().String() }).
			Unique().
			Immutable(),
		field.String("donation_id").
			Optional().
			Nillable().
			Comment("Commission that paid for this task — nil for agent/scheduled tasks"),
		field.Enum("type").
			Values("subreddit_post", "front_page", "specific_post"),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "failed", "cancelled").
			Default("pending"),
		field.Int("priority").
			Default(0).
			Comment("Higher first; commission > scheduled subreddit > front page"),
		field.Int("attempt").
			Default(0),
		field.String("subreddit").
			Optional().
			Nillable(),
		field.String("post_id").
			Optional().
			Nillable().
			Comment("Resolved Reddit post — persisted by the post_fetched checkpoint"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("lease_owner").
			Optional().
			Nillable().
			Comment("Worker token holding the lease while in_progress"),
		field.Time("lease_expires_at").
			Optional().
			Nillable(),
		field.Time("not_before").
			Optional().
			Nillable().
			Comment("Retry backoff gate — claim skips tasks scheduled in the future"),

		// Stage checkpoints. Each column is written before the stage's success
		// event so a resumed task can skip work that already happened.
		field.String("theme").
			Optional().
			Nillable(),
		field.String("image_title").
			Optional().
			Nillable(),
		field.Text("image_description").
			Optional().
			Nillable(),
		field.String("image_url").
			Optional().
			Nillable(),

		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the PipelineTask.
func (PipelineTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("donation_id"),
		// Claim order: highest priority first, FIFO within priority.
		index.Fields("status", "priority", "created_at"),
		// Lease sweep scans in_progress rows by expiry.
		index.Fields("status", "lease_expires_at").
			Annotations(entsql.IndexWhere("status = 'in_progress'")),
	}
}
