package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentAction holds the schema definition for the AgentAction entity.
// Append-only record of agent decisions — the dedup source of truth: before
// acting on a target, an agent checks for a recent (agent_id, target_id) row.
type AgentAction struct {
	ent.Schema
}

// Fields of the AgentAction.
func (AgentAction) Fields() []ent.Field {
	return []ent.Field{
		field.String("agent_id").
			Immutable(),
		field.String("target_id").
			Immutable().
			Comment("Post id, subreddit name, or other external target"),
		field.String("kind").
			Immutable().
			Comment("comment, upvote, welcome, promote, skip, tier_completed, ..."),
		field.Bool("dry_run").
			Default(false).
			Immutable(),
		field.JSON("rating", map[string]interface{}{}).
			Optional().
			Comment("Opaque LLM scoring payload attached to the decision"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AgentAction.
func (AgentAction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "target_id", "created_at"),
		index.Fields("target_id", "created_at"),
	}
}
