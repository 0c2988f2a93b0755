package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubredditGoal holds the schema definition for the SubredditGoal entity.
// Ledger-maintained: current_amount equals the sum of succeeded non-manual
// donations credited to the subreddit. Crossing goal_amount flips status to
// completed exactly once and enqueues the banner-art task.
type SubredditGoal struct {
	ent.Schema
}

// Fields of the SubredditGoal.
func (SubredditGoal) Fields() []ent.Field {
	return []ent.Field{
		field.String("subreddit").
			Unique().
			Immutable(),
		field.Int64("goal_amount"),
		field.Int64("current_amount").
			Default(0),
		field.Enum("status").
			Values("active", "completed").
			Default("active"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the SubredditGoal.
func (SubredditGoal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
