package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Subreddit holds the schema definition for the Subreddit entity.
// Created on first reference, never deleted.
type Subreddit struct {
	ent.Schema
}

// Fields of the Subreddit.
func (Subreddit) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			Immutable().
			Comment("Lowercase subreddit name without the r/ prefix"),
		field.String("display_name"),
		field.Bool("over_18").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Subreddit.
func (Subreddit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").Unique(),
	}
}
