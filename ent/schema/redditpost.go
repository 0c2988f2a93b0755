package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RedditPost holds the schema definition for the RedditPost entity.
// Created when a task resolves to a post; retained. last_used_at backs the
// "not already used in the last N days" selection filter.
type RedditPost struct {
	ent.Schema
}

// Fields of the RedditPost.
func (RedditPost) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("post_id").
			Unique().
			Immutable().
			Comment("External Reddit post id (base36, no t3_ prefix)"),
		field.String("subreddit").
			Immutable(),
		field.String("title"),
		field.Text("body").
			Optional(),
		field.Int("score").
			Default(0),
		field.Int("num_comments").
			Default(0),
		field.String("permalink"),
		field.Bool("over_18").
			Default(false),
		field.Text("comment_summary").
			Optional().
			Nillable(),
		field.Time("last_used_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the RedditPost.
func (RedditPost) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subreddit"),
		index.Fields("last_used_at"),
	}
}
