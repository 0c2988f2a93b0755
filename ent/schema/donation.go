package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Donation holds the schema definition for the Donation entity.
// One row per payment intent; created pending by the intent endpoint and
// transitioned forward by webhook delivery. Transitions are idempotent on
// duplicate webhooks — payment_intent_id is globally unique.
type Donation struct {
	ent.Schema
}

// Fields of the Donation.
func (Donation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("donation_id").
			DefaultFunc(func() string { return uuid.New().String() }).
			Unique().
			Immutable(),
		field.String("payment_intent_id").
			Unique().
			Immutable().
			Comment("Payment processor intent identifier — idempotency key for webhooks"),
		field.Int64("amount").
			Comment("Minor currency units (cents)"),
		field.String("currency").
			Default("usd"),
		field.Enum("status").
			Values("pending", "succeeded", "failed", "refunded").
			Default("pending"),
		field.Enum("type").
			Values("commission", "support").
			Default("support"),
		field.Enum("commission_type").
			Values("random_random", "random_subreddit", "specific_post", "none").
			Default("none"),
		field.String("post_id").
			Optional().
			Nillable().
			Comment("Reddit post id for specific_post commissions"),
		field.String("subreddit").
			Optional().
			Nillable(),
		field.String("message").
			Optional().
			Nillable().
			MaxLen(100),
		field.String("reddit_handle").
			Optional().
			Nillable().
			MaxLen(20),
		field.Bool("is_anonymous").
			Default(false),
		field.String("tier").
			Optional().
			Nillable().
			Comment("Tier name resolved from amount at intent creation"),
		field.Enum("source").
			Values("stripe", "manual").
			Default("stripe"),
		field.Bool("applied").
			Default(false).
			Comment("Set once the fundraising ledger has credited this donation"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Donation.
func (Donation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("subreddit"),
		index.Fields("status", "created_at"),
	}
}
