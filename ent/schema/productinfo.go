package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ProductInfo holds the schema definition for the ProductInfo entity.
// Exactly one row per completed task — the marketable artifact linking the
// hosted image to the affiliate storefront product.
type ProductInfo struct {
	ent.Schema
}

// Fields of the ProductInfo.
func (ProductInfo) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("product_id").
			DefaultFunc(func() string { return uuid.New().String() }).
			Unique().
			Immutable(),
		field.String("task_id").
			Unique().
			Immutable(),
		field.String("donation_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("post_id").
			Immutable().
			Comment("Reddit post the artwork was derived from"),
		field.String("theme"),
		field.String("image_title"),
		field.String("image_url").
			Comment("Hosted image URL"),
		field.String("product_url").
			Comment("Affiliate storefront URL"),
		field.String("template_id"),
		field.String("model").
			Comment("Image model that produced the artwork"),
		field.String("prompt_version"),
		field.Enum("image_quality").
			Values("standard", "hd").
			Default("standard"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ProductInfo.
func (ProductInfo) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("donation_id"),
		index.Fields("post_id"),
	}
}
