package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Tier holds the schema definition for the Tier entity.
// Static donation bands, seeded once at migration time.
type Tier struct {
	ent.Schema
}

// Fields of the Tier.
func (Tier) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			Immutable(),
		field.Int64("min_amount").
			Comment("Minimum donation in minor currency units to reach this tier"),
		field.String("display_name"),
		field.String("color").
			Optional(),
		field.Bool("hd").
			Default(false).
			Comment("Tiers that commission hd-quality images"),
	}
}
