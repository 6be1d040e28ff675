package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Character holds the schema definition for the Character entity. Players and
// NPCs share the table; account_id empty means NPC.
type Character struct {
	ent.Schema
}

// Fields of the Character.
func (Character) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("character_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Text("description").
			Optional(),
		field.String("account_id").
			Optional().
			Comment("Empty for NPCs"),
		field.String("room_id"),
		field.String("spawn_point_id").
			Optional(),
		field.Int("hp"),
		field.Int("max_hp"),
		field.Int("attack").
			Comment("Derived: base plus equipped weapon damage"),
		field.Int("defense").
			Comment("Derived: base plus equipped armor defense"),
		field.Int("speed").
			Comment("Combat gauge fill per tick"),
		field.Bool("is_alive").
			Default(true),
		field.Bool("is_dead").
			Default(false),
		field.Time("died_at").
			Optional().
			Nillable(),
		field.Time("last_action_at").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Character.
func (Character) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("room_id"),
		index.Fields("account_id"),
		index.Fields("room_id", "is_alive"),
	}
}
