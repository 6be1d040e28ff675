package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Item holds the schema definition for the Item entity. Exactly one of
// room_id/character_id is set; equipped items always belong to a character.
type Item struct {
	ent.Schema
}

// Fields of the Item.
func (Item) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("item_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Text("description").
			Optional(),
		field.Enum("type").
			Values("weapon", "armor", "consumable", "spawn_point", "misc"),
		field.JSON("stats", map[string]interface{}{}).
			Optional().
			Comment("damage / defense / healing, by type"),
		field.String("room_id").
			Optional(),
		field.String("character_id").
			Optional(),
		field.Bool("is_equipped").
			Default(false),
	}
}

// Indexes of the Item.
func (Item) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("room_id"),
		index.Fields("character_id"),
		index.Fields("character_id", "is_equipped"),
	}
}
