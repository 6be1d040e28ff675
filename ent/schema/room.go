package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Room holds the schema definition for the Room entity.
type Room struct {
	ent.Schema
}

// Fields of the Room.
func (Room) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("room_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Text("description"),
		field.JSON("exits", map[string]string{}).
			Optional().
			Comment("direction label -> destination room id"),
		field.Bool("is_starting").
			Default(false).
			Comment("New characters spawn here; exactly one per world"),
	}
}

// Indexes of the Room.
func (Room) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_starting"),
	}
}
