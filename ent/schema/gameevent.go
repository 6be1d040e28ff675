package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GameEvent holds the schema definition for the GameEvent entity: the
// append-only log of everything that happened in the world.
type GameEvent struct {
	ent.Schema
}

// Fields of the GameEvent.
func (GameEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("type"),
		field.Time("timestamp").
			Default(time.Now),
		field.String("origin_room_id").
			Optional(),
		field.Enum("visibility").
			Values("room", "private", "global", "admin").
			Default("room"),
		field.Text("content").
			Optional().
			Comment("Omniscient rendering; per-recipient text is derived at delivery"),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.JSON("recipients", []string{}).
			Optional().
			Comment("Explicit recipients for private events"),
		field.JSON("related_entities", []string{}).
			Optional(),
	}
}

// Indexes of the GameEvent.
func (GameEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("origin_room_id", "timestamp"),
		index.Fields("type", "timestamp"),
	}
}
