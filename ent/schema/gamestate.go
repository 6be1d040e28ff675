package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// GameState holds the schema definition for the GameState entity. A single
// row carries engine state across restarts.
type GameState struct {
	ent.Schema
}

// Fields of the GameState.
func (GameState) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Unique().
			Comment("Always 1; single-row table"),
		field.Bool("is_paused").
			Default(false),
		field.Float("game_time").
			Default(0).
			Comment("Seconds of unpaused simulation"),
	}
}
