package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlayerLog holds the schema definition for the PlayerLog entity: the
// per-character narrative trace of commands, outputs, and delivered events.
type PlayerLog struct {
	ent.Schema
}

// Fields of the PlayerLog.
func (PlayerLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("character_id"),
		field.Enum("kind").
			Values("command", "output", "event"),
		field.Text("payload"),
		field.Time("timestamp").
			Default(time.Now),
	}
}

// Indexes of the PlayerLog.
func (PlayerLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("character_id", "timestamp"),
	}
}
