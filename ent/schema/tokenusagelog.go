package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TokenUsageLog holds the schema definition for the TokenUsageLog entity:
// one row per oracle call, for cost accounting.
type TokenUsageLog struct {
	ent.Schema
}

// Fields of the TokenUsageLog.
func (TokenUsageLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("usage_id").
			Unique().
			Immutable(),
		field.String("model"),
		field.String("provider"),
		field.Int("prompt_tokens"),
		field.Int("completion_tokens"),
		field.Int("total_tokens"),
		field.Float("cost").
			Default(0),
		field.Enum("source").
			Values("conversation", "decision", "decision_response", "spatial_memory"),
		field.String("agent_id").
			Optional(),
		field.String("source_event_id").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the TokenUsageLog.
func (TokenUsageLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "created_at"),
		index.Fields("source"),
	}
}
