package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AIAgent holds the schema definition for the AIAgent entity: the LLM-driven
// brain bound to one NPC character.
type AIAgent struct {
	ent.Schema
}

// Fields of the AIAgent.
func (AIAgent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("character_id").
			Unique(),
		field.Text("system_prompt").
			Comment("Personality prompt prepended to every oracle call"),
		field.String("home_room_id"),
		field.Int("max_rooms_from_home").
			Default(3).
			Min(0).
			Max(10),
		field.Text("spatial_memory").
			Optional().
			Comment("Compressed mental map, at most a few lines"),
		field.Time("spatial_memory_updated_at").
			Optional().
			Nillable(),
		field.JSON("relationships", map[string]interface{}{}).
			Optional().
			Comment("peer name -> sentiment/trust/familiarity record"),
		field.JSON("conversation", []interface{}{}).
			Optional().
			Comment("Rolling dialogue window, trimmed to the newest entries"),
		field.Time("last_action_at").
			Optional(),
	}
}

// Indexes of the AIAgent.
func (AIAgent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("character_id"),
	}
}
