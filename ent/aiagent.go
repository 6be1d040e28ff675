// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/elliotbonneville/silt/ent/aiagent"
)

// AIAgent is the model entity for the AIAgent schema.
type AIAgent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CharacterID holds the value of the "character_id" field.
	CharacterID string `json:"character_id,omitempty"`
	// Personality prompt prepended to every oracle call
	SystemPrompt string `json:"system_prompt,omitempty"`
	// HomeRoomID holds the value of the "home_room_id" field.
	HomeRoomID string `json:"home_room_id,omitempty"`
	// MaxRoomsFromHome holds the value of the "max_rooms_from_home" field.
	MaxRoomsFromHome int `json:"max_rooms_from_home,omitempty"`
	// Compressed mental map, at most a few lines
	SpatialMemory string `json:"spatial_memory,omitempty"`
	// SpatialMemoryUpdatedAt holds the value of the "spatial_memory_updated_at" field.
	SpatialMemoryUpdatedAt *time.Time `json:"spatial_memory_updated_at,omitempty"`
	// peer name -> sentiment/trust/familiarity record
	Relationships map[string]interface{} `json:"relationships,omitempty"`
	// Rolling dialogue window, trimmed to the newest entries
	Conversation []interface{} `json:"conversation,omitempty"`
	// LastActionAt holds the value of the "last_action_at" field.
	LastActionAt time.Time `json:"last_action_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AIAgent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case aiagent.FieldRelationships, aiagent.FieldConversation:
			values[i] = new([]byte)
		case aiagent.FieldMaxRoomsFromHome:
			values[i] = new(sql.NullInt64)
		case aiagent.FieldID, aiagent.FieldCharacterID, aiagent.FieldSystemPrompt, aiagent.FieldHomeRoomID, aiagent.FieldSpatialMemory:
			values[i] = new(sql.NullString)
		case aiagent.FieldSpatialMemoryUpdatedAt, aiagent.FieldLastActionAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AIAgent fields.
func (_m *AIAgent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case aiagent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case aiagent.FieldCharacterID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field character_id", values[i])
			} else if value.Valid {
				_m.CharacterID = value.String
			}
		case aiagent.FieldSystemPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field system_prompt", values[i])
			} else if value.Valid {
				_m.SystemPrompt = value.String
			}
		case aiagent.FieldHomeRoomID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field home_room_id", values[i])
			} else if value.Valid {
				_m.HomeRoomID = value.String
			}
		case aiagent.FieldMaxRoomsFromHome:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_rooms_from_home", values[i])
			} else if value.Valid {
				_m.MaxRoomsFromHome = int(value.Int64)
			}
		case aiagent.FieldSpatialMemory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field spatial_memory", values[i])
			} else if value.Valid {
				_m.SpatialMemory = value.String
			}
		case aiagent.FieldSpatialMemoryUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field spatial_memory_updated_at", values[i])
			} else if value.Valid {
				_m.SpatialMemoryUpdatedAt = new(time.Time)
				*_m.SpatialMemoryUpdatedAt = value.Time
			}
		case aiagent.FieldRelationships:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field relationships", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Relationships); err != nil {
					return fmt.Errorf("unmarshal field relationships: %w", err)
				}
			}
		case aiagent.FieldConversation:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field conversation", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Conversation); err != nil {
					return fmt.Errorf("unmarshal field conversation: %w", err)
				}
			}
		case aiagent.FieldLastActionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_action_at", values[i])
			} else if value.Valid {
				_m.LastActionAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AIAgent.
// This includes values selected through modifiers, order, etc.
func (_m *AIAgent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AIAgent.
// Note that you need to call AIAgent.Unwrap() before calling this method if this AIAgent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AIAgent) Update() *AIAgentUpdateOne {
	return NewAIAgentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AIAgent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AIAgent) Unwrap() *AIAgent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AIAgent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AIAgent) String() string {
	var builder strings.Builder
	builder.WriteString("AIAgent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("character_id=")
	builder.WriteString(_m.CharacterID)
	builder.WriteString(", ")
	builder.WriteString("system_prompt=")
	builder.WriteString(_m.SystemPrompt)
	builder.WriteString(", ")
	builder.WriteString("home_room_id=")
	builder.WriteString(_m.HomeRoomID)
	builder.WriteString(", ")
	builder.WriteString("max_rooms_from_home=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxRoomsFromHome))
	builder.WriteString(", ")
	builder.WriteString("spatial_memory=")
	builder.WriteString(_m.SpatialMemory)
	builder.WriteString(", ")
	if v := _m.SpatialMemoryUpdatedAt; v != nil {
		builder.WriteString("spatial_memory_updated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("relationships=")
	builder.WriteString(fmt.Sprintf("%v", _m.Relationships))
	builder.WriteString(", ")
	builder.WriteString("conversation=")
	builder.WriteString(fmt.Sprintf("%v", _m.Conversation))
	builder.WriteString(", ")
	builder.WriteString("last_action_at=")
	builder.WriteString(_m.LastActionAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AIAgents is a parsable slice of AIAgent.
type AIAgents []*AIAgent
