// Code generated by ent, DO NOT EDIT.

package aiagent

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the aiagent type in the database.
	Label = "ai_agent"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agent_id"
	// FieldCharacterID holds the string denoting the character_id field in the database.
	FieldCharacterID = "character_id"
	// FieldSystemPrompt holds the string denoting the system_prompt field in the database.
	FieldSystemPrompt = "system_prompt"
	// FieldHomeRoomID holds the string denoting the home_room_id field in the database.
	FieldHomeRoomID = "home_room_id"
	// FieldMaxRoomsFromHome holds the string denoting the max_rooms_from_home field in the database.
	FieldMaxRoomsFromHome = "max_rooms_from_home"
	// FieldSpatialMemory holds the string denoting the spatial_memory field in the database.
	FieldSpatialMemory = "spatial_memory"
	// FieldSpatialMemoryUpdatedAt holds the string denoting the spatial_memory_updated_at field in the database.
	FieldSpatialMemoryUpdatedAt = "spatial_memory_updated_at"
	// FieldRelationships holds the string denoting the relationships field in the database.
	FieldRelationships = "relationships"
	// FieldConversation holds the string denoting the conversation field in the database.
	FieldConversation = "conversation"
	// FieldLastActionAt holds the string denoting the last_action_at field in the database.
	FieldLastActionAt = "last_action_at"
	// Table holds the table name of the aiagent in the database.
	Table = "ai_agents"
)

// Columns holds all SQL columns for aiagent fields.
var Columns = []string{
	FieldID,
	FieldCharacterID,
	FieldSystemPrompt,
	FieldHomeRoomID,
	FieldMaxRoomsFromHome,
	FieldSpatialMemory,
	FieldSpatialMemoryUpdatedAt,
	FieldRelationships,
	FieldConversation,
	FieldLastActionAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultMaxRoomsFromHome holds the default value on creation for the "max_rooms_from_home" field.
	DefaultMaxRoomsFromHome int
	// MaxRoomsFromHomeValidator is a validator for the "max_rooms_from_home" field. It is called by the builders before save.
	MaxRoomsFromHomeValidator func(int) error
)

// OrderOption defines the ordering options for the AIAgent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCharacterID orders the results by the character_id field.
func ByCharacterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCharacterID, opts...).ToFunc()
}

// BySystemPrompt orders the results by the system_prompt field.
func BySystemPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSystemPrompt, opts...).ToFunc()
}

// ByHomeRoomID orders the results by the home_room_id field.
func ByHomeRoomID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHomeRoomID, opts...).ToFunc()
}

// ByMaxRoomsFromHome orders the results by the max_rooms_from_home field.
func ByMaxRoomsFromHome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxRoomsFromHome, opts...).ToFunc()
}

// BySpatialMemory orders the results by the spatial_memory field.
func BySpatialMemory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpatialMemory, opts...).ToFunc()
}

// BySpatialMemoryUpdatedAt orders the results by the spatial_memory_updated_at field.
func BySpatialMemoryUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpatialMemoryUpdatedAt, opts...).ToFunc()
}

// ByLastActionAt orders the results by the last_action_at field.
func ByLastActionAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActionAt, opts...).ToFunc()
}
