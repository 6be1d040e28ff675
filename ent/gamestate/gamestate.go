// Code generated by ent, DO NOT EDIT.

package gamestate

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the gamestate type in the database.
	Label = "game_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldIsPaused holds the string denoting the is_paused field in the database.
	FieldIsPaused = "is_paused"
	// FieldGameTime holds the string denoting the game_time field in the database.
	FieldGameTime = "game_time"
	// Table holds the table name of the gamestate in the database.
	Table = "game_states"
)

// Columns holds all SQL columns for gamestate fields.
var Columns = []string{
	FieldID,
	FieldIsPaused,
	FieldGameTime,
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
	// DefaultIsPaused holds the default value on creation for the "is_paused" field.
	DefaultIsPaused bool
	// DefaultGameTime holds the default value on creation for the "game_time" field.
	DefaultGameTime float64
)

// OrderOption defines the ordering options for the GameState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByIsPaused orders the results by the is_paused field.
func ByIsPaused(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsPaused, opts...).ToFunc()
}

// ByGameTime orders the results by the game_time field.
func ByGameTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGameTime, opts...).ToFunc()
}
