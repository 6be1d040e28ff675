// Code generated by ent, DO NOT EDIT.

package character

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the character type in the database.
	Label = "character"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "character_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldAccountID holds the string denoting the account_id field in the database.
	FieldAccountID = "account_id"
	// FieldRoomID holds the string denoting the room_id field in the database.
	FieldRoomID = "room_id"
	// FieldSpawnPointID holds the string denoting the spawn_point_id field in the database.
	FieldSpawnPointID = "spawn_point_id"
	// FieldHp holds the string denoting the hp field in the database.
	FieldHp = "hp"
	// FieldMaxHp holds the string denoting the max_hp field in the database.
	FieldMaxHp = "max_hp"
	// FieldAttack holds the string denoting the attack field in the database.
	FieldAttack = "attack"
	// FieldDefense holds the string denoting the defense field in the database.
	FieldDefense = "defense"
	// FieldSpeed holds the string denoting the speed field in the database.
	FieldSpeed = "speed"
	// FieldIsAlive holds the string denoting the is_alive field in the database.
	FieldIsAlive = "is_alive"
	// FieldIsDead holds the string denoting the is_dead field in the database.
	FieldIsDead = "is_dead"
	// FieldDiedAt holds the string denoting the died_at field in the database.
	FieldDiedAt = "died_at"
	// FieldLastActionAt holds the string denoting the last_action_at field in the database.
	FieldLastActionAt = "last_action_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the character in the database.
	Table = "characters"
)

// Columns holds all SQL columns for character fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDescription,
	FieldAccountID,
	FieldRoomID,
	FieldSpawnPointID,
	FieldHp,
	FieldMaxHp,
	FieldAttack,
	FieldDefense,
	FieldSpeed,
	FieldIsAlive,
	FieldIsDead,
	FieldDiedAt,
	FieldLastActionAt,
	FieldCreatedAt,
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
	// DefaultIsAlive holds the default value on creation for the "is_alive" field.
	DefaultIsAlive bool
	// DefaultIsDead holds the default value on creation for the "is_dead" field.
	DefaultIsDead bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Character queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByAccountID orders the results by the account_id field.
func ByAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountID, opts...).ToFunc()
}

// ByRoomID orders the results by the room_id field.
func ByRoomID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoomID, opts...).ToFunc()
}

// BySpawnPointID orders the results by the spawn_point_id field.
func BySpawnPointID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpawnPointID, opts...).ToFunc()
}

// ByHp orders the results by the hp field.
func ByHp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHp, opts...).ToFunc()
}

// ByMaxHp orders the results by the max_hp field.
func ByMaxHp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxHp, opts...).ToFunc()
}

// ByAttack orders the results by the attack field.
func ByAttack(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttack, opts...).ToFunc()
}

// ByDefense orders the results by the defense field.
func ByDefense(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefense, opts...).ToFunc()
}

// BySpeed orders the results by the speed field.
func BySpeed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpeed, opts...).ToFunc()
}

// ByIsAlive orders the results by the is_alive field.
func ByIsAlive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsAlive, opts...).ToFunc()
}

// ByIsDead orders the results by the is_dead field.
func ByIsDead(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsDead, opts...).ToFunc()
}

// ByDiedAt orders the results by the died_at field.
func ByDiedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiedAt, opts...).ToFunc()
}

// ByLastActionAt orders the results by the last_action_at field.
func ByLastActionAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActionAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
