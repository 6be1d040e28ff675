// Code generated by ent, DO NOT EDIT.

package gameevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the gameevent type in the database.
	Label = "game_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "event_id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldOriginRoomID holds the string denoting the origin_room_id field in the database.
	FieldOriginRoomID = "origin_room_id"
	// FieldVisibility holds the string denoting the visibility field in the database.
	FieldVisibility = "visibility"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldRecipients holds the string denoting the recipients field in the database.
	FieldRecipients = "recipients"
	// FieldRelatedEntities holds the string denoting the related_entities field in the database.
	FieldRelatedEntities = "related_entities"
	// Table holds the table name of the gameevent in the database.
	Table = "game_events"
)

// Columns holds all SQL columns for gameevent fields.
var Columns = []string{
	FieldID,
	FieldType,
	FieldTimestamp,
	FieldOriginRoomID,
	FieldVisibility,
	FieldContent,
	FieldPayload,
	FieldRecipients,
	FieldRelatedEntities,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
)

// Visibility defines the type for the "visibility" enum field.
type Visibility string

// VisibilityRoom is the default value of the Visibility enum.
const DefaultVisibility = VisibilityRoom

// Visibility values.
const (
	VisibilityRoom    Visibility = "room"
	VisibilityPrivate Visibility = "private"
	VisibilityGlobal  Visibility = "global"
	VisibilityAdmin   Visibility = "admin"
)

func (v Visibility) String() string {
	return string(v)
}

// VisibilityValidator is a validator for the "visibility" field enum values. It is called by the builders before save.
func VisibilityValidator(v Visibility) error {
	switch v {
	case VisibilityRoom, VisibilityPrivate, VisibilityGlobal, VisibilityAdmin:
		return nil
	default:
		return fmt.Errorf("gameevent: invalid enum value for visibility field: %q", v)
	}
}

// OrderOption defines the ordering options for the GameEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByOriginRoomID orders the results by the origin_room_id field.
func ByOriginRoomID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginRoomID, opts...).ToFunc()
}

// ByVisibility orders the results by the visibility field.
func ByVisibility(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisibility, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}
