// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/elliotbonneville/silt/ent/gameevent"
)

// GameEvent is the model entity for the GameEvent schema.
type GameEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Type holds the value of the "type" field.
	Type string `json:"type,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// OriginRoomID holds the value of the "origin_room_id" field.
	OriginRoomID string `json:"origin_room_id,omitempty"`
	// Visibility holds the value of the "visibility" field.
	Visibility gameevent.Visibility `json:"visibility,omitempty"`
	// Omniscient rendering; per-recipient text is derived at delivery
	Content string `json:"content,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload map[string]interface{} `json:"payload,omitempty"`
	// Explicit recipients for private events
	Recipients []string `json:"recipients,omitempty"`
	// RelatedEntities holds the value of the "related_entities" field.
	RelatedEntities []string `json:"related_entities,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GameEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gameevent.FieldPayload, gameevent.FieldRecipients, gameevent.FieldRelatedEntities:
			values[i] = new([]byte)
		case gameevent.FieldID, gameevent.FieldType, gameevent.FieldOriginRoomID, gameevent.FieldVisibility, gameevent.FieldContent:
			values[i] = new(sql.NullString)
		case gameevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GameEvent fields.
func (_m *GameEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gameevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case gameevent.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = value.String
			}
		case gameevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case gameevent.FieldOriginRoomID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field origin_room_id", values[i])
			} else if value.Valid {
				_m.OriginRoomID = value.String
			}
		case gameevent.FieldVisibility:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field visibility", values[i])
			} else if value.Valid {
				_m.Visibility = gameevent.Visibility(value.String)
			}
		case gameevent.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case gameevent.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case gameevent.FieldRecipients:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recipients", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Recipients); err != nil {
					return fmt.Errorf("unmarshal field recipients: %w", err)
				}
			}
		case gameevent.FieldRelatedEntities:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field related_entities", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RelatedEntities); err != nil {
					return fmt.Errorf("unmarshal field related_entities: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GameEvent.
// This includes values selected through modifiers, order, etc.
func (_m *GameEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GameEvent.
// Note that you need to call GameEvent.Unwrap() before calling this method if this GameEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GameEvent) Update() *GameEventUpdateOne {
	return NewGameEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GameEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GameEvent) Unwrap() *GameEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GameEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GameEvent) String() string {
	var builder strings.Builder
	builder.WriteString("GameEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("type=")
	builder.WriteString(_m.Type)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("origin_room_id=")
	builder.WriteString(_m.OriginRoomID)
	builder.WriteString(", ")
	builder.WriteString("visibility=")
	builder.WriteString(fmt.Sprintf("%v", _m.Visibility))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("recipients=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recipients))
	builder.WriteString(", ")
	builder.WriteString("related_entities=")
	builder.WriteString(fmt.Sprintf("%v", _m.RelatedEntities))
	builder.WriteByte(')')
	return builder.String()
}

// GameEvents is a parsable slice of GameEvent.
type GameEvents []*GameEvent
