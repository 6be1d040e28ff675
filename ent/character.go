// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/elliotbonneville/silt/ent/character"
)

// Character is the model entity for the Character schema.
type Character struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Empty for NPCs
	AccountID string `json:"account_id,omitempty"`
	// RoomID holds the value of the "room_id" field.
	RoomID string `json:"room_id,omitempty"`
	// SpawnPointID holds the value of the "spawn_point_id" field.
	SpawnPointID string `json:"spawn_point_id,omitempty"`
	// Hp holds the value of the "hp" field.
	Hp int `json:"hp,omitempty"`
	// MaxHp holds the value of the "max_hp" field.
	MaxHp int `json:"max_hp,omitempty"`
	// Derived: base plus equipped weapon damage
	Attack int `json:"attack,omitempty"`
	// Derived: base plus equipped armor defense
	Defense int `json:"defense,omitempty"`
	// Combat gauge fill per tick
	Speed int `json:"speed,omitempty"`
	// IsAlive holds the value of the "is_alive" field.
	IsAlive bool `json:"is_alive,omitempty"`
	// IsDead holds the value of the "is_dead" field.
	IsDead bool `json:"is_dead,omitempty"`
	// DiedAt holds the value of the "died_at" field.
	DiedAt *time.Time `json:"died_at,omitempty"`
	// LastActionAt holds the value of the "last_action_at" field.
	LastActionAt time.Time `json:"last_action_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Character) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case character.FieldIsAlive, character.FieldIsDead:
			values[i] = new(sql.NullBool)
		case character.FieldHp, character.FieldMaxHp, character.FieldAttack, character.FieldDefense, character.FieldSpeed:
			values[i] = new(sql.NullInt64)
		case character.FieldID, character.FieldName, character.FieldDescription, character.FieldAccountID, character.FieldRoomID, character.FieldSpawnPointID:
			values[i] = new(sql.NullString)
		case character.FieldDiedAt, character.FieldLastActionAt, character.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Character fields.
func (_m *Character) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case character.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case character.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case character.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case character.FieldAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value.Valid {
				_m.AccountID = value.String
			}
		case character.FieldRoomID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field room_id", values[i])
			} else if value.Valid {
				_m.RoomID = value.String
			}
		case character.FieldSpawnPointID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field spawn_point_id", values[i])
			} else if value.Valid {
				_m.SpawnPointID = value.String
			}
		case character.FieldHp:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hp", values[i])
			} else if value.Valid {
				_m.Hp = int(value.Int64)
			}
		case character.FieldMaxHp:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_hp", values[i])
			} else if value.Valid {
				_m.MaxHp = int(value.Int64)
			}
		case character.FieldAttack:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attack", values[i])
			} else if value.Valid {
				_m.Attack = int(value.Int64)
			}
		case character.FieldDefense:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field defense", values[i])
			} else if value.Valid {
				_m.Defense = int(value.Int64)
			}
		case character.FieldSpeed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field speed", values[i])
			} else if value.Valid {
				_m.Speed = int(value.Int64)
			}
		case character.FieldIsAlive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_alive", values[i])
			} else if value.Valid {
				_m.IsAlive = value.Bool
			}
		case character.FieldIsDead:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_dead", values[i])
			} else if value.Valid {
				_m.IsDead = value.Bool
			}
		case character.FieldDiedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field died_at", values[i])
			} else if value.Valid {
				_m.DiedAt = new(time.Time)
				*_m.DiedAt = value.Time
			}
		case character.FieldLastActionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_action_at", values[i])
			} else if value.Valid {
				_m.LastActionAt = value.Time
			}
		case character.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Character.
// This includes values selected through modifiers, order, etc.
func (_m *Character) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Character.
// Note that you need to call Character.Unwrap() before calling this method if this Character
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Character) Update() *CharacterUpdateOne {
	return NewCharacterClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Character entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Character) Unwrap() *Character {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Character is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Character) String() string {
	var builder strings.Builder
	builder.WriteString("Character(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("account_id=")
	builder.WriteString(_m.AccountID)
	builder.WriteString(", ")
	builder.WriteString("room_id=")
	builder.WriteString(_m.RoomID)
	builder.WriteString(", ")
	builder.WriteString("spawn_point_id=")
	builder.WriteString(_m.SpawnPointID)
	builder.WriteString(", ")
	builder.WriteString("hp=")
	builder.WriteString(fmt.Sprintf("%v", _m.Hp))
	builder.WriteString(", ")
	builder.WriteString("max_hp=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxHp))
	builder.WriteString(", ")
	builder.WriteString("attack=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attack))
	builder.WriteString(", ")
	builder.WriteString("defense=")
	builder.WriteString(fmt.Sprintf("%v", _m.Defense))
	builder.WriteString(", ")
	builder.WriteString("speed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Speed))
	builder.WriteString(", ")
	builder.WriteString("is_alive=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsAlive))
	builder.WriteString(", ")
	builder.WriteString("is_dead=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsDead))
	builder.WriteString(", ")
	if v := _m.DiedAt; v != nil {
		builder.WriteString("died_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("last_action_at=")
	builder.WriteString(_m.LastActionAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Characters is a parsable slice of Character.
type Characters []*Character
