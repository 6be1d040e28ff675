// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/elliotbonneville/silt/ent/gamestate"
)

// GameState is the model entity for the GameState schema.
type GameState struct {
	config `json:"-"`
	// ID of the ent.
	// Always 1; single-row table
	ID int `json:"id,omitempty"`
	// IsPaused holds the value of the "is_paused" field.
	IsPaused bool `json:"is_paused,omitempty"`
	// Seconds of unpaused simulation
	GameTime     float64 `json:"game_time,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GameState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gamestate.FieldIsPaused:
			values[i] = new(sql.NullBool)
		case gamestate.FieldGameTime:
			values[i] = new(sql.NullFloat64)
		case gamestate.FieldID:
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GameState fields.
func (_m *GameState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gamestate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case gamestate.FieldIsPaused:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_paused", values[i])
			} else if value.Valid {
				_m.IsPaused = value.Bool
			}
		case gamestate.FieldGameTime:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field game_time", values[i])
			} else if value.Valid {
				_m.GameTime = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GameState.
// This includes values selected through modifiers, order, etc.
func (_m *GameState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GameState.
// Note that you need to call GameState.Unwrap() before calling this method if this GameState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GameState) Update() *GameStateUpdateOne {
	return NewGameStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GameState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GameState) Unwrap() *GameState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GameState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GameState) String() string {
	var builder strings.Builder
	builder.WriteString("GameState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("is_paused=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPaused))
	builder.WriteString(", ")
	builder.WriteString("game_time=")
	builder.WriteString(fmt.Sprintf("%v", _m.GameTime))
	builder.WriteByte(')')
	return builder.String()
}

// GameStates is a parsable slice of GameState.
type GameStates []*GameState
