// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/elliotbonneville/silt/ent/gamestate"
	"github.com/elliotbonneville/silt/ent/predicate"
)

// GameStateUpdate is the builder for updating GameState entities.
type GameStateUpdate struct {
	config
	hooks    []Hook
	mutation *GameStateMutation
}

// Where appends a list predicates to the GameStateUpdate builder.
func (_u *GameStateUpdate) Where(ps ...predicate.GameState) *GameStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIsPaused sets the "is_paused" field.
func (_u *GameStateUpdate) SetIsPaused(v bool) *GameStateUpdate {
	_u.mutation.SetIsPaused(v)
	return _u
}

// SetNillableIsPaused sets the "is_paused" field if the given value is not nil.
func (_u *GameStateUpdate) SetNillableIsPaused(v *bool) *GameStateUpdate {
	if v != nil {
		_u.SetIsPaused(*v)
	}
	return _u
}

// SetGameTime sets the "game_time" field.
func (_u *GameStateUpdate) SetGameTime(v float64) *GameStateUpdate {
	_u.mutation.ResetGameTime()
	_u.mutation.SetGameTime(v)
	return _u
}

// SetNillableGameTime sets the "game_time" field if the given value is not nil.
func (_u *GameStateUpdate) SetNillableGameTime(v *float64) *GameStateUpdate {
	if v != nil {
		_u.SetGameTime(*v)
	}
	return _u
}

// AddGameTime adds value to the "game_time" field.
func (_u *GameStateUpdate) AddGameTime(v float64) *GameStateUpdate {
	_u.mutation.AddGameTime(v)
	return _u
}

// Mutation returns the GameStateMutation object of the builder.
func (_u *GameStateUpdate) Mutation() *GameStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GameStateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GameStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GameStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GameStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GameStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(gamestate.Table, gamestate.Columns, sqlgraph.NewFieldSpec(gamestate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IsPaused(); ok {
		_spec.SetField(gamestate.FieldIsPaused, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GameTime(); ok {
		_spec.SetField(gamestate.FieldGameTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGameTime(); ok {
		_spec.AddField(gamestate.FieldGameTime, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gamestate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GameStateUpdateOne is the builder for updating a single GameState entity.
type GameStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GameStateMutation
}

// SetIsPaused sets the "is_paused" field.
func (_u *GameStateUpdateOne) SetIsPaused(v bool) *GameStateUpdateOne {
	_u.mutation.SetIsPaused(v)
	return _u
}

// SetNillableIsPaused sets the "is_paused" field if the given value is not nil.
func (_u *GameStateUpdateOne) SetNillableIsPaused(v *bool) *GameStateUpdateOne {
	if v != nil {
		_u.SetIsPaused(*v)
	}
	return _u
}

// SetGameTime sets the "game_time" field.
func (_u *GameStateUpdateOne) SetGameTime(v float64) *GameStateUpdateOne {
	_u.mutation.ResetGameTime()
	_u.mutation.SetGameTime(v)
	return _u
}

// SetNillableGameTime sets the "game_time" field if the given value is not nil.
func (_u *GameStateUpdateOne) SetNillableGameTime(v *float64) *GameStateUpdateOne {
	if v != nil {
		_u.SetGameTime(*v)
	}
	return _u
}

// AddGameTime adds value to the "game_time" field.
func (_u *GameStateUpdateOne) AddGameTime(v float64) *GameStateUpdateOne {
	_u.mutation.AddGameTime(v)
	return _u
}

// Mutation returns the GameStateMutation object of the builder.
func (_u *GameStateUpdateOne) Mutation() *GameStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the GameStateUpdate builder.
func (_u *GameStateUpdateOne) Where(ps ...predicate.GameState) *GameStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GameStateUpdateOne) Select(field string, fields ...string) *GameStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GameState entity.
func (_u *GameStateUpdateOne) Save(ctx context.Context) (*GameState, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GameStateUpdateOne) SaveX(ctx context.Context) *GameState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GameStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GameStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GameStateUpdateOne) sqlSave(ctx context.Context) (_node *GameState, err error) {
	_spec := sqlgraph.NewUpdateSpec(gamestate.Table, gamestate.Columns, sqlgraph.NewFieldSpec(gamestate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GameState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gamestate.FieldID)
		for _, f := range fields {
			if !gamestate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gamestate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IsPaused(); ok {
		_spec.SetField(gamestate.FieldIsPaused, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GameTime(); ok {
		_spec.SetField(gamestate.FieldGameTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGameTime(); ok {
		_spec.AddField(gamestate.FieldGameTime, field.TypeFloat64, value)
	}
	_node = &GameState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gamestate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
