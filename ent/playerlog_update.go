// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/elliotbonneville/silt/ent/playerlog"
	"github.com/elliotbonneville/silt/ent/predicate"
)

// PlayerLogUpdate is the builder for updating PlayerLog entities.
type PlayerLogUpdate struct {
	config
	hooks    []Hook
	mutation *PlayerLogMutation
}

// Where appends a list predicates to the PlayerLogUpdate builder.
func (_u *PlayerLogUpdate) Where(ps ...predicate.PlayerLog) *PlayerLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCharacterID sets the "character_id" field.
func (_u *PlayerLogUpdate) SetCharacterID(v string) *PlayerLogUpdate {
	_u.mutation.SetCharacterID(v)
	return _u
}

// SetNillableCharacterID sets the "character_id" field if the given value is not nil.
func (_u *PlayerLogUpdate) SetNillableCharacterID(v *string) *PlayerLogUpdate {
	if v != nil {
		_u.SetCharacterID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *PlayerLogUpdate) SetKind(v playerlog.Kind) *PlayerLogUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *PlayerLogUpdate) SetNillableKind(v *playerlog.Kind) *PlayerLogUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *PlayerLogUpdate) SetPayload(v string) *PlayerLogUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_u *PlayerLogUpdate) SetNillablePayload(v *string) *PlayerLogUpdate {
	if v != nil {
		_u.SetPayload(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *PlayerLogUpdate) SetTimestamp(v time.Time) *PlayerLogUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *PlayerLogUpdate) SetNillableTimestamp(v *time.Time) *PlayerLogUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// Mutation returns the PlayerLogMutation object of the builder.
func (_u *PlayerLogUpdate) Mutation() *PlayerLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlayerLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlayerLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlayerLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlayerLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlayerLogUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := playerlog.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PlayerLog.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *PlayerLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(playerlog.Table, playerlog.Columns, sqlgraph.NewFieldSpec(playerlog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CharacterID(); ok {
		_spec.SetField(playerlog.FieldCharacterID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(playerlog.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(playerlog.FieldPayload, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(playerlog.FieldTimestamp, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{playerlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlayerLogUpdateOne is the builder for updating a single PlayerLog entity.
type PlayerLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlayerLogMutation
}

// SetCharacterID sets the "character_id" field.
func (_u *PlayerLogUpdateOne) SetCharacterID(v string) *PlayerLogUpdateOne {
	_u.mutation.SetCharacterID(v)
	return _u
}

// SetNillableCharacterID sets the "character_id" field if the given value is not nil.
func (_u *PlayerLogUpdateOne) SetNillableCharacterID(v *string) *PlayerLogUpdateOne {
	if v != nil {
		_u.SetCharacterID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *PlayerLogUpdateOne) SetKind(v playerlog.Kind) *PlayerLogUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *PlayerLogUpdateOne) SetNillableKind(v *playerlog.Kind) *PlayerLogUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *PlayerLogUpdateOne) SetPayload(v string) *PlayerLogUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_u *PlayerLogUpdateOne) SetNillablePayload(v *string) *PlayerLogUpdateOne {
	if v != nil {
		_u.SetPayload(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *PlayerLogUpdateOne) SetTimestamp(v time.Time) *PlayerLogUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *PlayerLogUpdateOne) SetNillableTimestamp(v *time.Time) *PlayerLogUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// Mutation returns the PlayerLogMutation object of the builder.
func (_u *PlayerLogUpdateOne) Mutation() *PlayerLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlayerLogUpdate builder.
func (_u *PlayerLogUpdateOne) Where(ps ...predicate.PlayerLog) *PlayerLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlayerLogUpdateOne) Select(field string, fields ...string) *PlayerLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlayerLog entity.
func (_u *PlayerLogUpdateOne) Save(ctx context.Context) (*PlayerLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlayerLogUpdateOne) SaveX(ctx context.Context) *PlayerLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlayerLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlayerLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlayerLogUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := playerlog.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PlayerLog.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *PlayerLogUpdateOne) sqlSave(ctx context.Context) (_node *PlayerLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(playerlog.Table, playerlog.Columns, sqlgraph.NewFieldSpec(playerlog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlayerLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, playerlog.FieldID)
		for _, f := range fields {
			if !playerlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != playerlog.FieldID {
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
	if value, ok := _u.mutation.CharacterID(); ok {
		_spec.SetField(playerlog.FieldCharacterID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(playerlog.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(playerlog.FieldPayload, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(playerlog.FieldTimestamp, field.TypeTime, value)
	}
	_node = &PlayerLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{playerlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
