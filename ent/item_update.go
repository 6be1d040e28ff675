// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/elliotbonneville/silt/ent/item"
	"github.com/elliotbonneville/silt/ent/predicate"
)

// ItemUpdate is the builder for updating Item entities.
type ItemUpdate struct {
	config
	hooks    []Hook
	mutation *ItemMutation
}

// Where appends a list predicates to the ItemUpdate builder.
func (_u *ItemUpdate) Where(ps ...predicate.Item) *ItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ItemUpdate) SetName(v string) *ItemUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableName(v *string) *ItemUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ItemUpdate) SetDescription(v string) *ItemUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableDescription(v *string) *ItemUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ItemUpdate) ClearDescription() *ItemUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetType sets the "type" field.
func (_u *ItemUpdate) SetType(v item.Type) *ItemUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableType(v *item.Type) *ItemUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetStats sets the "stats" field.
func (_u *ItemUpdate) SetStats(v map[string]interface{}) *ItemUpdate {
	_u.mutation.SetStats(v)
	return _u
}

// ClearStats clears the value of the "stats" field.
func (_u *ItemUpdate) ClearStats() *ItemUpdate {
	_u.mutation.ClearStats()
	return _u
}

// SetRoomID sets the "room_id" field.
func (_u *ItemUpdate) SetRoomID(v string) *ItemUpdate {
	_u.mutation.SetRoomID(v)
	return _u
}

// SetNillableRoomID sets the "room_id" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableRoomID(v *string) *ItemUpdate {
	if v != nil {
		_u.SetRoomID(*v)
	}
	return _u
}

// ClearRoomID clears the value of the "room_id" field.
func (_u *ItemUpdate) ClearRoomID() *ItemUpdate {
	_u.mutation.ClearRoomID()
	return _u
}

// SetCharacterID sets the "character_id" field.
func (_u *ItemUpdate) SetCharacterID(v string) *ItemUpdate {
	_u.mutation.SetCharacterID(v)
	return _u
}

// SetNillableCharacterID sets the "character_id" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableCharacterID(v *string) *ItemUpdate {
	if v != nil {
		_u.SetCharacterID(*v)
	}
	return _u
}

// ClearCharacterID clears the value of the "character_id" field.
func (_u *ItemUpdate) ClearCharacterID() *ItemUpdate {
	_u.mutation.ClearCharacterID()
	return _u
}

// SetIsEquipped sets the "is_equipped" field.
func (_u *ItemUpdate) SetIsEquipped(v bool) *ItemUpdate {
	_u.mutation.SetIsEquipped(v)
	return _u
}

// SetNillableIsEquipped sets the "is_equipped" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableIsEquipped(v *bool) *ItemUpdate {
	if v != nil {
		_u.SetIsEquipped(*v)
	}
	return _u
}

// Mutation returns the ItemMutation object of the builder.
func (_u *ItemUpdate) Mutation() *ItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := item.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Item.type": %w`, err)}
		}
	}
	return nil
}

func (_u *ItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(item.Table, item.Columns, sqlgraph.NewFieldSpec(item.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(item.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(item.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(item.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(item.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Stats(); ok {
		_spec.SetField(item.FieldStats, field.TypeJSON, value)
	}
	if _u.mutation.StatsCleared() {
		_spec.ClearField(item.FieldStats, field.TypeJSON)
	}
	if value, ok := _u.mutation.RoomID(); ok {
		_spec.SetField(item.FieldRoomID, field.TypeString, value)
	}
	if _u.mutation.RoomIDCleared() {
		_spec.ClearField(item.FieldRoomID, field.TypeString)
	}
	if value, ok := _u.mutation.CharacterID(); ok {
		_spec.SetField(item.FieldCharacterID, field.TypeString, value)
	}
	if _u.mutation.CharacterIDCleared() {
		_spec.ClearField(item.FieldCharacterID, field.TypeString)
	}
	if value, ok := _u.mutation.IsEquipped(); ok {
		_spec.SetField(item.FieldIsEquipped, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{item.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ItemUpdateOne is the builder for updating a single Item entity.
type ItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ItemMutation
}

// SetName sets the "name" field.
func (_u *ItemUpdateOne) SetName(v string) *ItemUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableName(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ItemUpdateOne) SetDescription(v string) *ItemUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableDescription(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ItemUpdateOne) ClearDescription() *ItemUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetType sets the "type" field.
func (_u *ItemUpdateOne) SetType(v item.Type) *ItemUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableType(v *item.Type) *ItemUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetStats sets the "stats" field.
func (_u *ItemUpdateOne) SetStats(v map[string]interface{}) *ItemUpdateOne {
	_u.mutation.SetStats(v)
	return _u
}

// ClearStats clears the value of the "stats" field.
func (_u *ItemUpdateOne) ClearStats() *ItemUpdateOne {
	_u.mutation.ClearStats()
	return _u
}

// SetRoomID sets the "room_id" field.
func (_u *ItemUpdateOne) SetRoomID(v string) *ItemUpdateOne {
	_u.mutation.SetRoomID(v)
	return _u
}

// SetNillableRoomID sets the "room_id" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableRoomID(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetRoomID(*v)
	}
	return _u
}

// ClearRoomID clears the value of the "room_id" field.
func (_u *ItemUpdateOne) ClearRoomID() *ItemUpdateOne {
	_u.mutation.ClearRoomID()
	return _u
}

// SetCharacterID sets the "character_id" field.
func (_u *ItemUpdateOne) SetCharacterID(v string) *ItemUpdateOne {
	_u.mutation.SetCharacterID(v)
	return _u
}

// SetNillableCharacterID sets the "character_id" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableCharacterID(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetCharacterID(*v)
	}
	return _u
}

// ClearCharacterID clears the value of the "character_id" field.
func (_u *ItemUpdateOne) ClearCharacterID() *ItemUpdateOne {
	_u.mutation.ClearCharacterID()
	return _u
}

// SetIsEquipped sets the "is_equipped" field.
func (_u *ItemUpdateOne) SetIsEquipped(v bool) *ItemUpdateOne {
	_u.mutation.SetIsEquipped(v)
	return _u
}

// SetNillableIsEquipped sets the "is_equipped" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableIsEquipped(v *bool) *ItemUpdateOne {
	if v != nil {
		_u.SetIsEquipped(*v)
	}
	return _u
}

// Mutation returns the ItemMutation object of the builder.
func (_u *ItemUpdateOne) Mutation() *ItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the ItemUpdate builder.
func (_u *ItemUpdateOne) Where(ps ...predicate.Item) *ItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ItemUpdateOne) Select(field string, fields ...string) *ItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Item entity.
func (_u *ItemUpdateOne) Save(ctx context.Context) (*Item, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemUpdateOne) SaveX(ctx context.Context) *Item {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := item.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Item.type": %w`, err)}
		}
	}
	return nil
}

func (_u *ItemUpdateOne) sqlSave(ctx context.Context) (_node *Item, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(item.Table, item.Columns, sqlgraph.NewFieldSpec(item.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Item.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, item.FieldID)
		for _, f := range fields {
			if !item.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != item.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(item.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(item.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(item.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(item.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Stats(); ok {
		_spec.SetField(item.FieldStats, field.TypeJSON, value)
	}
	if _u.mutation.StatsCleared() {
		_spec.ClearField(item.FieldStats, field.TypeJSON)
	}
	if value, ok := _u.mutation.RoomID(); ok {
		_spec.SetField(item.FieldRoomID, field.TypeString, value)
	}
	if _u.mutation.RoomIDCleared() {
		_spec.ClearField(item.FieldRoomID, field.TypeString)
	}
	if value, ok := _u.mutation.CharacterID(); ok {
		_spec.SetField(item.FieldCharacterID, field.TypeString, value)
	}
	if _u.mutation.CharacterIDCleared() {
		_spec.ClearField(item.FieldCharacterID, field.TypeString)
	}
	if value, ok := _u.mutation.IsEquipped(); ok {
		_spec.SetField(item.FieldIsEquipped, field.TypeBool, value)
	}
	_node = &Item{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{item.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
