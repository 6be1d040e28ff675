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
	"github.com/elliotbonneville/silt/ent/character"
	"github.com/elliotbonneville/silt/ent/predicate"
)

// CharacterUpdate is the builder for updating Character entities.
type CharacterUpdate struct {
	config
	hooks    []Hook
	mutation *CharacterMutation
}

// Where appends a list predicates to the CharacterUpdate builder.
func (_u *CharacterUpdate) Where(ps ...predicate.Character) *CharacterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *CharacterUpdate) SetName(v string) *CharacterUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CharacterUpdate) SetNillableName(v *string) *CharacterUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CharacterUpdate) SetDescription(v string) *CharacterUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CharacterUpdate) SetNillableDescription(v *string) *CharacterUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CharacterUpdate) ClearDescription() *CharacterUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *CharacterUpdate) SetAccountID(v string) *CharacterUpdate {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *CharacterUpdate) SetNillableAccountID(v *string) *CharacterUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// ClearAccountID clears the value of the "account_id" field.
func (_u *CharacterUpdate) ClearAccountID() *CharacterUpdate {
	_u.mutation.ClearAccountID()
	return _u
}

// SetRoomID sets the "room_id" field.
func (_u *CharacterUpdate) SetRoomID(v string) *CharacterUpdate {
	_u.mutation.SetRoomID(v)
	return _u
}

// SetNillableRoomID sets the "room_id" field if the given value is not nil.
func (_u *CharacterUpdate) SetNillableRoomID(v *string) *CharacterUpdate {
	if v != nil {
		_u.SetRoomID(*v)
	}
	return _u
}

// SetSpawnPointID sets the "spawn_point_id" field.
func (_u *CharacterUpdate) SetSpawnPointID(v string) *CharacterUpdate {
	_u.mutation.SetSpawnPointID(v)
	return _u
}

// SetNillableSpawnPointID sets the "spawn_point_id" field if the given value is not nil.
func (_u *CharacterUpdate) SetNillableSpawnPointID(v *string) *CharacterUpdate {
	if v != nil {
		_u.SetSpawnPointID(*v)
	}
	return _u
}

// ClearSpawnPointID clears the value of the "spawn_point_id" field.
func (_u *CharacterUpdate) ClearSpawnPointID() *CharacterUpdate {
	_u.mutation.ClearSpawnPointID()
	return _u
}

// SetHp sets the "hp" field.
func (_u *CharacterUpdate) SetHp(v int) *CharacterUpdate {
	_u.mutation.ResetHp()
	_u.mutation.SetHp(v)
	return _u
}

// SetNillableHp sets the "hp" field if the given value is not nil.
func (_u *CharacterUpdate) SetNillableHp(v *int) *CharacterUpdate {
	if v != nil {
		_u.SetHp(*v)
	}
	return _u
}

// AddHp adds value to the "hp" field.
func (_u *CharacterUpdate) AddHp(v int) *CharacterUpdate {
	_u.mutation.AddHp(v)
	return _u
}

// SetMaxHp sets the "max_hp" field.
func (_u *CharacterUpdate) SetMaxHp(v int) *CharacterUpdate {
	_u.mutation.ResetMaxHp()
	_u.mutation.SetMaxHp(v)
	return _u
}

// SetNillableMaxHp sets the "max_hp" field if the given value is not nil.
func (_u *CharacterUpdate) SetNillableMaxHp(v *int) *CharacterUpdate {
	if v != nil {
		_u.SetMaxHp(*v)
	}
	return _u
}

// AddMaxHp adds value to the "max_hp" field.
func (_u *CharacterUpdate) AddMaxHp(v int) *CharacterUpdate {
	_u.mutation.AddMaxHp(v)
	return _u
}

// SetAttack sets the "attack" field.
func (_u *CharacterUpdate) SetAttack(v int) *CharacterUpdate {
	_u.mutation.ResetAttack()
	_u.mutation.SetAttack(v)
	return _u
}

// SetNillableAttack sets the "attack" field if the given value is not nil.
func (_u *CharacterUpdate) SetNillableAttack(v *int) *CharacterUpdate {
	if v != nil {
		_u.SetAttack(*v)
	}
	return _u
}

// AddAttack adds value to the "attack" field.
func (_u *CharacterUpdate) AddAttack(v int) *CharacterUpdate {
	_u.mutation.AddAttack(v)
	return _u
}

// SetDefense sets the "defense" field.
func (_u *CharacterUpdate) SetDefense(v int) *CharacterUpdate {
	_u.mutation.ResetDefense()
	_u.mutation.SetDefense(v)
	return _u
}

// SetNillableDefense sets the "defense" field if the given value is not nil.
func (_u *CharacterUpdate) SetNillableDefense(v *int) *CharacterUpdate {
	if v != nil {
		_u.SetDefense(*v)
	}
	return _u
}

// AddDefense adds value to the "defense" field.
func (_u *CharacterUpdate) AddDefense(v int) *CharacterUpdate {
	_u.mutation.AddDefense(v)
	return _u
}

// SetSpeed sets the "speed" field.
func (_u *CharacterUpdate) SetSpeed(v int) *CharacterUpdate {
	_u.mutation.ResetSpeed()
	_u.mutation.SetSpeed(v)
	return _u
}

// SetNillableSpeed sets the "speed" field if the given value is not nil.
func (_u *CharacterUpdate) SetNillableSpeed(v *int) *CharacterUpdate {
	if v != nil {
		_u.SetSpeed(*v)
	}
	return _u
}

// AddSpeed adds value to the "speed" field.
func (_u *CharacterUpdate) AddSpeed(v int) *CharacterUpdate {
	_u.mutation.AddSpeed(v)
	return _u
}

// SetIsAlive sets the "is_alive" field.
func (_u *CharacterUpdate) SetIsAlive(v bool) *CharacterUpdate {
	_u.mutation.SetIsAlive(v)
	return _u
}

// SetNillableIsAlive sets the "is_alive" field if the given value is not nil.
func (_u *CharacterUpdate) SetNillableIsAlive(v *bool) *CharacterUpdate {
	if v != nil {
		_u.SetIsAlive(*v)
	}
	return _u
}

// SetIsDead sets the "is_dead" field.
func (_u *CharacterUpdate) SetIsDead(v bool) *CharacterUpdate {
	_u.mutation.SetIsDead(v)
	return _u
}

// SetNillableIsDead sets the "is_dead" field if the given value is not nil.
func (_u *CharacterUpdate) SetNillableIsDead(v *bool) *CharacterUpdate {
	if v != nil {
		_u.SetIsDead(*v)
	}
	return _u
}

// SetDiedAt sets the "died_at" field.
func (_u *CharacterUpdate) SetDiedAt(v time.Time) *CharacterUpdate {
	_u.mutation.SetDiedAt(v)
	return _u
}

// SetNillableDiedAt sets the "died_at" field if the given value is not nil.
func (_u *CharacterUpdate) SetNillableDiedAt(v *time.Time) *CharacterUpdate {
	if v != nil {
		_u.SetDiedAt(*v)
	}
	return _u
}

// ClearDiedAt clears the value of the "died_at" field.
func (_u *CharacterUpdate) ClearDiedAt() *CharacterUpdate {
	_u.mutation.ClearDiedAt()
	return _u
}

// SetLastActionAt sets the "last_action_at" field.
func (_u *CharacterUpdate) SetLastActionAt(v time.Time) *CharacterUpdate {
	_u.mutation.SetLastActionAt(v)
	return _u
}

// SetNillableLastActionAt sets the "last_action_at" field if the given value is not nil.
func (_u *CharacterUpdate) SetNillableLastActionAt(v *time.Time) *CharacterUpdate {
	if v != nil {
		_u.SetLastActionAt(*v)
	}
	return _u
}

// ClearLastActionAt clears the value of the "last_action_at" field.
func (_u *CharacterUpdate) ClearLastActionAt() *CharacterUpdate {
	_u.mutation.ClearLastActionAt()
	return _u
}

// Mutation returns the CharacterMutation object of the builder.
func (_u *CharacterUpdate) Mutation() *CharacterMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CharacterUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CharacterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CharacterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CharacterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CharacterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(character.Table, character.Columns, sqlgraph.NewFieldSpec(character.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(character.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(character.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(character.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(character.FieldAccountID, field.TypeString, value)
	}
	if _u.mutation.AccountIDCleared() {
		_spec.ClearField(character.FieldAccountID, field.TypeString)
	}
	if value, ok := _u.mutation.RoomID(); ok {
		_spec.SetField(character.FieldRoomID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SpawnPointID(); ok {
		_spec.SetField(character.FieldSpawnPointID, field.TypeString, value)
	}
	if _u.mutation.SpawnPointIDCleared() {
		_spec.ClearField(character.FieldSpawnPointID, field.TypeString)
	}
	if value, ok := _u.mutation.Hp(); ok {
		_spec.SetField(character.FieldHp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHp(); ok {
		_spec.AddField(character.FieldHp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxHp(); ok {
		_spec.SetField(character.FieldMaxHp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxHp(); ok {
		_spec.AddField(character.FieldMaxHp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attack(); ok {
		_spec.SetField(character.FieldAttack, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttack(); ok {
		_spec.AddField(character.FieldAttack, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Defense(); ok {
		_spec.SetField(character.FieldDefense, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDefense(); ok {
		_spec.AddField(character.FieldDefense, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Speed(); ok {
		_spec.SetField(character.FieldSpeed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSpeed(); ok {
		_spec.AddField(character.FieldSpeed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsAlive(); ok {
		_spec.SetField(character.FieldIsAlive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsDead(); ok {
		_spec.SetField(character.FieldIsDead, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DiedAt(); ok {
		_spec.SetField(character.FieldDiedAt, field.TypeTime, value)
	}
	if _u.mutation.DiedAtCleared() {
		_spec.ClearField(character.FieldDiedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastActionAt(); ok {
		_spec.SetField(character.FieldLastActionAt, field.TypeTime, value)
	}
	if _u.mutation.LastActionAtCleared() {
		_spec.ClearField(character.FieldLastActionAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{character.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CharacterUpdateOne is the builder for updating a single Character entity.
type CharacterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CharacterMutation
}

// SetName sets the "name" field.
func (_u *CharacterUpdateOne) SetName(v string) *CharacterUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CharacterUpdateOne) SetNillableName(v *string) *CharacterUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CharacterUpdateOne) SetDescription(v string) *CharacterUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CharacterUpdateOne) SetNillableDescription(v *string) *CharacterUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CharacterUpdateOne) ClearDescription() *CharacterUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *CharacterUpdateOne) SetAccountID(v string) *CharacterUpdateOne {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *CharacterUpdateOne) SetNillableAccountID(v *string) *CharacterUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// ClearAccountID clears the value of the "account_id" field.
func (_u *CharacterUpdateOne) ClearAccountID() *CharacterUpdateOne {
	_u.mutation.ClearAccountID()
	return _u
}

// SetRoomID sets the "room_id" field.
func (_u *CharacterUpdateOne) SetRoomID(v string) *CharacterUpdateOne {
	_u.mutation.SetRoomID(v)
	return _u
}

// SetNillableRoomID sets the "room_id" field if the given value is not nil.
func (_u *CharacterUpdateOne) SetNillableRoomID(v *string) *CharacterUpdateOne {
	if v != nil {
		_u.SetRoomID(*v)
	}
	return _u
}

// SetSpawnPointID sets the "spawn_point_id" field.
func (_u *CharacterUpdateOne) SetSpawnPointID(v string) *CharacterUpdateOne {
	_u.mutation.SetSpawnPointID(v)
	return _u
}

// SetNillableSpawnPointID sets the "spawn_point_id" field if the given value is not nil.
func (_u *CharacterUpdateOne) SetNillableSpawnPointID(v *string) *CharacterUpdateOne {
	if v != nil {
		_u.SetSpawnPointID(*v)
	}
	return _u
}

// ClearSpawnPointID clears the value of the "spawn_point_id" field.
func (_u *CharacterUpdateOne) ClearSpawnPointID() *CharacterUpdateOne {
	_u.mutation.ClearSpawnPointID()
	return _u
}

// SetHp sets the "hp" field.
func (_u *CharacterUpdateOne) SetHp(v int) *CharacterUpdateOne {
	_u.mutation.ResetHp()
	_u.mutation.SetHp(v)
	return _u
}

// SetNillableHp sets the "hp" field if the given value is not nil.
func (_u *CharacterUpdateOne) SetNillableHp(v *int) *CharacterUpdateOne {
	if v != nil {
		_u.SetHp(*v)
	}
	return _u
}

// AddHp adds value to the "hp" field.
func (_u *CharacterUpdateOne) AddHp(v int) *CharacterUpdateOne {
	_u.mutation.AddHp(v)
	return _u
}

// SetMaxHp sets the "max_hp" field.
func (_u *CharacterUpdateOne) SetMaxHp(v int) *CharacterUpdateOne {
	_u.mutation.ResetMaxHp()
	_u.mutation.SetMaxHp(v)
	return _u
}

// SetNillableMaxHp sets the "max_hp" field if the given value is not nil.
func (_u *CharacterUpdateOne) SetNillableMaxHp(v *int) *CharacterUpdateOne {
	if v != nil {
		_u.SetMaxHp(*v)
	}
	return _u
}

// AddMaxHp adds value to the "max_hp" field.
func (_u *CharacterUpdateOne) AddMaxHp(v int) *CharacterUpdateOne {
	_u.mutation.AddMaxHp(v)
	return _u
}

// SetAttack sets the "attack" field.
func (_u *CharacterUpdateOne) SetAttack(v int) *CharacterUpdateOne {
	_u.mutation.ResetAttack()
	_u.mutation.SetAttack(v)
	return _u
}

// SetNillableAttack sets the "attack" field if the given value is not nil.
func (_u *CharacterUpdateOne) SetNillableAttack(v *int) *CharacterUpdateOne {
	if v != nil {
		_u.SetAttack(*v)
	}
	return _u
}

// AddAttack adds value to the "attack" field.
func (_u *CharacterUpdateOne) AddAttack(v int) *CharacterUpdateOne {
	_u.mutation.AddAttack(v)
	return _u
}

// SetDefense sets the "defense" field.
func (_u *CharacterUpdateOne) SetDefense(v int) *CharacterUpdateOne {
	_u.mutation.ResetDefense()
	_u.mutation.SetDefense(v)
	return _u
}

// SetNillableDefense sets the "defense" field if the given value is not nil.
func (_u *CharacterUpdateOne) SetNillableDefense(v *int) *CharacterUpdateOne {
	if v != nil {
		_u.SetDefense(*v)
	}
	return _u
}

// AddDefense adds value to the "defense" field.
func (_u *CharacterUpdateOne) AddDefense(v int) *CharacterUpdateOne {
	_u.mutation.AddDefense(v)
	return _u
}

// SetSpeed sets the "speed" field.
func (_u *CharacterUpdateOne) SetSpeed(v int) *CharacterUpdateOne {
	_u.mutation.ResetSpeed()
	_u.mutation.SetSpeed(v)
	return _u
}

// SetNillableSpeed sets the "speed" field if the given value is not nil.
func (_u *CharacterUpdateOne) SetNillableSpeed(v *int) *CharacterUpdateOne {
	if v != nil {
		_u.SetSpeed(*v)
	}
	return _u
}

// AddSpeed adds value to the "speed" field.
func (_u *CharacterUpdateOne) AddSpeed(v int) *CharacterUpdateOne {
	_u.mutation.AddSpeed(v)
	return _u
}

// SetIsAlive sets the "is_alive" field.
func (_u *CharacterUpdateOne) SetIsAlive(v bool) *CharacterUpdateOne {
	_u.mutation.SetIsAlive(v)
	return _u
}

// SetNillableIsAlive sets the "is_alive" field if the given value is not nil.
func (_u *CharacterUpdateOne) SetNillableIsAlive(v *bool) *CharacterUpdateOne {
	if v != nil {
		_u.SetIsAlive(*v)
	}
	return _u
}

// SetIsDead sets the "is_dead" field.
func (_u *CharacterUpdateOne) SetIsDead(v bool) *CharacterUpdateOne {
	_u.mutation.SetIsDead(v)
	return _u
}

// SetNillableIsDead sets the "is_dead" field if the given value is not nil.
func (_u *CharacterUpdateOne) SetNillableIsDead(v *bool) *CharacterUpdateOne {
	if v != nil {
		_u.SetIsDead(*v)
	}
	return _u
}

// SetDiedAt sets the "died_at" field.
func (_u *CharacterUpdateOne) SetDiedAt(v time.Time) *CharacterUpdateOne {
	_u.mutation.SetDiedAt(v)
	return _u
}

// SetNillableDiedAt sets the "died_at" field if the given value is not nil.
func (_u *CharacterUpdateOne) SetNillableDiedAt(v *time.Time) *CharacterUpdateOne {
	if v != nil {
		_u.SetDiedAt(*v)
	}
	return _u
}

// ClearDiedAt clears the value of the "died_at" field.
func (_u *CharacterUpdateOne) ClearDiedAt() *CharacterUpdateOne {
	_u.mutation.ClearDiedAt()
	return _u
}

// SetLastActionAt sets the "last_action_at" field.
func (_u *CharacterUpdateOne) SetLastActionAt(v time.Time) *CharacterUpdateOne {
	_u.mutation.SetLastActionAt(v)
	return _u
}

// SetNillableLastActionAt sets the "last_action_at" field if the given value is not nil.
func (_u *CharacterUpdateOne) SetNillableLastActionAt(v *time.Time) *CharacterUpdateOne {
	if v != nil {
		_u.SetLastActionAt(*v)
	}
	return _u
}

// ClearLastActionAt clears the value of the "last_action_at" field.
func (_u *CharacterUpdateOne) ClearLastActionAt() *CharacterUpdateOne {
	_u.mutation.ClearLastActionAt()
	return _u
}

// Mutation returns the CharacterMutation object of the builder.
func (_u *CharacterUpdateOne) Mutation() *CharacterMutation {
	return _u.mutation
}

// Where appends a list predicates to the CharacterUpdate builder.
func (_u *CharacterUpdateOne) Where(ps ...predicate.Character) *CharacterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CharacterUpdateOne) Select(field string, fields ...string) *CharacterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Character entity.
func (_u *CharacterUpdateOne) Save(ctx context.Context) (*Character, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CharacterUpdateOne) SaveX(ctx context.Context) *Character {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CharacterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CharacterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CharacterUpdateOne) sqlSave(ctx context.Context) (_node *Character, err error) {
	_spec := sqlgraph.NewUpdateSpec(character.Table, character.Columns, sqlgraph.NewFieldSpec(character.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Character.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, character.FieldID)
		for _, f := range fields {
			if !character.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != character.FieldID {
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
		_spec.SetField(character.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(character.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(character.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(character.FieldAccountID, field.TypeString, value)
	}
	if _u.mutation.AccountIDCleared() {
		_spec.ClearField(character.FieldAccountID, field.TypeString)
	}
	if value, ok := _u.mutation.RoomID(); ok {
		_spec.SetField(character.FieldRoomID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SpawnPointID(); ok {
		_spec.SetField(character.FieldSpawnPointID, field.TypeString, value)
	}
	if _u.mutation.SpawnPointIDCleared() {
		_spec.ClearField(character.FieldSpawnPointID, field.TypeString)
	}
	if value, ok := _u.mutation.Hp(); ok {
		_spec.SetField(character.FieldHp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHp(); ok {
		_spec.AddField(character.FieldHp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxHp(); ok {
		_spec.SetField(character.FieldMaxHp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxHp(); ok {
		_spec.AddField(character.FieldMaxHp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attack(); ok {
		_spec.SetField(character.FieldAttack, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttack(); ok {
		_spec.AddField(character.FieldAttack, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Defense(); ok {
		_spec.SetField(character.FieldDefense, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDefense(); ok {
		_spec.AddField(character.FieldDefense, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Speed(); ok {
		_spec.SetField(character.FieldSpeed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSpeed(); ok {
		_spec.AddField(character.FieldSpeed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsAlive(); ok {
		_spec.SetField(character.FieldIsAlive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsDead(); ok {
		_spec.SetField(character.FieldIsDead, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DiedAt(); ok {
		_spec.SetField(character.FieldDiedAt, field.TypeTime, value)
	}
	if _u.mutation.DiedAtCleared() {
		_spec.ClearField(character.FieldDiedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastActionAt(); ok {
		_spec.SetField(character.FieldLastActionAt, field.TypeTime, value)
	}
	if _u.mutation.LastActionAtCleared() {
		_spec.ClearField(character.FieldLastActionAt, field.TypeTime)
	}
	_node = &Character{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{character.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
