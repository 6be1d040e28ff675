// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/elliotbonneville/silt/ent/character"
)

// CharacterCreate is the builder for creating a Character entity.
type CharacterCreate struct {
	config
	mutation *CharacterMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *CharacterCreate) SetName(v string) *CharacterCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *CharacterCreate) SetDescription(v string) *CharacterCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CharacterCreate) SetNillableDescription(v *string) *CharacterCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetAccountID sets the "account_id" field.
func (_c *CharacterCreate) SetAccountID(v string) *CharacterCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_c *CharacterCreate) SetNillableAccountID(v *string) *CharacterCreate {
	if v != nil {
		_c.SetAccountID(*v)
	}
	return _c
}

// SetRoomID sets the "room_id" field.
func (_c *CharacterCreate) SetRoomID(v string) *CharacterCreate {
	_c.mutation.SetRoomID(v)
	return _c
}

// SetSpawnPointID sets the "spawn_point_id" field.
func (_c *CharacterCreate) SetSpawnPointID(v string) *CharacterCreate {
	_c.mutation.SetSpawnPointID(v)
	return _c
}

// SetNillableSpawnPointID sets the "spawn_point_id" field if the given value is not nil.
func (_c *CharacterCreate) SetNillableSpawnPointID(v *string) *CharacterCreate {
	if v != nil {
		_c.SetSpawnPointID(*v)
	}
	return _c
}

// SetHp sets the "hp" field.
func (_c *CharacterCreate) SetHp(v int) *CharacterCreate {
	_c.mutation.SetHp(v)
	return _c
}

// SetMaxHp sets the "max_hp" field.
func (_c *CharacterCreate) SetMaxHp(v int) *CharacterCreate {
	_c.mutation.SetMaxHp(v)
	return _c
}

// SetAttack sets the "attack" field.
func (_c *CharacterCreate) SetAttack(v int) *CharacterCreate {
	_c.mutation.SetAttack(v)
	return _c
}

// SetDefense sets the "defense" field.
func (_c *CharacterCreate) SetDefense(v int) *CharacterCreate {
	_c.mutation.SetDefense(v)
	return _c
}

// SetSpeed sets the "speed" field.
func (_c *CharacterCreate) SetSpeed(v int) *CharacterCreate {
	_c.mutation.SetSpeed(v)
	return _c
}

// SetIsAlive sets the "is_alive" field.
func (_c *CharacterCreate) SetIsAlive(v bool) *CharacterCreate {
	_c.mutation.SetIsAlive(v)
	return _c
}

// SetNillableIsAlive sets the "is_alive" field if the given value is not nil.
func (_c *CharacterCreate) SetNillableIsAlive(v *bool) *CharacterCreate {
	if v != nil {
		_c.SetIsAlive(*v)
	}
	return _c
}

// SetIsDead sets the "is_dead" field.
func (_c *CharacterCreate) SetIsDead(v bool) *CharacterCreate {
	_c.mutation.SetIsDead(v)
	return _c
}

// SetNillableIsDead sets the "is_dead" field if the given value is not nil.
func (_c *CharacterCreate) SetNillableIsDead(v *bool) *CharacterCreate {
	if v != nil {
		_c.SetIsDead(*v)
	}
	return _c
}

// SetDiedAt sets the "died_at" field.
func (_c *CharacterCreate) SetDiedAt(v time.Time) *CharacterCreate {
	_c.mutation.SetDiedAt(v)
	return _c
}

// SetNillableDiedAt sets the "died_at" field if the given value is not nil.
func (_c *CharacterCreate) SetNillableDiedAt(v *time.Time) *CharacterCreate {
	if v != nil {
		_c.SetDiedAt(*v)
	}
	return _c
}

// SetLastActionAt sets the "last_action_at" field.
func (_c *CharacterCreate) SetLastActionAt(v time.Time) *CharacterCreate {
	_c.mutation.SetLastActionAt(v)
	return _c
}

// SetNillableLastActionAt sets the "last_action_at" field if the given value is not nil.
func (_c *CharacterCreate) SetNillableLastActionAt(v *time.Time) *CharacterCreate {
	if v != nil {
		_c.SetLastActionAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CharacterCreate) SetCreatedAt(v time.Time) *CharacterCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CharacterCreate) SetNillableCreatedAt(v *time.Time) *CharacterCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CharacterCreate) SetID(v string) *CharacterCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CharacterMutation object of the builder.
func (_c *CharacterCreate) Mutation() *CharacterMutation {
	return _c.mutation
}

// Save creates the Character in the database.
func (_c *CharacterCreate) Save(ctx context.Context) (*Character, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CharacterCreate) SaveX(ctx context.Context) *Character {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CharacterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CharacterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CharacterCreate) defaults() {
	if _, ok := _c.mutation.IsAlive(); !ok {
		v := character.DefaultIsAlive
		_c.mutation.SetIsAlive(v)
	}
	if _, ok := _c.mutation.IsDead(); !ok {
		v := character.DefaultIsDead
		_c.mutation.SetIsDead(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := character.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CharacterCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Character.name"`)}
	}
	if _, ok := _c.mutation.RoomID(); !ok {
		return &ValidationError{Name: "room_id", err: errors.New(`ent: missing required field "Character.room_id"`)}
	}
	if _, ok := _c.mutation.Hp(); !ok {
		return &ValidationError{Name: "hp", err: errors.New(`ent: missing required field "Character.hp"`)}
	}
	if _, ok := _c.mutation.MaxHp(); !ok {
		return &ValidationError{Name: "max_hp", err: errors.New(`ent: missing required field "Character.max_hp"`)}
	}
	if _, ok := _c.mutation.Attack(); !ok {
		return &ValidationError{Name: "attack", err: errors.New(`ent: missing required field "Character.attack"`)}
	}
	if _, ok := _c.mutation.Defense(); !ok {
		return &ValidationError{Name: "defense", err: errors.New(`ent: missing required field "Character.defense"`)}
	}
	if _, ok := _c.mutation.Speed(); !ok {
		return &ValidationError{Name: "speed", err: errors.New(`ent: missing required field "Character.speed"`)}
	}
	if _, ok := _c.mutation.IsAlive(); !ok {
		return &ValidationError{Name: "is_alive", err: errors.New(`ent: missing required field "Character.is_alive"`)}
	}
	if _, ok := _c.mutation.IsDead(); !ok {
		return &ValidationError{Name: "is_dead", err: errors.New(`ent: missing required field "Character.is_dead"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Character.created_at"`)}
	}
	return nil
}

func (_c *CharacterCreate) sqlSave(ctx context.Context) (*Character, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Character.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CharacterCreate) createSpec() (*Character, *sqlgraph.CreateSpec) {
	var (
		_node = &Character{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(character.Table, sqlgraph.NewFieldSpec(character.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(character.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(character.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.AccountID(); ok {
		_spec.SetField(character.FieldAccountID, field.TypeString, value)
		_node.AccountID = value
	}
	if value, ok := _c.mutation.RoomID(); ok {
		_spec.SetField(character.FieldRoomID, field.TypeString, value)
		_node.RoomID = value
	}
	if value, ok := _c.mutation.SpawnPointID(); ok {
		_spec.SetField(character.FieldSpawnPointID, field.TypeString, value)
		_node.SpawnPointID = value
	}
	if value, ok := _c.mutation.Hp(); ok {
		_spec.SetField(character.FieldHp, field.TypeInt, value)
		_node.Hp = value
	}
	if value, ok := _c.mutation.MaxHp(); ok {
		_spec.SetField(character.FieldMaxHp, field.TypeInt, value)
		_node.MaxHp = value
	}
	if value, ok := _c.mutation.Attack(); ok {
		_spec.SetField(character.FieldAttack, field.TypeInt, value)
		_node.Attack = value
	}
	if value, ok := _c.mutation.Defense(); ok {
		_spec.SetField(character.FieldDefense, field.TypeInt, value)
		_node.Defense = value
	}
	if value, ok := _c.mutation.Speed(); ok {
		_spec.SetField(character.FieldSpeed, field.TypeInt, value)
		_node.Speed = value
	}
	if value, ok := _c.mutation.IsAlive(); ok {
		_spec.SetField(character.FieldIsAlive, field.TypeBool, value)
		_node.IsAlive = value
	}
	if value, ok := _c.mutation.IsDead(); ok {
		_spec.SetField(character.FieldIsDead, field.TypeBool, value)
		_node.IsDead = value
	}
	if value, ok := _c.mutation.DiedAt(); ok {
		_spec.SetField(character.FieldDiedAt, field.TypeTime, value)
		_node.DiedAt = &value
	}
	if value, ok := _c.mutation.LastActionAt(); ok {
		_spec.SetField(character.FieldLastActionAt, field.TypeTime, value)
		_node.LastActionAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(character.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Character.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CharacterUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *CharacterCreate) OnConflict(opts ...sql.ConflictOption) *CharacterUpsertOne {
	_c.conflict = opts
	return &CharacterUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Character.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CharacterCreate) OnConflictColumns(columns ...string) *CharacterUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CharacterUpsertOne{
		create: _c,
	}
}

type (
	// CharacterUpsertOne is the builder for "upsert"-ing
	//  one Character node.
	CharacterUpsertOne struct {
		create *CharacterCreate
	}

	// CharacterUpsert is the "OnConflict" setter.
	CharacterUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *CharacterUpsert) SetName(v string) *CharacterUpsert {
	u.Set(character.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CharacterUpsert) UpdateName() *CharacterUpsert {
	u.SetExcluded(character.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *CharacterUpsert) SetDescription(v string) *CharacterUpsert {
	u.Set(character.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CharacterUpsert) UpdateDescription() *CharacterUpsert {
	u.SetExcluded(character.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *CharacterUpsert) ClearDescription() *CharacterUpsert {
	u.SetNull(character.FieldDescription)
	return u
}

// SetAccountID sets the "account_id" field.
func (u *CharacterUpsert) SetAccountID(v string) *CharacterUpsert {
	u.Set(character.FieldAccountID, v)
	return u
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *CharacterUpsert) UpdateAccountID() *CharacterUpsert {
	u.SetExcluded(character.FieldAccountID)
	return u
}

// ClearAccountID clears the value of the "account_id" field.
func (u *CharacterUpsert) ClearAccountID() *CharacterUpsert {
	u.SetNull(character.FieldAccountID)
	return u
}

// SetRoomID sets the "room_id" field.
func (u *CharacterUpsert) SetRoomID(v string) *CharacterUpsert {
	u.Set(character.FieldRoomID, v)
	return u
}

// UpdateRoomID sets the "room_id" field to the value that was provided on create.
func (u *CharacterUpsert) UpdateRoomID() *CharacterUpsert {
	u.SetExcluded(character.FieldRoomID)
	return u
}

// SetSpawnPointID sets the "spawn_point_id" field.
func (u *CharacterUpsert) SetSpawnPointID(v string) *CharacterUpsert {
	u.Set(character.FieldSpawnPointID, v)
	return u
}

// UpdateSpawnPointID sets the "spawn_point_id" field to the value that was provided on create.
func (u *CharacterUpsert) UpdateSpawnPointID() *CharacterUpsert {
	u.SetExcluded(character.FieldSpawnPointID)
	return u
}

// ClearSpawnPointID clears the value of the "spawn_point_id" field.
func (u *CharacterUpsert) ClearSpawnPointID() *CharacterUpsert {
	u.SetNull(character.FieldSpawnPointID)
	return u
}

// SetHp sets the "hp" field.
func (u *CharacterUpsert) SetHp(v int) *CharacterUpsert {
	u.Set(character.FieldHp, v)
	return u
}

// UpdateHp sets the "hp" field to the value that was provided on create.
func (u *CharacterUpsert) UpdateHp() *CharacterUpsert {
	u.SetExcluded(character.FieldHp)
	return u
}

// AddHp adds v to the "hp" field.
func (u *CharacterUpsert) AddHp(v int) *CharacterUpsert {
	u.Add(character.FieldHp, v)
	return u
}

// SetMaxHp sets the "max_hp" field.
func (u *CharacterUpsert) SetMaxHp(v int) *CharacterUpsert {
	u.Set(character.FieldMaxHp, v)
	return u
}

// UpdateMaxHp sets the "max_hp" field to the value that was provided on create.
func (u *CharacterUpsert) UpdateMaxHp() *CharacterUpsert {
	u.SetExcluded(character.FieldMaxHp)
	return u
}

// AddMaxHp adds v to the "max_hp" field.
func (u *CharacterUpsert) AddMaxHp(v int) *CharacterUpsert {
	u.Add(character.FieldMaxHp, v)
	return u
}

// SetAttack sets the "attack" field.
func (u *CharacterUpsert) SetAttack(v int) *CharacterUpsert {
	u.Set(character.FieldAttack, v)
	return u
}

// UpdateAttack sets the "attack" field to the value that was provided on create.
func (u *CharacterUpsert) UpdateAttack() *CharacterUpsert {
	u.SetExcluded(character.FieldAttack)
	return u
}

// AddAttack adds v to the "attack" field.
func (u *CharacterUpsert) AddAttack(v int) *CharacterUpsert {
	u.Add(character.FieldAttack, v)
	return u
}

// SetDefense sets the "defense" field.
func (u *CharacterUpsert) SetDefense(v int) *CharacterUpsert {
	u.Set(character.FieldDefense, v)
	return u
}

// UpdateDefense sets the "defense" field to the value that was provided on create.
func (u *CharacterUpsert) UpdateDefense() *CharacterUpsert {
	u.SetExcluded(character.FieldDefense)
	return u
}

// AddDefense adds v to the "defense" field.
func (u *CharacterUpsert) AddDefense(v int) *CharacterUpsert {
	u.Add(character.FieldDefense, v)
	return u
}

// SetSpeed sets the "speed" field.
func (u *CharacterUpsert) SetSpeed(v int) *CharacterUpsert {
	u.Set(character.FieldSpeed, v)
	return u
}

// UpdateSpeed sets the "speed" field to the value that was provided on create.
func (u *CharacterUpsert) UpdateSpeed() *CharacterUpsert {
	u.SetExcluded(character.FieldSpeed)
	return u
}

// AddSpeed adds v to the "speed" field.
func (u *CharacterUpsert) AddSpeed(v int) *CharacterUpsert {
	u.Add(character.FieldSpeed, v)
	return u
}

// SetIsAlive sets the "is_alive" field.
func (u *CharacterUpsert) SetIsAlive(v bool) *CharacterUpsert {
	u.Set(character.FieldIsAlive, v)
	return u
}

// UpdateIsAlive sets the "is_alive" field to the value that was provided on create.
func (u *CharacterUpsert) UpdateIsAlive() *CharacterUpsert {
	u.SetExcluded(character.FieldIsAlive)
	return u
}

// SetIsDead sets the "is_dead" field.
func (u *CharacterUpsert) SetIsDead(v bool) *CharacterUpsert {
	u.Set(character.FieldIsDead, v)
	return u
}

// UpdateIsDead sets the "is_dead" field to the value that was provided on create.
func (u *CharacterUpsert) UpdateIsDead() *CharacterUpsert {
	u.SetExcluded(character.FieldIsDead)
	return u
}

// SetDiedAt sets the "died_at" field.
func (u *CharacterUpsert) SetDiedAt(v time.Time) *CharacterUpsert {
	u.Set(character.FieldDiedAt, v)
	return u
}

// UpdateDiedAt sets the "died_at" field to the value that was provided on create.
func (u *CharacterUpsert) UpdateDiedAt() *CharacterUpsert {
	u.SetExcluded(character.FieldDiedAt)
	return u
}

// ClearDiedAt clears the value of the "died_at" field.
func (u *CharacterUpsert) ClearDiedAt() *CharacterUpsert {
	u.SetNull(character.FieldDiedAt)
	return u
}

// SetLastActionAt sets the "last_action_at" field.
func (u *CharacterUpsert) SetLastActionAt(v time.Time) *CharacterUpsert {
	u.Set(character.FieldLastActionAt, v)
	return u
}

// UpdateLastActionAt sets the "last_action_at" field to the value that was provided on create.
func (u *CharacterUpsert) UpdateLastActionAt() *CharacterUpsert {
	u.SetExcluded(character.FieldLastActionAt)
	return u
}

// ClearLastActionAt clears the value of the "last_action_at" field.
func (u *CharacterUpsert) ClearLastActionAt() *CharacterUpsert {
	u.SetNull(character.FieldLastActionAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Character.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(character.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CharacterUpsertOne) UpdateNewValues() *CharacterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(character.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(character.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Character.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CharacterUpsertOne) Ignore() *CharacterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CharacterUpsertOne) DoNothing() *CharacterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CharacterCreate.OnConflict
// documentation for more info.
func (u *CharacterUpsertOne) Update(set func(*CharacterUpsert)) *CharacterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CharacterUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *CharacterUpsertOne) SetName(v string) *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CharacterUpsertOne) UpdateName() *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *CharacterUpsertOne) SetDescription(v string) *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CharacterUpsertOne) UpdateDescription() *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *CharacterUpsertOne) ClearDescription() *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.ClearDescription()
	})
}

// SetAccountID sets the "account_id" field.
func (u *CharacterUpsertOne) SetAccountID(v string) *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *CharacterUpsertOne) UpdateAccountID() *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.UpdateAccountID()
	})
}

// ClearAccountID clears the value of the "account_id" field.
func (u *CharacterUpsertOne) ClearAccountID() *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.ClearAccountID()
	})
}

// SetRoomID sets the "room_id" field.
func (u *CharacterUpsertOne) SetRoomID(v string) *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.SetRoomID(v)
	})
}

// UpdateRoomID sets the "room_id" field to the value that was provided on create.
func (u *CharacterUpsertOne) UpdateRoomID() *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.UpdateRoomID()
	})
}

// SetSpawnPointID sets the "spawn_point_id" field.
func (u *CharacterUpsertOne) SetSpawnPointID(v string) *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.SetSpawnPointID(v)
	})
}

// UpdateSpawnPointID sets the "spawn_point_id" field to the value that was provided on create.
func (u *CharacterUpsertOne) UpdateSpawnPointID() *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.UpdateSpawnPointID()
	})
}

// ClearSpawnPointID clears the value of the "spawn_point_id" field.
func (u *CharacterUpsertOne) ClearSpawnPointID() *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.ClearSpawnPointID()
	})
}

// SetHp sets the "hp" field.
func (u *CharacterUpsertOne) SetHp(v int) *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.SetHp(v)
	})
}

// AddHp adds v to the "hp" field.
func (u *CharacterUpsertOne) AddHp(v int) *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.AddHp(v)
	})
}

// UpdateHp sets the "hp" field to the value that was provided on create.
func (u *CharacterUpsertOne) UpdateHp() *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.UpdateHp()
	})
}

// SetMaxHp sets the "max_hp" field.
func (u *CharacterUpsertOne) SetMaxHp(v int) *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.SetMaxHp(v)
	})
}

// AddMaxHp adds v to the "max_hp" field.
func (u *CharacterUpsertOne) AddMaxHp(v int) *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.AddMaxHp(v)
	})
}

// UpdateMaxHp sets the "max_hp" field to the value that was provided on create.
func (u *CharacterUpsertOne) UpdateMaxHp() *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.UpdateMaxHp()
	})
}

// SetAttack sets the "attack" field.
func (u *CharacterUpsertOne) SetAttack(v int) *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.SetAttack(v)
	})
}

// AddAttack adds v to the "attack" field.
func (u *CharacterUpsertOne) AddAttack(v int) *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.AddAttack(v)
	})
}

// UpdateAttack sets the "attack" field to the value that was provided on create.
func (u *CharacterUpsertOne) UpdateAttack() *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.UpdateAttack()
	})
}

// SetDefense sets the "defense" field.
func (u *CharacterUpsertOne) SetDefense(v int) *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.SetDefense(v)
	})
}

// AddDefense adds v to the "defense" field.
func (u *CharacterUpsertOne) AddDefense(v int) *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.AddDefense(v)
	})
}

// UpdateDefense sets the "defense" field to the value that was provided on create.
func (u *CharacterUpsertOne) UpdateDefense() *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.UpdateDefense()
	})
}

// SetSpeed sets the "speed" field.
func (u *CharacterUpsertOne) SetSpeed(v int) *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.SetSpeed(v)
	})
}

// AddSpeed adds v to the "speed" field.
func (u *CharacterUpsertOne) AddSpeed(v int) *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.AddSpeed(v)
	})
}

// UpdateSpeed sets the "speed" field to the value that was provided on create.
func (u *CharacterUpsertOne) UpdateSpeed() *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.UpdateSpeed()
	})
}

// SetIsAlive sets the "is_alive" field.
func (u *CharacterUpsertOne) SetIsAlive(v bool) *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.SetIsAlive(v)
	})
}

// UpdateIsAlive sets the "is_alive" field to the value that was provided on create.
func (u *CharacterUpsertOne) UpdateIsAlive() *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.UpdateIsAlive()
	})
}

// SetIsDead sets the "is_dead" field.
func (u *CharacterUpsertOne) SetIsDead(v bool) *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.SetIsDead(v)
	})
}

// UpdateIsDead sets the "is_dead" field to the value that was provided on create.
func (u *CharacterUpsertOne) UpdateIsDead() *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.UpdateIsDead()
	})
}

// SetDiedAt sets the "died_at" field.
func (u *CharacterUpsertOne) SetDiedAt(v time.Time) *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.SetDiedAt(v)
	})
}

// UpdateDiedAt sets the "died_at" field to the value that was provided on create.
func (u *CharacterUpsertOne) UpdateDiedAt() *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.UpdateDiedAt()
	})
}

// ClearDiedAt clears the value of the "died_at" field.
func (u *CharacterUpsertOne) ClearDiedAt() *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.ClearDiedAt()
	})
}

// SetLastActionAt sets the "last_action_at" field.
func (u *CharacterUpsertOne) SetLastActionAt(v time.Time) *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.SetLastActionAt(v)
	})
}

// UpdateLastActionAt sets the "last_action_at" field to the value that was provided on create.
func (u *CharacterUpsertOne) UpdateLastActionAt() *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.UpdateLastActionAt()
	})
}

// ClearLastActionAt clears the value of the "last_action_at" field.
func (u *CharacterUpsertOne) ClearLastActionAt() *CharacterUpsertOne {
	return u.Update(func(s *CharacterUpsert) {
		s.ClearLastActionAt()
	})
}

// Exec executes the query.
func (u *CharacterUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CharacterCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CharacterUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CharacterUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CharacterUpsertOne.ID is not supported by MySQL driver. Use CharacterUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CharacterUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CharacterCreateBulk is the builder for creating many Character entities in bulk.
type CharacterCreateBulk struct {
	config
	err      error
	builders []*CharacterCreate
	conflict []sql.ConflictOption
}

// Save creates the Character entities in the database.
func (_c *CharacterCreateBulk) Save(ctx context.Context) ([]*Character, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Character, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CharacterMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CharacterCreateBulk) SaveX(ctx context.Context) []*Character {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CharacterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CharacterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Character.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CharacterUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *CharacterCreateBulk) OnConflict(opts ...sql.ConflictOption) *CharacterUpsertBulk {
	_c.conflict = opts
	return &CharacterUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Character.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CharacterCreateBulk) OnConflictColumns(columns ...string) *CharacterUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CharacterUpsertBulk{
		create: _c,
	}
}

// CharacterUpsertBulk is the builder for "upsert"-ing
// a bulk of Character nodes.
type CharacterUpsertBulk struct {
	create *CharacterCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Character.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(character.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CharacterUpsertBulk) UpdateNewValues() *CharacterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(character.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(character.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Character.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CharacterUpsertBulk) Ignore() *CharacterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CharacterUpsertBulk) DoNothing() *CharacterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CharacterCreateBulk.OnConflict
// documentation for more info.
func (u *CharacterUpsertBulk) Update(set func(*CharacterUpsert)) *CharacterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CharacterUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *CharacterUpsertBulk) SetName(v string) *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CharacterUpsertBulk) UpdateName() *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *CharacterUpsertBulk) SetDescription(v string) *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CharacterUpsertBulk) UpdateDescription() *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *CharacterUpsertBulk) ClearDescription() *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.ClearDescription()
	})
}

// SetAccountID sets the "account_id" field.
func (u *CharacterUpsertBulk) SetAccountID(v string) *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *CharacterUpsertBulk) UpdateAccountID() *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.UpdateAccountID()
	})
}

// ClearAccountID clears the value of the "account_id" field.
func (u *CharacterUpsertBulk) ClearAccountID() *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.ClearAccountID()
	})
}

// SetRoomID sets the "room_id" field.
func (u *CharacterUpsertBulk) SetRoomID(v string) *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.SetRoomID(v)
	})
}

// UpdateRoomID sets the "room_id" field to the value that was provided on create.
func (u *CharacterUpsertBulk) UpdateRoomID() *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.UpdateRoomID()
	})
}

// SetSpawnPointID sets the "spawn_point_id" field.
func (u *CharacterUpsertBulk) SetSpawnPointID(v string) *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.SetSpawnPointID(v)
	})
}

// UpdateSpawnPointID sets the "spawn_point_id" field to the value that was provided on create.
func (u *CharacterUpsertBulk) UpdateSpawnPointID() *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.UpdateSpawnPointID()
	})
}

// ClearSpawnPointID clears the value of the "spawn_point_id" field.
func (u *CharacterUpsertBulk) ClearSpawnPointID() *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.ClearSpawnPointID()
	})
}

// SetHp sets the "hp" field.
func (u *CharacterUpsertBulk) SetHp(v int) *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.SetHp(v)
	})
}

// AddHp adds v to the "hp" field.
func (u *CharacterUpsertBulk) AddHp(v int) *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.AddHp(v)
	})
}

// UpdateHp sets the "hp" field to the value that was provided on create.
func (u *CharacterUpsertBulk) UpdateHp() *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.UpdateHp()
	})
}

// SetMaxHp sets the "max_hp" field.
func (u *CharacterUpsertBulk) SetMaxHp(v int) *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.SetMaxHp(v)
	})
}

// AddMaxHp adds v to the "max_hp" field.
func (u *CharacterUpsertBulk) AddMaxHp(v int) *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.AddMaxHp(v)
	})
}

// UpdateMaxHp sets the "max_hp" field to the value that was provided on create.
func (u *CharacterUpsertBulk) UpdateMaxHp() *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.UpdateMaxHp()
	})
}

// SetAttack sets the "attack" field.
func (u *CharacterUpsertBulk) SetAttack(v int) *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.SetAttack(v)
	})
}

// AddAttack adds v to the "attack" field.
func (u *CharacterUpsertBulk) AddAttack(v int) *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.AddAttack(v)
	})
}

// UpdateAttack sets the "attack" field to the value that was provided on create.
func (u *CharacterUpsertBulk) UpdateAttack() *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.UpdateAttack()
	})
}

// SetDefense sets the "defense" field.
func (u *CharacterUpsertBulk) SetDefense(v int) *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.SetDefense(v)
	})
}

// AddDefense adds v to the "defense" field.
func (u *CharacterUpsertBulk) AddDefense(v int) *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.AddDefense(v)
	})
}

// UpdateDefense sets the "defense" field to the value that was provided on create.
func (u *CharacterUpsertBulk) UpdateDefense() *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.UpdateDefense()
	})
}

// SetSpeed sets the "speed" field.
func (u *CharacterUpsertBulk) SetSpeed(v int) *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.SetSpeed(v)
	})
}

// AddSpeed adds v to the "speed" field.
func (u *CharacterUpsertBulk) AddSpeed(v int) *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.AddSpeed(v)
	})
}

// UpdateSpeed sets the "speed" field to the value that was provided on create.
func (u *CharacterUpsertBulk) UpdateSpeed() *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.UpdateSpeed()
	})
}

// SetIsAlive sets the "is_alive" field.
func (u *CharacterUpsertBulk) SetIsAlive(v bool) *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.SetIsAlive(v)
	})
}

// UpdateIsAlive sets the "is_alive" field to the value that was provided on create.
func (u *CharacterUpsertBulk) UpdateIsAlive() *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.UpdateIsAlive()
	})
}

// SetIsDead sets the "is_dead" field.
func (u *CharacterUpsertBulk) SetIsDead(v bool) *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.SetIsDead(v)
	})
}

// UpdateIsDead sets the "is_dead" field to the value that was provided on create.
func (u *CharacterUpsertBulk) UpdateIsDead() *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.UpdateIsDead()
	})
}

// SetDiedAt sets the "died_at" field.
func (u *CharacterUpsertBulk) SetDiedAt(v time.Time) *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.SetDiedAt(v)
	})
}

// UpdateDiedAt sets the "died_at" field to the value that was provided on create.
func (u *CharacterUpsertBulk) UpdateDiedAt() *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.UpdateDiedAt()
	})
}

// ClearDiedAt clears the value of the "died_at" field.
func (u *CharacterUpsertBulk) ClearDiedAt() *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.ClearDiedAt()
	})
}

// SetLastActionAt sets the "last_action_at" field.
func (u *CharacterUpsertBulk) SetLastActionAt(v time.Time) *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.SetLastActionAt(v)
	})
}

// UpdateLastActionAt sets the "last_action_at" field to the value that was provided on create.
func (u *CharacterUpsertBulk) UpdateLastActionAt() *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.UpdateLastActionAt()
	})
}

// ClearLastActionAt clears the value of the "last_action_at" field.
func (u *CharacterUpsertBulk) ClearLastActionAt() *CharacterUpsertBulk {
	return u.Update(func(s *CharacterUpsert) {
		s.ClearLastActionAt()
	})
}

// Exec executes the query.
func (u *CharacterUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CharacterCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CharacterCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CharacterUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
