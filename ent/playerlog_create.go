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
)

// PlayerLogCreate is the builder for creating a PlayerLog entity.
type PlayerLogCreate struct {
	config
	mutation *PlayerLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCharacterID sets the "character_id" field.
func (_c *PlayerLogCreate) SetCharacterID(v string) *PlayerLogCreate {
	_c.mutation.SetCharacterID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *PlayerLogCreate) SetKind(v playerlog.Kind) *PlayerLogCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *PlayerLogCreate) SetPayload(v string) *PlayerLogCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PlayerLogCreate) SetTimestamp(v time.Time) *PlayerLogCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PlayerLogCreate) SetNillableTimestamp(v *time.Time) *PlayerLogCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// Mutation returns the PlayerLogMutation object of the builder.
func (_c *PlayerLogCreate) Mutation() *PlayerLogMutation {
	return _c.mutation
}

// Save creates the PlayerLog in the database.
func (_c *PlayerLogCreate) Save(ctx context.Context) (*PlayerLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlayerLogCreate) SaveX(ctx context.Context) *PlayerLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlayerLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlayerLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlayerLogCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := playerlog.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlayerLogCreate) check() error {
	if _, ok := _c.mutation.CharacterID(); !ok {
		return &ValidationError{Name: "character_id", err: errors.New(`ent: missing required field "PlayerLog.character_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "PlayerLog.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := playerlog.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PlayerLog.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "PlayerLog.payload"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PlayerLog.timestamp"`)}
	}
	return nil
}

func (_c *PlayerLogCreate) sqlSave(ctx context.Context) (*PlayerLog, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PlayerLogCreate) createSpec() (*PlayerLog, *sqlgraph.CreateSpec) {
	var (
		_node = &PlayerLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(playerlog.Table, sqlgraph.NewFieldSpec(playerlog.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.CharacterID(); ok {
		_spec.SetField(playerlog.FieldCharacterID, field.TypeString, value)
		_node.CharacterID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(playerlog.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(playerlog.FieldPayload, field.TypeString, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(playerlog.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PlayerLog.Create().
//		SetCharacterID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlayerLogUpsert) {
//			SetCharacterID(v+v).
//		}).
//		Exec(ctx)
func (_c *PlayerLogCreate) OnConflict(opts ...sql.ConflictOption) *PlayerLogUpsertOne {
	_c.conflict = opts
	return &PlayerLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PlayerLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlayerLogCreate) OnConflictColumns(columns ...string) *PlayerLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlayerLogUpsertOne{
		create: _c,
	}
}

type (
	// PlayerLogUpsertOne is the builder for "upsert"-ing
	//  one PlayerLog node.
	PlayerLogUpsertOne struct {
		create *PlayerLogCreate
	}

	// PlayerLogUpsert is the "OnConflict" setter.
	PlayerLogUpsert struct {
		*sql.UpdateSet
	}
)

// SetCharacterID sets the "character_id" field.
func (u *PlayerLogUpsert) SetCharacterID(v string) *PlayerLogUpsert {
	u.Set(playerlog.FieldCharacterID, v)
	return u
}

// UpdateCharacterID sets the "character_id" field to the value that was provided on create.
func (u *PlayerLogUpsert) UpdateCharacterID() *PlayerLogUpsert {
	u.SetExcluded(playerlog.FieldCharacterID)
	return u
}

// SetKind sets the "kind" field.
func (u *PlayerLogUpsert) SetKind(v playerlog.Kind) *PlayerLogUpsert {
	u.Set(playerlog.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *PlayerLogUpsert) UpdateKind() *PlayerLogUpsert {
	u.SetExcluded(playerlog.FieldKind)
	return u
}

// SetPayload sets the "payload" field.
func (u *PlayerLogUpsert) SetPayload(v string) *PlayerLogUpsert {
	u.Set(playerlog.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *PlayerLogUpsert) UpdatePayload() *PlayerLogUpsert {
	u.SetExcluded(playerlog.FieldPayload)
	return u
}

// SetTimestamp sets the "timestamp" field.
func (u *PlayerLogUpsert) SetTimestamp(v time.Time) *PlayerLogUpsert {
	u.Set(playerlog.FieldTimestamp, v)
	return u
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *PlayerLogUpsert) UpdateTimestamp() *PlayerLogUpsert {
	u.SetExcluded(playerlog.FieldTimestamp)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.PlayerLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PlayerLogUpsertOne) UpdateNewValues() *PlayerLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PlayerLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PlayerLogUpsertOne) Ignore() *PlayerLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlayerLogUpsertOne) DoNothing() *PlayerLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlayerLogCreate.OnConflict
// documentation for more info.
func (u *PlayerLogUpsertOne) Update(set func(*PlayerLogUpsert)) *PlayerLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlayerLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetCharacterID sets the "character_id" field.
func (u *PlayerLogUpsertOne) SetCharacterID(v string) *PlayerLogUpsertOne {
	return u.Update(func(s *PlayerLogUpsert) {
		s.SetCharacterID(v)
	})
}

// UpdateCharacterID sets the "character_id" field to the value that was provided on create.
func (u *PlayerLogUpsertOne) UpdateCharacterID() *PlayerLogUpsertOne {
	return u.Update(func(s *PlayerLogUpsert) {
		s.UpdateCharacterID()
	})
}

// SetKind sets the "kind" field.
func (u *PlayerLogUpsertOne) SetKind(v playerlog.Kind) *PlayerLogUpsertOne {
	return u.Update(func(s *PlayerLogUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *PlayerLogUpsertOne) UpdateKind() *PlayerLogUpsertOne {
	return u.Update(func(s *PlayerLogUpsert) {
		s.UpdateKind()
	})
}

// SetPayload sets the "payload" field.
func (u *PlayerLogUpsertOne) SetPayload(v string) *PlayerLogUpsertOne {
	return u.Update(func(s *PlayerLogUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *PlayerLogUpsertOne) UpdatePayload() *PlayerLogUpsertOne {
	return u.Update(func(s *PlayerLogUpsert) {
		s.UpdatePayload()
	})
}

// SetTimestamp sets the "timestamp" field.
func (u *PlayerLogUpsertOne) SetTimestamp(v time.Time) *PlayerLogUpsertOne {
	return u.Update(func(s *PlayerLogUpsert) {
		s.SetTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *PlayerLogUpsertOne) UpdateTimestamp() *PlayerLogUpsertOne {
	return u.Update(func(s *PlayerLogUpsert) {
		s.UpdateTimestamp()
	})
}

// Exec executes the query.
func (u *PlayerLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlayerLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlayerLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PlayerLogUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PlayerLogUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PlayerLogCreateBulk is the builder for creating many PlayerLog entities in bulk.
type PlayerLogCreateBulk struct {
	config
	err      error
	builders []*PlayerLogCreate
	conflict []sql.ConflictOption
}

// Save creates the PlayerLog entities in the database.
func (_c *PlayerLogCreateBulk) Save(ctx context.Context) ([]*PlayerLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlayerLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlayerLogMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *PlayerLogCreateBulk) SaveX(ctx context.Context) []*PlayerLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlayerLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlayerLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PlayerLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlayerLogUpsert) {
//			SetCharacterID(v+v).
//		}).
//		Exec(ctx)
func (_c *PlayerLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *PlayerLogUpsertBulk {
	_c.conflict = opts
	return &PlayerLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PlayerLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlayerLogCreateBulk) OnConflictColumns(columns ...string) *PlayerLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlayerLogUpsertBulk{
		create: _c,
	}
}

// PlayerLogUpsertBulk is the builder for "upsert"-ing
// a bulk of PlayerLog nodes.
type PlayerLogUpsertBulk struct {
	create *PlayerLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PlayerLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PlayerLogUpsertBulk) UpdateNewValues() *PlayerLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PlayerLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PlayerLogUpsertBulk) Ignore() *PlayerLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlayerLogUpsertBulk) DoNothing() *PlayerLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlayerLogCreateBulk.OnConflict
// documentation for more info.
func (u *PlayerLogUpsertBulk) Update(set func(*PlayerLogUpsert)) *PlayerLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlayerLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetCharacterID sets the "character_id" field.
func (u *PlayerLogUpsertBulk) SetCharacterID(v string) *PlayerLogUpsertBulk {
	return u.Update(func(s *PlayerLogUpsert) {
		s.SetCharacterID(v)
	})
}

// UpdateCharacterID sets the "character_id" field to the value that was provided on create.
func (u *PlayerLogUpsertBulk) UpdateCharacterID() *PlayerLogUpsertBulk {
	return u.Update(func(s *PlayerLogUpsert) {
		s.UpdateCharacterID()
	})
}

// SetKind sets the "kind" field.
func (u *PlayerLogUpsertBulk) SetKind(v playerlog.Kind) *PlayerLogUpsertBulk {
	return u.Update(func(s *PlayerLogUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *PlayerLogUpsertBulk) UpdateKind() *PlayerLogUpsertBulk {
	return u.Update(func(s *PlayerLogUpsert) {
		s.UpdateKind()
	})
}

// SetPayload sets the "payload" field.
func (u *PlayerLogUpsertBulk) SetPayload(v string) *PlayerLogUpsertBulk {
	return u.Update(func(s *PlayerLogUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *PlayerLogUpsertBulk) UpdatePayload() *PlayerLogUpsertBulk {
	return u.Update(func(s *PlayerLogUpsert) {
		s.UpdatePayload()
	})
}

// SetTimestamp sets the "timestamp" field.
func (u *PlayerLogUpsertBulk) SetTimestamp(v time.Time) *PlayerLogUpsertBulk {
	return u.Update(func(s *PlayerLogUpsert) {
		s.SetTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *PlayerLogUpsertBulk) UpdateTimestamp() *PlayerLogUpsertBulk {
	return u.Update(func(s *PlayerLogUpsert) {
		s.UpdateTimestamp()
	})
}

// Exec executes the query.
func (u *PlayerLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PlayerLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlayerLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlayerLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
