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
)

// GameStateCreate is the builder for creating a GameState entity.
type GameStateCreate struct {
	config
	mutation *GameStateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetIsPaused sets the "is_paused" field.
func (_c *GameStateCreate) SetIsPaused(v bool) *GameStateCreate {
	_c.mutation.SetIsPaused(v)
	return _c
}

// SetNillableIsPaused sets the "is_paused" field if the given value is not nil.
func (_c *GameStateCreate) SetNillableIsPaused(v *bool) *GameStateCreate {
	if v != nil {
		_c.SetIsPaused(*v)
	}
	return _c
}

// SetGameTime sets the "game_time" field.
func (_c *GameStateCreate) SetGameTime(v float64) *GameStateCreate {
	_c.mutation.SetGameTime(v)
	return _c
}

// SetNillableGameTime sets the "game_time" field if the given value is not nil.
func (_c *GameStateCreate) SetNillableGameTime(v *float64) *GameStateCreate {
	if v != nil {
		_c.SetGameTime(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GameStateCreate) SetID(v int) *GameStateCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the GameStateMutation object of the builder.
func (_c *GameStateCreate) Mutation() *GameStateMutation {
	return _c.mutation
}

// Save creates the GameState in the database.
func (_c *GameStateCreate) Save(ctx context.Context) (*GameState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GameStateCreate) SaveX(ctx context.Context) *GameState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GameStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GameStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GameStateCreate) defaults() {
	if _, ok := _c.mutation.IsPaused(); !ok {
		v := gamestate.DefaultIsPaused
		_c.mutation.SetIsPaused(v)
	}
	if _, ok := _c.mutation.GameTime(); !ok {
		v := gamestate.DefaultGameTime
		_c.mutation.SetGameTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GameStateCreate) check() error {
	if _, ok := _c.mutation.IsPaused(); !ok {
		return &ValidationError{Name: "is_paused", err: errors.New(`ent: missing required field "GameState.is_paused"`)}
	}
	if _, ok := _c.mutation.GameTime(); !ok {
		return &ValidationError{Name: "game_time", err: errors.New(`ent: missing required field "GameState.game_time"`)}
	}
	return nil
}

func (_c *GameStateCreate) sqlSave(ctx context.Context) (*GameState, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GameStateCreate) createSpec() (*GameState, *sqlgraph.CreateSpec) {
	var (
		_node = &GameState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gamestate.Table, sqlgraph.NewFieldSpec(gamestate.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.IsPaused(); ok {
		_spec.SetField(gamestate.FieldIsPaused, field.TypeBool, value)
		_node.IsPaused = value
	}
	if value, ok := _c.mutation.GameTime(); ok {
		_spec.SetField(gamestate.FieldGameTime, field.TypeFloat64, value)
		_node.GameTime = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GameState.Create().
//		SetIsPaused(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GameStateUpsert) {
//			SetIsPaused(v+v).
//		}).
//		Exec(ctx)
func (_c *GameStateCreate) OnConflict(opts ...sql.ConflictOption) *GameStateUpsertOne {
	_c.conflict = opts
	return &GameStateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GameState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GameStateCreate) OnConflictColumns(columns ...string) *GameStateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GameStateUpsertOne{
		create: _c,
	}
}

type (
	// GameStateUpsertOne is the builder for "upsert"-ing
	//  one GameState node.
	GameStateUpsertOne struct {
		create *GameStateCreate
	}

	// GameStateUpsert is the "OnConflict" setter.
	GameStateUpsert struct {
		*sql.UpdateSet
	}
)

// SetIsPaused sets the "is_paused" field.
func (u *GameStateUpsert) SetIsPaused(v bool) *GameStateUpsert {
	u.Set(gamestate.FieldIsPaused, v)
	return u
}

// UpdateIsPaused sets the "is_paused" field to the value that was provided on create.
func (u *GameStateUpsert) UpdateIsPaused() *GameStateUpsert {
	u.SetExcluded(gamestate.FieldIsPaused)
	return u
}

// SetGameTime sets the "game_time" field.
func (u *GameStateUpsert) SetGameTime(v float64) *GameStateUpsert {
	u.Set(gamestate.FieldGameTime, v)
	return u
}

// UpdateGameTime sets the "game_time" field to the value that was provided on create.
func (u *GameStateUpsert) UpdateGameTime() *GameStateUpsert {
	u.SetExcluded(gamestate.FieldGameTime)
	return u
}

// AddGameTime adds v to the "game_time" field.
func (u *GameStateUpsert) AddGameTime(v float64) *GameStateUpsert {
	u.Add(gamestate.FieldGameTime, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.GameState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(gamestate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GameStateUpsertOne) UpdateNewValues() *GameStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(gamestate.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GameState.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GameStateUpsertOne) Ignore() *GameStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GameStateUpsertOne) DoNothing() *GameStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GameStateCreate.OnConflict
// documentation for more info.
func (u *GameStateUpsertOne) Update(set func(*GameStateUpsert)) *GameStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GameStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetIsPaused sets the "is_paused" field.
func (u *GameStateUpsertOne) SetIsPaused(v bool) *GameStateUpsertOne {
	return u.Update(func(s *GameStateUpsert) {
		s.SetIsPaused(v)
	})
}

// UpdateIsPaused sets the "is_paused" field to the value that was provided on create.
func (u *GameStateUpsertOne) UpdateIsPaused() *GameStateUpsertOne {
	return u.Update(func(s *GameStateUpsert) {
		s.UpdateIsPaused()
	})
}

// SetGameTime sets the "game_time" field.
func (u *GameStateUpsertOne) SetGameTime(v float64) *GameStateUpsertOne {
	return u.Update(func(s *GameStateUpsert) {
		s.SetGameTime(v)
	})
}

// AddGameTime adds v to the "game_time" field.
func (u *GameStateUpsertOne) AddGameTime(v float64) *GameStateUpsertOne {
	return u.Update(func(s *GameStateUpsert) {
		s.AddGameTime(v)
	})
}

// UpdateGameTime sets the "game_time" field to the value that was provided on create.
func (u *GameStateUpsertOne) UpdateGameTime() *GameStateUpsertOne {
	return u.Update(func(s *GameStateUpsert) {
		s.UpdateGameTime()
	})
}

// Exec executes the query.
func (u *GameStateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GameStateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GameStateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GameStateUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GameStateUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GameStateCreateBulk is the builder for creating many GameState entities in bulk.
type GameStateCreateBulk struct {
	config
	err      error
	builders []*GameStateCreate
	conflict []sql.ConflictOption
}

// Save creates the GameState entities in the database.
func (_c *GameStateCreateBulk) Save(ctx context.Context) ([]*GameState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GameState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GameStateMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
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
func (_c *GameStateCreateBulk) SaveX(ctx context.Context) []*GameState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GameStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GameStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GameState.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GameStateUpsert) {
//			SetIsPaused(v+v).
//		}).
//		Exec(ctx)
func (_c *GameStateCreateBulk) OnConflict(opts ...sql.ConflictOption) *GameStateUpsertBulk {
	_c.conflict = opts
	return &GameStateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GameState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GameStateCreateBulk) OnConflictColumns(columns ...string) *GameStateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GameStateUpsertBulk{
		create: _c,
	}
}

// GameStateUpsertBulk is the builder for "upsert"-ing
// a bulk of GameState nodes.
type GameStateUpsertBulk struct {
	create *GameStateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GameState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(gamestate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GameStateUpsertBulk) UpdateNewValues() *GameStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(gamestate.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GameState.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GameStateUpsertBulk) Ignore() *GameStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GameStateUpsertBulk) DoNothing() *GameStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GameStateCreateBulk.OnConflict
// documentation for more info.
func (u *GameStateUpsertBulk) Update(set func(*GameStateUpsert)) *GameStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GameStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetIsPaused sets the "is_paused" field.
func (u *GameStateUpsertBulk) SetIsPaused(v bool) *GameStateUpsertBulk {
	return u.Update(func(s *GameStateUpsert) {
		s.SetIsPaused(v)
	})
}

// UpdateIsPaused sets the "is_paused" field to the value that was provided on create.
func (u *GameStateUpsertBulk) UpdateIsPaused() *GameStateUpsertBulk {
	return u.Update(func(s *GameStateUpsert) {
		s.UpdateIsPaused()
	})
}

// SetGameTime sets the "game_time" field.
func (u *GameStateUpsertBulk) SetGameTime(v float64) *GameStateUpsertBulk {
	return u.Update(func(s *GameStateUpsert) {
		s.SetGameTime(v)
	})
}

// AddGameTime adds v to the "game_time" field.
func (u *GameStateUpsertBulk) AddGameTime(v float64) *GameStateUpsertBulk {
	return u.Update(func(s *GameStateUpsert) {
		s.AddGameTime(v)
	})
}

// UpdateGameTime sets the "game_time" field to the value that was provided on create.
func (u *GameStateUpsertBulk) UpdateGameTime() *GameStateUpsertBulk {
	return u.Update(func(s *GameStateUpsert) {
		s.UpdateGameTime()
	})
}

// Exec executes the query.
func (u *GameStateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GameStateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GameStateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GameStateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
