// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/elliotbonneville/silt/ent/room"
)

// RoomCreate is the builder for creating a Room entity.
type RoomCreate struct {
	config
	mutation *RoomMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *RoomCreate) SetName(v string) *RoomCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *RoomCreate) SetDescription(v string) *RoomCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetExits sets the "exits" field.
func (_c *RoomCreate) SetExits(v map[string]string) *RoomCreate {
	_c.mutation.SetExits(v)
	return _c
}

// SetIsStarting sets the "is_starting" field.
func (_c *RoomCreate) SetIsStarting(v bool) *RoomCreate {
	_c.mutation.SetIsStarting(v)
	return _c
}

// SetNillableIsStarting sets the "is_starting" field if the given value is not nil.
func (_c *RoomCreate) SetNillableIsStarting(v *bool) *RoomCreate {
	if v != nil {
		_c.SetIsStarting(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RoomCreate) SetID(v string) *RoomCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RoomMutation object of the builder.
func (_c *RoomCreate) Mutation() *RoomMutation {
	return _c.mutation
}

// Save creates the Room in the database.
func (_c *RoomCreate) Save(ctx context.Context) (*Room, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoomCreate) SaveX(ctx context.Context) *Room {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoomCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoomCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoomCreate) defaults() {
	if _, ok := _c.mutation.IsStarting(); !ok {
		v := room.DefaultIsStarting
		_c.mutation.SetIsStarting(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoomCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Room.name"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Room.description"`)}
	}
	if _, ok := _c.mutation.IsStarting(); !ok {
		return &ValidationError{Name: "is_starting", err: errors.New(`ent: missing required field "Room.is_starting"`)}
	}
	return nil
}

func (_c *RoomCreate) sqlSave(ctx context.Context) (*Room, error) {
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
			return nil, fmt.Errorf("unexpected Room.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RoomCreate) createSpec() (*Room, *sqlgraph.CreateSpec) {
	var (
		_node = &Room{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(room.Table, sqlgraph.NewFieldSpec(room.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(room.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(room.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Exits(); ok {
		_spec.SetField(room.FieldExits, field.TypeJSON, value)
		_node.Exits = value
	}
	if value, ok := _c.mutation.IsStarting(); ok {
		_spec.SetField(room.FieldIsStarting, field.TypeBool, value)
		_node.IsStarting = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Room.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RoomUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *RoomCreate) OnConflict(opts ...sql.ConflictOption) *RoomUpsertOne {
	_c.conflict = opts
	return &RoomUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Room.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RoomCreate) OnConflictColumns(columns ...string) *RoomUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RoomUpsertOne{
		create: _c,
	}
}

type (
	// RoomUpsertOne is the builder for "upsert"-ing
	//  one Room node.
	RoomUpsertOne struct {
		create *RoomCreate
	}

	// RoomUpsert is the "OnConflict" setter.
	RoomUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *RoomUpsert) SetName(v string) *RoomUpsert {
	u.Set(room.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *RoomUpsert) UpdateName() *RoomUpsert {
	u.SetExcluded(room.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *RoomUpsert) SetDescription(v string) *RoomUpsert {
	u.Set(room.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *RoomUpsert) UpdateDescription() *RoomUpsert {
	u.SetExcluded(room.FieldDescription)
	return u
}

// SetExits sets the "exits" field.
func (u *RoomUpsert) SetExits(v map[string]string) *RoomUpsert {
	u.Set(room.FieldExits, v)
	return u
}

// UpdateExits sets the "exits" field to the value that was provided on create.
func (u *RoomUpsert) UpdateExits() *RoomUpsert {
	u.SetExcluded(room.FieldExits)
	return u
}

// ClearExits clears the value of the "exits" field.
func (u *RoomUpsert) ClearExits() *RoomUpsert {
	u.SetNull(room.FieldExits)
	return u
}

// SetIsStarting sets the "is_starting" field.
func (u *RoomUpsert) SetIsStarting(v bool) *RoomUpsert {
	u.Set(room.FieldIsStarting, v)
	return u
}

// UpdateIsStarting sets the "is_starting" field to the value that was provided on create.
func (u *RoomUpsert) UpdateIsStarting() *RoomUpsert {
	u.SetExcluded(room.FieldIsStarting)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Room.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(room.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RoomUpsertOne) UpdateNewValues() *RoomUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(room.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Room.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RoomUpsertOne) Ignore() *RoomUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RoomUpsertOne) DoNothing() *RoomUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RoomCreate.OnConflict
// documentation for more info.
func (u *RoomUpsertOne) Update(set func(*RoomUpsert)) *RoomUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RoomUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *RoomUpsertOne) SetName(v string) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *RoomUpsertOne) UpdateName() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *RoomUpsertOne) SetDescription(v string) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *RoomUpsertOne) UpdateDescription() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateDescription()
	})
}

// SetExits sets the "exits" field.
func (u *RoomUpsertOne) SetExits(v map[string]string) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.SetExits(v)
	})
}

// UpdateExits sets the "exits" field to the value that was provided on create.
func (u *RoomUpsertOne) UpdateExits() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateExits()
	})
}

// ClearExits clears the value of the "exits" field.
func (u *RoomUpsertOne) ClearExits() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.ClearExits()
	})
}

// SetIsStarting sets the "is_starting" field.
func (u *RoomUpsertOne) SetIsStarting(v bool) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.SetIsStarting(v)
	})
}

// UpdateIsStarting sets the "is_starting" field to the value that was provided on create.
func (u *RoomUpsertOne) UpdateIsStarting() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateIsStarting()
	})
}

// Exec executes the query.
func (u *RoomUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RoomCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RoomUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RoomUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RoomUpsertOne.ID is not supported by MySQL driver. Use RoomUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RoomUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RoomCreateBulk is the builder for creating many Room entities in bulk.
type RoomCreateBulk struct {
	config
	err      error
	builders []*RoomCreate
	conflict []sql.ConflictOption
}

// Save creates the Room entities in the database.
func (_c *RoomCreateBulk) Save(ctx context.Context) ([]*Room, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Room, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoomMutation)
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
func (_c *RoomCreateBulk) SaveX(ctx context.Context) []*Room {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoomCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoomCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Room.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RoomUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *RoomCreateBulk) OnConflict(opts ...sql.ConflictOption) *RoomUpsertBulk {
	_c.conflict = opts
	return &RoomUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Room.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RoomCreateBulk) OnConflictColumns(columns ...string) *RoomUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RoomUpsertBulk{
		create: _c,
	}
}

// RoomUpsertBulk is the builder for "upsert"-ing
// a bulk of Room nodes.
type RoomUpsertBulk struct {
	create *RoomCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Room.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(room.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RoomUpsertBulk) UpdateNewValues() *RoomUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(room.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Room.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RoomUpsertBulk) Ignore() *RoomUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RoomUpsertBulk) DoNothing() *RoomUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RoomCreateBulk.OnConflict
// documentation for more info.
func (u *RoomUpsertBulk) Update(set func(*RoomUpsert)) *RoomUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RoomUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *RoomUpsertBulk) SetName(v string) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *RoomUpsertBulk) UpdateName() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *RoomUpsertBulk) SetDescription(v string) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *RoomUpsertBulk) UpdateDescription() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateDescription()
	})
}

// SetExits sets the "exits" field.
func (u *RoomUpsertBulk) SetExits(v map[string]string) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.SetExits(v)
	})
}

// UpdateExits sets the "exits" field to the value that was provided on create.
func (u *RoomUpsertBulk) UpdateExits() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateExits()
	})
}

// ClearExits clears the value of the "exits" field.
func (u *RoomUpsertBulk) ClearExits() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.ClearExits()
	})
}

// SetIsStarting sets the "is_starting" field.
func (u *RoomUpsertBulk) SetIsStarting(v bool) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.SetIsStarting(v)
	})
}

// UpdateIsStarting sets the "is_starting" field to the value that was provided on create.
func (u *RoomUpsertBulk) UpdateIsStarting() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateIsStarting()
	})
}

// Exec executes the query.
func (u *RoomUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RoomCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RoomCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RoomUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
