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
	"github.com/elliotbonneville/silt/ent/item"
)

// ItemCreate is the builder for creating a Item entity.
type ItemCreate struct {
	config
	mutation *ItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *ItemCreate) SetName(v string) *ItemCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ItemCreate) SetDescription(v string) *ItemCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ItemCreate) SetNillableDescription(v *string) *ItemCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetType sets the "type" field.
func (_c *ItemCreate) SetType(v item.Type) *ItemCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetStats sets the "stats" field.
func (_c *ItemCreate) SetStats(v map[string]interface{}) *ItemCreate {
	_c.mutation.SetStats(v)
	return _c
}

// SetRoomID sets the "room_id" field.
func (_c *ItemCreate) SetRoomID(v string) *ItemCreate {
	_c.mutation.SetRoomID(v)
	return _c
}

// SetNillableRoomID sets the "room_id" field if the given value is not nil.
func (_c *ItemCreate) SetNillableRoomID(v *string) *ItemCreate {
	if v != nil {
		_c.SetRoomID(*v)
	}
	return _c
}

// SetCharacterID sets the "character_id" field.
func (_c *ItemCreate) SetCharacterID(v string) *ItemCreate {
	_c.mutation.SetCharacterID(v)
	return _c
}

// SetNillableCharacterID sets the "character_id" field if the given value is not nil.
func (_c *ItemCreate) SetNillableCharacterID(v *string) *ItemCreate {
	if v != nil {
		_c.SetCharacterID(*v)
	}
	return _c
}

// SetIsEquipped sets the "is_equipped" field.
func (_c *ItemCreate) SetIsEquipped(v bool) *ItemCreate {
	_c.mutation.SetIsEquipped(v)
	return _c
}

// SetNillableIsEquipped sets the "is_equipped" field if the given value is not nil.
func (_c *ItemCreate) SetNillableIsEquipped(v *bool) *ItemCreate {
	if v != nil {
		_c.SetIsEquipped(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ItemCreate) SetID(v string) *ItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ItemMutation object of the builder.
func (_c *ItemCreate) Mutation() *ItemMutation {
	return _c.mutation
}

// Save creates the Item in the database.
func (_c *ItemCreate) Save(ctx context.Context) (*Item, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ItemCreate) SaveX(ctx context.Context) *Item {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ItemCreate) defaults() {
	if _, ok := _c.mutation.IsEquipped(); !ok {
		v := item.DefaultIsEquipped
		_c.mutation.SetIsEquipped(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ItemCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Item.name"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Item.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := item.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Item.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsEquipped(); !ok {
		return &ValidationError{Name: "is_equipped", err: errors.New(`ent: missing required field "Item.is_equipped"`)}
	}
	return nil
}

func (_c *ItemCreate) sqlSave(ctx context.Context) (*Item, error) {
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
			return nil, fmt.Errorf("unexpected Item.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ItemCreate) createSpec() (*Item, *sqlgraph.CreateSpec) {
	var (
		_node = &Item{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(item.Table, sqlgraph.NewFieldSpec(item.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(item.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(item.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(item.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Stats(); ok {
		_spec.SetField(item.FieldStats, field.TypeJSON, value)
		_node.Stats = value
	}
	if value, ok := _c.mutation.RoomID(); ok {
		_spec.SetField(item.FieldRoomID, field.TypeString, value)
		_node.RoomID = value
	}
	if value, ok := _c.mutation.CharacterID(); ok {
		_spec.SetField(item.FieldCharacterID, field.TypeString, value)
		_node.CharacterID = value
	}
	if value, ok := _c.mutation.IsEquipped(); ok {
		_spec.SetField(item.FieldIsEquipped, field.TypeBool, value)
		_node.IsEquipped = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Item.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ItemUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *ItemCreate) OnConflict(opts ...sql.ConflictOption) *ItemUpsertOne {
	_c.conflict = opts
	return &ItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Item.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ItemCreate) OnConflictColumns(columns ...string) *ItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ItemUpsertOne{
		create: _c,
	}
}

type (
	// ItemUpsertOne is the builder for "upsert"-ing
	//  one Item node.
	ItemUpsertOne struct {
		create *ItemCreate
	}

	// ItemUpsert is the "OnConflict" setter.
	ItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *ItemUpsert) SetName(v string) *ItemUpsert {
	u.Set(item.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ItemUpsert) UpdateName() *ItemUpsert {
	u.SetExcluded(item.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *ItemUpsert) SetDescription(v string) *ItemUpsert {
	u.Set(item.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ItemUpsert) UpdateDescription() *ItemUpsert {
	u.SetExcluded(item.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *ItemUpsert) ClearDescription() *ItemUpsert {
	u.SetNull(item.FieldDescription)
	return u
}

// SetType sets the "type" field.
func (u *ItemUpsert) SetType(v item.Type) *ItemUpsert {
	u.Set(item.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *ItemUpsert) UpdateType() *ItemUpsert {
	u.SetExcluded(item.FieldType)
	return u
}

// SetStats sets the "stats" field.
func (u *ItemUpsert) SetStats(v map[string]interface{}) *ItemUpsert {
	u.Set(item.FieldStats, v)
	return u
}

// UpdateStats sets the "stats" field to the value that was provided on create.
func (u *ItemUpsert) UpdateStats() *ItemUpsert {
	u.SetExcluded(item.FieldStats)
	return u
}

// ClearStats clears the value of the "stats" field.
func (u *ItemUpsert) ClearStats() *ItemUpsert {
	u.SetNull(item.FieldStats)
	return u
}

// SetRoomID sets the "room_id" field.
func (u *ItemUpsert) SetRoomID(v string) *ItemUpsert {
	u.Set(item.FieldRoomID, v)
	return u
}

// UpdateRoomID sets the "room_id" field to the value that was provided on create.
func (u *ItemUpsert) UpdateRoomID() *ItemUpsert {
	u.SetExcluded(item.FieldRoomID)
	return u
}

// ClearRoomID clears the value of the "room_id" field.
func (u *ItemUpsert) ClearRoomID() *ItemUpsert {
	u.SetNull(item.FieldRoomID)
	return u
}

// SetCharacterID sets the "character_id" field.
func (u *ItemUpsert) SetCharacterID(v string) *ItemUpsert {
	u.Set(item.FieldCharacterID, v)
	return u
}

// UpdateCharacterID sets the "character_id" field to the value that was provided on create.
func (u *ItemUpsert) UpdateCharacterID() *ItemUpsert {
	u.SetExcluded(item.FieldCharacterID)
	return u
}

// ClearCharacterID clears the value of the "character_id" field.
func (u *ItemUpsert) ClearCharacterID() *ItemUpsert {
	u.SetNull(item.FieldCharacterID)
	return u
}

// SetIsEquipped sets the "is_equipped" field.
func (u *ItemUpsert) SetIsEquipped(v bool) *ItemUpsert {
	u.Set(item.FieldIsEquipped, v)
	return u
}

// UpdateIsEquipped sets the "is_equipped" field to the value that was provided on create.
func (u *ItemUpsert) UpdateIsEquipped() *ItemUpsert {
	u.SetExcluded(item.FieldIsEquipped)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Item.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(item.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ItemUpsertOne) UpdateNewValues() *ItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(item.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Item.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ItemUpsertOne) Ignore() *ItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ItemUpsertOne) DoNothing() *ItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ItemCreate.OnConflict
// documentation for more info.
func (u *ItemUpsertOne) Update(set func(*ItemUpsert)) *ItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ItemUpsertOne) SetName(v string) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ItemUpsertOne) UpdateName() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *ItemUpsertOne) SetDescription(v string) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ItemUpsertOne) UpdateDescription() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ItemUpsertOne) ClearDescription() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.ClearDescription()
	})
}

// SetType sets the "type" field.
func (u *ItemUpsertOne) SetType(v item.Type) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *ItemUpsertOne) UpdateType() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateType()
	})
}

// SetStats sets the "stats" field.
func (u *ItemUpsertOne) SetStats(v map[string]interface{}) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.SetStats(v)
	})
}

// UpdateStats sets the "stats" field to the value that was provided on create.
func (u *ItemUpsertOne) UpdateStats() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateStats()
	})
}

// ClearStats clears the value of the "stats" field.
func (u *ItemUpsertOne) ClearStats() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.ClearStats()
	})
}

// SetRoomID sets the "room_id" field.
func (u *ItemUpsertOne) SetRoomID(v string) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.SetRoomID(v)
	})
}

// UpdateRoomID sets the "room_id" field to the value that was provided on create.
func (u *ItemUpsertOne) UpdateRoomID() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateRoomID()
	})
}

// ClearRoomID clears the value of the "room_id" field.
func (u *ItemUpsertOne) ClearRoomID() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.ClearRoomID()
	})
}

// SetCharacterID sets the "character_id" field.
func (u *ItemUpsertOne) SetCharacterID(v string) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.SetCharacterID(v)
	})
}

// UpdateCharacterID sets the "character_id" field to the value that was provided on create.
func (u *ItemUpsertOne) UpdateCharacterID() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateCharacterID()
	})
}

// ClearCharacterID clears the value of the "character_id" field.
func (u *ItemUpsertOne) ClearCharacterID() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.ClearCharacterID()
	})
}

// SetIsEquipped sets the "is_equipped" field.
func (u *ItemUpsertOne) SetIsEquipped(v bool) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.SetIsEquipped(v)
	})
}

// UpdateIsEquipped sets the "is_equipped" field to the value that was provided on create.
func (u *ItemUpsertOne) UpdateIsEquipped() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateIsEquipped()
	})
}

// Exec executes the query.
func (u *ItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ItemUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ItemUpsertOne.ID is not supported by MySQL driver. Use ItemUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ItemUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ItemCreateBulk is the builder for creating many Item entities in bulk.
type ItemCreateBulk struct {
	config
	err      error
	builders []*ItemCreate
	conflict []sql.ConflictOption
}

// Save creates the Item entities in the database.
func (_c *ItemCreateBulk) Save(ctx context.Context) ([]*Item, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Item, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ItemMutation)
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
func (_c *ItemCreateBulk) SaveX(ctx context.Context) []*Item {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Item.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ItemUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *ItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *ItemUpsertBulk {
	_c.conflict = opts
	return &ItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Item.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ItemCreateBulk) OnConflictColumns(columns ...string) *ItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ItemUpsertBulk{
		create: _c,
	}
}

// ItemUpsertBulk is the builder for "upsert"-ing
// a bulk of Item nodes.
type ItemUpsertBulk struct {
	create *ItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Item.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(item.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ItemUpsertBulk) UpdateNewValues() *ItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(item.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Item.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ItemUpsertBulk) Ignore() *ItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ItemUpsertBulk) DoNothing() *ItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ItemCreateBulk.OnConflict
// documentation for more info.
func (u *ItemUpsertBulk) Update(set func(*ItemUpsert)) *ItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ItemUpsertBulk) SetName(v string) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ItemUpsertBulk) UpdateName() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *ItemUpsertBulk) SetDescription(v string) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ItemUpsertBulk) UpdateDescription() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ItemUpsertBulk) ClearDescription() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.ClearDescription()
	})
}

// SetType sets the "type" field.
func (u *ItemUpsertBulk) SetType(v item.Type) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *ItemUpsertBulk) UpdateType() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateType()
	})
}

// SetStats sets the "stats" field.
func (u *ItemUpsertBulk) SetStats(v map[string]interface{}) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.SetStats(v)
	})
}

// UpdateStats sets the "stats" field to the value that was provided on create.
func (u *ItemUpsertBulk) UpdateStats() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateStats()
	})
}

// ClearStats clears the value of the "stats" field.
func (u *ItemUpsertBulk) ClearStats() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.ClearStats()
	})
}

// SetRoomID sets the "room_id" field.
func (u *ItemUpsertBulk) SetRoomID(v string) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.SetRoomID(v)
	})
}

// UpdateRoomID sets the "room_id" field to the value that was provided on create.
func (u *ItemUpsertBulk) UpdateRoomID() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateRoomID()
	})
}

// ClearRoomID clears the value of the "room_id" field.
func (u *ItemUpsertBulk) ClearRoomID() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.ClearRoomID()
	})
}

// SetCharacterID sets the "character_id" field.
func (u *ItemUpsertBulk) SetCharacterID(v string) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.SetCharacterID(v)
	})
}

// UpdateCharacterID sets the "character_id" field to the value that was provided on create.
func (u *ItemUpsertBulk) UpdateCharacterID() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateCharacterID()
	})
}

// ClearCharacterID clears the value of the "character_id" field.
func (u *ItemUpsertBulk) ClearCharacterID() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.ClearCharacterID()
	})
}

// SetIsEquipped sets the "is_equipped" field.
func (u *ItemUpsertBulk) SetIsEquipped(v bool) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.SetIsEquipped(v)
	})
}

// UpdateIsEquipped sets the "is_equipped" field to the value that was provided on create.
func (u *ItemUpsertBulk) UpdateIsEquipped() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateIsEquipped()
	})
}

// Exec executes the query.
func (u *ItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
