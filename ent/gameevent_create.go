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
	"github.com/elliotbonneville/silt/ent/gameevent"
)

// GameEventCreate is the builder for creating a GameEvent entity.
type GameEventCreate struct {
	config
	mutation *GameEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetType sets the "type" field.
func (_c *GameEventCreate) SetType(v string) *GameEventCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *GameEventCreate) SetTimestamp(v time.Time) *GameEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *GameEventCreate) SetNillableTimestamp(v *time.Time) *GameEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetOriginRoomID sets the "origin_room_id" field.
func (_c *GameEventCreate) SetOriginRoomID(v string) *GameEventCreate {
	_c.mutation.SetOriginRoomID(v)
	return _c
}

// SetNillableOriginRoomID sets the "origin_room_id" field if the given value is not nil.
func (_c *GameEventCreate) SetNillableOriginRoomID(v *string) *GameEventCreate {
	if v != nil {
		_c.SetOriginRoomID(*v)
	}
	return _c
}

// SetVisibility sets the "visibility" field.
func (_c *GameEventCreate) SetVisibility(v gameevent.Visibility) *GameEventCreate {
	_c.mutation.SetVisibility(v)
	return _c
}

// SetNillableVisibility sets the "visibility" field if the given value is not nil.
func (_c *GameEventCreate) SetNillableVisibility(v *gameevent.Visibility) *GameEventCreate {
	if v != nil {
		_c.SetVisibility(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *GameEventCreate) SetContent(v string) *GameEventCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *GameEventCreate) SetNillableContent(v *string) *GameEventCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *GameEventCreate) SetPayload(v map[string]interface{}) *GameEventCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetRecipients sets the "recipients" field.
func (_c *GameEventCreate) SetRecipients(v []string) *GameEventCreate {
	_c.mutation.SetRecipients(v)
	return _c
}

// SetRelatedEntities sets the "related_entities" field.
func (_c *GameEventCreate) SetRelatedEntities(v []string) *GameEventCreate {
	_c.mutation.SetRelatedEntities(v)
	return _c
}

// SetID sets the "id" field.
func (_c *GameEventCreate) SetID(v string) *GameEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the GameEventMutation object of the builder.
func (_c *GameEventCreate) Mutation() *GameEventMutation {
	return _c.mutation
}

// Save creates the GameEvent in the database.
func (_c *GameEventCreate) Save(ctx context.Context) (*GameEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GameEventCreate) SaveX(ctx context.Context) *GameEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GameEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GameEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GameEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := gameevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Visibility(); !ok {
		v := gameevent.DefaultVisibility
		_c.mutation.SetVisibility(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GameEventCreate) check() error {
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "GameEvent.type"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "GameEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Visibility(); !ok {
		return &ValidationError{Name: "visibility", err: errors.New(`ent: missing required field "GameEvent.visibility"`)}
	}
	if v, ok := _c.mutation.Visibility(); ok {
		if err := gameevent.VisibilityValidator(v); err != nil {
			return &ValidationError{Name: "visibility", err: fmt.Errorf(`ent: validator failed for field "GameEvent.visibility": %w`, err)}
		}
	}
	return nil
}

func (_c *GameEventCreate) sqlSave(ctx context.Context) (*GameEvent, error) {
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
			return nil, fmt.Errorf("unexpected GameEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GameEventCreate) createSpec() (*GameEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &GameEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gameevent.Table, sqlgraph.NewFieldSpec(gameevent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(gameevent.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(gameevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.OriginRoomID(); ok {
		_spec.SetField(gameevent.FieldOriginRoomID, field.TypeString, value)
		_node.OriginRoomID = value
	}
	if value, ok := _c.mutation.Visibility(); ok {
		_spec.SetField(gameevent.FieldVisibility, field.TypeEnum, value)
		_node.Visibility = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(gameevent.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(gameevent.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Recipients(); ok {
		_spec.SetField(gameevent.FieldRecipients, field.TypeJSON, value)
		_node.Recipients = value
	}
	if value, ok := _c.mutation.RelatedEntities(); ok {
		_spec.SetField(gameevent.FieldRelatedEntities, field.TypeJSON, value)
		_node.RelatedEntities = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GameEvent.Create().
//		SetType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GameEventUpsert) {
//			SetType(v+v).
//		}).
//		Exec(ctx)
func (_c *GameEventCreate) OnConflict(opts ...sql.ConflictOption) *GameEventUpsertOne {
	_c.conflict = opts
	return &GameEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GameEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GameEventCreate) OnConflictColumns(columns ...string) *GameEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GameEventUpsertOne{
		create: _c,
	}
}

type (
	// GameEventUpsertOne is the builder for "upsert"-ing
	//  one GameEvent node.
	GameEventUpsertOne struct {
		create *GameEventCreate
	}

	// GameEventUpsert is the "OnConflict" setter.
	GameEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetType sets the "type" field.
func (u *GameEventUpsert) SetType(v string) *GameEventUpsert {
	u.Set(gameevent.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *GameEventUpsert) UpdateType() *GameEventUpsert {
	u.SetExcluded(gameevent.FieldType)
	return u
}

// SetTimestamp sets the "timestamp" field.
func (u *GameEventUpsert) SetTimestamp(v time.Time) *GameEventUpsert {
	u.Set(gameevent.FieldTimestamp, v)
	return u
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *GameEventUpsert) UpdateTimestamp() *GameEventUpsert {
	u.SetExcluded(gameevent.FieldTimestamp)
	return u
}

// SetOriginRoomID sets the "origin_room_id" field.
func (u *GameEventUpsert) SetOriginRoomID(v string) *GameEventUpsert {
	u.Set(gameevent.FieldOriginRoomID, v)
	return u
}

// UpdateOriginRoomID sets the "origin_room_id" field to the value that was provided on create.
func (u *GameEventUpsert) UpdateOriginRoomID() *GameEventUpsert {
	u.SetExcluded(gameevent.FieldOriginRoomID)
	return u
}

// ClearOriginRoomID clears the value of the "origin_room_id" field.
func (u *GameEventUpsert) ClearOriginRoomID() *GameEventUpsert {
	u.SetNull(gameevent.FieldOriginRoomID)
	return u
}

// SetVisibility sets the "visibility" field.
func (u *GameEventUpsert) SetVisibility(v gameevent.Visibility) *GameEventUpsert {
	u.Set(gameevent.FieldVisibility, v)
	return u
}

// UpdateVisibility sets the "visibility" field to the value that was provided on create.
func (u *GameEventUpsert) UpdateVisibility() *GameEventUpsert {
	u.SetExcluded(gameevent.FieldVisibility)
	return u
}

// SetContent sets the "content" field.
func (u *GameEventUpsert) SetContent(v string) *GameEventUpsert {
	u.Set(gameevent.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *GameEventUpsert) UpdateContent() *GameEventUpsert {
	u.SetExcluded(gameevent.FieldContent)
	return u
}

// ClearContent clears the value of the "content" field.
func (u *GameEventUpsert) ClearContent() *GameEventUpsert {
	u.SetNull(gameevent.FieldContent)
	return u
}

// SetPayload sets the "payload" field.
func (u *GameEventUpsert) SetPayload(v map[string]interface{}) *GameEventUpsert {
	u.Set(gameevent.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *GameEventUpsert) UpdatePayload() *GameEventUpsert {
	u.SetExcluded(gameevent.FieldPayload)
	return u
}

// ClearPayload clears the value of the "payload" field.
func (u *GameEventUpsert) ClearPayload() *GameEventUpsert {
	u.SetNull(gameevent.FieldPayload)
	return u
}

// SetRecipients sets the "recipients" field.
func (u *GameEventUpsert) SetRecipients(v []string) *GameEventUpsert {
	u.Set(gameevent.FieldRecipients, v)
	return u
}

// UpdateRecipients sets the "recipients" field to the value that was provided on create.
func (u *GameEventUpsert) UpdateRecipients() *GameEventUpsert {
	u.SetExcluded(gameevent.FieldRecipients)
	return u
}

// ClearRecipients clears the value of the "recipients" field.
func (u *GameEventUpsert) ClearRecipients() *GameEventUpsert {
	u.SetNull(gameevent.FieldRecipients)
	return u
}

// SetRelatedEntities sets the "related_entities" field.
func (u *GameEventUpsert) SetRelatedEntities(v []string) *GameEventUpsert {
	u.Set(gameevent.FieldRelatedEntities, v)
	return u
}

// UpdateRelatedEntities sets the "related_entities" field to the value that was provided on create.
func (u *GameEventUpsert) UpdateRelatedEntities() *GameEventUpsert {
	u.SetExcluded(gameevent.FieldRelatedEntities)
	return u
}

// ClearRelatedEntities clears the value of the "related_entities" field.
func (u *GameEventUpsert) ClearRelatedEntities() *GameEventUpsert {
	u.SetNull(gameevent.FieldRelatedEntities)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.GameEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(gameevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GameEventUpsertOne) UpdateNewValues() *GameEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(gameevent.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GameEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GameEventUpsertOne) Ignore() *GameEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GameEventUpsertOne) DoNothing() *GameEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GameEventCreate.OnConflict
// documentation for more info.
func (u *GameEventUpsertOne) Update(set func(*GameEventUpsert)) *GameEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GameEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetType sets the "type" field.
func (u *GameEventUpsertOne) SetType(v string) *GameEventUpsertOne {
	return u.Update(func(s *GameEventUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *GameEventUpsertOne) UpdateType() *GameEventUpsertOne {
	return u.Update(func(s *GameEventUpsert) {
		s.UpdateType()
	})
}

// SetTimestamp sets the "timestamp" field.
func (u *GameEventUpsertOne) SetTimestamp(v time.Time) *GameEventUpsertOne {
	return u.Update(func(s *GameEventUpsert) {
		s.SetTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *GameEventUpsertOne) UpdateTimestamp() *GameEventUpsertOne {
	return u.Update(func(s *GameEventUpsert) {
		s.UpdateTimestamp()
	})
}

// SetOriginRoomID sets the "origin_room_id" field.
func (u *GameEventUpsertOne) SetOriginRoomID(v string) *GameEventUpsertOne {
	return u.Update(func(s *GameEventUpsert) {
		s.SetOriginRoomID(v)
	})
}

// UpdateOriginRoomID sets the "origin_room_id" field to the value that was provided on create.
func (u *GameEventUpsertOne) UpdateOriginRoomID() *GameEventUpsertOne {
	return u.Update(func(s *GameEventUpsert) {
		s.UpdateOriginRoomID()
	})
}

// ClearOriginRoomID clears the value of the "origin_room_id" field.
func (u *GameEventUpsertOne) ClearOriginRoomID() *GameEventUpsertOne {
	return u.Update(func(s *GameEventUpsert) {
		s.ClearOriginRoomID()
	})
}

// SetVisibility sets the "visibility" field.
func (u *GameEventUpsertOne) SetVisibility(v gameevent.Visibility) *GameEventUpsertOne {
	return u.Update(func(s *GameEventUpsert) {
		s.SetVisibility(v)
	})
}

// UpdateVisibility sets the "visibility" field to the value that was provided on create.
func (u *GameEventUpsertOne) UpdateVisibility() *GameEventUpsertOne {
	return u.Update(func(s *GameEventUpsert) {
		s.UpdateVisibility()
	})
}

// SetContent sets the "content" field.
func (u *GameEventUpsertOne) SetContent(v string) *GameEventUpsertOne {
	return u.Update(func(s *GameEventUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *GameEventUpsertOne) UpdateContent() *GameEventUpsertOne {
	return u.Update(func(s *GameEventUpsert) {
		s.UpdateContent()
	})
}

// ClearContent clears the value of the "content" field.
func (u *GameEventUpsertOne) ClearContent() *GameEventUpsertOne {
	return u.Update(func(s *GameEventUpsert) {
		s.ClearContent()
	})
}

// SetPayload sets the "payload" field.
func (u *GameEventUpsertOne) SetPayload(v map[string]interface{}) *GameEventUpsertOne {
	return u.Update(func(s *GameEventUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *GameEventUpsertOne) UpdatePayload() *GameEventUpsertOne {
	return u.Update(func(s *GameEventUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *GameEventUpsertOne) ClearPayload() *GameEventUpsertOne {
	return u.Update(func(s *GameEventUpsert) {
		s.ClearPayload()
	})
}

// SetRecipients sets the "recipients" field.
func (u *GameEventUpsertOne) SetRecipients(v []string) *GameEventUpsertOne {
	return u.Update(func(s *GameEventUpsert) {
		s.SetRecipients(v)
	})
}

// UpdateRecipients sets the "recipients" field to the value that was provided on create.
func (u *GameEventUpsertOne) UpdateRecipients() *GameEventUpsertOne {
	return u.Update(func(s *GameEventUpsert) {
		s.UpdateRecipients()
	})
}

// ClearRecipients clears the value of the "recipients" field.
func (u *GameEventUpsertOne) ClearRecipients() *GameEventUpsertOne {
	return u.Update(func(s *GameEventUpsert) {
		s.ClearRecipients()
	})
}

// SetRelatedEntities sets the "related_entities" field.
func (u *GameEventUpsertOne) SetRelatedEntities(v []string) *GameEventUpsertOne {
	return u.Update(func(s *GameEventUpsert) {
		s.SetRelatedEntities(v)
	})
}

// UpdateRelatedEntities sets the "related_entities" field to the value that was provided on create.
func (u *GameEventUpsertOne) UpdateRelatedEntities() *GameEventUpsertOne {
	return u.Update(func(s *GameEventUpsert) {
		s.UpdateRelatedEntities()
	})
}

// ClearRelatedEntities clears the value of the "related_entities" field.
func (u *GameEventUpsertOne) ClearRelatedEntities() *GameEventUpsertOne {
	return u.Update(func(s *GameEventUpsert) {
		s.ClearRelatedEntities()
	})
}

// Exec executes the query.
func (u *GameEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GameEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GameEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GameEventUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: GameEventUpsertOne.ID is not supported by MySQL driver. Use GameEventUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GameEventUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GameEventCreateBulk is the builder for creating many GameEvent entities in bulk.
type GameEventCreateBulk struct {
	config
	err      error
	builders []*GameEventCreate
	conflict []sql.ConflictOption
}

// Save creates the GameEvent entities in the database.
func (_c *GameEventCreateBulk) Save(ctx context.Context) ([]*GameEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GameEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GameEventMutation)
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
func (_c *GameEventCreateBulk) SaveX(ctx context.Context) []*GameEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GameEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GameEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GameEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GameEventUpsert) {
//			SetType(v+v).
//		}).
//		Exec(ctx)
func (_c *GameEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *GameEventUpsertBulk {
	_c.conflict = opts
	return &GameEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GameEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GameEventCreateBulk) OnConflictColumns(columns ...string) *GameEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GameEventUpsertBulk{
		create: _c,
	}
}

// GameEventUpsertBulk is the builder for "upsert"-ing
// a bulk of GameEvent nodes.
type GameEventUpsertBulk struct {
	create *GameEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GameEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(gameevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GameEventUpsertBulk) UpdateNewValues() *GameEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(gameevent.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GameEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GameEventUpsertBulk) Ignore() *GameEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GameEventUpsertBulk) DoNothing() *GameEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GameEventCreateBulk.OnConflict
// documentation for more info.
func (u *GameEventUpsertBulk) Update(set func(*GameEventUpsert)) *GameEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GameEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetType sets the "type" field.
func (u *GameEventUpsertBulk) SetType(v string) *GameEventUpsertBulk {
	return u.Update(func(s *GameEventUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *GameEventUpsertBulk) UpdateType() *GameEventUpsertBulk {
	return u.Update(func(s *GameEventUpsert) {
		s.UpdateType()
	})
}

// SetTimestamp sets the "timestamp" field.
func (u *GameEventUpsertBulk) SetTimestamp(v time.Time) *GameEventUpsertBulk {
	return u.Update(func(s *GameEventUpsert) {
		s.SetTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *GameEventUpsertBulk) UpdateTimestamp() *GameEventUpsertBulk {
	return u.Update(func(s *GameEventUpsert) {
		s.UpdateTimestamp()
	})
}

// SetOriginRoomID sets the "origin_room_id" field.
func (u *GameEventUpsertBulk) SetOriginRoomID(v string) *GameEventUpsertBulk {
	return u.Update(func(s *GameEventUpsert) {
		s.SetOriginRoomID(v)
	})
}

// UpdateOriginRoomID sets the "origin_room_id" field to the value that was provided on create.
func (u *GameEventUpsertBulk) UpdateOriginRoomID() *GameEventUpsertBulk {
	return u.Update(func(s *GameEventUpsert) {
		s.UpdateOriginRoomID()
	})
}

// ClearOriginRoomID clears the value of the "origin_room_id" field.
func (u *GameEventUpsertBulk) ClearOriginRoomID() *GameEventUpsertBulk {
	return u.Update(func(s *GameEventUpsert) {
		s.ClearOriginRoomID()
	})
}

// SetVisibility sets the "visibility" field.
func (u *GameEventUpsertBulk) SetVisibility(v gameevent.Visibility) *GameEventUpsertBulk {
	return u.Update(func(s *GameEventUpsert) {
		s.SetVisibility(v)
	})
}

// UpdateVisibility sets the "visibility" field to the value that was provided on create.
func (u *GameEventUpsertBulk) UpdateVisibility() *GameEventUpsertBulk {
	return u.Update(func(s *GameEventUpsert) {
		s.UpdateVisibility()
	})
}

// SetContent sets the "content" field.
func (u *GameEventUpsertBulk) SetContent(v string) *GameEventUpsertBulk {
	return u.Update(func(s *GameEventUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *GameEventUpsertBulk) UpdateContent() *GameEventUpsertBulk {
	return u.Update(func(s *GameEventUpsert) {
		s.UpdateContent()
	})
}

// ClearContent clears the value of the "content" field.
func (u *GameEventUpsertBulk) ClearContent() *GameEventUpsertBulk {
	return u.Update(func(s *GameEventUpsert) {
		s.ClearContent()
	})
}

// SetPayload sets the "payload" field.
func (u *GameEventUpsertBulk) SetPayload(v map[string]interface{}) *GameEventUpsertBulk {
	return u.Update(func(s *GameEventUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *GameEventUpsertBulk) UpdatePayload() *GameEventUpsertBulk {
	return u.Update(func(s *GameEventUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *GameEventUpsertBulk) ClearPayload() *GameEventUpsertBulk {
	return u.Update(func(s *GameEventUpsert) {
		s.ClearPayload()
	})
}

// SetRecipients sets the "recipients" field.
func (u *GameEventUpsertBulk) SetRecipients(v []string) *GameEventUpsertBulk {
	return u.Update(func(s *GameEventUpsert) {
		s.SetRecipients(v)
	})
}

// UpdateRecipients sets the "recipients" field to the value that was provided on create.
func (u *GameEventUpsertBulk) UpdateRecipients() *GameEventUpsertBulk {
	return u.Update(func(s *GameEventUpsert) {
		s.UpdateRecipients()
	})
}

// ClearRecipients clears the value of the "recipients" field.
func (u *GameEventUpsertBulk) ClearRecipients() *GameEventUpsertBulk {
	return u.Update(func(s *GameEventUpsert) {
		s.ClearRecipients()
	})
}

// SetRelatedEntities sets the "related_entities" field.
func (u *GameEventUpsertBulk) SetRelatedEntities(v []string) *GameEventUpsertBulk {
	return u.Update(func(s *GameEventUpsert) {
		s.SetRelatedEntities(v)
	})
}

// UpdateRelatedEntities sets the "related_entities" field to the value that was provided on create.
func (u *GameEventUpsertBulk) UpdateRelatedEntities() *GameEventUpsertBulk {
	return u.Update(func(s *GameEventUpsert) {
		s.UpdateRelatedEntities()
	})
}

// ClearRelatedEntities clears the value of the "related_entities" field.
func (u *GameEventUpsertBulk) ClearRelatedEntities() *GameEventUpsertBulk {
	return u.Update(func(s *GameEventUpsert) {
		s.ClearRelatedEntities()
	})
}

// Exec executes the query.
func (u *GameEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GameEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GameEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GameEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
