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
	"github.com/elliotbonneville/silt/ent/aiagent"
)

// AIAgentCreate is the builder for creating a AIAgent entity.
type AIAgentCreate struct {
	config
	mutation *AIAgentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCharacterID sets the "character_id" field.
func (_c *AIAgentCreate) SetCharacterID(v string) *AIAgentCreate {
	_c.mutation.SetCharacterID(v)
	return _c
}

// SetSystemPrompt sets the "system_prompt" field.
func (_c *AIAgentCreate) SetSystemPrompt(v string) *AIAgentCreate {
	_c.mutation.SetSystemPrompt(v)
	return _c
}

// SetHomeRoomID sets the "home_room_id" field.
func (_c *AIAgentCreate) SetHomeRoomID(v string) *AIAgentCreate {
	_c.mutation.SetHomeRoomID(v)
	return _c
}

// SetMaxRoomsFromHome sets the "max_rooms_from_home" field.
func (_c *AIAgentCreate) SetMaxRoomsFromHome(v int) *AIAgentCreate {
	_c.mutation.SetMaxRoomsFromHome(v)
	return _c
}

// SetNillableMaxRoomsFromHome sets the "max_rooms_from_home" field if the given value is not nil.
func (_c *AIAgentCreate) SetNillableMaxRoomsFromHome(v *int) *AIAgentCreate {
	if v != nil {
		_c.SetMaxRoomsFromHome(*v)
	}
	return _c
}

// SetSpatialMemory sets the "spatial_memory" field.
func (_c *AIAgentCreate) SetSpatialMemory(v string) *AIAgentCreate {
	_c.mutation.SetSpatialMemory(v)
	return _c
}

// SetNillableSpatialMemory sets the "spatial_memory" field if the given value is not nil.
func (_c *AIAgentCreate) SetNillableSpatialMemory(v *string) *AIAgentCreate {
	if v != nil {
		_c.SetSpatialMemory(*v)
	}
	return _c
}

// SetSpatialMemoryUpdatedAt sets the "spatial_memory_updated_at" field.
func (_c *AIAgentCreate) SetSpatialMemoryUpdatedAt(v time.Time) *AIAgentCreate {
	_c.mutation.SetSpatialMemoryUpdatedAt(v)
	return _c
}

// SetNillableSpatialMemoryUpdatedAt sets the "spatial_memory_updated_at" field if the given value is not nil.
func (_c *AIAgentCreate) SetNillableSpatialMemoryUpdatedAt(v *time.Time) *AIAgentCreate {
	if v != nil {
		_c.SetSpatialMemoryUpdatedAt(*v)
	}
	return _c
}

// SetRelationships sets the "relationships" field.
func (_c *AIAgentCreate) SetRelationships(v map[string]interface{}) *AIAgentCreate {
	_c.mutation.SetRelationships(v)
	return _c
}

// SetConversation sets the "conversation" field.
func (_c *AIAgentCreate) SetConversation(v []interface{}) *AIAgentCreate {
	_c.mutation.SetConversation(v)
	return _c
}

// SetLastActionAt sets the "last_action_at" field.
func (_c *AIAgentCreate) SetLastActionAt(v time.Time) *AIAgentCreate {
	_c.mutation.SetLastActionAt(v)
	return _c
}

// SetNillableLastActionAt sets the "last_action_at" field if the given value is not nil.
func (_c *AIAgentCreate) SetNillableLastActionAt(v *time.Time) *AIAgentCreate {
	if v != nil {
		_c.SetLastActionAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AIAgentCreate) SetID(v string) *AIAgentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AIAgentMutation object of the builder.
func (_c *AIAgentCreate) Mutation() *AIAgentMutation {
	return _c.mutation
}

// Save creates the AIAgent in the database.
func (_c *AIAgentCreate) Save(ctx context.Context) (*AIAgent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AIAgentCreate) SaveX(ctx context.Context) *AIAgent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AIAgentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AIAgentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AIAgentCreate) defaults() {
	if _, ok := _c.mutation.MaxRoomsFromHome(); !ok {
		v := aiagent.DefaultMaxRoomsFromHome
		_c.mutation.SetMaxRoomsFromHome(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AIAgentCreate) check() error {
	if _, ok := _c.mutation.CharacterID(); !ok {
		return &ValidationError{Name: "character_id", err: errors.New(`ent: missing required field "AIAgent.character_id"`)}
	}
	if _, ok := _c.mutation.SystemPrompt(); !ok {
		return &ValidationError{Name: "system_prompt", err: errors.New(`ent: missing required field "AIAgent.system_prompt"`)}
	}
	if _, ok := _c.mutation.HomeRoomID(); !ok {
		return &ValidationError{Name: "home_room_id", err: errors.New(`ent: missing required field "AIAgent.home_room_id"`)}
	}
	if _, ok := _c.mutation.MaxRoomsFromHome(); !ok {
		return &ValidationError{Name: "max_rooms_from_home", err: errors.New(`ent: missing required field "AIAgent.max_rooms_from_home"`)}
	}
	if v, ok := _c.mutation.MaxRoomsFromHome(); ok {
		if err := aiagent.MaxRoomsFromHomeValidator(v); err != nil {
			return &ValidationError{Name: "max_rooms_from_home", err: fmt.Errorf(`ent: validator failed for field "AIAgent.max_rooms_from_home": %w`, err)}
		}
	}
	return nil
}

func (_c *AIAgentCreate) sqlSave(ctx context.Context) (*AIAgent, error) {
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
			return nil, fmt.Errorf("unexpected AIAgent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AIAgentCreate) createSpec() (*AIAgent, *sqlgraph.CreateSpec) {
	var (
		_node = &AIAgent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(aiagent.Table, sqlgraph.NewFieldSpec(aiagent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CharacterID(); ok {
		_spec.SetField(aiagent.FieldCharacterID, field.TypeString, value)
		_node.CharacterID = value
	}
	if value, ok := _c.mutation.SystemPrompt(); ok {
		_spec.SetField(aiagent.FieldSystemPrompt, field.TypeString, value)
		_node.SystemPrompt = value
	}
	if value, ok := _c.mutation.HomeRoomID(); ok {
		_spec.SetField(aiagent.FieldHomeRoomID, field.TypeString, value)
		_node.HomeRoomID = value
	}
	if value, ok := _c.mutation.MaxRoomsFromHome(); ok {
		_spec.SetField(aiagent.FieldMaxRoomsFromHome, field.TypeInt, value)
		_node.MaxRoomsFromHome = value
	}
	if value, ok := _c.mutation.SpatialMemory(); ok {
		_spec.SetField(aiagent.FieldSpatialMemory, field.TypeString, value)
		_node.SpatialMemory = value
	}
	if value, ok := _c.mutation.SpatialMemoryUpdatedAt(); ok {
		_spec.SetField(aiagent.FieldSpatialMemoryUpdatedAt, field.TypeTime, value)
		_node.SpatialMemoryUpdatedAt = &value
	}
	if value, ok := _c.mutation.Relationships(); ok {
		_spec.SetField(aiagent.FieldRelationships, field.TypeJSON, value)
		_node.Relationships = value
	}
	if value, ok := _c.mutation.Conversation(); ok {
		_spec.SetField(aiagent.FieldConversation, field.TypeJSON, value)
		_node.Conversation = value
	}
	if value, ok := _c.mutation.LastActionAt(); ok {
		_spec.SetField(aiagent.FieldLastActionAt, field.TypeTime, value)
		_node.LastActionAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AIAgent.Create().
//		SetCharacterID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AIAgentUpsert) {
//			SetCharacterID(v+v).
//		}).
//		Exec(ctx)
func (_c *AIAgentCreate) OnConflict(opts ...sql.ConflictOption) *AIAgentUpsertOne {
	_c.conflict = opts
	return &AIAgentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AIAgent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AIAgentCreate) OnConflictColumns(columns ...string) *AIAgentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AIAgentUpsertOne{
		create: _c,
	}
}

type (
	// AIAgentUpsertOne is the builder for "upsert"-ing
	//  one AIAgent node.
	AIAgentUpsertOne struct {
		create *AIAgentCreate
	}

	// AIAgentUpsert is the "OnConflict" setter.
	AIAgentUpsert struct {
		*sql.UpdateSet
	}
)

// SetCharacterID sets the "character_id" field.
func (u *AIAgentUpsert) SetCharacterID(v string) *AIAgentUpsert {
	u.Set(aiagent.FieldCharacterID, v)
	return u
}

// UpdateCharacterID sets the "character_id" field to the value that was provided on create.
func (u *AIAgentUpsert) UpdateCharacterID() *AIAgentUpsert {
	u.SetExcluded(aiagent.FieldCharacterID)
	return u
}

// SetSystemPrompt sets the "system_prompt" field.
func (u *AIAgentUpsert) SetSystemPrompt(v string) *AIAgentUpsert {
	u.Set(aiagent.FieldSystemPrompt, v)
	return u
}

// UpdateSystemPrompt sets the "system_prompt" field to the value that was provided on create.
func (u *AIAgentUpsert) UpdateSystemPrompt() *AIAgentUpsert {
	u.SetExcluded(aiagent.FieldSystemPrompt)
	return u
}

// SetHomeRoomID sets the "home_room_id" field.
func (u *AIAgentUpsert) SetHomeRoomID(v string) *AIAgentUpsert {
	u.Set(aiagent.FieldHomeRoomID, v)
	return u
}

// UpdateHomeRoomID sets the "home_room_id" field to the value that was provided on create.
func (u *AIAgentUpsert) UpdateHomeRoomID() *AIAgentUpsert {
	u.SetExcluded(aiagent.FieldHomeRoomID)
	return u
}

// SetMaxRoomsFromHome sets the "max_rooms_from_home" field.
func (u *AIAgentUpsert) SetMaxRoomsFromHome(v int) *AIAgentUpsert {
	u.Set(aiagent.FieldMaxRoomsFromHome, v)
	return u
}

// UpdateMaxRoomsFromHome sets the "max_rooms_from_home" field to the value that was provided on create.
func (u *AIAgentUpsert) UpdateMaxRoomsFromHome() *AIAgentUpsert {
	u.SetExcluded(aiagent.FieldMaxRoomsFromHome)
	return u
}

// AddMaxRoomsFromHome adds v to the "max_rooms_from_home" field.
func (u *AIAgentUpsert) AddMaxRoomsFromHome(v int) *AIAgentUpsert {
	u.Add(aiagent.FieldMaxRoomsFromHome, v)
	return u
}

// SetSpatialMemory sets the "spatial_memory" field.
func (u *AIAgentUpsert) SetSpatialMemory(v string) *AIAgentUpsert {
	u.Set(aiagent.FieldSpatialMemory, v)
	return u
}

// UpdateSpatialMemory sets the "spatial_memory" field to the value that was provided on create.
func (u *AIAgentUpsert) UpdateSpatialMemory() *AIAgentUpsert {
	u.SetExcluded(aiagent.FieldSpatialMemory)
	return u
}

// ClearSpatialMemory clears the value of the "spatial_memory" field.
func (u *AIAgentUpsert) ClearSpatialMemory() *AIAgentUpsert {
	u.SetNull(aiagent.FieldSpatialMemory)
	return u
}

// SetSpatialMemoryUpdatedAt sets the "spatial_memory_updated_at" field.
func (u *AIAgentUpsert) SetSpatialMemoryUpdatedAt(v time.Time) *AIAgentUpsert {
	u.Set(aiagent.FieldSpatialMemoryUpdatedAt, v)
	return u
}

// UpdateSpatialMemoryUpdatedAt sets the "spatial_memory_updated_at" field to the value that was provided on create.
func (u *AIAgentUpsert) UpdateSpatialMemoryUpdatedAt() *AIAgentUpsert {
	u.SetExcluded(aiagent.FieldSpatialMemoryUpdatedAt)
	return u
}

// ClearSpatialMemoryUpdatedAt clears the value of the "spatial_memory_updated_at" field.
func (u *AIAgentUpsert) ClearSpatialMemoryUpdatedAt() *AIAgentUpsert {
	u.SetNull(aiagent.FieldSpatialMemoryUpdatedAt)
	return u
}

// SetRelationships sets the "relationships" field.
func (u *AIAgentUpsert) SetRelationships(v map[string]interface{}) *AIAgentUpsert {
	u.Set(aiagent.FieldRelationships, v)
	return u
}

// UpdateRelationships sets the "relationships" field to the value that was provided on create.
func (u *AIAgentUpsert) UpdateRelationships() *AIAgentUpsert {
	u.SetExcluded(aiagent.FieldRelationships)
	return u
}

// ClearRelationships clears the value of the "relationships" field.
func (u *AIAgentUpsert) ClearRelationships() *AIAgentUpsert {
	u.SetNull(aiagent.FieldRelationships)
	return u
}

// SetConversation sets the "conversation" field.
func (u *AIAgentUpsert) SetConversation(v []interface{}) *AIAgentUpsert {
	u.Set(aiagent.FieldConversation, v)
	return u
}

// UpdateConversation sets the "conversation" field to the value that was provided on create.
func (u *AIAgentUpsert) UpdateConversation() *AIAgentUpsert {
	u.SetExcluded(aiagent.FieldConversation)
	return u
}

// ClearConversation clears the value of the "conversation" field.
func (u *AIAgentUpsert) ClearConversation() *AIAgentUpsert {
	u.SetNull(aiagent.FieldConversation)
	return u
}

// SetLastActionAt sets the "last_action_at" field.
func (u *AIAgentUpsert) SetLastActionAt(v time.Time) *AIAgentUpsert {
	u.Set(aiagent.FieldLastActionAt, v)
	return u
}

// UpdateLastActionAt sets the "last_action_at" field to the value that was provided on create.
func (u *AIAgentUpsert) UpdateLastActionAt() *AIAgentUpsert {
	u.SetExcluded(aiagent.FieldLastActionAt)
	return u
}

// ClearLastActionAt clears the value of the "last_action_at" field.
func (u *AIAgentUpsert) ClearLastActionAt() *AIAgentUpsert {
	u.SetNull(aiagent.FieldLastActionAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AIAgent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(aiagent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AIAgentUpsertOne) UpdateNewValues() *AIAgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(aiagent.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AIAgent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AIAgentUpsertOne) Ignore() *AIAgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AIAgentUpsertOne) DoNothing() *AIAgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AIAgentCreate.OnConflict
// documentation for more info.
func (u *AIAgentUpsertOne) Update(set func(*AIAgentUpsert)) *AIAgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AIAgentUpsert{UpdateSet: update})
	}))
	return u
}

// SetCharacterID sets the "character_id" field.
func (u *AIAgentUpsertOne) SetCharacterID(v string) *AIAgentUpsertOne {
	return u.Update(func(s *AIAgentUpsert) {
		s.SetCharacterID(v)
	})
}

// UpdateCharacterID sets the "character_id" field to the value that was provided on create.
func (u *AIAgentUpsertOne) UpdateCharacterID() *AIAgentUpsertOne {
	return u.Update(func(s *AIAgentUpsert) {
		s.UpdateCharacterID()
	})
}

// SetSystemPrompt sets the "system_prompt" field.
func (u *AIAgentUpsertOne) SetSystemPrompt(v string) *AIAgentUpsertOne {
	return u.Update(func(s *AIAgentUpsert) {
		s.SetSystemPrompt(v)
	})
}

// UpdateSystemPrompt sets the "system_prompt" field to the value that was provided on create.
func (u *AIAgentUpsertOne) UpdateSystemPrompt() *AIAgentUpsertOne {
	return u.Update(func(s *AIAgentUpsert) {
		s.UpdateSystemPrompt()
	})
}

// SetHomeRoomID sets the "home_room_id" field.
func (u *AIAgentUpsertOne) SetHomeRoomID(v string) *AIAgentUpsertOne {
	return u.Update(func(s *AIAgentUpsert) {
		s.SetHomeRoomID(v)
	})
}

// UpdateHomeRoomID sets the "home_room_id" field to the value that was provided on create.
func (u *AIAgentUpsertOne) UpdateHomeRoomID() *AIAgentUpsertOne {
	return u.Update(func(s *AIAgentUpsert) {
		s.UpdateHomeRoomID()
	})
}

// SetMaxRoomsFromHome sets the "max_rooms_from_home" field.
func (u *AIAgentUpsertOne) SetMaxRoomsFromHome(v int) *AIAgentUpsertOne {
	return u.Update(func(s *AIAgentUpsert) {
		s.SetMaxRoomsFromHome(v)
	})
}

// AddMaxRoomsFromHome adds v to the "max_rooms_from_home" field.
func (u *AIAgentUpsertOne) AddMaxRoomsFromHome(v int) *AIAgentUpsertOne {
	return u.Update(func(s *AIAgentUpsert) {
		s.AddMaxRoomsFromHome(v)
	})
}

// UpdateMaxRoomsFromHome sets the "max_rooms_from_home" field to the value that was provided on create.
func (u *AIAgentUpsertOne) UpdateMaxRoomsFromHome() *AIAgentUpsertOne {
	return u.Update(func(s *AIAgentUpsert) {
		s.UpdateMaxRoomsFromHome()
	})
}

// SetSpatialMemory sets the "spatial_memory" field.
func (u *AIAgentUpsertOne) SetSpatialMemory(v string) *AIAgentUpsertOne {
	return u.Update(func(s *AIAgentUpsert) {
		s.SetSpatialMemory(v)
	})
}

// UpdateSpatialMemory sets the "spatial_memory" field to the value that was provided on create.
func (u *AIAgentUpsertOne) UpdateSpatialMemory() *AIAgentUpsertOne {
	return u.Update(func(s *AIAgentUpsert) {
		s.UpdateSpatialMemory()
	})
}

// ClearSpatialMemory clears the value of the "spatial_memory" field.
func (u *AIAgentUpsertOne) ClearSpatialMemory() *AIAgentUpsertOne {
	return u.Update(func(s *AIAgentUpsert) {
		s.ClearSpatialMemory()
	})
}

// SetSpatialMemoryUpdatedAt sets the "spatial_memory_updated_at" field.
func (u *AIAgentUpsertOne) SetSpatialMemoryUpdatedAt(v time.Time) *AIAgentUpsertOne {
	return u.Update(func(s *AIAgentUpsert) {
		s.SetSpatialMemoryUpdatedAt(v)
	})
}

// UpdateSpatialMemoryUpdatedAt sets the "spatial_memory_updated_at" field to the value that was provided on create.
func (u *AIAgentUpsertOne) UpdateSpatialMemoryUpdatedAt() *AIAgentUpsertOne {
	return u.Update(func(s *AIAgentUpsert) {
		s.UpdateSpatialMemoryUpdatedAt()
	})
}

// ClearSpatialMemoryUpdatedAt clears the value of the "spatial_memory_updated_at" field.
func (u *AIAgentUpsertOne) ClearSpatialMemoryUpdatedAt() *AIAgentUpsertOne {
	return u.Update(func(s *AIAgentUpsert) {
		s.ClearSpatialMemoryUpdatedAt()
	})
}

// SetRelationships sets the "relationships" field.
func (u *AIAgentUpsertOne) SetRelationships(v map[string]interface{}) *AIAgentUpsertOne {
	return u.Update(func(s *AIAgentUpsert) {
		s.SetRelationships(v)
	})
}

// UpdateRelationships sets the "relationships" field to the value that was provided on create.
func (u *AIAgentUpsertOne) UpdateRelationships() *AIAgentUpsertOne {
	return u.Update(func(s *AIAgentUpsert) {
		s.UpdateRelationships()
	})
}

// ClearRelationships clears the value of the "relationships" field.
func (u *AIAgentUpsertOne) ClearRelationships() *AIAgentUpsertOne {
	return u.Update(func(s *AIAgentUpsert) {
		s.ClearRelationships()
	})
}

// SetConversation sets the "conversation" field.
func (u *AIAgentUpsertOne) SetConversation(v []interface{}) *AIAgentUpsertOne {
	return u.Update(func(s *AIAgentUpsert) {
		s.SetConversation(v)
	})
}

// UpdateConversation sets the "conversation" field to the value that was provided on create.
func (u *AIAgentUpsertOne) UpdateConversation() *AIAgentUpsertOne {
	return u.Update(func(s *AIAgentUpsert) {
		s.UpdateConversation()
	})
}

// ClearConversation clears the value of the "conversation" field.
func (u *AIAgentUpsertOne) ClearConversation() *AIAgentUpsertOne {
	return u.Update(func(s *AIAgentUpsert) {
		s.ClearConversation()
	})
}

// SetLastActionAt sets the "last_action_at" field.
func (u *AIAgentUpsertOne) SetLastActionAt(v time.Time) *AIAgentUpsertOne {
	return u.Update(func(s *AIAgentUpsert) {
		s.SetLastActionAt(v)
	})
}

// UpdateLastActionAt sets the "last_action_at" field to the value that was provided on create.
func (u *AIAgentUpsertOne) UpdateLastActionAt() *AIAgentUpsertOne {
	return u.Update(func(s *AIAgentUpsert) {
		s.UpdateLastActionAt()
	})
}

// ClearLastActionAt clears the value of the "last_action_at" field.
func (u *AIAgentUpsertOne) ClearLastActionAt() *AIAgentUpsertOne {
	return u.Update(func(s *AIAgentUpsert) {
		s.ClearLastActionAt()
	})
}

// Exec executes the query.
func (u *AIAgentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AIAgentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AIAgentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AIAgentUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AIAgentUpsertOne.ID is not supported by MySQL driver. Use AIAgentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AIAgentUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AIAgentCreateBulk is the builder for creating many AIAgent entities in bulk.
type AIAgentCreateBulk struct {
	config
	err      error
	builders []*AIAgentCreate
	conflict []sql.ConflictOption
}

// Save creates the AIAgent entities in the database.
func (_c *AIAgentCreateBulk) Save(ctx context.Context) ([]*AIAgent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AIAgent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AIAgentMutation)
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
func (_c *AIAgentCreateBulk) SaveX(ctx context.Context) []*AIAgent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AIAgentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AIAgentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AIAgent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AIAgentUpsert) {
//			SetCharacterID(v+v).
//		}).
//		Exec(ctx)
func (_c *AIAgentCreateBulk) OnConflict(opts ...sql.ConflictOption) *AIAgentUpsertBulk {
	_c.conflict = opts
	return &AIAgentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AIAgent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AIAgentCreateBulk) OnConflictColumns(columns ...string) *AIAgentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AIAgentUpsertBulk{
		create: _c,
	}
}

// AIAgentUpsertBulk is the builder for "upsert"-ing
// a bulk of AIAgent nodes.
type AIAgentUpsertBulk struct {
	create *AIAgentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AIAgent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(aiagent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AIAgentUpsertBulk) UpdateNewValues() *AIAgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(aiagent.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AIAgent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AIAgentUpsertBulk) Ignore() *AIAgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AIAgentUpsertBulk) DoNothing() *AIAgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AIAgentCreateBulk.OnConflict
// documentation for more info.
func (u *AIAgentUpsertBulk) Update(set func(*AIAgentUpsert)) *AIAgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AIAgentUpsert{UpdateSet: update})
	}))
	return u
}

// SetCharacterID sets the "character_id" field.
func (u *AIAgentUpsertBulk) SetCharacterID(v string) *AIAgentUpsertBulk {
	return u.Update(func(s *AIAgentUpsert) {
		s.SetCharacterID(v)
	})
}

// UpdateCharacterID sets the "character_id" field to the value that was provided on create.
func (u *AIAgentUpsertBulk) UpdateCharacterID() *AIAgentUpsertBulk {
	return u.Update(func(s *AIAgentUpsert) {
		s.UpdateCharacterID()
	})
}

// SetSystemPrompt sets the "system_prompt" field.
func (u *AIAgentUpsertBulk) SetSystemPrompt(v string) *AIAgentUpsertBulk {
	return u.Update(func(s *AIAgentUpsert) {
		s.SetSystemPrompt(v)
	})
}

// UpdateSystemPrompt sets the "system_prompt" field to the value that was provided on create.
func (u *AIAgentUpsertBulk) UpdateSystemPrompt() *AIAgentUpsertBulk {
	return u.Update(func(s *AIAgentUpsert) {
		s.UpdateSystemPrompt()
	})
}

// SetHomeRoomID sets the "home_room_id" field.
func (u *AIAgentUpsertBulk) SetHomeRoomID(v string) *AIAgentUpsertBulk {
	return u.Update(func(s *AIAgentUpsert) {
		s.SetHomeRoomID(v)
	})
}

// UpdateHomeRoomID sets the "home_room_id" field to the value that was provided on create.
func (u *AIAgentUpsertBulk) UpdateHomeRoomID() *AIAgentUpsertBulk {
	return u.Update(func(s *AIAgentUpsert) {
		s.UpdateHomeRoomID()
	})
}

// SetMaxRoomsFromHome sets the "max_rooms_from_home" field.
func (u *AIAgentUpsertBulk) SetMaxRoomsFromHome(v int) *AIAgentUpsertBulk {
	return u.Update(func(s *AIAgentUpsert) {
		s.SetMaxRoomsFromHome(v)
	})
}

// AddMaxRoomsFromHome adds v to the "max_rooms_from_home" field.
func (u *AIAgentUpsertBulk) AddMaxRoomsFromHome(v int) *AIAgentUpsertBulk {
	return u.Update(func(s *AIAgentUpsert) {
		s.AddMaxRoomsFromHome(v)
	})
}

// UpdateMaxRoomsFromHome sets the "max_rooms_from_home" field to the value that was provided on create.
func (u *AIAgentUpsertBulk) UpdateMaxRoomsFromHome() *AIAgentUpsertBulk {
	return u.Update(func(s *AIAgentUpsert) {
		s.UpdateMaxRoomsFromHome()
	})
}

// SetSpatialMemory sets the "spatial_memory" field.
func (u *AIAgentUpsertBulk) SetSpatialMemory(v string) *AIAgentUpsertBulk {
	return u.Update(func(s *AIAgentUpsert) {
		s.SetSpatialMemory(v)
	})
}

// UpdateSpatialMemory sets the "spatial_memory" field to the value that was provided on create.
func (u *AIAgentUpsertBulk) UpdateSpatialMemory() *AIAgentUpsertBulk {
	return u.Update(func(s *AIAgentUpsert) {
		s.UpdateSpatialMemory()
	})
}

// ClearSpatialMemory clears the value of the "spatial_memory" field.
func (u *AIAgentUpsertBulk) ClearSpatialMemory() *AIAgentUpsertBulk {
	return u.Update(func(s *AIAgentUpsert) {
		s.ClearSpatialMemory()
	})
}

// SetSpatialMemoryUpdatedAt sets the "spatial_memory_updated_at" field.
func (u *AIAgentUpsertBulk) SetSpatialMemoryUpdatedAt(v time.Time) *AIAgentUpsertBulk {
	return u.Update(func(s *AIAgentUpsert) {
		s.SetSpatialMemoryUpdatedAt(v)
	})
}

// UpdateSpatialMemoryUpdatedAt sets the "spatial_memory_updated_at" field to the value that was provided on create.
func (u *AIAgentUpsertBulk) UpdateSpatialMemoryUpdatedAt() *AIAgentUpsertBulk {
	return u.Update(func(s *AIAgentUpsert) {
		s.UpdateSpatialMemoryUpdatedAt()
	})
}

// ClearSpatialMemoryUpdatedAt clears the value of the "spatial_memory_updated_at" field.
func (u *AIAgentUpsertBulk) ClearSpatialMemoryUpdatedAt() *AIAgentUpsertBulk {
	return u.Update(func(s *AIAgentUpsert) {
		s.ClearSpatialMemoryUpdatedAt()
	})
}

// SetRelationships sets the "relationships" field.
func (u *AIAgentUpsertBulk) SetRelationships(v map[string]interface{}) *AIAgentUpsertBulk {
	return u.Update(func(s *AIAgentUpsert) {
		s.SetRelationships(v)
	})
}

// UpdateRelationships sets the "relationships" field to the value that was provided on create.
func (u *AIAgentUpsertBulk) UpdateRelationships() *AIAgentUpsertBulk {
	return u.Update(func(s *AIAgentUpsert) {
		s.UpdateRelationships()
	})
}

// ClearRelationships clears the value of the "relationships" field.
func (u *AIAgentUpsertBulk) ClearRelationships() *AIAgentUpsertBulk {
	return u.Update(func(s *AIAgentUpsert) {
		s.ClearRelationships()
	})
}

// SetConversation sets the "conversation" field.
func (u *AIAgentUpsertBulk) SetConversation(v []interface{}) *AIAgentUpsertBulk {
	return u.Update(func(s *AIAgentUpsert) {
		s.SetConversation(v)
	})
}

// UpdateConversation sets the "conversation" field to the value that was provided on create.
func (u *AIAgentUpsertBulk) UpdateConversation() *AIAgentUpsertBulk {
	return u.Update(func(s *AIAgentUpsert) {
		s.UpdateConversation()
	})
}

// ClearConversation clears the value of the "conversation" field.
func (u *AIAgentUpsertBulk) ClearConversation() *AIAgentUpsertBulk {
	return u.Update(func(s *AIAgentUpsert) {
		s.ClearConversation()
	})
}

// SetLastActionAt sets the "last_action_at" field.
func (u *AIAgentUpsertBulk) SetLastActionAt(v time.Time) *AIAgentUpsertBulk {
	return u.Update(func(s *AIAgentUpsert) {
		s.SetLastActionAt(v)
	})
}

// UpdateLastActionAt sets the "last_action_at" field to the value that was provided on create.
func (u *AIAgentUpsertBulk) UpdateLastActionAt() *AIAgentUpsertBulk {
	return u.Update(func(s *AIAgentUpsert) {
		s.UpdateLastActionAt()
	})
}

// ClearLastActionAt clears the value of the "last_action_at" field.
func (u *AIAgentUpsertBulk) ClearLastActionAt() *AIAgentUpsertBulk {
	return u.Update(func(s *AIAgentUpsert) {
		s.ClearLastActionAt()
	})
}

// Exec executes the query.
func (u *AIAgentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AIAgentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AIAgentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AIAgentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
