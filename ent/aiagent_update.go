// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/elliotbonneville/silt/ent/aiagent"
	"github.com/elliotbonneville/silt/ent/predicate"
)

// AIAgentUpdate is the builder for updating AIAgent entities.
type AIAgentUpdate struct {
	config
	hooks    []Hook
	mutation *AIAgentMutation
}

// Where appends a list predicates to the AIAgentUpdate builder.
func (_u *AIAgentUpdate) Where(ps ...predicate.AIAgent) *AIAgentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCharacterID sets the "character_id" field.
func (_u *AIAgentUpdate) SetCharacterID(v string) *AIAgentUpdate {
	_u.mutation.SetCharacterID(v)
	return _u
}

// SetNillableCharacterID sets the "character_id" field if the given value is not nil.
func (_u *AIAgentUpdate) SetNillableCharacterID(v *string) *AIAgentUpdate {
	if v != nil {
		_u.SetCharacterID(*v)
	}
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *AIAgentUpdate) SetSystemPrompt(v string) *AIAgentUpdate {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *AIAgentUpdate) SetNillableSystemPrompt(v *string) *AIAgentUpdate {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// SetHomeRoomID sets the "home_room_id" field.
func (_u *AIAgentUpdate) SetHomeRoomID(v string) *AIAgentUpdate {
	_u.mutation.SetHomeRoomID(v)
	return _u
}

// SetNillableHomeRoomID sets the "home_room_id" field if the given value is not nil.
func (_u *AIAgentUpdate) SetNillableHomeRoomID(v *string) *AIAgentUpdate {
	if v != nil {
		_u.SetHomeRoomID(*v)
	}
	return _u
}

// SetMaxRoomsFromHome sets the "max_rooms_from_home" field.
func (_u *AIAgentUpdate) SetMaxRoomsFromHome(v int) *AIAgentUpdate {
	_u.mutation.ResetMaxRoomsFromHome()
	_u.mutation.SetMaxRoomsFromHome(v)
	return _u
}

// SetNillableMaxRoomsFromHome sets the "max_rooms_from_home" field if the given value is not nil.
func (_u *AIAgentUpdate) SetNillableMaxRoomsFromHome(v *int) *AIAgentUpdate {
	if v != nil {
		_u.SetMaxRoomsFromHome(*v)
	}
	return _u
}

// AddMaxRoomsFromHome adds value to the "max_rooms_from_home" field.
func (_u *AIAgentUpdate) AddMaxRoomsFromHome(v int) *AIAgentUpdate {
	_u.mutation.AddMaxRoomsFromHome(v)
	return _u
}

// SetSpatialMemory sets the "spatial_memory" field.
func (_u *AIAgentUpdate) SetSpatialMemory(v string) *AIAgentUpdate {
	_u.mutation.SetSpatialMemory(v)
	return _u
}

// SetNillableSpatialMemory sets the "spatial_memory" field if the given value is not nil.
func (_u *AIAgentUpdate) SetNillableSpatialMemory(v *string) *AIAgentUpdate {
	if v != nil {
		_u.SetSpatialMemory(*v)
	}
	return _u
}

// ClearSpatialMemory clears the value of the "spatial_memory" field.
func (_u *AIAgentUpdate) ClearSpatialMemory() *AIAgentUpdate {
	_u.mutation.ClearSpatialMemory()
	return _u
}

// SetSpatialMemoryUpdatedAt sets the "spatial_memory_updated_at" field.
func (_u *AIAgentUpdate) SetSpatialMemoryUpdatedAt(v time.Time) *AIAgentUpdate {
	_u.mutation.SetSpatialMemoryUpdatedAt(v)
	return _u
}

// SetNillableSpatialMemoryUpdatedAt sets the "spatial_memory_updated_at" field if the given value is not nil.
func (_u *AIAgentUpdate) SetNillableSpatialMemoryUpdatedAt(v *time.Time) *AIAgentUpdate {
	if v != nil {
		_u.SetSpatialMemoryUpdatedAt(*v)
	}
	return _u
}

// ClearSpatialMemoryUpdatedAt clears the value of the "spatial_memory_updated_at" field.
func (_u *AIAgentUpdate) ClearSpatialMemoryUpdatedAt() *AIAgentUpdate {
	_u.mutation.ClearSpatialMemoryUpdatedAt()
	return _u
}

// SetRelationships sets the "relationships" field.
func (_u *AIAgentUpdate) SetRelationships(v map[string]interface{}) *AIAgentUpdate {
	_u.mutation.SetRelationships(v)
	return _u
}

// ClearRelationships clears the value of the "relationships" field.
func (_u *AIAgentUpdate) ClearRelationships() *AIAgentUpdate {
	_u.mutation.ClearRelationships()
	return _u
}

// SetConversation sets the "conversation" field.
func (_u *AIAgentUpdate) SetConversation(v []interface{}) *AIAgentUpdate {
	_u.mutation.SetConversation(v)
	return _u
}

// AppendConversation appends value to the "conversation" field.
func (_u *AIAgentUpdate) AppendConversation(v []interface{}) *AIAgentUpdate {
	_u.mutation.AppendConversation(v)
	return _u
}

// ClearConversation clears the value of the "conversation" field.
func (_u *AIAgentUpdate) ClearConversation() *AIAgentUpdate {
	_u.mutation.ClearConversation()
	return _u
}

// SetLastActionAt sets the "last_action_at" field.
func (_u *AIAgentUpdate) SetLastActionAt(v time.Time) *AIAgentUpdate {
	_u.mutation.SetLastActionAt(v)
	return _u
}

// SetNillableLastActionAt sets the "last_action_at" field if the given value is not nil.
func (_u *AIAgentUpdate) SetNillableLastActionAt(v *time.Time) *AIAgentUpdate {
	if v != nil {
		_u.SetLastActionAt(*v)
	}
	return _u
}

// ClearLastActionAt clears the value of the "last_action_at" field.
func (_u *AIAgentUpdate) ClearLastActionAt() *AIAgentUpdate {
	_u.mutation.ClearLastActionAt()
	return _u
}

// Mutation returns the AIAgentMutation object of the builder.
func (_u *AIAgentUpdate) Mutation() *AIAgentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AIAgentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AIAgentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AIAgentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AIAgentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AIAgentUpdate) check() error {
	if v, ok := _u.mutation.MaxRoomsFromHome(); ok {
		if err := aiagent.MaxRoomsFromHomeValidator(v); err != nil {
			return &ValidationError{Name: "max_rooms_from_home", err: fmt.Errorf(`ent: validator failed for field "AIAgent.max_rooms_from_home": %w`, err)}
		}
	}
	return nil
}

func (_u *AIAgentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(aiagent.Table, aiagent.Columns, sqlgraph.NewFieldSpec(aiagent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CharacterID(); ok {
		_spec.SetField(aiagent.FieldCharacterID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(aiagent.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.HomeRoomID(); ok {
		_spec.SetField(aiagent.FieldHomeRoomID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MaxRoomsFromHome(); ok {
		_spec.SetField(aiagent.FieldMaxRoomsFromHome, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRoomsFromHome(); ok {
		_spec.AddField(aiagent.FieldMaxRoomsFromHome, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SpatialMemory(); ok {
		_spec.SetField(aiagent.FieldSpatialMemory, field.TypeString, value)
	}
	if _u.mutation.SpatialMemoryCleared() {
		_spec.ClearField(aiagent.FieldSpatialMemory, field.TypeString)
	}
	if value, ok := _u.mutation.SpatialMemoryUpdatedAt(); ok {
		_spec.SetField(aiagent.FieldSpatialMemoryUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SpatialMemoryUpdatedAtCleared() {
		_spec.ClearField(aiagent.FieldSpatialMemoryUpdatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Relationships(); ok {
		_spec.SetField(aiagent.FieldRelationships, field.TypeJSON, value)
	}
	if _u.mutation.RelationshipsCleared() {
		_spec.ClearField(aiagent.FieldRelationships, field.TypeJSON)
	}
	if value, ok := _u.mutation.Conversation(); ok {
		_spec.SetField(aiagent.FieldConversation, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConversation(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, aiagent.FieldConversation, value)
		})
	}
	if _u.mutation.ConversationCleared() {
		_spec.ClearField(aiagent.FieldConversation, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastActionAt(); ok {
		_spec.SetField(aiagent.FieldLastActionAt, field.TypeTime, value)
	}
	if _u.mutation.LastActionAtCleared() {
		_spec.ClearField(aiagent.FieldLastActionAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{aiagent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AIAgentUpdateOne is the builder for updating a single AIAgent entity.
type AIAgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AIAgentMutation
}

// SetCharacterID sets the "character_id" field.
func (_u *AIAgentUpdateOne) SetCharacterID(v string) *AIAgentUpdateOne {
	_u.mutation.SetCharacterID(v)
	return _u
}

// SetNillableCharacterID sets the "character_id" field if the given value is not nil.
func (_u *AIAgentUpdateOne) SetNillableCharacterID(v *string) *AIAgentUpdateOne {
	if v != nil {
		_u.SetCharacterID(*v)
	}
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *AIAgentUpdateOne) SetSystemPrompt(v string) *AIAgentUpdateOne {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *AIAgentUpdateOne) SetNillableSystemPrompt(v *string) *AIAgentUpdateOne {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// SetHomeRoomID sets the "home_room_id" field.
func (_u *AIAgentUpdateOne) SetHomeRoomID(v string) *AIAgentUpdateOne {
	_u.mutation.SetHomeRoomID(v)
	return _u
}

// SetNillableHomeRoomID sets the "home_room_id" field if the given value is not nil.
func (_u *AIAgentUpdateOne) SetNillableHomeRoomID(v *string) *AIAgentUpdateOne {
	if v != nil {
		_u.SetHomeRoomID(*v)
	}
	return _u
}

// SetMaxRoomsFromHome sets the "max_rooms_from_home" field.
func (_u *AIAgentUpdateOne) SetMaxRoomsFromHome(v int) *AIAgentUpdateOne {
	_u.mutation.ResetMaxRoomsFromHome()
	_u.mutation.SetMaxRoomsFromHome(v)
	return _u
}

// SetNillableMaxRoomsFromHome sets the "max_rooms_from_home" field if the given value is not nil.
func (_u *AIAgentUpdateOne) SetNillableMaxRoomsFromHome(v *int) *AIAgentUpdateOne {
	if v != nil {
		_u.SetMaxRoomsFromHome(*v)
	}
	return _u
}

// AddMaxRoomsFromHome adds value to the "max_rooms_from_home" field.
func (_u *AIAgentUpdateOne) AddMaxRoomsFromHome(v int) *AIAgentUpdateOne {
	_u.mutation.AddMaxRoomsFromHome(v)
	return _u
}

// SetSpatialMemory sets the "spatial_memory" field.
func (_u *AIAgentUpdateOne) SetSpatialMemory(v string) *AIAgentUpdateOne {
	_u.mutation.SetSpatialMemory(v)
	return _u
}

// SetNillableSpatialMemory sets the "spatial_memory" field if the given value is not nil.
func (_u *AIAgentUpdateOne) SetNillableSpatialMemory(v *string) *AIAgentUpdateOne {
	if v != nil {
		_u.SetSpatialMemory(*v)
	}
	return _u
}

// ClearSpatialMemory clears the value of the "spatial_memory" field.
func (_u *AIAgentUpdateOne) ClearSpatialMemory() *AIAgentUpdateOne {
	_u.mutation.ClearSpatialMemory()
	return _u
}

// SetSpatialMemoryUpdatedAt sets the "spatial_memory_updated_at" field.
func (_u *AIAgentUpdateOne) SetSpatialMemoryUpdatedAt(v time.Time) *AIAgentUpdateOne {
	_u.mutation.SetSpatialMemoryUpdatedAt(v)
	return _u
}

// SetNillableSpatialMemoryUpdatedAt sets the "spatial_memory_updated_at" field if the given value is not nil.
func (_u *AIAgentUpdateOne) SetNillableSpatialMemoryUpdatedAt(v *time.Time) *AIAgentUpdateOne {
	if v != nil {
		_u.SetSpatialMemoryUpdatedAt(*v)
	}
	return _u
}

// ClearSpatialMemoryUpdatedAt clears the value of the "spatial_memory_updated_at" field.
func (_u *AIAgentUpdateOne) ClearSpatialMemoryUpdatedAt() *AIAgentUpdateOne {
	_u.mutation.ClearSpatialMemoryUpdatedAt()
	return _u
}

// SetRelationships sets the "relationships" field.
func (_u *AIAgentUpdateOne) SetRelationships(v map[string]interface{}) *AIAgentUpdateOne {
	_u.mutation.SetRelationships(v)
	return _u
}

// ClearRelationships clears the value of the "relationships" field.
func (_u *AIAgentUpdateOne) ClearRelationships() *AIAgentUpdateOne {
	_u.mutation.ClearRelationships()
	return _u
}

// SetConversation sets the "conversation" field.
func (_u *AIAgentUpdateOne) SetConversation(v []interface{}) *AIAgentUpdateOne {
	_u.mutation.SetConversation(v)
	return _u
}

// AppendConversation appends value to the "conversation" field.
func (_u *AIAgentUpdateOne) AppendConversation(v []interface{}) *AIAgentUpdateOne {
	_u.mutation.AppendConversation(v)
	return _u
}

// ClearConversation clears the value of the "conversation" field.
func (_u *AIAgentUpdateOne) ClearConversation() *AIAgentUpdateOne {
	_u.mutation.ClearConversation()
	return _u
}

// SetLastActionAt sets the "last_action_at" field.
func (_u *AIAgentUpdateOne) SetLastActionAt(v time.Time) *AIAgentUpdateOne {
	_u.mutation.SetLastActionAt(v)
	return _u
}

// SetNillableLastActionAt sets the "last_action_at" field if the given value is not nil.
func (_u *AIAgentUpdateOne) SetNillableLastActionAt(v *time.Time) *AIAgentUpdateOne {
	if v != nil {
		_u.SetLastActionAt(*v)
	}
	return _u
}

// ClearLastActionAt clears the value of the "last_action_at" field.
func (_u *AIAgentUpdateOne) ClearLastActionAt() *AIAgentUpdateOne {
	_u.mutation.ClearLastActionAt()
	return _u
}

// Mutation returns the AIAgentMutation object of the builder.
func (_u *AIAgentUpdateOne) Mutation() *AIAgentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AIAgentUpdate builder.
func (_u *AIAgentUpdateOne) Where(ps ...predicate.AIAgent) *AIAgentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AIAgentUpdateOne) Select(field string, fields ...string) *AIAgentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AIAgent entity.
func (_u *AIAgentUpdateOne) Save(ctx context.Context) (*AIAgent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AIAgentUpdateOne) SaveX(ctx context.Context) *AIAgent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AIAgentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AIAgentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AIAgentUpdateOne) check() error {
	if v, ok := _u.mutation.MaxRoomsFromHome(); ok {
		if err := aiagent.MaxRoomsFromHomeValidator(v); err != nil {
			return &ValidationError{Name: "max_rooms_from_home", err: fmt.Errorf(`ent: validator failed for field "AIAgent.max_rooms_from_home": %w`, err)}
		}
	}
	return nil
}

func (_u *AIAgentUpdateOne) sqlSave(ctx context.Context) (_node *AIAgent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(aiagent.Table, aiagent.Columns, sqlgraph.NewFieldSpec(aiagent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AIAgent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, aiagent.FieldID)
		for _, f := range fields {
			if !aiagent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != aiagent.FieldID {
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
		_spec.SetField(aiagent.FieldCharacterID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(aiagent.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.HomeRoomID(); ok {
		_spec.SetField(aiagent.FieldHomeRoomID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MaxRoomsFromHome(); ok {
		_spec.SetField(aiagent.FieldMaxRoomsFromHome, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRoomsFromHome(); ok {
		_spec.AddField(aiagent.FieldMaxRoomsFromHome, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SpatialMemory(); ok {
		_spec.SetField(aiagent.FieldSpatialMemory, field.TypeString, value)
	}
	if _u.mutation.SpatialMemoryCleared() {
		_spec.ClearField(aiagent.FieldSpatialMemory, field.TypeString)
	}
	if value, ok := _u.mutation.SpatialMemoryUpdatedAt(); ok {
		_spec.SetField(aiagent.FieldSpatialMemoryUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SpatialMemoryUpdatedAtCleared() {
		_spec.ClearField(aiagent.FieldSpatialMemoryUpdatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Relationships(); ok {
		_spec.SetField(aiagent.FieldRelationships, field.TypeJSON, value)
	}
	if _u.mutation.RelationshipsCleared() {
		_spec.ClearField(aiagent.FieldRelationships, field.TypeJSON)
	}
	if value, ok := _u.mutation.Conversation(); ok {
		_spec.SetField(aiagent.FieldConversation, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConversation(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, aiagent.FieldConversation, value)
		})
	}
	if _u.mutation.ConversationCleared() {
		_spec.ClearField(aiagent.FieldConversation, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastActionAt(); ok {
		_spec.SetField(aiagent.FieldLastActionAt, field.TypeTime, value)
	}
	if _u.mutation.LastActionAtCleared() {
		_spec.ClearField(aiagent.FieldLastActionAt, field.TypeTime)
	}
	_node = &AIAgent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{aiagent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
