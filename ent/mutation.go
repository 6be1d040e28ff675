// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/elliotbonneville/silt/ent/account"
	"github.com/elliotbonneville/silt/ent/aiagent"
	"github.com/elliotbonneville/silt/ent/character"
	"github.com/elliotbonneville/silt/ent/gameevent"
	"github.com/elliotbonneville/silt/ent/gamestate"
	"github.com/elliotbonneville/silt/ent/item"
	"github.com/elliotbonneville/silt/ent/playerlog"
	"github.com/elliotbonneville/silt/ent/predicate"
	"github.com/elliotbonneville/silt/ent/room"
	"github.com/elliotbonneville/silt/ent/tokenusagelog"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAIAgent       = "AIAgent"
	TypeAccount       = "Account"
	TypeCharacter     = "Character"
	TypeGameEvent     = "GameEvent"
	TypeGameState     = "GameState"
	TypeItem          = "Item"
	TypePlayerLog     = "PlayerLog"
	TypeRoom          = "Room"
	TypeTokenUsageLog = "TokenUsageLog"
)

// AIAgentMutation represents an operation that mutates the AIAgent nodes in the graph.
type AIAgentMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	character_id              *string
	system_prompt             *string
	home_room_id              *string
	max_rooms_from_home       *int
	addmax_rooms_from_home    *int
	spatial_memory            *string
	spatial_memory_updated_at *time.Time
	relationships             *map[string]interface{}
	conversation              *[]interface{}
	appendconversation        []interface{}
	last_action_at            *time.Time
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*AIAgent, error)
	predicates                []predicate.AIAgent
}

var _ ent.Mutation = (*AIAgentMutation)(nil)

// aiagentOption allows management of the mutation configuration using functional options.
type aiagentOption func(*AIAgentMutation)

// newAIAgentMutation creates new mutation for the AIAgent entity.
func newAIAgentMutation(c config, op Op, opts ...aiagentOption) *AIAgentMutation {
	m := &AIAgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAIAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAIAgentID sets the ID field of the mutation.
func withAIAgentID(id string) aiagentOption {
	return func(m *AIAgentMutation) {
		var (
			err   error
			once  sync.Once
			value *AIAgent
		)
		m.oldValue = func(ctx context.Context) (*AIAgent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AIAgent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAIAgent sets the old AIAgent of the mutation.
func withAIAgent(node *AIAgent) aiagentOption {
	return func(m *AIAgentMutation) {
		m.oldValue = func(context.Context) (*AIAgent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AIAgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AIAgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AIAgent entities.
func (m *AIAgentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AIAgentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AIAgentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AIAgent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCharacterID sets the "character_id" field.
func (m *AIAgentMutation) SetCharacterID(s string) {
	m.character_id = &s
}

// CharacterID returns the value of the "character_id" field in the mutation.
func (m *AIAgentMutation) CharacterID() (r string, exists bool) {
	v := m.character_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCharacterID returns the old "character_id" field's value of the AIAgent entity.
// If the AIAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIAgentMutation) OldCharacterID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCharacterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCharacterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCharacterID: %w", err)
	}
	return oldValue.CharacterID, nil
}

// ResetCharacterID resets all changes to the "character_id" field.
func (m *AIAgentMutation) ResetCharacterID() {
	m.character_id = nil
}

// SetSystemPrompt sets the "system_prompt" field.
func (m *AIAgentMutation) SetSystemPrompt(s string) {
	m.system_prompt = &s
}

// SystemPrompt returns the value of the "system_prompt" field in the mutation.
func (m *AIAgentMutation) SystemPrompt() (r string, exists bool) {
	v := m.system_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemPrompt returns the old "system_prompt" field's value of the AIAgent entity.
// If the AIAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIAgentMutation) OldSystemPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemPrompt: %w", err)
	}
	return oldValue.SystemPrompt, nil
}

// ResetSystemPrompt resets all changes to the "system_prompt" field.
func (m *AIAgentMutation) ResetSystemPrompt() {
	m.system_prompt = nil
}

// SetHomeRoomID sets the "home_room_id" field.
func (m *AIAgentMutation) SetHomeRoomID(s string) {
	m.home_room_id = &s
}

// HomeRoomID returns the value of the "home_room_id" field in the mutation.
func (m *AIAgentMutation) HomeRoomID() (r string, exists bool) {
	v := m.home_room_id
	if v == nil {
		return
	}
	return *v, true
}

// OldHomeRoomID returns the old "home_room_id" field's value of the AIAgent entity.
// If the AIAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIAgentMutation) OldHomeRoomID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHomeRoomID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHomeRoomID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHomeRoomID: %w", err)
	}
	return oldValue.HomeRoomID, nil
}

// ResetHomeRoomID resets all changes to the "home_room_id" field.
func (m *AIAgentMutation) ResetHomeRoomID() {
	m.home_room_id = nil
}

// SetMaxRoomsFromHome sets the "max_rooms_from_home" field.
func (m *AIAgentMutation) SetMaxRoomsFromHome(i int) {
	m.max_rooms_from_home = &i
	m.addmax_rooms_from_home = nil
}

// MaxRoomsFromHome returns the value of the "max_rooms_from_home" field in the mutation.
func (m *AIAgentMutation) MaxRoomsFromHome() (r int, exists bool) {
	v := m.max_rooms_from_home
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRoomsFromHome returns the old "max_rooms_from_home" field's value of the AIAgent entity.
// If the AIAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIAgentMutation) OldMaxRoomsFromHome(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRoomsFromHome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRoomsFromHome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRoomsFromHome: %w", err)
	}
	return oldValue.MaxRoomsFromHome, nil
}

// AddMaxRoomsFromHome adds i to the "max_rooms_from_home" field.
func (m *AIAgentMutation) AddMaxRoomsFromHome(i int) {
	if m.addmax_rooms_from_home != nil {
		*m.addmax_rooms_from_home += i
	} else {
		m.addmax_rooms_from_home = &i
	}
}

// AddedMaxRoomsFromHome returns the value that was added to the "max_rooms_from_home" field in this mutation.
func (m *AIAgentMutation) AddedMaxRoomsFromHome() (r int, exists bool) {
	v := m.addmax_rooms_from_home
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRoomsFromHome resets all changes to the "max_rooms_from_home" field.
func (m *AIAgentMutation) ResetMaxRoomsFromHome() {
	m.max_rooms_from_home = nil
	m.addmax_rooms_from_home = nil
}

// SetSpatialMemory sets the "spatial_memory" field.
func (m *AIAgentMutation) SetSpatialMemory(s string) {
	m.spatial_memory = &s
}

// SpatialMemory returns the value of the "spatial_memory" field in the mutation.
func (m *AIAgentMutation) SpatialMemory() (r string, exists bool) {
	v := m.spatial_memory
	if v == nil {
		return
	}
	return *v, true
}

// OldSpatialMemory returns the old "spatial_memory" field's value of the AIAgent entity.
// If the AIAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIAgentMutation) OldSpatialMemory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpatialMemory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpatialMemory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpatialMemory: %w", err)
	}
	return oldValue.SpatialMemory, nil
}

// ClearSpatialMemory clears the value of the "spatial_memory" field.
func (m *AIAgentMutation) ClearSpatialMemory() {
	m.spatial_memory = nil
	m.clearedFields[aiagent.FieldSpatialMemory] = struct{}{}
}

// SpatialMemoryCleared returns if the "spatial_memory" field was cleared in this mutation.
func (m *AIAgentMutation) SpatialMemoryCleared() bool {
	_, ok := m.clearedFields[aiagent.FieldSpatialMemory]
	return ok
}

// ResetSpatialMemory resets all changes to the "spatial_memory" field.
func (m *AIAgentMutation) ResetSpatialMemory() {
	m.spatial_memory = nil
	delete(m.clearedFields, aiagent.FieldSpatialMemory)
}

// SetSpatialMemoryUpdatedAt sets the "spatial_memory_updated_at" field.
func (m *AIAgentMutation) SetSpatialMemoryUpdatedAt(t time.Time) {
	m.spatial_memory_updated_at = &t
}

// SpatialMemoryUpdatedAt returns the value of the "spatial_memory_updated_at" field in the mutation.
func (m *AIAgentMutation) SpatialMemoryUpdatedAt() (r time.Time, exists bool) {
	v := m.spatial_memory_updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSpatialMemoryUpdatedAt returns the old "spatial_memory_updated_at" field's value of the AIAgent entity.
// If the AIAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIAgentMutation) OldSpatialMemoryUpdatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpatialMemoryUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpatialMemoryUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpatialMemoryUpdatedAt: %w", err)
	}
	return oldValue.SpatialMemoryUpdatedAt, nil
}

// ClearSpatialMemoryUpdatedAt clears the value of the "spatial_memory_updated_at" field.
func (m *AIAgentMutation) ClearSpatialMemoryUpdatedAt() {
	m.spatial_memory_updated_at = nil
	m.clearedFields[aiagent.FieldSpatialMemoryUpdatedAt] = struct{}{}
}

// SpatialMemoryUpdatedAtCleared returns if the "spatial_memory_updated_at" field was cleared in this mutation.
func (m *AIAgentMutation) SpatialMemoryUpdatedAtCleared() bool {
	_, ok := m.clearedFields[aiagent.FieldSpatialMemoryUpdatedAt]
	return ok
}

// ResetSpatialMemoryUpdatedAt resets all changes to the "spatial_memory_updated_at" field.
func (m *AIAgentMutation) ResetSpatialMemoryUpdatedAt() {
	m.spatial_memory_updated_at = nil
	delete(m.clearedFields, aiagent.FieldSpatialMemoryUpdatedAt)
}

// SetRelationships sets the "relationships" field.
func (m *AIAgentMutation) SetRelationships(value map[string]interface{}) {
	m.relationships = &value
}

// Relationships returns the value of the "relationships" field in the mutation.
func (m *AIAgentMutation) Relationships() (r map[string]interface{}, exists bool) {
	v := m.relationships
	if v == nil {
		return
	}
	return *v, true
}

// OldRelationships returns the old "relationships" field's value of the AIAgent entity.
// If the AIAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIAgentMutation) OldRelationships(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelationships is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelationships requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelationships: %w", err)
	}
	return oldValue.Relationships, nil
}

// ClearRelationships clears the value of the "relationships" field.
func (m *AIAgentMutation) ClearRelationships() {
	m.relationships = nil
	m.clearedFields[aiagent.FieldRelationships] = struct{}{}
}

// RelationshipsCleared returns if the "relationships" field was cleared in this mutation.
func (m *AIAgentMutation) RelationshipsCleared() bool {
	_, ok := m.clearedFields[aiagent.FieldRelationships]
	return ok
}

// ResetRelationships resets all changes to the "relationships" field.
func (m *AIAgentMutation) ResetRelationships() {
	m.relationships = nil
	delete(m.clearedFields, aiagent.FieldRelationships)
}

// SetConversation sets the "conversation" field.
func (m *AIAgentMutation) SetConversation(i []interface{}) {
	m.conversation = &i
	m.appendconversation = nil
}

// Conversation returns the value of the "conversation" field in the mutation.
func (m *AIAgentMutation) Conversation() (r []interface{}, exists bool) {
	v := m.conversation
	if v == nil {
		return
	}
	return *v, true
}

// OldConversation returns the old "conversation" field's value of the AIAgent entity.
// If the AIAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIAgentMutation) OldConversation(ctx context.Context) (v []interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversation: %w", err)
	}
	return oldValue.Conversation, nil
}

// AppendConversation adds i to the "conversation" field.
func (m *AIAgentMutation) AppendConversation(i []interface{}) {
	m.appendconversation = append(m.appendconversation, i...)
}

// AppendedConversation returns the list of values that were appended to the "conversation" field in this mutation.
func (m *AIAgentMutation) AppendedConversation() ([]interface{}, bool) {
	if len(m.appendconversation) == 0 {
		return nil, false
	}
	return m.appendconversation, true
}

// ClearConversation clears the value of the "conversation" field.
func (m *AIAgentMutation) ClearConversation() {
	m.conversation = nil
	m.appendconversation = nil
	m.clearedFields[aiagent.FieldConversation] = struct{}{}
}

// ConversationCleared returns if the "conversation" field was cleared in this mutation.
func (m *AIAgentMutation) ConversationCleared() bool {
	_, ok := m.clearedFields[aiagent.FieldConversation]
	return ok
}

// ResetConversation resets all changes to the "conversation" field.
func (m *AIAgentMutation) ResetConversation() {
	m.conversation = nil
	m.appendconversation = nil
	delete(m.clearedFields, aiagent.FieldConversation)
}

// SetLastActionAt sets the "last_action_at" field.
func (m *AIAgentMutation) SetLastActionAt(t time.Time) {
	m.last_action_at = &t
}

// LastActionAt returns the value of the "last_action_at" field in the mutation.
func (m *AIAgentMutation) LastActionAt() (r time.Time, exists bool) {
	v := m.last_action_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActionAt returns the old "last_action_at" field's value of the AIAgent entity.
// If the AIAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIAgentMutation) OldLastActionAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActionAt: %w", err)
	}
	return oldValue.LastActionAt, nil
}

// ClearLastActionAt clears the value of the "last_action_at" field.
func (m *AIAgentMutation) ClearLastActionAt() {
	m.last_action_at = nil
	m.clearedFields[aiagent.FieldLastActionAt] = struct{}{}
}

// LastActionAtCleared returns if the "last_action_at" field was cleared in this mutation.
func (m *AIAgentMutation) LastActionAtCleared() bool {
	_, ok := m.clearedFields[aiagent.FieldLastActionAt]
	return ok
}

// ResetLastActionAt resets all changes to the "last_action_at" field.
func (m *AIAgentMutation) ResetLastActionAt() {
	m.last_action_at = nil
	delete(m.clearedFields, aiagent.FieldLastActionAt)
}

// Where appends a list predicates to the AIAgentMutation builder.
func (m *AIAgentMutation) Where(ps ...predicate.AIAgent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AIAgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AIAgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AIAgent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AIAgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AIAgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AIAgent).
func (m *AIAgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AIAgentMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.character_id != nil {
		fields = append(fields, aiagent.FieldCharacterID)
	}
	if m.system_prompt != nil {
		fields = append(fields, aiagent.FieldSystemPrompt)
	}
	if m.home_room_id != nil {
		fields = append(fields, aiagent.FieldHomeRoomID)
	}
	if m.max_rooms_from_home != nil {
		fields = append(fields, aiagent.FieldMaxRoomsFromHome)
	}
	if m.spatial_memory != nil {
		fields = append(fields, aiagent.FieldSpatialMemory)
	}
	if m.spatial_memory_updated_at != nil {
		fields = append(fields, aiagent.FieldSpatialMemoryUpdatedAt)
	}
	if m.relationships != nil {
		fields = append(fields, aiagent.FieldRelationships)
	}
	if m.conversation != nil {
		fields = append(fields, aiagent.FieldConversation)
	}
	if m.last_action_at != nil {
		fields = append(fields, aiagent.FieldLastActionAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AIAgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case aiagent.FieldCharacterID:
		return m.CharacterID()
	case aiagent.FieldSystemPrompt:
		return m.SystemPrompt()
	case aiagent.FieldHomeRoomID:
		return m.HomeRoomID()
	case aiagent.FieldMaxRoomsFromHome:
		return m.MaxRoomsFromHome()
	case aiagent.FieldSpatialMemory:
		return m.SpatialMemory()
	case aiagent.FieldSpatialMemoryUpdatedAt:
		return m.SpatialMemoryUpdatedAt()
	case aiagent.FieldRelationships:
		return m.Relationships()
	case aiagent.FieldConversation:
		return m.Conversation()
	case aiagent.FieldLastActionAt:
		return m.LastActionAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AIAgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case aiagent.FieldCharacterID:
		return m.OldCharacterID(ctx)
	case aiagent.FieldSystemPrompt:
		return m.OldSystemPrompt(ctx)
	case aiagent.FieldHomeRoomID:
		return m.OldHomeRoomID(ctx)
	case aiagent.FieldMaxRoomsFromHome:
		return m.OldMaxRoomsFromHome(ctx)
	case aiagent.FieldSpatialMemory:
		return m.OldSpatialMemory(ctx)
	case aiagent.FieldSpatialMemoryUpdatedAt:
		return m.OldSpatialMemoryUpdatedAt(ctx)
	case aiagent.FieldRelationships:
		return m.OldRelationships(ctx)
	case aiagent.FieldConversation:
		return m.OldConversation(ctx)
	case aiagent.FieldLastActionAt:
		return m.OldLastActionAt(ctx)
	}
	return nil, fmt.Errorf("unknown AIAgent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AIAgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case aiagent.FieldCharacterID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCharacterID(v)
		return nil
	case aiagent.FieldSystemPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemPrompt(v)
		return nil
	case aiagent.FieldHomeRoomID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHomeRoomID(v)
		return nil
	case aiagent.FieldMaxRoomsFromHome:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRoomsFromHome(v)
		return nil
	case aiagent.FieldSpatialMemory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpatialMemory(v)
		return nil
	case aiagent.FieldSpatialMemoryUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpatialMemoryUpdatedAt(v)
		return nil
	case aiagent.FieldRelationships:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelationships(v)
		return nil
	case aiagent.FieldConversation:
		v, ok := value.([]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversation(v)
		return nil
	case aiagent.FieldLastActionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActionAt(v)
		return nil
	}
	return fmt.Errorf("unknown AIAgent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AIAgentMutation) AddedFields() []string {
	var fields []string
	if m.addmax_rooms_from_home != nil {
		fields = append(fields, aiagent.FieldMaxRoomsFromHome)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AIAgentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case aiagent.FieldMaxRoomsFromHome:
		return m.AddedMaxRoomsFromHome()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AIAgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case aiagent.FieldMaxRoomsFromHome:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRoomsFromHome(v)
		return nil
	}
	return fmt.Errorf("unknown AIAgent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AIAgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(aiagent.FieldSpatialMemory) {
		fields = append(fields, aiagent.FieldSpatialMemory)
	}
	if m.FieldCleared(aiagent.FieldSpatialMemoryUpdatedAt) {
		fields = append(fields, aiagent.FieldSpatialMemoryUpdatedAt)
	}
	if m.FieldCleared(aiagent.FieldRelationships) {
		fields = append(fields, aiagent.FieldRelationships)
	}
	if m.FieldCleared(aiagent.FieldConversation) {
		fields = append(fields, aiagent.FieldConversation)
	}
	if m.FieldCleared(aiagent.FieldLastActionAt) {
		fields = append(fields, aiagent.FieldLastActionAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AIAgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AIAgentMutation) ClearField(name string) error {
	switch name {
	case aiagent.FieldSpatialMemory:
		m.ClearSpatialMemory()
		return nil
	case aiagent.FieldSpatialMemoryUpdatedAt:
		m.ClearSpatialMemoryUpdatedAt()
		return nil
	case aiagent.FieldRelationships:
		m.ClearRelationships()
		return nil
	case aiagent.FieldConversation:
		m.ClearConversation()
		return nil
	case aiagent.FieldLastActionAt:
		m.ClearLastActionAt()
		return nil
	}
	return fmt.Errorf("unknown AIAgent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AIAgentMutation) ResetField(name string) error {
	switch name {
	case aiagent.FieldCharacterID:
		m.ResetCharacterID()
		return nil
	case aiagent.FieldSystemPrompt:
		m.ResetSystemPrompt()
		return nil
	case aiagent.FieldHomeRoomID:
		m.ResetHomeRoomID()
		return nil
	case aiagent.FieldMaxRoomsFromHome:
		m.ResetMaxRoomsFromHome()
		return nil
	case aiagent.FieldSpatialMemory:
		m.ResetSpatialMemory()
		return nil
	case aiagent.FieldSpatialMemoryUpdatedAt:
		m.ResetSpatialMemoryUpdatedAt()
		return nil
	case aiagent.FieldRelationships:
		m.ResetRelationships()
		return nil
	case aiagent.FieldConversation:
		m.ResetConversation()
		return nil
	case aiagent.FieldLastActionAt:
		m.ResetLastActionAt()
		return nil
	}
	return fmt.Errorf("unknown AIAgent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AIAgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AIAgentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AIAgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AIAgentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AIAgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AIAgentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AIAgentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AIAgent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AIAgentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AIAgent edge %s", name)
}

// AccountMutation represents an operation that mutates the Account nodes in the graph.
type AccountMutation struct {
	config
	op            Op
	typ           string
	id            *string
	username      *string
	preferences   *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Account, error)
	predicates    []predicate.Account
}

var _ ent.Mutation = (*AccountMutation)(nil)

// accountOption allows management of the mutation configuration using functional options.
type accountOption func(*AccountMutation)

// newAccountMutation creates new mutation for the Account entity.
func newAccountMutation(c config, op Op, opts ...accountOption) *AccountMutation {
	m := &AccountMutation{
		config:        c,
		op:            op,
		typ:           TypeAccount,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAccountID sets the ID field of the mutation.
func withAccountID(id string) accountOption {
	return func(m *AccountMutation) {
		var (
			err   error
			once  sync.Once
			value *Account
		)
		m.oldValue = func(ctx context.Context) (*Account, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Account.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAccount sets the old Account of the mutation.
func withAccount(node *Account) accountOption {
	return func(m *AccountMutation) {
		m.oldValue = func(context.Context) (*Account, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AccountMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AccountMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Account entities.
func (m *AccountMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AccountMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AccountMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Account.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUsername sets the "username" field.
func (m *AccountMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *AccountMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *AccountMutation) ResetUsername() {
	m.username = nil
}

// SetPreferences sets the "preferences" field.
func (m *AccountMutation) SetPreferences(value map[string]interface{}) {
	m.preferences = &value
}

// Preferences returns the value of the "preferences" field in the mutation.
func (m *AccountMutation) Preferences() (r map[string]interface{}, exists bool) {
	v := m.preferences
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferences returns the old "preferences" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldPreferences(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferences is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferences requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferences: %w", err)
	}
	return oldValue.Preferences, nil
}

// ClearPreferences clears the value of the "preferences" field.
func (m *AccountMutation) ClearPreferences() {
	m.preferences = nil
	m.clearedFields[account.FieldPreferences] = struct{}{}
}

// PreferencesCleared returns if the "preferences" field was cleared in this mutation.
func (m *AccountMutation) PreferencesCleared() bool {
	_, ok := m.clearedFields[account.FieldPreferences]
	return ok
}

// ResetPreferences resets all changes to the "preferences" field.
func (m *AccountMutation) ResetPreferences() {
	m.preferences = nil
	delete(m.clearedFields, account.FieldPreferences)
}

// SetCreatedAt sets the "created_at" field.
func (m *AccountMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AccountMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AccountMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AccountMutation builder.
func (m *AccountMutation) Where(ps ...predicate.Account) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AccountMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AccountMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Account, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AccountMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AccountMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Account).
func (m *AccountMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AccountMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.username != nil {
		fields = append(fields, account.FieldUsername)
	}
	if m.preferences != nil {
		fields = append(fields, account.FieldPreferences)
	}
	if m.created_at != nil {
		fields = append(fields, account.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AccountMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case account.FieldUsername:
		return m.Username()
	case account.FieldPreferences:
		return m.Preferences()
	case account.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AccountMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case account.FieldUsername:
		return m.OldUsername(ctx)
	case account.FieldPreferences:
		return m.OldPreferences(ctx)
	case account.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Account field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) SetField(name string, value ent.Value) error {
	switch name {
	case account.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case account.FieldPreferences:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferences(v)
		return nil
	case account.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AccountMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AccountMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Account numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AccountMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(account.FieldPreferences) {
		fields = append(fields, account.FieldPreferences)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AccountMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AccountMutation) ClearField(name string) error {
	switch name {
	case account.FieldPreferences:
		m.ClearPreferences()
		return nil
	}
	return fmt.Errorf("unknown Account nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AccountMutation) ResetField(name string) error {
	switch name {
	case account.FieldUsername:
		m.ResetUsername()
		return nil
	case account.FieldPreferences:
		m.ResetPreferences()
		return nil
	case account.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AccountMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AccountMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AccountMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AccountMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AccountMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AccountMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AccountMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Account unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AccountMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Account edge %s", name)
}

// CharacterMutation represents an operation that mutates the Character nodes in the graph.
type CharacterMutation struct {
	config
	op             Op
	typ            string
	id             *string
	name           *string
	description    *string
	account_id     *string
	room_id        *string
	spawn_point_id *string
	hp             *int
	addhp          *int
	max_hp         *int
	addmax_hp      *int
	attack         *int
	addattack      *int
	defense        *int
	adddefense     *int
	speed          *int
	addspeed       *int
	is_alive       *bool
	is_dead        *bool
	died_at        *time.Time
	last_action_at *time.Time
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Character, error)
	predicates     []predicate.Character
}

var _ ent.Mutation = (*CharacterMutation)(nil)

// characterOption allows management of the mutation configuration using functional options.
type characterOption func(*CharacterMutation)

// newCharacterMutation creates new mutation for the Character entity.
func newCharacterMutation(c config, op Op, opts ...characterOption) *CharacterMutation {
	m := &CharacterMutation{
		config:        c,
		op:            op,
		typ:           TypeCharacter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCharacterID sets the ID field of the mutation.
func withCharacterID(id string) characterOption {
	return func(m *CharacterMutation) {
		var (
			err   error
			once  sync.Once
			value *Character
		)
		m.oldValue = func(ctx context.Context) (*Character, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Character.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCharacter sets the old Character of the mutation.
func withCharacter(node *Character) characterOption {
	return func(m *CharacterMutation) {
		m.oldValue = func(context.Context) (*Character, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CharacterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CharacterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Character entities.
func (m *CharacterMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CharacterMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CharacterMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Character.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CharacterMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CharacterMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Character entity.
// If the Character object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CharacterMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CharacterMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *CharacterMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CharacterMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Character entity.
// If the Character object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CharacterMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *CharacterMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[character.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *CharacterMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[character.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *CharacterMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, character.FieldDescription)
}

// SetAccountID sets the "account_id" field.
func (m *CharacterMutation) SetAccountID(s string) {
	m.account_id = &s
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *CharacterMutation) AccountID() (r string, exists bool) {
	v := m.account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the Character entity.
// If the Character object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CharacterMutation) OldAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ClearAccountID clears the value of the "account_id" field.
func (m *CharacterMutation) ClearAccountID() {
	m.account_id = nil
	m.clearedFields[character.FieldAccountID] = struct{}{}
}

// AccountIDCleared returns if the "account_id" field was cleared in this mutation.
func (m *CharacterMutation) AccountIDCleared() bool {
	_, ok := m.clearedFields[character.FieldAccountID]
	return ok
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *CharacterMutation) ResetAccountID() {
	m.account_id = nil
	delete(m.clearedFields, character.FieldAccountID)
}

// SetRoomID sets the "room_id" field.
func (m *CharacterMutation) SetRoomID(s string) {
	m.room_id = &s
}

// RoomID returns the value of the "room_id" field in the mutation.
func (m *CharacterMutation) RoomID() (r string, exists bool) {
	v := m.room_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRoomID returns the old "room_id" field's value of the Character entity.
// If the Character object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CharacterMutation) OldRoomID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoomID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoomID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoomID: %w", err)
	}
	return oldValue.RoomID, nil
}

// ResetRoomID resets all changes to the "room_id" field.
func (m *CharacterMutation) ResetRoomID() {
	m.room_id = nil
}

// SetSpawnPointID sets the "spawn_point_id" field.
func (m *CharacterMutation) SetSpawnPointID(s string) {
	m.spawn_point_id = &s
}

// SpawnPointID returns the value of the "spawn_point_id" field in the mutation.
func (m *CharacterMutation) SpawnPointID() (r string, exists bool) {
	v := m.spawn_point_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSpawnPointID returns the old "spawn_point_id" field's value of the Character entity.
// If the Character object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CharacterMutation) OldSpawnPointID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpawnPointID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpawnPointID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpawnPointID: %w", err)
	}
	return oldValue.SpawnPointID, nil
}

// ClearSpawnPointID clears the value of the "spawn_point_id" field.
func (m *CharacterMutation) ClearSpawnPointID() {
	m.spawn_point_id = nil
	m.clearedFields[character.FieldSpawnPointID] = struct{}{}
}

// SpawnPointIDCleared returns if the "spawn_point_id" field was cleared in this mutation.
func (m *CharacterMutation) SpawnPointIDCleared() bool {
	_, ok := m.clearedFields[character.FieldSpawnPointID]
	return ok
}

// ResetSpawnPointID resets all changes to the "spawn_point_id" field.
func (m *CharacterMutation) ResetSpawnPointID() {
	m.spawn_point_id = nil
	delete(m.clearedFields, character.FieldSpawnPointID)
}

// SetHp sets the "hp" field.
func (m *CharacterMutation) SetHp(i int) {
	m.hp = &i
	m.addhp = nil
}

// Hp returns the value of the "hp" field in the mutation.
func (m *CharacterMutation) Hp() (r int, exists bool) {
	v := m.hp
	if v == nil {
		return
	}
	return *v, true
}

// OldHp returns the old "hp" field's value of the Character entity.
// If the Character object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CharacterMutation) OldHp(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHp: %w", err)
	}
	return oldValue.Hp, nil
}

// AddHp adds i to the "hp" field.
func (m *CharacterMutation) AddHp(i int) {
	if m.addhp != nil {
		*m.addhp += i
	} else {
		m.addhp = &i
	}
}

// AddedHp returns the value that was added to the "hp" field in this mutation.
func (m *CharacterMutation) AddedHp() (r int, exists bool) {
	v := m.addhp
	if v == nil {
		return
	}
	return *v, true
}

// ResetHp resets all changes to the "hp" field.
func (m *CharacterMutation) ResetHp() {
	m.hp = nil
	m.addhp = nil
}

// SetMaxHp sets the "max_hp" field.
func (m *CharacterMutation) SetMaxHp(i int) {
	m.max_hp = &i
	m.addmax_hp = nil
}

// MaxHp returns the value of the "max_hp" field in the mutation.
func (m *CharacterMutation) MaxHp() (r int, exists bool) {
	v := m.max_hp
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxHp returns the old "max_hp" field's value of the Character entity.
// If the Character object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CharacterMutation) OldMaxHp(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxHp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxHp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxHp: %w", err)
	}
	return oldValue.MaxHp, nil
}

// AddMaxHp adds i to the "max_hp" field.
func (m *CharacterMutation) AddMaxHp(i int) {
	if m.addmax_hp != nil {
		*m.addmax_hp += i
	} else {
		m.addmax_hp = &i
	}
}

// AddedMaxHp returns the value that was added to the "max_hp" field in this mutation.
func (m *CharacterMutation) AddedMaxHp() (r int, exists bool) {
	v := m.addmax_hp
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxHp resets all changes to the "max_hp" field.
func (m *CharacterMutation) ResetMaxHp() {
	m.max_hp = nil
	m.addmax_hp = nil
}

// SetAttack sets the "attack" field.
func (m *CharacterMutation) SetAttack(i int) {
	m.attack = &i
	m.addattack = nil
}

// Attack returns the value of the "attack" field in the mutation.
func (m *CharacterMutation) Attack() (r int, exists bool) {
	v := m.attack
	if v == nil {
		return
	}
	return *v, true
}

// OldAttack returns the old "attack" field's value of the Character entity.
// If the Character object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CharacterMutation) OldAttack(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttack is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttack requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttack: %w", err)
	}
	return oldValue.Attack, nil
}

// AddAttack adds i to the "attack" field.
func (m *CharacterMutation) AddAttack(i int) {
	if m.addattack != nil {
		*m.addattack += i
	} else {
		m.addattack = &i
	}
}

// AddedAttack returns the value that was added to the "attack" field in this mutation.
func (m *CharacterMutation) AddedAttack() (r int, exists bool) {
	v := m.addattack
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttack resets all changes to the "attack" field.
func (m *CharacterMutation) ResetAttack() {
	m.attack = nil
	m.addattack = nil
}

// SetDefense sets the "defense" field.
func (m *CharacterMutation) SetDefense(i int) {
	m.defense = &i
	m.adddefense = nil
}

// Defense returns the value of the "defense" field in the mutation.
func (m *CharacterMutation) Defense() (r int, exists bool) {
	v := m.defense
	if v == nil {
		return
	}
	return *v, true
}

// OldDefense returns the old "defense" field's value of the Character entity.
// If the Character object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CharacterMutation) OldDefense(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefense is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefense requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefense: %w", err)
	}
	return oldValue.Defense, nil
}

// AddDefense adds i to the "defense" field.
func (m *CharacterMutation) AddDefense(i int) {
	if m.adddefense != nil {
		*m.adddefense += i
	} else {
		m.adddefense = &i
	}
}

// AddedDefense returns the value that was added to the "defense" field in this mutation.
func (m *CharacterMutation) AddedDefense() (r int, exists bool) {
	v := m.adddefense
	if v == nil {
		return
	}
	return *v, true
}

// ResetDefense resets all changes to the "defense" field.
func (m *CharacterMutation) ResetDefense() {
	m.defense = nil
	m.adddefense = nil
}

// SetSpeed sets the "speed" field.
func (m *CharacterMutation) SetSpeed(i int) {
	m.speed = &i
	m.addspeed = nil
}

// Speed returns the value of the "speed" field in the mutation.
func (m *CharacterMutation) Speed() (r int, exists bool) {
	v := m.speed
	if v == nil {
		return
	}
	return *v, true
}

// OldSpeed returns the old "speed" field's value of the Character entity.
// If the Character object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CharacterMutation) OldSpeed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpeed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpeed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpeed: %w", err)
	}
	return oldValue.Speed, nil
}

// AddSpeed adds i to the "speed" field.
func (m *CharacterMutation) AddSpeed(i int) {
	if m.addspeed != nil {
		*m.addspeed += i
	} else {
		m.addspeed = &i
	}
}

// AddedSpeed returns the value that was added to the "speed" field in this mutation.
func (m *CharacterMutation) AddedSpeed() (r int, exists bool) {
	v := m.addspeed
	if v == nil {
		return
	}
	return *v, true
}

// ResetSpeed resets all changes to the "speed" field.
func (m *CharacterMutation) ResetSpeed() {
	m.speed = nil
	m.addspeed = nil
}

// SetIsAlive sets the "is_alive" field.
func (m *CharacterMutation) SetIsAlive(b bool) {
	m.is_alive = &b
}

// IsAlive returns the value of the "is_alive" field in the mutation.
func (m *CharacterMutation) IsAlive() (r bool, exists bool) {
	v := m.is_alive
	if v == nil {
		return
	}
	return *v, true
}

// OldIsAlive returns the old "is_alive" field's value of the Character entity.
// If the Character object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CharacterMutation) OldIsAlive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsAlive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsAlive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsAlive: %w", err)
	}
	return oldValue.IsAlive, nil
}

// ResetIsAlive resets all changes to the "is_alive" field.
func (m *CharacterMutation) ResetIsAlive() {
	m.is_alive = nil
}

// SetIsDead sets the "is_dead" field.
func (m *CharacterMutation) SetIsDead(b bool) {
	m.is_dead = &b
}

// IsDead returns the value of the "is_dead" field in the mutation.
func (m *CharacterMutation) IsDead() (r bool, exists bool) {
	v := m.is_dead
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDead returns the old "is_dead" field's value of the Character entity.
// If the Character object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CharacterMutation) OldIsDead(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDead is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDead requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDead: %w", err)
	}
	return oldValue.IsDead, nil
}

// ResetIsDead resets all changes to the "is_dead" field.
func (m *CharacterMutation) ResetIsDead() {
	m.is_dead = nil
}

// SetDiedAt sets the "died_at" field.
func (m *CharacterMutation) SetDiedAt(t time.Time) {
	m.died_at = &t
}

// DiedAt returns the value of the "died_at" field in the mutation.
func (m *CharacterMutation) DiedAt() (r time.Time, exists bool) {
	v := m.died_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDiedAt returns the old "died_at" field's value of the Character entity.
// If the Character object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CharacterMutation) OldDiedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiedAt: %w", err)
	}
	return oldValue.DiedAt, nil
}

// ClearDiedAt clears the value of the "died_at" field.
func (m *CharacterMutation) ClearDiedAt() {
	m.died_at = nil
	m.clearedFields[character.FieldDiedAt] = struct{}{}
}

// DiedAtCleared returns if the "died_at" field was cleared in this mutation.
func (m *CharacterMutation) DiedAtCleared() bool {
	_, ok := m.clearedFields[character.FieldDiedAt]
	return ok
}

// ResetDiedAt resets all changes to the "died_at" field.
func (m *CharacterMutation) ResetDiedAt() {
	m.died_at = nil
	delete(m.clearedFields, character.FieldDiedAt)
}

// SetLastActionAt sets the "last_action_at" field.
func (m *CharacterMutation) SetLastActionAt(t time.Time) {
	m.last_action_at = &t
}

// LastActionAt returns the value of the "last_action_at" field in the mutation.
func (m *CharacterMutation) LastActionAt() (r time.Time, exists bool) {
	v := m.last_action_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActionAt returns the old "last_action_at" field's value of the Character entity.
// If the Character object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CharacterMutation) OldLastActionAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActionAt: %w", err)
	}
	return oldValue.LastActionAt, nil
}

// ClearLastActionAt clears the value of the "last_action_at" field.
func (m *CharacterMutation) ClearLastActionAt() {
	m.last_action_at = nil
	m.clearedFields[character.FieldLastActionAt] = struct{}{}
}

// LastActionAtCleared returns if the "last_action_at" field was cleared in this mutation.
func (m *CharacterMutation) LastActionAtCleared() bool {
	_, ok := m.clearedFields[character.FieldLastActionAt]
	return ok
}

// ResetLastActionAt resets all changes to the "last_action_at" field.
func (m *CharacterMutation) ResetLastActionAt() {
	m.last_action_at = nil
	delete(m.clearedFields, character.FieldLastActionAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *CharacterMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CharacterMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Character entity.
// If the Character object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CharacterMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CharacterMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the CharacterMutation builder.
func (m *CharacterMutation) Where(ps ...predicate.Character) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CharacterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CharacterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Character, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CharacterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CharacterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Character).
func (m *CharacterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CharacterMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.name != nil {
		fields = append(fields, character.FieldName)
	}
	if m.description != nil {
		fields = append(fields, character.FieldDescription)
	}
	if m.account_id != nil {
		fields = append(fields, character.FieldAccountID)
	}
	if m.room_id != nil {
		fields = append(fields, character.FieldRoomID)
	}
	if m.spawn_point_id != nil {
		fields = append(fields, character.FieldSpawnPointID)
	}
	if m.hp != nil {
		fields = append(fields, character.FieldHp)
	}
	if m.max_hp != nil {
		fields = append(fields, character.FieldMaxHp)
	}
	if m.attack != nil {
		fields = append(fields, character.FieldAttack)
	}
	if m.defense != nil {
		fields = append(fields, character.FieldDefense)
	}
	if m.speed != nil {
		fields = append(fields, character.FieldSpeed)
	}
	if m.is_alive != nil {
		fields = append(fields, character.FieldIsAlive)
	}
	if m.is_dead != nil {
		fields = append(fields, character.FieldIsDead)
	}
	if m.died_at != nil {
		fields = append(fields, character.FieldDiedAt)
	}
	if m.last_action_at != nil {
		fields = append(fields, character.FieldLastActionAt)
	}
	if m.created_at != nil {
		fields = append(fields, character.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CharacterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case character.FieldName:
		return m.Name()
	case character.FieldDescription:
		return m.Description()
	case character.FieldAccountID:
		return m.AccountID()
	case character.FieldRoomID:
		return m.RoomID()
	case character.FieldSpawnPointID:
		return m.SpawnPointID()
	case character.FieldHp:
		return m.Hp()
	case character.FieldMaxHp:
		return m.MaxHp()
	case character.FieldAttack:
		return m.Attack()
	case character.FieldDefense:
		return m.Defense()
	case character.FieldSpeed:
		return m.Speed()
	case character.FieldIsAlive:
		return m.IsAlive()
	case character.FieldIsDead:
		return m.IsDead()
	case character.FieldDiedAt:
		return m.DiedAt()
	case character.FieldLastActionAt:
		return m.LastActionAt()
	case character.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CharacterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case character.FieldName:
		return m.OldName(ctx)
	case character.FieldDescription:
		return m.OldDescription(ctx)
	case character.FieldAccountID:
		return m.OldAccountID(ctx)
	case character.FieldRoomID:
		return m.OldRoomID(ctx)
	case character.FieldSpawnPointID:
		return m.OldSpawnPointID(ctx)
	case character.FieldHp:
		return m.OldHp(ctx)
	case character.FieldMaxHp:
		return m.OldMaxHp(ctx)
	case character.FieldAttack:
		return m.OldAttack(ctx)
	case character.FieldDefense:
		return m.OldDefense(ctx)
	case character.FieldSpeed:
		return m.OldSpeed(ctx)
	case character.FieldIsAlive:
		return m.OldIsAlive(ctx)
	case character.FieldIsDead:
		return m.OldIsDead(ctx)
	case character.FieldDiedAt:
		return m.OldDiedAt(ctx)
	case character.FieldLastActionAt:
		return m.OldLastActionAt(ctx)
	case character.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Character field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CharacterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case character.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case character.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case character.FieldAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case character.FieldRoomID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoomID(v)
		return nil
	case character.FieldSpawnPointID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpawnPointID(v)
		return nil
	case character.FieldHp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHp(v)
		return nil
	case character.FieldMaxHp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxHp(v)
		return nil
	case character.FieldAttack:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttack(v)
		return nil
	case character.FieldDefense:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefense(v)
		return nil
	case character.FieldSpeed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpeed(v)
		return nil
	case character.FieldIsAlive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsAlive(v)
		return nil
	case character.FieldIsDead:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDead(v)
		return nil
	case character.FieldDiedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiedAt(v)
		return nil
	case character.FieldLastActionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActionAt(v)
		return nil
	case character.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Character field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CharacterMutation) AddedFields() []string {
	var fields []string
	if m.addhp != nil {
		fields = append(fields, character.FieldHp)
	}
	if m.addmax_hp != nil {
		fields = append(fields, character.FieldMaxHp)
	}
	if m.addattack != nil {
		fields = append(fields, character.FieldAttack)
	}
	if m.adddefense != nil {
		fields = append(fields, character.FieldDefense)
	}
	if m.addspeed != nil {
		fields = append(fields, character.FieldSpeed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CharacterMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case character.FieldHp:
		return m.AddedHp()
	case character.FieldMaxHp:
		return m.AddedMaxHp()
	case character.FieldAttack:
		return m.AddedAttack()
	case character.FieldDefense:
		return m.AddedDefense()
	case character.FieldSpeed:
		return m.AddedSpeed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CharacterMutation) AddField(name string, value ent.Value) error {
	switch name {
	case character.FieldHp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHp(v)
		return nil
	case character.FieldMaxHp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxHp(v)
		return nil
	case character.FieldAttack:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttack(v)
		return nil
	case character.FieldDefense:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDefense(v)
		return nil
	case character.FieldSpeed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSpeed(v)
		return nil
	}
	return fmt.Errorf("unknown Character numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CharacterMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(character.FieldDescription) {
		fields = append(fields, character.FieldDescription)
	}
	if m.FieldCleared(character.FieldAccountID) {
		fields = append(fields, character.FieldAccountID)
	}
	if m.FieldCleared(character.FieldSpawnPointID) {
		fields = append(fields, character.FieldSpawnPointID)
	}
	if m.FieldCleared(character.FieldDiedAt) {
		fields = append(fields, character.FieldDiedAt)
	}
	if m.FieldCleared(character.FieldLastActionAt) {
		fields = append(fields, character.FieldLastActionAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CharacterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CharacterMutation) ClearField(name string) error {
	switch name {
	case character.FieldDescription:
		m.ClearDescription()
		return nil
	case character.FieldAccountID:
		m.ClearAccountID()
		return nil
	case character.FieldSpawnPointID:
		m.ClearSpawnPointID()
		return nil
	case character.FieldDiedAt:
		m.ClearDiedAt()
		return nil
	case character.FieldLastActionAt:
		m.ClearLastActionAt()
		return nil
	}
	return fmt.Errorf("unknown Character nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CharacterMutation) ResetField(name string) error {
	switch name {
	case character.FieldName:
		m.ResetName()
		return nil
	case character.FieldDescription:
		m.ResetDescription()
		return nil
	case character.FieldAccountID:
		m.ResetAccountID()
		return nil
	case character.FieldRoomID:
		m.ResetRoomID()
		return nil
	case character.FieldSpawnPointID:
		m.ResetSpawnPointID()
		return nil
	case character.FieldHp:
		m.ResetHp()
		return nil
	case character.FieldMaxHp:
		m.ResetMaxHp()
		return nil
	case character.FieldAttack:
		m.ResetAttack()
		return nil
	case character.FieldDefense:
		m.ResetDefense()
		return nil
	case character.FieldSpeed:
		m.ResetSpeed()
		return nil
	case character.FieldIsAlive:
		m.ResetIsAlive()
		return nil
	case character.FieldIsDead:
		m.ResetIsDead()
		return nil
	case character.FieldDiedAt:
		m.ResetDiedAt()
		return nil
	case character.FieldLastActionAt:
		m.ResetLastActionAt()
		return nil
	case character.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Character field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CharacterMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CharacterMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CharacterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CharacterMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CharacterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CharacterMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CharacterMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Character unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CharacterMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Character edge %s", name)
}

// GameEventMutation represents an operation that mutates the GameEvent nodes in the graph.
type GameEventMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	_type                  *string
	timestamp              *time.Time
	origin_room_id         *string
	visibility             *gameevent.Visibility
	content                *string
	payload                *map[string]interface{}
	recipients             *[]string
	appendrecipients       []string
	related_entities       *[]string
	appendrelated_entities []string
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*GameEvent, error)
	predicates             []predicate.GameEvent
}

var _ ent.Mutation = (*GameEventMutation)(nil)

// gameeventOption allows management of the mutation configuration using functional options.
type gameeventOption func(*GameEventMutation)

// newGameEventMutation creates new mutation for the GameEvent entity.
func newGameEventMutation(c config, op Op, opts ...gameeventOption) *GameEventMutation {
	m := &GameEventMutation{
		config:        c,
		op:            op,
		typ:           TypeGameEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGameEventID sets the ID field of the mutation.
func withGameEventID(id string) gameeventOption {
	return func(m *GameEventMutation) {
		var (
			err   error
			once  sync.Once
			value *GameEvent
		)
		m.oldValue = func(ctx context.Context) (*GameEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GameEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGameEvent sets the old GameEvent of the mutation.
func withGameEvent(node *GameEvent) gameeventOption {
	return func(m *GameEventMutation) {
		m.oldValue = func(context.Context) (*GameEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GameEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GameEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GameEvent entities.
func (m *GameEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GameEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GameEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GameEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetType sets the "type" field.
func (m *GameEventMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *GameEventMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the GameEvent entity.
// If the GameEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameEventMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *GameEventMutation) ResetType() {
	m._type = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *GameEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *GameEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the GameEvent entity.
// If the GameEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *GameEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetOriginRoomID sets the "origin_room_id" field.
func (m *GameEventMutation) SetOriginRoomID(s string) {
	m.origin_room_id = &s
}

// OriginRoomID returns the value of the "origin_room_id" field in the mutation.
func (m *GameEventMutation) OriginRoomID() (r string, exists bool) {
	v := m.origin_room_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginRoomID returns the old "origin_room_id" field's value of the GameEvent entity.
// If the GameEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameEventMutation) OldOriginRoomID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginRoomID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginRoomID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginRoomID: %w", err)
	}
	return oldValue.OriginRoomID, nil
}

// ClearOriginRoomID clears the value of the "origin_room_id" field.
func (m *GameEventMutation) ClearOriginRoomID() {
	m.origin_room_id = nil
	m.clearedFields[gameevent.FieldOriginRoomID] = struct{}{}
}

// OriginRoomIDCleared returns if the "origin_room_id" field was cleared in this mutation.
func (m *GameEventMutation) OriginRoomIDCleared() bool {
	_, ok := m.clearedFields[gameevent.FieldOriginRoomID]
	return ok
}

// ResetOriginRoomID resets all changes to the "origin_room_id" field.
func (m *GameEventMutation) ResetOriginRoomID() {
	m.origin_room_id = nil
	delete(m.clearedFields, gameevent.FieldOriginRoomID)
}

// SetVisibility sets the "visibility" field.
func (m *GameEventMutation) SetVisibility(ga gameevent.Visibility) {
	m.visibility = &ga
}

// Visibility returns the value of the "visibility" field in the mutation.
func (m *GameEventMutation) Visibility() (r gameevent.Visibility, exists bool) {
	v := m.visibility
	if v == nil {
		return
	}
	return *v, true
}

// OldVisibility returns the old "visibility" field's value of the GameEvent entity.
// If the GameEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameEventMutation) OldVisibility(ctx context.Context) (v gameevent.Visibility, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisibility is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisibility requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisibility: %w", err)
	}
	return oldValue.Visibility, nil
}

// ResetVisibility resets all changes to the "visibility" field.
func (m *GameEventMutation) ResetVisibility() {
	m.visibility = nil
}

// SetContent sets the "content" field.
func (m *GameEventMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *GameEventMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the GameEvent entity.
// If the GameEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameEventMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *GameEventMutation) ClearContent() {
	m.content = nil
	m.clearedFields[gameevent.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *GameEventMutation) ContentCleared() bool {
	_, ok := m.clearedFields[gameevent.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *GameEventMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, gameevent.FieldContent)
}

// SetPayload sets the "payload" field.
func (m *GameEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *GameEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the GameEvent entity.
// If the GameEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *GameEventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[gameevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *GameEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[gameevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *GameEventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, gameevent.FieldPayload)
}

// SetRecipients sets the "recipients" field.
func (m *GameEventMutation) SetRecipients(s []string) {
	m.recipients = &s
	m.appendrecipients = nil
}

// Recipients returns the value of the "recipients" field in the mutation.
func (m *GameEventMutation) Recipients() (r []string, exists bool) {
	v := m.recipients
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipients returns the old "recipients" field's value of the GameEvent entity.
// If the GameEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameEventMutation) OldRecipients(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipients is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipients requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipients: %w", err)
	}
	return oldValue.Recipients, nil
}

// AppendRecipients adds s to the "recipients" field.
func (m *GameEventMutation) AppendRecipients(s []string) {
	m.appendrecipients = append(m.appendrecipients, s...)
}

// AppendedRecipients returns the list of values that were appended to the "recipients" field in this mutation.
func (m *GameEventMutation) AppendedRecipients() ([]string, bool) {
	if len(m.appendrecipients) == 0 {
		return nil, false
	}
	return m.appendrecipients, true
}

// ClearRecipients clears the value of the "recipients" field.
func (m *GameEventMutation) ClearRecipients() {
	m.recipients = nil
	m.appendrecipients = nil
	m.clearedFields[gameevent.FieldRecipients] = struct{}{}
}

// RecipientsCleared returns if the "recipients" field was cleared in this mutation.
func (m *GameEventMutation) RecipientsCleared() bool {
	_, ok := m.clearedFields[gameevent.FieldRecipients]
	return ok
}

// ResetRecipients resets all changes to the "recipients" field.
func (m *GameEventMutation) ResetRecipients() {
	m.recipients = nil
	m.appendrecipients = nil
	delete(m.clearedFields, gameevent.FieldRecipients)
}

// SetRelatedEntities sets the "related_entities" field.
func (m *GameEventMutation) SetRelatedEntities(s []string) {
	m.related_entities = &s
	m.appendrelated_entities = nil
}

// RelatedEntities returns the value of the "related_entities" field in the mutation.
func (m *GameEventMutation) RelatedEntities() (r []string, exists bool) {
	v := m.related_entities
	if v == nil {
		return
	}
	return *v, true
}

// OldRelatedEntities returns the old "related_entities" field's value of the GameEvent entity.
// If the GameEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameEventMutation) OldRelatedEntities(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelatedEntities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelatedEntities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelatedEntities: %w", err)
	}
	return oldValue.RelatedEntities, nil
}

// AppendRelatedEntities adds s to the "related_entities" field.
func (m *GameEventMutation) AppendRelatedEntities(s []string) {
	m.appendrelated_entities = append(m.appendrelated_entities, s...)
}

// AppendedRelatedEntities returns the list of values that were appended to the "related_entities" field in this mutation.
func (m *GameEventMutation) AppendedRelatedEntities() ([]string, bool) {
	if len(m.appendrelated_entities) == 0 {
		return nil, false
	}
	return m.appendrelated_entities, true
}

// ClearRelatedEntities clears the value of the "related_entities" field.
func (m *GameEventMutation) ClearRelatedEntities() {
	m.related_entities = nil
	m.appendrelated_entities = nil
	m.clearedFields[gameevent.FieldRelatedEntities] = struct{}{}
}

// RelatedEntitiesCleared returns if the "related_entities" field was cleared in this mutation.
func (m *GameEventMutation) RelatedEntitiesCleared() bool {
	_, ok := m.clearedFields[gameevent.FieldRelatedEntities]
	return ok
}

// ResetRelatedEntities resets all changes to the "related_entities" field.
func (m *GameEventMutation) ResetRelatedEntities() {
	m.related_entities = nil
	m.appendrelated_entities = nil
	delete(m.clearedFields, gameevent.FieldRelatedEntities)
}

// Where appends a list predicates to the GameEventMutation builder.
func (m *GameEventMutation) Where(ps ...predicate.GameEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GameEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GameEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GameEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GameEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GameEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GameEvent).
func (m *GameEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GameEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m._type != nil {
		fields = append(fields, gameevent.FieldType)
	}
	if m.timestamp != nil {
		fields = append(fields, gameevent.FieldTimestamp)
	}
	if m.origin_room_id != nil {
		fields = append(fields, gameevent.FieldOriginRoomID)
	}
	if m.visibility != nil {
		fields = append(fields, gameevent.FieldVisibility)
	}
	if m.content != nil {
		fields = append(fields, gameevent.FieldContent)
	}
	if m.payload != nil {
		fields = append(fields, gameevent.FieldPayload)
	}
	if m.recipients != nil {
		fields = append(fields, gameevent.FieldRecipients)
	}
	if m.related_entities != nil {
		fields = append(fields, gameevent.FieldRelatedEntities)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GameEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case gameevent.FieldType:
		return m.GetType()
	case gameevent.FieldTimestamp:
		return m.Timestamp()
	case gameevent.FieldOriginRoomID:
		return m.OriginRoomID()
	case gameevent.FieldVisibility:
		return m.Visibility()
	case gameevent.FieldContent:
		return m.Content()
	case gameevent.FieldPayload:
		return m.Payload()
	case gameevent.FieldRecipients:
		return m.Recipients()
	case gameevent.FieldRelatedEntities:
		return m.RelatedEntities()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GameEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case gameevent.FieldType:
		return m.OldType(ctx)
	case gameevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case gameevent.FieldOriginRoomID:
		return m.OldOriginRoomID(ctx)
	case gameevent.FieldVisibility:
		return m.OldVisibility(ctx)
	case gameevent.FieldContent:
		return m.OldContent(ctx)
	case gameevent.FieldPayload:
		return m.OldPayload(ctx)
	case gameevent.FieldRecipients:
		return m.OldRecipients(ctx)
	case gameevent.FieldRelatedEntities:
		return m.OldRelatedEntities(ctx)
	}
	return nil, fmt.Errorf("unknown GameEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GameEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case gameevent.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case gameevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case gameevent.FieldOriginRoomID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginRoomID(v)
		return nil
	case gameevent.FieldVisibility:
		v, ok := value.(gameevent.Visibility)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisibility(v)
		return nil
	case gameevent.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case gameevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case gameevent.FieldRecipients:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipients(v)
		return nil
	case gameevent.FieldRelatedEntities:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelatedEntities(v)
		return nil
	}
	return fmt.Errorf("unknown GameEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GameEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GameEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GameEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown GameEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GameEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(gameevent.FieldOriginRoomID) {
		fields = append(fields, gameevent.FieldOriginRoomID)
	}
	if m.FieldCleared(gameevent.FieldContent) {
		fields = append(fields, gameevent.FieldContent)
	}
	if m.FieldCleared(gameevent.FieldPayload) {
		fields = append(fields, gameevent.FieldPayload)
	}
	if m.FieldCleared(gameevent.FieldRecipients) {
		fields = append(fields, gameevent.FieldRecipients)
	}
	if m.FieldCleared(gameevent.FieldRelatedEntities) {
		fields = append(fields, gameevent.FieldRelatedEntities)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GameEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GameEventMutation) ClearField(name string) error {
	switch name {
	case gameevent.FieldOriginRoomID:
		m.ClearOriginRoomID()
		return nil
	case gameevent.FieldContent:
		m.ClearContent()
		return nil
	case gameevent.FieldPayload:
		m.ClearPayload()
		return nil
	case gameevent.FieldRecipients:
		m.ClearRecipients()
		return nil
	case gameevent.FieldRelatedEntities:
		m.ClearRelatedEntities()
		return nil
	}
	return fmt.Errorf("unknown GameEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GameEventMutation) ResetField(name string) error {
	switch name {
	case gameevent.FieldType:
		m.ResetType()
		return nil
	case gameevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case gameevent.FieldOriginRoomID:
		m.ResetOriginRoomID()
		return nil
	case gameevent.FieldVisibility:
		m.ResetVisibility()
		return nil
	case gameevent.FieldContent:
		m.ResetContent()
		return nil
	case gameevent.FieldPayload:
		m.ResetPayload()
		return nil
	case gameevent.FieldRecipients:
		m.ResetRecipients()
		return nil
	case gameevent.FieldRelatedEntities:
		m.ResetRelatedEntities()
		return nil
	}
	return fmt.Errorf("unknown GameEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GameEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GameEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GameEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GameEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GameEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GameEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GameEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GameEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GameEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GameEvent edge %s", name)
}

// GameStateMutation represents an operation that mutates the GameState nodes in the graph.
type GameStateMutation struct {
	config
	op            Op
	typ           string
	id            *int
	is_paused     *bool
	game_time     *float64
	addgame_time  *float64
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*GameState, error)
	predicates    []predicate.GameState
}

var _ ent.Mutation = (*GameStateMutation)(nil)

// gamestateOption allows management of the mutation configuration using functional options.
type gamestateOption func(*GameStateMutation)

// newGameStateMutation creates new mutation for the GameState entity.
func newGameStateMutation(c config, op Op, opts ...gamestateOption) *GameStateMutation {
	m := &GameStateMutation{
		config:        c,
		op:            op,
		typ:           TypeGameState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGameStateID sets the ID field of the mutation.
func withGameStateID(id int) gamestateOption {
	return func(m *GameStateMutation) {
		var (
			err   error
			once  sync.Once
			value *GameState
		)
		m.oldValue = func(ctx context.Context) (*GameState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GameState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGameState sets the old GameState of the mutation.
func withGameState(node *GameState) gamestateOption {
	return func(m *GameStateMutation) {
		m.oldValue = func(context.Context) (*GameState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GameStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GameStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GameState entities.
func (m *GameStateMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GameStateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GameStateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GameState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIsPaused sets the "is_paused" field.
func (m *GameStateMutation) SetIsPaused(b bool) {
	m.is_paused = &b
}

// IsPaused returns the value of the "is_paused" field in the mutation.
func (m *GameStateMutation) IsPaused() (r bool, exists bool) {
	v := m.is_paused
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPaused returns the old "is_paused" field's value of the GameState entity.
// If the GameState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameStateMutation) OldIsPaused(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPaused is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPaused requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPaused: %w", err)
	}
	return oldValue.IsPaused, nil
}

// ResetIsPaused resets all changes to the "is_paused" field.
func (m *GameStateMutation) ResetIsPaused() {
	m.is_paused = nil
}

// SetGameTime sets the "game_time" field.
func (m *GameStateMutation) SetGameTime(f float64) {
	m.game_time = &f
	m.addgame_time = nil
}

// GameTime returns the value of the "game_time" field in the mutation.
func (m *GameStateMutation) GameTime() (r float64, exists bool) {
	v := m.game_time
	if v == nil {
		return
	}
	return *v, true
}

// OldGameTime returns the old "game_time" field's value of the GameState entity.
// If the GameState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameStateMutation) OldGameTime(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGameTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGameTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGameTime: %w", err)
	}
	return oldValue.GameTime, nil
}

// AddGameTime adds f to the "game_time" field.
func (m *GameStateMutation) AddGameTime(f float64) {
	if m.addgame_time != nil {
		*m.addgame_time += f
	} else {
		m.addgame_time = &f
	}
}

// AddedGameTime returns the value that was added to the "game_time" field in this mutation.
func (m *GameStateMutation) AddedGameTime() (r float64, exists bool) {
	v := m.addgame_time
	if v == nil {
		return
	}
	return *v, true
}

// ResetGameTime resets all changes to the "game_time" field.
func (m *GameStateMutation) ResetGameTime() {
	m.game_time = nil
	m.addgame_time = nil
}

// Where appends a list predicates to the GameStateMutation builder.
func (m *GameStateMutation) Where(ps ...predicate.GameState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GameStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GameStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GameState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GameStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GameStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GameState).
func (m *GameStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GameStateMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.is_paused != nil {
		fields = append(fields, gamestate.FieldIsPaused)
	}
	if m.game_time != nil {
		fields = append(fields, gamestate.FieldGameTime)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GameStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case gamestate.FieldIsPaused:
		return m.IsPaused()
	case gamestate.FieldGameTime:
		return m.GameTime()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GameStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case gamestate.FieldIsPaused:
		return m.OldIsPaused(ctx)
	case gamestate.FieldGameTime:
		return m.OldGameTime(ctx)
	}
	return nil, fmt.Errorf("unknown GameState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GameStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case gamestate.FieldIsPaused:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPaused(v)
		return nil
	case gamestate.FieldGameTime:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGameTime(v)
		return nil
	}
	return fmt.Errorf("unknown GameState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GameStateMutation) AddedFields() []string {
	var fields []string
	if m.addgame_time != nil {
		fields = append(fields, gamestate.FieldGameTime)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GameStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case gamestate.FieldGameTime:
		return m.AddedGameTime()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GameStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case gamestate.FieldGameTime:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGameTime(v)
		return nil
	}
	return fmt.Errorf("unknown GameState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GameStateMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GameStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GameStateMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GameState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GameStateMutation) ResetField(name string) error {
	switch name {
	case gamestate.FieldIsPaused:
		m.ResetIsPaused()
		return nil
	case gamestate.FieldGameTime:
		m.ResetGameTime()
		return nil
	}
	return fmt.Errorf("unknown GameState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GameStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GameStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GameStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GameStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GameStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GameStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GameStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GameState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GameStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GameState edge %s", name)
}

// ItemMutation represents an operation that mutates the Item nodes in the graph.
type ItemMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	description   *string
	_type         *item.Type
	stats         *map[string]interface{}
	room_id       *string
	character_id  *string
	is_equipped   *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Item, error)
	predicates    []predicate.Item
}

var _ ent.Mutation = (*ItemMutation)(nil)

// itemOption allows management of the mutation configuration using functional options.
type itemOption func(*ItemMutation)

// newItemMutation creates new mutation for the Item entity.
func newItemMutation(c config, op Op, opts ...itemOption) *ItemMutation {
	m := &ItemMutation{
		config:        c,
		op:            op,
		typ:           TypeItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withItemID sets the ID field of the mutation.
func withItemID(id string) itemOption {
	return func(m *ItemMutation) {
		var (
			err   error
			once  sync.Once
			value *Item
		)
		m.oldValue = func(ctx context.Context) (*Item, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Item.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withItem sets the old Item of the mutation.
func withItem(node *Item) itemOption {
	return func(m *ItemMutation) {
		m.oldValue = func(context.Context) (*Item, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Item entities.
func (m *ItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Item.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ItemMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ItemMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ItemMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ItemMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ItemMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ItemMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[item.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ItemMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[item.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ItemMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, item.FieldDescription)
}

// SetType sets the "type" field.
func (m *ItemMutation) SetType(i item.Type) {
	m._type = &i
}

// GetType returns the value of the "type" field in the mutation.
func (m *ItemMutation) GetType() (r item.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldType(ctx context.Context) (v item.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *ItemMutation) ResetType() {
	m._type = nil
}

// SetStats sets the "stats" field.
func (m *ItemMutation) SetStats(value map[string]interface{}) {
	m.stats = &value
}

// Stats returns the value of the "stats" field in the mutation.
func (m *ItemMutation) Stats() (r map[string]interface{}, exists bool) {
	v := m.stats
	if v == nil {
		return
	}
	return *v, true
}

// OldStats returns the old "stats" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldStats(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStats is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStats requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStats: %w", err)
	}
	return oldValue.Stats, nil
}

// ClearStats clears the value of the "stats" field.
func (m *ItemMutation) ClearStats() {
	m.stats = nil
	m.clearedFields[item.FieldStats] = struct{}{}
}

// StatsCleared returns if the "stats" field was cleared in this mutation.
func (m *ItemMutation) StatsCleared() bool {
	_, ok := m.clearedFields[item.FieldStats]
	return ok
}

// ResetStats resets all changes to the "stats" field.
func (m *ItemMutation) ResetStats() {
	m.stats = nil
	delete(m.clearedFields, item.FieldStats)
}

// SetRoomID sets the "room_id" field.
func (m *ItemMutation) SetRoomID(s string) {
	m.room_id = &s
}

// RoomID returns the value of the "room_id" field in the mutation.
func (m *ItemMutation) RoomID() (r string, exists bool) {
	v := m.room_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRoomID returns the old "room_id" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldRoomID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoomID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoomID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoomID: %w", err)
	}
	return oldValue.RoomID, nil
}

// ClearRoomID clears the value of the "room_id" field.
func (m *ItemMutation) ClearRoomID() {
	m.room_id = nil
	m.clearedFields[item.FieldRoomID] = struct{}{}
}

// RoomIDCleared returns if the "room_id" field was cleared in this mutation.
func (m *ItemMutation) RoomIDCleared() bool {
	_, ok := m.clearedFields[item.FieldRoomID]
	return ok
}

// ResetRoomID resets all changes to the "room_id" field.
func (m *ItemMutation) ResetRoomID() {
	m.room_id = nil
	delete(m.clearedFields, item.FieldRoomID)
}

// SetCharacterID sets the "character_id" field.
func (m *ItemMutation) SetCharacterID(s string) {
	m.character_id = &s
}

// CharacterID returns the value of the "character_id" field in the mutation.
func (m *ItemMutation) CharacterID() (r string, exists bool) {
	v := m.character_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCharacterID returns the old "character_id" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldCharacterID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCharacterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCharacterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCharacterID: %w", err)
	}
	return oldValue.CharacterID, nil
}

// ClearCharacterID clears the value of the "character_id" field.
func (m *ItemMutation) ClearCharacterID() {
	m.character_id = nil
	m.clearedFields[item.FieldCharacterID] = struct{}{}
}

// CharacterIDCleared returns if the "character_id" field was cleared in this mutation.
func (m *ItemMutation) CharacterIDCleared() bool {
	_, ok := m.clearedFields[item.FieldCharacterID]
	return ok
}

// ResetCharacterID resets all changes to the "character_id" field.
func (m *ItemMutation) ResetCharacterID() {
	m.character_id = nil
	delete(m.clearedFields, item.FieldCharacterID)
}

// SetIsEquipped sets the "is_equipped" field.
func (m *ItemMutation) SetIsEquipped(b bool) {
	m.is_equipped = &b
}

// IsEquipped returns the value of the "is_equipped" field in the mutation.
func (m *ItemMutation) IsEquipped() (r bool, exists bool) {
	v := m.is_equipped
	if v == nil {
		return
	}
	return *v, true
}

// OldIsEquipped returns the old "is_equipped" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldIsEquipped(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsEquipped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsEquipped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsEquipped: %w", err)
	}
	return oldValue.IsEquipped, nil
}

// ResetIsEquipped resets all changes to the "is_equipped" field.
func (m *ItemMutation) ResetIsEquipped() {
	m.is_equipped = nil
}

// Where appends a list predicates to the ItemMutation builder.
func (m *ItemMutation) Where(ps ...predicate.Item) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Item, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Item).
func (m *ItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ItemMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.name != nil {
		fields = append(fields, item.FieldName)
	}
	if m.description != nil {
		fields = append(fields, item.FieldDescription)
	}
	if m._type != nil {
		fields = append(fields, item.FieldType)
	}
	if m.stats != nil {
		fields = append(fields, item.FieldStats)
	}
	if m.room_id != nil {
		fields = append(fields, item.FieldRoomID)
	}
	if m.character_id != nil {
		fields = append(fields, item.FieldCharacterID)
	}
	if m.is_equipped != nil {
		fields = append(fields, item.FieldIsEquipped)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case item.FieldName:
		return m.Name()
	case item.FieldDescription:
		return m.Description()
	case item.FieldType:
		return m.GetType()
	case item.FieldStats:
		return m.Stats()
	case item.FieldRoomID:
		return m.RoomID()
	case item.FieldCharacterID:
		return m.CharacterID()
	case item.FieldIsEquipped:
		return m.IsEquipped()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case item.FieldName:
		return m.OldName(ctx)
	case item.FieldDescription:
		return m.OldDescription(ctx)
	case item.FieldType:
		return m.OldType(ctx)
	case item.FieldStats:
		return m.OldStats(ctx)
	case item.FieldRoomID:
		return m.OldRoomID(ctx)
	case item.FieldCharacterID:
		return m.OldCharacterID(ctx)
	case item.FieldIsEquipped:
		return m.OldIsEquipped(ctx)
	}
	return nil, fmt.Errorf("unknown Item field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case item.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case item.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case item.FieldType:
		v, ok := value.(item.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case item.FieldStats:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStats(v)
		return nil
	case item.FieldRoomID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoomID(v)
		return nil
	case item.FieldCharacterID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCharacterID(v)
		return nil
	case item.FieldIsEquipped:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsEquipped(v)
		return nil
	}
	return fmt.Errorf("unknown Item field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ItemMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ItemMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Item numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(item.FieldDescription) {
		fields = append(fields, item.FieldDescription)
	}
	if m.FieldCleared(item.FieldStats) {
		fields = append(fields, item.FieldStats)
	}
	if m.FieldCleared(item.FieldRoomID) {
		fields = append(fields, item.FieldRoomID)
	}
	if m.FieldCleared(item.FieldCharacterID) {
		fields = append(fields, item.FieldCharacterID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ItemMutation) ClearField(name string) error {
	switch name {
	case item.FieldDescription:
		m.ClearDescription()
		return nil
	case item.FieldStats:
		m.ClearStats()
		return nil
	case item.FieldRoomID:
		m.ClearRoomID()
		return nil
	case item.FieldCharacterID:
		m.ClearCharacterID()
		return nil
	}
	return fmt.Errorf("unknown Item nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ItemMutation) ResetField(name string) error {
	switch name {
	case item.FieldName:
		m.ResetName()
		return nil
	case item.FieldDescription:
		m.ResetDescription()
		return nil
	case item.FieldType:
		m.ResetType()
		return nil
	case item.FieldStats:
		m.ResetStats()
		return nil
	case item.FieldRoomID:
		m.ResetRoomID()
		return nil
	case item.FieldCharacterID:
		m.ResetCharacterID()
		return nil
	case item.FieldIsEquipped:
		m.ResetIsEquipped()
		return nil
	}
	return fmt.Errorf("unknown Item field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Item unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Item edge %s", name)
}

// PlayerLogMutation represents an operation that mutates the PlayerLog nodes in the graph.
type PlayerLogMutation struct {
	config
	op            Op
	typ           string
	id            *int
	character_id  *string
	kind          *playerlog.Kind
	payload       *string
	timestamp     *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*PlayerLog, error)
	predicates    []predicate.PlayerLog
}

var _ ent.Mutation = (*PlayerLogMutation)(nil)

// playerlogOption allows management of the mutation configuration using functional options.
type playerlogOption func(*PlayerLogMutation)

// newPlayerLogMutation creates new mutation for the PlayerLog entity.
func newPlayerLogMutation(c config, op Op, opts ...playerlogOption) *PlayerLogMutation {
	m := &PlayerLogMutation{
		config:        c,
		op:            op,
		typ:           TypePlayerLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPlayerLogID sets the ID field of the mutation.
func withPlayerLogID(id int) playerlogOption {
	return func(m *PlayerLogMutation) {
		var (
			err   error
			once  sync.Once
			value *PlayerLog
		)
		m.oldValue = func(ctx context.Context) (*PlayerLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PlayerLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPlayerLog sets the old PlayerLog of the mutation.
func withPlayerLog(node *PlayerLog) playerlogOption {
	return func(m *PlayerLogMutation) {
		m.oldValue = func(context.Context) (*PlayerLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PlayerLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PlayerLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PlayerLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PlayerLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PlayerLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCharacterID sets the "character_id" field.
func (m *PlayerLogMutation) SetCharacterID(s string) {
	m.character_id = &s
}

// CharacterID returns the value of the "character_id" field in the mutation.
func (m *PlayerLogMutation) CharacterID() (r string, exists bool) {
	v := m.character_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCharacterID returns the old "character_id" field's value of the PlayerLog entity.
// If the PlayerLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerLogMutation) OldCharacterID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCharacterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCharacterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCharacterID: %w", err)
	}
	return oldValue.CharacterID, nil
}

// ResetCharacterID resets all changes to the "character_id" field.
func (m *PlayerLogMutation) ResetCharacterID() {
	m.character_id = nil
}

// SetKind sets the "kind" field.
func (m *PlayerLogMutation) SetKind(pl playerlog.Kind) {
	m.kind = &pl
}

// Kind returns the value of the "kind" field in the mutation.
func (m *PlayerLogMutation) Kind() (r playerlog.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the PlayerLog entity.
// If the PlayerLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerLogMutation) OldKind(ctx context.Context) (v playerlog.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *PlayerLogMutation) ResetKind() {
	m.kind = nil
}

// SetPayload sets the "payload" field.
func (m *PlayerLogMutation) SetPayload(s string) {
	m.payload = &s
}

// Payload returns the value of the "payload" field in the mutation.
func (m *PlayerLogMutation) Payload() (r string, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the PlayerLog entity.
// If the PlayerLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerLogMutation) OldPayload(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *PlayerLogMutation) ResetPayload() {
	m.payload = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *PlayerLogMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *PlayerLogMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the PlayerLog entity.
// If the PlayerLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerLogMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *PlayerLogMutation) ResetTimestamp() {
	m.timestamp = nil
}

// Where appends a list predicates to the PlayerLogMutation builder.
func (m *PlayerLogMutation) Where(ps ...predicate.PlayerLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PlayerLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PlayerLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PlayerLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PlayerLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PlayerLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PlayerLog).
func (m *PlayerLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PlayerLogMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.character_id != nil {
		fields = append(fields, playerlog.FieldCharacterID)
	}
	if m.kind != nil {
		fields = append(fields, playerlog.FieldKind)
	}
	if m.payload != nil {
		fields = append(fields, playerlog.FieldPayload)
	}
	if m.timestamp != nil {
		fields = append(fields, playerlog.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PlayerLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case playerlog.FieldCharacterID:
		return m.CharacterID()
	case playerlog.FieldKind:
		return m.Kind()
	case playerlog.FieldPayload:
		return m.Payload()
	case playerlog.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PlayerLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case playerlog.FieldCharacterID:
		return m.OldCharacterID(ctx)
	case playerlog.FieldKind:
		return m.OldKind(ctx)
	case playerlog.FieldPayload:
		return m.OldPayload(ctx)
	case playerlog.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown PlayerLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlayerLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case playerlog.FieldCharacterID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCharacterID(v)
		return nil
	case playerlog.FieldKind:
		v, ok := value.(playerlog.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case playerlog.FieldPayload:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case playerlog.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown PlayerLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PlayerLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PlayerLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlayerLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PlayerLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PlayerLogMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PlayerLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PlayerLogMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PlayerLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PlayerLogMutation) ResetField(name string) error {
	switch name {
	case playerlog.FieldCharacterID:
		m.ResetCharacterID()
		return nil
	case playerlog.FieldKind:
		m.ResetKind()
		return nil
	case playerlog.FieldPayload:
		m.ResetPayload()
		return nil
	case playerlog.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown PlayerLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PlayerLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PlayerLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PlayerLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PlayerLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PlayerLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PlayerLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PlayerLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PlayerLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PlayerLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PlayerLog edge %s", name)
}

// RoomMutation represents an operation that mutates the Room nodes in the graph.
type RoomMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	description   *string
	exits         *map[string]string
	is_starting   *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Room, error)
	predicates    []predicate.Room
}

var _ ent.Mutation = (*RoomMutation)(nil)

// roomOption allows management of the mutation configuration using functional options.
type roomOption func(*RoomMutation)

// newRoomMutation creates new mutation for the Room entity.
func newRoomMutation(c config, op Op, opts ...roomOption) *RoomMutation {
	m := &RoomMutation{
		config:        c,
		op:            op,
		typ:           TypeRoom,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRoomID sets the ID field of the mutation.
func withRoomID(id string) roomOption {
	return func(m *RoomMutation) {
		var (
			err   error
			once  sync.Once
			value *Room
		)
		m.oldValue = func(ctx context.Context) (*Room, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Room.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRoom sets the old Room of the mutation.
func withRoom(node *Room) roomOption {
	return func(m *RoomMutation) {
		m.oldValue = func(context.Context) (*Room, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RoomMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RoomMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Room entities.
func (m *RoomMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RoomMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RoomMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Room.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *RoomMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RoomMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RoomMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *RoomMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *RoomMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *RoomMutation) ResetDescription() {
	m.description = nil
}

// SetExits sets the "exits" field.
func (m *RoomMutation) SetExits(value map[string]string) {
	m.exits = &value
}

// Exits returns the value of the "exits" field in the mutation.
func (m *RoomMutation) Exits() (r map[string]string, exists bool) {
	v := m.exits
	if v == nil {
		return
	}
	return *v, true
}

// OldExits returns the old "exits" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldExits(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExits is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExits requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExits: %w", err)
	}
	return oldValue.Exits, nil
}

// ClearExits clears the value of the "exits" field.
func (m *RoomMutation) ClearExits() {
	m.exits = nil
	m.clearedFields[room.FieldExits] = struct{}{}
}

// ExitsCleared returns if the "exits" field was cleared in this mutation.
func (m *RoomMutation) ExitsCleared() bool {
	_, ok := m.clearedFields[room.FieldExits]
	return ok
}

// ResetExits resets all changes to the "exits" field.
func (m *RoomMutation) ResetExits() {
	m.exits = nil
	delete(m.clearedFields, room.FieldExits)
}

// SetIsStarting sets the "is_starting" field.
func (m *RoomMutation) SetIsStarting(b bool) {
	m.is_starting = &b
}

// IsStarting returns the value of the "is_starting" field in the mutation.
func (m *RoomMutation) IsStarting() (r bool, exists bool) {
	v := m.is_starting
	if v == nil {
		return
	}
	return *v, true
}

// OldIsStarting returns the old "is_starting" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldIsStarting(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsStarting is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsStarting requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsStarting: %w", err)
	}
	return oldValue.IsStarting, nil
}

// ResetIsStarting resets all changes to the "is_starting" field.
func (m *RoomMutation) ResetIsStarting() {
	m.is_starting = nil
}

// Where appends a list predicates to the RoomMutation builder.
func (m *RoomMutation) Where(ps ...predicate.Room) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RoomMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RoomMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Room, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RoomMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RoomMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Room).
func (m *RoomMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RoomMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, room.FieldName)
	}
	if m.description != nil {
		fields = append(fields, room.FieldDescription)
	}
	if m.exits != nil {
		fields = append(fields, room.FieldExits)
	}
	if m.is_starting != nil {
		fields = append(fields, room.FieldIsStarting)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RoomMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case room.FieldName:
		return m.Name()
	case room.FieldDescription:
		return m.Description()
	case room.FieldExits:
		return m.Exits()
	case room.FieldIsStarting:
		return m.IsStarting()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RoomMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case room.FieldName:
		return m.OldName(ctx)
	case room.FieldDescription:
		return m.OldDescription(ctx)
	case room.FieldExits:
		return m.OldExits(ctx)
	case room.FieldIsStarting:
		return m.OldIsStarting(ctx)
	}
	return nil, fmt.Errorf("unknown Room field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoomMutation) SetField(name string, value ent.Value) error {
	switch name {
	case room.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case room.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case room.FieldExits:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExits(v)
		return nil
	case room.FieldIsStarting:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsStarting(v)
		return nil
	}
	return fmt.Errorf("unknown Room field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RoomMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RoomMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoomMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Room numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RoomMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(room.FieldExits) {
		fields = append(fields, room.FieldExits)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RoomMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RoomMutation) ClearField(name string) error {
	switch name {
	case room.FieldExits:
		m.ClearExits()
		return nil
	}
	return fmt.Errorf("unknown Room nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RoomMutation) ResetField(name string) error {
	switch name {
	case room.FieldName:
		m.ResetName()
		return nil
	case room.FieldDescription:
		m.ResetDescription()
		return nil
	case room.FieldExits:
		m.ResetExits()
		return nil
	case room.FieldIsStarting:
		m.ResetIsStarting()
		return nil
	}
	return fmt.Errorf("unknown Room field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RoomMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RoomMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RoomMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RoomMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RoomMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RoomMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RoomMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Room unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RoomMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Room edge %s", name)
}

// TokenUsageLogMutation represents an operation that mutates the TokenUsageLog nodes in the graph.
type TokenUsageLogMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	model                *string
	provider             *string
	prompt_tokens        *int
	addprompt_tokens     *int
	completion_tokens    *int
	addcompletion_tokens *int
	total_tokens         *int
	addtotal_tokens      *int
	cost                 *float64
	addcost              *float64
	source               *tokenusagelog.Source
	agent_id             *string
	source_event_id      *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*TokenUsageLog, error)
	predicates           []predicate.TokenUsageLog
}

var _ ent.Mutation = (*TokenUsageLogMutation)(nil)

// tokenusagelogOption allows management of the mutation configuration using functional options.
type tokenusagelogOption func(*TokenUsageLogMutation)

// newTokenUsageLogMutation creates new mutation for the TokenUsageLog entity.
func newTokenUsageLogMutation(c config, op Op, opts ...tokenusagelogOption) *TokenUsageLogMutation {
	m := &TokenUsageLogMutation{
		config:        c,
		op:            op,
		typ:           TypeTokenUsageLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTokenUsageLogID sets the ID field of the mutation.
func withTokenUsageLogID(id string) tokenusagelogOption {
	return func(m *TokenUsageLogMutation) {
		var (
			err   error
			once  sync.Once
			value *TokenUsageLog
		)
		m.oldValue = func(ctx context.Context) (*TokenUsageLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TokenUsageLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTokenUsageLog sets the old TokenUsageLog of the mutation.
func withTokenUsageLog(node *TokenUsageLog) tokenusagelogOption {
	return func(m *TokenUsageLogMutation) {
		m.oldValue = func(context.Context) (*TokenUsageLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TokenUsageLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TokenUsageLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TokenUsageLog entities.
func (m *TokenUsageLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TokenUsageLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TokenUsageLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TokenUsageLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetModel sets the "model" field.
func (m *TokenUsageLogMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *TokenUsageLogMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the TokenUsageLog entity.
// If the TokenUsageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageLogMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *TokenUsageLogMutation) ResetModel() {
	m.model = nil
}

// SetProvider sets the "provider" field.
func (m *TokenUsageLogMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *TokenUsageLogMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the TokenUsageLog entity.
// If the TokenUsageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageLogMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *TokenUsageLogMutation) ResetProvider() {
	m.provider = nil
}

// SetPromptTokens sets the "prompt_tokens" field.
func (m *TokenUsageLogMutation) SetPromptTokens(i int) {
	m.prompt_tokens = &i
	m.addprompt_tokens = nil
}

// PromptTokens returns the value of the "prompt_tokens" field in the mutation.
func (m *TokenUsageLogMutation) PromptTokens() (r int, exists bool) {
	v := m.prompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTokens returns the old "prompt_tokens" field's value of the TokenUsageLog entity.
// If the TokenUsageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageLogMutation) OldPromptTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTokens: %w", err)
	}
	return oldValue.PromptTokens, nil
}

// AddPromptTokens adds i to the "prompt_tokens" field.
func (m *TokenUsageLogMutation) AddPromptTokens(i int) {
	if m.addprompt_tokens != nil {
		*m.addprompt_tokens += i
	} else {
		m.addprompt_tokens = &i
	}
}

// AddedPromptTokens returns the value that was added to the "prompt_tokens" field in this mutation.
func (m *TokenUsageLogMutation) AddedPromptTokens() (r int, exists bool) {
	v := m.addprompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetPromptTokens resets all changes to the "prompt_tokens" field.
func (m *TokenUsageLogMutation) ResetPromptTokens() {
	m.prompt_tokens = nil
	m.addprompt_tokens = nil
}

// SetCompletionTokens sets the "completion_tokens" field.
func (m *TokenUsageLogMutation) SetCompletionTokens(i int) {
	m.completion_tokens = &i
	m.addcompletion_tokens = nil
}

// CompletionTokens returns the value of the "completion_tokens" field in the mutation.
func (m *TokenUsageLogMutation) CompletionTokens() (r int, exists bool) {
	v := m.completion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionTokens returns the old "completion_tokens" field's value of the TokenUsageLog entity.
// If the TokenUsageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageLogMutation) OldCompletionTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionTokens: %w", err)
	}
	return oldValue.CompletionTokens, nil
}

// AddCompletionTokens adds i to the "completion_tokens" field.
func (m *TokenUsageLogMutation) AddCompletionTokens(i int) {
	if m.addcompletion_tokens != nil {
		*m.addcompletion_tokens += i
	} else {
		m.addcompletion_tokens = &i
	}
}

// AddedCompletionTokens returns the value that was added to the "completion_tokens" field in this mutation.
func (m *TokenUsageLogMutation) AddedCompletionTokens() (r int, exists bool) {
	v := m.addcompletion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionTokens resets all changes to the "completion_tokens" field.
func (m *TokenUsageLogMutation) ResetCompletionTokens() {
	m.completion_tokens = nil
	m.addcompletion_tokens = nil
}

// SetTotalTokens sets the "total_tokens" field.
func (m *TokenUsageLogMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *TokenUsageLogMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the TokenUsageLog entity.
// If the TokenUsageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageLogMutation) OldTotalTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *TokenUsageLogMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *TokenUsageLogMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *TokenUsageLogMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
}

// SetCost sets the "cost" field.
func (m *TokenUsageLogMutation) SetCost(f float64) {
	m.cost = &f
	m.addcost = nil
}

// Cost returns the value of the "cost" field in the mutation.
func (m *TokenUsageLogMutation) Cost() (r float64, exists bool) {
	v := m.cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCost returns the old "cost" field's value of the TokenUsageLog entity.
// If the TokenUsageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageLogMutation) OldCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCost: %w", err)
	}
	return oldValue.Cost, nil
}

// AddCost adds f to the "cost" field.
func (m *TokenUsageLogMutation) AddCost(f float64) {
	if m.addcost != nil {
		*m.addcost += f
	} else {
		m.addcost = &f
	}
}

// AddedCost returns the value that was added to the "cost" field in this mutation.
func (m *TokenUsageLogMutation) AddedCost() (r float64, exists bool) {
	v := m.addcost
	if v == nil {
		return
	}
	return *v, true
}

// ResetCost resets all changes to the "cost" field.
func (m *TokenUsageLogMutation) ResetCost() {
	m.cost = nil
	m.addcost = nil
}

// SetSource sets the "source" field.
func (m *TokenUsageLogMutation) SetSource(t tokenusagelog.Source) {
	m.source = &t
}

// Source returns the value of the "source" field in the mutation.
func (m *TokenUsageLogMutation) Source() (r tokenusagelog.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the TokenUsageLog entity.
// If the TokenUsageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageLogMutation) OldSource(ctx context.Context) (v tokenusagelog.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *TokenUsageLogMutation) ResetSource() {
	m.source = nil
}

// SetAgentID sets the "agent_id" field.
func (m *TokenUsageLogMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *TokenUsageLogMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the TokenUsageLog entity.
// If the TokenUsageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageLogMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *TokenUsageLogMutation) ClearAgentID() {
	m.agent_id = nil
	m.clearedFields[tokenusagelog.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *TokenUsageLogMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[tokenusagelog.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *TokenUsageLogMutation) ResetAgentID() {
	m.agent_id = nil
	delete(m.clearedFields, tokenusagelog.FieldAgentID)
}

// SetSourceEventID sets the "source_event_id" field.
func (m *TokenUsageLogMutation) SetSourceEventID(s string) {
	m.source_event_id = &s
}

// SourceEventID returns the value of the "source_event_id" field in the mutation.
func (m *TokenUsageLogMutation) SourceEventID() (r string, exists bool) {
	v := m.source_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceEventID returns the old "source_event_id" field's value of the TokenUsageLog entity.
// If the TokenUsageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageLogMutation) OldSourceEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceEventID: %w", err)
	}
	return oldValue.SourceEventID, nil
}

// ClearSourceEventID clears the value of the "source_event_id" field.
func (m *TokenUsageLogMutation) ClearSourceEventID() {
	m.source_event_id = nil
	m.clearedFields[tokenusagelog.FieldSourceEventID] = struct{}{}
}

// SourceEventIDCleared returns if the "source_event_id" field was cleared in this mutation.
func (m *TokenUsageLogMutation) SourceEventIDCleared() bool {
	_, ok := m.clearedFields[tokenusagelog.FieldSourceEventID]
	return ok
}

// ResetSourceEventID resets all changes to the "source_event_id" field.
func (m *TokenUsageLogMutation) ResetSourceEventID() {
	m.source_event_id = nil
	delete(m.clearedFields, tokenusagelog.FieldSourceEventID)
}

// SetCreatedAt sets the "created_at" field.
func (m *TokenUsageLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TokenUsageLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TokenUsageLog entity.
// If the TokenUsageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TokenUsageLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TokenUsageLogMutation builder.
func (m *TokenUsageLogMutation) Where(ps ...predicate.TokenUsageLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TokenUsageLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TokenUsageLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TokenUsageLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TokenUsageLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TokenUsageLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TokenUsageLog).
func (m *TokenUsageLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TokenUsageLogMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.model != nil {
		fields = append(fields, tokenusagelog.FieldModel)
	}
	if m.provider != nil {
		fields = append(fields, tokenusagelog.FieldProvider)
	}
	if m.prompt_tokens != nil {
		fields = append(fields, tokenusagelog.FieldPromptTokens)
	}
	if m.completion_tokens != nil {
		fields = append(fields, tokenusagelog.FieldCompletionTokens)
	}
	if m.total_tokens != nil {
		fields = append(fields, tokenusagelog.FieldTotalTokens)
	}
	if m.cost != nil {
		fields = append(fields, tokenusagelog.FieldCost)
	}
	if m.source != nil {
		fields = append(fields, tokenusagelog.FieldSource)
	}
	if m.agent_id != nil {
		fields = append(fields, tokenusagelog.FieldAgentID)
	}
	if m.source_event_id != nil {
		fields = append(fields, tokenusagelog.FieldSourceEventID)
	}
	if m.created_at != nil {
		fields = append(fields, tokenusagelog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TokenUsageLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tokenusagelog.FieldModel:
		return m.Model()
	case tokenusagelog.FieldProvider:
		return m.Provider()
	case tokenusagelog.FieldPromptTokens:
		return m.PromptTokens()
	case tokenusagelog.FieldCompletionTokens:
		return m.CompletionTokens()
	case tokenusagelog.FieldTotalTokens:
		return m.TotalTokens()
	case tokenusagelog.FieldCost:
		return m.Cost()
	case tokenusagelog.FieldSource:
		return m.Source()
	case tokenusagelog.FieldAgentID:
		return m.AgentID()
	case tokenusagelog.FieldSourceEventID:
		return m.SourceEventID()
	case tokenusagelog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TokenUsageLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tokenusagelog.FieldModel:
		return m.OldModel(ctx)
	case tokenusagelog.FieldProvider:
		return m.OldProvider(ctx)
	case tokenusagelog.FieldPromptTokens:
		return m.OldPromptTokens(ctx)
	case tokenusagelog.FieldCompletionTokens:
		return m.OldCompletionTokens(ctx)
	case tokenusagelog.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case tokenusagelog.FieldCost:
		return m.OldCost(ctx)
	case tokenusagelog.FieldSource:
		return m.OldSource(ctx)
	case tokenusagelog.FieldAgentID:
		return m.OldAgentID(ctx)
	case tokenusagelog.FieldSourceEventID:
		return m.OldSourceEventID(ctx)
	case tokenusagelog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TokenUsageLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TokenUsageLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tokenusagelog.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case tokenusagelog.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case tokenusagelog.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTokens(v)
		return nil
	case tokenusagelog.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionTokens(v)
		return nil
	case tokenusagelog.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case tokenusagelog.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCost(v)
		return nil
	case tokenusagelog.FieldSource:
		v, ok := value.(tokenusagelog.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case tokenusagelog.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case tokenusagelog.FieldSourceEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceEventID(v)
		return nil
	case tokenusagelog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TokenUsageLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TokenUsageLogMutation) AddedFields() []string {
	var fields []string
	if m.addprompt_tokens != nil {
		fields = append(fields, tokenusagelog.FieldPromptTokens)
	}
	if m.addcompletion_tokens != nil {
		fields = append(fields, tokenusagelog.FieldCompletionTokens)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, tokenusagelog.FieldTotalTokens)
	}
	if m.addcost != nil {
		fields = append(fields, tokenusagelog.FieldCost)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TokenUsageLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tokenusagelog.FieldPromptTokens:
		return m.AddedPromptTokens()
	case tokenusagelog.FieldCompletionTokens:
		return m.AddedCompletionTokens()
	case tokenusagelog.FieldTotalTokens:
		return m.AddedTotalTokens()
	case tokenusagelog.FieldCost:
		return m.AddedCost()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TokenUsageLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tokenusagelog.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPromptTokens(v)
		return nil
	case tokenusagelog.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionTokens(v)
		return nil
	case tokenusagelog.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	case tokenusagelog.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCost(v)
		return nil
	}
	return fmt.Errorf("unknown TokenUsageLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TokenUsageLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tokenusagelog.FieldAgentID) {
		fields = append(fields, tokenusagelog.FieldAgentID)
	}
	if m.FieldCleared(tokenusagelog.FieldSourceEventID) {
		fields = append(fields, tokenusagelog.FieldSourceEventID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TokenUsageLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TokenUsageLogMutation) ClearField(name string) error {
	switch name {
	case tokenusagelog.FieldAgentID:
		m.ClearAgentID()
		return nil
	case tokenusagelog.FieldSourceEventID:
		m.ClearSourceEventID()
		return nil
	}
	return fmt.Errorf("unknown TokenUsageLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TokenUsageLogMutation) ResetField(name string) error {
	switch name {
	case tokenusagelog.FieldModel:
		m.ResetModel()
		return nil
	case tokenusagelog.FieldProvider:
		m.ResetProvider()
		return nil
	case tokenusagelog.FieldPromptTokens:
		m.ResetPromptTokens()
		return nil
	case tokenusagelog.FieldCompletionTokens:
		m.ResetCompletionTokens()
		return nil
	case tokenusagelog.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case tokenusagelog.FieldCost:
		m.ResetCost()
		return nil
	case tokenusagelog.FieldSource:
		m.ResetSource()
		return nil
	case tokenusagelog.FieldAgentID:
		m.ResetAgentID()
		return nil
	case tokenusagelog.FieldSourceEventID:
		m.ResetSourceEventID()
		return nil
	case tokenusagelog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TokenUsageLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TokenUsageLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TokenUsageLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TokenUsageLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TokenUsageLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TokenUsageLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TokenUsageLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TokenUsageLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TokenUsageLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TokenUsageLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TokenUsageLog edge %s", name)
}
