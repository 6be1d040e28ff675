// Code generated by ent, DO NOT EDIT.

package aiagent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/elliotbonneville/silt/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldContainsFold(FieldID, id))
}

// CharacterID applies equality check predicate on the "character_id" field. It's identical to CharacterIDEQ.
func CharacterID(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldEQ(FieldCharacterID, v))
}

// SystemPrompt applies equality check predicate on the "system_prompt" field. It's identical to SystemPromptEQ.
func SystemPrompt(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldEQ(FieldSystemPrompt, v))
}

// HomeRoomID applies equality check predicate on the "home_room_id" field. It's identical to HomeRoomIDEQ.
func HomeRoomID(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldEQ(FieldHomeRoomID, v))
}

// MaxRoomsFromHome applies equality check predicate on the "max_rooms_from_home" field. It's identical to MaxRoomsFromHomeEQ.
func MaxRoomsFromHome(v int) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldEQ(FieldMaxRoomsFromHome, v))
}

// SpatialMemory applies equality check predicate on the "spatial_memory" field. It's identical to SpatialMemoryEQ.
func SpatialMemory(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldEQ(FieldSpatialMemory, v))
}

// SpatialMemoryUpdatedAt applies equality check predicate on the "spatial_memory_updated_at" field. It's identical to SpatialMemoryUpdatedAtEQ.
func SpatialMemoryUpdatedAt(v time.Time) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldEQ(FieldSpatialMemoryUpdatedAt, v))
}

// LastActionAt applies equality check predicate on the "last_action_at" field. It's identical to LastActionAtEQ.
func LastActionAt(v time.Time) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldEQ(FieldLastActionAt, v))
}

// CharacterIDEQ applies the EQ predicate on the "character_id" field.
func CharacterIDEQ(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldEQ(FieldCharacterID, v))
}

// CharacterIDNEQ applies the NEQ predicate on the "character_id" field.
func CharacterIDNEQ(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldNEQ(FieldCharacterID, v))
}

// CharacterIDIn applies the In predicate on the "character_id" field.
func CharacterIDIn(vs ...string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldIn(FieldCharacterID, vs...))
}

// CharacterIDNotIn applies the NotIn predicate on the "character_id" field.
func CharacterIDNotIn(vs ...string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldNotIn(FieldCharacterID, vs...))
}

// CharacterIDGT applies the GT predicate on the "character_id" field.
func CharacterIDGT(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldGT(FieldCharacterID, v))
}

// CharacterIDGTE applies the GTE predicate on the "character_id" field.
func CharacterIDGTE(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldGTE(FieldCharacterID, v))
}

// CharacterIDLT applies the LT predicate on the "character_id" field.
func CharacterIDLT(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldLT(FieldCharacterID, v))
}

// CharacterIDLTE applies the LTE predicate on the "character_id" field.
func CharacterIDLTE(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldLTE(FieldCharacterID, v))
}

// CharacterIDContains applies the Contains predicate on the "character_id" field.
func CharacterIDContains(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldContains(FieldCharacterID, v))
}

// CharacterIDHasPrefix applies the HasPrefix predicate on the "character_id" field.
func CharacterIDHasPrefix(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldHasPrefix(FieldCharacterID, v))
}

// CharacterIDHasSuffix applies the HasSuffix predicate on the "character_id" field.
func CharacterIDHasSuffix(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldHasSuffix(FieldCharacterID, v))
}

// CharacterIDEqualFold applies the EqualFold predicate on the "character_id" field.
func CharacterIDEqualFold(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldEqualFold(FieldCharacterID, v))
}

// CharacterIDContainsFold applies the ContainsFold predicate on the "character_id" field.
func CharacterIDContainsFold(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldContainsFold(FieldCharacterID, v))
}

// SystemPromptEQ applies the EQ predicate on the "system_prompt" field.
func SystemPromptEQ(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldEQ(FieldSystemPrompt, v))
}

// SystemPromptNEQ applies the NEQ predicate on the "system_prompt" field.
func SystemPromptNEQ(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldNEQ(FieldSystemPrompt, v))
}

// SystemPromptIn applies the In predicate on the "system_prompt" field.
func SystemPromptIn(vs ...string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldIn(FieldSystemPrompt, vs...))
}

// SystemPromptNotIn applies the NotIn predicate on the "system_prompt" field.
func SystemPromptNotIn(vs ...string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldNotIn(FieldSystemPrompt, vs...))
}

// SystemPromptGT applies the GT predicate on the "system_prompt" field.
func SystemPromptGT(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldGT(FieldSystemPrompt, v))
}

// SystemPromptGTE applies the GTE predicate on the "system_prompt" field.
func SystemPromptGTE(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldGTE(FieldSystemPrompt, v))
}

// SystemPromptLT applies the LT predicate on the "system_prompt" field.
func SystemPromptLT(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldLT(FieldSystemPrompt, v))
}

// SystemPromptLTE applies the LTE predicate on the "system_prompt" field.
func SystemPromptLTE(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldLTE(FieldSystemPrompt, v))
}

// SystemPromptContains applies the Contains predicate on the "system_prompt" field.
func SystemPromptContains(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldContains(FieldSystemPrompt, v))
}

// SystemPromptHasPrefix applies the HasPrefix predicate on the "system_prompt" field.
func SystemPromptHasPrefix(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldHasPrefix(FieldSystemPrompt, v))
}

// SystemPromptHasSuffix applies the HasSuffix predicate on the "system_prompt" field.
func SystemPromptHasSuffix(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldHasSuffix(FieldSystemPrompt, v))
}

// SystemPromptEqualFold applies the EqualFold predicate on the "system_prompt" field.
func SystemPromptEqualFold(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldEqualFold(FieldSystemPrompt, v))
}

// SystemPromptContainsFold applies the ContainsFold predicate on the "system_prompt" field.
func SystemPromptContainsFold(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldContainsFold(FieldSystemPrompt, v))
}

// HomeRoomIDEQ applies the EQ predicate on the "home_room_id" field.
func HomeRoomIDEQ(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldEQ(FieldHomeRoomID, v))
}

// HomeRoomIDNEQ applies the NEQ predicate on the "home_room_id" field.
func HomeRoomIDNEQ(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldNEQ(FieldHomeRoomID, v))
}

// HomeRoomIDIn applies the In predicate on the "home_room_id" field.
func HomeRoomIDIn(vs ...string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldIn(FieldHomeRoomID, vs...))
}

// HomeRoomIDNotIn applies the NotIn predicate on the "home_room_id" field.
func HomeRoomIDNotIn(vs ...string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldNotIn(FieldHomeRoomID, vs...))
}

// HomeRoomIDGT applies the GT predicate on the "home_room_id" field.
func HomeRoomIDGT(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldGT(FieldHomeRoomID, v))
}

// HomeRoomIDGTE applies the GTE predicate on the "home_room_id" field.
func HomeRoomIDGTE(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldGTE(FieldHomeRoomID, v))
}

// HomeRoomIDLT applies the LT predicate on the "home_room_id" field.
func HomeRoomIDLT(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldLT(FieldHomeRoomID, v))
}

// HomeRoomIDLTE applies the LTE predicate on the "home_room_id" field.
func HomeRoomIDLTE(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldLTE(FieldHomeRoomID, v))
}

// HomeRoomIDContains applies the Contains predicate on the "home_room_id" field.
func HomeRoomIDContains(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldContains(FieldHomeRoomID, v))
}

// HomeRoomIDHasPrefix applies the HasPrefix predicate on the "home_room_id" field.
func HomeRoomIDHasPrefix(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldHasPrefix(FieldHomeRoomID, v))
}

// HomeRoomIDHasSuffix applies the HasSuffix predicate on the "home_room_id" field.
func HomeRoomIDHasSuffix(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldHasSuffix(FieldHomeRoomID, v))
}

// HomeRoomIDEqualFold applies the EqualFold predicate on the "home_room_id" field.
func HomeRoomIDEqualFold(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldEqualFold(FieldHomeRoomID, v))
}

// HomeRoomIDContainsFold applies the ContainsFold predicate on the "home_room_id" field.
func HomeRoomIDContainsFold(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldContainsFold(FieldHomeRoomID, v))
}

// MaxRoomsFromHomeEQ applies the EQ predicate on the "max_rooms_from_home" field.
func MaxRoomsFromHomeEQ(v int) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldEQ(FieldMaxRoomsFromHome, v))
}

// MaxRoomsFromHomeNEQ applies the NEQ predicate on the "max_rooms_from_home" field.
func MaxRoomsFromHomeNEQ(v int) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldNEQ(FieldMaxRoomsFromHome, v))
}

// MaxRoomsFromHomeIn applies the In predicate on the "max_rooms_from_home" field.
func MaxRoomsFromHomeIn(vs ...int) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldIn(FieldMaxRoomsFromHome, vs...))
}

// MaxRoomsFromHomeNotIn applies the NotIn predicate on the "max_rooms_from_home" field.
func MaxRoomsFromHomeNotIn(vs ...int) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldNotIn(FieldMaxRoomsFromHome, vs...))
}

// MaxRoomsFromHomeGT applies the GT predicate on the "max_rooms_from_home" field.
func MaxRoomsFromHomeGT(v int) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldGT(FieldMaxRoomsFromHome, v))
}

// MaxRoomsFromHomeGTE applies the GTE predicate on the "max_rooms_from_home" field.
func MaxRoomsFromHomeGTE(v int) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldGTE(FieldMaxRoomsFromHome, v))
}

// MaxRoomsFromHomeLT applies the LT predicate on the "max_rooms_from_home" field.
func MaxRoomsFromHomeLT(v int) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldLT(FieldMaxRoomsFromHome, v))
}

// MaxRoomsFromHomeLTE applies the LTE predicate on the "max_rooms_from_home" field.
func MaxRoomsFromHomeLTE(v int) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldLTE(FieldMaxRoomsFromHome, v))
}

// SpatialMemoryEQ applies the EQ predicate on the "spatial_memory" field.
func SpatialMemoryEQ(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldEQ(FieldSpatialMemory, v))
}

// SpatialMemoryNEQ applies the NEQ predicate on the "spatial_memory" field.
func SpatialMemoryNEQ(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldNEQ(FieldSpatialMemory, v))
}

// SpatialMemoryIn applies the In predicate on the "spatial_memory" field.
func SpatialMemoryIn(vs ...string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldIn(FieldSpatialMemory, vs...))
}

// SpatialMemoryNotIn applies the NotIn predicate on the "spatial_memory" field.
func SpatialMemoryNotIn(vs ...string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldNotIn(FieldSpatialMemory, vs...))
}

// SpatialMemoryGT applies the GT predicate on the "spatial_memory" field.
func SpatialMemoryGT(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldGT(FieldSpatialMemory, v))
}

// SpatialMemoryGTE applies the GTE predicate on the "spatial_memory" field.
func SpatialMemoryGTE(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldGTE(FieldSpatialMemory, v))
}

// SpatialMemoryLT applies the LT predicate on the "spatial_memory" field.
func SpatialMemoryLT(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldLT(FieldSpatialMemory, v))
}

// SpatialMemoryLTE applies the LTE predicate on the "spatial_memory" field.
func SpatialMemoryLTE(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldLTE(FieldSpatialMemory, v))
}

// SpatialMemoryContains applies the Contains predicate on the "spatial_memory" field.
func SpatialMemoryContains(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldContains(FieldSpatialMemory, v))
}

// SpatialMemoryHasPrefix applies the HasPrefix predicate on the "spatial_memory" field.
func SpatialMemoryHasPrefix(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldHasPrefix(FieldSpatialMemory, v))
}

// SpatialMemoryHasSuffix applies the HasSuffix predicate on the "spatial_memory" field.
func SpatialMemoryHasSuffix(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldHasSuffix(FieldSpatialMemory, v))
}

// SpatialMemoryIsNil applies the IsNil predicate on the "spatial_memory" field.
func SpatialMemoryIsNil() predicate.AIAgent {
	return predicate.AIAgent(sql.FieldIsNull(FieldSpatialMemory))
}

// SpatialMemoryNotNil applies the NotNil predicate on the "spatial_memory" field.
func SpatialMemoryNotNil() predicate.AIAgent {
	return predicate.AIAgent(sql.FieldNotNull(FieldSpatialMemory))
}

// SpatialMemoryEqualFold applies the EqualFold predicate on the "spatial_memory" field.
func SpatialMemoryEqualFold(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldEqualFold(FieldSpatialMemory, v))
}

// SpatialMemoryContainsFold applies the ContainsFold predicate on the "spatial_memory" field.
func SpatialMemoryContainsFold(v string) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldContainsFold(FieldSpatialMemory, v))
}

// SpatialMemoryUpdatedAtEQ applies the EQ predicate on the "spatial_memory_updated_at" field.
func SpatialMemoryUpdatedAtEQ(v time.Time) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldEQ(FieldSpatialMemoryUpdatedAt, v))
}

// SpatialMemoryUpdatedAtNEQ applies the NEQ predicate on the "spatial_memory_updated_at" field.
func SpatialMemoryUpdatedAtNEQ(v time.Time) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldNEQ(FieldSpatialMemoryUpdatedAt, v))
}

// SpatialMemoryUpdatedAtIn applies the In predicate on the "spatial_memory_updated_at" field.
func SpatialMemoryUpdatedAtIn(vs ...time.Time) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldIn(FieldSpatialMemoryUpdatedAt, vs...))
}

// SpatialMemoryUpdatedAtNotIn applies the NotIn predicate on the "spatial_memory_updated_at" field.
func SpatialMemoryUpdatedAtNotIn(vs ...time.Time) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldNotIn(FieldSpatialMemoryUpdatedAt, vs...))
}

// SpatialMemoryUpdatedAtGT applies the GT predicate on the "spatial_memory_updated_at" field.
func SpatialMemoryUpdatedAtGT(v time.Time) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldGT(FieldSpatialMemoryUpdatedAt, v))
}

// SpatialMemoryUpdatedAtGTE applies the GTE predicate on the "spatial_memory_updated_at" field.
func SpatialMemoryUpdatedAtGTE(v time.Time) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldGTE(FieldSpatialMemoryUpdatedAt, v))
}

// SpatialMemoryUpdatedAtLT applies the LT predicate on the "spatial_memory_updated_at" field.
func SpatialMemoryUpdatedAtLT(v time.Time) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldLT(FieldSpatialMemoryUpdatedAt, v))
}

// SpatialMemoryUpdatedAtLTE applies the LTE predicate on the "spatial_memory_updated_at" field.
func SpatialMemoryUpdatedAtLTE(v time.Time) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldLTE(FieldSpatialMemoryUpdatedAt, v))
}

// SpatialMemoryUpdatedAtIsNil applies the IsNil predicate on the "spatial_memory_updated_at" field.
func SpatialMemoryUpdatedAtIsNil() predicate.AIAgent {
	return predicate.AIAgent(sql.FieldIsNull(FieldSpatialMemoryUpdatedAt))
}

// SpatialMemoryUpdatedAtNotNil applies the NotNil predicate on the "spatial_memory_updated_at" field.
func SpatialMemoryUpdatedAtNotNil() predicate.AIAgent {
	return predicate.AIAgent(sql.FieldNotNull(FieldSpatialMemoryUpdatedAt))
}

// RelationshipsIsNil applies the IsNil predicate on the "relationships" field.
func RelationshipsIsNil() predicate.AIAgent {
	return predicate.AIAgent(sql.FieldIsNull(FieldRelationships))
}

// RelationshipsNotNil applies the NotNil predicate on the "relationships" field.
func RelationshipsNotNil() predicate.AIAgent {
	return predicate.AIAgent(sql.FieldNotNull(FieldRelationships))
}

// ConversationIsNil applies the IsNil predicate on the "conversation" field.
func ConversationIsNil() predicate.AIAgent {
	return predicate.AIAgent(sql.FieldIsNull(FieldConversation))
}

// ConversationNotNil applies the NotNil predicate on the "conversation" field.
func ConversationNotNil() predicate.AIAgent {
	return predicate.AIAgent(sql.FieldNotNull(FieldConversation))
}

// LastActionAtEQ applies the EQ predicate on the "last_action_at" field.
func LastActionAtEQ(v time.Time) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldEQ(FieldLastActionAt, v))
}

// LastActionAtNEQ applies the NEQ predicate on the "last_action_at" field.
func LastActionAtNEQ(v time.Time) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldNEQ(FieldLastActionAt, v))
}

// LastActionAtIn applies the In predicate on the "last_action_at" field.
func LastActionAtIn(vs ...time.Time) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldIn(FieldLastActionAt, vs...))
}

// LastActionAtNotIn applies the NotIn predicate on the "last_action_at" field.
func LastActionAtNotIn(vs ...time.Time) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldNotIn(FieldLastActionAt, vs...))
}

// LastActionAtGT applies the GT predicate on the "last_action_at" field.
func LastActionAtGT(v time.Time) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldGT(FieldLastActionAt, v))
}

// LastActionAtGTE applies the GTE predicate on the "last_action_at" field.
func LastActionAtGTE(v time.Time) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldGTE(FieldLastActionAt, v))
}

// LastActionAtLT applies the LT predicate on the "last_action_at" field.
func LastActionAtLT(v time.Time) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldLT(FieldLastActionAt, v))
}

// LastActionAtLTE applies the LTE predicate on the "last_action_at" field.
func LastActionAtLTE(v time.Time) predicate.AIAgent {
	return predicate.AIAgent(sql.FieldLTE(FieldLastActionAt, v))
}

// LastActionAtIsNil applies the IsNil predicate on the "last_action_at" field.
func LastActionAtIsNil() predicate.AIAgent {
	return predicate.AIAgent(sql.FieldIsNull(FieldLastActionAt))
}

// LastActionAtNotNil applies the NotNil predicate on the "last_action_at" field.
func LastActionAtNotNil() predicate.AIAgent {
	return predicate.AIAgent(sql.FieldNotNull(FieldLastActionAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AIAgent) predicate.AIAgent {
	return predicate.AIAgent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AIAgent) predicate.AIAgent {
	return predicate.AIAgent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AIAgent) predicate.AIAgent {
	return predicate.AIAgent(sql.NotPredicates(p))
}
