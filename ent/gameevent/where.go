// Code generated by ent, DO NOT EDIT.

package gameevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/elliotbonneville/silt/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldContainsFold(FieldID, id))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldType, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldTimestamp, v))
}

// OriginRoomID applies equality check predicate on the "origin_room_id" field. It's identical to OriginRoomIDEQ.
func OriginRoomID(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldOriginRoomID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldContent, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldContainsFold(FieldType, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldTimestamp, v))
}

// OriginRoomIDEQ applies the EQ predicate on the "origin_room_id" field.
func OriginRoomIDEQ(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldOriginRoomID, v))
}

// OriginRoomIDNEQ applies the NEQ predicate on the "origin_room_id" field.
func OriginRoomIDNEQ(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldOriginRoomID, v))
}

// OriginRoomIDIn applies the In predicate on the "origin_room_id" field.
func OriginRoomIDIn(vs ...string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldOriginRoomID, vs...))
}

// OriginRoomIDNotIn applies the NotIn predicate on the "origin_room_id" field.
func OriginRoomIDNotIn(vs ...string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldOriginRoomID, vs...))
}

// OriginRoomIDGT applies the GT predicate on the "origin_room_id" field.
func OriginRoomIDGT(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldOriginRoomID, v))
}

// OriginRoomIDGTE applies the GTE predicate on the "origin_room_id" field.
func OriginRoomIDGTE(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldOriginRoomID, v))
}

// OriginRoomIDLT applies the LT predicate on the "origin_room_id" field.
func OriginRoomIDLT(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldOriginRoomID, v))
}

// OriginRoomIDLTE applies the LTE predicate on the "origin_room_id" field.
func OriginRoomIDLTE(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldOriginRoomID, v))
}

// OriginRoomIDContains applies the Contains predicate on the "origin_room_id" field.
func OriginRoomIDContains(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldContains(FieldOriginRoomID, v))
}

// OriginRoomIDHasPrefix applies the HasPrefix predicate on the "origin_room_id" field.
func OriginRoomIDHasPrefix(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldHasPrefix(FieldOriginRoomID, v))
}

// OriginRoomIDHasSuffix applies the HasSuffix predicate on the "origin_room_id" field.
func OriginRoomIDHasSuffix(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldHasSuffix(FieldOriginRoomID, v))
}

// OriginRoomIDIsNil applies the IsNil predicate on the "origin_room_id" field.
func OriginRoomIDIsNil() predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIsNull(FieldOriginRoomID))
}

// OriginRoomIDNotNil applies the NotNil predicate on the "origin_room_id" field.
func OriginRoomIDNotNil() predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotNull(FieldOriginRoomID))
}

// OriginRoomIDEqualFold applies the EqualFold predicate on the "origin_room_id" field.
func OriginRoomIDEqualFold(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEqualFold(FieldOriginRoomID, v))
}

// OriginRoomIDContainsFold applies the ContainsFold predicate on the "origin_room_id" field.
func OriginRoomIDContainsFold(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldContainsFold(FieldOriginRoomID, v))
}

// VisibilityEQ applies the EQ predicate on the "visibility" field.
func VisibilityEQ(v Visibility) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldVisibility, v))
}

// VisibilityNEQ applies the NEQ predicate on the "visibility" field.
func VisibilityNEQ(v Visibility) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldVisibility, v))
}

// VisibilityIn applies the In predicate on the "visibility" field.
func VisibilityIn(vs ...Visibility) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldVisibility, vs...))
}

// VisibilityNotIn applies the NotIn predicate on the "visibility" field.
func VisibilityNotIn(vs ...Visibility) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldVisibility, vs...))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldHasSuffix(FieldContent, v))
}

// ContentIsNil applies the IsNil predicate on the "content" field.
func ContentIsNil() predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIsNull(FieldContent))
}

// ContentNotNil applies the NotNil predicate on the "content" field.
func ContentNotNil() predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotNull(FieldContent))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldContainsFold(FieldContent, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotNull(FieldPayload))
}

// RecipientsIsNil applies the IsNil predicate on the "recipients" field.
func RecipientsIsNil() predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIsNull(FieldRecipients))
}

// RecipientsNotNil applies the NotNil predicate on the "recipients" field.
func RecipientsNotNil() predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotNull(FieldRecipients))
}

// RelatedEntitiesIsNil applies the IsNil predicate on the "related_entities" field.
func RelatedEntitiesIsNil() predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIsNull(FieldRelatedEntities))
}

// RelatedEntitiesNotNil applies the NotNil predicate on the "related_entities" field.
func RelatedEntitiesNotNil() predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotNull(FieldRelatedEntities))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GameEvent) predicate.GameEvent {
	return predicate.GameEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GameEvent) predicate.GameEvent {
	return predicate.GameEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GameEvent) predicate.GameEvent {
	return predicate.GameEvent(sql.NotPredicates(p))
}
