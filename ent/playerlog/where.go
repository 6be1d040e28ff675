// Code generated by ent, DO NOT EDIT.

package playerlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/elliotbonneville/silt/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldLTE(FieldID, id))
}

// CharacterID applies equality check predicate on the "character_id" field. It's identical to CharacterIDEQ.
func CharacterID(v string) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldEQ(FieldCharacterID, v))
}

// Payload applies equality check predicate on the "payload" field. It's identical to PayloadEQ.
func Payload(v string) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldEQ(FieldPayload, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldEQ(FieldTimestamp, v))
}

// CharacterIDEQ applies the EQ predicate on the "character_id" field.
func CharacterIDEQ(v string) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldEQ(FieldCharacterID, v))
}

// CharacterIDNEQ applies the NEQ predicate on the "character_id" field.
func CharacterIDNEQ(v string) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldNEQ(FieldCharacterID, v))
}

// CharacterIDIn applies the In predicate on the "character_id" field.
func CharacterIDIn(vs ...string) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldIn(FieldCharacterID, vs...))
}

// CharacterIDNotIn applies the NotIn predicate on the "character_id" field.
func CharacterIDNotIn(vs ...string) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldNotIn(FieldCharacterID, vs...))
}

// CharacterIDGT applies the GT predicate on the "character_id" field.
func CharacterIDGT(v string) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldGT(FieldCharacterID, v))
}

// CharacterIDGTE applies the GTE predicate on the "character_id" field.
func CharacterIDGTE(v string) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldGTE(FieldCharacterID, v))
}

// CharacterIDLT applies the LT predicate on the "character_id" field.
func CharacterIDLT(v string) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldLT(FieldCharacterID, v))
}

// CharacterIDLTE applies the LTE predicate on the "character_id" field.
func CharacterIDLTE(v string) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldLTE(FieldCharacterID, v))
}

// CharacterIDContains applies the Contains predicate on the "character_id" field.
func CharacterIDContains(v string) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldContains(FieldCharacterID, v))
}

// CharacterIDHasPrefix applies the HasPrefix predicate on the "character_id" field.
func CharacterIDHasPrefix(v string) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldHasPrefix(FieldCharacterID, v))
}

// CharacterIDHasSuffix applies the HasSuffix predicate on the "character_id" field.
func CharacterIDHasSuffix(v string) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldHasSuffix(FieldCharacterID, v))
}

// CharacterIDEqualFold applies the EqualFold predicate on the "character_id" field.
func CharacterIDEqualFold(v string) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldEqualFold(FieldCharacterID, v))
}

// CharacterIDContainsFold applies the ContainsFold predicate on the "character_id" field.
func CharacterIDContainsFold(v string) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldContainsFold(FieldCharacterID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldNotIn(FieldKind, vs...))
}

// PayloadEQ applies the EQ predicate on the "payload" field.
func PayloadEQ(v string) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldEQ(FieldPayload, v))
}

// PayloadNEQ applies the NEQ predicate on the "payload" field.
func PayloadNEQ(v string) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldNEQ(FieldPayload, v))
}

// PayloadIn applies the In predicate on the "payload" field.
func PayloadIn(vs ...string) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldIn(FieldPayload, vs...))
}

// PayloadNotIn applies the NotIn predicate on the "payload" field.
func PayloadNotIn(vs ...string) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldNotIn(FieldPayload, vs...))
}

// PayloadGT applies the GT predicate on the "payload" field.
func PayloadGT(v string) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldGT(FieldPayload, v))
}

// PayloadGTE applies the GTE predicate on the "payload" field.
func PayloadGTE(v string) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldGTE(FieldPayload, v))
}

// PayloadLT applies the LT predicate on the "payload" field.
func PayloadLT(v string) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldLT(FieldPayload, v))
}

// PayloadLTE applies the LTE predicate on the "payload" field.
func PayloadLTE(v string) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldLTE(FieldPayload, v))
}

// PayloadContains applies the Contains predicate on the "payload" field.
func PayloadContains(v string) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldContains(FieldPayload, v))
}

// PayloadHasPrefix applies the HasPrefix predicate on the "payload" field.
func PayloadHasPrefix(v string) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldHasPrefix(FieldPayload, v))
}

// PayloadHasSuffix applies the HasSuffix predicate on the "payload" field.
func PayloadHasSuffix(v string) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldHasSuffix(FieldPayload, v))
}

// PayloadEqualFold applies the EqualFold predicate on the "payload" field.
func PayloadEqualFold(v string) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldEqualFold(FieldPayload, v))
}

// PayloadContainsFold applies the ContainsFold predicate on the "payload" field.
func PayloadContainsFold(v string) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldContainsFold(FieldPayload, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PlayerLog {
	return predicate.PlayerLog(sql.FieldLTE(FieldTimestamp, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PlayerLog) predicate.PlayerLog {
	return predicate.PlayerLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PlayerLog) predicate.PlayerLog {
	return predicate.PlayerLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PlayerLog) predicate.PlayerLog {
	return predicate.PlayerLog(sql.NotPredicates(p))
}
