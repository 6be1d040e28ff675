// Code generated by ent, DO NOT EDIT.

package character

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/elliotbonneville/silt/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Character {
	return predicate.Character(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Character {
	return predicate.Character(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldDescription, v))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldAccountID, v))
}

// RoomID applies equality check predicate on the "room_id" field. It's identical to RoomIDEQ.
func RoomID(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldRoomID, v))
}

// SpawnPointID applies equality check predicate on the "spawn_point_id" field. It's identical to SpawnPointIDEQ.
func SpawnPointID(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldSpawnPointID, v))
}

// Hp applies equality check predicate on the "hp" field. It's identical to HpEQ.
func Hp(v int) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldHp, v))
}

// MaxHp applies equality check predicate on the "max_hp" field. It's identical to MaxHpEQ.
func MaxHp(v int) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldMaxHp, v))
}

// Attack applies equality check predicate on the "attack" field. It's identical to AttackEQ.
func Attack(v int) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldAttack, v))
}

// Defense applies equality check predicate on the "defense" field. It's identical to DefenseEQ.
func Defense(v int) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldDefense, v))
}

// Speed applies equality check predicate on the "speed" field. It's identical to SpeedEQ.
func Speed(v int) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldSpeed, v))
}

// IsAlive applies equality check predicate on the "is_alive" field. It's identical to IsAliveEQ.
func IsAlive(v bool) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldIsAlive, v))
}

// IsDead applies equality check predicate on the "is_dead" field. It's identical to IsDeadEQ.
func IsDead(v bool) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldIsDead, v))
}

// DiedAt applies equality check predicate on the "died_at" field. It's identical to DiedAtEQ.
func DiedAt(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldDiedAt, v))
}

// LastActionAt applies equality check predicate on the "last_action_at" field. It's identical to LastActionAtEQ.
func LastActionAt(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldLastActionAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Character {
	return predicate.Character(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Character {
	return predicate.Character(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Character {
	return predicate.Character(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Character {
	return predicate.Character(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Character {
	return predicate.Character(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Character {
	return predicate.Character(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Character {
	return predicate.Character(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Character {
	return predicate.Character(sql.FieldContainsFold(FieldDescription, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldAccountID, vs...))
}

// AccountIDGT applies the GT predicate on the "account_id" field.
func AccountIDGT(v string) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldAccountID, v))
}

// AccountIDGTE applies the GTE predicate on the "account_id" field.
func AccountIDGTE(v string) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldAccountID, v))
}

// AccountIDLT applies the LT predicate on the "account_id" field.
func AccountIDLT(v string) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldAccountID, v))
}

// AccountIDLTE applies the LTE predicate on the "account_id" field.
func AccountIDLTE(v string) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldAccountID, v))
}

// AccountIDContains applies the Contains predicate on the "account_id" field.
func AccountIDContains(v string) predicate.Character {
	return predicate.Character(sql.FieldContains(FieldAccountID, v))
}

// AccountIDHasPrefix applies the HasPrefix predicate on the "account_id" field.
func AccountIDHasPrefix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasPrefix(FieldAccountID, v))
}

// AccountIDHasSuffix applies the HasSuffix predicate on the "account_id" field.
func AccountIDHasSuffix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasSuffix(FieldAccountID, v))
}

// AccountIDIsNil applies the IsNil predicate on the "account_id" field.
func AccountIDIsNil() predicate.Character {
	return predicate.Character(sql.FieldIsNull(FieldAccountID))
}

// AccountIDNotNil applies the NotNil predicate on the "account_id" field.
func AccountIDNotNil() predicate.Character {
	return predicate.Character(sql.FieldNotNull(FieldAccountID))
}

// AccountIDEqualFold applies the EqualFold predicate on the "account_id" field.
func AccountIDEqualFold(v string) predicate.Character {
	return predicate.Character(sql.FieldEqualFold(FieldAccountID, v))
}

// AccountIDContainsFold applies the ContainsFold predicate on the "account_id" field.
func AccountIDContainsFold(v string) predicate.Character {
	return predicate.Character(sql.FieldContainsFold(FieldAccountID, v))
}

// RoomIDEQ applies the EQ predicate on the "room_id" field.
func RoomIDEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldRoomID, v))
}

// RoomIDNEQ applies the NEQ predicate on the "room_id" field.
func RoomIDNEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldRoomID, v))
}

// RoomIDIn applies the In predicate on the "room_id" field.
func RoomIDIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldRoomID, vs...))
}

// RoomIDNotIn applies the NotIn predicate on the "room_id" field.
func RoomIDNotIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldRoomID, vs...))
}

// RoomIDGT applies the GT predicate on the "room_id" field.
func RoomIDGT(v string) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldRoomID, v))
}

// RoomIDGTE applies the GTE predicate on the "room_id" field.
func RoomIDGTE(v string) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldRoomID, v))
}

// RoomIDLT applies the LT predicate on the "room_id" field.
func RoomIDLT(v string) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldRoomID, v))
}

// RoomIDLTE applies the LTE predicate on the "room_id" field.
func RoomIDLTE(v string) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldRoomID, v))
}

// RoomIDContains applies the Contains predicate on the "room_id" field.
func RoomIDContains(v string) predicate.Character {
	return predicate.Character(sql.FieldContains(FieldRoomID, v))
}

// RoomIDHasPrefix applies the HasPrefix predicate on the "room_id" field.
func RoomIDHasPrefix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasPrefix(FieldRoomID, v))
}

// RoomIDHasSuffix applies the HasSuffix predicate on the "room_id" field.
func RoomIDHasSuffix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasSuffix(FieldRoomID, v))
}

// RoomIDEqualFold applies the EqualFold predicate on the "room_id" field.
func RoomIDEqualFold(v string) predicate.Character {
	return predicate.Character(sql.FieldEqualFold(FieldRoomID, v))
}

// RoomIDContainsFold applies the ContainsFold predicate on the "room_id" field.
func RoomIDContainsFold(v string) predicate.Character {
	return predicate.Character(sql.FieldContainsFold(FieldRoomID, v))
}

// SpawnPointIDEQ applies the EQ predicate on the "spawn_point_id" field.
func SpawnPointIDEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldSpawnPointID, v))
}

// SpawnPointIDNEQ applies the NEQ predicate on the "spawn_point_id" field.
func SpawnPointIDNEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldSpawnPointID, v))
}

// SpawnPointIDIn applies the In predicate on the "spawn_point_id" field.
func SpawnPointIDIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldSpawnPointID, vs...))
}

// SpawnPointIDNotIn applies the NotIn predicate on the "spawn_point_id" field.
func SpawnPointIDNotIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldSpawnPointID, vs...))
}

// SpawnPointIDGT applies the GT predicate on the "spawn_point_id" field.
func SpawnPointIDGT(v string) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldSpawnPointID, v))
}

// SpawnPointIDGTE applies the GTE predicate on the "spawn_point_id" field.
func SpawnPointIDGTE(v string) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldSpawnPointID, v))
}

// SpawnPointIDLT applies the LT predicate on the "spawn_point_id" field.
func SpawnPointIDLT(v string) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldSpawnPointID, v))
}

// SpawnPointIDLTE applies the LTE predicate on the "spawn_point_id" field.
func SpawnPointIDLTE(v string) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldSpawnPointID, v))
}

// SpawnPointIDContains applies the Contains predicate on the "spawn_point_id" field.
func SpawnPointIDContains(v string) predicate.Character {
	return predicate.Character(sql.FieldContains(FieldSpawnPointID, v))
}

// SpawnPointIDHasPrefix applies the HasPrefix predicate on the "spawn_point_id" field.
func SpawnPointIDHasPrefix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasPrefix(FieldSpawnPointID, v))
}

// SpawnPointIDHasSuffix applies the HasSuffix predicate on the "spawn_point_id" field.
func SpawnPointIDHasSuffix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasSuffix(FieldSpawnPointID, v))
}

// SpawnPointIDIsNil applies the IsNil predicate on the "spawn_point_id" field.
func SpawnPointIDIsNil() predicate.Character {
	return predicate.Character(sql.FieldIsNull(FieldSpawnPointID))
}

// SpawnPointIDNotNil applies the NotNil predicate on the "spawn_point_id" field.
func SpawnPointIDNotNil() predicate.Character {
	return predicate.Character(sql.FieldNotNull(FieldSpawnPointID))
}

// SpawnPointIDEqualFold applies the EqualFold predicate on the "spawn_point_id" field.
func SpawnPointIDEqualFold(v string) predicate.Character {
	return predicate.Character(sql.FieldEqualFold(FieldSpawnPointID, v))
}

// SpawnPointIDContainsFold applies the ContainsFold predicate on the "spawn_point_id" field.
func SpawnPointIDContainsFold(v string) predicate.Character {
	return predicate.Character(sql.FieldContainsFold(FieldSpawnPointID, v))
}

// HpEQ applies the EQ predicate on the "hp" field.
func HpEQ(v int) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldHp, v))
}

// HpNEQ applies the NEQ predicate on the "hp" field.
func HpNEQ(v int) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldHp, v))
}

// HpIn applies the In predicate on the "hp" field.
func HpIn(vs ...int) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldHp, vs...))
}

// HpNotIn applies the NotIn predicate on the "hp" field.
func HpNotIn(vs ...int) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldHp, vs...))
}

// HpGT applies the GT predicate on the "hp" field.
func HpGT(v int) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldHp, v))
}

// HpGTE applies the GTE predicate on the "hp" field.
func HpGTE(v int) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldHp, v))
}

// HpLT applies the LT predicate on the "hp" field.
func HpLT(v int) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldHp, v))
}

// HpLTE applies the LTE predicate on the "hp" field.
func HpLTE(v int) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldHp, v))
}

// MaxHpEQ applies the EQ predicate on the "max_hp" field.
func MaxHpEQ(v int) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldMaxHp, v))
}

// MaxHpNEQ applies the NEQ predicate on the "max_hp" field.
func MaxHpNEQ(v int) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldMaxHp, v))
}

// MaxHpIn applies the In predicate on the "max_hp" field.
func MaxHpIn(vs ...int) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldMaxHp, vs...))
}

// MaxHpNotIn applies the NotIn predicate on the "max_hp" field.
func MaxHpNotIn(vs ...int) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldMaxHp, vs...))
}

// MaxHpGT applies the GT predicate on the "max_hp" field.
func MaxHpGT(v int) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldMaxHp, v))
}

// MaxHpGTE applies the GTE predicate on the "max_hp" field.
func MaxHpGTE(v int) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldMaxHp, v))
}

// MaxHpLT applies the LT predicate on the "max_hp" field.
func MaxHpLT(v int) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldMaxHp, v))
}

// MaxHpLTE applies the LTE predicate on the "max_hp" field.
func MaxHpLTE(v int) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldMaxHp, v))
}

// AttackEQ applies the EQ predicate on the "attack" field.
func AttackEQ(v int) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldAttack, v))
}

// AttackNEQ applies the NEQ predicate on the "attack" field.
func AttackNEQ(v int) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldAttack, v))
}

// AttackIn applies the In predicate on the "attack" field.
func AttackIn(vs ...int) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldAttack, vs...))
}

// AttackNotIn applies the NotIn predicate on the "attack" field.
func AttackNotIn(vs ...int) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldAttack, vs...))
}

// AttackGT applies the GT predicate on the "attack" field.
func AttackGT(v int) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldAttack, v))
}

// AttackGTE applies the GTE predicate on the "attack" field.
func AttackGTE(v int) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldAttack, v))
}

// AttackLT applies the LT predicate on the "attack" field.
func AttackLT(v int) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldAttack, v))
}

// AttackLTE applies the LTE predicate on the "attack" field.
func AttackLTE(v int) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldAttack, v))
}

// DefenseEQ applies the EQ predicate on the "defense" field.
func DefenseEQ(v int) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldDefense, v))
}

// DefenseNEQ applies the NEQ predicate on the "defense" field.
func DefenseNEQ(v int) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldDefense, v))
}

// DefenseIn applies the In predicate on the "defense" field.
func DefenseIn(vs ...int) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldDefense, vs...))
}

// DefenseNotIn applies the NotIn predicate on the "defense" field.
func DefenseNotIn(vs ...int) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldDefense, vs...))
}

// DefenseGT applies the GT predicate on the "defense" field.
func DefenseGT(v int) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldDefense, v))
}

// DefenseGTE applies the GTE predicate on the "defense" field.
func DefenseGTE(v int) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldDefense, v))
}

// DefenseLT applies the LT predicate on the "defense" field.
func DefenseLT(v int) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldDefense, v))
}

// DefenseLTE applies the LTE predicate on the "defense" field.
func DefenseLTE(v int) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldDefense, v))
}

// SpeedEQ applies the EQ predicate on the "speed" field.
func SpeedEQ(v int) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldSpeed, v))
}

// SpeedNEQ applies the NEQ predicate on the "speed" field.
func SpeedNEQ(v int) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldSpeed, v))
}

// SpeedIn applies the In predicate on the "speed" field.
func SpeedIn(vs ...int) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldSpeed, vs...))
}

// SpeedNotIn applies the NotIn predicate on the "speed" field.
func SpeedNotIn(vs ...int) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldSpeed, vs...))
}

// SpeedGT applies the GT predicate on the "speed" field.
func SpeedGT(v int) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldSpeed, v))
}

// SpeedGTE applies the GTE predicate on the "speed" field.
func SpeedGTE(v int) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldSpeed, v))
}

// SpeedLT applies the LT predicate on the "speed" field.
func SpeedLT(v int) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldSpeed, v))
}

// SpeedLTE applies the LTE predicate on the "speed" field.
func SpeedLTE(v int) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldSpeed, v))
}

// IsAliveEQ applies the EQ predicate on the "is_alive" field.
func IsAliveEQ(v bool) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldIsAlive, v))
}

// IsAliveNEQ applies the NEQ predicate on the "is_alive" field.
func IsAliveNEQ(v bool) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldIsAlive, v))
}

// IsDeadEQ applies the EQ predicate on the "is_dead" field.
func IsDeadEQ(v bool) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldIsDead, v))
}

// IsDeadNEQ applies the NEQ predicate on the "is_dead" field.
func IsDeadNEQ(v bool) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldIsDead, v))
}

// DiedAtEQ applies the EQ predicate on the "died_at" field.
func DiedAtEQ(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldDiedAt, v))
}

// DiedAtNEQ applies the NEQ predicate on the "died_at" field.
func DiedAtNEQ(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldDiedAt, v))
}

// DiedAtIn applies the In predicate on the "died_at" field.
func DiedAtIn(vs ...time.Time) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldDiedAt, vs...))
}

// DiedAtNotIn applies the NotIn predicate on the "died_at" field.
func DiedAtNotIn(vs ...time.Time) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldDiedAt, vs...))
}

// DiedAtGT applies the GT predicate on the "died_at" field.
func DiedAtGT(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldDiedAt, v))
}

// DiedAtGTE applies the GTE predicate on the "died_at" field.
func DiedAtGTE(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldDiedAt, v))
}

// DiedAtLT applies the LT predicate on the "died_at" field.
func DiedAtLT(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldDiedAt, v))
}

// DiedAtLTE applies the LTE predicate on the "died_at" field.
func DiedAtLTE(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldDiedAt, v))
}

// DiedAtIsNil applies the IsNil predicate on the "died_at" field.
func DiedAtIsNil() predicate.Character {
	return predicate.Character(sql.FieldIsNull(FieldDiedAt))
}

// DiedAtNotNil applies the NotNil predicate on the "died_at" field.
func DiedAtNotNil() predicate.Character {
	return predicate.Character(sql.FieldNotNull(FieldDiedAt))
}

// LastActionAtEQ applies the EQ predicate on the "last_action_at" field.
func LastActionAtEQ(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldLastActionAt, v))
}

// LastActionAtNEQ applies the NEQ predicate on the "last_action_at" field.
func LastActionAtNEQ(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldLastActionAt, v))
}

// LastActionAtIn applies the In predicate on the "last_action_at" field.
func LastActionAtIn(vs ...time.Time) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldLastActionAt, vs...))
}

// LastActionAtNotIn applies the NotIn predicate on the "last_action_at" field.
func LastActionAtNotIn(vs ...time.Time) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldLastActionAt, vs...))
}

// LastActionAtGT applies the GT predicate on the "last_action_at" field.
func LastActionAtGT(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldLastActionAt, v))
}

// LastActionAtGTE applies the GTE predicate on the "last_action_at" field.
func LastActionAtGTE(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldLastActionAt, v))
}

// LastActionAtLT applies the LT predicate on the "last_action_at" field.
func LastActionAtLT(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldLastActionAt, v))
}

// LastActionAtLTE applies the LTE predicate on the "last_action_at" field.
func LastActionAtLTE(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldLastActionAt, v))
}

// LastActionAtIsNil applies the IsNil predicate on the "last_action_at" field.
func LastActionAtIsNil() predicate.Character {
	return predicate.Character(sql.FieldIsNull(FieldLastActionAt))
}

// LastActionAtNotNil applies the NotNil predicate on the "last_action_at" field.
func LastActionAtNotNil() predicate.Character {
	return predicate.Character(sql.FieldNotNull(FieldLastActionAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Character) predicate.Character {
	return predicate.Character(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Character) predicate.Character {
	return predicate.Character(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Character) predicate.Character {
	return predicate.Character(sql.NotPredicates(p))
}
