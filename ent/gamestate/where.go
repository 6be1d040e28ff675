// Code generated by ent, DO NOT EDIT.

package gamestate

import (
	"entgo.io/ent/dialect/sql"
	"github.com/elliotbonneville/silt/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GameState {
	return predicate.GameState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GameState {
	return predicate.GameState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GameState {
	return predicate.GameState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GameState {
	return predicate.GameState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GameState {
	return predicate.GameState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GameState {
	return predicate.GameState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GameState {
	return predicate.GameState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GameState {
	return predicate.GameState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GameState {
	return predicate.GameState(sql.FieldLTE(FieldID, id))
}

// IsPaused applies equality check predicate on the "is_paused" field. It's identical to IsPausedEQ.
func IsPaused(v bool) predicate.GameState {
	return predicate.GameState(sql.FieldEQ(FieldIsPaused, v))
}

// GameTime applies equality check predicate on the "game_time" field. It's identical to GameTimeEQ.
func GameTime(v float64) predicate.GameState {
	return predicate.GameState(sql.FieldEQ(FieldGameTime, v))
}

// IsPausedEQ applies the EQ predicate on the "is_paused" field.
func IsPausedEQ(v bool) predicate.GameState {
	return predicate.GameState(sql.FieldEQ(FieldIsPaused, v))
}

// IsPausedNEQ applies the NEQ predicate on the "is_paused" field.
func IsPausedNEQ(v bool) predicate.GameState {
	return predicate.GameState(sql.FieldNEQ(FieldIsPaused, v))
}

// GameTimeEQ applies the EQ predicate on the "game_time" field.
func GameTimeEQ(v float64) predicate.GameState {
	return predicate.GameState(sql.FieldEQ(FieldGameTime, v))
}

// GameTimeNEQ applies the NEQ predicate on the "game_time" field.
func GameTimeNEQ(v float64) predicate.GameState {
	return predicate.GameState(sql.FieldNEQ(FieldGameTime, v))
}

// GameTimeIn applies the In predicate on the "game_time" field.
func GameTimeIn(vs ...float64) predicate.GameState {
	return predicate.GameState(sql.FieldIn(FieldGameTime, vs...))
}

// GameTimeNotIn applies the NotIn predicate on the "game_time" field.
func GameTimeNotIn(vs ...float64) predicate.GameState {
	return predicate.GameState(sql.FieldNotIn(FieldGameTime, vs...))
}

// GameTimeGT applies the GT predicate on the "game_time" field.
func GameTimeGT(v float64) predicate.GameState {
	return predicate.GameState(sql.FieldGT(FieldGameTime, v))
}

// GameTimeGTE applies the GTE predicate on the "game_time" field.
func GameTimeGTE(v float64) predicate.GameState {
	return predicate.GameState(sql.FieldGTE(FieldGameTime, v))
}

// GameTimeLT applies the LT predicate on the "game_time" field.
func GameTimeLT(v float64) predicate.GameState {
	return predicate.GameState(sql.FieldLT(FieldGameTime, v))
}

// GameTimeLTE applies the LTE predicate on the "game_time" field.
func GameTimeLTE(v float64) predicate.GameState {
	return predicate.GameState(sql.FieldLTE(FieldGameTime, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GameState) predicate.GameState {
	return predicate.GameState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GameState) predicate.GameState {
	return predicate.GameState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GameState) predicate.GameState {
	return predicate.GameState(sql.NotPredicates(p))
}
