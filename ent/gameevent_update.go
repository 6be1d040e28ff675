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
	"github.com/elliotbonneville/silt/ent/gameevent"
	"github.com/elliotbonneville/silt/ent/predicate"
)

// GameEventUpdate is the builder for updating GameEvent entities.
type GameEventUpdate struct {
	config
	hooks    []Hook
	mutation *GameEventMutation
}

// Where appends a list predicates to the GameEventUpdate builder.
func (_u *GameEventUpdate) Where(ps ...predicate.GameEvent) *GameEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetType sets the "type" field.
func (_u *GameEventUpdate) SetType(v string) *GameEventUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *GameEventUpdate) SetNillableType(v *string) *GameEventUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *GameEventUpdate) SetTimestamp(v time.Time) *GameEventUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *GameEventUpdate) SetNillableTimestamp(v *time.Time) *GameEventUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetOriginRoomID sets the "origin_room_id" field.
func (_u *GameEventUpdate) SetOriginRoomID(v string) *GameEventUpdate {
	_u.mutation.SetOriginRoomID(v)
	return _u
}

// SetNillableOriginRoomID sets the "origin_room_id" field if the given value is not nil.
func (_u *GameEventUpdate) SetNillableOriginRoomID(v *string) *GameEventUpdate {
	if v != nil {
		_u.SetOriginRoomID(*v)
	}
	return _u
}

// ClearOriginRoomID clears the value of the "origin_room_id" field.
func (_u *GameEventUpdate) ClearOriginRoomID() *GameEventUpdate {
	_u.mutation.ClearOriginRoomID()
	return _u
}

// SetVisibility sets the "visibility" field.
func (_u *GameEventUpdate) SetVisibility(v gameevent.Visibility) *GameEventUpdate {
	_u.mutation.SetVisibility(v)
	return _u
}

// SetNillableVisibility sets the "visibility" field if the given value is not nil.
func (_u *GameEventUpdate) SetNillableVisibility(v *gameevent.Visibility) *GameEventUpdate {
	if v != nil {
		_u.SetVisibility(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *GameEventUpdate) SetContent(v string) *GameEventUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *GameEventUpdate) SetNillableContent(v *string) *GameEventUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *GameEventUpdate) ClearContent() *GameEventUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *GameEventUpdate) SetPayload(v map[string]interface{}) *GameEventUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *GameEventUpdate) ClearPayload() *GameEventUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetRecipients sets the "recipients" field.
func (_u *GameEventUpdate) SetRecipients(v []string) *GameEventUpdate {
	_u.mutation.SetRecipients(v)
	return _u
}

// AppendRecipients appends value to the "recipients" field.
func (_u *GameEventUpdate) AppendRecipients(v []string) *GameEventUpdate {
	_u.mutation.AppendRecipients(v)
	return _u
}

// ClearRecipients clears the value of the "recipients" field.
func (_u *GameEventUpdate) ClearRecipients() *GameEventUpdate {
	_u.mutation.ClearRecipients()
	return _u
}

// SetRelatedEntities sets the "related_entities" field.
func (_u *GameEventUpdate) SetRelatedEntities(v []string) *GameEventUpdate {
	_u.mutation.SetRelatedEntities(v)
	return _u
}

// AppendRelatedEntities appends value to the "related_entities" field.
func (_u *GameEventUpdate) AppendRelatedEntities(v []string) *GameEventUpdate {
	_u.mutation.AppendRelatedEntities(v)
	return _u
}

// ClearRelatedEntities clears the value of the "related_entities" field.
func (_u *GameEventUpdate) ClearRelatedEntities() *GameEventUpdate {
	_u.mutation.ClearRelatedEntities()
	return _u
}

// Mutation returns the GameEventMutation object of the builder.
func (_u *GameEventUpdate) Mutation() *GameEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GameEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GameEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GameEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GameEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GameEventUpdate) check() error {
	if v, ok := _u.mutation.Visibility(); ok {
		if err := gameevent.VisibilityValidator(v); err != nil {
			return &ValidationError{Name: "visibility", err: fmt.Errorf(`ent: validator failed for field "GameEvent.visibility": %w`, err)}
		}
	}
	return nil
}

func (_u *GameEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gameevent.Table, gameevent.Columns, sqlgraph.NewFieldSpec(gameevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(gameevent.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(gameevent.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OriginRoomID(); ok {
		_spec.SetField(gameevent.FieldOriginRoomID, field.TypeString, value)
	}
	if _u.mutation.OriginRoomIDCleared() {
		_spec.ClearField(gameevent.FieldOriginRoomID, field.TypeString)
	}
	if value, ok := _u.mutation.Visibility(); ok {
		_spec.SetField(gameevent.FieldVisibility, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(gameevent.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(gameevent.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(gameevent.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(gameevent.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Recipients(); ok {
		_spec.SetField(gameevent.FieldRecipients, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecipients(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gameevent.FieldRecipients, value)
		})
	}
	if _u.mutation.RecipientsCleared() {
		_spec.ClearField(gameevent.FieldRecipients, field.TypeJSON)
	}
	if value, ok := _u.mutation.RelatedEntities(); ok {
		_spec.SetField(gameevent.FieldRelatedEntities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRelatedEntities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gameevent.FieldRelatedEntities, value)
		})
	}
	if _u.mutation.RelatedEntitiesCleared() {
		_spec.ClearField(gameevent.FieldRelatedEntities, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gameevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GameEventUpdateOne is the builder for updating a single GameEvent entity.
type GameEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GameEventMutation
}

// SetType sets the "type" field.
func (_u *GameEventUpdateOne) SetType(v string) *GameEventUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *GameEventUpdateOne) SetNillableType(v *string) *GameEventUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *GameEventUpdateOne) SetTimestamp(v time.Time) *GameEventUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *GameEventUpdateOne) SetNillableTimestamp(v *time.Time) *GameEventUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetOriginRoomID sets the "origin_room_id" field.
func (_u *GameEventUpdateOne) SetOriginRoomID(v string) *GameEventUpdateOne {
	_u.mutation.SetOriginRoomID(v)
	return _u
}

// SetNillableOriginRoomID sets the "origin_room_id" field if the given value is not nil.
func (_u *GameEventUpdateOne) SetNillableOriginRoomID(v *string) *GameEventUpdateOne {
	if v != nil {
		_u.SetOriginRoomID(*v)
	}
	return _u
}

// ClearOriginRoomID clears the value of the "origin_room_id" field.
func (_u *GameEventUpdateOne) ClearOriginRoomID() *GameEventUpdateOne {
	_u.mutation.ClearOriginRoomID()
	return _u
}

// SetVisibility sets the "visibility" field.
func (_u *GameEventUpdateOne) SetVisibility(v gameevent.Visibility) *GameEventUpdateOne {
	_u.mutation.SetVisibility(v)
	return _u
}

// SetNillableVisibility sets the "visibility" field if the given value is not nil.
func (_u *GameEventUpdateOne) SetNillableVisibility(v *gameevent.Visibility) *GameEventUpdateOne {
	if v != nil {
		_u.SetVisibility(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *GameEventUpdateOne) SetContent(v string) *GameEventUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *GameEventUpdateOne) SetNillableContent(v *string) *GameEventUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *GameEventUpdateOne) ClearContent() *GameEventUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *GameEventUpdateOne) SetPayload(v map[string]interface{}) *GameEventUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *GameEventUpdateOne) ClearPayload() *GameEventUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetRecipients sets the "recipients" field.
func (_u *GameEventUpdateOne) SetRecipients(v []string) *GameEventUpdateOne {
	_u.mutation.SetRecipients(v)
	return _u
}

// AppendRecipients appends value to the "recipients" field.
func (_u *GameEventUpdateOne) AppendRecipients(v []string) *GameEventUpdateOne {
	_u.mutation.AppendRecipients(v)
	return _u
}

// ClearRecipients clears the value of the "recipients" field.
func (_u *GameEventUpdateOne) ClearRecipients() *GameEventUpdateOne {
	_u.mutation.ClearRecipients()
	return _u
}

// SetRelatedEntities sets the "related_entities" field.
func (_u *GameEventUpdateOne) SetRelatedEntities(v []string) *GameEventUpdateOne {
	_u.mutation.SetRelatedEntities(v)
	return _u
}

// AppendRelatedEntities appends value to the "related_entities" field.
func (_u *GameEventUpdateOne) AppendRelatedEntities(v []string) *GameEventUpdateOne {
	_u.mutation.AppendRelatedEntities(v)
	return _u
}

// ClearRelatedEntities clears the value of the "related_entities" field.
func (_u *GameEventUpdateOne) ClearRelatedEntities() *GameEventUpdateOne {
	_u.mutation.ClearRelatedEntities()
	return _u
}

// Mutation returns the GameEventMutation object of the builder.
func (_u *GameEventUpdateOne) Mutation() *GameEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the GameEventUpdate builder.
func (_u *GameEventUpdateOne) Where(ps ...predicate.GameEvent) *GameEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GameEventUpdateOne) Select(field string, fields ...string) *GameEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GameEvent entity.
func (_u *GameEventUpdateOne) Save(ctx context.Context) (*GameEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GameEventUpdateOne) SaveX(ctx context.Context) *GameEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GameEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GameEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GameEventUpdateOne) check() error {
	if v, ok := _u.mutation.Visibility(); ok {
		if err := gameevent.VisibilityValidator(v); err != nil {
			return &ValidationError{Name: "visibility", err: fmt.Errorf(`ent: validator failed for field "GameEvent.visibility": %w`, err)}
		}
	}
	return nil
}

func (_u *GameEventUpdateOne) sqlSave(ctx context.Context) (_node *GameEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gameevent.Table, gameevent.Columns, sqlgraph.NewFieldSpec(gameevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GameEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gameevent.FieldID)
		for _, f := range fields {
			if !gameevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gameevent.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(gameevent.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(gameevent.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OriginRoomID(); ok {
		_spec.SetField(gameevent.FieldOriginRoomID, field.TypeString, value)
	}
	if _u.mutation.OriginRoomIDCleared() {
		_spec.ClearField(gameevent.FieldOriginRoomID, field.TypeString)
	}
	if value, ok := _u.mutation.Visibility(); ok {
		_spec.SetField(gameevent.FieldVisibility, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(gameevent.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(gameevent.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(gameevent.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(gameevent.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Recipients(); ok {
		_spec.SetField(gameevent.FieldRecipients, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecipients(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gameevent.FieldRecipients, value)
		})
	}
	if _u.mutation.RecipientsCleared() {
		_spec.ClearField(gameevent.FieldRecipients, field.TypeJSON)
	}
	if value, ok := _u.mutation.RelatedEntities(); ok {
		_spec.SetField(gameevent.FieldRelatedEntities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRelatedEntities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gameevent.FieldRelatedEntities, value)
		})
	}
	if _u.mutation.RelatedEntitiesCleared() {
		_spec.ClearField(gameevent.FieldRelatedEntities, field.TypeJSON)
	}
	_node = &GameEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gameevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
