// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/elliotbonneville/silt/ent/predicate"
	"github.com/elliotbonneville/silt/ent/tokenusagelog"
)

// TokenUsageLogUpdate is the builder for updating TokenUsageLog entities.
type TokenUsageLogUpdate struct {
	config
	hooks    []Hook
	mutation *TokenUsageLogMutation
}

// Where appends a list predicates to the TokenUsageLogUpdate builder.
func (_u *TokenUsageLogUpdate) Where(ps ...predicate.TokenUsageLog) *TokenUsageLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetModel sets the "model" field.
func (_u *TokenUsageLogUpdate) SetModel(v string) *TokenUsageLogUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *TokenUsageLogUpdate) SetNillableModel(v *string) *TokenUsageLogUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *TokenUsageLogUpdate) SetProvider(v string) *TokenUsageLogUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *TokenUsageLogUpdate) SetNillableProvider(v *string) *TokenUsageLogUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *TokenUsageLogUpdate) SetPromptTokens(v int) *TokenUsageLogUpdate {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *TokenUsageLogUpdate) SetNillablePromptTokens(v *int) *TokenUsageLogUpdate {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *TokenUsageLogUpdate) AddPromptTokens(v int) *TokenUsageLogUpdate {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *TokenUsageLogUpdate) SetCompletionTokens(v int) *TokenUsageLogUpdate {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *TokenUsageLogUpdate) SetNillableCompletionTokens(v *int) *TokenUsageLogUpdate {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *TokenUsageLogUpdate) AddCompletionTokens(v int) *TokenUsageLogUpdate {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *TokenUsageLogUpdate) SetTotalTokens(v int) *TokenUsageLogUpdate {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *TokenUsageLogUpdate) SetNillableTotalTokens(v *int) *TokenUsageLogUpdate {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *TokenUsageLogUpdate) AddTotalTokens(v int) *TokenUsageLogUpdate {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetCost sets the "cost" field.
func (_u *TokenUsageLogUpdate) SetCost(v float64) *TokenUsageLogUpdate {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *TokenUsageLogUpdate) SetNillableCost(v *float64) *TokenUsageLogUpdate {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *TokenUsageLogUpdate) AddCost(v float64) *TokenUsageLogUpdate {
	_u.mutation.AddCost(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *TokenUsageLogUpdate) SetSource(v tokenusagelog.Source) *TokenUsageLogUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *TokenUsageLogUpdate) SetNillableSource(v *tokenusagelog.Source) *TokenUsageLogUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *TokenUsageLogUpdate) SetAgentID(v string) *TokenUsageLogUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *TokenUsageLogUpdate) SetNillableAgentID(v *string) *TokenUsageLogUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *TokenUsageLogUpdate) ClearAgentID() *TokenUsageLogUpdate {
	_u.mutation.ClearAgentID()
	return _u
}

// SetSourceEventID sets the "source_event_id" field.
func (_u *TokenUsageLogUpdate) SetSourceEventID(v string) *TokenUsageLogUpdate {
	_u.mutation.SetSourceEventID(v)
	return _u
}

// SetNillableSourceEventID sets the "source_event_id" field if the given value is not nil.
func (_u *TokenUsageLogUpdate) SetNillableSourceEventID(v *string) *TokenUsageLogUpdate {
	if v != nil {
		_u.SetSourceEventID(*v)
	}
	return _u
}

// ClearSourceEventID clears the value of the "source_event_id" field.
func (_u *TokenUsageLogUpdate) ClearSourceEventID() *TokenUsageLogUpdate {
	_u.mutation.ClearSourceEventID()
	return _u
}

// Mutation returns the TokenUsageLogMutation object of the builder.
func (_u *TokenUsageLogUpdate) Mutation() *TokenUsageLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TokenUsageLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TokenUsageLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TokenUsageLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TokenUsageLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TokenUsageLogUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := tokenusagelog.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "TokenUsageLog.source": %w`, err)}
		}
	}
	return nil
}

func (_u *TokenUsageLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tokenusagelog.Table, tokenusagelog.Columns, sqlgraph.NewFieldSpec(tokenusagelog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(tokenusagelog.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(tokenusagelog.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(tokenusagelog.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(tokenusagelog.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(tokenusagelog.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(tokenusagelog.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(tokenusagelog.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(tokenusagelog.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(tokenusagelog.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(tokenusagelog.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(tokenusagelog.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(tokenusagelog.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(tokenusagelog.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.SourceEventID(); ok {
		_spec.SetField(tokenusagelog.FieldSourceEventID, field.TypeString, value)
	}
	if _u.mutation.SourceEventIDCleared() {
		_spec.ClearField(tokenusagelog.FieldSourceEventID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tokenusagelog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TokenUsageLogUpdateOne is the builder for updating a single TokenUsageLog entity.
type TokenUsageLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TokenUsageLogMutation
}

// SetModel sets the "model" field.
func (_u *TokenUsageLogUpdateOne) SetModel(v string) *TokenUsageLogUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *TokenUsageLogUpdateOne) SetNillableModel(v *string) *TokenUsageLogUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *TokenUsageLogUpdateOne) SetProvider(v string) *TokenUsageLogUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *TokenUsageLogUpdateOne) SetNillableProvider(v *string) *TokenUsageLogUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *TokenUsageLogUpdateOne) SetPromptTokens(v int) *TokenUsageLogUpdateOne {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *TokenUsageLogUpdateOne) SetNillablePromptTokens(v *int) *TokenUsageLogUpdateOne {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *TokenUsageLogUpdateOne) AddPromptTokens(v int) *TokenUsageLogUpdateOne {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *TokenUsageLogUpdateOne) SetCompletionTokens(v int) *TokenUsageLogUpdateOne {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *TokenUsageLogUpdateOne) SetNillableCompletionTokens(v *int) *TokenUsageLogUpdateOne {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *TokenUsageLogUpdateOne) AddCompletionTokens(v int) *TokenUsageLogUpdateOne {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *TokenUsageLogUpdateOne) SetTotalTokens(v int) *TokenUsageLogUpdateOne {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *TokenUsageLogUpdateOne) SetNillableTotalTokens(v *int) *TokenUsageLogUpdateOne {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *TokenUsageLogUpdateOne) AddTotalTokens(v int) *TokenUsageLogUpdateOne {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetCost sets the "cost" field.
func (_u *TokenUsageLogUpdateOne) SetCost(v float64) *TokenUsageLogUpdateOne {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *TokenUsageLogUpdateOne) SetNillableCost(v *float64) *TokenUsageLogUpdateOne {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *TokenUsageLogUpdateOne) AddCost(v float64) *TokenUsageLogUpdateOne {
	_u.mutation.AddCost(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *TokenUsageLogUpdateOne) SetSource(v tokenusagelog.Source) *TokenUsageLogUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *TokenUsageLogUpdateOne) SetNillableSource(v *tokenusagelog.Source) *TokenUsageLogUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *TokenUsageLogUpdateOne) SetAgentID(v string) *TokenUsageLogUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *TokenUsageLogUpdateOne) SetNillableAgentID(v *string) *TokenUsageLogUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *TokenUsageLogUpdateOne) ClearAgentID() *TokenUsageLogUpdateOne {
	_u.mutation.ClearAgentID()
	return _u
}

// SetSourceEventID sets the "source_event_id" field.
func (_u *TokenUsageLogUpdateOne) SetSourceEventID(v string) *TokenUsageLogUpdateOne {
	_u.mutation.SetSourceEventID(v)
	return _u
}

// SetNillableSourceEventID sets the "source_event_id" field if the given value is not nil.
func (_u *TokenUsageLogUpdateOne) SetNillableSourceEventID(v *string) *TokenUsageLogUpdateOne {
	if v != nil {
		_u.SetSourceEventID(*v)
	}
	return _u
}

// ClearSourceEventID clears the value of the "source_event_id" field.
func (_u *TokenUsageLogUpdateOne) ClearSourceEventID() *TokenUsageLogUpdateOne {
	_u.mutation.ClearSourceEventID()
	return _u
}

// Mutation returns the TokenUsageLogMutation object of the builder.
func (_u *TokenUsageLogUpdateOne) Mutation() *TokenUsageLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the TokenUsageLogUpdate builder.
func (_u *TokenUsageLogUpdateOne) Where(ps ...predicate.TokenUsageLog) *TokenUsageLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TokenUsageLogUpdateOne) Select(field string, fields ...string) *TokenUsageLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TokenUsageLog entity.
func (_u *TokenUsageLogUpdateOne) Save(ctx context.Context) (*TokenUsageLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TokenUsageLogUpdateOne) SaveX(ctx context.Context) *TokenUsageLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TokenUsageLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TokenUsageLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TokenUsageLogUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := tokenusagelog.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "TokenUsageLog.source": %w`, err)}
		}
	}
	return nil
}

func (_u *TokenUsageLogUpdateOne) sqlSave(ctx context.Context) (_node *TokenUsageLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tokenusagelog.Table, tokenusagelog.Columns, sqlgraph.NewFieldSpec(tokenusagelog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TokenUsageLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tokenusagelog.FieldID)
		for _, f := range fields {
			if !tokenusagelog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tokenusagelog.FieldID {
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
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(tokenusagelog.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(tokenusagelog.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(tokenusagelog.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(tokenusagelog.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(tokenusagelog.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(tokenusagelog.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(tokenusagelog.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(tokenusagelog.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(tokenusagelog.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(tokenusagelog.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(tokenusagelog.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(tokenusagelog.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(tokenusagelog.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.SourceEventID(); ok {
		_spec.SetField(tokenusagelog.FieldSourceEventID, field.TypeString, value)
	}
	if _u.mutation.SourceEventIDCleared() {
		_spec.ClearField(tokenusagelog.FieldSourceEventID, field.TypeString)
	}
	_node = &TokenUsageLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tokenusagelog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
