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
	"github.com/elliotbonneville/silt/ent/tokenusagelog"
)

// TokenUsageLogCreate is the builder for creating a TokenUsageLog entity.
type TokenUsageLogCreate struct {
	config
	mutation *TokenUsageLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetModel sets the "model" field.
func (_c *TokenUsageLogCreate) SetModel(v string) *TokenUsageLogCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *TokenUsageLogCreate) SetProvider(v string) *TokenUsageLogCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_c *TokenUsageLogCreate) SetPromptTokens(v int) *TokenUsageLogCreate {
	_c.mutation.SetPromptTokens(v)
	return _c
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_c *TokenUsageLogCreate) SetCompletionTokens(v int) *TokenUsageLogCreate {
	_c.mutation.SetCompletionTokens(v)
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *TokenUsageLogCreate) SetTotalTokens(v int) *TokenUsageLogCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetCost sets the "cost" field.
func (_c *TokenUsageLogCreate) SetCost(v float64) *TokenUsageLogCreate {
	_c.mutation.SetCost(v)
	return _c
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_c *TokenUsageLogCreate) SetNillableCost(v *float64) *TokenUsageLogCreate {
	if v != nil {
		_c.SetCost(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *TokenUsageLogCreate) SetSource(v tokenusagelog.Source) *TokenUsageLogCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *TokenUsageLogCreate) SetAgentID(v string) *TokenUsageLogCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_c *TokenUsageLogCreate) SetNillableAgentID(v *string) *TokenUsageLogCreate {
	if v != nil {
		_c.SetAgentID(*v)
	}
	return _c
}

// SetSourceEventID sets the "source_event_id" field.
func (_c *TokenUsageLogCreate) SetSourceEventID(v string) *TokenUsageLogCreate {
	_c.mutation.SetSourceEventID(v)
	return _c
}

// SetNillableSourceEventID sets the "source_event_id" field if the given value is not nil.
func (_c *TokenUsageLogCreate) SetNillableSourceEventID(v *string) *TokenUsageLogCreate {
	if v != nil {
		_c.SetSourceEventID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TokenUsageLogCreate) SetCreatedAt(v time.Time) *TokenUsageLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TokenUsageLogCreate) SetNillableCreatedAt(v *time.Time) *TokenUsageLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TokenUsageLogCreate) SetID(v string) *TokenUsageLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TokenUsageLogMutation object of the builder.
func (_c *TokenUsageLogCreate) Mutation() *TokenUsageLogMutation {
	return _c.mutation
}

// Save creates the TokenUsageLog in the database.
func (_c *TokenUsageLogCreate) Save(ctx context.Context) (*TokenUsageLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TokenUsageLogCreate) SaveX(ctx context.Context) *TokenUsageLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TokenUsageLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TokenUsageLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TokenUsageLogCreate) defaults() {
	if _, ok := _c.mutation.Cost(); !ok {
		v := tokenusagelog.DefaultCost
		_c.mutation.SetCost(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tokenusagelog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TokenUsageLogCreate) check() error {
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "TokenUsageLog.model"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "TokenUsageLog.provider"`)}
	}
	if _, ok := _c.mutation.PromptTokens(); !ok {
		return &ValidationError{Name: "prompt_tokens", err: errors.New(`ent: missing required field "TokenUsageLog.prompt_tokens"`)}
	}
	if _, ok := _c.mutation.CompletionTokens(); !ok {
		return &ValidationError{Name: "completion_tokens", err: errors.New(`ent: missing required field "TokenUsageLog.completion_tokens"`)}
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		return &ValidationError{Name: "total_tokens", err: errors.New(`ent: missing required field "TokenUsageLog.total_tokens"`)}
	}
	if _, ok := _c.mutation.Cost(); !ok {
		return &ValidationError{Name: "cost", err: errors.New(`ent: missing required field "TokenUsageLog.cost"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "TokenUsageLog.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := tokenusagelog.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "TokenUsageLog.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TokenUsageLog.created_at"`)}
	}
	return nil
}

func (_c *TokenUsageLogCreate) sqlSave(ctx context.Context) (*TokenUsageLog, error) {
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
			return nil, fmt.Errorf("unexpected TokenUsageLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TokenUsageLogCreate) createSpec() (*TokenUsageLog, *sqlgraph.CreateSpec) {
	var (
		_node = &TokenUsageLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tokenusagelog.Table, sqlgraph.NewFieldSpec(tokenusagelog.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(tokenusagelog.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(tokenusagelog.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.PromptTokens(); ok {
		_spec.SetField(tokenusagelog.FieldPromptTokens, field.TypeInt, value)
		_node.PromptTokens = value
	}
	if value, ok := _c.mutation.CompletionTokens(); ok {
		_spec.SetField(tokenusagelog.FieldCompletionTokens, field.TypeInt, value)
		_node.CompletionTokens = value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(tokenusagelog.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = value
	}
	if value, ok := _c.mutation.Cost(); ok {
		_spec.SetField(tokenusagelog.FieldCost, field.TypeFloat64, value)
		_node.Cost = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(tokenusagelog.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(tokenusagelog.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.SourceEventID(); ok {
		_spec.SetField(tokenusagelog.FieldSourceEventID, field.TypeString, value)
		_node.SourceEventID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tokenusagelog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TokenUsageLog.Create().
//		SetModel(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TokenUsageLogUpsert) {
//			SetModel(v+v).
//		}).
//		Exec(ctx)
func (_c *TokenUsageLogCreate) OnConflict(opts ...sql.ConflictOption) *TokenUsageLogUpsertOne {
	_c.conflict = opts
	return &TokenUsageLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TokenUsageLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TokenUsageLogCreate) OnConflictColumns(columns ...string) *TokenUsageLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TokenUsageLogUpsertOne{
		create: _c,
	}
}

type (
	// TokenUsageLogUpsertOne is the builder for "upsert"-ing
	//  one TokenUsageLog node.
	TokenUsageLogUpsertOne struct {
		create *TokenUsageLogCreate
	}

	// TokenUsageLogUpsert is the "OnConflict" setter.
	TokenUsageLogUpsert struct {
		*sql.UpdateSet
	}
)

// SetModel sets the "model" field.
func (u *TokenUsageLogUpsert) SetModel(v string) *TokenUsageLogUpsert {
	u.Set(tokenusagelog.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *TokenUsageLogUpsert) UpdateModel() *TokenUsageLogUpsert {
	u.SetExcluded(tokenusagelog.FieldModel)
	return u
}

// SetProvider sets the "provider" field.
func (u *TokenUsageLogUpsert) SetProvider(v string) *TokenUsageLogUpsert {
	u.Set(tokenusagelog.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *TokenUsageLogUpsert) UpdateProvider() *TokenUsageLogUpsert {
	u.SetExcluded(tokenusagelog.FieldProvider)
	return u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (u *TokenUsageLogUpsert) SetPromptTokens(v int) *TokenUsageLogUpsert {
	u.Set(tokenusagelog.FieldPromptTokens, v)
	return u
}

// UpdatePromptTokens sets the "prompt_tokens" field to the value that was provided on create.
func (u *TokenUsageLogUpsert) UpdatePromptTokens() *TokenUsageLogUpsert {
	u.SetExcluded(tokenusagelog.FieldPromptTokens)
	return u
}

// AddPromptTokens adds v to the "prompt_tokens" field.
func (u *TokenUsageLogUpsert) AddPromptTokens(v int) *TokenUsageLogUpsert {
	u.Add(tokenusagelog.FieldPromptTokens, v)
	return u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (u *TokenUsageLogUpsert) SetCompletionTokens(v int) *TokenUsageLogUpsert {
	u.Set(tokenusagelog.FieldCompletionTokens, v)
	return u
}

// UpdateCompletionTokens sets the "completion_tokens" field to the value that was provided on create.
func (u *TokenUsageLogUpsert) UpdateCompletionTokens() *TokenUsageLogUpsert {
	u.SetExcluded(tokenusagelog.FieldCompletionTokens)
	return u
}

// AddCompletionTokens adds v to the "completion_tokens" field.
func (u *TokenUsageLogUpsert) AddCompletionTokens(v int) *TokenUsageLogUpsert {
	u.Add(tokenusagelog.FieldCompletionTokens, v)
	return u
}

// SetTotalTokens sets the "total_tokens" field.
func (u *TokenUsageLogUpsert) SetTotalTokens(v int) *TokenUsageLogUpsert {
	u.Set(tokenusagelog.FieldTotalTokens, v)
	return u
}

// UpdateTotalTokens sets the "total_tokens" field to the value that was provided on create.
func (u *TokenUsageLogUpsert) UpdateTotalTokens() *TokenUsageLogUpsert {
	u.SetExcluded(tokenusagelog.FieldTotalTokens)
	return u
}

// AddTotalTokens adds v to the "total_tokens" field.
func (u *TokenUsageLogUpsert) AddTotalTokens(v int) *TokenUsageLogUpsert {
	u.Add(tokenusagelog.FieldTotalTokens, v)
	return u
}

// SetCost sets the "cost" field.
func (u *TokenUsageLogUpsert) SetCost(v float64) *TokenUsageLogUpsert {
	u.Set(tokenusagelog.FieldCost, v)
	return u
}

// UpdateCost sets the "cost" field to the value that was provided on create.
func (u *TokenUsageLogUpsert) UpdateCost() *TokenUsageLogUpsert {
	u.SetExcluded(tokenusagelog.FieldCost)
	return u
}

// AddCost adds v to the "cost" field.
func (u *TokenUsageLogUpsert) AddCost(v float64) *TokenUsageLogUpsert {
	u.Add(tokenusagelog.FieldCost, v)
	return u
}

// SetSource sets the "source" field.
func (u *TokenUsageLogUpsert) SetSource(v tokenusagelog.Source) *TokenUsageLogUpsert {
	u.Set(tokenusagelog.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *TokenUsageLogUpsert) UpdateSource() *TokenUsageLogUpsert {
	u.SetExcluded(tokenusagelog.FieldSource)
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *TokenUsageLogUpsert) SetAgentID(v string) *TokenUsageLogUpsert {
	u.Set(tokenusagelog.FieldAgentID, v)
	return u
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *TokenUsageLogUpsert) UpdateAgentID() *TokenUsageLogUpsert {
	u.SetExcluded(tokenusagelog.FieldAgentID)
	return u
}

// ClearAgentID clears the value of the "agent_id" field.
func (u *TokenUsageLogUpsert) ClearAgentID() *TokenUsageLogUpsert {
	u.SetNull(tokenusagelog.FieldAgentID)
	return u
}

// SetSourceEventID sets the "source_event_id" field.
func (u *TokenUsageLogUpsert) SetSourceEventID(v string) *TokenUsageLogUpsert {
	u.Set(tokenusagelog.FieldSourceEventID, v)
	return u
}

// UpdateSourceEventID sets the "source_event_id" field to the value that was provided on create.
func (u *TokenUsageLogUpsert) UpdateSourceEventID() *TokenUsageLogUpsert {
	u.SetExcluded(tokenusagelog.FieldSourceEventID)
	return u
}

// ClearSourceEventID clears the value of the "source_event_id" field.
func (u *TokenUsageLogUpsert) ClearSourceEventID() *TokenUsageLogUpsert {
	u.SetNull(tokenusagelog.FieldSourceEventID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TokenUsageLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(tokenusagelog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TokenUsageLogUpsertOne) UpdateNewValues() *TokenUsageLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(tokenusagelog.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(tokenusagelog.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TokenUsageLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TokenUsageLogUpsertOne) Ignore() *TokenUsageLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TokenUsageLogUpsertOne) DoNothing() *TokenUsageLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TokenUsageLogCreate.OnConflict
// documentation for more info.
func (u *TokenUsageLogUpsertOne) Update(set func(*TokenUsageLogUpsert)) *TokenUsageLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TokenUsageLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetModel sets the "model" field.
func (u *TokenUsageLogUpsertOne) SetModel(v string) *TokenUsageLogUpsertOne {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *TokenUsageLogUpsertOne) UpdateModel() *TokenUsageLogUpsertOne {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.UpdateModel()
	})
}

// SetProvider sets the "provider" field.
func (u *TokenUsageLogUpsertOne) SetProvider(v string) *TokenUsageLogUpsertOne {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *TokenUsageLogUpsertOne) UpdateProvider() *TokenUsageLogUpsertOne {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.UpdateProvider()
	})
}

// SetPromptTokens sets the "prompt_tokens" field.
func (u *TokenUsageLogUpsertOne) SetPromptTokens(v int) *TokenUsageLogUpsertOne {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.SetPromptTokens(v)
	})
}

// AddPromptTokens adds v to the "prompt_tokens" field.
func (u *TokenUsageLogUpsertOne) AddPromptTokens(v int) *TokenUsageLogUpsertOne {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.AddPromptTokens(v)
	})
}

// UpdatePromptTokens sets the "prompt_tokens" field to the value that was provided on create.
func (u *TokenUsageLogUpsertOne) UpdatePromptTokens() *TokenUsageLogUpsertOne {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.UpdatePromptTokens()
	})
}

// SetCompletionTokens sets the "completion_tokens" field.
func (u *TokenUsageLogUpsertOne) SetCompletionTokens(v int) *TokenUsageLogUpsertOne {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.SetCompletionTokens(v)
	})
}

// AddCompletionTokens adds v to the "completion_tokens" field.
func (u *TokenUsageLogUpsertOne) AddCompletionTokens(v int) *TokenUsageLogUpsertOne {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.AddCompletionTokens(v)
	})
}

// UpdateCompletionTokens sets the "completion_tokens" field to the value that was provided on create.
func (u *TokenUsageLogUpsertOne) UpdateCompletionTokens() *TokenUsageLogUpsertOne {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.UpdateCompletionTokens()
	})
}

// SetTotalTokens sets the "total_tokens" field.
func (u *TokenUsageLogUpsertOne) SetTotalTokens(v int) *TokenUsageLogUpsertOne {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.SetTotalTokens(v)
	})
}

// AddTotalTokens adds v to the "total_tokens" field.
func (u *TokenUsageLogUpsertOne) AddTotalTokens(v int) *TokenUsageLogUpsertOne {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.AddTotalTokens(v)
	})
}

// UpdateTotalTokens sets the "total_tokens" field to the value that was provided on create.
func (u *TokenUsageLogUpsertOne) UpdateTotalTokens() *TokenUsageLogUpsertOne {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.UpdateTotalTokens()
	})
}

// SetCost sets the "cost" field.
func (u *TokenUsageLogUpsertOne) SetCost(v float64) *TokenUsageLogUpsertOne {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.SetCost(v)
	})
}

// AddCost adds v to the "cost" field.
func (u *TokenUsageLogUpsertOne) AddCost(v float64) *TokenUsageLogUpsertOne {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.AddCost(v)
	})
}

// UpdateCost sets the "cost" field to the value that was provided on create.
func (u *TokenUsageLogUpsertOne) UpdateCost() *TokenUsageLogUpsertOne {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.UpdateCost()
	})
}

// SetSource sets the "source" field.
func (u *TokenUsageLogUpsertOne) SetSource(v tokenusagelog.Source) *TokenUsageLogUpsertOne {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *TokenUsageLogUpsertOne) UpdateSource() *TokenUsageLogUpsertOne {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.UpdateSource()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *TokenUsageLogUpsertOne) SetAgentID(v string) *TokenUsageLogUpsertOne {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *TokenUsageLogUpsertOne) UpdateAgentID() *TokenUsageLogUpsertOne {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.UpdateAgentID()
	})
}

// ClearAgentID clears the value of the "agent_id" field.
func (u *TokenUsageLogUpsertOne) ClearAgentID() *TokenUsageLogUpsertOne {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.ClearAgentID()
	})
}

// SetSourceEventID sets the "source_event_id" field.
func (u *TokenUsageLogUpsertOne) SetSourceEventID(v string) *TokenUsageLogUpsertOne {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.SetSourceEventID(v)
	})
}

// UpdateSourceEventID sets the "source_event_id" field to the value that was provided on create.
func (u *TokenUsageLogUpsertOne) UpdateSourceEventID() *TokenUsageLogUpsertOne {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.UpdateSourceEventID()
	})
}

// ClearSourceEventID clears the value of the "source_event_id" field.
func (u *TokenUsageLogUpsertOne) ClearSourceEventID() *TokenUsageLogUpsertOne {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.ClearSourceEventID()
	})
}

// Exec executes the query.
func (u *TokenUsageLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TokenUsageLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TokenUsageLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TokenUsageLogUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TokenUsageLogUpsertOne.ID is not supported by MySQL driver. Use TokenUsageLogUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TokenUsageLogUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TokenUsageLogCreateBulk is the builder for creating many TokenUsageLog entities in bulk.
type TokenUsageLogCreateBulk struct {
	config
	err      error
	builders []*TokenUsageLogCreate
	conflict []sql.ConflictOption
}

// Save creates the TokenUsageLog entities in the database.
func (_c *TokenUsageLogCreateBulk) Save(ctx context.Context) ([]*TokenUsageLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TokenUsageLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TokenUsageLogMutation)
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
func (_c *TokenUsageLogCreateBulk) SaveX(ctx context.Context) []*TokenUsageLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TokenUsageLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TokenUsageLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TokenUsageLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TokenUsageLogUpsert) {
//			SetModel(v+v).
//		}).
//		Exec(ctx)
func (_c *TokenUsageLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *TokenUsageLogUpsertBulk {
	_c.conflict = opts
	return &TokenUsageLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TokenUsageLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TokenUsageLogCreateBulk) OnConflictColumns(columns ...string) *TokenUsageLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TokenUsageLogUpsertBulk{
		create: _c,
	}
}

// TokenUsageLogUpsertBulk is the builder for "upsert"-ing
// a bulk of TokenUsageLog nodes.
type TokenUsageLogUpsertBulk struct {
	create *TokenUsageLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TokenUsageLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(tokenusagelog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TokenUsageLogUpsertBulk) UpdateNewValues() *TokenUsageLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(tokenusagelog.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(tokenusagelog.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TokenUsageLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TokenUsageLogUpsertBulk) Ignore() *TokenUsageLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TokenUsageLogUpsertBulk) DoNothing() *TokenUsageLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TokenUsageLogCreateBulk.OnConflict
// documentation for more info.
func (u *TokenUsageLogUpsertBulk) Update(set func(*TokenUsageLogUpsert)) *TokenUsageLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TokenUsageLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetModel sets the "model" field.
func (u *TokenUsageLogUpsertBulk) SetModel(v string) *TokenUsageLogUpsertBulk {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *TokenUsageLogUpsertBulk) UpdateModel() *TokenUsageLogUpsertBulk {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.UpdateModel()
	})
}

// SetProvider sets the "provider" field.
func (u *TokenUsageLogUpsertBulk) SetProvider(v string) *TokenUsageLogUpsertBulk {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *TokenUsageLogUpsertBulk) UpdateProvider() *TokenUsageLogUpsertBulk {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.UpdateProvider()
	})
}

// SetPromptTokens sets the "prompt_tokens" field.
func (u *TokenUsageLogUpsertBulk) SetPromptTokens(v int) *TokenUsageLogUpsertBulk {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.SetPromptTokens(v)
	})
}

// AddPromptTokens adds v to the "prompt_tokens" field.
func (u *TokenUsageLogUpsertBulk) AddPromptTokens(v int) *TokenUsageLogUpsertBulk {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.AddPromptTokens(v)
	})
}

// UpdatePromptTokens sets the "prompt_tokens" field to the value that was provided on create.
func (u *TokenUsageLogUpsertBulk) UpdatePromptTokens() *TokenUsageLogUpsertBulk {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.UpdatePromptTokens()
	})
}

// SetCompletionTokens sets the "completion_tokens" field.
func (u *TokenUsageLogUpsertBulk) SetCompletionTokens(v int) *TokenUsageLogUpsertBulk {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.SetCompletionTokens(v)
	})
}

// AddCompletionTokens adds v to the "completion_tokens" field.
func (u *TokenUsageLogUpsertBulk) AddCompletionTokens(v int) *TokenUsageLogUpsertBulk {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.AddCompletionTokens(v)
	})
}

// UpdateCompletionTokens sets the "completion_tokens" field to the value that was provided on create.
func (u *TokenUsageLogUpsertBulk) UpdateCompletionTokens() *TokenUsageLogUpsertBulk {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.UpdateCompletionTokens()
	})
}

// SetTotalTokens sets the "total_tokens" field.
func (u *TokenUsageLogUpsertBulk) SetTotalTokens(v int) *TokenUsageLogUpsertBulk {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.SetTotalTokens(v)
	})
}

// AddTotalTokens adds v to the "total_tokens" field.
func (u *TokenUsageLogUpsertBulk) AddTotalTokens(v int) *TokenUsageLogUpsertBulk {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.AddTotalTokens(v)
	})
}

// UpdateTotalTokens sets the "total_tokens" field to the value that was provided on create.
func (u *TokenUsageLogUpsertBulk) UpdateTotalTokens() *TokenUsageLogUpsertBulk {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.UpdateTotalTokens()
	})
}

// SetCost sets the "cost" field.
func (u *TokenUsageLogUpsertBulk) SetCost(v float64) *TokenUsageLogUpsertBulk {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.SetCost(v)
	})
}

// AddCost adds v to the "cost" field.
func (u *TokenUsageLogUpsertBulk) AddCost(v float64) *TokenUsageLogUpsertBulk {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.AddCost(v)
	})
}

// UpdateCost sets the "cost" field to the value that was provided on create.
func (u *TokenUsageLogUpsertBulk) UpdateCost() *TokenUsageLogUpsertBulk {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.UpdateCost()
	})
}

// SetSource sets the "source" field.
func (u *TokenUsageLogUpsertBulk) SetSource(v tokenusagelog.Source) *TokenUsageLogUpsertBulk {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *TokenUsageLogUpsertBulk) UpdateSource() *TokenUsageLogUpsertBulk {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.UpdateSource()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *TokenUsageLogUpsertBulk) SetAgentID(v string) *TokenUsageLogUpsertBulk {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *TokenUsageLogUpsertBulk) UpdateAgentID() *TokenUsageLogUpsertBulk {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.UpdateAgentID()
	})
}

// ClearAgentID clears the value of the "agent_id" field.
func (u *TokenUsageLogUpsertBulk) ClearAgentID() *TokenUsageLogUpsertBulk {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.ClearAgentID()
	})
}

// SetSourceEventID sets the "source_event_id" field.
func (u *TokenUsageLogUpsertBulk) SetSourceEventID(v string) *TokenUsageLogUpsertBulk {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.SetSourceEventID(v)
	})
}

// UpdateSourceEventID sets the "source_event_id" field to the value that was provided on create.
func (u *TokenUsageLogUpsertBulk) UpdateSourceEventID() *TokenUsageLogUpsertBulk {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.UpdateSourceEventID()
	})
}

// ClearSourceEventID clears the value of the "source_event_id" field.
func (u *TokenUsageLogUpsertBulk) ClearSourceEventID() *TokenUsageLogUpsertBulk {
	return u.Update(func(s *TokenUsageLogUpsert) {
		s.ClearSourceEventID()
	})
}

// Exec executes the query.
func (u *TokenUsageLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TokenUsageLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TokenUsageLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TokenUsageLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
