// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/elliotbonneville/silt/ent/predicate"
	"github.com/elliotbonneville/silt/ent/tokenusagelog"
)

// TokenUsageLogDelete is the builder for deleting a TokenUsageLog entity.
type TokenUsageLogDelete struct {
	config
	hooks    []Hook
	mutation *TokenUsageLogMutation
}

// Where appends a list predicates to the TokenUsageLogDelete builder.
func (_d *TokenUsageLogDelete) Where(ps ...predicate.TokenUsageLog) *TokenUsageLogDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *TokenUsageLogDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TokenUsageLogDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *TokenUsageLogDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(tokenusagelog.Table, sqlgraph.NewFieldSpec(tokenusagelog.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// TokenUsageLogDeleteOne is the builder for deleting a single TokenUsageLog entity.
type TokenUsageLogDeleteOne struct {
	_d *TokenUsageLogDelete
}

// Where appends a list predicates to the TokenUsageLogDelete builder.
func (_d *TokenUsageLogDeleteOne) Where(ps ...predicate.TokenUsageLog) *TokenUsageLogDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *TokenUsageLogDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{tokenusagelog.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TokenUsageLogDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
