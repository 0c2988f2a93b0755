// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/redditart/commissioner/ent/agentaction"
	"github.com/redditart/commissioner/ent/predicate"
)

// AgentActionUpdate is the builder for updating AgentAction entities.
type AgentActionUpdate struct {
	config
	hooks    []Hook
	mutation *AgentActionMutation
}

// Where appends a list predicates to the AgentActionUpdate builder.
func (_u *AgentActionUpdate) Where(ps ...predicate.AgentAction) *AgentActionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRating sets the "rating" field.
func (_u *AgentActionUpdate) SetRating(v map[string]interface{}) *AgentActionUpdate {
	_u.mutation.SetRating(v)
	return _u
}

// ClearRating clears the value of the "rating" field.
func (_u *AgentActionUpdate) ClearRating() *AgentActionUpdate {
	_u.mutation.ClearRating()
	return _u
}

// Mutation returns the AgentActionMutation object of the builder.
func (_u *AgentActionUpdate) Mutation() *AgentActionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentActionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentActionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentActionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentActionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AgentActionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentaction.Table, agentaction.Columns, sqlgraph.NewFieldSpec(agentaction.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(agentaction.FieldRating, field.TypeJSON, value)
	}
	if _u.mutation.RatingCleared() {
		_spec.ClearField(agentaction.FieldRating, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentActionUpdateOne is the builder for updating a single AgentAction entity.
type AgentActionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentActionMutation
}

// SetRating sets the "rating" field.
func (_u *AgentActionUpdateOne) SetRating(v map[string]interface{}) *AgentActionUpdateOne {
	_u.mutation.SetRating(v)
	return _u
}

// ClearRating clears the value of the "rating" field.
func (_u *AgentActionUpdateOne) ClearRating() *AgentActionUpdateOne {
	_u.mutation.ClearRating()
	return _u
}

// Mutation returns the AgentActionMutation object of the builder.
func (_u *AgentActionUpdateOne) Mutation() *AgentActionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentActionUpdate builder.
func (_u *AgentActionUpdateOne) Where(ps ...predicate.AgentAction) *AgentActionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentActionUpdateOne) Select(field string, fields ...string) *AgentActionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentAction entity.
func (_u *AgentActionUpdateOne) Save(ctx context.Context) (*AgentAction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentActionUpdateOne) SaveX(ctx context.Context) *AgentAction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentActionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentActionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AgentActionUpdateOne) sqlSave(ctx context.Context) (_node *AgentAction, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentaction.Table, agentaction.Columns, sqlgraph.NewFieldSpec(agentaction.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentAction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentaction.FieldID)
		for _, f := range fields {
			if !agentaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentaction.FieldID {
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
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(agentaction.FieldRating, field.TypeJSON, value)
	}
	if _u.mutation.RatingCleared() {
		_spec.ClearField(agentaction.FieldRating, field.TypeJSON)
	}
	_node = &AgentAction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
