// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/redditart/commissioner/ent/predicate"
	"github.com/redditart/commissioner/ent/subredditgoal"
)

// SubredditGoalUpdate is the builder for updating SubredditGoal entities.
type SubredditGoalUpdate struct {
	config
	hooks    []Hook
	mutation *SubredditGoalMutation
}

// Where appends a list predicates to the SubredditGoalUpdate builder.
func (_u *SubredditGoalUpdate) Where(ps ...predicate.SubredditGoal) *SubredditGoalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGoalAmount sets the "goal_amount" field.
func (_u *SubredditGoalUpdate) SetGoalAmount(v int64) *SubredditGoalUpdate {
	_u.mutation.ResetGoalAmount()
	_u.mutation.SetGoalAmount(v)
	return _u
}

// SetNillableGoalAmount sets the "goal_amount" field if the given value is not nil.
func (_u *SubredditGoalUpdate) SetNillableGoalAmount(v *int64) *SubredditGoalUpdate {
	if v != nil {
		_u.SetGoalAmount(*v)
	}
	return _u
}

// AddGoalAmount adds value to the "goal_amount" field.
func (_u *SubredditGoalUpdate) AddGoalAmount(v int64) *SubredditGoalUpdate {
	_u.mutation.AddGoalAmount(v)
	return _u
}

// SetCurrentAmount sets the "current_amount" field.
func (_u *SubredditGoalUpdate) SetCurrentAmount(v int64) *SubredditGoalUpdate {
	_u.mutation.ResetCurrentAmount()
	_u.mutation.SetCurrentAmount(v)
	return _u
}

// SetNillableCurrentAmount sets the "current_amount" field if the given value is not nil.
func (_u *SubredditGoalUpdate) SetNillableCurrentAmount(v *int64) *SubredditGoalUpdate {
	if v != nil {
		_u.SetCurrentAmount(*v)
	}
	return _u
}

// AddCurrentAmount adds value to the "current_amount" field.
func (_u *SubredditGoalUpdate) AddCurrentAmount(v int64) *SubredditGoalUpdate {
	_u.mutation.AddCurrentAmount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubredditGoalUpdate) SetStatus(v subredditgoal.Status) *SubredditGoalUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubredditGoalUpdate) SetNillableStatus(v *subredditgoal.Status) *SubredditGoalUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SubredditGoalUpdate) SetCompletedAt(v time.Time) *SubredditGoalUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SubredditGoalUpdate) SetNillableCompletedAt(v *time.Time) *SubredditGoalUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SubredditGoalUpdate) ClearCompletedAt() *SubredditGoalUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubredditGoalUpdate) SetUpdatedAt(v time.Time) *SubredditGoalUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SubredditGoalMutation object of the builder.
func (_u *SubredditGoalUpdate) Mutation() *SubredditGoalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubredditGoalUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubredditGoalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubredditGoalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubredditGoalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubredditGoalUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subredditgoal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubredditGoalUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := subredditgoal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SubredditGoal.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SubredditGoalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subredditgoal.Table, subredditgoal.Columns, sqlgraph.NewFieldSpec(subredditgoal.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GoalAmount(); ok {
		_spec.SetField(subredditgoal.FieldGoalAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedGoalAmount(); ok {
		_spec.AddField(subredditgoal.FieldGoalAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CurrentAmount(); ok {
		_spec.SetField(subredditgoal.FieldCurrentAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCurrentAmount(); ok {
		_spec.AddField(subredditgoal.FieldCurrentAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(subredditgoal.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(subredditgoal.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(subredditgoal.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subredditgoal.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subredditgoal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubredditGoalUpdateOne is the builder for updating a single SubredditGoal entity.
type SubredditGoalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubredditGoalMutation
}

// SetGoalAmount sets the "goal_amount" field.
func (_u *SubredditGoalUpdateOne) SetGoalAmount(v int64) *SubredditGoalUpdateOne {
	_u.mutation.ResetGoalAmount()
	_u.mutation.SetGoalAmount(v)
	return _u
}

// SetNillableGoalAmount sets the "goal_amount" field if the given value is not nil.
func (_u *SubredditGoalUpdateOne) SetNillableGoalAmount(v *int64) *SubredditGoalUpdateOne {
	if v != nil {
		_u.SetGoalAmount(*v)
	}
	return _u
}

// AddGoalAmount adds value to the "goal_amount" field.
func (_u *SubredditGoalUpdateOne) AddGoalAmount(v int64) *SubredditGoalUpdateOne {
	_u.mutation.AddGoalAmount(v)
	return _u
}

// SetCurrentAmount sets the "current_amount" field.
func (_u *SubredditGoalUpdateOne) SetCurrentAmount(v int64) *SubredditGoalUpdateOne {
	_u.mutation.ResetCurrentAmount()
	_u.mutation.SetCurrentAmount(v)
	return _u
}

// SetNillableCurrentAmount sets the "current_amount" field if the given value is not nil.
func (_u *SubredditGoalUpdateOne) SetNillableCurrentAmount(v *int64) *SubredditGoalUpdateOne {
	if v != nil {
		_u.SetCurrentAmount(*v)
	}
	return _u
}

// AddCurrentAmount adds value to the "current_amount" field.
func (_u *SubredditGoalUpdateOne) AddCurrentAmount(v int64) *SubredditGoalUpdateOne {
	_u.mutation.AddCurrentAmount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubredditGoalUpdateOne) SetStatus(v subredditgoal.Status) *SubredditGoalUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubredditGoalUpdateOne) SetNillableStatus(v *subredditgoal.Status) *SubredditGoalUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SubredditGoalUpdateOne) SetCompletedAt(v time.Time) *SubredditGoalUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SubredditGoalUpdateOne) SetNillableCompletedAt(v *time.Time) *SubredditGoalUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SubredditGoalUpdateOne) ClearCompletedAt() *SubredditGoalUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubredditGoalUpdateOne) SetUpdatedAt(v time.Time) *SubredditGoalUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SubredditGoalMutation object of the builder.
func (_u *SubredditGoalUpdateOne) Mutation() *SubredditGoalMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubredditGoalUpdate builder.
func (_u *SubredditGoalUpdateOne) Where(ps ...predicate.SubredditGoal) *SubredditGoalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubredditGoalUpdateOne) Select(field string, fields ...string) *SubredditGoalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SubredditGoal entity.
func (_u *SubredditGoalUpdateOne) Save(ctx context.Context) (*SubredditGoal, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubredditGoalUpdateOne) SaveX(ctx context.Context) *SubredditGoal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubredditGoalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubredditGoalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubredditGoalUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subredditgoal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubredditGoalUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := subredditgoal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SubredditGoal.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SubredditGoalUpdateOne) sqlSave(ctx context.Context) (_node *SubredditGoal, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subredditgoal.Table, subredditgoal.Columns, sqlgraph.NewFieldSpec(subredditgoal.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubredditGoal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subredditgoal.FieldID)
		for _, f := range fields {
			if !subredditgoal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subredditgoal.FieldID {
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
	if value, ok := _u.mutation.GoalAmount(); ok {
		_spec.SetField(subredditgoal.FieldGoalAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedGoalAmount(); ok {
		_spec.AddField(subredditgoal.FieldGoalAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CurrentAmount(); ok {
		_spec.SetField(subredditgoal.FieldCurrentAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCurrentAmount(); ok {
		_spec.AddField(subredditgoal.FieldCurrentAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(subredditgoal.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(subredditgoal.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(subredditgoal.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subredditgoal.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SubredditGoal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subredditgoal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
