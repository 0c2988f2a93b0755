// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/redditart/commissioner/ent/predicate"
	"github.com/redditart/commissioner/ent/tier"
)

// TierUpdate is the builder for updating Tier entities.
type TierUpdate struct {
	config
	hooks    []Hook
	mutation *TierMutation
}

// Where appends a list predicates to the TierUpdate builder.
func (_u *TierUpdate) Where(ps ...predicate.Tier) *TierUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMinAmount sets the "min_amount" field.
func (_u *TierUpdate) SetMinAmount(v int64) *TierUpdate {
	_u.mutation.ResetMinAmount()
	_u.mutation.SetMinAmount(v)
	return _u
}

// SetNillableMinAmount sets the "min_amount" field if the given value is not nil.
func (_u *TierUpdate) SetNillableMinAmount(v *int64) *TierUpdate {
	if v != nil {
		_u.SetMinAmount(*v)
	}
	return _u
}

// AddMinAmount adds value to the "min_amount" field.
func (_u *TierUpdate) AddMinAmount(v int64) *TierUpdate {
	_u.mutation.AddMinAmount(v)
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *TierUpdate) SetDisplayName(v string) *TierUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *TierUpdate) SetNillableDisplayName(v *string) *TierUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetColor sets the "color" field.
func (_u *TierUpdate) SetColor(v string) *TierUpdate {
	_u.mutation.SetColor(v)
	return _u
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_u *TierUpdate) SetNillableColor(v *string) *TierUpdate {
	if v != nil {
		_u.SetColor(*v)
	}
	return _u
}

// ClearColor clears the value of the "color" field.
func (_u *TierUpdate) ClearColor() *TierUpdate {
	_u.mutation.ClearColor()
	return _u
}

// SetHd sets the "hd" field.
func (_u *TierUpdate) SetHd(v bool) *TierUpdate {
	_u.mutation.SetHd(v)
	return _u
}

// SetNillableHd sets the "hd" field if the given value is not nil.
func (_u *TierUpdate) SetNillableHd(v *bool) *TierUpdate {
	if v != nil {
		_u.SetHd(*v)
	}
	return _u
}

// Mutation returns the TierMutation object of the builder.
func (_u *TierUpdate) Mutation() *TierMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TierUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TierUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TierUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TierUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TierUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(tier.Table, tier.Columns, sqlgraph.NewFieldSpec(tier.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MinAmount(); ok {
		_spec.SetField(tier.FieldMinAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedMinAmount(); ok {
		_spec.AddField(tier.FieldMinAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(tier.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Color(); ok {
		_spec.SetField(tier.FieldColor, field.TypeString, value)
	}
	if _u.mutation.ColorCleared() {
		_spec.ClearField(tier.FieldColor, field.TypeString)
	}
	if value, ok := _u.mutation.Hd(); ok {
		_spec.SetField(tier.FieldHd, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tier.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TierUpdateOne is the builder for updating a single Tier entity.
type TierUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TierMutation
}

// SetMinAmount sets the "min_amount" field.
func (_u *TierUpdateOne) SetMinAmount(v int64) *TierUpdateOne {
	_u.mutation.ResetMinAmount()
	_u.mutation.SetMinAmount(v)
	return _u
}

// SetNillableMinAmount sets the "min_amount" field if the given value is not nil.
func (_u *TierUpdateOne) SetNillableMinAmount(v *int64) *TierUpdateOne {
	if v != nil {
		_u.SetMinAmount(*v)
	}
	return _u
}

// AddMinAmount adds value to the "min_amount" field.
func (_u *TierUpdateOne) AddMinAmount(v int64) *TierUpdateOne {
	_u.mutation.AddMinAmount(v)
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *TierUpdateOne) SetDisplayName(v string) *TierUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *TierUpdateOne) SetNillableDisplayName(v *string) *TierUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetColor sets the "color" field.
func (_u *TierUpdateOne) SetColor(v string) *TierUpdateOne {
	_u.mutation.SetColor(v)
	return _u
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_u *TierUpdateOne) SetNillableColor(v *string) *TierUpdateOne {
	if v != nil {
		_u.SetColor(*v)
	}
	return _u
}

// ClearColor clears the value of the "color" field.
func (_u *TierUpdateOne) ClearColor() *TierUpdateOne {
	_u.mutation.ClearColor()
	return _u
}

// SetHd sets the "hd" field.
func (_u *TierUpdateOne) SetHd(v bool) *TierUpdateOne {
	_u.mutation.SetHd(v)
	return _u
}

// SetNillableHd sets the "hd" field if the given value is not nil.
func (_u *TierUpdateOne) SetNillableHd(v *bool) *TierUpdateOne {
	if v != nil {
		_u.SetHd(*v)
	}
	return _u
}

// Mutation returns the TierMutation object of the builder.
func (_u *TierUpdateOne) Mutation() *TierMutation {
	return _u.mutation
}

// Where appends a list predicates to the TierUpdate builder.
func (_u *TierUpdateOne) Where(ps ...predicate.Tier) *TierUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TierUpdateOne) Select(field string, fields ...string) *TierUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Tier entity.
func (_u *TierUpdateOne) Save(ctx context.Context) (*Tier, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TierUpdateOne) SaveX(ctx context.Context) *Tier {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TierUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TierUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TierUpdateOne) sqlSave(ctx context.Context) (_node *Tier, err error) {
	_spec := sqlgraph.NewUpdateSpec(tier.Table, tier.Columns, sqlgraph.NewFieldSpec(tier.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Tier.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tier.FieldID)
		for _, f := range fields {
			if !tier.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tier.FieldID {
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
	if value, ok := _u.mutation.MinAmount(); ok {
		_spec.SetField(tier.FieldMinAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedMinAmount(); ok {
		_spec.AddField(tier.FieldMinAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(tier.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Color(); ok {
		_spec.SetField(tier.FieldColor, field.TypeString, value)
	}
	if _u.mutation.ColorCleared() {
		_spec.ClearField(tier.FieldColor, field.TypeString)
	}
	if value, ok := _u.mutation.Hd(); ok {
		_spec.SetField(tier.FieldHd, field.TypeBool, value)
	}
	_node = &Tier{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tier.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
