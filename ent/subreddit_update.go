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
	"github.com/redditart/commissioner/ent/subreddit"
)

// SubredditUpdate is the builder for updating Subreddit entities.
type SubredditUpdate struct {
	config
	hooks    []Hook
	mutation *SubredditMutation
}

// Where appends a list predicates to the SubredditUpdate builder.
func (_u *SubredditUpdate) Where(ps ...predicate.Subreddit) *SubredditUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *SubredditUpdate) SetDisplayName(v string) *SubredditUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *SubredditUpdate) SetNillableDisplayName(v *string) *SubredditUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetOver18 sets the "over_18" field.
func (_u *SubredditUpdate) SetOver18(v bool) *SubredditUpdate {
	_u.mutation.SetOver18(v)
	return _u
}

// SetNillableOver18 sets the "over_18" field if the given value is not nil.
func (_u *SubredditUpdate) SetNillableOver18(v *bool) *SubredditUpdate {
	if v != nil {
		_u.SetOver18(*v)
	}
	return _u
}

// Mutation returns the SubredditMutation object of the builder.
func (_u *SubredditUpdate) Mutation() *SubredditMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubredditUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubredditUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubredditUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubredditUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SubredditUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(subreddit.Table, subreddit.Columns, sqlgraph.NewFieldSpec(subreddit.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(subreddit.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Over18(); ok {
		_spec.SetField(subreddit.FieldOver18, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subreddit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubredditUpdateOne is the builder for updating a single Subreddit entity.
type SubredditUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubredditMutation
}

// SetDisplayName sets the "display_name" field.
func (_u *SubredditUpdateOne) SetDisplayName(v string) *SubredditUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *SubredditUpdateOne) SetNillableDisplayName(v *string) *SubredditUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetOver18 sets the "over_18" field.
func (_u *SubredditUpdateOne) SetOver18(v bool) *SubredditUpdateOne {
	_u.mutation.SetOver18(v)
	return _u
}

// SetNillableOver18 sets the "over_18" field if the given value is not nil.
func (_u *SubredditUpdateOne) SetNillableOver18(v *bool) *SubredditUpdateOne {
	if v != nil {
		_u.SetOver18(*v)
	}
	return _u
}

// Mutation returns the SubredditMutation object of the builder.
func (_u *SubredditUpdateOne) Mutation() *SubredditMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubredditUpdate builder.
func (_u *SubredditUpdateOne) Where(ps ...predicate.Subreddit) *SubredditUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubredditUpdateOne) Select(field string, fields ...string) *SubredditUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Subreddit entity.
func (_u *SubredditUpdateOne) Save(ctx context.Context) (*Subreddit, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubredditUpdateOne) SaveX(ctx context.Context) *Subreddit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubredditUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubredditUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SubredditUpdateOne) sqlSave(ctx context.Context) (_node *Subreddit, err error) {
	_spec := sqlgraph.NewUpdateSpec(subreddit.Table, subreddit.Columns, sqlgraph.NewFieldSpec(subreddit.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Subreddit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subreddit.FieldID)
		for _, f := range fields {
			if !subreddit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subreddit.FieldID {
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
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(subreddit.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Over18(); ok {
		_spec.SetField(subreddit.FieldOver18, field.TypeBool, value)
	}
	_node = &Subreddit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subreddit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
