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
	"github.com/redditart/commissioner/ent/redditpost"
)

// RedditPostUpdate is the builder for updating RedditPost entities.
type RedditPostUpdate struct {
	config
	hooks    []Hook
	mutation *RedditPostMutation
}

// Where appends a list predicates to the RedditPostUpdate builder.
func (_u *RedditPostUpdate) Where(ps ...predicate.RedditPost) *RedditPostUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *RedditPostUpdate) SetTitle(v string) *RedditPostUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RedditPostUpdate) SetNillableTitle(v *string) *RedditPostUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *RedditPostUpdate) SetBody(v string) *RedditPostUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *RedditPostUpdate) SetNillableBody(v *string) *RedditPostUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *RedditPostUpdate) ClearBody() *RedditPostUpdate {
	_u.mutation.ClearBody()
	return _u
}

// SetScore sets the "score" field.
func (_u *RedditPostUpdate) SetScore(v int) *RedditPostUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *RedditPostUpdate) SetNillableScore(v *int) *RedditPostUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *RedditPostUpdate) AddScore(v int) *RedditPostUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetNumComments sets the "num_comments" field.
func (_u *RedditPostUpdate) SetNumComments(v int) *RedditPostUpdate {
	_u.mutation.ResetNumComments()
	_u.mutation.SetNumComments(v)
	return _u
}

// SetNillableNumComments sets the "num_comments" field if the given value is not nil.
func (_u *RedditPostUpdate) SetNillableNumComments(v *int) *RedditPostUpdate {
	if v != nil {
		_u.SetNumComments(*v)
	}
	return _u
}

// AddNumComments adds value to the "num_comments" field.
func (_u *RedditPostUpdate) AddNumComments(v int) *RedditPostUpdate {
	_u.mutation.AddNumComments(v)
	return _u
}

// SetPermalink sets the "permalink" field.
func (_u *RedditPostUpdate) SetPermalink(v string) *RedditPostUpdate {
	_u.mutation.SetPermalink(v)
	return _u
}

// SetNillablePermalink sets the "permalink" field if the given value is not nil.
func (_u *RedditPostUpdate) SetNillablePermalink(v *string) *RedditPostUpdate {
	if v != nil {
		_u.SetPermalink(*v)
	}
	return _u
}

// SetOver18 sets the "over_18" field.
func (_u *RedditPostUpdate) SetOver18(v bool) *RedditPostUpdate {
	_u.mutation.SetOver18(v)
	return _u
}

// SetNillableOver18 sets the "over_18" field if the given value is not nil.
func (_u *RedditPostUpdate) SetNillableOver18(v *bool) *RedditPostUpdate {
	if v != nil {
		_u.SetOver18(*v)
	}
	return _u
}

// SetCommentSummary sets the "comment_summary" field.
func (_u *RedditPostUpdate) SetCommentSummary(v string) *RedditPostUpdate {
	_u.mutation.SetCommentSummary(v)
	return _u
}

// SetNillableCommentSummary sets the "comment_summary" field if the given value is not nil.
func (_u *RedditPostUpdate) SetNillableCommentSummary(v *string) *RedditPostUpdate {
	if v != nil {
		_u.SetCommentSummary(*v)
	}
	return _u
}

// ClearCommentSummary clears the value of the "comment_summary" field.
func (_u *RedditPostUpdate) ClearCommentSummary() *RedditPostUpdate {
	_u.mutation.ClearCommentSummary()
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *RedditPostUpdate) SetLastUsedAt(v time.Time) *RedditPostUpdate {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *RedditPostUpdate) SetNillableLastUsedAt(v *time.Time) *RedditPostUpdate {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (_u *RedditPostUpdate) ClearLastUsedAt() *RedditPostUpdate {
	_u.mutation.ClearLastUsedAt()
	return _u
}

// Mutation returns the RedditPostMutation object of the builder.
func (_u *RedditPostUpdate) Mutation() *RedditPostMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RedditPostUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RedditPostUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RedditPostUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RedditPostUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RedditPostUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(redditpost.Table, redditpost.Columns, sqlgraph.NewFieldSpec(redditpost.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(redditpost.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(redditpost.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(redditpost.FieldBody, field.TypeString)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(redditpost.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(redditpost.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NumComments(); ok {
		_spec.SetField(redditpost.FieldNumComments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumComments(); ok {
		_spec.AddField(redditpost.FieldNumComments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Permalink(); ok {
		_spec.SetField(redditpost.FieldPermalink, field.TypeString, value)
	}
	if value, ok := _u.mutation.Over18(); ok {
		_spec.SetField(redditpost.FieldOver18, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CommentSummary(); ok {
		_spec.SetField(redditpost.FieldCommentSummary, field.TypeString, value)
	}
	if _u.mutation.CommentSummaryCleared() {
		_spec.ClearField(redditpost.FieldCommentSummary, field.TypeString)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(redditpost.FieldLastUsedAt, field.TypeTime, value)
	}
	if _u.mutation.LastUsedAtCleared() {
		_spec.ClearField(redditpost.FieldLastUsedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{redditpost.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RedditPostUpdateOne is the builder for updating a single RedditPost entity.
type RedditPostUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RedditPostMutation
}

// SetTitle sets the "title" field.
func (_u *RedditPostUpdateOne) SetTitle(v string) *RedditPostUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RedditPostUpdateOne) SetNillableTitle(v *string) *RedditPostUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *RedditPostUpdateOne) SetBody(v string) *RedditPostUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *RedditPostUpdateOne) SetNillableBody(v *string) *RedditPostUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *RedditPostUpdateOne) ClearBody() *RedditPostUpdateOne {
	_u.mutation.ClearBody()
	return _u
}

// SetScore sets the "score" field.
func (_u *RedditPostUpdateOne) SetScore(v int) *RedditPostUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *RedditPostUpdateOne) SetNillableScore(v *int) *RedditPostUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *RedditPostUpdateOne) AddScore(v int) *RedditPostUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetNumComments sets the "num_comments" field.
func (_u *RedditPostUpdateOne) SetNumComments(v int) *RedditPostUpdateOne {
	_u.mutation.ResetNumComments()
	_u.mutation.SetNumComments(v)
	return _u
}

// SetNillableNumComments sets the "num_comments" field if the given value is not nil.
func (_u *RedditPostUpdateOne) SetNillableNumComments(v *int) *RedditPostUpdateOne {
	if v != nil {
		_u.SetNumComments(*v)
	}
	return _u
}

// AddNumComments adds value to the "num_comments" field.
func (_u *RedditPostUpdateOne) AddNumComments(v int) *RedditPostUpdateOne {
	_u.mutation.AddNumComments(v)
	return _u
}

// SetPermalink sets the "permalink" field.
func (_u *RedditPostUpdateOne) SetPermalink(v string) *RedditPostUpdateOne {
	_u.mutation.SetPermalink(v)
	return _u
}

// SetNillablePermalink sets the "permalink" field if the given value is not nil.
func (_u *RedditPostUpdateOne) SetNillablePermalink(v *string) *RedditPostUpdateOne {
	if v != nil {
		_u.SetPermalink(*v)
	}
	return _u
}

// SetOver18 sets the "over_18" field.
func (_u *RedditPostUpdateOne) SetOver18(v bool) *RedditPostUpdateOne {
	_u.mutation.SetOver18(v)
	return _u
}

// SetNillableOver18 sets the "over_18" field if the given value is not nil.
func (_u *RedditPostUpdateOne) SetNillableOver18(v *bool) *RedditPostUpdateOne {
	if v != nil {
		_u.SetOver18(*v)
	}
	return _u
}

// SetCommentSummary sets the "comment_summary" field.
func (_u *RedditPostUpdateOne) SetCommentSummary(v string) *RedditPostUpdateOne {
	_u.mutation.SetCommentSummary(v)
	return _u
}

// SetNillableCommentSummary sets the "comment_summary" field if the given value is not nil.
func (_u *RedditPostUpdateOne) SetNillableCommentSummary(v *string) *RedditPostUpdateOne {
	if v != nil {
		_u.SetCommentSummary(*v)
	}
	return _u
}

// ClearCommentSummary clears the value of the "comment_summary" field.
func (_u *RedditPostUpdateOne) ClearCommentSummary() *RedditPostUpdateOne {
	_u.mutation.ClearCommentSummary()
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *RedditPostUpdateOne) SetLastUsedAt(v time.Time) *RedditPostUpdateOne {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *RedditPostUpdateOne) SetNillableLastUsedAt(v *time.Time) *RedditPostUpdateOne {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (_u *RedditPostUpdateOne) ClearLastUsedAt() *RedditPostUpdateOne {
	_u.mutation.ClearLastUsedAt()
	return _u
}

// Mutation returns the RedditPostMutation object of the builder.
func (_u *RedditPostUpdateOne) Mutation() *RedditPostMutation {
	return _u.mutation
}

// Where appends a list predicates to the RedditPostUpdate builder.
func (_u *RedditPostUpdateOne) Where(ps ...predicate.RedditPost) *RedditPostUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RedditPostUpdateOne) Select(field string, fields ...string) *RedditPostUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RedditPost entity.
func (_u *RedditPostUpdateOne) Save(ctx context.Context) (*RedditPost, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RedditPostUpdateOne) SaveX(ctx context.Context) *RedditPost {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RedditPostUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RedditPostUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RedditPostUpdateOne) sqlSave(ctx context.Context) (_node *RedditPost, err error) {
	_spec := sqlgraph.NewUpdateSpec(redditpost.Table, redditpost.Columns, sqlgraph.NewFieldSpec(redditpost.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RedditPost.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, redditpost.FieldID)
		for _, f := range fields {
			if !redditpost.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != redditpost.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(redditpost.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(redditpost.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(redditpost.FieldBody, field.TypeString)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(redditpost.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(redditpost.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NumComments(); ok {
		_spec.SetField(redditpost.FieldNumComments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumComments(); ok {
		_spec.AddField(redditpost.FieldNumComments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Permalink(); ok {
		_spec.SetField(redditpost.FieldPermalink, field.TypeString, value)
	}
	if value, ok := _u.mutation.Over18(); ok {
		_spec.SetField(redditpost.FieldOver18, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CommentSummary(); ok {
		_spec.SetField(redditpost.FieldCommentSummary, field.TypeString, value)
	}
	if _u.mutation.CommentSummaryCleared() {
		_spec.ClearField(redditpost.FieldCommentSummary, field.TypeString)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(redditpost.FieldLastUsedAt, field.TypeTime, value)
	}
	if _u.mutation.LastUsedAtCleared() {
		_spec.ClearField(redditpost.FieldLastUsedAt, field.TypeTime)
	}
	_node = &RedditPost{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{redditpost.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
