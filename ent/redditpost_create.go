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
	"github.com/redditart/commissioner/ent/redditpost"
)

// RedditPostCreate is the builder for creating a RedditPost entity.
type RedditPostCreate struct {
	config
	mutation *RedditPostMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSubreddit sets the "subreddit" field.
func (_c *RedditPostCreate) SetSubreddit(v string) *RedditPostCreate {
	_c.mutation.SetSubreddit(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *RedditPostCreate) SetTitle(v string) *RedditPostCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *RedditPostCreate) SetBody(v string) *RedditPostCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_c *RedditPostCreate) SetNillableBody(v *string) *RedditPostCreate {
	if v != nil {
		_c.SetBody(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *RedditPostCreate) SetScore(v int) *RedditPostCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *RedditPostCreate) SetNillableScore(v *int) *RedditPostCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetNumComments sets the "num_comments" field.
func (_c *RedditPostCreate) SetNumComments(v int) *RedditPostCreate {
	_c.mutation.SetNumComments(v)
	return _c
}

// SetNillableNumComments sets the "num_comments" field if the given value is not nil.
func (_c *RedditPostCreate) SetNillableNumComments(v *int) *RedditPostCreate {
	if v != nil {
		_c.SetNumComments(*v)
	}
	return _c
}

// SetPermalink sets the "permalink" field.
func (_c *RedditPostCreate) SetPermalink(v string) *RedditPostCreate {
	_c.mutation.SetPermalink(v)
	return _c
}

// SetOver18 sets the "over_18" field.
func (_c *RedditPostCreate) SetOver18(v bool) *RedditPostCreate {
	_c.mutation.SetOver18(v)
	return _c
}

// SetNillableOver18 sets the "over_18" field if the given value is not nil.
func (_c *RedditPostCreate) SetNillableOver18(v *bool) *RedditPostCreate {
	if v != nil {
		_c.SetOver18(*v)
	}
	return _c
}

// SetCommentSummary sets the "comment_summary" field.
func (_c *RedditPostCreate) SetCommentSummary(v string) *RedditPostCreate {
	_c.mutation.SetCommentSummary(v)
	return _c
}

// SetNillableCommentSummary sets the "comment_summary" field if the given value is not nil.
func (_c *RedditPostCreate) SetNillableCommentSummary(v *string) *RedditPostCreate {
	if v != nil {
		_c.SetCommentSummary(*v)
	}
	return _c
}

// SetLastUsedAt sets the "last_used_at" field.
func (_c *RedditPostCreate) SetLastUsedAt(v time.Time) *RedditPostCreate {
	_c.mutation.SetLastUsedAt(v)
	return _c
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_c *RedditPostCreate) SetNillableLastUsedAt(v *time.Time) *RedditPostCreate {
	if v != nil {
		_c.SetLastUsedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RedditPostCreate) SetCreatedAt(v time.Time) *RedditPostCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RedditPostCreate) SetNillableCreatedAt(v *time.Time) *RedditPostCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RedditPostCreate) SetID(v string) *RedditPostCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RedditPostMutation object of the builder.
func (_c *RedditPostCreate) Mutation() *RedditPostMutation {
	return _c.mutation
}

// Save creates the RedditPost in the database.
func (_c *RedditPostCreate) Save(ctx context.Context) (*RedditPost, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RedditPostCreate) SaveX(ctx context.Context) *RedditPost {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RedditPostCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RedditPostCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RedditPostCreate) defaults() {
	if _, ok := _c.mutation.Score(); !ok {
		v := redditpost.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.NumComments(); !ok {
		v := redditpost.DefaultNumComments
		_c.mutation.SetNumComments(v)
	}
	if _, ok := _c.mutation.Over18(); !ok {
		v := redditpost.DefaultOver18
		_c.mutation.SetOver18(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := redditpost.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RedditPostCreate) check() error {
	if _, ok := _c.mutation.Subreddit(); !ok {
		return &ValidationError{Name: "subreddit", err: errors.New(`ent: missing required field "RedditPost.subreddit"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "RedditPost.title"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "RedditPost.score"`)}
	}
	if _, ok := _c.mutation.NumComments(); !ok {
		return &ValidationError{Name: "num_comments", err: errors.New(`ent: missing required field "RedditPost.num_comments"`)}
	}
	if _, ok := _c.mutation.Permalink(); !ok {
		return &ValidationError{Name: "permalink", err: errors.New(`ent: missing required field "RedditPost.permalink"`)}
	}
	if _, ok := _c.mutation.Over18(); !ok {
		return &ValidationError{Name: "over_18", err: errors.New(`ent: missing required field "RedditPost.over_18"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RedditPost.created_at"`)}
	}
	return nil
}

func (_c *RedditPostCreate) sqlSave(ctx context.Context) (*RedditPost, error) {
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
			return nil, fmt.Errorf("unexpected RedditPost.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RedditPostCreate) createSpec() (*RedditPost, *sqlgraph.CreateSpec) {
	var (
		_node = &RedditPost{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(redditpost.Table, sqlgraph.NewFieldSpec(redditpost.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Subreddit(); ok {
		_spec.SetField(redditpost.FieldSubreddit, field.TypeString, value)
		_node.Subreddit = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(redditpost.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(redditpost.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(redditpost.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.NumComments(); ok {
		_spec.SetField(redditpost.FieldNumComments, field.TypeInt, value)
		_node.NumComments = value
	}
	if value, ok := _c.mutation.Permalink(); ok {
		_spec.SetField(redditpost.FieldPermalink, field.TypeString, value)
		_node.Permalink = value
	}
	if value, ok := _c.mutation.Over18(); ok {
		_spec.SetField(redditpost.FieldOver18, field.TypeBool, value)
		_node.Over18 = value
	}
	if value, ok := _c.mutation.CommentSummary(); ok {
		_spec.SetField(redditpost.FieldCommentSummary, field.TypeString, value)
		_node.CommentSummary = &value
	}
	if value, ok := _c.mutation.LastUsedAt(); ok {
		_spec.SetField(redditpost.FieldLastUsedAt, field.TypeTime, value)
		_node.LastUsedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(redditpost.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RedditPost.Create().
//		SetSubreddit(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RedditPostUpsert) {
//			SetSubreddit(v+v).
//		}).
//		Exec(ctx)
func (_c *RedditPostCreate) OnConflict(opts ...sql.ConflictOption) *RedditPostUpsertOne {
	_c.conflict = opts
	return &RedditPostUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RedditPost.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RedditPostCreate) OnConflictColumns(columns ...string) *RedditPostUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RedditPostUpsertOne{
		create: _c,
	}
}

type (
	// RedditPostUpsertOne is the builder for "upsert"-ing
	//  one RedditPost node.
	RedditPostUpsertOne struct {
		create *RedditPostCreate
	}

	// RedditPostUpsert is the "OnConflict" setter.
	RedditPostUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *RedditPostUpsert) SetTitle(v string) *RedditPostUpsert {
	u.Set(redditpost.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *RedditPostUpsert) UpdateTitle() *RedditPostUpsert {
	u.SetExcluded(redditpost.FieldTitle)
	return u
}

// SetBody sets the "body" field.
func (u *RedditPostUpsert) SetBody(v string) *RedditPostUpsert {
	u.Set(redditpost.FieldBody, v)
	return u
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *RedditPostUpsert) UpdateBody() *RedditPostUpsert {
	u.SetExcluded(redditpost.FieldBody)
	return u
}

// ClearBody clears the value of the "body" field.
func (u *RedditPostUpsert) ClearBody() *RedditPostUpsert {
	u.SetNull(redditpost.FieldBody)
	return u
}

// SetScore sets the "score" field.
func (u *RedditPostUpsert) SetScore(v int) *RedditPostUpsert {
	u.Set(redditpost.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *RedditPostUpsert) UpdateScore() *RedditPostUpsert {
	u.SetExcluded(redditpost.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *RedditPostUpsert) AddScore(v int) *RedditPostUpsert {
	u.Add(redditpost.FieldScore, v)
	return u
}

// SetNumComments sets the "num_comments" field.
func (u *RedditPostUpsert) SetNumComments(v int) *RedditPostUpsert {
	u.Set(redditpost.FieldNumComments, v)
	return u
}

// UpdateNumComments sets the "num_comments" field to the value that was provided on create.
func (u *RedditPostUpsert) UpdateNumComments() *RedditPostUpsert {
	u.SetExcluded(redditpost.FieldNumComments)
	return u
}

// AddNumComments adds v to the "num_comments" field.
func (u *RedditPostUpsert) AddNumComments(v int) *RedditPostUpsert {
	u.Add(redditpost.FieldNumComments, v)
	return u
}

// SetPermalink sets the "permalink" field.
func (u *RedditPostUpsert) SetPermalink(v string) *RedditPostUpsert {
	u.Set(redditpost.FieldPermalink, v)
	return u
}

// UpdatePermalink sets the "permalink" field to the value that was provided on create.
func (u *RedditPostUpsert) UpdatePermalink() *RedditPostUpsert {
	u.SetExcluded(redditpost.FieldPermalink)
	return u
}

// SetOver18 sets the "over_18" field.
func (u *RedditPostUpsert) SetOver18(v bool) *RedditPostUpsert {
	u.Set(redditpost.FieldOver18, v)
	return u
}

// UpdateOver18 sets the "over_18" field to the value that was provided on create.
func (u *RedditPostUpsert) UpdateOver18() *RedditPostUpsert {
	u.SetExcluded(redditpost.FieldOver18)
	return u
}

// SetCommentSummary sets the "comment_summary" field.
func (u *RedditPostUpsert) SetCommentSummary(v string) *RedditPostUpsert {
	u.Set(redditpost.FieldCommentSummary, v)
	return u
}

// UpdateCommentSummary sets the "comment_summary" field to the value that was provided on create.
func (u *RedditPostUpsert) UpdateCommentSummary() *RedditPostUpsert {
	u.SetExcluded(redditpost.FieldCommentSummary)
	return u
}

// ClearCommentSummary clears the value of the "comment_summary" field.
func (u *RedditPostUpsert) ClearCommentSummary() *RedditPostUpsert {
	u.SetNull(redditpost.FieldCommentSummary)
	return u
}

// SetLastUsedAt sets the "last_used_at" field.
func (u *RedditPostUpsert) SetLastUsedAt(v time.Time) *RedditPostUpsert {
	u.Set(redditpost.FieldLastUsedAt, v)
	return u
}

// UpdateLastUsedAt sets the "last_used_at" field to the value that was provided on create.
func (u *RedditPostUpsert) UpdateLastUsedAt() *RedditPostUpsert {
	u.SetExcluded(redditpost.FieldLastUsedAt)
	return u
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (u *RedditPostUpsert) ClearLastUsedAt() *RedditPostUpsert {
	u.SetNull(redditpost.FieldLastUsedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RedditPost.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(redditpost.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RedditPostUpsertOne) UpdateNewValues() *RedditPostUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(redditpost.FieldID)
		}
		if _, exists := u.create.mutation.Subreddit(); exists {
			s.SetIgnore(redditpost.FieldSubreddit)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(redditpost.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RedditPost.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RedditPostUpsertOne) Ignore() *RedditPostUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RedditPostUpsertOne) DoNothing() *RedditPostUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RedditPostCreate.OnConflict
// documentation for more info.
func (u *RedditPostUpsertOne) Update(set func(*RedditPostUpsert)) *RedditPostUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RedditPostUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *RedditPostUpsertOne) SetTitle(v string) *RedditPostUpsertOne {
	return u.Update(func(s *RedditPostUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *RedditPostUpsertOne) UpdateTitle() *RedditPostUpsertOne {
	return u.Update(func(s *RedditPostUpsert) {
		s.UpdateTitle()
	})
}

// SetBody sets the "body" field.
func (u *RedditPostUpsertOne) SetBody(v string) *RedditPostUpsertOne {
	return u.Update(func(s *RedditPostUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *RedditPostUpsertOne) UpdateBody() *RedditPostUpsertOne {
	return u.Update(func(s *RedditPostUpsert) {
		s.UpdateBody()
	})
}

// ClearBody clears the value of the "body" field.
func (u *RedditPostUpsertOne) ClearBody() *RedditPostUpsertOne {
	return u.Update(func(s *RedditPostUpsert) {
		s.ClearBody()
	})
}

// SetScore sets the "score" field.
func (u *RedditPostUpsertOne) SetScore(v int) *RedditPostUpsertOne {
	return u.Update(func(s *RedditPostUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *RedditPostUpsertOne) AddScore(v int) *RedditPostUpsertOne {
	return u.Update(func(s *RedditPostUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *RedditPostUpsertOne) UpdateScore() *RedditPostUpsertOne {
	return u.Update(func(s *RedditPostUpsert) {
		s.UpdateScore()
	})
}

// SetNumComments sets the "num_comments" field.
func (u *RedditPostUpsertOne) SetNumComments(v int) *RedditPostUpsertOne {
	return u.Update(func(s *RedditPostUpsert) {
		s.SetNumComments(v)
	})
}

// AddNumComments adds v to the "num_comments" field.
func (u *RedditPostUpsertOne) AddNumComments(v int) *RedditPostUpsertOne {
	return u.Update(func(s *RedditPostUpsert) {
		s.AddNumComments(v)
	})
}

// UpdateNumComments sets the "num_comments" field to the value that was provided on create.
func (u *RedditPostUpsertOne) UpdateNumComments() *RedditPostUpsertOne {
	return u.Update(func(s *RedditPostUpsert) {
		s.UpdateNumComments()
	})
}

// SetPermalink sets the "permalink" field.
func (u *RedditPostUpsertOne) SetPermalink(v string) *RedditPostUpsertOne {
	return u.Update(func(s *RedditPostUpsert) {
		s.SetPermalink(v)
	})
}

// UpdatePermalink sets the "permalink" field to the value that was provided on create.
func (u *RedditPostUpsertOne) UpdatePermalink() *RedditPostUpsertOne {
	return u.Update(func(s *RedditPostUpsert) {
		s.UpdatePermalink()
	})
}

// SetOver18 sets the "over_18" field.
func (u *RedditPostUpsertOne) SetOver18(v bool) *RedditPostUpsertOne {
	return u.Update(func(s *RedditPostUpsert) {
		s.SetOver18(v)
	})
}

// UpdateOver18 sets the "over_18" field to the value that was provided on create.
func (u *RedditPostUpsertOne) UpdateOver18() *RedditPostUpsertOne {
	return u.Update(func(s *RedditPostUpsert) {
		s.UpdateOver18()
	})
}

// SetCommentSummary sets the "comment_summary" field.
func (u *RedditPostUpsertOne) SetCommentSummary(v string) *RedditPostUpsertOne {
	return u.Update(func(s *RedditPostUpsert) {
		s.SetCommentSummary(v)
	})
}

// UpdateCommentSummary sets the "comment_summary" field to the value that was provided on create.
func (u *RedditPostUpsertOne) UpdateCommentSummary() *RedditPostUpsertOne {
	return u.Update(func(s *RedditPostUpsert) {
		s.UpdateCommentSummary()
	})
}

// ClearCommentSummary clears the value of the "comment_summary" field.
func (u *RedditPostUpsertOne) ClearCommentSummary() *RedditPostUpsertOne {
	return u.Update(func(s *RedditPostUpsert) {
		s.ClearCommentSummary()
	})
}

// SetLastUsedAt sets the "last_used_at" field.
func (u *RedditPostUpsertOne) SetLastUsedAt(v time.Time) *RedditPostUpsertOne {
	return u.Update(func(s *RedditPostUpsert) {
		s.SetLastUsedAt(v)
	})
}

// UpdateLastUsedAt sets the "last_used_at" field to the value that was provided on create.
func (u *RedditPostUpsertOne) UpdateLastUsedAt() *RedditPostUpsertOne {
	return u.Update(func(s *RedditPostUpsert) {
		s.UpdateLastUsedAt()
	})
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (u *RedditPostUpsertOne) ClearLastUsedAt() *RedditPostUpsertOne {
	return u.Update(func(s *RedditPostUpsert) {
		s.ClearLastUsedAt()
	})
}

// Exec executes the query.
func (u *RedditPostUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RedditPostCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RedditPostUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RedditPostUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RedditPostUpsertOne.ID is not supported by MySQL driver. Use RedditPostUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RedditPostUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RedditPostCreateBulk is the builder for creating many RedditPost entities in bulk.
type RedditPostCreateBulk struct {
	config
	err      error
	builders []*RedditPostCreate
	conflict []sql.ConflictOption
}

// Save creates the RedditPost entities in the database.
func (_c *RedditPostCreateBulk) Save(ctx context.Context) ([]*RedditPost, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RedditPost, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RedditPostMutation)
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
func (_c *RedditPostCreateBulk) SaveX(ctx context.Context) []*RedditPost {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RedditPostCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RedditPostCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RedditPost.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RedditPostUpsert) {
//			SetSubreddit(v+v).
//		}).
//		Exec(ctx)
func (_c *RedditPostCreateBulk) OnConflict(opts ...sql.ConflictOption) *RedditPostUpsertBulk {
	_c.conflict = opts
	return &RedditPostUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RedditPost.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RedditPostCreateBulk) OnConflictColumns(columns ...string) *RedditPostUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RedditPostUpsertBulk{
		create: _c,
	}
}

// RedditPostUpsertBulk is the builder for "upsert"-ing
// a bulk of RedditPost nodes.
type RedditPostUpsertBulk struct {
	create *RedditPostCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RedditPost.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(redditpost.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RedditPostUpsertBulk) UpdateNewValues() *RedditPostUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(redditpost.FieldID)
			}
			if _, exists := b.mutation.Subreddit(); exists {
				s.SetIgnore(redditpost.FieldSubreddit)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(redditpost.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RedditPost.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RedditPostUpsertBulk) Ignore() *RedditPostUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RedditPostUpsertBulk) DoNothing() *RedditPostUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RedditPostCreateBulk.OnConflict
// documentation for more info.
func (u *RedditPostUpsertBulk) Update(set func(*RedditPostUpsert)) *RedditPostUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RedditPostUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *RedditPostUpsertBulk) SetTitle(v string) *RedditPostUpsertBulk {
	return u.Update(func(s *RedditPostUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *RedditPostUpsertBulk) UpdateTitle() *RedditPostUpsertBulk {
	return u.Update(func(s *RedditPostUpsert) {
		s.UpdateTitle()
	})
}

// SetBody sets the "body" field.
func (u *RedditPostUpsertBulk) SetBody(v string) *RedditPostUpsertBulk {
	return u.Update(func(s *RedditPostUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *RedditPostUpsertBulk) UpdateBody() *RedditPostUpsertBulk {
	return u.Update(func(s *RedditPostUpsert) {
		s.UpdateBody()
	})
}

// ClearBody clears the value of the "body" field.
func (u *RedditPostUpsertBulk) ClearBody() *RedditPostUpsertBulk {
	return u.Update(func(s *RedditPostUpsert) {
		s.ClearBody()
	})
}

// SetScore sets the "score" field.
func (u *RedditPostUpsertBulk) SetScore(v int) *RedditPostUpsertBulk {
	return u.Update(func(s *RedditPostUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *RedditPostUpsertBulk) AddScore(v int) *RedditPostUpsertBulk {
	return u.Update(func(s *RedditPostUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *RedditPostUpsertBulk) UpdateScore() *RedditPostUpsertBulk {
	return u.Update(func(s *RedditPostUpsert) {
		s.UpdateScore()
	})
}

// SetNumComments sets the "num_comments" field.
func (u *RedditPostUpsertBulk) SetNumComments(v int) *RedditPostUpsertBulk {
	return u.Update(func(s *RedditPostUpsert) {
		s.SetNumComments(v)
	})
}

// AddNumComments adds v to the "num_comments" field.
func (u *RedditPostUpsertBulk) AddNumComments(v int) *RedditPostUpsertBulk {
	return u.Update(func(s *RedditPostUpsert) {
		s.AddNumComments(v)
	})
}

// UpdateNumComments sets the "num_comments" field to the value that was provided on create.
func (u *RedditPostUpsertBulk) UpdateNumComments() *RedditPostUpsertBulk {
	return u.Update(func(s *RedditPostUpsert) {
		s.UpdateNumComments()
	})
}

// SetPermalink sets the "permalink" field.
func (u *RedditPostUpsertBulk) SetPermalink(v string) *RedditPostUpsertBulk {
	return u.Update(func(s *RedditPostUpsert) {
		s.SetPermalink(v)
	})
}

// UpdatePermalink sets the "permalink" field to the value that was provided on create.
func (u *RedditPostUpsertBulk) UpdatePermalink() *RedditPostUpsertBulk {
	return u.Update(func(s *RedditPostUpsert) {
		s.UpdatePermalink()
	})
}

// SetOver18 sets the "over_18" field.
func (u *RedditPostUpsertBulk) SetOver18(v bool) *RedditPostUpsertBulk {
	return u.Update(func(s *RedditPostUpsert) {
		s.SetOver18(v)
	})
}

// UpdateOver18 sets the "over_18" field to the value that was provided on create.
func (u *RedditPostUpsertBulk) UpdateOver18() *RedditPostUpsertBulk {
	return u.Update(func(s *RedditPostUpsert) {
		s.UpdateOver18()
	})
}

// SetCommentSummary sets the "comment_summary" field.
func (u *RedditPostUpsertBulk) SetCommentSummary(v string) *RedditPostUpsertBulk {
	return u.Update(func(s *RedditPostUpsert) {
		s.SetCommentSummary(v)
	})
}

// UpdateCommentSummary sets the "comment_summary" field to the value that was provided on create.
func (u *RedditPostUpsertBulk) UpdateCommentSummary() *RedditPostUpsertBulk {
	return u.Update(func(s *RedditPostUpsert) {
		s.UpdateCommentSummary()
	})
}

// ClearCommentSummary clears the value of the "comment_summary" field.
func (u *RedditPostUpsertBulk) ClearCommentSummary() *RedditPostUpsertBulk {
	return u.Update(func(s *RedditPostUpsert) {
		s.ClearCommentSummary()
	})
}

// SetLastUsedAt sets the "last_used_at" field.
func (u *RedditPostUpsertBulk) SetLastUsedAt(v time.Time) *RedditPostUpsertBulk {
	return u.Update(func(s *RedditPostUpsert) {
		s.SetLastUsedAt(v)
	})
}

// UpdateLastUsedAt sets the "last_used_at" field to the value that was provided on create.
func (u *RedditPostUpsertBulk) UpdateLastUsedAt() *RedditPostUpsertBulk {
	return u.Update(func(s *RedditPostUpsert) {
		s.UpdateLastUsedAt()
	})
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (u *RedditPostUpsertBulk) ClearLastUsedAt() *RedditPostUpsertBulk {
	return u.Update(func(s *RedditPostUpsert) {
		s.ClearLastUsedAt()
	})
}

// Exec executes the query.
func (u *RedditPostUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RedditPostCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RedditPostCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RedditPostUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
