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
	"github.com/redditart/commissioner/ent/subreddit"
)

// SubredditCreate is the builder for creating a Subreddit entity.
type SubredditCreate struct {
	config
	mutation *SubredditMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *SubredditCreate) SetName(v string) *SubredditCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *SubredditCreate) SetDisplayName(v string) *SubredditCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetOver18 sets the "over_18" field.
func (_c *SubredditCreate) SetOver18(v bool) *SubredditCreate {
	_c.mutation.SetOver18(v)
	return _c
}

// SetNillableOver18 sets the "over_18" field if the given value is not nil.
func (_c *SubredditCreate) SetNillableOver18(v *bool) *SubredditCreate {
	if v != nil {
		_c.SetOver18(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubredditCreate) SetCreatedAt(v time.Time) *SubredditCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubredditCreate) SetNillableCreatedAt(v *time.Time) *SubredditCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the SubredditMutation object of the builder.
func (_c *SubredditCreate) Mutation() *SubredditMutation {
	return _c.mutation
}

// Save creates the Subreddit in the database.
func (_c *SubredditCreate) Save(ctx context.Context) (*Subreddit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubredditCreate) SaveX(ctx context.Context) *Subreddit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubredditCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubredditCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubredditCreate) defaults() {
	if _, ok := _c.mutation.Over18(); !ok {
		v := subreddit.DefaultOver18
		_c.mutation.SetOver18(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := subreddit.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubredditCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Subreddit.name"`)}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "Subreddit.display_name"`)}
	}
	if _, ok := _c.mutation.Over18(); !ok {
		return &ValidationError{Name: "over_18", err: errors.New(`ent: missing required field "Subreddit.over_18"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Subreddit.created_at"`)}
	}
	return nil
}

func (_c *SubredditCreate) sqlSave(ctx context.Context) (*Subreddit, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SubredditCreate) createSpec() (*Subreddit, *sqlgraph.CreateSpec) {
	var (
		_node = &Subreddit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subreddit.Table, sqlgraph.NewFieldSpec(subreddit.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(subreddit.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(subreddit.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Over18(); ok {
		_spec.SetField(subreddit.FieldOver18, field.TypeBool, value)
		_node.Over18 = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(subreddit.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Subreddit.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SubredditUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *SubredditCreate) OnConflict(opts ...sql.ConflictOption) *SubredditUpsertOne {
	_c.conflict = opts
	return &SubredditUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Subreddit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SubredditCreate) OnConflictColumns(columns ...string) *SubredditUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SubredditUpsertOne{
		create: _c,
	}
}

type (
	// SubredditUpsertOne is the builder for "upsert"-ing
	//  one Subreddit node.
	SubredditUpsertOne struct {
		create *SubredditCreate
	}

	// SubredditUpsert is the "OnConflict" setter.
	SubredditUpsert struct {
		*sql.UpdateSet
	}
)

// SetDisplayName sets the "display_name" field.
func (u *SubredditUpsert) SetDisplayName(v string) *SubredditUpsert {
	u.Set(subreddit.FieldDisplayName, v)
	return u
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *SubredditUpsert) UpdateDisplayName() *SubredditUpsert {
	u.SetExcluded(subreddit.FieldDisplayName)
	return u
}

// SetOver18 sets the "over_18" field.
func (u *SubredditUpsert) SetOver18(v bool) *SubredditUpsert {
	u.Set(subreddit.FieldOver18, v)
	return u
}

// UpdateOver18 sets the "over_18" field to the value that was provided on create.
func (u *SubredditUpsert) UpdateOver18() *SubredditUpsert {
	u.SetExcluded(subreddit.FieldOver18)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Subreddit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SubredditUpsertOne) UpdateNewValues() *SubredditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Name(); exists {
			s.SetIgnore(subreddit.FieldName)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(subreddit.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Subreddit.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SubredditUpsertOne) Ignore() *SubredditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SubredditUpsertOne) DoNothing() *SubredditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SubredditCreate.OnConflict
// documentation for more info.
func (u *SubredditUpsertOne) Update(set func(*SubredditUpsert)) *SubredditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SubredditUpsert{UpdateSet: update})
	}))
	return u
}

// SetDisplayName sets the "display_name" field.
func (u *SubredditUpsertOne) SetDisplayName(v string) *SubredditUpsertOne {
	return u.Update(func(s *SubredditUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *SubredditUpsertOne) UpdateDisplayName() *SubredditUpsertOne {
	return u.Update(func(s *SubredditUpsert) {
		s.UpdateDisplayName()
	})
}

// SetOver18 sets the "over_18" field.
func (u *SubredditUpsertOne) SetOver18(v bool) *SubredditUpsertOne {
	return u.Update(func(s *SubredditUpsert) {
		s.SetOver18(v)
	})
}

// UpdateOver18 sets the "over_18" field to the value that was provided on create.
func (u *SubredditUpsertOne) UpdateOver18() *SubredditUpsertOne {
	return u.Update(func(s *SubredditUpsert) {
		s.UpdateOver18()
	})
}

// Exec executes the query.
func (u *SubredditUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SubredditCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SubredditUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SubredditUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SubredditUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SubredditCreateBulk is the builder for creating many Subreddit entities in bulk.
type SubredditCreateBulk struct {
	config
	err      error
	builders []*SubredditCreate
	conflict []sql.ConflictOption
}

// Save creates the Subreddit entities in the database.
func (_c *SubredditCreateBulk) Save(ctx context.Context) ([]*Subreddit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Subreddit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubredditMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *SubredditCreateBulk) SaveX(ctx context.Context) []*Subreddit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubredditCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubredditCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Subreddit.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SubredditUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *SubredditCreateBulk) OnConflict(opts ...sql.ConflictOption) *SubredditUpsertBulk {
	_c.conflict = opts
	return &SubredditUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Subreddit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SubredditCreateBulk) OnConflictColumns(columns ...string) *SubredditUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SubredditUpsertBulk{
		create: _c,
	}
}

// SubredditUpsertBulk is the builder for "upsert"-ing
// a bulk of Subreddit nodes.
type SubredditUpsertBulk struct {
	create *SubredditCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Subreddit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SubredditUpsertBulk) UpdateNewValues() *SubredditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Name(); exists {
				s.SetIgnore(subreddit.FieldName)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(subreddit.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Subreddit.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SubredditUpsertBulk) Ignore() *SubredditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SubredditUpsertBulk) DoNothing() *SubredditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SubredditCreateBulk.OnConflict
// documentation for more info.
func (u *SubredditUpsertBulk) Update(set func(*SubredditUpsert)) *SubredditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SubredditUpsert{UpdateSet: update})
	}))
	return u
}

// SetDisplayName sets the "display_name" field.
func (u *SubredditUpsertBulk) SetDisplayName(v string) *SubredditUpsertBulk {
	return u.Update(func(s *SubredditUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *SubredditUpsertBulk) UpdateDisplayName() *SubredditUpsertBulk {
	return u.Update(func(s *SubredditUpsert) {
		s.UpdateDisplayName()
	})
}

// SetOver18 sets the "over_18" field.
func (u *SubredditUpsertBulk) SetOver18(v bool) *SubredditUpsertBulk {
	return u.Update(func(s *SubredditUpsert) {
		s.SetOver18(v)
	})
}

// UpdateOver18 sets the "over_18" field to the value that was provided on create.
func (u *SubredditUpsertBulk) UpdateOver18() *SubredditUpsertBulk {
	return u.Update(func(s *SubredditUpsert) {
		s.UpdateOver18()
	})
}

// Exec executes the query.
func (u *SubredditUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SubredditCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SubredditCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SubredditUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
