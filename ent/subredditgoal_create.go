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
	"github.com/redditart/commissioner/ent/subredditgoal"
)

// SubredditGoalCreate is the builder for creating a SubredditGoal entity.
type SubredditGoalCreate struct {
	config
	mutation *SubredditGoalMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSubreddit sets the "subreddit" field.
func (_c *SubredditGoalCreate) SetSubreddit(v string) *SubredditGoalCreate {
	_c.mutation.SetSubreddit(v)
	return _c
}

// SetGoalAmount sets the "goal_amount" field.
func (_c *SubredditGoalCreate) SetGoalAmount(v int64) *SubredditGoalCreate {
	_c.mutation.SetGoalAmount(v)
	return _c
}

// SetCurrentAmount sets the "current_amount" field.
func (_c *SubredditGoalCreate) SetCurrentAmount(v int64) *SubredditGoalCreate {
	_c.mutation.SetCurrentAmount(v)
	return _c
}

// SetNillableCurrentAmount sets the "current_amount" field if the given value is not nil.
func (_c *SubredditGoalCreate) SetNillableCurrentAmount(v *int64) *SubredditGoalCreate {
	if v != nil {
		_c.SetCurrentAmount(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SubredditGoalCreate) SetStatus(v subredditgoal.Status) *SubredditGoalCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SubredditGoalCreate) SetNillableStatus(v *subredditgoal.Status) *SubredditGoalCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SubredditGoalCreate) SetCompletedAt(v time.Time) *SubredditGoalCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SubredditGoalCreate) SetNillableCompletedAt(v *time.Time) *SubredditGoalCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubredditGoalCreate) SetCreatedAt(v time.Time) *SubredditGoalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubredditGoalCreate) SetNillableCreatedAt(v *time.Time) *SubredditGoalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SubredditGoalCreate) SetUpdatedAt(v time.Time) *SubredditGoalCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SubredditGoalCreate) SetNillableUpdatedAt(v *time.Time) *SubredditGoalCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the SubredditGoalMutation object of the builder.
func (_c *SubredditGoalCreate) Mutation() *SubredditGoalMutation {
	return _c.mutation
}

// Save creates the SubredditGoal in the database.
func (_c *SubredditGoalCreate) Save(ctx context.Context) (*SubredditGoal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubredditGoalCreate) SaveX(ctx context.Context) *SubredditGoal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubredditGoalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubredditGoalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubredditGoalCreate) defaults() {
	if _, ok := _c.mutation.CurrentAmount(); !ok {
		v := subredditgoal.DefaultCurrentAmount
		_c.mutation.SetCurrentAmount(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := subredditgoal.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := subredditgoal.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := subredditgoal.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubredditGoalCreate) check() error {
	if _, ok := _c.mutation.Subreddit(); !ok {
		return &ValidationError{Name: "subreddit", err: errors.New(`ent: missing required field "SubredditGoal.subreddit"`)}
	}
	if _, ok := _c.mutation.GoalAmount(); !ok {
		return &ValidationError{Name: "goal_amount", err: errors.New(`ent: missing required field "SubredditGoal.goal_amount"`)}
	}
	if _, ok := _c.mutation.CurrentAmount(); !ok {
		return &ValidationError{Name: "current_amount", err: errors.New(`ent: missing required field "SubredditGoal.current_amount"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SubredditGoal.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := subredditgoal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SubredditGoal.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SubredditGoal.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SubredditGoal.updated_at"`)}
	}
	return nil
}

func (_c *SubredditGoalCreate) sqlSave(ctx context.Context) (*SubredditGoal, error) {
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

func (_c *SubredditGoalCreate) createSpec() (*SubredditGoal, *sqlgraph.CreateSpec) {
	var (
		_node = &SubredditGoal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subredditgoal.Table, sqlgraph.NewFieldSpec(subredditgoal.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Subreddit(); ok {
		_spec.SetField(subredditgoal.FieldSubreddit, field.TypeString, value)
		_node.Subreddit = value
	}
	if value, ok := _c.mutation.GoalAmount(); ok {
		_spec.SetField(subredditgoal.FieldGoalAmount, field.TypeInt64, value)
		_node.GoalAmount = value
	}
	if value, ok := _c.mutation.CurrentAmount(); ok {
		_spec.SetField(subredditgoal.FieldCurrentAmount, field.TypeInt64, value)
		_node.CurrentAmount = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(subredditgoal.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(subredditgoal.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(subredditgoal.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(subredditgoal.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SubredditGoal.Create().
//		SetSubreddit(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SubredditGoalUpsert) {
//			SetSubreddit(v+v).
//		}).
//		Exec(ctx)
func (_c *SubredditGoalCreate) OnConflict(opts ...sql.ConflictOption) *SubredditGoalUpsertOne {
	_c.conflict = opts
	return &SubredditGoalUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SubredditGoal.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SubredditGoalCreate) OnConflictColumns(columns ...string) *SubredditGoalUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SubredditGoalUpsertOne{
		create: _c,
	}
}

type (
	// SubredditGoalUpsertOne is the builder for "upsert"-ing
	//  one SubredditGoal node.
	SubredditGoalUpsertOne struct {
		create *SubredditGoalCreate
	}

	// SubredditGoalUpsert is the "OnConflict" setter.
	SubredditGoalUpsert struct {
		*sql.UpdateSet
	}
)

// SetGoalAmount sets the "goal_amount" field.
func (u *SubredditGoalUpsert) SetGoalAmount(v int64) *SubredditGoalUpsert {
	u.Set(subredditgoal.FieldGoalAmount, v)
	return u
}

// UpdateGoalAmount sets the "goal_amount" field to the value that was provided on create.
func (u *SubredditGoalUpsert) UpdateGoalAmount() *SubredditGoalUpsert {
	u.SetExcluded(subredditgoal.FieldGoalAmount)
	return u
}

// AddGoalAmount adds v to the "goal_amount" field.
func (u *SubredditGoalUpsert) AddGoalAmount(v int64) *SubredditGoalUpsert {
	u.Add(subredditgoal.FieldGoalAmount, v)
	return u
}

// SetCurrentAmount sets the "current_amount" field.
func (u *SubredditGoalUpsert) SetCurrentAmount(v int64) *SubredditGoalUpsert {
	u.Set(subredditgoal.FieldCurrentAmount, v)
	return u
}

// UpdateCurrentAmount sets the "current_amount" field to the value that was provided on create.
func (u *SubredditGoalUpsert) UpdateCurrentAmount() *SubredditGoalUpsert {
	u.SetExcluded(subredditgoal.FieldCurrentAmount)
	return u
}

// AddCurrentAmount adds v to the "current_amount" field.
func (u *SubredditGoalUpsert) AddCurrentAmount(v int64) *SubredditGoalUpsert {
	u.Add(subredditgoal.FieldCurrentAmount, v)
	return u
}

// SetStatus sets the "status" field.
func (u *SubredditGoalUpsert) SetStatus(v subredditgoal.Status) *SubredditGoalUpsert {
	u.Set(subredditgoal.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SubredditGoalUpsert) UpdateStatus() *SubredditGoalUpsert {
	u.SetExcluded(subredditgoal.FieldStatus)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *SubredditGoalUpsert) SetCompletedAt(v time.Time) *SubredditGoalUpsert {
	u.Set(subredditgoal.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SubredditGoalUpsert) UpdateCompletedAt() *SubredditGoalUpsert {
	u.SetExcluded(subredditgoal.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SubredditGoalUpsert) ClearCompletedAt() *SubredditGoalUpsert {
	u.SetNull(subredditgoal.FieldCompletedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SubredditGoalUpsert) SetUpdatedAt(v time.Time) *SubredditGoalUpsert {
	u.Set(subredditgoal.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SubredditGoalUpsert) UpdateUpdatedAt() *SubredditGoalUpsert {
	u.SetExcluded(subredditgoal.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.SubredditGoal.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SubredditGoalUpsertOne) UpdateNewValues() *SubredditGoalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Subreddit(); exists {
			s.SetIgnore(subredditgoal.FieldSubreddit)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(subredditgoal.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SubredditGoal.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SubredditGoalUpsertOne) Ignore() *SubredditGoalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SubredditGoalUpsertOne) DoNothing() *SubredditGoalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SubredditGoalCreate.OnConflict
// documentation for more info.
func (u *SubredditGoalUpsertOne) Update(set func(*SubredditGoalUpsert)) *SubredditGoalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SubredditGoalUpsert{UpdateSet: update})
	}))
	return u
}

// SetGoalAmount sets the "goal_amount" field.
func (u *SubredditGoalUpsertOne) SetGoalAmount(v int64) *SubredditGoalUpsertOne {
	return u.Update(func(s *SubredditGoalUpsert) {
		s.SetGoalAmount(v)
	})
}

// AddGoalAmount adds v to the "goal_amount" field.
func (u *SubredditGoalUpsertOne) AddGoalAmount(v int64) *SubredditGoalUpsertOne {
	return u.Update(func(s *SubredditGoalUpsert) {
		s.AddGoalAmount(v)
	})
}

// UpdateGoalAmount sets the "goal_amount" field to the value that was provided on create.
func (u *SubredditGoalUpsertOne) UpdateGoalAmount() *SubredditGoalUpsertOne {
	return u.Update(func(s *SubredditGoalUpsert) {
		s.UpdateGoalAmount()
	})
}

// SetCurrentAmount sets the "current_amount" field.
func (u *SubredditGoalUpsertOne) SetCurrentAmount(v int64) *SubredditGoalUpsertOne {
	return u.Update(func(s *SubredditGoalUpsert) {
		s.SetCurrentAmount(v)
	})
}

// AddCurrentAmount adds v to the "current_amount" field.
func (u *SubredditGoalUpsertOne) AddCurrentAmount(v int64) *SubredditGoalUpsertOne {
	return u.Update(func(s *SubredditGoalUpsert) {
		s.AddCurrentAmount(v)
	})
}

// UpdateCurrentAmount sets the "current_amount" field to the value that was provided on create.
func (u *SubredditGoalUpsertOne) UpdateCurrentAmount() *SubredditGoalUpsertOne {
	return u.Update(func(s *SubredditGoalUpsert) {
		s.UpdateCurrentAmount()
	})
}

// SetStatus sets the "status" field.
func (u *SubredditGoalUpsertOne) SetStatus(v subredditgoal.Status) *SubredditGoalUpsertOne {
	return u.Update(func(s *SubredditGoalUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SubredditGoalUpsertOne) UpdateStatus() *SubredditGoalUpsertOne {
	return u.Update(func(s *SubredditGoalUpsert) {
		s.UpdateStatus()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *SubredditGoalUpsertOne) SetCompletedAt(v time.Time) *SubredditGoalUpsertOne {
	return u.Update(func(s *SubredditGoalUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SubredditGoalUpsertOne) UpdateCompletedAt() *SubredditGoalUpsertOne {
	return u.Update(func(s *SubredditGoalUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SubredditGoalUpsertOne) ClearCompletedAt() *SubredditGoalUpsertOne {
	return u.Update(func(s *SubredditGoalUpsert) {
		s.ClearCompletedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SubredditGoalUpsertOne) SetUpdatedAt(v time.Time) *SubredditGoalUpsertOne {
	return u.Update(func(s *SubredditGoalUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SubredditGoalUpsertOne) UpdateUpdatedAt() *SubredditGoalUpsertOne {
	return u.Update(func(s *SubredditGoalUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SubredditGoalUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SubredditGoalCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SubredditGoalUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SubredditGoalUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SubredditGoalUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SubredditGoalCreateBulk is the builder for creating many SubredditGoal entities in bulk.
type SubredditGoalCreateBulk struct {
	config
	err      error
	builders []*SubredditGoalCreate
	conflict []sql.ConflictOption
}

// Save creates the SubredditGoal entities in the database.
func (_c *SubredditGoalCreateBulk) Save(ctx context.Context) ([]*SubredditGoal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SubredditGoal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubredditGoalMutation)
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
func (_c *SubredditGoalCreateBulk) SaveX(ctx context.Context) []*SubredditGoal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubredditGoalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubredditGoalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SubredditGoal.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SubredditGoalUpsert) {
//			SetSubreddit(v+v).
//		}).
//		Exec(ctx)
func (_c *SubredditGoalCreateBulk) OnConflict(opts ...sql.ConflictOption) *SubredditGoalUpsertBulk {
	_c.conflict = opts
	return &SubredditGoalUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SubredditGoal.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SubredditGoalCreateBulk) OnConflictColumns(columns ...string) *SubredditGoalUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SubredditGoalUpsertBulk{
		create: _c,
	}
}

// SubredditGoalUpsertBulk is the builder for "upsert"-ing
// a bulk of SubredditGoal nodes.
type SubredditGoalUpsertBulk struct {
	create *SubredditGoalCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SubredditGoal.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SubredditGoalUpsertBulk) UpdateNewValues() *SubredditGoalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Subreddit(); exists {
				s.SetIgnore(subredditgoal.FieldSubreddit)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(subredditgoal.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SubredditGoal.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SubredditGoalUpsertBulk) Ignore() *SubredditGoalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SubredditGoalUpsertBulk) DoNothing() *SubredditGoalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SubredditGoalCreateBulk.OnConflict
// documentation for more info.
func (u *SubredditGoalUpsertBulk) Update(set func(*SubredditGoalUpsert)) *SubredditGoalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SubredditGoalUpsert{UpdateSet: update})
	}))
	return u
}

// SetGoalAmount sets the "goal_amount" field.
func (u *SubredditGoalUpsertBulk) SetGoalAmount(v int64) *SubredditGoalUpsertBulk {
	return u.Update(func(s *SubredditGoalUpsert) {
		s.SetGoalAmount(v)
	})
}

// AddGoalAmount adds v to the "goal_amount" field.
func (u *SubredditGoalUpsertBulk) AddGoalAmount(v int64) *SubredditGoalUpsertBulk {
	return u.Update(func(s *SubredditGoalUpsert) {
		s.AddGoalAmount(v)
	})
}

// UpdateGoalAmount sets the "goal_amount" field to the value that was provided on create.
func (u *SubredditGoalUpsertBulk) UpdateGoalAmount() *SubredditGoalUpsertBulk {
	return u.Update(func(s *SubredditGoalUpsert) {
		s.UpdateGoalAmount()
	})
}

// SetCurrentAmount sets the "current_amount" field.
func (u *SubredditGoalUpsertBulk) SetCurrentAmount(v int64) *SubredditGoalUpsertBulk {
	return u.Update(func(s *SubredditGoalUpsert) {
		s.SetCurrentAmount(v)
	})
}

// AddCurrentAmount adds v to the "current_amount" field.
func (u *SubredditGoalUpsertBulk) AddCurrentAmount(v int64) *SubredditGoalUpsertBulk {
	return u.Update(func(s *SubredditGoalUpsert) {
		s.AddCurrentAmount(v)
	})
}

// UpdateCurrentAmount sets the "current_amount" field to the value that was provided on create.
func (u *SubredditGoalUpsertBulk) UpdateCurrentAmount() *SubredditGoalUpsertBulk {
	return u.Update(func(s *SubredditGoalUpsert) {
		s.UpdateCurrentAmount()
	})
}

// SetStatus sets the "status" field.
func (u *SubredditGoalUpsertBulk) SetStatus(v subredditgoal.Status) *SubredditGoalUpsertBulk {
	return u.Update(func(s *SubredditGoalUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SubredditGoalUpsertBulk) UpdateStatus() *SubredditGoalUpsertBulk {
	return u.Update(func(s *SubredditGoalUpsert) {
		s.UpdateStatus()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *SubredditGoalUpsertBulk) SetCompletedAt(v time.Time) *SubredditGoalUpsertBulk {
	return u.Update(func(s *SubredditGoalUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SubredditGoalUpsertBulk) UpdateCompletedAt() *SubredditGoalUpsertBulk {
	return u.Update(func(s *SubredditGoalUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SubredditGoalUpsertBulk) ClearCompletedAt() *SubredditGoalUpsertBulk {
	return u.Update(func(s *SubredditGoalUpsert) {
		s.ClearCompletedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SubredditGoalUpsertBulk) SetUpdatedAt(v time.Time) *SubredditGoalUpsertBulk {
	return u.Update(func(s *SubredditGoalUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SubredditGoalUpsertBulk) UpdateUpdatedAt() *SubredditGoalUpsertBulk {
	return u.Update(func(s *SubredditGoalUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SubredditGoalUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SubredditGoalCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SubredditGoalCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SubredditGoalUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
