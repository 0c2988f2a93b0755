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
	"github.com/redditart/commissioner/ent/agentaction"
)

// AgentActionCreate is the builder for creating a AgentAction entity.
type AgentActionCreate struct {
	config
	mutation *AgentActionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAgentID sets the "agent_id" field.
func (_c *AgentActionCreate) SetAgentID(v string) *AgentActionCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetTargetID sets the "target_id" field.
func (_c *AgentActionCreate) SetTargetID(v string) *AgentActionCreate {
	_c.mutation.SetTargetID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *AgentActionCreate) SetKind(v string) *AgentActionCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetDryRun sets the "dry_run" field.
func (_c *AgentActionCreate) SetDryRun(v bool) *AgentActionCreate {
	_c.mutation.SetDryRun(v)
	return _c
}

// SetNillableDryRun sets the "dry_run" field if the given value is not nil.
func (_c *AgentActionCreate) SetNillableDryRun(v *bool) *AgentActionCreate {
	if v != nil {
		_c.SetDryRun(*v)
	}
	return _c
}

// SetRating sets the "rating" field.
func (_c *AgentActionCreate) SetRating(v map[string]interface{}) *AgentActionCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentActionCreate) SetCreatedAt(v time.Time) *AgentActionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentActionCreate) SetNillableCreatedAt(v *time.Time) *AgentActionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the AgentActionMutation object of the builder.
func (_c *AgentActionCreate) Mutation() *AgentActionMutation {
	return _c.mutation
}

// Save creates the AgentAction in the database.
func (_c *AgentActionCreate) Save(ctx context.Context) (*AgentAction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentActionCreate) SaveX(ctx context.Context) *AgentAction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentActionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentActionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentActionCreate) defaults() {
	if _, ok := _c.mutation.DryRun(); !ok {
		v := agentaction.DefaultDryRun
		_c.mutation.SetDryRun(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentActionCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "AgentAction.agent_id"`)}
	}
	if _, ok := _c.mutation.TargetID(); !ok {
		return &ValidationError{Name: "target_id", err: errors.New(`ent: missing required field "AgentAction.target_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "AgentAction.kind"`)}
	}
	if _, ok := _c.mutation.DryRun(); !ok {
		return &ValidationError{Name: "dry_run", err: errors.New(`ent: missing required field "AgentAction.dry_run"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentAction.created_at"`)}
	}
	return nil
}

func (_c *AgentActionCreate) sqlSave(ctx context.Context) (*AgentAction, error) {
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

func (_c *AgentActionCreate) createSpec() (*AgentAction, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentAction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentaction.Table, sqlgraph.NewFieldSpec(agentaction.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(agentaction.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.TargetID(); ok {
		_spec.SetField(agentaction.FieldTargetID, field.TypeString, value)
		_node.TargetID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(agentaction.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.DryRun(); ok {
		_spec.SetField(agentaction.FieldDryRun, field.TypeBool, value)
		_node.DryRun = value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(agentaction.FieldRating, field.TypeJSON, value)
		_node.Rating = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentAction.Create().
//		SetAgentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentActionUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentActionCreate) OnConflict(opts ...sql.ConflictOption) *AgentActionUpsertOne {
	_c.conflict = opts
	return &AgentActionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentAction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentActionCreate) OnConflictColumns(columns ...string) *AgentActionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentActionUpsertOne{
		create: _c,
	}
}

type (
	// AgentActionUpsertOne is the builder for "upsert"-ing
	//  one AgentAction node.
	AgentActionUpsertOne struct {
		create *AgentActionCreate
	}

	// AgentActionUpsert is the "OnConflict" setter.
	AgentActionUpsert struct {
		*sql.UpdateSet
	}
)

// SetRating sets the "rating" field.
func (u *AgentActionUpsert) SetRating(v map[string]interface{}) *AgentActionUpsert {
	u.Set(agentaction.FieldRating, v)
	return u
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *AgentActionUpsert) UpdateRating() *AgentActionUpsert {
	u.SetExcluded(agentaction.FieldRating)
	return u
}

// ClearRating clears the value of the "rating" field.
func (u *AgentActionUpsert) ClearRating() *AgentActionUpsert {
	u.SetNull(agentaction.FieldRating)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AgentAction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AgentActionUpsertOne) UpdateNewValues() *AgentActionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.AgentID(); exists {
			s.SetIgnore(agentaction.FieldAgentID)
		}
		if _, exists := u.create.mutation.TargetID(); exists {
			s.SetIgnore(agentaction.FieldTargetID)
		}
		if _, exists := u.create.mutation.Kind(); exists {
			s.SetIgnore(agentaction.FieldKind)
		}
		if _, exists := u.create.mutation.DryRun(); exists {
			s.SetIgnore(agentaction.FieldDryRun)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(agentaction.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentAction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentActionUpsertOne) Ignore() *AgentActionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentActionUpsertOne) DoNothing() *AgentActionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentActionCreate.OnConflict
// documentation for more info.
func (u *AgentActionUpsertOne) Update(set func(*AgentActionUpsert)) *AgentActionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentActionUpsert{UpdateSet: update})
	}))
	return u
}

// SetRating sets the "rating" field.
func (u *AgentActionUpsertOne) SetRating(v map[string]interface{}) *AgentActionUpsertOne {
	return u.Update(func(s *AgentActionUpsert) {
		s.SetRating(v)
	})
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *AgentActionUpsertOne) UpdateRating() *AgentActionUpsertOne {
	return u.Update(func(s *AgentActionUpsert) {
		s.UpdateRating()
	})
}

// ClearRating clears the value of the "rating" field.
func (u *AgentActionUpsertOne) ClearRating() *AgentActionUpsertOne {
	return u.Update(func(s *AgentActionUpsert) {
		s.ClearRating()
	})
}

// Exec executes the query.
func (u *AgentActionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentActionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentActionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentActionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentActionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentActionCreateBulk is the builder for creating many AgentAction entities in bulk.
type AgentActionCreateBulk struct {
	config
	err      error
	builders []*AgentActionCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentAction entities in the database.
func (_c *AgentActionCreateBulk) Save(ctx context.Context) ([]*AgentAction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentAction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentActionMutation)
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
func (_c *AgentActionCreateBulk) SaveX(ctx context.Context) []*AgentAction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentActionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentActionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentAction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentActionUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentActionCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentActionUpsertBulk {
	_c.conflict = opts
	return &AgentActionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentAction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentActionCreateBulk) OnConflictColumns(columns ...string) *AgentActionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentActionUpsertBulk{
		create: _c,
	}
}

// AgentActionUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentAction nodes.
type AgentActionUpsertBulk struct {
	create *AgentActionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentAction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AgentActionUpsertBulk) UpdateNewValues() *AgentActionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.AgentID(); exists {
				s.SetIgnore(agentaction.FieldAgentID)
			}
			if _, exists := b.mutation.TargetID(); exists {
				s.SetIgnore(agentaction.FieldTargetID)
			}
			if _, exists := b.mutation.Kind(); exists {
				s.SetIgnore(agentaction.FieldKind)
			}
			if _, exists := b.mutation.DryRun(); exists {
				s.SetIgnore(agentaction.FieldDryRun)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(agentaction.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentAction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentActionUpsertBulk) Ignore() *AgentActionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentActionUpsertBulk) DoNothing() *AgentActionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentActionCreateBulk.OnConflict
// documentation for more info.
func (u *AgentActionUpsertBulk) Update(set func(*AgentActionUpsert)) *AgentActionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentActionUpsert{UpdateSet: update})
	}))
	return u
}

// SetRating sets the "rating" field.
func (u *AgentActionUpsertBulk) SetRating(v map[string]interface{}) *AgentActionUpsertBulk {
	return u.Update(func(s *AgentActionUpsert) {
		s.SetRating(v)
	})
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *AgentActionUpsertBulk) UpdateRating() *AgentActionUpsertBulk {
	return u.Update(func(s *AgentActionUpsert) {
		s.UpdateRating()
	})
}

// ClearRating clears the value of the "rating" field.
func (u *AgentActionUpsertBulk) ClearRating() *AgentActionUpsertBulk {
	return u.Update(func(s *AgentActionUpsert) {
		s.ClearRating()
	})
}

// Exec executes the query.
func (u *AgentActionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentActionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentActionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentActionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
