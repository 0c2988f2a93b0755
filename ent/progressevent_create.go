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
	"github.com/redditart/commissioner/ent/progressevent"
)

// ProgressEventCreate is the builder for creating a ProgressEvent entity.
type ProgressEventCreate struct {
	config
	mutation *ProgressEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *ProgressEventCreate) SetTaskID(v string) *ProgressEventCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *ProgressEventCreate) SetStage(v progressevent.Stage) *ProgressEventCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *ProgressEventCreate) SetMessage(v string) *ProgressEventCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetPercent sets the "percent" field.
func (_c *ProgressEventCreate) SetPercent(v int) *ProgressEventCreate {
	_c.mutation.SetPercent(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProgressEventCreate) SetCreatedAt(v time.Time) *ProgressEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProgressEventCreate) SetNillableCreatedAt(v *time.Time) *ProgressEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ProgressEventMutation object of the builder.
func (_c *ProgressEventCreate) Mutation() *ProgressEventMutation {
	return _c.mutation
}

// Save creates the ProgressEvent in the database.
func (_c *ProgressEventCreate) Save(ctx context.Context) (*ProgressEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgressEventCreate) SaveX(ctx context.Context) *ProgressEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgressEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := progressevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgressEventCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "ProgressEvent.task_id"`)}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "ProgressEvent.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := progressevent.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "ProgressEvent.message"`)}
	}
	if _, ok := _c.mutation.Percent(); !ok {
		return &ValidationError{Name: "percent", err: errors.New(`ent: missing required field "ProgressEvent.percent"`)}
	}
	if v, ok := _c.mutation.Percent(); ok {
		if err := progressevent.PercentValidator(v); err != nil {
			return &ValidationError{Name: "percent", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.percent": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProgressEvent.created_at"`)}
	}
	return nil
}

func (_c *ProgressEventCreate) sqlSave(ctx context.Context) (*ProgressEvent, error) {
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

func (_c *ProgressEventCreate) createSpec() (*ProgressEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ProgressEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(progressevent.Table, sqlgraph.NewFieldSpec(progressevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(progressevent.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(progressevent.FieldStage, field.TypeEnum, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(progressevent.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Percent(); ok {
		_spec.SetField(progressevent.FieldPercent, field.TypeInt, value)
		_node.Percent = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(progressevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProgressEvent.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProgressEventUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProgressEventCreate) OnConflict(opts ...sql.ConflictOption) *ProgressEventUpsertOne {
	_c.conflict = opts
	return &ProgressEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProgressEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProgressEventCreate) OnConflictColumns(columns ...string) *ProgressEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProgressEventUpsertOne{
		create: _c,
	}
}

type (
	// ProgressEventUpsertOne is the builder for "upsert"-ing
	//  one ProgressEvent node.
	ProgressEventUpsertOne struct {
		create *ProgressEventCreate
	}

	// ProgressEventUpsert is the "OnConflict" setter.
	ProgressEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetStage sets the "stage" field.
func (u *ProgressEventUpsert) SetStage(v progressevent.Stage) *ProgressEventUpsert {
	u.Set(progressevent.FieldStage, v)
	return u
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *ProgressEventUpsert) UpdateStage() *ProgressEventUpsert {
	u.SetExcluded(progressevent.FieldStage)
	return u
}

// SetMessage sets the "message" field.
func (u *ProgressEventUpsert) SetMessage(v string) *ProgressEventUpsert {
	u.Set(progressevent.FieldMessage, v)
	return u
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *ProgressEventUpsert) UpdateMessage() *ProgressEventUpsert {
	u.SetExcluded(progressevent.FieldMessage)
	return u
}

// SetPercent sets the "percent" field.
func (u *ProgressEventUpsert) SetPercent(v int) *ProgressEventUpsert {
	u.Set(progressevent.FieldPercent, v)
	return u
}

// UpdatePercent sets the "percent" field to the value that was provided on create.
func (u *ProgressEventUpsert) UpdatePercent() *ProgressEventUpsert {
	u.SetExcluded(progressevent.FieldPercent)
	return u
}

// AddPercent adds v to the "percent" field.
func (u *ProgressEventUpsert) AddPercent(v int) *ProgressEventUpsert {
	u.Add(progressevent.FieldPercent, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ProgressEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ProgressEventUpsertOne) UpdateNewValues() *ProgressEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.TaskID(); exists {
			s.SetIgnore(progressevent.FieldTaskID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(progressevent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProgressEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProgressEventUpsertOne) Ignore() *ProgressEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProgressEventUpsertOne) DoNothing() *ProgressEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProgressEventCreate.OnConflict
// documentation for more info.
func (u *ProgressEventUpsertOne) Update(set func(*ProgressEventUpsert)) *ProgressEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProgressEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetStage sets the "stage" field.
func (u *ProgressEventUpsertOne) SetStage(v progressevent.Stage) *ProgressEventUpsertOne {
	return u.Update(func(s *ProgressEventUpsert) {
		s.SetStage(v)
	})
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *ProgressEventUpsertOne) UpdateStage() *ProgressEventUpsertOne {
	return u.Update(func(s *ProgressEventUpsert) {
		s.UpdateStage()
	})
}

// SetMessage sets the "message" field.
func (u *ProgressEventUpsertOne) SetMessage(v string) *ProgressEventUpsertOne {
	return u.Update(func(s *ProgressEventUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *ProgressEventUpsertOne) UpdateMessage() *ProgressEventUpsertOne {
	return u.Update(func(s *ProgressEventUpsert) {
		s.UpdateMessage()
	})
}

// SetPercent sets the "percent" field.
func (u *ProgressEventUpsertOne) SetPercent(v int) *ProgressEventUpsertOne {
	return u.Update(func(s *ProgressEventUpsert) {
		s.SetPercent(v)
	})
}

// AddPercent adds v to the "percent" field.
func (u *ProgressEventUpsertOne) AddPercent(v int) *ProgressEventUpsertOne {
	return u.Update(func(s *ProgressEventUpsert) {
		s.AddPercent(v)
	})
}

// UpdatePercent sets the "percent" field to the value that was provided on create.
func (u *ProgressEventUpsertOne) UpdatePercent() *ProgressEventUpsertOne {
	return u.Update(func(s *ProgressEventUpsert) {
		s.UpdatePercent()
	})
}

// Exec executes the query.
func (u *ProgressEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProgressEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProgressEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProgressEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProgressEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProgressEventCreateBulk is the builder for creating many ProgressEvent entities in bulk.
type ProgressEventCreateBulk struct {
	config
	err      error
	builders []*ProgressEventCreate
	conflict []sql.ConflictOption
}

// Save creates the ProgressEvent entities in the database.
func (_c *ProgressEventCreateBulk) Save(ctx context.Context) ([]*ProgressEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProgressEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressEventMutation)
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
func (_c *ProgressEventCreateBulk) SaveX(ctx context.Context) []*ProgressEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProgressEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProgressEventUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProgressEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProgressEventUpsertBulk {
	_c.conflict = opts
	return &ProgressEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProgressEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProgressEventCreateBulk) OnConflictColumns(columns ...string) *ProgressEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProgressEventUpsertBulk{
		create: _c,
	}
}

// ProgressEventUpsertBulk is the builder for "upsert"-ing
// a bulk of ProgressEvent nodes.
type ProgressEventUpsertBulk struct {
	create *ProgressEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ProgressEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ProgressEventUpsertBulk) UpdateNewValues() *ProgressEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.TaskID(); exists {
				s.SetIgnore(progressevent.FieldTaskID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(progressevent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProgressEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProgressEventUpsertBulk) Ignore() *ProgressEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProgressEventUpsertBulk) DoNothing() *ProgressEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProgressEventCreateBulk.OnConflict
// documentation for more info.
func (u *ProgressEventUpsertBulk) Update(set func(*ProgressEventUpsert)) *ProgressEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProgressEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetStage sets the "stage" field.
func (u *ProgressEventUpsertBulk) SetStage(v progressevent.Stage) *ProgressEventUpsertBulk {
	return u.Update(func(s *ProgressEventUpsert) {
		s.SetStage(v)
	})
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *ProgressEventUpsertBulk) UpdateStage() *ProgressEventUpsertBulk {
	return u.Update(func(s *ProgressEventUpsert) {
		s.UpdateStage()
	})
}

// SetMessage sets the "message" field.
func (u *ProgressEventUpsertBulk) SetMessage(v string) *ProgressEventUpsertBulk {
	return u.Update(func(s *ProgressEventUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *ProgressEventUpsertBulk) UpdateMessage() *ProgressEventUpsertBulk {
	return u.Update(func(s *ProgressEventUpsert) {
		s.UpdateMessage()
	})
}

// SetPercent sets the "percent" field.
func (u *ProgressEventUpsertBulk) SetPercent(v int) *ProgressEventUpsertBulk {
	return u.Update(func(s *ProgressEventUpsert) {
		s.SetPercent(v)
	})
}

// AddPercent adds v to the "percent" field.
func (u *ProgressEventUpsertBulk) AddPercent(v int) *ProgressEventUpsertBulk {
	return u.Update(func(s *ProgressEventUpsert) {
		s.AddPercent(v)
	})
}

// UpdatePercent sets the "percent" field to the value that was provided on create.
func (u *ProgressEventUpsertBulk) UpdatePercent() *ProgressEventUpsertBulk {
	return u.Update(func(s *ProgressEventUpsert) {
		s.UpdatePercent()
	})
}

// Exec executes the query.
func (u *ProgressEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProgressEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProgressEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProgressEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
