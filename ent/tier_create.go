// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/redditart/commissioner/ent/tier"
)

// TierCreate is the builder for creating a Tier entity.
type TierCreate struct {
	config
	mutation *TierMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *TierCreate) SetName(v string) *TierCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetMinAmount sets the "min_amount" field.
func (_c *TierCreate) SetMinAmount(v int64) *TierCreate {
	_c.mutation.SetMinAmount(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *TierCreate) SetDisplayName(v string) *TierCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetColor sets the "color" field.
func (_c *TierCreate) SetColor(v string) *TierCreate {
	_c.mutation.SetColor(v)
	return _c
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_c *TierCreate) SetNillableColor(v *string) *TierCreate {
	if v != nil {
		_c.SetColor(*v)
	}
	return _c
}

// SetHd sets the "hd" field.
func (_c *TierCreate) SetHd(v bool) *TierCreate {
	_c.mutation.SetHd(v)
	return _c
}

// SetNillableHd sets the "hd" field if the given value is not nil.
func (_c *TierCreate) SetNillableHd(v *bool) *TierCreate {
	if v != nil {
		_c.SetHd(*v)
	}
	return _c
}

// Mutation returns the TierMutation object of the builder.
func (_c *TierCreate) Mutation() *TierMutation {
	return _c.mutation
}

// Save creates the Tier in the database.
func (_c *TierCreate) Save(ctx context.Context) (*Tier, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TierCreate) SaveX(ctx context.Context) *Tier {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TierCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TierCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TierCreate) defaults() {
	if _, ok := _c.mutation.Hd(); !ok {
		v := tier.DefaultHd
		_c.mutation.SetHd(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TierCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Tier.name"`)}
	}
	if _, ok := _c.mutation.MinAmount(); !ok {
		return &ValidationError{Name: "min_amount", err: errors.New(`ent: missing required field "Tier.min_amount"`)}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "Tier.display_name"`)}
	}
	if _, ok := _c.mutation.Hd(); !ok {
		return &ValidationError{Name: "hd", err: errors.New(`ent: missing required field "Tier.hd"`)}
	}
	return nil
}

func (_c *TierCreate) sqlSave(ctx context.Context) (*Tier, error) {
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

func (_c *TierCreate) createSpec() (*Tier, *sqlgraph.CreateSpec) {
	var (
		_node = &Tier{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tier.Table, sqlgraph.NewFieldSpec(tier.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(tier.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.MinAmount(); ok {
		_spec.SetField(tier.FieldMinAmount, field.TypeInt64, value)
		_node.MinAmount = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(tier.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Color(); ok {
		_spec.SetField(tier.FieldColor, field.TypeString, value)
		_node.Color = value
	}
	if value, ok := _c.mutation.Hd(); ok {
		_spec.SetField(tier.FieldHd, field.TypeBool, value)
		_node.Hd = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Tier.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TierUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *TierCreate) OnConflict(opts ...sql.ConflictOption) *TierUpsertOne {
	_c.conflict = opts
	return &TierUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Tier.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TierCreate) OnConflictColumns(columns ...string) *TierUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TierUpsertOne{
		create: _c,
	}
}

type (
	// TierUpsertOne is the builder for "upsert"-ing
	//  one Tier node.
	TierUpsertOne struct {
		create *TierCreate
	}

	// TierUpsert is the "OnConflict" setter.
	TierUpsert struct {
		*sql.UpdateSet
	}
)

// SetMinAmount sets the "min_amount" field.
func (u *TierUpsert) SetMinAmount(v int64) *TierUpsert {
	u.Set(tier.FieldMinAmount, v)
	return u
}

// UpdateMinAmount sets the "min_amount" field to the value that was provided on create.
func (u *TierUpsert) UpdateMinAmount() *TierUpsert {
	u.SetExcluded(tier.FieldMinAmount)
	return u
}

// AddMinAmount adds v to the "min_amount" field.
func (u *TierUpsert) AddMinAmount(v int64) *TierUpsert {
	u.Add(tier.FieldMinAmount, v)
	return u
}

// SetDisplayName sets the "display_name" field.
func (u *TierUpsert) SetDisplayName(v string) *TierUpsert {
	u.Set(tier.FieldDisplayName, v)
	return u
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *TierUpsert) UpdateDisplayName() *TierUpsert {
	u.SetExcluded(tier.FieldDisplayName)
	return u
}

// SetColor sets the "color" field.
func (u *TierUpsert) SetColor(v string) *TierUpsert {
	u.Set(tier.FieldColor, v)
	return u
}

// UpdateColor sets the "color" field to the value that was provided on create.
func (u *TierUpsert) UpdateColor() *TierUpsert {
	u.SetExcluded(tier.FieldColor)
	return u
}

// ClearColor clears the value of the "color" field.
func (u *TierUpsert) ClearColor() *TierUpsert {
	u.SetNull(tier.FieldColor)
	return u
}

// SetHd sets the "hd" field.
func (u *TierUpsert) SetHd(v bool) *TierUpsert {
	u.Set(tier.FieldHd, v)
	return u
}

// UpdateHd sets the "hd" field to the value that was provided on create.
func (u *TierUpsert) UpdateHd() *TierUpsert {
	u.SetExcluded(tier.FieldHd)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Tier.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TierUpsertOne) UpdateNewValues() *TierUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Name(); exists {
			s.SetIgnore(tier.FieldName)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Tier.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TierUpsertOne) Ignore() *TierUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TierUpsertOne) DoNothing() *TierUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TierCreate.OnConflict
// documentation for more info.
func (u *TierUpsertOne) Update(set func(*TierUpsert)) *TierUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TierUpsert{UpdateSet: update})
	}))
	return u
}

// SetMinAmount sets the "min_amount" field.
func (u *TierUpsertOne) SetMinAmount(v int64) *TierUpsertOne {
	return u.Update(func(s *TierUpsert) {
		s.SetMinAmount(v)
	})
}

// AddMinAmount adds v to the "min_amount" field.
func (u *TierUpsertOne) AddMinAmount(v int64) *TierUpsertOne {
	return u.Update(func(s *TierUpsert) {
		s.AddMinAmount(v)
	})
}

// UpdateMinAmount sets the "min_amount" field to the value that was provided on create.
func (u *TierUpsertOne) UpdateMinAmount() *TierUpsertOne {
	return u.Update(func(s *TierUpsert) {
		s.UpdateMinAmount()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *TierUpsertOne) SetDisplayName(v string) *TierUpsertOne {
	return u.Update(func(s *TierUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *TierUpsertOne) UpdateDisplayName() *TierUpsertOne {
	return u.Update(func(s *TierUpsert) {
		s.UpdateDisplayName()
	})
}

// SetColor sets the "color" field.
func (u *TierUpsertOne) SetColor(v string) *TierUpsertOne {
	return u.Update(func(s *TierUpsert) {
		s.SetColor(v)
	})
}

// UpdateColor sets the "color" field to the value that was provided on create.
func (u *TierUpsertOne) UpdateColor() *TierUpsertOne {
	return u.Update(func(s *TierUpsert) {
		s.UpdateColor()
	})
}

// ClearColor clears the value of the "color" field.
func (u *TierUpsertOne) ClearColor() *TierUpsertOne {
	return u.Update(func(s *TierUpsert) {
		s.ClearColor()
	})
}

// SetHd sets the "hd" field.
func (u *TierUpsertOne) SetHd(v bool) *TierUpsertOne {
	return u.Update(func(s *TierUpsert) {
		s.SetHd(v)
	})
}

// UpdateHd sets the "hd" field to the value that was provided on create.
func (u *TierUpsertOne) UpdateHd() *TierUpsertOne {
	return u.Update(func(s *TierUpsert) {
		s.UpdateHd()
	})
}

// Exec executes the query.
func (u *TierUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TierCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TierUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TierUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TierUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TierCreateBulk is the builder for creating many Tier entities in bulk.
type TierCreateBulk struct {
	config
	err      error
	builders []*TierCreate
	conflict []sql.ConflictOption
}

// Save creates the Tier entities in the database.
func (_c *TierCreateBulk) Save(ctx context.Context) ([]*Tier, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Tier, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TierMutation)
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
func (_c *TierCreateBulk) SaveX(ctx context.Context) []*Tier {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TierCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TierCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Tier.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TierUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *TierCreateBulk) OnConflict(opts ...sql.ConflictOption) *TierUpsertBulk {
	_c.conflict = opts
	return &TierUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Tier.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TierCreateBulk) OnConflictColumns(columns ...string) *TierUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TierUpsertBulk{
		create: _c,
	}
}

// TierUpsertBulk is the builder for "upsert"-ing
// a bulk of Tier nodes.
type TierUpsertBulk struct {
	create *TierCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Tier.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TierUpsertBulk) UpdateNewValues() *TierUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Name(); exists {
				s.SetIgnore(tier.FieldName)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Tier.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TierUpsertBulk) Ignore() *TierUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TierUpsertBulk) DoNothing() *TierUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TierCreateBulk.OnConflict
// documentation for more info.
func (u *TierUpsertBulk) Update(set func(*TierUpsert)) *TierUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TierUpsert{UpdateSet: update})
	}))
	return u
}

// SetMinAmount sets the "min_amount" field.
func (u *TierUpsertBulk) SetMinAmount(v int64) *TierUpsertBulk {
	return u.Update(func(s *TierUpsert) {
		s.SetMinAmount(v)
	})
}

// AddMinAmount adds v to the "min_amount" field.
func (u *TierUpsertBulk) AddMinAmount(v int64) *TierUpsertBulk {
	return u.Update(func(s *TierUpsert) {
		s.AddMinAmount(v)
	})
}

// UpdateMinAmount sets the "min_amount" field to the value that was provided on create.
func (u *TierUpsertBulk) UpdateMinAmount() *TierUpsertBulk {
	return u.Update(func(s *TierUpsert) {
		s.UpdateMinAmount()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *TierUpsertBulk) SetDisplayName(v string) *TierUpsertBulk {
	return u.Update(func(s *TierUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *TierUpsertBulk) UpdateDisplayName() *TierUpsertBulk {
	return u.Update(func(s *TierUpsert) {
		s.UpdateDisplayName()
	})
}

// SetColor sets the "color" field.
func (u *TierUpsertBulk) SetColor(v string) *TierUpsertBulk {
	return u.Update(func(s *TierUpsert) {
		s.SetColor(v)
	})
}

// UpdateColor sets the "color" field to the value that was provided on create.
func (u *TierUpsertBulk) UpdateColor() *TierUpsertBulk {
	return u.Update(func(s *TierUpsert) {
		s.UpdateColor()
	})
}

// ClearColor clears the value of the "color" field.
func (u *TierUpsertBulk) ClearColor() *TierUpsertBulk {
	return u.Update(func(s *TierUpsert) {
		s.ClearColor()
	})
}

// SetHd sets the "hd" field.
func (u *TierUpsertBulk) SetHd(v bool) *TierUpsertBulk {
	return u.Update(func(s *TierUpsert) {
		s.SetHd(v)
	})
}

// UpdateHd sets the "hd" field to the value that was provided on create.
func (u *TierUpsertBulk) UpdateHd() *TierUpsertBulk {
	return u.Update(func(s *TierUpsert) {
		s.UpdateHd()
	})
}

// Exec executes the query.
func (u *TierUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TierCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TierCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TierUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
