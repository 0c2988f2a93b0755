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
	"github.com/redditart/commissioner/ent/productinfo"
)

// ProductInfoCreate is the builder for creating a ProductInfo entity.
type ProductInfoCreate struct {
	config
	mutation *ProductInfoMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *ProductInfoCreate) SetTaskID(v string) *ProductInfoCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetDonationID sets the "donation_id" field.
func (_c *ProductInfoCreate) SetDonationID(v string) *ProductInfoCreate {
	_c.mutation.SetDonationID(v)
	return _c
}

// SetNillableDonationID sets the "donation_id" field if the given value is not nil.
func (_c *ProductInfoCreate) SetNillableDonationID(v *string) *ProductInfoCreate {
	if v != nil {
		_c.SetDonationID(*v)
	}
	return _c
}

// SetPostID sets the "post_id" field.
func (_c *ProductInfoCreate) SetPostID(v string) *ProductInfoCreate {
	_c.mutation.SetPostID(v)
	return _c
}

// SetTheme sets the "theme" field.
func (_c *ProductInfoCreate) SetTheme(v string) *ProductInfoCreate {
	_c.mutation.SetTheme(v)
	return _c
}

// SetImageTitle sets the "image_title" field.
func (_c *ProductInfoCreate) SetImageTitle(v string) *ProductInfoCreate {
	_c.mutation.SetImageTitle(v)
	return _c
}

// SetImageURL sets the "image_url" field.
func (_c *ProductInfoCreate) SetImageURL(v string) *ProductInfoCreate {
	_c.mutation.SetImageURL(v)
	return _c
}

// SetProductURL sets the "product_url" field.
func (_c *ProductInfoCreate) SetProductURL(v string) *ProductInfoCreate {
	_c.mutation.SetProductURL(v)
	return _c
}

// SetTemplateID sets the "template_id" field.
func (_c *ProductInfoCreate) SetTemplateID(v string) *ProductInfoCreate {
	_c.mutation.SetTemplateID(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *ProductInfoCreate) SetModel(v string) *ProductInfoCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetPromptVersion sets the "prompt_version" field.
func (_c *ProductInfoCreate) SetPromptVersion(v string) *ProductInfoCreate {
	_c.mutation.SetPromptVersion(v)
	return _c
}

// SetImageQuality sets the "image_quality" field.
func (_c *ProductInfoCreate) SetImageQuality(v productinfo.ImageQuality) *ProductInfoCreate {
	_c.mutation.SetImageQuality(v)
	return _c
}

// SetNillableImageQuality sets the "image_quality" field if the given value is not nil.
func (_c *ProductInfoCreate) SetNillableImageQuality(v *productinfo.ImageQuality) *ProductInfoCreate {
	if v != nil {
		_c.SetImageQuality(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProductInfoCreate) SetCreatedAt(v time.Time) *ProductInfoCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProductInfoCreate) SetNillableCreatedAt(v *time.Time) *ProductInfoCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProductInfoCreate) SetID(v string) *ProductInfoCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProductInfoCreate) SetNillableID(v *string) *ProductInfoCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ProductInfoMutation object of the builder.
func (_c *ProductInfoCreate) Mutation() *ProductInfoMutation {
	return _c.mutation
}

// Save creates the ProductInfo in the database.
func (_c *ProductInfoCreate) Save(ctx context.Context) (*ProductInfo, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProductInfoCreate) SaveX(ctx context.Context) *ProductInfo {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProductInfoCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProductInfoCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProductInfoCreate) defaults() {
	if _, ok := _c.mutation.ImageQuality(); !ok {
		v := productinfo.DefaultImageQuality
		_c.mutation.SetImageQuality(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := productinfo.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := productinfo.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProductInfoCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "ProductInfo.task_id"`)}
	}
	if _, ok := _c.mutation.PostID(); !ok {
		return &ValidationError{Name: "post_id", err: errors.New(`ent: missing required field "ProductInfo.post_id"`)}
	}
	if _, ok := _c.mutation.Theme(); !ok {
		return &ValidationError{Name: "theme", err: errors.New(`ent: missing required field "ProductInfo.theme"`)}
	}
	if _, ok := _c.mutation.ImageTitle(); !ok {
		return &ValidationError{Name: "image_title", err: errors.New(`ent: missing required field "ProductInfo.image_title"`)}
	}
	if _, ok := _c.mutation.ImageURL(); !ok {
		return &ValidationError{Name: "image_url", err: errors.New(`ent: missing required field "ProductInfo.image_url"`)}
	}
	if _, ok := _c.mutation.ProductURL(); !ok {
		return &ValidationError{Name: "product_url", err: errors.New(`ent: missing required field "ProductInfo.product_url"`)}
	}
	if _, ok := _c.mutation.TemplateID(); !ok {
		return &ValidationError{Name: "template_id", err: errors.New(`ent: missing required field "ProductInfo.template_id"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "ProductInfo.model"`)}
	}
	if _, ok := _c.mutation.PromptVersion(); !ok {
		return &ValidationError{Name: "prompt_version", err: errors.New(`ent: missing required field "ProductInfo.prompt_version"`)}
	}
	if _, ok := _c.mutation.ImageQuality(); !ok {
		return &ValidationError{Name: "image_quality", err: errors.New(`ent: missing required field "ProductInfo.image_quality"`)}
	}
	if v, ok := _c.mutation.ImageQuality(); ok {
		if err := productinfo.ImageQualityValidator(v); err != nil {
			return &ValidationError{Name: "image_quality", err: fmt.Errorf(`ent: validator failed for field "ProductInfo.image_quality": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProductInfo.created_at"`)}
	}
	return nil
}

func (_c *ProductInfoCreate) sqlSave(ctx context.Context) (*ProductInfo, error) {
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
			return nil, fmt.Errorf("unexpected ProductInfo.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProductInfoCreate) createSpec() (*ProductInfo, *sqlgraph.CreateSpec) {
	var (
		_node = &ProductInfo{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(productinfo.Table, sqlgraph.NewFieldSpec(productinfo.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(productinfo.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.DonationID(); ok {
		_spec.SetField(productinfo.FieldDonationID, field.TypeString, value)
		_node.DonationID = &value
	}
	if value, ok := _c.mutation.PostID(); ok {
		_spec.SetField(productinfo.FieldPostID, field.TypeString, value)
		_node.PostID = value
	}
	if value, ok := _c.mutation.Theme(); ok {
		_spec.SetField(productinfo.FieldTheme, field.TypeString, value)
		_node.Theme = value
	}
	if value, ok := _c.mutation.ImageTitle(); ok {
		_spec.SetField(productinfo.FieldImageTitle, field.TypeString, value)
		_node.ImageTitle = value
	}
	if value, ok := _c.mutation.ImageURL(); ok {
		_spec.SetField(productinfo.FieldImageURL, field.TypeString, value)
		_node.ImageURL = value
	}
	if value, ok := _c.mutation.ProductURL(); ok {
		_spec.SetField(productinfo.FieldProductURL, field.TypeString, value)
		_node.ProductURL = value
	}
	if value, ok := _c.mutation.TemplateID(); ok {
		_spec.SetField(productinfo.FieldTemplateID, field.TypeString, value)
		_node.TemplateID = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(productinfo.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.PromptVersion(); ok {
		_spec.SetField(productinfo.FieldPromptVersion, field.TypeString, value)
		_node.PromptVersion = value
	}
	if value, ok := _c.mutation.ImageQuality(); ok {
		_spec.SetField(productinfo.FieldImageQuality, field.TypeEnum, value)
		_node.ImageQuality = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(productinfo.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProductInfo.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProductInfoUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProductInfoCreate) OnConflict(opts ...sql.ConflictOption) *ProductInfoUpsertOne {
	_c.conflict = opts
	return &ProductInfoUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProductInfo.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProductInfoCreate) OnConflictColumns(columns ...string) *ProductInfoUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProductInfoUpsertOne{
		create: _c,
	}
}

type (
	// ProductInfoUpsertOne is the builder for "upsert"-ing
	//  one ProductInfo node.
	ProductInfoUpsertOne struct {
		create *ProductInfoCreate
	}

	// ProductInfoUpsert is the "OnConflict" setter.
	ProductInfoUpsert struct {
		*sql.UpdateSet
	}
)

// SetTheme sets the "theme" field.
func (u *ProductInfoUpsert) SetTheme(v string) *ProductInfoUpsert {
	u.Set(productinfo.FieldTheme, v)
	return u
}

// UpdateTheme sets the "theme" field to the value that was provided on create.
func (u *ProductInfoUpsert) UpdateTheme() *ProductInfoUpsert {
	u.SetExcluded(productinfo.FieldTheme)
	return u
}

// SetImageTitle sets the "image_title" field.
func (u *ProductInfoUpsert) SetImageTitle(v string) *ProductInfoUpsert {
	u.Set(productinfo.FieldImageTitle, v)
	return u
}

// UpdateImageTitle sets the "image_title" field to the value that was provided on create.
func (u *ProductInfoUpsert) UpdateImageTitle() *ProductInfoUpsert {
	u.SetExcluded(productinfo.FieldImageTitle)
	return u
}

// SetImageURL sets the "image_url" field.
func (u *ProductInfoUpsert) SetImageURL(v string) *ProductInfoUpsert {
	u.Set(productinfo.FieldImageURL, v)
	return u
}

// UpdateImageURL sets the "image_url" field to the value that was provided on create.
func (u *ProductInfoUpsert) UpdateImageURL() *ProductInfoUpsert {
	u.SetExcluded(productinfo.FieldImageURL)
	return u
}

// SetProductURL sets the "product_url" field.
func (u *ProductInfoUpsert) SetProductURL(v string) *ProductInfoUpsert {
	u.Set(productinfo.FieldProductURL, v)
	return u
}

// UpdateProductURL sets the "product_url" field to the value that was provided on create.
func (u *ProductInfoUpsert) UpdateProductURL() *ProductInfoUpsert {
	u.SetExcluded(productinfo.FieldProductURL)
	return u
}

// SetTemplateID sets the "template_id" field.
func (u *ProductInfoUpsert) SetTemplateID(v string) *ProductInfoUpsert {
	u.Set(productinfo.FieldTemplateID, v)
	return u
}

// UpdateTemplateID sets the "template_id" field to the value that was provided on create.
func (u *ProductInfoUpsert) UpdateTemplateID() *ProductInfoUpsert {
	u.SetExcluded(productinfo.FieldTemplateID)
	return u
}

// SetModel sets the "model" field.
func (u *ProductInfoUpsert) SetModel(v string) *ProductInfoUpsert {
	u.Set(productinfo.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *ProductInfoUpsert) UpdateModel() *ProductInfoUpsert {
	u.SetExcluded(productinfo.FieldModel)
	return u
}

// SetPromptVersion sets the "prompt_version" field.
func (u *ProductInfoUpsert) SetPromptVersion(v string) *ProductInfoUpsert {
	u.Set(productinfo.FieldPromptVersion, v)
	return u
}

// UpdatePromptVersion sets the "prompt_version" field to the value that was provided on create.
func (u *ProductInfoUpsert) UpdatePromptVersion() *ProductInfoUpsert {
	u.SetExcluded(productinfo.FieldPromptVersion)
	return u
}

// SetImageQuality sets the "image_quality" field.
func (u *ProductInfoUpsert) SetImageQuality(v productinfo.ImageQuality) *ProductInfoUpsert {
	u.Set(productinfo.FieldImageQuality, v)
	return u
}

// UpdateImageQuality sets the "image_quality" field to the value that was provided on create.
func (u *ProductInfoUpsert) UpdateImageQuality() *ProductInfoUpsert {
	u.SetExcluded(productinfo.FieldImageQuality)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ProductInfo.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(productinfo.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProductInfoUpsertOne) UpdateNewValues() *ProductInfoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(productinfo.FieldID)
		}
		if _, exists := u.create.mutation.TaskID(); exists {
			s.SetIgnore(productinfo.FieldTaskID)
		}
		if _, exists := u.create.mutation.DonationID(); exists {
			s.SetIgnore(productinfo.FieldDonationID)
		}
		if _, exists := u.create.mutation.PostID(); exists {
			s.SetIgnore(productinfo.FieldPostID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(productinfo.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProductInfo.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProductInfoUpsertOne) Ignore() *ProductInfoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProductInfoUpsertOne) DoNothing() *ProductInfoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProductInfoCreate.OnConflict
// documentation for more info.
func (u *ProductInfoUpsertOne) Update(set func(*ProductInfoUpsert)) *ProductInfoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProductInfoUpsert{UpdateSet: update})
	}))
	return u
}

// SetTheme sets the "theme" field.
func (u *ProductInfoUpsertOne) SetTheme(v string) *ProductInfoUpsertOne {
	return u.Update(func(s *ProductInfoUpsert) {
		s.SetTheme(v)
	})
}

// UpdateTheme sets the "theme" field to the value that was provided on create.
func (u *ProductInfoUpsertOne) UpdateTheme() *ProductInfoUpsertOne {
	return u.Update(func(s *ProductInfoUpsert) {
		s.UpdateTheme()
	})
}

// SetImageTitle sets the "image_title" field.
func (u *ProductInfoUpsertOne) SetImageTitle(v string) *ProductInfoUpsertOne {
	return u.Update(func(s *ProductInfoUpsert) {
		s.SetImageTitle(v)
	})
}

// UpdateImageTitle sets the "image_title" field to the value that was provided on create.
func (u *ProductInfoUpsertOne) UpdateImageTitle() *ProductInfoUpsertOne {
	return u.Update(func(s *ProductInfoUpsert) {
		s.UpdateImageTitle()
	})
}

// SetImageURL sets the "image_url" field.
func (u *ProductInfoUpsertOne) SetImageURL(v string) *ProductInfoUpsertOne {
	return u.Update(func(s *ProductInfoUpsert) {
		s.SetImageURL(v)
	})
}

// UpdateImageURL sets the "image_url" field to the value that was provided on create.
func (u *ProductInfoUpsertOne) UpdateImageURL() *ProductInfoUpsertOne {
	return u.Update(func(s *ProductInfoUpsert) {
		s.UpdateImageURL()
	})
}

// SetProductURL sets the "product_url" field.
func (u *ProductInfoUpsertOne) SetProductURL(v string) *ProductInfoUpsertOne {
	return u.Update(func(s *ProductInfoUpsert) {
		s.SetProductURL(v)
	})
}

// UpdateProductURL sets the "product_url" field to the value that was provided on create.
func (u *ProductInfoUpsertOne) UpdateProductURL() *ProductInfoUpsertOne {
	return u.Update(func(s *ProductInfoUpsert) {
		s.UpdateProductURL()
	})
}

// SetTemplateID sets the "template_id" field.
func (u *ProductInfoUpsertOne) SetTemplateID(v string) *ProductInfoUpsertOne {
	return u.Update(func(s *ProductInfoUpsert) {
		s.SetTemplateID(v)
	})
}

// UpdateTemplateID sets the "template_id" field to the value that was provided on create.
func (u *ProductInfoUpsertOne) UpdateTemplateID() *ProductInfoUpsertOne {
	return u.Update(func(s *ProductInfoUpsert) {
		s.UpdateTemplateID()
	})
}

// SetModel sets the "model" field.
func (u *ProductInfoUpsertOne) SetModel(v string) *ProductInfoUpsertOne {
	return u.Update(func(s *ProductInfoUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *ProductInfoUpsertOne) UpdateModel() *ProductInfoUpsertOne {
	return u.Update(func(s *ProductInfoUpsert) {
		s.UpdateModel()
	})
}

// SetPromptVersion sets the "prompt_version" field.
func (u *ProductInfoUpsertOne) SetPromptVersion(v string) *ProductInfoUpsertOne {
	return u.Update(func(s *ProductInfoUpsert) {
		s.SetPromptVersion(v)
	})
}

// UpdatePromptVersion sets the "prompt_version" field to the value that was provided on create.
func (u *ProductInfoUpsertOne) UpdatePromptVersion() *ProductInfoUpsertOne {
	return u.Update(func(s *ProductInfoUpsert) {
		s.UpdatePromptVersion()
	})
}

// SetImageQuality sets the "image_quality" field.
func (u *ProductInfoUpsertOne) SetImageQuality(v productinfo.ImageQuality) *ProductInfoUpsertOne {
	return u.Update(func(s *ProductInfoUpsert) {
		s.SetImageQuality(v)
	})
}

// UpdateImageQuality sets the "image_quality" field to the value that was provided on create.
func (u *ProductInfoUpsertOne) UpdateImageQuality() *ProductInfoUpsertOne {
	return u.Update(func(s *ProductInfoUpsert) {
		s.UpdateImageQuality()
	})
}

// Exec executes the query.
func (u *ProductInfoUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProductInfoCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProductInfoUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProductInfoUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ProductInfoUpsertOne.ID is not supported by MySQL driver. Use ProductInfoUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProductInfoUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProductInfoCreateBulk is the builder for creating many ProductInfo entities in bulk.
type ProductInfoCreateBulk struct {
	config
	err      error
	builders []*ProductInfoCreate
	conflict []sql.ConflictOption
}

// Save creates the ProductInfo entities in the database.
func (_c *ProductInfoCreateBulk) Save(ctx context.Context) ([]*ProductInfo, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProductInfo, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProductInfoMutation)
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
func (_c *ProductInfoCreateBulk) SaveX(ctx context.Context) []*ProductInfo {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProductInfoCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProductInfoCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProductInfo.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProductInfoUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProductInfoCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProductInfoUpsertBulk {
	_c.conflict = opts
	return &ProductInfoUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProductInfo.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProductInfoCreateBulk) OnConflictColumns(columns ...string) *ProductInfoUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProductInfoUpsertBulk{
		create: _c,
	}
}

// ProductInfoUpsertBulk is the builder for "upsert"-ing
// a bulk of ProductInfo nodes.
type ProductInfoUpsertBulk struct {
	create *ProductInfoCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ProductInfo.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(productinfo.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProductInfoUpsertBulk) UpdateNewValues() *ProductInfoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(productinfo.FieldID)
			}
			if _, exists := b.mutation.TaskID(); exists {
				s.SetIgnore(productinfo.FieldTaskID)
			}
			if _, exists := b.mutation.DonationID(); exists {
				s.SetIgnore(productinfo.FieldDonationID)
			}
			if _, exists := b.mutation.PostID(); exists {
				s.SetIgnore(productinfo.FieldPostID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(productinfo.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProductInfo.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProductInfoUpsertBulk) Ignore() *ProductInfoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProductInfoUpsertBulk) DoNothing() *ProductInfoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProductInfoCreateBulk.OnConflict
// documentation for more info.
func (u *ProductInfoUpsertBulk) Update(set func(*ProductInfoUpsert)) *ProductInfoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProductInfoUpsert{UpdateSet: update})
	}))
	return u
}

// SetTheme sets the "theme" field.
func (u *ProductInfoUpsertBulk) SetTheme(v string) *ProductInfoUpsertBulk {
	return u.Update(func(s *ProductInfoUpsert) {
		s.SetTheme(v)
	})
}

// UpdateTheme sets the "theme" field to the value that was provided on create.
func (u *ProductInfoUpsertBulk) UpdateTheme() *ProductInfoUpsertBulk {
	return u.Update(func(s *ProductInfoUpsert) {
		s.UpdateTheme()
	})
}

// SetImageTitle sets the "image_title" field.
func (u *ProductInfoUpsertBulk) SetImageTitle(v string) *ProductInfoUpsertBulk {
	return u.Update(func(s *ProductInfoUpsert) {
		s.SetImageTitle(v)
	})
}

// UpdateImageTitle sets the "image_title" field to the value that was provided on create.
func (u *ProductInfoUpsertBulk) UpdateImageTitle() *ProductInfoUpsertBulk {
	return u.Update(func(s *ProductInfoUpsert) {
		s.UpdateImageTitle()
	})
}

// SetImageURL sets the "image_url" field.
func (u *ProductInfoUpsertBulk) SetImageURL(v string) *ProductInfoUpsertBulk {
	return u.Update(func(s *ProductInfoUpsert) {
		s.SetImageURL(v)
	})
}

// UpdateImageURL sets the "image_url" field to the value that was provided on create.
func (u *ProductInfoUpsertBulk) UpdateImageURL() *ProductInfoUpsertBulk {
	return u.Update(func(s *ProductInfoUpsert) {
		s.UpdateImageURL()
	})
}

// SetProductURL sets the "product_url" field.
func (u *ProductInfoUpsertBulk) SetProductURL(v string) *ProductInfoUpsertBulk {
	return u.Update(func(s *ProductInfoUpsert) {
		s.SetProductURL(v)
	})
}

// UpdateProductURL sets the "product_url" field to the value that was provided on create.
func (u *ProductInfoUpsertBulk) UpdateProductURL() *ProductInfoUpsertBulk {
	return u.Update(func(s *ProductInfoUpsert) {
		s.UpdateProductURL()
	})
}

// SetTemplateID sets the "template_id" field.
func (u *ProductInfoUpsertBulk) SetTemplateID(v string) *ProductInfoUpsertBulk {
	return u.Update(func(s *ProductInfoUpsert) {
		s.SetTemplateID(v)
	})
}

// UpdateTemplateID sets the "template_id" field to the value that was provided on create.
func (u *ProductInfoUpsertBulk) UpdateTemplateID() *ProductInfoUpsertBulk {
	return u.Update(func(s *ProductInfoUpsert) {
		s.UpdateTemplateID()
	})
}

// SetModel sets the "model" field.
func (u *ProductInfoUpsertBulk) SetModel(v string) *ProductInfoUpsertBulk {
	return u.Update(func(s *ProductInfoUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *ProductInfoUpsertBulk) UpdateModel() *ProductInfoUpsertBulk {
	return u.Update(func(s *ProductInfoUpsert) {
		s.UpdateModel()
	})
}

// SetPromptVersion sets the "prompt_version" field.
func (u *ProductInfoUpsertBulk) SetPromptVersion(v string) *ProductInfoUpsertBulk {
	return u.Update(func(s *ProductInfoUpsert) {
		s.SetPromptVersion(v)
	})
}

// UpdatePromptVersion sets the "prompt_version" field to the value that was provided on create.
func (u *ProductInfoUpsertBulk) UpdatePromptVersion() *ProductInfoUpsertBulk {
	return u.Update(func(s *ProductInfoUpsert) {
		s.UpdatePromptVersion()
	})
}

// SetImageQuality sets the "image_quality" field.
func (u *ProductInfoUpsertBulk) SetImageQuality(v productinfo.ImageQuality) *ProductInfoUpsertBulk {
	return u.Update(func(s *ProductInfoUpsert) {
		s.SetImageQuality(v)
	})
}

// UpdateImageQuality sets the "image_quality" field to the value that was provided on create.
func (u *ProductInfoUpsertBulk) UpdateImageQuality() *ProductInfoUpsertBulk {
	return u.Update(func(s *ProductInfoUpsert) {
		s.UpdateImageQuality()
	})
}

// Exec executes the query.
func (u *ProductInfoUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProductInfoCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProductInfoCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProductInfoUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
