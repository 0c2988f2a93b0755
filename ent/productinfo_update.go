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
	"github.com/redditart/commissioner/ent/productinfo"
)

// ProductInfoUpdate is the builder for updating ProductInfo entities.
type ProductInfoUpdate struct {
	config
	hooks    []Hook
	mutation *ProductInfoMutation
}

// Where appends a list predicates to the ProductInfoUpdate builder.
func (_u *ProductInfoUpdate) Where(ps ...predicate.ProductInfo) *ProductInfoUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTheme sets the "theme" field.
func (_u *ProductInfoUpdate) SetTheme(v string) *ProductInfoUpdate {
	_u.mutation.SetTheme(v)
	return _u
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_u *ProductInfoUpdate) SetNillableTheme(v *string) *ProductInfoUpdate {
	if v != nil {
		_u.SetTheme(*v)
	}
	return _u
}

// SetImageTitle sets the "image_title" field.
func (_u *ProductInfoUpdate) SetImageTitle(v string) *ProductInfoUpdate {
	_u.mutation.SetImageTitle(v)
	return _u
}

// SetNillableImageTitle sets the "image_title" field if the given value is not nil.
func (_u *ProductInfoUpdate) SetNillableImageTitle(v *string) *ProductInfoUpdate {
	if v != nil {
		_u.SetImageTitle(*v)
	}
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *ProductInfoUpdate) SetImageURL(v string) *ProductInfoUpdate {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *ProductInfoUpdate) SetNillableImageURL(v *string) *ProductInfoUpdate {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// SetProductURL sets the "product_url" field.
func (_u *ProductInfoUpdate) SetProductURL(v string) *ProductInfoUpdate {
	_u.mutation.SetProductURL(v)
	return _u
}

// SetNillableProductURL sets the "product_url" field if the given value is not nil.
func (_u *ProductInfoUpdate) SetNillableProductURL(v *string) *ProductInfoUpdate {
	if v != nil {
		_u.SetProductURL(*v)
	}
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *ProductInfoUpdate) SetTemplateID(v string) *ProductInfoUpdate {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *ProductInfoUpdate) SetNillableTemplateID(v *string) *ProductInfoUpdate {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *ProductInfoUpdate) SetModel(v string) *ProductInfoUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ProductInfoUpdate) SetNillableModel(v *string) *ProductInfoUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPromptVersion sets the "prompt_version" field.
func (_u *ProductInfoUpdate) SetPromptVersion(v string) *ProductInfoUpdate {
	_u.mutation.SetPromptVersion(v)
	return _u
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_u *ProductInfoUpdate) SetNillablePromptVersion(v *string) *ProductInfoUpdate {
	if v != nil {
		_u.SetPromptVersion(*v)
	}
	return _u
}

// SetImageQuality sets the "image_quality" field.
func (_u *ProductInfoUpdate) SetImageQuality(v productinfo.ImageQuality) *ProductInfoUpdate {
	_u.mutation.SetImageQuality(v)
	return _u
}

// SetNillableImageQuality sets the "image_quality" field if the given value is not nil.
func (_u *ProductInfoUpdate) SetNillableImageQuality(v *productinfo.ImageQuality) *ProductInfoUpdate {
	if v != nil {
		_u.SetImageQuality(*v)
	}
	return _u
}

// Mutation returns the ProductInfoMutation object of the builder.
func (_u *ProductInfoUpdate) Mutation() *ProductInfoMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProductInfoUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProductInfoUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProductInfoUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProductInfoUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProductInfoUpdate) check() error {
	if v, ok := _u.mutation.ImageQuality(); ok {
		if err := productinfo.ImageQualityValidator(v); err != nil {
			return &ValidationError{Name: "image_quality", err: fmt.Errorf(`ent: validator failed for field "ProductInfo.image_quality": %w`, err)}
		}
	}
	return nil
}

func (_u *ProductInfoUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(productinfo.Table, productinfo.Columns, sqlgraph.NewFieldSpec(productinfo.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.DonationIDCleared() {
		_spec.ClearField(productinfo.FieldDonationID, field.TypeString)
	}
	if value, ok := _u.mutation.Theme(); ok {
		_spec.SetField(productinfo.FieldTheme, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageTitle(); ok {
		_spec.SetField(productinfo.FieldImageTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(productinfo.FieldImageURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProductURL(); ok {
		_spec.SetField(productinfo.FieldProductURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.TemplateID(); ok {
		_spec.SetField(productinfo.FieldTemplateID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(productinfo.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptVersion(); ok {
		_spec.SetField(productinfo.FieldPromptVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageQuality(); ok {
		_spec.SetField(productinfo.FieldImageQuality, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{productinfo.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProductInfoUpdateOne is the builder for updating a single ProductInfo entity.
type ProductInfoUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProductInfoMutation
}

// SetTheme sets the "theme" field.
func (_u *ProductInfoUpdateOne) SetTheme(v string) *ProductInfoUpdateOne {
	_u.mutation.SetTheme(v)
	return _u
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_u *ProductInfoUpdateOne) SetNillableTheme(v *string) *ProductInfoUpdateOne {
	if v != nil {
		_u.SetTheme(*v)
	}
	return _u
}

// SetImageTitle sets the "image_title" field.
func (_u *ProductInfoUpdateOne) SetImageTitle(v string) *ProductInfoUpdateOne {
	_u.mutation.SetImageTitle(v)
	return _u
}

// SetNillableImageTitle sets the "image_title" field if the given value is not nil.
func (_u *ProductInfoUpdateOne) SetNillableImageTitle(v *string) *ProductInfoUpdateOne {
	if v != nil {
		_u.SetImageTitle(*v)
	}
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *ProductInfoUpdateOne) SetImageURL(v string) *ProductInfoUpdateOne {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *ProductInfoUpdateOne) SetNillableImageURL(v *string) *ProductInfoUpdateOne {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// SetProductURL sets the "product_url" field.
func (_u *ProductInfoUpdateOne) SetProductURL(v string) *ProductInfoUpdateOne {
	_u.mutation.SetProductURL(v)
	return _u
}

// SetNillableProductURL sets the "product_url" field if the given value is not nil.
func (_u *ProductInfoUpdateOne) SetNillableProductURL(v *string) *ProductInfoUpdateOne {
	if v != nil {
		_u.SetProductURL(*v)
	}
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *ProductInfoUpdateOne) SetTemplateID(v string) *ProductInfoUpdateOne {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *ProductInfoUpdateOne) SetNillableTemplateID(v *string) *ProductInfoUpdateOne {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *ProductInfoUpdateOne) SetModel(v string) *ProductInfoUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ProductInfoUpdateOne) SetNillableModel(v *string) *ProductInfoUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPromptVersion sets the "prompt_version" field.
func (_u *ProductInfoUpdateOne) SetPromptVersion(v string) *ProductInfoUpdateOne {
	_u.mutation.SetPromptVersion(v)
	return _u
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_u *ProductInfoUpdateOne) SetNillablePromptVersion(v *string) *ProductInfoUpdateOne {
	if v != nil {
		_u.SetPromptVersion(*v)
	}
	return _u
}

// SetImageQuality sets the "image_quality" field.
func (_u *ProductInfoUpdateOne) SetImageQuality(v productinfo.ImageQuality) *ProductInfoUpdateOne {
	_u.mutation.SetImageQuality(v)
	return _u
}

// SetNillableImageQuality sets the "image_quality" field if the given value is not nil.
func (_u *ProductInfoUpdateOne) SetNillableImageQuality(v *productinfo.ImageQuality) *ProductInfoUpdateOne {
	if v != nil {
		_u.SetImageQuality(*v)
	}
	return _u
}

// Mutation returns the ProductInfoMutation object of the builder.
func (_u *ProductInfoUpdateOne) Mutation() *ProductInfoMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProductInfoUpdate builder.
func (_u *ProductInfoUpdateOne) Where(ps ...predicate.ProductInfo) *ProductInfoUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProductInfoUpdateOne) Select(field string, fields ...string) *ProductInfoUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProductInfo entity.
func (_u *ProductInfoUpdateOne) Save(ctx context.Context) (*ProductInfo, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProductInfoUpdateOne) SaveX(ctx context.Context) *ProductInfo {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProductInfoUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProductInfoUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProductInfoUpdateOne) check() error {
	if v, ok := _u.mutation.ImageQuality(); ok {
		if err := productinfo.ImageQualityValidator(v); err != nil {
			return &ValidationError{Name: "image_quality", err: fmt.Errorf(`ent: validator failed for field "ProductInfo.image_quality": %w`, err)}
		}
	}
	return nil
}

func (_u *ProductInfoUpdateOne) sqlSave(ctx context.Context) (_node *ProductInfo, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(productinfo.Table, productinfo.Columns, sqlgraph.NewFieldSpec(productinfo.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProductInfo.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, productinfo.FieldID)
		for _, f := range fields {
			if !productinfo.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != productinfo.FieldID {
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
	if _u.mutation.DonationIDCleared() {
		_spec.ClearField(productinfo.FieldDonationID, field.TypeString)
	}
	if value, ok := _u.mutation.Theme(); ok {
		_spec.SetField(productinfo.FieldTheme, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageTitle(); ok {
		_spec.SetField(productinfo.FieldImageTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(productinfo.FieldImageURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProductURL(); ok {
		_spec.SetField(productinfo.FieldProductURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.TemplateID(); ok {
		_spec.SetField(productinfo.FieldTemplateID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(productinfo.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptVersion(); ok {
		_spec.SetField(productinfo.FieldPromptVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageQuality(); ok {
		_spec.SetField(productinfo.FieldImageQuality, field.TypeEnum, value)
	}
	_node = &ProductInfo{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{productinfo.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
