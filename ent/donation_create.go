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
	"github.com/redditart/commissioner/ent/donation"
)

// DonationCreate is the builder for creating a Donation entity.
type DonationCreate struct {
	config
	mutation *DonationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPaymentIntentID sets the "payment_intent_id" field.
func (_c *DonationCreate) SetPaymentIntentID(v string) *DonationCreate {
	_c.mutation.SetPaymentIntentID(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *DonationCreate) SetAmount(v int64) *DonationCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *DonationCreate) SetCurrency(v string) *DonationCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *DonationCreate) SetNillableCurrency(v *string) *DonationCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DonationCreate) SetStatus(v donation.Status) *DonationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DonationCreate) SetNillableStatus(v *donation.Status) *DonationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetType sets the "type" field.
func (_c *DonationCreate) SetType(v donation.Type) *DonationCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_c *DonationCreate) SetNillableType(v *donation.Type) *DonationCreate {
	if v != nil {
		_c.SetType(*v)
	}
	return _c
}

// SetCommissionType sets the "commission_type" field.
func (_c *DonationCreate) SetCommissionType(v donation.CommissionType) *DonationCreate {
	_c.mutation.SetCommissionType(v)
	return _c
}

// SetNillableCommissionType sets the "commission_type" field if the given value is not nil.
func (_c *DonationCreate) SetNillableCommissionType(v *donation.CommissionType) *DonationCreate {
	if v != nil {
		_c.SetCommissionType(*v)
	}
	return _c
}

// SetPostID sets the "post_id" field.
func (_c *DonationCreate) SetPostID(v string) *DonationCreate {
	_c.mutation.SetPostID(v)
	return _c
}

// SetNillablePostID sets the "post_id" field if the given value is not nil.
func (_c *DonationCreate) SetNillablePostID(v *string) *DonationCreate {
	if v != nil {
		_c.SetPostID(*v)
	}
	return _c
}

// SetSubreddit sets the "subreddit" field.
func (_c *DonationCreate) SetSubreddit(v string) *DonationCreate {
	_c.mutation.SetSubreddit(v)
	return _c
}

// SetNillableSubreddit sets the "subreddit" field if the given value is not nil.
func (_c *DonationCreate) SetNillableSubreddit(v *string) *DonationCreate {
	if v != nil {
		_c.SetSubreddit(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *DonationCreate) SetMessage(v string) *DonationCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *DonationCreate) SetNillableMessage(v *string) *DonationCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// SetRedditHandle sets the "reddit_handle" field.
func (_c *DonationCreate) SetRedditHandle(v string) *DonationCreate {
	_c.mutation.SetRedditHandle(v)
	return _c
}

// SetNillableRedditHandle sets the "reddit_handle" field if the given value is not nil.
func (_c *DonationCreate) SetNillableRedditHandle(v *string) *DonationCreate {
	if v != nil {
		_c.SetRedditHandle(*v)
	}
	return _c
}

// SetIsAnonymous sets the "is_anonymous" field.
func (_c *DonationCreate) SetIsAnonymous(v bool) *DonationCreate {
	_c.mutation.SetIsAnonymous(v)
	return _c
}

// SetNillableIsAnonymous sets the "is_anonymous" field if the given value is not nil.
func (_c *DonationCreate) SetNillableIsAnonymous(v *bool) *DonationCreate {
	if v != nil {
		_c.SetIsAnonymous(*v)
	}
	return _c
}

// SetTier sets the "tier" field.
func (_c *DonationCreate) SetTier(v string) *DonationCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_c *DonationCreate) SetNillableTier(v *string) *DonationCreate {
	if v != nil {
		_c.SetTier(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *DonationCreate) SetSource(v donation.Source) *DonationCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *DonationCreate) SetNillableSource(v *donation.Source) *DonationCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetApplied sets the "applied" field.
func (_c *DonationCreate) SetApplied(v bool) *DonationCreate {
	_c.mutation.SetApplied(v)
	return _c
}

// SetNillableApplied sets the "applied" field if the given value is not nil.
func (_c *DonationCreate) SetNillableApplied(v *bool) *DonationCreate {
	if v != nil {
		_c.SetApplied(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DonationCreate) SetCreatedAt(v time.Time) *DonationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DonationCreate) SetNillableCreatedAt(v *time.Time) *DonationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DonationCreate) SetUpdatedAt(v time.Time) *DonationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DonationCreate) SetNillableUpdatedAt(v *time.Time) *DonationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DonationCreate) SetID(v string) *DonationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DonationCreate) SetNillableID(v *string) *DonationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DonationMutation object of the builder.
func (_c *DonationCreate) Mutation() *DonationMutation {
	return _c.mutation
}

// Save creates the Donation in the database.
func (_c *DonationCreate) Save(ctx context.Context) (*Donation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DonationCreate) SaveX(ctx context.Context) *Donation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DonationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DonationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DonationCreate) defaults() {
	if _, ok := _c.mutation.Currency(); !ok {
		v := donation.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := donation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.GetType(); !ok {
		v := donation.DefaultType
		_c.mutation.SetType(v)
	}
	if _, ok := _c.mutation.CommissionType(); !ok {
		v := donation.DefaultCommissionType
		_c.mutation.SetCommissionType(v)
	}
	if _, ok := _c.mutation.IsAnonymous(); !ok {
		v := donation.DefaultIsAnonymous
		_c.mutation.SetIsAnonymous(v)
	}
	if _, ok := _c.mutation.Source(); !ok {
		v := donation.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.Applied(); !ok {
		v := donation.DefaultApplied
		_c.mutation.SetApplied(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := donation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := donation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := donation.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DonationCreate) check() error {
	if _, ok := _c.mutation.PaymentIntentID(); !ok {
		return &ValidationError{Name: "payment_intent_id", err: errors.New(`ent: missing required field "Donation.payment_intent_id"`)}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "Donation.amount"`)}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "Donation.currency"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Donation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := donation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Donation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Donation.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := donation.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Donation.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CommissionType(); !ok {
		return &ValidationError{Name: "commission_type", err: errors.New(`ent: missing required field "Donation.commission_type"`)}
	}
	if v, ok := _c.mutation.CommissionType(); ok {
		if err := donation.CommissionTypeValidator(v); err != nil {
			return &ValidationError{Name: "commission_type", err: fmt.Errorf(`ent: validator failed for field "Donation.commission_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Message(); ok {
		if err := donation.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "Donation.message": %w`, err)}
		}
	}
	if v, ok := _c.mutation.RedditHandle(); ok {
		if err := donation.RedditHandleValidator(v); err != nil {
			return &ValidationError{Name: "reddit_handle", err: fmt.Errorf(`ent: validator failed for field "Donation.reddit_handle": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsAnonymous(); !ok {
		return &ValidationError{Name: "is_anonymous", err: errors.New(`ent: missing required field "Donation.is_anonymous"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Donation.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := donation.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Donation.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Applied(); !ok {
		return &ValidationError{Name: "applied", err: errors.New(`ent: missing required field "Donation.applied"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Donation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Donation.updated_at"`)}
	}
	return nil
}

func (_c *DonationCreate) sqlSave(ctx context.Context) (*Donation, error) {
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
			return nil, fmt.Errorf("unexpected Donation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DonationCreate) createSpec() (*Donation, *sqlgraph.CreateSpec) {
	var (
		_node = &Donation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(donation.Table, sqlgraph.NewFieldSpec(donation.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PaymentIntentID(); ok {
		_spec.SetField(donation.FieldPaymentIntentID, field.TypeString, value)
		_node.PaymentIntentID = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(donation.FieldAmount, field.TypeInt64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(donation.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(donation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(donation.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.CommissionType(); ok {
		_spec.SetField(donation.FieldCommissionType, field.TypeEnum, value)
		_node.CommissionType = value
	}
	if value, ok := _c.mutation.PostID(); ok {
		_spec.SetField(donation.FieldPostID, field.TypeString, value)
		_node.PostID = &value
	}
	if value, ok := _c.mutation.Subreddit(); ok {
		_spec.SetField(donation.FieldSubreddit, field.TypeString, value)
		_node.Subreddit = &value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(donation.FieldMessage, field.TypeString, value)
		_node.Message = &value
	}
	if value, ok := _c.mutation.RedditHandle(); ok {
		_spec.SetField(donation.FieldRedditHandle, field.TypeString, value)
		_node.RedditHandle = &value
	}
	if value, ok := _c.mutation.IsAnonymous(); ok {
		_spec.SetField(donation.FieldIsAnonymous, field.TypeBool, value)
		_node.IsAnonymous = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(donation.FieldTier, field.TypeString, value)
		_node.Tier = &value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(donation.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Applied(); ok {
		_spec.SetField(donation.FieldApplied, field.TypeBool, value)
		_node.Applied = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(donation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(donation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Donation.Create().
//		SetPaymentIntentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DonationUpsert) {
//			SetPaymentIntentID(v+v).
//		}).
//		Exec(ctx)
func (_c *DonationCreate) OnConflict(opts ...sql.ConflictOption) *DonationUpsertOne {
	_c.conflict = opts
	return &DonationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Donation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DonationCreate) OnConflictColumns(columns ...string) *DonationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DonationUpsertOne{
		create: _c,
	}
}

type (
	// DonationUpsertOne is the builder for "upsert"-ing
	//  one Donation node.
	DonationUpsertOne struct {
		create *DonationCreate
	}

	// DonationUpsert is the "OnConflict" setter.
	DonationUpsert struct {
		*sql.UpdateSet
	}
)

// SetAmount sets the "amount" field.
func (u *DonationUpsert) SetAmount(v int64) *DonationUpsert {
	u.Set(donation.FieldAmount, v)
	return u
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *DonationUpsert) UpdateAmount() *DonationUpsert {
	u.SetExcluded(donation.FieldAmount)
	return u
}

// AddAmount adds v to the "amount" field.
func (u *DonationUpsert) AddAmount(v int64) *DonationUpsert {
	u.Add(donation.FieldAmount, v)
	return u
}

// SetCurrency sets the "currency" field.
func (u *DonationUpsert) SetCurrency(v string) *DonationUpsert {
	u.Set(donation.FieldCurrency, v)
	return u
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *DonationUpsert) UpdateCurrency() *DonationUpsert {
	u.SetExcluded(donation.FieldCurrency)
	return u
}

// SetStatus sets the "status" field.
func (u *DonationUpsert) SetStatus(v donation.Status) *DonationUpsert {
	u.Set(donation.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DonationUpsert) UpdateStatus() *DonationUpsert {
	u.SetExcluded(donation.FieldStatus)
	return u
}

// SetType sets the "type" field.
func (u *DonationUpsert) SetType(v donation.Type) *DonationUpsert {
	u.Set(donation.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *DonationUpsert) UpdateType() *DonationUpsert {
	u.SetExcluded(donation.FieldType)
	return u
}

// SetCommissionType sets the "commission_type" field.
func (u *DonationUpsert) SetCommissionType(v donation.CommissionType) *DonationUpsert {
	u.Set(donation.FieldCommissionType, v)
	return u
}

// UpdateCommissionType sets the "commission_type" field to the value that was provided on create.
func (u *DonationUpsert) UpdateCommissionType() *DonationUpsert {
	u.SetExcluded(donation.FieldCommissionType)
	return u
}

// SetPostID sets the "post_id" field.
func (u *DonationUpsert) SetPostID(v string) *DonationUpsert {
	u.Set(donation.FieldPostID, v)
	return u
}

// UpdatePostID sets the "post_id" field to the value that was provided on create.
func (u *DonationUpsert) UpdatePostID() *DonationUpsert {
	u.SetExcluded(donation.FieldPostID)
	return u
}

// ClearPostID clears the value of the "post_id" field.
func (u *DonationUpsert) ClearPostID() *DonationUpsert {
	u.SetNull(donation.FieldPostID)
	return u
}

// SetSubreddit sets the "subreddit" field.
func (u *DonationUpsert) SetSubreddit(v string) *DonationUpsert {
	u.Set(donation.FieldSubreddit, v)
	return u
}

// UpdateSubreddit sets the "subreddit" field to the value that was provided on create.
func (u *DonationUpsert) UpdateSubreddit() *DonationUpsert {
	u.SetExcluded(donation.FieldSubreddit)
	return u
}

// ClearSubreddit clears the value of the "subreddit" field.
func (u *DonationUpsert) ClearSubreddit() *DonationUpsert {
	u.SetNull(donation.FieldSubreddit)
	return u
}

// SetMessage sets the "message" field.
func (u *DonationUpsert) SetMessage(v string) *DonationUpsert {
	u.Set(donation.FieldMessage, v)
	return u
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *DonationUpsert) UpdateMessage() *DonationUpsert {
	u.SetExcluded(donation.FieldMessage)
	return u
}

// ClearMessage clears the value of the "message" field.
func (u *DonationUpsert) ClearMessage() *DonationUpsert {
	u.SetNull(donation.FieldMessage)
	return u
}

// SetRedditHandle sets the "reddit_handle" field.
func (u *DonationUpsert) SetRedditHandle(v string) *DonationUpsert {
	u.Set(donation.FieldRedditHandle, v)
	return u
}

// UpdateRedditHandle sets the "reddit_handle" field to the value that was provided on create.
func (u *DonationUpsert) UpdateRedditHandle() *DonationUpsert {
	u.SetExcluded(donation.FieldRedditHandle)
	return u
}

// ClearRedditHandle clears the value of the "reddit_handle" field.
func (u *DonationUpsert) ClearRedditHandle() *DonationUpsert {
	u.SetNull(donation.FieldRedditHandle)
	return u
}

// SetIsAnonymous sets the "is_anonymous" field.
func (u *DonationUpsert) SetIsAnonymous(v bool) *DonationUpsert {
	u.Set(donation.FieldIsAnonymous, v)
	return u
}

// UpdateIsAnonymous sets the "is_anonymous" field to the value that was provided on create.
func (u *DonationUpsert) UpdateIsAnonymous() *DonationUpsert {
	u.SetExcluded(donation.FieldIsAnonymous)
	return u
}

// SetTier sets the "tier" field.
func (u *DonationUpsert) SetTier(v string) *DonationUpsert {
	u.Set(donation.FieldTier, v)
	return u
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *DonationUpsert) UpdateTier() *DonationUpsert {
	u.SetExcluded(donation.FieldTier)
	return u
}

// ClearTier clears the value of the "tier" field.
func (u *DonationUpsert) ClearTier() *DonationUpsert {
	u.SetNull(donation.FieldTier)
	return u
}

// SetSource sets the "source" field.
func (u *DonationUpsert) SetSource(v donation.Source) *DonationUpsert {
	u.Set(donation.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *DonationUpsert) UpdateSource() *DonationUpsert {
	u.SetExcluded(donation.FieldSource)
	return u
}

// SetApplied sets the "applied" field.
func (u *DonationUpsert) SetApplied(v bool) *DonationUpsert {
	u.Set(donation.FieldApplied, v)
	return u
}

// UpdateApplied sets the "applied" field to the value that was provided on create.
func (u *DonationUpsert) UpdateApplied() *DonationUpsert {
	u.SetExcluded(donation.FieldApplied)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DonationUpsert) SetUpdatedAt(v time.Time) *DonationUpsert {
	u.Set(donation.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DonationUpsert) UpdateUpdatedAt() *DonationUpsert {
	u.SetExcluded(donation.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Donation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(donation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DonationUpsertOne) UpdateNewValues() *DonationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(donation.FieldID)
		}
		if _, exists := u.create.mutation.PaymentIntentID(); exists {
			s.SetIgnore(donation.FieldPaymentIntentID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(donation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Donation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DonationUpsertOne) Ignore() *DonationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DonationUpsertOne) DoNothing() *DonationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DonationCreate.OnConflict
// documentation for more info.
func (u *DonationUpsertOne) Update(set func(*DonationUpsert)) *DonationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DonationUpsert{UpdateSet: update})
	}))
	return u
}

// SetAmount sets the "amount" field.
func (u *DonationUpsertOne) SetAmount(v int64) *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *DonationUpsertOne) AddAmount(v int64) *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *DonationUpsertOne) UpdateAmount() *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateAmount()
	})
}

// SetCurrency sets the "currency" field.
func (u *DonationUpsertOne) SetCurrency(v string) *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *DonationUpsertOne) UpdateCurrency() *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateCurrency()
	})
}

// SetStatus sets the "status" field.
func (u *DonationUpsertOne) SetStatus(v donation.Status) *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DonationUpsertOne) UpdateStatus() *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateStatus()
	})
}

// SetType sets the "type" field.
func (u *DonationUpsertOne) SetType(v donation.Type) *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *DonationUpsertOne) UpdateType() *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateType()
	})
}

// SetCommissionType sets the "commission_type" field.
func (u *DonationUpsertOne) SetCommissionType(v donation.CommissionType) *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.SetCommissionType(v)
	})
}

// UpdateCommissionType sets the "commission_type" field to the value that was provided on create.
func (u *DonationUpsertOne) UpdateCommissionType() *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateCommissionType()
	})
}

// SetPostID sets the "post_id" field.
func (u *DonationUpsertOne) SetPostID(v string) *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.SetPostID(v)
	})
}

// UpdatePostID sets the "post_id" field to the value that was provided on create.
func (u *DonationUpsertOne) UpdatePostID() *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.UpdatePostID()
	})
}

// ClearPostID clears the value of the "post_id" field.
func (u *DonationUpsertOne) ClearPostID() *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.ClearPostID()
	})
}

// SetSubreddit sets the "subreddit" field.
func (u *DonationUpsertOne) SetSubreddit(v string) *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.SetSubreddit(v)
	})
}

// UpdateSubreddit sets the "subreddit" field to the value that was provided on create.
func (u *DonationUpsertOne) UpdateSubreddit() *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateSubreddit()
	})
}

// ClearSubreddit clears the value of the "subreddit" field.
func (u *DonationUpsertOne) ClearSubreddit() *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.ClearSubreddit()
	})
}

// SetMessage sets the "message" field.
func (u *DonationUpsertOne) SetMessage(v string) *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *DonationUpsertOne) UpdateMessage() *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateMessage()
	})
}

// ClearMessage clears the value of the "message" field.
func (u *DonationUpsertOne) ClearMessage() *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.ClearMessage()
	})
}

// SetRedditHandle sets the "reddit_handle" field.
func (u *DonationUpsertOne) SetRedditHandle(v string) *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.SetRedditHandle(v)
	})
}

// UpdateRedditHandle sets the "reddit_handle" field to the value that was provided on create.
func (u *DonationUpsertOne) UpdateRedditHandle() *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateRedditHandle()
	})
}

// ClearRedditHandle clears the value of the "reddit_handle" field.
func (u *DonationUpsertOne) ClearRedditHandle() *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.ClearRedditHandle()
	})
}

// SetIsAnonymous sets the "is_anonymous" field.
func (u *DonationUpsertOne) SetIsAnonymous(v bool) *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.SetIsAnonymous(v)
	})
}

// UpdateIsAnonymous sets the "is_anonymous" field to the value that was provided on create.
func (u *DonationUpsertOne) UpdateIsAnonymous() *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateIsAnonymous()
	})
}

// SetTier sets the "tier" field.
func (u *DonationUpsertOne) SetTier(v string) *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.SetTier(v)
	})
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *DonationUpsertOne) UpdateTier() *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateTier()
	})
}

// ClearTier clears the value of the "tier" field.
func (u *DonationUpsertOne) ClearTier() *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.ClearTier()
	})
}

// SetSource sets the "source" field.
func (u *DonationUpsertOne) SetSource(v donation.Source) *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *DonationUpsertOne) UpdateSource() *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateSource()
	})
}

// SetApplied sets the "applied" field.
func (u *DonationUpsertOne) SetApplied(v bool) *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.SetApplied(v)
	})
}

// UpdateApplied sets the "applied" field to the value that was provided on create.
func (u *DonationUpsertOne) UpdateApplied() *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateApplied()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DonationUpsertOne) SetUpdatedAt(v time.Time) *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DonationUpsertOne) UpdateUpdatedAt() *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DonationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DonationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DonationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DonationUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DonationUpsertOne.ID is not supported by MySQL driver. Use DonationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DonationUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DonationCreateBulk is the builder for creating many Donation entities in bulk.
type DonationCreateBulk struct {
	config
	err      error
	builders []*DonationCreate
	conflict []sql.ConflictOption
}

// Save creates the Donation entities in the database.
func (_c *DonationCreateBulk) Save(ctx context.Context) ([]*Donation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Donation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DonationMutation)
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
func (_c *DonationCreateBulk) SaveX(ctx context.Context) []*Donation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DonationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DonationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Donation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DonationUpsert) {
//			SetPaymentIntentID(v+v).
//		}).
//		Exec(ctx)
func (_c *DonationCreateBulk) OnConflict(opts ...sql.ConflictOption) *DonationUpsertBulk {
	_c.conflict = opts
	return &DonationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Donation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DonationCreateBulk) OnConflictColumns(columns ...string) *DonationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DonationUpsertBulk{
		create: _c,
	}
}

// DonationUpsertBulk is the builder for "upsert"-ing
// a bulk of Donation nodes.
type DonationUpsertBulk struct {
	create *DonationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Donation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(donation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DonationUpsertBulk) UpdateNewValues() *DonationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(donation.FieldID)
			}
			if _, exists := b.mutation.PaymentIntentID(); exists {
				s.SetIgnore(donation.FieldPaymentIntentID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(donation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Donation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DonationUpsertBulk) Ignore() *DonationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DonationUpsertBulk) DoNothing() *DonationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DonationCreateBulk.OnConflict
// documentation for more info.
func (u *DonationUpsertBulk) Update(set func(*DonationUpsert)) *DonationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DonationUpsert{UpdateSet: update})
	}))
	return u
}

// SetAmount sets the "amount" field.
func (u *DonationUpsertBulk) SetAmount(v int64) *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *DonationUpsertBulk) AddAmount(v int64) *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *DonationUpsertBulk) UpdateAmount() *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateAmount()
	})
}

// SetCurrency sets the "currency" field.
func (u *DonationUpsertBulk) SetCurrency(v string) *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *DonationUpsertBulk) UpdateCurrency() *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateCurrency()
	})
}

// SetStatus sets the "status" field.
func (u *DonationUpsertBulk) SetStatus(v donation.Status) *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DonationUpsertBulk) UpdateStatus() *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateStatus()
	})
}

// SetType sets the "type" field.
func (u *DonationUpsertBulk) SetType(v donation.Type) *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *DonationUpsertBulk) UpdateType() *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateType()
	})
}

// SetCommissionType sets the "commission_type" field.
func (u *DonationUpsertBulk) SetCommissionType(v donation.CommissionType) *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.SetCommissionType(v)
	})
}

// UpdateCommissionType sets the "commission_type" field to the value that was provided on create.
func (u *DonationUpsertBulk) UpdateCommissionType() *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateCommissionType()
	})
}

// SetPostID sets the "post_id" field.
func (u *DonationUpsertBulk) SetPostID(v string) *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.SetPostID(v)
	})
}

// UpdatePostID sets the "post_id" field to the value that was provided on create.
func (u *DonationUpsertBulk) UpdatePostID() *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.UpdatePostID()
	})
}

// ClearPostID clears the value of the "post_id" field.
func (u *DonationUpsertBulk) ClearPostID() *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.ClearPostID()
	})
}

// SetSubreddit sets the "subreddit" field.
func (u *DonationUpsertBulk) SetSubreddit(v string) *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.SetSubreddit(v)
	})
}

// UpdateSubreddit sets the "subreddit" field to the value that was provided on create.
func (u *DonationUpsertBulk) UpdateSubreddit() *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateSubreddit()
	})
}

// ClearSubreddit clears the value of the "subreddit" field.
func (u *DonationUpsertBulk) ClearSubreddit() *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.ClearSubreddit()
	})
}

// SetMessage sets the "message" field.
func (u *DonationUpsertBulk) SetMessage(v string) *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *DonationUpsertBulk) UpdateMessage() *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateMessage()
	})
}

// ClearMessage clears the value of the "message" field.
func (u *DonationUpsertBulk) ClearMessage() *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.ClearMessage()
	})
}

// SetRedditHandle sets the "reddit_handle" field.
func (u *DonationUpsertBulk) SetRedditHandle(v string) *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.SetRedditHandle(v)
	})
}

// UpdateRedditHandle sets the "reddit_handle" field to the value that was provided on create.
func (u *DonationUpsertBulk) UpdateRedditHandle() *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateRedditHandle()
	})
}

// ClearRedditHandle clears the value of the "reddit_handle" field.
func (u *DonationUpsertBulk) ClearRedditHandle() *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.ClearRedditHandle()
	})
}

// SetIsAnonymous sets the "is_anonymous" field.
func (u *DonationUpsertBulk) SetIsAnonymous(v bool) *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.SetIsAnonymous(v)
	})
}

// UpdateIsAnonymous sets the "is_anonymous" field to the value that was provided on create.
func (u *DonationUpsertBulk) UpdateIsAnonymous() *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateIsAnonymous()
	})
}

// SetTier sets the "tier" field.
func (u *DonationUpsertBulk) SetTier(v string) *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.SetTier(v)
	})
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *DonationUpsertBulk) UpdateTier() *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateTier()
	})
}

// ClearTier clears the value of the "tier" field.
func (u *DonationUpsertBulk) ClearTier() *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.ClearTier()
	})
}

// SetSource sets the "source" field.
func (u *DonationUpsertBulk) SetSource(v donation.Source) *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *DonationUpsertBulk) UpdateSource() *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateSource()
	})
}

// SetApplied sets the "applied" field.
func (u *DonationUpsertBulk) SetApplied(v bool) *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.SetApplied(v)
	})
}

// UpdateApplied sets the "applied" field to the value that was provided on create.
func (u *DonationUpsertBulk) UpdateApplied() *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateApplied()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DonationUpsertBulk) SetUpdatedAt(v time.Time) *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DonationUpsertBulk) UpdateUpdatedAt() *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DonationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DonationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DonationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DonationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
