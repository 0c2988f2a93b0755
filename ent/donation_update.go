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
	"github.com/redditart/commissioner/ent/donation"
	"github.com/redditart/commissioner/ent/predicate"
)

// DonationUpdate is the builder for updating Donation entities.
type DonationUpdate struct {
	config
	hooks    []Hook
	mutation *DonationMutation
}

// Where appends a list predicates to the DonationUpdate builder.
func (_u *DonationUpdate) Where(ps ...predicate.Donation) *DonationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAmount sets the "amount" field.
func (_u *DonationUpdate) SetAmount(v int64) *DonationUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *DonationUpdate) SetNillableAmount(v *int64) *DonationUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *DonationUpdate) AddAmount(v int64) *DonationUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *DonationUpdate) SetCurrency(v string) *DonationUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *DonationUpdate) SetNillableCurrency(v *string) *DonationUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DonationUpdate) SetStatus(v donation.Status) *DonationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DonationUpdate) SetNillableStatus(v *donation.Status) *DonationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *DonationUpdate) SetType(v donation.Type) *DonationUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *DonationUpdate) SetNillableType(v *donation.Type) *DonationUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetCommissionType sets the "commission_type" field.
func (_u *DonationUpdate) SetCommissionType(v donation.CommissionType) *DonationUpdate {
	_u.mutation.SetCommissionType(v)
	return _u
}

// SetNillableCommissionType sets the "commission_type" field if the given value is not nil.
func (_u *DonationUpdate) SetNillableCommissionType(v *donation.CommissionType) *DonationUpdate {
	if v != nil {
		_u.SetCommissionType(*v)
	}
	return _u
}

// SetPostID sets the "post_id" field.
func (_u *DonationUpdate) SetPostID(v string) *DonationUpdate {
	_u.mutation.SetPostID(v)
	return _u
}

// SetNillablePostID sets the "post_id" field if the given value is not nil.
func (_u *DonationUpdate) SetNillablePostID(v *string) *DonationUpdate {
	if v != nil {
		_u.SetPostID(*v)
	}
	return _u
}

// ClearPostID clears the value of the "post_id" field.
func (_u *DonationUpdate) ClearPostID() *DonationUpdate {
	_u.mutation.ClearPostID()
	return _u
}

// SetSubreddit sets the "subreddit" field.
func (_u *DonationUpdate) SetSubreddit(v string) *DonationUpdate {
	_u.mutation.SetSubreddit(v)
	return _u
}

// SetNillableSubreddit sets the "subreddit" field if the given value is not nil.
func (_u *DonationUpdate) SetNillableSubreddit(v *string) *DonationUpdate {
	if v != nil {
		_u.SetSubreddit(*v)
	}
	return _u
}

// ClearSubreddit clears the value of the "subreddit" field.
func (_u *DonationUpdate) ClearSubreddit() *DonationUpdate {
	_u.mutation.ClearSubreddit()
	return _u
}

// SetMessage sets the "message" field.
func (_u *DonationUpdate) SetMessage(v string) *DonationUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *DonationUpdate) SetNillableMessage(v *string) *DonationUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *DonationUpdate) ClearMessage() *DonationUpdate {
	_u.mutation.ClearMessage()
	return _u
}

// SetRedditHandle sets the "reddit_handle" field.
func (_u *DonationUpdate) SetRedditHandle(v string) *DonationUpdate {
	_u.mutation.SetRedditHandle(v)
	return _u
}

// SetNillableRedditHandle sets the "reddit_handle" field if the given value is not nil.
func (_u *DonationUpdate) SetNillableRedditHandle(v *string) *DonationUpdate {
	if v != nil {
		_u.SetRedditHandle(*v)
	}
	return _u
}

// ClearRedditHandle clears the value of the "reddit_handle" field.
func (_u *DonationUpdate) ClearRedditHandle() *DonationUpdate {
	_u.mutation.ClearRedditHandle()
	return _u
}

// SetIsAnonymous sets the "is_anonymous" field.
func (_u *DonationUpdate) SetIsAnonymous(v bool) *DonationUpdate {
	_u.mutation.SetIsAnonymous(v)
	return _u
}

// SetNillableIsAnonymous sets the "is_anonymous" field if the given value is not nil.
func (_u *DonationUpdate) SetNillableIsAnonymous(v *bool) *DonationUpdate {
	if v != nil {
		_u.SetIsAnonymous(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *DonationUpdate) SetTier(v string) *DonationUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *DonationUpdate) SetNillableTier(v *string) *DonationUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// ClearTier clears the value of the "tier" field.
func (_u *DonationUpdate) ClearTier() *DonationUpdate {
	_u.mutation.ClearTier()
	return _u
}

// SetSource sets the "source" field.
func (_u *DonationUpdate) SetSource(v donation.Source) *DonationUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *DonationUpdate) SetNillableSource(v *donation.Source) *DonationUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetApplied sets the "applied" field.
func (_u *DonationUpdate) SetApplied(v bool) *DonationUpdate {
	_u.mutation.SetApplied(v)
	return _u
}

// SetNillableApplied sets the "applied" field if the given value is not nil.
func (_u *DonationUpdate) SetNillableApplied(v *bool) *DonationUpdate {
	if v != nil {
		_u.SetApplied(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DonationUpdate) SetUpdatedAt(v time.Time) *DonationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DonationMutation object of the builder.
func (_u *DonationUpdate) Mutation() *DonationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DonationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DonationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DonationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DonationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DonationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := donation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DonationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := donation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Donation.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := donation.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Donation.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CommissionType(); ok {
		if err := donation.CommissionTypeValidator(v); err != nil {
			return &ValidationError{Name: "commission_type", err: fmt.Errorf(`ent: validator failed for field "Donation.commission_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Message(); ok {
		if err := donation.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "Donation.message": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RedditHandle(); ok {
		if err := donation.RedditHandleValidator(v); err != nil {
			return &ValidationError{Name: "reddit_handle", err: fmt.Errorf(`ent: validator failed for field "Donation.reddit_handle": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := donation.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Donation.source": %w`, err)}
		}
	}
	return nil
}

func (_u *DonationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(donation.Table, donation.Columns, sqlgraph.NewFieldSpec(donation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(donation.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(donation.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(donation.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(donation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(donation.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CommissionType(); ok {
		_spec.SetField(donation.FieldCommissionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PostID(); ok {
		_spec.SetField(donation.FieldPostID, field.TypeString, value)
	}
	if _u.mutation.PostIDCleared() {
		_spec.ClearField(donation.FieldPostID, field.TypeString)
	}
	if value, ok := _u.mutation.Subreddit(); ok {
		_spec.SetField(donation.FieldSubreddit, field.TypeString, value)
	}
	if _u.mutation.SubredditCleared() {
		_spec.ClearField(donation.FieldSubreddit, field.TypeString)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(donation.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(donation.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RedditHandle(); ok {
		_spec.SetField(donation.FieldRedditHandle, field.TypeString, value)
	}
	if _u.mutation.RedditHandleCleared() {
		_spec.ClearField(donation.FieldRedditHandle, field.TypeString)
	}
	if value, ok := _u.mutation.IsAnonymous(); ok {
		_spec.SetField(donation.FieldIsAnonymous, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(donation.FieldTier, field.TypeString, value)
	}
	if _u.mutation.TierCleared() {
		_spec.ClearField(donation.FieldTier, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(donation.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Applied(); ok {
		_spec.SetField(donation.FieldApplied, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(donation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{donation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DonationUpdateOne is the builder for updating a single Donation entity.
type DonationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DonationMutation
}

// SetAmount sets the "amount" field.
func (_u *DonationUpdateOne) SetAmount(v int64) *DonationUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *DonationUpdateOne) SetNillableAmount(v *int64) *DonationUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *DonationUpdateOne) AddAmount(v int64) *DonationUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *DonationUpdateOne) SetCurrency(v string) *DonationUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *DonationUpdateOne) SetNillableCurrency(v *string) *DonationUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DonationUpdateOne) SetStatus(v donation.Status) *DonationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DonationUpdateOne) SetNillableStatus(v *donation.Status) *DonationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *DonationUpdateOne) SetType(v donation.Type) *DonationUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *DonationUpdateOne) SetNillableType(v *donation.Type) *DonationUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetCommissionType sets the "commission_type" field.
func (_u *DonationUpdateOne) SetCommissionType(v donation.CommissionType) *DonationUpdateOne {
	_u.mutation.SetCommissionType(v)
	return _u
}

// SetNillableCommissionType sets the "commission_type" field if the given value is not nil.
func (_u *DonationUpdateOne) SetNillableCommissionType(v *donation.CommissionType) *DonationUpdateOne {
	if v != nil {
		_u.SetCommissionType(*v)
	}
	return _u
}

// SetPostID sets the "post_id" field.
func (_u *DonationUpdateOne) SetPostID(v string) *DonationUpdateOne {
	_u.mutation.SetPostID(v)
	return _u
}

// SetNillablePostID sets the "post_id" field if the given value is not nil.
func (_u *DonationUpdateOne) SetNillablePostID(v *string) *DonationUpdateOne {
	if v != nil {
		_u.SetPostID(*v)
	}
	return _u
}

// ClearPostID clears the value of the "post_id" field.
func (_u *DonationUpdateOne) ClearPostID() *DonationUpdateOne {
	_u.mutation.ClearPostID()
	return _u
}

// SetSubreddit sets the "subreddit" field.
func (_u *DonationUpdateOne) SetSubreddit(v string) *DonationUpdateOne {
	_u.mutation.SetSubreddit(v)
	return _u
}

// SetNillableSubreddit sets the "subreddit" field if the given value is not nil.
func (_u *DonationUpdateOne) SetNillableSubreddit(v *string) *DonationUpdateOne {
	if v != nil {
		_u.SetSubreddit(*v)
	}
	return _u
}

// ClearSubreddit clears the value of the "subreddit" field.
func (_u *DonationUpdateOne) ClearSubreddit() *DonationUpdateOne {
	_u.mutation.ClearSubreddit()
	return _u
}

// SetMessage sets the "message" field.
func (_u *DonationUpdateOne) SetMessage(v string) *DonationUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *DonationUpdateOne) SetNillableMessage(v *string) *DonationUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *DonationUpdateOne) ClearMessage() *DonationUpdateOne {
	_u.mutation.ClearMessage()
	return _u
}

// SetRedditHandle sets the "reddit_handle" field.
func (_u *DonationUpdateOne) SetRedditHandle(v string) *DonationUpdateOne {
	_u.mutation.SetRedditHandle(v)
	return _u
}

// SetNillableRedditHandle sets the "reddit_handle" field if the given value is not nil.
func (_u *DonationUpdateOne) SetNillableRedditHandle(v *string) *DonationUpdateOne {
	if v != nil {
		_u.SetRedditHandle(*v)
	}
	return _u
}

// ClearRedditHandle clears the value of the "reddit_handle" field.
func (_u *DonationUpdateOne) ClearRedditHandle() *DonationUpdateOne {
	_u.mutation.ClearRedditHandle()
	return _u
}

// SetIsAnonymous sets the "is_anonymous" field.
func (_u *DonationUpdateOne) SetIsAnonymous(v bool) *DonationUpdateOne {
	_u.mutation.SetIsAnonymous(v)
	return _u
}

// SetNillableIsAnonymous sets the "is_anonymous" field if the given value is not nil.
func (_u *DonationUpdateOne) SetNillableIsAnonymous(v *bool) *DonationUpdateOne {
	if v != nil {
		_u.SetIsAnonymous(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *DonationUpdateOne) SetTier(v string) *DonationUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *DonationUpdateOne) SetNillableTier(v *string) *DonationUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// ClearTier clears the value of the "tier" field.
func (_u *DonationUpdateOne) ClearTier() *DonationUpdateOne {
	_u.mutation.ClearTier()
	return _u
}

// SetSource sets the "source" field.
func (_u *DonationUpdateOne) SetSource(v donation.Source) *DonationUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *DonationUpdateOne) SetNillableSource(v *donation.Source) *DonationUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetApplied sets the "applied" field.
func (_u *DonationUpdateOne) SetApplied(v bool) *DonationUpdateOne {
	_u.mutation.SetApplied(v)
	return _u
}

// SetNillableApplied sets the "applied" field if the given value is not nil.
func (_u *DonationUpdateOne) SetNillableApplied(v *bool) *DonationUpdateOne {
	if v != nil {
		_u.SetApplied(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DonationUpdateOne) SetUpdatedAt(v time.Time) *DonationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DonationMutation object of the builder.
func (_u *DonationUpdateOne) Mutation() *DonationMutation {
	return _u.mutation
}

// Where appends a list predicates to the DonationUpdate builder.
func (_u *DonationUpdateOne) Where(ps ...predicate.Donation) *DonationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DonationUpdateOne) Select(field string, fields ...string) *DonationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Donation entity.
func (_u *DonationUpdateOne) Save(ctx context.Context) (*Donation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DonationUpdateOne) SaveX(ctx context.Context) *Donation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DonationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DonationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DonationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := donation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DonationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := donation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Donation.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := donation.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Donation.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CommissionType(); ok {
		if err := donation.CommissionTypeValidator(v); err != nil {
			return &ValidationError{Name: "commission_type", err: fmt.Errorf(`ent: validator failed for field "Donation.commission_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Message(); ok {
		if err := donation.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "Donation.message": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RedditHandle(); ok {
		if err := donation.RedditHandleValidator(v); err != nil {
			return &ValidationError{Name: "reddit_handle", err: fmt.Errorf(`ent: validator failed for field "Donation.reddit_handle": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := donation.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Donation.source": %w`, err)}
		}
	}
	return nil
}

func (_u *DonationUpdateOne) sqlSave(ctx context.Context) (_node *Donation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(donation.Table, donation.Columns, sqlgraph.NewFieldSpec(donation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Donation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, donation.FieldID)
		for _, f := range fields {
			if !donation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != donation.FieldID {
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
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(donation.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(donation.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(donation.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(donation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(donation.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CommissionType(); ok {
		_spec.SetField(donation.FieldCommissionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PostID(); ok {
		_spec.SetField(donation.FieldPostID, field.TypeString, value)
	}
	if _u.mutation.PostIDCleared() {
		_spec.ClearField(donation.FieldPostID, field.TypeString)
	}
	if value, ok := _u.mutation.Subreddit(); ok {
		_spec.SetField(donation.FieldSubreddit, field.TypeString, value)
	}
	if _u.mutation.SubredditCleared() {
		_spec.ClearField(donation.FieldSubreddit, field.TypeString)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(donation.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(donation.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RedditHandle(); ok {
		_spec.SetField(donation.FieldRedditHandle, field.TypeString, value)
	}
	if _u.mutation.RedditHandleCleared() {
		_spec.ClearField(donation.FieldRedditHandle, field.TypeString)
	}
	if value, ok := _u.mutation.IsAnonymous(); ok {
		_spec.SetField(donation.FieldIsAnonymous, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(donation.FieldTier, field.TypeString, value)
	}
	if _u.mutation.TierCleared() {
		_spec.ClearField(donation.FieldTier, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(donation.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Applied(); ok {
		_spec.SetField(donation.FieldApplied, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(donation.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Donation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{donation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
