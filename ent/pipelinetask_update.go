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
	"github.com/redditart/commissioner/ent/pipelinetask"
	"github.com/redditart/commissioner/ent/predicate"
)

// PipelineTaskUpdate is the builder for updating PipelineTask entities.
type PipelineTaskUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineTaskMutation
}

// Where appends a list predicates to the PipelineTaskUpdate builder.
func (_u *PipelineTaskUpdate) Where(ps ...predicate.PipelineTask) *PipelineTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDonationID sets the "donation_id" field.
func (_u *PipelineTaskUpdate) SetDonationID(v string) *PipelineTaskUpdate {
	_u.mutation.SetDonationID(v)
	return _u
}

// SetNillableDonationID sets the "donation_id" field if the given value is not nil.
func (_u *PipelineTaskUpdate) SetNillableDonationID(v *string) *PipelineTaskUpdate {
	if v != nil {
		_u.SetDonationID(*v)
	}
	return _u
}

// ClearDonationID clears the value of the "donation_id" field.
func (_u *PipelineTaskUpdate) ClearDonationID() *PipelineTaskUpdate {
	_u.mutation.ClearDonationID()
	return _u
}

// SetType sets the "type" field.
func (_u *PipelineTaskUpdate) SetType(v pipelinetask.Type) *PipelineTaskUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *PipelineTaskUpdate) SetNillableType(v *pipelinetask.Type) *PipelineTaskUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineTaskUpdate) SetStatus(v pipelinetask.Status) *PipelineTaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineTaskUpdate) SetNillableStatus(v *pipelinetask.Status) *PipelineTaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *PipelineTaskUpdate) SetPriority(v int) *PipelineTaskUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *PipelineTaskUpdate) SetNillablePriority(v *int) *PipelineTaskUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *PipelineTaskUpdate) AddPriority(v int) *PipelineTaskUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *PipelineTaskUpdate) SetAttempt(v int) *PipelineTaskUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *PipelineTaskUpdate) SetNillableAttempt(v *int) *PipelineTaskUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *PipelineTaskUpdate) AddAttempt(v int) *PipelineTaskUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetSubreddit sets the "subreddit" field.
func (_u *PipelineTaskUpdate) SetSubreddit(v string) *PipelineTaskUpdate {
	_u.mutation.SetSubreddit(v)
	return _u
}

// SetNillableSubreddit sets the "subreddit" field if the given value is not nil.
func (_u *PipelineTaskUpdate) SetNillableSubreddit(v *string) *PipelineTaskUpdate {
	if v != nil {
		_u.SetSubreddit(*v)
	}
	return _u
}

// ClearSubreddit clears the value of the "subreddit" field.
func (_u *PipelineTaskUpdate) ClearSubreddit() *PipelineTaskUpdate {
	_u.mutation.ClearSubreddit()
	return _u
}

// SetPostID sets the "post_id" field.
func (_u *PipelineTaskUpdate) SetPostID(v string) *PipelineTaskUpdate {
	_u.mutation.SetPostID(v)
	return _u
}

// SetNillablePostID sets the "post_id" field if the given value is not nil.
func (_u *PipelineTaskUpdate) SetNillablePostID(v *string) *PipelineTaskUpdate {
	if v != nil {
		_u.SetPostID(*v)
	}
	return _u
}

// ClearPostID clears the value of the "post_id" field.
func (_u *PipelineTaskUpdate) ClearPostID() *PipelineTaskUpdate {
	_u.mutation.ClearPostID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PipelineTaskUpdate) SetErrorMessage(v string) *PipelineTaskUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PipelineTaskUpdate) SetNillableErrorMessage(v *string) *PipelineTaskUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PipelineTaskUpdate) ClearErrorMessage() *PipelineTaskUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetLeaseOwner sets the "lease_owner" field.
func (_u *PipelineTaskUpdate) SetLeaseOwner(v string) *PipelineTaskUpdate {
	_u.mutation.SetLeaseOwner(v)
	return _u
}

// SetNillableLeaseOwner sets the "lease_owner" field if the given value is not nil.
func (_u *PipelineTaskUpdate) SetNillableLeaseOwner(v *string) *PipelineTaskUpdate {
	if v != nil {
		_u.SetLeaseOwner(*v)
	}
	return _u
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (_u *PipelineTaskUpdate) ClearLeaseOwner() *PipelineTaskUpdate {
	_u.mutation.ClearLeaseOwner()
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *PipelineTaskUpdate) SetLeaseExpiresAt(v time.Time) *PipelineTaskUpdate {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *PipelineTaskUpdate) SetNillableLeaseExpiresAt(v *time.Time) *PipelineTaskUpdate {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (_u *PipelineTaskUpdate) ClearLeaseExpiresAt() *PipelineTaskUpdate {
	_u.mutation.ClearLeaseExpiresAt()
	return _u
}

// SetNotBefore sets the "not_before" field.
func (_u *PipelineTaskUpdate) SetNotBefore(v time.Time) *PipelineTaskUpdate {
	_u.mutation.SetNotBefore(v)
	return _u
}

// SetNillableNotBefore sets the "not_before" field if the given value is not nil.
func (_u *PipelineTaskUpdate) SetNillableNotBefore(v *time.Time) *PipelineTaskUpdate {
	if v != nil {
		_u.SetNotBefore(*v)
	}
	return _u
}

// ClearNotBefore clears the value of the "not_before" field.
func (_u *PipelineTaskUpdate) ClearNotBefore() *PipelineTaskUpdate {
	_u.mutation.ClearNotBefore()
	return _u
}

// SetTheme sets the "theme" field.
func (_u *PipelineTaskUpdate) SetTheme(v string) *PipelineTaskUpdate {
	_u.mutation.SetTheme(v)
	return _u
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_u *PipelineTaskUpdate) SetNillableTheme(v *string) *PipelineTaskUpdate {
	if v != nil {
		_u.SetTheme(*v)
	}
	return _u
}

// ClearTheme clears the value of the "theme" field.
func (_u *PipelineTaskUpdate) ClearTheme() *PipelineTaskUpdate {
	_u.mutation.ClearTheme()
	return _u
}

// SetImageTitle sets the "image_title" field.
func (_u *PipelineTaskUpdate) SetImageTitle(v string) *PipelineTaskUpdate {
	_u.mutation.SetImageTitle(v)
	return _u
}

// SetNillableImageTitle sets the "image_title" field if the given value is not nil.
func (_u *PipelineTaskUpdate) SetNillableImageTitle(v *string) *PipelineTaskUpdate {
	if v != nil {
		_u.SetImageTitle(*v)
	}
	return _u
}

// ClearImageTitle clears the value of the "image_title" field.
func (_u *PipelineTaskUpdate) ClearImageTitle() *PipelineTaskUpdate {
	_u.mutation.ClearImageTitle()
	return _u
}

// SetImageDescription sets the "image_description" field.
func (_u *PipelineTaskUpdate) SetImageDescription(v string) *PipelineTaskUpdate {
	_u.mutation.SetImageDescription(v)
	return _u
}

// SetNillableImageDescription sets the "image_description" field if the given value is not nil.
func (_u *PipelineTaskUpdate) SetNillableImageDescription(v *string) *PipelineTaskUpdate {
	if v != nil {
		_u.SetImageDescription(*v)
	}
	return _u
}

// ClearImageDescription clears the value of the "image_description" field.
func (_u *PipelineTaskUpdate) ClearImageDescription() *PipelineTaskUpdate {
	_u.mutation.ClearImageDescription()
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *PipelineTaskUpdate) SetImageURL(v string) *PipelineTaskUpdate {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *PipelineTaskUpdate) SetNillableImageURL(v *string) *PipelineTaskUpdate {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// ClearImageURL clears the value of the "image_url" field.
func (_u *PipelineTaskUpdate) ClearImageURL() *PipelineTaskUpdate {
	_u.mutation.ClearImageURL()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *PipelineTaskUpdate) SetMetadata(v map[string]interface{}) *PipelineTaskUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *PipelineTaskUpdate) ClearMetadata() *PipelineTaskUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PipelineTaskUpdate) SetStartedAt(v time.Time) *PipelineTaskUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PipelineTaskUpdate) SetNillableStartedAt(v *time.Time) *PipelineTaskUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *PipelineTaskUpdate) ClearStartedAt() *PipelineTaskUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PipelineTaskUpdate) SetCompletedAt(v time.Time) *PipelineTaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PipelineTaskUpdate) SetNillableCompletedAt(v *time.Time) *PipelineTaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PipelineTaskUpdate) ClearCompletedAt() *PipelineTaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PipelineTaskUpdate) SetUpdatedAt(v time.Time) *PipelineTaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PipelineTaskMutation object of the builder.
func (_u *PipelineTaskUpdate) Mutation() *PipelineTaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineTaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PipelineTaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pipelinetask.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineTaskUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := pipelinetask.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "PipelineTask.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinetask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineTask.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinetask.Table, pipelinetask.Columns, sqlgraph.NewFieldSpec(pipelinetask.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DonationID(); ok {
		_spec.SetField(pipelinetask.FieldDonationID, field.TypeString, value)
	}
	if _u.mutation.DonationIDCleared() {
		_spec.ClearField(pipelinetask.FieldDonationID, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(pipelinetask.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinetask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(pipelinetask.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(pipelinetask.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(pipelinetask.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(pipelinetask.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Subreddit(); ok {
		_spec.SetField(pipelinetask.FieldSubreddit, field.TypeString, value)
	}
	if _u.mutation.SubredditCleared() {
		_spec.ClearField(pipelinetask.FieldSubreddit, field.TypeString)
	}
	if value, ok := _u.mutation.PostID(); ok {
		_spec.SetField(pipelinetask.FieldPostID, field.TypeString, value)
	}
	if _u.mutation.PostIDCleared() {
		_spec.ClearField(pipelinetask.FieldPostID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinetask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(pipelinetask.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.LeaseOwner(); ok {
		_spec.SetField(pipelinetask.FieldLeaseOwner, field.TypeString, value)
	}
	if _u.mutation.LeaseOwnerCleared() {
		_spec.ClearField(pipelinetask.FieldLeaseOwner, field.TypeString)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(pipelinetask.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresAtCleared() {
		_spec.ClearField(pipelinetask.FieldLeaseExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NotBefore(); ok {
		_spec.SetField(pipelinetask.FieldNotBefore, field.TypeTime, value)
	}
	if _u.mutation.NotBeforeCleared() {
		_spec.ClearField(pipelinetask.FieldNotBefore, field.TypeTime)
	}
	if value, ok := _u.mutation.Theme(); ok {
		_spec.SetField(pipelinetask.FieldTheme, field.TypeString, value)
	}
	if _u.mutation.ThemeCleared() {
		_spec.ClearField(pipelinetask.FieldTheme, field.TypeString)
	}
	if value, ok := _u.mutation.ImageTitle(); ok {
		_spec.SetField(pipelinetask.FieldImageTitle, field.TypeString, value)
	}
	if _u.mutation.ImageTitleCleared() {
		_spec.ClearField(pipelinetask.FieldImageTitle, field.TypeString)
	}
	if value, ok := _u.mutation.ImageDescription(); ok {
		_spec.SetField(pipelinetask.FieldImageDescription, field.TypeString, value)
	}
	if _u.mutation.ImageDescriptionCleared() {
		_spec.ClearField(pipelinetask.FieldImageDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(pipelinetask.FieldImageURL, field.TypeString, value)
	}
	if _u.mutation.ImageURLCleared() {
		_spec.ClearField(pipelinetask.FieldImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(pipelinetask.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(pipelinetask.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(pipelinetask.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(pipelinetask.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinetask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(pipelinetask.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelinetask.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinetask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineTaskUpdateOne is the builder for updating a single PipelineTask entity.
type PipelineTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineTaskMutation
}

// SetDonationID sets the "donation_id" field.
func (_u *PipelineTaskUpdateOne) SetDonationID(v string) *PipelineTaskUpdateOne {
	_u.mutation.SetDonationID(v)
	return _u
}

// SetNillableDonationID sets the "donation_id" field if the given value is not nil.
func (_u *PipelineTaskUpdateOne) SetNillableDonationID(v *string) *PipelineTaskUpdateOne {
	if v != nil {
		_u.SetDonationID(*v)
	}
	return _u
}

// ClearDonationID clears the value of the "donation_id" field.
func (_u *PipelineTaskUpdateOne) ClearDonationID() *PipelineTaskUpdateOne {
	_u.mutation.ClearDonationID()
	return _u
}

// SetType sets the "type" field.
func (_u *PipelineTaskUpdateOne) SetType(v pipelinetask.Type) *PipelineTaskUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *PipelineTaskUpdateOne) SetNillableType(v *pipelinetask.Type) *PipelineTaskUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineTaskUpdateOne) SetStatus(v pipelinetask.Status) *PipelineTaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineTaskUpdateOne) SetNillableStatus(v *pipelinetask.Status) *PipelineTaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *PipelineTaskUpdateOne) SetPriority(v int) *PipelineTaskUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *PipelineTaskUpdateOne) SetNillablePriority(v *int) *PipelineTaskUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *PipelineTaskUpdateOne) AddPriority(v int) *PipelineTaskUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *PipelineTaskUpdateOne) SetAttempt(v int) *PipelineTaskUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *PipelineTaskUpdateOne) SetNillableAttempt(v *int) *PipelineTaskUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *PipelineTaskUpdateOne) AddAttempt(v int) *PipelineTaskUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetSubreddit sets the "subreddit" field.
func (_u *PipelineTaskUpdateOne) SetSubreddit(v string) *PipelineTaskUpdateOne {
	_u.mutation.SetSubreddit(v)
	return _u
}

// SetNillableSubreddit sets the "subreddit" field if the given value is not nil.
func (_u *PipelineTaskUpdateOne) SetNillableSubreddit(v *string) *PipelineTaskUpdateOne {
	if v != nil {
		_u.SetSubreddit(*v)
	}
	return _u
}

// ClearSubreddit clears the value of the "subreddit" field.
func (_u *PipelineTaskUpdateOne) ClearSubreddit() *PipelineTaskUpdateOne {
	_u.mutation.ClearSubreddit()
	return _u
}

// SetPostID sets the "post_id" field.
func (_u *PipelineTaskUpdateOne) SetPostID(v string) *PipelineTaskUpdateOne {
	_u.mutation.SetPostID(v)
	return _u
}

// SetNillablePostID sets the "post_id" field if the given value is not nil.
func (_u *PipelineTaskUpdateOne) SetNillablePostID(v *string) *PipelineTaskUpdateOne {
	if v != nil {
		_u.SetPostID(*v)
	}
	return _u
}

// ClearPostID clears the value of the "post_id" field.
func (_u *PipelineTaskUpdateOne) ClearPostID() *PipelineTaskUpdateOne {
	_u.mutation.ClearPostID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PipelineTaskUpdateOne) SetErrorMessage(v string) *PipelineTaskUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PipelineTaskUpdateOne) SetNillableErrorMessage(v *string) *PipelineTaskUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PipelineTaskUpdateOne) ClearErrorMessage() *PipelineTaskUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetLeaseOwner sets the "lease_owner" field.
func (_u *PipelineTaskUpdateOne) SetLeaseOwner(v string) *PipelineTaskUpdateOne {
	_u.mutation.SetLeaseOwner(v)
	return _u
}

// SetNillableLeaseOwner sets the "lease_owner" field if the given value is not nil.
func (_u *PipelineTaskUpdateOne) SetNillableLeaseOwner(v *string) *PipelineTaskUpdateOne {
	if v != nil {
		_u.SetLeaseOwner(*v)
	}
	return _u
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (_u *PipelineTaskUpdateOne) ClearLeaseOwner() *PipelineTaskUpdateOne {
	_u.mutation.ClearLeaseOwner()
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *PipelineTaskUpdateOne) SetLeaseExpiresAt(v time.Time) *PipelineTaskUpdateOne {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *PipelineTaskUpdateOne) SetNillableLeaseExpiresAt(v *time.Time) *PipelineTaskUpdateOne {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (_u *PipelineTaskUpdateOne) ClearLeaseExpiresAt() *PipelineTaskUpdateOne {
	_u.mutation.ClearLeaseExpiresAt()
	return _u
}

// SetNotBefore sets the "not_before" field.
func (_u *PipelineTaskUpdateOne) SetNotBefore(v time.Time) *PipelineTaskUpdateOne {
	_u.mutation.SetNotBefore(v)
	return _u
}

// SetNillableNotBefore sets the "not_before" field if the given value is not nil.
func (_u *PipelineTaskUpdateOne) SetNillableNotBefore(v *time.Time) *PipelineTaskUpdateOne {
	if v != nil {
		_u.SetNotBefore(*v)
	}
	return _u
}

// ClearNotBefore clears the value of the "not_before" field.
func (_u *PipelineTaskUpdateOne) ClearNotBefore() *PipelineTaskUpdateOne {
	_u.mutation.ClearNotBefore()
	return _u
}

// SetTheme sets the "theme" field.
func (_u *PipelineTaskUpdateOne) SetTheme(v string) *PipelineTaskUpdateOne {
	_u.mutation.SetTheme(v)
	return _u
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_u *PipelineTaskUpdateOne) SetNillableTheme(v *string) *PipelineTaskUpdateOne {
	if v != nil {
		_u.SetTheme(*v)
	}
	return _u
}

// ClearTheme clears the value of the "theme" field.
func (_u *PipelineTaskUpdateOne) ClearTheme() *PipelineTaskUpdateOne {
	_u.mutation.ClearTheme()
	return _u
}

// SetImageTitle sets the "image_title" field.
func (_u *PipelineTaskUpdateOne) SetImageTitle(v string) *PipelineTaskUpdateOne {
	_u.mutation.SetImageTitle(v)
	return _u
}

// SetNillableImageTitle sets the "image_title" field if the given value is not nil.
func (_u *PipelineTaskUpdateOne) SetNillableImageTitle(v *string) *PipelineTaskUpdateOne {
	if v != nil {
		_u.SetImageTitle(*v)
	}
	return _u
}

// ClearImageTitle clears the value of the "image_title" field.
func (_u *PipelineTaskUpdateOne) ClearImageTitle() *PipelineTaskUpdateOne {
	_u.mutation.ClearImageTitle()
	return _u
}

// SetImageDescription sets the "image_description" field.
func (_u *PipelineTaskUpdateOne) SetImageDescription(v string) *PipelineTaskUpdateOne {
	_u.mutation.SetImageDescription(v)
	return _u
}

// SetNillableImageDescription sets the "image_description" field if the given value is not nil.
func (_u *PipelineTaskUpdateOne) SetNillableImageDescription(v *string) *PipelineTaskUpdateOne {
	if v != nil {
		_u.SetImageDescription(*v)
	}
	return _u
}

// ClearImageDescription clears the value of the "image_description" field.
func (_u *PipelineTaskUpdateOne) ClearImageDescription() *PipelineTaskUpdateOne {
	_u.mutation.ClearImageDescription()
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *PipelineTaskUpdateOne) SetImageURL(v string) *PipelineTaskUpdateOne {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *PipelineTaskUpdateOne) SetNillableImageURL(v *string) *PipelineTaskUpdateOne {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// ClearImageURL clears the value of the "image_url" field.
func (_u *PipelineTaskUpdateOne) ClearImageURL() *PipelineTaskUpdateOne {
	_u.mutation.ClearImageURL()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *PipelineTaskUpdateOne) SetMetadata(v map[string]interface{}) *PipelineTaskUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *PipelineTaskUpdateOne) ClearMetadata() *PipelineTaskUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PipelineTaskUpdateOne) SetStartedAt(v time.Time) *PipelineTaskUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PipelineTaskUpdateOne) SetNillableStartedAt(v *time.Time) *PipelineTaskUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *PipelineTaskUpdateOne) ClearStartedAt() *PipelineTaskUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PipelineTaskUpdateOne) SetCompletedAt(v time.Time) *PipelineTaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PipelineTaskUpdateOne) SetNillableCompletedAt(v *time.Time) *PipelineTaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PipelineTaskUpdateOne) ClearCompletedAt() *PipelineTaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PipelineTaskUpdateOne) SetUpdatedAt(v time.Time) *PipelineTaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PipelineTaskMutation object of the builder.
func (_u *PipelineTaskUpdateOne) Mutation() *PipelineTaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the PipelineTaskUpdate builder.
func (_u *PipelineTaskUpdateOne) Where(ps ...predicate.PipelineTask) *PipelineTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineTaskUpdateOne) Select(field string, fields ...string) *PipelineTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineTask entity.
func (_u *PipelineTaskUpdateOne) Save(ctx context.Context) (*PipelineTask, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineTaskUpdateOne) SaveX(ctx context.Context) *PipelineTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PipelineTaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pipelinetask.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineTaskUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := pipelinetask.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "PipelineTask.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinetask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineTask.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineTaskUpdateOne) sqlSave(ctx context.Context) (_node *PipelineTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinetask.Table, pipelinetask.Columns, sqlgraph.NewFieldSpec(pipelinetask.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinetask.FieldID)
		for _, f := range fields {
			if !pipelinetask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelinetask.FieldID {
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
	if value, ok := _u.mutation.DonationID(); ok {
		_spec.SetField(pipelinetask.FieldDonationID, field.TypeString, value)
	}
	if _u.mutation.DonationIDCleared() {
		_spec.ClearField(pipelinetask.FieldDonationID, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(pipelinetask.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinetask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(pipelinetask.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(pipelinetask.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(pipelinetask.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(pipelinetask.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Subreddit(); ok {
		_spec.SetField(pipelinetask.FieldSubreddit, field.TypeString, value)
	}
	if _u.mutation.SubredditCleared() {
		_spec.ClearField(pipelinetask.FieldSubreddit, field.TypeString)
	}
	if value, ok := _u.mutation.PostID(); ok {
		_spec.SetField(pipelinetask.FieldPostID, field.TypeString, value)
	}
	if _u.mutation.PostIDCleared() {
		_spec.ClearField(pipelinetask.FieldPostID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinetask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(pipelinetask.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.LeaseOwner(); ok {
		_spec.SetField(pipelinetask.FieldLeaseOwner, field.TypeString, value)
	}
	if _u.mutation.LeaseOwnerCleared() {
		_spec.ClearField(pipelinetask.FieldLeaseOwner, field.TypeString)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(pipelinetask.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresAtCleared() {
		_spec.ClearField(pipelinetask.FieldLeaseExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NotBefore(); ok {
		_spec.SetField(pipelinetask.FieldNotBefore, field.TypeTime, value)
	}
	if _u.mutation.NotBeforeCleared() {
		_spec.ClearField(pipelinetask.FieldNotBefore, field.TypeTime)
	}
	if value, ok := _u.mutation.Theme(); ok {
		_spec.SetField(pipelinetask.FieldTheme, field.TypeString, value)
	}
	if _u.mutation.ThemeCleared() {
		_spec.ClearField(pipelinetask.FieldTheme, field.TypeString)
	}
	if value, ok := _u.mutation.ImageTitle(); ok {
		_spec.SetField(pipelinetask.FieldImageTitle, field.TypeString, value)
	}
	if _u.mutation.ImageTitleCleared() {
		_spec.ClearField(pipelinetask.FieldImageTitle, field.TypeString)
	}
	if value, ok := _u.mutation.ImageDescription(); ok {
		_spec.SetField(pipelinetask.FieldImageDescription, field.TypeString, value)
	}
	if _u.mutation.ImageDescriptionCleared() {
		_spec.ClearField(pipelinetask.FieldImageDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(pipelinetask.FieldImageURL, field.TypeString, value)
	}
	if _u.mutation.ImageURLCleared() {
		_spec.ClearField(pipelinetask.FieldImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(pipelinetask.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(pipelinetask.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(pipelinetask.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(pipelinetask.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinetask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(pipelinetask.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelinetask.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PipelineTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinetask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
