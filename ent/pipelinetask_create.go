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
	"github.com/redditart/commissioner/ent/pipelinetask"
)

// PipelineTaskCreate is the builder for creating a PipelineTask entity.
type PipelineTaskCreate struct {
	config
	mutation *PipelineTaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDonationID sets the "donation_id" field.
func (_c *PipelineTaskCreate) SetDonationID(v string) *PipelineTaskCreate {
	_c.mutation.SetDonationID(v)
	return _c
}

// SetNillableDonationID sets the "donation_id" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillableDonationID(v *string) *PipelineTaskCreate {
	if v != nil {
		_c.SetDonationID(*v)
	}
	return _c
}

// SetType sets the "type" field.
func (_c *PipelineTaskCreate) SetType(v pipelinetask.Type) *PipelineTaskCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PipelineTaskCreate) SetStatus(v pipelinetask.Status) *PipelineTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillableStatus(v *pipelinetask.Status) *PipelineTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *PipelineTaskCreate) SetPriority(v int) *PipelineTaskCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillablePriority(v *int) *PipelineTaskCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *PipelineTaskCreate) SetAttempt(v int) *PipelineTaskCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillableAttempt(v *int) *PipelineTaskCreate {
	if v != nil {
		_c.SetAttempt(*v)
	}
	return _c
}

// SetSubreddit sets the "subreddit" field.
func (_c *PipelineTaskCreate) SetSubreddit(v string) *PipelineTaskCreate {
	_c.mutation.SetSubreddit(v)
	return _c
}

// SetNillableSubreddit sets the "subreddit" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillableSubreddit(v *string) *PipelineTaskCreate {
	if v != nil {
		_c.SetSubreddit(*v)
	}
	return _c
}

// SetPostID sets the "post_id" field.
func (_c *PipelineTaskCreate) SetPostID(v string) *PipelineTaskCreate {
	_c.mutation.SetPostID(v)
	return _c
}

// SetNillablePostID sets the "post_id" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillablePostID(v *string) *PipelineTaskCreate {
	if v != nil {
		_c.SetPostID(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *PipelineTaskCreate) SetErrorMessage(v string) *PipelineTaskCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillableErrorMessage(v *string) *PipelineTaskCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetLeaseOwner sets the "lease_owner" field.
func (_c *PipelineTaskCreate) SetLeaseOwner(v string) *PipelineTaskCreate {
	_c.mutation.SetLeaseOwner(v)
	return _c
}

// SetNillableLeaseOwner sets the "lease_owner" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillableLeaseOwner(v *string) *PipelineTaskCreate {
	if v != nil {
		_c.SetLeaseOwner(*v)
	}
	return _c
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_c *PipelineTaskCreate) SetLeaseExpiresAt(v time.Time) *PipelineTaskCreate {
	_c.mutation.SetLeaseExpiresAt(v)
	return _c
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillableLeaseExpiresAt(v *time.Time) *PipelineTaskCreate {
	if v != nil {
		_c.SetLeaseExpiresAt(*v)
	}
	return _c
}

// SetNotBefore sets the "not_before" field.
func (_c *PipelineTaskCreate) SetNotBefore(v time.Time) *PipelineTaskCreate {
	_c.mutation.SetNotBefore(v)
	return _c
}

// SetNillableNotBefore sets the "not_before" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillableNotBefore(v *time.Time) *PipelineTaskCreate {
	if v != nil {
		_c.SetNotBefore(*v)
	}
	return _c
}

// SetTheme sets the "theme" field.
func (_c *PipelineTaskCreate) SetTheme(v string) *PipelineTaskCreate {
	_c.mutation.SetTheme(v)
	return _c
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillableTheme(v *string) *PipelineTaskCreate {
	if v != nil {
		_c.SetTheme(*v)
	}
	return _c
}

// SetImageTitle sets the "image_title" field.
func (_c *PipelineTaskCreate) SetImageTitle(v string) *PipelineTaskCreate {
	_c.mutation.SetImageTitle(v)
	return _c
}

// SetNillableImageTitle sets the "image_title" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillableImageTitle(v *string) *PipelineTaskCreate {
	if v != nil {
		_c.SetImageTitle(*v)
	}
	return _c
}

// SetImageDescription sets the "image_description" field.
func (_c *PipelineTaskCreate) SetImageDescription(v string) *PipelineTaskCreate {
	_c.mutation.SetImageDescription(v)
	return _c
}

// SetNillableImageDescription sets the "image_description" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillableImageDescription(v *string) *PipelineTaskCreate {
	if v != nil {
		_c.SetImageDescription(*v)
	}
	return _c
}

// SetImageURL sets the "image_url" field.
func (_c *PipelineTaskCreate) SetImageURL(v string) *PipelineTaskCreate {
	_c.mutation.SetImageURL(v)
	return _c
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillableImageURL(v *string) *PipelineTaskCreate {
	if v != nil {
		_c.SetImageURL(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *PipelineTaskCreate) SetMetadata(v map[string]interface{}) *PipelineTaskCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PipelineTaskCreate) SetCreatedAt(v time.Time) *PipelineTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillableCreatedAt(v *time.Time) *PipelineTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *PipelineTaskCreate) SetStartedAt(v time.Time) *PipelineTaskCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillableStartedAt(v *time.Time) *PipelineTaskCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PipelineTaskCreate) SetCompletedAt(v time.Time) *PipelineTaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillableCompletedAt(v *time.Time) *PipelineTaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PipelineTaskCreate) SetUpdatedAt(v time.Time) *PipelineTaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillableUpdatedAt(v *time.Time) *PipelineTaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PipelineTaskCreate) SetID(v string) *PipelineTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillableID(v *string) *PipelineTaskCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PipelineTaskMutation object of the builder.
func (_c *PipelineTaskCreate) Mutation() *PipelineTaskMutation {
	return _c.mutation
}

// Save creates the PipelineTask in the database.
func (_c *PipelineTaskCreate) Save(ctx context.Context) (*PipelineTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineTaskCreate) SaveX(ctx context.Context) *PipelineTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineTaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := pipelinetask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := pipelinetask.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		v := pipelinetask.DefaultAttempt
		_c.mutation.SetAttempt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pipelinetask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := pipelinetask.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := pipelinetask.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineTaskCreate) check() error {
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "PipelineTask.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := pipelinetask.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "PipelineTask.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PipelineTask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pipelinetask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineTask.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "PipelineTask.priority"`)}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "PipelineTask.attempt"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PipelineTask.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PipelineTask.updated_at"`)}
	}
	return nil
}

func (_c *PipelineTaskCreate) sqlSave(ctx context.Context) (*PipelineTask, error) {
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
			return nil, fmt.Errorf("unexpected PipelineTask.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PipelineTaskCreate) createSpec() (*PipelineTask, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelinetask.Table, sqlgraph.NewFieldSpec(pipelinetask.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DonationID(); ok {
		_spec.SetField(pipelinetask.FieldDonationID, field.TypeString, value)
		_node.DonationID = &value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(pipelinetask.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pipelinetask.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(pipelinetask.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(pipelinetask.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.Subreddit(); ok {
		_spec.SetField(pipelinetask.FieldSubreddit, field.TypeString, value)
		_node.Subreddit = &value
	}
	if value, ok := _c.mutation.PostID(); ok {
		_spec.SetField(pipelinetask.FieldPostID, field.TypeString, value)
		_node.PostID = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinetask.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.LeaseOwner(); ok {
		_spec.SetField(pipelinetask.FieldLeaseOwner, field.TypeString, value)
		_node.LeaseOwner = &value
	}
	if value, ok := _c.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(pipelinetask.FieldLeaseExpiresAt, field.TypeTime, value)
		_node.LeaseExpiresAt = &value
	}
	if value, ok := _c.mutation.NotBefore(); ok {
		_spec.SetField(pipelinetask.FieldNotBefore, field.TypeTime, value)
		_node.NotBefore = &value
	}
	if value, ok := _c.mutation.Theme(); ok {
		_spec.SetField(pipelinetask.FieldTheme, field.TypeString, value)
		_node.Theme = &value
	}
	if value, ok := _c.mutation.ImageTitle(); ok {
		_spec.SetField(pipelinetask.FieldImageTitle, field.TypeString, value)
		_node.ImageTitle = &value
	}
	if value, ok := _c.mutation.ImageDescription(); ok {
		_spec.SetField(pipelinetask.FieldImageDescription, field.TypeString, value)
		_node.ImageDescription = &value
	}
	if value, ok := _c.mutation.ImageURL(); ok {
		_spec.SetField(pipelinetask.FieldImageURL, field.TypeString, value)
		_node.ImageURL = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(pipelinetask.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinetask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(pipelinetask.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinetask.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelinetask.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PipelineTask.Create().
//		SetDonationID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PipelineTaskUpsert) {
//			SetDonationID(v+v).
//		}).
//		Exec(ctx)
func (_c *PipelineTaskCreate) OnConflict(opts ...sql.ConflictOption) *PipelineTaskUpsertOne {
	_c.conflict = opts
	return &PipelineTaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PipelineTask.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PipelineTaskCreate) OnConflictColumns(columns ...string) *PipelineTaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PipelineTaskUpsertOne{
		create: _c,
	}
}

type (
	// PipelineTaskUpsertOne is the builder for "upsert"-ing
	//  one PipelineTask node.
	PipelineTaskUpsertOne struct {
		create *PipelineTaskCreate
	}

	// PipelineTaskUpsert is the "OnConflict" setter.
	PipelineTaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetDonationID sets the "donation_id" field.
func (u *PipelineTaskUpsert) SetDonationID(v string) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldDonationID, v)
	return u
}

// UpdateDonationID sets the "donation_id" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateDonationID() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldDonationID)
	return u
}

// ClearDonationID clears the value of the "donation_id" field.
func (u *PipelineTaskUpsert) ClearDonationID() *PipelineTaskUpsert {
	u.SetNull(pipelinetask.FieldDonationID)
	return u
}

// SetType sets the "type" field.
func (u *PipelineTaskUpsert) SetType(v pipelinetask.Type) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateType() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldType)
	return u
}

// SetStatus sets the "status" field.
func (u *PipelineTaskUpsert) SetStatus(v pipelinetask.Status) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateStatus() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldStatus)
	return u
}

// SetPriority sets the "priority" field.
func (u *PipelineTaskUpsert) SetPriority(v int) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdatePriority() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldPriority)
	return u
}

// AddPriority adds v to the "priority" field.
func (u *PipelineTaskUpsert) AddPriority(v int) *PipelineTaskUpsert {
	u.Add(pipelinetask.FieldPriority, v)
	return u
}

// SetAttempt sets the "attempt" field.
func (u *PipelineTaskUpsert) SetAttempt(v int) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldAttempt, v)
	return u
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateAttempt() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldAttempt)
	return u
}

// AddAttempt adds v to the "attempt" field.
func (u *PipelineTaskUpsert) AddAttempt(v int) *PipelineTaskUpsert {
	u.Add(pipelinetask.FieldAttempt, v)
	return u
}

// SetSubreddit sets the "subreddit" field.
func (u *PipelineTaskUpsert) SetSubreddit(v string) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldSubreddit, v)
	return u
}

// UpdateSubreddit sets the "subreddit" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateSubreddit() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldSubreddit)
	return u
}

// ClearSubreddit clears the value of the "subreddit" field.
func (u *PipelineTaskUpsert) ClearSubreddit() *PipelineTaskUpsert {
	u.SetNull(pipelinetask.FieldSubreddit)
	return u
}

// SetPostID sets the "post_id" field.
func (u *PipelineTaskUpsert) SetPostID(v string) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldPostID, v)
	return u
}

// UpdatePostID sets the "post_id" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdatePostID() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldPostID)
	return u
}

// ClearPostID clears the value of the "post_id" field.
func (u *PipelineTaskUpsert) ClearPostID() *PipelineTaskUpsert {
	u.SetNull(pipelinetask.FieldPostID)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *PipelineTaskUpsert) SetErrorMessage(v string) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateErrorMessage() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *PipelineTaskUpsert) ClearErrorMessage() *PipelineTaskUpsert {
	u.SetNull(pipelinetask.FieldErrorMessage)
	return u
}

// SetLeaseOwner sets the "lease_owner" field.
func (u *PipelineTaskUpsert) SetLeaseOwner(v string) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldLeaseOwner, v)
	return u
}

// UpdateLeaseOwner sets the "lease_owner" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateLeaseOwner() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldLeaseOwner)
	return u
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (u *PipelineTaskUpsert) ClearLeaseOwner() *PipelineTaskUpsert {
	u.SetNull(pipelinetask.FieldLeaseOwner)
	return u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *PipelineTaskUpsert) SetLeaseExpiresAt(v time.Time) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldLeaseExpiresAt, v)
	return u
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateLeaseExpiresAt() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldLeaseExpiresAt)
	return u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (u *PipelineTaskUpsert) ClearLeaseExpiresAt() *PipelineTaskUpsert {
	u.SetNull(pipelinetask.FieldLeaseExpiresAt)
	return u
}

// SetNotBefore sets the "not_before" field.
func (u *PipelineTaskUpsert) SetNotBefore(v time.Time) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldNotBefore, v)
	return u
}

// UpdateNotBefore sets the "not_before" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateNotBefore() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldNotBefore)
	return u
}

// ClearNotBefore clears the value of the "not_before" field.
func (u *PipelineTaskUpsert) ClearNotBefore() *PipelineTaskUpsert {
	u.SetNull(pipelinetask.FieldNotBefore)
	return u
}

// SetTheme sets the "theme" field.
func (u *PipelineTaskUpsert) SetTheme(v string) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldTheme, v)
	return u
}

// UpdateTheme sets the "theme" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateTheme() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldTheme)
	return u
}

// ClearTheme clears the value of the "theme" field.
func (u *PipelineTaskUpsert) ClearTheme() *PipelineTaskUpsert {
	u.SetNull(pipelinetask.FieldTheme)
	return u
}

// SetImageTitle sets the "image_title" field.
func (u *PipelineTaskUpsert) SetImageTitle(v string) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldImageTitle, v)
	return u
}

// UpdateImageTitle sets the "image_title" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateImageTitle() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldImageTitle)
	return u
}

// ClearImageTitle clears the value of the "image_title" field.
func (u *PipelineTaskUpsert) ClearImageTitle() *PipelineTaskUpsert {
	u.SetNull(pipelinetask.FieldImageTitle)
	return u
}

// SetImageDescription sets the "image_description" field.
func (u *PipelineTaskUpsert) SetImageDescription(v string) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldImageDescription, v)
	return u
}

// UpdateImageDescription sets the "image_description" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateImageDescription() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldImageDescription)
	return u
}

// ClearImageDescription clears the value of the "image_description" field.
func (u *PipelineTaskUpsert) ClearImageDescription() *PipelineTaskUpsert {
	u.SetNull(pipelinetask.FieldImageDescription)
	return u
}

// SetImageURL sets the "image_url" field.
func (u *PipelineTaskUpsert) SetImageURL(v string) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldImageURL, v)
	return u
}

// UpdateImageURL sets the "image_url" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateImageURL() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldImageURL)
	return u
}

// ClearImageURL clears the value of the "image_url" field.
func (u *PipelineTaskUpsert) ClearImageURL() *PipelineTaskUpsert {
	u.SetNull(pipelinetask.FieldImageURL)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *PipelineTaskUpsert) SetMetadata(v map[string]interface{}) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateMetadata() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *PipelineTaskUpsert) ClearMetadata() *PipelineTaskUpsert {
	u.SetNull(pipelinetask.FieldMetadata)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *PipelineTaskUpsert) SetStartedAt(v time.Time) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateStartedAt() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *PipelineTaskUpsert) ClearStartedAt() *PipelineTaskUpsert {
	u.SetNull(pipelinetask.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *PipelineTaskUpsert) SetCompletedAt(v time.Time) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateCompletedAt() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PipelineTaskUpsert) ClearCompletedAt() *PipelineTaskUpsert {
	u.SetNull(pipelinetask.FieldCompletedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PipelineTaskUpsert) SetUpdatedAt(v time.Time) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateUpdatedAt() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PipelineTask.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pipelinetask.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PipelineTaskUpsertOne) UpdateNewValues() *PipelineTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(pipelinetask.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(pipelinetask.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PipelineTask.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PipelineTaskUpsertOne) Ignore() *PipelineTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PipelineTaskUpsertOne) DoNothing() *PipelineTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PipelineTaskCreate.OnConflict
// documentation for more info.
func (u *PipelineTaskUpsertOne) Update(set func(*PipelineTaskUpsert)) *PipelineTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PipelineTaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetDonationID sets the "donation_id" field.
func (u *PipelineTaskUpsertOne) SetDonationID(v string) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetDonationID(v)
	})
}

// UpdateDonationID sets the "donation_id" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateDonationID() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateDonationID()
	})
}

// ClearDonationID clears the value of the "donation_id" field.
func (u *PipelineTaskUpsertOne) ClearDonationID() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearDonationID()
	})
}

// SetType sets the "type" field.
func (u *PipelineTaskUpsertOne) SetType(v pipelinetask.Type) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateType() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateType()
	})
}

// SetStatus sets the "status" field.
func (u *PipelineTaskUpsertOne) SetStatus(v pipelinetask.Status) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateStatus() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateStatus()
	})
}

// SetPriority sets the "priority" field.
func (u *PipelineTaskUpsertOne) SetPriority(v int) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *PipelineTaskUpsertOne) AddPriority(v int) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdatePriority() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdatePriority()
	})
}

// SetAttempt sets the "attempt" field.
func (u *PipelineTaskUpsertOne) SetAttempt(v int) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetAttempt(v)
	})
}

// AddAttempt adds v to the "attempt" field.
func (u *PipelineTaskUpsertOne) AddAttempt(v int) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.AddAttempt(v)
	})
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateAttempt() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateAttempt()
	})
}

// SetSubreddit sets the "subreddit" field.
func (u *PipelineTaskUpsertOne) SetSubreddit(v string) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetSubreddit(v)
	})
}

// UpdateSubreddit sets the "subreddit" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateSubreddit() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateSubreddit()
	})
}

// ClearSubreddit clears the value of the "subreddit" field.
func (u *PipelineTaskUpsertOne) ClearSubreddit() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearSubreddit()
	})
}

// SetPostID sets the "post_id" field.
func (u *PipelineTaskUpsertOne) SetPostID(v string) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetPostID(v)
	})
}

// UpdatePostID sets the "post_id" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdatePostID() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdatePostID()
	})
}

// ClearPostID clears the value of the "post_id" field.
func (u *PipelineTaskUpsertOne) ClearPostID() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearPostID()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *PipelineTaskUpsertOne) SetErrorMessage(v string) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateErrorMessage() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *PipelineTaskUpsertOne) ClearErrorMessage() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearErrorMessage()
	})
}

// SetLeaseOwner sets the "lease_owner" field.
func (u *PipelineTaskUpsertOne) SetLeaseOwner(v string) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetLeaseOwner(v)
	})
}

// UpdateLeaseOwner sets the "lease_owner" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateLeaseOwner() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateLeaseOwner()
	})
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (u *PipelineTaskUpsertOne) ClearLeaseOwner() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearLeaseOwner()
	})
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *PipelineTaskUpsertOne) SetLeaseExpiresAt(v time.Time) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetLeaseExpiresAt(v)
	})
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateLeaseExpiresAt() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateLeaseExpiresAt()
	})
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (u *PipelineTaskUpsertOne) ClearLeaseExpiresAt() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearLeaseExpiresAt()
	})
}

// SetNotBefore sets the "not_before" field.
func (u *PipelineTaskUpsertOne) SetNotBefore(v time.Time) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetNotBefore(v)
	})
}

// UpdateNotBefore sets the "not_before" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateNotBefore() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateNotBefore()
	})
}

// ClearNotBefore clears the value of the "not_before" field.
func (u *PipelineTaskUpsertOne) ClearNotBefore() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearNotBefore()
	})
}

// SetTheme sets the "theme" field.
func (u *PipelineTaskUpsertOne) SetTheme(v string) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetTheme(v)
	})
}

// UpdateTheme sets the "theme" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateTheme() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateTheme()
	})
}

// ClearTheme clears the value of the "theme" field.
func (u *PipelineTaskUpsertOne) ClearTheme() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearTheme()
	})
}

// SetImageTitle sets the "image_title" field.
func (u *PipelineTaskUpsertOne) SetImageTitle(v string) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetImageTitle(v)
	})
}

// UpdateImageTitle sets the "image_title" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateImageTitle() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateImageTitle()
	})
}

// ClearImageTitle clears the value of the "image_title" field.
func (u *PipelineTaskUpsertOne) ClearImageTitle() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearImageTitle()
	})
}

// SetImageDescription sets the "image_description" field.
func (u *PipelineTaskUpsertOne) SetImageDescription(v string) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetImageDescription(v)
	})
}

// UpdateImageDescription sets the "image_description" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateImageDescription() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateImageDescription()
	})
}

// ClearImageDescription clears the value of the "image_description" field.
func (u *PipelineTaskUpsertOne) ClearImageDescription() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearImageDescription()
	})
}

// SetImageURL sets the "image_url" field.
func (u *PipelineTaskUpsertOne) SetImageURL(v string) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetImageURL(v)
	})
}

// UpdateImageURL sets the "image_url" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateImageURL() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateImageURL()
	})
}

// ClearImageURL clears the value of the "image_url" field.
func (u *PipelineTaskUpsertOne) ClearImageURL() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearImageURL()
	})
}

// SetMetadata sets the "metadata" field.
func (u *PipelineTaskUpsertOne) SetMetadata(v map[string]interface{}) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateMetadata() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *PipelineTaskUpsertOne) ClearMetadata() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearMetadata()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *PipelineTaskUpsertOne) SetStartedAt(v time.Time) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateStartedAt() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *PipelineTaskUpsertOne) ClearStartedAt() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *PipelineTaskUpsertOne) SetCompletedAt(v time.Time) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateCompletedAt() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PipelineTaskUpsertOne) ClearCompletedAt() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearCompletedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PipelineTaskUpsertOne) SetUpdatedAt(v time.Time) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateUpdatedAt() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PipelineTaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PipelineTaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PipelineTaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PipelineTaskUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PipelineTaskUpsertOne.ID is not supported by MySQL driver. Use PipelineTaskUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PipelineTaskUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PipelineTaskCreateBulk is the builder for creating many PipelineTask entities in bulk.
type PipelineTaskCreateBulk struct {
	config
	err      error
	builders []*PipelineTaskCreate
	conflict []sql.ConflictOption
}

// Save creates the PipelineTask entities in the database.
func (_c *PipelineTaskCreateBulk) Save(ctx context.Context) ([]*PipelineTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineTaskMutation)
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
func (_c *PipelineTaskCreateBulk) SaveX(ctx context.Context) []*PipelineTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PipelineTask.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PipelineTaskUpsert) {
//			SetDonationID(v+v).
//		}).
//		Exec(ctx)
func (_c *PipelineTaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *PipelineTaskUpsertBulk {
	_c.conflict = opts
	return &PipelineTaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PipelineTask.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PipelineTaskCreateBulk) OnConflictColumns(columns ...string) *PipelineTaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PipelineTaskUpsertBulk{
		create: _c,
	}
}

// PipelineTaskUpsertBulk is the builder for "upsert"-ing
// a bulk of PipelineTask nodes.
type PipelineTaskUpsertBulk struct {
	create *PipelineTaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PipelineTask.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pipelinetask.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PipelineTaskUpsertBulk) UpdateNewValues() *PipelineTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(pipelinetask.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(pipelinetask.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PipelineTask.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PipelineTaskUpsertBulk) Ignore() *PipelineTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PipelineTaskUpsertBulk) DoNothing() *PipelineTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PipelineTaskCreateBulk.OnConflict
// documentation for more info.
func (u *PipelineTaskUpsertBulk) Update(set func(*PipelineTaskUpsert)) *PipelineTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PipelineTaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetDonationID sets the "donation_id" field.
func (u *PipelineTaskUpsertBulk) SetDonationID(v string) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetDonationID(v)
	})
}

// UpdateDonationID sets the "donation_id" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateDonationID() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateDonationID()
	})
}

// ClearDonationID clears the value of the "donation_id" field.
func (u *PipelineTaskUpsertBulk) ClearDonationID() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearDonationID()
	})
}

// SetType sets the "type" field.
func (u *PipelineTaskUpsertBulk) SetType(v pipelinetask.Type) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateType() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateType()
	})
}

// SetStatus sets the "status" field.
func (u *PipelineTaskUpsertBulk) SetStatus(v pipelinetask.Status) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateStatus() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateStatus()
	})
}

// SetPriority sets the "priority" field.
func (u *PipelineTaskUpsertBulk) SetPriority(v int) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *PipelineTaskUpsertBulk) AddPriority(v int) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdatePriority() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdatePriority()
	})
}

// SetAttempt sets the "attempt" field.
func (u *PipelineTaskUpsertBulk) SetAttempt(v int) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetAttempt(v)
	})
}

// AddAttempt adds v to the "attempt" field.
func (u *PipelineTaskUpsertBulk) AddAttempt(v int) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.AddAttempt(v)
	})
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateAttempt() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateAttempt()
	})
}

// SetSubreddit sets the "subreddit" field.
func (u *PipelineTaskUpsertBulk) SetSubreddit(v string) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetSubreddit(v)
	})
}

// UpdateSubreddit sets the "subreddit" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateSubreddit() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateSubreddit()
	})
}

// ClearSubreddit clears the value of the "subreddit" field.
func (u *PipelineTaskUpsertBulk) ClearSubreddit() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearSubreddit()
	})
}

// SetPostID sets the "post_id" field.
func (u *PipelineTaskUpsertBulk) SetPostID(v string) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetPostID(v)
	})
}

// UpdatePostID sets the "post_id" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdatePostID() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdatePostID()
	})
}

// ClearPostID clears the value of the "post_id" field.
func (u *PipelineTaskUpsertBulk) ClearPostID() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearPostID()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *PipelineTaskUpsertBulk) SetErrorMessage(v string) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateErrorMessage() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *PipelineTaskUpsertBulk) ClearErrorMessage() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearErrorMessage()
	})
}

// SetLeaseOwner sets the "lease_owner" field.
func (u *PipelineTaskUpsertBulk) SetLeaseOwner(v string) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetLeaseOwner(v)
	})
}

// UpdateLeaseOwner sets the "lease_owner" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateLeaseOwner() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateLeaseOwner()
	})
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (u *PipelineTaskUpsertBulk) ClearLeaseOwner() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearLeaseOwner()
	})
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *PipelineTaskUpsertBulk) SetLeaseExpiresAt(v time.Time) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetLeaseExpiresAt(v)
	})
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateLeaseExpiresAt() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateLeaseExpiresAt()
	})
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (u *PipelineTaskUpsertBulk) ClearLeaseExpiresAt() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearLeaseExpiresAt()
	})
}

// SetNotBefore sets the "not_before" field.
func (u *PipelineTaskUpsertBulk) SetNotBefore(v time.Time) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetNotBefore(v)
	})
}

// UpdateNotBefore sets the "not_before" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateNotBefore() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateNotBefore()
	})
}

// ClearNotBefore clears the value of the "not_before" field.
func (u *PipelineTaskUpsertBulk) ClearNotBefore() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearNotBefore()
	})
}

// SetTheme sets the "theme" field.
func (u *PipelineTaskUpsertBulk) SetTheme(v string) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetTheme(v)
	})
}

// UpdateTheme sets the "theme" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateTheme() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateTheme()
	})
}

// ClearTheme clears the value of the "theme" field.
func (u *PipelineTaskUpsertBulk) ClearTheme() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearTheme()
	})
}

// SetImageTitle sets the "image_title" field.
func (u *PipelineTaskUpsertBulk) SetImageTitle(v string) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetImageTitle(v)
	})
}

// UpdateImageTitle sets the "image_title" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateImageTitle() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateImageTitle()
	})
}

// ClearImageTitle clears the value of the "image_title" field.
func (u *PipelineTaskUpsertBulk) ClearImageTitle() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearImageTitle()
	})
}

// SetImageDescription sets the "image_description" field.
func (u *PipelineTaskUpsertBulk) SetImageDescription(v string) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetImageDescription(v)
	})
}

// UpdateImageDescription sets the "image_description" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateImageDescription() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateImageDescription()
	})
}

// ClearImageDescription clears the value of the "image_description" field.
func (u *PipelineTaskUpsertBulk) ClearImageDescription() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearImageDescription()
	})
}

// SetImageURL sets the "image_url" field.
func (u *PipelineTaskUpsertBulk) SetImageURL(v string) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetImageURL(v)
	})
}

// UpdateImageURL sets the "image_url" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateImageURL() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateImageURL()
	})
}

// ClearImageURL clears the value of the "image_url" field.
func (u *PipelineTaskUpsertBulk) ClearImageURL() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearImageURL()
	})
}

// SetMetadata sets the "metadata" field.
func (u *PipelineTaskUpsertBulk) SetMetadata(v map[string]interface{}) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateMetadata() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *PipelineTaskUpsertBulk) ClearMetadata() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearMetadata()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *PipelineTaskUpsertBulk) SetStartedAt(v time.Time) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateStartedAt() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *PipelineTaskUpsertBulk) ClearStartedAt() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *PipelineTaskUpsertBulk) SetCompletedAt(v time.Time) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateCompletedAt() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PipelineTaskUpsertBulk) ClearCompletedAt() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearCompletedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PipelineTaskUpsertBulk) SetUpdatedAt(v time.Time) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateUpdatedAt() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PipelineTaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PipelineTaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PipelineTaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PipelineTaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
