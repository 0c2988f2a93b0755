// Code generated by ent, DO NOT EDIT.

package pipelinetask

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/redditart/commissioner/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldContainsFold(FieldID, id))
}

// DonationID applies equality check predicate on the "donation_id" field. It's identical to DonationIDEQ.
func DonationID(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldDonationID, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldPriority, v))
}

// Attempt applies equality check predicate on the "attempt" field. It's identical to AttemptEQ.
func Attempt(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldAttempt, v))
}

// Subreddit applies equality check predicate on the "subreddit" field. It's identical to SubredditEQ.
func Subreddit(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldSubreddit, v))
}

// PostID applies equality check predicate on the "post_id" field. It's identical to PostIDEQ.
func PostID(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldPostID, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldErrorMessage, v))
}

// LeaseOwner applies equality check predicate on the "lease_owner" field. It's identical to LeaseOwnerEQ.
func LeaseOwner(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldLeaseOwner, v))
}

// LeaseExpiresAt applies equality check predicate on the "lease_expires_at" field. It's identical to LeaseExpiresAtEQ.
func LeaseExpiresAt(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldLeaseExpiresAt, v))
}

// NotBefore applies equality check predicate on the "not_before" field. It's identical to NotBeforeEQ.
func NotBefore(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldNotBefore, v))
}

// Theme applies equality check predicate on the "theme" field. It's identical to ThemeEQ.
func Theme(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldTheme, v))
}

// ImageTitle applies equality check predicate on the "image_title" field. It's identical to ImageTitleEQ.
func ImageTitle(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldImageTitle, v))
}

// ImageDescription applies equality check predicate on the "image_description" field. It's identical to ImageDescriptionEQ.
func ImageDescription(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldImageDescription, v))
}

// ImageURL applies equality check predicate on the "image_url" field. It's identical to ImageURLEQ.
func ImageURL(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldImageURL, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldCompletedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldUpdatedAt, v))
}

// DonationIDEQ applies the EQ predicate on the "donation_id" field.
func DonationIDEQ(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldDonationID, v))
}

// DonationIDNEQ applies the NEQ predicate on the "donation_id" field.
func DonationIDNEQ(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldDonationID, v))
}

// DonationIDIn applies the In predicate on the "donation_id" field.
func DonationIDIn(vs ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldDonationID, vs...))
}

// DonationIDNotIn applies the NotIn predicate on the "donation_id" field.
func DonationIDNotIn(vs ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldDonationID, vs...))
}

// DonationIDGT applies the GT predicate on the "donation_id" field.
func DonationIDGT(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldDonationID, v))
}

// DonationIDGTE applies the GTE predicate on the "donation_id" field.
func DonationIDGTE(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldDonationID, v))
}

// DonationIDLT applies the LT predicate on the "donation_id" field.
func DonationIDLT(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldDonationID, v))
}

// DonationIDLTE applies the LTE predicate on the "donation_id" field.
func DonationIDLTE(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldDonationID, v))
}

// DonationIDContains applies the Contains predicate on the "donation_id" field.
func DonationIDContains(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldContains(FieldDonationID, v))
}

// DonationIDHasPrefix applies the HasPrefix predicate on the "donation_id" field.
func DonationIDHasPrefix(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldHasPrefix(FieldDonationID, v))
}

// DonationIDHasSuffix applies the HasSuffix predicate on the "donation_id" field.
func DonationIDHasSuffix(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldHasSuffix(FieldDonationID, v))
}

// DonationIDIsNil applies the IsNil predicate on the "donation_id" field.
func DonationIDIsNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIsNull(FieldDonationID))
}

// DonationIDNotNil applies the NotNil predicate on the "donation_id" field.
func DonationIDNotNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotNull(FieldDonationID))
}

// DonationIDEqualFold applies the EqualFold predicate on the "donation_id" field.
func DonationIDEqualFold(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEqualFold(FieldDonationID, v))
}

// DonationIDContainsFold applies the ContainsFold predicate on the "donation_id" field.
func DonationIDContainsFold(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldContainsFold(FieldDonationID, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldStatus, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldPriority, v))
}

// AttemptEQ applies the EQ predicate on the "attempt" field.
func AttemptEQ(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldAttempt, v))
}

// AttemptNEQ applies the NEQ predicate on the "attempt" field.
func AttemptNEQ(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldAttempt, v))
}

// AttemptIn applies the In predicate on the "attempt" field.
func AttemptIn(vs ...int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldAttempt, vs...))
}

// AttemptNotIn applies the NotIn predicate on the "attempt" field.
func AttemptNotIn(vs ...int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldAttempt, vs...))
}

// AttemptGT applies the GT predicate on the "attempt" field.
func AttemptGT(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldAttempt, v))
}

// AttemptGTE applies the GTE predicate on the "attempt" field.
func AttemptGTE(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldAttempt, v))
}

// AttemptLT applies the LT predicate on the "attempt" field.
func AttemptLT(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldAttempt, v))
}

// AttemptLTE applies the LTE predicate on the "attempt" field.
func AttemptLTE(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldAttempt, v))
}

// SubredditEQ applies the EQ predicate on the "subreddit" field.
func SubredditEQ(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldSubreddit, v))
}

// SubredditNEQ applies the NEQ predicate on the "subreddit" field.
func SubredditNEQ(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldSubreddit, v))
}

// SubredditIn applies the In predicate on the "subreddit" field.
func SubredditIn(vs ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldSubreddit, vs...))
}

// SubredditNotIn applies the NotIn predicate on the "subreddit" field.
func SubredditNotIn(vs ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldSubreddit, vs...))
}

// SubredditGT applies the GT predicate on the "subreddit" field.
func SubredditGT(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldSubreddit, v))
}

// SubredditGTE applies the GTE predicate on the "subreddit" field.
func SubredditGTE(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldSubreddit, v))
}

// SubredditLT applies the LT predicate on the "subreddit" field.
func SubredditLT(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldSubreddit, v))
}

// SubredditLTE applies the LTE predicate on the "subreddit" field.
func SubredditLTE(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldSubreddit, v))
}

// SubredditContains applies the Contains predicate on the "subreddit" field.
func SubredditContains(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldContains(FieldSubreddit, v))
}

// SubredditHasPrefix applies the HasPrefix predicate on the "subreddit" field.
func SubredditHasPrefix(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldHasPrefix(FieldSubreddit, v))
}

// SubredditHasSuffix applies the HasSuffix predicate on the "subreddit" field.
func SubredditHasSuffix(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldHasSuffix(FieldSubreddit, v))
}

// SubredditIsNil applies the IsNil predicate on the "subreddit" field.
func SubredditIsNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIsNull(FieldSubreddit))
}

// SubredditNotNil applies the NotNil predicate on the "subreddit" field.
func SubredditNotNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotNull(FieldSubreddit))
}

// SubredditEqualFold applies the EqualFold predicate on the "subreddit" field.
func SubredditEqualFold(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEqualFold(FieldSubreddit, v))
}

// SubredditContainsFold applies the ContainsFold predicate on the "subreddit" field.
func SubredditContainsFold(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldContainsFold(FieldSubreddit, v))
}

// PostIDEQ applies the EQ predicate on the "post_id" field.
func PostIDEQ(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldPostID, v))
}

// PostIDNEQ applies the NEQ predicate on the "post_id" field.
func PostIDNEQ(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldPostID, v))
}

// PostIDIn applies the In predicate on the "post_id" field.
func PostIDIn(vs ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldPostID, vs...))
}

// PostIDNotIn applies the NotIn predicate on the "post_id" field.
func PostIDNotIn(vs ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldPostID, vs...))
}

// PostIDGT applies the GT predicate on the "post_id" field.
func PostIDGT(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldPostID, v))
}

// PostIDGTE applies the GTE predicate on the "post_id" field.
func PostIDGTE(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldPostID, v))
}

// PostIDLT applies the LT predicate on the "post_id" field.
func PostIDLT(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldPostID, v))
}

// PostIDLTE applies the LTE predicate on the "post_id" field.
func PostIDLTE(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldPostID, v))
}

// PostIDContains applies the Contains predicate on the "post_id" field.
func PostIDContains(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldContains(FieldPostID, v))
}

// PostIDHasPrefix applies the HasPrefix predicate on the "post_id" field.
func PostIDHasPrefix(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldHasPrefix(FieldPostID, v))
}

// PostIDHasSuffix applies the HasSuffix predicate on the "post_id" field.
func PostIDHasSuffix(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldHasSuffix(FieldPostID, v))
}

// PostIDIsNil applies the IsNil predicate on the "post_id" field.
func PostIDIsNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIsNull(FieldPostID))
}

// PostIDNotNil applies the NotNil predicate on the "post_id" field.
func PostIDNotNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotNull(FieldPostID))
}

// PostIDEqualFold applies the EqualFold predicate on the "post_id" field.
func PostIDEqualFold(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEqualFold(FieldPostID, v))
}

// PostIDContainsFold applies the ContainsFold predicate on the "post_id" field.
func PostIDContainsFold(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldContainsFold(FieldPostID, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldContainsFold(FieldErrorMessage, v))
}

// LeaseOwnerEQ applies the EQ predicate on the "lease_owner" field.
func LeaseOwnerEQ(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldLeaseOwner, v))
}

// LeaseOwnerNEQ applies the NEQ predicate on the "lease_owner" field.
func LeaseOwnerNEQ(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldLeaseOwner, v))
}

// LeaseOwnerIn applies the In predicate on the "lease_owner" field.
func LeaseOwnerIn(vs ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldLeaseOwner, vs...))
}

// LeaseOwnerNotIn applies the NotIn predicate on the "lease_owner" field.
func LeaseOwnerNotIn(vs ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldLeaseOwner, vs...))
}

// LeaseOwnerGT applies the GT predicate on the "lease_owner" field.
func LeaseOwnerGT(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldLeaseOwner, v))
}

// LeaseOwnerGTE applies the GTE predicate on the "lease_owner" field.
func LeaseOwnerGTE(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldLeaseOwner, v))
}

// LeaseOwnerLT applies the LT predicate on the "lease_owner" field.
func LeaseOwnerLT(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldLeaseOwner, v))
}

// LeaseOwnerLTE applies the LTE predicate on the "lease_owner" field.
func LeaseOwnerLTE(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldLeaseOwner, v))
}

// LeaseOwnerContains applies the Contains predicate on the "lease_owner" field.
func LeaseOwnerContains(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldContains(FieldLeaseOwner, v))
}

// LeaseOwnerHasPrefix applies the HasPrefix predicate on the "lease_owner" field.
func LeaseOwnerHasPrefix(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldHasPrefix(FieldLeaseOwner, v))
}

// LeaseOwnerHasSuffix applies the HasSuffix predicate on the "lease_owner" field.
func LeaseOwnerHasSuffix(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldHasSuffix(FieldLeaseOwner, v))
}

// LeaseOwnerIsNil applies the IsNil predicate on the "lease_owner" field.
func LeaseOwnerIsNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIsNull(FieldLeaseOwner))
}

// LeaseOwnerNotNil applies the NotNil predicate on the "lease_owner" field.
func LeaseOwnerNotNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotNull(FieldLeaseOwner))
}

// LeaseOwnerEqualFold applies the EqualFold predicate on the "lease_owner" field.
func LeaseOwnerEqualFold(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEqualFold(FieldLeaseOwner, v))
}

// LeaseOwnerContainsFold applies the ContainsFold predicate on the "lease_owner" field.
func LeaseOwnerContainsFold(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldContainsFold(FieldLeaseOwner, v))
}

// LeaseExpiresAtEQ applies the EQ predicate on the "lease_expires_at" field.
func LeaseExpiresAtEQ(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtNEQ applies the NEQ predicate on the "lease_expires_at" field.
func LeaseExpiresAtNEQ(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtIn applies the In predicate on the "lease_expires_at" field.
func LeaseExpiresAtIn(vs ...time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldLeaseExpiresAt, vs...))
}

// LeaseExpiresAtNotIn applies the NotIn predicate on the "lease_expires_at" field.
func LeaseExpiresAtNotIn(vs ...time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldLeaseExpiresAt, vs...))
}

// LeaseExpiresAtGT applies the GT predicate on the "lease_expires_at" field.
func LeaseExpiresAtGT(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtGTE applies the GTE predicate on the "lease_expires_at" field.
func LeaseExpiresAtGTE(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtLT applies the LT predicate on the "lease_expires_at" field.
func LeaseExpiresAtLT(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtLTE applies the LTE predicate on the "lease_expires_at" field.
func LeaseExpiresAtLTE(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtIsNil applies the IsNil predicate on the "lease_expires_at" field.
func LeaseExpiresAtIsNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIsNull(FieldLeaseExpiresAt))
}

// LeaseExpiresAtNotNil applies the NotNil predicate on the "lease_expires_at" field.
func LeaseExpiresAtNotNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotNull(FieldLeaseExpiresAt))
}

// NotBeforeEQ applies the EQ predicate on the "not_before" field.
func NotBeforeEQ(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldNotBefore, v))
}

// NotBeforeNEQ applies the NEQ predicate on the "not_before" field.
func NotBeforeNEQ(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldNotBefore, v))
}

// NotBeforeIn applies the In predicate on the "not_before" field.
func NotBeforeIn(vs ...time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldNotBefore, vs...))
}

// NotBeforeNotIn applies the NotIn predicate on the "not_before" field.
func NotBeforeNotIn(vs ...time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldNotBefore, vs...))
}

// NotBeforeGT applies the GT predicate on the "not_before" field.
func NotBeforeGT(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldNotBefore, v))
}

// NotBeforeGTE applies the GTE predicate on the "not_before" field.
func NotBeforeGTE(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldNotBefore, v))
}

// NotBeforeLT applies the LT predicate on the "not_before" field.
func NotBeforeLT(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldNotBefore, v))
}

// NotBeforeLTE applies the LTE predicate on the "not_before" field.
func NotBeforeLTE(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldNotBefore, v))
}

// NotBeforeIsNil applies the IsNil predicate on the "not_before" field.
func NotBeforeIsNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIsNull(FieldNotBefore))
}

// NotBeforeNotNil applies the NotNil predicate on the "not_before" field.
func NotBeforeNotNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotNull(FieldNotBefore))
}

// ThemeEQ applies the EQ predicate on the "theme" field.
func ThemeEQ(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldTheme, v))
}

// ThemeNEQ applies the NEQ predicate on the "theme" field.
func ThemeNEQ(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldTheme, v))
}

// ThemeIn applies the In predicate on the "theme" field.
func ThemeIn(vs ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldTheme, vs...))
}

// ThemeNotIn applies the NotIn predicate on the "theme" field.
func ThemeNotIn(vs ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldTheme, vs...))
}

// ThemeGT applies the GT predicate on the "theme" field.
func ThemeGT(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldTheme, v))
}

// ThemeGTE applies the GTE predicate on the "theme" field.
func ThemeGTE(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldTheme, v))
}

// ThemeLT applies the LT predicate on the "theme" field.
func ThemeLT(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldTheme, v))
}

// ThemeLTE applies the LTE predicate on the "theme" field.
func ThemeLTE(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldTheme, v))
}

// ThemeContains applies the Contains predicate on the "theme" field.
func ThemeContains(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldContains(FieldTheme, v))
}

// ThemeHasPrefix applies the HasPrefix predicate on the "theme" field.
func ThemeHasPrefix(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldHasPrefix(FieldTheme, v))
}

// ThemeHasSuffix applies the HasSuffix predicate on the "theme" field.
func ThemeHasSuffix(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldHasSuffix(FieldTheme, v))
}

// ThemeIsNil applies the IsNil predicate on the "theme" field.
func ThemeIsNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIsNull(FieldTheme))
}

// ThemeNotNil applies the NotNil predicate on the "theme" field.
func ThemeNotNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotNull(FieldTheme))
}

// ThemeEqualFold applies the EqualFold predicate on the "theme" field.
func ThemeEqualFold(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEqualFold(FieldTheme, v))
}

// ThemeContainsFold applies the ContainsFold predicate on the "theme" field.
func ThemeContainsFold(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldContainsFold(FieldTheme, v))
}

// ImageTitleEQ applies the EQ predicate on the "image_title" field.
func ImageTitleEQ(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldImageTitle, v))
}

// ImageTitleNEQ applies the NEQ predicate on the "image_title" field.
func ImageTitleNEQ(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldImageTitle, v))
}

// ImageTitleIn applies the In predicate on the "image_title" field.
func ImageTitleIn(vs ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldImageTitle, vs...))
}

// ImageTitleNotIn applies the NotIn predicate on the "image_title" field.
func ImageTitleNotIn(vs ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldImageTitle, vs...))
}

// ImageTitleGT applies the GT predicate on the "image_title" field.
func ImageTitleGT(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldImageTitle, v))
}

// ImageTitleGTE applies the GTE predicate on the "image_title" field.
func ImageTitleGTE(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldImageTitle, v))
}

// ImageTitleLT applies the LT predicate on the "image_title" field.
func ImageTitleLT(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldImageTitle, v))
}

// ImageTitleLTE applies the LTE predicate on the "image_title" field.
func ImageTitleLTE(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldImageTitle, v))
}

// ImageTitleContains applies the Contains predicate on the "image_title" field.
func ImageTitleContains(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldContains(FieldImageTitle, v))
}

// ImageTitleHasPrefix applies the HasPrefix predicate on the "image_title" field.
func ImageTitleHasPrefix(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldHasPrefix(FieldImageTitle, v))
}

// ImageTitleHasSuffix applies the HasSuffix predicate on the "image_title" field.
func ImageTitleHasSuffix(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldHasSuffix(FieldImageTitle, v))
}

// ImageTitleIsNil applies the IsNil predicate on the "image_title" field.
func ImageTitleIsNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIsNull(FieldImageTitle))
}

// ImageTitleNotNil applies the NotNil predicate on the "image_title" field.
func ImageTitleNotNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotNull(FieldImageTitle))
}

// ImageTitleEqualFold applies the EqualFold predicate on the "image_title" field.
func ImageTitleEqualFold(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEqualFold(FieldImageTitle, v))
}

// ImageTitleContainsFold applies the ContainsFold predicate on the "image_title" field.
func ImageTitleContainsFold(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldContainsFold(FieldImageTitle, v))
}

// ImageDescriptionEQ applies the EQ predicate on the "image_description" field.
func ImageDescriptionEQ(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldImageDescription, v))
}

// ImageDescriptionNEQ applies the NEQ predicate on the "image_description" field.
func ImageDescriptionNEQ(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldImageDescription, v))
}

// ImageDescriptionIn applies the In predicate on the "image_description" field.
func ImageDescriptionIn(vs ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldImageDescription, vs...))
}

// ImageDescriptionNotIn applies the NotIn predicate on the "image_description" field.
func ImageDescriptionNotIn(vs ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldImageDescription, vs...))
}

// ImageDescriptionGT applies the GT predicate on the "image_description" field.
func ImageDescriptionGT(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldImageDescription, v))
}

// ImageDescriptionGTE applies the GTE predicate on the "image_description" field.
func ImageDescriptionGTE(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldImageDescription, v))
}

// ImageDescriptionLT applies the LT predicate on the "image_description" field.
func ImageDescriptionLT(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldImageDescription, v))
}

// ImageDescriptionLTE applies the LTE predicate on the "image_description" field.
func ImageDescriptionLTE(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldImageDescription, v))
}

// ImageDescriptionContains applies the Contains predicate on the "image_description" field.
func ImageDescriptionContains(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldContains(FieldImageDescription, v))
}

// ImageDescriptionHasPrefix applies the HasPrefix predicate on the "image_description" field.
func ImageDescriptionHasPrefix(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldHasPrefix(FieldImageDescription, v))
}

// ImageDescriptionHasSuffix applies the HasSuffix predicate on the "image_description" field.
func ImageDescriptionHasSuffix(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldHasSuffix(FieldImageDescription, v))
}

// ImageDescriptionIsNil applies the IsNil predicate on the "image_description" field.
func ImageDescriptionIsNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIsNull(FieldImageDescription))
}

// ImageDescriptionNotNil applies the NotNil predicate on the "image_description" field.
func ImageDescriptionNotNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotNull(FieldImageDescription))
}

// ImageDescriptionEqualFold applies the EqualFold predicate on the "image_description" field.
func ImageDescriptionEqualFold(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEqualFold(FieldImageDescription, v))
}

// ImageDescriptionContainsFold applies the ContainsFold predicate on the "image_description" field.
func ImageDescriptionContainsFold(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldContainsFold(FieldImageDescription, v))
}

// ImageURLEQ applies the EQ predicate on the "image_url" field.
func ImageURLEQ(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldImageURL, v))
}

// ImageURLNEQ applies the NEQ predicate on the "image_url" field.
func ImageURLNEQ(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldImageURL, v))
}

// ImageURLIn applies the In predicate on the "image_url" field.
func ImageURLIn(vs ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldImageURL, vs...))
}

// ImageURLNotIn applies the NotIn predicate on the "image_url" field.
func ImageURLNotIn(vs ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldImageURL, vs...))
}

// ImageURLGT applies the GT predicate on the "image_url" field.
func ImageURLGT(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldImageURL, v))
}

// ImageURLGTE applies the GTE predicate on the "image_url" field.
func ImageURLGTE(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldImageURL, v))
}

// ImageURLLT applies the LT predicate on the "image_url" field.
func ImageURLLT(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldImageURL, v))
}

// ImageURLLTE applies the LTE predicate on the "image_url" field.
func ImageURLLTE(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldImageURL, v))
}

// ImageURLContains applies the Contains predicate on the "image_url" field.
func ImageURLContains(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldContains(FieldImageURL, v))
}

// ImageURLHasPrefix applies the HasPrefix predicate on the "image_url" field.
func ImageURLHasPrefix(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldHasPrefix(FieldImageURL, v))
}

// ImageURLHasSuffix applies the HasSuffix predicate on the "image_url" field.
func ImageURLHasSuffix(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldHasSuffix(FieldImageURL, v))
}

// ImageURLIsNil applies the IsNil predicate on the "image_url" field.
func ImageURLIsNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIsNull(FieldImageURL))
}

// ImageURLNotNil applies the NotNil predicate on the "image_url" field.
func ImageURLNotNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotNull(FieldImageURL))
}

// ImageURLEqualFold applies the EqualFold predicate on the "image_url" field.
func ImageURLEqualFold(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEqualFold(FieldImageURL, v))
}

// ImageURLContainsFold applies the ContainsFold predicate on the "image_url" field.
func ImageURLContainsFold(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldContainsFold(FieldImageURL, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotNull(FieldCompletedAt))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PipelineTask) predicate.PipelineTask {
	return predicate.PipelineTask(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PipelineTask) predicate.PipelineTask {
	return predicate.PipelineTask(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PipelineTask) predicate.PipelineTask {
	return predicate.PipelineTask(sql.NotPredicates(p))
}
