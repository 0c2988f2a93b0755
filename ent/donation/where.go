// Code generated by ent, DO NOT EDIT.

package donation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/redditart/commissioner/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Donation {
	return predicate.Donation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Donation {
	return predicate.Donation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Donation {
	return predicate.Donation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Donation {
	return predicate.Donation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Donation {
	return predicate.Donation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Donation {
	return predicate.Donation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Donation {
	return predicate.Donation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Donation {
	return predicate.Donation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Donation {
	return predicate.Donation(sql.FieldContainsFold(FieldID, id))
}

// PaymentIntentID applies equality check predicate on the "payment_intent_id" field. It's identical to PaymentIntentIDEQ.
func PaymentIntentID(v string) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldPaymentIntentID, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v int64) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldAmount, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldCurrency, v))
}

// PostID applies equality check predicate on the "post_id" field. It's identical to PostIDEQ.
func PostID(v string) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldPostID, v))
}

// Subreddit applies equality check predicate on the "subreddit" field. It's identical to SubredditEQ.
func Subreddit(v string) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldSubreddit, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldMessage, v))
}

// RedditHandle applies equality check predicate on the "reddit_handle" field. It's identical to RedditHandleEQ.
func RedditHandle(v string) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldRedditHandle, v))
}

// IsAnonymous applies equality check predicate on the "is_anonymous" field. It's identical to IsAnonymousEQ.
func IsAnonymous(v bool) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldIsAnonymous, v))
}

// Tier applies equality check predicate on the "tier" field. It's identical to TierEQ.
func Tier(v string) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldTier, v))
}

// Applied applies equality check predicate on the "applied" field. It's identical to AppliedEQ.
func Applied(v bool) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldApplied, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldUpdatedAt, v))
}

// PaymentIntentIDEQ applies the EQ predicate on the "payment_intent_id" field.
func PaymentIntentIDEQ(v string) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldPaymentIntentID, v))
}

// PaymentIntentIDNEQ applies the NEQ predicate on the "payment_intent_id" field.
func PaymentIntentIDNEQ(v string) predicate.Donation {
	return predicate.Donation(sql.FieldNEQ(FieldPaymentIntentID, v))
}

// PaymentIntentIDIn applies the In predicate on the "payment_intent_id" field.
func PaymentIntentIDIn(vs ...string) predicate.Donation {
	return predicate.Donation(sql.FieldIn(FieldPaymentIntentID, vs...))
}

// PaymentIntentIDNotIn applies the NotIn predicate on the "payment_intent_id" field.
func PaymentIntentIDNotIn(vs ...string) predicate.Donation {
	return predicate.Donation(sql.FieldNotIn(FieldPaymentIntentID, vs...))
}

// PaymentIntentIDGT applies the GT predicate on the "payment_intent_id" field.
func PaymentIntentIDGT(v string) predicate.Donation {
	return predicate.Donation(sql.FieldGT(FieldPaymentIntentID, v))
}

// PaymentIntentIDGTE applies the GTE predicate on the "payment_intent_id" field.
func PaymentIntentIDGTE(v string) predicate.Donation {
	return predicate.Donation(sql.FieldGTE(FieldPaymentIntentID, v))
}

// PaymentIntentIDLT applies the LT predicate on the "payment_intent_id" field.
func PaymentIntentIDLT(v string) predicate.Donation {
	return predicate.Donation(sql.FieldLT(FieldPaymentIntentID, v))
}

// PaymentIntentIDLTE applies the LTE predicate on the "payment_intent_id" field.
func PaymentIntentIDLTE(v string) predicate.Donation {
	return predicate.Donation(sql.FieldLTE(FieldPaymentIntentID, v))
}

// PaymentIntentIDContains applies the Contains predicate on the "payment_intent_id" field.
func PaymentIntentIDContains(v string) predicate.Donation {
	return predicate.Donation(sql.FieldContains(FieldPaymentIntentID, v))
}

// PaymentIntentIDHasPrefix applies the HasPrefix predicate on the "payment_intent_id" field.
func PaymentIntentIDHasPrefix(v string) predicate.Donation {
	return predicate.Donation(sql.FieldHasPrefix(FieldPaymentIntentID, v))
}

// PaymentIntentIDHasSuffix applies the HasSuffix predicate on the "payment_intent_id" field.
func PaymentIntentIDHasSuffix(v string) predicate.Donation {
	return predicate.Donation(sql.FieldHasSuffix(FieldPaymentIntentID, v))
}

// PaymentIntentIDEqualFold applies the EqualFold predicate on the "payment_intent_id" field.
func PaymentIntentIDEqualFold(v string) predicate.Donation {
	return predicate.Donation(sql.FieldEqualFold(FieldPaymentIntentID, v))
}

// PaymentIntentIDContainsFold applies the ContainsFold predicate on the "payment_intent_id" field.
func PaymentIntentIDContainsFold(v string) predicate.Donation {
	return predicate.Donation(sql.FieldContainsFold(FieldPaymentIntentID, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v int64) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v int64) predicate.Donation {
	return predicate.Donation(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...int64) predicate.Donation {
	return predicate.Donation(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...int64) predicate.Donation {
	return predicate.Donation(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v int64) predicate.Donation {
	return predicate.Donation(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v int64) predicate.Donation {
	return predicate.Donation(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v int64) predicate.Donation {
	return predicate.Donation(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v int64) predicate.Donation {
	return predicate.Donation(sql.FieldLTE(FieldAmount, v))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.Donation {
	return predicate.Donation(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.Donation {
	return predicate.Donation(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.Donation {
	return predicate.Donation(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.Donation {
	return predicate.Donation(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.Donation {
	return predicate.Donation(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.Donation {
	return predicate.Donation(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.Donation {
	return predicate.Donation(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.Donation {
	return predicate.Donation(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.Donation {
	return predicate.Donation(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.Donation {
	return predicate.Donation(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.Donation {
	return predicate.Donation(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.Donation {
	return predicate.Donation(sql.FieldContainsFold(FieldCurrency, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Donation {
	return predicate.Donation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Donation {
	return predicate.Donation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Donation {
	return predicate.Donation(sql.FieldNotIn(FieldStatus, vs...))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Donation {
	return predicate.Donation(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Donation {
	return predicate.Donation(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Donation {
	return predicate.Donation(sql.FieldNotIn(FieldType, vs...))
}

// CommissionTypeEQ applies the EQ predicate on the "commission_type" field.
func CommissionTypeEQ(v CommissionType) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldCommissionType, v))
}

// CommissionTypeNEQ applies the NEQ predicate on the "commission_type" field.
func CommissionTypeNEQ(v CommissionType) predicate.Donation {
	return predicate.Donation(sql.FieldNEQ(FieldCommissionType, v))
}

// CommissionTypeIn applies the In predicate on the "commission_type" field.
func CommissionTypeIn(vs ...CommissionType) predicate.Donation {
	return predicate.Donation(sql.FieldIn(FieldCommissionType, vs...))
}

// CommissionTypeNotIn applies the NotIn predicate on the "commission_type" field.
func CommissionTypeNotIn(vs ...CommissionType) predicate.Donation {
	return predicate.Donation(sql.FieldNotIn(FieldCommissionType, vs...))
}

// PostIDEQ applies the EQ predicate on the "post_id" field.
func PostIDEQ(v string) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldPostID, v))
}

// PostIDNEQ applies the NEQ predicate on the "post_id" field.
func PostIDNEQ(v string) predicate.Donation {
	return predicate.Donation(sql.FieldNEQ(FieldPostID, v))
}

// PostIDIn applies the In predicate on the "post_id" field.
func PostIDIn(vs ...string) predicate.Donation {
	return predicate.Donation(sql.FieldIn(FieldPostID, vs...))
}

// PostIDNotIn applies the NotIn predicate on the "post_id" field.
func PostIDNotIn(vs ...string) predicate.Donation {
	return predicate.Donation(sql.FieldNotIn(FieldPostID, vs...))
}

// PostIDGT applies the GT predicate on the "post_id" field.
func PostIDGT(v string) predicate.Donation {
	return predicate.Donation(sql.FieldGT(FieldPostID, v))
}

// PostIDGTE applies the GTE predicate on the "post_id" field.
func PostIDGTE(v string) predicate.Donation {
	return predicate.Donation(sql.FieldGTE(FieldPostID, v))
}

// PostIDLT applies the LT predicate on the "post_id" field.
func PostIDLT(v string) predicate.Donation {
	return predicate.Donation(sql.FieldLT(FieldPostID, v))
}

// PostIDLTE applies the LTE predicate on the "post_id" field.
func PostIDLTE(v string) predicate.Donation {
	return predicate.Donation(sql.FieldLTE(FieldPostID, v))
}

// PostIDContains applies the Contains predicate on the "post_id" field.
func PostIDContains(v string) predicate.Donation {
	return predicate.Donation(sql.FieldContains(FieldPostID, v))
}

// PostIDHasPrefix applies the HasPrefix predicate on the "post_id" field.
func PostIDHasPrefix(v string) predicate.Donation {
	return predicate.Donation(sql.FieldHasPrefix(FieldPostID, v))
}

// PostIDHasSuffix applies the HasSuffix predicate on the "post_id" field.
func PostIDHasSuffix(v string) predicate.Donation {
	return predicate.Donation(sql.FieldHasSuffix(FieldPostID, v))
}

// PostIDIsNil applies the IsNil predicate on the "post_id" field.
func PostIDIsNil() predicate.Donation {
	return predicate.Donation(sql.FieldIsNull(FieldPostID))
}

// PostIDNotNil applies the NotNil predicate on the "post_id" field.
func PostIDNotNil() predicate.Donation {
	return predicate.Donation(sql.FieldNotNull(FieldPostID))
}

// PostIDEqualFold applies the EqualFold predicate on the "post_id" field.
func PostIDEqualFold(v string) predicate.Donation {
	return predicate.Donation(sql.FieldEqualFold(FieldPostID, v))
}

// PostIDContainsFold applies the ContainsFold predicate on the "post_id" field.
func PostIDContainsFold(v string) predicate.Donation {
	return predicate.Donation(sql.FieldContainsFold(FieldPostID, v))
}

// SubredditEQ applies the EQ predicate on the "subreddit" field.
func SubredditEQ(v string) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldSubreddit, v))
}

// SubredditNEQ applies the NEQ predicate on the "subreddit" field.
func SubredditNEQ(v string) predicate.Donation {
	return predicate.Donation(sql.FieldNEQ(FieldSubreddit, v))
}

// SubredditIn applies the In predicate on the "subreddit" field.
func SubredditIn(vs ...string) predicate.Donation {
	return predicate.Donation(sql.FieldIn(FieldSubreddit, vs...))
}

// SubredditNotIn applies the NotIn predicate on the "subreddit" field.
func SubredditNotIn(vs ...string) predicate.Donation {
	return predicate.Donation(sql.FieldNotIn(FieldSubreddit, vs...))
}

// SubredditGT applies the GT predicate on the "subreddit" field.
func SubredditGT(v string) predicate.Donation {
	return predicate.Donation(sql.FieldGT(FieldSubreddit, v))
}

// SubredditGTE applies the GTE predicate on the "subreddit" field.
func SubredditGTE(v string) predicate.Donation {
	return predicate.Donation(sql.FieldGTE(FieldSubreddit, v))
}

// SubredditLT applies the LT predicate on the "subreddit" field.
func SubredditLT(v string) predicate.Donation {
	return predicate.Donation(sql.FieldLT(FieldSubreddit, v))
}

// SubredditLTE applies the LTE predicate on the "subreddit" field.
func SubredditLTE(v string) predicate.Donation {
	return predicate.Donation(sql.FieldLTE(FieldSubreddit, v))
}

// SubredditContains applies the Contains predicate on the "subreddit" field.
func SubredditContains(v string) predicate.Donation {
	return predicate.Donation(sql.FieldContains(FieldSubreddit, v))
}

// SubredditHasPrefix applies the HasPrefix predicate on the "subreddit" field.
func SubredditHasPrefix(v string) predicate.Donation {
	return predicate.Donation(sql.FieldHasPrefix(FieldSubreddit, v))
}

// SubredditHasSuffix applies the HasSuffix predicate on the "subreddit" field.
func SubredditHasSuffix(v string) predicate.Donation {
	return predicate.Donation(sql.FieldHasSuffix(FieldSubreddit, v))
}

// SubredditIsNil applies the IsNil predicate on the "subreddit" field.
func SubredditIsNil() predicate.Donation {
	return predicate.Donation(sql.FieldIsNull(FieldSubreddit))
}

// SubredditNotNil applies the NotNil predicate on the "subreddit" field.
func SubredditNotNil() predicate.Donation {
	return predicate.Donation(sql.FieldNotNull(FieldSubreddit))
}

// SubredditEqualFold applies the EqualFold predicate on the "subreddit" field.
func SubredditEqualFold(v string) predicate.Donation {
	return predicate.Donation(sql.FieldEqualFold(FieldSubreddit, v))
}

// SubredditContainsFold applies the ContainsFold predicate on the "subreddit" field.
func SubredditContainsFold(v string) predicate.Donation {
	return predicate.Donation(sql.FieldContainsFold(FieldSubreddit, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.Donation {
	return predicate.Donation(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.Donation {
	return predicate.Donation(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.Donation {
	return predicate.Donation(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.Donation {
	return predicate.Donation(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.Donation {
	return predicate.Donation(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.Donation {
	return predicate.Donation(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.Donation {
	return predicate.Donation(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.Donation {
	return predicate.Donation(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.Donation {
	return predicate.Donation(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.Donation {
	return predicate.Donation(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageIsNil applies the IsNil predicate on the "message" field.
func MessageIsNil() predicate.Donation {
	return predicate.Donation(sql.FieldIsNull(FieldMessage))
}

// MessageNotNil applies the NotNil predicate on the "message" field.
func MessageNotNil() predicate.Donation {
	return predicate.Donation(sql.FieldNotNull(FieldMessage))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.Donation {
	return predicate.Donation(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.Donation {
	return predicate.Donation(sql.FieldContainsFold(FieldMessage, v))
}

// RedditHandleEQ applies the EQ predicate on the "reddit_handle" field.
func RedditHandleEQ(v string) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldRedditHandle, v))
}

// RedditHandleNEQ applies the NEQ predicate on the "reddit_handle" field.
func RedditHandleNEQ(v string) predicate.Donation {
	return predicate.Donation(sql.FieldNEQ(FieldRedditHandle, v))
}

// RedditHandleIn applies the In predicate on the "reddit_handle" field.
func RedditHandleIn(vs ...string) predicate.Donation {
	return predicate.Donation(sql.FieldIn(FieldRedditHandle, vs...))
}

// RedditHandleNotIn applies the NotIn predicate on the "reddit_handle" field.
func RedditHandleNotIn(vs ...string) predicate.Donation {
	return predicate.Donation(sql.FieldNotIn(FieldRedditHandle, vs...))
}

// RedditHandleGT applies the GT predicate on the "reddit_handle" field.
func RedditHandleGT(v string) predicate.Donation {
	return predicate.Donation(sql.FieldGT(FieldRedditHandle, v))
}

// RedditHandleGTE applies the GTE predicate on the "reddit_handle" field.
func RedditHandleGTE(v string) predicate.Donation {
	return predicate.Donation(sql.FieldGTE(FieldRedditHandle, v))
}

// RedditHandleLT applies the LT predicate on the "reddit_handle" field.
func RedditHandleLT(v string) predicate.Donation {
	return predicate.Donation(sql.FieldLT(FieldRedditHandle, v))
}

// RedditHandleLTE applies the LTE predicate on the "reddit_handle" field.
func RedditHandleLTE(v string) predicate.Donation {
	return predicate.Donation(sql.FieldLTE(FieldRedditHandle, v))
}

// RedditHandleContains applies the Contains predicate on the "reddit_handle" field.
func RedditHandleContains(v string) predicate.Donation {
	return predicate.Donation(sql.FieldContains(FieldRedditHandle, v))
}

// RedditHandleHasPrefix applies the HasPrefix predicate on the "reddit_handle" field.
func RedditHandleHasPrefix(v string) predicate.Donation {
	return predicate.Donation(sql.FieldHasPrefix(FieldRedditHandle, v))
}

// RedditHandleHasSuffix applies the HasSuffix predicate on the "reddit_handle" field.
func RedditHandleHasSuffix(v string) predicate.Donation {
	return predicate.Donation(sql.FieldHasSuffix(FieldRedditHandle, v))
}

// RedditHandleIsNil applies the IsNil predicate on the "reddit_handle" field.
func RedditHandleIsNil() predicate.Donation {
	return predicate.Donation(sql.FieldIsNull(FieldRedditHandle))
}

// RedditHandleNotNil applies the NotNil predicate on the "reddit_handle" field.
func RedditHandleNotNil() predicate.Donation {
	return predicate.Donation(sql.FieldNotNull(FieldRedditHandle))
}

// RedditHandleEqualFold applies the EqualFold predicate on the "reddit_handle" field.
func RedditHandleEqualFold(v string) predicate.Donation {
	return predicate.Donation(sql.FieldEqualFold(FieldRedditHandle, v))
}

// RedditHandleContainsFold applies the ContainsFold predicate on the "reddit_handle" field.
func RedditHandleContainsFold(v string) predicate.Donation {
	return predicate.Donation(sql.FieldContainsFold(FieldRedditHandle, v))
}

// IsAnonymousEQ applies the EQ predicate on the "is_anonymous" field.
func IsAnonymousEQ(v bool) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldIsAnonymous, v))
}

// IsAnonymousNEQ applies the NEQ predicate on the "is_anonymous" field.
func IsAnonymousNEQ(v bool) predicate.Donation {
	return predicate.Donation(sql.FieldNEQ(FieldIsAnonymous, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v string) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v string) predicate.Donation {
	return predicate.Donation(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...string) predicate.Donation {
	return predicate.Donation(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...string) predicate.Donation {
	return predicate.Donation(sql.FieldNotIn(FieldTier, vs...))
}

// TierGT applies the GT predicate on the "tier" field.
func TierGT(v string) predicate.Donation {
	return predicate.Donation(sql.FieldGT(FieldTier, v))
}

// TierGTE applies the GTE predicate on the "tier" field.
func TierGTE(v string) predicate.Donation {
	return predicate.Donation(sql.FieldGTE(FieldTier, v))
}

// TierLT applies the LT predicate on the "tier" field.
func TierLT(v string) predicate.Donation {
	return predicate.Donation(sql.FieldLT(FieldTier, v))
}

// TierLTE applies the LTE predicate on the "tier" field.
func TierLTE(v string) predicate.Donation {
	return predicate.Donation(sql.FieldLTE(FieldTier, v))
}

// TierContains applies the Contains predicate on the "tier" field.
func TierContains(v string) predicate.Donation {
	return predicate.Donation(sql.FieldContains(FieldTier, v))
}

// TierHasPrefix applies the HasPrefix predicate on the "tier" field.
func TierHasPrefix(v string) predicate.Donation {
	return predicate.Donation(sql.FieldHasPrefix(FieldTier, v))
}

// TierHasSuffix applies the HasSuffix predicate on the "tier" field.
func TierHasSuffix(v string) predicate.Donation {
	return predicate.Donation(sql.FieldHasSuffix(FieldTier, v))
}

// TierIsNil applies the IsNil predicate on the "tier" field.
func TierIsNil() predicate.Donation {
	return predicate.Donation(sql.FieldIsNull(FieldTier))
}

// TierNotNil applies the NotNil predicate on the "tier" field.
func TierNotNil() predicate.Donation {
	return predicate.Donation(sql.FieldNotNull(FieldTier))
}

// TierEqualFold applies the EqualFold predicate on the "tier" field.
func TierEqualFold(v string) predicate.Donation {
	return predicate.Donation(sql.FieldEqualFold(FieldTier, v))
}

// TierContainsFold applies the ContainsFold predicate on the "tier" field.
func TierContainsFold(v string) predicate.Donation {
	return predicate.Donation(sql.FieldContainsFold(FieldTier, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.Donation {
	return predicate.Donation(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.Donation {
	return predicate.Donation(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.Donation {
	return predicate.Donation(sql.FieldNotIn(FieldSource, vs...))
}

// AppliedEQ applies the EQ predicate on the "applied" field.
func AppliedEQ(v bool) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldApplied, v))
}

// AppliedNEQ applies the NEQ predicate on the "applied" field.
func AppliedNEQ(v bool) predicate.Donation {
	return predicate.Donation(sql.FieldNEQ(FieldApplied, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Donation {
	return predicate.Donation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Donation {
	return predicate.Donation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Donation {
	return predicate.Donation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Donation {
	return predicate.Donation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Donation {
	return predicate.Donation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Donation {
	return predicate.Donation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Donation {
	return predicate.Donation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Donation {
	return predicate.Donation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Donation {
	return predicate.Donation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Donation {
	return predicate.Donation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Donation {
	return predicate.Donation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Donation {
	return predicate.Donation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Donation {
	return predicate.Donation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Donation {
	return predicate.Donation(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Donation) predicate.Donation {
	return predicate.Donation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Donation) predicate.Donation {
	return predicate.Donation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Donation) predicate.Donation {
	return predicate.Donation(sql.NotPredicates(p))
}
