// Code generated by ent, DO NOT EDIT.

package donation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the donation type in the database.
	Label = "donation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "donation_id"
	// FieldPaymentIntentID holds the string denoting the payment_intent_id field in the database.
	FieldPaymentIntentID = "payment_intent_id"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldCurrency holds the string denoting the currency field in the database.
	FieldCurrency = "currency"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldCommissionType holds the string denoting the commission_type field in the database.
	FieldCommissionType = "commission_type"
	// FieldPostID holds the string denoting the post_id field in the database.
	FieldPostID = "post_id"
	// FieldSubreddit holds the string denoting the subreddit field in the database.
	FieldSubreddit = "subreddit"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldRedditHandle holds the string denoting the reddit_handle field in the database.
	FieldRedditHandle = "reddit_handle"
	// FieldIsAnonymous holds the string denoting the is_anonymous field in the database.
	FieldIsAnonymous = "is_anonymous"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldApplied holds the string denoting the applied field in the database.
	FieldApplied = "applied"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the donation in the database.
	Table = "donations"
)

// Columns holds all SQL columns for donation fields.
var Columns = []string{
	FieldID,
	FieldPaymentIntentID,
	FieldAmount,
	FieldCurrency,
	FieldStatus,
	FieldType,
	FieldCommissionType,
	FieldPostID,
	FieldSubreddit,
	FieldMessage,
	FieldRedditHandle,
	FieldIsAnonymous,
	FieldTier,
	FieldSource,
	FieldApplied,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCurrency holds the default value on creation for the "currency" field.
	DefaultCurrency string
	// MessageValidator is a validator for the "message" field. It is called by the builders before save.
	MessageValidator func(string) error
	// RedditHandleValidator is a validator for the "reddit_handle" field. It is called by the builders before save.
	RedditHandleValidator func(string) error
	// DefaultIsAnonymous holds the default value on creation for the "is_anonymous" field.
	DefaultIsAnonymous bool
	// DefaultApplied holds the default value on creation for the "applied" field.
	DefaultApplied bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusRefunded  Status = "refunded"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusSucceeded, StatusFailed, StatusRefunded:
		return nil
	default:
		return fmt.Errorf("donation: invalid enum value for status field: %q", s)
	}
}

// Type defines the type for the "type" enum field.
type Type string

// TypeSupport is the default value of the Type enum.
const DefaultType = TypeSupport

// Type values.
const (
	TypeCommission Type = "commission"
	TypeSupport    Type = "support"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeCommission, TypeSupport:
		return nil
	default:
		return fmt.Errorf("donation: invalid enum value for type field: %q", _type)
	}
}

// CommissionType defines the type for the "commission_type" enum field.
type CommissionType string

// CommissionTypeNone is the default value of the CommissionType enum.
const DefaultCommissionType = CommissionTypeNone

// CommissionType values.
const (
	CommissionTypeRandomRandom    CommissionType = "random_random"
	CommissionTypeRandomSubreddit CommissionType = "random_subreddit"
	CommissionTypeSpecificPost    CommissionType = "specific_post"
	CommissionTypeNone            CommissionType = "none"
)

func (ct CommissionType) String() string {
	return string(ct)
}

// CommissionTypeValidator is a validator for the "commission_type" field enum values. It is called by the builders before save.
func CommissionTypeValidator(ct CommissionType) error {
	switch ct {
	case CommissionTypeRandomRandom, CommissionTypeRandomSubreddit, CommissionTypeSpecificPost, CommissionTypeNone:
		return nil
	default:
		return fmt.Errorf("donation: invalid enum value for commission_type field: %q", ct)
	}
}

// Source defines the type for the "source" enum field.
type Source string

// SourceStripe is the default value of the Source enum.
const DefaultSource = SourceStripe

// Source values.
const (
	SourceStripe Source = "stripe"
	SourceManual Source = "manual"
)

func (s Source) String() string {
	return string(s)
}

// SourceValidator is a validator for the "source" field enum values. It is called by the builders before save.
func SourceValidator(s Source) error {
	switch s {
	case SourceStripe, SourceManual:
		return nil
	default:
		return fmt.Errorf("donation: invalid enum value for source field: %q", s)
	}
}

// OrderOption defines the ordering options for the Donation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPaymentIntentID orders the results by the payment_intent_id field.
func ByPaymentIntentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentIntentID, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// ByCurrency orders the results by the currency field.
func ByCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrency, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByCommissionType orders the results by the commission_type field.
func ByCommissionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommissionType, opts...).ToFunc()
}

// ByPostID orders the results by the post_id field.
func ByPostID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPostID, opts...).ToFunc()
}

// BySubreddit orders the results by the subreddit field.
func BySubreddit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubreddit, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByRedditHandle orders the results by the reddit_handle field.
func ByRedditHandle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRedditHandle, opts...).ToFunc()
}

// ByIsAnonymous orders the results by the is_anonymous field.
func ByIsAnonymous(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsAnonymous, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByApplied orders the results by the applied field.
func ByApplied(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApplied, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
