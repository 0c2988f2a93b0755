// Code generated by ent, DO NOT EDIT.

package subredditgoal

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the subredditgoal type in the database.
	Label = "subreddit_goal"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSubreddit holds the string denoting the subreddit field in the database.
	FieldSubreddit = "subreddit"
	// FieldGoalAmount holds the string denoting the goal_amount field in the database.
	FieldGoalAmount = "goal_amount"
	// FieldCurrentAmount holds the string denoting the current_amount field in the database.
	FieldCurrentAmount = "current_amount"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the subredditgoal in the database.
	Table = "subreddit_goals"
)

// Columns holds all SQL columns for subredditgoal fields.
var Columns = []string{
	FieldID,
	FieldSubreddit,
	FieldGoalAmount,
	FieldCurrentAmount,
	FieldStatus,
	FieldCompletedAt,
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
	// DefaultCurrentAmount holds the default value on creation for the "current_amount" field.
	DefaultCurrentAmount int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusCompleted:
		return nil
	default:
		return fmt.Errorf("subredditgoal: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the SubredditGoal queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySubreddit orders the results by the subreddit field.
func BySubreddit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubreddit, opts...).ToFunc()
}

// ByGoalAmount orders the results by the goal_amount field.
func ByGoalAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoalAmount, opts...).ToFunc()
}

// ByCurrentAmount orders the results by the current_amount field.
func ByCurrentAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentAmount, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
