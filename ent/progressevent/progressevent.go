// Code generated by ent, DO NOT EDIT.

package progressevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the progressevent type in the database.
	Label = "progress_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldPercent holds the string denoting the percent field in the database.
	FieldPercent = "percent"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the progressevent in the database.
	Table = "progress_events"
)

// Columns holds all SQL columns for progressevent fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldStage,
	FieldMessage,
	FieldPercent,
	FieldCreatedAt,
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
	// PercentValidator is a validator for the "percent" field. It is called by the builders before save.
	PercentValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Stage defines the type for the "stage" enum field.
type Stage string

// Stage values.
const (
	StagePostFetching           Stage = "post_fetching"
	StagePostFetched            Stage = "post_fetched"
	StageProductDesigned        Stage = "product_designed"
	StageImageGenerationStarted Stage = "image_generation_started"
	StageImageGenerated         Stage = "image_generated"
	StageImageStamped           Stage = "image_stamped"
	StageCommissionComplete     Stage = "commission_complete"
	StageRetrying               Stage = "retrying"
	StageFailed                 Stage = "failed"
	StageCancelled              Stage = "cancelled"
)

func (s Stage) String() string {
	return string(s)
}

// StageValidator is a validator for the "stage" field enum values. It is called by the builders before save.
func StageValidator(s Stage) error {
	switch s {
	case StagePostFetching, StagePostFetched, StageProductDesigned, StageImageGenerationStarted, StageImageGenerated, StageImageStamped, StageCommissionComplete, StageRetrying, StageFailed, StageCancelled:
		return nil
	default:
		return fmt.Errorf("progressevent: invalid enum value for stage field: %q", s)
	}
}

// OrderOption defines the ordering options for the ProgressEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByPercent orders the results by the percent field.
func ByPercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPercent, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
