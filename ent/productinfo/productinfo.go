// Code generated by ent, DO NOT EDIT.

package productinfo

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the productinfo type in the database.
	Label = "product_info"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "product_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldDonationID holds the string denoting the donation_id field in the database.
	FieldDonationID = "donation_id"
	// FieldPostID holds the string denoting the post_id field in the database.
	FieldPostID = "post_id"
	// FieldTheme holds the string denoting the theme field in the database.
	FieldTheme = "theme"
	// FieldImageTitle holds the string denoting the image_title field in the database.
	FieldImageTitle = "image_title"
	// FieldImageURL holds the string denoting the image_url field in the database.
	FieldImageURL = "image_url"
	// FieldProductURL holds the string denoting the product_url field in the database.
	FieldProductURL = "product_url"
	// FieldTemplateID holds the string denoting the template_id field in the database.
	FieldTemplateID = "template_id"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldPromptVersion holds the string denoting the prompt_version field in the database.
	FieldPromptVersion = "prompt_version"
	// FieldImageQuality holds the string denoting the image_quality field in the database.
	FieldImageQuality = "image_quality"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the productinfo in the database.
	Table = "product_infos"
)

// Columns holds all SQL columns for productinfo fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldDonationID,
	FieldPostID,
	FieldTheme,
	FieldImageTitle,
	FieldImageURL,
	FieldProductURL,
	FieldTemplateID,
	FieldModel,
	FieldPromptVersion,
	FieldImageQuality,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// ImageQuality defines the type for the "image_quality" enum field.
type ImageQuality string

// ImageQualityStandard is the default value of the ImageQuality enum.
const DefaultImageQuality = ImageQualityStandard

// ImageQuality values.
const (
	ImageQualityStandard ImageQuality = "standard"
	ImageQualityHd       ImageQuality = "hd"
)

func (iq ImageQuality) String() string {
	return string(iq)
}

// ImageQualityValidator is a validator for the "image_quality" field enum values. It is called by the builders before save.
func ImageQualityValidator(iq ImageQuality) error {
	switch iq {
	case ImageQualityStandard, ImageQualityHd:
		return nil
	default:
		return fmt.Errorf("productinfo: invalid enum value for image_quality field: %q", iq)
	}
}

// OrderOption defines the ordering options for the ProductInfo queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByDonationID orders the results by the donation_id field.
func ByDonationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDonationID, opts...).ToFunc()
}

// ByPostID orders the results by the post_id field.
func ByPostID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPostID, opts...).ToFunc()
}

// ByTheme orders the results by the theme field.
func ByTheme(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTheme, opts...).ToFunc()
}

// ByImageTitle orders the results by the image_title field.
func ByImageTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageTitle, opts...).ToFunc()
}

// ByImageURL orders the results by the image_url field.
func ByImageURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageURL, opts...).ToFunc()
}

// ByProductURL orders the results by the product_url field.
func ByProductURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProductURL, opts...).ToFunc()
}

// ByTemplateID orders the results by the template_id field.
func ByTemplateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemplateID, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByPromptVersion orders the results by the prompt_version field.
func ByPromptVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptVersion, opts...).ToFunc()
}

// ByImageQuality orders the results by the image_quality field.
func ByImageQuality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageQuality, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
