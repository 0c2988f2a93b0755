// Code generated by ent, DO NOT EDIT.

package tier

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the tier type in the database.
	Label = "tier"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldMinAmount holds the string denoting the min_amount field in the database.
	FieldMinAmount = "min_amount"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldColor holds the string denoting the color field in the database.
	FieldColor = "color"
	// FieldHd holds the string denoting the hd field in the database.
	FieldHd = "hd"
	// Table holds the table name of the tier in the database.
	Table = "tiers"
)

// Columns holds all SQL columns for tier fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldMinAmount,
	FieldDisplayName,
	FieldColor,
	FieldHd,
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
	// DefaultHd holds the default value on creation for the "hd" field.
	DefaultHd bool
)

// OrderOption defines the ordering options for the Tier queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByMinAmount orders the results by the min_amount field.
func ByMinAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinAmount, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByColor orders the results by the color field.
func ByColor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColor, opts...).ToFunc()
}

// ByHd orders the results by the hd field.
func ByHd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHd, opts...).ToFunc()
}
