// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/redditart/commissioner/ent/productinfo"
)

// ProductInfo is the model entity for the ProductInfo schema.
type ProductInfo struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// DonationID holds the value of the "donation_id" field.
	DonationID *string `json:"donation_id,omitempty"`
	// Reddit post the artwork was derived from
	PostID string `json:"post_id,omitempty"`
	// Theme holds the value of the "theme" field.
	Theme string `json:"theme,omitempty"`
	// ImageTitle holds the value of the "image_title" field.
	ImageTitle string `json:"image_title,omitempty"`
	// Hosted image URL
	ImageURL string `json:"image_url,omitempty"`
	// Affiliate storefront URL
	ProductURL string `json:"product_url,omitempty"`
	// TemplateID holds the value of the "template_id" field.
	TemplateID string `json:"template_id,omitempty"`
	// Image model that produced the artwork
	Model string `json:"model,omitempty"`
	// PromptVersion holds the value of the "prompt_version" field.
	PromptVersion string `json:"prompt_version,omitempty"`
	// ImageQuality holds the value of the "image_quality" field.
	ImageQuality productinfo.ImageQuality `json:"image_quality,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProductInfo) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case productinfo.FieldID, productinfo.FieldTaskID, productinfo.FieldDonationID, productinfo.FieldPostID, productinfo.FieldTheme, productinfo.FieldImageTitle, productinfo.FieldImageURL, productinfo.FieldProductURL, productinfo.FieldTemplateID, productinfo.FieldModel, productinfo.FieldPromptVersion, productinfo.FieldImageQuality:
			values[i] = new(sql.NullString)
		case productinfo.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProductInfo fields.
func (_m *ProductInfo) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case productinfo.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case productinfo.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case productinfo.FieldDonationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field donation_id", values[i])
			} else if value.Valid {
				_m.DonationID = new(string)
				*_m.DonationID = value.String
			}
		case productinfo.FieldPostID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field post_id", values[i])
			} else if value.Valid {
				_m.PostID = value.String
			}
		case productinfo.FieldTheme:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field theme", values[i])
			} else if value.Valid {
				_m.Theme = value.String
			}
		case productinfo.FieldImageTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_title", values[i])
			} else if value.Valid {
				_m.ImageTitle = value.String
			}
		case productinfo.FieldImageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_url", values[i])
			} else if value.Valid {
				_m.ImageURL = value.String
			}
		case productinfo.FieldProductURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field product_url", values[i])
			} else if value.Valid {
				_m.ProductURL = value.String
			}
		case productinfo.FieldTemplateID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field template_id", values[i])
			} else if value.Valid {
				_m.TemplateID = value.String
			}
		case productinfo.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case productinfo.FieldPromptVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_version", values[i])
			} else if value.Valid {
				_m.PromptVersion = value.String
			}
		case productinfo.FieldImageQuality:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_quality", values[i])
			} else if value.Valid {
				_m.ImageQuality = productinfo.ImageQuality(value.String)
			}
		case productinfo.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProductInfo.
// This includes values selected through modifiers, order, etc.
func (_m *ProductInfo) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProductInfo.
// Note that you need to call ProductInfo.Unwrap() before calling this method if this ProductInfo
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProductInfo) Update() *ProductInfoUpdateOne {
	return NewProductInfoClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProductInfo entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProductInfo) Unwrap() *ProductInfo {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProductInfo is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProductInfo) String() string {
	var builder strings.Builder
	builder.WriteString("ProductInfo(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	if v := _m.DonationID; v != nil {
		builder.WriteString("donation_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("post_id=")
	builder.WriteString(_m.PostID)
	builder.WriteString(", ")
	builder.WriteString("theme=")
	builder.WriteString(_m.Theme)
	builder.WriteString(", ")
	builder.WriteString("image_title=")
	builder.WriteString(_m.ImageTitle)
	builder.WriteString(", ")
	builder.WriteString("image_url=")
	builder.WriteString(_m.ImageURL)
	builder.WriteString(", ")
	builder.WriteString("product_url=")
	builder.WriteString(_m.ProductURL)
	builder.WriteString(", ")
	builder.WriteString("template_id=")
	builder.WriteString(_m.TemplateID)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("prompt_version=")
	builder.WriteString(_m.PromptVersion)
	builder.WriteString(", ")
	builder.WriteString("image_quality=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImageQuality))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProductInfos is a parsable slice of ProductInfo.
type ProductInfos []*ProductInfo
