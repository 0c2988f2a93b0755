// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/redditart/commissioner/ent/donation"
)

// Donation is the model entity for the Donation schema.
type Donation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Payment processor intent identifier — idempotency key for webhooks
	PaymentIntentID string `json:"payment_intent_id,omitempty"`
	// Minor currency units (cents)
	Amount int64 `json:"amount,omitempty"`
	// Currency holds the value of the "currency" field.
	Currency string `json:"currency,omitempty"`
	// Status holds the value of the "status" field.
	Status donation.Status `json:"status,omitempty"`
	// Type holds the value of the "type" field.
	Type donation.Type `json:"type,omitempty"`
	// CommissionType holds the value of the "commission_type" field.
	CommissionType donation.CommissionType `json:"commission_type,omitempty"`
	// Reddit post id for specific_post commissions
	PostID *string `json:"post_id,omitempty"`
	// Subreddit holds the value of the "subreddit" field.
	Subreddit *string `json:"subreddit,omitempty"`
	// Message holds the value of the "message" field.
	Message *string `json:"message,omitempty"`
	// RedditHandle holds the value of the "reddit_handle" field.
	RedditHandle *string `json:"reddit_handle,omitempty"`
	// IsAnonymous holds the value of the "is_anonymous" field.
	IsAnonymous bool `json:"is_anonymous,omitempty"`
	// Tier name resolved from amount at intent creation
	Tier *string `json:"tier,omitempty"`
	// Source holds the value of the "source" field.
	Source donation.Source `json:"source,omitempty"`
	// Set once the fundraising ledger has credited this donation
	Applied bool `json:"applied,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Donation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case donation.FieldIsAnonymous, donation.FieldApplied:
			values[i] = new(sql.NullBool)
		case donation.FieldAmount:
			values[i] = new(sql.NullInt64)
		case donation.FieldID, donation.FieldPaymentIntentID, donation.FieldCurrency, donation.FieldStatus, donation.FieldType, donation.FieldCommissionType, donation.FieldPostID, donation.FieldSubreddit, donation.FieldMessage, donation.FieldRedditHandle, donation.FieldTier, donation.FieldSource:
			values[i] = new(sql.NullString)
		case donation.FieldCreatedAt, donation.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Donation fields.
func (_m *Donation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case donation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case donation.FieldPaymentIntentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_intent_id", values[i])
			} else if value.Valid {
				_m.PaymentIntentID = value.String
			}
		case donation.FieldAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = value.Int64
			}
		case donation.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				_m.Currency = value.String
			}
		case donation.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = donation.Status(value.String)
			}
		case donation.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = donation.Type(value.String)
			}
		case donation.FieldCommissionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field commission_type", values[i])
			} else if value.Valid {
				_m.CommissionType = donation.CommissionType(value.String)
			}
		case donation.FieldPostID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field post_id", values[i])
			} else if value.Valid {
				_m.PostID = new(string)
				*_m.PostID = value.String
			}
		case donation.FieldSubreddit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subreddit", values[i])
			} else if value.Valid {
				_m.Subreddit = new(string)
				*_m.Subreddit = value.String
			}
		case donation.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = new(string)
				*_m.Message = value.String
			}
		case donation.FieldRedditHandle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reddit_handle", values[i])
			} else if value.Valid {
				_m.RedditHandle = new(string)
				*_m.RedditHandle = value.String
			}
		case donation.FieldIsAnonymous:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_anonymous", values[i])
			} else if value.Valid {
				_m.IsAnonymous = value.Bool
			}
		case donation.FieldTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tier", values[i])
			} else if value.Valid {
				_m.Tier = new(string)
				*_m.Tier = value.String
			}
		case donation.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = donation.Source(value.String)
			}
		case donation.FieldApplied:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field applied", values[i])
			} else if value.Valid {
				_m.Applied = value.Bool
			}
		case donation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case donation.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Donation.
// This includes values selected through modifiers, order, etc.
func (_m *Donation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Donation.
// Note that you need to call Donation.Unwrap() before calling this method if this Donation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Donation) Update() *DonationUpdateOne {
	return NewDonationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Donation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Donation) Unwrap() *Donation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Donation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Donation) String() string {
	var builder strings.Builder
	builder.WriteString("Donation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("payment_intent_id=")
	builder.WriteString(_m.PaymentIntentID)
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.Amount))
	builder.WriteString(", ")
	builder.WriteString("currency=")
	builder.WriteString(_m.Currency)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("commission_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommissionType))
	builder.WriteString(", ")
	if v := _m.PostID; v != nil {
		builder.WriteString("post_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Subreddit; v != nil {
		builder.WriteString("subreddit=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Message; v != nil {
		builder.WriteString("message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RedditHandle; v != nil {
		builder.WriteString("reddit_handle=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_anonymous=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsAnonymous))
	builder.WriteString(", ")
	if v := _m.Tier; v != nil {
		builder.WriteString("tier=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
	builder.WriteString(", ")
	builder.WriteString("applied=")
	builder.WriteString(fmt.Sprintf("%v", _m.Applied))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Donations is a parsable slice of Donation.
type Donations []*Donation
