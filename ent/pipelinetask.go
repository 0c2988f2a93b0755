// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/redditart/commissioner/ent/pipelinetask"
)

// PipelineTask is the model entity for the PipelineTask schema.
type PipelineTask struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Commission that paid for this task — nil for agent/scheduled tasks
	DonationID *string `json:"donation_id,omitempty"`
	// Type holds the value of the "type" field.
	Type pipelinetask.Type `json:"type,omitempty"`
	// Status holds the value of the "status" field.
	Status pipelinetask.Status `json:"status,omitempty"`
	// Higher first; commission > scheduled subreddit > front page
	Priority int `json:"priority,omitempty"`
	// Attempt holds the value of the "attempt" field.
	Attempt int `json:"attempt,omitempty"`
	// Subreddit holds the value of the "subreddit" field.
	Subreddit *string `json:"subreddit,omitempty"`
	// Resolved Reddit post — persisted by the post_fetched checkpoint
	PostID *string `json:"post_id,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Worker token holding the lease while in_progress
	LeaseOwner *string `json:"lease_owner,omitempty"`
	// LeaseExpiresAt holds the value of the "lease_expires_at" field.
	LeaseExpiresAt *time.Time `json:"lease_expires_at,omitempty"`
	// Retry backoff gate — claim skips tasks scheduled in the future
	NotBefore *time.Time `json:"not_before,omitempty"`
	// Theme holds the value of the "theme" field.
	Theme *string `json:"theme,omitempty"`
	// ImageTitle holds the value of the "image_title" field.
	ImageTitle *string `json:"image_title,omitempty"`
	// ImageDescription holds the value of the "image_description" field.
	ImageDescription *string `json:"image_description,omitempty"`
	// ImageURL holds the value of the "image_url" field.
	ImageURL *string `json:"image_url,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PipelineTask) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pipelinetask.FieldMetadata:
			values[i] = new([]byte)
		case pipelinetask.FieldPriority, pipelinetask.FieldAttempt:
			values[i] = new(sql.NullInt64)
		case pipelinetask.FieldID, pipelinetask.FieldDonationID, pipelinetask.FieldType, pipelinetask.FieldStatus, pipelinetask.FieldSubreddit, pipelinetask.FieldPostID, pipelinetask.FieldErrorMessage, pipelinetask.FieldLeaseOwner, pipelinetask.FieldTheme, pipelinetask.FieldImageTitle, pipelinetask.FieldImageDescription, pipelinetask.FieldImageURL:
			values[i] = new(sql.NullString)
		case pipelinetask.FieldLeaseExpiresAt, pipelinetask.FieldNotBefore, pipelinetask.FieldCreatedAt, pipelinetask.FieldStartedAt, pipelinetask.FieldCompletedAt, pipelinetask.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PipelineTask fields.
func (_m *PipelineTask) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pipelinetask.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pipelinetask.FieldDonationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field donation_id", values[i])
			} else if value.Valid {
				_m.DonationID = new(string)
				*_m.DonationID = value.String
			}
		case pipelinetask.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = pipelinetask.Type(value.String)
			}
		case pipelinetask.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = pipelinetask.Status(value.String)
			}
		case pipelinetask.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case pipelinetask.FieldAttempt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt", values[i])
			} else if value.Valid {
				_m.Attempt = int(value.Int64)
			}
		case pipelinetask.FieldSubreddit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subreddit", values[i])
			} else if value.Valid {
				_m.Subreddit = new(string)
				*_m.Subreddit = value.String
			}
		case pipelinetask.FieldPostID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field post_id", values[i])
			} else if value.Valid {
				_m.PostID = new(string)
				*_m.PostID = value.String
			}
		case pipelinetask.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case pipelinetask.FieldLeaseOwner:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lease_owner", values[i])
			} else if value.Valid {
				_m.LeaseOwner = new(string)
				*_m.LeaseOwner = value.String
			}
		case pipelinetask.FieldLeaseExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field lease_expires_at", values[i])
			} else if value.Valid {
				_m.LeaseExpiresAt = new(time.Time)
				*_m.LeaseExpiresAt = value.Time
			}
		case pipelinetask.FieldNotBefore:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field not_before", values[i])
			} else if value.Valid {
				_m.NotBefore = new(time.Time)
				*_m.NotBefore = value.Time
			}
		case pipelinetask.FieldTheme:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field theme", values[i])
			} else if value.Valid {
				_m.Theme = new(string)
				*_m.Theme = value.String
			}
		case pipelinetask.FieldImageTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_title", values[i])
			} else if value.Valid {
				_m.ImageTitle = new(string)
				*_m.ImageTitle = value.String
			}
		case pipelinetask.FieldImageDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_description", values[i])
			} else if value.Valid {
				_m.ImageDescription = new(string)
				*_m.ImageDescription = value.String
			}
		case pipelinetask.FieldImageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_url", values[i])
			} else if value.Valid {
				_m.ImageURL = new(string)
				*_m.ImageURL = value.String
			}
		case pipelinetask.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case pipelinetask.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pipelinetask.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case pipelinetask.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case pipelinetask.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PipelineTask.
// This includes values selected through modifiers, order, etc.
func (_m *PipelineTask) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PipelineTask.
// Note that you need to call PipelineTask.Unwrap() before calling this method if this PipelineTask
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PipelineTask) Update() *PipelineTaskUpdateOne {
	return NewPipelineTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PipelineTask entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PipelineTask) Unwrap() *PipelineTask {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PipelineTask is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PipelineTask) String() string {
	var builder strings.Builder
	builder.WriteString("PipelineTask(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.DonationID; v != nil {
		builder.WriteString("donation_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempt))
	builder.WriteString(", ")
	if v := _m.Subreddit; v != nil {
		builder.WriteString("subreddit=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PostID; v != nil {
		builder.WriteString("post_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LeaseOwner; v != nil {
		builder.WriteString("lease_owner=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LeaseExpiresAt; v != nil {
		builder.WriteString("lease_expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.NotBefore; v != nil {
		builder.WriteString("not_before=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Theme; v != nil {
		builder.WriteString("theme=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ImageTitle; v != nil {
		builder.WriteString("image_title=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ImageDescription; v != nil {
		builder.WriteString("image_description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ImageURL; v != nil {
		builder.WriteString("image_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PipelineTasks is a parsable slice of PipelineTask.
type PipelineTasks []*PipelineTask
