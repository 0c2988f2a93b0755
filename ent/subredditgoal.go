// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/redditart/commissioner/ent/subredditgoal"
)

// SubredditGoal is the model entity for the SubredditGoal schema.
type SubredditGoal struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Subreddit holds the value of the "subreddit" field.
	Subreddit string `json:"subreddit,omitempty"`
	// GoalAmount holds the value of the "goal_amount" field.
	GoalAmount int64 `json:"goal_amount,omitempty"`
	// CurrentAmount holds the value of the "current_amount" field.
	CurrentAmount int64 `json:"current_amount,omitempty"`
	// Status holds the value of the "status" field.
	Status subredditgoal.Status `json:"status,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SubredditGoal) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case subredditgoal.FieldID, subredditgoal.FieldGoalAmount, subredditgoal.FieldCurrentAmount:
			values[i] = new(sql.NullInt64)
		case subredditgoal.FieldSubreddit, subredditgoal.FieldStatus:
			values[i] = new(sql.NullString)
		case subredditgoal.FieldCompletedAt, subredditgoal.FieldCreatedAt, subredditgoal.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SubredditGoal fields.
func (_m *SubredditGoal) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case subredditgoal.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case subredditgoal.FieldSubreddit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subreddit", values[i])
			} else if value.Valid {
				_m.Subreddit = value.String
			}
		case subredditgoal.FieldGoalAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field goal_amount", values[i])
			} else if value.Valid {
				_m.GoalAmount = value.Int64
			}
		case subredditgoal.FieldCurrentAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_amount", values[i])
			} else if value.Valid {
				_m.CurrentAmount = value.Int64
			}
		case subredditgoal.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = subredditgoal.Status(value.String)
			}
		case subredditgoal.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case subredditgoal.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case subredditgoal.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SubredditGoal.
// This includes values selected through modifiers, order, etc.
func (_m *SubredditGoal) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SubredditGoal.
// Note that you need to call SubredditGoal.Unwrap() before calling this method if this SubredditGoal
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SubredditGoal) Update() *SubredditGoalUpdateOne {
	return NewSubredditGoalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SubredditGoal entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SubredditGoal) Unwrap() *SubredditGoal {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SubredditGoal is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SubredditGoal) String() string {
	var builder strings.Builder
	builder.WriteString("SubredditGoal(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("subreddit=")
	builder.WriteString(_m.Subreddit)
	builder.WriteString(", ")
	builder.WriteString("goal_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.GoalAmount))
	builder.WriteString(", ")
	builder.WriteString("current_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentAmount))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SubredditGoals is a parsable slice of SubredditGoal.
type SubredditGoals []*SubredditGoal
