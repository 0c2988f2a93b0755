// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/redditart/commissioner/ent/agentaction"
)

// AgentAction is the model entity for the AgentAction schema.
type AgentAction struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// Post id, subreddit name, or other external target
	TargetID string `json:"target_id,omitempty"`
	// comment, upvote, welcome, promote, skip, tier_completed, ...
	Kind string `json:"kind,omitempty"`
	// DryRun holds the value of the "dry_run" field.
	DryRun bool `json:"dry_run,omitempty"`
	// Opaque LLM scoring payload attached to the decision
	Rating map[string]interface{} `json:"rating,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentAction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentaction.FieldRating:
			values[i] = new([]byte)
		case agentaction.FieldDryRun:
			values[i] = new(sql.NullBool)
		case agentaction.FieldID:
			values[i] = new(sql.NullInt64)
		case agentaction.FieldAgentID, agentaction.FieldTargetID, agentaction.FieldKind:
			values[i] = new(sql.NullString)
		case agentaction.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentAction fields.
func (_m *AgentAction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentaction.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case agentaction.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case agentaction.FieldTargetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_id", values[i])
			} else if value.Valid {
				_m.TargetID = value.String
			}
		case agentaction.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case agentaction.FieldDryRun:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field dry_run", values[i])
			} else if value.Valid {
				_m.DryRun = value.Bool
			}
		case agentaction.FieldRating:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field rating", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Rating); err != nil {
					return fmt.Errorf("unmarshal field rating: %w", err)
				}
			}
		case agentaction.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AgentAction.
// This includes values selected through modifiers, order, etc.
func (_m *AgentAction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AgentAction.
// Note that you need to call AgentAction.Unwrap() before calling this method if this AgentAction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentAction) Update() *AgentActionUpdateOne {
	return NewAgentActionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentAction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentAction) Unwrap() *AgentAction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentAction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentAction) String() string {
	var builder strings.Builder
	builder.WriteString("AgentAction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("target_id=")
	builder.WriteString(_m.TargetID)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("dry_run=")
	builder.WriteString(fmt.Sprintf("%v", _m.DryRun))
	builder.WriteString(", ")
	builder.WriteString("rating=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rating))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentActions is a parsable slice of AgentAction.
type AgentActions []*AgentAction
