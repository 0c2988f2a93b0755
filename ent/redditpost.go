// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/redditart/commissioner/ent/redditpost"
)

// RedditPost is the model entity for the RedditPost schema.
type RedditPost struct {
	config `json:"-"`
	// ID of the ent.
	// External Reddit post id (base36, no t3_ prefix)
	ID string `json:"id,omitempty"`
	// Subreddit holds the value of the "subreddit" field.
	Subreddit string `json:"subreddit,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Body holds the value of the "body" field.
	Body string `json:"body,omitempty"`
	// Score holds the value of the "score" field.
	Score int `json:"score,omitempty"`
	// NumComments holds the value of the "num_comments" field.
	NumComments int `json:"num_comments,omitempty"`
	// Permalink holds the value of the "permalink" field.
	Permalink string `json:"permalink,omitempty"`
	// Over18 holds the value of the "over_18" field.
	Over18 bool `json:"over_18,omitempty"`
	// CommentSummary holds the value of the "comment_summary" field.
	CommentSummary *string `json:"comment_summary,omitempty"`
	// LastUsedAt holds the value of the "last_used_at" field.
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RedditPost) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case redditpost.FieldOver18:
			values[i] = new(sql.NullBool)
		case redditpost.FieldScore, redditpost.FieldNumComments:
			values[i] = new(sql.NullInt64)
		case redditpost.FieldID, redditpost.FieldSubreddit, redditpost.FieldTitle, redditpost.FieldBody, redditpost.FieldPermalink, redditpost.FieldCommentSummary:
			values[i] = new(sql.NullString)
		case redditpost.FieldLastUsedAt, redditpost.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RedditPost fields.
func (_m *RedditPost) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case redditpost.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case redditpost.FieldSubreddit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subreddit", values[i])
			} else if value.Valid {
				_m.Subreddit = value.String
			}
		case redditpost.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case redditpost.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case redditpost.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case redditpost.FieldNumComments:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field num_comments", values[i])
			} else if value.Valid {
				_m.NumComments = int(value.Int64)
			}
		case redditpost.FieldPermalink:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field permalink", values[i])
			} else if value.Valid {
				_m.Permalink = value.String
			}
		case redditpost.FieldOver18:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field over_18", values[i])
			} else if value.Valid {
				_m.Over18 = value.Bool
			}
		case redditpost.FieldCommentSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field comment_summary", values[i])
			} else if value.Valid {
				_m.CommentSummary = new(string)
				*_m.CommentSummary = value.String
			}
		case redditpost.FieldLastUsedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_used_at", values[i])
			} else if value.Valid {
				_m.LastUsedAt = new(time.Time)
				*_m.LastUsedAt = value.Time
			}
		case redditpost.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the RedditPost.
// This includes values selected through modifiers, order, etc.
func (_m *RedditPost) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RedditPost.
// Note that you need to call RedditPost.Unwrap() before calling this method if this RedditPost
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RedditPost) Update() *RedditPostUpdateOne {
	return NewRedditPostClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RedditPost entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RedditPost) Unwrap() *RedditPost {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RedditPost is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RedditPost) String() string {
	var builder strings.Builder
	builder.WriteString("RedditPost(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("subreddit=")
	builder.WriteString(_m.Subreddit)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("num_comments=")
	builder.WriteString(fmt.Sprintf("%v", _m.NumComments))
	builder.WriteString(", ")
	builder.WriteString("permalink=")
	builder.WriteString(_m.Permalink)
	builder.WriteString(", ")
	builder.WriteString("over_18=")
	builder.WriteString(fmt.Sprintf("%v", _m.Over18))
	builder.WriteString(", ")
	if v := _m.CommentSummary; v != nil {
		builder.WriteString("comment_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastUsedAt; v != nil {
		builder.WriteString("last_used_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RedditPosts is a parsable slice of RedditPost.
type RedditPosts []*RedditPost
