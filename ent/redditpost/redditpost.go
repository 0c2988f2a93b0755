// Code generated by ent, DO NOT EDIT.

package redditpost

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the redditpost type in the database.
	Label = "reddit_post"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "post_id"
	// FieldSubreddit holds the string denoting the subreddit field in the database.
	FieldSubreddit = "subreddit"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldNumComments holds the string denoting the num_comments field in the database.
	FieldNumComments = "num_comments"
	// FieldPermalink holds the string denoting the permalink field in the database.
	FieldPermalink = "permalink"
	// FieldOver18 holds the string denoting the over_18 field in the database.
	FieldOver18 = "over_18"
	// FieldCommentSummary holds the string denoting the comment_summary field in the database.
	FieldCommentSummary = "comment_summary"
	// FieldLastUsedAt holds the string denoting the last_used_at field in the database.
	FieldLastUsedAt = "last_used_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the redditpost in the database.
	Table = "reddit_posts"
)

// Columns holds all SQL columns for redditpost fields.
var Columns = []string{
	FieldID,
	FieldSubreddit,
	FieldTitle,
	FieldBody,
	FieldScore,
	FieldNumComments,
	FieldPermalink,
	FieldOver18,
	FieldCommentSummary,
	FieldLastUsedAt,
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
	// DefaultScore holds the default value on creation for the "score" field.
	DefaultScore int
	// DefaultNumComments holds the default value on creation for the "num_comments" field.
	DefaultNumComments int
	// DefaultOver18 holds the default value on creation for the "over_18" field.
	DefaultOver18 bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the RedditPost queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySubreddit orders the results by the subreddit field.
func BySubreddit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubreddit, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByBody orders the results by the body field.
func ByBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBody, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByNumComments orders the results by the num_comments field.
func ByNumComments(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumComments, opts...).ToFunc()
}

// ByPermalink orders the results by the permalink field.
func ByPermalink(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPermalink, opts...).ToFunc()
}

// ByOver18 orders the results by the over_18 field.
func ByOver18(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOver18, opts...).ToFunc()
}

// ByCommentSummary orders the results by the comment_summary field.
func ByCommentSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommentSummary, opts...).ToFunc()
}

// ByLastUsedAt orders the results by the last_used_at field.
func ByLastUsedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUsedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
