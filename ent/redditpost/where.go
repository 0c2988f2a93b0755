// Code generated by ent, DO NOT EDIT.

package redditpost

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/redditart/commissioner/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldContainsFold(FieldID, id))
}

// Subreddit applies equality check predicate on the "subreddit" field. It's identical to SubredditEQ.
func Subreddit(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldEQ(FieldSubreddit, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldEQ(FieldTitle, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldEQ(FieldBody, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldEQ(FieldScore, v))
}

// NumComments applies equality check predicate on the "num_comments" field. It's identical to NumCommentsEQ.
func NumComments(v int) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldEQ(FieldNumComments, v))
}

// Permalink applies equality check predicate on the "permalink" field. It's identical to PermalinkEQ.
func Permalink(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldEQ(FieldPermalink, v))
}

// Over18 applies equality check predicate on the "over_18" field. It's identical to Over18EQ.
func Over18(v bool) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldEQ(FieldOver18, v))
}

// CommentSummary applies equality check predicate on the "comment_summary" field. It's identical to CommentSummaryEQ.
func CommentSummary(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldEQ(FieldCommentSummary, v))
}

// LastUsedAt applies equality check predicate on the "last_used_at" field. It's identical to LastUsedAtEQ.
func LastUsedAt(v time.Time) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldEQ(FieldLastUsedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldEQ(FieldCreatedAt, v))
}

// SubredditEQ applies the EQ predicate on the "subreddit" field.
func SubredditEQ(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldEQ(FieldSubreddit, v))
}

// SubredditNEQ applies the NEQ predicate on the "subreddit" field.
func SubredditNEQ(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldNEQ(FieldSubreddit, v))
}

// SubredditIn applies the In predicate on the "subreddit" field.
func SubredditIn(vs ...string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldIn(FieldSubreddit, vs...))
}

// SubredditNotIn applies the NotIn predicate on the "subreddit" field.
func SubredditNotIn(vs ...string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldNotIn(FieldSubreddit, vs...))
}

// SubredditGT applies the GT predicate on the "subreddit" field.
func SubredditGT(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldGT(FieldSubreddit, v))
}

// SubredditGTE applies the GTE predicate on the "subreddit" field.
func SubredditGTE(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldGTE(FieldSubreddit, v))
}

// SubredditLT applies the LT predicate on the "subreddit" field.
func SubredditLT(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldLT(FieldSubreddit, v))
}

// SubredditLTE applies the LTE predicate on the "subreddit" field.
func SubredditLTE(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldLTE(FieldSubreddit, v))
}

// SubredditContains applies the Contains predicate on the "subreddit" field.
func SubredditContains(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldContains(FieldSubreddit, v))
}

// SubredditHasPrefix applies the HasPrefix predicate on the "subreddit" field.
func SubredditHasPrefix(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldHasPrefix(FieldSubreddit, v))
}

// SubredditHasSuffix applies the HasSuffix predicate on the "subreddit" field.
func SubredditHasSuffix(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldHasSuffix(FieldSubreddit, v))
}

// SubredditEqualFold applies the EqualFold predicate on the "subreddit" field.
func SubredditEqualFold(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldEqualFold(FieldSubreddit, v))
}

// SubredditContainsFold applies the ContainsFold predicate on the "subreddit" field.
func SubredditContainsFold(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldContainsFold(FieldSubreddit, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldContainsFold(FieldTitle, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldHasSuffix(FieldBody, v))
}

// BodyIsNil applies the IsNil predicate on the "body" field.
func BodyIsNil() predicate.RedditPost {
	return predicate.RedditPost(sql.FieldIsNull(FieldBody))
}

// BodyNotNil applies the NotNil predicate on the "body" field.
func BodyNotNil() predicate.RedditPost {
	return predicate.RedditPost(sql.FieldNotNull(FieldBody))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldContainsFold(FieldBody, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldLTE(FieldScore, v))
}

// NumCommentsEQ applies the EQ predicate on the "num_comments" field.
func NumCommentsEQ(v int) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldEQ(FieldNumComments, v))
}

// NumCommentsNEQ applies the NEQ predicate on the "num_comments" field.
func NumCommentsNEQ(v int) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldNEQ(FieldNumComments, v))
}

// NumCommentsIn applies the In predicate on the "num_comments" field.
func NumCommentsIn(vs ...int) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldIn(FieldNumComments, vs...))
}

// NumCommentsNotIn applies the NotIn predicate on the "num_comments" field.
func NumCommentsNotIn(vs ...int) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldNotIn(FieldNumComments, vs...))
}

// NumCommentsGT applies the GT predicate on the "num_comments" field.
func NumCommentsGT(v int) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldGT(FieldNumComments, v))
}

// NumCommentsGTE applies the GTE predicate on the "num_comments" field.
func NumCommentsGTE(v int) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldGTE(FieldNumComments, v))
}

// NumCommentsLT applies the LT predicate on the "num_comments" field.
func NumCommentsLT(v int) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldLT(FieldNumComments, v))
}

// NumCommentsLTE applies the LTE predicate on the "num_comments" field.
func NumCommentsLTE(v int) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldLTE(FieldNumComments, v))
}

// PermalinkEQ applies the EQ predicate on the "permalink" field.
func PermalinkEQ(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldEQ(FieldPermalink, v))
}

// PermalinkNEQ applies the NEQ predicate on the "permalink" field.
func PermalinkNEQ(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldNEQ(FieldPermalink, v))
}

// PermalinkIn applies the In predicate on the "permalink" field.
func PermalinkIn(vs ...string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldIn(FieldPermalink, vs...))
}

// PermalinkNotIn applies the NotIn predicate on the "permalink" field.
func PermalinkNotIn(vs ...string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldNotIn(FieldPermalink, vs...))
}

// PermalinkGT applies the GT predicate on the "permalink" field.
func PermalinkGT(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldGT(FieldPermalink, v))
}

// PermalinkGTE applies the GTE predicate on the "permalink" field.
func PermalinkGTE(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldGTE(FieldPermalink, v))
}

// PermalinkLT applies the LT predicate on the "permalink" field.
func PermalinkLT(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldLT(FieldPermalink, v))
}

// PermalinkLTE applies the LTE predicate on the "permalink" field.
func PermalinkLTE(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldLTE(FieldPermalink, v))
}

// PermalinkContains applies the Contains predicate on the "permalink" field.
func PermalinkContains(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldContains(FieldPermalink, v))
}

// PermalinkHasPrefix applies the HasPrefix predicate on the "permalink" field.
func PermalinkHasPrefix(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldHasPrefix(FieldPermalink, v))
}

// PermalinkHasSuffix applies the HasSuffix predicate on the "permalink" field.
func PermalinkHasSuffix(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldHasSuffix(FieldPermalink, v))
}

// PermalinkEqualFold applies the EqualFold predicate on the "permalink" field.
func PermalinkEqualFold(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldEqualFold(FieldPermalink, v))
}

// PermalinkContainsFold applies the ContainsFold predicate on the "permalink" field.
func PermalinkContainsFold(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldContainsFold(FieldPermalink, v))
}

// Over18EQ applies the EQ predicate on the "over_18" field.
func Over18EQ(v bool) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldEQ(FieldOver18, v))
}

// Over18NEQ applies the NEQ predicate on the "over_18" field.
func Over18NEQ(v bool) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldNEQ(FieldOver18, v))
}

// CommentSummaryEQ applies the EQ predicate on the "comment_summary" field.
func CommentSummaryEQ(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldEQ(FieldCommentSummary, v))
}

// CommentSummaryNEQ applies the NEQ predicate on the "comment_summary" field.
func CommentSummaryNEQ(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldNEQ(FieldCommentSummary, v))
}

// CommentSummaryIn applies the In predicate on the "comment_summary" field.
func CommentSummaryIn(vs ...string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldIn(FieldCommentSummary, vs...))
}

// CommentSummaryNotIn applies the NotIn predicate on the "comment_summary" field.
func CommentSummaryNotIn(vs ...string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldNotIn(FieldCommentSummary, vs...))
}

// CommentSummaryGT applies the GT predicate on the "comment_summary" field.
func CommentSummaryGT(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldGT(FieldCommentSummary, v))
}

// CommentSummaryGTE applies the GTE predicate on the "comment_summary" field.
func CommentSummaryGTE(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldGTE(FieldCommentSummary, v))
}

// CommentSummaryLT applies the LT predicate on the "comment_summary" field.
func CommentSummaryLT(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldLT(FieldCommentSummary, v))
}

// CommentSummaryLTE applies the LTE predicate on the "comment_summary" field.
func CommentSummaryLTE(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldLTE(FieldCommentSummary, v))
}

// CommentSummaryContains applies the Contains predicate on the "comment_summary" field.
func CommentSummaryContains(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldContains(FieldCommentSummary, v))
}

// CommentSummaryHasPrefix applies the HasPrefix predicate on the "comment_summary" field.
func CommentSummaryHasPrefix(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldHasPrefix(FieldCommentSummary, v))
}

// CommentSummaryHasSuffix applies the HasSuffix predicate on the "comment_summary" field.
func CommentSummaryHasSuffix(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldHasSuffix(FieldCommentSummary, v))
}

// CommentSummaryIsNil applies the IsNil predicate on the "comment_summary" field.
func CommentSummaryIsNil() predicate.RedditPost {
	return predicate.RedditPost(sql.FieldIsNull(FieldCommentSummary))
}

// CommentSummaryNotNil applies the NotNil predicate on the "comment_summary" field.
func CommentSummaryNotNil() predicate.RedditPost {
	return predicate.RedditPost(sql.FieldNotNull(FieldCommentSummary))
}

// CommentSummaryEqualFold applies the EqualFold predicate on the "comment_summary" field.
func CommentSummaryEqualFold(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldEqualFold(FieldCommentSummary, v))
}

// CommentSummaryContainsFold applies the ContainsFold predicate on the "comment_summary" field.
func CommentSummaryContainsFold(v string) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldContainsFold(FieldCommentSummary, v))
}

// LastUsedAtEQ applies the EQ predicate on the "last_used_at" field.
func LastUsedAtEQ(v time.Time) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldEQ(FieldLastUsedAt, v))
}

// LastUsedAtNEQ applies the NEQ predicate on the "last_used_at" field.
func LastUsedAtNEQ(v time.Time) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldNEQ(FieldLastUsedAt, v))
}

// LastUsedAtIn applies the In predicate on the "last_used_at" field.
func LastUsedAtIn(vs ...time.Time) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldIn(FieldLastUsedAt, vs...))
}

// LastUsedAtNotIn applies the NotIn predicate on the "last_used_at" field.
func LastUsedAtNotIn(vs ...time.Time) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldNotIn(FieldLastUsedAt, vs...))
}

// LastUsedAtGT applies the GT predicate on the "last_used_at" field.
func LastUsedAtGT(v time.Time) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldGT(FieldLastUsedAt, v))
}

// LastUsedAtGTE applies the GTE predicate on the "last_used_at" field.
func LastUsedAtGTE(v time.Time) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldGTE(FieldLastUsedAt, v))
}

// LastUsedAtLT applies the LT predicate on the "last_used_at" field.
func LastUsedAtLT(v time.Time) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldLT(FieldLastUsedAt, v))
}

// LastUsedAtLTE applies the LTE predicate on the "last_used_at" field.
func LastUsedAtLTE(v time.Time) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldLTE(FieldLastUsedAt, v))
}

// LastUsedAtIsNil applies the IsNil predicate on the "last_used_at" field.
func LastUsedAtIsNil() predicate.RedditPost {
	return predicate.RedditPost(sql.FieldIsNull(FieldLastUsedAt))
}

// LastUsedAtNotNil applies the NotNil predicate on the "last_used_at" field.
func LastUsedAtNotNil() predicate.RedditPost {
	return predicate.RedditPost(sql.FieldNotNull(FieldLastUsedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RedditPost {
	return predicate.RedditPost(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RedditPost) predicate.RedditPost {
	return predicate.RedditPost(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RedditPost) predicate.RedditPost {
	return predicate.RedditPost(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RedditPost) predicate.RedditPost {
	return predicate.RedditPost(sql.NotPredicates(p))
}
