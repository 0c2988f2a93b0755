// Code generated by ent, DO NOT EDIT.

package subredditgoal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/redditart/commissioner/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldLTE(FieldID, id))
}

// Subreddit applies equality check predicate on the "subreddit" field. It's identical to SubredditEQ.
func Subreddit(v string) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldEQ(FieldSubreddit, v))
}

// GoalAmount applies equality check predicate on the "goal_amount" field. It's identical to GoalAmountEQ.
func GoalAmount(v int64) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldEQ(FieldGoalAmount, v))
}

// CurrentAmount applies equality check predicate on the "current_amount" field. It's identical to CurrentAmountEQ.
func CurrentAmount(v int64) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldEQ(FieldCurrentAmount, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldEQ(FieldUpdatedAt, v))
}

// SubredditEQ applies the EQ predicate on the "subreddit" field.
func SubredditEQ(v string) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldEQ(FieldSubreddit, v))
}

// SubredditNEQ applies the NEQ predicate on the "subreddit" field.
func SubredditNEQ(v string) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldNEQ(FieldSubreddit, v))
}

// SubredditIn applies the In predicate on the "subreddit" field.
func SubredditIn(vs ...string) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldIn(FieldSubreddit, vs...))
}

// SubredditNotIn applies the NotIn predicate on the "subreddit" field.
func SubredditNotIn(vs ...string) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldNotIn(FieldSubreddit, vs...))
}

// SubredditGT applies the GT predicate on the "subreddit" field.
func SubredditGT(v string) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldGT(FieldSubreddit, v))
}

// SubredditGTE applies the GTE predicate on the "subreddit" field.
func SubredditGTE(v string) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldGTE(FieldSubreddit, v))
}

// SubredditLT applies the LT predicate on the "subreddit" field.
func SubredditLT(v string) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldLT(FieldSubreddit, v))
}

// SubredditLTE applies the LTE predicate on the "subreddit" field.
func SubredditLTE(v string) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldLTE(FieldSubreddit, v))
}

// SubredditContains applies the Contains predicate on the "subreddit" field.
func SubredditContains(v string) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldContains(FieldSubreddit, v))
}

// SubredditHasPrefix applies the HasPrefix predicate on the "subreddit" field.
func SubredditHasPrefix(v string) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldHasPrefix(FieldSubreddit, v))
}

// SubredditHasSuffix applies the HasSuffix predicate on the "subreddit" field.
func SubredditHasSuffix(v string) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldHasSuffix(FieldSubreddit, v))
}

// SubredditEqualFold applies the EqualFold predicate on the "subreddit" field.
func SubredditEqualFold(v string) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldEqualFold(FieldSubreddit, v))
}

// SubredditContainsFold applies the ContainsFold predicate on the "subreddit" field.
func SubredditContainsFold(v string) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldContainsFold(FieldSubreddit, v))
}

// GoalAmountEQ applies the EQ predicate on the "goal_amount" field.
func GoalAmountEQ(v int64) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldEQ(FieldGoalAmount, v))
}

// GoalAmountNEQ applies the NEQ predicate on the "goal_amount" field.
func GoalAmountNEQ(v int64) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldNEQ(FieldGoalAmount, v))
}

// GoalAmountIn applies the In predicate on the "goal_amount" field.
func GoalAmountIn(vs ...int64) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldIn(FieldGoalAmount, vs...))
}

// GoalAmountNotIn applies the NotIn predicate on the "goal_amount" field.
func GoalAmountNotIn(vs ...int64) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldNotIn(FieldGoalAmount, vs...))
}

// GoalAmountGT applies the GT predicate on the "goal_amount" field.
func GoalAmountGT(v int64) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldGT(FieldGoalAmount, v))
}

// GoalAmountGTE applies the GTE predicate on the "goal_amount" field.
func GoalAmountGTE(v int64) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldGTE(FieldGoalAmount, v))
}

// GoalAmountLT applies the LT predicate on the "goal_amount" field.
func GoalAmountLT(v int64) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldLT(FieldGoalAmount, v))
}

// GoalAmountLTE applies the LTE predicate on the "goal_amount" field.
func GoalAmountLTE(v int64) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldLTE(FieldGoalAmount, v))
}

// CurrentAmountEQ applies the EQ predicate on the "current_amount" field.
func CurrentAmountEQ(v int64) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldEQ(FieldCurrentAmount, v))
}

// CurrentAmountNEQ applies the NEQ predicate on the "current_amount" field.
func CurrentAmountNEQ(v int64) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldNEQ(FieldCurrentAmount, v))
}

// CurrentAmountIn applies the In predicate on the "current_amount" field.
func CurrentAmountIn(vs ...int64) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldIn(FieldCurrentAmount, vs...))
}

// CurrentAmountNotIn applies the NotIn predicate on the "current_amount" field.
func CurrentAmountNotIn(vs ...int64) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldNotIn(FieldCurrentAmount, vs...))
}

// CurrentAmountGT applies the GT predicate on the "current_amount" field.
func CurrentAmountGT(v int64) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldGT(FieldCurrentAmount, v))
}

// CurrentAmountGTE applies the GTE predicate on the "current_amount" field.
func CurrentAmountGTE(v int64) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldGTE(FieldCurrentAmount, v))
}

// CurrentAmountLT applies the LT predicate on the "current_amount" field.
func CurrentAmountLT(v int64) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldLT(FieldCurrentAmount, v))
}

// CurrentAmountLTE applies the LTE predicate on the "current_amount" field.
func CurrentAmountLTE(v int64) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldLTE(FieldCurrentAmount, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldNotIn(FieldStatus, vs...))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldNotNull(FieldCompletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SubredditGoal) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SubredditGoal) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SubredditGoal) predicate.SubredditGoal {
	return predicate.SubredditGoal(sql.NotPredicates(p))
}
