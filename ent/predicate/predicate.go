// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentAction is the predicate function for agentaction builders.
type AgentAction func(*sql.Selector)

// Donation is the predicate function for donation builders.
type Donation func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// PipelineTask is the predicate function for pipelinetask builders.
type PipelineTask func(*sql.Selector)

// ProductInfo is the predicate function for productinfo builders.
type ProductInfo func(*sql.Selector)

// ProgressEvent is the predicate function for progressevent builders.
type ProgressEvent func(*sql.Selector)

// RedditPost is the predicate function for redditpost builders.
type RedditPost func(*sql.Selector)

// Subreddit is the predicate function for subreddit builders.
type Subreddit func(*sql.Selector)

// SubredditGoal is the predicate function for subredditgoal builders.
type SubredditGoal func(*sql.Selector)

// Tier is the predicate function for tier builders.
type Tier func(*sql.Selector)
