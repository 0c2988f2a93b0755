// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentActionsColumns holds the columns for the "agent_actions" table.
	AgentActionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "target_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "dry_run", Type: field.TypeBool, Default: false},
		{Name: "rating", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AgentActionsTable holds the schema information for the "agent_actions" table.
	AgentActionsTable = &schema.Table{
		Name:       "agent_actions",
		Columns:    AgentActionsColumns,
		PrimaryKey: []*schema.Column{AgentActionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentaction_agent_id_target_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentActionsColumns[1], AgentActionsColumns[2], AgentActionsColumns[6]},
			},
			{
				Name:    "agentaction_target_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentActionsColumns[2], AgentActionsColumns[6]},
			},
		},
	}
	// DonationsColumns holds the columns for the "donations" table.
	DonationsColumns = []*schema.Column{
		{Name: "donation_id", Type: field.TypeString, Unique: true},
		{Name: "payment_intent_id", Type: field.TypeString, Unique: true},
		{Name: "amount", Type: field.TypeInt64},
		{Name: "currency", Type: field.TypeString, Default: "usd"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "succeeded", "failed", "refunded"}, Default: "pending"},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"commission", "support"}, Default: "support"},
		{Name: "commission_type", Type: field.TypeEnum, Enums: []string{"random_random", "random_subreddit", "specific_post", "none"}, Default: "none"},
		{Name: "post_id", Type: field.TypeString, Nullable: true},
		{Name: "subreddit", Type: field.TypeString, Nullable: true},
		{Name: "message", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "reddit_handle", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "is_anonymous", Type: field.TypeBool, Default: false},
		{Name: "tier", Type: field.TypeString, Nullable: true},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"stripe", "manual"}, Default: "stripe"},
		{Name: "applied", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DonationsTable holds the schema information for the "donations" table.
	DonationsTable = &schema.Table{
		Name:       "donations",
		Columns:    DonationsColumns,
		PrimaryKey: []*schema.Column{DonationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "donation_status",
				Unique:  false,
				Columns: []*schema.Column{DonationsColumns[4]},
			},
			{
				Name:    "donation_subreddit",
				Unique:  false,
				Columns: []*schema.Column{DonationsColumns[8]},
			},
			{
				Name:    "donation_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{DonationsColumns[4], DonationsColumns[15]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[4]},
			},
			{
				Name:    "event_task_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
		},
	}
	// PipelineTasksColumns holds the columns for the "pipeline_tasks" table.
	PipelineTasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "donation_id", Type: field.TypeString, Nullable: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"subreddit_post", "front_page", "specific_post"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "attempt", Type: field.TypeInt, Default: 0},
		{Name: "subreddit", Type: field.TypeString, Nullable: true},
		{Name: "post_id", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "lease_owner", Type: field.TypeString, Nullable: true},
		{Name: "lease_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "not_before", Type: field.TypeTime, Nullable: true},
		{Name: "theme", Type: field.TypeString, Nullable: true},
		{Name: "image_title", Type: field.TypeString, Nullable: true},
		{Name: "image_description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "image_url", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PipelineTasksTable holds the schema information for the "pipeline_tasks" table.
	PipelineTasksTable = &schema.Table{
		Name:       "pipeline_tasks",
		Columns:    PipelineTasksColumns,
		PrimaryKey: []*schema.Column{PipelineTasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinetask_status",
				Unique:  false,
				Columns: []*schema.Column{PipelineTasksColumns[3]},
			},
			{
				Name:    "pipelinetask_donation_id",
				Unique:  false,
				Columns: []*schema.Column{PipelineTasksColumns[1]},
			},
			{
				Name:    "pipelinetask_status_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{PipelineTasksColumns[3], PipelineTasksColumns[4], PipelineTasksColumns[17]},
			},
			{
				Name:    "pipelinetask_status_lease_expires_at",
				Unique:  false,
				Columns: []*schema.Column{PipelineTasksColumns[3], PipelineTasksColumns[10]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'in_progress'",
				},
			},
		},
	}
	// ProductInfosColumns holds the columns for the "product_infos" table.
	ProductInfosColumns = []*schema.Column{
		{Name: "product_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "donation_id", Type: field.TypeString, Nullable: true},
		{Name: "post_id", Type: field.TypeString},
		{Name: "theme", Type: field.TypeString},
		{Name: "image_title", Type: field.TypeString},
		{Name: "image_url", Type: field.TypeString},
		{Name: "product_url", Type: field.TypeString},
		{Name: "template_id", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "prompt_version", Type: field.TypeString},
		{Name: "image_quality", Type: field.TypeEnum, Enums: []string{"standard", "hd"}, Default: "standard"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProductInfosTable holds the schema information for the "product_infos" table.
	ProductInfosTable = &schema.Table{
		Name:       "product_infos",
		Columns:    ProductInfosColumns,
		PrimaryKey: []*schema.Column{ProductInfosColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "productinfo_donation_id",
				Unique:  false,
				Columns: []*schema.Column{ProductInfosColumns[2]},
			},
			{
				Name:    "productinfo_post_id",
				Unique:  false,
				Columns: []*schema.Column{ProductInfosColumns[3]},
			},
		},
	}
	// ProgressEventsColumns holds the columns for the "progress_events" table.
	ProgressEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "stage", Type: field.TypeEnum, Enums: []string{"post_fetching", "post_fetched", "product_designed", "image_generation_started", "image_generated", "image_stamped", "commission_complete", "retrying", "failed", "cancelled"}},
		{Name: "message", Type: field.TypeString},
		{Name: "percent", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProgressEventsTable holds the schema information for the "progress_events" table.
	ProgressEventsTable = &schema.Table{
		Name:       "progress_events",
		Columns:    ProgressEventsColumns,
		PrimaryKey: []*schema.Column{ProgressEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progressevent_task_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[1], ProgressEventsColumns[5]},
			},
		},
	}
	// RedditPostsColumns holds the columns for the "reddit_posts" table.
	RedditPostsColumns = []*schema.Column{
		{Name: "post_id", Type: field.TypeString, Unique: true},
		{Name: "subreddit", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "num_comments", Type: field.TypeInt, Default: 0},
		{Name: "permalink", Type: field.TypeString},
		{Name: "over_18", Type: field.TypeBool, Default: false},
		{Name: "comment_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// RedditPostsTable holds the schema information for the "reddit_posts" table.
	RedditPostsTable = &schema.Table{
		Name:       "reddit_posts",
		Columns:    RedditPostsColumns,
		PrimaryKey: []*schema.Column{RedditPostsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "redditpost_subreddit",
				Unique:  false,
				Columns: []*schema.Column{RedditPostsColumns[1]},
			},
			{
				Name:    "redditpost_last_used_at",
				Unique:  false,
				Columns: []*schema.Column{RedditPostsColumns[9]},
			},
		},
	}
	// SubredditsColumns holds the columns for the "subreddits" table.
	SubredditsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString},
		{Name: "over_18", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SubredditsTable holds the schema information for the "subreddits" table.
	SubredditsTable = &schema.Table{
		Name:       "subreddits",
		Columns:    SubredditsColumns,
		PrimaryKey: []*schema.Column{SubredditsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "subreddit_name",
				Unique:  true,
				Columns: []*schema.Column{SubredditsColumns[1]},
			},
		},
	}
	// SubredditGoalsColumns holds the columns for the "subreddit_goals" table.
	SubredditGoalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "subreddit", Type: field.TypeString, Unique: true},
		{Name: "goal_amount", Type: field.TypeInt64},
		{Name: "current_amount", Type: field.TypeInt64, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "completed"}, Default: "active"},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SubredditGoalsTable holds the schema information for the "subreddit_goals" table.
	SubredditGoalsTable = &schema.Table{
		Name:       "subreddit_goals",
		Columns:    SubredditGoalsColumns,
		PrimaryKey: []*schema.Column{SubredditGoalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "subredditgoal_status",
				Unique:  false,
				Columns: []*schema.Column{SubredditGoalsColumns[4]},
			},
		},
	}
	// TiersColumns holds the columns for the "tiers" table.
	TiersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "min_amount", Type: field.TypeInt64},
		{Name: "display_name", Type: field.TypeString},
		{Name: "color", Type: field.TypeString, Nullable: true},
		{Name: "hd", Type: field.TypeBool, Default: false},
	}
	// TiersTable holds the schema information for the "tiers" table.
	TiersTable = &schema.Table{
		Name:       "tiers",
		Columns:    TiersColumns,
		PrimaryKey: []*schema.Column{TiersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentActionsTable,
		DonationsTable,
		EventsTable,
		PipelineTasksTable,
		ProductInfosTable,
		ProgressEventsTable,
		RedditPostsTable,
		SubredditsTable,
		SubredditGoalsTable,
		TiersTable,
	}
)

func init() {
}
