// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/redditart/commissioner/ent/agentaction"
	"github.com/redditart/commissioner/ent/donation"
	"github.com/redditart/commissioner/ent/event"
	"github.com/redditart/commissioner/ent/pipelinetask"
	"github.com/redditart/commissioner/ent/productinfo"
	"github.com/redditart/commissioner/ent/progressevent"
	"github.com/redditart/commissioner/ent/redditpost"
	"github.com/redditart/commissioner/ent/schema"
	"github.com/redditart/commissioner/ent/subreddit"
	"github.com/redditart/commissioner/ent/subredditgoal"
	"github.com/redditart/commissioner/ent/tier"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentactionFields := schema.AgentAction{}.Fields()
	_ = agentactionFields
	// agentactionDescDryRun is the schema descriptor for dry_run field.
	agentactionDescDryRun := agentactionFields[3].Descriptor()
	// agentaction.DefaultDryRun holds the default value on creation for the dry_run field.
	agentaction.DefaultDryRun = agentactionDescDryRun.Default.(bool)
	// agentactionDescCreatedAt is the schema descriptor for created_at field.
	agentactionDescCreatedAt := agentactionFields[5].Descriptor()
	// agentaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentaction.DefaultCreatedAt = agentactionDescCreatedAt.Default.(func() time.Time)
	donationFields := schema.Donation{}.Fields()
	_ = donationFields
	// donationDescCurrency is the schema descriptor for currency field.
	donationDescCurrency := donationFields[3].Descriptor()
	// donation.DefaultCurrency holds the default value on creation for the currency field.
	donation.DefaultCurrency = donationDescCurrency.Default.(string)
	// donationDescMessage is the schema descriptor for message field.
	donationDescMessage := donationFields[9].Descriptor()
	// donation.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	donation.MessageValidator = donationDescMessage.Validators[0].(func(string) error)
	// donationDescRedditHandle is the schema descriptor for reddit_handle field.
	donationDescRedditHandle := donationFields[10].Descriptor()
	// donation.RedditHandleValidator is a validator for the "reddit_handle" field. It is called by the builders before save.
	donation.RedditHandleValidator = donationDescRedditHandle.Validators[0].(func(string) error)
	// donationDescIsAnonymous is the schema descriptor for is_anonymous field.
	donationDescIsAnonymous := donationFields[11].Descriptor()
	// donation.DefaultIsAnonymous holds the default value on creation for the is_anonymous field.
	donation.DefaultIsAnonymous = donationDescIsAnonymous.Default.(bool)
	// donationDescApplied is the schema descriptor for applied field.
	donationDescApplied := donationFields[14].Descriptor()
	// donation.DefaultApplied holds the default value on creation for the applied field.
	donation.DefaultApplied = donationDescApplied.Default.(bool)
	// donationDescCreatedAt is the schema descriptor for created_at field.
	donationDescCreatedAt := donationFields[15].Descriptor()
	// donation.DefaultCreatedAt holds the default value on creation for the created_at field.
	donation.DefaultCreatedAt = donationDescCreatedAt.Default.(func() time.Time)
	// donationDescUpdatedAt is the schema descriptor for updated_at field.
	donationDescUpdatedAt := donationFields[16].Descriptor()
	// donation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	donation.DefaultUpdatedAt = donationDescUpdatedAt.Default.(func() time.Time)
	// donation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	donation.UpdateDefaultUpdatedAt = donationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// donationDescID is the schema descriptor for id field.
	donationDescID := donationFields[0].Descriptor()
	// donation.DefaultID holds the default value on creation for the id field.
	donation.DefaultID = donationDescID.Default.(func() string)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	pipelinetaskFields := schema.PipelineTask{}.Fields()
	_ = pipelinetaskFields
	// pipelinetaskDescPriority is the schema descriptor for priority field.
	pipelinetaskDescPriority := pipelinetaskFields[4].Descriptor()
	// pipelinetask.DefaultPriority holds the default value on creation for the priority field.
	pipelinetask.DefaultPriority = pipelinetaskDescPriority.Default.(int)
	// pipelinetaskDescAttempt is the schema descriptor for attempt field.
	pipelinetaskDescAttempt := pipelinetaskFields[5].Descriptor()
	// pipelinetask.DefaultAttempt holds the default value on creation for the attempt field.
	pipelinetask.DefaultAttempt = pipelinetaskDescAttempt.Default.(int)
	// pipelinetaskDescCreatedAt is the schema descriptor for created_at field.
	pipelinetaskDescCreatedAt := pipelinetaskFields[17].Descriptor()
	// pipelinetask.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipelinetask.DefaultCreatedAt = pipelinetaskDescCreatedAt.Default.(func() time.Time)
	// pipelinetaskDescUpdatedAt is the schema descriptor for updated_at field.
	pipelinetaskDescUpdatedAt := pipelinetaskFields[20].Descriptor()
	// pipelinetask.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pipelinetask.DefaultUpdatedAt = pipelinetaskDescUpdatedAt.Default.(func() time.Time)
	// pipelinetask.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pipelinetask.UpdateDefaultUpdatedAt = pipelinetaskDescUpdatedAt.UpdateDefault.(func() time.Time)
	// pipelinetaskDescID is the schema descriptor for id field.
	pipelinetaskDescID := pipelinetaskFields[0].Descriptor()
	// pipelinetask.DefaultID holds the default value on creation for the id field.
	pipelinetask.DefaultID = pipelinetaskDescID.Default.(func() string)
	productinfoFields := schema.ProductInfo{}.Fields()
	_ = productinfoFields
	// productinfoDescCreatedAt is the schema descriptor for created_at field.
	productinfoDescCreatedAt := productinfoFields[12].Descriptor()
	// productinfo.DefaultCreatedAt holds the default value on creation for the created_at field.
	productinfo.DefaultCreatedAt = productinfoDescCreatedAt.Default.(func() time.Time)
	// productinfoDescID is the schema descriptor for id field.
	productinfoDescID := productinfoFields[0].Descriptor()
	// productinfo.DefaultID holds the default value on creation for the id field.
	productinfo.DefaultID = productinfoDescID.Default.(func() string)
	progresseventFields := schema.ProgressEvent{}.Fields()
	_ = progresseventFields
	// progresseventDescPercent is the schema descriptor for percent field.
	progresseventDescPercent := progresseventFields[3].Descriptor()
	// progressevent.PercentValidator is a validator for the "percent" field. It is called by the builders before save.
	progressevent.PercentValidator = func() func(int) error {
		validators := progresseventDescPercent.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(percent int) error {
			for _, fn := range fns {
				if err := fn(percent); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// progresseventDescCreatedAt is the schema descriptor for created_at field.
	progresseventDescCreatedAt := progresseventFields[4].Descriptor()
	// progressevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	progressevent.DefaultCreatedAt = progresseventDescCreatedAt.Default.(func() time.Time)
	redditpostFields := schema.RedditPost{}.Fields()
	_ = redditpostFields
	// redditpostDescScore is the schema descriptor for score field.
	redditpostDescScore := redditpostFields[4].Descriptor()
	// redditpost.DefaultScore holds the default value on creation for the score field.
	redditpost.DefaultScore = redditpostDescScore.Default.(int)
	// redditpostDescNumComments is the schema descriptor for num_comments field.
	redditpostDescNumComments := redditpostFields[5].Descriptor()
	// redditpost.DefaultNumComments holds the default value on creation for the num_comments field.
	redditpost.DefaultNumComments = redditpostDescNumComments.Default.(int)
	// redditpostDescOver18 is the schema descriptor for over_18 field.
	redditpostDescOver18 := redditpostFields[7].Descriptor()
	// redditpost.DefaultOver18 holds the default value on creation for the over_18 field.
	redditpost.DefaultOver18 = redditpostDescOver18.Default.(bool)
	// redditpostDescCreatedAt is the schema descriptor for created_at field.
	redditpostDescCreatedAt := redditpostFields[10].Descriptor()
	// redditpost.DefaultCreatedAt holds the default value on creation for the created_at field.
	redditpost.DefaultCreatedAt = redditpostDescCreatedAt.Default.(func() time.Time)
	subredditFields := schema.Subreddit{}.Fields()
	_ = subredditFields
	// subredditDescOver18 is the schema descriptor for over_18 field.
	subredditDescOver18 := subredditFields[2].Descriptor()
	// subreddit.DefaultOver18 holds the default value on creation for the over_18 field.
	subreddit.DefaultOver18 = subredditDescOver18.Default.(bool)
	// subredditDescCreatedAt is the schema descriptor for created_at field.
	subredditDescCreatedAt := subredditFields[3].Descriptor()
	// subreddit.DefaultCreatedAt holds the default value on creation for the created_at field.
	subreddit.DefaultCreatedAt = subredditDescCreatedAt.Default.(func() time.Time)
	subredditgoalFields := schema.SubredditGoal{}.Fields()
	_ = subredditgoalFields
	// subredditgoalDescCurrentAmount is the schema descriptor for current_amount field.
	subredditgoalDescCurrentAmount := subredditgoalFields[2].Descriptor()
	// subredditgoal.DefaultCurrentAmount holds the default value on creation for the current_amount field.
	subredditgoal.DefaultCurrentAmount = subredditgoalDescCurrentAmount.Default.(int64)
	// subredditgoalDescCreatedAt is the schema descriptor for created_at field.
	subredditgoalDescCreatedAt := subredditgoalFields[5].Descriptor()
	// subredditgoal.DefaultCreatedAt holds the default value on creation for the created_at field.
	subredditgoal.DefaultCreatedAt = subredditgoalDescCreatedAt.Default.(func() time.Time)
	// subredditgoalDescUpdatedAt is the schema descriptor for updated_at field.
	subredditgoalDescUpdatedAt := subredditgoalFields[6].Descriptor()
	// subredditgoal.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subredditgoal.DefaultUpdatedAt = subredditgoalDescUpdatedAt.Default.(func() time.Time)
	// subredditgoal.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	subredditgoal.UpdateDefaultUpdatedAt = subredditgoalDescUpdatedAt.UpdateDefault.(func() time.Time)
	tierFields := schema.Tier{}.Fields()
	_ = tierFields
	// tierDescHd is the schema descriptor for hd field.
	tierDescHd := tierFields[4].Descriptor()
	// tier.DefaultHd holds the default value on creation for the hd field.
	tier.DefaultHd = tierDescHd.Default.(bool)
}
