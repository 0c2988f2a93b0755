package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	echo "github.com/labstack/echo/v5"

	"github.com/redditart/commissioner/ent"
	"github.com/redditart/commissioner/pkg/events"
	"github.com/redditart/commissioner/pkg/models"
	"github.com/redditart/commissioner/pkg/payment"
	"github.com/redditart/commissioner/pkg/services"
)

// maxWebhookBody bounds the webhook request body.
const maxWebhookBody = 64 * 1024

// webhookHandler handles POST /api/donations/webhook. Signature failures are
// 400 (the gateway will not retry); transient persistence failures are 500
// (the gateway retries with backoff). The whole admission path is idempotent,
// so replays converge on the same state.
func (s *Server) webhookHandler(c *echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read request body")
	}

	event, err := s.gateway.HandleWebhook(body, c.Request().Header.Get("Stripe-Signature"))
	if err != nil {
		return mapServiceError(err)
	}
	if event.Kind == payment.WebhookIgnored {
		return c.JSON(http.StatusOK, &WebhookResponse{Received: true})
	}

	ctx := c.Request().Context()
	req := upsertFromEvent(event)

	// The tier is re-resolved from the amount actually charged. Intent
	// metadata is written by our own endpoints, but nothing stops a crafted
	// event from claiming a tier the payment never reached.
	tier, err := s.tiers.ForAmount(ctx, event.Amount)
	if err != nil {
		return mapServiceError(err)
	}
	if tier != nil {
		req.Tier = tier.Name
	}

	donation, err := s.donations.UpsertByIntent(ctx, req)
	if err != nil {
		return mapServiceError(err)
	}

	resp := &WebhookResponse{Received: true}
	if event.Kind == payment.WebhookPaymentSucceeded {
		taskID, err := s.admitCommission(ctx, donation, event.Metadata)
		if err != nil {
			return mapServiceError(err)
		}
		resp.TaskID = taskID

		if _, err := s.ledger.ApplyDonation(ctx, donation.ID); err != nil {
			return mapServiceError(err)
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// upsertFromEvent maps a verified webhook event onto the donation upsert.
func upsertFromEvent(event *payment.WebhookEvent) models.UpsertDonationRequest {
	md := event.Metadata
	status := "succeeded"
	if event.Kind == payment.WebhookPaymentFailed {
		status = "failed"
	}

	donationType := md["donation_type"]
	if donationType == "" {
		donationType = models.DonationTypeSupport
	}

	return models.UpsertDonationRequest{
		PaymentIntentID: event.IntentID,
		Amount:          event.Amount,
		Currency:        event.Currency,
		Status:          status,
		Type:            donationType,
		CommissionType:  md["commission_type"],
		PostID:          md["post_id"],
		Subreddit:       md["subreddit"],
		Message:         clip(md["message"], maxMessageLen),
		RedditHandle:    clip(md["reddit_username"], maxRedditUsernameLen),
		IsAnonymous:     md["is_anonymous"] == "true",
		Source:          models.DonationSourceStripe,
	}
}

// clip bounds a metadata field to its column limit without splitting a UTF-8
// sequence. An over-long field in an externally delivered event must degrade
// to truncation, not to a storage error the gateway would retry forever.
func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

// admitCommission enqueues the pipeline task for a succeeded commission
// donation. Support donations and replayed webhooks enqueue nothing; the
// existing task id is returned on replay so the response stays stable.
func (s *Server) admitCommission(ctx context.Context, donation *ent.Donation, md map[string]string) (string, error) {
	taskType := taskTypeFor(md["commission_type"])
	if taskType == "" {
		return "", nil
	}

	if existing, err := s.tasks.GetByDonationID(ctx, donation.ID); err == nil {
		return existing.ID, nil
	} else if !errors.Is(err, services.ErrNotFound) {
		return "", err
	}

	task, err := s.tasks.Enqueue(ctx, models.EnqueueTaskRequest{
		DonationID: donation.ID,
		Type:       taskType,
		Subreddit:  md["subreddit"],
		PostID:     md["post_id"],
		Priority:   models.PriorityCommission,
	})
	if err != nil {
		return "", err
	}

	s.announceTask(ctx, task)
	return task.ID, nil
}

// taskTypeFor maps a commission type to its task variant. Empty means no
// task is created.
func taskTypeFor(commissionType string) string {
	switch commissionType {
	case models.CommissionRandomSubreddit:
		return models.TaskTypeSubredditPost
	case models.CommissionRandomRandom:
		return models.TaskTypeFrontPage
	case models.CommissionSpecificPost:
		return models.TaskTypeSpecificPost
	default:
		return ""
	}
}

// announceTask publishes task_created on the global channel. Best-effort:
// admission already committed, and subscribers reconcile via catchup.
func (s *Server) announceTask(ctx context.Context, task *ent.PipelineTask) {
	if s.publisher == nil {
		return
	}

	payload := events.TaskCreatedPayload{
		Type:     events.EventTypeTaskCreated,
		TaskID:   task.ID,
		TaskType: string(task.Type),
		Priority: task.Priority,
		Data: events.TaskData{
			Status:    string(task.Status),
			Progress:  0,
			Timestamp: time.Now().Unix(),
		},
	}
	if task.Subreddit != nil {
		payload.Subreddit = *task.Subreddit
	}
	if err := s.publisher.PublishTaskCreated(ctx, payload); err != nil {
		slog.Warn("Failed to publish task_created", "task_id", task.ID, "error", err)
	}
}
