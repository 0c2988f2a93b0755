package services

import (
	"context"
	"fmt"

	"github.com/redditart/commissioner/ent"
	"github.com/redditart/commissioner/ent/donation"
	"github.com/redditart/commissioner/pkg/models"
)

// DonationService owns donation rows and their forward-only status machine.
type DonationService struct {
	client *ent.Client
}

// NewDonationService creates a new DonationService
func NewDonationService(client *ent.Client) *DonationService {
	return &DonationService{client: client}
}

// statusRank orders donation statuses. Transitions only move to a strictly
// higher rank; duplicate webhooks replaying the current status are no-ops.
func statusRank(status donation.Status) int {
	switch status {
	case donation.StatusPending:
		return 0
	case donation.StatusSucceeded, donation.StatusFailed:
		return 1
	case donation.StatusRefunded:
		return 2
	default:
		return -1
	}
}

// UpsertByIntent inserts or updates a donation keyed on its payment-intent
// id. The row lock serializes concurrent webhooks for the same intent, and
// the rank check makes replays idempotent: a duplicate or out-of-order
// webhook never moves the status backward.
func (s *DonationService) UpsertByIntent(ctx context.Context, req models.UpsertDonationRequest) (*ent.Donation, error) {
	if req.PaymentIntentID == "" {
		return nil, NewValidationError("payment_intent_id", "is required")
	}
	newStatus := donation.Status(req.Status)
	if statusRank(newStatus) < 0 {
		return nil, NewValidationError("status", fmt.Sprintf("unknown status %q", req.Status))
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	existing, err := tx.Donation.Query().
		Where(donation.PaymentIntentID(req.PaymentIntentID)).
		ForUpdate().
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query donation: %w", err)
	}

	var result *ent.Donation
	if existing == nil {
		create := tx.Donation.Create().
			SetPaymentIntentID(req.PaymentIntentID).
			SetAmount(req.Amount).
			SetStatus(newStatus).
			SetType(donation.Type(req.Type)).
			SetIsAnonymous(req.IsAnonymous)
		if req.Currency != "" {
			create.SetCurrency(req.Currency)
		}
		if req.CommissionType != "" {
			create.SetCommissionType(donation.CommissionType(req.CommissionType))
		}
		if req.PostID != "" {
			create.SetPostID(req.PostID)
		}
		if req.Subreddit != "" {
			create.SetSubreddit(req.Subreddit)
		}
		if req.Message != "" {
			create.SetMessage(req.Message)
		}
		if req.RedditHandle != "" {
			create.SetRedditHandle(req.RedditHandle)
		}
		if req.Tier != "" {
			create.SetTier(req.Tier)
		}
		if req.Source != "" {
			create.SetSource(donation.Source(req.Source))
		}
		result, err = create.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create donation: %w", err)
		}
	} else if statusRank(newStatus) > statusRank(existing.Status) {
		update := existing.Update().SetStatus(newStatus)
		if req.Amount > 0 {
			update.SetAmount(req.Amount)
		}
		if req.Tier != "" {
			update.SetTier(req.Tier)
		}
		result, err = update.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update donation: %w", err)
		}
	} else {
		// Duplicate or stale webhook.
		result = existing
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit donation upsert: %w", err)
	}
	return result, nil
}

// GetByIntentID fetches a donation by payment-intent id.
func (s *DonationService) GetByIntentID(ctx context.Context, intentID string) (*ent.Donation, error) {
	d, err := s.client.Donation.Query().
		Where(donation.PaymentIntentID(intentID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get donation: %w", err)
	}
	return d, nil
}

// GetByID fetches a donation by id.
func (s *DonationService) GetByID(ctx context.Context, id string) (*ent.Donation, error) {
	d, err := s.client.Donation.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get donation: %w", err)
	}
	return d, nil
}

// ListSucceededBySubreddit returns succeeded donations attributed to one
// subreddit, newest first.
func (s *DonationService) ListSucceededBySubreddit(ctx context.Context, subreddit string) ([]*ent.Donation, error) {
	ds, err := s.client.Donation.Query().
		Where(
			donation.SubredditEQ(subreddit),
			donation.StatusEQ(donation.StatusSucceeded),
		).
		Order(ent.Desc(donation.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}
	return ds, nil
}

// ListSucceeded returns all succeeded donations, newest first.
func (s *DonationService) ListSucceeded(ctx context.Context) ([]*ent.Donation, error) {
	ds, err := s.client.Donation.Query().
		Where(donation.StatusEQ(donation.StatusSucceeded)).
		Order(ent.Desc(donation.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}
	return ds, nil
}

// List returns succeeded donations newest first with the total count.
func (s *DonationService) List(ctx context.Context, limit, offset int) ([]*ent.Donation, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := s.client.Donation.Query().
		Where(donation.StatusEQ(donation.StatusSucceeded))

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count donations: %w", err)
	}

	ds, err := query.
		Order(ent.Desc(donation.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list donations: %w", err)
	}
	return ds, total, nil
}

// Summary converts a donation row to its public view. Anonymous donations
// hide the reddit handle.
func Summary(d *ent.Donation) models.DonationSummary {
	s := models.DonationSummary{
		ID:          d.ID,
		Amount:      d.Amount,
		Currency:    d.Currency,
		Status:      string(d.Status),
		Type:        string(d.Type),
		IsAnonymous: d.IsAnonymous,
		CreatedAt:   d.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if d.Tier != nil {
		s.Tier = *d.Tier
	}
	if d.CommissionType != donation.CommissionTypeNone {
		s.CommissionType = string(d.CommissionType)
	}
	if d.Subreddit != nil {
		s.Subreddit = *d.Subreddit
	}
	if d.Message != nil {
		s.Message = *d.Message
	}
	if !d.IsAnonymous && d.RedditHandle != nil {
		s.RedditHandle = *d.RedditHandle
	}
	return s
}
