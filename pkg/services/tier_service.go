package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/redditart/commissioner/ent"
	"github.com/redditart/commissioner/ent/tier"
)

// TierService resolves donation amounts to tiers. Tiers are seeded by
// migration and effectively static, so they are loaded once and cached for
// the process lifetime.
type TierService struct {
	client *ent.Client

	mu    sync.Mutex
	tiers []*ent.Tier // descending by min_amount, populated lazily
}

// NewTierService creates a new TierService
func NewTierService(client *ent.Client) *TierService {
	return &TierService{client: client}
}

// List returns all tiers, highest first.
func (s *TierService) List(ctx context.Context) ([]*ent.Tier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tiers != nil {
		return s.tiers, nil
	}
	tiers, err := s.client.Tier.Query().
		Order(ent.Desc(tier.FieldMinAmount)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tiers: %w", err)
	}
	s.tiers = tiers
	return tiers, nil
}

// ForAmount returns the highest tier the amount reaches, or nil when the
// amount is below every tier.
func (s *TierService) ForAmount(ctx context.Context, amount int64) (*ent.Tier, error) {
	tiers, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range tiers {
		if amount >= t.MinAmount {
			return t, nil
		}
	}
	return nil, nil
}

// IsHD reports whether a tier name commissions hd-quality images.
func (s *TierService) IsHD(ctx context.Context, tierName string) (bool, error) {
	if tierName == "" {
		return false, nil
	}
	tiers, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	for _, t := range tiers {
		if t.Name == tierName {
			return t.Hd, nil
		}
	}
	return false, nil
}
