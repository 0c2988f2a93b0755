package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redditart/commissioner/ent"
	"github.com/redditart/commissioner/ent/agentaction"
)

// AgentActionService records agent decisions and answers dedup queries.
type AgentActionService struct {
	client *ent.Client
}

// NewAgentActionService creates a new AgentActionService
func NewAgentActionService(client *ent.Client) *AgentActionService {
	return &AgentActionService{client: client}
}

// RecordActionRequest is one agent decision.
type RecordActionRequest struct {
	AgentID  string
	TargetID string
	Kind     string
	DryRun   bool
	Rating   map[string]interface{}
}

// Record appends an action.
func (s *AgentActionService) Record(ctx context.Context, req RecordActionRequest) (*ent.AgentAction, error) {
	if req.AgentID == "" || req.TargetID == "" || req.Kind == "" {
		return nil, NewValidationError("agent_action", "agent_id, target_id, and kind are required")
	}

	create := s.client.AgentAction.Create().
		SetAgentID(req.AgentID).
		SetTargetID(req.TargetID).
		SetKind(req.Kind).
		SetDryRun(req.DryRun)
	if req.Rating != nil {
		create.SetRating(req.Rating)
	}

	action, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record agent action: %w", err)
	}
	return action, nil
}

// HasRecentAction reports whether the agent already acted on the target
// within the window. Dry-run actions count: re-running in dry-run mode
// should not re-analyze the same targets either.
func (s *AgentActionService) HasRecentAction(ctx context.Context, agentID, targetID string, window time.Duration) (bool, error) {
	cutoff := time.Now().Add(-window)
	exists, err := s.client.AgentAction.Query().
		Where(
			agentaction.AgentIDEQ(agentID),
			agentaction.TargetIDEQ(targetID),
			agentaction.CreatedAtGTE(cutoff),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check recent actions: %w", err)
	}
	return exists, nil
}

// ListRecent returns an agent's actions within the window, newest first.
func (s *AgentActionService) ListRecent(ctx context.Context, agentID string, window time.Duration) ([]*ent.AgentAction, error) {
	cutoff := time.Now().Add(-window)
	actions, err := s.client.AgentAction.Query().
		Where(
			agentaction.AgentIDEQ(agentID),
			agentaction.CreatedAtGTE(cutoff),
		).
		Order(ent.Desc(agentaction.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agent actions: %w", err)
	}
	return actions, nil
}
