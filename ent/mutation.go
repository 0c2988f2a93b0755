// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/redditart/commissioner/ent/agentaction"
	"github.com/redditart/commissioner/ent/donation"
	"github.com/redditart/commissioner/ent/event"
	"github.com/redditart/commissioner/ent/pipelinetask"
	"github.com/redditart/commissioner/ent/predicate"
	"github.com/redditart/commissioner/ent/productinfo"
	"github.com/redditart/commissioner/ent/progressevent"
	"github.com/redditart/commissioner/ent/redditpost"
	"github.com/redditart/commissioner/ent/subreddit"
	"github.com/redditart/commissioner/ent/subredditgoal"
	"github.com/redditart/commissioner/ent/tier"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentAction   = "AgentAction"
	TypeDonation      = "Donation"
	TypeEvent         = "Event"
	TypePipelineTask  = "PipelineTask"
	TypeProductInfo   = "ProductInfo"
	TypeProgressEvent = "ProgressEvent"
	TypeRedditPost    = "RedditPost"
	TypeSubreddit     = "Subreddit"
	TypeSubredditGoal = "SubredditGoal"
	TypeTier          = "Tier"
)

// AgentActionMutation represents an operation that mutates the AgentAction nodes in the graph.
type AgentActionMutation struct {
	config
	op            Op
	typ           string
	id            *int
	agent_id      *string
	target_id     *string
	kind          *string
	dry_run       *bool
	rating        *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AgentAction, error)
	predicates    []predicate.AgentAction
}

var _ ent.Mutation = (*AgentActionMutation)(nil)

// agentactionOption allows management of the mutation configuration using functional options.
type agentactionOption func(*AgentActionMutation)

// newAgentActionMutation creates new mutation for the AgentAction entity.
func newAgentActionMutation(c config, op Op, opts ...agentactionOption) *AgentActionMutation {
	m := &AgentActionMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentAction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentActionID sets the ID field of the mutation.
func withAgentActionID(id int) agentactionOption {
	return func(m *AgentActionMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentAction
		)
		m.oldValue = func(ctx context.Context) (*AgentAction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentAction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentAction sets the old AgentAction of the mutation.
func withAgentAction(node *AgentAction) agentactionOption {
	return func(m *AgentActionMutation) {
		m.oldValue = func(context.Context) (*AgentAction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentActionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentActionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentActionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentActionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentAction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *AgentActionMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *AgentActionMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the AgentAction entity.
// If the AgentAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentActionMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *AgentActionMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetTargetID sets the "target_id" field.
func (m *AgentActionMutation) SetTargetID(s string) {
	m.target_id = &s
}

// TargetID returns the value of the "target_id" field in the mutation.
func (m *AgentActionMutation) TargetID() (r string, exists bool) {
	v := m.target_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetID returns the old "target_id" field's value of the AgentAction entity.
// If the AgentAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentActionMutation) OldTargetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetID: %w", err)
	}
	return oldValue.TargetID, nil
}

// ResetTargetID resets all changes to the "target_id" field.
func (m *AgentActionMutation) ResetTargetID() {
	m.target_id = nil
}

// SetKind sets the "kind" field.
func (m *AgentActionMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *AgentActionMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the AgentAction entity.
// If the AgentAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentActionMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *AgentActionMutation) ResetKind() {
	m.kind = nil
}

// SetDryRun sets the "dry_run" field.
func (m *AgentActionMutation) SetDryRun(b bool) {
	m.dry_run = &b
}

// DryRun returns the value of the "dry_run" field in the mutation.
func (m *AgentActionMutation) DryRun() (r bool, exists bool) {
	v := m.dry_run
	if v == nil {
		return
	}
	return *v, true
}

// OldDryRun returns the old "dry_run" field's value of the AgentAction entity.
// If the AgentAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentActionMutation) OldDryRun(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDryRun is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDryRun requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDryRun: %w", err)
	}
	return oldValue.DryRun, nil
}

// ResetDryRun resets all changes to the "dry_run" field.
func (m *AgentActionMutation) ResetDryRun() {
	m.dry_run = nil
}

// SetRating sets the "rating" field.
func (m *AgentActionMutation) SetRating(value map[string]interface{}) {
	m.rating = &value
}

// Rating returns the value of the "rating" field in the mutation.
func (m *AgentActionMutation) Rating() (r map[string]interface{}, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the AgentAction entity.
// If the AgentAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentActionMutation) OldRating(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// ClearRating clears the value of the "rating" field.
func (m *AgentActionMutation) ClearRating() {
	m.rating = nil
	m.clearedFields[agentaction.FieldRating] = struct{}{}
}

// RatingCleared returns if the "rating" field was cleared in this mutation.
func (m *AgentActionMutation) RatingCleared() bool {
	_, ok := m.clearedFields[agentaction.FieldRating]
	return ok
}

// ResetRating resets all changes to the "rating" field.
func (m *AgentActionMutation) ResetRating() {
	m.rating = nil
	delete(m.clearedFields, agentaction.FieldRating)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentActionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentActionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentAction entity.
// If the AgentAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentActionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentActionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AgentActionMutation builder.
func (m *AgentActionMutation) Where(ps ...predicate.AgentAction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentActionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentActionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentAction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentActionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentActionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentAction).
func (m *AgentActionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentActionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.agent_id != nil {
		fields = append(fields, agentaction.FieldAgentID)
	}
	if m.target_id != nil {
		fields = append(fields, agentaction.FieldTargetID)
	}
	if m.kind != nil {
		fields = append(fields, agentaction.FieldKind)
	}
	if m.dry_run != nil {
		fields = append(fields, agentaction.FieldDryRun)
	}
	if m.rating != nil {
		fields = append(fields, agentaction.FieldRating)
	}
	if m.created_at != nil {
		fields = append(fields, agentaction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentActionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentaction.FieldAgentID:
		return m.AgentID()
	case agentaction.FieldTargetID:
		return m.TargetID()
	case agentaction.FieldKind:
		return m.Kind()
	case agentaction.FieldDryRun:
		return m.DryRun()
	case agentaction.FieldRating:
		return m.Rating()
	case agentaction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentActionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentaction.FieldAgentID:
		return m.OldAgentID(ctx)
	case agentaction.FieldTargetID:
		return m.OldTargetID(ctx)
	case agentaction.FieldKind:
		return m.OldKind(ctx)
	case agentaction.FieldDryRun:
		return m.OldDryRun(ctx)
	case agentaction.FieldRating:
		return m.OldRating(ctx)
	case agentaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentAction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentActionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentaction.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case agentaction.FieldTargetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetID(v)
		return nil
	case agentaction.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case agentaction.FieldDryRun:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDryRun(v)
		return nil
	case agentaction.FieldRating:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case agentaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentAction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentActionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentActionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentActionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentAction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentActionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentaction.FieldRating) {
		fields = append(fields, agentaction.FieldRating)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentActionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentActionMutation) ClearField(name string) error {
	switch name {
	case agentaction.FieldRating:
		m.ClearRating()
		return nil
	}
	return fmt.Errorf("unknown AgentAction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentActionMutation) ResetField(name string) error {
	switch name {
	case agentaction.FieldAgentID:
		m.ResetAgentID()
		return nil
	case agentaction.FieldTargetID:
		m.ResetTargetID()
		return nil
	case agentaction.FieldKind:
		m.ResetKind()
		return nil
	case agentaction.FieldDryRun:
		m.ResetDryRun()
		return nil
	case agentaction.FieldRating:
		m.ResetRating()
		return nil
	case agentaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentAction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentActionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentActionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentActionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentActionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentActionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentActionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentActionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentAction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentActionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentAction edge %s", name)
}

// DonationMutation represents an operation that mutates the Donation nodes in the graph.
type DonationMutation struct {
	config
	op                Op
	typ               string
	id                *string
	payment_intent_id *string
	amount            *int64
	addamount         *int64
	currency          *string
	status            *donation.Status
	_type             *donation.Type
	commission_type   *donation.CommissionType
	post_id           *string
	subreddit         *string
	message           *string
	reddit_handle     *string
	is_anonymous      *bool
	tier              *string
	source            *donation.Source
	applied           *bool
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Donation, error)
	predicates        []predicate.Donation
}

var _ ent.Mutation = (*DonationMutation)(nil)

// donationOption allows management of the mutation configuration using functional options.
type donationOption func(*DonationMutation)

// newDonationMutation creates new mutation for the Donation entity.
func newDonationMutation(c config, op Op, opts ...donationOption) *DonationMutation {
	m := &DonationMutation{
		config:        c,
		op:            op,
		typ:           TypeDonation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDonationID sets the ID field of the mutation.
func withDonationID(id string) donationOption {
	return func(m *DonationMutation) {
		var (
			err   error
			once  sync.Once
			value *Donation
		)
		m.oldValue = func(ctx context.Context) (*Donation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Donation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDonation sets the old Donation of the mutation.
func withDonation(node *Donation) donationOption {
	return func(m *DonationMutation) {
		m.oldValue = func(context.Context) (*Donation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DonationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DonationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Donation entities.
func (m *DonationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DonationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DonationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Donation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPaymentIntentID sets the "payment_intent_id" field.
func (m *DonationMutation) SetPaymentIntentID(s string) {
	m.payment_intent_id = &s
}

// PaymentIntentID returns the value of the "payment_intent_id" field in the mutation.
func (m *DonationMutation) PaymentIntentID() (r string, exists bool) {
	v := m.payment_intent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentIntentID returns the old "payment_intent_id" field's value of the Donation entity.
// If the Donation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationMutation) OldPaymentIntentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentIntentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentIntentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentIntentID: %w", err)
	}
	return oldValue.PaymentIntentID, nil
}

// ResetPaymentIntentID resets all changes to the "payment_intent_id" field.
func (m *DonationMutation) ResetPaymentIntentID() {
	m.payment_intent_id = nil
}

// SetAmount sets the "amount" field.
func (m *DonationMutation) SetAmount(i int64) {
	m.amount = &i
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *DonationMutation) Amount() (r int64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the Donation entity.
// If the Donation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationMutation) OldAmount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds i to the "amount" field.
func (m *DonationMutation) AddAmount(i int64) {
	if m.addamount != nil {
		*m.addamount += i
	} else {
		m.addamount = &i
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *DonationMutation) AddedAmount() (r int64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *DonationMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetCurrency sets the "currency" field.
func (m *DonationMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *DonationMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the Donation entity.
// If the Donation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *DonationMutation) ResetCurrency() {
	m.currency = nil
}

// SetStatus sets the "status" field.
func (m *DonationMutation) SetStatus(d donation.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DonationMutation) Status() (r donation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Donation entity.
// If the Donation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationMutation) OldStatus(ctx context.Context) (v donation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DonationMutation) ResetStatus() {
	m.status = nil
}

// SetType sets the "type" field.
func (m *DonationMutation) SetType(d donation.Type) {
	m._type = &d
}

// GetType returns the value of the "type" field in the mutation.
func (m *DonationMutation) GetType() (r donation.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Donation entity.
// If the Donation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationMutation) OldType(ctx context.Context) (v donation.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *DonationMutation) ResetType() {
	m._type = nil
}

// SetCommissionType sets the "commission_type" field.
func (m *DonationMutation) SetCommissionType(dt donation.CommissionType) {
	m.commission_type = &dt
}

// CommissionType returns the value of the "commission_type" field in the mutation.
func (m *DonationMutation) CommissionType() (r donation.CommissionType, exists bool) {
	v := m.commission_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCommissionType returns the old "commission_type" field's value of the Donation entity.
// If the Donation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationMutation) OldCommissionType(ctx context.Context) (v donation.CommissionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommissionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommissionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommissionType: %w", err)
	}
	return oldValue.CommissionType, nil
}

// ResetCommissionType resets all changes to the "commission_type" field.
func (m *DonationMutation) ResetCommissionType() {
	m.commission_type = nil
}

// SetPostID sets the "post_id" field.
func (m *DonationMutation) SetPostID(s string) {
	m.post_id = &s
}

// PostID returns the value of the "post_id" field in the mutation.
func (m *DonationMutation) PostID() (r string, exists bool) {
	v := m.post_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPostID returns the old "post_id" field's value of the Donation entity.
// If the Donation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationMutation) OldPostID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostID: %w", err)
	}
	return oldValue.PostID, nil
}

// ClearPostID clears the value of the "post_id" field.
func (m *DonationMutation) ClearPostID() {
	m.post_id = nil
	m.clearedFields[donation.FieldPostID] = struct{}{}
}

// PostIDCleared returns if the "post_id" field was cleared in this mutation.
func (m *DonationMutation) PostIDCleared() bool {
	_, ok := m.clearedFields[donation.FieldPostID]
	return ok
}

// ResetPostID resets all changes to the "post_id" field.
func (m *DonationMutation) ResetPostID() {
	m.post_id = nil
	delete(m.clearedFields, donation.FieldPostID)
}

// SetSubreddit sets the "subreddit" field.
func (m *DonationMutation) SetSubreddit(s string) {
	m.subreddit = &s
}

// Subreddit returns the value of the "subreddit" field in the mutation.
func (m *DonationMutation) Subreddit() (r string, exists bool) {
	v := m.subreddit
	if v == nil {
		return
	}
	return *v, true
}

// OldSubreddit returns the old "subreddit" field's value of the Donation entity.
// If the Donation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationMutation) OldSubreddit(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubreddit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubreddit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubreddit: %w", err)
	}
	return oldValue.Subreddit, nil
}

// ClearSubreddit clears the value of the "subreddit" field.
func (m *DonationMutation) ClearSubreddit() {
	m.subreddit = nil
	m.clearedFields[donation.FieldSubreddit] = struct{}{}
}

// SubredditCleared returns if the "subreddit" field was cleared in this mutation.
func (m *DonationMutation) SubredditCleared() bool {
	_, ok := m.clearedFields[donation.FieldSubreddit]
	return ok
}

// ResetSubreddit resets all changes to the "subreddit" field.
func (m *DonationMutation) ResetSubreddit() {
	m.subreddit = nil
	delete(m.clearedFields, donation.FieldSubreddit)
}

// SetMessage sets the "message" field.
func (m *DonationMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *DonationMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the Donation entity.
// If the Donation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationMutation) OldMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ClearMessage clears the value of the "message" field.
func (m *DonationMutation) ClearMessage() {
	m.message = nil
	m.clearedFields[donation.FieldMessage] = struct{}{}
}

// MessageCleared returns if the "message" field was cleared in this mutation.
func (m *DonationMutation) MessageCleared() bool {
	_, ok := m.clearedFields[donation.FieldMessage]
	return ok
}

// ResetMessage resets all changes to the "message" field.
func (m *DonationMutation) ResetMessage() {
	m.message = nil
	delete(m.clearedFields, donation.FieldMessage)
}

// SetRedditHandle sets the "reddit_handle" field.
func (m *DonationMutation) SetRedditHandle(s string) {
	m.reddit_handle = &s
}

// RedditHandle returns the value of the "reddit_handle" field in the mutation.
func (m *DonationMutation) RedditHandle() (r string, exists bool) {
	v := m.reddit_handle
	if v == nil {
		return
	}
	return *v, true
}

// OldRedditHandle returns the old "reddit_handle" field's value of the Donation entity.
// If the Donation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationMutation) OldRedditHandle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRedditHandle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRedditHandle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRedditHandle: %w", err)
	}
	return oldValue.RedditHandle, nil
}

// ClearRedditHandle clears the value of the "reddit_handle" field.
func (m *DonationMutation) ClearRedditHandle() {
	m.reddit_handle = nil
	m.clearedFields[donation.FieldRedditHandle] = struct{}{}
}

// RedditHandleCleared returns if the "reddit_handle" field was cleared in this mutation.
func (m *DonationMutation) RedditHandleCleared() bool {
	_, ok := m.clearedFields[donation.FieldRedditHandle]
	return ok
}

// ResetRedditHandle resets all changes to the "reddit_handle" field.
func (m *DonationMutation) ResetRedditHandle() {
	m.reddit_handle = nil
	delete(m.clearedFields, donation.FieldRedditHandle)
}

// SetIsAnonymous sets the "is_anonymous" field.
func (m *DonationMutation) SetIsAnonymous(b bool) {
	m.is_anonymous = &b
}

// IsAnonymous returns the value of the "is_anonymous" field in the mutation.
func (m *DonationMutation) IsAnonymous() (r bool, exists bool) {
	v := m.is_anonymous
	if v == nil {
		return
	}
	return *v, true
}

// OldIsAnonymous returns the old "is_anonymous" field's value of the Donation entity.
// If the Donation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationMutation) OldIsAnonymous(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsAnonymous is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsAnonymous requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsAnonymous: %w", err)
	}
	return oldValue.IsAnonymous, nil
}

// ResetIsAnonymous resets all changes to the "is_anonymous" field.
func (m *DonationMutation) ResetIsAnonymous() {
	m.is_anonymous = nil
}

// SetTier sets the "tier" field.
func (m *DonationMutation) SetTier(s string) {
	m.tier = &s
}

// Tier returns the value of the "tier" field in the mutation.
func (m *DonationMutation) Tier() (r string, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the Donation entity.
// If the Donation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationMutation) OldTier(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// ClearTier clears the value of the "tier" field.
func (m *DonationMutation) ClearTier() {
	m.tier = nil
	m.clearedFields[donation.FieldTier] = struct{}{}
}

// TierCleared returns if the "tier" field was cleared in this mutation.
func (m *DonationMutation) TierCleared() bool {
	_, ok := m.clearedFields[donation.FieldTier]
	return ok
}

// ResetTier resets all changes to the "tier" field.
func (m *DonationMutation) ResetTier() {
	m.tier = nil
	delete(m.clearedFields, donation.FieldTier)
}

// SetSource sets the "source" field.
func (m *DonationMutation) SetSource(d donation.Source) {
	m.source = &d
}

// Source returns the value of the "source" field in the mutation.
func (m *DonationMutation) Source() (r donation.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Donation entity.
// If the Donation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationMutation) OldSource(ctx context.Context) (v donation.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *DonationMutation) ResetSource() {
	m.source = nil
}

// SetApplied sets the "applied" field.
func (m *DonationMutation) SetApplied(b bool) {
	m.applied = &b
}

// Applied returns the value of the "applied" field in the mutation.
func (m *DonationMutation) Applied() (r bool, exists bool) {
	v := m.applied
	if v == nil {
		return
	}
	return *v, true
}

// OldApplied returns the old "applied" field's value of the Donation entity.
// If the Donation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationMutation) OldApplied(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplied is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplied requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplied: %w", err)
	}
	return oldValue.Applied, nil
}

// ResetApplied resets all changes to the "applied" field.
func (m *DonationMutation) ResetApplied() {
	m.applied = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DonationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DonationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Donation entity.
// If the Donation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DonationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DonationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DonationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Donation entity.
// If the Donation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DonationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the DonationMutation builder.
func (m *DonationMutation) Where(ps ...predicate.Donation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DonationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DonationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Donation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DonationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DonationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Donation).
func (m *DonationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DonationMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.payment_intent_id != nil {
		fields = append(fields, donation.FieldPaymentIntentID)
	}
	if m.amount != nil {
		fields = append(fields, donation.FieldAmount)
	}
	if m.currency != nil {
		fields = append(fields, donation.FieldCurrency)
	}
	if m.status != nil {
		fields = append(fields, donation.FieldStatus)
	}
	if m._type != nil {
		fields = append(fields, donation.FieldType)
	}
	if m.commission_type != nil {
		fields = append(fields, donation.FieldCommissionType)
	}
	if m.post_id != nil {
		fields = append(fields, donation.FieldPostID)
	}
	if m.subreddit != nil {
		fields = append(fields, donation.FieldSubreddit)
	}
	if m.message != nil {
		fields = append(fields, donation.FieldMessage)
	}
	if m.reddit_handle != nil {
		fields = append(fields, donation.FieldRedditHandle)
	}
	if m.is_anonymous != nil {
		fields = append(fields, donation.FieldIsAnonymous)
	}
	if m.tier != nil {
		fields = append(fields, donation.FieldTier)
	}
	if m.source != nil {
		fields = append(fields, donation.FieldSource)
	}
	if m.applied != nil {
		fields = append(fields, donation.FieldApplied)
	}
	if m.created_at != nil {
		fields = append(fields, donation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, donation.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DonationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case donation.FieldPaymentIntentID:
		return m.PaymentIntentID()
	case donation.FieldAmount:
		return m.Amount()
	case donation.FieldCurrency:
		return m.Currency()
	case donation.FieldStatus:
		return m.Status()
	case donation.FieldType:
		return m.GetType()
	case donation.FieldCommissionType:
		return m.CommissionType()
	case donation.FieldPostID:
		return m.PostID()
	case donation.FieldSubreddit:
		return m.Subreddit()
	case donation.FieldMessage:
		return m.Message()
	case donation.FieldRedditHandle:
		return m.RedditHandle()
	case donation.FieldIsAnonymous:
		return m.IsAnonymous()
	case donation.FieldTier:
		return m.Tier()
	case donation.FieldSource:
		return m.Source()
	case donation.FieldApplied:
		return m.Applied()
	case donation.FieldCreatedAt:
		return m.CreatedAt()
	case donation.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DonationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case donation.FieldPaymentIntentID:
		return m.OldPaymentIntentID(ctx)
	case donation.FieldAmount:
		return m.OldAmount(ctx)
	case donation.FieldCurrency:
		return m.OldCurrency(ctx)
	case donation.FieldStatus:
		return m.OldStatus(ctx)
	case donation.FieldType:
		return m.OldType(ctx)
	case donation.FieldCommissionType:
		return m.OldCommissionType(ctx)
	case donation.FieldPostID:
		return m.OldPostID(ctx)
	case donation.FieldSubreddit:
		return m.OldSubreddit(ctx)
	case donation.FieldMessage:
		return m.OldMessage(ctx)
	case donation.FieldRedditHandle:
		return m.OldRedditHandle(ctx)
	case donation.FieldIsAnonymous:
		return m.OldIsAnonymous(ctx)
	case donation.FieldTier:
		return m.OldTier(ctx)
	case donation.FieldSource:
		return m.OldSource(ctx)
	case donation.FieldApplied:
		return m.OldApplied(ctx)
	case donation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case donation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Donation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DonationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case donation.FieldPaymentIntentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentIntentID(v)
		return nil
	case donation.FieldAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case donation.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case donation.FieldStatus:
		v, ok := value.(donation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case donation.FieldType:
		v, ok := value.(donation.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case donation.FieldCommissionType:
		v, ok := value.(donation.CommissionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommissionType(v)
		return nil
	case donation.FieldPostID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostID(v)
		return nil
	case donation.FieldSubreddit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubreddit(v)
		return nil
	case donation.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case donation.FieldRedditHandle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRedditHandle(v)
		return nil
	case donation.FieldIsAnonymous:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsAnonymous(v)
		return nil
	case donation.FieldTier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case donation.FieldSource:
		v, ok := value.(donation.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case donation.FieldApplied:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplied(v)
		return nil
	case donation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case donation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Donation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DonationMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, donation.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DonationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case donation.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DonationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case donation.FieldAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Donation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DonationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(donation.FieldPostID) {
		fields = append(fields, donation.FieldPostID)
	}
	if m.FieldCleared(donation.FieldSubreddit) {
		fields = append(fields, donation.FieldSubreddit)
	}
	if m.FieldCleared(donation.FieldMessage) {
		fields = append(fields, donation.FieldMessage)
	}
	if m.FieldCleared(donation.FieldRedditHandle) {
		fields = append(fields, donation.FieldRedditHandle)
	}
	if m.FieldCleared(donation.FieldTier) {
		fields = append(fields, donation.FieldTier)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DonationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DonationMutation) ClearField(name string) error {
	switch name {
	case donation.FieldPostID:
		m.ClearPostID()
		return nil
	case donation.FieldSubreddit:
		m.ClearSubreddit()
		return nil
	case donation.FieldMessage:
		m.ClearMessage()
		return nil
	case donation.FieldRedditHandle:
		m.ClearRedditHandle()
		return nil
	case donation.FieldTier:
		m.ClearTier()
		return nil
	}
	return fmt.Errorf("unknown Donation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DonationMutation) ResetField(name string) error {
	switch name {
	case donation.FieldPaymentIntentID:
		m.ResetPaymentIntentID()
		return nil
	case donation.FieldAmount:
		m.ResetAmount()
		return nil
	case donation.FieldCurrency:
		m.ResetCurrency()
		return nil
	case donation.FieldStatus:
		m.ResetStatus()
		return nil
	case donation.FieldType:
		m.ResetType()
		return nil
	case donation.FieldCommissionType:
		m.ResetCommissionType()
		return nil
	case donation.FieldPostID:
		m.ResetPostID()
		return nil
	case donation.FieldSubreddit:
		m.ResetSubreddit()
		return nil
	case donation.FieldMessage:
		m.ResetMessage()
		return nil
	case donation.FieldRedditHandle:
		m.ResetRedditHandle()
		return nil
	case donation.FieldIsAnonymous:
		m.ResetIsAnonymous()
		return nil
	case donation.FieldTier:
		m.ResetTier()
		return nil
	case donation.FieldSource:
		m.ResetSource()
		return nil
	case donation.FieldApplied:
		m.ResetApplied()
		return nil
	case donation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case donation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Donation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DonationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DonationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DonationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DonationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DonationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DonationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DonationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Donation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DonationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Donation edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	task_id       *string
	channel       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *EventMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *EventMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *EventMutation) ResetTaskID() {
	m.task_id = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.task_id != nil {
		fields = append(fields, event.FieldTaskID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldTaskID:
		return m.TaskID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldTaskID:
		return m.OldTaskID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldTaskID:
		m.ResetTaskID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// PipelineTaskMutation represents an operation that mutates the PipelineTask nodes in the graph.
type PipelineTaskMutation struct {
	config
	op                Op
	typ               string
	id                *string
	donation_id       *string
	_type             *pipelinetask.Type
	status            *pipelinetask.Status
	priority          *int
	addpriority       *int
	attempt           *int
	addattempt        *int
	subreddit         *string
	post_id           *string
	error_message     *string
	lease_owner       *string
	lease_expires_at  *time.Time
	not_before        *time.Time
	theme             *string
	image_title       *string
	image_description *string
	image_url         *string
	metadata          *map[string]interface{}
	created_at        *time.Time
	started_at        *time.Time
	completed_at      *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*PipelineTask, error)
	predicates        []predicate.PipelineTask
}

var _ ent.Mutation = (*PipelineTaskMutation)(nil)

// pipelinetaskOption allows management of the mutation configuration using functional options.
type pipelinetaskOption func(*PipelineTaskMutation)

// newPipelineTaskMutation creates new mutation for the PipelineTask entity.
func newPipelineTaskMutation(c config, op Op, opts ...pipelinetaskOption) *PipelineTaskMutation {
	m := &PipelineTaskMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineTaskID sets the ID field of the mutation.
func withPipelineTaskID(id string) pipelinetaskOption {
	return func(m *PipelineTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineTask
		)
		m.oldValue = func(ctx context.Context) (*PipelineTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineTask sets the old PipelineTask of the mutation.
func withPipelineTask(node *PipelineTask) pipelinetaskOption {
	return func(m *PipelineTaskMutation) {
		m.oldValue = func(context.Context) (*PipelineTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PipelineTask entities.
func (m *PipelineTaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineTaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineTaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDonationID sets the "donation_id" field.
func (m *PipelineTaskMutation) SetDonationID(s string) {
	m.donation_id = &s
}

// DonationID returns the value of the "donation_id" field in the mutation.
func (m *PipelineTaskMutation) DonationID() (r string, exists bool) {
	v := m.donation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDonationID returns the old "donation_id" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldDonationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDonationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDonationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDonationID: %w", err)
	}
	return oldValue.DonationID, nil
}

// ClearDonationID clears the value of the "donation_id" field.
func (m *PipelineTaskMutation) ClearDonationID() {
	m.donation_id = nil
	m.clearedFields[pipelinetask.FieldDonationID] = struct{}{}
}

// DonationIDCleared returns if the "donation_id" field was cleared in this mutation.
func (m *PipelineTaskMutation) DonationIDCleared() bool {
	_, ok := m.clearedFields[pipelinetask.FieldDonationID]
	return ok
}

// ResetDonationID resets all changes to the "donation_id" field.
func (m *PipelineTaskMutation) ResetDonationID() {
	m.donation_id = nil
	delete(m.clearedFields, pipelinetask.FieldDonationID)
}

// SetType sets the "type" field.
func (m *PipelineTaskMutation) SetType(pi pipelinetask.Type) {
	m._type = &pi
}

// GetType returns the value of the "type" field in the mutation.
func (m *PipelineTaskMutation) GetType() (r pipelinetask.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldType(ctx context.Context) (v pipelinetask.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *PipelineTaskMutation) ResetType() {
	m._type = nil
}

// SetStatus sets the "status" field.
func (m *PipelineTaskMutation) SetStatus(pi pipelinetask.Status) {
	m.status = &pi
}

// Status returns the value of the "status" field in the mutation.
func (m *PipelineTaskMutation) Status() (r pipelinetask.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldStatus(ctx context.Context) (v pipelinetask.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PipelineTaskMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *PipelineTaskMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *PipelineTaskMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *PipelineTaskMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *PipelineTaskMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *PipelineTaskMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetAttempt sets the "attempt" field.
func (m *PipelineTaskMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *PipelineTaskMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *PipelineTaskMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *PipelineTaskMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *PipelineTaskMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetSubreddit sets the "subreddit" field.
func (m *PipelineTaskMutation) SetSubreddit(s string) {
	m.subreddit = &s
}

// Subreddit returns the value of the "subreddit" field in the mutation.
func (m *PipelineTaskMutation) Subreddit() (r string, exists bool) {
	v := m.subreddit
	if v == nil {
		return
	}
	return *v, true
}

// OldSubreddit returns the old "subreddit" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldSubreddit(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubreddit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubreddit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubreddit: %w", err)
	}
	return oldValue.Subreddit, nil
}

// ClearSubreddit clears the value of the "subreddit" field.
func (m *PipelineTaskMutation) ClearSubreddit() {
	m.subreddit = nil
	m.clearedFields[pipelinetask.FieldSubreddit] = struct{}{}
}

// SubredditCleared returns if the "subreddit" field was cleared in this mutation.
func (m *PipelineTaskMutation) SubredditCleared() bool {
	_, ok := m.clearedFields[pipelinetask.FieldSubreddit]
	return ok
}

// ResetSubreddit resets all changes to the "subreddit" field.
func (m *PipelineTaskMutation) ResetSubreddit() {
	m.subreddit = nil
	delete(m.clearedFields, pipelinetask.FieldSubreddit)
}

// SetPostID sets the "post_id" field.
func (m *PipelineTaskMutation) SetPostID(s string) {
	m.post_id = &s
}

// PostID returns the value of the "post_id" field in the mutation.
func (m *PipelineTaskMutation) PostID() (r string, exists bool) {
	v := m.post_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPostID returns the old "post_id" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldPostID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostID: %w", err)
	}
	return oldValue.PostID, nil
}

// ClearPostID clears the value of the "post_id" field.
func (m *PipelineTaskMutation) ClearPostID() {
	m.post_id = nil
	m.clearedFields[pipelinetask.FieldPostID] = struct{}{}
}

// PostIDCleared returns if the "post_id" field was cleared in this mutation.
func (m *PipelineTaskMutation) PostIDCleared() bool {
	_, ok := m.clearedFields[pipelinetask.FieldPostID]
	return ok
}

// ResetPostID resets all changes to the "post_id" field.
func (m *PipelineTaskMutation) ResetPostID() {
	m.post_id = nil
	delete(m.clearedFields, pipelinetask.FieldPostID)
}

// SetErrorMessage sets the "error_message" field.
func (m *PipelineTaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *PipelineTaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *PipelineTaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[pipelinetask.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *PipelineTaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[pipelinetask.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *PipelineTaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, pipelinetask.FieldErrorMessage)
}

// SetLeaseOwner sets the "lease_owner" field.
func (m *PipelineTaskMutation) SetLeaseOwner(s string) {
	m.lease_owner = &s
}

// LeaseOwner returns the value of the "lease_owner" field in the mutation.
func (m *PipelineTaskMutation) LeaseOwner() (r string, exists bool) {
	v := m.lease_owner
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseOwner returns the old "lease_owner" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldLeaseOwner(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseOwner: %w", err)
	}
	return oldValue.LeaseOwner, nil
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (m *PipelineTaskMutation) ClearLeaseOwner() {
	m.lease_owner = nil
	m.clearedFields[pipelinetask.FieldLeaseOwner] = struct{}{}
}

// LeaseOwnerCleared returns if the "lease_owner" field was cleared in this mutation.
func (m *PipelineTaskMutation) LeaseOwnerCleared() bool {
	_, ok := m.clearedFields[pipelinetask.FieldLeaseOwner]
	return ok
}

// ResetLeaseOwner resets all changes to the "lease_owner" field.
func (m *PipelineTaskMutation) ResetLeaseOwner() {
	m.lease_owner = nil
	delete(m.clearedFields, pipelinetask.FieldLeaseOwner)
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (m *PipelineTaskMutation) SetLeaseExpiresAt(t time.Time) {
	m.lease_expires_at = &t
}

// LeaseExpiresAt returns the value of the "lease_expires_at" field in the mutation.
func (m *PipelineTaskMutation) LeaseExpiresAt() (r time.Time, exists bool) {
	v := m.lease_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseExpiresAt returns the old "lease_expires_at" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldLeaseExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseExpiresAt: %w", err)
	}
	return oldValue.LeaseExpiresAt, nil
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (m *PipelineTaskMutation) ClearLeaseExpiresAt() {
	m.lease_expires_at = nil
	m.clearedFields[pipelinetask.FieldLeaseExpiresAt] = struct{}{}
}

// LeaseExpiresAtCleared returns if the "lease_expires_at" field was cleared in this mutation.
func (m *PipelineTaskMutation) LeaseExpiresAtCleared() bool {
	_, ok := m.clearedFields[pipelinetask.FieldLeaseExpiresAt]
	return ok
}

// ResetLeaseExpiresAt resets all changes to the "lease_expires_at" field.
func (m *PipelineTaskMutation) ResetLeaseExpiresAt() {
	m.lease_expires_at = nil
	delete(m.clearedFields, pipelinetask.FieldLeaseExpiresAt)
}

// SetNotBefore sets the "not_before" field.
func (m *PipelineTaskMutation) SetNotBefore(t time.Time) {
	m.not_before = &t
}

// NotBefore returns the value of the "not_before" field in the mutation.
func (m *PipelineTaskMutation) NotBefore() (r time.Time, exists bool) {
	v := m.not_before
	if v == nil {
		return
	}
	return *v, true
}

// OldNotBefore returns the old "not_before" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldNotBefore(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotBefore: %w", err)
	}
	return oldValue.NotBefore, nil
}

// ClearNotBefore clears the value of the "not_before" field.
func (m *PipelineTaskMutation) ClearNotBefore() {
	m.not_before = nil
	m.clearedFields[pipelinetask.FieldNotBefore] = struct{}{}
}

// NotBeforeCleared returns if the "not_before" field was cleared in this mutation.
func (m *PipelineTaskMutation) NotBeforeCleared() bool {
	_, ok := m.clearedFields[pipelinetask.FieldNotBefore]
	return ok
}

// ResetNotBefore resets all changes to the "not_before" field.
func (m *PipelineTaskMutation) ResetNotBefore() {
	m.not_before = nil
	delete(m.clearedFields, pipelinetask.FieldNotBefore)
}

// SetTheme sets the "theme" field.
func (m *PipelineTaskMutation) SetTheme(s string) {
	m.theme = &s
}

// Theme returns the value of the "theme" field in the mutation.
func (m *PipelineTaskMutation) Theme() (r string, exists bool) {
	v := m.theme
	if v == nil {
		return
	}
	return *v, true
}

// OldTheme returns the old "theme" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldTheme(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTheme is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTheme requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTheme: %w", err)
	}
	return oldValue.Theme, nil
}

// ClearTheme clears the value of the "theme" field.
func (m *PipelineTaskMutation) ClearTheme() {
	m.theme = nil
	m.clearedFields[pipelinetask.FieldTheme] = struct{}{}
}

// ThemeCleared returns if the "theme" field was cleared in this mutation.
func (m *PipelineTaskMutation) ThemeCleared() bool {
	_, ok := m.clearedFields[pipelinetask.FieldTheme]
	return ok
}

// ResetTheme resets all changes to the "theme" field.
func (m *PipelineTaskMutation) ResetTheme() {
	m.theme = nil
	delete(m.clearedFields, pipelinetask.FieldTheme)
}

// SetImageTitle sets the "image_title" field.
func (m *PipelineTaskMutation) SetImageTitle(s string) {
	m.image_title = &s
}

// ImageTitle returns the value of the "image_title" field in the mutation.
func (m *PipelineTaskMutation) ImageTitle() (r string, exists bool) {
	v := m.image_title
	if v == nil {
		return
	}
	return *v, true
}

// OldImageTitle returns the old "image_title" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldImageTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageTitle: %w", err)
	}
	return oldValue.ImageTitle, nil
}

// ClearImageTitle clears the value of the "image_title" field.
func (m *PipelineTaskMutation) ClearImageTitle() {
	m.image_title = nil
	m.clearedFields[pipelinetask.FieldImageTitle] = struct{}{}
}

// ImageTitleCleared returns if the "image_title" field was cleared in this mutation.
func (m *PipelineTaskMutation) ImageTitleCleared() bool {
	_, ok := m.clearedFields[pipelinetask.FieldImageTitle]
	return ok
}

// ResetImageTitle resets all changes to the "image_title" field.
func (m *PipelineTaskMutation) ResetImageTitle() {
	m.image_title = nil
	delete(m.clearedFields, pipelinetask.FieldImageTitle)
}

// SetImageDescription sets the "image_description" field.
func (m *PipelineTaskMutation) SetImageDescription(s string) {
	m.image_description = &s
}

// ImageDescription returns the value of the "image_description" field in the mutation.
func (m *PipelineTaskMutation) ImageDescription() (r string, exists bool) {
	v := m.image_description
	if v == nil {
		return
	}
	return *v, true
}

// OldImageDescription returns the old "image_description" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldImageDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageDescription: %w", err)
	}
	return oldValue.ImageDescription, nil
}

// ClearImageDescription clears the value of the "image_description" field.
func (m *PipelineTaskMutation) ClearImageDescription() {
	m.image_description = nil
	m.clearedFields[pipelinetask.FieldImageDescription] = struct{}{}
}

// ImageDescriptionCleared returns if the "image_description" field was cleared in this mutation.
func (m *PipelineTaskMutation) ImageDescriptionCleared() bool {
	_, ok := m.clearedFields[pipelinetask.FieldImageDescription]
	return ok
}

// ResetImageDescription resets all changes to the "image_description" field.
func (m *PipelineTaskMutation) ResetImageDescription() {
	m.image_description = nil
	delete(m.clearedFields, pipelinetask.FieldImageDescription)
}

// SetImageURL sets the "image_url" field.
func (m *PipelineTaskMutation) SetImageURL(s string) {
	m.image_url = &s
}

// ImageURL returns the value of the "image_url" field in the mutation.
func (m *PipelineTaskMutation) ImageURL() (r string, exists bool) {
	v := m.image_url
	if v == nil {
		return
	}
	return *v, true
}

// OldImageURL returns the old "image_url" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldImageURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageURL: %w", err)
	}
	return oldValue.ImageURL, nil
}

// ClearImageURL clears the value of the "image_url" field.
func (m *PipelineTaskMutation) ClearImageURL() {
	m.image_url = nil
	m.clearedFields[pipelinetask.FieldImageURL] = struct{}{}
}

// ImageURLCleared returns if the "image_url" field was cleared in this mutation.
func (m *PipelineTaskMutation) ImageURLCleared() bool {
	_, ok := m.clearedFields[pipelinetask.FieldImageURL]
	return ok
}

// ResetImageURL resets all changes to the "image_url" field.
func (m *PipelineTaskMutation) ResetImageURL() {
	m.image_url = nil
	delete(m.clearedFields, pipelinetask.FieldImageURL)
}

// SetMetadata sets the "metadata" field.
func (m *PipelineTaskMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *PipelineTaskMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *PipelineTaskMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[pipelinetask.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *PipelineTaskMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[pipelinetask.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *PipelineTaskMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, pipelinetask.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *PipelineTaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PipelineTaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PipelineTaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *PipelineTaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PipelineTaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *PipelineTaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[pipelinetask.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *PipelineTaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[pipelinetask.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PipelineTaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, pipelinetask.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *PipelineTaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PipelineTaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *PipelineTaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[pipelinetask.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *PipelineTaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[pipelinetask.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PipelineTaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, pipelinetask.FieldCompletedAt)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PipelineTaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PipelineTaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PipelineTaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PipelineTaskMutation builder.
func (m *PipelineTaskMutation) Where(ps ...predicate.PipelineTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineTask).
func (m *PipelineTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineTaskMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.donation_id != nil {
		fields = append(fields, pipelinetask.FieldDonationID)
	}
	if m._type != nil {
		fields = append(fields, pipelinetask.FieldType)
	}
	if m.status != nil {
		fields = append(fields, pipelinetask.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, pipelinetask.FieldPriority)
	}
	if m.attempt != nil {
		fields = append(fields, pipelinetask.FieldAttempt)
	}
	if m.subreddit != nil {
		fields = append(fields, pipelinetask.FieldSubreddit)
	}
	if m.post_id != nil {
		fields = append(fields, pipelinetask.FieldPostID)
	}
	if m.error_message != nil {
		fields = append(fields, pipelinetask.FieldErrorMessage)
	}
	if m.lease_owner != nil {
		fields = append(fields, pipelinetask.FieldLeaseOwner)
	}
	if m.lease_expires_at != nil {
		fields = append(fields, pipelinetask.FieldLeaseExpiresAt)
	}
	if m.not_before != nil {
		fields = append(fields, pipelinetask.FieldNotBefore)
	}
	if m.theme != nil {
		fields = append(fields, pipelinetask.FieldTheme)
	}
	if m.image_title != nil {
		fields = append(fields, pipelinetask.FieldImageTitle)
	}
	if m.image_description != nil {
		fields = append(fields, pipelinetask.FieldImageDescription)
	}
	if m.image_url != nil {
		fields = append(fields, pipelinetask.FieldImageURL)
	}
	if m.metadata != nil {
		fields = append(fields, pipelinetask.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, pipelinetask.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, pipelinetask.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, pipelinetask.FieldCompletedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, pipelinetask.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinetask.FieldDonationID:
		return m.DonationID()
	case pipelinetask.FieldType:
		return m.GetType()
	case pipelinetask.FieldStatus:
		return m.Status()
	case pipelinetask.FieldPriority:
		return m.Priority()
	case pipelinetask.FieldAttempt:
		return m.Attempt()
	case pipelinetask.FieldSubreddit:
		return m.Subreddit()
	case pipelinetask.FieldPostID:
		return m.PostID()
	case pipelinetask.FieldErrorMessage:
		return m.ErrorMessage()
	case pipelinetask.FieldLeaseOwner:
		return m.LeaseOwner()
	case pipelinetask.FieldLeaseExpiresAt:
		return m.LeaseExpiresAt()
	case pipelinetask.FieldNotBefore:
		return m.NotBefore()
	case pipelinetask.FieldTheme:
		return m.Theme()
	case pipelinetask.FieldImageTitle:
		return m.ImageTitle()
	case pipelinetask.FieldImageDescription:
		return m.ImageDescription()
	case pipelinetask.FieldImageURL:
		return m.ImageURL()
	case pipelinetask.FieldMetadata:
		return m.Metadata()
	case pipelinetask.FieldCreatedAt:
		return m.CreatedAt()
	case pipelinetask.FieldStartedAt:
		return m.StartedAt()
	case pipelinetask.FieldCompletedAt:
		return m.CompletedAt()
	case pipelinetask.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinetask.FieldDonationID:
		return m.OldDonationID(ctx)
	case pipelinetask.FieldType:
		return m.OldType(ctx)
	case pipelinetask.FieldStatus:
		return m.OldStatus(ctx)
	case pipelinetask.FieldPriority:
		return m.OldPriority(ctx)
	case pipelinetask.FieldAttempt:
		return m.OldAttempt(ctx)
	case pipelinetask.FieldSubreddit:
		return m.OldSubreddit(ctx)
	case pipelinetask.FieldPostID:
		return m.OldPostID(ctx)
	case pipelinetask.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case pipelinetask.FieldLeaseOwner:
		return m.OldLeaseOwner(ctx)
	case pipelinetask.FieldLeaseExpiresAt:
		return m.OldLeaseExpiresAt(ctx)
	case pipelinetask.FieldNotBefore:
		return m.OldNotBefore(ctx)
	case pipelinetask.FieldTheme:
		return m.OldTheme(ctx)
	case pipelinetask.FieldImageTitle:
		return m.OldImageTitle(ctx)
	case pipelinetask.FieldImageDescription:
		return m.OldImageDescription(ctx)
	case pipelinetask.FieldImageURL:
		return m.OldImageURL(ctx)
	case pipelinetask.FieldMetadata:
		return m.OldMetadata(ctx)
	case pipelinetask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pipelinetask.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case pipelinetask.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case pipelinetask.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinetask.FieldDonationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDonationID(v)
		return nil
	case pipelinetask.FieldType:
		v, ok := value.(pipelinetask.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case pipelinetask.FieldStatus:
		v, ok := value.(pipelinetask.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pipelinetask.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case pipelinetask.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case pipelinetask.FieldSubreddit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubreddit(v)
		return nil
	case pipelinetask.FieldPostID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostID(v)
		return nil
	case pipelinetask.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case pipelinetask.FieldLeaseOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseOwner(v)
		return nil
	case pipelinetask.FieldLeaseExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseExpiresAt(v)
		return nil
	case pipelinetask.FieldNotBefore:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotBefore(v)
		return nil
	case pipelinetask.FieldTheme:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTheme(v)
		return nil
	case pipelinetask.FieldImageTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageTitle(v)
		return nil
	case pipelinetask.FieldImageDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageDescription(v)
		return nil
	case pipelinetask.FieldImageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageURL(v)
		return nil
	case pipelinetask.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case pipelinetask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pipelinetask.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case pipelinetask.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case pipelinetask.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineTaskMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, pipelinetask.FieldPriority)
	}
	if m.addattempt != nil {
		fields = append(fields, pipelinetask.FieldAttempt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineTaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pipelinetask.FieldPriority:
		return m.AddedPriority()
	case pipelinetask.FieldAttempt:
		return m.AddedAttempt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pipelinetask.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case pipelinetask.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelinetask.FieldDonationID) {
		fields = append(fields, pipelinetask.FieldDonationID)
	}
	if m.FieldCleared(pipelinetask.FieldSubreddit) {
		fields = append(fields, pipelinetask.FieldSubreddit)
	}
	if m.FieldCleared(pipelinetask.FieldPostID) {
		fields = append(fields, pipelinetask.FieldPostID)
	}
	if m.FieldCleared(pipelinetask.FieldErrorMessage) {
		fields = append(fields, pipelinetask.FieldErrorMessage)
	}
	if m.FieldCleared(pipelinetask.FieldLeaseOwner) {
		fields = append(fields, pipelinetask.FieldLeaseOwner)
	}
	if m.FieldCleared(pipelinetask.FieldLeaseExpiresAt) {
		fields = append(fields, pipelinetask.FieldLeaseExpiresAt)
	}
	if m.FieldCleared(pipelinetask.FieldNotBefore) {
		fields = append(fields, pipelinetask.FieldNotBefore)
	}
	if m.FieldCleared(pipelinetask.FieldTheme) {
		fields = append(fields, pipelinetask.FieldTheme)
	}
	if m.FieldCleared(pipelinetask.FieldImageTitle) {
		fields = append(fields, pipelinetask.FieldImageTitle)
	}
	if m.FieldCleared(pipelinetask.FieldImageDescription) {
		fields = append(fields, pipelinetask.FieldImageDescription)
	}
	if m.FieldCleared(pipelinetask.FieldImageURL) {
		fields = append(fields, pipelinetask.FieldImageURL)
	}
	if m.FieldCleared(pipelinetask.FieldMetadata) {
		fields = append(fields, pipelinetask.FieldMetadata)
	}
	if m.FieldCleared(pipelinetask.FieldStartedAt) {
		fields = append(fields, pipelinetask.FieldStartedAt)
	}
	if m.FieldCleared(pipelinetask.FieldCompletedAt) {
		fields = append(fields, pipelinetask.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineTaskMutation) ClearField(name string) error {
	switch name {
	case pipelinetask.FieldDonationID:
		m.ClearDonationID()
		return nil
	case pipelinetask.FieldSubreddit:
		m.ClearSubreddit()
		return nil
	case pipelinetask.FieldPostID:
		m.ClearPostID()
		return nil
	case pipelinetask.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case pipelinetask.FieldLeaseOwner:
		m.ClearLeaseOwner()
		return nil
	case pipelinetask.FieldLeaseExpiresAt:
		m.ClearLeaseExpiresAt()
		return nil
	case pipelinetask.FieldNotBefore:
		m.ClearNotBefore()
		return nil
	case pipelinetask.FieldTheme:
		m.ClearTheme()
		return nil
	case pipelinetask.FieldImageTitle:
		m.ClearImageTitle()
		return nil
	case pipelinetask.FieldImageDescription:
		m.ClearImageDescription()
		return nil
	case pipelinetask.FieldImageURL:
		m.ClearImageURL()
		return nil
	case pipelinetask.FieldMetadata:
		m.ClearMetadata()
		return nil
	case pipelinetask.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case pipelinetask.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineTaskMutation) ResetField(name string) error {
	switch name {
	case pipelinetask.FieldDonationID:
		m.ResetDonationID()
		return nil
	case pipelinetask.FieldType:
		m.ResetType()
		return nil
	case pipelinetask.FieldStatus:
		m.ResetStatus()
		return nil
	case pipelinetask.FieldPriority:
		m.ResetPriority()
		return nil
	case pipelinetask.FieldAttempt:
		m.ResetAttempt()
		return nil
	case pipelinetask.FieldSubreddit:
		m.ResetSubreddit()
		return nil
	case pipelinetask.FieldPostID:
		m.ResetPostID()
		return nil
	case pipelinetask.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case pipelinetask.FieldLeaseOwner:
		m.ResetLeaseOwner()
		return nil
	case pipelinetask.FieldLeaseExpiresAt:
		m.ResetLeaseExpiresAt()
		return nil
	case pipelinetask.FieldNotBefore:
		m.ResetNotBefore()
		return nil
	case pipelinetask.FieldTheme:
		m.ResetTheme()
		return nil
	case pipelinetask.FieldImageTitle:
		m.ResetImageTitle()
		return nil
	case pipelinetask.FieldImageDescription:
		m.ResetImageDescription()
		return nil
	case pipelinetask.FieldImageURL:
		m.ResetImageURL()
		return nil
	case pipelinetask.FieldMetadata:
		m.ResetMetadata()
		return nil
	case pipelinetask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pipelinetask.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case pipelinetask.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case pipelinetask.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineTaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineTaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineTaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PipelineTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineTaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PipelineTask edge %s", name)
}

// ProductInfoMutation represents an operation that mutates the ProductInfo nodes in the graph.
type ProductInfoMutation struct {
	config
	op             Op
	typ            string
	id             *string
	task_id        *string
	donation_id    *string
	post_id        *string
	theme          *string
	image_title    *string
	image_url      *string
	product_url    *string
	template_id    *string
	model          *string
	prompt_version *string
	image_quality  *productinfo.ImageQuality
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ProductInfo, error)
	predicates     []predicate.ProductInfo
}

var _ ent.Mutation = (*ProductInfoMutation)(nil)

// productinfoOption allows management of the mutation configuration using functional options.
type productinfoOption func(*ProductInfoMutation)

// newProductInfoMutation creates new mutation for the ProductInfo entity.
func newProductInfoMutation(c config, op Op, opts ...productinfoOption) *ProductInfoMutation {
	m := &ProductInfoMutation{
		config:        c,
		op:            op,
		typ:           TypeProductInfo,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProductInfoID sets the ID field of the mutation.
func withProductInfoID(id string) productinfoOption {
	return func(m *ProductInfoMutation) {
		var (
			err   error
			once  sync.Once
			value *ProductInfo
		)
		m.oldValue = func(ctx context.Context) (*ProductInfo, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProductInfo.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProductInfo sets the old ProductInfo of the mutation.
func withProductInfo(node *ProductInfo) productinfoOption {
	return func(m *ProductInfoMutation) {
		m.oldValue = func(context.Context) (*ProductInfo, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProductInfoMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProductInfoMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProductInfo entities.
func (m *ProductInfoMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProductInfoMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProductInfoMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProductInfo.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *ProductInfoMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ProductInfoMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the ProductInfo entity.
// If the ProductInfo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductInfoMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ProductInfoMutation) ResetTaskID() {
	m.task_id = nil
}

// SetDonationID sets the "donation_id" field.
func (m *ProductInfoMutation) SetDonationID(s string) {
	m.donation_id = &s
}

// DonationID returns the value of the "donation_id" field in the mutation.
func (m *ProductInfoMutation) DonationID() (r string, exists bool) {
	v := m.donation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDonationID returns the old "donation_id" field's value of the ProductInfo entity.
// If the ProductInfo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductInfoMutation) OldDonationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDonationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDonationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDonationID: %w", err)
	}
	return oldValue.DonationID, nil
}

// ClearDonationID clears the value of the "donation_id" field.
func (m *ProductInfoMutation) ClearDonationID() {
	m.donation_id = nil
	m.clearedFields[productinfo.FieldDonationID] = struct{}{}
}

// DonationIDCleared returns if the "donation_id" field was cleared in this mutation.
func (m *ProductInfoMutation) DonationIDCleared() bool {
	_, ok := m.clearedFields[productinfo.FieldDonationID]
	return ok
}

// ResetDonationID resets all changes to the "donation_id" field.
func (m *ProductInfoMutation) ResetDonationID() {
	m.donation_id = nil
	delete(m.clearedFields, productinfo.FieldDonationID)
}

// SetPostID sets the "post_id" field.
func (m *ProductInfoMutation) SetPostID(s string) {
	m.post_id = &s
}

// PostID returns the value of the "post_id" field in the mutation.
func (m *ProductInfoMutation) PostID() (r string, exists bool) {
	v := m.post_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPostID returns the old "post_id" field's value of the ProductInfo entity.
// If the ProductInfo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductInfoMutation) OldPostID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostID: %w", err)
	}
	return oldValue.PostID, nil
}

// ResetPostID resets all changes to the "post_id" field.
func (m *ProductInfoMutation) ResetPostID() {
	m.post_id = nil
}

// SetTheme sets the "theme" field.
func (m *ProductInfoMutation) SetTheme(s string) {
	m.theme = &s
}

// Theme returns the value of the "theme" field in the mutation.
func (m *ProductInfoMutation) Theme() (r string, exists bool) {
	v := m.theme
	if v == nil {
		return
	}
	return *v, true
}

// OldTheme returns the old "theme" field's value of the ProductInfo entity.
// If the ProductInfo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductInfoMutation) OldTheme(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTheme is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTheme requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTheme: %w", err)
	}
	return oldValue.Theme, nil
}

// ResetTheme resets all changes to the "theme" field.
func (m *ProductInfoMutation) ResetTheme() {
	m.theme = nil
}

// SetImageTitle sets the "image_title" field.
func (m *ProductInfoMutation) SetImageTitle(s string) {
	m.image_title = &s
}

// ImageTitle returns the value of the "image_title" field in the mutation.
func (m *ProductInfoMutation) ImageTitle() (r string, exists bool) {
	v := m.image_title
	if v == nil {
		return
	}
	return *v, true
}

// OldImageTitle returns the old "image_title" field's value of the ProductInfo entity.
// If the ProductInfo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductInfoMutation) OldImageTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageTitle: %w", err)
	}
	return oldValue.ImageTitle, nil
}

// ResetImageTitle resets all changes to the "image_title" field.
func (m *ProductInfoMutation) ResetImageTitle() {
	m.image_title = nil
}

// SetImageURL sets the "image_url" field.
func (m *ProductInfoMutation) SetImageURL(s string) {
	m.image_url = &s
}

// ImageURL returns the value of the "image_url" field in the mutation.
func (m *ProductInfoMutation) ImageURL() (r string, exists bool) {
	v := m.image_url
	if v == nil {
		return
	}
	return *v, true
}

// OldImageURL returns the old "image_url" field's value of the ProductInfo entity.
// If the ProductInfo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductInfoMutation) OldImageURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageURL: %w", err)
	}
	return oldValue.ImageURL, nil
}

// ResetImageURL resets all changes to the "image_url" field.
func (m *ProductInfoMutation) ResetImageURL() {
	m.image_url = nil
}

// SetProductURL sets the "product_url" field.
func (m *ProductInfoMutation) SetProductURL(s string) {
	m.product_url = &s
}

// ProductURL returns the value of the "product_url" field in the mutation.
func (m *ProductInfoMutation) ProductURL() (r string, exists bool) {
	v := m.product_url
	if v == nil {
		return
	}
	return *v, true
}

// OldProductURL returns the old "product_url" field's value of the ProductInfo entity.
// If the ProductInfo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductInfoMutation) OldProductURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductURL: %w", err)
	}
	return oldValue.ProductURL, nil
}

// ResetProductURL resets all changes to the "product_url" field.
func (m *ProductInfoMutation) ResetProductURL() {
	m.product_url = nil
}

// SetTemplateID sets the "template_id" field.
func (m *ProductInfoMutation) SetTemplateID(s string) {
	m.template_id = &s
}

// TemplateID returns the value of the "template_id" field in the mutation.
func (m *ProductInfoMutation) TemplateID() (r string, exists bool) {
	v := m.template_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateID returns the old "template_id" field's value of the ProductInfo entity.
// If the ProductInfo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductInfoMutation) OldTemplateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateID: %w", err)
	}
	return oldValue.TemplateID, nil
}

// ResetTemplateID resets all changes to the "template_id" field.
func (m *ProductInfoMutation) ResetTemplateID() {
	m.template_id = nil
}

// SetModel sets the "model" field.
func (m *ProductInfoMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *ProductInfoMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the ProductInfo entity.
// If the ProductInfo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductInfoMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *ProductInfoMutation) ResetModel() {
	m.model = nil
}

// SetPromptVersion sets the "prompt_version" field.
func (m *ProductInfoMutation) SetPromptVersion(s string) {
	m.prompt_version = &s
}

// PromptVersion returns the value of the "prompt_version" field in the mutation.
func (m *ProductInfoMutation) PromptVersion() (r string, exists bool) {
	v := m.prompt_version
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptVersion returns the old "prompt_version" field's value of the ProductInfo entity.
// If the ProductInfo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductInfoMutation) OldPromptVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptVersion: %w", err)
	}
	return oldValue.PromptVersion, nil
}

// ResetPromptVersion resets all changes to the "prompt_version" field.
func (m *ProductInfoMutation) ResetPromptVersion() {
	m.prompt_version = nil
}

// SetImageQuality sets the "image_quality" field.
func (m *ProductInfoMutation) SetImageQuality(pq productinfo.ImageQuality) {
	m.image_quality = &pq
}

// ImageQuality returns the value of the "image_quality" field in the mutation.
func (m *ProductInfoMutation) ImageQuality() (r productinfo.ImageQuality, exists bool) {
	v := m.image_quality
	if v == nil {
		return
	}
	return *v, true
}

// OldImageQuality returns the old "image_quality" field's value of the ProductInfo entity.
// If the ProductInfo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductInfoMutation) OldImageQuality(ctx context.Context) (v productinfo.ImageQuality, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageQuality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageQuality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageQuality: %w", err)
	}
	return oldValue.ImageQuality, nil
}

// ResetImageQuality resets all changes to the "image_quality" field.
func (m *ProductInfoMutation) ResetImageQuality() {
	m.image_quality = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProductInfoMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProductInfoMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProductInfo entity.
// If the ProductInfo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductInfoMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProductInfoMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ProductInfoMutation builder.
func (m *ProductInfoMutation) Where(ps ...predicate.ProductInfo) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProductInfoMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProductInfoMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProductInfo, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProductInfoMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProductInfoMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProductInfo).
func (m *ProductInfoMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProductInfoMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.task_id != nil {
		fields = append(fields, productinfo.FieldTaskID)
	}
	if m.donation_id != nil {
		fields = append(fields, productinfo.FieldDonationID)
	}
	if m.post_id != nil {
		fields = append(fields, productinfo.FieldPostID)
	}
	if m.theme != nil {
		fields = append(fields, productinfo.FieldTheme)
	}
	if m.image_title != nil {
		fields = append(fields, productinfo.FieldImageTitle)
	}
	if m.image_url != nil {
		fields = append(fields, productinfo.FieldImageURL)
	}
	if m.product_url != nil {
		fields = append(fields, productinfo.FieldProductURL)
	}
	if m.template_id != nil {
		fields = append(fields, productinfo.FieldTemplateID)
	}
	if m.model != nil {
		fields = append(fields, productinfo.FieldModel)
	}
	if m.prompt_version != nil {
		fields = append(fields, productinfo.FieldPromptVersion)
	}
	if m.image_quality != nil {
		fields = append(fields, productinfo.FieldImageQuality)
	}
	if m.created_at != nil {
		fields = append(fields, productinfo.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProductInfoMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case productinfo.FieldTaskID:
		return m.TaskID()
	case productinfo.FieldDonationID:
		return m.DonationID()
	case productinfo.FieldPostID:
		return m.PostID()
	case productinfo.FieldTheme:
		return m.Theme()
	case productinfo.FieldImageTitle:
		return m.ImageTitle()
	case productinfo.FieldImageURL:
		return m.ImageURL()
	case productinfo.FieldProductURL:
		return m.ProductURL()
	case productinfo.FieldTemplateID:
		return m.TemplateID()
	case productinfo.FieldModel:
		return m.Model()
	case productinfo.FieldPromptVersion:
		return m.PromptVersion()
	case productinfo.FieldImageQuality:
		return m.ImageQuality()
	case productinfo.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProductInfoMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case productinfo.FieldTaskID:
		return m.OldTaskID(ctx)
	case productinfo.FieldDonationID:
		return m.OldDonationID(ctx)
	case productinfo.FieldPostID:
		return m.OldPostID(ctx)
	case productinfo.FieldTheme:
		return m.OldTheme(ctx)
	case productinfo.FieldImageTitle:
		return m.OldImageTitle(ctx)
	case productinfo.FieldImageURL:
		return m.OldImageURL(ctx)
	case productinfo.FieldProductURL:
		return m.OldProductURL(ctx)
	case productinfo.FieldTemplateID:
		return m.OldTemplateID(ctx)
	case productinfo.FieldModel:
		return m.OldModel(ctx)
	case productinfo.FieldPromptVersion:
		return m.OldPromptVersion(ctx)
	case productinfo.FieldImageQuality:
		return m.OldImageQuality(ctx)
	case productinfo.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProductInfo field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProductInfoMutation) SetField(name string, value ent.Value) error {
	switch name {
	case productinfo.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case productinfo.FieldDonationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDonationID(v)
		return nil
	case productinfo.FieldPostID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostID(v)
		return nil
	case productinfo.FieldTheme:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTheme(v)
		return nil
	case productinfo.FieldImageTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageTitle(v)
		return nil
	case productinfo.FieldImageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageURL(v)
		return nil
	case productinfo.FieldProductURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductURL(v)
		return nil
	case productinfo.FieldTemplateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateID(v)
		return nil
	case productinfo.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case productinfo.FieldPromptVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptVersion(v)
		return nil
	case productinfo.FieldImageQuality:
		v, ok := value.(productinfo.ImageQuality)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageQuality(v)
		return nil
	case productinfo.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProductInfo field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProductInfoMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProductInfoMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProductInfoMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProductInfo numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProductInfoMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(productinfo.FieldDonationID) {
		fields = append(fields, productinfo.FieldDonationID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProductInfoMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProductInfoMutation) ClearField(name string) error {
	switch name {
	case productinfo.FieldDonationID:
		m.ClearDonationID()
		return nil
	}
	return fmt.Errorf("unknown ProductInfo nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProductInfoMutation) ResetField(name string) error {
	switch name {
	case productinfo.FieldTaskID:
		m.ResetTaskID()
		return nil
	case productinfo.FieldDonationID:
		m.ResetDonationID()
		return nil
	case productinfo.FieldPostID:
		m.ResetPostID()
		return nil
	case productinfo.FieldTheme:
		m.ResetTheme()
		return nil
	case productinfo.FieldImageTitle:
		m.ResetImageTitle()
		return nil
	case productinfo.FieldImageURL:
		m.ResetImageURL()
		return nil
	case productinfo.FieldProductURL:
		m.ResetProductURL()
		return nil
	case productinfo.FieldTemplateID:
		m.ResetTemplateID()
		return nil
	case productinfo.FieldModel:
		m.ResetModel()
		return nil
	case productinfo.FieldPromptVersion:
		m.ResetPromptVersion()
		return nil
	case productinfo.FieldImageQuality:
		m.ResetImageQuality()
		return nil
	case productinfo.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProductInfo field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProductInfoMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProductInfoMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProductInfoMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProductInfoMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProductInfoMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProductInfoMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProductInfoMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProductInfo unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProductInfoMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProductInfo edge %s", name)
}

// ProgressEventMutation represents an operation that mutates the ProgressEvent nodes in the graph.
type ProgressEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	task_id       *string
	stage         *progressevent.Stage
	message       *string
	percent       *int
	addpercent    *int
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ProgressEvent, error)
	predicates    []predicate.ProgressEvent
}

var _ ent.Mutation = (*ProgressEventMutation)(nil)

// progresseventOption allows management of the mutation configuration using functional options.
type progresseventOption func(*ProgressEventMutation)

// newProgressEventMutation creates new mutation for the ProgressEvent entity.
func newProgressEventMutation(c config, op Op, opts ...progresseventOption) *ProgressEventMutation {
	m := &ProgressEventMutation{
		config:        c,
		op:            op,
		typ:           TypeProgressEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProgressEventID sets the ID field of the mutation.
func withProgressEventID(id int) progresseventOption {
	return func(m *ProgressEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ProgressEvent
		)
		m.oldValue = func(ctx context.Context) (*ProgressEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProgressEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProgressEvent sets the old ProgressEvent of the mutation.
func withProgressEvent(node *ProgressEvent) progresseventOption {
	return func(m *ProgressEventMutation) {
		m.oldValue = func(context.Context) (*ProgressEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProgressEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProgressEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProgressEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProgressEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProgressEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *ProgressEventMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ProgressEventMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the ProgressEvent entity.
// If the ProgressEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressEventMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ProgressEventMutation) ResetTaskID() {
	m.task_id = nil
}

// SetStage sets the "stage" field.
func (m *ProgressEventMutation) SetStage(pr progressevent.Stage) {
	m.stage = &pr
}

// Stage returns the value of the "stage" field in the mutation.
func (m *ProgressEventMutation) Stage() (r progressevent.Stage, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the ProgressEvent entity.
// If the ProgressEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressEventMutation) OldStage(ctx context.Context) (v progressevent.Stage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *ProgressEventMutation) ResetStage() {
	m.stage = nil
}

// SetMessage sets the "message" field.
func (m *ProgressEventMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *ProgressEventMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the ProgressEvent entity.
// If the ProgressEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressEventMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *ProgressEventMutation) ResetMessage() {
	m.message = nil
}

// SetPercent sets the "percent" field.
func (m *ProgressEventMutation) SetPercent(i int) {
	m.percent = &i
	m.addpercent = nil
}

// Percent returns the value of the "percent" field in the mutation.
func (m *ProgressEventMutation) Percent() (r int, exists bool) {
	v := m.percent
	if v == nil {
		return
	}
	return *v, true
}

// OldPercent returns the old "percent" field's value of the ProgressEvent entity.
// If the ProgressEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressEventMutation) OldPercent(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPercent: %w", err)
	}
	return oldValue.Percent, nil
}

// AddPercent adds i to the "percent" field.
func (m *ProgressEventMutation) AddPercent(i int) {
	if m.addpercent != nil {
		*m.addpercent += i
	} else {
		m.addpercent = &i
	}
}

// AddedPercent returns the value that was added to the "percent" field in this mutation.
func (m *ProgressEventMutation) AddedPercent() (r int, exists bool) {
	v := m.addpercent
	if v == nil {
		return
	}
	return *v, true
}

// ResetPercent resets all changes to the "percent" field.
func (m *ProgressEventMutation) ResetPercent() {
	m.percent = nil
	m.addpercent = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProgressEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProgressEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProgressEvent entity.
// If the ProgressEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProgressEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ProgressEventMutation builder.
func (m *ProgressEventMutation) Where(ps ...predicate.ProgressEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProgressEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProgressEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProgressEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProgressEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProgressEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProgressEvent).
func (m *ProgressEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProgressEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.task_id != nil {
		fields = append(fields, progressevent.FieldTaskID)
	}
	if m.stage != nil {
		fields = append(fields, progressevent.FieldStage)
	}
	if m.message != nil {
		fields = append(fields, progressevent.FieldMessage)
	}
	if m.percent != nil {
		fields = append(fields, progressevent.FieldPercent)
	}
	if m.created_at != nil {
		fields = append(fields, progressevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProgressEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case progressevent.FieldTaskID:
		return m.TaskID()
	case progressevent.FieldStage:
		return m.Stage()
	case progressevent.FieldMessage:
		return m.Message()
	case progressevent.FieldPercent:
		return m.Percent()
	case progressevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProgressEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case progressevent.FieldTaskID:
		return m.OldTaskID(ctx)
	case progressevent.FieldStage:
		return m.OldStage(ctx)
	case progressevent.FieldMessage:
		return m.OldMessage(ctx)
	case progressevent.FieldPercent:
		return m.OldPercent(ctx)
	case progressevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProgressEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProgressEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case progressevent.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case progressevent.FieldStage:
		v, ok := value.(progressevent.Stage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case progressevent.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case progressevent.FieldPercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPercent(v)
		return nil
	case progressevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProgressEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProgressEventMutation) AddedFields() []string {
	var fields []string
	if m.addpercent != nil {
		fields = append(fields, progressevent.FieldPercent)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProgressEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case progressevent.FieldPercent:
		return m.AddedPercent()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProgressEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case progressevent.FieldPercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPercent(v)
		return nil
	}
	return fmt.Errorf("unknown ProgressEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProgressEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProgressEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProgressEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ProgressEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProgressEventMutation) ResetField(name string) error {
	switch name {
	case progressevent.FieldTaskID:
		m.ResetTaskID()
		return nil
	case progressevent.FieldStage:
		m.ResetStage()
		return nil
	case progressevent.FieldMessage:
		m.ResetMessage()
		return nil
	case progressevent.FieldPercent:
		m.ResetPercent()
		return nil
	case progressevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProgressEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProgressEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProgressEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProgressEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProgressEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProgressEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProgressEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProgressEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProgressEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProgressEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProgressEvent edge %s", name)
}

// RedditPostMutation represents an operation that mutates the RedditPost nodes in the graph.
type RedditPostMutation struct {
	config
	op              Op
	typ             string
	id              *string
	subreddit       *string
	title           *string
	body            *string
	score           *int
	addscore        *int
	num_comments    *int
	addnum_comments *int
	permalink       *string
	over_18         *bool
	comment_summary *string
	last_used_at    *time.Time
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*RedditPost, error)
	predicates      []predicate.RedditPost
}

var _ ent.Mutation = (*RedditPostMutation)(nil)

// redditpostOption allows management of the mutation configuration using functional options.
type redditpostOption func(*RedditPostMutation)

// newRedditPostMutation creates new mutation for the RedditPost entity.
func newRedditPostMutation(c config, op Op, opts ...redditpostOption) *RedditPostMutation {
	m := &RedditPostMutation{
		config:        c,
		op:            op,
		typ:           TypeRedditPost,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRedditPostID sets the ID field of the mutation.
func withRedditPostID(id string) redditpostOption {
	return func(m *RedditPostMutation) {
		var (
			err   error
			once  sync.Once
			value *RedditPost
		)
		m.oldValue = func(ctx context.Context) (*RedditPost, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RedditPost.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRedditPost sets the old RedditPost of the mutation.
func withRedditPost(node *RedditPost) redditpostOption {
	return func(m *RedditPostMutation) {
		m.oldValue = func(context.Context) (*RedditPost, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RedditPostMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RedditPostMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RedditPost entities.
func (m *RedditPostMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RedditPostMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RedditPostMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RedditPost.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSubreddit sets the "subreddit" field.
func (m *RedditPostMutation) SetSubreddit(s string) {
	m.subreddit = &s
}

// Subreddit returns the value of the "subreddit" field in the mutation.
func (m *RedditPostMutation) Subreddit() (r string, exists bool) {
	v := m.subreddit
	if v == nil {
		return
	}
	return *v, true
}

// OldSubreddit returns the old "subreddit" field's value of the RedditPost entity.
// If the RedditPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RedditPostMutation) OldSubreddit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubreddit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubreddit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubreddit: %w", err)
	}
	return oldValue.Subreddit, nil
}

// ResetSubreddit resets all changes to the "subreddit" field.
func (m *RedditPostMutation) ResetSubreddit() {
	m.subreddit = nil
}

// SetTitle sets the "title" field.
func (m *RedditPostMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *RedditPostMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the RedditPost entity.
// If the RedditPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RedditPostMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *RedditPostMutation) ResetTitle() {
	m.title = nil
}

// SetBody sets the "body" field.
func (m *RedditPostMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *RedditPostMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the RedditPost entity.
// If the RedditPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RedditPostMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ClearBody clears the value of the "body" field.
func (m *RedditPostMutation) ClearBody() {
	m.body = nil
	m.clearedFields[redditpost.FieldBody] = struct{}{}
}

// BodyCleared returns if the "body" field was cleared in this mutation.
func (m *RedditPostMutation) BodyCleared() bool {
	_, ok := m.clearedFields[redditpost.FieldBody]
	return ok
}

// ResetBody resets all changes to the "body" field.
func (m *RedditPostMutation) ResetBody() {
	m.body = nil
	delete(m.clearedFields, redditpost.FieldBody)
}

// SetScore sets the "score" field.
func (m *RedditPostMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *RedditPostMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the RedditPost entity.
// If the RedditPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RedditPostMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *RedditPostMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *RedditPostMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *RedditPostMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetNumComments sets the "num_comments" field.
func (m *RedditPostMutation) SetNumComments(i int) {
	m.num_comments = &i
	m.addnum_comments = nil
}

// NumComments returns the value of the "num_comments" field in the mutation.
func (m *RedditPostMutation) NumComments() (r int, exists bool) {
	v := m.num_comments
	if v == nil {
		return
	}
	return *v, true
}

// OldNumComments returns the old "num_comments" field's value of the RedditPost entity.
// If the RedditPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RedditPostMutation) OldNumComments(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumComments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumComments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumComments: %w", err)
	}
	return oldValue.NumComments, nil
}

// AddNumComments adds i to the "num_comments" field.
func (m *RedditPostMutation) AddNumComments(i int) {
	if m.addnum_comments != nil {
		*m.addnum_comments += i
	} else {
		m.addnum_comments = &i
	}
}

// AddedNumComments returns the value that was added to the "num_comments" field in this mutation.
func (m *RedditPostMutation) AddedNumComments() (r int, exists bool) {
	v := m.addnum_comments
	if v == nil {
		return
	}
	return *v, true
}

// ResetNumComments resets all changes to the "num_comments" field.
func (m *RedditPostMutation) ResetNumComments() {
	m.num_comments = nil
	m.addnum_comments = nil
}

// SetPermalink sets the "permalink" field.
func (m *RedditPostMutation) SetPermalink(s string) {
	m.permalink = &s
}

// Permalink returns the value of the "permalink" field in the mutation.
func (m *RedditPostMutation) Permalink() (r string, exists bool) {
	v := m.permalink
	if v == nil {
		return
	}
	return *v, true
}

// OldPermalink returns the old "permalink" field's value of the RedditPost entity.
// If the RedditPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RedditPostMutation) OldPermalink(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPermalink is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPermalink requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPermalink: %w", err)
	}
	return oldValue.Permalink, nil
}

// ResetPermalink resets all changes to the "permalink" field.
func (m *RedditPostMutation) ResetPermalink() {
	m.permalink = nil
}

// SetOver18 sets the "over_18" field.
func (m *RedditPostMutation) SetOver18(b bool) {
	m.over_18 = &b
}

// Over18 returns the value of the "over_18" field in the mutation.
func (m *RedditPostMutation) Over18() (r bool, exists bool) {
	v := m.over_18
	if v == nil {
		return
	}
	return *v, true
}

// OldOver18 returns the old "over_18" field's value of the RedditPost entity.
// If the RedditPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RedditPostMutation) OldOver18(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOver18 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOver18 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOver18: %w", err)
	}
	return oldValue.Over18, nil
}

// ResetOver18 resets all changes to the "over_18" field.
func (m *RedditPostMutation) ResetOver18() {
	m.over_18 = nil
}

// SetCommentSummary sets the "comment_summary" field.
func (m *RedditPostMutation) SetCommentSummary(s string) {
	m.comment_summary = &s
}

// CommentSummary returns the value of the "comment_summary" field in the mutation.
func (m *RedditPostMutation) CommentSummary() (r string, exists bool) {
	v := m.comment_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldCommentSummary returns the old "comment_summary" field's value of the RedditPost entity.
// If the RedditPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RedditPostMutation) OldCommentSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommentSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommentSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommentSummary: %w", err)
	}
	return oldValue.CommentSummary, nil
}

// ClearCommentSummary clears the value of the "comment_summary" field.
func (m *RedditPostMutation) ClearCommentSummary() {
	m.comment_summary = nil
	m.clearedFields[redditpost.FieldCommentSummary] = struct{}{}
}

// CommentSummaryCleared returns if the "comment_summary" field was cleared in this mutation.
func (m *RedditPostMutation) CommentSummaryCleared() bool {
	_, ok := m.clearedFields[redditpost.FieldCommentSummary]
	return ok
}

// ResetCommentSummary resets all changes to the "comment_summary" field.
func (m *RedditPostMutation) ResetCommentSummary() {
	m.comment_summary = nil
	delete(m.clearedFields, redditpost.FieldCommentSummary)
}

// SetLastUsedAt sets the "last_used_at" field.
func (m *RedditPostMutation) SetLastUsedAt(t time.Time) {
	m.last_used_at = &t
}

// LastUsedAt returns the value of the "last_used_at" field in the mutation.
func (m *RedditPostMutation) LastUsedAt() (r time.Time, exists bool) {
	v := m.last_used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsedAt returns the old "last_used_at" field's value of the RedditPost entity.
// If the RedditPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RedditPostMutation) OldLastUsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsedAt: %w", err)
	}
	return oldValue.LastUsedAt, nil
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (m *RedditPostMutation) ClearLastUsedAt() {
	m.last_used_at = nil
	m.clearedFields[redditpost.FieldLastUsedAt] = struct{}{}
}

// LastUsedAtCleared returns if the "last_used_at" field was cleared in this mutation.
func (m *RedditPostMutation) LastUsedAtCleared() bool {
	_, ok := m.clearedFields[redditpost.FieldLastUsedAt]
	return ok
}

// ResetLastUsedAt resets all changes to the "last_used_at" field.
func (m *RedditPostMutation) ResetLastUsedAt() {
	m.last_used_at = nil
	delete(m.clearedFields, redditpost.FieldLastUsedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *RedditPostMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RedditPostMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RedditPost entity.
// If the RedditPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RedditPostMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RedditPostMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the RedditPostMutation builder.
func (m *RedditPostMutation) Where(ps ...predicate.RedditPost) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RedditPostMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RedditPostMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RedditPost, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RedditPostMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RedditPostMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RedditPost).
func (m *RedditPostMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RedditPostMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.subreddit != nil {
		fields = append(fields, redditpost.FieldSubreddit)
	}
	if m.title != nil {
		fields = append(fields, redditpost.FieldTitle)
	}
	if m.body != nil {
		fields = append(fields, redditpost.FieldBody)
	}
	if m.score != nil {
		fields = append(fields, redditpost.FieldScore)
	}
	if m.num_comments != nil {
		fields = append(fields, redditpost.FieldNumComments)
	}
	if m.permalink != nil {
		fields = append(fields, redditpost.FieldPermalink)
	}
	if m.over_18 != nil {
		fields = append(fields, redditpost.FieldOver18)
	}
	if m.comment_summary != nil {
		fields = append(fields, redditpost.FieldCommentSummary)
	}
	if m.last_used_at != nil {
		fields = append(fields, redditpost.FieldLastUsedAt)
	}
	if m.created_at != nil {
		fields = append(fields, redditpost.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RedditPostMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case redditpost.FieldSubreddit:
		return m.Subreddit()
	case redditpost.FieldTitle:
		return m.Title()
	case redditpost.FieldBody:
		return m.Body()
	case redditpost.FieldScore:
		return m.Score()
	case redditpost.FieldNumComments:
		return m.NumComments()
	case redditpost.FieldPermalink:
		return m.Permalink()
	case redditpost.FieldOver18:
		return m.Over18()
	case redditpost.FieldCommentSummary:
		return m.CommentSummary()
	case redditpost.FieldLastUsedAt:
		return m.LastUsedAt()
	case redditpost.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RedditPostMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case redditpost.FieldSubreddit:
		return m.OldSubreddit(ctx)
	case redditpost.FieldTitle:
		return m.OldTitle(ctx)
	case redditpost.FieldBody:
		return m.OldBody(ctx)
	case redditpost.FieldScore:
		return m.OldScore(ctx)
	case redditpost.FieldNumComments:
		return m.OldNumComments(ctx)
	case redditpost.FieldPermalink:
		return m.OldPermalink(ctx)
	case redditpost.FieldOver18:
		return m.OldOver18(ctx)
	case redditpost.FieldCommentSummary:
		return m.OldCommentSummary(ctx)
	case redditpost.FieldLastUsedAt:
		return m.OldLastUsedAt(ctx)
	case redditpost.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RedditPost field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RedditPostMutation) SetField(name string, value ent.Value) error {
	switch name {
	case redditpost.FieldSubreddit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubreddit(v)
		return nil
	case redditpost.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case redditpost.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case redditpost.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case redditpost.FieldNumComments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumComments(v)
		return nil
	case redditpost.FieldPermalink:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPermalink(v)
		return nil
	case redditpost.FieldOver18:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOver18(v)
		return nil
	case redditpost.FieldCommentSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommentSummary(v)
		return nil
	case redditpost.FieldLastUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsedAt(v)
		return nil
	case redditpost.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RedditPost field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RedditPostMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, redditpost.FieldScore)
	}
	if m.addnum_comments != nil {
		fields = append(fields, redditpost.FieldNumComments)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RedditPostMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case redditpost.FieldScore:
		return m.AddedScore()
	case redditpost.FieldNumComments:
		return m.AddedNumComments()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RedditPostMutation) AddField(name string, value ent.Value) error {
	switch name {
	case redditpost.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case redditpost.FieldNumComments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumComments(v)
		return nil
	}
	return fmt.Errorf("unknown RedditPost numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RedditPostMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(redditpost.FieldBody) {
		fields = append(fields, redditpost.FieldBody)
	}
	if m.FieldCleared(redditpost.FieldCommentSummary) {
		fields = append(fields, redditpost.FieldCommentSummary)
	}
	if m.FieldCleared(redditpost.FieldLastUsedAt) {
		fields = append(fields, redditpost.FieldLastUsedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RedditPostMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RedditPostMutation) ClearField(name string) error {
	switch name {
	case redditpost.FieldBody:
		m.ClearBody()
		return nil
	case redditpost.FieldCommentSummary:
		m.ClearCommentSummary()
		return nil
	case redditpost.FieldLastUsedAt:
		m.ClearLastUsedAt()
		return nil
	}
	return fmt.Errorf("unknown RedditPost nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RedditPostMutation) ResetField(name string) error {
	switch name {
	case redditpost.FieldSubreddit:
		m.ResetSubreddit()
		return nil
	case redditpost.FieldTitle:
		m.ResetTitle()
		return nil
	case redditpost.FieldBody:
		m.ResetBody()
		return nil
	case redditpost.FieldScore:
		m.ResetScore()
		return nil
	case redditpost.FieldNumComments:
		m.ResetNumComments()
		return nil
	case redditpost.FieldPermalink:
		m.ResetPermalink()
		return nil
	case redditpost.FieldOver18:
		m.ResetOver18()
		return nil
	case redditpost.FieldCommentSummary:
		m.ResetCommentSummary()
		return nil
	case redditpost.FieldLastUsedAt:
		m.ResetLastUsedAt()
		return nil
	case redditpost.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RedditPost field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RedditPostMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RedditPostMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RedditPostMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RedditPostMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RedditPostMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RedditPostMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RedditPostMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RedditPost unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RedditPostMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RedditPost edge %s", name)
}

// SubredditMutation represents an operation that mutates the Subreddit nodes in the graph.
type SubredditMutation struct {
	config
	op            Op
	typ           string
	id            *int
	name          *string
	display_name  *string
	over_18       *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Subreddit, error)
	predicates    []predicate.Subreddit
}

var _ ent.Mutation = (*SubredditMutation)(nil)

// subredditOption allows management of the mutation configuration using functional options.
type subredditOption func(*SubredditMutation)

// newSubredditMutation creates new mutation for the Subreddit entity.
func newSubredditMutation(c config, op Op, opts ...subredditOption) *SubredditMutation {
	m := &SubredditMutation{
		config:        c,
		op:            op,
		typ:           TypeSubreddit,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubredditID sets the ID field of the mutation.
func withSubredditID(id int) subredditOption {
	return func(m *SubredditMutation) {
		var (
			err   error
			once  sync.Once
			value *Subreddit
		)
		m.oldValue = func(ctx context.Context) (*Subreddit, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Subreddit.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubreddit sets the old Subreddit of the mutation.
func withSubreddit(node *Subreddit) subredditOption {
	return func(m *SubredditMutation) {
		m.oldValue = func(context.Context) (*Subreddit, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubredditMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubredditMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubredditMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubredditMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Subreddit.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *SubredditMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SubredditMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Subreddit entity.
// If the Subreddit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubredditMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SubredditMutation) ResetName() {
	m.name = nil
}

// SetDisplayName sets the "display_name" field.
func (m *SubredditMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *SubredditMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the Subreddit entity.
// If the Subreddit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubredditMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *SubredditMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetOver18 sets the "over_18" field.
func (m *SubredditMutation) SetOver18(b bool) {
	m.over_18 = &b
}

// Over18 returns the value of the "over_18" field in the mutation.
func (m *SubredditMutation) Over18() (r bool, exists bool) {
	v := m.over_18
	if v == nil {
		return
	}
	return *v, true
}

// OldOver18 returns the old "over_18" field's value of the Subreddit entity.
// If the Subreddit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubredditMutation) OldOver18(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOver18 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOver18 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOver18: %w", err)
	}
	return oldValue.Over18, nil
}

// ResetOver18 resets all changes to the "over_18" field.
func (m *SubredditMutation) ResetOver18() {
	m.over_18 = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SubredditMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubredditMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Subreddit entity.
// If the Subreddit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubredditMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubredditMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SubredditMutation builder.
func (m *SubredditMutation) Where(ps ...predicate.Subreddit) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubredditMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubredditMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Subreddit, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubredditMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubredditMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Subreddit).
func (m *SubredditMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubredditMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, subreddit.FieldName)
	}
	if m.display_name != nil {
		fields = append(fields, subreddit.FieldDisplayName)
	}
	if m.over_18 != nil {
		fields = append(fields, subreddit.FieldOver18)
	}
	if m.created_at != nil {
		fields = append(fields, subreddit.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubredditMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subreddit.FieldName:
		return m.Name()
	case subreddit.FieldDisplayName:
		return m.DisplayName()
	case subreddit.FieldOver18:
		return m.Over18()
	case subreddit.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubredditMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subreddit.FieldName:
		return m.OldName(ctx)
	case subreddit.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case subreddit.FieldOver18:
		return m.OldOver18(ctx)
	case subreddit.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Subreddit field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubredditMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subreddit.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case subreddit.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case subreddit.FieldOver18:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOver18(v)
		return nil
	case subreddit.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Subreddit field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubredditMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubredditMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubredditMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Subreddit numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubredditMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubredditMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubredditMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Subreddit nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubredditMutation) ResetField(name string) error {
	switch name {
	case subreddit.FieldName:
		m.ResetName()
		return nil
	case subreddit.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case subreddit.FieldOver18:
		m.ResetOver18()
		return nil
	case subreddit.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Subreddit field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubredditMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubredditMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubredditMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubredditMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubredditMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubredditMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubredditMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Subreddit unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubredditMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Subreddit edge %s", name)
}

// SubredditGoalMutation represents an operation that mutates the SubredditGoal nodes in the graph.
type SubredditGoalMutation struct {
	config
	op                Op
	typ               string
	id                *int
	subreddit         *string
	goal_amount       *int64
	addgoal_amount    *int64
	current_amount    *int64
	addcurrent_amount *int64
	status            *subredditgoal.Status
	completed_at      *time.Time
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*SubredditGoal, error)
	predicates        []predicate.SubredditGoal
}

var _ ent.Mutation = (*SubredditGoalMutation)(nil)

// subredditgoalOption allows management of the mutation configuration using functional options.
type subredditgoalOption func(*SubredditGoalMutation)

// newSubredditGoalMutation creates new mutation for the SubredditGoal entity.
func newSubredditGoalMutation(c config, op Op, opts ...subredditgoalOption) *SubredditGoalMutation {
	m := &SubredditGoalMutation{
		config:        c,
		op:            op,
		typ:           TypeSubredditGoal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubredditGoalID sets the ID field of the mutation.
func withSubredditGoalID(id int) subredditgoalOption {
	return func(m *SubredditGoalMutation) {
		var (
			err   error
			once  sync.Once
			value *SubredditGoal
		)
		m.oldValue = func(ctx context.Context) (*SubredditGoal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SubredditGoal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubredditGoal sets the old SubredditGoal of the mutation.
func withSubredditGoal(node *SubredditGoal) subredditgoalOption {
	return func(m *SubredditGoalMutation) {
		m.oldValue = func(context.Context) (*SubredditGoal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubredditGoalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubredditGoalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubredditGoalMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubredditGoalMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SubredditGoal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSubreddit sets the "subreddit" field.
func (m *SubredditGoalMutation) SetSubreddit(s string) {
	m.subreddit = &s
}

// Subreddit returns the value of the "subreddit" field in the mutation.
func (m *SubredditGoalMutation) Subreddit() (r string, exists bool) {
	v := m.subreddit
	if v == nil {
		return
	}
	return *v, true
}

// OldSubreddit returns the old "subreddit" field's value of the SubredditGoal entity.
// If the SubredditGoal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubredditGoalMutation) OldSubreddit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubreddit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubreddit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubreddit: %w", err)
	}
	return oldValue.Subreddit, nil
}

// ResetSubreddit resets all changes to the "subreddit" field.
func (m *SubredditGoalMutation) ResetSubreddit() {
	m.subreddit = nil
}

// SetGoalAmount sets the "goal_amount" field.
func (m *SubredditGoalMutation) SetGoalAmount(i int64) {
	m.goal_amount = &i
	m.addgoal_amount = nil
}

// GoalAmount returns the value of the "goal_amount" field in the mutation.
func (m *SubredditGoalMutation) GoalAmount() (r int64, exists bool) {
	v := m.goal_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldGoalAmount returns the old "goal_amount" field's value of the SubredditGoal entity.
// If the SubredditGoal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubredditGoalMutation) OldGoalAmount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoalAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoalAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoalAmount: %w", err)
	}
	return oldValue.GoalAmount, nil
}

// AddGoalAmount adds i to the "goal_amount" field.
func (m *SubredditGoalMutation) AddGoalAmount(i int64) {
	if m.addgoal_amount != nil {
		*m.addgoal_amount += i
	} else {
		m.addgoal_amount = &i
	}
}

// AddedGoalAmount returns the value that was added to the "goal_amount" field in this mutation.
func (m *SubredditGoalMutation) AddedGoalAmount() (r int64, exists bool) {
	v := m.addgoal_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetGoalAmount resets all changes to the "goal_amount" field.
func (m *SubredditGoalMutation) ResetGoalAmount() {
	m.goal_amount = nil
	m.addgoal_amount = nil
}

// SetCurrentAmount sets the "current_amount" field.
func (m *SubredditGoalMutation) SetCurrentAmount(i int64) {
	m.current_amount = &i
	m.addcurrent_amount = nil
}

// CurrentAmount returns the value of the "current_amount" field in the mutation.
func (m *SubredditGoalMutation) CurrentAmount() (r int64, exists bool) {
	v := m.current_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentAmount returns the old "current_amount" field's value of the SubredditGoal entity.
// If the SubredditGoal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubredditGoalMutation) OldCurrentAmount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentAmount: %w", err)
	}
	return oldValue.CurrentAmount, nil
}

// AddCurrentAmount adds i to the "current_amount" field.
func (m *SubredditGoalMutation) AddCurrentAmount(i int64) {
	if m.addcurrent_amount != nil {
		*m.addcurrent_amount += i
	} else {
		m.addcurrent_amount = &i
	}
}

// AddedCurrentAmount returns the value that was added to the "current_amount" field in this mutation.
func (m *SubredditGoalMutation) AddedCurrentAmount() (r int64, exists bool) {
	v := m.addcurrent_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentAmount resets all changes to the "current_amount" field.
func (m *SubredditGoalMutation) ResetCurrentAmount() {
	m.current_amount = nil
	m.addcurrent_amount = nil
}

// SetStatus sets the "status" field.
func (m *SubredditGoalMutation) SetStatus(s subredditgoal.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SubredditGoalMutation) Status() (r subredditgoal.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SubredditGoal entity.
// If the SubredditGoal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubredditGoalMutation) OldStatus(ctx context.Context) (v subredditgoal.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SubredditGoalMutation) ResetStatus() {
	m.status = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *SubredditGoalMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SubredditGoalMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the SubredditGoal entity.
// If the SubredditGoal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubredditGoalMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SubredditGoalMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[subredditgoal.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SubredditGoalMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[subredditgoal.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SubredditGoalMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, subredditgoal.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *SubredditGoalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubredditGoalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SubredditGoal entity.
// If the SubredditGoal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubredditGoalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubredditGoalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SubredditGoalMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SubredditGoalMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SubredditGoal entity.
// If the SubredditGoal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubredditGoalMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SubredditGoalMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SubredditGoalMutation builder.
func (m *SubredditGoalMutation) Where(ps ...predicate.SubredditGoal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubredditGoalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubredditGoalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SubredditGoal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubredditGoalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubredditGoalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SubredditGoal).
func (m *SubredditGoalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubredditGoalMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.subreddit != nil {
		fields = append(fields, subredditgoal.FieldSubreddit)
	}
	if m.goal_amount != nil {
		fields = append(fields, subredditgoal.FieldGoalAmount)
	}
	if m.current_amount != nil {
		fields = append(fields, subredditgoal.FieldCurrentAmount)
	}
	if m.status != nil {
		fields = append(fields, subredditgoal.FieldStatus)
	}
	if m.completed_at != nil {
		fields = append(fields, subredditgoal.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, subredditgoal.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, subredditgoal.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubredditGoalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subredditgoal.FieldSubreddit:
		return m.Subreddit()
	case subredditgoal.FieldGoalAmount:
		return m.GoalAmount()
	case subredditgoal.FieldCurrentAmount:
		return m.CurrentAmount()
	case subredditgoal.FieldStatus:
		return m.Status()
	case subredditgoal.FieldCompletedAt:
		return m.CompletedAt()
	case subredditgoal.FieldCreatedAt:
		return m.CreatedAt()
	case subredditgoal.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubredditGoalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subredditgoal.FieldSubreddit:
		return m.OldSubreddit(ctx)
	case subredditgoal.FieldGoalAmount:
		return m.OldGoalAmount(ctx)
	case subredditgoal.FieldCurrentAmount:
		return m.OldCurrentAmount(ctx)
	case subredditgoal.FieldStatus:
		return m.OldStatus(ctx)
	case subredditgoal.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case subredditgoal.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case subredditgoal.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SubredditGoal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubredditGoalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subredditgoal.FieldSubreddit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubreddit(v)
		return nil
	case subredditgoal.FieldGoalAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoalAmount(v)
		return nil
	case subredditgoal.FieldCurrentAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentAmount(v)
		return nil
	case subredditgoal.FieldStatus:
		v, ok := value.(subredditgoal.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case subredditgoal.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case subredditgoal.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case subredditgoal.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SubredditGoal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubredditGoalMutation) AddedFields() []string {
	var fields []string
	if m.addgoal_amount != nil {
		fields = append(fields, subredditgoal.FieldGoalAmount)
	}
	if m.addcurrent_amount != nil {
		fields = append(fields, subredditgoal.FieldCurrentAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubredditGoalMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case subredditgoal.FieldGoalAmount:
		return m.AddedGoalAmount()
	case subredditgoal.FieldCurrentAmount:
		return m.AddedCurrentAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubredditGoalMutation) AddField(name string, value ent.Value) error {
	switch name {
	case subredditgoal.FieldGoalAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGoalAmount(v)
		return nil
	case subredditgoal.FieldCurrentAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentAmount(v)
		return nil
	}
	return fmt.Errorf("unknown SubredditGoal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubredditGoalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(subredditgoal.FieldCompletedAt) {
		fields = append(fields, subredditgoal.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubredditGoalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubredditGoalMutation) ClearField(name string) error {
	switch name {
	case subredditgoal.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown SubredditGoal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubredditGoalMutation) ResetField(name string) error {
	switch name {
	case subredditgoal.FieldSubreddit:
		m.ResetSubreddit()
		return nil
	case subredditgoal.FieldGoalAmount:
		m.ResetGoalAmount()
		return nil
	case subredditgoal.FieldCurrentAmount:
		m.ResetCurrentAmount()
		return nil
	case subredditgoal.FieldStatus:
		m.ResetStatus()
		return nil
	case subredditgoal.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case subredditgoal.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case subredditgoal.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SubredditGoal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubredditGoalMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubredditGoalMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubredditGoalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubredditGoalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubredditGoalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubredditGoalMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubredditGoalMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SubredditGoal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubredditGoalMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SubredditGoal edge %s", name)
}

// TierMutation represents an operation that mutates the Tier nodes in the graph.
type TierMutation struct {
	config
	op            Op
	typ           string
	id            *int
	name          *string
	min_amount    *int64
	addmin_amount *int64
	display_name  *string
	color         *string
	hd            *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Tier, error)
	predicates    []predicate.Tier
}

var _ ent.Mutation = (*TierMutation)(nil)

// tierOption allows management of the mutation configuration using functional options.
type tierOption func(*TierMutation)

// newTierMutation creates new mutation for the Tier entity.
func newTierMutation(c config, op Op, opts ...tierOption) *TierMutation {
	m := &TierMutation{
		config:        c,
		op:            op,
		typ:           TypeTier,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTierID sets the ID field of the mutation.
func withTierID(id int) tierOption {
	return func(m *TierMutation) {
		var (
			err   error
			once  sync.Once
			value *Tier
		)
		m.oldValue = func(ctx context.Context) (*Tier, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Tier.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTier sets the old Tier of the mutation.
func withTier(node *Tier) tierOption {
	return func(m *TierMutation) {
		m.oldValue = func(context.Context) (*Tier, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TierMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TierMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TierMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TierMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Tier.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TierMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TierMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Tier entity.
// If the Tier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TierMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TierMutation) ResetName() {
	m.name = nil
}

// SetMinAmount sets the "min_amount" field.
func (m *TierMutation) SetMinAmount(i int64) {
	m.min_amount = &i
	m.addmin_amount = nil
}

// MinAmount returns the value of the "min_amount" field in the mutation.
func (m *TierMutation) MinAmount() (r int64, exists bool) {
	v := m.min_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldMinAmount returns the old "min_amount" field's value of the Tier entity.
// If the Tier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TierMutation) OldMinAmount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinAmount: %w", err)
	}
	return oldValue.MinAmount, nil
}

// AddMinAmount adds i to the "min_amount" field.
func (m *TierMutation) AddMinAmount(i int64) {
	if m.addmin_amount != nil {
		*m.addmin_amount += i
	} else {
		m.addmin_amount = &i
	}
}

// AddedMinAmount returns the value that was added to the "min_amount" field in this mutation.
func (m *TierMutation) AddedMinAmount() (r int64, exists bool) {
	v := m.addmin_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinAmount resets all changes to the "min_amount" field.
func (m *TierMutation) ResetMinAmount() {
	m.min_amount = nil
	m.addmin_amount = nil
}

// SetDisplayName sets the "display_name" field.
func (m *TierMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *TierMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the Tier entity.
// If the Tier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TierMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *TierMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetColor sets the "color" field.
func (m *TierMutation) SetColor(s string) {
	m.color = &s
}

// Color returns the value of the "color" field in the mutation.
func (m *TierMutation) Color() (r string, exists bool) {
	v := m.color
	if v == nil {
		return
	}
	return *v, true
}

// OldColor returns the old "color" field's value of the Tier entity.
// If the Tier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TierMutation) OldColor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColor: %w", err)
	}
	return oldValue.Color, nil
}

// ClearColor clears the value of the "color" field.
func (m *TierMutation) ClearColor() {
	m.color = nil
	m.clearedFields[tier.FieldColor] = struct{}{}
}

// ColorCleared returns if the "color" field was cleared in this mutation.
func (m *TierMutation) ColorCleared() bool {
	_, ok := m.clearedFields[tier.FieldColor]
	return ok
}

// ResetColor resets all changes to the "color" field.
func (m *TierMutation) ResetColor() {
	m.color = nil
	delete(m.clearedFields, tier.FieldColor)
}

// SetHd sets the "hd" field.
func (m *TierMutation) SetHd(b bool) {
	m.hd = &b
}

// Hd returns the value of the "hd" field in the mutation.
func (m *TierMutation) Hd() (r bool, exists bool) {
	v := m.hd
	if v == nil {
		return
	}
	return *v, true
}

// OldHd returns the old "hd" field's value of the Tier entity.
// If the Tier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TierMutation) OldHd(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHd: %w", err)
	}
	return oldValue.Hd, nil
}

// ResetHd resets all changes to the "hd" field.
func (m *TierMutation) ResetHd() {
	m.hd = nil
}

// Where appends a list predicates to the TierMutation builder.
func (m *TierMutation) Where(ps ...predicate.Tier) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TierMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TierMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Tier, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TierMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TierMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Tier).
func (m *TierMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TierMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, tier.FieldName)
	}
	if m.min_amount != nil {
		fields = append(fields, tier.FieldMinAmount)
	}
	if m.display_name != nil {
		fields = append(fields, tier.FieldDisplayName)
	}
	if m.color != nil {
		fields = append(fields, tier.FieldColor)
	}
	if m.hd != nil {
		fields = append(fields, tier.FieldHd)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TierMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tier.FieldName:
		return m.Name()
	case tier.FieldMinAmount:
		return m.MinAmount()
	case tier.FieldDisplayName:
		return m.DisplayName()
	case tier.FieldColor:
		return m.Color()
	case tier.FieldHd:
		return m.Hd()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TierMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tier.FieldName:
		return m.OldName(ctx)
	case tier.FieldMinAmount:
		return m.OldMinAmount(ctx)
	case tier.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case tier.FieldColor:
		return m.OldColor(ctx)
	case tier.FieldHd:
		return m.OldHd(ctx)
	}
	return nil, fmt.Errorf("unknown Tier field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TierMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tier.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case tier.FieldMinAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinAmount(v)
		return nil
	case tier.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case tier.FieldColor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColor(v)
		return nil
	case tier.FieldHd:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHd(v)
		return nil
	}
	return fmt.Errorf("unknown Tier field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TierMutation) AddedFields() []string {
	var fields []string
	if m.addmin_amount != nil {
		fields = append(fields, tier.FieldMinAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TierMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tier.FieldMinAmount:
		return m.AddedMinAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TierMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tier.FieldMinAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Tier numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TierMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tier.FieldColor) {
		fields = append(fields, tier.FieldColor)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TierMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TierMutation) ClearField(name string) error {
	switch name {
	case tier.FieldColor:
		m.ClearColor()
		return nil
	}
	return fmt.Errorf("unknown Tier nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TierMutation) ResetField(name string) error {
	switch name {
	case tier.FieldName:
		m.ResetName()
		return nil
	case tier.FieldMinAmount:
		m.ResetMinAmount()
		return nil
	case tier.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case tier.FieldColor:
		m.ResetColor()
		return nil
	case tier.FieldHd:
		m.ResetHd()
		return nil
	}
	return fmt.Errorf("unknown Tier field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TierMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TierMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TierMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TierMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TierMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TierMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TierMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Tier unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TierMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Tier edge %s", name)
}
