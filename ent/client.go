// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/redditart/commissioner/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/redditart/commissioner/ent/agentaction"
	"github.com/redditart/commissioner/ent/donation"
	"github.com/redditart/commissioner/ent/event"
	"github.com/redditart/commissioner/ent/pipelinetask"
	"github.com/redditart/commissioner/ent/productinfo"
	"github.com/redditart/commissioner/ent/progressevent"
	"github.com/redditart/commissioner/ent/redditpost"
	"github.com/redditart/commissioner/ent/subreddit"
	"github.com/redditart/commissioner/ent/subredditgoal"
	"github.com/redditart/commissioner/ent/tier"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentAction is the client for interacting with the AgentAction builders.
	AgentAction *AgentActionClient
	// Donation is the client for interacting with the Donation builders.
	Donation *DonationClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// PipelineTask is the client for interacting with the PipelineTask builders.
	PipelineTask *PipelineTaskClient
	// ProductInfo is the client for interacting with the ProductInfo builders.
	ProductInfo *ProductInfoClient
	// ProgressEvent is the client for interacting with the ProgressEvent builders.
	ProgressEvent *ProgressEventClient
	// RedditPost is the client for interacting with the RedditPost builders.
	RedditPost *RedditPostClient
	// Subreddit is the client for interacting with the Subreddit builders.
	Subreddit *SubredditClient
	// SubredditGoal is the client for interacting with the SubredditGoal builders.
	SubredditGoal *SubredditGoalClient
	// Tier is the client for interacting with the Tier builders.
	Tier *TierClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentAction = NewAgentActionClient(c.config)
	c.Donation = NewDonationClient(c.config)
	c.Event = NewEventClient(c.config)
	c.PipelineTask = NewPipelineTaskClient(c.config)
	c.ProductInfo = NewProductInfoClient(c.config)
	c.ProgressEvent = NewProgressEventClient(c.config)
	c.RedditPost = NewRedditPostClient(c.config)
	c.Subreddit = NewSubredditClient(c.config)
	c.SubredditGoal = NewSubredditGoalClient(c.config)
	c.Tier = NewTierClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		AgentAction:   NewAgentActionClient(cfg),
		Donation:      NewDonationClient(cfg),
		Event:         NewEventClient(cfg),
		PipelineTask:  NewPipelineTaskClient(cfg),
		ProductInfo:   NewProductInfoClient(cfg),
		ProgressEvent: NewProgressEventClient(cfg),
		RedditPost:    NewRedditPostClient(cfg),
		Subreddit:     NewSubredditClient(cfg),
		SubredditGoal: NewSubredditGoalClient(cfg),
		Tier:          NewTierClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		AgentAction:   NewAgentActionClient(cfg),
		Donation:      NewDonationClient(cfg),
		Event:         NewEventClient(cfg),
		PipelineTask:  NewPipelineTaskClient(cfg),
		ProductInfo:   NewProductInfoClient(cfg),
		ProgressEvent: NewProgressEventClient(cfg),
		RedditPost:    NewRedditPostClient(cfg),
		Subreddit:     NewSubredditClient(cfg),
		SubredditGoal: NewSubredditGoalClient(cfg),
		Tier:          NewTierClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentAction.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AgentAction, c.Donation, c.Event, c.PipelineTask, c.ProductInfo,
		c.ProgressEvent, c.RedditPost, c.Subreddit, c.SubredditGoal, c.Tier,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentAction, c.Donation, c.Event, c.PipelineTask, c.ProductInfo,
		c.ProgressEvent, c.RedditPost, c.Subreddit, c.SubredditGoal, c.Tier,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentActionMutation:
		return c.AgentAction.mutate(ctx, m)
	case *DonationMutation:
		return c.Donation.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *PipelineTaskMutation:
		return c.PipelineTask.mutate(ctx, m)
	case *ProductInfoMutation:
		return c.ProductInfo.mutate(ctx, m)
	case *ProgressEventMutation:
		return c.ProgressEvent.mutate(ctx, m)
	case *RedditPostMutation:
		return c.RedditPost.mutate(ctx, m)
	case *SubredditMutation:
		return c.Subreddit.mutate(ctx, m)
	case *SubredditGoalMutation:
		return c.SubredditGoal.mutate(ctx, m)
	case *TierMutation:
		return c.Tier.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentActionClient is a client for the AgentAction schema.
type AgentActionClient struct {
	config
}

// NewAgentActionClient returns a client for the AgentAction from the given config.
func NewAgentActionClient(c config) *AgentActionClient {
	return &AgentActionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentaction.Hooks(f(g(h())))`.
func (c *AgentActionClient) Use(hooks ...Hook) {
	c.hooks.AgentAction = append(c.hooks.AgentAction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentaction.Intercept(f(g(h())))`.
func (c *AgentActionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentAction = append(c.inters.AgentAction, interceptors...)
}

// Create returns a builder for creating a AgentAction entity.
func (c *AgentActionClient) Create() *AgentActionCreate {
	mutation := newAgentActionMutation(c.config, OpCreate)
	return &AgentActionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentAction entities.
func (c *AgentActionClient) CreateBulk(builders ...*AgentActionCreate) *AgentActionCreateBulk {
	return &AgentActionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentActionClient) MapCreateBulk(slice any, setFunc func(*AgentActionCreate, int)) *AgentActionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentActionCreateBulk{err: fmt.Errorf("calling to AgentActionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentActionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentActionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentAction.
func (c *AgentActionClient) Update() *AgentActionUpdate {
	mutation := newAgentActionMutation(c.config, OpUpdate)
	return &AgentActionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentActionClient) UpdateOne(_m *AgentAction) *AgentActionUpdateOne {
	mutation := newAgentActionMutation(c.config, OpUpdateOne, withAgentAction(_m))
	return &AgentActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentActionClient) UpdateOneID(id int) *AgentActionUpdateOne {
	mutation := newAgentActionMutation(c.config, OpUpdateOne, withAgentActionID(id))
	return &AgentActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentAction.
func (c *AgentActionClient) Delete() *AgentActionDelete {
	mutation := newAgentActionMutation(c.config, OpDelete)
	return &AgentActionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentActionClient) DeleteOne(_m *AgentAction) *AgentActionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentActionClient) DeleteOneID(id int) *AgentActionDeleteOne {
	builder := c.Delete().Where(agentaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentActionDeleteOne{builder}
}

// Query returns a query builder for AgentAction.
func (c *AgentActionClient) Query() *AgentActionQuery {
	return &AgentActionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentAction},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentAction entity by its id.
func (c *AgentActionClient) Get(ctx context.Context, id int) (*AgentAction, error) {
	return c.Query().Where(agentaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentActionClient) GetX(ctx context.Context, id int) *AgentAction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentActionClient) Hooks() []Hook {
	return c.hooks.AgentAction
}

// Interceptors returns the client interceptors.
func (c *AgentActionClient) Interceptors() []Interceptor {
	return c.inters.AgentAction
}

func (c *AgentActionClient) mutate(ctx context.Context, m *AgentActionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentActionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentActionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentActionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentAction mutation op: %q", m.Op())
	}
}

// DonationClient is a client for the Donation schema.
type DonationClient struct {
	config
}

// NewDonationClient returns a client for the Donation from the given config.
func NewDonationClient(c config) *DonationClient {
	return &DonationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `donation.Hooks(f(g(h())))`.
func (c *DonationClient) Use(hooks ...Hook) {
	c.hooks.Donation = append(c.hooks.Donation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `donation.Intercept(f(g(h())))`.
func (c *DonationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Donation = append(c.inters.Donation, interceptors...)
}

// Create returns a builder for creating a Donation entity.
func (c *DonationClient) Create() *DonationCreate {
	mutation := newDonationMutation(c.config, OpCreate)
	return &DonationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Donation entities.
func (c *DonationClient) CreateBulk(builders ...*DonationCreate) *DonationCreateBulk {
	return &DonationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DonationClient) MapCreateBulk(slice any, setFunc func(*DonationCreate, int)) *DonationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DonationCreateBulk{err: fmt.Errorf("calling to DonationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DonationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DonationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Donation.
func (c *DonationClient) Update() *DonationUpdate {
	mutation := newDonationMutation(c.config, OpUpdate)
	return &DonationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DonationClient) UpdateOne(_m *Donation) *DonationUpdateOne {
	mutation := newDonationMutation(c.config, OpUpdateOne, withDonation(_m))
	return &DonationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DonationClient) UpdateOneID(id string) *DonationUpdateOne {
	mutation := newDonationMutation(c.config, OpUpdateOne, withDonationID(id))
	return &DonationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Donation.
func (c *DonationClient) Delete() *DonationDelete {
	mutation := newDonationMutation(c.config, OpDelete)
	return &DonationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DonationClient) DeleteOne(_m *Donation) *DonationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DonationClient) DeleteOneID(id string) *DonationDeleteOne {
	builder := c.Delete().Where(donation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DonationDeleteOne{builder}
}

// Query returns a query builder for Donation.
func (c *DonationClient) Query() *DonationQuery {
	return &DonationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDonation},
		inters: c.Interceptors(),
	}
}

// Get returns a Donation entity by its id.
func (c *DonationClient) Get(ctx context.Context, id string) (*Donation, error) {
	return c.Query().Where(donation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DonationClient) GetX(ctx context.Context, id string) *Donation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DonationClient) Hooks() []Hook {
	return c.hooks.Donation
}

// Interceptors returns the client interceptors.
func (c *DonationClient) Interceptors() []Interceptor {
	return c.inters.Donation
}

func (c *DonationClient) mutate(ctx context.Context, m *DonationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DonationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DonationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DonationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DonationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Donation mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// PipelineTaskClient is a client for the PipelineTask schema.
type PipelineTaskClient struct {
	config
}

// NewPipelineTaskClient returns a client for the PipelineTask from the given config.
func NewPipelineTaskClient(c config) *PipelineTaskClient {
	return &PipelineTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pipelinetask.Hooks(f(g(h())))`.
func (c *PipelineTaskClient) Use(hooks ...Hook) {
	c.hooks.PipelineTask = append(c.hooks.PipelineTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pipelinetask.Intercept(f(g(h())))`.
func (c *PipelineTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.PipelineTask = append(c.inters.PipelineTask, interceptors...)
}

// Create returns a builder for creating a PipelineTask entity.
func (c *PipelineTaskClient) Create() *PipelineTaskCreate {
	mutation := newPipelineTaskMutation(c.config, OpCreate)
	return &PipelineTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PipelineTask entities.
func (c *PipelineTaskClient) CreateBulk(builders ...*PipelineTaskCreate) *PipelineTaskCreateBulk {
	return &PipelineTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PipelineTaskClient) MapCreateBulk(slice any, setFunc func(*PipelineTaskCreate, int)) *PipelineTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PipelineTaskCreateBulk{err: fmt.Errorf("calling to PipelineTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PipelineTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PipelineTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PipelineTask.
func (c *PipelineTaskClient) Update() *PipelineTaskUpdate {
	mutation := newPipelineTaskMutation(c.config, OpUpdate)
	return &PipelineTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PipelineTaskClient) UpdateOne(_m *PipelineTask) *PipelineTaskUpdateOne {
	mutation := newPipelineTaskMutation(c.config, OpUpdateOne, withPipelineTask(_m))
	return &PipelineTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PipelineTaskClient) UpdateOneID(id string) *PipelineTaskUpdateOne {
	mutation := newPipelineTaskMutation(c.config, OpUpdateOne, withPipelineTaskID(id))
	return &PipelineTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PipelineTask.
func (c *PipelineTaskClient) Delete() *PipelineTaskDelete {
	mutation := newPipelineTaskMutation(c.config, OpDelete)
	return &PipelineTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PipelineTaskClient) DeleteOne(_m *PipelineTask) *PipelineTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PipelineTaskClient) DeleteOneID(id string) *PipelineTaskDeleteOne {
	builder := c.Delete().Where(pipelinetask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PipelineTaskDeleteOne{builder}
}

// Query returns a query builder for PipelineTask.
func (c *PipelineTaskClient) Query() *PipelineTaskQuery {
	return &PipelineTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePipelineTask},
		inters: c.Interceptors(),
	}
}

// Get returns a PipelineTask entity by its id.
func (c *PipelineTaskClient) Get(ctx context.Context, id string) (*PipelineTask, error) {
	return c.Query().Where(pipelinetask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PipelineTaskClient) GetX(ctx context.Context, id string) *PipelineTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PipelineTaskClient) Hooks() []Hook {
	return c.hooks.PipelineTask
}

// Interceptors returns the client interceptors.
func (c *PipelineTaskClient) Interceptors() []Interceptor {
	return c.inters.PipelineTask
}

func (c *PipelineTaskClient) mutate(ctx context.Context, m *PipelineTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PipelineTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PipelineTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PipelineTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PipelineTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PipelineTask mutation op: %q", m.Op())
	}
}

// ProductInfoClient is a client for the ProductInfo schema.
type ProductInfoClient struct {
	config
}

// NewProductInfoClient returns a client for the ProductInfo from the given config.
func NewProductInfoClient(c config) *ProductInfoClient {
	return &ProductInfoClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `productinfo.Hooks(f(g(h())))`.
func (c *ProductInfoClient) Use(hooks ...Hook) {
	c.hooks.ProductInfo = append(c.hooks.ProductInfo, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `productinfo.Intercept(f(g(h())))`.
func (c *ProductInfoClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProductInfo = append(c.inters.ProductInfo, interceptors...)
}

// Create returns a builder for creating a ProductInfo entity.
func (c *ProductInfoClient) Create() *ProductInfoCreate {
	mutation := newProductInfoMutation(c.config, OpCreate)
	return &ProductInfoCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProductInfo entities.
func (c *ProductInfoClient) CreateBulk(builders ...*ProductInfoCreate) *ProductInfoCreateBulk {
	return &ProductInfoCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProductInfoClient) MapCreateBulk(slice any, setFunc func(*ProductInfoCreate, int)) *ProductInfoCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProductInfoCreateBulk{err: fmt.Errorf("calling to ProductInfoClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProductInfoCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProductInfoCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProductInfo.
func (c *ProductInfoClient) Update() *ProductInfoUpdate {
	mutation := newProductInfoMutation(c.config, OpUpdate)
	return &ProductInfoUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProductInfoClient) UpdateOne(_m *ProductInfo) *ProductInfoUpdateOne {
	mutation := newProductInfoMutation(c.config, OpUpdateOne, withProductInfo(_m))
	return &ProductInfoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProductInfoClient) UpdateOneID(id string) *ProductInfoUpdateOne {
	mutation := newProductInfoMutation(c.config, OpUpdateOne, withProductInfoID(id))
	return &ProductInfoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProductInfo.
func (c *ProductInfoClient) Delete() *ProductInfoDelete {
	mutation := newProductInfoMutation(c.config, OpDelete)
	return &ProductInfoDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProductInfoClient) DeleteOne(_m *ProductInfo) *ProductInfoDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProductInfoClient) DeleteOneID(id string) *ProductInfoDeleteOne {
	builder := c.Delete().Where(productinfo.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProductInfoDeleteOne{builder}
}

// Query returns a query builder for ProductInfo.
func (c *ProductInfoClient) Query() *ProductInfoQuery {
	return &ProductInfoQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProductInfo},
		inters: c.Interceptors(),
	}
}

// Get returns a ProductInfo entity by its id.
func (c *ProductInfoClient) Get(ctx context.Context, id string) (*ProductInfo, error) {
	return c.Query().Where(productinfo.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProductInfoClient) GetX(ctx context.Context, id string) *ProductInfo {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProductInfoClient) Hooks() []Hook {
	return c.hooks.ProductInfo
}

// Interceptors returns the client interceptors.
func (c *ProductInfoClient) Interceptors() []Interceptor {
	return c.inters.ProductInfo
}

func (c *ProductInfoClient) mutate(ctx context.Context, m *ProductInfoMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProductInfoCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProductInfoUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProductInfoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProductInfoDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProductInfo mutation op: %q", m.Op())
	}
}

// ProgressEventClient is a client for the ProgressEvent schema.
type ProgressEventClient struct {
	config
}

// NewProgressEventClient returns a client for the ProgressEvent from the given config.
func NewProgressEventClient(c config) *ProgressEventClient {
	return &ProgressEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `progressevent.Hooks(f(g(h())))`.
func (c *ProgressEventClient) Use(hooks ...Hook) {
	c.hooks.ProgressEvent = append(c.hooks.ProgressEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `progressevent.Intercept(f(g(h())))`.
func (c *ProgressEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProgressEvent = append(c.inters.ProgressEvent, interceptors...)
}

// Create returns a builder for creating a ProgressEvent entity.
func (c *ProgressEventClient) Create() *ProgressEventCreate {
	mutation := newProgressEventMutation(c.config, OpCreate)
	return &ProgressEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProgressEvent entities.
func (c *ProgressEventClient) CreateBulk(builders ...*ProgressEventCreate) *ProgressEventCreateBulk {
	return &ProgressEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProgressEventClient) MapCreateBulk(slice any, setFunc func(*ProgressEventCreate, int)) *ProgressEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProgressEventCreateBulk{err: fmt.Errorf("calling to ProgressEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProgressEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProgressEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProgressEvent.
func (c *ProgressEventClient) Update() *ProgressEventUpdate {
	mutation := newProgressEventMutation(c.config, OpUpdate)
	return &ProgressEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProgressEventClient) UpdateOne(_m *ProgressEvent) *ProgressEventUpdateOne {
	mutation := newProgressEventMutation(c.config, OpUpdateOne, withProgressEvent(_m))
	return &ProgressEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProgressEventClient) UpdateOneID(id int) *ProgressEventUpdateOne {
	mutation := newProgressEventMutation(c.config, OpUpdateOne, withProgressEventID(id))
	return &ProgressEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProgressEvent.
func (c *ProgressEventClient) Delete() *ProgressEventDelete {
	mutation := newProgressEventMutation(c.config, OpDelete)
	return &ProgressEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProgressEventClient) DeleteOne(_m *ProgressEvent) *ProgressEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProgressEventClient) DeleteOneID(id int) *ProgressEventDeleteOne {
	builder := c.Delete().Where(progressevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProgressEventDeleteOne{builder}
}

// Query returns a query builder for ProgressEvent.
func (c *ProgressEventClient) Query() *ProgressEventQuery {
	return &ProgressEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProgressEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ProgressEvent entity by its id.
func (c *ProgressEventClient) Get(ctx context.Context, id int) (*ProgressEvent, error) {
	return c.Query().Where(progressevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProgressEventClient) GetX(ctx context.Context, id int) *ProgressEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProgressEventClient) Hooks() []Hook {
	return c.hooks.ProgressEvent
}

// Interceptors returns the client interceptors.
func (c *ProgressEventClient) Interceptors() []Interceptor {
	return c.inters.ProgressEvent
}

func (c *ProgressEventClient) mutate(ctx context.Context, m *ProgressEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProgressEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProgressEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProgressEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProgressEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProgressEvent mutation op: %q", m.Op())
	}
}

// RedditPostClient is a client for the RedditPost schema.
type RedditPostClient struct {
	config
}

// NewRedditPostClient returns a client for the RedditPost from the given config.
func NewRedditPostClient(c config) *RedditPostClient {
	return &RedditPostClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `redditpost.Hooks(f(g(h())))`.
func (c *RedditPostClient) Use(hooks ...Hook) {
	c.hooks.RedditPost = append(c.hooks.RedditPost, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `redditpost.Intercept(f(g(h())))`.
func (c *RedditPostClient) Intercept(interceptors ...Interceptor) {
	c.inters.RedditPost = append(c.inters.RedditPost, interceptors...)
}

// Create returns a builder for creating a RedditPost entity.
func (c *RedditPostClient) Create() *RedditPostCreate {
	mutation := newRedditPostMutation(c.config, OpCreate)
	return &RedditPostCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RedditPost entities.
func (c *RedditPostClient) CreateBulk(builders ...*RedditPostCreate) *RedditPostCreateBulk {
	return &RedditPostCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RedditPostClient) MapCreateBulk(slice any, setFunc func(*RedditPostCreate, int)) *RedditPostCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RedditPostCreateBulk{err: fmt.Errorf("calling to RedditPostClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RedditPostCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RedditPostCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RedditPost.
func (c *RedditPostClient) Update() *RedditPostUpdate {
	mutation := newRedditPostMutation(c.config, OpUpdate)
	return &RedditPostUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RedditPostClient) UpdateOne(_m *RedditPost) *RedditPostUpdateOne {
	mutation := newRedditPostMutation(c.config, OpUpdateOne, withRedditPost(_m))
	return &RedditPostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RedditPostClient) UpdateOneID(id string) *RedditPostUpdateOne {
	mutation := newRedditPostMutation(c.config, OpUpdateOne, withRedditPostID(id))
	return &RedditPostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RedditPost.
func (c *RedditPostClient) Delete() *RedditPostDelete {
	mutation := newRedditPostMutation(c.config, OpDelete)
	return &RedditPostDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RedditPostClient) DeleteOne(_m *RedditPost) *RedditPostDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RedditPostClient) DeleteOneID(id string) *RedditPostDeleteOne {
	builder := c.Delete().Where(redditpost.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RedditPostDeleteOne{builder}
}

// Query returns a query builder for RedditPost.
func (c *RedditPostClient) Query() *RedditPostQuery {
	return &RedditPostQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRedditPost},
		inters: c.Interceptors(),
	}
}

// Get returns a RedditPost entity by its id.
func (c *RedditPostClient) Get(ctx context.Context, id string) (*RedditPost, error) {
	return c.Query().Where(redditpost.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RedditPostClient) GetX(ctx context.Context, id string) *RedditPost {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RedditPostClient) Hooks() []Hook {
	return c.hooks.RedditPost
}

// Interceptors returns the client interceptors.
func (c *RedditPostClient) Interceptors() []Interceptor {
	return c.inters.RedditPost
}

func (c *RedditPostClient) mutate(ctx context.Context, m *RedditPostMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RedditPostCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RedditPostUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RedditPostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RedditPostDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RedditPost mutation op: %q", m.Op())
	}
}

// SubredditClient is a client for the Subreddit schema.
type SubredditClient struct {
	config
}

// NewSubredditClient returns a client for the Subreddit from the given config.
func NewSubredditClient(c config) *SubredditClient {
	return &SubredditClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subreddit.Hooks(f(g(h())))`.
func (c *SubredditClient) Use(hooks ...Hook) {
	c.hooks.Subreddit = append(c.hooks.Subreddit, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subreddit.Intercept(f(g(h())))`.
func (c *SubredditClient) Intercept(interceptors ...Interceptor) {
	c.inters.Subreddit = append(c.inters.Subreddit, interceptors...)
}

// Create returns a builder for creating a Subreddit entity.
func (c *SubredditClient) Create() *SubredditCreate {
	mutation := newSubredditMutation(c.config, OpCreate)
	return &SubredditCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Subreddit entities.
func (c *SubredditClient) CreateBulk(builders ...*SubredditCreate) *SubredditCreateBulk {
	return &SubredditCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubredditClient) MapCreateBulk(slice any, setFunc func(*SubredditCreate, int)) *SubredditCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubredditCreateBulk{err: fmt.Errorf("calling to SubredditClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubredditCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubredditCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Subreddit.
func (c *SubredditClient) Update() *SubredditUpdate {
	mutation := newSubredditMutation(c.config, OpUpdate)
	return &SubredditUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubredditClient) UpdateOne(_m *Subreddit) *SubredditUpdateOne {
	mutation := newSubredditMutation(c.config, OpUpdateOne, withSubreddit(_m))
	return &SubredditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubredditClient) UpdateOneID(id int) *SubredditUpdateOne {
	mutation := newSubredditMutation(c.config, OpUpdateOne, withSubredditID(id))
	return &SubredditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Subreddit.
func (c *SubredditClient) Delete() *SubredditDelete {
	mutation := newSubredditMutation(c.config, OpDelete)
	return &SubredditDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubredditClient) DeleteOne(_m *Subreddit) *SubredditDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubredditClient) DeleteOneID(id int) *SubredditDeleteOne {
	builder := c.Delete().Where(subreddit.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubredditDeleteOne{builder}
}

// Query returns a query builder for Subreddit.
func (c *SubredditClient) Query() *SubredditQuery {
	return &SubredditQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubreddit},
		inters: c.Interceptors(),
	}
}

// Get returns a Subreddit entity by its id.
func (c *SubredditClient) Get(ctx context.Context, id int) (*Subreddit, error) {
	return c.Query().Where(subreddit.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubredditClient) GetX(ctx context.Context, id int) *Subreddit {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SubredditClient) Hooks() []Hook {
	return c.hooks.Subreddit
}

// Interceptors returns the client interceptors.
func (c *SubredditClient) Interceptors() []Interceptor {
	return c.inters.Subreddit
}

func (c *SubredditClient) mutate(ctx context.Context, m *SubredditMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubredditCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubredditUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubredditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubredditDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Subreddit mutation op: %q", m.Op())
	}
}

// SubredditGoalClient is a client for the SubredditGoal schema.
type SubredditGoalClient struct {
	config
}

// NewSubredditGoalClient returns a client for the SubredditGoal from the given config.
func NewSubredditGoalClient(c config) *SubredditGoalClient {
	return &SubredditGoalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subredditgoal.Hooks(f(g(h())))`.
func (c *SubredditGoalClient) Use(hooks ...Hook) {
	c.hooks.SubredditGoal = append(c.hooks.SubredditGoal, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subredditgoal.Intercept(f(g(h())))`.
func (c *SubredditGoalClient) Intercept(interceptors ...Interceptor) {
	c.inters.SubredditGoal = append(c.inters.SubredditGoal, interceptors...)
}

// Create returns a builder for creating a SubredditGoal entity.
func (c *SubredditGoalClient) Create() *SubredditGoalCreate {
	mutation := newSubredditGoalMutation(c.config, OpCreate)
	return &SubredditGoalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SubredditGoal entities.
func (c *SubredditGoalClient) CreateBulk(builders ...*SubredditGoalCreate) *SubredditGoalCreateBulk {
	return &SubredditGoalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubredditGoalClient) MapCreateBulk(slice any, setFunc func(*SubredditGoalCreate, int)) *SubredditGoalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubredditGoalCreateBulk{err: fmt.Errorf("calling to SubredditGoalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubredditGoalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubredditGoalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SubredditGoal.
func (c *SubredditGoalClient) Update() *SubredditGoalUpdate {
	mutation := newSubredditGoalMutation(c.config, OpUpdate)
	return &SubredditGoalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubredditGoalClient) UpdateOne(_m *SubredditGoal) *SubredditGoalUpdateOne {
	mutation := newSubredditGoalMutation(c.config, OpUpdateOne, withSubredditGoal(_m))
	return &SubredditGoalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubredditGoalClient) UpdateOneID(id int) *SubredditGoalUpdateOne {
	mutation := newSubredditGoalMutation(c.config, OpUpdateOne, withSubredditGoalID(id))
	return &SubredditGoalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SubredditGoal.
func (c *SubredditGoalClient) Delete() *SubredditGoalDelete {
	mutation := newSubredditGoalMutation(c.config, OpDelete)
	return &SubredditGoalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubredditGoalClient) DeleteOne(_m *SubredditGoal) *SubredditGoalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubredditGoalClient) DeleteOneID(id int) *SubredditGoalDeleteOne {
	builder := c.Delete().Where(subredditgoal.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubredditGoalDeleteOne{builder}
}

// Query returns a query builder for SubredditGoal.
func (c *SubredditGoalClient) Query() *SubredditGoalQuery {
	return &SubredditGoalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubredditGoal},
		inters: c.Interceptors(),
	}
}

// Get returns a SubredditGoal entity by its id.
func (c *SubredditGoalClient) Get(ctx context.Context, id int) (*SubredditGoal, error) {
	return c.Query().Where(subredditgoal.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubredditGoalClient) GetX(ctx context.Context, id int) *SubredditGoal {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SubredditGoalClient) Hooks() []Hook {
	return c.hooks.SubredditGoal
}

// Interceptors returns the client interceptors.
func (c *SubredditGoalClient) Interceptors() []Interceptor {
	return c.inters.SubredditGoal
}

func (c *SubredditGoalClient) mutate(ctx context.Context, m *SubredditGoalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubredditGoalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubredditGoalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubredditGoalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubredditGoalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SubredditGoal mutation op: %q", m.Op())
	}
}

// TierClient is a client for the Tier schema.
type TierClient struct {
	config
}

// NewTierClient returns a client for the Tier from the given config.
func NewTierClient(c config) *TierClient {
	return &TierClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tier.Hooks(f(g(h())))`.
func (c *TierClient) Use(hooks ...Hook) {
	c.hooks.Tier = append(c.hooks.Tier, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tier.Intercept(f(g(h())))`.
func (c *TierClient) Intercept(interceptors ...Interceptor) {
	c.inters.Tier = append(c.inters.Tier, interceptors...)
}

// Create returns a builder for creating a Tier entity.
func (c *TierClient) Create() *TierCreate {
	mutation := newTierMutation(c.config, OpCreate)
	return &TierCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Tier entities.
func (c *TierClient) CreateBulk(builders ...*TierCreate) *TierCreateBulk {
	return &TierCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TierClient) MapCreateBulk(slice any, setFunc func(*TierCreate, int)) *TierCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TierCreateBulk{err: fmt.Errorf("calling to TierClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TierCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TierCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Tier.
func (c *TierClient) Update() *TierUpdate {
	mutation := newTierMutation(c.config, OpUpdate)
	return &TierUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TierClient) UpdateOne(_m *Tier) *TierUpdateOne {
	mutation := newTierMutation(c.config, OpUpdateOne, withTier(_m))
	return &TierUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TierClient) UpdateOneID(id int) *TierUpdateOne {
	mutation := newTierMutation(c.config, OpUpdateOne, withTierID(id))
	return &TierUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Tier.
func (c *TierClient) Delete() *TierDelete {
	mutation := newTierMutation(c.config, OpDelete)
	return &TierDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TierClient) DeleteOne(_m *Tier) *TierDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TierClient) DeleteOneID(id int) *TierDeleteOne {
	builder := c.Delete().Where(tier.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TierDeleteOne{builder}
}

// Query returns a query builder for Tier.
func (c *TierClient) Query() *TierQuery {
	return &TierQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTier},
		inters: c.Interceptors(),
	}
}

// Get returns a Tier entity by its id.
func (c *TierClient) Get(ctx context.Context, id int) (*Tier, error) {
	return c.Query().Where(tier.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TierClient) GetX(ctx context.Context, id int) *Tier {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TierClient) Hooks() []Hook {
	return c.hooks.Tier
}

// Interceptors returns the client interceptors.
func (c *TierClient) Interceptors() []Interceptor {
	return c.inters.Tier
}

func (c *TierClient) mutate(ctx context.Context, m *TierMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TierCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TierUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TierUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TierDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Tier mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentAction, Donation, Event, PipelineTask, ProductInfo, ProgressEvent,
		RedditPost, Subreddit, SubredditGoal, Tier []ent.Hook
	}
	inters struct {
		AgentAction, Donation, Event, PipelineTask, ProductInfo, ProgressEvent,
		RedditPost, Subreddit, SubredditGoal, Tier []ent.Interceptor
	}
)
