// Commissioner turns paid Reddit commissions into AI artwork: the api mode
// serves the HTTP/WS gateway and drains the task queue, the pipeline mode
// runs one task synchronously, and the agent modes run the periodic social
// actors.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/redditart/commissioner/ent/pipelinetask"
	"github.com/redditart/commissioner/pkg/agents"
	"github.com/redditart/commissioner/pkg/api"
	"github.com/redditart/commissioner/pkg/cleanup"
	"github.com/redditart/commissioner/pkg/config"
	"github.com/redditart/commissioner/pkg/database"
	"github.com/redditart/commissioner/pkg/events"
	"github.com/redditart/commissioner/pkg/imagehost"
	"github.com/redditart/commissioner/pkg/llm"
	"github.com/redditart/commissioner/pkg/models"
	"github.com/redditart/commissioner/pkg/payment"
	"github.com/redditart/commissioner/pkg/pipeline"
	"github.com/redditart/commissioner/pkg/queue"
	"github.com/redditart/commissioner/pkg/reddit"
	"github.com/redditart/commissioner/pkg/services"
	"github.com/redditart/commissioner/pkg/version"
)

// Exit codes: 0 normal, 1 config error, 2 upstream unavailable at startup,
// 3 unrecoverable runtime failure.
const (
	exitConfig   = 1
	exitUpstream = 2
	exitRuntime  = 3
)

func main() {
	app := &cli.App{
		Name:    "commissioner",
		Usage:   "paid Reddit artwork commission service",
		Version: version.Full(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
				Usage: "path to a .env file seeding the environment",
			},
		},
		Before: func(c *cli.Context) error {
			if err := godotenv.Load(c.String("env-file")); err != nil {
				slog.Debug("No .env file loaded, using existing environment",
					"path", c.String("env-file"))
			}
			return nil
		},
		Commands: []*cli.Command{
			apiCommand(),
			pipelineCommand(),
			agentCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Fatal", "error", err)
		os.Exit(exitRuntime)
	}
}

// bootstrap loads config, configures logging, and connects the database.
type bootstrap struct {
	cfg      *config.Config
	dbConfig database.Config
	db       *database.Client
}

func startup(ctx context.Context) (*bootstrap, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cli.Exit(fmt.Sprintf("config: %v", err), exitConfig)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr,
		&slog.HandlerOptions{Level: cfg.LogLevel})))

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		return nil, cli.Exit(fmt.Sprintf("database config: %v", err), exitConfig)
	}
	dbConfig.StatementTimeout = cfg.Upstream.DBTimeout

	db, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		return nil, cli.Exit(fmt.Sprintf("database: %v", err), exitUpstream)
	}
	return &bootstrap{cfg: cfg, dbConfig: dbConfig, db: db}, nil
}

// resolveProcessID determines the worker identity for lease ownership.
// Priority: POD_ID env > HOSTNAME env > "local".
func resolveProcessID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// buildEngine wires the pipeline engine and its upstream adapters.
func buildEngine(b *bootstrap, platform *reddit.Client) (*pipeline.Engine, *events.ProgressBroker) {
	publisher := events.NewEventPublisher(b.db.DB())
	broker := events.NewProgressBroker(b.db.Client, publisher)

	engine := pipeline.NewEngine(pipeline.Deps{
		Client:      b.db.Client,
		Platform:    platform,
		Designer:    llm.NewDesigner(b.cfg.Upstream),
		ImageGen:    llm.NewImageGenerator(b.cfg.Upstream),
		Uploader:    imagehost.NewImgurClient(b.cfg.Upstream),
		Broker:      broker,
		Subreddits:  services.NewSubredditService(b.db.Client),
		Products:    services.NewProductService(b.db.Client),
		Tiers:       services.NewTierService(b.db.Client),
		Donations:   services.NewDonationService(b.db.Client),
		Upstream:    b.cfg.Upstream,
		BaseURL:     b.cfg.BaseURL,
		CreatorMark: b.cfg.CreatorMark,
	})
	return engine, broker
}

func apiCommand() *cli.Command {
	return &cli.Command{
		Name:   "api",
		Usage:  "run the HTTP/WS gateway and the task queue workers",
		Action: runAPI,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Value: ":8080", Usage: "HTTP listen address"},
		},
	}
}

func runAPI(c *cli.Context) error {
	ctx := c.Context
	b, err := startup(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = b.db.Close() }()

	processID := resolveProcessID()
	platform, err := reddit.NewClient(b.cfg.Reddit, b.cfg.Upstream)
	if err != nil {
		return cli.Exit(fmt.Sprintf("reddit client: %v", err), exitConfig)
	}
	engine, broker := buildEngine(b, platform)

	tasks := services.NewTaskService(b.db.Client, b.cfg.Queue)
	eventsSvc := services.NewEventService(b.db.Client)
	publisher := events.NewEventPublisher(b.db.DB())
	subreddits := services.NewSubredditService(b.db.Client)

	// WebSocket fan-out: one LISTEN connection plus a local connection manager.
	connManager := events.NewConnectionManager(eventsSvc, 10*time.Second)
	listener := events.NewNotifyListener(b.dbConfig.DSN(), connManager)
	if err := listener.Start(ctx); err != nil {
		return cli.Exit(fmt.Sprintf("notify listener: %v", err), exitUpstream)
	}
	defer listener.Stop(ctx)
	connManager.SetListener(listener)

	pool := queue.NewWorkerPool(processID, b.db.Client, b.cfg.Queue, tasks, engine, broker, eventsSvc)
	if err := pool.Start(ctx); err != nil {
		return cli.Exit(fmt.Sprintf("worker pool: %v", err), exitRuntime)
	}

	server := api.NewServer(api.ServerDeps{
		Config:     b.cfg,
		DB:         b.db,
		Gateway:    payment.NewStripeGateway(b.cfg.Payment),
		Validator:  services.NewCommissionValidator(platform, subreddits, llm.NewScorer(b.cfg.Upstream)),
		Donations:  services.NewDonationService(b.db.Client),
		Tasks:      tasks,
		Ledger:     services.NewLedgerService(b.db.Client, b.cfg.DefaultGoalCents),
		Subreddits: subreddits,
		Products:   services.NewProductService(b.db.Client),
		Tiers:      services.NewTierService(b.db.Client),
		Broker:     broker,
		Publisher:  publisher,
	})
	server.SetWorkerPool(pool)
	server.SetConnectionManager(connManager)

	retention := cleanup.NewService(b.cfg.Retention, eventsSvc, tasks)
	retention.Start(ctx)
	defer retention.Stop()

	errCh := make(chan error, 1)
	go func() {
		addr := c.String("addr")
		slog.Info("HTTP server listening", "addr", addr, "process_id", processID)
		if err := server.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("HTTP server failed", "error", err)
		pool.Stop()
		return cli.Exit("http server failed", exitRuntime)
	}

	// Drain workers before cutting off the HTTP surface so in-flight tasks
	// finish and cancel requests still land.
	pool.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP shutdown error", "error", err)
	}
	slog.Info("Shutdown complete")
	return nil
}

func pipelineCommand() *cli.Command {
	return &cli.Command{
		Name:   "pipeline",
		Usage:  "run one pipeline task synchronously",
		Action: runPipeline,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "mode", Value: "full", Usage: "pipeline mode (full)"},
			&cli.StringFlag{Name: "subreddit", Usage: "source subreddit; front page when omitted"},
			&cli.StringFlag{Name: "post-id", Usage: "specific post id to commission"},
		},
	}
}

func runPipeline(c *cli.Context) error {
	if mode := c.String("mode"); mode != "full" {
		return cli.Exit(fmt.Sprintf("unknown pipeline mode %q", mode), exitConfig)
	}

	ctx := c.Context
	b, err := startup(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = b.db.Close() }()

	platform, err := reddit.NewClient(b.cfg.Reddit, b.cfg.Upstream)
	if err != nil {
		return cli.Exit(fmt.Sprintf("reddit client: %v", err), exitConfig)
	}
	engine, _ := buildEngine(b, platform)
	tasks := services.NewTaskService(b.db.Client, b.cfg.Queue)

	req := models.EnqueueTaskRequest{
		Type:     models.TaskTypeFrontPage,
		Priority: models.PriorityScheduled,
	}
	if sub := c.String("subreddit"); sub != "" {
		req.Type = models.TaskTypeSubredditPost
		req.Subreddit = services.NormalizeName(sub)
	}
	if postID := c.String("post-id"); postID != "" {
		req.Type = models.TaskTypeSpecificPost
		req.PostID = postID
	}

	if _, err := tasks.Enqueue(ctx, req); err != nil {
		return cli.Exit(fmt.Sprintf("enqueue: %v", err), exitConfig)
	}
	task, err := tasks.ClaimNext(ctx, "cli-"+resolveProcessID(), b.cfg.Queue.LeaseTTL)
	if err != nil {
		return cli.Exit(fmt.Sprintf("claim: %v", err), exitRuntime)
	}

	slog.Info("Running pipeline task", "task_id", task.ID, "type", task.Type)
	result := engine.Execute(ctx, task)
	switch result.Status {
	case pipelinetask.StatusCompleted:
		if err := tasks.Complete(ctx, task.ID); err != nil {
			return cli.Exit(fmt.Sprintf("complete: %v", err), exitRuntime)
		}
		slog.Info("Pipeline task completed", "task_id", task.ID)
		return nil
	case pipelinetask.StatusCancelled:
		slog.Info("Pipeline task cancelled", "task_id", task.ID)
		return nil
	default:
		if _, failErr := tasks.Fail(ctx, task.ID, result.Err.Error(), false); failErr != nil {
			slog.Error("Failed to mark task failed", "task_id", task.ID, "error", failErr)
		}
		return cli.Exit(fmt.Sprintf("pipeline failed: %v", result.Err), exitRuntime)
	}
}

func agentCommand() *cli.Command {
	return &cli.Command{
		Name:  "agent",
		Usage: "run a periodic social agent",
		Subcommands: []*cli.Command{
			{
				Name:   "community",
				Usage:  "tend the home subreddits' new posts",
				Action: runCommunityAgent,
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: "subreddits", Required: true, Usage: "home subreddits to tend"},
					&cli.BoolFlag{Name: "dry-run", Usage: "analyze and record without external writes"},
					&cli.BoolFlag{Name: "single-cycle", Usage: "run one cycle and exit"},
				},
			},
			{
				Name:   "promoter",
				Usage:  "scout a public feed for artwork-worthy posts",
				Action: runPromoterAgent,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "subreddit", Usage: "feed to scan; r/popular when omitted"},
					&cli.BoolFlag{Name: "dry-run", Usage: "analyze and record without external writes"},
					&cli.BoolFlag{Name: "single-cycle", Usage: "run one cycle and exit"},
				},
			},
		},
	}
}

// agentSetup is the shared wiring for both agent modes.
func agentSetup(c *cli.Context) (*bootstrap, *reddit.Client, *llm.Scorer, *services.AgentActionService, error) {
	b, err := startup(c.Context)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	platform, err := reddit.NewClient(b.cfg.Reddit, b.cfg.Upstream)
	if err != nil {
		_ = b.db.Close()
		return nil, nil, nil, nil, cli.Exit(fmt.Sprintf("reddit client: %v", err), exitConfig)
	}
	return b, platform, llm.NewScorer(b.cfg.Upstream), services.NewAgentActionService(b.db.Client), nil
}

func runAgent(c *cli.Context, cfg config.AgentConfig, agent agents.Agent) error {
	runner := agents.NewRunner(agent, cfg, c.Bool("single-cycle"))

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := runner.Run(ctx); err != nil {
		return cli.Exit(fmt.Sprintf("agent %s: %v", agent.ID(), err), exitRuntime)
	}
	return nil
}

func runCommunityAgent(c *cli.Context) error {
	b, platform, scorer, actions, err := agentSetup(c)
	if err != nil {
		return err
	}
	defer func() { _ = b.db.Close() }()

	cfg := b.cfg.Agent
	if c.Bool("dry-run") {
		cfg.DryRun = true
	}
	agent := agents.NewCommunityAgent(platform, scorer, actions, cfg, c.StringSlice("subreddits"))
	return runAgent(c, cfg, agent)
}

func runPromoterAgent(c *cli.Context) error {
	b, platform, scorer, actions, err := agentSetup(c)
	if err != nil {
		return err
	}
	defer func() { _ = b.db.Close() }()

	cfg := b.cfg.Agent
	if c.Bool("dry-run") {
		cfg.DryRun = true
	}
	agent := agents.NewPromoterAgent(platform, scorer, actions, cfg, c.String("subreddit"), b.cfg.BaseURL)
	return runAgent(c, cfg, agent)
}
