// Package api is the HTTP/WS gateway: commission validation, payment-intent
// management, webhook intake, read endpoints, and the WebSocket progress
// stream. Handlers stay thin; all domain decisions live in pkg/services.
package api

import (
	"context"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/redditart/commissioner/pkg/config"
	"github.com/redditart/commissioner/pkg/database"
	"github.com/redditart/commissioner/pkg/events"
	"github.com/redditart/commissioner/pkg/payment"
	"github.com/redditart/commissioner/pkg/queue"
	"github.com/redditart/commissioner/pkg/services"
)

// TaskCanceller cancels an in-flight task on this process. Implemented by
// queue.WorkerPool.
type TaskCanceller interface {
	CancelTask(taskID string) bool
	Health() *queue.PoolHealth
}

// Server is the HTTP gateway.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server
	cfg        *config.Config
	dbClient   *database.Client

	gateway    payment.Gateway
	validator  *services.CommissionValidator
	donations  *services.DonationService
	tasks      *services.TaskService
	ledger     *services.LedgerService
	subreddits *services.SubredditService
	products   *services.ProductService
	tiers      *services.TierService
	broker     *events.ProgressBroker
	publisher  *events.EventPublisher

	// Optional; nil in tests that exercise a single handler.
	workerPool  TaskCanceller
	connManager *events.ConnectionManager
}

// ServerDeps bundles the constructor arguments.
type ServerDeps struct {
	Config     *config.Config
	DB         *database.Client
	Gateway    payment.Gateway
	Validator  *services.CommissionValidator
	Donations  *services.DonationService
	Tasks      *services.TaskService
	Ledger     *services.LedgerService
	Subreddits *services.SubredditService
	Products   *services.ProductService
	Tiers      *services.TierService
	Broker     *events.ProgressBroker
	Publisher  *events.EventPublisher
}

// NewServer creates the gateway and registers all routes.
func NewServer(deps ServerDeps) *Server {
	s := &Server{
		echo:       echo.New(),
		cfg:        deps.Config,
		dbClient:   deps.DB,
		gateway:    deps.Gateway,
		validator:  deps.Validator,
		donations:  deps.Donations,
		tasks:      deps.Tasks,
		ledger:     deps.Ledger,
		subreddits: deps.Subreddits,
		products:   deps.Products,
		tiers:      deps.Tiers,
		broker:     deps.Broker,
		publisher:  deps.Publisher,
	}
	s.registerRoutes()
	return s
}

// SetWorkerPool wires the pool after both halves are constructed.
func (s *Server) SetWorkerPool(pool TaskCanceller) {
	s.workerPool = pool
}

// SetConnectionManager wires the WebSocket connection manager.
func (s *Server) SetConnectionManager(m *events.ConnectionManager) {
	s.connManager = m
}

func (s *Server) registerRoutes() {
	s.echo.Use(requestLogger())
	s.echo.Use(securityHeaders())

	g := s.echo.Group("/api")
	g.POST("/commissions/validate", s.validateCommissionHandler)

	g.POST("/donations/create-payment-intent", s.createPaymentIntentHandler)
	g.PUT("/donations/payment-intent/:id/update", s.updatePaymentIntentHandler)
	g.POST("/donations/webhook", s.webhookHandler)
	g.GET("/donations", s.listDonationsHandler)
	g.GET("/donations/by-subreddit", s.donationsBySubredditHandler)
	g.GET("/donations/:intent_id", s.getDonationHandler)

	g.GET("/fundraising/progress", s.fundraisingProgressHandler)

	g.GET("/subreddits", s.listSubredditsHandler)
	g.POST("/subreddits/validate", s.validateSubredditHandler)

	g.GET("/tasks", s.listTasksHandler)
	g.POST("/tasks/:id/cancel", s.cancelTaskHandler)

	g.GET("/products/commission/:donation_id", s.productForCommissionHandler)
	g.GET("/products/:task_id/donations", s.productDonationsHandler)
	g.GET("/generated_products", s.generatedProductsHandler)

	s.echo.GET("/api/v1/health", s.healthHandler)
	s.echo.GET("/ws/tasks", s.wsHandler)
}

// Echo exposes the underlying router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Start runs the HTTP listener; blocks until Shutdown or failure.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{Addr: addr, Handler: s.echo}
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
