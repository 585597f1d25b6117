package cmd

import (
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"

	dashhttp "dashboard/internal/adapters/in/http"
	"dashboard/internal/adapters/out/cms"
	"dashboard/internal/adapters/out/notify"
	"dashboard/internal/adapters/out/orderservice"
	"dashboard/internal/adapters/out/redisstore"
	"dashboard/internal/core/application/usecases/commands"
	"dashboard/internal/core/application/usecases/queries"
	"dashboard/internal/core/domain/services"
	"dashboard/internal/jobs"
)

// CompositionRoot wires every layer of the dashboard together: domain
// services, outbound adapters, use case handlers, HTTP server and jobs.
type CompositionRoot struct {
	logger      *slog.Logger
	views       *services.ViewIndex
	sessions    *services.SessionGuard
	orderClient *orderservice.Client
	cmsClient   *cms.Client
	sink        *notify.SlogSink
}

func NewCompositionRoot(configs Config) (*CompositionRoot, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	redisClient := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})
	store, err := redisstore.NewTokenStore(redisClient)
	if err != nil {
		return nil, err
	}

	views := services.NewViewIndex()

	sink, err := notify.NewSlogSink(logger)
	if err != nil {
		return nil, err
	}
	listener, err := notify.NewSlogSessionListener(logger)
	if err != nil {
		return nil, err
	}

	sessions, err := services.NewSessionGuard(store, views, listener, logger)
	if err != nil {
		return nil, err
	}

	orderClient, err := orderservice.NewClient(configs.OrderServiceURL, 0)
	if err != nil {
		return nil, err
	}
	cmsClient, err := cms.NewClient(configs.CMSURL, 0)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		logger:      logger,
		views:       views,
		sessions:    sessions,
		orderClient: orderClient,
		cmsClient:   cmsClient,
		sink:        sink,
	}, nil
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) Sessions() *services.SessionGuard {
	return c.sessions
}

func (c *CompositionRoot) CreateLoginCommandHandler() (commands.LoginCommandHandler, error) {
	return commands.NewLoginCommandHandler(c.cmsClient, c.sessions, c.sink)
}

func (c *CompositionRoot) CreateLogoutCommandHandler() (commands.LogoutCommandHandler, error) {
	return commands.NewLogoutCommandHandler(c.cmsClient, c.sessions, c.sink, c.logger)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() (commands.TransitionOrderCommandHandler, error) {
	return commands.NewTransitionOrderCommandHandler(c.views, c.sessions, c.orderClient, c.sink)
}

func (c *CompositionRoot) CreateRefreshViewsCommandHandler() (commands.RefreshViewsCommandHandler, error) {
	return commands.NewRefreshViewsCommandHandler(c.views, c.sessions, c.orderClient, c.logger)
}

func (c *CompositionRoot) CreateVerifySessionCommandHandler() (commands.VerifySessionCommandHandler, error) {
	return commands.NewVerifySessionCommandHandler(c.cmsClient, c.sessions)
}

func (c *CompositionRoot) CreateGetOrderListQueryHandler() (queries.GetOrderListQueryHandler, error) {
	return queries.NewGetOrderListQueryHandler(c.views, c.sessions, c.orderClient)
}

func (c *CompositionRoot) CreateHTTPServer() (*dashhttp.Server, error) {
	loginHandler, err := c.CreateLoginCommandHandler()
	if err != nil {
		return nil, err
	}
	logoutHandler, err := c.CreateLogoutCommandHandler()
	if err != nil {
		return nil, err
	}
	transitionHandler, err := c.CreateTransitionOrderCommandHandler()
	if err != nil {
		return nil, err
	}
	refreshHandler, err := c.CreateRefreshViewsCommandHandler()
	if err != nil {
		return nil, err
	}
	listHandler, err := c.CreateGetOrderListQueryHandler()
	if err != nil {
		return nil, err
	}

	return dashhttp.NewServer(loginHandler, logoutHandler, transitionHandler, refreshHandler, listHandler), nil
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	refreshHandler, err := c.CreateRefreshViewsCommandHandler()
	if err != nil {
		return nil, err
	}
	verifyHandler, err := c.CreateVerifySessionCommandHandler()
	if err != nil {
		return nil, err
	}

	return jobs.NewJobManager(refreshHandler, verifyHandler, c.logger), nil
}
