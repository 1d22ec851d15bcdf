package app

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/kickoff-api/external/apifootball"
	"github.com/riskibarqy/kickoff-api/internal/config"
	"github.com/riskibarqy/kickoff-api/internal/interfaces/httpapi"
	"github.com/riskibarqy/kickoff-api/internal/notify"
	"github.com/riskibarqy/kickoff-api/internal/observability"
	"github.com/riskibarqy/kickoff-api/internal/platform/cache"
	"github.com/riskibarqy/kickoff-api/internal/platform/logging"
	"github.com/riskibarqy/kickoff-api/internal/platform/resilience"
	"github.com/riskibarqy/kickoff-api/internal/share"
	"github.com/riskibarqy/kickoff-api/internal/usecase"
	"golang.org/x/sync/errgroup"
)

const redisPingTimeout = 3 * time.Second

// App owns the HTTP server and everything started alongside it.
type App struct {
	cfg     config.Config
	logger  *logging.Logger
	server  *http.Server
	poller  *usecase.LivePoller
	notices *notify.Bus
	redis   redis.UniversalClient
	stores  []*cache.Store

	telemetry *observability.Telemetry
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, errors.New("http server addr cannot be empty")
	}

	telemetry, err := observability.Start(cfg, logger)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:       cfg,
		logger:    logger,
		telemetry: telemetry,
	}

	metrics := observability.NewMetrics(nil)

	payloads, redisClient, err := newPayloadCache(cfg, metrics, logger)
	if err != nil {
		_ = telemetry.Shutdown(context.Background())
		return nil, err
	}
	a.redis = redisClient
	if memory, ok := payloads.(*cache.MemoryPayloadCache); ok {
		a.stores = append(a.stores, memory.Store())
	}

	client := apifootball.NewClient(apifootball.ClientConfig{
		BaseURL:      cfg.APIFootballBaseURL,
		APIKey:       cfg.APIFootballKey,
		Timeout:      cfg.APIFootballTimeout,
		MaxRetries:   cfg.APIFootballMaxRetries,
		RetryBackoff: cfg.APIFootballRetryBackoff,
		Logger:       logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.APIFootballCircuitEnabled,
			FailureThreshold: cfg.APIFootballCircuitFailureCount,
			OpenTimeout:      cfg.APIFootballCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.APIFootballCircuitHalfOpenMax,
		},
		Cache:   payloads,
		Metrics: metrics,
	})

	clock := usecase.SystemClock(cfg.Location)
	composites := cache.NewStore(cfg.CacheTTL).WithObserver(metrics).WithLoadTimeout(cfg.WriteTimeout)
	a.stores = append(a.stores, composites)

	fixtureSvc := usecase.NewFixtureService(client, client, clock, logger)
	leagueSvc := usecase.NewLeagueService(client, client, client, client, clock, logger)
	teamSvc := usecase.NewTeamService(client, client, client, clock, logger)
	playerSvc := usecase.NewPlayerService(client, client, client, composites, clock, logger).
		WithAppearanceWorkers(cfg.AppearanceWorkers)

	sharer, err := share.New(cfg.ShareMode, cfg.ShareHostLink, cfg.ShareWebURL)
	if err != nil {
		_ = a.release(context.Background())
		return nil, errors.Wrap(err, "build sharer")
	}

	a.notices = notify.NewBus(cfg.NoticeDismissAfter)
	if cfg.LivePollEnabled {
		a.poller = usecase.NewLivePoller(client, countingPublisher{bus: a.notices, metrics: metrics}, cfg.LivePollInterval, logger)
	}

	var metricsHandler http.Handler
	if cfg.MetricsEnabled {
		metricsHandler = metrics.Handler()
	}

	handler := httpapi.NewHandler(fixtureSvc, leagueSvc, teamSvc, playerSvc, a.notices, sharer, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, metrics, metricsHandler)

	a.server = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
	}

	return a, nil
}

// Handler exposes the router, mainly for tests.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run serves until ctx is cancelled or the server fails, then shuts down.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("http server starting", "addr", a.cfg.HTTPAddr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "http server")
		}
		return nil
	})
	if a.poller != nil {
		g.Go(func() error {
			a.poller.Run(gctx)
			return nil
		})
	}
	for _, store := range a.stores {
		g.Go(func() error {
			store.RunJanitor(gctx, a.cfg.CacheSweepInterval)
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		return a.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Shutdown stops the server, then releases what it depended on.
func (a *App) Shutdown(ctx context.Context) error {
	var errs error
	if err := a.server.Shutdown(ctx); err != nil {
		errs = errors.CombineErrors(errs, errors.Wrap(err, "shutdown http server"))
	}
	if a.notices != nil {
		a.notices.Close()
	}
	errs = errors.CombineErrors(errs, a.release(ctx))
	a.logger.Info("http server stopped")
	return errs
}

func (a *App) release(ctx context.Context) error {
	var errs error
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			errs = errors.CombineErrors(errs, errors.Wrap(err, "close redis"))
		}
	}
	return errors.CombineErrors(errs, a.telemetry.Shutdown(ctx))
}

func newPayloadCache(cfg config.Config, observer cache.Observer, logger *logging.Logger) (cache.PayloadCache, redis.UniversalClient, error) {
	switch cfg.CacheBackend {
	case config.CacheBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, errors.Wrapf(err, "ping redis addr=%s", cfg.RedisAddr)
		}
		logger.Info("payload cache ready", "backend", "redis", "addr", cfg.RedisAddr)
		payloads := cache.NewRedisPayloadCache(client, cfg.CachePrefix).
			WithObserver(observer).
			WithLogger(logger).
			WithLoadTimeout(cfg.WriteTimeout)
		return payloads, client, nil
	default:
		logger.Info("payload cache ready", "backend", "memory")
		store := cache.NewStore(cfg.CacheTTL).WithObserver(observer).WithLoadTimeout(cfg.WriteTimeout)
		return cache.NewMemoryPayloadCache(store), nil, nil
	}
}

// countingPublisher counts every notice the live poller publishes.
type countingPublisher struct {
	bus     *notify.Bus
	metrics *observability.Metrics
}

func (p countingPublisher) Publish(level notify.Level, message string) notify.Notice {
	p.metrics.NoticePublished()
	return p.bus.Publish(level, message)
}
