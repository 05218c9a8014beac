// Package app wires configuration, storage and transport into the
// runnable hosts.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/promptcycle-backend/internal/adapter/postgres"
	"github.com/heartmarshall/promptcycle-backend/internal/adapter/postgres/notification"
	"github.com/heartmarshall/promptcycle-backend/internal/adapter/postgres/openmark"
	"github.com/heartmarshall/promptcycle-backend/internal/adapter/postgres/post"
	"github.com/heartmarshall/promptcycle-backend/internal/adapter/postgres/prompt"
	"github.com/heartmarshall/promptcycle-backend/internal/adapter/postgres/user"
	redisadapter "github.com/heartmarshall/promptcycle-backend/internal/adapter/redis"
	"github.com/heartmarshall/promptcycle-backend/internal/auth"
	"github.com/heartmarshall/promptcycle-backend/internal/config"
	"github.com/heartmarshall/promptcycle-backend/internal/service/daily"
	"github.com/heartmarshall/promptcycle-backend/internal/service/notify"
	"github.com/heartmarshall/promptcycle-backend/internal/transport/middleware"
	"github.com/heartmarshall/promptcycle-backend/internal/transport/rest"
	"github.com/heartmarshall/promptcycle-backend/pkg/cycle"
)

// TriggerTokenHeader carries the scheduler's shared secret.
const TriggerTokenHeader = "X-Trigger-Token"

type infra struct {
	pool  *pgxpool.Pool
	redis *goredis.Client
	clock clockwork.Clock
}

func openInfra(ctx context.Context, cfg *config.Config, appName string) (*infra, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database, appName)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	rdb, err := redisadapter.NewClient(ctx, cfg.Redis)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("open redis: %w", err)
	}

	return &infra{pool: pool, redis: rdb, clock: clockwork.NewRealClock()}, nil
}

func (i *infra) Close() {
	_ = i.redis.Close()
	i.pool.Close()
}

func (i *infra) notifier(logger *slog.Logger, cfg *config.Config) *notify.Service {
	return notify.NewService(
		logger,
		i.clock,
		user.New(i.pool),
		prompt.New(i.pool),
		post.New(i.pool),
		notification.New(i.pool),
		redisadapter.NewTickGuard(i.redis, cfg.Trigger.ClaimTTL),
	)
}

// buildHandler wires services and middleware over the opened stores.
func buildHandler(cfg *config.Config, logger *slog.Logger, inf *infra) (http.Handler, *middleware.RateLimiter) {
	dailySvc := daily.NewService(
		logger,
		inf.clock,
		cfg.Cycle.PhaseOverride,
		prompt.New(inf.pool),
		openmark.New(inf.pool),
		postgres.NewTxManager(inf.pool),
	)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTTL, inf.clock)
	limiter := middleware.NewRateLimiter(inf.clock, time.Minute)

	routes := rest.Routes{
		Health: rest.NewHealthHandler(map[string]rest.Pinger{
			"database": inf.pool,
			"redis":    redisadapter.NewTickGuard(inf.redis, cfg.Trigger.ClaimTTL),
		}, Version, inf.clock),
		Cycle:   rest.NewCycleHandler(dailySvc, logger),
		Trigger: rest.NewTriggerHandler(inf.notifier(logger, cfg), cfg.Trigger.Timeout, logger),
		TriggerGuard: middleware.Chain(
			limiter.Limit(cfg.Trigger.RateLimitPerMinute),
			middleware.SharedSecret(TriggerTokenHeader, cfg.Trigger.Token),
		),
	}

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
	)(routes.Handler())

	return handler, limiter
}

// Run starts the API server and blocks until ctx is cancelled or the
// server fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, "server")
	logger.Info("starting application",
		slog.String("build", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	inf, err := openInfra(ctx, cfg, "promptcycle-server")
	if err != nil {
		return err
	}
	defer inf.Close()

	handler, limiter := buildHandler(cfg, logger, inf)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error { return limiter.Run(gctx) })

	return g.Wait()
}

// RunTrigger runs one tick against the configured stores, the way the
// HTTP trigger endpoint does. configPath may be empty.
func RunTrigger(ctx context.Context, configPath, tickName string) (notify.Result, error) {
	tick, err := cycle.ParseTick(tickName)
	if err != nil {
		return notify.Result{}, err
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return notify.Result{}, err
	}

	logger := NewLogger(cfg.Log, "trigger")

	inf, err := openInfra(ctx, cfg, "promptcycle-trigger")
	if err != nil {
		return notify.Result{}, err
	}
	defer inf.Close()

	ctx, cancel := context.WithTimeout(ctx, cfg.Trigger.Timeout)
	defer cancel()

	return inf.notifier(logger, cfg).RunTick(ctx, tick)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}
