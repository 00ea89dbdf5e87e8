// Command profiler serves the wordlist generator over HTTP.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/profiler/internal/db"
	"github.com/dmitrymomot/profiler/modules/profiler"
	"github.com/dmitrymomot/profiler/pkg/clientip"
	"github.com/dmitrymomot/profiler/pkg/config"
	"github.com/dmitrymomot/profiler/pkg/environment"
	"github.com/dmitrymomot/profiler/pkg/httpserver"
	"github.com/dmitrymomot/profiler/pkg/logger"
	"github.com/dmitrymomot/profiler/pkg/pg"
	"github.com/dmitrymomot/profiler/pkg/ratelimiter"
	"github.com/dmitrymomot/profiler/pkg/redis"
	"github.com/dmitrymomot/profiler/pkg/requestid"
)

var version = "dev"

type appConfig struct {
	Env        string `env:"APP_ENV" envDefault:"development"`
	Name       string `env:"APP_NAME" envDefault:"profiler"`
	LogLevel   string `env:"LOG_LEVEL"`
	TrustProxy bool   `env:"HTTP_TRUST_PROXY" envDefault:"false"`
}

func main() {
	var app appConfig
	if err := config.Load(&app); err != nil {
		slog.Error("failed to load app configuration", logger.Error(err))
		os.Exit(1)
	}

	opts := []logger.Option{
		logger.WithEnvironment(app.Env, app.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
		logger.WithAttr(slog.String("version", version)),
	}
	if app.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(app.LogLevel))
	}
	log := logger.New(opts...)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, app, log); err != nil {
		log.Error("profiler terminated with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, app appConfig, log *slog.Logger) error {
	var (
		httpCfg     httpserver.Config
		pgCfg       pg.Config
		redisCfg    redis.Config
		profilerCfg profiler.Config
	)
	if err := errors.Join(
		config.Load(&httpCfg),
		config.Load(&pgCfg),
		config.Load(&redisCfg),
		config.Load(&profilerCfg),
	); err != nil {
		return err
	}

	checks := map[string]httpserver.Check{}

	var storage profiler.Storage = profiler.NewMemoryStorage()
	if pgCfg.Enabled() {
		pool, err := pg.Connect(ctx, pgCfg)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := pg.Migrate(ctx, pool, db.Migrations, db.MigrationsDir, pgCfg, log); err != nil {
			return err
		}
		storage = profiler.NewPostgresStorage(pool)
		checks["postgres"] = pg.Healthcheck(pool)
	} else {
		level := slog.LevelInfo
		if environment.Parse(app.Env).IsProduction() {
			level = slog.LevelWarn
		}
		log.Log(ctx, level, "PG_CONN_URL is not set, history is kept in memory", logger.Component("profiler"))
	}

	var store ratelimiter.Store
	if redisCfg.Enabled() {
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer client.Close()

		store = ratelimiter.NewRedisStore(client, ratelimiter.WithKeyPrefix(app.Name+":ratelimit:"))
		checks["redis"] = redis.Healthcheck(client)
	} else {
		memStore := ratelimiter.NewMemoryStore()
		defer memStore.Close()
		store = memStore
	}

	bucket, err := ratelimiter.NewBucket(store, profilerCfg.RateLimit())
	if err != nil {
		return err
	}

	runner := profiler.NewRunner(profilerCfg, profiler.WithRunnerLogger(log))
	svc := profiler.NewService(profilerCfg, runner, storage,
		profiler.WithLogger(log),
		profiler.WithRateLimiter(bucket, ratelimiter.ByClientIP("generate")),
	)

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		clientip.Middleware(app.TrustProxy),
	)
	r.Get("/health/live", httpserver.Liveness())
	r.Get("/health/ready", httpserver.Readiness(log, checks))
	r.Mount("/", svc.Handle())

	log.Info("starting profiler",
		slog.String("addr", httpCfg.Addr),
		slog.Int("workers", profilerCfg.Workers),
		slog.Bool("postgres", pgCfg.Enabled()),
		slog.Bool("redis", redisCfg.Enabled()),
	)
	return httpserver.New(httpCfg, httpserver.WithLogger(log)).Run(ctx, r)
}
