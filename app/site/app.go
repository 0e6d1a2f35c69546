package site

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alquimiadental/site/core/config"
	"github.com/alquimiadental/site/core/handler"
	"github.com/alquimiadental/site/core/health"
	"github.com/alquimiadental/site/core/locale"
	"github.com/alquimiadental/site/core/logger"
	"github.com/alquimiadental/site/core/metrics"
	"github.com/alquimiadental/site/core/response"
	"github.com/alquimiadental/site/core/server"
	"github.com/alquimiadental/site/core/static"
	"github.com/alquimiadental/site/integration/database/redis"
	"github.com/alquimiadental/site/middleware"
)

// App serves the built site behind the locale redirect middleware.
type App struct {
	config   Config
	resolver *locale.Resolver
	server   *server.Server
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  metrics.Recorder
	checks   []func(context.Context) error
	cleanups []func() error
}

// AppOption configures an App.
type AppOption func(*App) error

// WithLogger replaces the logger built from the configuration.
func WithLogger(log *slog.Logger) AppOption {
	return func(a *App) error {
		if log == nil {
			return errors.New("logger cannot be nil")
		}
		a.logger = log
		return nil
	}
}

// WithRegistry sets the Prometheus registry served on /metrics.
func WithRegistry(reg *prometheus.Registry) AppOption {
	return func(a *App) error {
		if reg == nil {
			return errors.New("registry cannot be nil")
		}
		a.registry = reg
		return nil
	}
}

// WithReadinessCheck adds a dependency check to /readyz.
func WithReadinessCheck(check func(context.Context) error) AppOption {
	return func(a *App) error {
		if check == nil {
			return errors.New("readiness check cannot be nil")
		}
		a.checks = append(a.checks, check)
		return nil
	}
}

// WithCleanup registers fn to release a resource when the App is closed.
func WithCleanup(fn func() error) AppOption {
	return func(a *App) error {
		if fn == nil {
			return errors.New("cleanup cannot be nil")
		}
		a.cleanups = append(a.cleanups, fn)
		return nil
	}
}

// Load reads Config from the environment and builds the App.
func Load(ctx context.Context, opts ...AppOption) (*App, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return New(ctx, cfg, opts...)
}

// New builds the App from cfg. When a Redis URL is configured, the connection
// is checked at startup and on every readiness probe.
func New(ctx context.Context, cfg Config, opts ...AppOption) (*App, error) {
	resolver, err := locale.NewFromConfig(cfg.Locale)
	if err != nil {
		return nil, err
	}
	staticReady := static.Ready(cfg.Static)
	if err := staticReady(ctx); err != nil {
		return nil, fmt.Errorf("static site: %w", err)
	}

	a := &App{
		config:   cfg,
		resolver: resolver,
		checks:   []func(context.Context) error{staticReady},
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	if a.logger == nil {
		a.logger = newLogger(cfg)
	}

	a.metrics = metrics.Nop{}
	if cfg.MetricsEnabled {
		if a.registry == nil {
			a.registry = prometheus.NewRegistry()
			a.registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
		}
		rec, err := metrics.NewPrometheus(a.registry, cfg.MetricsNamespace)
		if err != nil {
			return nil, err
		}
		a.metrics = rec
	}

	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.checks = append(a.checks, redis.Healthcheck(client))
		a.cleanups = append(a.cleanups, client.Close)
	}

	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(a.logger))
	if err != nil {
		return nil, errors.Join(err, a.Close())
	}
	a.server = srv

	return a, nil
}

func newLogger(cfg Config) *slog.Logger {
	envOpt := logger.WithDevelopment(cfg.AppName)
	if cfg.Env == "production" || cfg.Env == "staging" {
		envOpt = logger.WithProduction(cfg.AppName)
	}
	return logger.New(
		envOpt,
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithContextExtractors(middleware.RequestIDExtractor),
	)
}

// Resolver returns the resolver shared by every request.
func (a *App) Resolver() *locale.Resolver {
	return a.resolver
}

// Server returns the HTTP server.
func (a *App) Server() *server.Server {
	return a.server
}

// Handler returns the routing tree: probes, metrics and the localized site.
func (a *App) Handler() http.Handler {
	type C = *handler.RequestContext

	mux := http.NewServeMux()
	mux.Handle("GET /healthz", handler.HTTP(handler.NewContext, health.Liveness[C], response.ErrorHandler[C]))
	mux.Handle("GET /readyz", handler.HTTP(handler.NewContext, health.Readiness[C](a.logger, a.checks...), response.ErrorHandler[C]))
	if a.registry != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))
	}

	assets := static.NewAssetMatcher(a.config.Static)
	spa := static.SPA[C](a.config.Static.Root,
		static.WithSPAIndex(a.config.Static.IndexFile),
		static.WithSPAStripPrefix(a.config.BasePath),
		static.WithAssets(assets),
		static.WithCatalog(a.resolver.Catalog()),
	)

	site := handler.Chain(spa,
		middleware.RequestID[C](),
		middleware.LoggingWithLogger[C](a.logger),
		middleware.LocaleRedirectWithConfig[C](middleware.LocaleRedirectConfig{
			Resolver: a.resolver,
			Assets:   assets,
			BasePath: a.config.BasePath,
			Logger:   a.logger,
			Metrics:  a.metrics,
		}),
	)
	mux.Handle("/", handler.HTTP(handler.NewContext, site, response.ErrorHandler[C]))

	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully and closes
// the App.
func (a *App) Run(ctx context.Context) error {
	a.logger.InfoContext(ctx, "serving site",
		logger.Component("app"),
		slog.String("addr", a.config.Server.Addr),
		slog.String("base_path", locale.NormalizeBasePath(a.config.BasePath)),
		slog.Any("locales", a.resolver.Catalog().Strings()),
	)
	return errors.Join(a.server.Run(ctx, a.Handler())(), a.Close())
}

// Close releases the resources opened by New, most recent first. Later calls
// are no-ops.
func (a *App) Close() error {
	var errs []error
	for i := len(a.cleanups) - 1; i >= 0; i-- {
		if err := a.cleanups[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.cleanups = nil
	return errors.Join(errs...)
}
