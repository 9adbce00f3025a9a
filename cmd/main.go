package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/batterlab/internal/adapters/http/api"
	"github.com/okian/batterlab/internal/adapters/http/site"
	"github.com/okian/batterlab/internal/adapters/http/swagger"
	"github.com/okian/batterlab/internal/adapters/mcp"
	"github.com/okian/batterlab/internal/adapters/mlbstats"
	"github.com/okian/batterlab/internal/adapters/repository"
	"github.com/okian/batterlab/internal/adapters/statcast"
	"github.com/okian/batterlab/internal/adapters/upstream"
	app "github.com/okian/batterlab/internal/app"
	"github.com/okian/batterlab/internal/config"
	"github.com/okian/batterlab/pkg/logger"
	"github.com/okian/batterlab/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// version is reported by the MCP server.
var version = "dev"

// HTTP server timeout constants.
const (
	readTimeout           = 10 * time.Second
	idleTimeout           = 60 * time.Second
	readHeaderTimeout     = 5 * time.Second
	shutdownTimeout       = 30 * time.Second
	systemMetricsInterval = 10 * time.Second
	// Loads wait on Savant, which can take tens of seconds per attempt.
	writeTimeoutSlack = 15 * time.Second
)

func main() {
	// Default Go collectors stay off; /healthz serves our own registry.
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		// Use fmt for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := logger.Init(logger.WithFormat(cfg.LogFormat), logger.WithLevel(cfg.LogLevel)); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()
	log := logger.Get()

	svc, err := newService(cfg)
	if err != nil {
		log.Error(ctx, "failed to build service", logger.Error(err))
		return
	}

	go startSystemMetricsUpdater(ctx)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newMux(cfg, svc),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout(cfg),
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server",
			logger.String("addr", cfg.Addr),
			logger.Bool("mcp", cfg.MCPEnabled),
			logger.String("statcast", cfg.StatcastBaseURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "HTTP server failed", logger.Error(err))
			stop()
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info(context.Background(), "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "server shutdown failed", logger.Error(err))
	}

	log.Info(shutdownCtx, "server stopped")
}

// newService wires both providers with retries and circuit breakers.
func newService(cfg *config.Config) (*app.Service, error) {
	start, end, err := cfg.Coverage()
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout()}
	breaker := upstream.BreakerSettings{
		MaxRequests:  cfg.BreakerMaxRequests,
		Timeout:      cfg.BreakerTimeout(),
		MinRequests:  cfg.BreakerMinRequests,
		FailureRatio: cfg.BreakerFailureRatio,
	}

	var source statcast.Provider = statcast.NewClient(
		statcast.WithBaseURL(cfg.StatcastBaseURL),
		statcast.WithHTTPClient(httpClient),
	)
	source = statcast.NewBreaking(source, upstream.NewBreaker(statcast.Name, breaker))
	source = statcast.NewRetrying(source, upstream.NewRetrier(statcast.Name, cfg.RetryAttempts, cfg.RetryBackoff()))

	directory := mlbstats.NewClient(
		mlbstats.WithBaseURL(cfg.StatsAPIBaseURL),
		mlbstats.WithHTTPClient(httpClient),
		mlbstats.WithRetrier(upstream.NewRetrier(mlbstats.Name, cfg.RetryAttempts, cfg.RetryBackoff())),
		mlbstats.WithBreaker(upstream.NewBreaker(mlbstats.Name, breaker)),
	)

	return app.New(source,
		app.WithDirectory(directory),
		app.WithStore(repository.NewMemoryStore(repository.WithMaxSessions(cfg.MaxSessions))),
		app.WithCoverage(start, end),
		app.WithTrendWindow(cfg.TrendWindow, cfg.TrendMinPeriods),
		app.WithLogger(logger.Named("service")),
	), nil
}

// newMux registers the API, the docs and, when enabled, the MCP endpoint.
func newMux(cfg *config.Config, svc *app.Service) *http.ServeMux {
	mux := http.NewServeMux()

	site.Register(mux)
	swagger.Register(mux)
	api.NewServer(svc, svc).Register(mux)

	if cfg.MCPEnabled {
		mux.Handle(cfg.MCPPath, mcp.Handler(mcp.NewServer(svc, version)))
	}
	return mux
}

// writeTimeout leaves room for every retry of a slow upstream fetch.
func writeTimeout(cfg *config.Config) time.Duration {
	attempts := max(cfg.RetryAttempts, 1)
	return time.Duration(attempts)*(cfg.HTTPTimeout()+cfg.RetryBackoff()) + writeTimeoutSlack
}

// startSystemMetricsUpdater refreshes process metrics until ctx ends.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			metrics.UpdateSystemStats()
		}
	}
}
