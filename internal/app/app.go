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

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/slack-go/slack"

	"github.com/heartmarshall/floating-librarian/internal/adapter/postgres"
	"github.com/heartmarshall/floating-librarian/internal/adapter/postgres/collection"
	"github.com/heartmarshall/floating-librarian/internal/adapter/provider/openlibrary"
	"github.com/heartmarshall/floating-librarian/internal/config"
	"github.com/heartmarshall/floating-librarian/internal/domain"
	"github.com/heartmarshall/floating-librarian/internal/observability"
	"github.com/heartmarshall/floating-librarian/internal/service/library"
	"github.com/heartmarshall/floating-librarian/internal/transport/middleware"
	"github.com/heartmarshall/floating-librarian/internal/transport/rest"
	"github.com/heartmarshall/floating-librarian/internal/transport/slackbot"
	"github.com/heartmarshall/floating-librarian/internal/view"
)

// Serve runs the bot until ctx is cancelled: it connects to the database,
// applies migrations when enabled, wires the library service behind the
// Slack endpoints and serves HTTP. Shutdown drains in-flight requests and
// background Slack jobs within the configured timeout.
func Serve(ctx context.Context, cfg *config.Config) error {
	if err := cfg.Slack.Validate(); err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	tel, err := observability.Initialize(ctx, cfg.Telemetry, Version, logger)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown", slog.String("error", err.Error()))
		}
	}()

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return err
		}
	}

	svc, err := newLibrary(cfg, pool, logger)
	if err != nil {
		return err
	}

	bot := slackbot.NewHandler(
		logger,
		svc,
		view.NewBuilder(cfg.Catalog.CoversURL, cfg.Collection.MaxItems),
		slack.New(cfg.Slack.BotToken),
		cfg.Server.HandlerTimeout,
	)
	health := rest.NewHealthHandler(BuildVersion(), map[string]rest.Pinger{"database": pool})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      newRouter(logger, bot, health, cfg.Slack.SigningSecret),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	if err := waitTimeout(shutdownCtx, bot.Wait); err != nil {
		logger.Warn("slack jobs still running at shutdown", slog.String("error", err.Error()))
	}
	logger.Info("stopped")
	return nil
}

// newLibrary wires the collection store (traced), the transaction manager
// and the catalog into the library service.
func newLibrary(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (*library.Service, error) {
	metrics, err := observability.NewDatabaseMetrics()
	if err != nil {
		return nil, fmt.Errorf("init database metrics: %w", err)
	}

	repo := collection.New(pool, collection.Limits{
		Collection: cfg.Collection.MaxItems,
		Ratings:    cfg.Collection.RatingsLimit,
		Lenders:    cfg.Collection.LendersLimit,
	})

	return library.NewService(
		logger,
		collection.NewTraced(repo, metrics),
		postgres.NewTxManager(pool),
		openlibrary.NewProvider(cfg.Catalog, logger),
		cfg.Collection.MaxItems,
	), nil
}

func newRouter(logger *slog.Logger, bot *slackbot.Handler, health *rest.HealthHandler, signingSecret string) http.Handler {
	r := chi.NewRouter()
	r.Use(
		observability.TracingMiddleware(),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)

	r.Get("/live", health.Live)
	r.Get("/ready", health.Ready)
	r.Get("/health", health.Health)
	r.Route("/slack", bot.Routes(signingSecret))

	return r
}

// waitTimeout runs wait and gives up when ctx is done first.
func waitTimeout(ctx context.Context, wait func()) error {
	done := make(chan struct{})
	go func() {
		wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Migrate applies pending schema migrations and returns.
func Migrate(ctx context.Context, cfg *config.Config) error {
	logger := NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	return postgres.Migrate(ctx, pool, logger)
}

// SearchCatalog runs one catalog search with the configured limits.
func SearchCatalog(ctx context.Context, cfg *config.Config, query string) ([]domain.Book, error) {
	logger := NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(ctx, cfg.Catalog.Timeout+time.Second)
	defer cancel()

	return openlibrary.NewProvider(cfg.Catalog, logger).Search(ctx, domain.NormalizeQuery(query))
}
