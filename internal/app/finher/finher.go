// Package finher собирает HTTP API: хранилище, кеш, очередь уведомлений, сервисы и маршруты.
package finher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/finher/internal/cache"
	"github.com/magabrotheeeer/finher/internal/config"
	"github.com/magabrotheeeer/finher/internal/http/handlers/health"
	"github.com/magabrotheeeer/finher/internal/http/middlewarectx"
	"github.com/magabrotheeeer/finher/internal/lib/jwt"
	"github.com/magabrotheeeer/finher/internal/lib/password"
	"github.com/magabrotheeeer/finher/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/finher/internal/lib/sl"
	"github.com/magabrotheeeer/finher/internal/migrations"
	authservice "github.com/magabrotheeeer/finher/internal/services/auth"
	fundingservice "github.com/magabrotheeeer/finher/internal/services/funding"
	literacyservice "github.com/magabrotheeeer/finher/internal/services/literacy"
	"github.com/magabrotheeeer/finher/internal/services/notification"
	optionsservice "github.com/magabrotheeeer/finher/internal/services/options"
	"github.com/magabrotheeeer/finher/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
	conn   *amqp.Connection
	ch     *amqp.Channel
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.finher.New"

	db, err := repository.New(ctx, cfg.StorageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.CheckDatabaseReady(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	app := &App{
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}

	notifier, err := app.setupNotifier(cfg)
	if err != nil {
		app.close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	authService := authservice.NewAuthService(
		db,
		password.NewHasher(cfg.Auth.BcryptCost),
		jwt.NewJWTMaker(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		cacheRedis,
		notifier,
		cfg.Auth,
		logger,
	)

	checks := map[string]health.Pinger{
		"postgres": db,
		"redis":    cacheRedis,
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, Services{
		Auth:     authService,
		Funding:  fundingservice.NewFundingService(db, cacheRedis, cfg.CacheTTL, logger),
		Options:  optionsservice.NewOptionsService(db),
		Literacy: literacyservice.NewLiteracyService(db, logger),
		Health:   checks,
		Metrics:  middlewarectx.NewMetrics(prometheus.DefaultRegisterer),
		Exporter: promhttp.Handler(),
	})

	app.server = &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return app, nil
}

// setupNotifier подключается к RabbitMQ. При env=local недоступный брокер
// заменяется логированием кодов, в остальных окружениях это ошибка.
func (a *App) setupNotifier(cfg *config.Config) (authservice.Notifier, error) {
	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL, cfg.RabbitMQ.Retries, cfg.RabbitMQ.RetryDelay)
	if err != nil {
		if cfg.Env == sl.EnvLocal {
			a.logger.Warn("rabbitmq is unavailable, passcodes will be logged", sl.Err(err))
			return notification.NewLogNotifier(a.logger), nil
		}
		return nil, err
	}

	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.NotificationsExchange, rabbitmq.GetNotificationQueues())
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	a.conn, a.ch = conn, ch
	return notification.NewQueueNotifier(rabbitmq.NewPublisher(ch, rabbitmq.NotificationsExchange)), nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

func (a *App) close() {
	if a.ch != nil {
		if err := a.ch.Close(); err != nil {
			a.logger.Error("failed to close channel", sl.Err(err))
		}
	}
	if a.conn != nil {
		if err := a.conn.Close(); err != nil {
			a.logger.Error("failed to close connection", sl.Err(err))
		}
	}
	if err := a.cache.Close(); err != nil {
		a.logger.Error("failed to close redis", sl.Err(err))
	}
	if err := a.db.Close(); err != nil {
		a.logger.Error("failed to close database", sl.Err(err))
	}
}
