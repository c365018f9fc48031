// Package sender собирает воркер, который доставляет письма с кодами сброса пароля из очереди.
package sender

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/finher/internal/config"
	"github.com/magabrotheeeer/finher/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/finher/internal/lib/sl"
	"github.com/magabrotheeeer/finher/internal/lib/smtp"
	senderservice "github.com/magabrotheeeer/finher/internal/services/sender"
)

type App struct {
	conn          *amqp.Connection
	ch            *amqp.Channel
	senderService *senderservice.SenderService
	logger        *slog.Logger
}

func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.sender.New"

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL, cfg.RabbitMQ.Retries, cfg.RabbitMQ.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.NotificationsExchange, rabbitmq.GetNotificationQueues())
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &App{
		conn:          conn,
		ch:            ch,
		senderService: senderservice.NewSenderService(smtp.NewTransport(cfg.SMTP), cfg.SMTP.SendRate, logger),
		logger:        logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	err := rabbitmq.ConsumerMessage(ctx, a.ch, rabbitmq.PasscodeQueue, a.senderService.HandlePasscode, a.logger)
	if err != nil {
		a.logger.Error("failed to start passcode consumer", sl.Err(err))
		a.close()
		return err
	}

	<-ctx.Done()
	a.logger.Info("sender shutting down gracefully")
	a.close()
	return nil
}

func (a *App) close() {
	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", sl.Err(err))
	}
	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", sl.Err(err))
	}
}
