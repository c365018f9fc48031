// Package notification передает коды сброса пароля в очередь уведомлений.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/finher/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/finher/internal/models"
)

// Publisher публикует сообщение с ключом маршрутизации.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
}

// QueueNotifier публикует PasscodeMessage в exchange уведомлений, откуда их забирает sender.
type QueueNotifier struct {
	publisher Publisher
}

func NewQueueNotifier(publisher Publisher) *QueueNotifier {
	return &QueueNotifier{publisher: publisher}
}

func (n *QueueNotifier) SendPasscode(ctx context.Context, msg models.PasscodeMessage) error {
	const op = "services.notification.SendPasscode"
	if err := n.publisher.Publish(ctx, rabbitmq.PasscodeRoutingKey, msg); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// LogNotifier пишет код в лог вместо отправки. Используется при env=local без брокера.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) SendPasscode(_ context.Context, msg models.PasscodeMessage) error {
	n.log.Warn("passcode delivery is disabled, logging code instead",
		slog.String("email", msg.Email),
		slog.String("code", msg.Code),
		slog.Time("expires_at", msg.ExpiresAt),
	)
	return nil
}
