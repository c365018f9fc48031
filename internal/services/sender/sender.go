// Package sender превращает сообщения из очереди уведомлений в письма.
package sender

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/finher/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/finher/internal/lib/smtp"
	"github.com/magabrotheeeer/finher/internal/models"
)

// Transport отправляет собранное письмо.
type Transport interface {
	Send(ctx context.Context, e smtp.Email) error
}

type SenderService struct {
	transport Transport
	limiter   *rate.Limiter
	log       *slog.Logger
	now       func() time.Time
}

// NewSenderService создает новый экземпляр SenderService.
// sendRate ограничивает число писем в секунду; ноль или меньше снимает ограничение.
func NewSenderService(transport Transport, sendRate float64, log *slog.Logger) *SenderService {
	limit := rate.Inf
	if sendRate > 0 {
		limit = rate.Limit(sendRate)
	}
	return &SenderService{
		transport: transport,
		limiter:   rate.NewLimiter(limit, 1),
		log:       log,
		now:       time.Now,
	}
}

// HandlePasscode обрабатывает сообщение из очереди notifications.passcode.
// Неразбираемое или уже просроченное сообщение отбрасывается через rabbitmq.ErrDrop.
func (s *SenderService) HandlePasscode(ctx context.Context, body []byte) error {
	const op = "services.sender.HandlePasscode"
	var msg models.PasscodeMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return fmt.Errorf("%s: %w: %w", op, rabbitmq.ErrDrop, err)
	}
	if msg.Email == "" || msg.Code == "" {
		return fmt.Errorf("%s: %w: empty email or code", op, rabbitmq.ErrDrop)
	}
	if !msg.ExpiresAt.IsZero() && s.now().After(msg.ExpiresAt) {
		s.log.Info("skipping expired passcode", slog.String("email", msg.Email))
		return nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.transport.Send(ctx, ComposePasscode(msg)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("passcode email sent", slog.String("email", msg.Email))
	return nil
}

// ComposePasscode собирает письмо с кодом сброса пароля.
func ComposePasscode(msg models.PasscodeMessage) smtp.Email {
	name := msg.Name
	if name == "" {
		name = "there"
	}
	expires := msg.ExpiresAt.UTC().Format("15:04 MST")

	text := fmt.Sprintf("Hello %s,\n\nYour FinHER password reset code is %s.\n"+
		"It expires at %s. If you did not request a reset, ignore this email.\n",
		name, msg.Code, expires)
	htmlBody := fmt.Sprintf("<p>Hello %s,</p><p>Your FinHER password reset code is <b>%s</b>.</p>"+
		"<p>It expires at %s. If you did not request a reset, ignore this email.</p>",
		html.EscapeString(name), html.EscapeString(msg.Code), expires)

	return smtp.Email{
		To:       msg.Email,
		ToName:   msg.Name,
		Subject:  "Your FinHER password reset code",
		TextBody: text,
		HTMLBody: htmlBody,
	}
}
