// Package smtp отправляет письма через SMTP-сервер.
package smtp

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/mail.v2"

	"github.com/magabrotheeeer/finher/internal/config"
)

// Dialer интерфейс для SMTP транспорта, реализуется *mail.Dialer.
type Dialer interface {
	DialAndSend(m ...*mail.Message) error
}

// Email письмо для отправки.
type Email struct {
	To       string
	ToName   string
	Subject  string
	TextBody string
	HTMLBody string
}

// Transport реализует отправку писем.
type Transport struct {
	dialer Dialer
	from   string
}

// NewTransport создает Transport из настроек SMTP.
func NewTransport(cfg config.SMTP) *Transport {
	d := mail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	d.Timeout = 10 * time.Second
	d.StartTLSPolicy = mail.MandatoryStartTLS
	return &Transport{dialer: d, from: cfg.From}
}

// NewTransportWithDialer создает Transport с произвольным Dialer.
func NewTransportWithDialer(d Dialer, from string) *Transport {
	return &Transport{dialer: d, from: from}
}

// Send собирает и отправляет письмо.
func (t *Transport) Send(ctx context.Context, e Email) error {
	const op = "smtp.Send"
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := t.dialer.DialAndSend(t.Compose(e)); err != nil {
		return fmt.Errorf("%s: failed to send email: %w", op, err)
	}
	return nil
}

// Compose собирает MIME-сообщение. HTML-часть добавляется как альтернатива текстовой.
func (t *Transport) Compose(e Email) *mail.Message {
	m := mail.NewMessage()
	m.SetHeader("From", t.from)
	if e.ToName != "" {
		m.SetAddressHeader("To", e.To, e.ToName)
	} else {
		m.SetHeader("To", e.To)
	}
	m.SetHeader("Subject", e.Subject)
	m.SetBody("text/plain", e.TextBody)
	if e.HTMLBody != "" {
		m.AddAlternative("text/html", e.HTMLBody)
	}
	return m
}
