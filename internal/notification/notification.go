// Package notification sends best-effort appointment emails. Failures
// are logged by the caller and never fail the request.
package notification

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/odontosys/clinic-api/internal/model"
)

type Notifier interface {
	BookingConfirmed(ctx context.Context, cita *model.Cita, recipient string) error
	BookingCancelled(ctx context.Context, cita *model.Cita, recipient, motivo string) error
}

// SMTPConfig configures the mail notifier. An empty Host disables it.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type mailNotifier struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailNotifier(cfg SMTPConfig) Notifier {
	return &mailNotifier{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (n *mailNotifier) BookingConfirmed(_ context.Context, cita *model.Cita, recipient string) error {
	subject := "Cita confirmada"
	body := fmt.Sprintf(
		"Su cita ha sido confirmada para el %s a las %s.",
		cita.Fecha, cita.Hora,
	)
	return n.send(recipient, subject, body)
}

func (n *mailNotifier) BookingCancelled(_ context.Context, cita *model.Cita, recipient, motivo string) error {
	subject := "Cita cancelada"
	body := fmt.Sprintf(
		"Su cita del %s a las %s fue cancelada. Motivo: %s.",
		cita.Fecha, cita.Hora, motivo,
	)
	return n.send(recipient, subject, body)
}

func (n *mailNotifier) send(to, subject, body string) error {
	if to == "" {
		return nil
	}
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return n.dialer.DialAndSend(m)
}

type noopNotifier struct{}

// NewNoop returns a notifier that drops everything, used when SMTP is
// not configured.
func NewNoop() Notifier {
	return noopNotifier{}
}

func (noopNotifier) BookingConfirmed(context.Context, *model.Cita, string) error { return nil }

func (noopNotifier) BookingCancelled(context.Context, *model.Cita, string, string) error {
	return nil
}
