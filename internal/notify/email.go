package notify

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/mountainmajesty/stays/internal/logger"
)

type MailerConfig struct {
	L    *logger.Logger
	Host string
	Port int
	User string
	Pass string
	From string
	To   string
}

// Mailer sends booking notifications over SMTP. On failure it logs a
// mailto link so the booking can still be reported manually; retrying
// is left to whoever reads the log.
type Mailer struct {
	l      *logger.Logger
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewMailer(conf MailerConfig) *Mailer {
	return &Mailer{
		l:      conf.L,
		dialer: gomail.NewDialer(conf.Host, conf.Port, conf.User, conf.Pass),
		from:   conf.From,
		to:     conf.To,
	}
}

func (m *Mailer) Notify(ctx context.Context, b Booking) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("notify cancelled: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", subject(b))
	msg.SetBody("text/plain", body(b))

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.l.LogInfo("Manual notification link: %v", MailtoLink(m.to, b))

		return fmt.Errorf("send booking email: %w", err)
	}

	return nil
}
