package alert

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/ezedin-dev/portfolio-backend/dao/model"
	"github.com/ezedin-dev/portfolio-backend/pkg/config"
)

// SMTPAlerter mails contact-form submissions to the configured notify
// address.
type SMTPAlerter struct {
	dialer *gomail.Dialer
	from   string
	notify string
}

// NewSMTPAlerter returns nil when SMTP is not enabled; callers treat a nil
// Alerter as "no notifications".
func NewSMTPAlerter(cfg *config.Config) *SMTPAlerter {
	if !cfg.SMTP.Enable || cfg.SMTP.Host == "" {
		return nil
	}
	return &SMTPAlerter{
		dialer: gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password),
		from:   cfg.SMTP.User,
		notify: cfg.SMTP.Notify,
	}
}

func (a *SMTPAlerter) ContactReceived(_ context.Context, submission *model.ContactSubmission) error {
	m := gomail.NewMessage()
	m.SetHeader("From", a.from)
	m.SetHeader("To", a.notify)
	m.SetHeader("Subject", fmt.Sprintf("New contact message: %s", submission.Subject))
	m.SetHeader("Reply-To", submission.Email)
	m.SetBody("text/plain", fmt.Sprintf(
		"From: %s <%s>\n\n%s", submission.Name, submission.Email, submission.Message))
	return a.dialer.DialAndSend(m)
}
