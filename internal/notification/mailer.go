package notification

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

//go:generate mockgen -source=mailer.go -destination=mock/mailer_mock.go -package=mock
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// NewMailer returns an SMTP mailer, or a mailer that only logs when no SMTP
// host is configured.
func NewMailer(cfg MailConfig, logger ...*zap.Logger) Mailer {
	l := zap.L().Named("notification.mailer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.mailer")
	}
	if strings.TrimSpace(cfg.Host) == "" {
		return &noopMailer{logger: l}
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	return &smtpMailer{
		from:   cfg.From,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		logger: l,
	}
}

type noopMailer struct {
	logger *zap.Logger
}

func (m *noopMailer) Send(_ context.Context, to, subject, _ string) error {
	m.logger.Debug("mail skipped, smtp disabled", zap.String("to", to), zap.String("subject", subject))
	return nil
}

type smtpMailer struct {
	from   string
	dialer *gomail.Dialer
	logger *zap.Logger
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) error {
	if strings.TrimSpace(to) == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Error("send mail failed", zap.String("to", to), zap.Error(err))
		return err
	}
	m.logger.Info("mail sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
