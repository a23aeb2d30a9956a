package notifications

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"github.com/Jong-Youl/LINK/domain"
)

const sendTimeout = 15 * time.Second

// smtpConfig holds SMTP settings, parsed from environment variables.
type smtpConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM"`
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
}

// MailServiceImpl implements domain.MailService over SMTP
type MailServiceImpl struct {
	config smtpConfig
	dialer *gomail.Dialer
	logger zerolog.Logger
}

// NewMailService creates a new SMTP mail service. An empty SMTP_HOST is only
// tolerated in development, where outgoing mail is logged instead of sent;
// everywhere else an unconfigured host is a startup error, not a silent drop.
func NewMailService(logger zerolog.Logger) (domain.MailService, error) {
	cfg, err := env.ParseAs[smtpConfig]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse SMTP environment: %w", err)
	}

	if cfg.Host == "" && cfg.AppEnv != "development" {
		return nil, fmt.Errorf("SMTP_HOST must be set when APP_ENV is %q", cfg.AppEnv)
	}

	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)

	return &MailServiceImpl{
		config: cfg,
		dialer: dialer,
		logger: logger,
	}, nil
}

// SendEmail implements domain.MailService. The send is bounded by a timeout
// so a stalled SMTP server fails the enclosing operation instead of hanging it.
func (m *MailServiceImpl) SendEmail(to, subject, body string) error {
	if m.config.Host == "" {
		m.logger.Info().Str("to", to).Str("subject", subject).Msg("smtp not configured, logging email instead")
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.config.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	done := make(chan error, 1)
	go func() { done <- m.dialer.DialAndSend(msg) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrEmailDelivery, err)
		}
		return nil
	case <-time.After(sendTimeout):
		return fmt.Errorf("%w: send timed out after %s", domain.ErrEmailDelivery, sendTimeout)
	}
}
