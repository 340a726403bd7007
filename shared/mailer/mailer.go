package mailer

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// ErrMailerDisabled is returned by Send when SMTP is not configured.
var ErrMailerDisabled = errors.New("mailer is not configured")

// Mailer represents an email sender.
type Mailer struct {
	config *mailerConfig
	dialer *gomail.Dialer
}

// Email represents an email message.
type Email struct {
	To       []string
	Cc       []string
	Bcc      []string
	Subject  string
	Body     string
	HTMLBody string
}

// NewMailer creates a new Mailer instance from the SMTP_* environment variables.
// An incomplete configuration yields a disabled mailer whose sends fail with
// ErrMailerDisabled.
func NewMailer(logger *zerolog.Logger) *Mailer {
	cfg, err := env.ParseAs[mailerConfig]()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse environment variables")
	}

	if err := cfg.validate(); err != nil {
		logger.Warn().Err(err).Msg("mailer disabled")
		return &Mailer{config: &cfg}
	}

	return newMailer(&cfg)
}

func newMailer(cfg *mailerConfig) *Mailer {
	return &Mailer{
		config: cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// Enabled reports whether the mailer can deliver email.
func (m *Mailer) Enabled() bool {
	return m.dialer != nil
}

// Send sends a single email.
func (m *Mailer) Send(email Email) error {
	if !m.Enabled() {
		return ErrMailerDisabled
	}

	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	msg := gomail.NewMessage()
	m.setEmailMessage(msg, email)

	return m.dialer.DialAndSend(msg)
}

// SendHTML sends an HTML email.
func (m *Mailer) SendHTML(to []string, subject, htmlBody string) error {
	return m.Send(Email{
		To:       to,
		Subject:  subject,
		HTMLBody: htmlBody,
	})
}

func (m *Mailer) setEmailMessage(msg *gomail.Message, email Email) {
	msg.SetHeader("From", m.config.From)
	msg.SetHeader("To", email.To...)

	if len(email.Cc) > 0 {
		msg.SetHeader("Cc", email.Cc...)
	}

	if len(email.Bcc) > 0 {
		msg.SetHeader("Bcc", email.Bcc...)
	}

	msg.SetHeader("Subject", email.Subject)

	if email.HTMLBody != "" {
		msg.SetBody("text/html", email.HTMLBody)
		if email.Body != "" {
			msg.AddAlternative("text/plain", email.Body)
		}
	} else {
		msg.SetBody("text/plain", email.Body)
	}
}

// mailerConfig holds SMTP configuration for sending emails.
type mailerConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM"`
}

// validate checks if the Mailer configuration is valid.
func (c *mailerConfig) validate() error {
	if c.Host == "" {
		return fmt.Errorf("missing SMTP_HOST environment variable")
	}
	if c.Port == 0 {
		return fmt.Errorf("missing SMTP_PORT environment variable")
	}
	if c.Username == "" {
		return fmt.Errorf("missing SMTP_USERNAME environment variable")
	}
	if c.Password == "" {
		return fmt.Errorf("missing SMTP_PASSWORD environment variable")
	}
	if c.From == "" {
		return fmt.Errorf("missing SMTP_FROM environment variable")
	}

	return nil
}
