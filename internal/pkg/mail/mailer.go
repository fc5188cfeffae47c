package mail

import (
	"context"
	"fmt"
	"log"

	gomail "github.com/wneessen/go-mail"

	"wynngrid/internal/config"
)

const subjectPrefix = "Wynngrid - "

// Mailer sends plain-text transactional email.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type SMTPMailer struct {
	client *gomail.Client
	from   string
}

func NewSMTPMailer(cfg config.SMTPConfig) (*SMTPMailer, error) {
	if cfg.Host == "" || cfg.From == "" {
		return nil, fmt.Errorf("smtp host and from address are required")
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, err
	}

	return &SMTPMailer{client: client, from: cfg.From}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subjectPrefix + subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	return m.client.DialAndSendWithContext(ctx, msg)
}

// SendBestEffort logs and swallows delivery failures. Notification mail never
// fails a request whose persistence write already committed.
func SendBestEffort(ctx context.Context, m Mailer, logger *log.Logger, to, subject, body string) {
	if m == nil {
		return
	}
	if err := m.Send(ctx, to, subject, body); err != nil {
		if logger == nil {
			logger = log.Default()
		}
		logger.Printf("[Mail] send failed to=%s subject=%q err=%v", to, subject, err)
	}
}
