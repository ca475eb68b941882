package notification

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/mailgun/mailgun-go/v4"
)

// Transport dispatches a single rendered message. Implementations must be
// safe for concurrent use; a Transport is constructed once per process and
// shared by all requests.
type Transport interface {
	Send(ctx context.Context, to, subject, textBody, htmlBody string) error
}

// TransportConfig selects one of the two supported credential variants:
// a Mailgun API key plus sending domain, or an SMTP user/password pair.
// Mailgun wins when both are present.
type TransportConfig struct {
	From     string
	FromName string

	MailgunDomain string
	MailgunAPIKey string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
}

// Configured reports whether at least one credential variant is usable.
func (c TransportConfig) Configured() bool {
	return (c.MailgunDomain != "" && c.MailgunAPIKey != "") ||
		(c.SMTPUser != "" && c.SMTPPass != "")
}

// newTransport builds the transport matching the configured credentials.
// Callers must check Configured first.
func newTransport(cfg TransportConfig) Transport {
	if cfg.MailgunDomain != "" && cfg.MailgunAPIKey != "" {
		return &mailgunTransport{
			mg:   mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey),
			from: formatFrom(cfg),
		}
	}
	return &smtpTransport{cfg: cfg}
}

func formatFrom(cfg TransportConfig) string {
	from := cfg.From
	if from == "" {
		from = cfg.SMTPUser
	}
	if cfg.FromName == "" {
		return from
	}
	return fmt.Sprintf("%s <%s>", cfg.FromName, from)
}

// --- Mailgun ---

type mailgunTransport struct {
	mg   *mailgun.MailgunImpl
	from string
}

func (t *mailgunTransport) Send(ctx context.Context, to, subject, textBody, htmlBody string) error {
	msg := t.mg.NewMessage(t.from, subject, textBody, to)
	msg.SetHtml(htmlBody)

	if _, _, err := t.mg.Send(ctx, msg); err != nil {
		return fmt.Errorf("mailgun send: %w", err)
	}
	return nil
}

// --- SMTP ---

type smtpTransport struct {
	cfg TransportConfig
}

func (t *smtpTransport) Send(_ context.Context, to, subject, textBody, _ string) error {
	host := t.cfg.SMTPHost
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := t.cfg.SMTPPort
	if port == "" {
		port = "587"
	}

	from := t.cfg.From
	if from == "" {
		from = t.cfg.SMTPUser
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		formatFrom(t.cfg), to, subject, textBody))

	auth := smtp.PlainAuth("", t.cfg.SMTPUser, t.cfg.SMTPPass, host)
	if err := smtp.SendMail(host+":"+port, auth, from, []string{to}, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
