package email

import (
	"fmt"

	"github.com/rs/xid"
	"gopkg.in/gomail.v2"

	"boisdebene/internal/shared/config"
)

// SMTPMailer sends messages through a single SMTP endpoint via gomail.
type SMTPMailer struct {
	cfg    config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPMailer(cfg config.EmailConfig) *SMTPMailer {
	return &SMTPMailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

// Send delivers the message and returns its Message-ID. SMTP has no
// provider-side identifier, so a generated RFC 5322 Message-ID serves as the
// opaque delivery id.
func (s *SMTPMailer) Send(msg Message) (string, error) {
	id := fmt.Sprintf("<%s@%s>", xid.New().String(), s.cfg.SMTPHost)

	m := gomail.NewMessage()
	m.SetAddressHeader("From", msg.FromAddress, msg.FromName)
	m.SetHeader("To", msg.To...)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Message-ID", id)
	m.SetBody("text/plain", msg.TextBody)
	if msg.HTMLBody != "" {
		m.AddAlternative("text/html", msg.HTMLBody)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	return id, nil
}
