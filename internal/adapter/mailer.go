package adapter

import (
	"gopkg.in/gomail.v2"
)

// Mail is a single outgoing e-mail
type Mail struct {
	From     string
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Mailer defines an interface for sending e-mail to enable mocking
//
//go:generate mockgen -source=mailer.go -destination=../mocks/mailer.go -package=mocks -mock_names=Mailer=MockMailer
type Mailer interface {
	Send(mail Mail) error
}

// SMTPMailer sends e-mail through an SMTP server using gomail
type SMTPMailer struct {
	dialer *gomail.Dialer
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(host string, port int, username, password string) Mailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
	}
}

// Send delivers the mail. The text body is the primary part and the HTML body an alternative when present.
func (m *SMTPMailer) Send(mail Mail) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", mail.From)
	msg.SetHeader("To", mail.To)
	msg.SetHeader("Subject", mail.Subject)
	msg.SetBody("text/plain", mail.TextBody)
	if mail.HTMLBody != "" {
		msg.AddAlternative("text/html", mail.HTMLBody)
	}

	return m.dialer.DialAndSend(msg)
}
