// file: internals/helpers/mailer/mailer.go
package mailer

import (
	"log"

	"ktx_backend/internals/configs"
)

// Mailer sends a single plain-text mail. Failures are returned to the
// caller, which reports them as a response warning; nothing is retried or
// rolled back here.
type Mailer interface {
	Send(toName, toEmail, subject, body string) error
}

// New picks the SendGrid mailer when SENDGRID_API_KEY is set and falls back
// to a log-only mailer otherwise (local dev, tests).
func New() Mailer {
	key := configs.GetEnv("SENDGRID_API_KEY")
	if key == "" {
		log.Println("⚠️ SENDGRID_API_KEY not set, mails will only be logged")
		return &logMailer{}
	}
	return &sendgridMailer{
		key:       key,
		fromName:  configs.GetEnv("MAIL_FROM_NAME", "KTX Dormitory"),
		fromEmail: configs.GetEnv("MAIL_FROM_EMAIL", "noreply@ktx.local"),
	}
}

type logMailer struct{}

func (m *logMailer) Send(toName, toEmail, subject, body string) error {
	log.Printf("[MAIL] to=%s <%s> subject=%q\n%s", toName, toEmail, subject, body)
	return nil
}
