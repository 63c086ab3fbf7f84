// file: internals/helpers/mailer/sendgrid.go
package mailer

import (
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	sgHost     = "https://api.sendgrid.com"
	sgEndpoint = "/v3/mail/send"
)

type sendgridMailer struct {
	key       string
	fromName  string
	fromEmail string
}

var _ Mailer = (*sendgridMailer)(nil)

func (m *sendgridMailer) Send(toName, toEmail, subject, body string) error {
	msg := sgmail.NewV3Mail()
	msg.SetFrom(sgmail.NewEmail(m.fromName, m.fromEmail))

	p := sgmail.NewPersonalization()
	p.Subject = subject
	p.AddTos(sgmail.NewEmail(toName, toEmail))
	msg.AddPersonalizations(p)

	msg.AddContent(sgmail.NewContent("text/plain", body))

	req := sendgrid.GetRequest(m.key, sgEndpoint, sgHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(msg)

	res, err := sendgrid.API(req)
	if err != nil {
		return err
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid: status %d: %s", res.StatusCode, res.Body)
	}
	return nil
}
