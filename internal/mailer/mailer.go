package mailer

import (
	"bytes"
	"embed"
	"html/template"
	"time"

	"gopkg.in/mail.v2"
)

//go:embed "templates"
var templateFS embed.FS

// Mailer sends templated email through an SMTP server.
type Mailer struct {
	dialer   *mail.Dialer
	sender   string
	attempts int
}

// New creates a Mailer with a 5-second dial timeout.
func New(host string, port int, username, password, sender string) Mailer {
	dialer := mail.NewDialer(host, port, username, password)
	dialer.Timeout = 5 * time.Second
	return Mailer{
		dialer:   dialer,
		sender:   sender,
		attempts: 3,
	}
}

// Render executes the subject, plainBody and htmlBody blocks of templateFile
// into a message addressed to recipient.
func (m Mailer) Render(recipient, templateFile string, data interface{}) (*mail.Message, error) {
	tmpl, err := template.New("email").ParseFS(templateFS, "templates/"+templateFile)
	if err != nil {
		return nil, err
	}
	parts := map[string]*bytes.Buffer{}
	for _, name := range []string{"subject", "plainBody", "htmlBody"} {
		buf := new(bytes.Buffer)
		err = tmpl.ExecuteTemplate(buf, name, data)
		if err != nil {
			return nil, err
		}
		parts[name] = buf
	}
	msg := mail.NewMessage()
	msg.SetHeader("To", recipient)
	msg.SetHeader("From", m.sender)
	msg.SetHeader("Subject", parts["subject"].String())
	msg.SetBody("text/plain", parts["plainBody"].String())
	msg.AddAlternative("text/html", parts["htmlBody"].String())
	return msg, nil
}

// Send renders templateFile and delivers it, retrying up to three times.
func (m Mailer) Send(recipient, templateFile string, data interface{}) error {
	msg, err := m.Render(recipient, templateFile, data)
	if err != nil {
		return err
	}
	for i := 1; i <= m.attempts; i++ {
		err = m.dialer.DialAndSend(msg)
		if err == nil {
			return nil
		}
		time.Sleep(time.Second)
	}
	return err
}
