package infra

import (
	"fmt"
	"net/smtp"

	"github.com/chebellamachina/VC-LM/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer sends status-change notifications over SMTP.
type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPassword,
		from: cfg.SMTPFrom,
	}
}

// EnviarNotificacion sends a plain-text email. Callers treat failures as
// best-effort: a lost notification never blocks the payment workflow.
func (m *Mailer) EnviarNotificacion(para, asunto, cuerpo string) error {
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{para}
	e.Subject = asunto
	e.Text = []byte(cuerpo)

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.pass, m.host)
	}
	return e.Send(addr, auth)
}
