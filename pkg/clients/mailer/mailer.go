// Package mailer sends plain-text transcript mails over SMTP. Sending is
// observability, not a correctness dependency: callers fire it from a detached
// goroutine and only ever log failures.
package mailer

import (
	"fmt"
	"strings"

	"github.com/janschottesukhothai-wq/Sukhothai-bot/config"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/model"
	gomail "gopkg.in/gomail.v2"
)

type Mailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func New(cfg *config.Config) *Mailer {
	return &Mailer{
		// port 587, STARTTLS
		dialer: gomail.NewDialer(cfg.Mail.SMTPHost, cfg.Mail.SMTPPort, cfg.Mail.SMTPUser, cfg.Mail.SMTPPass),
		from:   cfg.Mail.From,
		to:     cfg.Mail.To,
	}
}

// Send delivers one plain-text mail.
func (m *Mailer) Send(subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail %q: %w", subject, err)
	}
	return nil
}

// FormatTranscript renders the exchange (sanitized history + new turn +
// answer) the way the restaurant reads it in their inbox.
func FormatTranscript(history []model.ChatTurn, userMsg, answer string) string {
	turns := make([]model.ChatTurn, 0, len(history)+2)
	turns = append(turns, history...)
	turns = append(turns,
		model.ChatTurn{Role: model.RoleUser, Content: userMsg},
		model.ChatTurn{Role: model.RoleAssistant, Content: answer},
	)

	lines := make([]string, 0, len(turns))
	for _, t := range turns {
		lines = append(lines, fmt.Sprintf("%s: %s", strings.ToUpper(t.Role), t.Content))
	}
	return strings.Join(lines, "\n\n")
}

// FormatReservation renders a reservation request mail body.
func FormatReservation(req *model.ReserveRequest) string {
	note := req.Note
	if note == "" {
		note = "-"
	}
	return strings.Join([]string{
		"Neue Reservierungsanfrage:",
		fmt.Sprintf("Name: %s", req.Name),
		fmt.Sprintf("Telefon: %s", req.Phone),
		fmt.Sprintf("Personen: %d", req.Persons),
		fmt.Sprintf("Datum: %s", req.Date),
		fmt.Sprintf("Uhrzeit: %s", req.Time),
		fmt.Sprintf("Notiz: %s", note),
	}, "\n")
}
