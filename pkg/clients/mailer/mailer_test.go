package mailer

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/janschottesukhothai-wq/Sukhothai-bot/model"
)

type MailerTest struct {
	suite.Suite
}

func (m *MailerTest) TestFormatTranscript() {
	body := FormatTranscript(
		[]model.ChatTurn{
			{Role: model.RoleUser, Content: "Hallo"},
			{Role: model.RoleAssistant, Content: "Sawasdee!"},
		},
		"Habt ihr heute offen?",
		"Ja, ab 17:30.",
	)

	m.Equal("USER: Hallo\n\nASSISTANT: Sawasdee!\n\nUSER: Habt ihr heute offen?\n\nASSISTANT: Ja, ab 17:30.", body)
}

func (m *MailerTest) TestFormatTranscriptWithoutHistory() {
	body := FormatTranscript(nil, "Hallo", "Sawasdee!")
	m.Equal("USER: Hallo\n\nASSISTANT: Sawasdee!", body)
}

func (m *MailerTest) TestFormatReservation() {
	body := FormatReservation(&model.ReserveRequest{
		Name:    "Anna Berg",
		Phone:   "+49 170 1234567",
		Persons: 4,
		Date:    "2026-09-12",
		Time:    "19:00",
		Note:    "Fensterplatz",
	})

	m.Equal("Neue Reservierungsanfrage:\nName: Anna Berg\nTelefon: +49 170 1234567\nPersonen: 4\nDatum: 2026-09-12\nUhrzeit: 19:00\nNotiz: Fensterplatz", body)
}

func (m *MailerTest) TestFormatReservationEmptyNote() {
	body := FormatReservation(&model.ReserveRequest{
		Name:    "Anna Berg",
		Phone:   "+49 170 1234567",
		Persons: 2,
		Date:    "2026-09-12",
		Time:    "19:00",
	})

	m.Contains(body, "Notiz: -")
}

func TestMailer(t *testing.T) {
	suite.Run(t, new(MailerTest))
}
