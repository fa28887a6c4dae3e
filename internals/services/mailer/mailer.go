package mailer

import (
	"fmt"
	"log"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"beasiswaku_backend/internals/configs"
)

// ApplicationSubmittedMail berisi data secukupnya untuk render email konfirmasi.
type ApplicationSubmittedMail struct {
	ToName          string
	ToEmail         string
	ScholarshipName string
	SchoolName      string
	SubmittedAt     string
}

// Mailer adalah sink notifikasi best-effort. Kegagalan kirim TIDAK boleh
// membatalkan operasi utama; caller cukup log error-nya.
type Mailer interface {
	SendApplicationSubmitted(m ApplicationSubmittedMail) error
}

// NewMailer memilih implementasi: SendGrid kalau API key diset, console kalau tidak.
func NewMailer() Mailer {
	if configs.SendgridAPIKey != "" {
		return &sendgridMailer{
			key:  configs.SendgridAPIKey,
			from: sgmail.NewEmail("Beasiswaku", configs.SendgridFromEmail),
		}
	}
	return &consoleMailer{}
}

/* =========================
   SENDGRID
========================= */

type sendgridMailer struct {
	key  string
	from *sgmail.Email
}

func (s *sendgridMailer) SendApplicationSubmitted(m ApplicationSubmittedMail) error {
	to := sgmail.NewEmail(m.ToName, m.ToEmail)
	subject := "Aplikasi beasiswa kamu sudah terkirim"
	plain := fmt.Sprintf(
		"Halo %s,\n\nAplikasi kamu untuk beasiswa %q (%s) sudah kami terima pada %s.\nStatus saat ini: pending.\n\nSalam,\nTim Beasiswaku",
		m.ToName, m.ScholarshipName, m.SchoolName, m.SubmittedAt,
	)
	msg := sgmail.NewSingleEmail(s.from, subject, to, plain, "")

	req := sendgrid.GetRequest(s.key, "/v3/mail/send", "https://api.sendgrid.com")
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(msg)

	res, err := sendgrid.API(req)
	if err != nil {
		return err
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid status %d: %s", res.StatusCode, res.Body)
	}
	return nil
}

/* =========================
   CONSOLE (dev / tanpa API key)
========================= */

type consoleMailer struct{}

func (c *consoleMailer) SendApplicationSubmitted(m ApplicationSubmittedMail) error {
	log.Printf("📧 [MAIL] to=%s <%s> | aplikasi %q (%s) terkirim %s",
		m.ToName, m.ToEmail, m.ScholarshipName, m.SchoolName, m.SubmittedAt)
	return nil
}
