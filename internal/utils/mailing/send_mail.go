package mailing

import (
	"strconv"

	"Restaurant-Management-Backend/internal/utils"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

type (
	// Mailer sends transactional mail. Send is a no-op when SMTP is not
	// configured, so callers treat mailing as strictly best-effort.
	Mailer interface {
		Send(toEmail string, subject string, body string) error
	}

	smtpMailer struct {
		cfg MailConfig
	}
)

func NewMailer() Mailer {
	return &smtpMailer{cfg: LoadMailConfig()}
}

func (m *smtpMailer) Send(toEmail string, subject string, body string) error {
	if m.cfg.SMTPHost == "" {
		return nil
	}

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", m.cfg.SMTPEmail)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)

	port, err := strconv.Atoi(m.cfg.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		m.cfg.SMTPHost,
		port,
		m.cfg.SMTPEmail,
		m.cfg.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}
