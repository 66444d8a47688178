package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/publishine/publishine-backend/internal/config"
)

// Mailer delivers transactional account email.
type Mailer interface {
	SendOTP(ctx context.Context, to, code string) error
}

type SMTPMailer struct {
	addr string
	auth smtp.Auth
	from string
}

func NewSMTPMailer(cfg config.Config) *SMTPMailer {
	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	}
	return &SMTPMailer{
		addr: cfg.SMTPHost + ":" + cfg.SMTPPort,
		auth: auth,
		from: cfg.SMTPFrom,
	}
}

func (m *SMTPMailer) SendOTP(ctx context.Context, to, code string) error {
	msg := buildOTPMessage(m.from, to, code)
	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, msg); err != nil {
		return fmt.Errorf("send otp mail: %w", err)
	}
	return nil
}

func buildOTPMessage(from, to, code string) []byte {
	var b strings.Builder
	b.WriteString("From: \"Publishine Support\" <" + from + ">\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: Your OTP Code for Publishine Account Verification\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, `<div style="font-family: Poppins, sans-serif; max-width: 600px; margin: auto; border: 1px solid #ddd; padding: 20px;">
<h2 style="text-align: center; color: #4CAF50;">Publishine Account Verification</h2>
<p>Dear User,</p>
<p>Thank you for registering with Publishine. To complete your registration, please use the OTP code below to verify your email address.</p>
<h3 style="text-align: center; font-size: 24px; color: #333;">%s</h3>
<p>This OTP code is valid for <strong>10 minutes</strong>.</p>
<p>If you did not request this code, please ignore this email.</p>
<p style="margin-top: 20px;">Best regards,</p>
<p>The Publishine Team</p>
</div>`, code)
	b.WriteString("\r\n")
	return []byte(b.String())
}
