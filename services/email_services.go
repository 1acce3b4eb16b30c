package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"contesthub/config"
)

type EmailService struct {
	host     string
	port     string
	username string
	password string
}

func NewEmailService() *EmailService {
	return &EmailService{
		host:     config.MailHost,
		port:     config.MailPort,
		username: config.MailUsername,
		password: config.MailPassword,
	}
}

func (s *EmailService) SendPasscodeEmail(to, passcode string) error {
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	htmlTemplate := strings.TrimSpace(`
To: %s
MIME-version: 1.0
Content-Type: text/html; charset="UTF-8"
Subject: Your ContestHub Admin Verification Code

<!DOCTYPE html>
<html>
<body style="background-color: #f9fafb; margin: 0; padding: 0; font-family: Arial, sans-serif;">
    <table width="100%%" cellpadding="0" cellspacing="0" style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <tr>
            <td style="background: #1a1a1a; padding: 40px 20px; text-align: center; border-radius: 12px;">
                <h1 style="color: #ffffff; font-size: 24px;">Admin Verification</h1>
                <p style="color: #9ca3af; font-size: 16px;">Enter this code to finish signing in. It expires in 10 minutes.</p>
                <p style="color: #ffffff; font-size: 32px; letter-spacing: 8px; font-weight: bold;">%s</p>
                <p style="color: #9ca3af; font-size: 14px;">If you didn't try to sign in, you can ignore this email.</p>
            </td>
        </tr>
    </table>
</body>
</html>`)

	msg := fmt.Sprintf(htmlTemplate, to, passcode)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	return smtp.SendMail(addr, auth, s.username, []string{to}, []byte(msg))
}

func (s *EmailService) SendPasswordResetEmail(to, resetToken string) error {
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	resetLink := fmt.Sprintf(config.ClientUrl+"/reset-password?token=%s", resetToken)

	htmlTemplate := strings.TrimSpace(`
To: %s
MIME-version: 1.0
Content-Type: text/html; charset="UTF-8"
Subject: Reset Your ContestHub Password

<!DOCTYPE html>
<html>
<body style="background-color: #f9fafb; margin: 0; padding: 0; font-family: Arial, sans-serif;">
    <table width="100%%" cellpadding="0" cellspacing="0" style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <tr>
            <td style="background: #1a1a1a; padding: 40px 20px; text-align: center; border-radius: 12px;">
                <h1 style="color: #ffffff; font-size: 24px;">Reset Your Password</h1>
                <p style="color: #9ca3af; font-size: 16px;">Click the button below to reset your password. This link expires in 1 hour.</p>
                <a href="%s" style="display: inline-block; background-color: #d97706; color: #ffffff; text-decoration: none; padding: 12px 30px; border-radius: 25px; font-weight: bold;">Reset Password</a>
                <p style="color: #9ca3af; font-size: 14px;">If you didn't request this password reset, please ignore this email.</p>
            </td>
        </tr>
    </table>
</body>
</html>`)

	msg := fmt.Sprintf(htmlTemplate, to, resetLink)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	return smtp.SendMail(addr, auth, s.username, []string{to}, []byte(msg))
}

func (s *EmailService) SendSupportEmail(name, email, issueType, subject, message string) error {
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	body := strings.TrimSpace(`
To: %s
Subject: [Support][%s] %s

From: %s <%s>

%s`)

	msg := fmt.Sprintf(body, s.username, issueType, subject, name, email, message)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	return smtp.SendMail(addr, auth, s.username, []string{s.username}, []byte(msg))
}
