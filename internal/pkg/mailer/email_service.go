package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendVerificationToken(toEmail, token string) error
	SendNewsRunSummary(toEmail, date string, total, succeeded, skipped, failed int) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	frontendURL string
}

func NewEmailService(host string, port int, username, password, senderEmail, frontendURL string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)
	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		frontendURL: frontendURL,
	}
}

func (s *emailService) SendVerificationToken(toEmail, token string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Verify Your BizHub Account")

	verifyLink := fmt.Sprintf("%s/verify-email?token=%s", s.frontendURL, token)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome to BizHub!</h2>
			<p>Click the button below to verify your email address:</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Verify Email</a>
			<p>Or copy this link:</p>
			<p>%s</p>
			<p>This link will expire in 24 hours.</p>
			<p>If you didn't sign up, please ignore this email.</p>
		</div>
	`, verifyLink, verifyLink)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send verification mail to %s: %w", toEmail, err)
	}
	return nil
}

func (s *emailService) SendNewsRunSummary(toEmail, date string, total, succeeded, skipped, failed int) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Daily News Run Summary for %s", date))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>News run completed</h2>
			<table style="border-collapse: collapse;">
				<tr><td style="padding: 4px 12px;">Date</td><td style="padding: 4px 12px;"><b>%s</b></td></tr>
				<tr><td style="padding: 4px 12px;">Companies</td><td style="padding: 4px 12px;">%d</td></tr>
				<tr><td style="padding: 4px 12px;">Succeeded</td><td style="padding: 4px 12px;">%d</td></tr>
				<tr><td style="padding: 4px 12px;">Skipped</td><td style="padding: 4px 12px;">%d</td></tr>
				<tr><td style="padding: 4px 12px;">Failed</td><td style="padding: 4px 12px;">%d</td></tr>
			</table>
		</div>
	`, date, total, succeeded, skipped, failed)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send news summary mail to %s: %w", toEmail, err)
	}
	return nil
}
