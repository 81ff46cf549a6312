package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendPodConfirmation(toEmail, name, archetypeLabel, podKey string, memberCount int) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: username,
		senderName:  senderName,
	}
}

func (s *emailService) SendPodConfirmation(toEmail, name, archetypeLabel, podKey string, memberCount int) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "You're on the pod waitlist")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s,</h2>
			<p>You've joined the waitlist for your pattern group:</p>
			<h3 style="color: #4CAF50;">%s</h3>
			<p>Pod key: <code>%s</code></p>
			<p>There are currently %d people with this pattern on the waitlist. We'll reach out when your pod forms.</p>
			<p>If you didn't request this, please ignore this email.</p>
		</div>
	`, name, archetypeLabel, podKey, memberCount)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send pod confirmation to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Pod confirmation sent to %s\n", toEmail)
	return nil
}
