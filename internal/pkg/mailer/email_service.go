package mailer

import (
	"fmt"

	"brand-dashboard-be/internal/pkg/logger"

	"gopkg.in/gomail.v2"
)

type InviteEmail struct {
	To               string
	InviteeName      string
	InviterName      string
	OrganizationName string
	Role             string
	AcceptURL        string
}

type IEmailService interface {
	SendInvite(invite InviteEmail) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	logger      logger.ILogger
}

func NewEmailService(host string, port int, username, password, senderEmail string, log logger.ILogger) IEmailService {
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: senderEmail,
		logger:      log,
	}
}

func (s *emailService) SendInvite(invite InviteEmail) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", invite.To)
	m.SetHeader("Subject", fmt.Sprintf("%s invited you to %s", invite.InviterName, invite.OrganizationName))
	m.SetBody("text/html", renderInvite(invite))

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Error("MAILER", "Failed to send invitation", map[string]interface{}{"to": invite.To, "error": err.Error()})
		return err
	}

	s.logger.Info("MAILER", "Invitation sent", map[string]interface{}{"to": invite.To})
	return nil
}

// logMailer stands in when no SMTP host is configured and only logs the accept link.
type logMailer struct {
	logger logger.ILogger
}

func NewLogMailer(log logger.ILogger) IEmailService {
	return &logMailer{logger: log}
}

func (s *logMailer) SendInvite(invite InviteEmail) error {
	s.logger.Info("MAILER", "SMTP disabled, invitation not emailed", map[string]interface{}{
		"to":         invite.To,
		"accept_url": invite.AcceptURL,
	})
	return nil
}

func renderInvite(invite InviteEmail) string {
	greeting := "Hi"
	if invite.InviteeName != "" {
		greeting = "Hi " + invite.InviteeName
	}
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>%s,</h2>
			<p>%s has invited you to join <strong>%s</strong> on the brand dashboard as <strong>%s</strong>.</p>
			<a href="%s" style="background-color: #6C3BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Accept invitation</a>
			<p>Or copy this link:</p>
			<p>%s</p>
			<p>If you weren't expecting this, you can ignore this email.</p>
		</div>
	`, greeting, invite.InviterName, invite.OrganizationName, invite.Role, invite.AcceptURL, invite.AcceptURL)
}
