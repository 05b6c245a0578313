package mailer

import (
	"testing"

	"brand-dashboard-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestRenderInvite(t *testing.T) {
	body := renderInvite(InviteEmail{
		InviteeName:      "Neha",
		InviterName:      "Priya Menon",
		OrganizationName: "Lumen Beauty",
		Role:             "manager",
		AcceptURL:        "http://localhost:5173/accept-invite?token=abc",
	})

	assert.Contains(t, body, "Hi Neha,")
	assert.Contains(t, body, "Priya Menon has invited you to join <strong>Lumen Beauty</strong>")
	assert.Contains(t, body, `href="http://localhost:5173/accept-invite?token=abc"`)
}

func TestLogMailerNeverFails(t *testing.T) {
	m := NewLogMailer(logger.NewNopLogger())
	assert.NoError(t, m.SendInvite(InviteEmail{To: "a@b.c"}))
}
