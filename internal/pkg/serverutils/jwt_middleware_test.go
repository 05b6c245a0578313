package serverutils

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestIssueAndParseToken(t *testing.T) {
	p := Principal{UserId: uuid.New(), OrganizationId: uuid.New(), Role: entity.UserRoleManager}

	token, expiresAt, err := IssueToken(testSecret, p, time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	parsed, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, p, *parsed)

	_, err = ParseToken("other-secret", token)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	p := Principal{UserId: uuid.New(), OrganizationId: uuid.New(), Role: entity.UserRoleOwner}
	token, _, err := IssueToken(testSecret, p, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.Error(t, err)
}

func TestJwtMiddlewareAndRoles(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(logger.NewNopLogger()))
	group := app.Group("/secure", NewJwtMiddleware(testSecret, nil))
	group.Get("/me", func(c *fiber.Ctx) error {
		p, err := CurrentPrincipal(c)
		if err != nil {
			return err
		}
		return c.JSON(SuccessResponse("me", p.Role))
	})
	group.Get("/admin", RequireRole(entity.UserRoleOwner, entity.UserRoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(204)
	})

	viewer := Principal{UserId: uuid.New(), OrganizationId: uuid.New(), Role: entity.UserRoleViewer}
	token, _, err := IssueToken(testSecret, viewer, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/secure/me", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	req = httptest.NewRequest("GET", "/secure/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	req = httptest.NewRequest("GET", "/secure/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestJwtMiddlewareResolvesPrincipal(t *testing.T) {
	removed := uuid.New()
	promoted := uuid.New()
	resolve := func(ctx context.Context, p Principal) (Principal, error) {
		switch p.UserId {
		case removed:
			return Principal{}, Unauthorized("Account is not active")
		case promoted:
			p.Role = entity.UserRoleAdmin
		}
		return p, nil
	}

	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(logger.NewNopLogger()))
	app.Get("/admin", NewJwtMiddleware(testSecret, resolve), RequireRole(entity.UserRoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(204)
	})

	tests := []struct {
		name   string
		userId uuid.UUID
		want   int
	}{
		{"removed member", removed, 401},
		{"role read from resolver", promoted, 204},
		{"token role kept", uuid.New(), 403},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, _, err := IssueToken(testSecret, Principal{UserId: tt.userId, OrganizationId: uuid.New(), Role: entity.UserRoleViewer}, time.Hour)
			require.NoError(t, err)

			req := httptest.NewRequest("GET", "/admin", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
