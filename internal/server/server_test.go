package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"brand-dashboard-be/internal/bootstrap"
	"brand-dashboard-be/internal/config"
	"brand-dashboard-be/internal/dto"
	"brand-dashboard-be/internal/pkg/pagination"
	"brand-dashboard-be/internal/pkg/serverutils"
	"brand-dashboard-be/internal/repository/memory"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	dir := t.TempDir()
	return &config.Config{
		App: config.AppConfig{
			Port:               "0",
			BaseURL:            "http://localhost:3000",
			ClientURL:          "http://localhost:5173",
			Environment:        "test",
			LogFilePath:        filepath.Join(dir, "app.log"),
			NotificationLog:    filepath.Join(dir, "notifications.log"),
			CorsAllowedOrigins: "http://localhost:5173",
			DataSource:         config.DataSourceMemory,
			ShutdownTimeout:    time.Second,
		},
		Auth:      config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour},
		Scheduler: config.SchedulerConfig{Enabled: false},
		Uploads:   config.UploadsConfig{Dir: filepath.Join(dir, "uploads"), TicketTTL: 15 * time.Minute},
	}
}

func newTestApp(t *testing.T, cfg *config.Config) *fiber.App {
	t.Helper()
	container, err := bootstrap.NewContainer(cfg)
	require.NoError(t, err)
	return New(cfg, container).GetApp()
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) serverutils.BaseResponse[T] {
	t.Helper()
	var out serverutils.BaseResponse[T]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func login(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp := doRequest(t, app, http.MethodPost, "/api/auth/v1/login", "", dto.LoginRequest{Email: email, Password: memory.DemoPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.LoginResponse](t, resp)
	require.NotEmpty(t, out.Data.Token)
	return out.Data.Token
}

func TestHealth(t *testing.T) {
	app := newTestApp(t, testConfig(t))

	resp := doRequest(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[map[string]string](t, resp)
	assert.True(t, out.Success)
	assert.Equal(t, config.DataSourceMemory, out.Data["dataSource"])
}

func TestUnknownRouteUsesErrorEnvelope(t *testing.T) {
	app := newTestApp(t, testConfig(t))

	resp := doRequest(t, app, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	out := decode[any](t, resp)
	assert.False(t, out.Success)
	assert.Equal(t, http.StatusNotFound, out.Code)
	assert.NotEmpty(t, out.Error)
}

func TestLogin(t *testing.T) {
	app := newTestApp(t, testConfig(t))

	t.Run("valid credentials", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPost, "/api/auth/v1/login", "",
			dto.LoginRequest{Email: "priya@lumenbeauty.in", Password: memory.DemoPassword})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		out := decode[dto.LoginResponse](t, resp)
		assert.True(t, out.Success)
		assert.NotEmpty(t, out.Data.Token)
		assert.Equal(t, "owner", out.Data.User.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPost, "/api/auth/v1/login", "",
			dto.LoginRequest{Email: "priya@lumenbeauty.in", Password: "not-the-password"})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.False(t, decode[any](t, resp).Success)
	})

	t.Run("invalid body", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPost, "/api/auth/v1/login", "", map[string]string{"email": "not-an-email"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(t, testConfig(t))

	paths := []string{
		"/api/campaigns",
		"/api/enrollments",
		"/api/wallet",
		"/api/invoices",
		"/api/team/members",
		"/api/organization",
		"/api/dashboard/summary",
		"/api/notifications",
		"/api/auth/v1/me",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			resp := doRequest(t, app, http.MethodGet, path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.False(t, decode[any](t, resp).Success)
		})
	}

	t.Run("garbage token", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, "/api/campaigns", "garbage", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestCampaignListAndExport(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	token := login(t, app, "priya@lumenbeauty.in")

	t.Run("list is paginated and scoped", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, "/api/campaigns?page=1&pageSize=5", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		out := decode[pagination.Page[map[string]any]](t, resp)
		assert.True(t, out.Success)
		assert.Len(t, out.Data.Items, 5)
		assert.EqualValues(t, 10, out.Data.Pagination.Total)
		assert.True(t, out.Data.Pagination.HasNext)
	})

	t.Run("page past the end", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, "/api/campaigns?page=9223372036854775807&pageSize=100", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		out := decode[pagination.Page[map[string]any]](t, resp)
		assert.Empty(t, out.Data.Items)
		assert.EqualValues(t, 10, out.Data.Pagination.Total)
		assert.Equal(t, pagination.MaxPage, out.Data.Pagination.Page)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, "/api/campaigns?status=bogus", token, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("csv export", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, "/api/campaigns/export", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/csv"))
		assert.Contains(t, resp.Header.Get("Content-Disposition"), `attachment; filename="campaigns-`)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(body)), "\n")
		assert.Len(t, lines, 11)
	})

	t.Run("unknown campaign", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, "/api/campaigns/00000000-0000-0000-0000-000000000001", token, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("malformed id", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, "/api/campaigns/not-a-uuid", token, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestViewerCannotMutate(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	token := login(t, app, "rohan@lumenbeauty.in")

	resp := doRequest(t, app, http.MethodGet, "/api/campaigns", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/campaigns"},
		{http.MethodPost, "/api/campaigns/" + memory.CampaignDraftID.String() + "/submit"},
		{http.MethodDelete, "/api/campaigns/" + memory.CampaignDraftID.String()},
		{http.MethodPost, "/api/wallet/withdrawals"},
		{http.MethodPut, "/api/organization/profile"},
		{http.MethodPost, "/api/uploads/presign"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			resp := doRequest(t, app, tc.method, tc.path, token, map[string]any{})
			assert.Equal(t, http.StatusForbidden, resp.StatusCode)
			assert.False(t, decode[any](t, resp).Success)
		})
	}
}

func TestRemovedMemberTokenIsRejected(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	viewerToken := login(t, app, "rohan@lumenbeauty.in")
	ownerToken := login(t, app, "priya@lumenbeauty.in")

	resp := doRequest(t, app, http.MethodGet, "/api/campaigns", viewerToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, http.MethodDelete, "/api/team/members/"+memory.UserViewerID.String(), ownerToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/api/campaigns", viewerToken, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, decode[any](t, resp).Success)
}

func TestDashboardSummary(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	token := login(t, app, "priya@lumenbeauty.in")

	resp := doRequest(t, app, http.MethodGet, "/api/dashboard/summary", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[dto.DashboardSummaryResponse](t, resp)
	assert.True(t, out.Success)
	assert.EqualValues(t, 10, out.Data.TotalCampaigns)
	assert.EqualValues(t, 4, out.Data.EnrollmentsAwaitingReview)
}

func TestPaymentWebhookIsPublic(t *testing.T) {
	app := newTestApp(t, testConfig(t))

	req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig(t)
	cfg.RateLimit = config.RateLimitConfig{Max: 2, Window: time.Minute}
	app := newTestApp(t, cfg)

	for i := 0; i < 2; i++ {
		resp := doRequest(t, app, http.MethodGet, "/api/auth/v1/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}

	resp := doRequest(t, app, http.MethodGet, "/api/auth/v1/me", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	out := decode[any](t, resp)
	assert.False(t, out.Success)
	assert.Equal(t, http.StatusTooManyRequests, out.Code)
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name            string
		origins         string
		wantOrigin      string
		wantCredentials string
	}{
		{"configured origin", "http://localhost:5173", "http://localhost:5173", "true"},
		{"wildcard", "*", "*", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.App.CorsAllowedOrigins = tt.origins

			var app *fiber.App
			require.NotPanics(t, func() { app = newTestApp(t, cfg) })

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			req.Header.Set("Origin", "http://localhost:5173")
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.wantOrigin, resp.Header.Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantCredentials, resp.Header.Get("Access-Control-Allow-Credentials"))
		})
	}
}
