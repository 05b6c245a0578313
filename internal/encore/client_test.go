package encore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL, APIKey: "secret", Timeout: time.Second})
}

func TestGetSendsBearerAndDecodesData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "/campaigns/abc", r.URL.Path)
		assert.Equal(t, "org-1", r.URL.Query().Get("organizationId"))
		w.Write([]byte(`{"success":true,"data":{"title":"Diwali Glow Kit","budget":250000}}`))
	})

	var out struct {
		Title  string  `json:"title"`
		Budget float64 `json:"budget"`
	}
	err := client.Get(context.Background(), "/campaigns/abc", url.Values{"organizationId": {"org-1"}}, &out)
	require.NoError(t, err)
	assert.Equal(t, "Diwali Glow Kit", out.Title)
	assert.Equal(t, 250000.0, out.Budget)
}

func TestNotFoundMapsToSentinel(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"error":"Campaign not found"}`))
	})

	err := client.Get(context.Background(), "/campaigns/missing", nil, &struct{}{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestErrorEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"string error", http.StatusBadRequest, `{"success":false,"error":"Budget exceeded"}`, "Budget exceeded"},
		{"object error", http.StatusUnprocessableEntity, `{"success":false,"error":{"code":"invalid","message":"Bad dates"}}`, "Bad dates"},
		{"success false on 200", http.StatusOK, `{"success":false,"message":"Backend busy"}`, "Backend busy"},
		{"no body", http.StatusBadGateway, ``, "request failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			err := client.Get(context.Background(), "/x", nil, nil)
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}

func TestGetPageReadsTotal(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"items":[{"id":"a"},{"id":"b"}],"pagination":{"total":42}}}`))
	})

	var items []struct {
		Id string `json:"id"`
	}
	total, err := client.GetPage(context.Background(), "/campaigns", nil, &items)
	require.NoError(t, err)
	assert.Equal(t, int64(42), total)
	assert.Len(t, items, 2)
}

func TestPostEncodesBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"success":true,"data":{"id":"new-id"}}`))
	})

	var out struct {
		Id string `json:"id"`
	}
	require.NoError(t, client.Post(context.Background(), "/campaigns", map[string]string{"title": "x"}, &out))
	assert.Equal(t, "new-id", out.Id)
}

func TestHealth(t *testing.T) {
	healthy := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})
	assert.NoError(t, healthy.Health(context.Background()))

	down := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	assert.Error(t, down.Health(context.Background()))

	unreachable := NewClient(Config{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond})
	assert.Error(t, unreachable.Health(context.Background()))
}
