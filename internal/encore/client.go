// Package encore talks to the external Encore backend that can own campaign,
// enrollment, wallet, invoice and organization data.
package encore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

// ErrNotFound is returned for a 404 from the backend.
var ErrNotFound = errors.New("not found")

// APIError is a failure reported by the backend envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("encore: %d %s", e.Status, e.Message)
}

type Config struct {
	BaseURL       string
	APIKey        string
	Timeout       time.Duration
	RatePerSecond float64
	Burst         int
}

type Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	http    *http.Client
	limiter *rate.Limiter
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	if cfg.Burst < 1 {
		cfg.Burst = 1
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		timeout: cfg.Timeout,
		http:    &http.Client{},
		limiter: rate.NewLimiter(limit, cfg.Burst),
	}
}

// Health probes GET /health and succeeds on any 2xx.
func (c *Client) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("encore health: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Message: "health check failed"}
	}
	return nil
}

// Do sends a request and returns the envelope's data field.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) (gjson.Result, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return gjson.Result{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return gjson.Result{}, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return gjson.Result{}, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("encore %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("read encore response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return gjson.Result{}, ErrNotFound
	}

	envelope := gjson.ParseBytes(raw)
	if resp.StatusCode >= 300 || !envelope.Get("success").Bool() {
		return gjson.Result{}, &APIError{Status: resp.StatusCode, Message: errorMessage(envelope)}
	}
	return envelope.Get("data"), nil
}

// the error field is either a string or {message}
func errorMessage(envelope gjson.Result) string {
	field := envelope.Get("error")
	if field.IsObject() {
		if msg := field.Get("message").String(); msg != "" {
			return msg
		}
	}
	if msg := field.String(); msg != "" {
		return msg
	}
	if msg := envelope.Get("message").String(); msg != "" {
		return msg
	}
	return "request failed"
}

// Decode unmarshals a data value into out. A null or missing value leaves out untouched.
func Decode(data gjson.Result, out any) error {
	if !data.Exists() || data.Type == gjson.Null {
		return nil
	}
	return json.Unmarshal([]byte(data.Raw), out)
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	data, err := c.Do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return Decode(data, out)
}

// GetPage reads a {items, pagination{total}} list into out and returns the total.
func (c *Client) GetPage(ctx context.Context, path string, query url.Values, out any) (int64, error) {
	data, err := c.Do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return 0, err
	}
	if err := Decode(data.Get("items"), out); err != nil {
		return 0, err
	}
	total := data.Get("pagination.total")
	if !total.Exists() {
		return data.Get("items.#").Int(), nil
	}
	return total.Int(), nil
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.send(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.send(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.Do(ctx, http.MethodDelete, path, nil, nil)
	return err
}

func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	data, err := c.Do(ctx, method, path, nil, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return Decode(data, out)
}
