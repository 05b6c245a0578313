package storage

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const MaxUploadSize = 10 * 1024 * 1024

var (
	ErrUnsupportedPurpose = errors.New("Unsupported upload purpose")
	ErrContentType        = errors.New("Content type is not allowed for this upload")
	ErrTooLarge           = errors.New("File exceeds the 10 MB limit")
	ErrTicketNotFound     = errors.New("Upload ticket not found or expired")
)

// allowedTypes maps each upload purpose to the content types it accepts.
var allowedTypes = map[string]map[string]string{
	"campaign_banner":    {"image/jpeg": ".jpg", "image/png": ".png", "image/webp": ".webp"},
	"product_image":      {"image/jpeg": ".jpg", "image/png": ".png", "image/webp": ".webp"},
	"kyc_document":       {"application/pdf": ".pdf", "image/jpeg": ".jpg", "image/png": ".png"},
	"invoice_attachment": {"application/pdf": ".pdf"},
}

func Purposes() []string {
	return []string{"campaign_banner", "product_image", "kyc_document", "invoice_attachment"}
}

type Ticket struct {
	Key            string
	Token          string
	OrganizationId uuid.UUID
	Purpose        string
	ContentType    string
	Size           int64
	ExpiresAt      time.Time
}

type PresignRequest struct {
	OrganizationId uuid.UUID
	FileName       string
	ContentType    string
	Size           int64
	Purpose        string
}

type PresignResult struct {
	UploadUrl string            `json:"uploadUrl"`
	FileUrl   string            `json:"fileUrl"`
	Key       string            `json:"key"`
	Method    string            `json:"method"`
	Headers   map[string]string `json:"headers"`
	ExpiresAt time.Time         `json:"expiresAt"`
}

// Presigner issues short-lived upload tickets and accepts the matching PUTs
// into a local directory that the server exposes under /uploads.
type Presigner struct {
	mu      sync.Mutex
	tickets *cache.Cache
	ttl     time.Duration
	baseURL string
	dir     string
}

func NewPresigner(baseURL, dir string, ttl time.Duration) *Presigner {
	return &Presigner{
		tickets: cache.New(ttl, ttl),
		ttl:     ttl,
		baseURL: strings.TrimRight(baseURL, "/"),
		dir:     dir,
	}
}

func (p *Presigner) Dir() string {
	return p.dir
}

func (p *Presigner) Presign(req PresignRequest, now time.Time) (*PresignResult, error) {
	types, ok := allowedTypes[req.Purpose]
	if !ok {
		return nil, ErrUnsupportedPurpose
	}
	ext, ok := types[strings.ToLower(req.ContentType)]
	if !ok {
		return nil, ErrContentType
	}
	if req.Size > MaxUploadSize {
		return nil, ErrTooLarge
	}

	token, err := randomToken()
	if err != nil {
		return nil, fmt.Errorf("generate upload token: %w", err)
	}

	ticket := &Ticket{
		Key:            fmt.Sprintf("%s_%s%s", req.Purpose, uuid.New().String(), ext),
		Token:          token,
		OrganizationId: req.OrganizationId,
		Purpose:        req.Purpose,
		ContentType:    strings.ToLower(req.ContentType),
		Size:           req.Size,
		ExpiresAt:      now.Add(p.ttl),
	}
	p.tickets.Set(ticket.Key, ticket, p.ttl)

	return &PresignResult{
		UploadUrl: fmt.Sprintf("%s/api/uploads/%s?token=%s", p.baseURL, ticket.Key, url.QueryEscape(token)),
		FileUrl:   p.FileURL(ticket.Key),
		Key:       ticket.Key,
		Method:    "PUT",
		Headers:   map[string]string{"Content-Type": ticket.ContentType},
		ExpiresAt: ticket.ExpiresAt,
	}, nil
}

// FileURL is where a stored upload is served.
func (p *Presigner) FileURL(key string) string {
	return fmt.Sprintf("%s/uploads/%s", p.baseURL, key)
}

// Redeem stores body for a ticket and consumes it, so the same ticket cannot
// be used twice. A rejected or failed upload leaves the ticket usable until it
// expires.
func (p *Presigner) Redeem(key, token string, body []byte, now time.Time) (*Ticket, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	cached, found := p.tickets.Get(key)
	if !found {
		return nil, ErrTicketNotFound
	}
	ticket := cached.(*Ticket)
	if ticket.Token != token || now.After(ticket.ExpiresAt) {
		return nil, ErrTicketNotFound
	}
	if int64(len(body)) > MaxUploadSize {
		return nil, ErrTooLarge
	}
	if err := p.write(ticket.Key, body); err != nil {
		return nil, err
	}
	p.tickets.Delete(key)
	return ticket, nil
}

func (p *Presigner) write(key string, body []byte) error {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("create upload dir: %w", err)
	}
	path := filepath.Join(p.dir, filepath.Base(key))
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("write upload: %w", err)
	}
	return nil
}

func randomToken() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
