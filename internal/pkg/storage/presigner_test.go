package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresignValidation(t *testing.T) {
	p := NewPresigner("http://localhost:8080", t.TempDir(), 15*time.Minute)
	now := time.Now()

	tests := []struct {
		name    string
		req     PresignRequest
		wantErr error
	}{
		{name: "unknown purpose", req: PresignRequest{Purpose: "avatar", ContentType: "image/png", Size: 10}, wantErr: ErrUnsupportedPurpose},
		{name: "pdf banner", req: PresignRequest{Purpose: "campaign_banner", ContentType: "application/pdf", Size: 10}, wantErr: ErrContentType},
		{name: "too large", req: PresignRequest{Purpose: "kyc_document", ContentType: "application/pdf", Size: MaxUploadSize + 1}, wantErr: ErrTooLarge},
		{name: "ok", req: PresignRequest{Purpose: "product_image", ContentType: "IMAGE/PNG", Size: 2048}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := p.Presign(tt.req, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "PUT", res.Method)
			assert.True(t, strings.HasPrefix(res.Key, "product_image_"))
			assert.True(t, strings.HasSuffix(res.Key, ".png"))
			assert.Equal(t, "image/png", res.Headers["Content-Type"])
			assert.Equal(t, "http://localhost:8080/uploads/"+res.Key, res.FileUrl)
			assert.WithinDuration(t, now.Add(15*time.Minute), res.ExpiresAt, time.Second)
		})
	}
}

func TestRedeemAndWrite(t *testing.T) {
	dir := t.TempDir()
	p := NewPresigner("http://localhost:8080", dir, 15*time.Minute)
	now := time.Now()

	res, err := p.Presign(PresignRequest{OrganizationId: uuid.New(), Purpose: "invoice_attachment", ContentType: "application/pdf", Size: 4}, now)
	require.NoError(t, err)
	token := res.UploadUrl[strings.Index(res.UploadUrl, "token=")+len("token="):]

	_, err = p.Redeem(res.Key, "wrong", []byte("%PDF"), now)
	assert.ErrorIs(t, err, ErrTicketNotFound)

	_, err = p.Redeem(res.Key, token, []byte("%PDF"), now.Add(16*time.Minute))
	assert.ErrorIs(t, err, ErrTicketNotFound)

	_, err = p.Redeem(res.Key, token, make([]byte, MaxUploadSize+1), now)
	assert.ErrorIs(t, err, ErrTooLarge)
	_, err = os.Stat(filepath.Join(dir, res.Key))
	assert.True(t, os.IsNotExist(err))

	ticket, err := p.Redeem(res.Key, token, []byte("%PDF"), now)
	require.NoError(t, err, "an oversized body must not consume the ticket")
	assert.Equal(t, res.Key, ticket.Key)

	body, err := os.ReadFile(filepath.Join(dir, res.Key))
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(body))

	_, err = p.Redeem(res.Key, token, []byte("%PDF"), now)
	assert.ErrorIs(t, err, ErrTicketNotFound, "tickets are single use")
}
