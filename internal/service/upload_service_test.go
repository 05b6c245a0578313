package service

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"brand-dashboard-be/internal/dto"
	"brand-dashboard-be/internal/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadPresignAndComplete(t *testing.T) {
	env := newTestEnv(t)
	dir := t.TempDir()
	svc := NewUploadService(storage.NewPresigner("http://localhost:8080", dir, 15*time.Minute), env.log)
	ctx := context.Background()

	ticket, err := svc.Presign(ctx, owner, &dto.PresignUploadRequest{
		FileName: "banner.png", ContentType: "image/png", Size: 2048, Purpose: "campaign_banner",
	})
	require.NoError(t, err)
	assert.Equal(t, "PUT", ticket.Method)
	assert.Equal(t, fixedNow.Add(15*time.Minute), ticket.ExpiresAt)

	uploadURL, err := url.Parse(ticket.UploadUrl)
	require.NoError(t, err)
	token := uploadURL.Query().Get("token")

	_, err = svc.Complete(ctx, ticket.Key, "wrong-token", []byte("png"))
	requireStatus(t, err, 404)

	_, err = svc.Complete(ctx, ticket.Key, token, make([]byte, storage.MaxUploadSize+1))
	requireStatus(t, err, 400)
	assert.Equal(t, "File exceeds the 10 MB limit", err.Error())

	res, err := svc.Complete(ctx, ticket.Key, token, []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, ticket.FileUrl, res.FileUrl)
	assert.Equal(t, 9, res.Size)

	stored, err := os.ReadFile(filepath.Join(dir, ticket.Key))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(stored))

	_, err = svc.Complete(ctx, ticket.Key, token, []byte("again"))
	requireStatus(t, err, 404)
}

func TestUploadPresignRejections(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUploadService(storage.NewPresigner("http://localhost:8080", t.TempDir(), time.Minute), env.log)

	tests := []struct {
		name string
		req  dto.PresignUploadRequest
	}{
		{"unknown purpose", dto.PresignUploadRequest{FileName: "a.png", ContentType: "image/png", Size: 10, Purpose: "avatar"}},
		{"wrong content type", dto.PresignUploadRequest{FileName: "a.png", ContentType: "image/png", Size: 10, Purpose: "invoice_attachment"}},
		{"too large", dto.PresignUploadRequest{FileName: "a.pdf", ContentType: "application/pdf", Size: storage.MaxUploadSize + 1, Purpose: "kyc_document"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Presign(context.Background(), owner, &tt.req)
			requireStatus(t, err, 400)
		})
	}
}
