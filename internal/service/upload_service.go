package service

import (
	"context"
	"errors"

	"brand-dashboard-be/internal/dto"
	"brand-dashboard-be/internal/pkg/logger"
	"brand-dashboard-be/internal/pkg/serverutils"
	"brand-dashboard-be/internal/pkg/storage"
)

type IUploadService interface {
	Presign(ctx context.Context, p serverutils.Principal, req *dto.PresignUploadRequest) (*storage.PresignResult, error)
	Complete(ctx context.Context, key, token string, body []byte) (*dto.UploadCompleteResponse, error)
}

type uploadService struct {
	presigner *storage.Presigner
	logger    logger.ILogger
}

func NewUploadService(presigner *storage.Presigner, log logger.ILogger) IUploadService {
	return &uploadService{
		presigner: presigner,
		logger:    log,
	}
}

func uploadError(err error) error {
	switch {
	case errors.Is(err, storage.ErrTicketNotFound):
		return serverutils.NotFound(err.Error())
	case errors.Is(err, storage.ErrUnsupportedPurpose), errors.Is(err, storage.ErrContentType), errors.Is(err, storage.ErrTooLarge):
		return serverutils.BadRequest(err.Error())
	}
	return err
}

func (s *uploadService) Presign(ctx context.Context, p serverutils.Principal, req *dto.PresignUploadRequest) (*storage.PresignResult, error) {
	result, err := s.presigner.Presign(storage.PresignRequest{
		OrganizationId: p.OrganizationId,
		FileName:       req.FileName,
		ContentType:    req.ContentType,
		Size:           req.Size,
		Purpose:        req.Purpose,
	}, timeNow())
	if err != nil {
		return nil, uploadError(err)
	}
	return result, nil
}

// Complete is the development upload sink. The ticket token stands in for auth.
func (s *uploadService) Complete(ctx context.Context, key, token string, body []byte) (*dto.UploadCompleteResponse, error) {
	ticket, err := s.presigner.Redeem(key, token, body, timeNow())
	if err != nil {
		return nil, uploadError(err)
	}

	s.logger.Info("UploadService", "Upload stored", map[string]interface{}{
		"key":             ticket.Key,
		"organization_id": ticket.OrganizationId.String(),
		"size":            len(body),
	})
	return &dto.UploadCompleteResponse{
		Key:     ticket.Key,
		FileUrl: s.presigner.FileURL(ticket.Key),
		Size:    len(body),
	}, nil
}
