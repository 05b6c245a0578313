package service

import (
	"context"
	"strings"

	"brand-dashboard-be/internal/dto"
	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/lifecycle"
	"brand-dashboard-be/internal/pkg/csvexport"
	"brand-dashboard-be/internal/pkg/logger"
	"brand-dashboard-be/internal/pkg/metrics"
	"brand-dashboard-be/internal/pkg/pagination"
	"brand-dashboard-be/internal/pkg/serverutils"
	"brand-dashboard-be/internal/repository/contract"
	"brand-dashboard-be/internal/repository/unitofwork"
	"brand-dashboard-be/pkg/events"

	"github.com/google/uuid"
)

const msgEnrollmentNotFound = "Enrollment not found"

var reviewDecisions = map[entity.EnrollmentStatus]string{
	entity.EnrollmentStatusApproved:         "approved",
	entity.EnrollmentStatusRejected:         "rejected",
	entity.EnrollmentStatusChangesRequested: "sent back for changes",
}

type IEnrollmentService interface {
	List(ctx context.Context, p serverutils.Principal, query dto.EnrollmentListQuery, page pagination.Params) (*pagination.Page[dto.EnrollmentResponse], error)
	ListForCampaign(ctx context.Context, p serverutils.Principal, campaignId uuid.UUID, query dto.EnrollmentListQuery, page pagination.Params) (*pagination.Page[dto.EnrollmentResponse], error)
	Export(ctx context.Context, p serverutils.Principal, query dto.EnrollmentListQuery) (*ExportFile, error)
	Get(ctx context.Context, p serverutils.Principal, id uuid.UUID) (*dto.EnrollmentDetailResponse, error)
	Approve(ctx context.Context, p serverutils.Principal, id uuid.UUID, req *dto.ApproveEnrollmentRequest) (*dto.EnrollmentDetailResponse, error)
	Reject(ctx context.Context, p serverutils.Principal, id uuid.UUID, req *dto.RejectEnrollmentRequest) (*dto.EnrollmentDetailResponse, error)
	RequestChanges(ctx context.Context, p serverutils.Principal, id uuid.UUID, req *dto.RequestChangesRequest) (*dto.EnrollmentDetailResponse, error)
	BulkApprove(ctx context.Context, p serverutils.Principal, req *dto.BulkApproveRequest) (*dto.BulkApproveResponse, error)

	// ExpireOverdue is the scheduler sweep. It returns expired and failed counts.
	ExpireOverdue(ctx context.Context) (int, int, error)
}

type enrollmentService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  events.Publisher
	logger     logger.ILogger
}

func NewEnrollmentService(uowFactory unitofwork.RepositoryFactory, publisher events.Publisher, log logger.ILogger) IEnrollmentService {
	return &enrollmentService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     log,
	}
}

func (s *enrollmentService) filter(p serverutils.Principal, query dto.EnrollmentListQuery) (contract.EnrollmentFilter, error) {
	orgId := p.OrganizationId
	filter := contract.EnrollmentFilter{
		OrganizationId: &orgId,
		Search:         strings.TrimSpace(query.Search),
	}

	statuses, err := parseEnum(query.Status, "status", entity.EnrollmentStatuses)
	if err != nil {
		return filter, err
	}
	filter.Statuses = statuses

	if raw := strings.TrimSpace(query.CampaignId); raw != "" {
		campaignId, err := uuid.Parse(raw)
		if err != nil {
			return filter, serverutils.BadRequest("Invalid campaignId filter")
		}
		filter.CampaignId = &campaignId
	}
	return filter, nil
}

func (s *enrollmentService) list(ctx context.Context, uow unitofwork.UnitOfWork, filter contract.EnrollmentFilter, page pagination.Params) (*pagination.Page[dto.EnrollmentResponse], error) {
	filter.Page = page
	enrollments, total, err := uow.EnrollmentRepository().FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.EnrollmentResponse, len(enrollments))
	for i, e := range enrollments {
		items[i] = toEnrollmentResponse(e)
	}
	return pagination.NewPage(items, page, total), nil
}

func (s *enrollmentService) List(ctx context.Context, p serverutils.Principal, query dto.EnrollmentListQuery, page pagination.Params) (*pagination.Page[dto.EnrollmentResponse], error) {
	filter, err := s.filter(p, query)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, s.uowFactory.NewUnitOfWork(ctx), filter, page)
}

func (s *enrollmentService) ListForCampaign(ctx context.Context, p serverutils.Principal, campaignId uuid.UUID, query dto.EnrollmentListQuery, page pagination.Params) (*pagination.Page[dto.EnrollmentResponse], error) {
	query.CampaignId = ""
	filter, err := s.filter(p, query)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	campaign, err := uow.CampaignRepository().FindByID(ctx, p.OrganizationId, campaignId)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, serverutils.NotFound(msgCampaignNotFound)
	}

	filter.CampaignId = &campaignId
	return s.list(ctx, uow, filter, page)
}

var enrollmentColumns = []csvexport.Column[*entity.Enrollment]{
	{Header: "id", Value: func(e *entity.Enrollment) string { return e.Id.String() }},
	{Header: "campaign_id", Value: func(e *entity.Enrollment) string { return e.CampaignId.String() }},
	{Header: "shopper_name", Value: func(e *entity.Enrollment) string { return e.ShopperName }},
	{Header: "shopper_handle", Value: func(e *entity.Enrollment) string { return e.ShopperHandle }},
	{Header: "platform", Value: func(e *entity.Enrollment) string { return e.Platform }},
	{Header: "order_id", Value: func(e *entity.Enrollment) string { return e.OrderId }},
	{Header: "order_value", Value: func(e *entity.Enrollment) string { return csvexport.Amount(e.OrderValue) }},
	{Header: "cashback_amount", Value: func(e *entity.Enrollment) string { return csvexport.Amount(e.CashbackAmount) }},
	{Header: "status", Value: func(e *entity.Enrollment) string { return string(e.Status) }},
	{Header: "submitted_at", Value: func(e *entity.Enrollment) string { return csvexport.TimePtr(e.SubmittedAt) }},
	{Header: "reviewed_at", Value: func(e *entity.Enrollment) string { return csvexport.TimePtr(e.ReviewedAt) }},
	{Header: "created_at", Value: func(e *entity.Enrollment) string { return csvexport.Time(e.CreatedAt) }},
}

func (s *enrollmentService) Export(ctx context.Context, p serverutils.Principal, query dto.EnrollmentListQuery) (*ExportFile, error) {
	filter, err := s.filter(p, query)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	enrollments, _, err := uow.EnrollmentRepository().FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	content, err := csvexport.Render(enrollmentColumns, enrollments)
	if err != nil {
		return nil, err
	}
	return &ExportFile{Filename: csvexport.Filename("enrollments", timeNow()), Content: content}, nil
}

func toEnrollmentDetail(e *entity.Enrollment, campaign *entity.Campaign) *dto.EnrollmentDetailResponse {
	res := &dto.EnrollmentDetailResponse{
		EnrollmentResponse: toEnrollmentResponse(e),
		AvailableActions:   enrollmentActionNames(e.Status),
	}
	if campaign != nil {
		res.CampaignTitle = campaign.Title
	}
	return res
}

func (s *enrollmentService) Get(ctx context.Context, p serverutils.Principal, id uuid.UUID) (*dto.EnrollmentDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	enrollment, err := uow.EnrollmentRepository().FindByID(ctx, p.OrganizationId, id)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, serverutils.NotFound(msgEnrollmentNotFound)
	}

	campaign, err := uow.CampaignRepository().FindByID(ctx, p.OrganizationId, enrollment.CampaignId)
	if err != nil {
		return nil, err
	}
	return toEnrollmentDetail(enrollment, campaign), nil
}

func (s *enrollmentService) Approve(ctx context.Context, p serverutils.Principal, id uuid.UUID, req *dto.ApproveEnrollmentRequest) (*dto.EnrollmentDetailResponse, error) {
	return s.review(ctx, p, id, lifecycle.EnrollmentActionApprove, strings.TrimSpace(req.Note))
}

func (s *enrollmentService) Reject(ctx context.Context, p serverutils.Principal, id uuid.UUID, req *dto.RejectEnrollmentRequest) (*dto.EnrollmentDetailResponse, error) {
	return s.review(ctx, p, id, lifecycle.EnrollmentActionReject, strings.TrimSpace(req.Reason))
}

func (s *enrollmentService) RequestChanges(ctx context.Context, p serverutils.Principal, id uuid.UUID, req *dto.RequestChangesRequest) (*dto.EnrollmentDetailResponse, error) {
	return s.review(ctx, p, id, lifecycle.EnrollmentActionRequestChanges, strings.TrimSpace(req.Feedback))
}

// review applies a brand decision and settles the wallet hold in the same unit of work.
func (s *enrollmentService) review(ctx context.Context, p serverutils.Principal, id uuid.UUID, action lifecycle.EnrollmentAction, note string) (*dto.EnrollmentDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	enrollment, err := uow.EnrollmentRepository().FindByID(ctx, p.OrganizationId, id)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, serverutils.NotFound(msgEnrollmentNotFound)
	}
	campaign, err := uow.CampaignRepository().FindByID(ctx, p.OrganizationId, enrollment.CampaignId)
	if err != nil {
		return nil, err
	}

	if _, err := lifecycle.ApplyEnrollmentAction(enrollment, action, note, &entity.User{Id: p.UserId}, timeNow()); err != nil {
		return nil, err
	}

	switch action {
	case lifecycle.EnrollmentActionApprove:
		book, err := openLedger(ctx, uow.WalletRepository(), p.OrganizationId)
		if err != nil {
			return nil, err
		}
		if err := book.payCashback(ctx, enrollment, "Cashback paid to "+enrollment.ShopperName); err != nil {
			return nil, err
		}
		if err := book.save(ctx); err != nil {
			return nil, err
		}
		if campaign != nil {
			campaign.Spent = entity.RoundAmount(campaign.Spent + enrollment.CashbackAmount)
			campaign.UpdatedAt = timeNow()
			if err := uow.CampaignRepository().Update(ctx, campaign); err != nil {
				return nil, err
			}
		}
	case lifecycle.EnrollmentActionReject:
		book, err := openLedger(ctx, uow.WalletRepository(), p.OrganizationId)
		if err != nil {
			return nil, err
		}
		if err := book.releaseHold(ctx, enrollment); err != nil {
			return nil, err
		}
		if err := book.save(ctx); err != nil {
			return nil, err
		}
	}

	if err := uow.EnrollmentRepository().Update(ctx, enrollment); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	metrics.RecordTransition("enrollment", string(action), string(enrollment.Status))
	s.logger.Info("EnrollmentService", "Enrollment reviewed", map[string]interface{}{
		"enrollment_id": enrollment.Id.String(),
		"action":        string(action),
		"reviewer_id":   p.UserId.String(),
	})
	publishEvent(ctx, s.publisher, s.logger, events.EnrollmentReviewed, map[string]interface{}{
		"organization_id": enrollment.OrganizationId.String(),
		"enrollment_id":   enrollment.Id.String(),
		"campaign_id":     enrollment.CampaignId.String(),
		"shopper_name":    enrollment.ShopperName,
		"decision":        reviewDecisions[enrollment.Status],
		"actor_id":        p.UserId.String(),
		"entity_type":     "enrollment",
		"entity_id":       enrollment.Id.String(),
	})
	return toEnrollmentDetail(enrollment, campaign), nil
}

// BulkApprove approves each id in its own unit of work so one failure leaves the
// others in place.
func (s *enrollmentService) BulkApprove(ctx context.Context, p serverutils.Principal, req *dto.BulkApproveRequest) (*dto.BulkApproveResponse, error) {
	res := &dto.BulkApproveResponse{Results: make([]dto.BulkApproveResult, 0, len(req.Ids))}
	for _, id := range req.Ids {
		detail, err := s.review(ctx, p, id, lifecycle.EnrollmentActionApprove, "")
		if err != nil {
			res.Failed++
			res.Results = append(res.Results, dto.BulkApproveResult{Id: id, Success: false, Error: errorMessage(err)})
			if serverutils.StatusOf(err) >= 500 {
				s.logger.Error("EnrollmentService", "Bulk approve item failed", map[string]interface{}{
					"enrollment_id": id.String(),
					"error":         err.Error(),
				})
			}
			continue
		}
		res.Succeeded++
		res.Results = append(res.Results, dto.BulkApproveResult{Id: id, Success: true, Status: detail.Status})
	}
	return res, nil
}

func (s *enrollmentService) ExpireOverdue(ctx context.Context) (int, int, error) {
	now := timeNow()
	uow := s.uowFactory.NewUnitOfWork(ctx)
	due, _, err := uow.EnrollmentRepository().FindAll(ctx, contract.EnrollmentFilter{
		Statuses:      []entity.EnrollmentStatus{entity.EnrollmentStatusEnrolled, entity.EnrollmentStatusAwaitingSubmission},
		ExpiresBefore: &now,
	})
	if err != nil {
		return 0, 0, err
	}

	expired, failed := 0, 0
	for _, e := range due {
		if err := s.expire(ctx, e.OrganizationId, e.Id); err != nil {
			failed++
			s.logger.Warn("EnrollmentService", "Enrollment expiry skipped", map[string]interface{}{
				"enrollment_id": e.Id.String(),
				"error":         err.Error(),
			})
			continue
		}
		expired++
	}
	return expired, failed, nil
}

func (s *enrollmentService) expire(ctx context.Context, organizationId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	enrollment, err := uow.EnrollmentRepository().FindByID(ctx, organizationId, id)
	if err != nil {
		return err
	}
	if enrollment == nil {
		return serverutils.NotFound(msgEnrollmentNotFound)
	}
	if _, err := lifecycle.ApplyEnrollmentAction(enrollment, lifecycle.EnrollmentActionExpire, "", nil, timeNow()); err != nil {
		return err
	}

	book, err := openLedger(ctx, uow.WalletRepository(), organizationId)
	if err != nil {
		return err
	}
	if err := book.releaseHold(ctx, enrollment); err != nil {
		return err
	}
	if err := book.save(ctx); err != nil {
		return err
	}
	if err := uow.EnrollmentRepository().Update(ctx, enrollment); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	metrics.RecordTransition("enrollment", string(lifecycle.EnrollmentActionExpire), string(enrollment.Status))
	return nil
}
