package service

import (
	"context"

	"brand-dashboard-be/internal/dto"
	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/pkg/serverutils"
	"brand-dashboard-be/internal/repository/unitofwork"
)

type IDashboardService interface {
	Summary(ctx context.Context, p serverutils.Principal) (*dto.DashboardSummaryResponse, error)
}

type dashboardService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewDashboardService(uowFactory unitofwork.RepositoryFactory) IDashboardService {
	return &dashboardService{uowFactory: uowFactory}
}

func (s *dashboardService) Summary(ctx context.Context, p serverutils.Principal) (*dto.DashboardSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	campaignCounts, err := uow.CampaignRepository().CountByStatus(ctx, p.OrganizationId)
	if err != nil {
		return nil, err
	}
	enrollmentCounts, err := uow.EnrollmentRepository().CountByStatus(ctx, p.OrganizationId, nil)
	if err != nil {
		return nil, err
	}
	book, err := openLedger(ctx, uow.WalletRepository(), p.OrganizationId)
	if err != nil {
		return nil, err
	}
	unread, err := uow.NotificationRepository().CountUnread(ctx, p.UserId)
	if err != nil {
		return nil, err
	}

	res := &dto.DashboardSummaryResponse{
		CampaignCounts:            make(map[string]int64, len(entity.CampaignStatuses)),
		ActiveCampaigns:           campaignCounts[entity.CampaignStatusActive],
		EnrollmentsAwaitingReview: enrollmentCounts[entity.EnrollmentStatusAwaitingReview],
		Wallet:                    toWalletResponse(book.balance),
		UnreadNotifications:       unread,
	}
	for _, status := range entity.CampaignStatuses {
		res.CampaignCounts[string(status)] = campaignCounts[status]
		res.TotalCampaigns += campaignCounts[status]
	}
	return res, nil
}
