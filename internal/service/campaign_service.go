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
	"brand-dashboard-be/internal/repository/specification"
	"brand-dashboard-be/internal/repository/unitofwork"
	"brand-dashboard-be/pkg/events"

	"github.com/google/uuid"
)

const msgCampaignNotFound = "Campaign not found"

var campaignTypes = []entity.CampaignType{entity.CampaignTypeCashback, entity.CampaignTypeBarter, entity.CampaignTypePaid}

type ICampaignService interface {
	List(ctx context.Context, p serverutils.Principal, query dto.CampaignListQuery, page pagination.Params) (*pagination.Page[dto.CampaignResponse], error)
	Export(ctx context.Context, p serverutils.Principal, query dto.CampaignListQuery) (*ExportFile, error)
	Get(ctx context.Context, p serverutils.Principal, id uuid.UUID) (*dto.CampaignDetailResponse, error)
	Create(ctx context.Context, p serverutils.Principal, req *dto.CampaignRequest) (*dto.CampaignDetailResponse, error)
	Update(ctx context.Context, p serverutils.Principal, id uuid.UUID, req *dto.CampaignRequest) (*dto.CampaignDetailResponse, error)
	Delete(ctx context.Context, p serverutils.Principal, id uuid.UUID) error
	Transition(ctx context.Context, p serverutils.Principal, id uuid.UUID, action lifecycle.CampaignAction, reason string) (*dto.CampaignDetailResponse, error)

	// Scheduler entry points. Each returns how many campaigns moved and how many failed.
	ActivateDue(ctx context.Context) (int, int, error)
	EndExpired(ctx context.Context) (int, int, error)
}

type campaignService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  events.Publisher
	logger     logger.ILogger
}

func NewCampaignService(uowFactory unitofwork.RepositoryFactory, publisher events.Publisher, log logger.ILogger) ICampaignService {
	return &campaignService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     log,
	}
}

func (s *campaignService) filter(p serverutils.Principal, query dto.CampaignListQuery) (contract.CampaignFilter, error) {
	orgId := p.OrganizationId
	filter := contract.CampaignFilter{
		OrganizationId: &orgId,
		Search:         strings.TrimSpace(query.Search),
		Sort:           contract.Sort{Field: "createdAt", Desc: true},
	}

	statuses, err := parseEnum(query.Status, "status", entity.CampaignStatuses)
	if err != nil {
		return filter, err
	}
	filter.Statuses = statuses

	if query.Type != "" {
		if !contains(campaignTypes, entity.CampaignType(query.Type)) {
			return filter, serverutils.BadRequest("Invalid type filter")
		}
		filter.Type = entity.CampaignType(query.Type)
	}

	if query.SortBy != "" {
		if _, ok := specification.CampaignSortColumns[query.SortBy]; !ok {
			return filter, serverutils.BadRequest("Invalid sortBy")
		}
		filter.Sort.Field = query.SortBy
	}
	switch strings.ToLower(query.SortOrder) {
	case "":
	case "asc":
		filter.Sort.Desc = false
	case "desc":
		filter.Sort.Desc = true
	default:
		return filter, serverutils.BadRequest("sortOrder must be asc or desc")
	}
	return filter, nil
}

func (s *campaignService) List(ctx context.Context, p serverutils.Principal, query dto.CampaignListQuery, page pagination.Params) (*pagination.Page[dto.CampaignResponse], error) {
	filter, err := s.filter(p, query)
	if err != nil {
		return nil, err
	}
	filter.Page = page

	uow := s.uowFactory.NewUnitOfWork(ctx)
	campaigns, total, err := uow.CampaignRepository().FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CampaignResponse, len(campaigns))
	for i, c := range campaigns {
		items[i] = toCampaignResponse(c)
	}
	return pagination.NewPage(items, page, total), nil
}

var campaignColumns = []csvexport.Column[*entity.Campaign]{
	{Header: "id", Value: func(c *entity.Campaign) string { return c.Id.String() }},
	{Header: "title", Value: func(c *entity.Campaign) string { return c.Title }},
	{Header: "type", Value: func(c *entity.Campaign) string { return string(c.Type) }},
	{Header: "status", Value: func(c *entity.Campaign) string { return string(c.Status) }},
	{Header: "product_name", Value: func(c *entity.Campaign) string { return c.ProductName }},
	{Header: "budget", Value: func(c *entity.Campaign) string { return csvexport.Amount(c.Budget) }},
	{Header: "spent", Value: func(c *entity.Campaign) string { return csvexport.Amount(c.Spent) }},
	{Header: "cashback_percent", Value: func(c *entity.Campaign) string { return csvexport.Amount(c.CashbackPercent) }},
	{Header: "enrollments", Value: func(c *entity.Campaign) string { return csvexport.Int(c.EnrollmentCount) }},
	{Header: "max_enrollments", Value: func(c *entity.Campaign) string { return csvexport.Int(c.MaxEnrollments) }},
	{Header: "start_date", Value: func(c *entity.Campaign) string { return csvexport.Time(c.StartDate) }},
	{Header: "end_date", Value: func(c *entity.Campaign) string { return csvexport.Time(c.EndDate) }},
	{Header: "created_at", Value: func(c *entity.Campaign) string { return csvexport.Time(c.CreatedAt) }},
}

func (s *campaignService) Export(ctx context.Context, p serverutils.Principal, query dto.CampaignListQuery) (*ExportFile, error) {
	filter, err := s.filter(p, query)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	campaigns, _, err := uow.CampaignRepository().FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	content, err := csvexport.Render(campaignColumns, campaigns)
	if err != nil {
		return nil, err
	}
	return &ExportFile{Filename: csvexport.Filename("campaigns", timeNow()), Content: content}, nil
}

func (s *campaignService) detail(ctx context.Context, uow unitofwork.UnitOfWork, c *entity.Campaign) (*dto.CampaignDetailResponse, error) {
	campaignId := c.Id
	counts, err := uow.EnrollmentRepository().CountByStatus(ctx, c.OrganizationId, &campaignId)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[string]int64, len(entity.EnrollmentStatuses))
	for _, status := range entity.EnrollmentStatuses {
		byStatus[string(status)] = counts[status]
	}

	return &dto.CampaignDetailResponse{
		CampaignResponse: toCampaignResponse(c),
		EnrollmentCounts: byStatus,
		AvailableActions: campaignActionNames(c.Status),
	}, nil
}

func (s *campaignService) Get(ctx context.Context, p serverutils.Principal, id uuid.UUID) (*dto.CampaignDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	campaign, err := uow.CampaignRepository().FindByID(ctx, p.OrganizationId, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, serverutils.NotFound(msgCampaignNotFound)
	}
	return s.detail(ctx, uow, campaign)
}

func applyCampaignRequest(c *entity.Campaign, req *dto.CampaignRequest) error {
	if !req.EndDate.After(req.StartDate) {
		return serverutils.BadRequest("endDate must be after startDate")
	}

	c.Title = strings.TrimSpace(req.Title)
	c.Description = strings.TrimSpace(req.Description)
	c.Type = entity.CampaignType(req.Type)
	c.ProductName = strings.TrimSpace(req.ProductName)
	c.ProductUrl = req.ProductUrl
	c.BannerUrl = req.BannerUrl
	c.Platforms = append([]string{}, req.Platforms...)
	c.Deliverables = append([]string{}, req.Deliverables...)
	c.Budget = entity.RoundAmount(req.Budget)
	c.CashbackPercent = req.CashbackPercent
	c.MaxEnrollments = req.MaxEnrollments
	c.StartDate = req.StartDate.UTC()
	c.EndDate = req.EndDate.UTC()
	return nil
}

func (s *campaignService) Create(ctx context.Context, p serverutils.Principal, req *dto.CampaignRequest) (*dto.CampaignDetailResponse, error) {
	now := timeNow()
	campaign := &entity.Campaign{
		Id:             uuid.New(),
		OrganizationId: p.OrganizationId,
		Status:         entity.CampaignStatusDraft,
		CreatedBy:      p.UserId,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := applyCampaignRequest(campaign, req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.CampaignRepository().Create(ctx, campaign); err != nil {
		return nil, err
	}

	s.logger.Info("CampaignService", "Campaign created", map[string]interface{}{
		"campaign_id":     campaign.Id.String(),
		"organization_id": campaign.OrganizationId.String(),
	})
	return s.detail(ctx, uow, campaign)
}

func (s *campaignService) Update(ctx context.Context, p serverutils.Principal, id uuid.UUID, req *dto.CampaignRequest) (*dto.CampaignDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	repo := uow.CampaignRepository()
	campaign, err := repo.FindByID(ctx, p.OrganizationId, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, serverutils.NotFound(msgCampaignNotFound)
	}
	if err := lifecycle.EnsureCampaignEditable(campaign.Status); err != nil {
		return nil, err
	}
	if err := applyCampaignRequest(campaign, req); err != nil {
		return nil, err
	}
	campaign.UpdatedAt = timeNow()

	if err := repo.Update(ctx, campaign); err != nil {
		return nil, err
	}
	res, err := s.detail(ctx, uow, campaign)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *campaignService) Delete(ctx context.Context, p serverutils.Principal, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	repo := uow.CampaignRepository()
	campaign, err := repo.FindByID(ctx, p.OrganizationId, id)
	if err != nil {
		return err
	}
	if campaign == nil {
		return serverutils.NotFound(msgCampaignNotFound)
	}
	if err := lifecycle.EnsureCampaignDeletable(campaign.Status); err != nil {
		return err
	}
	if err := repo.Delete(ctx, id); err != nil {
		return err
	}
	return uow.Commit()
}

func (s *campaignService) Transition(ctx context.Context, p serverutils.Principal, id uuid.UUID, action lifecycle.CampaignAction, reason string) (*dto.CampaignDetailResponse, error) {
	if action == lifecycle.CampaignActionApprove && p.Role != entity.UserRolePlatformAdmin {
		return nil, serverutils.Forbidden(serverutils.MsgForbidden)
	}
	// Platform admins review every brand's campaigns.
	scope := p.OrganizationId
	if p.Role == entity.UserRolePlatformAdmin {
		scope = uuid.Nil
	}
	return s.transition(ctx, scope, id, action, reason, &p.UserId)
}

// transition is shared by the API and the scheduler; the scheduler passes no actor.
func (s *campaignService) transition(ctx context.Context, organizationId, id uuid.UUID, action lifecycle.CampaignAction, reason string, actorId *uuid.UUID) (*dto.CampaignDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	repo := uow.CampaignRepository()
	campaign, err := repo.FindByID(ctx, organizationId, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, serverutils.NotFound(msgCampaignNotFound)
	}

	previous, err := lifecycle.ApplyCampaignAction(campaign, action, timeNow())
	if err != nil {
		return nil, err
	}
	if action == lifecycle.CampaignActionCancel {
		campaign.CancelReason = strings.TrimSpace(reason)
	}

	if err := repo.Update(ctx, campaign); err != nil {
		return nil, err
	}
	res, err := s.detail(ctx, uow, campaign)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	metrics.RecordTransition("campaign", string(action), string(campaign.Status))
	s.logger.Info("CampaignService", "Campaign status changed", map[string]interface{}{
		"campaign_id": campaign.Id.String(),
		"from":        string(previous),
		"to":          string(campaign.Status),
	})

	actor := ""
	if actorId != nil {
		actor = actorId.String()
	}
	publishEvent(ctx, s.publisher, s.logger, events.CampaignStatusChanged, map[string]interface{}{
		"organization_id": campaign.OrganizationId.String(),
		"campaign_id":     campaign.Id.String(),
		"title":           campaign.Title,
		"from":            string(previous),
		"to":              string(campaign.Status),
		"actor_id":        actor,
		"entity_type":     "campaign",
		"entity_id":       campaign.Id.String(),
	})
	return res, nil
}

func (s *campaignService) ActivateDue(ctx context.Context) (int, int, error) {
	now := timeNow()
	return s.sweep(ctx, contract.CampaignFilter{
		Statuses:    []entity.CampaignStatus{entity.CampaignStatusApproved},
		StartBefore: &now,
	}, lifecycle.CampaignActionActivate)
}

func (s *campaignService) EndExpired(ctx context.Context) (int, int, error) {
	now := timeNow()
	return s.sweep(ctx, contract.CampaignFilter{
		Statuses:  []entity.CampaignStatus{entity.CampaignStatusActive, entity.CampaignStatusPaused},
		EndBefore: &now,
	}, lifecycle.CampaignActionEnd)
}

func (s *campaignService) sweep(ctx context.Context, filter contract.CampaignFilter, action lifecycle.CampaignAction) (int, int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	due, _, err := uow.CampaignRepository().FindAll(ctx, filter)
	if err != nil {
		return 0, 0, err
	}

	moved, failed := 0, 0
	for _, c := range due {
		if _, err := s.transition(ctx, c.OrganizationId, c.Id, action, "", nil); err != nil {
			failed++
			s.logger.Warn("CampaignService", "Scheduled transition skipped", map[string]interface{}{
				"campaign_id": c.Id.String(),
				"action":      string(action),
				"error":       err.Error(),
			})
			continue
		}
		moved++
	}
	return moved, failed, nil
}
