package service

import (
	"context"
	"errors"
	"strings"

	"brand-dashboard-be/internal/dto"
	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/pkg/kyc"
	"brand-dashboard-be/internal/pkg/logger"
	"brand-dashboard-be/internal/pkg/serverutils"
	"brand-dashboard-be/internal/repository/unitofwork"
	"brand-dashboard-be/pkg/events"
)

const msgOrganizationNotFound = "Organization not found"

type onboardingStep struct {
	key      string
	label    string
	required bool
	done     func(o *entity.Organization) bool
}

var onboardingSteps = []onboardingStep{
	{key: entity.OnboardingStepProfile, label: "Business profile", required: true, done: (*entity.Organization).HasProfile},
	{key: entity.OnboardingStepPan, label: "PAN verification", required: true, done: func(o *entity.Organization) bool { return o.PanVerified }},
	{key: entity.OnboardingStepGst, label: "GST registration", required: false, done: func(o *entity.Organization) bool { return o.GstVerified }},
	{key: entity.OnboardingStepBilling, label: "Billing address", required: true, done: func(o *entity.Organization) bool { return o.BillingAddress.IsComplete() }},
}

type IOrganizationService interface {
	Get(ctx context.Context, p serverutils.Principal) (*dto.OrganizationResponse, error)
	Onboarding(ctx context.Context, p serverutils.Principal) (*dto.OnboardingResponse, error)
	UpdateProfile(ctx context.Context, p serverutils.Principal, req *dto.UpdateOrganizationProfileRequest) (*dto.OrganizationResponse, error)
	VerifyPan(ctx context.Context, p serverutils.Principal, req *dto.VerifyPanRequest) (*kyc.PanResult, error)
	VerifyGst(ctx context.Context, p serverutils.Principal, req *dto.VerifyGstRequest) (*kyc.GstResult, error)
	UpdateBilling(ctx context.Context, p serverutils.Principal, req *dto.AddressDto) (*dto.OrganizationResponse, error)
	SubmitOnboarding(ctx context.Context, p serverutils.Principal) (*dto.OnboardingResponse, error)
}

type organizationService struct {
	uowFactory unitofwork.RepositoryFactory
	verifier   *kyc.Verifier
	publisher  events.Publisher
	logger     logger.ILogger
}

func NewOrganizationService(uowFactory unitofwork.RepositoryFactory, verifier *kyc.Verifier, publisher events.Publisher, log logger.ILogger) IOrganizationService {
	return &organizationService{
		uowFactory: uowFactory,
		verifier:   verifier,
		publisher:  publisher,
		logger:     log,
	}
}

func onboardingOf(o *entity.Organization) *dto.OnboardingResponse {
	res := &dto.OnboardingResponse{
		Status:    string(o.OnboardingStatus),
		Steps:     make([]dto.OnboardingStepResponse, 0, len(onboardingSteps)),
		CanSubmit: o.OnboardingStatus != entity.OnboardingStatusCompleted,
	}
	for _, step := range onboardingSteps {
		done := step.done(o)
		res.Steps = append(res.Steps, dto.OnboardingStepResponse{
			Key:       step.key,
			Label:     step.label,
			Required:  step.required,
			Completed: done,
		})
		if !done && res.CurrentStep == "" {
			res.CurrentStep = step.key
		}
		if step.required && !done {
			res.CanSubmit = false
		}
	}
	if res.CurrentStep == "" {
		res.CurrentStep = entity.OnboardingStepBilling
	}
	return res
}

// touch records onboarding progress after any step changes.
func touch(o *entity.Organization) {
	now := timeNow()
	o.UpdatedAt = now
	if o.OnboardingStatus == entity.OnboardingStatusCompleted {
		return
	}
	o.OnboardingStatus = entity.OnboardingStatusInProgress
	o.OnboardingStep = onboardingOf(o).CurrentStep
}

func (s *organizationService) Get(ctx context.Context, p serverutils.Principal) (*dto.OrganizationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	org, err := uow.OrganizationRepository().FindByID(ctx, p.OrganizationId)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, serverutils.NotFound(msgOrganizationNotFound)
	}
	res := toOrganizationResponse(org)
	return &res, nil
}

func (s *organizationService) Onboarding(ctx context.Context, p serverutils.Principal) (*dto.OnboardingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	org, err := uow.OrganizationRepository().FindByID(ctx, p.OrganizationId)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, serverutils.NotFound(msgOrganizationNotFound)
	}
	return onboardingOf(org), nil
}

// mutate loads the caller's organization, applies fn and stores the result in one unit of work.
func (s *organizationService) mutate(ctx context.Context, p serverutils.Principal, fn func(o *entity.Organization) error) (*entity.Organization, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	repo := uow.OrganizationRepository()
	org, err := repo.FindByID(ctx, p.OrganizationId)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, serverutils.NotFound(msgOrganizationNotFound)
	}
	if err := fn(org); err != nil {
		return nil, err
	}
	touch(org)
	if err := repo.Update(ctx, org); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return org, nil
}

func (s *organizationService) UpdateProfile(ctx context.Context, p serverutils.Principal, req *dto.UpdateOrganizationProfileRequest) (*dto.OrganizationResponse, error) {
	org, err := s.mutate(ctx, p, func(o *entity.Organization) error {
		o.Name = strings.TrimSpace(req.Name)
		o.LegalName = strings.TrimSpace(req.LegalName)
		o.Website = strings.TrimSpace(req.Website)
		o.Industry = strings.TrimSpace(req.Industry)
		o.ContactEmail = strings.ToLower(strings.TrimSpace(req.ContactEmail))
		o.ContactPhone = strings.TrimSpace(req.ContactPhone)
		return nil
	})
	if err != nil {
		return nil, err
	}
	res := toOrganizationResponse(org)
	return &res, nil
}

func kycError(err error) error {
	if errors.Is(err, kyc.ErrInvalidPanFormat) || errors.Is(err, kyc.ErrInvalidGstFormat) {
		return serverutils.BadRequest(err.Error())
	}
	return err
}

func (s *organizationService) VerifyPan(ctx context.Context, p serverutils.Principal, req *dto.VerifyPanRequest) (*kyc.PanResult, error) {
	result, err := s.verifier.VerifyPAN(req.Pan, req.Name)
	if err != nil {
		return nil, kycError(err)
	}
	if !result.Verified {
		return result, nil
	}

	if _, err := s.mutate(ctx, p, func(o *entity.Organization) error {
		o.Pan = result.Pan
		o.PanVerified = true
		o.PanName = result.RegisteredName
		if o.Gstin != "" && kyc.PanFromGstin(o.Gstin) != result.Pan {
			// A GSTIN issued against another PAN no longer counts as verified.
			o.GstVerified = false
		}
		return nil
	}); err != nil {
		return nil, err
	}

	s.logger.Info("OrganizationService", "PAN verified", map[string]interface{}{
		"organization_id": p.OrganizationId.String(),
	})
	return result, nil
}

func (s *organizationService) VerifyGst(ctx context.Context, p serverutils.Principal, req *dto.VerifyGstRequest) (*kyc.GstResult, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	org, err := uow.OrganizationRepository().FindByID(ctx, p.OrganizationId)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, serverutils.NotFound(msgOrganizationNotFound)
	}

	result, err := s.verifier.VerifyGST(req.Gstin, org.Pan)
	if err != nil {
		return nil, kycError(err)
	}
	if !result.Verified {
		return result, nil
	}

	if _, err := s.mutate(ctx, p, func(o *entity.Organization) error {
		o.Gstin = result.Gstin
		o.GstVerified = true
		o.GstLegalName = result.LegalName
		o.GstState = result.State
		return nil
	}); err != nil {
		return nil, err
	}

	s.logger.Info("OrganizationService", "GSTIN verified", map[string]interface{}{
		"organization_id": p.OrganizationId.String(),
		"pan_match":       result.PanMatch,
	})
	return result, nil
}

func (s *organizationService) UpdateBilling(ctx context.Context, p serverutils.Principal, req *dto.AddressDto) (*dto.OrganizationResponse, error) {
	org, err := s.mutate(ctx, p, func(o *entity.Organization) error {
		o.BillingAddress = &entity.Address{
			Line1:      strings.TrimSpace(req.Line1),
			Line2:      strings.TrimSpace(req.Line2),
			City:       strings.TrimSpace(req.City),
			State:      strings.TrimSpace(req.State),
			PostalCode: strings.TrimSpace(req.PostalCode),
			Country:    strings.TrimSpace(req.Country),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	res := toOrganizationResponse(org)
	return &res, nil
}

func (s *organizationService) SubmitOnboarding(ctx context.Context, p serverutils.Principal) (*dto.OnboardingResponse, error) {
	org, err := s.mutate(ctx, p, func(o *entity.Organization) error {
		if o.OnboardingStatus == entity.OnboardingStatusCompleted {
			return serverutils.BadRequest("Onboarding is already completed")
		}
		for _, step := range onboardingSteps {
			if step.required && !step.done(o) {
				return serverutils.BadRequest("Complete the " + strings.ToLower(step.label) + " step before submitting")
			}
		}
		now := timeNow()
		o.OnboardingStatus = entity.OnboardingStatusCompleted
		o.OnboardingStep = entity.OnboardingStepBilling
		o.OnboardedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("OrganizationService", "Onboarding completed", map[string]interface{}{
		"organization_id": org.Id.String(),
	})
	publishEvent(ctx, s.publisher, s.logger, events.OrganizationOnboarded, map[string]interface{}{
		"organization_id": org.Id.String(),
		"name":            org.Name,
		"actor_id":        p.UserId.String(),
		"entity_type":     "organization",
		"entity_id":       org.Id.String(),
	})
	return onboardingOf(org), nil
}
