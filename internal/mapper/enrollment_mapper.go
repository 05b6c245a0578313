package mapper

import (
	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/model"
)

type EnrollmentMapper struct{}

func NewEnrollmentMapper() *EnrollmentMapper {
	return &EnrollmentMapper{}
}

func (m *EnrollmentMapper) ToEntity(e *model.Enrollment) *entity.Enrollment {
	if e == nil {
		return nil
	}
	return &entity.Enrollment{
		Id:             e.Id,
		OrganizationId: e.OrganizationId,
		CampaignId:     e.CampaignId,
		ShopperId:      e.ShopperId,
		ShopperName:    e.ShopperName,
		ShopperHandle:  e.ShopperHandle,
		Platform:       e.Platform,
		OrderId:        e.OrderId,
		OrderValue:     e.OrderValue,
		CashbackAmount: e.CashbackAmount,
		Status:         entity.EnrollmentStatus(e.Status),
		SubmissionUrl:  e.SubmissionUrl,
		SubmittedAt:    e.SubmittedAt,
		ReviewNote:     e.ReviewNote,
		ReviewedBy:     e.ReviewedBy,
		ReviewedAt:     e.ReviewedAt,
		ExpiresAt:      e.ExpiresAt,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func (m *EnrollmentMapper) ToModel(e *entity.Enrollment) *model.Enrollment {
	if e == nil {
		return nil
	}
	return &model.Enrollment{
		Id:             e.Id,
		OrganizationId: e.OrganizationId,
		CampaignId:     e.CampaignId,
		ShopperId:      e.ShopperId,
		ShopperName:    e.ShopperName,
		ShopperHandle:  e.ShopperHandle,
		Platform:       e.Platform,
		OrderId:        e.OrderId,
		OrderValue:     e.OrderValue,
		CashbackAmount: e.CashbackAmount,
		Status:         string(e.Status),
		SubmissionUrl:  e.SubmissionUrl,
		SubmittedAt:    e.SubmittedAt,
		ReviewNote:     e.ReviewNote,
		ReviewedBy:     e.ReviewedBy,
		ReviewedAt:     e.ReviewedAt,
		ExpiresAt:      e.ExpiresAt,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func (m *EnrollmentMapper) ToEntities(enrollments []*model.Enrollment) []*entity.Enrollment {
	entities := make([]*entity.Enrollment, len(enrollments))
	for i, e := range enrollments {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
