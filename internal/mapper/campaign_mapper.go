package mapper

import (
	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/model"

	"gorm.io/datatypes"
)

type CampaignMapper struct{}

func NewCampaignMapper() *CampaignMapper {
	return &CampaignMapper{}
}

func (m *CampaignMapper) ToEntity(c *model.Campaign) *entity.Campaign {
	if c == nil {
		return nil
	}
	return &entity.Campaign{
		Id:              c.Id,
		OrganizationId:  c.OrganizationId,
		Title:           c.Title,
		Description:     c.Description,
		Type:            entity.CampaignType(c.Type),
		Status:          entity.CampaignStatus(c.Status),
		ProductName:     c.ProductName,
		ProductUrl:      c.ProductUrl,
		BannerUrl:       c.BannerUrl,
		Platforms:       []string(c.Platforms),
		Deliverables:    []string(c.Deliverables),
		Budget:          c.Budget,
		Spent:           c.Spent,
		CashbackPercent: c.CashbackPercent,
		MaxEnrollments:  c.MaxEnrollments,
		EnrollmentCount: c.EnrollmentCount,
		StartDate:       c.StartDate,
		EndDate:         c.EndDate,
		CancelReason:    c.CancelReason,
		CreatedBy:       c.CreatedBy,
		SubmittedAt:     c.SubmittedAt,
		ApprovedAt:      c.ApprovedAt,
		ActivatedAt:     c.ActivatedAt,
		PausedAt:        c.PausedAt,
		EndedAt:         c.EndedAt,
		CompletedAt:     c.CompletedAt,
		CancelledAt:     c.CancelledAt,
		ArchivedAt:      c.ArchivedAt,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func (m *CampaignMapper) ToModel(c *entity.Campaign) *model.Campaign {
	if c == nil {
		return nil
	}
	return &model.Campaign{
		Id:              c.Id,
		OrganizationId:  c.OrganizationId,
		Title:           c.Title,
		Description:     c.Description,
		Type:            string(c.Type),
		Status:          string(c.Status),
		ProductName:     c.ProductName,
		ProductUrl:      c.ProductUrl,
		BannerUrl:       c.BannerUrl,
		Platforms:       datatypes.JSONSlice[string](c.Platforms),
		Deliverables:    datatypes.JSONSlice[string](c.Deliverables),
		Budget:          c.Budget,
		Spent:           c.Spent,
		CashbackPercent: c.CashbackPercent,
		MaxEnrollments:  c.MaxEnrollments,
		EnrollmentCount: c.EnrollmentCount,
		StartDate:       c.StartDate,
		EndDate:         c.EndDate,
		CancelReason:    c.CancelReason,
		CreatedBy:       c.CreatedBy,
		SubmittedAt:     c.SubmittedAt,
		ApprovedAt:      c.ApprovedAt,
		ActivatedAt:     c.ActivatedAt,
		PausedAt:        c.PausedAt,
		EndedAt:         c.EndedAt,
		CompletedAt:     c.CompletedAt,
		CancelledAt:     c.CancelledAt,
		ArchivedAt:      c.ArchivedAt,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func (m *CampaignMapper) ToEntities(campaigns []*model.Campaign) []*entity.Campaign {
	entities := make([]*entity.Campaign, len(campaigns))
	for i, c := range campaigns {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
