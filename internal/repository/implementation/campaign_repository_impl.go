package implementation

import (
	"context"
	"errors"

	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/mapper"
	"brand-dashboard-be/internal/model"
	"brand-dashboard-be/internal/repository/contract"
	"brand-dashboard-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CampaignRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CampaignMapper
}

func NewCampaignRepository(db *gorm.DB) contract.CampaignRepository {
	return &CampaignRepositoryImpl{
		db:     db,
		mapper: mapper.NewCampaignMapper(),
	}
}

func (r *CampaignRepositoryImpl) Create(ctx context.Context, campaign *entity.Campaign) error {
	m := r.mapper.ToModel(campaign)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*campaign = *r.mapper.ToEntity(m)
	return nil
}

func (r *CampaignRepositoryImpl) Update(ctx context.Context, campaign *entity.Campaign) error {
	m := r.mapper.ToModel(campaign)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*campaign = *r.mapper.ToEntity(m)
	return nil
}

func (r *CampaignRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Campaign{}, "id = ?", id).Error
}

func (r *CampaignRepositoryImpl) FindByID(ctx context.Context, organizationId, id uuid.UUID) (*entity.Campaign, error) {
	var m model.Campaign
	specs := []specification.Specification{specification.ByID{ID: id}}
	if organizationId != uuid.Nil {
		specs = append(specs, specification.ByOrganization{OrganizationID: organizationId})
	}
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CampaignRepositoryImpl) FindAll(ctx context.Context, filter contract.CampaignFilter) ([]*entity.Campaign, int64, error) {
	specs := []specification.Specification{}
	if filter.OrganizationId != nil {
		specs = append(specs, specification.ByOrganization{OrganizationID: *filter.OrganizationId})
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		specs = append(specs, specification.StatusIn{Statuses: statuses})
	}
	if filter.Type != "" {
		specs = append(specs, specification.ByCampaignType{Type: string(filter.Type)})
	}
	if filter.Search != "" {
		specs = append(specs, specification.CampaignSearch{Query: filter.Search})
	}
	if filter.StartBefore != nil {
		specs = append(specs, specification.StartsBefore{At: *filter.StartBefore})
	}
	if filter.EndBefore != nil {
		specs = append(specs, specification.EndsBefore{At: *filter.EndBefore})
	}

	column, ok := specification.CampaignSortColumns[filter.Sort.Field]
	if !ok {
		column = "created_at"
	}
	order := specification.OrderBy{Field: column, Desc: filter.Sort.Desc}

	models, total, err := findPage[model.Campaign](ctx, r.db, filter.Page, order, specs...)
	if err != nil {
		return nil, 0, err
	}
	return r.mapper.ToEntities(models), total, nil
}

func (r *CampaignRepositoryImpl) CountByStatus(ctx context.Context, organizationId uuid.UUID) (map[entity.CampaignStatus]int64, error) {
	rows, err := countByStatus[model.Campaign](ctx, r.db, specification.ByOrganization{OrganizationID: organizationId})
	if err != nil {
		return nil, err
	}
	counts := make(map[entity.CampaignStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.CampaignStatus(row.Status)] = row.Count
	}
	return counts, nil
}
