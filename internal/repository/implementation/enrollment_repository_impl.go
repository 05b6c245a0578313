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

type EnrollmentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EnrollmentMapper
}

func NewEnrollmentRepository(db *gorm.DB) contract.EnrollmentRepository {
	return &EnrollmentRepositoryImpl{
		db:     db,
		mapper: mapper.NewEnrollmentMapper(),
	}
}

func (r *EnrollmentRepositoryImpl) Create(ctx context.Context, enrollment *entity.Enrollment) error {
	m := r.mapper.ToModel(enrollment)
	if err := r.db.WithContext(ctx).Omit("Campaign").Create(m).Error; err != nil {
		return err
	}
	*enrollment = *r.mapper.ToEntity(m)
	return nil
}

func (r *EnrollmentRepositoryImpl) Update(ctx context.Context, enrollment *entity.Enrollment) error {
	m := r.mapper.ToModel(enrollment)
	if err := r.db.WithContext(ctx).Omit("Campaign").Save(m).Error; err != nil {
		return err
	}
	*enrollment = *r.mapper.ToEntity(m)
	return nil
}

func (r *EnrollmentRepositoryImpl) FindByID(ctx context.Context, organizationId, id uuid.UUID) (*entity.Enrollment, error) {
	var m model.Enrollment
	query := applySpecifications(r.db.WithContext(ctx),
		specification.ByID{ID: id},
		specification.ByOrganization{OrganizationID: organizationId},
	)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *EnrollmentRepositoryImpl) FindAll(ctx context.Context, filter contract.EnrollmentFilter) ([]*entity.Enrollment, int64, error) {
	specs := []specification.Specification{}
	if filter.OrganizationId != nil {
		specs = append(specs, specification.ByOrganization{OrganizationID: *filter.OrganizationId})
	}
	if filter.CampaignId != nil {
		specs = append(specs, specification.ByCampaignID{CampaignID: *filter.CampaignId})
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		specs = append(specs, specification.StatusIn{Statuses: statuses})
	}
	if filter.Search != "" {
		specs = append(specs, specification.EnrollmentSearch{Query: filter.Search})
	}
	if filter.ExpiresBefore != nil {
		specs = append(specs, specification.ExpiresBefore{At: *filter.ExpiresBefore})
	}

	models, total, err := findPage[model.Enrollment](ctx, r.db, filter.Page, specification.OrderBy{Field: "created_at", Desc: true}, specs...)
	if err != nil {
		return nil, 0, err
	}
	return r.mapper.ToEntities(models), total, nil
}

func (r *EnrollmentRepositoryImpl) CountByStatus(ctx context.Context, organizationId uuid.UUID, campaignId *uuid.UUID) (map[entity.EnrollmentStatus]int64, error) {
	specs := []specification.Specification{specification.ByOrganization{OrganizationID: organizationId}}
	if campaignId != nil {
		specs = append(specs, specification.ByCampaignID{CampaignID: *campaignId})
	}
	rows, err := countByStatus[model.Enrollment](ctx, r.db, specs...)
	if err != nil {
		return nil, err
	}
	counts := make(map[entity.EnrollmentStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.EnrollmentStatus(row.Status)] = row.Count
	}
	return counts, nil
}
