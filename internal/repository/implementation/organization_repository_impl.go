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

type OrganizationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OrganizationMapper
}

func NewOrganizationRepository(db *gorm.DB) contract.OrganizationRepository {
	return &OrganizationRepositoryImpl{
		db:     db,
		mapper: mapper.NewOrganizationMapper(),
	}
}

func (r *OrganizationRepositoryImpl) Create(ctx context.Context, org *entity.Organization) error {
	m := r.mapper.ToModel(org)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*org = *r.mapper.ToEntity(m)
	return nil
}

func (r *OrganizationRepositoryImpl) Update(ctx context.Context, org *entity.Organization) error {
	m := r.mapper.ToModel(org)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*org = *r.mapper.ToEntity(m)
	return nil
}

func (r *OrganizationRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.Organization, error) {
	var m model.Organization
	if err := (specification.ByID{ID: id}).Apply(r.db.WithContext(ctx)).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
