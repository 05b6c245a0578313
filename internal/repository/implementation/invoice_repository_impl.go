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

type InvoiceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InvoiceMapper
}

func NewInvoiceRepository(db *gorm.DB) contract.InvoiceRepository {
	return &InvoiceRepositoryImpl{
		db:     db,
		mapper: mapper.NewInvoiceMapper(),
	}
}

func (r *InvoiceRepositoryImpl) Create(ctx context.Context, invoice *entity.Invoice) error {
	m := r.mapper.ToModel(invoice)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*invoice = *r.mapper.ToEntity(m)
	return nil
}

func (r *InvoiceRepositoryImpl) Update(ctx context.Context, invoice *entity.Invoice) error {
	m := r.mapper.ToModel(invoice)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*invoice = *r.mapper.ToEntity(m)
	return nil
}

func (r *InvoiceRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var m model.Invoice
	if err := (specification.ByID{ID: id}).Apply(r.db.WithContext(ctx)).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *InvoiceRepositoryImpl) FindAll(ctx context.Context, filter contract.InvoiceFilter) ([]*entity.Invoice, int64, error) {
	specs := []specification.Specification{specification.CreatedBetween{From: filter.From, To: filter.To}}
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
	if filter.DueBefore != nil {
		specs = append(specs, specification.DueBefore{At: *filter.DueBefore})
	}

	models, total, err := findPage[model.Invoice](ctx, r.db, filter.Page, specification.OrderBy{Field: "created_at", Desc: true}, specs...)
	if err != nil {
		return nil, 0, err
	}
	return r.mapper.ToEntities(models), total, nil
}
