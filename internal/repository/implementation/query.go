package implementation

import (
	"context"

	"brand-dashboard-be/internal/pkg/pagination"
	"brand-dashboard-be/internal/repository/contract"
	"brand-dashboard-be/internal/repository/specification"

	"gorm.io/gorm"
)

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// findPage counts the filtered rows, then loads one page of them in the given order.
// A zero page loads everything.
func findPage[M any](ctx context.Context, db *gorm.DB, page pagination.Params, order specification.Specification, specs ...specification.Specification) ([]*M, int64, error) {
	var total int64
	query := applySpecifications(db.WithContext(ctx).Model(new(M)), specs...)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []*M
	query = applySpecifications(db.WithContext(ctx), specs...)
	if order != nil {
		query = order.Apply(query)
	}
	if contract.IsPaged(page) {
		query = specification.Pagination{Limit: page.Limit(), Offset: page.Offset()}.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, 0, err
	}
	return models, total, nil
}

type statusCount struct {
	Status string
	Count  int64
}

func countByStatus[M any](ctx context.Context, db *gorm.DB, specs ...specification.Specification) ([]statusCount, error) {
	var rows []statusCount
	query := applySpecifications(db.WithContext(ctx).Model(new(M)), specs...)
	if err := query.Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
