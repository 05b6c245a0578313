package encore

import (
	"context"

	encoreclient "brand-dashboard-be/internal/encore"
	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/repository/contract"

	"github.com/google/uuid"
)

type EnrollmentRepository struct {
	base
}

func NewEnrollmentRepository(client *encoreclient.Client) contract.EnrollmentRepository {
	return &EnrollmentRepository{base{client: client}}
}

func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *entity.Enrollment) error {
	return r.client.Post(ctx, "/enrollments", enrollment, enrollment)
}

func (r *EnrollmentRepository) Update(ctx context.Context, enrollment *entity.Enrollment) error {
	return r.client.Put(ctx, "/enrollments/"+enrollment.Id.String(), enrollment, enrollment)
}

func (r *EnrollmentRepository) FindByID(ctx context.Context, organizationId, id uuid.UUID) (*entity.Enrollment, error) {
	var enrollment entity.Enrollment
	err := r.client.Get(ctx, "/enrollments/"+id.String(), newQuery().id("organizationId", &organizationId).values(), &enrollment)
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *EnrollmentRepository) FindAll(ctx context.Context, filter contract.EnrollmentFilter) ([]*entity.Enrollment, int64, error) {
	q := newQuery().
		id("organizationId", filter.OrganizationId).
		id("campaignId", filter.CampaignId).
		set("status", joinStatuses(filter.Statuses)).
		set("search", filter.Search).
		time("expiresBefore", filter.ExpiresBefore).
		page(filter.Page)

	var enrollments []*entity.Enrollment
	total, err := r.client.GetPage(ctx, "/enrollments", q.values(), &enrollments)
	if err != nil {
		return nil, 0, err
	}
	return enrollments, total, nil
}

func (r *EnrollmentRepository) CountByStatus(ctx context.Context, organizationId uuid.UUID, campaignId *uuid.UUID) (map[entity.EnrollmentStatus]int64, error) {
	counts := map[entity.EnrollmentStatus]int64{}
	q := newQuery().id("organizationId", &organizationId).id("campaignId", campaignId)
	if err := r.client.Get(ctx, "/enrollments/status-counts", q.values(), &counts); err != nil {
		return nil, err
	}
	return counts, nil
}
