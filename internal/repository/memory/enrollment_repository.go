package memory

import (
	"context"
	"time"

	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/repository/contract"

	"github.com/google/uuid"
)

type EnrollmentRepository struct {
	base
}

func NewEnrollmentRepository(store *Store) contract.EnrollmentRepository {
	return &EnrollmentRepository{base{store: store}}
}

func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *entity.Enrollment) error {
	now := time.Now().UTC()
	if enrollment.Id == uuid.Nil {
		enrollment.Id = uuid.New()
	}
	if enrollment.CreatedAt.IsZero() {
		enrollment.CreatedAt = now
	}
	enrollment.UpdatedAt = now

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	put(r.journal(), r.store.enrollments, enrollment.Id, *enrollment)
	return nil
}

func (r *EnrollmentRepository) Update(ctx context.Context, enrollment *entity.Enrollment) error {
	enrollment.UpdatedAt = time.Now().UTC()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	put(r.journal(), r.store.enrollments, enrollment.Id, *enrollment)
	return nil
}

func (r *EnrollmentRepository) FindByID(ctx context.Context, organizationId, id uuid.UUID) (*entity.Enrollment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	e, ok := r.store.enrollments[id]
	if !ok || e.OrganizationId != organizationId {
		return nil, nil
	}
	return &e, nil
}

func (r *EnrollmentRepository) FindAll(ctx context.Context, filter contract.EnrollmentFilter) ([]*entity.Enrollment, int64, error) {
	r.store.mu.RLock()
	var matched []*entity.Enrollment
	for _, e := range r.store.enrollments {
		if filter.OrganizationId != nil && e.OrganizationId != *filter.OrganizationId {
			continue
		}
		if filter.CampaignId != nil && e.CampaignId != *filter.CampaignId {
			continue
		}
		if !oneOf(e.Status, filter.Statuses) {
			continue
		}
		if filter.Search != "" && !containsFold(e.ShopperName, filter.Search) &&
			!containsFold(e.ShopperHandle, filter.Search) && !containsFold(e.OrderId, filter.Search) {
			continue
		}
		if filter.ExpiresBefore != nil && (e.ExpiresAt == nil || e.ExpiresAt.After(*filter.ExpiresBefore)) {
			continue
		}
		out := e
		matched = append(matched, &out)
	}
	r.store.mu.RUnlock()

	items, total := page(matched, filter.Page, func(a, b *entity.Enrollment) bool {
		return newestFirst(a.CreatedAt, b.CreatedAt)
	})
	return items, total, nil
}

func (r *EnrollmentRepository) CountByStatus(ctx context.Context, organizationId uuid.UUID, campaignId *uuid.UUID) (map[entity.EnrollmentStatus]int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	counts := map[entity.EnrollmentStatus]int64{}
	for _, e := range r.store.enrollments {
		if e.OrganizationId != organizationId {
			continue
		}
		if campaignId != nil && e.CampaignId != *campaignId {
			continue
		}
		counts[e.Status]++
	}
	return counts, nil
}
