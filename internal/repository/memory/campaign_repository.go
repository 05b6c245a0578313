package memory

import (
	"context"
	"strings"
	"time"

	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/repository/contract"

	"github.com/google/uuid"
)

type CampaignRepository struct {
	base
}

func NewCampaignRepository(store *Store) contract.CampaignRepository {
	return &CampaignRepository{base{store: store}}
}

func (r *CampaignRepository) Create(ctx context.Context, campaign *entity.Campaign) error {
	now := time.Now().UTC()
	if campaign.Id == uuid.Nil {
		campaign.Id = uuid.New()
	}
	if campaign.CreatedAt.IsZero() {
		campaign.CreatedAt = now
	}
	campaign.UpdatedAt = now

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	put(r.journal(), r.store.campaigns, campaign.Id, cloneCampaign(*campaign))
	return nil
}

func (r *CampaignRepository) Update(ctx context.Context, campaign *entity.Campaign) error {
	campaign.UpdatedAt = time.Now().UTC()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	put(r.journal(), r.store.campaigns, campaign.Id, cloneCampaign(*campaign))
	return nil
}

func (r *CampaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	remove(r.journal(), r.store.campaigns, id)
	return nil
}

func (r *CampaignRepository) FindByID(ctx context.Context, organizationId, id uuid.UUID) (*entity.Campaign, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.campaigns[id]
	if !ok || (organizationId != uuid.Nil && c.OrganizationId != organizationId) {
		return nil, nil
	}
	out := cloneCampaign(c)
	return &out, nil
}

func (r *CampaignRepository) FindAll(ctx context.Context, filter contract.CampaignFilter) ([]*entity.Campaign, int64, error) {
	r.store.mu.RLock()
	var matched []*entity.Campaign
	for _, c := range r.store.campaigns {
		if filter.OrganizationId != nil && c.OrganizationId != *filter.OrganizationId {
			continue
		}
		if !oneOf(c.Status, filter.Statuses) {
			continue
		}
		if filter.Type != "" && c.Type != filter.Type {
			continue
		}
		if filter.Search != "" && !containsFold(c.Title, filter.Search) && !containsFold(c.ProductName, filter.Search) {
			continue
		}
		if filter.StartBefore != nil && c.StartDate.After(*filter.StartBefore) {
			continue
		}
		if filter.EndBefore != nil && c.EndDate.After(*filter.EndBefore) {
			continue
		}
		out := cloneCampaign(c)
		matched = append(matched, &out)
	}
	r.store.mu.RUnlock()

	less := campaignLess(filter.Sort.Field)
	items, total := page(matched, filter.Page, func(a, b *entity.Campaign) bool {
		if filter.Sort.Desc {
			return less(b, a)
		}
		return less(a, b)
	})
	return items, total, nil
}

func (r *CampaignRepository) CountByStatus(ctx context.Context, organizationId uuid.UUID) (map[entity.CampaignStatus]int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	counts := map[entity.CampaignStatus]int64{}
	for _, c := range r.store.campaigns {
		if c.OrganizationId == organizationId {
			counts[c.Status]++
		}
	}
	return counts, nil
}

func campaignLess(field string) func(a, b *entity.Campaign) bool {
	switch field {
	case "startDate":
		return func(a, b *entity.Campaign) bool { return a.StartDate.Before(b.StartDate) }
	case "endDate":
		return func(a, b *entity.Campaign) bool { return a.EndDate.Before(b.EndDate) }
	case "title":
		return func(a, b *entity.Campaign) bool { return strings.ToLower(a.Title) < strings.ToLower(b.Title) }
	case "budget":
		return func(a, b *entity.Campaign) bool { return a.Budget < b.Budget }
	case "status":
		return func(a, b *entity.Campaign) bool { return a.Status < b.Status }
	case "enrollmentCount":
		return func(a, b *entity.Campaign) bool { return a.EnrollmentCount < b.EnrollmentCount }
	default:
		return func(a, b *entity.Campaign) bool { return a.CreatedAt.Before(b.CreatedAt) }
	}
}
