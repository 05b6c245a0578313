package encore

import (
	"context"

	encoreclient "brand-dashboard-be/internal/encore"
	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/repository/contract"

	"github.com/google/uuid"
)

type CampaignRepository struct {
	base
}

func NewCampaignRepository(client *encoreclient.Client) contract.CampaignRepository {
	return &CampaignRepository{base{client: client}}
}

func (r *CampaignRepository) Create(ctx context.Context, campaign *entity.Campaign) error {
	return r.client.Post(ctx, "/campaigns", campaign, campaign)
}

func (r *CampaignRepository) Update(ctx context.Context, campaign *entity.Campaign) error {
	return r.client.Put(ctx, "/campaigns/"+campaign.Id.String(), campaign, campaign)
}

func (r *CampaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.client.Delete(ctx, "/campaigns/"+id.String())
}

func (r *CampaignRepository) FindByID(ctx context.Context, organizationId, id uuid.UUID) (*entity.Campaign, error) {
	var campaign entity.Campaign
	q := newQuery()
	if organizationId != uuid.Nil {
		q = q.id("organizationId", &organizationId)
	}
	err := r.client.Get(ctx, "/campaigns/"+id.String(), q.values(), &campaign)
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (r *CampaignRepository) FindAll(ctx context.Context, filter contract.CampaignFilter) ([]*entity.Campaign, int64, error) {
	q := newQuery().
		id("organizationId", filter.OrganizationId).
		set("status", joinStatuses(filter.Statuses)).
		set("type", string(filter.Type)).
		set("search", filter.Search).
		time("startBefore", filter.StartBefore).
		time("endBefore", filter.EndBefore).
		sort(filter.Sort).
		page(filter.Page)

	var campaigns []*entity.Campaign
	total, err := r.client.GetPage(ctx, "/campaigns", q.values(), &campaigns)
	if err != nil {
		return nil, 0, err
	}
	return campaigns, total, nil
}

func (r *CampaignRepository) CountByStatus(ctx context.Context, organizationId uuid.UUID) (map[entity.CampaignStatus]int64, error) {
	counts := map[entity.CampaignStatus]int64{}
	err := r.client.Get(ctx, "/campaigns/status-counts", newQuery().id("organizationId", &organizationId).values(), &counts)
	if err != nil {
		return nil, err
	}
	return counts, nil
}
