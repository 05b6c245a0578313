package encore

import (
	"context"

	encoreclient "brand-dashboard-be/internal/encore"
	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/repository/contract"

	"github.com/google/uuid"
)

type OrganizationRepository struct {
	base
}

func NewOrganizationRepository(client *encoreclient.Client) contract.OrganizationRepository {
	return &OrganizationRepository{base{client: client}}
}

func (r *OrganizationRepository) Create(ctx context.Context, org *entity.Organization) error {
	return r.client.Post(ctx, "/organizations", org, org)
}

func (r *OrganizationRepository) Update(ctx context.Context, org *entity.Organization) error {
	return r.client.Put(ctx, "/organizations/"+org.Id.String(), org, org)
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Organization, error) {
	var org entity.Organization
	err := r.client.Get(ctx, "/organizations/"+id.String(), nil, &org)
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &org, nil
}
