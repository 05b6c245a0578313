package memory

import (
	"context"
	"time"

	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/repository/contract"

	"github.com/google/uuid"
)

type OrganizationRepository struct {
	base
}

func NewOrganizationRepository(store *Store) contract.OrganizationRepository {
	return &OrganizationRepository{base{store: store}}
}

func (r *OrganizationRepository) Create(ctx context.Context, org *entity.Organization) error {
	now := time.Now().UTC()
	if org.Id == uuid.Nil {
		org.Id = uuid.New()
	}
	if org.CreatedAt.IsZero() {
		org.CreatedAt = now
	}
	org.UpdatedAt = now

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	put(r.journal(), r.store.organizations, org.Id, cloneOrganization(*org))
	return nil
}

func (r *OrganizationRepository) Update(ctx context.Context, org *entity.Organization) error {
	org.UpdatedAt = time.Now().UTC()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	put(r.journal(), r.store.organizations, org.Id, cloneOrganization(*org))
	return nil
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Organization, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	o, ok := r.store.organizations[id]
	if !ok {
		return nil, nil
	}
	out := cloneOrganization(o)
	return &out, nil
}
