package encore

import (
	"context"

	encoreclient "brand-dashboard-be/internal/encore"
	"brand-dashboard-be/internal/repository/contract"
	"brand-dashboard-be/internal/repository/memory"
	"brand-dashboard-be/internal/repository/unitofwork"
)

type RepositoryFactory struct {
	client *encoreclient.Client
	local  *memory.Store
}

// NewRepositoryFactory proxies domain data to Encore and keeps team members and
// notifications in the local store.
func NewRepositoryFactory(client *encoreclient.Client, local *memory.Store) unitofwork.RepositoryFactory {
	return &RepositoryFactory{client: client, local: local}
}

func (f *RepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &UnitOfWork{UnitOfWork: memory.NewUnitOfWork(f.local), client: f.client}
}

// UnitOfWork serializes work like the local store does. Rollback only reverts
// local writes; calls already accepted by Encore stay applied.
type UnitOfWork struct {
	*memory.UnitOfWork
	client *encoreclient.Client
}

func (u *UnitOfWork) CampaignRepository() contract.CampaignRepository {
	return NewCampaignRepository(u.client)
}

func (u *UnitOfWork) EnrollmentRepository() contract.EnrollmentRepository {
	return NewEnrollmentRepository(u.client)
}

func (u *UnitOfWork) WalletRepository() contract.WalletRepository {
	return NewWalletRepository(u.client)
}

func (u *UnitOfWork) InvoiceRepository() contract.InvoiceRepository {
	return NewInvoiceRepository(u.client)
}

func (u *UnitOfWork) OrganizationRepository() contract.OrganizationRepository {
	return NewOrganizationRepository(u.client)
}
