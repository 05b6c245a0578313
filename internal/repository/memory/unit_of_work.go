package memory

import (
	"context"
	"fmt"

	"brand-dashboard-be/internal/repository/contract"
	"brand-dashboard-be/internal/repository/unitofwork"
)

type RepositoryFactory struct {
	store *Store
}

// NewRepositoryFactory builds units of work over the in-memory store.
func NewRepositoryFactory(store *Store) unitofwork.RepositoryFactory {
	return &RepositoryFactory{store: store}
}

func (f *RepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return NewUnitOfWork(f.store)
}

type UnitOfWork struct {
	store   *Store
	journal *journal
}

func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{store: store}
}

func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.journal != nil {
		return fmt.Errorf("transaction already started")
	}
	u.store.txMu.Lock()
	u.journal = &journal{}
	return nil
}

func (u *UnitOfWork) Commit() error {
	if u.journal == nil {
		return fmt.Errorf("no transaction to commit")
	}
	u.journal = nil
	u.store.txMu.Unlock()
	return nil
}

// Rollback is a no-op after Commit so it can always be deferred.
func (u *UnitOfWork) Rollback() error {
	if u.journal == nil {
		return nil
	}
	u.store.mu.Lock()
	for i := len(u.journal.undo) - 1; i >= 0; i-- {
		u.journal.undo[i]()
	}
	u.store.mu.Unlock()

	u.journal = nil
	u.store.txMu.Unlock()
	return nil
}

func (u *UnitOfWork) CampaignRepository() contract.CampaignRepository {
	return &CampaignRepository{base{store: u.store, uow: u}}
}

func (u *UnitOfWork) EnrollmentRepository() contract.EnrollmentRepository {
	return &EnrollmentRepository{base{store: u.store, uow: u}}
}

func (u *UnitOfWork) WalletRepository() contract.WalletRepository {
	return &WalletRepository{base{store: u.store, uow: u}}
}

func (u *UnitOfWork) InvoiceRepository() contract.InvoiceRepository {
	return &InvoiceRepository{base{store: u.store, uow: u}}
}

func (u *UnitOfWork) OrganizationRepository() contract.OrganizationRepository {
	return &OrganizationRepository{base{store: u.store, uow: u}}
}

func (u *UnitOfWork) UserRepository() contract.UserRepository {
	return &UserRepository{base{store: u.store, uow: u}}
}

func (u *UnitOfWork) NotificationRepository() contract.NotificationRepository {
	return &NotificationRepository{base{store: u.store, uow: u}}
}
