package unitofwork

import (
	"context"

	"brand-dashboard-be/internal/repository/contract"
)

// UnitOfWork groups repository calls that must succeed or fail together.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	CampaignRepository() contract.CampaignRepository
	EnrollmentRepository() contract.EnrollmentRepository
	WalletRepository() contract.WalletRepository
	InvoiceRepository() contract.InvoiceRepository
	OrganizationRepository() contract.OrganizationRepository
	UserRepository() contract.UserRepository
	NotificationRepository() contract.NotificationRepository
}
