package contract

import (
	"context"

	"brand-dashboard-be/internal/entity"

	"github.com/google/uuid"
)

// Find methods return (nil, nil) when the record does not exist.

type CampaignRepository interface {
	Create(ctx context.Context, campaign *entity.Campaign) error
	Update(ctx context.Context, campaign *entity.Campaign) error
	Delete(ctx context.Context, id uuid.UUID) error
	// FindByID with uuid.Nil as organizationId looks across organizations.
	FindByID(ctx context.Context, organizationId, id uuid.UUID) (*entity.Campaign, error)
	FindAll(ctx context.Context, filter CampaignFilter) ([]*entity.Campaign, int64, error)
	CountByStatus(ctx context.Context, organizationId uuid.UUID) (map[entity.CampaignStatus]int64, error)
}

type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *entity.Enrollment) error
	Update(ctx context.Context, enrollment *entity.Enrollment) error
	FindByID(ctx context.Context, organizationId, id uuid.UUID) (*entity.Enrollment, error)
	FindAll(ctx context.Context, filter EnrollmentFilter) ([]*entity.Enrollment, int64, error)
	CountByStatus(ctx context.Context, organizationId uuid.UUID, campaignId *uuid.UUID) (map[entity.EnrollmentStatus]int64, error)
}

type WalletRepository interface {
	FindBalance(ctx context.Context, organizationId uuid.UUID) (*entity.WalletBalance, error)
	SaveBalance(ctx context.Context, balance *entity.WalletBalance) error

	CreateTransaction(ctx context.Context, tx *entity.Transaction) error
	UpdateTransaction(ctx context.Context, tx *entity.Transaction) error
	FindTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	FindTransactions(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, int64, error)

	CreateWithdrawal(ctx context.Context, w *entity.Withdrawal) error
	UpdateWithdrawal(ctx context.Context, w *entity.Withdrawal) error
	FindWithdrawal(ctx context.Context, organizationId, id uuid.UUID) (*entity.Withdrawal, error)
	FindWithdrawals(ctx context.Context, filter WithdrawalFilter) ([]*entity.Withdrawal, int64, error)
}

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	Update(ctx context.Context, invoice *entity.Invoice) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	FindAll(ctx context.Context, filter InvoiceFilter) ([]*entity.Invoice, int64, error)
}

type OrganizationRepository interface {
	Create(ctx context.Context, org *entity.Organization) error
	Update(ctx context.Context, org *entity.Organization) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Organization, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByInviteToken(ctx context.Context, token string) (*entity.User, error)
	FindAll(ctx context.Context, filter UserFilter) ([]*entity.User, int64, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	FindAll(ctx context.Context, filter NotificationFilter) ([]*entity.Notification, int64, error)
	CountUnread(ctx context.Context, userId uuid.UUID) (int64, error)
	MarkAsRead(ctx context.Context, userId, id uuid.UUID) (bool, error)
	MarkAllAsRead(ctx context.Context, userId uuid.UUID) (int64, error)
	FindType(ctx context.Context, code string) (*entity.NotificationType, error)
}
