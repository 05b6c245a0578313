package contract

import (
	"time"

	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/pkg/pagination"

	"github.com/google/uuid"
)

// Sort is a whitelisted sort column and direction.
type Sort struct {
	Field string
	Desc  bool
}

// A zero Page means "no paging" (used by exports and the scheduler).
type CampaignFilter struct {
	OrganizationId *uuid.UUID
	Statuses       []entity.CampaignStatus
	Type           entity.CampaignType
	Search         string
	StartBefore    *time.Time
	EndBefore      *time.Time
	Sort           Sort
	Page           pagination.Params
}

type EnrollmentFilter struct {
	OrganizationId *uuid.UUID
	CampaignId     *uuid.UUID
	Statuses       []entity.EnrollmentStatus
	Search         string
	ExpiresBefore  *time.Time
	Page           pagination.Params
}

type TransactionFilter struct {
	OrganizationId uuid.UUID
	Type           entity.TransactionType
	Status         entity.TransactionStatus
	From           *time.Time
	To             *time.Time
	Page           pagination.Params
}

type WithdrawalFilter struct {
	OrganizationId uuid.UUID
	Status         entity.WithdrawalStatus
	Page           pagination.Params
}

type InvoiceFilter struct {
	OrganizationId *uuid.UUID
	Statuses       []entity.InvoiceStatus
	From           *time.Time
	To             *time.Time
	DueBefore      *time.Time
	Page           pagination.Params
}

type UserFilter struct {
	OrganizationId uuid.UUID
	Roles          []entity.UserRole
	Statuses       []entity.UserStatus
	Search         string
	Page           pagination.Params
}

type NotificationFilter struct {
	UserId     uuid.UUID
	UnreadOnly bool
	Page       pagination.Params
}

// IsPaged reports whether a page was requested.
func IsPaged(p pagination.Params) bool {
	return p.PageSize > 0
}
