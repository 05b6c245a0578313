package entity

import (
	"time"

	"github.com/google/uuid"
)

type CampaignStatus string
type CampaignType string

const (
	CampaignStatusDraft           CampaignStatus = "draft"
	CampaignStatusPendingApproval CampaignStatus = "pending_approval"
	CampaignStatusApproved        CampaignStatus = "approved"
	CampaignStatusActive          CampaignStatus = "active"
	CampaignStatusPaused          CampaignStatus = "paused"
	CampaignStatusEnded           CampaignStatus = "ended"
	CampaignStatusCompleted       CampaignStatus = "completed"
	CampaignStatusCancelled       CampaignStatus = "cancelled"
	CampaignStatusArchived        CampaignStatus = "archived"

	CampaignTypeCashback CampaignType = "cashback"
	CampaignTypeBarter   CampaignType = "barter"
	CampaignTypePaid     CampaignType = "paid"
)

// CampaignStatuses lists every status in lifecycle order.
var CampaignStatuses = []CampaignStatus{
	CampaignStatusDraft,
	CampaignStatusPendingApproval,
	CampaignStatusApproved,
	CampaignStatusActive,
	CampaignStatusPaused,
	CampaignStatusEnded,
	CampaignStatusCompleted,
	CampaignStatusCancelled,
	CampaignStatusArchived,
}

type Campaign struct {
	Id              uuid.UUID      `json:"id"`
	OrganizationId  uuid.UUID      `json:"organizationId"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Type            CampaignType   `json:"type"`
	Status          CampaignStatus `json:"status"`
	ProductName     string         `json:"productName"`
	ProductUrl      string         `json:"productUrl"`
	BannerUrl       string         `json:"bannerUrl"`
	Platforms       []string       `json:"platforms"`
	Deliverables    []string       `json:"deliverables"`
	Budget          float64        `json:"budget"`
	Spent           float64        `json:"spent"`
	CashbackPercent float64        `json:"cashbackPercent"`
	MaxEnrollments  int            `json:"maxEnrollments"`
	EnrollmentCount int            `json:"enrollmentCount"`
	StartDate       time.Time      `json:"startDate"`
	EndDate         time.Time      `json:"endDate"`
	CancelReason    string         `json:"cancelReason"`
	CreatedBy       uuid.UUID      `json:"createdBy"`
	SubmittedAt     *time.Time     `json:"submittedAt,omitempty"`
	ApprovedAt      *time.Time     `json:"approvedAt,omitempty"`
	ActivatedAt     *time.Time     `json:"activatedAt,omitempty"`
	PausedAt        *time.Time     `json:"pausedAt,omitempty"`
	EndedAt         *time.Time     `json:"endedAt,omitempty"`
	CompletedAt     *time.Time     `json:"completedAt,omitempty"`
	CancelledAt     *time.Time     `json:"cancelledAt,omitempty"`
	ArchivedAt      *time.Time     `json:"archivedAt,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// RemainingBudget never goes below zero.
func (c *Campaign) RemainingBudget() float64 {
	if c.Spent >= c.Budget {
		return 0
	}
	return c.Budget - c.Spent
}
