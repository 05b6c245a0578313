package dto

import (
	"time"

	"github.com/google/uuid"
)

type CampaignResponse struct {
	Id              uuid.UUID  `json:"id"`
	OrganizationId  uuid.UUID  `json:"organizationId"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Type            string     `json:"type"`
	Status          string     `json:"status"`
	ProductName     string     `json:"productName"`
	ProductUrl      string     `json:"productUrl"`
	BannerUrl       string     `json:"bannerUrl"`
	Platforms       []string   `json:"platforms"`
	Deliverables    []string   `json:"deliverables"`
	Budget          float64    `json:"budget"`
	Spent           float64    `json:"spent"`
	RemainingBudget float64    `json:"remainingBudget"`
	CashbackPercent float64    `json:"cashbackPercent"`
	MaxEnrollments  int        `json:"maxEnrollments"`
	EnrollmentCount int        `json:"enrollmentCount"`
	StartDate       time.Time  `json:"startDate"`
	EndDate         time.Time  `json:"endDate"`
	CancelReason    string     `json:"cancelReason,omitempty"`
	CreatedBy       uuid.UUID  `json:"createdBy"`
	SubmittedAt     *time.Time `json:"submittedAt,omitempty"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty"`
	ActivatedAt     *time.Time `json:"activatedAt,omitempty"`
	PausedAt        *time.Time `json:"pausedAt,omitempty"`
	EndedAt         *time.Time `json:"endedAt,omitempty"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	CancelledAt     *time.Time `json:"cancelledAt,omitempty"`
	ArchivedAt      *time.Time `json:"archivedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// CampaignDetailResponse adds what the detail page needs to render actions.
type CampaignDetailResponse struct {
	CampaignResponse
	EnrollmentCounts map[string]int64 `json:"enrollmentCounts"`
	AvailableActions []string         `json:"availableActions"`
}

type CampaignListQuery struct {
	Status    string `query:"status"`
	Type      string `query:"type"`
	Search    string `query:"search"`
	SortBy    string `query:"sortBy"`
	SortOrder string `query:"sortOrder"`
}

type CampaignRequest struct {
	Title           string    `json:"title" validate:"required,min=3,max=120"`
	Description     string    `json:"description" validate:"max=2000"`
	Type            string    `json:"type" validate:"required,oneof=cashback barter paid"`
	ProductName     string    `json:"productName" validate:"required,max=120"`
	ProductUrl      string    `json:"productUrl" validate:"omitempty,url"`
	BannerUrl       string    `json:"bannerUrl" validate:"omitempty,url"`
	Platforms       []string  `json:"platforms" validate:"max=5,dive,oneof=instagram youtube facebook x moj"`
	Deliverables    []string  `json:"deliverables" validate:"max=10,dive,min=2,max=200"`
	Budget          float64   `json:"budget" validate:"gt=0"`
	CashbackPercent float64   `json:"cashbackPercent" validate:"gte=1,lte=100"`
	MaxEnrollments  int       `json:"maxEnrollments" validate:"gte=1"`
	StartDate       time.Time `json:"startDate" validate:"required"`
	EndDate         time.Time `json:"endDate" validate:"required"`
}

type CampaignTransitionRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}
