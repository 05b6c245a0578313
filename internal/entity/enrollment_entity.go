package entity

import (
	"time"

	"github.com/google/uuid"
)

type EnrollmentStatus string

const (
	EnrollmentStatusEnrolled           EnrollmentStatus = "enrolled"
	EnrollmentStatusAwaitingSubmission EnrollmentStatus = "awaiting_submission"
	EnrollmentStatusAwaitingReview     EnrollmentStatus = "awaiting_review"
	EnrollmentStatusApproved           EnrollmentStatus = "approved"
	EnrollmentStatusRejected           EnrollmentStatus = "rejected"
	EnrollmentStatusChangesRequested   EnrollmentStatus = "changes_requested"
	EnrollmentStatusExpired            EnrollmentStatus = "expired"
)

var EnrollmentStatuses = []EnrollmentStatus{
	EnrollmentStatusEnrolled,
	EnrollmentStatusAwaitingSubmission,
	EnrollmentStatusAwaitingReview,
	EnrollmentStatusApproved,
	EnrollmentStatusRejected,
	EnrollmentStatusChangesRequested,
	EnrollmentStatusExpired,
}

// Enrollment is a shopper's participation in a campaign.
type Enrollment struct {
	Id             uuid.UUID        `json:"id"`
	OrganizationId uuid.UUID        `json:"organizationId"`
	CampaignId     uuid.UUID        `json:"campaignId"`
	ShopperId      uuid.UUID        `json:"shopperId"`
	ShopperName    string           `json:"shopperName"`
	ShopperHandle  string           `json:"shopperHandle"`
	Platform       string           `json:"platform"`
	OrderId        string           `json:"orderId"`
	OrderValue     float64          `json:"orderValue"`
	CashbackAmount float64          `json:"cashbackAmount"`
	Status         EnrollmentStatus `json:"status"`
	SubmissionUrl  string           `json:"submissionUrl"`
	SubmittedAt    *time.Time       `json:"submittedAt,omitempty"`
	ReviewNote     string           `json:"reviewNote"`
	ReviewedBy     *uuid.UUID       `json:"reviewedBy,omitempty"`
	ReviewedAt     *time.Time       `json:"reviewedAt,omitempty"`
	ExpiresAt      *time.Time       `json:"expiresAt,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}
