package dto

import (
	"time"

	"github.com/google/uuid"
)

type EnrollmentResponse struct {
	Id             uuid.UUID  `json:"id"`
	OrganizationId uuid.UUID  `json:"organizationId"`
	CampaignId     uuid.UUID  `json:"campaignId"`
	ShopperId      uuid.UUID  `json:"shopperId"`
	ShopperName    string     `json:"shopperName"`
	ShopperHandle  string     `json:"shopperHandle"`
	Platform       string     `json:"platform"`
	OrderId        string     `json:"orderId"`
	OrderValue     float64    `json:"orderValue"`
	CashbackAmount float64    `json:"cashbackAmount"`
	Status         string     `json:"status"`
	SubmissionUrl  string     `json:"submissionUrl,omitempty"`
	SubmittedAt    *time.Time `json:"submittedAt,omitempty"`
	ReviewNote     string     `json:"reviewNote,omitempty"`
	ReviewedBy     *uuid.UUID `json:"reviewedBy,omitempty"`
	ReviewedAt     *time.Time `json:"reviewedAt,omitempty"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type EnrollmentDetailResponse struct {
	EnrollmentResponse
	CampaignTitle    string   `json:"campaignTitle"`
	AvailableActions []string `json:"availableActions"`
}

type EnrollmentListQuery struct {
	CampaignId string `query:"campaignId"`
	Status     string `query:"status"`
	Search     string `query:"search"`
}

type ApproveEnrollmentRequest struct {
	Note string `json:"note" validate:"max=500"`
}

type RejectEnrollmentRequest struct {
	Reason string `json:"reason" validate:"required,min=3,max=500"`
}

type RequestChangesRequest struct {
	Feedback string `json:"feedback" validate:"required,min=3,max=500"`
}

type BulkApproveRequest struct {
	Ids []uuid.UUID `json:"ids" validate:"required,min=1,max=100"`
}

type BulkApproveResult struct {
	Id      uuid.UUID `json:"id"`
	Success bool      `json:"success"`
	Status  string    `json:"status,omitempty"`
	Error   string    `json:"error,omitempty"`
}

type BulkApproveResponse struct {
	Results   []BulkApproveResult `json:"results"`
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
}
