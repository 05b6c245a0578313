package entity

import (
	"time"

	"github.com/google/uuid"
)

type OnboardingStatus string

const (
	OnboardingStatusPending    OnboardingStatus = "pending"
	OnboardingStatusInProgress OnboardingStatus = "in_progress"
	OnboardingStatusCompleted  OnboardingStatus = "completed"
)

// Onboarding steps in the order the dashboard walks through them.
const (
	OnboardingStepProfile = "profile"
	OnboardingStepPan     = "pan"
	OnboardingStepGst     = "gst"
	OnboardingStepBilling = "billing"
)

type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

func (a *Address) IsComplete() bool {
	return a != nil && a.Line1 != "" && a.City != "" && a.State != "" && a.PostalCode != "" && a.Country != ""
}

type Organization struct {
	Id               uuid.UUID        `json:"id"`
	Name             string           `json:"name"`
	LegalName        string           `json:"legalName"`
	Website          string           `json:"website"`
	Industry         string           `json:"industry"`
	ContactEmail     string           `json:"contactEmail"`
	ContactPhone     string           `json:"contactPhone"`
	Pan              string           `json:"pan"`
	PanVerified      bool             `json:"panVerified"`
	PanName          string           `json:"panName"`
	Gstin            string           `json:"gstin"`
	GstVerified      bool             `json:"gstVerified"`
	GstLegalName     string           `json:"gstLegalName"`
	GstState         string           `json:"gstState"`
	BillingAddress   *Address         `json:"billingAddress,omitempty"`
	OnboardingStatus OnboardingStatus `json:"onboardingStatus"`
	OnboardingStep   string           `json:"onboardingStep"`
	OnboardedAt      *time.Time       `json:"onboardedAt,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

func (o *Organization) HasProfile() bool {
	return o.Name != "" && o.LegalName != "" && o.Industry != "" && o.ContactEmail != ""
}
