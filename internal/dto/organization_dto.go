package dto

import (
	"time"

	"github.com/google/uuid"
)

type AddressDto struct {
	Line1      string `json:"line1" validate:"required,max=200"`
	Line2      string `json:"line2" validate:"max=200"`
	City       string `json:"city" validate:"required,max=100"`
	State      string `json:"state" validate:"required,max=100"`
	PostalCode string `json:"postalCode" validate:"required,len=6,numeric"`
	Country    string `json:"country" validate:"required,max=100"`
}

type OrganizationResponse struct {
	Id               uuid.UUID   `json:"id"`
	Name             string      `json:"name"`
	LegalName        string      `json:"legalName"`
	Website          string      `json:"website,omitempty"`
	Industry         string      `json:"industry"`
	ContactEmail     string      `json:"contactEmail"`
	ContactPhone     string      `json:"contactPhone"`
	Pan              string      `json:"pan,omitempty"`
	PanVerified      bool        `json:"panVerified"`
	PanName          string      `json:"panName,omitempty"`
	Gstin            string      `json:"gstin,omitempty"`
	GstVerified      bool        `json:"gstVerified"`
	GstLegalName     string      `json:"gstLegalName,omitempty"`
	GstState         string      `json:"gstState,omitempty"`
	BillingAddress   *AddressDto `json:"billingAddress,omitempty"`
	OnboardingStatus string      `json:"onboardingStatus"`
	OnboardingStep   string      `json:"onboardingStep"`
	OnboardedAt      *time.Time  `json:"onboardedAt,omitempty"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

type OnboardingStepResponse struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Required  bool   `json:"required"`
	Completed bool   `json:"completed"`
}

type OnboardingResponse struct {
	Status      string                   `json:"status"`
	CurrentStep string                   `json:"currentStep"`
	Steps       []OnboardingStepResponse `json:"steps"`
	CanSubmit   bool                     `json:"canSubmit"`
}

type UpdateOrganizationProfileRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=120"`
	LegalName    string `json:"legalName" validate:"required,min=2,max=200"`
	Website      string `json:"website" validate:"omitempty,url"`
	Industry     string `json:"industry" validate:"required,max=80"`
	ContactEmail string `json:"contactEmail" validate:"required,email"`
	ContactPhone string `json:"contactPhone" validate:"required,min=10,max=15"`
}

type VerifyPanRequest struct {
	Pan  string `json:"pan" validate:"required"`
	Name string `json:"name" validate:"max=200"`
}

type VerifyGstRequest struct {
	Gstin string `json:"gstin" validate:"required"`
}
