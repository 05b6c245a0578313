package dto

import (
	"time"

	"github.com/google/uuid"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string             `json:"token"`
	ExpiresAt time.Time          `json:"expiresAt"`
	User      TeamMemberResponse `json:"user"`
}

type AcceptInviteRequest struct {
	Token    string `json:"token" validate:"required"`
	FullName string `json:"fullName" validate:"required,min=2,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type OrganizationSummary struct {
	Id               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	OnboardingStatus string    `json:"onboardingStatus"`
}

type MeResponse struct {
	User         TeamMemberResponse  `json:"user"`
	Organization OrganizationSummary `json:"organization"`
}
