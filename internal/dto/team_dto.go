package dto

import (
	"time"

	"github.com/google/uuid"
)

type TeamMemberResponse struct {
	Id          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"fullName"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	InvitedBy   *uuid.UUID `json:"invitedBy,omitempty"`
	InvitedAt   *time.Time `json:"invitedAt,omitempty"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type TeamListQuery struct {
	Role   string `query:"role"`
	Status string `query:"status"`
	Search string `query:"search"`
}

type InviteMemberRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	FullName string `json:"fullName" validate:"max=100"`
	Role     string `json:"role" validate:"required,oneof=admin manager viewer"`
}

type UpdateMemberRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin manager viewer"`
}
