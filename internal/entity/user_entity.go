package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string
type UserStatus string

const (
	UserRoleOwner         UserRole = "owner"
	UserRoleAdmin         UserRole = "admin"
	UserRoleManager       UserRole = "manager"
	UserRoleViewer        UserRole = "viewer"
	UserRolePlatformAdmin UserRole = "platform_admin"

	UserStatusInvited UserStatus = "invited"
	UserStatusActive  UserStatus = "active"
	UserStatusRemoved UserStatus = "removed"
)

// EditorRoles may change campaigns, enrollments and organization settings.
// Viewers are read-only.
var EditorRoles = []UserRole{UserRoleOwner, UserRoleAdmin, UserRoleManager, UserRolePlatformAdmin}

// InvitableRoles are the roles a brand owner or admin can hand out.
var InvitableRoles = []UserRole{UserRoleAdmin, UserRoleManager, UserRoleViewer}

// User is a member of a brand team. Platform admins carry the platform_admin role
// and still belong to an organization for scoping.
type User struct {
	Id             uuid.UUID
	OrganizationId uuid.UUID
	Email          string
	FullName       string
	PasswordHash   *string
	Role           UserRole
	Status         UserStatus
	InviteToken    *string
	InvitedBy      *uuid.UUID
	InvitedAt      *time.Time
	LastLoginAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CanManageTeam reports whether the role may invite, re-role or remove members.
func (r UserRole) CanManageTeam() bool {
	return r == UserRoleOwner || r == UserRoleAdmin
}

func (r UserRole) IsInvitable() bool {
	for _, role := range InvitableRoles {
		if role == r {
			return true
		}
	}
	return false
}
