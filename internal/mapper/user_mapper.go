package mapper

import (
	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:             u.Id,
		OrganizationId: u.OrganizationId,
		Email:          u.Email,
		FullName:       u.FullName,
		PasswordHash:   u.PasswordHash,
		Role:           entity.UserRole(u.Role),
		Status:         entity.UserStatus(u.Status),
		InviteToken:    u.InviteToken,
		InvitedBy:      u.InvitedBy,
		InvitedAt:      u.InvitedAt,
		LastLoginAt:    u.LastLoginAt,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:             u.Id,
		OrganizationId: u.OrganizationId,
		Email:          u.Email,
		FullName:       u.FullName,
		PasswordHash:   u.PasswordHash,
		Role:           string(u.Role),
		Status:         string(u.Status),
		InviteToken:    u.InviteToken,
		InvitedBy:      u.InvitedBy,
		InvitedAt:      u.InvitedAt,
		LastLoginAt:    u.LastLoginAt,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}
