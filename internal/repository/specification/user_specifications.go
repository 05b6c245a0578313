package specification

import "gorm.io/gorm"

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(email) = LOWER(?)", s.Email)
}

type ByInviteToken struct {
	Token string
}

func (s ByInviteToken) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("invite_token = ?", s.Token)
}

type RoleIn struct {
	Roles []string
}

func (s RoleIn) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Roles) == 0 {
		return db
	}
	return db.Where("role IN ?", s.Roles)
}

// UserSearch matches name or email.
type UserSearch struct {
	Query string
}

func (s UserSearch) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("full_name ILIKE ? OR email ILIKE ?", pattern, pattern)
}
