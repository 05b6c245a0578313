package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id             uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrganizationId uuid.UUID  `gorm:"type:uuid;not null;index"`
	Email          string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName       string     `gorm:"type:varchar(150)"`
	PasswordHash   *string    `gorm:"type:text"`
	Role           string     `gorm:"type:varchar(30);not null;default:'viewer'"`
	Status         string     `gorm:"type:varchar(20);not null;default:'invited'"`
	InviteToken    *string    `gorm:"type:varchar(64);uniqueIndex"`
	InvitedBy      *uuid.UUID `gorm:"type:uuid"`
	InvitedAt      *time.Time
	LastLoginAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (User) TableName() string {
	return "users"
}
