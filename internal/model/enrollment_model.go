package model

import (
	"time"

	"github.com/google/uuid"
)

type Enrollment struct {
	Id             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrganizationId uuid.UUID `gorm:"type:uuid;not null;index"`
	CampaignId     uuid.UUID `gorm:"type:uuid;not null;index:idx_enrollments_campaign_status,priority:1"`
	ShopperId      uuid.UUID `gorm:"type:uuid;not null"`
	ShopperName    string    `gorm:"type:varchar(150)"`
	ShopperHandle  string    `gorm:"type:varchar(100)"`
	Platform       string    `gorm:"type:varchar(30)"`
	OrderId        string    `gorm:"type:varchar(100)"`
	OrderValue     float64   `gorm:"type:decimal(14,2)"`
	CashbackAmount float64   `gorm:"type:decimal(14,2)"`
	Status         string    `gorm:"type:varchar(30);not null;index:idx_enrollments_campaign_status,priority:2"`
	SubmissionUrl  string    `gorm:"type:text"`
	SubmittedAt    *time.Time
	ReviewNote     string     `gorm:"type:text"`
	ReviewedBy     *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt     *time.Time
	ExpiresAt      *time.Time `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Campaign Campaign `gorm:"foreignKey:CampaignId;constraint:OnDelete:CASCADE" json:"-"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
