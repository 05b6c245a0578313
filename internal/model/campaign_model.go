package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Campaign struct {
	Id              uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrganizationId  uuid.UUID                   `gorm:"type:uuid;not null;index:idx_campaigns_org_status,priority:1"`
	Title           string                      `gorm:"type:varchar(120);not null"`
	Description     string                      `gorm:"type:text"`
	Type            string                      `gorm:"type:varchar(20);not null;default:'cashback'"`
	Status          string                      `gorm:"type:varchar(30);not null;default:'draft';index:idx_campaigns_org_status,priority:2"`
	ProductName     string                      `gorm:"type:varchar(200)"`
	ProductUrl      string                      `gorm:"type:text"`
	BannerUrl       string                      `gorm:"type:text"`
	Platforms       datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Deliverables    datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Budget          float64                     `gorm:"type:decimal(14,2);not null"`
	Spent           float64                     `gorm:"type:decimal(14,2);default:0"`
	CashbackPercent float64                     `gorm:"type:decimal(5,2);default:0"`
	MaxEnrollments  int                         `gorm:"default:0"`
	EnrollmentCount int                         `gorm:"default:0"`
	StartDate       time.Time                   `gorm:"not null"`
	EndDate         time.Time                   `gorm:"not null"`
	CancelReason    string                      `gorm:"type:text"`
	CreatedBy       uuid.UUID                   `gorm:"type:uuid"`
	SubmittedAt     *time.Time
	ApprovedAt      *time.Time
	ActivatedAt     *time.Time
	PausedAt        *time.Time
	EndedAt         *time.Time
	CompletedAt     *time.Time
	CancelledAt     *time.Time
	ArchivedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Campaign) TableName() string {
	return "campaigns"
}
