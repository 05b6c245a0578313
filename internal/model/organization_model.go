package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type BillingAddress struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type Organization struct {
	Id               uuid.UUID                           `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name             string                              `gorm:"type:varchar(150);not null"`
	LegalName        string                              `gorm:"type:varchar(200)"`
	Website          string                              `gorm:"type:varchar(255)"`
	Industry         string                              `gorm:"type:varchar(100)"`
	ContactEmail     string                              `gorm:"type:varchar(255)"`
	ContactPhone     string                              `gorm:"type:varchar(20)"`
	Pan              string                              `gorm:"type:varchar(10);index"`
	PanVerified      bool                                `gorm:"default:false"`
	PanName          string                              `gorm:"type:varchar(200)"`
	Gstin            string                              `gorm:"type:varchar(15);index"`
	GstVerified      bool                                `gorm:"default:false"`
	GstLegalName     string                              `gorm:"type:varchar(200)"`
	GstState         string                              `gorm:"type:varchar(60)"`
	BillingAddress   *datatypes.JSONType[BillingAddress] `gorm:"type:jsonb"`
	OnboardingStatus string                              `gorm:"type:varchar(20);not null;default:'pending'"`
	OnboardingStep   string                              `gorm:"type:varchar(20)"`
	OnboardedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Organization) TableName() string {
	return "organizations"
}
