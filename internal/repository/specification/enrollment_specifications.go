package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByCampaignID struct {
	CampaignID uuid.UUID
}

func (s ByCampaignID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("campaign_id = ?", s.CampaignID)
}

// EnrollmentSearch matches shopper name, handle or order id.
type EnrollmentSearch struct {
	Query string
}

func (s EnrollmentSearch) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("shopper_name ILIKE ? OR shopper_handle ILIKE ? OR order_id ILIKE ?", pattern, pattern, pattern)
}

type ExpiresBefore struct {
	At time.Time
}

func (s ExpiresBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("expires_at IS NOT NULL AND expires_at <= ?", s.At)
}
