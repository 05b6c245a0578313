package specification

import (
	"time"

	"gorm.io/gorm"
)

// CampaignSearch matches title or product name (case-insensitive).
type CampaignSearch struct {
	Query string
}

func (s CampaignSearch) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("title ILIKE ? OR product_name ILIKE ?", pattern, pattern)
}

type ByCampaignType struct {
	Type string
}

func (s ByCampaignType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type = ?", s.Type)
}

// StartsBefore selects campaigns whose start date has been reached.
type StartsBefore struct {
	At time.Time
}

func (s StartsBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("start_date <= ?", s.At)
}

type EndsBefore struct {
	At time.Time
}

func (s EndsBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("end_date <= ?", s.At)
}

// CampaignSortColumns whitelists sortable campaign fields by their API name.
var CampaignSortColumns = map[string]string{
	"createdAt":       "created_at",
	"startDate":       "start_date",
	"endDate":         "end_date",
	"title":           "title",
	"budget":          "budget",
	"status":          "status",
	"enrollmentCount": "enrollment_count",
}
