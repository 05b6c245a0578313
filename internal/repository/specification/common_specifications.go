package specification

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByID filters by ID
type ByID struct {
	ID uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// ByOrganization scopes every tenant table.
type ByOrganization struct {
	OrganizationID uuid.UUID
}

func (s ByOrganization) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("organization_id = ?", s.OrganizationID)
}

// StatusIn filters by any of the given statuses. An empty list matches everything.
type StatusIn struct {
	Statuses []string
}

func (s StatusIn) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Statuses) == 0 {
		return db
	}
	return db.Where("status IN ?", s.Statuses)
}

// CreatedBetween bounds created_at. Nil bounds are open.
type CreatedBetween struct {
	From *time.Time
	To   *time.Time
}

func (s CreatedBetween) Apply(db *gorm.DB) *gorm.DB {
	if s.From != nil {
		db = db.Where("created_at >= ?", *s.From)
	}
	if s.To != nil {
		db = db.Where("created_at <= ?", *s.To)
	}
	return db
}

// OrderBy applies ordering. Field must come from a whitelist, never from user input directly.
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}

// Pagination
type Pagination struct {
	Limit  int
	Offset int
}

func (s Pagination) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.Limit).Offset(s.Offset)
}
