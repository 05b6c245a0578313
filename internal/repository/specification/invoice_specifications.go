package specification

import (
	"time"

	"gorm.io/gorm"
)

type DueBefore struct {
	At time.Time
}

func (s DueBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("due_date < ?", s.At)
}

type ByTransactionType struct {
	Type string
}

func (s ByTransactionType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type = ?", s.Type)
}
