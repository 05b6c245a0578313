package scope

import (
	"brand-dashboard-be/internal/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func OrderByCreatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}

// OwnedBy restricts rows to one user's inbox.
func OwnedBy(userId uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userId)
	}
}

func Unread(db *gorm.DB) *gorm.DB {
	return db.Where("is_read = ?", false)
}

// Paginate applies limit and offset. Zero params load everything.
func Paginate(page pagination.Params) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page.PageSize <= 0 {
			return db
		}
		return db.Limit(page.Limit()).Offset(page.Offset())
	}
}
