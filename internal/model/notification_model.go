package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationType serves as a registry for event-to-notification mapping.
type NotificationType struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Code        string    `gorm:"type:varchar(50);unique;not null"`
	DisplayName string    `gorm:"type:varchar(100);not null"`
	Template    string    `gorm:"type:text;not null"`
	TargetType  string    `gorm:"type:varchar(20);not null"` // SELF, ORGANIZATION, ROLE, BROADCAST
	TargetRole  string    `gorm:"type:varchar(30)"`
	IsActive    bool      `gorm:"default:true"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP"`
}

func (NotificationType) TableName() string {
	return "notification_types"
}

// Notification stores the per-user inbox.
type Notification struct {
	Id             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrganizationId uuid.UUID      `gorm:"type:uuid;not null;index"`
	UserId         uuid.UUID      `gorm:"type:uuid;not null;index:idx_notifications_user_created,priority:1;index:idx_notifications_user_unread,priority:1"`
	TypeCode       string         `gorm:"type:varchar(50);not null;index:idx_notifications_type"`
	EntityType     string         `gorm:"type:varchar(50)"`
	EntityId       *uuid.UUID     `gorm:"type:uuid"`
	Title          string         `gorm:"type:varchar(200);not null"`
	Message        string         `gorm:"type:text;not null"`
	Metadata       datatypes.JSON `gorm:"type:jsonb"`
	IsRead         bool           `gorm:"default:false;index:idx_notifications_user_unread,priority:2"`
	ReadAt         *time.Time
	CreatedAt      time.Time `gorm:"index:idx_notifications_user_created,priority:2"`
}

func (Notification) TableName() string {
	return "notifications"
}
