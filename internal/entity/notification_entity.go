package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type NotificationTargetType string

const (
	NotificationTargetSelf         NotificationTargetType = "SELF"
	NotificationTargetOrganization NotificationTargetType = "ORGANIZATION"
	NotificationTargetRole         NotificationTargetType = "ROLE"
	NotificationTargetBroadcast    NotificationTargetType = "BROADCAST"
)

// NotificationType maps an event code to a rendered notification.
type NotificationType struct {
	Code        string
	DisplayName string
	Template    string
	TargetType  NotificationTargetType
	TargetRole  string
	IsActive    bool
}

type Notification struct {
	Id             uuid.UUID       `json:"id"`
	OrganizationId uuid.UUID       `json:"organizationId"`
	UserId         uuid.UUID       `json:"userId"`
	TypeCode       string          `json:"typeCode"`
	Title          string          `json:"title"`
	Message        string          `json:"message"`
	Metadata       json.RawMessage `json:"metadata,omitempty"`
	EntityType     string          `json:"entityType,omitempty"`
	EntityId       *uuid.UUID      `json:"entityId,omitempty"`
	IsRead         bool            `json:"isRead"`
	ReadAt         *time.Time      `json:"readAt,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}
