package mapper

import (
	"encoding/json"

	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/model"

	"gorm.io/datatypes"
)

type NotificationMapper struct{}

func NewNotificationMapper() *NotificationMapper {
	return &NotificationMapper{}
}

func (m *NotificationMapper) ToEntity(n *model.Notification) *entity.Notification {
	if n == nil {
		return nil
	}
	return &entity.Notification{
		Id:             n.Id,
		OrganizationId: n.OrganizationId,
		UserId:         n.UserId,
		TypeCode:       n.TypeCode,
		Title:          n.Title,
		Message:        n.Message,
		Metadata:       json.RawMessage(n.Metadata),
		EntityType:     n.EntityType,
		EntityId:       n.EntityId,
		IsRead:         n.IsRead,
		ReadAt:         n.ReadAt,
		CreatedAt:      n.CreatedAt,
	}
}

func (m *NotificationMapper) ToModel(n *entity.Notification) *model.Notification {
	if n == nil {
		return nil
	}
	return &model.Notification{
		Id:             n.Id,
		OrganizationId: n.OrganizationId,
		UserId:         n.UserId,
		TypeCode:       n.TypeCode,
		Title:          n.Title,
		Message:        n.Message,
		Metadata:       datatypes.JSON(n.Metadata),
		EntityType:     n.EntityType,
		EntityId:       n.EntityId,
		IsRead:         n.IsRead,
		ReadAt:         n.ReadAt,
		CreatedAt:      n.CreatedAt,
	}
}

func (m *NotificationMapper) ToEntities(items []*model.Notification) []*entity.Notification {
	entities := make([]*entity.Notification, len(items))
	for i, n := range items {
		entities[i] = m.ToEntity(n)
	}
	return entities
}

func (m *NotificationMapper) TypeToEntity(t *model.NotificationType) *entity.NotificationType {
	if t == nil {
		return nil
	}
	return &entity.NotificationType{
		Code:        t.Code,
		DisplayName: t.DisplayName,
		Template:    t.Template,
		TargetType:  entity.NotificationTargetType(t.TargetType),
		TargetRole:  t.TargetRole,
		IsActive:    t.IsActive,
	}
}

func (m *NotificationMapper) TypeToModel(t *entity.NotificationType) *model.NotificationType {
	if t == nil {
		return nil
	}
	return &model.NotificationType{
		Code:        t.Code,
		DisplayName: t.DisplayName,
		Template:    t.Template,
		TargetType:  string(t.TargetType),
		TargetRole:  t.TargetRole,
		IsActive:    t.IsActive,
	}
}
