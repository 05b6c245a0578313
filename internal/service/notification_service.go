package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"brand-dashboard-be/internal/dto"
	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/pkg/logger"
	"brand-dashboard-be/internal/pkg/money"
	"brand-dashboard-be/internal/pkg/pagination"
	"brand-dashboard-be/internal/pkg/serverutils"
	"brand-dashboard-be/internal/repository/contract"
	"brand-dashboard-be/internal/repository/unitofwork"
	"brand-dashboard-be/pkg/events"

	"github.com/google/uuid"
)

// NotificationDelivery pushes stored notifications to connected clients.
// Implemented by the websocket hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification entity.Notification)
	Broadcast(notification entity.Notification)
}

// amountKeys are payload fields rendered as rupee amounts.
var amountKeys = map[string]bool{"amount": true, "total": true}

const notificationConsumer = "notification-worker"

type NotificationService struct {
	uowFactory unitofwork.RepositoryFactory
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(uowFactory unitofwork.RepositoryFactory, delivery NotificationDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		uowFactory: uowFactory,
		delivery:   delivery,
		logger:     log,
	}
}

// Start subscribes the worker to every domain event.
func (s *NotificationService) Start(subscriber events.Subscriber) error {
	if err := subscriber.Subscribe(events.AllSubjects, notificationConsumer, s.HandleEvent); err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err.Error()})
		return err
	}
	s.logger.Info("NotificationService", "Notification worker listening", map[string]interface{}{"subject": events.AllSubjects})
	return nil
}

func (s *NotificationService) HandleEvent(ctx context.Context, event events.Event) error {
	typeCode := strings.TrimPrefix(event.EventType(), events.SubjectPrefix)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.NotificationRepository()

	config, err := repo.FindType(ctx, typeCode)
	if err != nil {
		return err
	}
	if config == nil {
		s.logger.Debug("NotificationService", "No notification type for event", map[string]interface{}{"type": typeCode})
		return nil
	}
	if !config.IsActive {
		return nil
	}

	if config.TargetType == entity.NotificationTargetBroadcast {
		// Broadcasts are push only; nothing is stored per user.
		if s.delivery != nil {
			s.delivery.Broadcast(s.buildNotification(uuid.Nil, config, event))
		}
		return nil
	}

	recipients, err := s.resolveRecipients(ctx, uow.UserRepository(), config, event)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to resolve recipients", map[string]interface{}{
			"type":  typeCode,
			"error": err.Error(),
		})
		return err
	}

	for _, userID := range recipients {
		notification := s.buildNotification(userID, config, event)
		if err := repo.Create(ctx, &notification); err != nil {
			s.logger.Error("NotificationService", "Failed to store notification", map[string]interface{}{
				"user_id": userID.String(),
				"error":   err.Error(),
			})
			continue
		}
		if s.delivery != nil {
			s.delivery.Send(userID, notification)
		}
	}

	s.logger.Info("NotificationService", "Event processed", map[string]interface{}{
		"type":       typeCode,
		"recipients": len(recipients),
	})
	return nil
}

func payloadUUID(payload map[string]interface{}, key string) (uuid.UUID, bool) {
	raw, ok := payload[key].(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (s *NotificationService) resolveRecipients(ctx context.Context, users contract.UserRepository, config *entity.NotificationType, event events.Event) ([]uuid.UUID, error) {
	payload := event.Payload()

	switch config.TargetType {
	case entity.NotificationTargetSelf:
		if id, ok := payloadUUID(payload, "user_id"); ok {
			return []uuid.UUID{id}, nil
		}
		s.logger.Warn("NotificationService", "SELF target without user_id", map[string]interface{}{"type": event.EventType()})
		return nil, nil

	case entity.NotificationTargetOrganization, entity.NotificationTargetRole:
		orgId, ok := payloadUUID(payload, "organization_id")
		if !ok {
			s.logger.Warn("NotificationService", "Event without organization_id", map[string]interface{}{"type": event.EventType()})
			return nil, nil
		}
		filter := contract.UserFilter{
			OrganizationId: orgId,
			Statuses:       []entity.UserStatus{entity.UserStatusActive},
		}
		if config.TargetType == entity.NotificationTargetRole {
			filter.Roles = []entity.UserRole{entity.UserRole(config.TargetRole)}
		}
		members, _, err := users.FindAll(ctx, filter)
		if err != nil {
			return nil, err
		}
		ids := make([]uuid.UUID, len(members))
		for i, u := range members {
			ids[i] = u.Id
		}
		return ids, nil
	}
	return nil, nil
}

// render fills {key} placeholders from the payload. Amounts are shown in rupees.
func render(template string, payload map[string]interface{}) string {
	msg := template
	for k, v := range payload {
		placeholder := "{" + k + "}"
		if !strings.Contains(msg, placeholder) {
			continue
		}
		value := fmt.Sprintf("%v", v)
		if amountKeys[k] {
			if f, ok := v.(float64); ok {
				value = money.FormatINR(f)
			}
		}
		msg = strings.ReplaceAll(msg, placeholder, value)
	}
	return msg
}

func (s *NotificationService) buildNotification(userID uuid.UUID, config *entity.NotificationType, event events.Event) entity.Notification {
	payload := event.Payload()

	var orgId uuid.UUID
	if id, ok := payloadUUID(payload, "organization_id"); ok {
		orgId = id
	}

	entityType, _ := payload["entity_type"].(string)
	var entityID *uuid.UUID
	if id, ok := payloadUUID(payload, "entity_id"); ok {
		entityID = &id
	}

	meta := make(map[string]interface{}, len(payload)+1)
	for k, v := range payload {
		meta[k] = v
	}
	if entityType != "" && entityID != nil {
		meta["action_url"] = fmt.Sprintf("/%ss/%s", entityType, entityID.String())
	}
	metaJSON, _ := json.Marshal(meta)

	return entity.Notification{
		Id:             uuid.New(),
		OrganizationId: orgId,
		UserId:         userID,
		TypeCode:       config.Code,
		Title:          config.DisplayName,
		Message:        render(config.Template, payload),
		Metadata:       metaJSON,
		EntityType:     entityType,
		EntityId:       entityID,
		CreatedAt:      timeNow(),
	}
}

func (s *NotificationService) List(ctx context.Context, p serverutils.Principal, query dto.NotificationListQuery, page pagination.Params) (*pagination.Page[entity.Notification], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	notifications, total, err := uow.NotificationRepository().FindAll(ctx, contract.NotificationFilter{
		UserId:     p.UserId,
		UnreadOnly: query.UnreadOnly,
		Page:       page,
	})
	if err != nil {
		return nil, err
	}

	items := make([]entity.Notification, len(notifications))
	for i, n := range notifications {
		items[i] = *n
	}
	return pagination.NewPage(items, page, total), nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, p serverutils.Principal) (*dto.UnreadCountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.NotificationRepository().CountUnread(ctx, p.UserId)
	if err != nil {
		return nil, err
	}
	return &dto.UnreadCountResponse{Count: count}, nil
}

// MarkAsRead only touches the caller's own notifications.
func (s *NotificationService) MarkAsRead(ctx context.Context, p serverutils.Principal, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	found, err := uow.NotificationRepository().MarkAsRead(ctx, p.UserId, id)
	if err != nil {
		return err
	}
	if !found {
		return serverutils.NotFound("Notification not found")
	}
	return nil
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, p serverutils.Principal) (*dto.MarkAllReadResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	updated, err := uow.NotificationRepository().MarkAllAsRead(ctx, p.UserId)
	if err != nil {
		return nil, err
	}
	return &dto.MarkAllReadResponse{Updated: updated}, nil
}
