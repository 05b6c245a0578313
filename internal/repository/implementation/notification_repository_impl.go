package implementation

import (
	"context"
	"errors"
	"time"

	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/mapper"
	"brand-dashboard-be/internal/model"
	"brand-dashboard-be/internal/repository/contract"
	"brand-dashboard-be/internal/repository/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NotificationMapper
}

func NewNotificationRepository(db *gorm.DB) contract.NotificationRepository {
	return &NotificationRepositoryImpl{
		db:     db,
		mapper: mapper.NewNotificationMapper(),
	}
}

func (r *NotificationRepositoryImpl) Create(ctx context.Context, notification *entity.Notification) error {
	m := r.mapper.ToModel(notification)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*notification = *r.mapper.ToEntity(m)
	return nil
}

func (r *NotificationRepositoryImpl) FindAll(ctx context.Context, filter contract.NotificationFilter) ([]*entity.Notification, int64, error) {
	var notifications []*model.Notification
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Notification{}).Scopes(scope.OwnedBy(filter.UserId))
	if filter.UnreadOnly {
		db = db.Scopes(scope.Unread)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Scopes(scope.OrderByCreatedDesc, scope.Paginate(filter.Page)).Find(&notifications).Error; err != nil {
		return nil, 0, err
	}
	return r.mapper.ToEntities(notifications), total, nil
}

func (r *NotificationRepositoryImpl) CountUnread(ctx context.Context, userId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Scopes(scope.OwnedBy(userId), scope.Unread).
		Count(&count).Error
	return count, err
}

// MarkAsRead only touches the caller's own notification. Reports false when nothing matched.
func (r *NotificationRepositoryImpl) MarkAsRead(ctx context.Context, userId, id uuid.UUID) (bool, error) {
	var m model.Notification
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if m.IsRead {
		return true, nil
	}

	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": now,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return true, nil
}

func (r *NotificationRepositoryImpl) MarkAllAsRead(ctx context.Context, userId uuid.UUID) (int64, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Scopes(scope.OwnedBy(userId), scope.Unread).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": now,
		})
	return result.RowsAffected, result.Error
}

func (r *NotificationRepositoryImpl) FindType(ctx context.Context, code string) (*entity.NotificationType, error) {
	var m model.NotificationType
	err := r.db.WithContext(ctx).Where("code = ? AND is_active = ?", code, true).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.TypeToEntity(&m), nil
}
