package memory

import (
	"context"
	"time"

	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/repository/contract"

	"github.com/google/uuid"
)

type NotificationRepository struct {
	base
}

func NewNotificationRepository(store *Store) contract.NotificationRepository {
	return &NotificationRepository{base{store: store}}
}

func (r *NotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	if notification.Id == uuid.Nil {
		notification.Id = uuid.New()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now().UTC()
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	put(r.journal(), r.store.notifications, notification.Id, cloneNotification(*notification))
	return nil
}

func (r *NotificationRepository) FindAll(ctx context.Context, filter contract.NotificationFilter) ([]*entity.Notification, int64, error) {
	r.store.mu.RLock()
	var matched []*entity.Notification
	for _, n := range r.store.notifications {
		if n.UserId != filter.UserId {
			continue
		}
		if filter.UnreadOnly && n.IsRead {
			continue
		}
		out := cloneNotification(n)
		matched = append(matched, &out)
	}
	r.store.mu.RUnlock()

	items, total := page(matched, filter.Page, func(a, b *entity.Notification) bool {
		return newestFirst(a.CreatedAt, b.CreatedAt)
	})
	return items, total, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userId uuid.UUID) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int64
	for _, n := range r.store.notifications {
		if n.UserId == userId && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *NotificationRepository) MarkAsRead(ctx context.Context, userId, id uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	n, ok := r.store.notifications[id]
	if !ok || n.UserId != userId {
		return false, nil
	}
	if !n.IsRead {
		now := time.Now().UTC()
		n.IsRead = true
		n.ReadAt = &now
		put(r.journal(), r.store.notifications, id, n)
	}
	return true, nil
}

func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, userId uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now().UTC()
	var updated int64
	for id, n := range r.store.notifications {
		if n.UserId != userId || n.IsRead {
			continue
		}
		n.IsRead = true
		n.ReadAt = &now
		put(r.journal(), r.store.notifications, id, n)
		updated++
	}
	return updated, nil
}

func (r *NotificationRepository) FindType(ctx context.Context, code string) (*entity.NotificationType, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	t, ok := r.store.notificationTypes[code]
	if !ok || !t.IsActive {
		return nil, nil
	}
	return &t, nil
}
