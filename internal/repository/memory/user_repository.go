package memory

import (
	"context"
	"strings"
	"time"

	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/repository/contract"

	"github.com/google/uuid"
)

type UserRepository struct {
	base
}

func NewUserRepository(store *Store) contract.UserRepository {
	return &UserRepository{base{store: store}}
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	now := time.Now().UTC()
	if user.Id == uuid.Nil {
		user.Id = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	put(r.journal(), r.store.users, user.Id, *user)
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now().UTC()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	put(r.journal(), r.store.users, user.Id, *user)
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findFirst(func(u entity.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r *UserRepository) FindByInviteToken(ctx context.Context, token string) (*entity.User, error) {
	return r.findFirst(func(u entity.User) bool { return u.InviteToken != nil && *u.InviteToken == token })
}

func (r *UserRepository) findFirst(match func(entity.User) bool) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if match(u) {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) FindAll(ctx context.Context, filter contract.UserFilter) ([]*entity.User, int64, error) {
	r.store.mu.RLock()
	var matched []*entity.User
	for _, u := range r.store.users {
		if u.OrganizationId != filter.OrganizationId {
			continue
		}
		if !oneOf(u.Role, filter.Roles) || !oneOf(u.Status, filter.Statuses) {
			continue
		}
		if filter.Search != "" && !containsFold(u.FullName, filter.Search) && !containsFold(u.Email, filter.Search) {
			continue
		}
		out := u
		matched = append(matched, &out)
	}
	r.store.mu.RUnlock()

	items, total := page(matched, filter.Page, func(a, b *entity.User) bool {
		return a.CreatedAt.Before(b.CreatedAt)
	})
	return items, total, nil
}
