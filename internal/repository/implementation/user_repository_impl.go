package implementation

import (
	"context"
	"errors"

	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/mapper"
	"brand-dashboard-be/internal/model"
	"brand-dashboard-be/internal/repository/contract"
	"brand-dashboard-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *entity.User) error {
	modelUser := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Create(modelUser).Error; err != nil {
		return err
	}
	*user = *r.mapper.ToEntity(modelUser)
	return nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, user *entity.User) error {
	modelUser := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Save(modelUser).Error; err != nil {
		return err
	}
	*user = *r.mapper.ToEntity(modelUser)
	return nil
}

func (r *UserRepositoryImpl) findOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	var m model.User
	if err := applySpecifications(r.db.WithContext(ctx), specs...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.findOne(ctx, specification.ByID{ID: id})
}

func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, specification.ByEmail{Email: email})
}

func (r *UserRepositoryImpl) FindByInviteToken(ctx context.Context, token string) (*entity.User, error) {
	return r.findOne(ctx, specification.ByInviteToken{Token: token})
}

func (r *UserRepositoryImpl) FindAll(ctx context.Context, filter contract.UserFilter) ([]*entity.User, int64, error) {
	specs := []specification.Specification{specification.ByOrganization{OrganizationID: filter.OrganizationId}}
	if len(filter.Roles) > 0 {
		roles := make([]string, len(filter.Roles))
		for i, role := range filter.Roles {
			roles[i] = string(role)
		}
		specs = append(specs, specification.RoleIn{Roles: roles})
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		specs = append(specs, specification.StatusIn{Statuses: statuses})
	}
	if filter.Search != "" {
		specs = append(specs, specification.UserSearch{Query: filter.Search})
	}

	models, total, err := findPage[model.User](ctx, r.db, filter.Page, specification.OrderBy{Field: "created_at"}, specs...)
	if err != nil {
		return nil, 0, err
	}
	return r.mapper.ToEntities(models), total, nil
}
