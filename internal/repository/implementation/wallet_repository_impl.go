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
	"gorm.io/gorm/clause"
)

type WalletRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WalletMapper
}

func NewWalletRepository(db *gorm.DB) contract.WalletRepository {
	return &WalletRepositoryImpl{
		db:     db,
		mapper: mapper.NewWalletMapper(),
	}
}

// FindBalance locks the row when called inside a transaction so concurrent
// holds and withdrawals serialize on the organization's balance.
func (r *WalletRepositoryImpl) FindBalance(ctx context.Context, organizationId uuid.UUID) (*entity.WalletBalance, error) {
	var m model.WalletBalance
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("organization_id = ?", organizationId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.BalanceToEntity(&m), nil
}

func (r *WalletRepositoryImpl) SaveBalance(ctx context.Context, balance *entity.WalletBalance) error {
	m := r.mapper.BalanceToModel(balance)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*balance = *r.mapper.BalanceToEntity(m)
	return nil
}

func (r *WalletRepositoryImpl) CreateTransaction(ctx context.Context, tx *entity.Transaction) error {
	m := r.mapper.TransactionToModel(tx)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*tx = *r.mapper.TransactionToEntity(m)
	return nil
}

func (r *WalletRepositoryImpl) UpdateTransaction(ctx context.Context, tx *entity.Transaction) error {
	m := r.mapper.TransactionToModel(tx)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*tx = *r.mapper.TransactionToEntity(m)
	return nil
}

func (r *WalletRepositoryImpl) FindTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var m model.WalletTransaction
	if err := (specification.ByID{ID: id}).Apply(r.db.WithContext(ctx)).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.TransactionToEntity(&m), nil
}

func (r *WalletRepositoryImpl) FindTransactions(ctx context.Context, filter contract.TransactionFilter) ([]*entity.Transaction, int64, error) {
	specs := []specification.Specification{
		specification.ByOrganization{OrganizationID: filter.OrganizationId},
		specification.CreatedBetween{From: filter.From, To: filter.To},
	}
	if filter.Type != "" {
		specs = append(specs, specification.ByTransactionType{Type: string(filter.Type)})
	}
	if filter.Status != "" {
		specs = append(specs, specification.StatusIn{Statuses: []string{string(filter.Status)}})
	}

	models, total, err := findPage[model.WalletTransaction](ctx, r.db, filter.Page, specification.OrderBy{Field: "created_at", Desc: true}, specs...)
	if err != nil {
		return nil, 0, err
	}
	return r.mapper.TransactionsToEntities(models), total, nil
}

func (r *WalletRepositoryImpl) CreateWithdrawal(ctx context.Context, w *entity.Withdrawal) error {
	m := r.mapper.WithdrawalToModel(w)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*w = *r.mapper.WithdrawalToEntity(m)
	return nil
}

func (r *WalletRepositoryImpl) UpdateWithdrawal(ctx context.Context, w *entity.Withdrawal) error {
	m := r.mapper.WithdrawalToModel(w)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*w = *r.mapper.WithdrawalToEntity(m)
	return nil
}

func (r *WalletRepositoryImpl) FindWithdrawal(ctx context.Context, organizationId, id uuid.UUID) (*entity.Withdrawal, error) {
	var m model.Withdrawal
	query := applySpecifications(r.db.WithContext(ctx),
		specification.ByID{ID: id},
		specification.ByOrganization{OrganizationID: organizationId},
	)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.WithdrawalToEntity(&m), nil
}

func (r *WalletRepositoryImpl) FindWithdrawals(ctx context.Context, filter contract.WithdrawalFilter) ([]*entity.Withdrawal, int64, error) {
	specs := []specification.Specification{specification.ByOrganization{OrganizationID: filter.OrganizationId}}
	if filter.Status != "" {
		specs = append(specs, specification.StatusIn{Statuses: []string{string(filter.Status)}})
	}
	models, total, err := findPage[model.Withdrawal](ctx, r.db, filter.Page, specification.OrderBy{Field: "created_at", Desc: true}, specs...)
	if err != nil {
		return nil, 0, err
	}
	return r.mapper.WithdrawalsToEntities(models), total, nil
}
