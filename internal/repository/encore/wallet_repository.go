package encore

import (
	"context"

	encoreclient "brand-dashboard-be/internal/encore"
	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/repository/contract"

	"github.com/google/uuid"
)

type WalletRepository struct {
	base
}

func NewWalletRepository(client *encoreclient.Client) contract.WalletRepository {
	return &WalletRepository{base{client: client}}
}

func walletPath(organizationId uuid.UUID) string {
	return "/wallets/" + organizationId.String()
}

func (r *WalletRepository) FindBalance(ctx context.Context, organizationId uuid.UUID) (*entity.WalletBalance, error) {
	var balance entity.WalletBalance
	err := r.client.Get(ctx, walletPath(organizationId), nil, &balance)
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &balance, nil
}

func (r *WalletRepository) SaveBalance(ctx context.Context, balance *entity.WalletBalance) error {
	return r.client.Put(ctx, walletPath(balance.OrganizationId), balance, balance)
}

func (r *WalletRepository) CreateTransaction(ctx context.Context, tx *entity.Transaction) error {
	return r.client.Post(ctx, walletPath(tx.OrganizationId)+"/transactions", tx, tx)
}

func (r *WalletRepository) UpdateTransaction(ctx context.Context, tx *entity.Transaction) error {
	return r.client.Put(ctx, "/transactions/"+tx.Id.String(), tx, tx)
}

func (r *WalletRepository) FindTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var tx entity.Transaction
	err := r.client.Get(ctx, "/transactions/"+id.String(), nil, &tx)
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *WalletRepository) FindTransactions(ctx context.Context, filter contract.TransactionFilter) ([]*entity.Transaction, int64, error) {
	q := newQuery().
		set("type", string(filter.Type)).
		set("status", string(filter.Status)).
		time("from", filter.From).
		time("to", filter.To).
		page(filter.Page)

	var txs []*entity.Transaction
	total, err := r.client.GetPage(ctx, walletPath(filter.OrganizationId)+"/transactions", q.values(), &txs)
	if err != nil {
		return nil, 0, err
	}
	return txs, total, nil
}

func (r *WalletRepository) CreateWithdrawal(ctx context.Context, w *entity.Withdrawal) error {
	return r.client.Post(ctx, walletPath(w.OrganizationId)+"/withdrawals", w, w)
}

func (r *WalletRepository) UpdateWithdrawal(ctx context.Context, w *entity.Withdrawal) error {
	return r.client.Put(ctx, walletPath(w.OrganizationId)+"/withdrawals/"+w.Id.String(), w, w)
}

func (r *WalletRepository) FindWithdrawal(ctx context.Context, organizationId, id uuid.UUID) (*entity.Withdrawal, error) {
	var w entity.Withdrawal
	err := r.client.Get(ctx, walletPath(organizationId)+"/withdrawals/"+id.String(), nil, &w)
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WalletRepository) FindWithdrawals(ctx context.Context, filter contract.WithdrawalFilter) ([]*entity.Withdrawal, int64, error) {
	q := newQuery().set("status", string(filter.Status)).page(filter.Page)

	var withdrawals []*entity.Withdrawal
	total, err := r.client.GetPage(ctx, walletPath(filter.OrganizationId)+"/withdrawals", q.values(), &withdrawals)
	if err != nil {
		return nil, 0, err
	}
	return withdrawals, total, nil
}
