package memory

import (
	"context"
	"time"

	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/repository/contract"

	"github.com/google/uuid"
)

type WalletRepository struct {
	base
}

func NewWalletRepository(store *Store) contract.WalletRepository {
	return &WalletRepository{base{store: store}}
}

func (r *WalletRepository) FindBalance(ctx context.Context, organizationId uuid.UUID) (*entity.WalletBalance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	b, ok := r.store.balances[organizationId]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

// SaveBalance stores the balance as given; the ledger owns UpdatedAt.
func (r *WalletRepository) SaveBalance(ctx context.Context, balance *entity.WalletBalance) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	put(r.journal(), r.store.balances, balance.OrganizationId, *balance)
	return nil
}

func (r *WalletRepository) CreateTransaction(ctx context.Context, tx *entity.Transaction) error {
	if tx.Id == uuid.Nil {
		tx.Id = uuid.New()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now().UTC()
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	put(r.journal(), r.store.transactions, tx.Id, *tx)
	return nil
}

func (r *WalletRepository) UpdateTransaction(ctx context.Context, tx *entity.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	put(r.journal(), r.store.transactions, tx.Id, *tx)
	return nil
}

func (r *WalletRepository) FindTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	t, ok := r.store.transactions[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *WalletRepository) FindTransactions(ctx context.Context, filter contract.TransactionFilter) ([]*entity.Transaction, int64, error) {
	r.store.mu.RLock()
	var matched []*entity.Transaction
	for _, t := range r.store.transactions {
		if t.OrganizationId != filter.OrganizationId {
			continue
		}
		if filter.Type != "" && t.Type != filter.Type {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if !within(t.CreatedAt, filter.From, filter.To) {
			continue
		}
		out := t
		matched = append(matched, &out)
	}
	r.store.mu.RUnlock()

	items, total := page(matched, filter.Page, func(a, b *entity.Transaction) bool {
		return newestFirst(a.CreatedAt, b.CreatedAt)
	})
	return items, total, nil
}

func (r *WalletRepository) CreateWithdrawal(ctx context.Context, w *entity.Withdrawal) error {
	now := time.Now().UTC()
	if w.Id == uuid.Nil {
		w.Id = uuid.New()
	}
	if w.CreatedAt.IsZero() {
		w.CreatedAt = now
	}
	w.UpdatedAt = now

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	put(r.journal(), r.store.withdrawals, w.Id, *w)
	return nil
}

func (r *WalletRepository) UpdateWithdrawal(ctx context.Context, w *entity.Withdrawal) error {
	w.UpdatedAt = time.Now().UTC()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	put(r.journal(), r.store.withdrawals, w.Id, *w)
	return nil
}

func (r *WalletRepository) FindWithdrawal(ctx context.Context, organizationId, id uuid.UUID) (*entity.Withdrawal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	w, ok := r.store.withdrawals[id]
	if !ok || w.OrganizationId != organizationId {
		return nil, nil
	}
	return &w, nil
}

func (r *WalletRepository) FindWithdrawals(ctx context.Context, filter contract.WithdrawalFilter) ([]*entity.Withdrawal, int64, error) {
	r.store.mu.RLock()
	var matched []*entity.Withdrawal
	for _, w := range r.store.withdrawals {
		if w.OrganizationId != filter.OrganizationId {
			continue
		}
		if filter.Status != "" && w.Status != filter.Status {
			continue
		}
		out := w
		matched = append(matched, &out)
	}
	r.store.mu.RUnlock()

	items, total := page(matched, filter.Page, func(a, b *entity.Withdrawal) bool {
		return newestFirst(a.CreatedAt, b.CreatedAt)
	})
	return items, total, nil
}
