package mapper

import (
	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/model"
)

type WalletMapper struct{}

func NewWalletMapper() *WalletMapper {
	return &WalletMapper{}
}

func (m *WalletMapper) BalanceToEntity(b *model.WalletBalance) *entity.WalletBalance {
	if b == nil {
		return nil
	}
	return &entity.WalletBalance{
		OrganizationId:    b.OrganizationId,
		Currency:          b.Currency,
		Available:         b.Available,
		Held:              b.Held,
		PendingWithdrawal: b.PendingWithdrawal,
		TotalDeposited:    b.TotalDeposited,
		TotalSpent:        b.TotalSpent,
		TotalWithdrawn:    b.TotalWithdrawn,
		UpdatedAt:         b.UpdatedAt,
	}
}

func (m *WalletMapper) BalanceToModel(b *entity.WalletBalance) *model.WalletBalance {
	if b == nil {
		return nil
	}
	return &model.WalletBalance{
		OrganizationId:    b.OrganizationId,
		Currency:          b.Currency,
		Available:         b.Available,
		Held:              b.Held,
		PendingWithdrawal: b.PendingWithdrawal,
		TotalDeposited:    b.TotalDeposited,
		TotalSpent:        b.TotalSpent,
		TotalWithdrawn:    b.TotalWithdrawn,
		UpdatedAt:         b.UpdatedAt,
	}
}

func (m *WalletMapper) TransactionToEntity(t *model.WalletTransaction) *entity.Transaction {
	if t == nil {
		return nil
	}
	return &entity.Transaction{
		Id:             t.Id,
		OrganizationId: t.OrganizationId,
		Type:           entity.TransactionType(t.Type),
		Amount:         t.Amount,
		Status:         entity.TransactionStatus(t.Status),
		ReferenceType:  t.ReferenceType,
		ReferenceId:    t.ReferenceId,
		Description:    t.Description,
		BalanceAfter:   t.BalanceAfter,
		CreatedAt:      t.CreatedAt,
	}
}

func (m *WalletMapper) TransactionToModel(t *entity.Transaction) *model.WalletTransaction {
	if t == nil {
		return nil
	}
	return &model.WalletTransaction{
		Id:             t.Id,
		OrganizationId: t.OrganizationId,
		Type:           string(t.Type),
		Amount:         t.Amount,
		Status:         string(t.Status),
		ReferenceType:  t.ReferenceType,
		ReferenceId:    t.ReferenceId,
		Description:    t.Description,
		BalanceAfter:   t.BalanceAfter,
		CreatedAt:      t.CreatedAt,
	}
}

func (m *WalletMapper) TransactionsToEntities(items []*model.WalletTransaction) []*entity.Transaction {
	entities := make([]*entity.Transaction, len(items))
	for i, t := range items {
		entities[i] = m.TransactionToEntity(t)
	}
	return entities
}

func (m *WalletMapper) WithdrawalToEntity(w *model.Withdrawal) *entity.Withdrawal {
	if w == nil {
		return nil
	}
	return &entity.Withdrawal{
		Id:                w.Id,
		OrganizationId:    w.OrganizationId,
		Amount:            w.Amount,
		Status:            entity.WithdrawalStatus(w.Status),
		BankAccountName:   w.BankAccountName,
		BankAccountMasked: w.BankAccountMasked,
		Ifsc:              w.Ifsc,
		Note:              w.Note,
		RequestedBy:       w.RequestedBy,
		ProcessedAt:       w.ProcessedAt,
		CreatedAt:         w.CreatedAt,
		UpdatedAt:         w.UpdatedAt,
	}
}

func (m *WalletMapper) WithdrawalToModel(w *entity.Withdrawal) *model.Withdrawal {
	if w == nil {
		return nil
	}
	return &model.Withdrawal{
		Id:                w.Id,
		OrganizationId:    w.OrganizationId,
		Amount:            w.Amount,
		Status:            string(w.Status),
		BankAccountName:   w.BankAccountName,
		BankAccountMasked: w.BankAccountMasked,
		Ifsc:              w.Ifsc,
		Note:              w.Note,
		RequestedBy:       w.RequestedBy,
		ProcessedAt:       w.ProcessedAt,
		CreatedAt:         w.CreatedAt,
		UpdatedAt:         w.UpdatedAt,
	}
}

func (m *WalletMapper) WithdrawalsToEntities(items []*model.Withdrawal) []*entity.Withdrawal {
	entities := make([]*entity.Withdrawal, len(items))
	for i, w := range items {
		entities[i] = m.WithdrawalToEntity(w)
	}
	return entities
}
