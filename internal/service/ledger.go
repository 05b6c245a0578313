package service

import (
	"context"

	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/pkg/serverutils"
	"brand-dashboard-be/internal/repository/contract"

	"github.com/google/uuid"
)

const msgInsufficientForCashback = "Insufficient wallet balance to settle cashback"

// ledger posts transactions against one organization's balance inside a unit of
// work. Every balance change goes through an entry so the history replays to the
// stored balance.
type ledger struct {
	repo    contract.WalletRepository
	balance *entity.WalletBalance
}

func openLedger(ctx context.Context, repo contract.WalletRepository, organizationId uuid.UUID) (*ledger, error) {
	balance, err := repo.FindBalance(ctx, organizationId)
	if err != nil {
		return nil, err
	}
	if balance == nil {
		balance = &entity.WalletBalance{
			OrganizationId: organizationId,
			Currency:       entity.DefaultCurrency,
			UpdatedAt:      timeNow(),
		}
	}
	return &ledger{repo: repo, balance: balance}, nil
}

type entry struct {
	Type          entity.TransactionType
	Status        entity.TransactionStatus
	Amount        float64
	ReferenceType string
	ReferenceId   *uuid.UUID
	Description   string
}

func (l *ledger) post(ctx context.Context, e entry) (*entity.Transaction, error) {
	tx := &entity.Transaction{
		Id:             uuid.New(),
		OrganizationId: l.balance.OrganizationId,
		Type:           e.Type,
		Amount:         entity.RoundAmount(e.Amount),
		Status:         e.Status,
		ReferenceType:  e.ReferenceType,
		ReferenceId:    e.ReferenceId,
		Description:    e.Description,
		CreatedAt:      timeNow(),
	}
	l.balance.Apply(tx)
	l.balance.UpdatedAt = tx.CreatedAt
	tx.BalanceAfter = l.balance.Available
	if err := l.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// settle moves an existing pending transaction to its final status and folds it
// into the balance.
func (l *ledger) settle(ctx context.Context, tx *entity.Transaction, status entity.TransactionStatus) error {
	tx.Status = status
	if status == entity.TransactionStatusCompleted {
		l.balance.Apply(tx)
		l.balance.UpdatedAt = timeNow()
	}
	tx.BalanceAfter = l.balance.Available
	return l.repo.UpdateTransaction(ctx, tx)
}

// payCashback settles an approved enrollment. When less than the amount is held
// the shortfall is first held from available funds.
func (l *ledger) payCashback(ctx context.Context, e *entity.Enrollment, description string) error {
	amount := entity.RoundAmount(e.CashbackAmount)
	if amount <= 0 {
		return nil
	}
	ref := e.Id
	if shortfall := entity.RoundAmount(amount - l.balance.Held); shortfall > 0 {
		if shortfall > l.balance.Available {
			return serverutils.BadRequest(msgInsufficientForCashback)
		}
		if _, err := l.post(ctx, entry{
			Type:          entity.TransactionTypeHold,
			Status:        entity.TransactionStatusCompleted,
			Amount:        shortfall,
			ReferenceType: "enrollment",
			ReferenceId:   &ref,
			Description:   "Top-up hold for " + e.ShopperName,
		}); err != nil {
			return err
		}
	}
	_, err := l.post(ctx, entry{
		Type:          entity.TransactionTypeCashbackPayout,
		Status:        entity.TransactionStatusCompleted,
		Amount:        amount,
		ReferenceType: "enrollment",
		ReferenceId:   &ref,
		Description:   description,
	})
	return err
}

// releaseHold returns an enrollment's hold to available funds, capped at what is
// actually held.
func (l *ledger) releaseHold(ctx context.Context, e *entity.Enrollment) error {
	amount := entity.RoundAmount(e.CashbackAmount)
	if amount > l.balance.Held {
		amount = l.balance.Held
	}
	if amount <= 0 {
		return nil
	}
	ref := e.Id
	_, err := l.post(ctx, entry{
		Type:          entity.TransactionTypeHoldRelease,
		Status:        entity.TransactionStatusCompleted,
		Amount:        amount,
		ReferenceType: "enrollment",
		ReferenceId:   &ref,
		Description:   "Hold released for " + e.ShopperName,
	})
	return err
}

func (l *ledger) save(ctx context.Context) error {
	return l.repo.SaveBalance(ctx, l.balance)
}
