package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type TransactionType string
type TransactionStatus string
type WithdrawalStatus string

const (
	TransactionTypeDeposit            TransactionType = "deposit"
	TransactionTypeHold               TransactionType = "hold"
	TransactionTypeHoldRelease        TransactionType = "hold_release"
	TransactionTypeCashbackPayout     TransactionType = "cashback_payout"
	TransactionTypeWithdrawal         TransactionType = "withdrawal"
	TransactionTypeWithdrawalReversal TransactionType = "withdrawal_reversal"
	TransactionTypeInvoicePayment     TransactionType = "invoice_payment"

	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"

	WithdrawalStatusPending    WithdrawalStatus = "pending"
	WithdrawalStatusProcessing WithdrawalStatus = "processing"
	WithdrawalStatusCompleted  WithdrawalStatus = "completed"
	WithdrawalStatusRejected   WithdrawalStatus = "rejected"
	WithdrawalStatusCancelled  WithdrawalStatus = "cancelled"
)

const DefaultCurrency = "INR"

type WalletBalance struct {
	OrganizationId    uuid.UUID `json:"organizationId"`
	Currency          string    `json:"currency"`
	Available         float64   `json:"available"`
	Held              float64   `json:"held"`
	PendingWithdrawal float64   `json:"pendingWithdrawal"`
	TotalDeposited    float64   `json:"totalDeposited"`
	TotalSpent        float64   `json:"totalSpent"`
	TotalWithdrawn    float64   `json:"totalWithdrawn"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type Transaction struct {
	Id             uuid.UUID         `json:"id"`
	OrganizationId uuid.UUID         `json:"organizationId"`
	Type           TransactionType   `json:"type"`
	Amount         float64           `json:"amount"`
	Status         TransactionStatus `json:"status"`
	ReferenceType  string            `json:"referenceType"`
	ReferenceId    *uuid.UUID        `json:"referenceId,omitempty"`
	Description    string            `json:"description"`
	BalanceAfter   float64           `json:"balanceAfter"`
	CreatedAt      time.Time         `json:"createdAt"`
}

type Withdrawal struct {
	Id                uuid.UUID        `json:"id"`
	OrganizationId    uuid.UUID        `json:"organizationId"`
	Amount            float64          `json:"amount"`
	Status            WithdrawalStatus `json:"status"`
	BankAccountName   string           `json:"bankAccountName"`
	BankAccountMasked string           `json:"bankAccountMasked"`
	Ifsc              string           `json:"ifsc"`
	Note              string           `json:"note"`
	RequestedBy       uuid.UUID        `json:"requestedBy"`
	ProcessedAt       *time.Time       `json:"processedAt,omitempty"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

// RoundAmount rounds to paise.
func RoundAmount(v float64) float64 {
	return math.Round(v*100) / 100
}

// Apply folds one ledger entry into the balance. Pending deposits and invoice
// payments leave it untouched.
func (b *WalletBalance) Apply(tx *Transaction) {
	switch tx.Type {
	case TransactionTypeDeposit:
		if tx.Status == TransactionStatusCompleted {
			b.Available += tx.Amount
			b.TotalDeposited += tx.Amount
		}
	case TransactionTypeHold:
		b.Available -= tx.Amount
		b.Held += tx.Amount
	case TransactionTypeHoldRelease:
		b.Held -= tx.Amount
		b.Available += tx.Amount
	case TransactionTypeCashbackPayout:
		b.Held -= tx.Amount
		b.TotalSpent += tx.Amount
	case TransactionTypeWithdrawal:
		b.Available -= tx.Amount
		if tx.Status == TransactionStatusCompleted {
			b.TotalWithdrawn += tx.Amount
		} else {
			b.PendingWithdrawal += tx.Amount
		}
	case TransactionTypeWithdrawalReversal:
		b.PendingWithdrawal -= tx.Amount
		b.Available += tx.Amount
	}
	b.Available = RoundAmount(b.Available)
	b.Held = RoundAmount(b.Held)
	b.TotalSpent = RoundAmount(b.TotalSpent)
	b.PendingWithdrawal = RoundAmount(b.PendingWithdrawal)
	b.UpdatedAt = tx.CreatedAt
}
