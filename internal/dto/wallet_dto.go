package dto

import (
	"time"

	"github.com/google/uuid"
)

type WalletBalanceResponse struct {
	Currency          string    `json:"currency"`
	Available         float64   `json:"available"`
	Held              float64   `json:"held"`
	PendingWithdrawal float64   `json:"pendingWithdrawal"`
	TotalDeposited    float64   `json:"totalDeposited"`
	TotalSpent        float64   `json:"totalSpent"`
	TotalWithdrawn    float64   `json:"totalWithdrawn"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type TransactionResponse struct {
	Id            uuid.UUID  `json:"id"`
	Type          string     `json:"type"`
	Amount        float64    `json:"amount"`
	Status        string     `json:"status"`
	ReferenceType string     `json:"referenceType,omitempty"`
	ReferenceId   *uuid.UUID `json:"referenceId,omitempty"`
	Description   string     `json:"description"`
	BalanceAfter  float64    `json:"balanceAfter"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type TransactionListQuery struct {
	Type   string `query:"type"`
	Status string `query:"status"`
	From   string `query:"from"`
	To     string `query:"to"`
}

type WithdrawalRequest struct {
	Amount            float64 `json:"amount" validate:"gte=1000"`
	BankAccountName   string  `json:"bankAccountName" validate:"required,min=2,max=100"`
	BankAccountNumber string  `json:"bankAccountNumber" validate:"required,numeric,min=6,max=18"`
	Ifsc              string  `json:"ifsc" validate:"required,len=11"`
	Note              string  `json:"note" validate:"max=250"`
}

type WithdrawalResponse struct {
	Id                uuid.UUID  `json:"id"`
	Amount            float64    `json:"amount"`
	Status            string     `json:"status"`
	BankAccountName   string     `json:"bankAccountName"`
	BankAccountMasked string     `json:"bankAccountMasked"`
	Ifsc              string     `json:"ifsc"`
	Note              string     `json:"note,omitempty"`
	RequestedBy       uuid.UUID  `json:"requestedBy"`
	ProcessedAt       *time.Time `json:"processedAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

type WithdrawalListQuery struct {
	Status string `query:"status"`
}

type DepositRequest struct {
	Amount float64 `json:"amount" validate:"gte=500"`
}

// PaymentCheckoutResponse is returned when the brand is sent to the payment gateway.
type PaymentCheckoutResponse struct {
	OrderId       string     `json:"orderId"`
	TransactionId *uuid.UUID `json:"transactionId,omitempty"`
	InvoiceId     *uuid.UUID `json:"invoiceId,omitempty"`
	Amount        float64    `json:"amount"`
	SnapToken     string     `json:"snapToken"`
	RedirectUrl   string     `json:"redirectUrl"`
}
