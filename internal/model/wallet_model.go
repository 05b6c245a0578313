package model

import (
	"time"

	"github.com/google/uuid"
)

type WalletBalance struct {
	OrganizationId    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Currency          string    `gorm:"type:varchar(3);not null;default:'INR'"`
	Available         float64   `gorm:"type:decimal(14,2);default:0"`
	Held              float64   `gorm:"type:decimal(14,2);default:0"`
	PendingWithdrawal float64   `gorm:"type:decimal(14,2);default:0"`
	TotalDeposited    float64   `gorm:"type:decimal(14,2);default:0"`
	TotalSpent        float64   `gorm:"type:decimal(14,2);default:0"`
	TotalWithdrawn    float64   `gorm:"type:decimal(14,2);default:0"`
	UpdatedAt         time.Time
}

func (WalletBalance) TableName() string {
	return "wallet_balances"
}

type WalletTransaction struct {
	Id             uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrganizationId uuid.UUID  `gorm:"type:uuid;not null;index:idx_wallet_tx_org_created,priority:1"`
	Type           string     `gorm:"type:varchar(30);not null"`
	Amount         float64    `gorm:"type:decimal(14,2);not null"`
	Status         string     `gorm:"type:varchar(20);not null"`
	ReferenceType  string     `gorm:"type:varchar(30)"`
	ReferenceId    *uuid.UUID `gorm:"type:uuid"`
	Description    string     `gorm:"type:text"`
	BalanceAfter   float64    `gorm:"type:decimal(14,2)"`
	CreatedAt      time.Time  `gorm:"index:idx_wallet_tx_org_created,priority:2"`
}

func (WalletTransaction) TableName() string {
	return "wallet_transactions"
}

type Withdrawal struct {
	Id                uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrganizationId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount            float64   `gorm:"type:decimal(14,2);not null"`
	Status            string    `gorm:"type:varchar(20);not null;default:'pending'"`
	BankAccountName   string    `gorm:"type:varchar(150)"`
	BankAccountMasked string    `gorm:"type:varchar(30)"`
	Ifsc              string    `gorm:"type:varchar(11)"`
	Note              string    `gorm:"type:text"`
	RequestedBy       uuid.UUID `gorm:"type:uuid"`
	ProcessedAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (Withdrawal) TableName() string {
	return "withdrawals"
}
