package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type InvoiceLineItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Amount      float64 `json:"amount"`
}

type Invoice struct {
	Id               uuid.UUID                            `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrganizationId   uuid.UUID                            `gorm:"type:uuid;not null;index"`
	CampaignId       *uuid.UUID                           `gorm:"type:uuid"`
	Number           string                               `gorm:"type:varchar(30);uniqueIndex;not null"`
	Status           string                               `gorm:"type:varchar(20);not null;default:'draft'"`
	LineItems        datatypes.JSONSlice[InvoiceLineItem] `gorm:"type:jsonb"`
	Subtotal         float64                              `gorm:"type:decimal(14,2)"`
	TaxRate          float64                              `gorm:"type:decimal(5,4)"`
	TaxAmount        float64                              `gorm:"type:decimal(14,2)"`
	Total            float64                              `gorm:"type:decimal(14,2)"`
	Currency         string                               `gorm:"type:varchar(3);default:'INR'"`
	IssuedAt         *time.Time
	DueDate          time.Time `gorm:"index"`
	PaidAt           *time.Time
	PaymentReference string `gorm:"type:varchar(100)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Invoice) TableName() string {
	return "invoices"
}
